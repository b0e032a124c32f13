package batch

import (
	"context"

	"github.com/pkg/errors"

	"github.com/darasaonline/darasa/core"
)

var ErrNotFound = errors.New("batch not found")

type (
	// API is the slice of the REST client this service consumes.
	API interface {
		ListBatches(ctx context.Context) ([]Batch, error)
		GetBatch(ctx context.Context, id string) (Batch, error)
		CreateBatch(ctx context.Context, nb NewBatch) (Batch, error)
		UpdateBatch(ctx context.Context, id string, ub UpdateBatch) (Batch, error)
		EnrollStudent(ctx context.Context, batchID, studentID string) error
		RemoveStudent(ctx context.Context, batchID, studentID string) error
	}

	Service struct {
		api API
		log core.Logger
	}
)

func NewService(api API, log core.Logger) *Service {
	return &Service{api: api, log: log}
}

func (svc *Service) List(ctx context.Context) ([]Batch, error) {
	return svc.api.ListBatches(ctx)
}

func (svc *Service) Get(ctx context.Context, id string) (Batch, error) {
	return svc.api.GetBatch(ctx, id)
}

func (svc *Service) Filter(ctx context.Context, f QueryFilter) ([]Batch, error) {
	batches, err := svc.api.ListBatches(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(batches), nil
}

func (svc *Service) Create(ctx context.Context, nb NewBatch) (Batch, error) {
	if err := nb.Validate(); err != nil {
		return Batch{}, err
	}
	return svc.api.CreateBatch(ctx, nb)
}

func (svc *Service) Update(ctx context.Context, id string, ub UpdateBatch) (Batch, error) {
	if err := ub.Validate(); err != nil {
		return Batch{}, err
	}
	return svc.api.UpdateBatch(ctx, id, ub)
}

// Enroll submits the mutation and re-fetches the batch; the refreshed record
// is authoritative, no local splice.
func (svc *Service) Enroll(ctx context.Context, batchID, studentID string) (Batch, error) {
	if err := svc.api.EnrollStudent(ctx, batchID, studentID); err != nil {
		return Batch{}, err
	}
	return svc.api.GetBatch(ctx, batchID)
}

func (svc *Service) Remove(ctx context.Context, batchID, studentID string) (Batch, error) {
	if err := svc.api.RemoveStudent(ctx, batchID, studentID); err != nil {
		return Batch{}, err
	}
	return svc.api.GetBatch(ctx, batchID)
}
