package student

import (
	"context"

	"github.com/darasaonline/darasa/core"
)

type (
	API interface {
		ListStudents(ctx context.Context) ([]Student, error)
		SearchStudents(ctx context.Context, query string) ([]Student, error)
	}

	Service struct {
		api API
		log core.Logger
	}
)

func NewService(api API, log core.Logger) *Service {
	return &Service{api: api, log: log}
}

func (svc *Service) List(ctx context.Context) ([]Student, error) {
	return svc.api.ListStudents(ctx)
}

func (svc *Service) Filter(ctx context.Context, f QueryFilter) ([]Student, error) {
	students, err := svc.api.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(students), nil
}

// Search hits the server-side roster search (used by the enroll picker);
// local filtering via QueryFilter covers the already-loaded list.
func (svc *Service) Search(ctx context.Context, query string) ([]Student, error) {
	query = core.CleanString(query)
	if query == "" {
		return svc.api.ListStudents(ctx)
	}
	return svc.api.SearchStudents(ctx, query)
}
