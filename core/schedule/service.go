package schedule

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/darasaonline/darasa/core"
	"github.com/darasaonline/darasa/core/batch"
)

var ErrNotFound = errors.New("session not found")

type (
	// API is the slice of the REST client this service consumes.
	API interface {
		ListSessions(ctx context.Context) ([]Session, error)
		CreateSession(ctx context.Context, ns NewSession) (Session, error)
		DeleteSession(ctx context.Context, id string) error
	}

	Service struct {
		api      API
		batchAPI batch.API
		log      core.Logger
		now      func() time.Time
		loc      *time.Location
	}
)

func NewService(api API, batchAPI batch.API, log core.Logger, now func() time.Time, loc *time.Location) *Service {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Service{api: api, batchAPI: batchAPI, log: log, now: now, loc: loc}
}

// Schedule fetches sessions and batches and returns the grouped,
// status-annotated view. Called on mount and again after every
// schedule-created/-updated push event; each call is a full re-fetch.
func (svc *Service) Schedule(ctx context.Context) ([]DayGroup, error) {
	sessions, err := svc.api.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	batches, err := svc.batchAPI.ListBatches(ctx)
	if err != nil {
		// batches are display garnish here; sessions still render
		svc.log.Debug("schedule: batch fetch failed, using placeholders", err)
		batches = nil
	}
	return Build(sessions, batches, svc.now(), svc.loc), nil
}

// Create validates locally then submits. On success the caller re-fetches;
// the unconfirmed record is never spliced into local state because the
// server owns generated ids and derived fields.
func (svc *Service) Create(ctx context.Context, ns NewSession) (Session, error) {
	if err := ns.Validate(svc.loc); err != nil {
		return Session{}, err
	}
	return svc.api.CreateSession(ctx, ns)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.api.DeleteSession(ctx, id)
}
