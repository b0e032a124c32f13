package earnings

import (
	"context"

	"github.com/darasaonline/darasa/core"
)

type (
	API interface {
		GetEarnings(ctx context.Context) (Snapshot, error)
		SubmitPayout(ctx context.Context, pr PayoutRequest) (PayoutRow, error)
	}

	Service struct {
		api  API
		log  core.Logger
		conf *core.Config
	}
)

func NewService(api API, log core.Logger, conf *core.Config) *Service {
	return &Service{api: api, log: log, conf: conf}
}

func (svc *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	return svc.api.GetEarnings(ctx)
}

// RequestPayout validates locally (amount floor included) then submits.
// Callers re-fetch the snapshot on success and on every payout-update event.
func (svc *Service) RequestPayout(ctx context.Context, pr PayoutRequest) (PayoutRow, error) {
	if err := pr.Validate(svc.conf.MinPayoutAmount); err != nil {
		return PayoutRow{}, err
	}
	return svc.api.SubmitPayout(ctx, pr)
}

func (svc *Service) FilterPayouts(ctx context.Context, f QueryFilter) ([]PayoutRow, error) {
	snap, err := svc.api.GetEarnings(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(snap.Payouts), nil
}
