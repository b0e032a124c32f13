package notification

import (
	"context"

	"github.com/pkg/errors"

	"github.com/darasaonline/darasa/core"
)

var ErrBatchRequired = errors.New("a batch is required for a specific audience")

type (
	API interface {
		ListNotifications(ctx context.Context) ([]Notification, error)
		SendNotification(ctx context.Context, nn NewNotification) (Notification, error)
		MarkNotificationRead(ctx context.Context, id string) error
		DeleteNotification(ctx context.Context, id string) error
	}

	Service struct {
		api API
		log core.Logger
	}
)

func NewService(api API, log core.Logger) *Service {
	return &Service{api: api, log: log}
}

func (svc *Service) List(ctx context.Context) ([]Notification, error) {
	return svc.api.ListNotifications(ctx)
}

func (svc *Service) Filter(ctx context.Context, f QueryFilter) ([]Notification, error) {
	items, err := svc.api.ListNotifications(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(items), nil
}

func (svc *Service) Send(ctx context.Context, nn NewNotification) (Notification, error) {
	if err := nn.Validate(); err != nil {
		return Notification{}, err
	}
	return svc.api.SendNotification(ctx, nn)
}

func (svc *Service) MarkRead(ctx context.Context, id string) error {
	return svc.api.MarkNotificationRead(ctx, id)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.api.DeleteNotification(ctx, id)
}
