package content

import (
	"context"
	"io"

	"github.com/darasaonline/darasa/core"
)

type (
	API interface {
		ListContent(ctx context.Context) ([]Content, error)
		UploadContent(ctx context.Context, ur UploadRequest, file io.Reader) (Content, error)
		DeleteContent(ctx context.Context, id string) error
	}

	Service struct {
		api API
		log core.Logger
	}
)

func NewService(api API, log core.Logger) *Service {
	return &Service{api: api, log: log}
}

func (svc *Service) Library(ctx context.Context) ([]Content, error) {
	return svc.api.ListContent(ctx)
}

func (svc *Service) Filter(ctx context.Context, f QueryFilter) ([]Content, error) {
	items, err := svc.api.ListContent(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(items), nil
}

func (svc *Service) Upload(ctx context.Context, ur UploadRequest, file io.Reader) (Content, error) {
	if err := ur.Validate(); err != nil {
		return Content{}, err
	}
	return svc.api.UploadContent(ctx, ur, file)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.api.DeleteContent(ctx, id)
}
