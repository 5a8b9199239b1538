package impl

import (
	"context"
	"log/slog"

	deliverycontext "liveseries/internal/delivery/context"
	"liveseries/internal/domain/entity"
	domainerrors "liveseries/internal/domain/errors"
	"liveseries/internal/domain/repository"
	"liveseries/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type pageService struct {
	pageRepo repository.PageRepository
	logger   *slog.Logger
}

// PageServiceParams holds dependencies for PageService, injected by Fx.
type PageServiceParams struct {
	fx.In

	PageRepo repository.PageRepository
	Logger   *slog.Logger
}

// NewPageService creates a new page service instance
func NewPageService(params PageServiceParams) usecase.PageUsecase {
	return &pageService{pageRepo: params.PageRepo, logger: params.Logger}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *pageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetAllPages retrieves every page
func (s *pageService) GetAllPages(ctx context.Context) ([]*entity.Page, error) {
	pages, err := s.pageRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pages")
	}

	return pages, nil
}

// GetPage retrieves a single page by ID
func (s *pageService) GetPage(ctx context.Context, id int) (*entity.Page, error) {
	page, err := s.pageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPageNotFound) {
			return nil, domainerrors.ErrPageNotFound
		}

		return nil, errors.Wrap(err, "failed to find page")
	}

	return page, nil
}

// CreatePage persists a new page
func (s *pageService) CreatePage(ctx context.Context, page *entity.Page) error {
	s.log(ctx).Info("Creating page", slog.String("url", page.URL))

	return s.pageRepo.Create(ctx, page)
}

// UpdatePage modifies an existing page
func (s *pageService) UpdatePage(ctx context.Context, page *entity.Page) error {
	if err := s.pageRepo.Update(ctx, page); err != nil {
		if errors.Is(err, repository.ErrPageNotFound) {
			return domainerrors.ErrPageNotFound
		}

		return err
	}

	return nil
}

// DeletePage removes a page
func (s *pageService) DeletePage(ctx context.Context, id int) error {
	s.log(ctx).Info("Deleting page", slog.Int("pageId", id))

	if err := s.pageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPageNotFound) {
			return domainerrors.ErrPageNotFound
		}

		return err
	}

	return nil
}
