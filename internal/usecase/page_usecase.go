package usecase

import (
	"context"

	"liveseries/internal/domain/entity"
)

// PageUsecase defines the interface for content page management
type PageUsecase interface {
	// GetAllPages retrieves every page
	GetAllPages(ctx context.Context) ([]*entity.Page, error)

	// GetPage retrieves a single page by ID
	GetPage(ctx context.Context, id int) (*entity.Page, error)

	// CreatePage persists a new page
	CreatePage(ctx context.Context, page *entity.Page) error

	// UpdatePage modifies an existing page
	UpdatePage(ctx context.Context, page *entity.Page) error

	// DeletePage removes a page
	DeletePage(ctx context.Context, id int) error
}
