package repository

import (
	"context"
	"errors"

	"liveseries/internal/domain/entity"
)

// ErrPageNotFound is returned when the requested page does not exist.
var ErrPageNotFound = errors.New("page not found")

// PageRepository persists editable content pages.
type PageRepository interface {
	// FindAll retrieves every page ordered by ID.
	FindAll(ctx context.Context) ([]*entity.Page, error)

	// FindByID retrieves a single page. Returns ErrPageNotFound when absent.
	FindByID(ctx context.Context, id int) (*entity.Page, error)

	// Create persists a new page and fills in its assigned ID.
	Create(ctx context.Context, page *entity.Page) error

	// Update modifies an existing page. Returns ErrPageNotFound when absent.
	Update(ctx context.Context, page *entity.Page) error

	// Delete removes a page. Returns ErrPageNotFound when absent.
	Delete(ctx context.Context, id int) error
}
