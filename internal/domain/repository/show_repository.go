package repository

import (
	"context"
	"errors"

	"liveseries/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserShowsNotFound is returned when a user has no liked/subscribed shows record.
// Absence is a normal state for users who never touched the feature.
var ErrUserShowsNotFound = errors.New("user shows record not found")

// ShowRepository persists each user's liked and subscribed show ID sets.
type ShowRepository interface {
	// FindAll retrieves every user's show record.
	FindAll(ctx context.Context) ([]*entity.UserShows, error)

	// FindByUserID retrieves one user's show record.
	// Returns ErrUserShowsNotFound when the user has no record yet.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserShows, error)

	// Save creates or replaces a user's show record.
	Save(ctx context.Context, shows *entity.UserShows) error
}
