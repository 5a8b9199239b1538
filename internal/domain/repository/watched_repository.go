package repository

import (
	"context"
	"errors"

	"liveseries/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWatchedNotFound is returned when a user has no watched-episodes record.
// Like ErrUserShowsNotFound, absence is a normal state, not a failure.
var ErrWatchedNotFound = errors.New("watched episodes record not found")

// WatchedRepository persists each user's watched-episode map.
type WatchedRepository interface {
	// FindAll retrieves every user's watched-episodes record.
	FindAll(ctx context.Context) ([]*entity.WatchedEpisodes, error)

	// FindByUserID retrieves one user's watched-episodes record.
	// Returns ErrWatchedNotFound when the user has no record yet.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.WatchedEpisodes, error)

	// Save creates or replaces a user's watched-episodes record.
	Save(ctx context.Context, watched *entity.WatchedEpisodes) error
}
