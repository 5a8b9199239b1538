package usecase

import (
	"context"

	"liveseries/internal/domain/entity"

	"github.com/google/uuid"
)

// WatchedUsecase defines the interface for watched-episode management
type WatchedUsecase interface {
	// GetAllWatched retrieves every user's watched-episodes record
	GetAllWatched(ctx context.Context) ([]*entity.WatchedEpisodes, error)

	// GetUserWatched retrieves one user's watched map, returning an empty
	// map when the user never created a record
	GetUserWatched(ctx context.Context, userID uuid.UUID) (entity.WatchedShowMap, error)

	// SetWatchedSeason replaces the watched episode list for one season
	SetWatchedSeason(ctx context.Context, userID uuid.UUID, showID, season int, episodes []int) error
}
