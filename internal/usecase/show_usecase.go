// Package usecase defines the application-layer interfaces the delivery
// layer depends on.
package usecase

import (
	"context"

	"liveseries/internal/domain/entity"

	"github.com/google/uuid"
)

// ShowUsecase defines the interface for liked/subscribed show management
type ShowUsecase interface {
	// GetAllShows retrieves every user's show record
	GetAllShows(ctx context.Context) ([]*entity.UserShows, error)

	// GetUserShows retrieves one user's show record, returning an empty
	// record when the user never created one
	GetUserShows(ctx context.Context, userID uuid.UUID) (*entity.UserShows, error)

	// AddLikedShow adds a show to the user's liked list
	AddLikedShow(ctx context.Context, userID uuid.UUID, showID int) error

	// RemoveLikedShow removes a show from the user's liked list
	RemoveLikedShow(ctx context.Context, userID uuid.UUID, showID int) error

	// AddSubscribedShow adds a show to the user's subscribed list
	AddSubscribedShow(ctx context.Context, userID uuid.UUID, showID int) error

	// RemoveSubscribedShow removes a show from the user's subscribed list
	RemoveSubscribedShow(ctx context.Context, userID uuid.UUID, showID int) error
}
