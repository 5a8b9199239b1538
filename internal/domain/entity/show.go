package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserShows holds a user's liked and subscribed TV show IDs. Show IDs are
// Episodate catalogue identifiers. A user without a record is treated the
// same as a record with empty collections.
type UserShows struct {
	UserID          uuid.UUID
	LikedShows      []int
	SubscribedShows []int
	UpdatedAt       time.Time
}
