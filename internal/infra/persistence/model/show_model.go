package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserShowsModel mirrors the 'user_shows' table. The liked and subscribed
// ID sets are stored as JSONB arrays, matching how the frontend consumes them.
type UserShowsModel struct {
	UserID          uuid.UUID                `gorm:"type:uuid;primary_key"`
	LikedShows      datatypes.JSONSlice[int] `gorm:"type:jsonb;not null;default:'[]'"`
	SubscribedShows datatypes.JSONSlice[int] `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserShowsModel) TableName() string {
	return "user_shows"
}
