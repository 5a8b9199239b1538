package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WatchedShowsJSON is the JSONB shape of a user's watched-episode record:
// show ID -> season number -> watched episode numbers.
type WatchedShowsJSON map[int]map[int][]int

// WatchedEpisodesModel mirrors the 'watched_episodes' table.
type WatchedEpisodesModel struct {
	UserID    uuid.UUID                            `gorm:"type:uuid;primary_key"`
	Episodes  datatypes.JSONType[WatchedShowsJSON] `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WatchedEpisodesModel) TableName() string {
	return "watched_episodes"
}
