package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// WatchedShowMap maps show ID -> season number -> watched episode numbers.
type WatchedShowMap map[int]map[int][]int

// Contains reports whether the given episode is recorded as watched.
// Missing show or season keys are treated as empty, never as an error.
func (m WatchedShowMap) Contains(showID, season, episode int) bool {
	seasons, ok := m[showID]
	if !ok {
		return false
	}
	episodes, ok := seasons[season]
	if !ok {
		return false
	}

	return slices.Contains(episodes, episode)
}

// SetSeason replaces the watched episode list for one season of one show.
func (m WatchedShowMap) SetSeason(showID, season int, episodes []int) {
	seasons, ok := m[showID]
	if !ok {
		seasons = make(map[int][]int)
		m[showID] = seasons
	}
	seasons[season] = episodes
}

// WatchedEpisodes is a user's full watched-episode record.
type WatchedEpisodes struct {
	UserID    uuid.UUID
	Episodes  WatchedShowMap
	UpdatedAt time.Time
}
