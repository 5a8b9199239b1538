package entity

import (
	"fmt"
	"time"
)

// Episode describes one episode of a show as reported by the catalogue.
// Episodes are fetched fresh each tracker pass and never cached.
type Episode struct {
	ShowID   int
	ShowName string
	Season   int
	Episode  int
	AirDate  time.Time // interpreted as UTC
}

// Aired reports whether the episode's air time has passed.
func (e Episode) Aired(now time.Time) bool {
	return now.After(e.AirDate)
}

// String renders the episode in the conventional SxxExx form.
func (e Episode) String() string {
	return fmt.Sprintf("S%02dE%02d", e.Season, e.Episode)
}
