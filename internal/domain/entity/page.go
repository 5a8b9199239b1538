package entity

import "time"

// Page is an editable content page served to the frontend.
type Page struct {
	ID          int
	Title       string
	URL         string
	Content     string
	ShouldFetch bool // whether the frontend should fetch the content body
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
