// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Accounts are created and authenticated by the
// external auth service; this backend only reads them.
type User struct {
	ID        uuid.UUID // The unique identifier assigned by the auth service.
	Username  string    // The user's display name.
	Email     string    // The user's contact email.
	ServerURL string    // Optional base URL of the user's own download server. Empty when not registered.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidServerURL reports whether the user registered a well-formed,
// scheme-prefixed remote server URL.
func (u *User) HasValidServerURL() bool {
	if u.ServerURL == "" {
		return false
	}
	parsed, err := url.Parse(u.ServerURL)
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
