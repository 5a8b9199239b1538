package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccessToken is a short-lived token minted for a specific audience.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// CredentialBroker turns the service's durable credential into short-lived
// access tokens scoped to individual user audiences. It performs one token
// exchange per call and never caches; callers own any reuse policy.
type CredentialBroker interface {
	// Ready reports whether the durable credential was configured and decodable.
	Ready() bool

	// OwnIdentity returns the service account's own user ID.
	// Only meaningful when Ready reports true.
	OwnIdentity() uuid.UUID

	// AccessTokenFor exchanges the durable credential for an access token
	// acting on behalf of the given audience user.
	AccessTokenFor(ctx context.Context, audience uuid.UUID) (*AccessToken, error)
}
