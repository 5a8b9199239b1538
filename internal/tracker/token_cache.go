package tracker

import (
	"context"
	"sync"

	"liveseries/internal/domain/service"

	"github.com/google/uuid"
)

// tokenCache memoises broker exchanges for the duration of one pass.
// Failures are memoised too, so a user whose exchange failed is not
// retried until the next pass.
type tokenCache struct {
	broker service.CredentialBroker

	mu      sync.Mutex
	entries map[uuid.UUID]*tokenEntry
}

type tokenEntry struct {
	token *service.AccessToken
	err   error
}

func newTokenCache(broker service.CredentialBroker) *tokenCache {
	return &tokenCache{
		broker:  broker,
		entries: make(map[uuid.UUID]*tokenEntry),
	}
}

// TokenFor returns the cached exchange result for the audience, performing
// at most one broker call per audience over the cache's lifetime.
func (c *tokenCache) TokenFor(ctx context.Context, audience uuid.UUID) (*service.AccessToken, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[audience]; ok {
		return entry.token, entry.err
	}

	token, err := c.broker.AccessTokenFor(ctx, audience)
	c.entries[audience] = &tokenEntry{token: token, err: err}

	return token, err
}
