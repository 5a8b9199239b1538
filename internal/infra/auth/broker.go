package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"liveseries/config"
	"liveseries/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// credentialBroker exchanges the service's durable refresh token for
// short-lived, audience-scoped access tokens at the external auth service.
type credentialBroker struct {
	client       *http.Client
	logger       *slog.Logger
	authBase     string
	refreshToken string
	tokenTTL     time.Duration
	identity     uuid.UUID
	ready        bool
}

type refreshRequest struct {
	Token        string    `json:"token"`
	AudienceUUID uuid.UUID `json:"audienceUuid"`
	ExpiresIn    int64     `json:"expiresIn"` // milliseconds
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"` // unix milliseconds
	User        struct {
		UUID uuid.UUID `json:"uuid"`
	} `json:"user"`
}

// NewCredentialBroker builds the broker from the configured durable
// credential. A missing or undecodable credential yields a broker that is
// simply not ready; construction never fails so the rest of the service
// can still run.
func NewCredentialBroker(cfg *config.Config, tokens service.TokenService, logger *slog.Logger) service.CredentialBroker {
	broker := &credentialBroker{
		client:       &http.Client{Timeout: cfg.Tracker.RequestTimeout},
		logger:       logger,
		authBase:     cfg.Tracker.AuthBase,
		refreshToken: cfg.Tracker.RefreshToken,
		tokenTTL:     cfg.Tracker.AccessTokenTTL,
	}

	if broker.refreshToken == "" {
		logger.Warn("Tracker refresh token not configured, credential broker disabled")

		return broker
	}

	identity, err := tokens.DecodeIdentity(broker.refreshToken)
	if err != nil {
		logger.Warn("Tracker refresh token undecodable, credential broker disabled",
			slog.String("error", err.Error()))

		return broker
	}

	broker.identity = identity
	broker.ready = true

	return broker
}

// Ready reports whether the durable credential was configured and decodable.
func (b *credentialBroker) Ready() bool {
	return b.ready
}

// OwnIdentity returns the service account's own user ID.
func (b *credentialBroker) OwnIdentity() uuid.UUID {
	return b.identity
}

// AccessTokenFor performs one token exchange scoped to the given audience.
// Every call hits the auth service; callers own any caching.
func (b *credentialBroker) AccessTokenFor(ctx context.Context, audience uuid.UUID) (*service.AccessToken, error) {
	if !b.ready {
		return nil, errors.New("credential broker is not ready")
	}

	payload, err := json.Marshal(refreshRequest{
		Token:        b.refreshToken,
		AudienceUUID: audience,
		ExpiresIn:    b.tokenTTL.Milliseconds(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal refresh request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.authBase+"/auth/refresh", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "build refresh request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := b.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "token exchange request failed")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("token exchange returned status %d", res.StatusCode)
	}

	var body refreshResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode token exchange response")
	}
	if body.AccessToken == "" {
		return nil, errors.New("token exchange response has no access token")
	}

	// The minted token must act as the requested user, nobody else.
	if body.User.UUID != audience {
		return nil, errors.Errorf("token exchange returned identity %s for audience %s", body.User.UUID, audience)
	}

	return &service.AccessToken{
		Token:     body.AccessToken,
		ExpiresAt: time.UnixMilli(body.ExpiresAt),
	}, nil
}
