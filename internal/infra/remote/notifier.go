// Package remote delivers download commands to users' own download servers.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"liveseries/config"
	"liveseries/internal/domain/entity"
	"liveseries/internal/domain/service"
)

type notifier struct {
	httpClient *http.Client
	logger     *slog.Logger
}

type downloadCommand struct {
	ShowName string `json:"showName"`
	ShowID   int    `json:"showId"`
	Season   int    `json:"season"`
	Episode  int    `json:"episode"`
}

// NewNotifier builds the episode notifier.
func NewNotifier(cfg *config.Config, logger *slog.Logger) service.EpisodeNotifier {
	return &notifier{
		httpClient: &http.Client{Timeout: cfg.Tracker.RequestTimeout},
		logger:     logger,
	}
}

// NotifyDownload posts one download command to the user's server. The
// outcome is classified for logging only; nothing is persisted or retried.
func (n *notifier) NotifyDownload(ctx context.Context, serverURL, token string, episode entity.Episode) service.NotifyOutcome {
	payload, err := json.Marshal(downloadCommand{
		ShowName: episode.ShowName,
		ShowID:   episode.ShowID,
		Season:   episode.Season,
		Episode:  episode.Episode,
	})
	if err != nil {
		n.logger.Error("Failed to marshal download command", slog.String("error", err.Error()))

		return service.NotifyFailed
	}

	url := strings.TrimSuffix(serverURL, "/") + "/liveseries/downloaded-episodes"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		n.logger.Error("Failed to build download command request",
			slog.String("serverUrl", serverURL),
			slog.String("error", err.Error()))

		return service.NotifyFailed
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := n.httpClient.Do(req)
	if err != nil {
		n.logger.Error("Download command request failed",
			slog.String("serverUrl", serverURL),
			slog.String("episode", episode.String()),
			slog.String("error", err.Error()))

		return service.NotifyFailed
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return service.NotifyAccepted
	case res.StatusCode == http.StatusConflict:
		return service.NotifyAlreadyPresent
	case res.StatusCode == http.StatusForbidden:
		return service.NotifyForbidden
	default:
		n.logger.Error("Download command rejected",
			slog.String("serverUrl", serverURL),
			slog.String("episode", episode.String()),
			slog.Int("status", res.StatusCode))

		return service.NotifyFailed
	}
}
