package service

import (
	"context"

	"liveseries/internal/domain/entity"
)

// NotifyOutcome classifies the remote server's response to a download command.
type NotifyOutcome int

const (
	// NotifyAccepted means the remote server accepted the download command.
	NotifyAccepted NotifyOutcome = iota
	// NotifyAlreadyPresent means the remote server already has the episode.
	NotifyAlreadyPresent
	// NotifyForbidden means the remote server rejected the token.
	NotifyForbidden
	// NotifyFailed covers transport errors and unexpected status codes.
	NotifyFailed
)

// String returns a log-friendly name for the outcome.
func (o NotifyOutcome) String() string {
	switch o {
	case NotifyAccepted:
		return "accepted"
	case NotifyAlreadyPresent:
		return "already_present"
	case NotifyForbidden:
		return "forbidden"
	default:
		return "failed"
	}
}

// EpisodeNotifier delivers download commands to users' own remote servers.
// Commands are fire-and-forget: outcomes are reported, never persisted,
// and failed commands are not retried.
type EpisodeNotifier interface {
	// NotifyDownload asks the server at serverURL to download one episode,
	// authenticating with the given bearer token.
	NotifyDownload(ctx context.Context, serverURL, token string, episode entity.Episode) NotifyOutcome
}
