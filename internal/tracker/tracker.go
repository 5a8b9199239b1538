// Package tracker implements the background job that keeps users' remote
// download servers fed with newly aired episodes of their subscribed shows.
package tracker

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"liveseries/config"
	"liveseries/internal/delivery"
	"liveseries/internal/domain/entity"
	"liveseries/internal/domain/repository"
	"liveseries/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the episode tracker
type Params struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	Users     repository.UserRepository
	Shows     repository.ShowRepository
	Watched   repository.WatchedRepository
	Broker    service.CredentialBroker
	Catalogue service.CatalogueClient
	Notifier  service.EpisodeNotifier
}

// Tracker runs one pass immediately at startup and then one per period.
// Users are processed sequentially within a pass; a user's subscribed shows
// are processed concurrently.
type Tracker struct {
	cfg       *config.TrackerConfig
	logger    *slog.Logger
	users     repository.UserRepository
	shows     repository.ShowRepository
	watched   repository.WatchedRepository
	broker    service.CredentialBroker
	catalogue service.CatalogueClient
	notifier  service.EpisodeNotifier

	passInFlight atomic.Bool
	stopOnce     sync.Once
	stopCh       chan struct{}
	doneCh       chan struct{}
	now          func() time.Time
}

// New creates the episode tracker and registers its shutdown hook.
func New(params Params) delivery.Delivery {
	t := newTracker(params.Config.Tracker, params.Logger,
		params.Users, params.Shows, params.Watched,
		params.Broker, params.Catalogue, params.Notifier)

	params.Append(fx.Hook{
		OnStop: t.stop,
	})

	return t
}

func newTracker(
	cfg *config.TrackerConfig,
	logger *slog.Logger,
	users repository.UserRepository,
	shows repository.ShowRepository,
	watched repository.WatchedRepository,
	broker service.CredentialBroker,
	catalogue service.CatalogueClient,
	notifier service.EpisodeNotifier,
) *Tracker {
	return &Tracker{
		cfg:       cfg,
		logger:    logger,
		users:     users,
		shows:     shows,
		watched:   watched,
		broker:    broker,
		catalogue: catalogue,
		notifier:  notifier,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
		now:       time.Now,
	}
}

// Serve runs the tracker loop until the context is cancelled or stop is
// called. When the credential broker is not ready the tracker stays
// disabled for the whole process lifetime, never arming the timer.
func (t *Tracker) Serve(ctx context.Context) error {
	defer close(t.doneCh)

	if !t.broker.Ready() {
		t.logger.Warn("Episode tracker disabled: service credential not available")

		return nil
	}

	t.logger.Info("Starting episode tracker",
		slog.Duration("period", t.cfg.Period),
		slog.String("serviceUser", t.broker.OwnIdentity().String()))

	t.RunPass(ctx)

	ticker := time.NewTicker(t.cfg.Period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.stopCh:
			return nil
		case <-ticker.C:
			t.RunPass(ctx)
		}
	}
}

func (t *Tracker) stop(ctx context.Context) error {
	t.logger.Info("Shutting down episode tracker")
	t.stopOnce.Do(func() { close(t.stopCh) })

	select {
	case <-t.doneCh:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "episode tracker did not stop in time")
	}
}

// RunPass executes one tracker pass. A fire that overlaps a still-running
// pass is skipped rather than queued.
func (t *Tracker) RunPass(ctx context.Context) {
	if !t.passInFlight.CompareAndSwap(false, true) {
		t.logger.Warn("Skipping episode tracker pass: previous pass still running")

		return
	}
	defer t.passInFlight.Store(false)

	start := t.now()
	t.logger.Info("Episode tracker pass started")

	users, err := t.users.FindWithServerURL(ctx)
	if err != nil {
		t.logger.Error("Failed to enumerate users", slog.String("error", err.Error()))

		return
	}

	// One cache per pass: at most one token exchange per user, shared by
	// all of that user's show workers.
	tokens := newTokenCache(t.broker)
	own := t.broker.OwnIdentity()

	for _, user := range users {
		if user.ID == own || !user.HasValidServerURL() {
			continue
		}
		t.checkUser(ctx, user, tokens)
	}

	t.logger.Info("Episode tracker pass finished",
		slog.Duration("elapsed", t.now().Sub(start)))
}

// checkUser processes one user's subscriptions. Any failure here is scoped
// to this user; the pass carries on with the next one.
func (t *Tracker) checkUser(ctx context.Context, user *entity.User, tokens *tokenCache) {
	shows, err := t.shows.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserShowsNotFound) {
			t.logger.Debug("User has no show record", slog.String("userId", user.ID.String()))
		} else {
			t.logger.Error("Failed to read user subscriptions",
				slog.String("userId", user.ID.String()),
				slog.String("error", err.Error()))
		}

		return
	}
	if len(shows.SubscribedShows) == 0 {
		return
	}

	watched, err := t.watched.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrWatchedNotFound) {
			t.logger.Debug("User has no watched-episodes record", slog.String("userId", user.ID.String()))
		} else {
			t.logger.Error("Failed to read user watch state",
				slog.String("userId", user.ID.String()),
				slog.String("error", err.Error()))
		}

		return
	}

	var wg sync.WaitGroup
	for _, showID := range shows.SubscribedShows {
		wg.Add(1)
		go func(showID int) {
			defer wg.Done()
			t.checkShow(ctx, user, tokens, showID, watched.Episodes)
		}(showID)
	}
	wg.Wait()
}

// checkShow fetches one show's listing and notifies the user's server about
// every aired episode missing from their watch state.
func (t *Tracker) checkShow(ctx context.Context, user *entity.User, tokens *tokenCache, showID int, watched entity.WatchedShowMap) {
	show, err := t.catalogue.FetchShow(ctx, showID)
	if err != nil {
		t.logger.Error("Failed to fetch show from catalogue",
			slog.Int("showId", showID),
			slog.String("error", err.Error()))

		return
	}

	now := t.now()
	unwatched := make([]entity.Episode, 0)
	for _, episode := range show.Episodes {
		if episode.Aired(now) && !watched.Contains(showID, episode.Season, episode.Episode) {
			unwatched = append(unwatched, episode)
		}
	}
	if len(unwatched) == 0 {
		return
	}

	sort.Slice(unwatched, func(i, j int) bool {
		if unwatched[i].Season != unwatched[j].Season {
			return unwatched[i].Season < unwatched[j].Season
		}

		return unwatched[i].Episode < unwatched[j].Episode
	})

	// The token is only minted once an episode actually needs notifying.
	token, err := tokens.TokenFor(ctx, user.ID)
	if err != nil {
		t.logger.Error("Failed to obtain access token for user",
			slog.String("userId", user.ID.String()),
			slog.String("error", err.Error()))

		return
	}

	for _, episode := range unwatched {
		outcome := t.notifier.NotifyDownload(ctx, user.ServerURL, token.Token, episode)
		switch outcome {
		case service.NotifyAccepted:
			t.logger.Info("Requested episode download",
				slog.String("show", show.Name),
				slog.String("episode", episode.String()),
				slog.String("userId", user.ID.String()))
		case service.NotifyAlreadyPresent:
			t.logger.Info("Remote server already has episode",
				slog.String("show", show.Name),
				slog.String("episode", episode.String()))
		case service.NotifyForbidden:
			t.logger.Warn("Remote server rejected credentials",
				slog.String("serverUrl", user.ServerURL),
				slog.String("userId", user.ID.String()))
		}
	}
}
