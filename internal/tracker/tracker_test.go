package tracker

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"liveseries/config"
	"liveseries/internal/domain/entity"
	"liveseries/internal/domain/repository"
	"liveseries/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
	err   error
	calls int
}

func (f *fakeUserRepo) FindWithServerURL(_ context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	return f.users, f.err
}

type fakeShowRepo struct {
	records map[uuid.UUID]*entity.UserShows
	errs    map[uuid.UUID]error
}

func (f *fakeShowRepo) FindAll(context.Context) ([]*entity.UserShows, error) { return nil, nil }

func (f *fakeShowRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.UserShows, error) {
	if err, ok := f.errs[userID]; ok {
		return nil, err
	}
	if record, ok := f.records[userID]; ok {
		return record, nil
	}

	return nil, repository.ErrUserShowsNotFound
}

func (f *fakeShowRepo) Save(context.Context, *entity.UserShows) error { return nil }

type fakeWatchedRepo struct {
	records map[uuid.UUID]*entity.WatchedEpisodes
	errs    map[uuid.UUID]error
}

func (f *fakeWatchedRepo) FindAll(context.Context) ([]*entity.WatchedEpisodes, error) {
	return nil, nil
}

func (f *fakeWatchedRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.WatchedEpisodes, error) {
	if err, ok := f.errs[userID]; ok {
		return nil, err
	}
	if record, ok := f.records[userID]; ok {
		return record, nil
	}

	return nil, repository.ErrWatchedNotFound
}

func (f *fakeWatchedRepo) Save(context.Context, *entity.WatchedEpisodes) error { return nil }

type fakeBroker struct {
	ready    bool
	identity uuid.UUID
	errs     map[uuid.UUID]error

	mu    sync.Mutex
	calls map[uuid.UUID]int
}

func (f *fakeBroker) Ready() bool            { return f.ready }
func (f *fakeBroker) OwnIdentity() uuid.UUID { return f.identity }

func (f *fakeBroker) AccessTokenFor(_ context.Context, audience uuid.UUID) (*service.AccessToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[uuid.UUID]int)
	}
	f.calls[audience]++

	if err, ok := f.errs[audience]; ok {
		return nil, err
	}

	return &service.AccessToken{
		Token:     "token-" + audience.String(),
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}, nil
}

func (f *fakeBroker) exchanges(audience uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[audience]
}

type fakeCatalogue struct {
	shows map[int]*service.CatalogueShow
	errs  map[int]error

	mu      sync.Mutex
	fetched []int
}

func (f *fakeCatalogue) FetchShow(_ context.Context, showID int) (*service.CatalogueShow, error) {
	f.mu.Lock()
	f.fetched = append(f.fetched, showID)
	f.mu.Unlock()

	if err, ok := f.errs[showID]; ok {
		return nil, err
	}
	if show, ok := f.shows[showID]; ok {
		return show, nil
	}

	return nil, errors.Errorf("show %d not found", showID)
}

func (f *fakeCatalogue) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.fetched)
}

type notifyCall struct {
	serverURL string
	token     string
	episode   entity.Episode
}

type fakeNotifier struct {
	outcome service.NotifyOutcome

	mu    sync.Mutex
	calls []notifyCall
}

func (f *fakeNotifier) NotifyDownload(_ context.Context, serverURL, token string, episode entity.Episode) service.NotifyOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, notifyCall{serverURL: serverURL, token: token, episode: episode})

	return f.outcome
}

func (f *fakeNotifier) notified() []notifyCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]notifyCall(nil), f.calls...)
}

// --- helpers ---

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTracker(users *fakeUserRepo, shows *fakeShowRepo, watched *fakeWatchedRepo,
	broker *fakeBroker, catalogue *fakeCatalogue, notifier *fakeNotifier) *Tracker {
	cfg := &config.TrackerConfig{
		Period:         time.Hour,
		RequestTimeout: time.Second,
		AccessTokenTTL: 5 * time.Minute,
	}

	return newTracker(cfg, discardLogger(), users, shows, watched, broker, catalogue, notifier)
}

func pastEpisode(showID, season, episode int) entity.Episode {
	return entity.Episode{
		ShowID:   showID,
		ShowName: "Test Show",
		Season:   season,
		Episode:  episode,
		AirDate:  time.Now().UTC().Add(-24 * time.Hour),
	}
}

func futureEpisode(showID, season, episode int) entity.Episode {
	ep := pastEpisode(showID, season, episode)
	ep.AirDate = time.Now().UTC().Add(24 * time.Hour)

	return ep
}

func subscriber(serverURL string) *entity.User {
	return &entity.User{ID: uuid.New(), Username: "viewer", ServerURL: serverURL}
}

// --- tests ---

func TestRunPass_NotifiesAiredUnwatchedEpisode(t *testing.T) {
	user := subscriber("http://media.example.com/")
	users := &fakeUserRepo{users: []*entity.User{user}}
	shows := &fakeShowRepo{records: map[uuid.UUID]*entity.UserShows{
		user.ID: {UserID: user.ID, SubscribedShows: []int{42}},
	}}
	watched := &fakeWatchedRepo{records: map[uuid.UUID]*entity.WatchedEpisodes{
		user.ID: {UserID: user.ID, Episodes: entity.WatchedShowMap{}},
	}}
	broker := &fakeBroker{ready: true, identity: uuid.New()}
	catalogue := &fakeCatalogue{shows: map[int]*service.CatalogueShow{
		42: {ID: 42, Name: "Test Show", Episodes: []entity.Episode{pastEpisode(42, 1, 3)}},
	}}
	notifier := &fakeNotifier{outcome: service.NotifyAccepted}

	tr := testTracker(users, shows, watched, broker, catalogue, notifier)
	tr.RunPass(context.Background())

	calls := notifier.notified()
	require.Len(t, calls, 1)
	assert.Equal(t, "http://media.example.com/", calls[0].serverURL)
	assert.Equal(t, "token-"+user.ID.String(), calls[0].token)
	assert.Equal(t, 42, calls[0].episode.ShowID)
	assert.Equal(t, 1, calls[0].episode.Season)
	assert.Equal(t, 3, calls[0].episode.Episode)
	assert.Equal(t, "Test Show", calls[0].episode.ShowName)
}

func TestRunPass_WatchedEpisodeIsNotNotified(t *testing.T) {
	user := subscriber("http://media.example.com/")
	users := &fakeUserRepo{users: []*entity.User{user}}
	shows := &fakeShowRepo{records: map[uuid.UUID]*entity.UserShows{
		user.ID: {UserID: user.ID, SubscribedShows: []int{42}},
	}}
	watched := &fakeWatchedRepo{records: map[uuid.UUID]*entity.WatchedEpisodes{
		user.ID: {UserID: user.ID, Episodes: entity.WatchedShowMap{42: {1: {3}}}},
	}}
	broker := &fakeBroker{ready: true, identity: uuid.New()}
	catalogue := &fakeCatalogue{shows: map[int]*service.CatalogueShow{
		42: {ID: 42, Name: "Test Show", Episodes: []entity.Episode{pastEpisode(42, 1, 3)}},
	}}
	notifier := &fakeNotifier{outcome: service.NotifyAccepted}

	tr := testTracker(users, shows, watched, broker, catalogue, notifier)
	tr.RunPass(context.Background())

	assert.Empty(t, notifier.notified())
	assert.Zero(t, broker.exchanges(user.ID))
}

func TestRunPass_FutureEpisodesAreNotNotified(t *testing.T) {
	user := subscriber("http://media.example.com/")
	users := &fakeUserRepo{users: []*entity.User{user}}
	shows := &fakeShowRepo{records: map[uuid.UUID]*entity.UserShows{
		user.ID: {UserID: user.ID, SubscribedShows: []int{42}},
	}}
	watched := &fakeWatchedRepo{records: map[uuid.UUID]*entity.WatchedEpisodes{
		user.ID: {UserID: user.ID, Episodes: entity.WatchedShowMap{}},
	}}
	broker := &fakeBroker{ready: true, identity: uuid.New()}
	catalogue := &fakeCatalogue{shows: map[int]*service.CatalogueShow{
		42: {ID: 42, Name: "Test Show", Episodes: []entity.Episode{futureEpisode(42, 2, 1)}},
	}}
	notifier := &fakeNotifier{outcome: service.NotifyAccepted}

	tr := testTracker(users, shows, watched, broker, catalogue, notifier)
	tr.RunPass(context.Background())

	assert.Empty(t, notifier.notified())
}

func TestRunPass_SkipsUsersWithInvalidServerURL(t *testing.T) {
	malformed := &entity.User{ID: uuid.New(), ServerURL: "not a url"}
	wrongScheme := &entity.User{ID: uuid.New(), ServerURL: "ftp://files.example.com/"}
	users := &fakeUserRepo{users: []*entity.User{malformed, wrongScheme}}
	shows := &fakeShowRepo{records: map[uuid.UUID]*entity.UserShows{
		malformed.ID:   {UserID: malformed.ID, SubscribedShows: []int{1}},
		wrongScheme.ID: {UserID: wrongScheme.ID, SubscribedShows: []int{2}},
	}}
	watched := &fakeWatchedRepo{}
	broker := &fakeBroker{ready: true, identity: uuid.New()}
	catalogue := &fakeCatalogue{}
	notifier := &fakeNotifier{outcome: service.NotifyAccepted}

	tr := testTracker(users, shows, watched, broker, catalogue, notifier)
	tr.RunPass(context.Background())

	assert.Zero(t, catalogue.fetchCount())
	assert.Empty(t, notifier.notified())
}

func TestRunPass_ExcludesOwnServiceIdentity(t *testing.T) {
	self := subscriber("http://media.example.com/")
	users := &fakeUserRepo{users: []*entity.User{self}}
	shows := &fakeShowRepo{records: map[uuid.UUID]*entity.UserShows{
		self.ID: {UserID: self.ID, SubscribedShows: []int{42}},
	}}
	watched := &fakeWatchedRepo{}
	broker := &fakeBroker{ready: true, identity: self.ID}
	catalogue := &fakeCatalogue{}
	notifier := &fakeNotifier{outcome: service.NotifyAccepted}

	tr := testTracker(users, shows, watched, broker, catalogue, notifier)
	tr.RunPass(context.Background())

	assert.Zero(t, catalogue.fetchCount())
	assert.Empty(t, notifier.notified())
}

func TestRunPass_TokenExchangeFailureDropsUserForThePass(t *testing.T) {
	unlucky := subscriber("http://one.example.com/")
	lucky := subscriber("http://two.example.com/")
	users := &fakeUserRepo{users: []*entity.User{unlucky, lucky}}
	shows := &fakeShowRepo{records: map[uuid.UUID]*entity.UserShows{
		unlucky.ID: {UserID: unlucky.ID, SubscribedShows: []int{10, 11}},
		lucky.ID:   {UserID: lucky.ID, SubscribedShows: []int{12}},
	}}
	watched := &fakeWatchedRepo{records: map[uuid.UUID]*entity.WatchedEpisodes{
		unlucky.ID: {UserID: unlucky.ID, Episodes: entity.WatchedShowMap{}},
		lucky.ID:   {UserID: lucky.ID, Episodes: entity.WatchedShowMap{}},
	}}
	broker := &fakeBroker{
		ready:    true,
		identity: uuid.New(),
		errs:     map[uuid.UUID]error{unlucky.ID: errors.New("audience mismatch")},
	}
	catalogue := &fakeCatalogue{shows: map[int]*service.CatalogueShow{
		10: {ID: 10, Name: "A", Episodes: []entity.Episode{pastEpisode(10, 1, 1)}},
		11: {ID: 11, Name: "B", Episodes: []entity.Episode{pastEpisode(11, 1, 1)}},
		12: {ID: 12, Name: "C", Episodes: []entity.Episode{pastEpisode(12, 1, 1)}},
	}}
	notifier := &fakeNotifier{outcome: service.NotifyAccepted}

	tr := testTracker(users, shows, watched, broker, catalogue, notifier)
	tr.RunPass(context.Background())

	calls := notifier.notified()
	require.Len(t, calls, 1)
	assert.Equal(t, "http://two.example.com/", calls[0].serverURL)

	// The failed exchange is memoised: both of the unlucky user's shows
	// share the single failed attempt.
	assert.Equal(t, 1, broker.exchanges(unlucky.ID))
	assert.Equal(t, 1, broker.exchanges(lucky.ID))
}

func TestRunPass_OneTokenExchangePerUserPerPass(t *testing.T) {
	user := subscriber("http://media.example.com/")
	users := &fakeUserRepo{users: []*entity.User{user}}
	shows := &fakeShowRepo{records: map[uuid.UUID]*entity.UserShows{
		user.ID: {UserID: user.ID, SubscribedShows: []int{1, 2, 3}},
	}}
	watched := &fakeWatchedRepo{records: map[uuid.UUID]*entity.WatchedEpisodes{
		user.ID: {UserID: user.ID, Episodes: entity.WatchedShowMap{}},
	}}
	broker := &fakeBroker{ready: true, identity: uuid.New()}
	catalogue := &fakeCatalogue{shows: map[int]*service.CatalogueShow{
		1: {ID: 1, Name: "A", Episodes: []entity.Episode{pastEpisode(1, 1, 1)}},
		2: {ID: 2, Name: "B", Episodes: []entity.Episode{pastEpisode(2, 1, 1)}},
		3: {ID: 3, Name: "C", Episodes: []entity.Episode{pastEpisode(3, 1, 1)}},
	}}
	notifier := &fakeNotifier{outcome: service.NotifyAccepted}

	tr := testTracker(users, shows, watched, broker, catalogue, notifier)
	tr.RunPass(context.Background())

	assert.Len(t, notifier.notified(), 3)
	assert.Equal(t, 1, broker.exchanges(user.ID))
}

func TestRunPass_CatalogueFailureIsIsolated(t *testing.T) {
	user := subscriber("http://media.example.com/")
	other := subscriber("http://other.example.com/")
	users := &fakeUserRepo{users: []*entity.User{user, other}}
	shows := &fakeShowRepo{records: map[uuid.UUID]*entity.UserShows{
		user.ID:  {UserID: user.ID, SubscribedShows: []int{7, 8}},
		other.ID: {UserID: other.ID, SubscribedShows: []int{9}},
	}}
	watched := &fakeWatchedRepo{records: map[uuid.UUID]*entity.WatchedEpisodes{
		user.ID:  {UserID: user.ID, Episodes: entity.WatchedShowMap{}},
		other.ID: {UserID: other.ID, Episodes: entity.WatchedShowMap{}},
	}}
	broker := &fakeBroker{ready: true, identity: uuid.New()}
	catalogue := &fakeCatalogue{
		shows: map[int]*service.CatalogueShow{
			8: {ID: 8, Name: "B", Episodes: []entity.Episode{pastEpisode(8, 1, 1)}},
			9: {ID: 9, Name: "C", Episodes: []entity.Episode{pastEpisode(9, 1, 1)}},
		},
		errs: map[int]error{7: errors.New("catalogue down")},
	}
	notifier := &fakeNotifier{outcome: service.NotifyAccepted}

	tr := testTracker(users, shows, watched, broker, catalogue, notifier)
	tr.RunPass(context.Background())

	calls := notifier.notified()
	require.Len(t, calls, 2)
	notifiedShows := []int{calls[0].episode.ShowID, calls[1].episode.ShowID}
	assert.ElementsMatch(t, []int{8, 9}, notifiedShows)
}

func TestRunPass_SubscriptionErrorSkipsOnlyThatUser(t *testing.T) {
	broken := subscriber("http://one.example.com/")
	healthy := subscriber("http://two.example.com/")
	users := &fakeUserRepo{users: []*entity.User{broken, healthy}}
	shows := &fakeShowRepo{
		records: map[uuid.UUID]*entity.UserShows{
			healthy.ID: {UserID: healthy.ID, SubscribedShows: []int{5}},
		},
		errs: map[uuid.UUID]error{broken.ID: errors.New("storage failure")},
	}
	watched := &fakeWatchedRepo{records: map[uuid.UUID]*entity.WatchedEpisodes{
		healthy.ID: {UserID: healthy.ID, Episodes: entity.WatchedShowMap{}},
	}}
	broker := &fakeBroker{ready: true, identity: uuid.New()}
	catalogue := &fakeCatalogue{shows: map[int]*service.CatalogueShow{
		5: {ID: 5, Name: "E", Episodes: []entity.Episode{pastEpisode(5, 1, 1)}},
	}}
	notifier := &fakeNotifier{outcome: service.NotifyAccepted}

	tr := testTracker(users, shows, watched, broker, catalogue, notifier)
	tr.RunPass(context.Background())

	calls := notifier.notified()
	require.Len(t, calls, 1)
	assert.Equal(t, "http://two.example.com/", calls[0].serverURL)
}

func TestRunPass_MissingWatchStateSkipsUser(t *testing.T) {
	user := subscriber("http://media.example.com/")
	users := &fakeUserRepo{users: []*entity.User{user}}
	shows := &fakeShowRepo{records: map[uuid.UUID]*entity.UserShows{
		user.ID: {UserID: user.ID, SubscribedShows: []int{42}},
	}}
	watched := &fakeWatchedRepo{}
	broker := &fakeBroker{ready: true, identity: uuid.New()}
	catalogue := &fakeCatalogue{}
	notifier := &fakeNotifier{outcome: service.NotifyAccepted}

	tr := testTracker(users, shows, watched, broker, catalogue, notifier)
	tr.RunPass(context.Background())

	assert.Zero(t, catalogue.fetchCount())
	assert.Empty(t, notifier.notified())
}

func TestRunPass_NotificationsAscendBySeasonAndEpisode(t *testing.T) {
	user := subscriber("http://media.example.com/")
	users := &fakeUserRepo{users: []*entity.User{user}}
	shows := &fakeShowRepo{records: map[uuid.UUID]*entity.UserShows{
		user.ID: {UserID: user.ID, SubscribedShows: []int{42}},
	}}
	watched := &fakeWatchedRepo{records: map[uuid.UUID]*entity.WatchedEpisodes{
		user.ID: {UserID: user.ID, Episodes: entity.WatchedShowMap{}},
	}}
	broker := &fakeBroker{ready: true, identity: uuid.New()}
	catalogue := &fakeCatalogue{shows: map[int]*service.CatalogueShow{
		42: {ID: 42, Name: "Test Show", Episodes: []entity.Episode{
			pastEpisode(42, 2, 1),
			pastEpisode(42, 1, 4),
			pastEpisode(42, 1, 2),
		}},
	}}
	notifier := &fakeNotifier{outcome: service.NotifyAccepted}

	tr := testTracker(users, shows, watched, broker, catalogue, notifier)
	tr.RunPass(context.Background())

	calls := notifier.notified()
	require.Len(t, calls, 3)
	assert.Equal(t, "S01E02", calls[0].episode.String())
	assert.Equal(t, "S01E04", calls[1].episode.String())
	assert.Equal(t, "S02E01", calls[2].episode.String())
}

func TestRunPass_AlreadyPresentOutcomeDoesNotStopTheLoop(t *testing.T) {
	user := subscriber("http://media.example.com/")
	users := &fakeUserRepo{users: []*entity.User{user}}
	shows := &fakeShowRepo{records: map[uuid.UUID]*entity.UserShows{
		user.ID: {UserID: user.ID, SubscribedShows: []int{42}},
	}}
	watched := &fakeWatchedRepo{records: map[uuid.UUID]*entity.WatchedEpisodes{
		user.ID: {UserID: user.ID, Episodes: entity.WatchedShowMap{}},
	}}
	broker := &fakeBroker{ready: true, identity: uuid.New()}
	catalogue := &fakeCatalogue{shows: map[int]*service.CatalogueShow{
		42: {ID: 42, Name: "Test Show", Episodes: []entity.Episode{
			pastEpisode(42, 1, 1),
			pastEpisode(42, 1, 2),
			pastEpisode(42, 1, 3),
		}},
	}}
	notifier := &fakeNotifier{outcome: service.NotifyAlreadyPresent}

	tr := testTracker(users, shows, watched, broker, catalogue, notifier)
	tr.RunPass(context.Background())

	// Each remaining episode is still attempted exactly once, never retried.
	calls := notifier.notified()
	require.Len(t, calls, 3)
	attempted := []string{
		calls[0].episode.String(),
		calls[1].episode.String(),
		calls[2].episode.String(),
	}
	assert.Equal(t, []string{"S01E01", "S01E02", "S01E03"}, attempted)
}

func TestRunPass_ForbiddenOutcomeDoesNotStopTheLoop(t *testing.T) {
	user := subscriber("http://media.example.com/")
	users := &fakeUserRepo{users: []*entity.User{user}}
	shows := &fakeShowRepo{records: map[uuid.UUID]*entity.UserShows{
		user.ID: {UserID: user.ID, SubscribedShows: []int{42}},
	}}
	watched := &fakeWatchedRepo{records: map[uuid.UUID]*entity.WatchedEpisodes{
		user.ID: {UserID: user.ID, Episodes: entity.WatchedShowMap{}},
	}}
	broker := &fakeBroker{ready: true, identity: uuid.New()}
	catalogue := &fakeCatalogue{shows: map[int]*service.CatalogueShow{
		42: {ID: 42, Name: "Test Show", Episodes: []entity.Episode{
			pastEpisode(42, 1, 1),
			pastEpisode(42, 2, 1),
		}},
	}}
	notifier := &fakeNotifier{outcome: service.NotifyForbidden}

	tr := testTracker(users, shows, watched, broker, catalogue, notifier)
	tr.RunPass(context.Background())

	calls := notifier.notified()
	require.Len(t, calls, 2)
	assert.Equal(t, "S01E01", calls[0].episode.String())
	assert.Equal(t, "S02E01", calls[1].episode.String())
	assert.Equal(t, 1, broker.exchanges(user.ID))
}

func TestRunPass_OverlappingFireIsSkipped(t *testing.T) {
	users := &fakeUserRepo{}
	tr := testTracker(users, &fakeShowRepo{}, &fakeWatchedRepo{},
		&fakeBroker{ready: true}, &fakeCatalogue{}, &fakeNotifier{})

	tr.passInFlight.Store(true)
	tr.RunPass(context.Background())

	assert.Zero(t, users.calls)

	tr.passInFlight.Store(false)
	tr.RunPass(context.Background())
	assert.Equal(t, 1, users.calls)
}

func TestServe_DisabledWhenBrokerNotReady(t *testing.T) {
	users := &fakeUserRepo{users: []*entity.User{subscriber("http://media.example.com/")}}
	tr := testTracker(users, &fakeShowRepo{}, &fakeWatchedRepo{},
		&fakeBroker{ready: false}, &fakeCatalogue{}, &fakeNotifier{})

	done := make(chan error, 1)
	go func() { done <- tr.Serve(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("tracker should return immediately when disabled")
	}

	assert.Zero(t, users.calls)
}

func TestServe_RunsImmediatePassAndStops(t *testing.T) {
	user := subscriber("http://media.example.com/")
	users := &fakeUserRepo{users: []*entity.User{user}}
	tr := testTracker(users, &fakeShowRepo{}, &fakeWatchedRepo{},
		&fakeBroker{ready: true, identity: uuid.New()}, &fakeCatalogue{}, &fakeNotifier{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tr.Serve(ctx) }()

	require.Eventually(t, func() bool {
		users.mu.Lock()
		defer users.mu.Unlock()

		return users.calls == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("tracker did not stop on context cancellation")
	}
}
