package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWatchedServiceForTest(repo *fakeWatchedRepo) *watchedService {
	return &watchedService{
		watchedRepo: repo,
		txManager:   &fakeTxManager{watchedRepo: repo},
		logger:      discardLogger(),
	}
}

func TestWatchedService_GetUserWatched_EmptyMapWhenAbsent(t *testing.T) {
	svc := newWatchedServiceForTest(newFakeWatchedRepo())

	watched, err := svc.GetUserWatched(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, watched)
	assert.Empty(t, watched)
}

func TestWatchedService_GetUserWatched_PropagatesStorageError(t *testing.T) {
	repo := newFakeWatchedRepo()
	repo.findErr = errors.New("storage down")
	svc := newWatchedServiceForTest(repo)

	_, err := svc.GetUserWatched(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestWatchedService_SetWatchedSeason_CreatesRecordOnFirstUse(t *testing.T) {
	repo := newFakeWatchedRepo()
	svc := newWatchedServiceForTest(repo)
	userID := uuid.New()

	require.NoError(t, svc.SetWatchedSeason(context.Background(), userID, 42, 1, []int{1, 2, 3}))

	record := repo.records[userID]
	require.NotNil(t, record)
	assert.Equal(t, []int{1, 2, 3}, record.Episodes[42][1])
}

func TestWatchedService_SetWatchedSeason_ReplacesSeasonList(t *testing.T) {
	repo := newFakeWatchedRepo()
	svc := newWatchedServiceForTest(repo)
	userID := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.SetWatchedSeason(ctx, userID, 42, 1, []int{1, 2, 3}))
	require.NoError(t, svc.SetWatchedSeason(ctx, userID, 42, 1, []int{4}))
	require.NoError(t, svc.SetWatchedSeason(ctx, userID, 42, 2, []int{1}))

	record := repo.records[userID]
	assert.Equal(t, []int{4}, record.Episodes[42][1])
	assert.Equal(t, []int{1}, record.Episodes[42][2])
}

func TestWatchedService_SetWatchedSeason_LeavesOtherShowsAlone(t *testing.T) {
	repo := newFakeWatchedRepo()
	svc := newWatchedServiceForTest(repo)
	userID := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.SetWatchedSeason(ctx, userID, 42, 1, []int{1}))
	require.NoError(t, svc.SetWatchedSeason(ctx, userID, 7, 1, []int{2}))

	record := repo.records[userID]
	assert.Equal(t, []int{1}, record.Episodes[42][1])
	assert.Equal(t, []int{2}, record.Episodes[7][1])
}
