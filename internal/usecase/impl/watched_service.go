package impl

import (
	"context"
	"log/slog"

	deliverycontext "liveseries/internal/delivery/context"
	"liveseries/internal/domain/entity"
	"liveseries/internal/domain/repository"
	"liveseries/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type watchedService struct {
	watchedRepo repository.WatchedRepository
	txManager   repository.TransactionManager
	logger      *slog.Logger
}

// WatchedServiceParams holds dependencies for WatchedService, injected by Fx.
type WatchedServiceParams struct {
	fx.In

	WatchedRepo repository.WatchedRepository
	TxManager   repository.TransactionManager
	Logger      *slog.Logger
}

// NewWatchedService creates a new watched-episodes service instance
func NewWatchedService(params WatchedServiceParams) usecase.WatchedUsecase {
	return &watchedService{
		watchedRepo: params.WatchedRepo,
		txManager:   params.TxManager,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *watchedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetAllWatched retrieves every user's watched-episodes record
func (s *watchedService) GetAllWatched(ctx context.Context) ([]*entity.WatchedEpisodes, error) {
	records, err := s.watchedRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list watched records")
	}

	return records, nil
}

// GetUserWatched retrieves one user's watched map, empty when absent.
func (s *watchedService) GetUserWatched(ctx context.Context, userID uuid.UUID) (entity.WatchedShowMap, error) {
	record, err := s.watchedRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrWatchedNotFound) {
			return entity.WatchedShowMap{}, nil
		}

		return nil, errors.Wrap(err, "failed to find watched record")
	}

	return record.Episodes, nil
}

// SetWatchedSeason replaces the watched episode list for one season of one
// show, creating the user's record on first use.
func (s *watchedService) SetWatchedSeason(ctx context.Context, userID uuid.UUID, showID, season int, episodes []int) error {
	s.log(ctx).Info("Replacing watched season",
		slog.String("userId", userID.String()),
		slog.Int("showId", showID),
		slog.Int("season", season))

	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		watchedRepo := repoFactory.NewWatchedRepository()

		record, err := watchedRepo.FindByUserID(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrWatchedNotFound) {
				return errors.Wrap(err, "failed to find watched record")
			}
			record = &entity.WatchedEpisodes{
				UserID:   userID,
				Episodes: entity.WatchedShowMap{},
			}
		}

		record.Episodes.SetSeason(showID, season, episodes)

		return watchedRepo.Save(ctx, record)
	})
}
