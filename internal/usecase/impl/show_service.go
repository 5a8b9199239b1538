// Package impl contains the concrete application services behind the
// usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "liveseries/internal/delivery/context"
	"liveseries/internal/domain/entity"
	domainerrors "liveseries/internal/domain/errors"
	"liveseries/internal/domain/repository"
	"liveseries/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// showListKind selects which of the two show lists an operation targets.
type showListKind int

const (
	likedList showListKind = iota
	subscribedList
)

type showService struct {
	showRepo  repository.ShowRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ShowServiceParams holds dependencies for ShowService, injected by Fx.
type ShowServiceParams struct {
	fx.In

	ShowRepo  repository.ShowRepository
	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewShowService creates a new show service instance
func NewShowService(params ShowServiceParams) usecase.ShowUsecase {
	return &showService{
		showRepo:  params.ShowRepo,
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *showService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetAllShows retrieves every user's show record
func (s *showService) GetAllShows(ctx context.Context) ([]*entity.UserShows, error) {
	records, err := s.showRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list show records")
	}

	return records, nil
}

// GetUserShows retrieves one user's show record. A user who never touched
// the feature gets an empty record, not an error.
func (s *showService) GetUserShows(ctx context.Context, userID uuid.UUID) (*entity.UserShows, error) {
	record, err := s.showRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserShowsNotFound) {
			return emptyUserShows(userID), nil
		}

		return nil, errors.Wrap(err, "failed to find user show record")
	}

	return record, nil
}

// AddLikedShow adds a show to the user's liked list
func (s *showService) AddLikedShow(ctx context.Context, userID uuid.UUID, showID int) error {
	return s.modifyList(ctx, userID, likedList, showID, true)
}

// RemoveLikedShow removes a show from the user's liked list
func (s *showService) RemoveLikedShow(ctx context.Context, userID uuid.UUID, showID int) error {
	return s.modifyList(ctx, userID, likedList, showID, false)
}

// AddSubscribedShow adds a show to the user's subscribed list
func (s *showService) AddSubscribedShow(ctx context.Context, userID uuid.UUID, showID int) error {
	return s.modifyList(ctx, userID, subscribedList, showID, true)
}

// RemoveSubscribedShow removes a show from the user's subscribed list
func (s *showService) RemoveSubscribedShow(ctx context.Context, userID uuid.UUID, showID int) error {
	return s.modifyList(ctx, userID, subscribedList, showID, false)
}

// modifyList runs one read-modify-write cycle on a user's show record
// inside a transaction, creating the record on first use. Adding a show
// already on the list, or removing one that is not, is a conflict.
func (s *showService) modifyList(ctx context.Context, userID uuid.UUID, kind showListKind, showID int, add bool) error {
	s.log(ctx).Info("Modifying show list",
		slog.String("userId", userID.String()),
		slog.Int("showId", showID),
		slog.Bool("add", add))

	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		showRepo := repoFactory.NewShowRepository()

		record, err := showRepo.FindByUserID(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrUserShowsNotFound) {
				return errors.Wrap(err, "failed to find user show record")
			}
			record = emptyUserShows(userID)
		}

		list := record.LikedShows
		if kind == subscribedList {
			list = record.SubscribedShows
		}

		present := slices.Contains(list, showID)
		switch {
		case add && present:
			return domainerrors.ErrShowAlreadyPresent
		case !add && !present:
			return domainerrors.ErrShowNotPresent
		case add:
			list = append(list, showID)
		default:
			list = slices.DeleteFunc(list, func(id int) bool { return id == showID })
		}

		if kind == subscribedList {
			record.SubscribedShows = list
		} else {
			record.LikedShows = list
		}

		return showRepo.Save(ctx, record)
	})
}

func emptyUserShows(userID uuid.UUID) *entity.UserShows {
	return &entity.UserShows{
		UserID:          userID,
		LikedShows:      []int{},
		SubscribedShows: []int{},
	}
}
