package postgres

import (
	"context"

	"liveseries/internal/domain/entity"
	domainerrors "liveseries/internal/domain/errors"
	"liveseries/internal/domain/repository"
	"liveseries/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// showRepository implements repository.ShowRepository using GORM.
type showRepository struct {
	db *gorm.DB
}

// NewShowRepository is the constructor for showRepository.
func NewShowRepository(db *gorm.DB) repository.ShowRepository {
	return &showRepository{db: db}
}

// FindAll retrieves every user's show record.
func (repo *showRepository) FindAll(ctx context.Context) ([]*entity.UserShows, error) {
	var showMs []model.UserShowsModel
	if err := repo.db.WithContext(ctx).Find(&showMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user shows")
	}

	records := make([]*entity.UserShows, 0, len(showMs))
	for i := range showMs {
		records = append(records, toUserShowsDomain(&showMs[i]))
	}

	return records, nil
}

// FindByUserID retrieves one user's show record.
func (repo *showRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserShows, error) {
	var showM model.UserShowsModel
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&showM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserShowsNotFound
		}

		return nil, errors.Wrap(err, "failed to find user shows")
	}

	return toUserShowsDomain(&showM), nil
}

// Save creates or replaces a user's show record.
func (repo *showRepository) Save(ctx context.Context, shows *entity.UserShows) error {
	showM := fromUserShowsDomain(shows)
	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"liked_shows", "subscribed_shows", "updated_at"}),
	}).Create(showM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save user shows")
	}

	shows.UpdatedAt = showM.UpdatedAt

	return nil
}

// toUserShowsDomain converts a GORM UserShowsModel to a domain UserShows entity.
func toUserShowsDomain(data *model.UserShowsModel) *entity.UserShows {
	if data == nil {
		return nil
	}

	return &entity.UserShows{
		UserID:          data.UserID,
		LikedShows:      data.LikedShows,
		SubscribedShows: data.SubscribedShows,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromUserShowsDomain converts a domain UserShows entity to a GORM UserShowsModel.
func fromUserShowsDomain(data *entity.UserShows) *model.UserShowsModel {
	if data == nil {
		return nil
	}

	liked := data.LikedShows
	if liked == nil {
		liked = []int{}
	}
	subscribed := data.SubscribedShows
	if subscribed == nil {
		subscribed = []int{}
	}

	return &model.UserShowsModel{
		UserID:          data.UserID,
		LikedShows:      datatypes.NewJSONSlice(liked),
		SubscribedShows: datatypes.NewJSONSlice(subscribed),
		UpdatedAt:       data.UpdatedAt,
	}
}
