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

// watchedRepository implements repository.WatchedRepository using GORM.
type watchedRepository struct {
	db *gorm.DB
}

// NewWatchedRepository is the constructor for watchedRepository.
func NewWatchedRepository(db *gorm.DB) repository.WatchedRepository {
	return &watchedRepository{db: db}
}

// FindAll retrieves every user's watched-episodes record.
func (repo *watchedRepository) FindAll(ctx context.Context) ([]*entity.WatchedEpisodes, error) {
	var watchedMs []model.WatchedEpisodesModel
	if err := repo.db.WithContext(ctx).Find(&watchedMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list watched episodes")
	}

	records := make([]*entity.WatchedEpisodes, 0, len(watchedMs))
	for i := range watchedMs {
		records = append(records, toWatchedDomain(&watchedMs[i]))
	}

	return records, nil
}

// FindByUserID retrieves one user's watched-episodes record.
func (repo *watchedRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.WatchedEpisodes, error) {
	var watchedM model.WatchedEpisodesModel
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&watchedM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWatchedNotFound
		}

		return nil, errors.Wrap(err, "failed to find watched episodes")
	}

	return toWatchedDomain(&watchedM), nil
}

// Save creates or replaces a user's watched-episodes record.
func (repo *watchedRepository) Save(ctx context.Context, watched *entity.WatchedEpisodes) error {
	watchedM := fromWatchedDomain(watched)
	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"episodes", "updated_at"}),
	}).Create(watchedM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save watched episodes")
	}

	watched.UpdatedAt = watchedM.UpdatedAt

	return nil
}

// toWatchedDomain converts a GORM WatchedEpisodesModel to a domain WatchedEpisodes entity.
func toWatchedDomain(data *model.WatchedEpisodesModel) *entity.WatchedEpisodes {
	if data == nil {
		return nil
	}

	episodes := entity.WatchedShowMap(data.Episodes.Data())
	if episodes == nil {
		episodes = entity.WatchedShowMap{}
	}

	return &entity.WatchedEpisodes{
		UserID:    data.UserID,
		Episodes:  episodes,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromWatchedDomain converts a domain WatchedEpisodes entity to a GORM WatchedEpisodesModel.
func fromWatchedDomain(data *entity.WatchedEpisodes) *model.WatchedEpisodesModel {
	if data == nil {
		return nil
	}

	episodes := model.WatchedShowsJSON(data.Episodes)
	if episodes == nil {
		episodes = model.WatchedShowsJSON{}
	}

	return &model.WatchedEpisodesModel{
		UserID:    data.UserID,
		Episodes:  datatypes.NewJSONType(episodes),
		UpdatedAt: data.UpdatedAt,
	}
}
