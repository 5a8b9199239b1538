package postgres

import (
	"context"
	"time"

	"liveseries/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Collection names exposed by the updated endpoint. They match the route
// prefixes the frontend polls.
const (
	CollectionShows   = "liveSeriesShows"
	CollectionWatched = "liveSeriesWatchedEpisodes"
	CollectionPages   = "pages"
)

// updatedRepository reports per-collection last-modified instants straight
// from the tables' updated_at columns.
type updatedRepository struct {
	db *gorm.DB
}

// NewUpdatedRepository is the constructor for updatedRepository.
func NewUpdatedRepository(db *gorm.DB) repository.UpdatedRepository {
	return &updatedRepository{db: db}
}

// LastModified returns a collection-name -> unix-millisecond map.
func (repo *updatedRepository) LastModified(ctx context.Context) (map[string]int64, error) {
	tables := map[string]string{
		CollectionShows:   "user_shows",
		CollectionWatched: "watched_episodes",
		CollectionPages:   "pages",
	}

	result := make(map[string]int64, len(tables))
	for name, table := range tables {
		var lastModified *time.Time
		err := repo.db.WithContext(ctx).Table(table).
			Select("max(updated_at)").Scan(&lastModified).Error
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read last modification of %s", table)
		}

		if lastModified != nil {
			result[name] = lastModified.UnixMilli()
		}
	}

	return result, nil
}
