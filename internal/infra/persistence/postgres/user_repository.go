package postgres

import (
	"context"

	"liveseries/internal/domain/entity"
	"liveseries/internal/domain/repository"
	"liveseries/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
// The users table is owned by the auth service, so there are no writers here.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindWithServerURL retrieves every user with a non-empty server URL.
func (repo *userRepository) FindWithServerURL(ctx context.Context) ([]*entity.User, error) {
	var userMs []model.UserModel
	err := repo.db.WithContext(ctx).Where("server_url <> ''").Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users with server url")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		ServerURL: data.ServerURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
