package postgres

import (
	"context"

	"liveseries/internal/domain/entity"
	domainerrors "liveseries/internal/domain/errors"
	"liveseries/internal/domain/repository"
	"liveseries/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pageRepository implements repository.PageRepository using GORM.
type pageRepository struct {
	db *gorm.DB
}

// NewPageRepository is the constructor for pageRepository.
func NewPageRepository(db *gorm.DB) repository.PageRepository {
	return &pageRepository{db: db}
}

// FindAll retrieves every page ordered by ID.
func (repo *pageRepository) FindAll(ctx context.Context) ([]*entity.Page, error) {
	var pageMs []model.PageModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&pageMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pages")
	}

	pages := make([]*entity.Page, 0, len(pageMs))
	for i := range pageMs {
		pages = append(pages, toPageDomain(&pageMs[i]))
	}

	return pages, nil
}

// FindByID retrieves a single page.
func (repo *pageRepository) FindByID(ctx context.Context, id int) (*entity.Page, error) {
	var pageM model.PageModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&pageM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPageNotFound
		}

		return nil, errors.Wrap(err, "failed to find page")
	}

	return toPageDomain(&pageM), nil
}

// Create persists a new page and fills in its assigned ID.
func (repo *pageRepository) Create(ctx context.Context, page *entity.Page) error {
	pageM := fromPageDomain(page)
	pageM.ID = 0
	if err := repo.db.WithContext(ctx).Create(pageM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPageAlreadyExists.WrapMessage("page url already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create page")
	}

	page.ID = pageM.ID
	page.CreatedAt = pageM.CreatedAt
	page.UpdatedAt = pageM.UpdatedAt

	return nil
}

// Update modifies an existing page.
func (repo *pageRepository) Update(ctx context.Context, page *entity.Page) error {
	pageM := fromPageDomain(page)
	result := repo.db.WithContext(ctx).Model(&model.PageModel{}).Where("id = ?", page.ID).
		Updates(map[string]any{
			"title":        pageM.Title,
			"url":          pageM.URL,
			"content":      pageM.Content,
			"should_fetch": pageM.ShouldFetch,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrPageAlreadyExists.WrapMessage("page url already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update page")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPageNotFound
	}

	return nil
}

// Delete removes a page.
func (repo *pageRepository) Delete(ctx context.Context, id int) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete page")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPageNotFound
	}

	return nil
}

// toPageDomain converts a GORM PageModel to a domain Page entity.
func toPageDomain(data *model.PageModel) *entity.Page {
	if data == nil {
		return nil
	}

	return &entity.Page{
		ID:          data.ID,
		Title:       data.Title,
		URL:         data.URL,
		Content:     data.Content,
		ShouldFetch: data.ShouldFetch,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPageDomain converts a domain Page entity to a GORM PageModel.
func fromPageDomain(data *entity.Page) *model.PageModel {
	if data == nil {
		return nil
	}

	return &model.PageModel{
		ID:          data.ID,
		Title:       data.Title,
		URL:         data.URL,
		Content:     data.Content,
		ShouldFetch: data.ShouldFetch,
	}
}
