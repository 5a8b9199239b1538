package impl

import (
	"context"

	"liveseries/internal/domain/repository"
	"liveseries/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type updatedService struct {
	updatedRepo repository.UpdatedRepository
}

// UpdatedServiceParams holds dependencies for UpdatedService, injected by Fx.
type UpdatedServiceParams struct {
	fx.In

	UpdatedRepo repository.UpdatedRepository
}

// NewUpdatedService creates a new updated service instance
func NewUpdatedService(params UpdatedServiceParams) usecase.UpdatedUsecase {
	return &updatedService{updatedRepo: params.UpdatedRepo}
}

// LastModified returns a collection-name -> unix-millisecond map
func (s *updatedService) LastModified(ctx context.Context) (map[string]int64, error) {
	result, err := s.updatedRepo.LastModified(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read last modification times")
	}

	return result, nil
}
