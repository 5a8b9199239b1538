package usecase

import "context"

// UpdatedUsecase reports per-collection last-modified instants so the
// frontend can decide what to refetch.
type UpdatedUsecase interface {
	// LastModified returns a collection-name -> unix-millisecond map
	LastModified(ctx context.Context) (map[string]int64, error)
}
