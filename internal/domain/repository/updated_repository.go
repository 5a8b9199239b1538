package repository

import "context"

// UpdatedRepository reports the last-modified instant of each mutable
// collection, keyed by collection name, as unix milliseconds.
type UpdatedRepository interface {
	// LastModified returns a collection-name -> unix-millisecond map.
	LastModified(ctx context.Context) (map[string]int64, error)
}
