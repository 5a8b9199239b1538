package repository

import "context"

// RepositoryFactory creates repository instances bound to a single transaction.
type RepositoryFactory interface {
	NewShowRepository() ShowRepository
	NewWatchedRepository() WatchedRepository
}

// TransactionManager runs multi-step repository work atomically.
type TransactionManager interface {
	// Execute runs fn inside one transaction, committing on nil and
	// rolling back on error or panic.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
