// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"liveseries/internal/domain/entity"
)

// UserRepository defines read access to the account table owned by the
// external auth service. This backend never writes to it.
type UserRepository interface {
	// FindWithServerURL retrieves every user that has a non-empty remote
	// server URL recorded. URL well-formedness is the caller's concern.
	FindWithServerURL(ctx context.Context) ([]*entity.User, error)
}
