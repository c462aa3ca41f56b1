// Package repository defines the interfaces for data access layer
package repository

import (
	"context"

	"callcenter-service/domain/model"
)

// Generic is the uniform CRUD contract shared by every entity type.
// T is the entity, K the type of its primary key.
type Generic[T any, K comparable] interface {
	// GetAll returns every stored record as a detached copy.
	// An empty store yields an empty, non-nil slice.
	GetAll(ctx context.Context) ([]T, error)
	// GetByID returns the record stored under id.
	// An absent key is not an error: it returns (nil, nil).
	GetByID(ctx context.Context, id K) (*T, error)
	// Add inserts entity under its caller-supplied key and commits.
	// Returns domain.ErrInvalidArgument for a nil entity and
	// domain.ErrConflict when the key is already taken.
	Add(ctx context.Context, entity *T) error
	// Update replaces every field of the record stored under entity's key.
	// Returns domain.ErrInvalidArgument for a nil entity and
	// domain.ErrNotFound when no record exists under the key.
	Update(ctx context.Context, entity *T) error
	// Delete removes the record stored under id.
	// Returns domain.ErrNotFound when the key is absent.
	Delete(ctx context.Context, id K) error
}

// Paged serves bounded slices of a collection in ascending key order.
type Paged[T any] interface {
	// GetPage returns page pageNumber of size pageSize together with the
	// collection size. pageNumber < 1 is treated as 1 and pageSize < 1 as 10.
	// A page past the end has no items but still echoes the request.
	GetPage(ctx context.Context, pageNumber, pageSize int) (*model.Page[T], error)
}

// Transactor runs a unit of work in one database transaction.
type Transactor interface {
	// ExecuteInTransaction executes fn within a transaction. Repository calls
	// made with txCtx join that transaction. The transaction commits when fn
	// returns nil and rolls back otherwise.
	ExecuteInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}
