package postgres

import (
	"context"
	"errors"

	"callcenter-service/domain"
	"callcenter-service/domain/model"
	"callcenter-service/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// writeCheck validates an entity inside the write transaction, before it is
// inserted or replaced.
type writeCheck[T any] func(tx *gorm.DB, entity *T) error

// deleteHook runs after the target row is locked and before it is removed.
// It joins the delete transaction through txCtx.
type deleteHook[K comparable] func(txCtx context.Context, id K) error

// genericRepository is the GORM implementation of repository.Generic and
// repository.Paged shared by every entity. Every table is keyed by an "id"
// column holding the caller-supplied primary key.
type genericRepository[T model.Keyed[K], K comparable] struct {
	db          *gorm.DB
	logger      logger.LoggerInterface
	entity      string
	maxPageSize int
	checks      []writeCheck[T]
	onDelete    []deleteHook[K]
}

func newGenericRepository[T model.Keyed[K], K comparable](db *gorm.DB, appLogger logger.LoggerInterface, entity string, opts ...Option) *genericRepository[T, K] {
	o := collectOptions(opts)
	return &genericRepository[T, K]{
		db:          db,
		logger:      appLogger,
		entity:      entity,
		maxPageSize: o.maxPageSize,
	}
}

// GetAll returns every record ordered by primary key.
func (r *genericRepository[T, K]) GetAll(ctx context.Context) ([]T, error) {
	r.logger.InfoContext(ctx, "Listing all records", "entity", r.entity)
	items := make([]T, 0)
	if err := conn(ctx, r.db).Order("id ASC").Find(&items).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list records", "entity", r.entity, "error", err)
		return nil, domain.Unexpected("list "+r.entity, err)
	}
	r.logger.InfoContext(ctx, "Records listed successfully", "entity", r.entity, "count", len(items))
	return items, nil
}

// GetByID retrieves a record by primary key. An absent key yields (nil, nil).
func (r *genericRepository[T, K]) GetByID(ctx context.Context, id K) (*T, error) {
	r.logger.InfoContext(ctx, "Getting record by ID", "entity", r.entity, "id", id)
	var entity T
	err := conn(ctx, r.db).Where("id = ?", id).Take(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.WarnContext(ctx, "Record not found by ID", "entity", r.entity, "id", id)
		return nil, nil
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to get record by ID", "entity", r.entity, "id", id, "error", err)
		return nil, domain.Unexpected("get "+r.entity, err)
	}
	r.logger.InfoContext(ctx, "Record retrieved by ID", "entity", r.entity, "id", id)
	return &entity, nil
}

// Add inserts entity under its own key.
func (r *genericRepository[T, K]) Add(ctx context.Context, entity *T) error {
	if entity == nil {
		r.logger.WarnContext(ctx, "Refusing to add nil record", "entity", r.entity)
		return domain.NilEntity(r.entity)
	}
	id := (*entity).PrimaryKey()
	r.logger.InfoContext(ctx, "Creating record", "entity", r.entity, "id", id)

	err := inTransaction(ctx, r.db, "add "+r.entity, func(tx *gorm.DB, _ context.Context) error {
		var count int64
		if err := tx.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
			return domain.Unexpected("add "+r.entity, err)
		}
		if count > 0 {
			return domain.Conflict(r.entity, id)
		}
		if err := r.runChecks(tx, entity); err != nil {
			return err
		}
		if err := tx.Create(entity).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.Conflict(r.entity, id)
			}
			return domain.Unexpected("add "+r.entity, err)
		}
		return nil
	})
	if err != nil {
		r.logFailure(ctx, "Failed to create record", id, err)
		return err
	}
	r.logger.InfoContext(ctx, "Record created successfully", "entity", r.entity, "id", id)
	return nil
}

// Update replaces every column of the record stored under entity's key,
// zero values included.
func (r *genericRepository[T, K]) Update(ctx context.Context, entity *T) error {
	if entity == nil {
		r.logger.WarnContext(ctx, "Refusing to update nil record", "entity", r.entity)
		return domain.NilEntity(r.entity)
	}
	id := (*entity).PrimaryKey()
	r.logger.InfoContext(ctx, "Updating record", "entity", r.entity, "id", id)

	err := inTransaction(ctx, r.db, "update "+r.entity, func(tx *gorm.DB, _ context.Context) error {
		if err := r.lock(tx, id); err != nil {
			return err
		}
		if err := r.runChecks(tx, entity); err != nil {
			return err
		}
		if err := tx.Model(new(T)).Where("id = ?", id).Select("*").Updates(entity).Error; err != nil {
			return domain.Unexpected("update "+r.entity, err)
		}
		return nil
	})
	if err != nil {
		r.logFailure(ctx, "Failed to update record", id, err)
		return err
	}
	r.logger.InfoContext(ctx, "Record updated successfully", "entity", r.entity, "id", id)
	return nil
}

// Delete removes the record stored under id.
func (r *genericRepository[T, K]) Delete(ctx context.Context, id K) error {
	r.logger.InfoContext(ctx, "Deleting record", "entity", r.entity, "id", id)

	err := inTransaction(ctx, r.db, "delete "+r.entity, func(tx *gorm.DB, txCtx context.Context) error {
		if err := r.lock(tx, id); err != nil {
			return err
		}
		for _, hook := range r.onDelete {
			if err := hook(txCtx, id); err != nil {
				return err
			}
		}
		if err := tx.Where("id = ?", id).Delete(new(T)).Error; err != nil {
			return domain.Unexpected("delete "+r.entity, err)
		}
		return nil
	})
	if err != nil {
		r.logFailure(ctx, "Failed to delete record", id, err)
		return err
	}
	r.logger.InfoContext(ctx, "Record deleted successfully", "entity", r.entity, "id", id)
	return nil
}

// lock reads the row under id FOR UPDATE, failing with NotFound when absent.
func (r *genericRepository[T, K]) lock(tx *gorm.DB, id K) error {
	var existing T
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).Take(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound(r.entity, id)
	}
	if err != nil {
		return domain.Unexpected("lock "+r.entity, err)
	}
	return nil
}

func (r *genericRepository[T, K]) runChecks(tx *gorm.DB, entity *T) error {
	for _, check := range r.checks {
		if err := check(tx, entity); err != nil {
			return err
		}
	}
	return nil
}

func (r *genericRepository[T, K]) logFailure(ctx context.Context, msg string, id K, err error) {
	if errors.Is(err, domain.ErrUnexpected) {
		r.logger.ErrorContext(ctx, msg, "entity", r.entity, "id", id, "error", err)
		return
	}
	r.logger.WarnContext(ctx, msg, "entity", r.entity, "id", id, "error", err)
}
