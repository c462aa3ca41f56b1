// Package postgres implements the domain repositories on top of GORM.
// The same code runs against PostgreSQL in production and SQLite locally.
package postgres

import (
	"context"
	"errors"

	"callcenter-service/domain"
	"callcenter-service/domain/repository"
	"callcenter-service/pkg/logger"

	"gorm.io/gorm"
)

type txKey struct{}

// conn returns the transaction carried by ctx, or db when there is none.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// inTransaction runs fn in a transaction, nested as a savepoint when ctx
// already carries one. fn receives both the transaction handle and a context
// that repository calls can use to join it.
func inTransaction(ctx context.Context, db *gorm.DB, op string, fn func(tx *gorm.DB, txCtx context.Context) error) error {
	err := conn(ctx, db).Transaction(func(tx *gorm.DB) error {
		return fn(tx, context.WithValue(ctx, txKey{}, tx))
	})
	return classify(op, err)
}

// classify leaves categorised errors untouched and marks anything else,
// such as a failed commit, as unexpected.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return domain.Unexpected(op, err)
}

type transactor struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewTransactor creates a Transactor over db.
func NewTransactor(db *gorm.DB, logger logger.LoggerInterface) repository.Transactor {
	return &transactor{db: db, logger: logger}
}

// ExecuteInTransaction executes fn within a database transaction
func (t *transactor) ExecuteInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	t.logger.DebugContext(ctx, "Executing operation in transaction")
	return inTransaction(ctx, t.db, "transaction", func(_ *gorm.DB, txCtx context.Context) error {
		return fn(txCtx)
	})
}
