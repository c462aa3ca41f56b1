package postgres

import (
	"context"
	"math"

	"callcenter-service/domain"
	"callcenter-service/domain/model"

	"gorm.io/gorm"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

// normalizePage clamps out-of-range paging input.
func normalizePage(pageNumber, pageSize, maxPageSize int) (int, int) {
	if pageNumber < 1 {
		pageNumber = defaultPageNumber
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if maxPageSize > 0 && pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageNumber, pageSize
}

// pageOffset returns (pageNumber-1)*pageSize, or false if it overflows int.
func pageOffset(pageNumber, pageSize int) (int, bool) {
	if pageNumber-1 > math.MaxInt/pageSize {
		return 0, false
	}
	return (pageNumber - 1) * pageSize, true
}

// GetPage returns one page of records in ascending key order. The count and
// the slice are read in the same transaction.
func (r *genericRepository[T, K]) GetPage(ctx context.Context, pageNumber, pageSize int) (*model.Page[T], error) {
	pageNumber, pageSize = normalizePage(pageNumber, pageSize, r.maxPageSize)
	r.logger.InfoContext(ctx, "Listing page", "entity", r.entity, "pageNumber", pageNumber, "pageSize", pageSize)

	page := &model.Page[T]{
		Items:      make([]T, 0),
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}
	err := inTransaction(ctx, r.db, "page "+r.entity, func(tx *gorm.DB, _ context.Context) error {
		if err := tx.Model(new(T)).Count(&page.TotalCount).Error; err != nil {
			return domain.Unexpected("count "+r.entity, err)
		}
		offset, ok := pageOffset(pageNumber, pageSize)
		if !ok || int64(offset) >= page.TotalCount {
			return nil
		}
		if err := tx.Order("id ASC").Offset(offset).Limit(pageSize).Find(&page.Items).Error; err != nil {
			return domain.Unexpected("page "+r.entity, err)
		}
		return nil
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to list page", "entity", r.entity, "pageNumber", pageNumber, "pageSize", pageSize, "error", err)
		return nil, err
	}

	r.logger.InfoContext(ctx, "Page listed successfully", "entity", r.entity, "count", len(page.Items), "total", page.TotalCount)
	return page, nil
}
