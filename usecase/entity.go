// Package usecase contains the call-center business operations. Every
// mutation publishes a change event once the store has committed it.
package usecase

import (
	"context"

	"callcenter-service/domain"
	"callcenter-service/domain/model"
	"callcenter-service/domain/repository"
	"callcenter-service/event"
	"callcenter-service/pkg/logger"
)

// ReferenceRecorder receives the number of agent references released from
// each referencing collection when an agent is deleted.
type ReferenceRecorder interface {
	ReferencesCleared(referrer string, n int64)
}

// lifecycle names the events published for one entity type.
type lifecycle struct {
	created, updated, deleted event.Type
}

// entityUseCase holds the CRUD flow shared by every entity use case.
type entityUseCase[T model.Keyed[K], K comparable] struct {
	repo      repository.Generic[T, K]
	publisher event.Publisher
	logger    logger.LoggerInterface
	entity    string
	events    lifecycle
	// validate enforces domain rules the request contract cannot express
	validate func(*T) error
}

func (uc *entityUseCase[T, K]) list(ctx context.Context) ([]T, error) {
	uc.logger.InfoContext(ctx, "Listing records in usecase", "entity", uc.entity)
	items, err := uc.repo.GetAll(ctx)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error listing records", "entity", uc.entity, "error", err)
		return nil, err
	}
	return items, nil
}

func (uc *entityUseCase[T, K]) get(ctx context.Context, id K) (*T, error) {
	uc.logger.InfoContext(ctx, "Getting record by ID in usecase", "entity", uc.entity, "id", id)
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error getting record by ID", "entity", uc.entity, "id", id, "error", err)
		return nil, err
	}
	if item == nil {
		uc.logger.WarnContext(ctx, "Record not found by ID", "entity", uc.entity, "id", id)
		return nil, domain.NotFound(uc.entity, id)
	}
	return item, nil
}

func (uc *entityUseCase[T, K]) create(ctx context.Context, item *T) error {
	if err := uc.check(ctx, item); err != nil {
		return err
	}
	id := (*item).PrimaryKey()
	uc.logger.InfoContext(ctx, "Creating record in usecase", "entity", uc.entity, "id", id)
	if err := uc.repo.Add(ctx, item); err != nil {
		uc.logger.WarnContext(ctx, "Failed to create record", "entity", uc.entity, "id", id, "error", err)
		return err
	}
	uc.publisher.Publish(ctx, uc.events.created, uc.entity, id, item)
	uc.logger.InfoContext(ctx, "Record created successfully in usecase", "entity", uc.entity, "id", id)
	return nil
}

func (uc *entityUseCase[T, K]) update(ctx context.Context, item *T) error {
	if err := uc.check(ctx, item); err != nil {
		return err
	}
	id := (*item).PrimaryKey()
	uc.logger.InfoContext(ctx, "Updating record in usecase", "entity", uc.entity, "id", id)
	if err := uc.repo.Update(ctx, item); err != nil {
		uc.logger.WarnContext(ctx, "Failed to update record", "entity", uc.entity, "id", id, "error", err)
		return err
	}
	uc.publisher.Publish(ctx, uc.events.updated, uc.entity, id, item)
	uc.logger.InfoContext(ctx, "Record updated successfully in usecase", "entity", uc.entity, "id", id)
	return nil
}

func (uc *entityUseCase[T, K]) delete(ctx context.Context, id K) error {
	uc.logger.InfoContext(ctx, "Deleting record in usecase", "entity", uc.entity, "id", id)
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.WarnContext(ctx, "Failed to delete record", "entity", uc.entity, "id", id, "error", err)
		return err
	}
	uc.publisher.Publish(ctx, uc.events.deleted, uc.entity, id, map[string]any{"id": id})
	uc.logger.InfoContext(ctx, "Record deleted successfully in usecase", "entity", uc.entity, "id", id)
	return nil
}

func (uc *entityUseCase[T, K]) check(ctx context.Context, item *T) error {
	if item == nil {
		return domain.NilEntity(uc.entity)
	}
	if uc.validate == nil {
		return nil
	}
	if err := uc.validate(item); err != nil {
		uc.logger.WarnContext(ctx, "Record rejected by domain rules", "entity", uc.entity, "error", err)
		return err
	}
	return nil
}

// page serves one page of a paged collection.
func page[T any](ctx context.Context, repo repository.Paged[T], appLogger logger.LoggerInterface, entity string, pageNumber, pageSize int) (*model.Page[T], error) {
	appLogger.InfoContext(ctx, "Listing page in usecase", "entity", entity, "pageNumber", pageNumber, "pageSize", pageSize)
	p, err := repo.GetPage(ctx, pageNumber, pageSize)
	if err != nil {
		appLogger.ErrorContext(ctx, "Error listing page", "entity", entity, "error", err)
		return nil, err
	}
	return p, nil
}
