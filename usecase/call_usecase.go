package usecase

import (
	"context"

	"callcenter-service/domain"
	"callcenter-service/domain/model"
	"callcenter-service/domain/repository"
	"callcenter-service/event"
	"callcenter-service/pkg/logger"
)

// CallUseCase defines business operations for calls
type CallUseCase interface {
	ListCalls(ctx context.Context) ([]model.Call, error)
	GetCallsPage(ctx context.Context, pageNumber, pageSize int) (*model.Page[model.Call], error)
	GetCallByID(ctx context.Context, id int64) (*model.Call, error)
	CreateCall(ctx context.Context, call *model.Call) error
	UpdateCall(ctx context.Context, call *model.Call) error
	DeleteCall(ctx context.Context, id int64) error
	// AssignCallAgent sets or, with a nil agentID, clears the agent of a call.
	AssignCallAgent(ctx context.Context, id int64, agentID *int64) error
}

type callUseCase struct {
	entityUseCase[model.Call, int64]
	callRepo   repository.Call
	transactor repository.Transactor
}

// NewCallUseCase creates a new instance of callUseCase
func NewCallUseCase(callRepo repository.Call, transactor repository.Transactor, publisher event.Publisher, appLogger logger.LoggerInterface) CallUseCase {
	return &callUseCase{
		entityUseCase: entityUseCase[model.Call, int64]{
			repo:      callRepo,
			publisher: publisher,
			logger:    appLogger,
			entity:    "call",
			events:    lifecycle{created: event.CallCreated, updated: event.CallUpdated, deleted: event.CallDeleted},
			validate:  validateCall,
		},
		callRepo:   callRepo,
		transactor: transactor,
	}
}

func validateCall(c *model.Call) error {
	if c.ID <= 0 {
		return domain.ErrInvalidID
	}
	if !c.Status.Valid() {
		return domain.InvalidArgument("call", "unknown status "+string(c.Status))
	}
	if c.EndTime != nil && c.EndTime.Before(c.StartTime) {
		return domain.InvalidArgument("call", "end time is before start time")
	}
	return nil
}

func (uc *callUseCase) ListCalls(ctx context.Context) ([]model.Call, error) {
	return uc.list(ctx)
}

func (uc *callUseCase) GetCallsPage(ctx context.Context, pageNumber, pageSize int) (*model.Page[model.Call], error) {
	return page[model.Call](ctx, uc.callRepo, uc.logger, uc.entity, pageNumber, pageSize)
}

func (uc *callUseCase) GetCallByID(ctx context.Context, id int64) (*model.Call, error) {
	return uc.get(ctx, id)
}

func (uc *callUseCase) CreateCall(ctx context.Context, call *model.Call) error {
	return uc.create(ctx, call)
}

func (uc *callUseCase) UpdateCall(ctx context.Context, call *model.Call) error {
	return uc.update(ctx, call)
}

func (uc *callUseCase) DeleteCall(ctx context.Context, id int64) error {
	return uc.delete(ctx, id)
}

func (uc *callUseCase) AssignCallAgent(ctx context.Context, id int64, agentID *int64) error {
	uc.logger.InfoContext(ctx, "Assigning agent to call in usecase", "id", id, "agentID", agentID)
	err := uc.transactor.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		call, err := uc.get(txCtx, id)
		if err != nil {
			return err
		}
		call.AgentID = agentID
		return uc.callRepo.Update(txCtx, call)
	})
	if err != nil {
		uc.logger.WarnContext(ctx, "Failed to assign agent to call", "id", id, "error", err)
		return err
	}

	uc.publisher.Publish(ctx, event.CallAgentAssigned, uc.entity, id, map[string]any{"agent_id": agentID})
	uc.logger.InfoContext(ctx, "Agent assigned to call successfully in usecase", "id", id)
	return nil
}
