package usecase

import (
	"context"

	"callcenter-service/domain"
	"callcenter-service/domain/model"
	"callcenter-service/domain/repository"
	"callcenter-service/event"
	"callcenter-service/pkg/logger"
)

// AgentUseCase defines business operations for agents
type AgentUseCase interface {
	ListAgents(ctx context.Context) ([]model.Agent, error)
	GetAgentByID(ctx context.Context, id int64) (*model.Agent, error)
	CreateAgent(ctx context.Context, agent *model.Agent) error
	UpdateAgent(ctx context.Context, agent *model.Agent) error
	// DeleteAgent removes the agent after releasing every call and ticket
	// assigned to it, and reports how many of each were released.
	DeleteAgent(ctx context.Context, id int64) (*model.AgentRemoval, error)
	UpdateAgentStatus(ctx context.Context, id int64, status model.AgentStatus) error
}

type agentUseCase struct {
	entityUseCase[model.Agent, int64]
	agentRepo  repository.Agent
	transactor repository.Transactor
	recorder   ReferenceRecorder
}

// NewAgentUseCase creates a new instance of agentUseCase. recorder may be nil.
func NewAgentUseCase(agentRepo repository.Agent, transactor repository.Transactor, publisher event.Publisher, recorder ReferenceRecorder, appLogger logger.LoggerInterface) AgentUseCase {
	return &agentUseCase{
		entityUseCase: entityUseCase[model.Agent, int64]{
			repo:      agentRepo,
			publisher: publisher,
			logger:    appLogger,
			entity:    "agent",
			events:    lifecycle{created: event.AgentCreated, updated: event.AgentUpdated, deleted: event.AgentDeleted},
			validate:  validateAgent,
		},
		agentRepo:  agentRepo,
		transactor: transactor,
		recorder:   recorder,
	}
}

func validateAgent(a *model.Agent) error {
	if a.ID <= 0 {
		return domain.ErrInvalidID
	}
	if !a.Status.Valid() {
		return domain.InvalidArgument("agent", "unknown status "+string(a.Status))
	}
	return nil
}

func (uc *agentUseCase) ListAgents(ctx context.Context) ([]model.Agent, error) {
	return uc.list(ctx)
}

func (uc *agentUseCase) GetAgentByID(ctx context.Context, id int64) (*model.Agent, error) {
	return uc.get(ctx, id)
}

func (uc *agentUseCase) CreateAgent(ctx context.Context, agent *model.Agent) error {
	return uc.create(ctx, agent)
}

func (uc *agentUseCase) UpdateAgent(ctx context.Context, agent *model.Agent) error {
	return uc.update(ctx, agent)
}

// DeleteAgent removes an agent. Calls and tickets assigned to it are kept
// and become unassigned.
func (uc *agentUseCase) DeleteAgent(ctx context.Context, id int64) (*model.AgentRemoval, error) {
	uc.logger.InfoContext(ctx, "Deleting agent in usecase", "id", id)
	removal, err := uc.agentRepo.Remove(ctx, id)
	if err != nil {
		uc.logger.WarnContext(ctx, "Failed to delete agent", "id", id, "error", err)
		return nil, err
	}

	if uc.recorder != nil {
		for referrer, n := range removal.Cleared {
			uc.recorder.ReferencesCleared(referrer, n)
		}
	}
	uc.publisher.Publish(ctx, event.AgentDeleted, uc.entity, id, removal)
	uc.logger.InfoContext(ctx, "Agent deleted successfully in usecase", "id", id, "cleared", removal.Cleared)
	return removal, nil
}

// UpdateAgentStatus changes only the status of an agent.
func (uc *agentUseCase) UpdateAgentStatus(ctx context.Context, id int64, status model.AgentStatus) error {
	uc.logger.InfoContext(ctx, "Updating agent status in usecase", "id", id, "status", status)
	if !status.Valid() {
		uc.logger.WarnContext(ctx, "Invalid agent status", "id", id, "status", status)
		return domain.InvalidArgument("agent", "unknown status "+string(status))
	}

	var previous model.AgentStatus
	err := uc.transactor.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		agent, err := uc.get(txCtx, id)
		if err != nil {
			return err
		}
		previous = agent.Status
		agent.Status = status
		return uc.agentRepo.Update(txCtx, agent)
	})
	if err != nil {
		uc.logger.WarnContext(ctx, "Failed to update agent status", "id", id, "error", err)
		return err
	}

	uc.publisher.Publish(ctx, event.AgentStatusChanged, uc.entity, id, map[string]any{
		"previous": previous,
		"status":   status,
	})
	uc.logger.InfoContext(ctx, "Agent status updated successfully in usecase", "id", id, "status", status)
	return nil
}
