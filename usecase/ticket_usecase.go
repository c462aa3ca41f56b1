package usecase

import (
	"context"

	"callcenter-service/domain"
	"callcenter-service/domain/model"
	"callcenter-service/domain/repository"
	"callcenter-service/event"
	"callcenter-service/pkg/logger"
)

// TicketUseCase defines business operations for tickets
type TicketUseCase interface {
	ListTickets(ctx context.Context) ([]model.Ticket, error)
	GetTicketsPage(ctx context.Context, pageNumber, pageSize int) (*model.Page[model.Ticket], error)
	GetTicketByID(ctx context.Context, id int64) (*model.Ticket, error)
	CreateTicket(ctx context.Context, ticket *model.Ticket) error
	UpdateTicket(ctx context.Context, ticket *model.Ticket) error
	DeleteTicket(ctx context.Context, id int64) error
	// AssignTicketAgent sets or, with a nil agentID, clears the agent of a ticket.
	AssignTicketAgent(ctx context.Context, id int64, agentID *int64) error
}

type ticketUseCase struct {
	entityUseCase[model.Ticket, int64]
	ticketRepo repository.Ticket
	transactor repository.Transactor
}

// NewTicketUseCase creates a new instance of ticketUseCase
func NewTicketUseCase(ticketRepo repository.Ticket, transactor repository.Transactor, publisher event.Publisher, appLogger logger.LoggerInterface) TicketUseCase {
	return &ticketUseCase{
		entityUseCase: entityUseCase[model.Ticket, int64]{
			repo:      ticketRepo,
			publisher: publisher,
			logger:    appLogger,
			entity:    "ticket",
			events:    lifecycle{created: event.TicketCreated, updated: event.TicketUpdated, deleted: event.TicketDeleted},
			validate:  validateTicket,
		},
		ticketRepo: ticketRepo,
		transactor: transactor,
	}
}

func validateTicket(t *model.Ticket) error {
	if t.ID <= 0 {
		return domain.ErrInvalidID
	}
	if !t.Status.Valid() {
		return domain.InvalidArgument("ticket", "unknown status "+string(t.Status))
	}
	if !t.Priority.Valid() {
		return domain.InvalidArgument("ticket", "unknown priority "+string(t.Priority))
	}
	if !t.UpdatedAt.IsZero() && t.UpdatedAt.Before(t.CreatedAt) {
		return domain.InvalidArgument("ticket", "updated before it was created")
	}
	return nil
}

func (uc *ticketUseCase) ListTickets(ctx context.Context) ([]model.Ticket, error) {
	return uc.list(ctx)
}

func (uc *ticketUseCase) GetTicketsPage(ctx context.Context, pageNumber, pageSize int) (*model.Page[model.Ticket], error) {
	return page[model.Ticket](ctx, uc.ticketRepo, uc.logger, uc.entity, pageNumber, pageSize)
}

func (uc *ticketUseCase) GetTicketByID(ctx context.Context, id int64) (*model.Ticket, error) {
	return uc.get(ctx, id)
}

func (uc *ticketUseCase) CreateTicket(ctx context.Context, ticket *model.Ticket) error {
	return uc.create(ctx, ticket)
}

func (uc *ticketUseCase) UpdateTicket(ctx context.Context, ticket *model.Ticket) error {
	return uc.update(ctx, ticket)
}

func (uc *ticketUseCase) DeleteTicket(ctx context.Context, id int64) error {
	return uc.delete(ctx, id)
}

func (uc *ticketUseCase) AssignTicketAgent(ctx context.Context, id int64, agentID *int64) error {
	uc.logger.InfoContext(ctx, "Assigning agent to ticket in usecase", "id", id, "agentID", agentID)
	err := uc.transactor.ExecuteInTransaction(ctx, func(txCtx context.Context) error {
		ticket, err := uc.get(txCtx, id)
		if err != nil {
			return err
		}
		ticket.AgentID = agentID
		return uc.ticketRepo.Update(txCtx, ticket)
	})
	if err != nil {
		uc.logger.WarnContext(ctx, "Failed to assign agent to ticket", "id", id, "error", err)
		return err
	}

	uc.publisher.Publish(ctx, event.TicketAgentAssigned, uc.entity, id, map[string]any{"agent_id": agentID})
	uc.logger.InfoContext(ctx, "Agent assigned to ticket successfully in usecase", "id", id)
	return nil
}
