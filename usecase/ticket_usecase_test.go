package usecase

import (
	"context"
	"testing"
	"time"

	"callcenter-service/domain"
	"callcenter-service/domain/model"
	"callcenter-service/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketUseCase_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	bad := newTicket(1, nil)
	bad.Priority = "Urgent"
	assert.ErrorIs(t, f.tickets.CreateTicket(ctx, bad), domain.ErrInvalidArgument)

	require.NoError(t, f.tickets.CreateTicket(ctx, newTicket(1, nil)))
	ticket, err := f.tickets.GetTicketByID(ctx, 1)
	require.NoError(t, err)

	ticket.UpdatedAt = baseTime.Add(-time.Hour)
	assert.ErrorIs(t, f.tickets.UpdateTicket(ctx, ticket), domain.ErrInvalidArgument)

	ticket.Status = model.TicketStatusResolved
	ticket.Resolution = ptr("Password reset")
	ticket.UpdatedAt = baseTime.Add(time.Hour)
	require.NoError(t, f.tickets.UpdateTicket(ctx, ticket))

	all, err := f.tickets.ListTickets(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Password reset", *all[0].Resolution)

	require.NoError(t, f.tickets.DeleteTicket(ctx, 1))
	assert.Equal(t, []event.Type{event.TicketCreated, event.TicketUpdated, event.TicketDeleted}, f.publisher.types())
}

func TestTicketUseCase_Page(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := int64(1); i <= 3; i++ {
		require.NoError(t, f.tickets.CreateTicket(ctx, newTicket(i, nil)))
	}

	p, err := f.tickets.GetTicketsPage(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, p.PageNumber)
	assert.Equal(t, 10, p.PageSize)
	assert.Len(t, p.Items, 3)
}

func TestTicketUseCase_AssignTicketAgent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.agents.CreateAgent(ctx, newAgent(1)))
	require.NoError(t, f.tickets.CreateTicket(ctx, newTicket(1, nil)))

	require.NoError(t, f.tickets.AssignTicketAgent(ctx, 1, ptr(int64(1))))
	ticket, err := f.tickets.GetTicketByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), *ticket.AgentID)
	assert.Equal(t, map[string]any{"agent_id": ptr(int64(1))}, f.publisher.last().data)

	assert.ErrorIs(t, f.tickets.AssignTicketAgent(ctx, 1, ptr(int64(5))), domain.ErrInvalidArgument)
	ticket, err = f.tickets.GetTicketByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), *ticket.AgentID, "a rejected assignment leaves the ticket unchanged")
}
