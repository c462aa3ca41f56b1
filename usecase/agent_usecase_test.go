package usecase

import (
	"context"
	"testing"

	"callcenter-service/domain"
	"callcenter-service/domain/model"
	"callcenter-service/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentUseCase_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.agents.CreateAgent(ctx, newAgent(1)))
	got, err := f.agents.GetAgentByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Jehiel Balla", got.Name)

	got.Name = "Jehiel B."
	require.NoError(t, f.agents.UpdateAgent(ctx, got))

	all, err := f.agents.ListAgents(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Jehiel B.", all[0].Name)

	assert.Equal(t, []event.Type{event.AgentCreated, event.AgentUpdated}, f.publisher.types())
}

func TestAgentUseCase_GetMissingIsNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.agents.GetAgentByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAgentUseCase_Create_Rejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.agents.CreateAgent(ctx, nil), domain.ErrInvalidArgument)

	bad := newAgent(1)
	bad.Status = "Sleeping"
	assert.ErrorIs(t, f.agents.CreateAgent(ctx, bad), domain.ErrInvalidArgument)

	assert.ErrorIs(t, f.agents.CreateAgent(ctx, newAgent(0)), domain.ErrInvalidID)

	require.NoError(t, f.agents.CreateAgent(ctx, newAgent(1)))
	assert.ErrorIs(t, f.agents.CreateAgent(ctx, newAgent(1)), domain.ErrConflict)

	assert.Equal(t, []event.Type{event.AgentCreated}, f.publisher.types(), "rejected writes publish nothing")
}

func TestAgentUseCase_DeleteReleasesAssignments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.agents.CreateAgent(ctx, newAgent(1)))
	require.NoError(t, f.calls.CreateCall(ctx, newCall(1, ptr(int64(1)))))
	require.NoError(t, f.tickets.CreateTicket(ctx, newTicket(1, ptr(int64(1)))))

	removal, err := f.agents.DeleteAgent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"calls": 1, "tickets": 1}, removal.Cleared)
	assert.Equal(t, countingRecorder{"calls": 1, "tickets": 1}, f.recorder)

	last := f.publisher.last()
	assert.Equal(t, event.AgentDeleted, last.eventType)
	assert.Equal(t, removal, last.data)

	call, err := f.calls.GetCallByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, call.AgentID)
	ticket, err := f.tickets.GetTicketByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, ticket.AgentID)

	_, err = f.agents.GetAgentByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAgentUseCase_DeleteMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.agents.DeleteAgent(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.publisher.types())
	assert.Empty(t, f.recorder)
}

func TestAgentUseCase_UpdateAgentStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.agents.CreateAgent(ctx, newAgent(1)))

	require.NoError(t, f.agents.UpdateAgentStatus(ctx, 1, model.AgentStatusBusy))
	got, err := f.agents.GetAgentByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.AgentStatusBusy, got.Status)
	assert.Equal(t, "Jehiel Balla", got.Name, "other fields are kept")

	last := f.publisher.last()
	assert.Equal(t, event.AgentStatusChanged, last.eventType)
	assert.Equal(t, map[string]any{"previous": model.AgentStatusOffline, "status": model.AgentStatusBusy}, last.data)

	assert.ErrorIs(t, f.agents.UpdateAgentStatus(ctx, 1, "Lunch"), domain.ErrInvalidArgument)
	assert.ErrorIs(t, f.agents.UpdateAgentStatus(ctx, 2, model.AgentStatusBusy), domain.ErrNotFound)
}
