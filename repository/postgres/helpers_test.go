package postgres

import (
	"context"
	"testing"
	"time"

	"callcenter-service/domain/model"
	"callcenter-service/pkg/database"
	"callcenter-service/pkg/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stores struct {
	db        *gorm.DB
	agents    *agentRepository
	customers *customerRepository
	calls     *callRepository
	tickets   *ticketRepository
}

// newTestStores opens a migrated in-memory database with every repository
// wired the way the service wires them.
func newTestStores(t *testing.T, opts ...Option) stores {
	t.Helper()
	client, err := database.NewClient(database.Config{Driver: database.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err, "opening the test database should succeed")
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Migrate(model.All()...), "migration should succeed")

	db := client.GetDB()
	log := logger.NoOpLogger()
	calls := NewCallRepository(db, log, opts...).(*callRepository)
	tickets := NewTicketRepository(db, log, opts...).(*ticketRepository)
	return stores{
		db:        db,
		agents:    NewAgentRepository(db, log, calls, tickets).(*agentRepository),
		customers: NewCustomerRepository(db, log).(*customerRepository),
		calls:     calls,
		tickets:   tickets,
	}
}

func ptr[T any](v T) *T { return &v }

var baseTime = time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC)

func agentFixture(id int64) *model.Agent {
	return &model.Agent{
		ID:             id,
		Name:           "Agent",
		Email:          "agent@testdomain.com",
		PhoneExtension: "1001",
		Status:         model.AgentStatusAvailable,
	}
}

func callFixture(id int64, agentID *int64) *model.Call {
	return &model.Call{
		ID:         id,
		CustomerID: "CUST001",
		AgentID:    agentID,
		StartTime:  baseTime,
		Status:     model.CallStatusInProgress,
		Notes:      "note",
	}
}

func ticketFixture(id int64, agentID *int64) *model.Ticket {
	return &model.Ticket{
		ID:          id,
		CustomerID:  "CUST001",
		AgentID:     agentID,
		Status:      model.TicketStatusOpen,
		Priority:    model.TicketPriorityHigh,
		CreatedAt:   baseTime,
		UpdatedAt:   baseTime,
		Description: "issue",
	}
}

func mustAdd[T any](t *testing.T, add func(context.Context, *T) error, entities ...*T) {
	t.Helper()
	for _, e := range entities {
		require.NoError(t, add(context.Background(), e))
	}
}
