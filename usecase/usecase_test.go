package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"callcenter-service/domain/model"
	"callcenter-service/event"
	"callcenter-service/pkg/database"
	"callcenter-service/pkg/logger"
	"callcenter-service/repository/postgres"

	"github.com/stretchr/testify/require"
)

type published struct {
	eventType event.Type
	entity    string
	key       any
	data      any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) Publish(_ context.Context, eventType event.Type, entity string, key any, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{eventType, entity, key, data})
}

func (p *recordingPublisher) types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.eventType)
	}
	return out
}

func (p *recordingPublisher) last() published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[len(p.events)-1]
}

type countingRecorder map[string]int64

func (r countingRecorder) ReferencesCleared(referrer string, n int64) {
	r[referrer] += n
}

type fixture struct {
	agents    AgentUseCase
	customers CustomerUseCase
	calls     CallUseCase
	tickets   TicketUseCase
	publisher *recordingPublisher
	recorder  countingRecorder
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	client, err := database.NewClient(database.Config{Driver: database.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Migrate(model.All()...))

	db, log := client.GetDB(), logger.NoOpLogger()
	callRepo := postgres.NewCallRepository(db, log)
	ticketRepo := postgres.NewTicketRepository(db, log)
	agentRepo := postgres.NewAgentRepository(db, log, callRepo, ticketRepo)
	transactor := postgres.NewTransactor(db, log)
	publisher := &recordingPublisher{}
	recorder := countingRecorder{}

	return fixture{
		agents:    NewAgentUseCase(agentRepo, transactor, publisher, recorder, log),
		customers: NewCustomerUseCase(postgres.NewCustomerRepository(db, log), publisher, log),
		calls:     NewCallUseCase(callRepo, transactor, publisher, log),
		tickets:   NewTicketUseCase(ticketRepo, transactor, publisher, log),
		publisher: publisher,
		recorder:  recorder,
	}
}

var baseTime = time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func newAgent(id int64) *model.Agent {
	return &model.Agent{ID: id, Name: "Jehiel Balla", Email: "jballa@testdomain.com", PhoneExtension: "1003", Status: model.AgentStatusOffline}
}

func newCall(id int64, agentID *int64) *model.Call {
	return &model.Call{ID: id, CustomerID: "CUST001", AgentID: agentID, StartTime: baseTime, Status: model.CallStatusQueued}
}

func newTicket(id int64, agentID *int64) *model.Ticket {
	return &model.Ticket{
		ID: id, CustomerID: "CUST001", AgentID: agentID,
		Status: model.TicketStatusOpen, Priority: model.TicketPriorityLow,
		CreatedAt: baseTime, UpdatedAt: baseTime, Description: "Issue with login",
	}
}
