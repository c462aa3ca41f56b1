// Package seed loads the sample data set used for demos and local runs.
package seed

import (
	"context"
	"errors"
	"time"

	"callcenter-service/domain"
	"callcenter-service/domain/model"
	"callcenter-service/domain/repository"
	"callcenter-service/pkg/logger"
)

// BaseDate anchors every timestamp in the sample data.
var BaseDate = time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC)

// Repositories are the accessors the seeder writes through.
type Repositories struct {
	Agents    repository.Agent
	Customers repository.Customer
	Calls     repository.Call
	Tickets   repository.Ticket
}

// Result counts the records inserted and the ones skipped because their key
// was already taken.
type Result struct {
	Inserted int
	Skipped  int
}

func Agents() []model.Agent {
	return []model.Agent{
		{ID: 1, Name: "Zeylee Geronimo", Email: "zgeronimo@testdomain.com", PhoneExtension: "1001", Status: model.AgentStatusAvailable},
		{ID: 2, Name: "Xanlaneron Nerier", Email: "xnerier@testdomain.com", PhoneExtension: "1002", Status: model.AgentStatusBusy},
		{ID: 3, Name: "Jehiel Balla", Email: "jballa@testdomain.com", PhoneExtension: "1003", Status: model.AgentStatusOffline},
	}
}

func Customers() []model.Customer {
	lastContact := BaseDate
	return []model.Customer{
		{ID: "CUST001", Name: "Maria Clara", Email: "mclara@test.com", PhoneNumber: "1234567890"},
		{ID: "CUST002", Name: "Crisostomo Ibarra", Email: "cibarra@test.com", PhoneNumber: "1234567891", LastContactDate: &lastContact},
	}
}

func Tickets() []model.Ticket {
	return []model.Ticket{
		{ID: 1, CustomerID: "CUST001", AgentID: agent(1), Status: model.TicketStatusOpen, Priority: model.TicketPriorityHigh,
			CreatedAt: BaseDate, UpdatedAt: BaseDate, Description: "Issue with login"},
		{ID: 2, CustomerID: "CUST002", AgentID: agent(2), Status: model.TicketStatusInProgress, Priority: model.TicketPriorityMedium,
			CreatedAt: BaseDate, UpdatedAt: BaseDate, Description: "Billing discrepancy"},
	}
}

func Calls() []model.Call {
	end := BaseDate
	return []model.Call{
		{ID: 1, CustomerID: "CUST001", AgentID: agent(1), StartTime: BaseDate, Status: model.CallStatusInProgress,
			Notes: "Customer called regarding login issue"},
		{ID: 2, CustomerID: "CUST002", AgentID: agent(2), StartTime: BaseDate.Add(-30 * time.Minute), EndTime: &end,
			Status: model.CallStatusCompleted, Notes: "Resolved billing discrepancy"},
	}
}

func agent(id int64) *int64 { return &id }

// Run inserts the sample data set. Agents go first so the calls and tickets
// that reference them pass the reference check.
func Run(ctx context.Context, repos Repositories, appLogger logger.LoggerInterface) (Result, error) {
	var result Result
	steps := []func() error{
		func() error { return insert(ctx, &result, appLogger, "agent", Agents(), repos.Agents.Add) },
		func() error { return insert(ctx, &result, appLogger, "customer", Customers(), repos.Customers.Add) },
		func() error { return insert(ctx, &result, appLogger, "ticket", Tickets(), repos.Tickets.Add) },
		func() error { return insert(ctx, &result, appLogger, "call", Calls(), repos.Calls.Add) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return result, err
		}
	}
	appLogger.InfoContext(ctx, "Seed data loaded", "inserted", result.Inserted, "skipped", result.Skipped)
	return result, nil
}

func insert[T any](ctx context.Context, result *Result, appLogger logger.LoggerInterface, entity string, items []T, add func(context.Context, *T) error) error {
	for i := range items {
		err := add(ctx, &items[i])
		switch {
		case err == nil:
			result.Inserted++
		case errors.Is(err, domain.ErrConflict):
			appLogger.DebugContext(ctx, "Seed record already present", "entity", entity)
			result.Skipped++
		default:
			return err
		}
	}
	return nil
}
