// Package event publishes entity change notifications after a commit.
package event

import (
	"context"
	"time"
)

// Type names a change notification.
type Type string

const (
	AgentCreated       Type = "agent.created"
	AgentUpdated       Type = "agent.updated"
	AgentDeleted       Type = "agent.deleted"
	AgentStatusChanged Type = "agent.status_changed"

	CustomerCreated Type = "customer.created"
	CustomerUpdated Type = "customer.updated"
	CustomerDeleted Type = "customer.deleted"

	CallCreated       Type = "call.created"
	CallUpdated       Type = "call.updated"
	CallDeleted       Type = "call.deleted"
	CallAgentAssigned Type = "call.agent_assigned"

	TicketCreated       Type = "ticket.created"
	TicketUpdated       Type = "ticket.updated"
	TicketDeleted       Type = "ticket.deleted"
	TicketAgentAssigned Type = "ticket.agent_assigned"
)

// Event is the envelope written to the broker.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	Entity     string    `json:"entity"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data,omitempty"`
}

// Publisher hands events to a broker. Publishing is best effort: failures
// are logged by the implementation and never returned to the caller.
type Publisher interface {
	Publish(ctx context.Context, eventType Type, entity string, key any, data any)
}

type noopPublisher struct{}

// NewNoopPublisher returns a Publisher that drops every event.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, Type, string, any, any) {}
