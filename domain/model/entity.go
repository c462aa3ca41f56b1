// Package model holds the persisted call-center entities.
package model

// Keyed is implemented by every stored entity so generic accessors can
// address a record by its primary key without knowing its concrete type.
type Keyed[K comparable] interface {
	PrimaryKey() K
}

// AgentAssignable is implemented by entities that hold an optional weak
// reference to an Agent.
type AgentAssignable interface {
	AssignedAgent() *int64
}

// All returns one zero value of every persisted model, in migration order.
func All() []any {
	return []any{&Agent{}, &Customer{}, &Call{}, &Ticket{}}
}
