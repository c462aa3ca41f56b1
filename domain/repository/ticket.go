package repository

import (
	"callcenter-service/domain/model"
)

// Ticket is the accessor for tickets.
type Ticket interface {
	Generic[model.Ticket, int64]
	Paged[model.Ticket]
	AgentReferrer
}
