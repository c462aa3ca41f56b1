package postgres

import (
	"callcenter-service/domain/model"
	"callcenter-service/domain/repository"
	"callcenter-service/pkg/logger"

	"gorm.io/gorm"
)

type ticketRepository struct {
	*genericRepository[model.Ticket, int64]
	agentReferenceClearer[model.Ticket]
}

// NewTicketRepository creates the ticket accessor. Writes that reference an
// agent fail with domain.ErrInvalidArgument when the agent does not exist.
func NewTicketRepository(db *gorm.DB, logger logger.LoggerInterface, opts ...Option) repository.Ticket {
	generic := newGenericRepository[model.Ticket, int64](db, logger, "ticket", opts...)
	generic.checks = append(generic.checks, requireAgent[model.Ticket]("ticket"))
	return &ticketRepository{
		genericRepository:     generic,
		agentReferenceClearer: agentReferenceClearer[model.Ticket]{db: db, logger: logger, name: "tickets"},
	}
}
