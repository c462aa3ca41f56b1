package postgres

import (
	"callcenter-service/domain/model"
	"callcenter-service/domain/repository"
	"callcenter-service/pkg/logger"

	"gorm.io/gorm"
)

type callRepository struct {
	*genericRepository[model.Call, int64]
	agentReferenceClearer[model.Call]
}

// NewCallRepository creates the call accessor. Writes that reference an
// agent fail with domain.ErrInvalidArgument when the agent does not exist.
func NewCallRepository(db *gorm.DB, logger logger.LoggerInterface, opts ...Option) repository.Call {
	generic := newGenericRepository[model.Call, int64](db, logger, "call", opts...)
	generic.checks = append(generic.checks, requireAgent[model.Call]("call"))
	return &callRepository{
		genericRepository:     generic,
		agentReferenceClearer: agentReferenceClearer[model.Call]{db: db, logger: logger, name: "calls"},
	}
}
