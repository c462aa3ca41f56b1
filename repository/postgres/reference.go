package postgres

import (
	"context"
	"errors"
	"fmt"

	"callcenter-service/domain"
	"callcenter-service/domain/model"
	"callcenter-service/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// requireAgent rejects a write whose agent reference names a missing agent.
// The agent row is read FOR SHARE so it cannot be deleted before the write
// commits.
func requireAgent[T model.AgentAssignable](entity string) writeCheck[T] {
	return func(tx *gorm.DB, e *T) error {
		agentID := (*e).AssignedAgent()
		if agentID == nil {
			return nil
		}
		var agent model.Agent
		err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Select("id").Where("id = ?", *agentID).Take(&agent).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InvalidArgument(entity, fmt.Sprintf("agent %d does not exist", *agentID))
		}
		if err != nil {
			return domain.Unexpected("check agent reference", err)
		}
		return nil
	}
}

// agentReferenceClearer nulls agent_id on table T. The column is indexed, so
// the update touches only referencing rows.
type agentReferenceClearer[T any] struct {
	db     *gorm.DB
	logger logger.LoggerInterface
	name   string
}

func (c agentReferenceClearer[T]) ReferrerName() string {
	return c.name
}

func (c agentReferenceClearer[T]) ClearAgent(ctx context.Context, agentID int64) (int64, error) {
	res := conn(ctx, c.db).Model(new(T)).Where("agent_id = ?", agentID).UpdateColumn("agent_id", nil)
	if res.Error != nil {
		c.logger.ErrorContext(ctx, "Failed to clear agent references", "referrer", c.name, "agentID", agentID, "error", res.Error)
		return 0, domain.Unexpected("clear agent references on "+c.name, res.Error)
	}
	c.logger.InfoContext(ctx, "Agent references cleared", "referrer", c.name, "agentID", agentID, "count", res.RowsAffected)
	return res.RowsAffected, nil
}
