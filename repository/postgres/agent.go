package postgres

import (
	"context"

	"callcenter-service/domain/model"
	"callcenter-service/domain/repository"
	"callcenter-service/pkg/logger"

	"gorm.io/gorm"
)

// agentRepository implements repository.Agent. Deletion first clears every
// reference held by the registered referrers, inside the delete transaction.
type agentRepository struct {
	*genericRepository[model.Agent, int64]
	referrers []repository.AgentReferrer
}

// NewAgentRepository creates the agent accessor. Every collection that can
// reference an agent must be passed as a referrer, otherwise deleting an
// agent leaves dangling references behind.
func NewAgentRepository(db *gorm.DB, logger logger.LoggerInterface, referrers ...repository.AgentReferrer) repository.Agent {
	return &agentRepository{
		genericRepository: newGenericRepository[model.Agent, int64](db, logger, "agent"),
		referrers:         referrers,
	}
}

// Remove deletes the agent with id after nulling every reference to it.
// Returns domain.ErrNotFound, before any reference is touched, when the agent
// does not exist. Any failure rolls the whole removal back.
func (r *agentRepository) Remove(ctx context.Context, id int64) (*model.AgentRemoval, error) {
	removal := &model.AgentRemoval{
		AgentID: id,
		Cleared: make(map[string]int64, len(r.referrers)),
	}

	// The hook list is built per call so that concurrent removals report
	// into their own map.
	deleter := *r.genericRepository
	deleter.onDelete = []deleteHook[int64]{func(txCtx context.Context, agentID int64) error {
		for _, referrer := range r.referrers {
			n, err := referrer.ClearAgent(txCtx, agentID)
			if err != nil {
				return err
			}
			removal.Cleared[referrer.ReferrerName()] = n
		}
		return nil
	}}

	if err := deleter.Delete(ctx, id); err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "Agent references cleared", "id", id, "cleared", removal.Cleared)
	return removal, nil
}

// Delete removes the agent with id, clearing references first.
func (r *agentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.Remove(ctx, id)
	return err
}
