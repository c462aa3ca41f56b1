package cache

import (
	"context"
	"time"

	"callcenter-service/domain/model"
	"callcenter-service/domain/repository"
	"callcenter-service/pkg/logger"
	"callcenter-service/pkg/redis"
)

type agentRepository struct {
	*cachedRepository[model.Agent, int64]
	agents repository.Agent
}

// NewAgentRepository caches agent lookups in front of agents.
func NewAgentRepository(agents repository.Agent, client redis.RedisClient, logger logger.LoggerInterface, ttl time.Duration) repository.Agent {
	return &agentRepository{
		cachedRepository: newCachedRepository[model.Agent, int64](agents, client, logger, "agent", ttl),
		agents:           agents,
	}
}

func (r *agentRepository) Remove(ctx context.Context, id int64) (*model.AgentRemoval, error) {
	removal, err := r.agents.Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, Key(r.entity, id))
	return removal, nil
}

type customerRepository struct {
	*cachedRepository[model.Customer, string]
}

// NewCustomerRepository caches customer lookups in front of customers.
func NewCustomerRepository(customers repository.Customer, client redis.RedisClient, logger logger.LoggerInterface, ttl time.Duration) repository.Customer {
	return &customerRepository{
		cachedRepository: newCachedRepository[model.Customer, string](customers, client, logger, "customer", ttl),
	}
}
