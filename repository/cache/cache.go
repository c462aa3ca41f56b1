// Package cache decorates repositories with a Redis read-through cache.
// Only lookups by key are cached. Writes go to the store first and then
// invalidate the cached copy, so a cache outage never fails a request.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"callcenter-service/domain/model"
	"callcenter-service/domain/repository"
	"callcenter-service/pkg/logger"
	"callcenter-service/pkg/redis"
)

const keyPrefix = "callcenter"

type cachedRepository[T model.Keyed[K], K comparable] struct {
	repository.Generic[T, K]
	redis  redis.RedisClient
	logger logger.LoggerInterface
	entity string
	ttl    time.Duration
}

func newCachedRepository[T model.Keyed[K], K comparable](inner repository.Generic[T, K], client redis.RedisClient, appLogger logger.LoggerInterface, entity string, ttl time.Duration) *cachedRepository[T, K] {
	return &cachedRepository[T, K]{
		Generic: inner,
		redis:   client,
		logger:  appLogger,
		entity:  entity,
		ttl:     ttl,
	}
}

// Key returns the cache key of the entity stored under id.
func Key(entity string, id any) string {
	return fmt.Sprintf("%s:%s:%v", keyPrefix, entity, id)
}

// GetByID serves from the cache when possible and fills it on a miss.
// Absent records are not cached.
func (r *cachedRepository[T, K]) GetByID(ctx context.Context, id K) (*T, error) {
	key := Key(r.entity, id)
	if cached, ok := r.read(ctx, key); ok {
		return cached, nil
	}

	entity, err := r.Generic.GetByID(ctx, id)
	if err != nil || entity == nil {
		return entity, err
	}

	data, err := json.Marshal(entity)
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to encode cache entry", "key", key, "error", err)
		return entity, nil
	}
	if err := r.redis.Set(ctx, key, string(data), r.ttl); err != nil {
		r.logger.WarnContext(ctx, "Failed to fill cache", "key", key, "error", err)
	}
	return entity, nil
}

func (r *cachedRepository[T, K]) read(ctx context.Context, key string) (*T, bool) {
	raw, err := r.redis.Get(ctx, key)
	if errors.Is(err, redis.ErrMiss) {
		r.logger.DebugContext(ctx, "Cache miss", "key", key)
		return nil, false
	}
	if err != nil {
		r.logger.WarnContext(ctx, "Cache read failed, falling back to store", "key", key, "error", err)
		return nil, false
	}

	var entity T
	if err := json.Unmarshal([]byte(raw), &entity); err != nil {
		r.logger.WarnContext(ctx, "Discarding undecodable cache entry", "key", key, "error", err)
		r.invalidate(ctx, key)
		return nil, false
	}
	r.logger.DebugContext(ctx, "Cache hit", "key", key)
	return &entity, true
}

// Update writes through to the store and drops the cached copy.
func (r *cachedRepository[T, K]) Update(ctx context.Context, entity *T) error {
	if err := r.Generic.Update(ctx, entity); err != nil {
		return err
	}
	r.invalidate(ctx, Key(r.entity, (*entity).PrimaryKey()))
	return nil
}

// Delete removes the record and drops the cached copy.
func (r *cachedRepository[T, K]) Delete(ctx context.Context, id K) error {
	if err := r.Generic.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, Key(r.entity, id))
	return nil
}

func (r *cachedRepository[T, K]) invalidate(ctx context.Context, key string) {
	if err := r.redis.Del(ctx, key); err != nil {
		r.logger.WarnContext(ctx, "Failed to invalidate cache entry", "key", key, "error", err)
	}
}
