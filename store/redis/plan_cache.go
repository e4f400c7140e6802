// Package redis implements the plan cache on Redis. Documents are
// stored JSON-encoded under a per-group key with a TTL, matching the
// short useful life of a fetched plan.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Aashiq1/TripGenie-sub000/store"
	"github.com/Aashiq1/TripGenie-sub000/types"
)

const keyPrefix = "plancache:"

// PlanCache is the Redis-backed store.PlanCache implementation.
type PlanCache struct {
	client *redis.Client
}

// NewPlanCache creates a PlanCache on the given Redis client.
func NewPlanCache(client *redis.Client) *PlanCache {
	return &PlanCache{client: client}
}

var _ store.PlanCache = (*PlanCache)(nil)

func cacheKey(groupCode string) string {
	return keyPrefix + groupCode
}

// Get returns the cached raw plan for the group, or store.ErrCacheMiss.
func (c *PlanCache) Get(ctx context.Context, groupCode string) (types.RawTripPlan, error) {
	data, err := c.client.Get(ctx, cacheKey(groupCode)).Bytes()
	if err == redis.Nil {
		return nil, store.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("reading plan cache: %w", err)
	}

	var plan types.RawTripPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		// A corrupt entry is as good as a miss; the caller refetches.
		return nil, store.ErrCacheMiss
	}
	return plan, nil
}

// Set stores the raw plan JSON-encoded with the given TTL.
func (c *PlanCache) Set(ctx context.Context, groupCode string, plan types.RawTripPlan, ttl time.Duration) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encoding plan for cache: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(groupCode), data, ttl).Err(); err != nil {
		return fmt.Errorf("writing plan cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached plan for the group.
func (c *PlanCache) Invalidate(ctx context.Context, groupCode string) error {
	if err := c.client.Del(ctx, cacheKey(groupCode)).Err(); err != nil {
		return fmt.Errorf("invalidating plan cache: %w", err)
	}
	return nil
}
