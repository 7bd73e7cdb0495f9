package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
)

// Redis-backed cache for computed weekly plans.
//
// Planning is CPU-bound and deterministic for a fixed record set, so
// identical requests can reuse a cached plan until the TTL expires or
// the records are reseeded.
type RedisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

const defaultPlanTTL = 10 * time.Minute

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	if ttl <= 0 {
		ttl = defaultPlanTTL
	}
	return &RedisPlanCache{client: client, ttl: ttl}
}

func planKey(key string) string { return "weekly_plan:" + key }

// Return the cached plan for key, or ok=false on a miss.
func (c *RedisPlanCache) GetWeeklyPlan(ctx context.Context, key string) (*domain.WeeklyPlan, bool, error) {
	if c.client == nil {
		return nil, false, errors.New("plan cache: client is nil")
	}

	raw, err := c.client.Get(ctx, planKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("plan cache: get %q: %w", key, err)
	}

	var plan domain.WeeklyPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		// A corrupt entry is treated as a miss rather than a failure;
		// the caller recomputes and overwrites it.
		return nil, false, nil
	}

	return &plan, true, nil
}

// Store the plan under key with the configured TTL.
func (c *RedisPlanCache) PutWeeklyPlan(ctx context.Context, key string, plan *domain.WeeklyPlan) error {
	if c.client == nil {
		return errors.New("plan cache: client is nil")
	}

	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("plan cache: marshal plan: %w", err)
	}

	if err := c.client.Set(ctx, planKey(key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("plan cache: set %q: %w", key, err)
	}

	return nil
}
