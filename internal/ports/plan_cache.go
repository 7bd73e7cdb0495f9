package ports

import (
	"context"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
)

// Optional cache for computed weekly plans, keyed by request fingerprint.
// Planning is deterministic for a fixed record set, so a cached plan is
// valid until the underlying records change (bounded by the cache TTL).
type PlanCache interface {
	// Return the cached plan for key, or ok=false on a miss.
	GetWeeklyPlan(ctx context.Context, key string) (plan *domain.WeeklyPlan, ok bool, err error)
	// Store the plan under key.
	PutWeeklyPlan(ctx context.Context, key string, plan *domain.WeeklyPlan) error
}
