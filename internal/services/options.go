package services

import (
	"fmt"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
)

// OptimizationLevel selects how much local-search effort each day gets.
type OptimizationLevel string

const (
	// LevelBasic returns the raw nearest-neighbor tour.
	LevelBasic OptimizationLevel = "basic"
	// LevelAdvanced refines the tour with 2-opt (default pass cap).
	LevelAdvanced OptimizationLevel = "advanced"
	// LevelPremium runs 2-opt with a raised pass cap.
	LevelPremium OptimizationLevel = "premium"
)

const (
	// DefaultMaxIterations caps full 2-opt passes at the advanced level.
	DefaultMaxIterations = 1000
	// PremiumMaxIterations caps full 2-opt passes at the premium level.
	PremiumMaxIterations = 5000
	// DefaultFuelCostPerKm is the operating cost estimate in currency/km.
	DefaultFuelCostPerKm = 2.50
)

// ParseOptimizationLevel maps a user-supplied string onto a known level.
func ParseOptimizationLevel(s string) (OptimizationLevel, error) {
	switch OptimizationLevel(s) {
	case LevelBasic, LevelAdvanced, LevelPremium:
		return OptimizationLevel(s), nil
	}
	return "", fmt.Errorf("level %q: %w", s, domain.ErrUnknownLevel)
}

// PlannerConfig carries the explicit knobs of a planning run.
// Zero values resolve to level defaults via withDefaults.
type PlannerConfig struct {
	Level         OptimizationLevel
	MaxIterations int
	FuelCostPerKm float64
}

func (c PlannerConfig) withDefaults() PlannerConfig {
	if c.Level == "" {
		c.Level = LevelAdvanced
	}
	if c.MaxIterations <= 0 {
		switch c.Level {
		case LevelPremium:
			c.MaxIterations = PremiumMaxIterations
		default:
			c.MaxIterations = DefaultMaxIterations
		}
	}
	if c.FuelCostPerKm <= 0 {
		c.FuelCostPerKm = DefaultFuelCostPerKm
	}
	return c
}
