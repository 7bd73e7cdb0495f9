package ports

import (
	"context"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
)

// Port: a boundary for retrieving depot candidates from a data source.
type DepotRepository interface {
	// Retrieve all depot candidates in their configured order.
	// Order matters: depot selection breaks ties by first candidate.
	ListDepots(ctx context.Context) ([]domain.Depot, error)
}
