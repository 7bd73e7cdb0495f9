package ports

import (
	"context"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
)

// Port: a boundary for retrieving collection-point records from a data source.
type CollectionPointRepository interface {
	// Retrieve all collection points scheduled for the week.
	ListCollectionPoints(ctx context.Context) ([]domain.CollectionPoint, error)
}
