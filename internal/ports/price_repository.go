package ports

import (
	"context"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
)

// Port: a boundary for retrieving the material price table.
type MaterialPriceRepository interface {
	// Retrieve the material → price-per-kg mapping for the planning run.
	ListMaterialPrices(ctx context.Context) (domain.PriceTable, error)
}
