package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/api/handlers"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/metrics"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/ports"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/services"
)

// RouterConfig carries the wiring for the HTTP surface.
type RouterConfig struct {
	Collections ports.CollectionPointRepository
	Depots      ports.DepotRepository
	Prices      ports.MaterialPriceRepository
	// PlanCache is optional; nil disables caching of computed plans.
	PlanCache ports.PlanCache

	DefaultLevel         services.OptimizationLevel
	DefaultMaxIterations int
	FuelCostPerKm        float64
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	recordsHandler := &handlers.RecordsHandler{
		Collections: cfg.Collections,
		Depots:      cfg.Depots,
		Prices:      cfg.Prices,
	}
	planHandler := &handlers.PlanHandler{
		Collections:          cfg.Collections,
		Depots:               cfg.Depots,
		Prices:               cfg.Prices,
		Cache:                cfg.PlanCache,
		DefaultLevel:         cfg.DefaultLevel,
		DefaultMaxIterations: cfg.DefaultMaxIterations,
		FuelCostPerKm:        cfg.FuelCostPerKm,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/collections", recordsHandler.ListCollectionPoints)
	mux.HandleFunc("/depots", recordsHandler.ListDepots)
	mux.HandleFunc("/prices", recordsHandler.ListMaterialPrices)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}
