package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)

	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// PlanBuilds counts weekly plan computations by optimization level and outcome.
	PlanBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "plan_builds_total", Help: "Weekly plan computations by level and outcome."},
		[]string{"level", "outcome"},
	)

	// PlanDuration records end-to-end plan computation time in seconds.
	PlanDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "plan_build_duration_seconds", Help: "Weekly plan computation time in seconds.", Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10}},
		[]string{"level"},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on the service registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(PlanBuilds)
		Registry.MustRegister(PlanDuration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
