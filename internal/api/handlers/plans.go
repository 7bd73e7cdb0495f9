package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/api/dto"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/metrics"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/ports"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/services"
)

type PlanHandler struct {
	Collections ports.CollectionPointRepository
	Depots      ports.DepotRepository
	Prices      ports.MaterialPriceRepository
	// Cache is optional; nil disables plan caching.
	Cache ports.PlanCache

	DefaultLevel services.OptimizationLevel
	// DefaultMaxIterations applies when the request leaves max_iterations
	// unset; zero defers to the level's own default.
	DefaultMaxIterations int
	FuelCostPerKm        float64
}

// Plan computes (or serves from cache) the weekly collection plan.
// It coordinates repository access, per-day optimization, and caching;
// all routing work happens in the services package.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	levelStr := strings.TrimSpace(req.OptimizationLevel)
	level := h.DefaultLevel
	if levelStr != "" {
		parsed, err := services.ParseOptimizationLevel(levelStr)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "optimization_level must be one of basic, advanced, premium")
			return
		}
		level = parsed
	}
	if level == "" {
		level = services.LevelAdvanced
	}

	if req.MaxIterations < 0 || req.MaxIterations > 100000 {
		writeError(w, r, http.StatusBadRequest, "max_iterations must be between 0 and 100000")
		return
	}

	for _, day := range req.Days {
		if strings.TrimSpace(day) == "" {
			writeError(w, r, http.StatusBadRequest, "days must not contain empty labels")
			return
		}
	}

	maxIterations := req.MaxIterations
	if maxIterations == 0 {
		maxIterations = h.DefaultMaxIterations
	}

	svcReq := services.PlanWeekRequest{
		Days: req.Days,
		Config: services.PlannerConfig{
			Level:         level,
			MaxIterations: maxIterations,
			FuelCostPerKm: h.FuelCostPerKm,
		},
	}

	key := planFingerprint(svcReq)
	if h.Cache != nil {
		if cached, ok, err := h.Cache.GetWeeklyPlan(r.Context(), key); err != nil {
			log.Printf("plan cache lookup failed: %v", err)
		} else if ok {
			writeJSON(w, r, http.StatusOK, weeklyPlanResponse(cached, req.Days, true))
			return
		}
	}

	start := time.Now()
	week, err := services.PlanWeek(r.Context(), svcReq, h.Collections, h.Depots, h.Prices)
	if err != nil {
		metrics.PlanBuilds.WithLabelValues(string(level), "error").Inc()
		log.Printf("plan week failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	metrics.PlanBuilds.WithLabelValues(string(level), "ok").Inc()
	metrics.PlanDuration.WithLabelValues(string(level)).Observe(time.Since(start).Seconds())

	if h.Cache != nil {
		if err := h.Cache.PutWeeklyPlan(r.Context(), key, week); err != nil {
			log.Printf("plan cache store failed: %v", err)
		}
	}

	writeJSON(w, r, http.StatusOK, weeklyPlanResponse(week, req.Days, false))
}

// planFingerprint derives a stable cache key from the planning inputs.
func planFingerprint(req services.PlanWeekRequest) string {
	var b strings.Builder
	b.WriteString(string(req.Config.Level))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(req.Config.MaxIterations))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(req.Config.FuelCostPerKm, 'f', -1, 64))
	for _, day := range req.Days {
		b.WriteByte('|')
		b.WriteString(day)
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// weeklyPlanResponse renders a WeeklyPlan in the requested day order,
// falling back to the plan's own day set sorted by weekday. Repeated
// labels in the request render once, matching the planner's treatment.
func weeklyPlanResponse(week *domain.WeeklyPlan, requestedDays []string, cached bool) dto.WeeklyPlanResponse {
	seen := make(map[string]struct{}, len(requestedDays))
	days := make([]string, 0, len(requestedDays))
	for _, day := range requestedDays {
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	if len(days) == 0 {
		days = make([]string, 0, len(week.Days))
		for day := range week.Days {
			days = append(days, day)
		}
		sort.Slice(days, func(i, j int) bool { return weekdayRank(days[i]) < weekdayRank(days[j]) })
	}

	res := dto.WeeklyPlanResponse{
		PlanID:          week.PlanID,
		Cached:          cached,
		Days:            make([]dto.RoutePlanResponse, 0, len(days)),
		TotalDistanceKm: week.TotalDistanceKm,
		TotalWeightKg:   week.TotalWeightKg,
		TotalRevenue:    week.TotalRevenue,
		TotalFuelCost:   week.TotalFuelCost,
	}

	for _, day := range days {
		plan, ok := week.Days[day]
		if !ok {
			continue
		}

		stops := make([]dto.RouteStopResponse, 0, len(plan.Stops))
		for _, s := range plan.Stops {
			stops = append(stops, dto.RouteStopResponse{
				Sequence: s.Sequence,
				Name:     s.Point.Name,
				Material: s.Point.Material,
				WeightKg: s.Point.WeightKg,
				Lat:      s.Point.Coords.Lat,
				Lon:      s.Point.Coords.Lon,
				LegKm:    s.LegKm,
			})
		}

		dayRes := dto.RoutePlanResponse{
			Day:        plan.Day,
			Stops:      stops,
			DistanceKm: plan.DistanceKm,
			WeightKg:   plan.WeightKg,
			Revenue:    plan.Revenue,
			FuelCost:   plan.FuelCost,
			Efficiency: plan.Efficiency,
		}
		// An empty day has no depot assignment.
		if len(plan.Stops) > 0 {
			dayRes.Depot = &dto.DepotResponse{
				Name: plan.Depot.Name,
				Lat:  plan.Depot.Coords.Lat,
				Lon:  plan.Depot.Coords.Lon,
			}
		}
		res.Days = append(res.Days, dayRes)
	}

	for _, f := range week.Failures {
		res.Failures = append(res.Failures, dto.DayFailureResponse{Day: f.Day, Reason: f.Reason})
	}

	return res
}

func weekdayRank(day string) int {
	switch day {
	case "Monday":
		return 1
	case "Tuesday":
		return 2
	case "Wednesday":
		return 3
	case "Thursday":
		return 4
	case "Friday":
		return 5
	case "Saturday":
		return 6
	case "Sunday":
		return 7
	}
	return 8
}
