package dto

type PlanRequest struct {
	Days              []string `json:"days"`
	OptimizationLevel string   `json:"optimization_level"`
	MaxIterations     int      `json:"max_iterations"`
}

type RouteStopResponse struct {
	Sequence int     `json:"sequence"`
	Name     string  `json:"name"`
	Material string  `json:"material"`
	WeightKg float64 `json:"weight_kg"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	LegKm    float64 `json:"leg_km"`
}

type RoutePlanResponse struct {
	Day        string              `json:"day"`
	Depot      *DepotResponse      `json:"depot,omitempty"`
	Stops      []RouteStopResponse `json:"stops"`
	DistanceKm float64             `json:"distance_km"`
	WeightKg   float64             `json:"weight_kg"`
	Revenue    float64             `json:"revenue"`
	FuelCost   float64             `json:"fuel_cost"`
	Efficiency float64             `json:"efficiency"`
}

type DayFailureResponse struct {
	Day    string `json:"day"`
	Reason string `json:"reason"`
}

type WeeklyPlanResponse struct {
	PlanID          string               `json:"plan_id"`
	Cached          bool                 `json:"cached"`
	Days            []RoutePlanResponse  `json:"days"`
	Failures        []DayFailureResponse `json:"failures,omitempty"`
	TotalDistanceKm float64              `json:"total_distance_km"`
	TotalWeightKg   float64              `json:"total_weight_kg"`
	TotalRevenue    float64              `json:"total_revenue"`
	TotalFuelCost   float64              `json:"total_fuel_cost"`
}
