package domain

// Represents one visit in a finished route. LegKm is the distance driven
// from the previous node (the depot for the first stop).
type RouteStop struct {
	Sequence int
	Point    CollectionPoint
	LegKm    float64
}

// Represents the optimized collection route for a single day.
// The depot is the implicit origin and is excluded from Stops. The route
// is open: it ends at the last stop with no return leg to the depot.
// A RoutePlan is immutable planning output and contains no side effects.
type RoutePlan struct {
	Day        string
	Depot      Depot
	Stops      []RouteStop
	DistanceKm float64
	WeightKg   float64
	Revenue    float64
	FuelCost   float64
	Efficiency float64
}

// Records a day whose plan could not be computed. Reason carries enough
// context (record identifiers) to report the failure precisely.
type DayFailure struct {
	Day    string
	Reason string
}

// Aggregates one RoutePlan per successfully planned day plus week totals.
// Days that failed validation appear in Failures and nowhere else.
type WeeklyPlan struct {
	PlanID          string
	Days            map[string]*RoutePlan
	Failures        []DayFailure
	TotalDistanceKm float64
	TotalWeightKg   float64
	TotalRevenue    float64
	TotalFuelCost   float64
}
