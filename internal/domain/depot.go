package domain

// Candidate start point for a day's collection route.
type Depot struct {
	Name   string
	Coords Coordinates
}
