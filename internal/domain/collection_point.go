package domain

// Represents a single geo-located pickup of recyclable material.
// A CollectionPoint belongs to exactly one weekday and is immutable
// once loaded; planning never mutates the record set.
type CollectionPoint struct {
	Name     string
	Coords   Coordinates
	Material string
	WeightKg float64
	Day      string
}
