package domain

import (
	"fmt"
	"math"
)

// Earth radius used for great-circle distances, in kilometers.
const earthRadiusKm = 6371.0

// Immutable geographic coordinates in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Validate rejects coordinates outside the valid latitude/longitude range.
// The haversine formula still yields a number for out-of-range input, so
// bad records must be caught before any distance work happens.
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %.6f: %w", c.Lat, ErrInvalidCoordinate)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %.6f: %w", c.Lon, ErrInvalidCoordinate)
	}
	return nil
}

// DistanceKm returns the haversine great-circle distance to other, in km.
// Symmetric, non-negative, and zero for identical coordinates.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	lat1 := c.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - c.Lat) * math.Pi / 180
	dLon := (other.Lon - c.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	arc := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * arc
}
