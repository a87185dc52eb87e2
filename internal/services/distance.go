package services

import (
	"math"

	"tripweave/internal/models/request_models"
)

const earthRadiusKm = 6371.0

const (
	TransitModeWalk  = "walk"
	TransitModeDrive = "drive"
)

// Haversine returns the great-circle distance between two coordinate pairs
// in kilometers.
func Haversine(a, b request_models.Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// TransitMinutes maps a distance to an estimated door-to-door travel time.
// The buckets are monotonic in distance.
func TransitMinutes(distanceKm float64) int {
	switch {
	case distanceKm < 1:
		return 10
	case distanceKm < 5:
		return 20
	case distanceKm < 15:
		return 35
	case distanceKm < 30:
		return 50
	default:
		return int(60 + 1.5*(distanceKm-30))
	}
}

// TransitMode is a display hint only; it does not affect the time estimate.
func TransitMode(distanceKm float64) string {
	if distanceKm < 2 {
		return TransitModeWalk
	}
	return TransitModeDrive
}
