// Package geo estimates distances and travel times between visit locations.
package geo

import (
	"math"

	"homecare-scheduler/internal/domain"
)

const (
	earthRadiusKm = 6371.0
	// roadFactor inflates straight-line distance for non-straight roads.
	roadFactor   = 1.3
	avgSpeedKmh  = 30.0
	bufferMinute = 5.0
)

// Distance returns the great-circle distance between a and b in kilometers.
func Distance(a, b domain.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// TravelTime estimates driving minutes between a and b, including a fixed buffer.
func TravelTime(a, b domain.Coordinate) int {
	km := Distance(a, b) * roadFactor
	return int(math.Ceil(km/avgSpeedKmh*60 + bufferMinute))
}
