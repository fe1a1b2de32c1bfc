package service

import (
	"math"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
)

const earthRadiusKm = 6367

// Distance returns the haversine great-circle distance in kilometers.
func Distance(a, b domain.Coordinate) float64 {
	lat1, lon1 := toRad(a.Lat), toRad(a.Lon)
	lat2, lon2 := toRad(b.Lat), toRad(b.Lon)
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	return earthRadiusKm * 2 * math.Asin(math.Sqrt(h))
}

// InBox reports whether c lies strictly inside box. Points on an edge are
// outside.
func InBox(c domain.Coordinate, box domain.BoundingBox) bool {
	return box.BottomLeft.Lat < c.Lat && c.Lat < box.TopRight.Lat &&
		box.TopRight.Lon < c.Lon && c.Lon < box.BottomLeft.Lon
}

func ValidCoordinate(c *domain.Coordinate) bool {
	if c == nil || math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
