package entities

import "math"

// earthRadiusKm средний радиус Земли.
const earthRadiusKm = 6371.0

const (
	LongitudeMin = -180.0
	LongitudeMax = 180.0
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
)

// GeoPoint неизменяемая пара координат, при обновлении локации
// заменяется целиком, а не мутируется по полям.
type GeoPoint struct {
	Longitude float64
	Latitude  float64
	Address   string
}

// DistanceKm расстояние по дуге большого круга (haversine).
// Координаты должны быть провалидированы до вызова.
func DistanceKm(a, b GeoPoint) float64 {
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Latitude))*math.Cos(radians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
