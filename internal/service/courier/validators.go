package courier

import (
	"math"
	"strings"

	"dispatch/internal/entities"
)

func isValidStatus(status string) bool {
	switch status {
	case "available", "unavailable", "on-delivery":
		return true
	default:
		return false
	}
}

func isValidVehicleType(vehicleType string) bool {
	switch vehicleType {
	case "bicycle", "motorcycle", "car", "van", "truck":
		return true
	default:
		return false
	}
}

func isValidRating(rating float64) bool {
	return rating >= entities.RatingMin && rating <= entities.RatingMax
}

func isValidLicensePlate(plate string) bool {
	return strings.TrimSpace(plate) != ""
}

func isValidGeoPoint(p entities.GeoPoint) bool {
	if math.IsNaN(p.Longitude) || math.IsInf(p.Longitude, 0) ||
		math.IsNaN(p.Latitude) || math.IsInf(p.Latitude, 0) {
		return false
	}
	return p.Longitude >= entities.LongitudeMin && p.Longitude <= entities.LongitudeMax &&
		p.Latitude >= entities.LatitudeMin && p.Latitude <= entities.LatitudeMax
}
