package delivery

import (
	"math"
	"strings"

	"dispatch/internal/entities"
)

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidGeoPoint(p entities.GeoPoint) bool {
	if math.IsNaN(p.Longitude) || math.IsInf(p.Longitude, 0) ||
		math.IsNaN(p.Latitude) || math.IsInf(p.Latitude, 0) {
		return false
	}
	return p.Longitude >= entities.LongitudeMin && p.Longitude <= entities.LongitudeMax &&
		p.Latitude >= entities.LatitudeMin && p.Latitude <= entities.LatitudeMax
}

func isValidPackage(weightKg float64, dims *entities.Dimensions) bool {
	if weightKg < 0 || math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		return false
	}
	if dims == nil {
		return true
	}
	return dims.Length >= 0 && dims.Width >= 0 && dims.Height >= 0
}

func isValidStatus(status string) bool {
	switch entities.DeliveryStatusType(status) {
	case entities.DeliveryRequested,
		entities.DeliveryAccepted,
		entities.DeliveryPickedUp,
		entities.DeliveryInTransit,
		entities.DeliveryDelivered,
		entities.DeliveryCancelled:
		return true
	default:
		return false
	}
}
