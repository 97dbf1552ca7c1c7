package delivery

import (
	"dispatch/internal/entities"
)

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	deliveryEntity := &entities.Delivery{
		ID:        d.ID,
		UserID:    d.UserID,
		CourierID: d.CourierID,
		Pickup: entities.GeoPoint{
			Longitude: d.PickupLongitude,
			Latitude:  d.PickupLatitude,
			Address:   d.PickupAddress,
		},
		Dropoff: entities.GeoPoint{
			Longitude: d.DropoffLongitude,
			Latitude:  d.DropoffLatitude,
			Address:   d.DropoffAddress,
		},
		WeightKg:     d.WeightKg,
		DistanceKm:   d.DistanceKm,
		Price:        d.Price,
		TrackingCode: d.TrackingCode,
		Status:       entities.DeliveryStatusType(d.Status),
		CreatedAt:    d.CreatedAt,
	}

	// габариты либо заданы целиком, либо отсутствуют
	if d.Length != nil && d.Width != nil && d.Height != nil {
		deliveryEntity.Dimensions = &entities.Dimensions{
			Length: *d.Length,
			Width:  *d.Width,
			Height: *d.Height,
		}
	}

	return deliveryEntity
}

func ToDomainList(deliveriesDB []DeliveryDB) []entities.Delivery {
	if len(deliveriesDB) == 0 {
		return []entities.Delivery{}
	}

	result := make([]entities.Delivery, len(deliveriesDB))
	for i, deliveryDB := range deliveriesDB {
		result[i] = *ToDomain(&deliveryDB)
	}
	return result
}
