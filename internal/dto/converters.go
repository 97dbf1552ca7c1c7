package dto

import (
	"dispatch/internal/entities"
)

func NewGeoPoint(p entities.GeoPoint) GeoPoint {
	return GeoPoint{
		Longitude: p.Longitude,
		Latitude:  p.Latitude,
		Address:   p.Address,
	}
}

func NewDelivery(d *entities.Delivery) Delivery {
	deliveryDTO := Delivery{
		ID:           d.ID,
		UserID:       d.UserID,
		CourierID:    d.CourierID,
		Pickup:       NewGeoPoint(d.Pickup),
		Dropoff:      NewGeoPoint(d.Dropoff),
		WeightKg:     d.WeightKg,
		DistanceKm:   d.DistanceKm,
		Price:        d.Price,
		TrackingCode: d.TrackingCode,
		Status:       d.Status.String(),
		CreatedAt:    d.CreatedAt,
	}

	if d.Dimensions != nil {
		deliveryDTO.Dimensions = &Dimensions{
			Length: d.Dimensions.Length,
			Width:  d.Dimensions.Width,
			Height: d.Dimensions.Height,
		}
	}

	return deliveryDTO
}

func NewDeliveryList(deliveries []entities.Delivery) []Delivery {
	result := make([]Delivery, len(deliveries))
	for i := range deliveries {
		result[i] = NewDelivery(&deliveries[i])
	}
	return result
}

func NewCourier(c *entities.Courier) Courier {
	courierDTO := Courier{
		ID:            c.ID,
		UserID:        c.UserID,
		VehicleID:     c.VehicleID,
		Status:        c.Status.String(),
		Rating:        c.Rating,
		DeliveryCount: c.DeliveryCount,
		IsVerified:    c.IsVerified,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}

	if c.Location != nil {
		location := NewGeoPoint(*c.Location)
		courierDTO.Location = &location
	}

	return courierDTO
}

func NewCourierList(couriers []entities.Courier) []Courier {
	result := make([]Courier, len(couriers))
	for i := range couriers {
		result[i] = NewCourier(&couriers[i])
	}
	return result
}
