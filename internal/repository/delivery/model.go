package delivery

import "time"

type DeliveryDB struct {
	ID               int64
	UserID           int64
	CourierID        *int64
	PickupLongitude  float64
	PickupLatitude   float64
	PickupAddress    string
	DropoffLongitude float64
	DropoffLatitude  float64
	DropoffAddress   string
	WeightKg         float64
	Length           *float64
	Width            *float64
	Height           *float64
	DistanceKm       float64
	Price            float64
	TrackingCode     string
	Status           string
	CreatedAt        time.Time
}
