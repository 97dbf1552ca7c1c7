package entities

import "time"

type Courier struct {
	ID            int64
	UserID        int64
	VehicleID     int64
	Status        CourierStatusType
	Rating        *float64
	DeliveryCount int64
	Location      *GeoPoint
	IsVerified    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CourierStatusType string

const (
	CourierAvailable   CourierStatusType = "available"
	CourierUnavailable CourierStatusType = "unavailable"
	CourierOnDelivery  CourierStatusType = "on-delivery"
)

const DefaultCourierStatus = CourierAvailable

func (t CourierStatusType) String() string {
	return string(t)
}

const (
	RatingMin = 1.0
	RatingMax = 5.0
)

type CourierModify struct {
	ID         *int64
	Status     *CourierStatusType
	Rating     *float64
	IsVerified *bool
}
