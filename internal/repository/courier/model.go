package courier

import "time"

type CourierDB struct {
	ID            int64
	UserID        int64
	VehicleID     int64
	Status        string
	Rating        *float64
	DeliveryCount int64
	Longitude     *float64
	Latitude      *float64
	Address       *string
	IsVerified    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CourierModifyDB struct {
	ID         *int64
	Status     *string
	Rating     *float64
	IsVerified *bool
}
