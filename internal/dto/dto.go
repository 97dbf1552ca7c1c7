// Package dto описывает JSON-формы REST-запросов и ответов.
package dto

import "time"

type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Address   string  `json:"address,omitempty"`
}

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type DeliveryCreate struct {
	PickupAddress  string      `json:"pickup_address"`
	DropoffAddress string      `json:"dropoff_address"`
	WeightKg       float64     `json:"weight_kg"`
	Dimensions     *Dimensions `json:"dimensions,omitempty"`
}

type DeliveryUpdate struct {
	Pickup     *GeoPoint   `json:"pickup,omitempty"`
	Dropoff    *GeoPoint   `json:"dropoff,omitempty"`
	WeightKg   *float64    `json:"weight_kg,omitempty"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
}

type DeliveryStatusUpdate struct {
	Status string `json:"status"`
}

type DeliveryAssign struct {
	CourierID int64 `json:"courier_id"`
}

type Delivery struct {
	ID           int64       `json:"id"`
	UserID       int64       `json:"user_id"`
	CourierID    *int64      `json:"courier_id,omitempty"`
	Pickup       GeoPoint    `json:"pickup"`
	Dropoff      GeoPoint    `json:"dropoff"`
	WeightKg     float64     `json:"weight_kg"`
	Dimensions   *Dimensions `json:"dimensions,omitempty"`
	DistanceKm   float64     `json:"distance_km"`
	Price        float64     `json:"price"`
	TrackingCode string      `json:"tracking_code"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

type Insurance struct {
	Provider     string     `json:"provider,omitempty"`
	PolicyNumber string     `json:"policy_number,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

type Registration struct {
	Number    string     `json:"number,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type VehicleCreate struct {
	Type           string        `json:"type"`
	Make           string        `json:"make"`
	Model          string        `json:"model"`
	Year           int           `json:"year"`
	LicensePlate   string        `json:"license_plate"`
	Color          string        `json:"color,omitempty"`
	CapacityWeight float64       `json:"capacity_weight,omitempty"`
	CapacityVolume float64       `json:"capacity_volume,omitempty"`
	Insurance      *Insurance    `json:"insurance,omitempty"`
	Registration   *Registration `json:"registration,omitempty"`
}

type CourierRegister struct {
	Vehicle         VehicleCreate `json:"vehicle"`
	LocationAddress string        `json:"location_address,omitempty"`
	Location        *GeoPoint     `json:"location,omitempty"`
}

type CourierRegisterResponse struct {
	ID int64 `json:"id"`
}

type CourierUpdate struct {
	Status     *string  `json:"status,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	IsVerified *bool    `json:"is_verified,omitempty"`
}

type CourierLocationUpdate struct {
	Address  string    `json:"address,omitempty"`
	Location *GeoPoint `json:"location,omitempty"`
}

type Courier struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	VehicleID     int64     `json:"vehicle_id"`
	Status        string    `json:"status"`
	Rating        *float64  `json:"rating,omitempty"`
	DeliveryCount int64     `json:"delivery_count"`
	Location      *GeoPoint `json:"location,omitempty"`
	IsVerified    bool      `json:"is_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
