package entities

import "time"

// Vehicle справочные данные, поведения нет, принадлежит ровно одному курьеру.
type Vehicle struct {
	ID             int64
	Type           VehicleType
	Make           string
	Model          string
	Year           int
	LicensePlate   string
	Color          string
	CapacityWeight float64
	CapacityVolume float64
	Insurance      InsuranceRecord
	Registration   RegistrationRecord
	CreatedAt      time.Time
}

type VehicleType string

const (
	Bicycle    VehicleType = "bicycle"
	Motorcycle VehicleType = "motorcycle"
	Car        VehicleType = "car"
	Van        VehicleType = "van"
	Truck      VehicleType = "truck"
)

func (t VehicleType) String() string {
	return string(t)
}

type InsuranceRecord struct {
	Provider     string
	PolicyNumber string
	ExpiryDate   *time.Time
}

type RegistrationRecord struct {
	Number     string
	ExpiryDate *time.Time
}

type VehicleModify struct {
	ID             *int64
	Type           *VehicleType
	Make           *string
	Model          *string
	Year           *int
	LicensePlate   *string
	Color          *string
	CapacityWeight *float64
	CapacityVolume *float64
	Insurance      *InsuranceRecord
	Registration   *RegistrationRecord
}
