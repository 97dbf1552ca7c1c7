package vehicle

import "time"

type VehicleModifyDB struct {
	Type                  *string
	Make                  *string
	Model                 *string
	Year                  *int
	LicensePlate          *string
	Color                 *string
	CapacityWeight        *float64
	CapacityVolume        *float64
	InsuranceProvider     *string
	InsurancePolicyNumber *string
	InsuranceExpiresAt    *time.Time
	RegistrationNumber    *string
	RegistrationExpiresAt *time.Time
}
