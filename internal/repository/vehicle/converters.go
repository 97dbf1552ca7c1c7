package vehicle

import (
	"dispatch/internal/entities"
)

func FromDomainModify(vehicleModify *entities.VehicleModify) *VehicleModifyDB {
	if vehicleModify == nil {
		return nil
	}
	vehicleDB := &VehicleModifyDB{
		Make:           vehicleModify.Make,
		Model:          vehicleModify.Model,
		Year:           vehicleModify.Year,
		LicensePlate:   vehicleModify.LicensePlate,
		Color:          vehicleModify.Color,
		CapacityWeight: vehicleModify.CapacityWeight,
		CapacityVolume: vehicleModify.CapacityVolume,
	}

	if vehicleModify.Type != nil {
		vehicleType := vehicleModify.Type.String()
		vehicleDB.Type = &vehicleType
	}
	if vehicleModify.Insurance != nil {
		if vehicleModify.Insurance.Provider != "" {
			provider := vehicleModify.Insurance.Provider
			vehicleDB.InsuranceProvider = &provider
		}
		if vehicleModify.Insurance.PolicyNumber != "" {
			policyNumber := vehicleModify.Insurance.PolicyNumber
			vehicleDB.InsurancePolicyNumber = &policyNumber
		}
		vehicleDB.InsuranceExpiresAt = vehicleModify.Insurance.ExpiryDate
	}
	if vehicleModify.Registration != nil {
		if vehicleModify.Registration.Number != "" {
			number := vehicleModify.Registration.Number
			vehicleDB.RegistrationNumber = &number
		}
		vehicleDB.RegistrationExpiresAt = vehicleModify.Registration.ExpiryDate
	}

	return vehicleDB
}
