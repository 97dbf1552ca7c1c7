package courier

import (
	"dispatch/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	courierEntity := &entities.Courier{
		ID:            c.ID,
		UserID:        c.UserID,
		VehicleID:     c.VehicleID,
		Status:        entities.CourierStatusType(c.Status),
		Rating:        c.Rating,
		DeliveryCount: c.DeliveryCount,
		IsVerified:    c.IsVerified,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}

	// локация считается заданной только при обеих координатах
	if c.Longitude != nil && c.Latitude != nil {
		location := entities.GeoPoint{
			Longitude: *c.Longitude,
			Latitude:  *c.Latitude,
		}
		if c.Address != nil {
			location.Address = *c.Address
		}
		courierEntity.Location = &location
	}

	return courierEntity
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}
	courierDB := &CourierModifyDB{}

	if courierModify.ID != nil {
		courierDB.ID = courierModify.ID
	}
	if courierModify.Status != nil {
		statusType := courierModify.Status.String()
		courierDB.Status = &statusType
	}
	if courierModify.Rating != nil {
		courierDB.Rating = courierModify.Rating
	}
	if courierModify.IsVerified != nil {
		courierDB.IsVerified = courierModify.IsVerified
	}

	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}
