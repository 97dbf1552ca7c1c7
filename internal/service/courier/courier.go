package courier

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Courier struct {
	repository  Repository
	vehicleRepo VehicleRepository
	geocoder    Geocoder
	txManager   TxManager
}

func New(
	repository Repository,
	vehicleRepo VehicleRepository,
	geocoder Geocoder,
	txManager TxManager,
) *Courier {
	return &Courier{
		repository:  repository,
		vehicleRepo: vehicleRepo,
		geocoder:    geocoder,
		txManager:   txManager,
	}
}

// Registration заявка пользователя на роль курьера: транспорт обязателен,
// стартовая локация задается адресом либо координатами.
type Registration struct {
	Vehicle         entities.VehicleModify
	LocationAddress string
	Location        *entities.GeoPoint
}

// RegisterCourier создает курьера для инициатора запроса и поднимает его
// роль до courier. Пользователь может быть курьером не более одного раза.
func (s *Courier) RegisterCourier(ctx context.Context, actor entities.Actor, registration Registration) (int64, error) {
	vehicle := registration.Vehicle
	if vehicle.Type == nil || vehicle.Make == nil || vehicle.Model == nil ||
		vehicle.Year == nil || vehicle.LicensePlate == nil {
		return 0, ErrMissingRequiredFields
	}
	if !isValidVehicleType(vehicle.Type.String()) {
		return 0, ErrInvalidVehicle
	}
	if !isValidLicensePlate(*vehicle.LicensePlate) {
		return 0, ErrInvalidVehicle
	}

	location, err := s.resolveLocation(ctx, registration.LocationAddress, registration.Location)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		vehicleID, err := s.vehicleRepo.Create(ctx, vehicle)
		if err != nil {
			return fmt.Errorf("create vehicle: %w", err)
		}

		id, err = s.repository.Create(ctx, actor.ID, vehicleID, location)
		if err != nil {
			return fmt.Errorf("create courier: %w", err)
		}

		err = s.repository.SetUserRole(ctx, actor.ID, entities.RoleCourier)
		if err != nil {
			return fmt.Errorf("elevate user role: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *Courier) GetCourier(ctx context.Context, actor entities.Actor, id int64) (*entities.Courier, error) {
	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}

	if !actor.CanAccess(courier.UserID) {
		return nil, ErrForbidden
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context, actor entities.Actor) ([]entities.Courier, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get couriers: %w", err)
	}

	return couriers, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, actor entities.Actor, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if courierModify.Status == nil && courierModify.Rating == nil && courierModify.IsVerified == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if courierModify.Status != nil && !isValidStatus(courierModify.Status.String()) {
		return nil, ErrInvalidStatus
	}
	if courierModify.Rating != nil && !isValidRating(*courierModify.Rating) {
		return nil, ErrInvalidRating
	}
	// флаг верификации выставляет только админ
	if courierModify.IsVerified != nil && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	courier, err := s.repository.GetByID(ctx, *courierModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	if !actor.CanAccess(courier.UserID) {
		return nil, ErrForbidden
	}

	updated, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("update courier: %w", err)
	}
	return updated, nil
}

// UpdateLocation заменяет текущую локацию курьера целиком. Адрес, если
// задан, прогоняется через геокодер.
func (s *Courier) UpdateLocation(ctx context.Context, actor entities.Actor, id int64, address string, point *entities.GeoPoint) (*entities.Courier, error) {
	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	if !actor.CanAccess(courier.UserID) {
		return nil, ErrForbidden
	}

	location, err := s.resolveLocation(ctx, address, point)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrMissingRequiredFields
	}

	updated, err := s.repository.UpdateLocation(ctx, id, *location)
	if err != nil {
		return nil, fmt.Errorf("update courier location: %w", err)
	}
	return updated, nil
}

// DeleteCourier удаляет курьера, каскадно удаляя его доставки, и
// возвращает пользователю роль user. Обе записи меняются в одной
// транзакции.
func (s *Courier) DeleteCourier(ctx context.Context, actor entities.Actor, id int64) error {
	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get courier: %w", err)
	}
	if !actor.CanAccess(courier.UserID) {
		return ErrForbidden
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		err := s.repository.DeleteCascade(ctx, id)
		if err != nil {
			return fmt.Errorf("delete courier: %w", err)
		}

		err = s.repository.SetUserRole(ctx, courier.UserID, entities.RoleUser)
		if err != nil {
			return fmt.Errorf("demote user role: %w", err)
		}
		return nil
	})

	return err
}

func (s *Courier) resolveLocation(ctx context.Context, address string, point *entities.GeoPoint) (*entities.GeoPoint, error) {
	if address != "" {
		located, err := s.geocoder.Geocode(ctx, address)
		if err != nil {
			return nil, fmt.Errorf("geocode location: %w", err)
		}
		return &located, nil
	}

	if point == nil {
		return nil, nil
	}
	if !isValidGeoPoint(*point) {
		return nil, ErrInvalidCoordinate
	}
	return point, nil
}
