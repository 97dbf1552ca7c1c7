//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userID, vehicleID int64, location *entities.GeoPoint) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	GetAll(ctx context.Context) ([]entities.Courier, error)
	Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error)
	UpdateLocation(ctx context.Context, id int64, location entities.GeoPoint) (*entities.Courier, error)

	// DeleteCascade удаляет курьера вместе со всеми его доставками,
	// висячих ссылок на курьера остаться не должно.
	DeleteCascade(ctx context.Context, id int64) error

	SetUserRole(ctx context.Context, userID int64, role entities.RoleType) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (int64, error)
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (entities.GeoPoint, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
