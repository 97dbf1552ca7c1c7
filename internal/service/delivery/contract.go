//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error)
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error)
	Update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
	UpdateStatus(ctx context.Context, id int64, status entities.DeliveryStatusType) (*entities.Delivery, error)
	Delete(ctx context.Context, id int64) error

	// Assign переводит доставку requested -> accepted и проставляет курьера
	// одним условным UPDATE.
	Assign(ctx context.Context, deliveryID, courierID int64) (*entities.Delivery, error)

	// ReleaseStuckCouriers возвращает в available курьеров on-delivery,
	// у которых не осталось ни одной незавершенной доставки.
	ReleaseStuckCouriers(ctx context.Context) (int64, error)
}

type CourierStore interface {
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)

	// AcquireForDelivery compare-and-set перехода available -> on-delivery,
	// проигравший из двух конкурентных вызовов получает ErrCourierUnavailable.
	AcquireForDelivery(ctx context.Context, id int64) error

	// Release возвращает курьера в available, completed инкрементирует
	// счетчик завершенных доставок.
	Release(ctx context.Context, id int64, completed bool) error

	FindWithinRadius(ctx context.Context, point entities.GeoPoint, radiusMeters float64) ([]entities.Courier, error)
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (entities.GeoPoint, error)
}

type PriceQuoter interface {
	Quote(distanceKm, weightKg float64, dims *entities.Dimensions) float64
}

type CodeGenerator interface {
	Generate() (string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
