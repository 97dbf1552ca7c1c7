package delivery

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	courierService "dispatch/internal/service/courier"
	"dispatch/pkg/tx"
)

const (
	// DefaultSearchRadiusMeters радиус поиска курьеров по умолчанию.
	DefaultSearchRadiusMeters = 10000.0

	// trackingAttempts лимит перегенераций трек-кода при коллизии.
	trackingAttempts = 5

	// assignAttempts лимит повторов транзакции назначения при
	// serialization conflict.
	assignAttempts = 3
)

type Delivery struct {
	repository   Repository
	courierStore CourierStore
	geocoder     Geocoder
	priceQuoter  PriceQuoter
	codeGen      CodeGenerator
	txManager    TxManager
}

func New(
	repository Repository,
	courierStore CourierStore,
	geocoder Geocoder,
	priceQuoter PriceQuoter,
	codeGen CodeGenerator,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository:   repository,
		courierStore: courierStore,
		geocoder:     geocoder,
		priceQuoter:  priceQuoter,
		codeGen:      codeGen,
		txManager:    txManager,
	}
}

// CreateDelivery входные данные новой доставки, адреса геокодируются,
// дистанция и цена считаются здесь ровно один раз.
type CreateDelivery struct {
	PickupAddress  string
	DropoffAddress string
	WeightKg       float64
	Dimensions     *entities.Dimensions
}

func (d *Delivery) CreateDelivery(ctx context.Context, actor entities.Actor, create CreateDelivery) (*entities.Delivery, error) {
	if !isValidAddress(create.PickupAddress) || !isValidAddress(create.DropoffAddress) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidPackage(create.WeightKg, create.Dimensions) {
		return nil, ErrInvalidPackage
	}

	// геокодирование до любой записи: без двух валидных точек доставка
	// не сохраняется
	pickup, err := d.geocoder.Geocode(ctx, create.PickupAddress)
	if err != nil {
		return nil, fmt.Errorf("geocode pickup: %w", err)
	}
	dropoff, err := d.geocoder.Geocode(ctx, create.DropoffAddress)
	if err != nil {
		return nil, fmt.Errorf("geocode dropoff: %w", err)
	}

	if !isValidGeoPoint(pickup) || !isValidGeoPoint(dropoff) {
		return nil, ErrInvalidCoordinate
	}

	distanceKm := entities.DistanceKm(pickup, dropoff)
	price := d.priceQuoter.Quote(distanceKm, create.WeightKg, create.Dimensions)

	deliveryEntity := entities.Delivery{
		UserID:     actor.ID,
		Pickup:     pickup,
		Dropoff:    dropoff,
		WeightKg:   create.WeightKg,
		Dimensions: create.Dimensions,
		DistanceKm: distanceKm,
		Price:      price,
		Status:     entities.DeliveryRequested,
	}

	// уникальность трек-кода гарантирует индекс в БД, на коллизию
	// отвечаем перегенерацией с жестким лимитом попыток
	for attempt := 0; attempt < trackingAttempts; attempt++ {
		code, err := d.codeGen.Generate()
		if err != nil {
			return nil, fmt.Errorf("generate tracking code: %w", err)
		}
		deliveryEntity.TrackingCode = code

		created, err := d.repository.Create(ctx, deliveryEntity)
		if err != nil {
			if errors.Is(err, ErrTrackingCodeConflict) {
				continue
			}
			return nil, fmt.Errorf("create delivery: %w", err)
		}
		return created, nil
	}

	return nil, ErrTrackingCodeExhausted
}

func (d *Delivery) GetDelivery(ctx context.Context, actor entities.Actor, id int64) (*entities.Delivery, error) {
	deliveryEntity, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	if !actor.CanAccess(deliveryEntity.UserID) {
		return nil, ErrForbidden
	}

	return deliveryEntity, nil
}

// GetDeliveries админ видит любую выборку, остальные только свои доставки.
func (d *Delivery) GetDeliveries(ctx context.Context, actor entities.Actor, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	if !actor.IsAdmin() {
		filter = entities.DeliveryFilter{UserID: &actor.ID}
	}

	deliveries, err := d.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}

	return deliveries, nil
}

// UpdateDelivery редактирование деталей доставки. Курьеру запрещено:
// ему доступна только смена статуса через UpdateDeliveryStatus.
// Дистанция и цена при редактировании не пересчитываются.
func (d *Delivery) UpdateDelivery(ctx context.Context, actor entities.Actor, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if deliveryModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if deliveryModify.Pickup == nil && deliveryModify.Dropoff == nil &&
		deliveryModify.WeightKg == nil && deliveryModify.Dimensions == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if actor.Role == entities.RoleCourier {
		return nil, ErrForbidden
	}

	if deliveryModify.Pickup != nil && !isValidGeoPoint(*deliveryModify.Pickup) {
		return nil, ErrInvalidCoordinate
	}
	if deliveryModify.Dropoff != nil && !isValidGeoPoint(*deliveryModify.Dropoff) {
		return nil, ErrInvalidCoordinate
	}
	if deliveryModify.WeightKg != nil && !isValidPackage(*deliveryModify.WeightKg, deliveryModify.Dimensions) {
		return nil, ErrInvalidPackage
	}

	deliveryEntity, err := d.repository.GetByID(ctx, *deliveryModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	if !actor.CanAccess(deliveryEntity.UserID) {
		return nil, ErrForbidden
	}
	if deliveryEntity.Status.IsTerminal() {
		return nil, ErrInvalidTransition
	}

	updated, err := d.repository.Update(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("update delivery: %w", err)
	}
	return updated, nil
}

// UpdateDeliveryStatus смена статуса доставки. Владелец и админ могут
// выполнять любой легальный переход, назначенный курьер только
// продвигать доставку вперед, отмена курьеру недоступна. Переход в
// accepted возможен только через AssignCourier.
func (d *Delivery) UpdateDeliveryStatus(ctx context.Context, actor entities.Actor, id int64, newStatus entities.DeliveryStatusType) (*entities.Delivery, error) {
	if !isValidStatus(newStatus.String()) {
		return nil, ErrInvalidStatus
	}

	deliveryEntity, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	allowed := actor.CanAccess(deliveryEntity.UserID)
	if !allowed && deliveryEntity.CourierID != nil {
		assignedCourier, err := d.courierStore.GetByID(ctx, *deliveryEntity.CourierID)
		if err != nil {
			return nil, fmt.Errorf("get assigned courier: %w", err)
		}
		allowed = actor.ID == assignedCourier.UserID
	}
	if !allowed {
		return nil, ErrForbidden
	}

	if newStatus == entities.DeliveryCancelled && !actor.CanAccess(deliveryEntity.UserID) {
		return nil, ErrForbidden
	}

	if newStatus == entities.DeliveryAccepted {
		return nil, ErrInvalidTransition
	}
	if !deliveryEntity.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidTransition
	}

	// терминальный переход освобождает курьера в той же транзакции,
	// чтобы курьер не застрял в on-delivery
	if newStatus.IsTerminal() && deliveryEntity.CourierID != nil {
		courierID := *deliveryEntity.CourierID
		var updated *entities.Delivery
		err = d.txManager.Do(ctx, func(ctx context.Context) error {
			updated, err = d.repository.UpdateStatus(ctx, id, newStatus)
			if err != nil {
				return fmt.Errorf("update delivery status: %w", err)
			}

			err = d.courierStore.Release(ctx, courierID, newStatus == entities.DeliveryDelivered)
			if err != nil {
				return fmt.Errorf("release courier: %w", err)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	updated, err := d.repository.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, fmt.Errorf("update delivery status: %w", err)
	}
	return updated, nil
}

func (d *Delivery) DeleteDelivery(ctx context.Context, actor entities.Actor, id int64) error {
	deliveryEntity, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get delivery: %w", err)
	}
	if !actor.CanAccess(deliveryEntity.UserID) {
		return ErrForbidden
	}

	err = d.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}
	return nil
}

// FindNearbyCouriers доступные курьеры в радиусе от точки забора,
// отсортированные по удаленности. Пустой список это валидный результат.
func (d *Delivery) FindNearbyCouriers(ctx context.Context, actor entities.Actor, deliveryID int64, radiusMeters float64) ([]entities.Courier, error) {
	if radiusMeters == 0 {
		radiusMeters = DefaultSearchRadiusMeters
	}
	if radiusMeters < 0 {
		return nil, ErrInvalidRadius
	}

	deliveryEntity, err := d.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	if !actor.CanAccess(deliveryEntity.UserID) {
		return nil, ErrForbidden
	}

	couriers, err := d.courierStore.FindWithinRadius(ctx, deliveryEntity.Pickup, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("find couriers within radius: %w", err)
	}

	return couriers, nil
}

// AssignCourier атомарно связывает доставку и курьера: доставка получает
// курьера и статус accepted, курьер переходит в on-delivery. Частичное
// применение исключено: обе записи меняются в одной serializable
// транзакции, конфликт сериализации ретраится ограниченно и затем
// отдается как ErrStorageConflict.
func (d *Delivery) AssignCourier(ctx context.Context, actor entities.Actor, deliveryID, courierID int64) (*entities.Delivery, error) {
	var assigned *entities.Delivery
	var err error

	for attempt := 0; attempt < assignAttempts; attempt++ {
		assigned, err = d.assignOnce(ctx, actor, deliveryID, courierID)
		if err == nil || !errors.Is(err, ErrStorageConflict) {
			return assigned, err
		}
	}

	return nil, ErrStorageConflict
}

func (d *Delivery) assignOnce(ctx context.Context, actor entities.Actor, deliveryID, courierID int64) (*entities.Delivery, error) {
	var assigned *entities.Delivery

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		deliveryEntity, err := d.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if !actor.CanAccess(deliveryEntity.UserID) {
			return ErrForbidden
		}

		if !deliveryEntity.Status.CanTransitionTo(entities.DeliveryAccepted) {
			return ErrInvalidTransition
		}

		_, err = d.courierStore.GetByID(ctx, courierID)
		if err != nil {
			if errors.Is(err, courierService.ErrCourierNotFound) {
				return ErrCourierNotFound
			}
			return fmt.Errorf("get courier: %w", err)
		}

		err = d.courierStore.AcquireForDelivery(ctx, courierID)
		if err != nil {
			return fmt.Errorf("acquire courier: %w", err)
		}

		assigned, err = d.repository.Assign(ctx, deliveryID, courierID)
		if err != nil {
			return fmt.Errorf("assign delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, tx.ErrSerialization) {
			return nil, fmt.Errorf("%w: %w", ErrStorageConflict, err)
		}
		return nil, err
	}

	return assigned, nil
}

// RepairAssignments фоновая страховка от частично примененного
// назначения: возвращает в available курьеров без активных доставок.
func (d *Delivery) RepairAssignments(ctx context.Context) (int64, error) {
	rowsAffected, err := d.repository.ReleaseStuckCouriers(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("repair timed out: %w", err)
		}
		return 0, fmt.Errorf("repair assignments: %w", err)
	}

	return rowsAffected, nil
}
