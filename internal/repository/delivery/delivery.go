package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, user_id, courier_id,
	pickup_longitude, pickup_latitude, pickup_address,
	dropoff_longitude, dropoff_latitude, dropoff_address,
	weight_kg, length, width, height,
	distance_km, price, tracking_code, status, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanDelivery(row pgx.Row) (*DeliveryDB, error) {
	var deliveryModel DeliveryDB
	err := row.Scan(
		&deliveryModel.ID,
		&deliveryModel.UserID,
		&deliveryModel.CourierID,
		&deliveryModel.PickupLongitude,
		&deliveryModel.PickupLatitude,
		&deliveryModel.PickupAddress,
		&deliveryModel.DropoffLongitude,
		&deliveryModel.DropoffLatitude,
		&deliveryModel.DropoffAddress,
		&deliveryModel.WeightKg,
		&deliveryModel.Length,
		&deliveryModel.Width,
		&deliveryModel.Height,
		&deliveryModel.DistanceKm,
		&deliveryModel.Price,
		&deliveryModel.TrackingCode,
		&deliveryModel.Status,
		&deliveryModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &deliveryModel, nil
}

func (r *Repository) Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error) {
	query := `
		INSERT INTO deliveries (user_id,
			pickup_longitude, pickup_latitude, pickup_address,
			dropoff_longitude, dropoff_latitude, dropoff_address,
			weight_kg, length, width, height,
			distance_km, price, tracking_code, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + deliveryColumns

	var length, width, height *float64
	if deliveryEntity.Dimensions != nil {
		length = &deliveryEntity.Dimensions.Length
		width = &deliveryEntity.Dimensions.Width
		height = &deliveryEntity.Dimensions.Height
	}

	deliveryModel, err := scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		deliveryEntity.UserID,
		deliveryEntity.Pickup.Longitude,
		deliveryEntity.Pickup.Latitude,
		deliveryEntity.Pickup.Address,
		deliveryEntity.Dropoff.Longitude,
		deliveryEntity.Dropoff.Latitude,
		deliveryEntity.Dropoff.Address,
		deliveryEntity.WeightKg,
		length,
		width,
		height,
		deliveryEntity.DistanceKm,
		deliveryEntity.Price,
		deliveryEntity.TrackingCode,
		deliveryEntity.Status.String(),
	))
	if err != nil {
		// единственный уникальный индекс таблицы это tracking_code
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, delivery.ErrTrackingCodeConflict
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1`

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}

		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	builder := qb.
		Select(deliveryColumns).
		From("deliveries")

	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": *filter.UserID})
	}
	if filter.CourierID != nil {
		builder = builder.Where(sq.Eq{"courier_id": *filter.CourierID})
	}

	builder = builder.OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	deliveryModels := make([]DeliveryDB, 0, 8)
	for rows.Next() {
		deliveryModel, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
		}
		deliveryModels = append(deliveryModels, *deliveryModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	return ToDomainList(deliveryModels), nil
}

func (r *Repository) Update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error) {
	builder := qb.
		Update("deliveries")

	// опциональные поля, точка замещается только целиком
	if deliveryModifyEntity.Pickup != nil {
		builder = builder.
			Set("pickup_longitude", deliveryModifyEntity.Pickup.Longitude).
			Set("pickup_latitude", deliveryModifyEntity.Pickup.Latitude).
			Set("pickup_address", deliveryModifyEntity.Pickup.Address)
	}
	if deliveryModifyEntity.Dropoff != nil {
		builder = builder.
			Set("dropoff_longitude", deliveryModifyEntity.Dropoff.Longitude).
			Set("dropoff_latitude", deliveryModifyEntity.Dropoff.Latitude).
			Set("dropoff_address", deliveryModifyEntity.Dropoff.Address)
	}
	if deliveryModifyEntity.WeightKg != nil {
		builder = builder.Set("weight_kg", *deliveryModifyEntity.WeightKg)
	}
	if deliveryModifyEntity.Dimensions != nil {
		builder = builder.
			Set("length", deliveryModifyEntity.Dimensions.Length).
			Set("width", deliveryModifyEntity.Dimensions.Width).
			Set("height", deliveryModifyEntity.Dimensions.Height)
	}

	builder = builder.
		Where(sq.Eq{"id": deliveryModifyEntity.ID}).
		Suffix("RETURNING " + deliveryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}

		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.DeliveryStatusType) (*entities.Delivery, error) {
	query := `UPDATE deliveries
		SET status = $2
		WHERE id = $1
		RETURNING ` + deliveryColumns

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, id, status.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}

		return nil, fmt.Errorf("unexpected delivery repository update status error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM deliveries WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}

	return nil
}

// Assign переводит доставку requested -> accepted и проставляет курьера
// одним условным UPDATE. Ноль строк означает что доставка уже ушла из
// requested: существование записи вызывающий проверяет до этого.
func (r *Repository) Assign(ctx context.Context, deliveryID, courierID int64) (*entities.Delivery, error) {
	query := `UPDATE deliveries
		SET courier_id = $2, status = 'accepted'
		WHERE id = $1 AND status = 'requested'
		RETURNING ` + deliveryColumns

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, deliveryID, courierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrInvalidTransition
		}

		return nil, fmt.Errorf("unexpected delivery repository assign error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

// ReleaseStuckCouriers возвращает в available курьеров on-delivery без
// единой активной доставки, возвращает число освобожденных.
func (r *Repository) ReleaseStuckCouriers(ctx context.Context) (int64, error) {
	query := `
		UPDATE couriers
		SET status = 'available', updated_at = NOW()
		WHERE status = 'on-delivery'
		AND NOT EXISTS (
			SELECT 1
			FROM deliveries
			WHERE deliveries.courier_id = couriers.id
			  AND deliveries.status IN ('accepted', 'picked_up', 'in_transit')
		)`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository release stuck couriers error: %w", err)
	}

	return result.RowsAffected(), nil
}
