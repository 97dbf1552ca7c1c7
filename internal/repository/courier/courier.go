package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/courier"
	"dispatch/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `id, user_id, vehicle_id, status, rating, delivery_count,
	longitude, latitude, address, is_verified, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanCourier(row pgx.Row) (*CourierDB, error) {
	var courierModel CourierDB
	err := row.Scan(
		&courierModel.ID,
		&courierModel.UserID,
		&courierModel.VehicleID,
		&courierModel.Status,
		&courierModel.Rating,
		&courierModel.DeliveryCount,
		&courierModel.Longitude,
		&courierModel.Latitude,
		&courierModel.Address,
		&courierModel.IsVerified,
		&courierModel.CreatedAt,
		&courierModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &courierModel, nil
}

func (r *Repository) Create(ctx context.Context, userID, vehicleID int64, location *entities.GeoPoint) (int64, error) {
	query := `INSERT INTO couriers (user_id, vehicle_id, status, longitude, latitude, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var longitude, latitude *float64
	var address *string
	if location != nil {
		longitude = &location.Longitude
		latitude = &location.Latitude
		if location.Address != "" {
			address = &location.Address
		}
	}

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		userID,
		vehicleID,
		entities.DefaultCourierStatus.String(),
		longitude,
		latitude,
		address,
	).Scan(&id)
	if err != nil {
		// уникальный индекс на user_id: второй профиль курьера на
		// одного пользователя невозможен
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, courier.ErrAlreadyCourier
		}
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		courierModel, err := scanCourier(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		courierModels = append(courierModels, *courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	// опциональные поля
	if courierModifyModel.Status != nil {
		builder = builder.Set("status", courierModifyModel.Status)
	}
	if courierModifyModel.Rating != nil {
		builder = builder.Set("rating", courierModifyModel.Rating)
	}
	if courierModifyModel.IsVerified != nil {
		builder = builder.Set("is_verified", courierModifyModel.IsVerified)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(courierModel), nil
}

// UpdateLocation замещает локацию целиком, частичных координат не бывает.
func (r *Repository) UpdateLocation(ctx context.Context, id int64, location entities.GeoPoint) (*entities.Courier, error) {
	query := `UPDATE couriers
		SET longitude = $2, latitude = $3, address = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + courierColumns

	var address *string
	if location.Address != "" {
		address = &location.Address
	}

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, id, location.Longitude, location.Latitude, address))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository update location error: %w", err)
	}

	return ToDomain(courierModel), nil
}

// AcquireForDelivery условный переход available -> on-delivery.
// Ноль затронутых строк означает что курьер занят либо выключен:
// его существование вызывающий проверяет отдельно.
func (r *Repository) AcquireForDelivery(ctx context.Context, id int64) error {
	query := `UPDATE couriers
		SET status = 'on-delivery', updated_at = NOW()
		WHERE id = $1 AND status = 'available'`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected courier repository acquire error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return delivery.ErrCourierUnavailable
	}

	return nil
}

// Release возвращает курьера в available, завершенная доставка
// инкрементирует счетчик.
func (r *Repository) Release(ctx context.Context, id int64, completed bool) error {
	query := `UPDATE couriers
		SET status = 'available',
			delivery_count = delivery_count + CASE WHEN $2 THEN 1 ELSE 0 END,
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, completed)
	if err != nil {
		return fmt.Errorf("unexpected courier repository release error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}

	return nil
}

// FindWithinRadius доступные курьеры с известной локацией в радиусе от
// точки, ближние первыми. Дистанция считается хаверсином прямо в запросе.
func (r *Repository) FindWithinRadius(ctx context.Context, point entities.GeoPoint, radiusMeters float64) ([]entities.Courier, error) {
	query := `
	SELECT id, user_id, vehicle_id, status, rating, delivery_count,
		longitude, latitude, address, is_verified, created_at, updated_at
	FROM (
		SELECT c.*,
			2 * 6371000 * asin(sqrt(
				pow(sin(radians(c.latitude - $2) / 2), 2) +
				cos(radians($2)) * cos(radians(c.latitude)) *
				pow(sin(radians(c.longitude - $1) / 2), 2)
			)) AS distance_meters
		FROM couriers c
		WHERE c.status = 'available'
			AND c.longitude IS NOT NULL
			AND c.latitude IS NOT NULL
	) nearby
	WHERE distance_meters <= $3
	ORDER BY distance_meters ASC, id ASC`

	rows, err := r.querier.Query(ctx, query, point.Longitude, point.Latitude, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository find within radius error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		courierModel, err := scanCourier(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository find within radius error: %w", err)
		}
		courierModels = append(courierModels, *courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository find within radius error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

// DeleteCascade удаляет курьера вместе с его доставками, вызывается
// внутри транзакции сервисного слоя.
func (r *Repository) DeleteCascade(ctx context.Context, id int64) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM deliveries WHERE courier_id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected courier repository delete deliveries error: %w", err)
	}

	result, err := r.querier.Exec(ctx, `DELETE FROM couriers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected courier repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}

	return nil
}

func (r *Repository) SetUserRole(ctx context.Context, userID int64, role entities.RoleType) error {
	query := `UPDATE users SET role = $2 WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, userID, role.String())
	if err != nil {
		return fmt.Errorf("unexpected courier repository set user role error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return courier.ErrUserNotFound
	}

	return nil
}
