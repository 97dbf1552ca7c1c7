package vehicle

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/courier"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (int64, error) {
	query := `INSERT INTO vehicles (type, make, model, year, license_plate, color,
			capacity_weight, capacity_volume,
			insurance_provider, insurance_policy_number, insurance_expires_at,
			registration_number, registration_expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	vehicleModel := FromDomainModify(&vehicleModifyEntity)

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		vehicleModel.Type,
		vehicleModel.Make,
		vehicleModel.Model,
		vehicleModel.Year,
		vehicleModel.LicensePlate,
		vehicleModel.Color,
		vehicleModel.CapacityWeight,
		vehicleModel.CapacityVolume,
		vehicleModel.InsuranceProvider,
		vehicleModel.InsurancePolicyNumber,
		vehicleModel.InsuranceExpiresAt,
		vehicleModel.RegistrationNumber,
		vehicleModel.RegistrationExpiresAt,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, courier.ErrPlateConflict
		}
		return 0, fmt.Errorf("unexpected vehicle repository create error: %w", err)
	}

	return id, nil
}
