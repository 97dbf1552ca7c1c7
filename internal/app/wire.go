//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"dispatch/internal/gateway/geocoding"
	"dispatch/internal/handlers/rest/courier_delete"
	"dispatch/internal/handlers/rest/courier_get"
	"dispatch/internal/handlers/rest/courier_location_put"
	"dispatch/internal/handlers/rest/courier_post"
	"dispatch/internal/handlers/rest/courier_put"
	"dispatch/internal/handlers/rest/couriers_get"
	"dispatch/internal/handlers/rest/couriers_nearby_get"
	"dispatch/internal/handlers/rest/deliveries_get"
	"dispatch/internal/handlers/rest/delivery_assign_put"
	"dispatch/internal/handlers/rest/delivery_delete"
	"dispatch/internal/handlers/rest/delivery_get"
	"dispatch/internal/handlers/rest/delivery_post"
	"dispatch/internal/handlers/rest/delivery_put"
	"dispatch/internal/handlers/rest/delivery_status_put"
	"dispatch/internal/handlers/tasks/assignment_repair"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/delivery_price"
	"dispatch/internal/pkg/trackingcode"

	courierRepo "dispatch/internal/repository/courier"
	deliveryRepo "dispatch/internal/repository/delivery"
	vehicleRepo "dispatch/internal/repository/vehicle"
	courierService "dispatch/internal/service/courier"
	deliveryService "dispatch/internal/service/delivery"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	RepairInterval time.Duration
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceDelivery   ServiceDelivery
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_put.Service
	courier_delete.Service
	courier_location_put.Service
	couriers_get.Service
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_get.Service
	deliveries_get.Service
	delivery_put.Service
	delivery_delete.Service
	delivery_status_put.Service
	delivery_assign_put.Service
	couriers_nearby_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRepairInterval,
		provideGeocodingGateway,

		provideCourierRepository,
		provideDeliveryRepository,
		provideVehicleRepository,

		delivery_price.New,
		trackingcode.New,

		provideServiceCourier,
		provideServiceDelivery,

		provideAssignmentRepairTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.VehicleRepository), new(*vehicleRepo.Repository)),
		wire.Bind(new(courierService.Geocoder), new(*geocoding.Gateway)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.CourierStore), new(*courierRepo.Repository)),
		wire.Bind(new(deliveryService.Geocoder), new(*geocoding.Gateway)),
		wire.Bind(new(deliveryService.PriceQuoter), new(*delivery_price.PriceFactory)),
		wire.Bind(new(deliveryService.CodeGenerator), new(*trackingcode.Generator)),

		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(assignment_repair.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideGeocodingGateway(cfg *config.Config) *geocoding.Gateway {
	client := &http.Client{Timeout: cfg.Geocoder.Timeout}
	return geocoding.New(client, cfg.Geocoder.BaseURL, cfg.Geocoder.APIKey)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideVehicleRepository(querier *querier.Querier) *vehicleRepo.Repository {
	return vehicleRepo.New(querier)
}

func provideServiceCourier(
	repository courierService.Repository,
	vehicleRepository courierService.VehicleRepository,
	geocoder courierService.Geocoder,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(repository, vehicleRepository, geocoder, txManager)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	courierStore deliveryService.CourierStore,
	geocoder deliveryService.Geocoder,
	priceQuoter deliveryService.PriceQuoter,
	codeGenerator deliveryService.CodeGenerator,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		courierStore,
		geocoder,
		priceQuoter,
		codeGenerator,
		txManager,
	)
}

func provideRepairInterval(cfg *config.Config) RepairInterval {
	return RepairInterval(cfg.Tasks.AssignmentRepairInterval)
}

func provideAssignmentRepairTask(
	log logger.Logger,
	deliveryService assignment_repair.Service,
	interval RepairInterval,
) *assignment_repair.AssignmentRepair {
	return assignment_repair.NewAssignmentRepair(log, deliveryService, time.Duration(interval))
}

func provideTaskList(
	assignmentRepairTask *assignment_repair.AssignmentRepair,
) []background.Task {
	return []background.Task{
		assignmentRepairTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
