//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_location_put_test
package courier_location_put

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateLocation(ctx context.Context, actor entities.Actor, id int64, address string, point *entities.GeoPoint) (*entities.Courier, error)
}
