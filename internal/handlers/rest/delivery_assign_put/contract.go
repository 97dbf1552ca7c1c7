//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_assign_put_test
package delivery_assign_put

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
	AssignCourier(ctx context.Context, actor entities.Actor, deliveryID, courierID int64) (*entities.Delivery, error)
}
