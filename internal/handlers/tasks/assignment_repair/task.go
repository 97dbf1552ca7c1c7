package assignment_repair

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	RepairAssignments(ctx context.Context) (int64, error)
}

// AssignmentRepair фоновая задача: возвращает в available курьеров,
// застрявших в on-delivery без активных доставок.
type AssignmentRepair struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewAssignmentRepair(log logger.Logger, service Service, interval time.Duration) *AssignmentRepair {
	return &AssignmentRepair{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (a *AssignmentRepair) TTL() time.Duration {
	return a.interval
}

func (a *AssignmentRepair) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	rowsAffected, err := a.service.RepairAssignments(ctxWithTimeout)

	if rowsAffected > 0 {
		a.log.With(
			logger.NewField("released_couriers", rowsAffected),
		).Info("assignment repair")
	}

	return err
}

func (a *AssignmentRepair) Info() string {
	return "assignment repair"
}
