package assignment_timeout

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	ReleaseExpiredAssignments(ctx context.Context) (int64, error)
}

// AssignmentTimeout periodically reverts assignments whose rider never
// accepted before the deadline, putting the orders back into rotation.
type AssignmentTimeout struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewAssignmentTimeout(log logger.Logger, service Service, interval time.Duration) *AssignmentTimeout {
	return &AssignmentTimeout{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (a *AssignmentTimeout) TTL() time.Duration {
	return a.interval
}

func (a *AssignmentTimeout) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	rowsAffected, err := a.service.ReleaseExpiredAssignments(ctxWithTimeout)

	if rowsAffected > 0 {
		a.log.With(
			logger.NewField("released_orders", rowsAffected),
		).Info("assignment timeout release")
	}

	return err
}

func (a *AssignmentTimeout) Info() string {
	return "assignment timeout release"
}
