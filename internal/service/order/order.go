package order

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessOrderStatusChange(ctx context.Context, change entities.OrderStatusChange) error {
	if change.ID == nil || change.Status == nil {
		return fmt.Errorf("order id and status are required")
	}

	executeFn, err := s.statusFactory.GetHandler(*change.Status)
	if err != nil {
		// Statuses without a handler are simply skipped.
		if errors.Is(err, ErrUndefinedStatus) {
			return nil
		}
		return err
	}

	return executeFn(ctx, *change.ID)
}
