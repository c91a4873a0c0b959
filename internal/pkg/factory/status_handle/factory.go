package status_handle

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/order"
)

type StatusHandlerFactory struct {
	dispatchService order.DispatchService
}

func NewStatusHandlerFactory(dispatchService order.DispatchService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		dispatchService: dispatchService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderCreated:
		return f.createdHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) createdHandler(ctx context.Context, orderID string) error {
	_, err := f.dispatchService.AssignRider(ctx, orderID)
	if err != nil {
		return fmt.Errorf("assign rider for created order %s: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID string) error {
	err := f.dispatchService.ReleaseAssignment(ctx, orderID)
	if err != nil {
		// A cancelled order may never have been assigned.
		if errors.Is(err, dispatch.ErrNoActiveAssignment) {
			return nil
		}
		return fmt.Errorf("release rider for cancelled order %s: %w", orderID, err)
	}
	return nil
}
