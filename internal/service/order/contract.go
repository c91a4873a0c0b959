//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
)

type DispatchService interface {
	AssignRider(ctx context.Context, orderID string) (*dispatch.Result, error)
	ReleaseAssignment(ctx context.Context, orderID string) error
}

type (
	ExecuteFn      func(ctx context.Context, orderID string) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
