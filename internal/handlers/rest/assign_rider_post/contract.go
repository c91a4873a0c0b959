//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assign_rider_post_test
package assign_rider_post

import (
	"context"

	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AssignRider(ctx context.Context, orderID string) (*dispatch.Result, error)
}
