//go:build wireinject
// +build wireinject

package app

import (
	"context"

	mapsGateway "dispatch/internal/gateway/maps"
	"dispatch/internal/handlers/tasks/assignment_timeout"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/assignment_deadline"
	"dispatch/internal/pkg/factory/status_handle"

	orderRepo "dispatch/internal/repository/order"
	riderRepo "dispatch/internal/repository/rider"
	zoneRepo "dispatch/internal/repository/zone"
	dispatchService "dispatch/internal/service/dispatch"
	orderService "dispatch/internal/service/order"

	"dispatch/pkg/logger"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication wires the HTTP service (cmd/service).
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
		provideReleaseInterval,

		provideOrderRepository,
		provideRiderRepository,
		provideZoneRepository,

		provideDistanceOracle,
		provideDeadlineFactory,
		provideServiceDispatch,

		provideAssignmentTimeoutTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),

		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.RiderRepository), new(*riderRepo.Repository)),
		wire.Bind(new(dispatchService.ZoneRepository), new(*zoneRepo.Repository)),
		wire.Bind(new(dispatchService.DistanceOracle), new(*mapsGateway.Oracle)),
		wire.Bind(new(dispatchService.DeadlineFactory), new(*assignment_deadline.AssignmentTimeFactory)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(assignment_timeout.Service), new(*dispatchService.Dispatch)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp wires the Kafka worker (cmd/worker-order-status-changed).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideRiderRepository,
		provideZoneRepository,

		provideDistanceOracle,
		provideDeadlineFactory,
		provideServiceDispatch,

		provideStatusHandlerFactory,
		provideOrderService,

		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.RiderRepository), new(*riderRepo.Repository)),
		wire.Bind(new(dispatchService.ZoneRepository), new(*zoneRepo.Repository)),
		wire.Bind(new(dispatchService.DistanceOracle), new(*mapsGateway.Oracle)),
		wire.Bind(new(dispatchService.DeadlineFactory), new(*assignment_deadline.AssignmentTimeFactory)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.HandlerFactory), new(*status_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
