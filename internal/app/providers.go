package app

import (
	"context"
	"time"

	mapsGateway "dispatch/internal/gateway/maps"
	"dispatch/internal/handlers/rest/assign_rider_post"
	"dispatch/internal/handlers/tasks/assignment_timeout"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/assignment_deadline"
	"dispatch/internal/pkg/factory/status_handle"

	orderRepo "dispatch/internal/repository/order"
	riderRepo "dispatch/internal/repository/rider"
	zoneRepo "dispatch/internal/repository/zone"
	dispatchService "dispatch/internal/service/dispatch"
	orderService "dispatch/internal/service/order"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReleaseInterval time.Duration
)

type Application struct {
	ServiceDispatch   ServiceDispatch
	BackgroundWorkers *background.Worker
}

type ServiceDispatch interface {
	assign_rider_post.Service
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func provideZoneRepository(querier *querier.Querier) *zoneRepo.Repository {
	return zoneRepo.New(querier)
}

func provideDistanceOracle(cfg *config.Config, log logger.Logger) (*mapsGateway.Oracle, error) {
	return mapsGateway.NewOracle(cfg.Maps.APIKey, cfg.Dispatch.CountrySuffix, log)
}

func provideDeadlineFactory(cfg *config.Config) *assignment_deadline.AssignmentTimeFactory {
	return assignment_deadline.New(cfg.Dispatch.AcceptTimeout)
}

func provideServiceDispatch(
	repository dispatchService.OrderRepository,
	riders dispatchService.RiderRepository,
	zones dispatchService.ZoneRepository,
	oracle dispatchService.DistanceOracle,
	deadlineFactory dispatchService.DeadlineFactory,
	txManager dispatchService.TxManager,
	cfg *config.Config,
	log logger.Logger,
) *dispatchService.Dispatch {
	return dispatchService.New(
		repository,
		riders,
		zones,
		oracle,
		deadlineFactory,
		txManager,
		cfg.Dispatch.MaxActiveOrders,
		log,
	)
}

func provideReleaseInterval(cfg *config.Config) ReleaseInterval {
	return ReleaseInterval(cfg.Tasks.AssignmentReleaseInterval)
}

func provideOrderService(handlerFactory orderService.HandlerFactory) *orderService.Service {
	return orderService.New(handlerFactory)
}

func provideStatusHandlerFactory(dispatchSvc *dispatchService.Dispatch) *status_handle.StatusHandlerFactory {
	return status_handle.NewStatusHandlerFactory(dispatchSvc)
}

func provideAssignmentTimeoutTask(
	log logger.Logger,
	dispatchSvc assignment_timeout.Service,
	interval ReleaseInterval,
) *assignment_timeout.AssignmentTimeout {
	return assignment_timeout.NewAssignmentTimeout(log, dispatchSvc, time.Duration(interval))
}

func provideTaskList(
	assignmentTimeoutTask *assignment_timeout.AssignmentTimeout,
) []background.Task {
	return []background.Task{
		assignmentTimeoutTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
