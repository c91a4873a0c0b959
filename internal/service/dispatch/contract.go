//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	SetPickupZone(ctx context.Context, orderID, zoneID string) error
	Claim(ctx context.Context, claim entities.AssignmentClaim) error
	Release(ctx context.Context, orderID string) error
	ReleaseExpired(ctx context.Context) (int64, error)
}

type RiderRepository interface {
	GetEligibleForAssignment(ctx context.Context, zoneID string, maxActiveOrders int) (*entities.Rider, error)
}

type ZoneRepository interface {
	ListActive(ctx context.Context) ([]entities.Zone, error)
}

// DistanceOracle ranks zones by driving distance from an origin address,
// closest first. Zones whose distance could not be resolved are omitted;
// a completely failed lookup yields an empty slice, never an error.
type DistanceOracle interface {
	RankZonesByDistance(ctx context.Context, origin string, zones []entities.Zone) []entities.ZoneDistance
}

type DeadlineFactory interface {
	CalculateTimeout(assignedAt time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type dispatchLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
