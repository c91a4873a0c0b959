//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=maps_test
package maps

import (
	"context"

	"googlemaps.github.io/maps"

	"dispatch/pkg/logger"
)

type distanceMatrixAPI interface {
	DistanceMatrix(ctx context.Context, r *maps.DistanceMatrixRequest) (*maps.DistanceMatrixResponse, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type oracleLogger interface {
	Warn(msg string, fields ...logger.Field)
}
