package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `
		SELECT id, pickup_address, pickup_zone_id, assignment_status,
		       assigned_rider_id, assigned_at, assignment_timeout_at, created_at
		FROM orders
		WHERE id = $1
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&orderDB.ID,
		&orderDB.PickupAddress,
		&orderDB.PickupZoneID,
		&orderDB.AssignmentStatus,
		&orderDB.AssignedRiderID,
		&orderDB.AssignedAt,
		&orderDB.AssignmentTimeoutAt,
		&orderDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

// SetPickupZone records the computed home zone of an order. Independent of
// rider search success: the zone sticks even when no rider is found.
func (r *Repository) SetPickupZone(ctx context.Context, orderID, zoneID string) error {
	query := `
		UPDATE orders
		SET pickup_zone_id = $2
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, orderID, zoneID)
	if err != nil {
		return fmt.Errorf("unexpected order repository set zone error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatch.ErrOrderNotFound
	}
	return nil
}

// Claim writes the assignment onto the order row, conditional on the
// assignment state observed when the order was read. Zero rows affected
// means another invocation claimed the order in between.
func (r *Repository) Claim(ctx context.Context, claim entities.AssignmentClaim) error {
	builder := qb.
		Update("orders").
		Set("assigned_rider_id", claim.RiderID).
		Set("pickup_zone_id", claim.ZoneID).
		Set("assignment_status", entities.AssignmentAssigned.String()).
		Set("assigned_at", claim.AssignedAt).
		Set("assignment_timeout_at", claim.TimeoutAt).
		Where(sq.Eq{"id": claim.OrderID}).
		Where(sq.Eq{"assignment_status": claim.ExpectedStatus.String()})

	if claim.ExpectedRiderID == nil {
		builder = builder.Where(sq.Eq{"assigned_rider_id": nil})
	} else {
		builder = builder.Where(sq.Eq{"assigned_rider_id": *claim.ExpectedRiderID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository claim error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository claim error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatch.ErrAssignmentConflict
	}
	return nil
}

// Release reverts an unaccepted assignment for a single order.
func (r *Repository) Release(ctx context.Context, orderID string) error {
	query := `
		UPDATE orders
		SET assignment_status = 'unassigned',
		    assigned_rider_id = NULL,
		    assigned_at = NULL,
		    assignment_timeout_at = NULL
		WHERE id = $1
		  AND assignment_status = 'assigned'
	`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository release error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatch.ErrNoActiveAssignment
	}
	return nil
}

// ReleaseExpired reverts every assignment whose acceptance deadline has
// passed without the rider accepting, freeing the orders for re-dispatch.
func (r *Repository) ReleaseExpired(ctx context.Context) (int64, error) {
	query := `
		UPDATE orders
		SET assignment_status = 'unassigned',
		    assigned_rider_id = NULL,
		    assigned_at = NULL,
		    assignment_timeout_at = NULL
		WHERE assignment_status = 'assigned'
		  AND assignment_timeout_at < NOW()
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository release expired error: %w", err)
	}

	return result.RowsAffected(), nil
}
