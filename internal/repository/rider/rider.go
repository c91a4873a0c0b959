package rider

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

// GetEligibleForAssignment returns the least-busy online rider in a zone
// with capacity to spare, or ErrNoEligibleRiders when the zone is empty.
// Ties on load break on id so the ordering is deterministic.
func (r *Repository) GetEligibleForAssignment(ctx context.Context, zoneID string, maxActiveOrders int) (*entities.Rider, error) {
	builder := qb.
		Select("id", "name", "phone", "status", "zone_id", "active_orders", "created_at", "updated_at").
		From("riders").
		Where(sq.Eq{"status": entities.RiderOnline.String()}).
		Where(sq.Eq{"zone_id": zoneID}).
		Where(sq.Lt{"active_orders": maxActiveOrders}).
		OrderBy("active_orders ASC", "id ASC").
		Limit(1)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository query build error: %w", err)
	}

	var riderDB RiderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&riderDB.ID,
		&riderDB.Name,
		&riderDB.Phone,
		&riderDB.Status,
		&riderDB.ZoneID,
		&riderDB.ActiveOrders,
		&riderDB.CreatedAt,
		&riderDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrNoEligibleRiders
		}
		return nil, fmt.Errorf("unexpected rider repository find eligible error: %w", err)
	}

	return ToDomain(&riderDB), nil
}
