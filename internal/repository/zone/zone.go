package zone

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ListActive(ctx context.Context) ([]entities.Zone, error) {
	query := `
		SELECT id, name, is_active
		FROM zones
		WHERE is_active = TRUE
		ORDER BY name ASC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository list error: %w", err)
	}
	defer rows.Close()

	zonesDB := []ZoneDB{}
	for rows.Next() {
		var zoneDB ZoneDB
		err := rows.Scan(&zoneDB.ID, &zoneDB.Name, &zoneDB.IsActive)
		if err != nil {
			return nil, fmt.Errorf("unexpected zone repository scan error: %w", err)
		}
		zonesDB = append(zonesDB, zoneDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected zone repository rows error: %w", err)
	}

	return ToDomainList(zonesDB), nil
}
