package rider

import "dispatch/internal/entities"

func ToDomain(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}
	return &entities.Rider{
		ID:           r.ID,
		Name:         r.Name,
		Phone:        r.Phone,
		Status:       entities.RiderStatusType(r.Status),
		ZoneID:       r.ZoneID,
		ActiveOrders: r.ActiveOrders,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
