package order

import "dispatch/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:                  o.ID,
		PickupAddress:       o.PickupAddress,
		PickupZoneID:        o.PickupZoneID,
		AssignmentStatus:    entities.AssignmentStatusType(o.AssignmentStatus),
		AssignedRiderID:     o.AssignedRiderID,
		AssignedAt:          o.AssignedAt,
		AssignmentTimeoutAt: o.AssignmentTimeoutAt,
		CreatedAt:           o.CreatedAt,
	}
}
