package order

import "time"

type OrderDB struct {
	ID                  string
	PickupAddress       string
	PickupZoneID        *string
	AssignmentStatus    string
	AssignedRiderID     *string
	AssignedAt          *time.Time
	AssignmentTimeoutAt *time.Time
	CreatedAt           time.Time
}
