package entities

import "time"

type Order struct {
	ID                  string
	PickupAddress       string
	PickupZoneID        *string
	AssignmentStatus    AssignmentStatusType
	AssignedRiderID     *string
	AssignedAt          *time.Time
	AssignmentTimeoutAt *time.Time
	CreatedAt           time.Time
}

type AssignmentStatusType string

const (
	AssignmentUnassigned AssignmentStatusType = "unassigned"
	AssignmentAssigned   AssignmentStatusType = "assigned"
	AssignmentAccepted   AssignmentStatusType = "accepted"
)

func (t AssignmentStatusType) String() string {
	return string(t)
}

type OrderStatusType string

const (
	OrderCreated   OrderStatusType = "created"
	OrderCancelled OrderStatusType = "cancelled"
	OrderCompleted OrderStatusType = "completed"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// OrderStatusChange is the partial order state carried by a status event.
type OrderStatusChange struct {
	ID     *string
	Status *OrderStatusType
}

// AssignmentClaim carries everything the conditional claim UPDATE needs:
// the fields to write plus the assignment state observed when the order
// was read. The claim fails if the row no longer matches that state.
type AssignmentClaim struct {
	OrderID    string
	RiderID    string
	ZoneID     string
	AssignedAt time.Time
	TimeoutAt  time.Time

	ExpectedStatus  AssignmentStatusType
	ExpectedRiderID *string
}
