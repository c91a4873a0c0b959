package dispatch

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrOrderNotFound  = errors.New("order not found")

	// ErrNoEligibleRiders is returned by the rider repository when a zone
	// holds no online rider with spare capacity. The search treats it as
	// "try the next zone", never as a failure of the whole operation.
	ErrNoEligibleRiders = errors.New("no eligible riders in zone")

	// ErrAssignmentConflict means the order's assignment state changed
	// between the read and the claim; a concurrent invocation won the race.
	ErrAssignmentConflict = errors.New("order assignment conflict")

	ErrNoActiveAssignment = errors.New("order has no active assignment")
)
