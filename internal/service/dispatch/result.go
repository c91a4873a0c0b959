package dispatch

import "time"

// Outcome distinguishes the expected results of an assignment attempt.
// Only hard faults (unknown order, storage errors, lost claim races) are
// errors; a marketplace with finite rider supply produces the negative
// outcomes below in normal operation.
type Outcome string

const (
	OutcomeAssigned           Outcome = "assigned"
	OutcomeAlreadyAccepted    Outcome = "already_accepted"
	OutcomeNoActiveZones      Outcome = "no_active_zones"
	OutcomeZoneUndeterminable Outcome = "zone_undeterminable"
	OutcomeNoRidersAvailable  Outcome = "no_riders_available"
)

type Result struct {
	Outcome    Outcome
	RiderID    string
	ZoneID     string
	ZoneName   string
	AssignedAt time.Time
	TimeoutAt  time.Time
}

func (r *Result) Message() string {
	switch r.Outcome {
	case OutcomeAssigned:
		return "Rider assigned to order"
	case OutcomeAlreadyAccepted:
		return "Order already accepted by a rider"
	case OutcomeNoActiveZones:
		return "No active delivery zones configured"
	case OutcomeZoneUndeterminable:
		return "Could not determine a delivery zone for the pickup address"
	case OutcomeNoRidersAvailable:
		return "No riders available in any zone"
	default:
		return string(r.Outcome)
	}
}
