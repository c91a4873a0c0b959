package assignment_deadline

import "time"

// AssignmentTimeFactory stamps the acceptance deadline on new assignments.
// A rider that has not accepted by the deadline loses the order to the
// timeout release task.
type AssignmentTimeFactory struct {
	acceptTimeout time.Duration
}

func New(acceptTimeout time.Duration) *AssignmentTimeFactory {
	return &AssignmentTimeFactory{
		acceptTimeout: acceptTimeout,
	}
}

func (f *AssignmentTimeFactory) CalculateTimeout(assignedAt time.Time) time.Time {
	return assignedAt.Add(f.acceptTimeout)
}
