package entities

import "time"

type Rider struct {
	ID           string
	Name         string
	Phone        string
	Status       RiderStatusType
	ZoneID       string
	ActiveOrders int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RiderStatusType string

const (
	RiderOnline    RiderStatusType = "online"
	RiderOffline   RiderStatusType = "offline"
	RiderSuspended RiderStatusType = "suspended"
)

func (t RiderStatusType) String() string {
	return string(t)
}
