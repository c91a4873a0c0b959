package rider

import "time"

type RiderDB struct {
	ID           string
	Name         string
	Phone        string
	Status       string
	ZoneID       string
	ActiveOrders int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
