package zone

type ZoneDB struct {
	ID       string
	Name     string
	IsActive bool
}
