package entities

type Zone struct {
	ID       string
	Name     string
	IsActive bool
}

// ZoneDistance pairs a zone with its driving distance from an order's
// pickup address. Computed per invocation, never persisted.
type ZoneDistance struct {
	Zone           Zone
	DistanceMeters int
}
