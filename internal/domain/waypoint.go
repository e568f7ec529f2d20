package domain

// Role of a stop within a multi-stop route.
const (
	RoleOrigin       = "origin"
	RoleIntermediate = "intermediate"
	RoleDestination  = "destination"
)

// A stop descriptor as returned by the routing provider (or supplied by
// the caller as a fallback): display address plus geocoded position.
type Stop struct {
	Address  string
	Position Coordinates
}

// Ordered stop on the final route with its assigned role.
type Waypoint struct {
	Address  string
	Position Coordinates
	Role     string
}
