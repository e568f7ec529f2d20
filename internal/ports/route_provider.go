package ports

import (
	"context"
	"delivery-route-engine/internal/domain"
)

// Everything the routing provider returns for one multi-stop request.
//
// An empty Maneuvers slice is the provider's way of signaling that no
// usable route exists; the engine maps that to ErrNoRoute. Stops are
// already in the provider-optimized visiting order.
type RouteData struct {
	Maneuvers   []domain.Maneuver
	Geometry    []domain.Coordinates
	BoundingBox domain.BoundingBox
	Stops       []domain.Stop
}

// Contract for retrieving a routed path over an ordered list of locations.
type RouteProvider interface {
	// Return maneuvers, route geometry, bounding box and optimized stop
	// order for the given locations (index 0 is the origin).
	GetRoute(ctx context.Context, locations []string) (*RouteData, error)
}
