package services

import "delivery-route-engine/internal/domain"

// SequenceWaypoints produces the canonical ordered waypoint list for a
// route.
//
// The provider (not this engine) performs any multi-stop optimization, so
// provider-returned order is preserved verbatim. When the provider returns
// no stops the caller-supplied list is used instead, tagged the same way,
// so the aggregator never fails solely due to missing optimized-order data.
func SequenceWaypoints(providerStops, fallback []domain.Stop) []domain.Waypoint {
	stops := providerStops
	if len(stops) == 0 {
		stops = fallback
	}

	waypoints := make([]domain.Waypoint, 0, len(stops))
	for i, s := range stops {
		role := domain.RoleIntermediate
		switch i {
		case 0:
			role = domain.RoleOrigin
		case len(stops) - 1:
			role = domain.RoleDestination
		}

		waypoints = append(waypoints, domain.Waypoint{
			Address:  s.Address,
			Position: s.Position,
			Role:     role,
		})
	}

	return waypoints
}
