package services

import (
	"delivery-route-engine/internal/domain"
	"testing"
)

func TestSequenceWaypointsRoles(t *testing.T) {
	stops := []domain.Stop{
		{Address: "Warehouse"},
		{Address: "Client A"},
		{Address: "Client B"},
		{Address: "Warehouse"},
	}

	waypoints := SequenceWaypoints(stops, nil)
	if len(waypoints) != 4 {
		t.Fatalf("expected 4 waypoints, got %d", len(waypoints))
	}

	wantRoles := []string{
		domain.RoleOrigin,
		domain.RoleIntermediate,
		domain.RoleIntermediate,
		domain.RoleDestination,
	}
	for i, w := range waypoints {
		if w.Role != wantRoles[i] {
			t.Errorf("waypoint %d role = %q, want %q", i, w.Role, wantRoles[i])
		}
		if w.Address != stops[i].Address {
			t.Errorf("waypoint %d address = %q, provider order not preserved", i, w.Address)
		}
	}
}

func TestSequenceWaypointsFallback(t *testing.T) {
	fallback := []domain.Stop{
		{Address: "Origin"},
		{Address: "Destination"},
	}

	waypoints := SequenceWaypoints(nil, fallback)
	if len(waypoints) != 2 {
		t.Fatalf("expected fallback list used, got %d waypoints", len(waypoints))
	}
	if waypoints[0].Role != domain.RoleOrigin || waypoints[1].Role != domain.RoleDestination {
		t.Fatalf("fallback roles = %q/%q", waypoints[0].Role, waypoints[1].Role)
	}
}

func TestSequenceWaypointsBothEmpty(t *testing.T) {
	if got := SequenceWaypoints(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}
}

func TestSequenceWaypointsSingleStop(t *testing.T) {
	waypoints := SequenceWaypoints([]domain.Stop{{Address: "Only"}}, nil)
	if len(waypoints) != 1 {
		t.Fatalf("expected 1 waypoint, got %d", len(waypoints))
	}
	// Index 0 wins over last-index when the list has one entry.
	if waypoints[0].Role != domain.RoleOrigin {
		t.Fatalf("role = %q, want origin", waypoints[0].Role)
	}
}
