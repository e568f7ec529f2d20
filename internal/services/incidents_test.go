package services

import (
	"delivery-route-engine/internal/domain"
	"testing"
)

func TestRiskPolicyLevels(t *testing.T) {
	cases := []struct {
		severity int
		def      string
		legacy   string
	}{
		{1, RiskLow, RiskLow},
		{2, RiskLow, RiskMedium},
		{3, RiskMedium, RiskHigh},
		{4, RiskHigh, RiskHigh},
		{5, RiskHigh, RiskHigh},
	}

	for _, c := range cases {
		if got := DefaultRiskPolicy.Level(c.severity); got != c.def {
			t.Errorf("default policy severity %d = %q, want %q", c.severity, got, c.def)
		}
		if got := LegacyAlertRiskPolicy.Level(c.severity); got != c.legacy {
			t.Errorf("legacy policy severity %d = %q, want %q", c.severity, got, c.legacy)
		}
	}
}

func TestNormalizeIncidentsProximityAndRisk(t *testing.T) {
	pos := domain.Coordinates{Lat: 19.40, Lon: -99.15}
	geometry := []domain.Coordinates{
		{Lat: 19.40, Lon: -99.15},
		{Lat: 19.41, Lon: -99.16},
	}

	events := NormalizeIncidents([]domain.TrafficIncident{
		{Position: &pos, Type: 5, Severity: 5, Description: "Accident"},
	}, geometry, DefaultRiskPolicy)

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	e := events[0]
	if e.DistanceToRouteKm == nil {
		t.Fatal("distance to route is nil with geometry present")
	}
	if *e.DistanceToRouteKm > 0.001 {
		t.Fatalf("distance to route = %v, want ~0", *e.DistanceToRouteKm)
	}
	if e.Risk != RiskHigh {
		t.Fatalf("risk = %q, want high", e.Risk)
	}
	if e.Category.Tag != "accident" {
		t.Fatalf("category = %q, want accident", e.Category.Tag)
	}
}

func TestNormalizeIncidentsSkipsMissingCoordinate(t *testing.T) {
	pos := domain.Coordinates{Lat: 19.40, Lon: -99.15}
	incidents := []domain.TrafficIncident{
		{Position: nil, Type: 1, Severity: 2},
		{Position: &pos, Type: 1, Severity: 2},
	}

	events := NormalizeIncidents(incidents, nil, DefaultRiskPolicy)
	if len(events) != 1 {
		t.Fatalf("expected malformed incident skipped, got %d events", len(events))
	}
	if len(events) > len(incidents) {
		t.Fatal("normalization must never add events")
	}
	if events[0].DistanceToRouteKm != nil {
		t.Fatal("distance to route must be nil without geometry")
	}
}

func TestUnknownTypeFallsBackToOther(t *testing.T) {
	c := CategoryForType(99)
	if c.Tag != "other" {
		t.Fatalf("category = %q, want other", c.Tag)
	}
	if c.Icon == "" || c.Color == "" {
		t.Fatalf("default display hints missing: %+v", c)
	}
}

func TestDistanceToRouteSamplingStride(t *testing.T) {
	// Above the cutoff only every 5th point is sampled. The nearest point
	// sits at an unsampled index, so the approximate distance comes from
	// index 1000 instead of index 1001.
	geometry := make([]domain.Coordinates, 1200)
	for i := range geometry {
		geometry[i] = domain.Coordinates{Lat: 10, Lon: float64(i) * 0.01}
	}
	geometry[1001] = domain.Coordinates{Lat: 55, Lon: 55}

	pos := domain.Coordinates{Lat: 55, Lon: 55}
	d := distanceToRoute(pos, geometry)
	if d == nil {
		t.Fatal("distance is nil")
	}
	if *d == 0 {
		t.Fatal("stride sampling should have skipped the exact point")
	}

	// Below the cutoff every point is sampled and the match is exact.
	exact := distanceToRoute(pos, geometry[1000:1002])
	if exact == nil || *exact != 0 {
		t.Fatalf("exact sampling distance = %v, want 0", exact)
	}
}

func TestFilterByRadius(t *testing.T) {
	near := 2.0
	far := 8.0
	events := []domain.TrafficEvent{
		{DistanceToRouteKm: &near},
		{DistanceToRouteKm: &far},
		{DistanceToRouteKm: nil},
	}

	kept := FilterByRadius(events, DefaultDetailRadiusKm)
	if len(kept) != 1 {
		t.Fatalf("expected 1 event within %v km, got %d", DefaultDetailRadiusKm, len(kept))
	}

	kept = FilterByRadius(events, DefaultNearbyRadiusKm)
	if len(kept) != 2 {
		t.Fatalf("expected 2 events within %v km, got %d", DefaultNearbyRadiusKm, len(kept))
	}
}

func TestTranslateDescription(t *testing.T) {
	if got := TranslateDescription(""); got != "Sin detalles" {
		t.Fatalf("empty text = %q", got)
	}
	got := TranslateDescription("Road construction At Insurgentes")
	if got != "Construcción En Insurgentes" {
		t.Fatalf("translated = %q", got)
	}
}

func TestSummarizeEvents(t *testing.T) {
	d := 1.0
	events := []domain.TrafficEvent{
		{Category: CategoryForType(1), Risk: RiskLow, Severity: 2, VehiclesImpacted: 3, DistanceToRouteKm: &d},
		{Category: CategoryForType(1), Risk: RiskHigh, Severity: 5, VehiclesImpacted: 1, DistanceToRouteKm: &d},
		{Category: CategoryForType(4), Risk: RiskMedium, Severity: 3, DistanceToRouteKm: &d},
	}

	s := SummarizeEvents(events)
	if s.EventCount != 3 {
		t.Fatalf("count = %d", s.EventCount)
	}
	if s.ByCategory["construction"] != 2 || s.ByCategory["congestion"] != 1 {
		t.Fatalf("histogram = %v", s.ByCategory)
	}
	if s.AverageSeverity != 10.0/3.0 {
		t.Fatalf("average severity = %v", s.AverageSeverity)
	}
	if s.HighRiskCount != 1 {
		t.Fatalf("high risk count = %d", s.HighRiskCount)
	}
	if s.VehiclesImpacted != 4 {
		t.Fatalf("vehicles impacted = %d", s.VehiclesImpacted)
	}
}
