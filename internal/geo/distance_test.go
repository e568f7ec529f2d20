package geo

import (
	"delivery-route-engine/internal/domain"
	"math"
	"testing"
)

func TestDistanceIdentity(t *testing.T) {
	p := domain.Coordinates{Lat: 19.4326, Lon: -99.1332}
	if d := Distance(p, p); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := domain.Coordinates{Lat: 19.4326, Lon: -99.1332}
	b := domain.Coordinates{Lat: 19.3007, Lon: -99.1504}

	ab := Distance(a, b)
	ba := Distance(b, a)
	if ab != ba {
		t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
	}
	if ab <= 0 {
		t.Fatalf("distance between distinct points = %v, want > 0", ab)
	}
}

func TestDistanceKnownValue(t *testing.T) {
	// Zocalo to Coyoacan center, roughly 15 km apart.
	a := domain.Coordinates{Lat: 19.4326, Lon: -99.1332}
	b := domain.Coordinates{Lat: 19.3007, Lon: -99.1504}

	d := Distance(a, b)
	if d < 14 || d > 16 {
		t.Fatalf("distance = %v km, want ~15 km", d)
	}
}

func TestDistanceAntipodal(t *testing.T) {
	a := domain.Coordinates{Lat: 0, Lon: 0}
	b := domain.Coordinates{Lat: 0, Lon: 180}

	// Half the Earth's circumference at the chosen radius.
	want := math.Pi * 6371.0
	if d := Distance(a, b); math.Abs(d-want) > 1e-6 {
		t.Fatalf("antipodal distance = %v, want %v", d, want)
	}
}
