package services

import (
	"context"
	"delivery-route-engine/internal/domain"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

type fakeVehicleRepo struct {
	vehicles map[int]domain.VehicleProfile
}

func (f *fakeVehicleRepo) GetVehicle(ctx context.Context, id int) (*domain.VehicleProfile, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, fmt.Errorf("fake vehicle repo: id=%d: %w", id, domain.ErrNotFound)
	}
	return &v, nil
}

type fakeOrderRepo struct {
	orders map[int]domain.DeliveryOrder
}

func (f *fakeOrderRepo) GetOrder(ctx context.Context, id int) (*domain.DeliveryOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, fmt.Errorf("fake order repo: id=%d: %w", id, domain.ErrNotFound)
	}
	return &o, nil
}

func testAggregator() *Aggregator {
	vehicles := &fakeVehicleRepo{vehicles: map[int]domain.VehicleProfile{
		7: {
			VehicleID:      7,
			Powertrain:     domain.PowertrainFuel,
			FuelEconomyKmL: 12,
			FuelPriceL:     22.5,
			CO2KgPerLiter:  2.31,
			AvgSpeedKmh:    25,
		},
	}}
	orders := &fakeOrderRepo{orders: map[int]domain.DeliveryOrder{
		100: {OrderID: 100, VehicleID: 7},
		101: {OrderID: 101, VehicleID: 999},
	}}
	return NewAggregator(vehicles, orders)
}

func composeFixture() ComposeRequest {
	pos := domain.Coordinates{Lat: 19.40, Lon: -99.15}
	return ComposeRequest{
		Maneuvers: []domain.Maneuver{
			{Narrative: "go", Start: domain.Coordinates{Lat: 19.40, Lon: -99.15}, DistanceKm: 70},
			{Narrative: "turn", Start: domain.Coordinates{Lat: 19.41, Lon: -99.16}, DistanceKm: 50},
		},
		Geometry: []domain.Coordinates{
			{Lat: 19.40, Lon: -99.15},
			{Lat: 19.41, Lon: -99.16},
		},
		Incidents: []domain.TrafficIncident{
			{Position: &pos, Type: 4, Severity: 5, Description: "Congestion", VehiclesImpacted: 12},
			{Position: nil, Type: 1, Severity: 1},
		},
		ProviderStops: []domain.Stop{
			{Address: "Warehouse"},
			{Address: "Client"},
		},
	}
}

func TestComposeWithOrderCost(t *testing.T) {
	agg := testAggregator()
	req := composeFixture()
	req.OrderID = 100

	report, err := agg.Compose(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalDistanceKm != 120 {
		t.Fatalf("total distance = %v, want 120", report.TotalDistanceKm)
	}
	if report.Cost.FuelLiters != 10 || report.Cost.EnergyCost != 225.0 {
		t.Fatalf("cost = %+v, want 10 L / 225.0", report.Cost)
	}
	if report.CostNote != "" {
		t.Fatalf("unexpected cost note: %q", report.CostNote)
	}
	if report.TimeMinutes != 120.0/25*60 {
		t.Fatalf("time = %v min", report.TimeMinutes)
	}

	if len(report.Instructions) != 2 || report.Instructions[0] != "go" {
		t.Fatalf("instructions = %v", report.Instructions)
	}
	if len(report.Events) != 1 {
		t.Fatalf("events = %d, want 1 (malformed skipped, near route)", len(report.Events))
	}
	if report.Summary.HighRiskCount != 1 || report.Summary.VehiclesImpacted != 12 {
		t.Fatalf("summary = %+v", report.Summary)
	}
	if len(report.Waypoints) != 2 || report.Waypoints[0].Role != domain.RoleOrigin {
		t.Fatalf("waypoints = %+v", report.Waypoints)
	}
}

func TestComposeWithoutOrderUsesFlatSpeed(t *testing.T) {
	agg := testAggregator()
	report, err := agg.Compose(context.Background(), composeFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Cost.EnergyCost != 0 || report.Cost.EmissionsKg != 0 {
		t.Fatalf("expected zeroed cost without order, got %+v", report.Cost)
	}
	if report.TimeMinutes != 120.0/DefaultAvgSpeedKmh*60 {
		t.Fatalf("time = %v, want flat %v km/h estimate", report.TimeMinutes, DefaultAvgSpeedKmh)
	}
}

func TestComposeOrderLookupDegrades(t *testing.T) {
	agg := testAggregator()
	req := composeFixture()
	req.OrderID = 555 // not stored

	report, err := agg.Compose(context.Background(), req)
	if err != nil {
		t.Fatalf("expected degraded report, got error: %v", err)
	}
	if report.CostNote == "" {
		t.Fatal("expected explanatory cost note")
	}
	if report.Cost.EnergyCost != 0 {
		t.Fatalf("expected zeroed cost, got %+v", report.Cost)
	}
	if report.TotalDistanceKm != 120 {
		t.Fatalf("degraded report lost distance: %v", report.TotalDistanceKm)
	}
}

func TestComposeBadVehicleDegrades(t *testing.T) {
	agg := testAggregator()
	req := composeFixture()
	req.OrderID = 101 // order references a missing vehicle

	report, err := agg.Compose(context.Background(), req)
	if err != nil {
		t.Fatalf("expected degraded report, got error: %v", err)
	}
	if report.CostNote == "" {
		t.Fatal("expected explanatory cost note")
	}
}

func TestComposeEmptyManeuversIsNoRoute(t *testing.T) {
	agg := testAggregator()
	_, err := agg.Compose(context.Background(), ComposeRequest{})
	if !errors.Is(err, domain.ErrNoRoute) {
		t.Fatalf("expected ErrNoRoute, got %v", err)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	agg := testAggregator()
	req := composeFixture()
	req.OrderID = 100

	first, err := agg.Compose(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := agg.Compose(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different reports")
	}
}
