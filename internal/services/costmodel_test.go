package services

import (
	"delivery-route-engine/internal/domain"
	"errors"
	"math"
	"testing"
)

func fuelTruck() domain.VehicleProfile {
	return domain.VehicleProfile{
		VehicleID:      1,
		Powertrain:     domain.PowertrainFuel,
		FuelEconomyKmL: 12,
		FuelPriceL:     22.5,
		CO2KgPerLiter:  2.31,
		AvgSpeedKmh:    25,
	}
}

func TestEstimateCostFuel(t *testing.T) {
	est, err := EstimateCost(120, fuelTruck())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.FuelLiters != 10 {
		t.Fatalf("consumption = %v L, want 10", est.FuelLiters)
	}
	if est.EnergyCost != 225.0 {
		t.Fatalf("cost = %v, want 225.0", est.EnergyCost)
	}
	if math.Abs(est.EmissionsKg-23.1) > 1e-9 {
		t.Fatalf("emissions = %v, want 23.1", est.EmissionsKg)
	}
	if est.TimeMinutes != 120.0/25*60 {
		t.Fatalf("time = %v min", est.TimeMinutes)
	}
}

func TestEstimateCostMonotonicInDistance(t *testing.T) {
	v := fuelTruck()
	prev := -1.0
	for _, d := range []float64{0, 10, 50, 120, 300} {
		est, err := EstimateCost(d, v)
		if err != nil {
			t.Fatalf("unexpected error at %v km: %v", d, err)
		}
		if est.EnergyCost < prev {
			t.Fatalf("cost not monotonic: %v km -> %v", d, est.EnergyCost)
		}
		if est.FuelLiters != d/v.FuelEconomyKmL {
			t.Fatalf("consumption = %v, want %v", est.FuelLiters, d/v.FuelEconomyKmL)
		}
		prev = est.EnergyCost
	}
}

func TestEstimateCostElectric(t *testing.T) {
	v := domain.VehicleProfile{
		VehicleID:            2,
		Powertrain:           domain.PowertrainElectric,
		ElectricEconomyKmKWh: 6,
		ElectricityPriceKWh:  3,
		CO2KgPerKWh:          0.45,
		AvgSpeedKmh:          30,
	}

	est, err := EstimateCost(60, v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.ElectricKWh != 10 {
		t.Fatalf("consumption = %v kWh, want 10", est.ElectricKWh)
	}
	if est.EnergyCost != 30 {
		t.Fatalf("cost = %v, want 30", est.EnergyCost)
	}
	if math.Abs(est.EmissionsKg-4.5) > 1e-9 {
		t.Fatalf("emissions = %v, want 4.5", est.EmissionsKg)
	}
	if est.FuelLiters != 0 {
		t.Fatalf("electric vehicle reported %v L of fuel", est.FuelLiters)
	}
}

func TestEstimateCostHybridSumsIndependently(t *testing.T) {
	hybrid := domain.VehicleProfile{
		VehicleID:            3,
		Powertrain:           domain.PowertrainHybrid,
		FuelEconomyKmL:       20,
		FuelPriceL:           22.5,
		CO2KgPerLiter:        2.31,
		ElectricEconomyKmKWh: 8,
		ElectricityPriceKWh:  3,
		CO2KgPerKWh:          0.45,
		AvgSpeedKmh:          25,
	}

	est, err := EstimateCost(100, hybrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both figures computed against the full distance, not a split.
	wantLiters := 100.0 / 20
	wantKWh := 100.0 / 8
	if est.FuelLiters != wantLiters || est.ElectricKWh != wantKWh {
		t.Fatalf("consumption = %v L / %v kWh, want %v / %v",
			est.FuelLiters, est.ElectricKWh, wantLiters, wantKWh)
	}

	wantEmissions := wantLiters*2.31 + wantKWh*0.45
	if math.Abs(est.EmissionsKg-wantEmissions) > 1e-9 {
		t.Fatalf("emissions = %v, want %v", est.EmissionsKg, wantEmissions)
	}

	wantCost := wantLiters*22.5 + wantKWh*3
	if math.Abs(est.EnergyCost-wantCost) > 1e-9 {
		t.Fatalf("cost = %v, want %v", est.EnergyCost, wantCost)
	}
}

func TestEstimateCostMaintenanceSeparateFromEnergy(t *testing.T) {
	v := fuelTruck()
	v.MaintenanceCostKm = 1.5

	est, err := EstimateCost(120, v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.EnergyCost != 225.0 {
		t.Fatalf("energy cost = %v, want 225.0", est.EnergyCost)
	}
	if est.MaintenanceCost != 180.0 {
		t.Fatalf("maintenance = %v, want 180.0", est.MaintenanceCost)
	}
	if est.TotalCost != 405.0 {
		t.Fatalf("total = %v, want 405.0", est.TotalCost)
	}
}

func TestEstimateCostInvalidProfile(t *testing.T) {
	v := fuelTruck()
	v.AvgSpeedKmh = 0
	if _, err := EstimateCost(10, v); !errors.Is(err, domain.ErrInvalidVehicleProfile) {
		t.Fatalf("zero speed: expected ErrInvalidVehicleProfile, got %v", err)
	}

	v = fuelTruck()
	v.FuelEconomyKmL = 0
	if _, err := EstimateCost(10, v); !errors.Is(err, domain.ErrInvalidVehicleProfile) {
		t.Fatalf("zero economy: expected ErrInvalidVehicleProfile, got %v", err)
	}
}

func TestEstimateCostUnknownPowertrain(t *testing.T) {
	v := fuelTruck()
	v.Powertrain = "steam"
	if _, err := EstimateCost(10, v); !errors.Is(err, domain.ErrInvalidVehicleType) {
		t.Fatalf("expected ErrInvalidVehicleType, got %v", err)
	}
}

func TestEstimateCostNegativeDistance(t *testing.T) {
	if _, err := EstimateCost(-1, fuelTruck()); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
