package services

import (
	"delivery-route-engine/internal/domain"
	"fmt"
)

// EstimateCost computes consumption, monetary cost, travel time and CO2
// emissions for one travel distance against a vehicle profile.
//
// Hybrid vehicles run both the fuel and electric figures against the full
// distance independently (not split by ratio) and sum costs and emissions.
// All outputs are non-negative; rounding is a presentation concern.
func EstimateCost(distanceKm float64, v domain.VehicleProfile) (domain.CostEstimate, error) {
	if distanceKm < 0 {
		return domain.CostEstimate{}, fmt.Errorf(
			"estimate cost: distance %v km must be non-negative: %w",
			distanceKm, domain.ErrInvalidInput,
		)
	}

	if v.AvgSpeedKmh <= 0 {
		return domain.CostEstimate{}, fmt.Errorf(
			"estimate cost: vehicle %d average speed %v km/h must be positive: %w",
			v.VehicleID, v.AvgSpeedKmh, domain.ErrInvalidVehicleProfile,
		)
	}

	est := domain.CostEstimate{
		TimeMinutes:     distanceKm / v.AvgSpeedKmh * 60,
		MaintenanceCost: distanceKm * v.MaintenanceCostKm,
	}

	switch v.Powertrain {
	case domain.PowertrainFuel:
		liters, cost, kg, err := fuelFigures(distanceKm, v)
		if err != nil {
			return domain.CostEstimate{}, err
		}
		est.FuelLiters = liters
		est.EnergyCost = cost
		est.EmissionsKg = kg

	case domain.PowertrainElectric:
		kwh, cost, kg, err := electricFigures(distanceKm, v)
		if err != nil {
			return domain.CostEstimate{}, err
		}
		est.ElectricKWh = kwh
		est.EnergyCost = cost
		est.EmissionsKg = kg

	case domain.PowertrainHybrid:
		liters, fuelCost, fuelKg, err := fuelFigures(distanceKm, v)
		if err != nil {
			return domain.CostEstimate{}, err
		}
		kwh, elecCost, elecKg, err := electricFigures(distanceKm, v)
		if err != nil {
			return domain.CostEstimate{}, err
		}
		est.FuelLiters = liters
		est.ElectricKWh = kwh
		est.EnergyCost = fuelCost + elecCost
		est.EmissionsKg = fuelKg + elecKg

	default:
		return domain.CostEstimate{}, fmt.Errorf(
			"estimate cost: vehicle %d powertrain %q: %w",
			v.VehicleID, v.Powertrain, domain.ErrInvalidVehicleType,
		)
	}

	est.TotalCost = est.EnergyCost + est.MaintenanceCost
	return est, nil
}

func fuelFigures(distanceKm float64, v domain.VehicleProfile) (liters, cost, emissionsKg float64, err error) {
	if v.FuelEconomyKmL <= 0 {
		return 0, 0, 0, fmt.Errorf(
			"estimate cost: vehicle %d fuel economy %v km/L must be positive: %w",
			v.VehicleID, v.FuelEconomyKmL, domain.ErrInvalidVehicleProfile,
		)
	}

	liters = distanceKm / v.FuelEconomyKmL
	return liters, liters * v.FuelPriceL, liters * v.CO2KgPerLiter, nil
}

func electricFigures(distanceKm float64, v domain.VehicleProfile) (kwh, cost, emissionsKg float64, err error) {
	if v.ElectricEconomyKmKWh <= 0 {
		return 0, 0, 0, fmt.Errorf(
			"estimate cost: vehicle %d electric economy %v km/kWh must be positive: %w",
			v.VehicleID, v.ElectricEconomyKmKWh, domain.ErrInvalidVehicleProfile,
		)
	}

	kwh = distanceKm / v.ElectricEconomyKmKWh
	return kwh, kwh * v.ElectricityPriceKWh, kwh * v.CO2KgPerKWh, nil
}
