package dto

type VehicleResponse struct {
	VehicleID            int     `json:"vehicle_id"`
	Name                 string  `json:"name"`
	Powertrain           string  `json:"powertrain"`
	FuelEconomyKmL       float64 `json:"fuel_economy_km_l"`
	ElectricEconomyKmKWh float64 `json:"electric_economy_km_kwh"`
	FuelPriceL           float64 `json:"fuel_price_l"`
	ElectricityPriceKWh  float64 `json:"electricity_price_kwh"`
	CO2KgPerLiter        float64 `json:"co2_kg_per_l"`
	CO2KgPerKWh          float64 `json:"co2_kg_per_kwh"`
	AvgSpeedKmh          float64 `json:"avg_speed_kmh"`
	MaintenanceCostKm    float64 `json:"maintenance_cost_km"`
}
