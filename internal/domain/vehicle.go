package domain

// Powertrain categories recognized by the cost model.
const (
	PowertrainFuel     = "fuel"
	PowertrainElectric = "electric"
	PowertrainHybrid   = "hybrid"
)

// Economic and physical profile of a delivery vehicle.
//
// Economy figures are km per liter (fuel) and km per kWh (electric);
// emission factors are kg CO2-equivalent per liter and per kWh. Hybrid
// vehicles carry both sets of figures.
type VehicleProfile struct {
	VehicleID            int
	Name                 string
	Powertrain           string
	FuelEconomyKmL       float64
	ElectricEconomyKmKWh float64
	FuelPriceL           float64
	ElectricityPriceKWh  float64
	CO2KgPerLiter        float64
	CO2KgPerKWh          float64
	AvgSpeedKmh          float64
	MaintenanceCostKm    float64
}

// Consumption, cost, travel time and emissions for one travel distance.
//
// EnergyCost covers fuel/electricity only; MaintenanceCost is the per-km
// upkeep charge. Rounding is left to the presentation layer.
type CostEstimate struct {
	TimeMinutes     float64
	FuelLiters      float64
	ElectricKWh     float64
	EnergyCost      float64
	MaintenanceCost float64
	TotalCost       float64
	EmissionsKg     float64
}
