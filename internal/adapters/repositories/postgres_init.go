package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createVehiclesQuery := `
	CREATE TABLE IF NOT EXISTS vehicles (
		vehicle_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		powertrain TEXT NOT NULL,
		fuel_economy_km_l DOUBLE PRECISION NOT NULL DEFAULT 0,
		electric_economy_km_kwh DOUBLE PRECISION NOT NULL DEFAULT 0,
		fuel_price_l DOUBLE PRECISION NOT NULL DEFAULT 0,
		electricity_price_kwh DOUBLE PRECISION NOT NULL DEFAULT 0,
		co2_kg_per_l DOUBLE PRECISION NOT NULL DEFAULT 2.31,
		co2_kg_per_kwh DOUBLE PRECISION NOT NULL DEFAULT 0.45,
		avg_speed_kmh DOUBLE PRECISION NOT NULL DEFAULT 25,
		maintenance_cost_km DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	`

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id INTEGER PRIMARY KEY,
		vehicle_id INTEGER NOT NULL REFERENCES vehicles(vehicle_id),
		destination_lat DOUBLE PRECISION NOT NULL,
		destination_lon DOUBLE PRECISION NOT NULL,
		weight_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
		volume_m3 DOUBLE PRECISION NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending'
	);
	`

	createOrdersVehicleIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_orders_vehicle_id ON orders(vehicle_id);
	`

	statements := []string{
		createVehiclesQuery,
		createOrdersQuery,
		createOrdersVehicleIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type VehicleSeed struct {
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

type OrderSeed struct {
	OrderID        int     `json:"order_id"`
	VehicleID      int     `json:"vehicle_id"`
	DestinationLat float64 `json:"destination_lat"`
	DestinationLon float64 `json:"destination_lon"`
	WeightKg       float64 `json:"weight_kg"`
	VolumeM3       float64 `json:"volume_m3"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
}

type FleetSeed struct {
	Vehicles []VehicleSeed `json:"vehicles"`
	Orders   []OrderSeed   `json:"orders"`
}

// Populate the database with fleet data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed fleet: read %q: %w", jsonPath, err)
	}

	var data FleetSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed fleet: parse json: %w", err)
	}

	for i, v := range data.Vehicles {
		if v.VehicleID <= 0 {
			return fmt.Errorf("seed fleet: invalid vehicle_id at index %d: %d", i+1, v.VehicleID)
		}
		if strings.TrimSpace(v.Powertrain) == "" {
			return fmt.Errorf("seed fleet: vehicle %d: powertrain cannot be empty", v.VehicleID)
		}
	}
	for i, o := range data.Orders {
		if o.OrderID <= 0 {
			return fmt.Errorf("seed fleet: invalid order_id at index %d: %d", i+1, o.OrderID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed fleet: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	vehicleStmt, err := tx.Prepare(`
	INSERT INTO vehicles (
		vehicle_id, name, powertrain,
		fuel_economy_km_l, electric_economy_km_kwh,
		fuel_price_l, electricity_price_kwh,
		co2_kg_per_l, co2_kg_per_kwh,
		avg_speed_kmh, maintenance_cost_km
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (vehicle_id) DO UPDATE
	SET name = EXCLUDED.name,
		powertrain = EXCLUDED.powertrain,
		fuel_economy_km_l = EXCLUDED.fuel_economy_km_l,
		electric_economy_km_kwh = EXCLUDED.electric_economy_km_kwh,
		fuel_price_l = EXCLUDED.fuel_price_l,
		electricity_price_kwh = EXCLUDED.electricity_price_kwh,
		co2_kg_per_l = EXCLUDED.co2_kg_per_l,
		co2_kg_per_kwh = EXCLUDED.co2_kg_per_kwh,
		avg_speed_kmh = EXCLUDED.avg_speed_kmh,
		maintenance_cost_km = EXCLUDED.maintenance_cost_km;
	`)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare vehicle insert: %w", err)
	}
	defer vehicleStmt.Close()

	for _, v := range data.Vehicles {
		if _, err := vehicleStmt.Exec(
			v.VehicleID, v.Name, v.Powertrain,
			v.FuelEconomyKmL, v.ElectricEconomyKmKWh,
			v.FuelPriceL, v.ElectricityPriceKWh,
			v.CO2KgPerLiter, v.CO2KgPerKWh,
			v.AvgSpeedKmh, v.MaintenanceCostKm,
		); err != nil {
			return fmt.Errorf("seed fleet: insert vehicle_id=%d: %w", v.VehicleID, err)
		}
	}

	orderStmt, err := tx.Prepare(`
	INSERT INTO orders (
		order_id, vehicle_id,
		destination_lat, destination_lon,
		weight_kg, volume_m3, description, status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (order_id) DO UPDATE
	SET vehicle_id = EXCLUDED.vehicle_id,
		destination_lat = EXCLUDED.destination_lat,
		destination_lon = EXCLUDED.destination_lon,
		weight_kg = EXCLUDED.weight_kg,
		volume_m3 = EXCLUDED.volume_m3,
		description = EXCLUDED.description,
		status = EXCLUDED.status;
	`)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare order insert: %w", err)
	}
	defer orderStmt.Close()

	for _, o := range data.Orders {
		status := o.Status
		if status == "" {
			status = "pending"
		}
		if _, err := orderStmt.Exec(
			o.OrderID, o.VehicleID,
			o.DestinationLat, o.DestinationLon,
			o.WeightKg, o.VolumeM3, o.Description, status,
		); err != nil {
			return fmt.Errorf("seed fleet: insert order_id=%d: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed fleet: commit tx: %w", err)
	}

	return nil
}
