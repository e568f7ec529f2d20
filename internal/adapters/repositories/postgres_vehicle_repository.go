package repositories

import (
	"context"
	"database/sql"
	"delivery-route-engine/internal/domain"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the VehicleRepository port.
type PostgresVehicleRepository struct{ DB *sql.DB }

func NewPostgresVehicleRepository(db *sql.DB) *PostgresVehicleRepository {
	return &PostgresVehicleRepository{DB: db}
}

// Return the vehicle profile with the given id.
func (r *PostgresVehicleRepository) GetVehicle(ctx context.Context, id int) (*domain.VehicleProfile, error) {
	if r.DB == nil {
		return nil, errors.New("vehicle repository: DB is nil")
	}

	query := `
	SELECT
		vehicle_id, name, powertrain,
		fuel_economy_km_l, electric_economy_km_kwh,
		fuel_price_l, electricity_price_kwh,
		co2_kg_per_l, co2_kg_per_kwh,
		avg_speed_kmh, maintenance_cost_km
	FROM vehicles
	WHERE vehicle_id = $1;
	`

	var v domain.VehicleProfile
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&v.VehicleID, &v.Name, &v.Powertrain,
		&v.FuelEconomyKmL, &v.ElectricEconomyKmKWh,
		&v.FuelPriceL, &v.ElectricityPriceKWh,
		&v.CO2KgPerLiter, &v.CO2KgPerKWh,
		&v.AvgSpeedKmh, &v.MaintenanceCostKm,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get vehicle: id=%d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get vehicle: query vehicles table: %w", err)
	}

	return &v, nil
}
