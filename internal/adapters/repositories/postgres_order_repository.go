package repositories

import (
	"context"
	"database/sql"
	"delivery-route-engine/internal/domain"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the OrderRepository port.
type PostgresOrderRepository struct{ DB *sql.DB }

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

// Return the delivery order with the given id.
func (r *PostgresOrderRepository) GetOrder(ctx context.Context, id int) (*domain.DeliveryOrder, error) {
	if r.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	query := `
	SELECT
		order_id, vehicle_id,
		destination_lat, destination_lon,
		weight_kg, volume_m3, description, status
	FROM orders
	WHERE order_id = $1;
	`

	var o domain.DeliveryOrder
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&o.OrderID, &o.VehicleID,
		&o.Destination.Lat, &o.Destination.Lon,
		&o.WeightKg, &o.VolumeM3, &o.Description, &o.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get order: id=%d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get order: query orders table: %w", err)
	}

	return &o, nil
}
