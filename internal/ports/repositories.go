package ports

import (
	"context"
	"delivery-route-engine/internal/domain"
)

// Port: read-only lookup of stored vehicle profiles.
type VehicleRepository interface {
	GetVehicle(ctx context.Context, id int) (*domain.VehicleProfile, error)
}

// Port: read-only lookup of stored delivery orders.
type OrderRepository interface {
	GetOrder(ctx context.Context, id int) (*domain.DeliveryOrder, error)
}
