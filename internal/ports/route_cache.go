package ports

import (
	"context"
	"delivery-route-engine/internal/domain"
)

// Optional cache for provider responses, keyed by a caller-normalized
// string. A false second return means "not cached", not an error.
type RouteCache interface {
	GetRoute(ctx context.Context, key string) (*RouteData, bool, error)
	PutRoute(ctx context.Context, key string, data *RouteData) error
	GetIncidents(ctx context.Context, key string) ([]domain.TrafficIncident, bool, error)
	PutIncidents(ctx context.Context, key string, incidents []domain.TrafficIncident) error
}
