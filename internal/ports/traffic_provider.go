package ports

import (
	"context"
	"delivery-route-engine/internal/domain"
)

// Contract for retrieving live traffic incidents inside a bounding box.
// An empty list is a valid result (no incidents in the area).
type TrafficProvider interface {
	GetIncidents(ctx context.Context, box domain.BoundingBox) ([]domain.TrafficIncident, error)
}
