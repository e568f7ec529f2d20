package routing

import (
	"context"
	"delivery-route-engine/internal/domain"
	"delivery-route-engine/internal/ports"
)

// MockRouteProvider returns canned route data for tests.
type MockRouteProvider struct {
	Data *ports.RouteData
	Err  error
}

func (p *MockRouteProvider) GetRoute(ctx context.Context, locations []string) (*ports.RouteData, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	if p.Data == nil {
		return &ports.RouteData{}, nil
	}
	return p.Data, nil
}

// MockTrafficProvider returns canned incidents for tests.
type MockTrafficProvider struct {
	Incidents []domain.TrafficIncident
	Err       error
}

func (p *MockTrafficProvider) GetIncidents(ctx context.Context, box domain.BoundingBox) ([]domain.TrafficIncident, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Incidents, nil
}
