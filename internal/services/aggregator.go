package services

import (
	"context"
	"delivery-route-engine/internal/domain"
	"delivery-route-engine/internal/ports"
	"errors"
	"fmt"
)

// Flat travel speed assumed when no delivery order (and thus no vehicle
// profile) is attached to the request.
const DefaultAvgSpeedKmh = 40.0

// Aggregator orchestrates graph construction, incident correlation, stop
// sequencing and cost estimation into a single RouteReport.
//
// Repositories are injected explicitly; their lifecycle is owned by the
// host application. The aggregator holds no mutable state, so one instance
// is safe for concurrent use across request handlers.
type Aggregator struct {
	vehicles ports.VehicleRepository
	orders   ports.OrderRepository
}

func NewAggregator(vehicles ports.VehicleRepository, orders ports.OrderRepository) *Aggregator {
	return &Aggregator{vehicles: vehicles, orders: orders}
}

// Inputs for one route composition. All values come from upstream provider
// calls or the caller; the aggregator itself performs no I/O beyond the
// optional order/vehicle lookup.
type ComposeRequest struct {
	Maneuvers      []domain.Maneuver
	Geometry       []domain.Coordinates
	Incidents      []domain.TrafficIncident
	ProviderStops  []domain.Stop
	RequestedStops []domain.Stop

	// OrderID selects the delivery order whose vehicle drives the cost
	// model; zero means no order (zeroed costs, default speed).
	OrderID int

	// TrafficRadiusKm filters events by distance to the route; zero means
	// DefaultDetailRadiusKm.
	TrafficRadiusKm float64

	// Risk is the severity-to-risk policy; the zero value selects
	// DefaultRiskPolicy.
	Risk RiskPolicy
}

// Compose runs the single-pass orchestration and assembles the report.
//
// Graph construction is the mandatory path: an empty maneuver list fails
// with ErrNoRoute. Enrichment failures (order lookup, vehicle profile)
// degrade to a zeroed cost block plus an explanatory CostNote instead of
// aborting the request. Once the graph is built, Compose always returns a
// report.
func (a *Aggregator) Compose(ctx context.Context, req ComposeRequest) (*domain.RouteReport, error) {
	graph, err := BuildManeuverGraph(req.Maneuvers)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, fmt.Errorf("compose route: provider returned no maneuvers: %w", domain.ErrNoRoute)
		}
		return nil, fmt.Errorf("compose route: %w", err)
	}

	policy := req.Risk
	if policy == (RiskPolicy{}) {
		policy = DefaultRiskPolicy
	}

	radius := req.TrafficRadiusKm
	if radius <= 0 {
		radius = DefaultDetailRadiusKm
	}

	// Incident correlation is independent of cost enrichment; an empty
	// incident list (e.g. traffic provider degraded upstream) is valid.
	events := FilterByRadius(NormalizeIncidents(req.Incidents, req.Geometry, policy), radius)

	waypoints := SequenceWaypoints(req.ProviderStops, req.RequestedStops)

	cost, note := a.estimateOrderCost(ctx, req.OrderID, graph.TotalDistanceKm)

	instructions := make([]string, 0, len(req.Maneuvers))
	for _, m := range req.Maneuvers {
		instructions = append(instructions, m.Narrative)
	}

	return &domain.RouteReport{
		TotalDistanceKm: graph.TotalDistanceKm,
		TimeMinutes:     cost.TimeMinutes,
		Cost:            cost,
		Instructions:    instructions,
		Graph:           *graph,
		Waypoints:       waypoints,
		Events:          events,
		Summary:         SummarizeEvents(events),
		CostNote:        note,
	}, nil
}

// estimateOrderCost resolves the order's vehicle and runs the cost model.
// Any failure downgrades to the flat-speed time estimate with zeroed cost
// figures and an explanatory note.
func (a *Aggregator) estimateOrderCost(ctx context.Context, orderID int, distanceKm float64) (domain.CostEstimate, string) {
	flat := domain.CostEstimate{TimeMinutes: distanceKm / DefaultAvgSpeedKmh * 60}

	if orderID == 0 {
		return flat, ""
	}

	if a.orders == nil || a.vehicles == nil {
		return flat, "cost unavailable: no persistence configured"
	}

	order, err := a.orders.GetOrder(ctx, orderID)
	if err != nil {
		return flat, fmt.Sprintf("cost unavailable: order %d lookup failed: %v", orderID, err)
	}

	vehicle, err := a.vehicles.GetVehicle(ctx, order.VehicleID)
	if err != nil {
		return flat, fmt.Sprintf("cost unavailable: vehicle %d lookup failed: %v", order.VehicleID, err)
	}

	est, err := EstimateCost(distanceKm, *vehicle)
	if err != nil {
		return flat, fmt.Sprintf("cost unavailable: %v", err)
	}

	return est, ""
}
