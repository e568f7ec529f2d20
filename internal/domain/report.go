package domain

// Aggregate result of one route composition request.
//
// A RouteReport is assembled once per request and never mutated afterwards;
// persistence and rendering are external collaborators. CostNote carries an
// explanatory message when cost enrichment degraded (e.g. order not found)
// instead of aborting the request.
type RouteReport struct {
	TotalDistanceKm float64
	TimeMinutes     float64
	Cost            CostEstimate
	Instructions    []string
	Graph           ManeuverGraph
	Waypoints       []Waypoint
	Events          []TrafficEvent
	Summary         TrafficSummary
	CostNote        string
}
