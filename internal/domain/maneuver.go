package domain

// Represents a single instructed leg of travel as returned by the routing
// provider: narrative text, the coordinate where the instruction applies,
// and the distance covered until the next maneuver. Immutable once parsed
// at the provider boundary.
type Maneuver struct {
	Narrative  string
	Start      Coordinates
	DistanceKm float64
}

// Graph vertex: one per maneuver, plus a terminal vertex for the endpoint
// of the final maneuver.
type PathNode struct {
	ID   int
	Pos  Coordinates
	Desc string
}

// Directed edge between consecutive path nodes carrying the travel
// distance of the corresponding maneuver.
type PathEdge struct {
	From       int
	To         int
	DistanceKm float64
}

// Directed path graph derived from an ordered maneuver list.
//
// The graph is always a simple chain (no branching, no cycles): it mirrors
// a travel itinerary, not a road network. Nodes and edges are stored in
// traversal order so consumers may iterate either view.
type ManeuverGraph struct {
	Nodes           []PathNode
	Edges           []PathEdge
	TotalDistanceKm float64
}
