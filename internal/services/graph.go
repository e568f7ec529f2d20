package services

import (
	"delivery-route-engine/internal/domain"
	"fmt"
)

// Narrative assigned to the terminal node appended after the final maneuver.
const terminalNodeDesc = "End of route"

// BuildManeuverGraph converts an ordered maneuver list into a directed
// path graph.
//
// Node ids are sequential starting at 0, one node per maneuver, plus a
// terminal node for the endpoint of the final maneuver. Edge i -> i+1
// carries the distance of maneuver i, so the graph's total distance always
// equals the sum of the maneuver distances.
//
// A single-maneuver input (the provider's bare arrival instruction) yields
// one node and no edges.
func BuildManeuverGraph(maneuvers []domain.Maneuver) (*domain.ManeuverGraph, error) {
	if len(maneuvers) == 0 {
		return nil, fmt.Errorf("build maneuver graph: maneuver list is empty: %w", domain.ErrInvalidInput)
	}

	if len(maneuvers) == 1 {
		m := maneuvers[0]
		return &domain.ManeuverGraph{
			Nodes:           []domain.PathNode{{ID: 0, Pos: m.Start, Desc: m.Narrative}},
			Edges:           []domain.PathEdge{},
			TotalDistanceKm: 0,
		}, nil
	}

	nodes := make([]domain.PathNode, 0, len(maneuvers)+1)
	edges := make([]domain.PathEdge, 0, len(maneuvers))
	total := 0.0

	for i, m := range maneuvers {
		nodes = append(nodes, domain.PathNode{ID: i, Pos: m.Start, Desc: m.Narrative})

		if m.DistanceKm < 0 {
			return nil, fmt.Errorf(
				"build maneuver graph: maneuver %d has negative distance %v: %w",
				i, m.DistanceKm, domain.ErrInvalidInput,
			)
		}

		edges = append(edges, domain.PathEdge{From: i, To: i + 1, DistanceKm: m.DistanceKm})
		total += m.DistanceKm
	}

	// The provider reports only maneuver start points; the final maneuver
	// is an arrival instruction, so its start is the route endpoint.
	last := maneuvers[len(maneuvers)-1]
	nodes = append(nodes, domain.PathNode{
		ID:   len(maneuvers),
		Pos:  last.Start,
		Desc: terminalNodeDesc,
	})

	return &domain.ManeuverGraph{
		Nodes:           nodes,
		Edges:           edges,
		TotalDistanceKm: total,
	}, nil
}
