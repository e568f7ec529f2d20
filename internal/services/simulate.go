package services

import (
	"delivery-route-engine/internal/domain"
	"delivery-route-engine/internal/geo"
	"fmt"
)

// A vehicle position sampled during movement simulation.
type SimulatedPosition struct {
	Position       domain.Coordinates
	ElapsedMinutes float64
	DistanceKm     float64
}

// SimulateMovement walks the route geometry at a constant speed and emits
// a position every stepMinutes, always including the start and the final
// point. Positions snap to geometry vertices (no interpolation between
// vertices); the elapsed time at each vertex follows from the accumulated
// haversine distance.
func SimulateMovement(
	geometry []domain.Coordinates,
	speedKmh float64,
	stepMinutes float64,
) ([]SimulatedPosition, error) {
	if len(geometry) < 2 {
		return nil, fmt.Errorf(
			"simulate movement: geometry needs at least 2 points, got %d: %w",
			len(geometry), domain.ErrInvalidInput,
		)
	}

	if speedKmh <= 0 {
		return nil, fmt.Errorf(
			"simulate movement: speed %v km/h must be positive: %w",
			speedKmh, domain.ErrInvalidVehicleProfile,
		)
	}

	if stepMinutes <= 0 {
		stepMinutes = 1
	}

	positions := []SimulatedPosition{{Position: geometry[0]}}

	traveled := 0.0
	nextEmit := stepMinutes

	for i := 1; i < len(geometry); i++ {
		traveled += geo.Distance(geometry[i-1], geometry[i])
		elapsed := traveled / speedKmh * 60

		last := i == len(geometry)-1
		if elapsed >= nextEmit || last {
			positions = append(positions, SimulatedPosition{
				Position:       geometry[i],
				ElapsedMinutes: elapsed,
				DistanceKm:     traveled,
			})
			for nextEmit <= elapsed {
				nextEmit += stepMinutes
			}
		}
	}

	return positions, nil
}
