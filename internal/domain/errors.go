package domain

import "errors"

// Error taxonomy shared across the engine. Callers match with errors.Is.
var (
	// Malformed or empty input supplied by the caller.
	ErrInvalidInput = errors.New("invalid input")

	// The routing provider returned no usable path.
	ErrNoRoute = errors.New("no route")

	// The stored vehicle has an unrecognized powertrain type.
	ErrInvalidVehicleType = errors.New("invalid vehicle type")

	// The stored vehicle profile holds unusable figures (e.g. zero speed).
	ErrInvalidVehicleProfile = errors.New("invalid vehicle profile")

	// An upstream routing/traffic call failed.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// A repository lookup matched no record.
	ErrNotFound = errors.New("not found")
)
