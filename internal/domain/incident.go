package domain

import "time"

// Raw traffic incident as supplied by the traffic provider.
// Position is nil when the provider omitted the coordinate; such records
// are skipped during normalization rather than failing the batch.
type TrafficIncident struct {
	Position         *Coordinates
	Type             int
	Severity         int
	Description      string
	StartTime        *time.Time
	EndTime          *time.Time
	VehiclesImpacted int
}

// Static descriptor for an incident category: semantic tag plus fixed
// display hints for the rendering layer.
type IncidentCategory struct {
	Tag   string
	Label string
	Icon  string
	Color string
}

// Normalized traffic event derived from a raw incident.
// DistanceToRouteKm is nil when no route geometry was available.
type TrafficEvent struct {
	Category          IncidentCategory
	Risk              string
	Severity          int
	Description       string
	TranslatedDesc    string
	Position          Coordinates
	StartTime         *time.Time
	EndTime           *time.Time
	VehiclesImpacted  int
	DistanceToRouteKm *float64
}

// Aggregate statistics over the normalized events of one route.
type TrafficSummary struct {
	EventCount       int
	ByCategory       map[string]int
	AverageSeverity  float64
	HighRiskCount    int
	VehiclesImpacted int
}
