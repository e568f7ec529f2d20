package dto

import "time"

type EventResponse struct {
	Category          string     `json:"category"`
	Label             string     `json:"label"`
	Icon              string     `json:"icon"`
	Color             string     `json:"color"`
	Risk              string     `json:"risk"`
	Severity          int        `json:"severity"`
	Description       string     `json:"description"`
	TranslatedDesc    string     `json:"translated_description"`
	Lat               float64    `json:"lat"`
	Lng               float64    `json:"lng"`
	StartTime         *time.Time `json:"start_time,omitempty"`
	EndTime           *time.Time `json:"end_time,omitempty"`
	VehiclesImpacted  int        `json:"vehicles_impacted"`
	DistanceToRouteKm *float64   `json:"distance_to_route_km"`
}

type SummaryResponse struct {
	EventCount       int            `json:"event_count"`
	ByCategory       map[string]int `json:"by_category"`
	AverageSeverity  float64        `json:"average_severity"`
	HighRiskCount    int            `json:"high_risk_count"`
	VehiclesImpacted int            `json:"vehicles_impacted"`
}

type NearbyEventsResponse struct {
	Events  []EventResponse `json:"events"`
	Summary SummaryResponse `json:"summary"`
}
