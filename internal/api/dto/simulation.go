package dto

type PointRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type SimulationRequest struct {
	Geometry    []PointRequest `json:"geometry"`
	SpeedKmh    float64        `json:"speed_kmh"`
	StepMinutes float64        `json:"step_minutes"`
}

type PositionResponse struct {
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	ElapsedMinutes float64 `json:"elapsed_minutes"`
	DistanceKm     float64 `json:"distance_km"`
}

type SimulationResponse struct {
	Positions []PositionResponse `json:"positions"`
}
