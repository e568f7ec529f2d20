package dto

type RouteRequest struct {
	Locations       []string `json:"locations"`
	OrderID         int      `json:"order_id"`
	TrafficRadiusKm float64  `json:"traffic_radius_km"`
	ReturnToStart   bool     `json:"return_to_start"`
}

type NodeResponse struct {
	ID   int     `json:"id"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Desc string  `json:"desc"`
}

type EdgeResponse struct {
	From       int     `json:"from"`
	To         int     `json:"to"`
	DistanceKm float64 `json:"distance_km"`
}

type WaypointResponse struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Role    string  `json:"role"`
}

type CostResponse struct {
	TimeMinutes     float64 `json:"time_minutes"`
	FuelLiters      float64 `json:"fuel_liters"`
	ElectricKWh     float64 `json:"electric_kwh"`
	EnergyCost      float64 `json:"energy_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	TotalCost       float64 `json:"total_cost"`
	EmissionsKg     float64 `json:"emissions_kg"`
}

type RouteReportResponse struct {
	TotalDistanceKm float64            `json:"total_distance_km"`
	TimeMinutes     float64            `json:"time_minutes"`
	Cost            CostResponse       `json:"cost"`
	Instructions    []string           `json:"instructions"`
	Nodes           []NodeResponse     `json:"nodes"`
	Edges           []EdgeResponse     `json:"edges"`
	Waypoints       []WaypointResponse `json:"waypoints"`
	Events          []EventResponse    `json:"events"`
	Summary         SummaryResponse    `json:"summary"`
	CostNote        string             `json:"cost_note,omitempty"`
}
