package handlers

import (
	"delivery-route-engine/internal/api/dto"
	"delivery-route-engine/internal/domain"
	"delivery-route-engine/internal/ports"
	"delivery-route-engine/internal/services"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
)

type RouteHandler struct {
	Provider ports.RouteProvider
	Traffic  ports.TrafficProvider
	Composer *services.Aggregator
}

// Compose orchestrates the provider calls and route composition for one
// delivery request. Routing failures are fatal to the request; traffic
// failures degrade to an empty incident list.
func (h *RouteHandler) Compose(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	locations := make([]string, 0, len(req.Locations)+1)
	for _, l := range req.Locations {
		if t := strings.TrimSpace(l); t != "" {
			locations = append(locations, t)
		}
	}
	if len(locations) < 2 {
		writeError(w, r, http.StatusBadRequest, "at least 2 locations are required")
		return
	}

	// Round trips end where they started.
	if req.ReturnToStart && locations[len(locations)-1] != locations[0] {
		locations = append(locations, locations[0])
	}

	ctx := r.Context()

	data, err := h.Provider.GetRoute(ctx, locations)
	if err != nil {
		log.Printf("route provider failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "routing provider unavailable")
		return
	}

	// Traffic enrichment is optional: a failed incidents call degrades to
	// an empty list rather than failing the route.
	var incidents []domain.TrafficIncident
	if h.Traffic != nil && !data.BoundingBox.IsZero() {
		incidents, err = h.Traffic.GetIncidents(ctx, data.BoundingBox)
		if err != nil {
			log.Printf("traffic provider failed (continuing without incidents): %v", err)
			incidents = nil
		}
	}

	fallback := make([]domain.Stop, 0, len(locations))
	for _, l := range locations {
		fallback = append(fallback, domain.Stop{Address: l})
	}

	report, err := h.Composer.Compose(ctx, services.ComposeRequest{
		Maneuvers:       data.Maneuvers,
		Geometry:        data.Geometry,
		Incidents:       incidents,
		ProviderStops:   data.Stops,
		RequestedStops:  fallback,
		OrderID:         req.OrderID,
		TrafficRadiusKm: req.TrafficRadiusKm,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoRoute) {
			writeError(w, r, http.StatusUnprocessableEntity, "cannot compute route")
			return
		}
		log.Printf("compose route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteReportResponse(report))
}

func toRouteReportResponse(report *domain.RouteReport) dto.RouteReportResponse {
	res := dto.RouteReportResponse{
		TotalDistanceKm: report.TotalDistanceKm,
		TimeMinutes:     report.TimeMinutes,
		Cost: dto.CostResponse{
			TimeMinutes:     report.Cost.TimeMinutes,
			FuelLiters:      report.Cost.FuelLiters,
			ElectricKWh:     report.Cost.ElectricKWh,
			EnergyCost:      report.Cost.EnergyCost,
			MaintenanceCost: report.Cost.MaintenanceCost,
			TotalCost:       report.Cost.TotalCost,
			EmissionsKg:     report.Cost.EmissionsKg,
		},
		Instructions: report.Instructions,
		Nodes:        make([]dto.NodeResponse, 0, len(report.Graph.Nodes)),
		Edges:        make([]dto.EdgeResponse, 0, len(report.Graph.Edges)),
		Waypoints:    make([]dto.WaypointResponse, 0, len(report.Waypoints)),
		Events:       make([]dto.EventResponse, 0, len(report.Events)),
		Summary:      toSummaryResponse(report.Summary),
		CostNote:     report.CostNote,
	}

	for _, n := range report.Graph.Nodes {
		res.Nodes = append(res.Nodes, dto.NodeResponse{
			ID: n.ID, Lat: n.Pos.Lat, Lng: n.Pos.Lon, Desc: n.Desc,
		})
	}
	for _, e := range report.Graph.Edges {
		res.Edges = append(res.Edges, dto.EdgeResponse{
			From: e.From, To: e.To, DistanceKm: e.DistanceKm,
		})
	}
	for _, wp := range report.Waypoints {
		res.Waypoints = append(res.Waypoints, dto.WaypointResponse{
			Address: wp.Address, Lat: wp.Position.Lat, Lng: wp.Position.Lon, Role: wp.Role,
		})
	}
	for _, ev := range report.Events {
		res.Events = append(res.Events, toEventResponse(ev))
	}

	return res
}

func toEventResponse(ev domain.TrafficEvent) dto.EventResponse {
	return dto.EventResponse{
		Category:          ev.Category.Tag,
		Label:             ev.Category.Label,
		Icon:              ev.Category.Icon,
		Color:             ev.Category.Color,
		Risk:              ev.Risk,
		Severity:          ev.Severity,
		Description:       ev.Description,
		TranslatedDesc:    ev.TranslatedDesc,
		Lat:               ev.Position.Lat,
		Lng:               ev.Position.Lon,
		StartTime:         ev.StartTime,
		EndTime:           ev.EndTime,
		VehiclesImpacted:  ev.VehiclesImpacted,
		DistanceToRouteKm: ev.DistanceToRouteKm,
	}
}

func toSummaryResponse(s domain.TrafficSummary) dto.SummaryResponse {
	return dto.SummaryResponse{
		EventCount:       s.EventCount,
		ByCategory:       s.ByCategory,
		AverageSeverity:  s.AverageSeverity,
		HighRiskCount:    s.HighRiskCount,
		VehiclesImpacted: s.VehiclesImpacted,
	}
}
