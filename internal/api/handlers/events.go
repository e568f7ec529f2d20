package handlers

import (
	"delivery-route-engine/internal/api/dto"
	"delivery-route-engine/internal/ports"
	"delivery-route-engine/internal/services"
	"log"
	"net/http"
	"strconv"
	"strings"
)

type EventHandler struct {
	Provider ports.RouteProvider
	Traffic  ports.TrafficProvider
}

// Nearby lists normalized traffic events close to the route through the
// given locations. Uses the legacy alerting risk thresholds so severity 3
// incidents already count as high risk.
func (h *EventHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	locations := make([]string, 0, 4)
	for _, l := range r.URL.Query()["location"] {
		if t := strings.TrimSpace(l); t != "" {
			locations = append(locations, t)
		}
	}
	if len(locations) < 2 {
		writeError(w, r, http.StatusBadRequest, "at least 2 location parameters are required")
		return
	}

	radius := services.DefaultNearbyRadiusKm
	if raw := r.URL.Query().Get("radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			writeError(w, r, http.StatusBadRequest, "radius_km must be a positive number")
			return
		}
		radius = parsed
	}

	ctx := r.Context()

	data, err := h.Provider.GetRoute(ctx, locations)
	if err != nil {
		log.Printf("route provider failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "routing provider unavailable")
		return
	}
	if len(data.Maneuvers) == 0 {
		writeError(w, r, http.StatusUnprocessableEntity, "cannot compute route")
		return
	}

	incidents, err := h.Traffic.GetIncidents(ctx, data.BoundingBox)
	if err != nil {
		log.Printf("traffic provider failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "traffic provider unavailable")
		return
	}

	events := services.FilterByRadius(
		services.NormalizeIncidents(incidents, data.Geometry, services.LegacyAlertRiskPolicy),
		radius,
	)

	res := dto.NearbyEventsResponse{
		Events:  make([]dto.EventResponse, 0, len(events)),
		Summary: toSummaryResponse(services.SummarizeEvents(events)),
	}
	for _, ev := range events {
		res.Events = append(res.Events, toEventResponse(ev))
	}

	writeJSON(w, r, http.StatusOK, res)
}
