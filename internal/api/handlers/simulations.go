package handlers

import (
	"delivery-route-engine/internal/api/dto"
	"delivery-route-engine/internal/domain"
	"delivery-route-engine/internal/services"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
)

// SimulationHandler replays vehicle movement along a route geometry.
type SimulationHandler struct{}

func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SimulationRequest

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

	geometry := make([]domain.Coordinates, 0, len(req.Geometry))
	for _, p := range req.Geometry {
		geometry = append(geometry, domain.Coordinates{Lat: p.Lat, Lon: p.Lng})
	}

	positions, err := services.SimulateMovement(geometry, req.SpeedKmh, req.StepMinutes)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidVehicleProfile) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("simulate movement failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.SimulationResponse{Positions: make([]dto.PositionResponse, 0, len(positions))}
	for _, p := range positions {
		res.Positions = append(res.Positions, dto.PositionResponse{
			Lat:            p.Position.Lat,
			Lng:            p.Position.Lon,
			ElapsedMinutes: p.ElapsedMinutes,
			DistanceKm:     p.DistanceKm,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
