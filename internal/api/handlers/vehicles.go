package handlers

import (
	"delivery-route-engine/internal/api/dto"
	"delivery-route-engine/internal/domain"
	"delivery-route-engine/internal/ports"
	"errors"
	"log"
	"net/http"
	"strconv"
)

// VehicleHandler exposes read-only vehicle profile retrieval.
type VehicleHandler struct {
	Repo ports.VehicleRepository
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	v, err := h.Repo.GetVehicle(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "vehicle not found")
			return
		}
		log.Printf("get vehicle failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.VehicleResponse{
		VehicleID:            v.VehicleID,
		Name:                 v.Name,
		Powertrain:           v.Powertrain,
		FuelEconomyKmL:       v.FuelEconomyKmL,
		ElectricEconomyKmKWh: v.ElectricEconomyKmKWh,
		FuelPriceL:           v.FuelPriceL,
		ElectricityPriceKWh:  v.ElectricityPriceKWh,
		CO2KgPerLiter:        v.CO2KgPerLiter,
		CO2KgPerKWh:          v.CO2KgPerKWh,
		AvgSpeedKmh:          v.AvgSpeedKmh,
		MaintenanceCostKm:    v.MaintenanceCostKm,
	})
}
