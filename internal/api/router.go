package api

import (
	"delivery-route-engine/internal/api/handlers"
	"delivery-route-engine/internal/ports"
	"delivery-route-engine/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	provider ports.RouteProvider,
	traffic ports.TrafficProvider,
	vehicles ports.VehicleRepository,
	composer *services.Aggregator,
) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Provider: provider,
		Traffic:  traffic,
		Composer: composer,
	}
	eventHandler := &handlers.EventHandler{
		Provider: provider,
		Traffic:  traffic,
	}
	vehicleHandler := &handlers.VehicleHandler{Repo: vehicles}
	simulationHandler := &handlers.SimulationHandler{}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routeHandler.Compose)
	mux.HandleFunc("/events/nearby", eventHandler.Nearby)
	mux.HandleFunc("/vehicles", vehicleHandler.Get)
	mux.HandleFunc("/simulations", simulationHandler.Simulate)

	return requestIDMiddleware(loggingMiddleware(mux))
}
