package main

import (
	"database/sql"
	"delivery-route-engine/internal/adapters/cache"
	"delivery-route-engine/internal/adapters/repositories"
	"delivery-route-engine/internal/adapters/routing"
	"delivery-route-engine/internal/api"
	"delivery-route-engine/internal/config"
	"delivery-route-engine/internal/platform/db"
	"delivery-route-engine/internal/ports"
	"delivery-route-engine/internal/services"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, MapQuest) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/fleet.json")
	port := config.Get("PORT", "8080")

	mapquestKey := os.Getenv("MAPQUEST_API_KEY")
	if strings.TrimSpace(mapquestKey) == "" {
		log.Fatal("MAPQUEST_API_KEY is required")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	// Initialize schema and seed demo fleet data on startup for local runs.
	if err := initAndSeed(pg, seedPath); err != nil {
		log.Fatal(err)
	}

	// Redis is optional; without it the provider calls MapQuest on every request.
	routeCache := newRouteCache()

	provider, err := routing.NewMapQuestProvider(mapquestKey, routeCache)
	if err != nil {
		log.Fatal(err)
	}

	vehicles := repositories.NewPostgresVehicleRepository(pg)
	orders := repositories.NewPostgresOrderRepository(pg)
	composer := services.NewAggregator(vehicles, orders)

	router := api.NewRouter(provider, provider, vehicles, composer)

	// Timeouts are tuned for cold-cache route composition (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func newRouteCache() ports.RouteCache {
	addr := os.Getenv("REDIS_ADDR")
	if strings.TrimSpace(addr) == "" {
		log.Println("REDIS_ADDR not set (running without route cache)")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	routeTTL := parseTTL("ROUTE_CACHE_TTL", 6*time.Hour)
	incidentTTL := parseTTL("INCIDENT_CACHE_TTL", 5*time.Minute)

	return cache.NewRedisRouteCache(client, routeTTL, incidentTTL)
}

func parseTTL(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("invalid %s=%q (using %s)", key, raw, fallback)
		return fallback
	}
	return d
}

func initAndSeed(pg *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(pg); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(pg, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
