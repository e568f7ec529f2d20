package routing

import (
	"bytes"
	"context"
	"delivery-route-engine/internal/domain"
	"delivery-route-engine/internal/platform/obs"
	"delivery-route-engine/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// MapQuestProvider implements RouteProvider and TrafficProvider against
// the MapQuest Directions and Traffic v2 APIs.
//
// It coordinates:
//   - Location normalization
//   - Optional response caching (routes and incidents)
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type MapQuestProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	locale  string
	cache   ports.RouteCache
}

func NewMapQuestProvider(apiKey string, cache ports.RouteCache) (*MapQuestProvider, error) {
	if apiKey == "" {
		return nil, errors.New("mapquest api key is empty")
	}

	return &MapQuestProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://www.mapquestapi.com",
		locale:  "es_MX",
		cache:   cache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (m *MapQuestProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type directionsInfo struct {
	StatusCode int      `json:"statuscode"`
	Messages   []string `json:"messages"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type wireManeuver struct {
	Narrative  string  `json:"narrative"`
	Distance   float64 `json:"distance"`
	StartPoint latLng  `json:"startPoint"`
}

type directionsResponse struct {
	Info  directionsInfo `json:"info"`
	Route struct {
		Legs []struct {
			Maneuvers []wireManeuver `json:"maneuvers"`
		} `json:"legs"`
		Shape struct {
			ShapePoints []float64 `json:"shapePoints"`
		} `json:"shape"`
		BoundingBox struct {
			UL latLng `json:"ul"`
			LR latLng `json:"lr"`
		} `json:"boundingBox"`
		LocationSequence []int `json:"locationSequence"`
		Locations        []struct {
			Street     string `json:"street"`
			AdminArea5 string `json:"adminArea5"`
			LatLng     latLng `json:"latLng"`
		} `json:"locations"`
	} `json:"route"`
}

// GetRoute retrieves an optimized multi-stop route for the given locations.
//
// Two locations use the plain route endpoint; more than two use the
// optimizedroute endpoint so MapQuest reorders the intermediate stops.
// Provider-side routing failures (nonzero status code) come back as an
// empty maneuver list, not an error; transport failures wrap
// ErrProviderUnavailable.
func (m *MapQuestProvider) GetRoute(ctx context.Context, locations []string) (_ *ports.RouteData, err error) {
	defer obs.Time(ctx, "mapquest.GetRoute")(&err)

	norm := make([]string, 0, len(locations))
	for _, l := range locations {
		if nl := m.normalize(l); nl != "" {
			norm = append(norm, nl)
		}
	}
	if len(norm) < 2 {
		return nil, fmt.Errorf("get route: need at least 2 locations, got %d: %w", len(norm), domain.ErrInvalidInput)
	}

	key := strings.Join(norm, "|")
	if m.cache != nil {
		if data, ok, cerr := m.cache.GetRoute(ctx, key); cerr != nil {
			log.Printf("route cache read failed: %v", cerr)
		} else if ok {
			return data, nil
		}
	}

	decoded, err := m.fetchDirections(ctx, norm)
	if err != nil {
		return nil, fmt.Errorf("get route: %w: %v", domain.ErrProviderUnavailable, err)
	}

	if decoded.Info.StatusCode != 0 {
		log.Printf("mapquest route status=%d messages=%v", decoded.Info.StatusCode, decoded.Info.Messages)
		return &ports.RouteData{}, nil
	}

	data := m.toRouteData(norm, decoded)

	if m.cache != nil {
		if cerr := m.cache.PutRoute(ctx, key, data); cerr != nil {
			log.Printf("route cache write failed: %v", cerr)
		}
	}

	return data, nil
}

func (m *MapQuestProvider) fetchDirections(ctx context.Context, locations []string) (*directionsResponse, error) {
	params := map[string]string{
		"routeType":    "fastest",
		"fullShape":    "true",
		"drivingStyle": "normal",
		"unit":         "k",
		"locale":       m.locale,
	}

	var resp *http.Response
	var err error

	if len(locations) == 2 {
		endpoint := m.baseURL + "/directions/v2/route"
		params["from"] = locations[0]
		params["to"] = locations[1]

		resp, err = m.doWithRetry(ctx, func() (*http.Request, error) {
			return m.newRequest(ctx, http.MethodGet, endpoint, params, nil)
		})
	} else {
		// The optimizedroute endpoint reorders intermediate stops; the
		// first and last locations stay fixed.
		endpoint := m.baseURL + "/directions/v2/optimizedroute"
		payload, merr := json.Marshal(map[string][]string{"locations": locations})
		if merr != nil {
			return nil, fmt.Errorf("marshal optimizedroute request: %w", merr)
		}

		resp, err = m.doWithRetry(ctx, func() (*http.Request, error) {
			return m.newRequest(ctx, http.MethodPost, endpoint, params, bytes.NewReader(payload))
		})
	}
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	return &decoded, nil
}

// toRouteData converts the wire response to provider-agnostic route data.
func (m *MapQuestProvider) toRouteData(requested []string, decoded *directionsResponse) *ports.RouteData {
	data := &ports.RouteData{}

	for _, leg := range decoded.Route.Legs {
		for _, wm := range leg.Maneuvers {
			data.Maneuvers = append(data.Maneuvers, domain.Maneuver{
				Narrative:  wm.Narrative,
				Start:      domain.Coordinates{Lat: wm.StartPoint.Lat, Lon: wm.StartPoint.Lng},
				DistanceKm: wm.Distance,
			})
		}
	}

	// Shape points arrive as a flat lat,lng,lat,lng sequence.
	shape := decoded.Route.Shape.ShapePoints
	for i := 0; i+1 < len(shape); i += 2 {
		data.Geometry = append(data.Geometry, domain.Coordinates{Lat: shape[i], Lon: shape[i+1]})
	}

	data.BoundingBox = domain.BoundingBox{
		UpperLeft:  domain.Coordinates{Lat: decoded.Route.BoundingBox.UL.Lat, Lon: decoded.Route.BoundingBox.UL.Lng},
		LowerRight: domain.Coordinates{Lat: decoded.Route.BoundingBox.LR.Lat, Lon: decoded.Route.BoundingBox.LR.Lng},
	}

	// locationSequence holds visiting order as indexes into the geocoded
	// locations array, which is in request order.
	for _, idx := range decoded.Route.LocationSequence {
		if idx < 0 || idx >= len(decoded.Route.Locations) {
			continue
		}
		loc := decoded.Route.Locations[idx]

		address := strings.TrimSpace(strings.TrimSuffix(loc.Street+", "+loc.AdminArea5, ", "))
		if address == "" || address == "," {
			if idx < len(requested) {
				address = requested[idx]
			}
		}

		data.Stops = append(data.Stops, domain.Stop{
			Address:  address,
			Position: domain.Coordinates{Lat: loc.LatLng.Lat, Lon: loc.LatLng.Lng},
		})
	}

	return data
}
