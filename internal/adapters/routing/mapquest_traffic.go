package routing

import (
	"context"
	"delivery-route-engine/internal/domain"
	"delivery-route-engine/internal/platform/obs"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

type wireIncident struct {
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
	Type             int      `json:"type"`
	Severity         int      `json:"severity"`
	ShortDesc        string   `json:"shortDesc"`
	FullDesc         string   `json:"fullDesc"`
	StartTime        string   `json:"startTime"`
	EndTime          string   `json:"endTime"`
	VehiclesImpacted int      `json:"vehiclesImpacted"`
}

type trafficResponse struct {
	Incidents []wireIncident `json:"incidents"`
}

// GetIncidents retrieves raw traffic incidents inside the bounding box.
// An empty list is a valid result; missing coordinates survive parsing as
// nil positions and are dropped later during normalization.
func (m *MapQuestProvider) GetIncidents(ctx context.Context, box domain.BoundingBox) (_ []domain.TrafficIncident, err error) {
	defer obs.Time(ctx, "mapquest.GetIncidents")(&err)

	if box.IsZero() {
		return []domain.TrafficIncident{}, nil
	}

	key := fmt.Sprintf("%v,%v,%v,%v",
		box.UpperLeft.Lat, box.UpperLeft.Lon, box.LowerRight.Lat, box.LowerRight.Lon)

	if m.cache != nil {
		if incidents, ok, cerr := m.cache.GetIncidents(ctx, key); cerr != nil {
			log.Printf("traffic cache read failed: %v", cerr)
		} else if ok {
			return incidents, nil
		}
	}

	endpoint := m.baseURL + "/traffic/v2/incidents"
	params := map[string]string{
		"boundingBox": key,
		"filters":     "construction,incidents,congestion",
	}

	resp, err := m.doWithRetry(ctx, func() (*http.Request, error) {
		return m.newRequest(ctx, http.MethodGet, endpoint, params, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("get incidents: %w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded trafficResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("get incidents: decode traffic response: %w", err)
	}

	incidents := make([]domain.TrafficIncident, 0, len(decoded.Incidents))
	for _, wi := range decoded.Incidents {
		inc := domain.TrafficIncident{
			Type:             wi.Type,
			Severity:         wi.Severity,
			Description:      wi.FullDesc,
			StartTime:        parseIncidentTime(wi.StartTime),
			EndTime:          parseIncidentTime(wi.EndTime),
			VehiclesImpacted: wi.VehiclesImpacted,
		}
		if inc.Description == "" {
			inc.Description = wi.ShortDesc
		}
		if wi.Lat != nil && wi.Lng != nil {
			inc.Position = &domain.Coordinates{Lat: *wi.Lat, Lon: *wi.Lng}
		}
		incidents = append(incidents, inc)
	}

	if m.cache != nil {
		if cerr := m.cache.PutIncidents(ctx, key, incidents); cerr != nil {
			log.Printf("traffic cache write failed: %v", cerr)
		}
	}

	return incidents, nil
}

// parseIncidentTime parses the provider's timestamp formats leniently;
// unparseable or empty values become nil rather than failing the batch.
func parseIncidentTime(s string) *time.Time {
	if s == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
