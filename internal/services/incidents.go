package services

import (
	"delivery-route-engine/internal/domain"
	"delivery-route-engine/internal/geo"
	"strings"
)

// Geometry sampling trade-off for distance-to-route: routes with at least
// geometrySampleCutoff shape points are sampled at geometrySampleStride to
// bound the number of haversine evaluations. The result is an approximate
// nearest distance, not an exact point-to-segment projection.
const (
	geometrySampleCutoff = 1000
	geometrySampleStride = 5
)

// Relevance radii in kilometers. Both are defaults for a caller-supplied
// parameter, not hard limits.
const (
	DefaultDetailRadiusKm = 5.0
	DefaultNearbyRadiusKm = 10.0
)

// Risk level names assigned to normalized events.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// RiskPolicy maps an incident severity (1-5) to a risk level. Severity at
// or above HighAt is high, at or above MediumAt is medium, else low.
type RiskPolicy struct {
	HighAt   int
	MediumAt int
}

var (
	// DefaultRiskPolicy: 4-5 high, 3 medium, 1-2 low.
	DefaultRiskPolicy = RiskPolicy{HighAt: 4, MediumAt: 3}

	// LegacyAlertRiskPolicy reproduces the alerting endpoint that flagged
	// severity 3 and above as high.
	LegacyAlertRiskPolicy = RiskPolicy{HighAt: 3, MediumAt: 2}
)

// Level returns the risk level for a severity under this policy.
func (p RiskPolicy) Level(severity int) string {
	switch {
	case severity >= p.HighAt:
		return RiskHigh
	case severity >= p.MediumAt:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Static incident category table, indexed by the provider's type code.
// Display hints (icon names, marker colors) are fixed; the rendering layer
// interprets them. Unknown codes fall back to otherCategory.
var incidentCategories = map[int]domain.IncidentCategory{
	1:  {Tag: "construction", Label: "Construction", Icon: "wrench", Color: "orange"},
	2:  {Tag: "event", Label: "Mass event", Icon: "calendar", Color: "purple"},
	3:  {Tag: "hazard", Label: "Hazard", Icon: "exclamation-triangle", Color: "red"},
	4:  {Tag: "congestion", Label: "Congestion", Icon: "car", Color: "red"},
	5:  {Tag: "accident", Label: "Accident", Icon: "car-crash", Color: "red"},
	6:  {Tag: "transit", Label: "Transit disruption", Icon: "bus", Color: "blue"},
	7:  {Tag: "misc", Label: "Miscellaneous", Icon: "info-circle", Color: "gray"},
	8:  {Tag: "news", Label: "Traffic news", Icon: "newspaper", Color: "gray"},
	9:  {Tag: "planned", Label: "Planned works", Icon: "calendar-check", Color: "orange"},
	10: {Tag: "closure", Label: "Road closed", Icon: "ban", Color: "darkred"},
	11: {Tag: "weather", Label: "Weather", Icon: "cloud-rain", Color: "blue"},
}

var otherCategory = domain.IncidentCategory{
	Tag: "other", Label: "Other", Icon: "exclamation-triangle", Color: "red",
}

// CategoryForType resolves a provider type code to its category descriptor.
func CategoryForType(code int) domain.IncidentCategory {
	if c, ok := incidentCategories[code]; ok {
		return c
	}
	return otherCategory
}

// Ordered English -> Spanish replacements for provider incident text.
// Order matters: longer phrases are replaced before their substrings.
var descriptionReplacements = []struct{ en, es string }{
	{"Road construction", "Construcción"},
	{"Construction work", "Mantenimiento"},
	{"Lane closed", "Carril cerrado"},
	{"Road closed", "Calle cerrada"},
	{"Accident", "Accidente"},
	{"Congestion", "Congestión"},
	{"Heavy traffic", "Tráfico pesado"},
	{"Slow traffic", "Tráfico lento"},
	{"Hazard", "Peligro"},
	{"Obstruction", "Obstrucción"},
	{"At ", "En "},
	{"Between ", "Entre "},
	{" near ", " cerca de "},
	{"approaching", "acercándose a"},
}

// TranslateDescription localizes provider incident text for display.
func TranslateDescription(text string) string {
	if text == "" {
		return "Sin detalles"
	}

	out := text
	for _, r := range descriptionReplacements {
		out = strings.ReplaceAll(out, r.en, r.es)
		out = strings.ReplaceAll(out, strings.ToLower(r.en), r.es)
	}
	return out
}

// NormalizeIncidents converts raw incidents into normalized traffic events.
//
// Incidents without a coordinate are skipped, never fatal to the batch, so
// the output is at most as long as the input. DistanceToRouteKm is nil when
// geometry is empty.
func NormalizeIncidents(
	incidents []domain.TrafficIncident,
	geometry []domain.Coordinates,
	policy RiskPolicy,
) []domain.TrafficEvent {
	events := make([]domain.TrafficEvent, 0, len(incidents))

	for _, inc := range incidents {
		if inc.Position == nil || !inc.Position.Valid() {
			continue
		}

		events = append(events, domain.TrafficEvent{
			Category:          CategoryForType(inc.Type),
			Risk:              policy.Level(inc.Severity),
			Severity:          inc.Severity,
			Description:       inc.Description,
			TranslatedDesc:    TranslateDescription(inc.Description),
			Position:          *inc.Position,
			StartTime:         inc.StartTime,
			EndTime:           inc.EndTime,
			VehiclesImpacted:  inc.VehiclesImpacted,
			DistanceToRouteKm: distanceToRoute(*inc.Position, geometry),
		})
	}

	return events
}

// distanceToRoute returns the minimum haversine distance from pos to the
// sampled route geometry, or nil when no geometry is available.
func distanceToRoute(pos domain.Coordinates, geometry []domain.Coordinates) *float64 {
	if len(geometry) == 0 {
		return nil
	}

	stride := 1
	if len(geometry) >= geometrySampleCutoff {
		stride = geometrySampleStride
	}

	min := -1.0
	for i := 0; i < len(geometry); i += stride {
		d := geo.Distance(pos, geometry[i])
		if min < 0 || d < min {
			min = d
		}
	}

	if min < 0 {
		return nil
	}
	return &min
}

// FilterByRadius keeps events whose distance to the route is known and
// within radiusKm.
func FilterByRadius(events []domain.TrafficEvent, radiusKm float64) []domain.TrafficEvent {
	out := make([]domain.TrafficEvent, 0, len(events))
	for _, e := range events {
		if e.DistanceToRouteKm != nil && *e.DistanceToRouteKm <= radiusKm {
			out = append(out, e)
		}
	}
	return out
}

// SummarizeEvents computes the aggregate statistics block of a route report.
func SummarizeEvents(events []domain.TrafficEvent) domain.TrafficSummary {
	summary := domain.TrafficSummary{
		EventCount: len(events),
		ByCategory: make(map[string]int, len(events)),
	}

	totalSeverity := 0
	for _, e := range events {
		summary.ByCategory[e.Category.Tag]++
		totalSeverity += e.Severity
		if e.Risk == RiskHigh {
			summary.HighRiskCount++
		}
		summary.VehiclesImpacted += e.VehiclesImpacted
	}

	if len(events) > 0 {
		summary.AverageSeverity = float64(totalSeverity) / float64(len(events))
	}

	return summary
}
