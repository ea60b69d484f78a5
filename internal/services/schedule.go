package services

import (
	"sort"
	"strings"

	"busbook/internal/domain/models"
	"busbook/internal/utils"
)

// Route display fallbacks chosen per view.
const (
	RouteNotAvailable = "Route not available"
	RouteNA           = "Route: N/A"
	NoRouteInfo       = "No route info"
)

const stopSeparator = " → "

// GroupStops groups stops by bus and orders each group by time of day.
// Stops whose time does not parse keep their relative order after all parsed
// stops; equal times keep input order.
func GroupStops(stops []models.RouteStop) map[int64][]models.ScheduledStop {
	out := map[int64][]models.ScheduledStop{}
	for _, s := range stops {
		out[s.BusID] = append(out[s.BusID], toScheduled(s))
	}
	for busID := range out {
		SortStops(out[busID])
	}
	return out
}

// OrderStops is GroupStops for the stops of a single bus.
func OrderStops(stops []models.RouteStop) []models.ScheduledStop {
	out := make([]models.ScheduledStop, 0, len(stops))
	for _, s := range stops {
		out = append(out, toScheduled(s))
	}
	SortStops(out)
	return out
}

// SortStops sorts in place: parsed keys ascending, unparsed last, stable.
func SortStops(stops []models.ScheduledStop) {
	sort.SliceStable(stops, func(i, j int) bool {
		a, b := stops[i], stops[j]
		switch {
		case a.Parsed && b.Parsed:
			return a.SortKey < b.SortKey
		case a.Parsed != b.Parsed:
			return a.Parsed
		default:
			return false
		}
	})
}

// RouteDisplay joins the non-empty stop names with " → ", or returns sentinel.
func RouteDisplay(stops []models.ScheduledStop, sentinel string) string {
	names := make([]string, 0, len(stops))
	for _, s := range stops {
		if s.StopName != "" {
			names = append(names, s.StopName)
		}
	}
	if len(names) == 0 {
		return sentinel
	}
	return strings.Join(names, stopSeparator)
}

func toScheduled(s models.RouteStop) models.ScheduledStop {
	key, ok := utils.ParseStopTime(s.StopTime)
	return models.ScheduledStop{
		RouteID:  s.RouteID,
		StopName: s.StopName,
		StopTime: s.StopTime,
		Parsed:   ok,
		SortKey:  key,
	}
}
