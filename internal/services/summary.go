package services

import (
	"busbook/internal/db"
	"busbook/internal/domain/models"
	"busbook/internal/repositories"
)

// lowSeatRatio is the available/total ratio below which a bus is "low".
const lowSeatRatio = 0.3

// BuildBusSummaries composes one card per bus, in the order of buses.
// Missing or malformed numbers become 0; seat counts never fall back to
// total_seats here. Rows without a usable bus_id are skipped.
func BuildBusSummaries(buses, seats, routes, intents []db.Row) []models.BusSummary {
	available := map[int64]int{}
	for _, row := range seats {
		s, ok := repositories.DecodeSeat(row)
		if !ok {
			continue
		}
		available[s.BusID] = s.AvailableSeats
	}

	stops := make([]models.RouteStop, 0, len(routes))
	for _, row := range routes {
		if rs, ok := repositories.DecodeRoute(row); ok {
			stops = append(stops, rs)
		}
	}
	byBus := GroupStops(stops)

	intentCount := map[int64]int{}
	for _, row := range intents {
		if busID, ok := repositories.RowID(row, "bus_id"); ok {
			intentCount[busID]++
		}
	}

	cards := make([]models.BusSummary, 0, len(buses))
	for _, row := range buses {
		bus, ok := repositories.DecodeBus(row)
		if !ok {
			continue
		}
		cards = append(cards, buildCard(bus, max(available[bus.BusID], 0), byBus[bus.BusID], intentCount[bus.BusID]))
	}
	return cards
}

func buildCard(bus models.Bus, available int, stops []models.ScheduledStop, intents int) models.BusSummary {
	card := models.BusSummary{
		BusID:          bus.BusID,
		BusLabel:       bus.Label(),
		RouteDisplay:   RouteDisplay(stops, NoRouteInfo),
		NextStop:       "N/A",
		NextTime:       "N/A",
		AvailableSeats: available,
		TotalSeats:     bus.TotalSeats,
		IntentCount:    intents,
	}
	if len(stops) > 0 {
		card.NextStop = stops[0].StopName
		card.NextTime = stops[0].StopTime
	}
	card.OccupancyPercent, card.StatusClass = seatStatus(available, bus.TotalSeats)
	return card
}

// seatStatus returns the percentage of seats still available and the status class.
func seatStatus(available, total int) (int, string) {
	percent := 0
	ratio := 0.0
	if total > 0 {
		ratio = float64(available) / float64(total)
		percent = int(ratio * 100)
	}
	switch {
	case total > 0 && available == total:
		return percent, models.StatusFull
	case ratio < lowSeatRatio:
		return percent, models.StatusLow
	default:
		return percent, models.StatusNormal
	}
}
