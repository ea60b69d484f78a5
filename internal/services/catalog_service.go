package services

import (
	"context"

	"busbook/internal/domain"
	"busbook/internal/domain/models"
	"busbook/internal/repositories"
)

// CatalogService assembles the read-only views: bus list, booking options,
// schedules, summary cards and the admin dashboard.
type CatalogService struct {
	Buses   repositories.BusRepository
	Seats   repositories.SeatRepository
	Routes  repositories.RouteRepository
	Intents repositories.IntentRepository
}

// ListBuses returns every bus with its seat count (total_seats when no seat
// record exists) and its route string.
func (s CatalogService) ListBuses(ctx context.Context) ([]models.BusListing, error) {
	buses, err := s.Buses.List(ctx)
	if err != nil {
		return nil, err
	}
	seats, err := s.Seats.List(ctx)
	if err != nil {
		return nil, err
	}
	routes, err := s.Routes.List(ctx)
	if err != nil {
		return nil, err
	}

	available := seatLookup(seats)
	byBus := GroupStops(routes)

	out := make([]models.BusListing, 0, len(buses))
	for _, b := range buses {
		n, ok := available[b.BusID]
		if !ok {
			n = b.TotalSeats
		}
		out = append(out, models.BusListing{
			Bus:            b,
			AvailableSeats: &n,
			RouteInfo:      RouteDisplay(byBus[b.BusID], RouteNotAvailable),
		})
	}
	return out, nil
}

// BookingOptions lists the buses a rider can pick from, with their routes.
func (s CatalogService) BookingOptions(ctx context.Context) ([]models.BusListing, error) {
	buses, err := s.Buses.List(ctx)
	if err != nil {
		return nil, err
	}
	routes, err := s.Routes.List(ctx)
	if err != nil {
		return nil, err
	}
	byBus := GroupStops(routes)

	out := make([]models.BusListing, 0, len(buses))
	for _, b := range buses {
		out = append(out, models.BusListing{
			Bus:       b,
			RouteInfo: RouteDisplay(byBus[b.BusID], RouteNA),
		})
	}
	return out, nil
}

func (s CatalogService) Schedule(ctx context.Context, busID int64) (models.Schedule, error) {
	bus, err := s.Buses.Get(ctx, busID)
	if err != nil {
		return models.Schedule{}, err
	}
	routes, err := s.Routes.ListByBus(ctx, busID)
	if err != nil {
		return models.Schedule{}, err
	}
	stops := OrderStops(routes)
	return models.Schedule{
		Bus:          bus,
		Stops:        stops,
		RouteDisplay: RouteDisplay(stops, RouteNotAvailable),
	}, nil
}

// Summary reads all four tables and builds the summary cards.
func (s CatalogService) Summary(ctx context.Context) ([]models.BusSummary, error) {
	buses, err := s.Buses.ListRows(ctx)
	if err != nil {
		return nil, err
	}
	seats, err := s.Seats.ListRows(ctx)
	if err != nil {
		return nil, err
	}
	routes, err := s.Routes.ListRows(ctx)
	if err != nil {
		return nil, err
	}
	intents, err := s.Intents.ListRows(ctx)
	if err != nil {
		return nil, err
	}
	return BuildBusSummaries(buses, seats, routes, intents), nil
}

// Dashboard merges buses with seats and lists every travel intent.
func (s CatalogService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	buses, err := s.Buses.List(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}
	seats, err := s.Seats.List(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}
	intents, err := s.Intents.List(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}

	available := seatLookup(seats)
	out := models.Dashboard{
		Buses:   make([]models.DashboardBus, 0, len(buses)),
		Intents: intents,
	}
	for _, b := range buses {
		n, ok := available[b.BusID]
		if !ok {
			n = b.TotalSeats
		}
		out.Buses = append(out.Buses, models.DashboardBus{
			BusID:          b.BusID,
			BusNumber:      b.BusNumber,
			TotalSeats:     b.TotalSeats,
			AvailableSeats: n,
		})
	}
	return out, nil
}

// EditView loads a bus with its seat record (nil when absent) and routes.
func (s CatalogService) EditView(ctx context.Context, busID int64) (models.EditView, error) {
	bus, err := s.Buses.Get(ctx, busID)
	if err != nil {
		return models.EditView{}, err
	}
	view := models.EditView{Bus: bus}
	seat, err := s.Seats.Get(ctx, busID)
	switch {
	case err == nil:
		view.Seat = &seat
	case !domain.IsNotFound(err):
		return models.EditView{}, err
	}
	routes, err := s.Routes.ListByBus(ctx, busID)
	if err != nil {
		return models.EditView{}, err
	}
	view.Routes = routes
	return view, nil
}

// seatLookup maps bus_id to available seats. Buses have at most one seat
// record; should duplicates exist the first one wins.
func seatLookup(seats []models.Seat) map[int64]int {
	out := make(map[int64]int, len(seats))
	for _, s := range seats {
		if _, ok := out[s.BusID]; !ok {
			out[s.BusID] = s.AvailableSeats
		}
	}
	return out
}
