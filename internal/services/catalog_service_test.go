package services

import (
	"context"
	"regexp"
	"testing"

	"busbook/internal/domain"
	"busbook/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newCatalog(t *testing.T) (CatalogService, sqlmock.Sqlmock) {
	gw, mock := newMockGateway(t)
	return CatalogService{
		Buses:   repositories.BusRepository{GW: gw},
		Seats:   repositories.SeatRepository{GW: gw},
		Routes:  repositories.RouteRepository{GW: gw},
		Intents: repositories.IntentRepository{GW: gw},
	}, mock
}

var (
	selectAllBuses   = regexp.QuoteMeta("SELECT * FROM `buses` ORDER BY `bus_id` ASC")
	selectAllSeats   = regexp.QuoteMeta("SELECT * FROM `seats` ORDER BY `bus_id` ASC")
	selectAllRoutes  = regexp.QuoteMeta("SELECT * FROM `routes` ORDER BY `route_id` ASC")
	selectAllIntents = regexp.QuoteMeta("SELECT * FROM `intent_to_travel` ORDER BY `id` ASC")
)

func TestCatalog_ListBusesFallsBackToTotalSeats(t *testing.T) {
	svc, mock := newCatalog(t)

	mock.ExpectQuery(selectAllBuses).WillReturnRows(busRows().
		AddRow(int64(1), "B-01", int64(10)).
		AddRow(int64(2), "B-02", int64(40)))
	mock.ExpectQuery(selectAllSeats).WillReturnRows(seatRows().AddRow(int64(1), int64(3)))
	mock.ExpectQuery(selectAllRoutes).WillReturnRows(routeRows().
		AddRow(int64(1), int64(1), "Gate A", "08:00:00").
		AddRow(int64(2), int64(1), "Gate B", "07:30:00"))

	list, err := svc.ListBuses(context.Background())
	if err != nil {
		t.Fatalf("ListBuses error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 buses, got %d", len(list))
	}
	if *list[0].AvailableSeats != 3 || list[0].RouteInfo != "Gate B → Gate A" {
		t.Fatalf("unexpected first listing %+v", list[0])
	}
	if *list[1].AvailableSeats != 40 || list[1].RouteInfo != RouteNotAvailable {
		t.Fatalf("unexpected second listing %+v", list[1])
	}
	expectationsMet(t, mock)
}

func TestCatalog_BookingOptionsSentinel(t *testing.T) {
	svc, mock := newCatalog(t)

	mock.ExpectQuery(selectAllBuses).WillReturnRows(busRows().AddRow(int64(1), "B-01", int64(10)))
	mock.ExpectQuery(selectAllRoutes).WillReturnRows(routeRows())

	opts, err := svc.BookingOptions(context.Background())
	if err != nil {
		t.Fatalf("BookingOptions error: %v", err)
	}
	if len(opts) != 1 || opts[0].RouteInfo != RouteNA || opts[0].AvailableSeats != nil {
		t.Fatalf("unexpected options %+v", opts)
	}
	expectationsMet(t, mock)
}

func TestCatalog_ScheduleUnknownBus(t *testing.T) {
	svc, mock := newCatalog(t)

	mock.ExpectQuery(selectBusByID).WithArgs(int64(4), 1).WillReturnRows(busRows())

	if _, err := svc.Schedule(context.Background(), 4); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestCatalog_Dashboard(t *testing.T) {
	svc, mock := newCatalog(t)

	mock.ExpectQuery(selectAllBuses).WillReturnRows(busRows().AddRow(int64(1), "B-01", int64(10)))
	mock.ExpectQuery(selectAllSeats).WillReturnRows(seatRows())
	mock.ExpectQuery(selectAllIntents).WillReturnRows(
		sqlmock.NewRows([]string{"id", "student_id", "bus_id", "seat_reserved"}).
			AddRow(int64(1), "S-9", int64(1), false))

	dash, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard error: %v", err)
	}
	if len(dash.Buses) != 1 || dash.Buses[0].AvailableSeats != 10 {
		t.Fatalf("dashboard should fall back to total seats, got %+v", dash.Buses)
	}
	if len(dash.Intents) != 1 || dash.Intents[0].StudentID != "S-9" {
		t.Fatalf("unexpected intents %+v", dash.Intents)
	}
	expectationsMet(t, mock)
}

func TestCatalog_EditViewWithoutSeatRecord(t *testing.T) {
	svc, mock := newCatalog(t)

	mock.ExpectQuery(selectBusByID).WithArgs(int64(1), 1).
		WillReturnRows(busRows().AddRow(int64(1), "B-01", int64(10)))
	mock.ExpectQuery(selectSeatByBus).WithArgs(int64(1), 1).WillReturnRows(seatRows())
	mock.ExpectQuery(selectBusRoutes).WithArgs(int64(1)).
		WillReturnRows(routeRows().AddRow(int64(3), int64(1), "Gate A", "08:00"))

	view, err := svc.EditView(context.Background(), 1)
	if err != nil {
		t.Fatalf("EditView error: %v", err)
	}
	if view.Seat != nil {
		t.Fatalf("expected nil seat, got %+v", view.Seat)
	}
	if len(view.Routes) != 1 || view.Routes[0].RouteID != 3 {
		t.Fatalf("unexpected routes %+v", view.Routes)
	}
	expectationsMet(t, mock)
}
