package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"busbook/internal/domain"
	"busbook/internal/domain/models"
	"busbook/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGenerateTicket_Loader(t *testing.T) {
	svc := TicketService{
		Loader: func(ctx context.Context, id int64) (ticketData, error) {
			return ticketData{
				Booking: models.Booking{ID: id, BusID: 1, UserName: "Ana Lee"},
				Bus:     models.Bus{BusID: 1, BusNumber: "B-01"},
				Stops: []models.ScheduledStop{
					{RouteID: 1, StopName: "Gate B", StopTime: "07:30"},
					{RouteID: 2, StopName: "Gate A", StopTime: "08:00"},
				},
				Issued: time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC),
			}, nil
		},
	}

	pdf, name, err := svc.GenerateTicket(context.Background(), 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("expected PDF output")
	}
	if name != "TICKET_12_Ana_Lee.pdf" {
		t.Fatalf("unexpected filename %q", name)
	}
}

func TestGenerateTicket_UnknownBooking(t *testing.T) {
	gw, mock := newMockGateway(t)
	svc := TicketService{
		Occupancy: repositories.OccupancyRepository{GW: gw},
		Buses:     repositories.BusRepository{GW: gw},
		Routes:    repositories.RouteRepository{GW: gw},
	}
	mock.ExpectQuery(`SELECT \* FROM ` + "`occupancy`").
		WithArgs(int64(3), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "bus_id", "user_name"}))

	if _, _, err := svc.GenerateTicket(context.Background(), 3); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	expectationsMet(t, mock)
}
