package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"busbook/internal/domain/models"
	"busbook/internal/repositories"
	"busbook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders a PDF ticket for one booking.
type TicketService struct {
	Occupancy repositories.OccupancyRepository
	Buses     repositories.BusRepository
	Routes    repositories.RouteRepository
	Loader    func(context.Context, int64) (ticketData, error)
}

type ticketData struct {
	Booking models.Booking
	Bus     models.Bus
	Stops   []models.ScheduledStop
	Issued  time.Time
}

func (s TicketService) GenerateTicket(ctx context.Context, bookingID int64) ([]byte, string, error) {
	data, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "ticket", "generate", fmt.Sprintf("booking_id=%d", bookingID))
	return buildTicketPDF(data)
}

func (s TicketService) load(ctx context.Context, bookingID int64) (ticketData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, bookingID)
	}
	b, err := s.Occupancy.Get(ctx, bookingID)
	if err != nil {
		return ticketData{}, err
	}
	bus, err := s.Buses.Get(ctx, b.BusID)
	if err != nil {
		return ticketData{}, err
	}
	routes, err := s.Routes.ListByBus(ctx, b.BusID)
	if err != nil {
		return ticketData{}, err
	}
	return ticketData{Booking: b, Bus: bus, Stops: OrderStops(routes), Issued: utils.NowUTC()}, nil
}

func buildTicketPDF(d ticketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Bus Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUS TICKET")
	pdf.Ln(12)

	nextStop, nextTime := "N/A", "N/A"
	if len(d.Stops) > 0 {
		nextStop, nextTime = d.Stops[0].StopName, d.Stops[0].StopTime
	}

	// Core fonts are cp1252; the arrow separator has no glyph there.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	route := RouteDisplay(d.Stops, RouteNotAvailable)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Rider      : %s", utils.Safe(d.Booking.UserName, "-")),
		fmt.Sprintf("Bus        : %s", d.Bus.Label()),
		fmt.Sprintf("First stop : %s (%s)", utils.Safe(nextStop, "-"), utils.Safe(nextTime, "-")),
		fmt.Sprintf("Booking    : #%d", d.Booking.ID),
		fmt.Sprintf("Issued     : %s", d.Issued.Format("2006-01-02 15:04")),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, tr(l))
		pdf.Ln(7)
	}
	pdf.Ln(3)
	pdf.MultiCell(0, 6, tr("Route: "+route), "", "", false)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This ticket is valid for one rider (one seat).", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("TICKET_%d_%s.pdf", d.Booking.ID, utils.SafeFilenamePart(d.Booking.UserName))
	return buf.Bytes(), filename, nil
}
