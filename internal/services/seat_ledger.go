package services

import (
	"context"
	"fmt"

	"busbook/internal/domain"
	"busbook/internal/domain/models"
	"busbook/internal/locks"
	"busbook/internal/repositories"
	"busbook/internal/utils"
)

// SeatLedger tracks the remaining capacity of each bus.
//
// BookOne issues two independent writes (occupancy insert, seat update).
// Without a Guard two concurrent callers can both read available_seats = 1 and
// both book it. Guard serialises BookOne per bus; it does not protect against
// writers outside the ledger such as admin edits.
type SeatLedger struct {
	Buses     repositories.BusRepository
	Seats     repositories.SeatRepository
	Occupancy repositories.OccupancyRepository
	Guard     locks.Locker
}

func (l SeatLedger) guard() locks.Locker {
	if l.Guard != nil {
		return l.Guard
	}
	return locks.Noop{}
}

// GetAvailable returns the stored seat count, or the bus's total_seats when the
// bus has no seat record yet.
func (l SeatLedger) GetAvailable(ctx context.Context, busID int64) (int, error) {
	seat, err := l.Seats.Get(ctx, busID)
	if err == nil {
		return seat.AvailableSeats, nil
	}
	if !domain.IsNotFound(err) {
		return 0, err
	}
	bus, err := l.Buses.Get(ctx, busID)
	if err != nil {
		return 0, err
	}
	return bus.TotalSeats, nil
}

// BookOne records one booking for rider and decrements the bus seat count.
func (l SeatLedger) BookOne(ctx context.Context, busID int64, rider string) (models.Booking, error) {
	unlock, err := l.guard().Lock(ctx, locks.BusKey(busID))
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "booking lock unavailable", Err: err}
	}
	defer unlock()

	reqID := utils.RequestIDFrom(ctx)

	seat, err := l.Seats.Get(ctx, busID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Booking{}, domain.SeatUnavailableError{BusID: busID, Reason: "no seat record"}
		}
		return models.Booking{}, err
	}
	if seat.AvailableSeats <= 0 {
		utils.LogEvent(reqID, "ledger", "book_rejected", fmt.Sprintf("bus_id=%d available=%d", busID, seat.AvailableSeats))
		return models.Booking{}, domain.SeatUnavailableError{BusID: busID}
	}

	id, err := l.Occupancy.Insert(ctx, busID, rider)
	if err != nil {
		return models.Booking{}, err
	}

	if _, err := l.Seats.SetAvailable(ctx, busID, seat.AvailableSeats-1); err != nil {
		utils.LogEvent(reqID, "ledger", "book_partial", fmt.Sprintf("bus_id=%d booking_id=%d err=%v", busID, id, err))
		return models.Booking{ID: id, BusID: busID, UserName: rider}, domain.PartialWriteError{
			Op:     "book",
			Failed: []string{"seats:decrement"},
			Err:    err,
		}
	}

	utils.LogEvent(reqID, "ledger", "book", fmt.Sprintf("bus_id=%d booking_id=%d remaining=%d", busID, id, seat.AvailableSeats-1))
	return models.Booking{ID: id, BusID: busID, UserName: rider}, nil
}
