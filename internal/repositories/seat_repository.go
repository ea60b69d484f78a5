package repositories

import (
	"context"

	"busbook/internal/db"
	"busbook/internal/domain/models"
)

type SeatRepository struct {
	GW db.Gateway
}

func (r SeatRepository) gw() db.Gateway { return gateway(r.GW) }

func (r SeatRepository) ListRows(ctx context.Context) ([]db.Row, error) {
	return r.gw().Select(ctx, db.TableSeats, db.Query{})
}

func (r SeatRepository) List(ctx context.Context) ([]models.Seat, error) {
	rows, err := r.ListRows(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Seat, 0, len(rows))
	for _, row := range rows {
		if s, ok := DecodeSeat(row); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// Get returns the seat record of a bus or NotFoundError.
func (r SeatRepository) Get(ctx context.Context, busID int64) (models.Seat, error) {
	row, err := r.gw().SelectOne(ctx, db.TableSeats, db.Query{Filters: db.Row{"bus_id": busID}})
	if err != nil {
		return models.Seat{}, err
	}
	s, _ := DecodeSeat(row)
	return s, nil
}

// SetAvailable overwrites the available count and reports rows affected.
func (r SeatRepository) SetAvailable(ctx context.Context, busID int64, available int) (int64, error) {
	return r.gw().Update(ctx, db.TableSeats, db.Row{"available_seats": available}, db.Row{"bus_id": busID})
}

func (r SeatRepository) Create(ctx context.Context, busID int64, available int) error {
	_, err := r.gw().Insert(ctx, db.TableSeats, db.Row{"bus_id": busID, "available_seats": available})
	return err
}

func (r SeatRepository) Delete(ctx context.Context, busID int64) error {
	_, err := r.gw().Delete(ctx, db.TableSeats, db.Row{"bus_id": busID})
	return err
}
