package repositories

import (
	"context"

	"busbook/internal/db"
	"busbook/internal/domain/models"
)

type BusRepository struct {
	GW db.Gateway
}

func (r BusRepository) gw() db.Gateway { return gateway(r.GW) }

// ListRows returns raw bus rows ordered by bus_id.
func (r BusRepository) ListRows(ctx context.Context) ([]db.Row, error) {
	return r.gw().Select(ctx, db.TableBuses, db.Query{})
}

func (r BusRepository) List(ctx context.Context) ([]models.Bus, error) {
	rows, err := r.ListRows(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Bus, 0, len(rows))
	for _, row := range rows {
		if b, ok := DecodeBus(row); ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r BusRepository) Get(ctx context.Context, busID int64) (models.Bus, error) {
	row, err := r.gw().SelectOne(ctx, db.TableBuses, db.Query{Filters: db.Row{"bus_id": busID}})
	if err != nil {
		return models.Bus{}, err
	}
	b, _ := DecodeBus(row)
	return b, nil
}

func (r BusRepository) Create(ctx context.Context, busNumber string, totalSeats int) (int64, error) {
	return r.gw().Insert(ctx, db.TableBuses, db.Row{"bus_number": busNumber, "total_seats": totalSeats})
}

func (r BusRepository) Update(ctx context.Context, busID int64, busNumber string, totalSeats int) error {
	_, err := r.gw().Update(ctx, db.TableBuses,
		db.Row{"bus_number": busNumber, "total_seats": totalSeats},
		db.Row{"bus_id": busID})
	return err
}

func (r BusRepository) Delete(ctx context.Context, busID int64) error {
	_, err := r.gw().Delete(ctx, db.TableBuses, db.Row{"bus_id": busID})
	return err
}
