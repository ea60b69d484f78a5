package repositories

import (
	"context"

	"busbook/internal/db"
	"busbook/internal/domain/models"
)

// OccupancyRepository is the append-only booking log.
type OccupancyRepository struct {
	GW db.Gateway
}

func (r OccupancyRepository) gw() db.Gateway { return gateway(r.GW) }

func (r OccupancyRepository) Insert(ctx context.Context, busID int64, userName string) (int64, error) {
	return r.gw().Insert(ctx, db.TableOccupied, db.Row{"bus_id": busID, "user_name": userName})
}

func (r OccupancyRepository) Get(ctx context.Context, id int64) (models.Booking, error) {
	row, err := r.gw().SelectOne(ctx, db.TableOccupied, db.Query{Filters: db.Row{"id": id}})
	if err != nil {
		return models.Booking{}, err
	}
	b, _ := DecodeBooking(row)
	return b, nil
}
