package repositories

import (
	"context"

	"busbook/internal/db"
	"busbook/internal/domain/models"
)

type IntentRepository struct {
	GW db.Gateway
}

func (r IntentRepository) gw() db.Gateway { return gateway(r.GW) }

func (r IntentRepository) ListRows(ctx context.Context) ([]db.Row, error) {
	return r.gw().Select(ctx, db.TableIntents, db.Query{})
}

func (r IntentRepository) List(ctx context.Context) ([]models.Intent, error) {
	rows, err := r.ListRows(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Intent, 0, len(rows))
	for _, row := range rows {
		if it, ok := DecodeIntent(row); ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r IntentRepository) Insert(ctx context.Context, it models.Intent) (int64, error) {
	return r.gw().Insert(ctx, db.TableIntents, db.Row{
		"student_id":    it.StudentID,
		"bus_id":        it.BusID,
		"seat_reserved": it.SeatReserved,
	})
}
