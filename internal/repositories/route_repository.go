package repositories

import (
	"context"

	"busbook/internal/db"
	"busbook/internal/domain/models"
)

type RouteRepository struct {
	GW db.Gateway
}

func (r RouteRepository) gw() db.Gateway { return gateway(r.GW) }

func (r RouteRepository) ListRows(ctx context.Context) ([]db.Row, error) {
	return r.gw().Select(ctx, db.TableRoutes, db.Query{})
}

func (r RouteRepository) List(ctx context.Context) ([]models.RouteStop, error) {
	rows, err := r.ListRows(ctx)
	if err != nil {
		return nil, err
	}
	return decodeRoutes(rows), nil
}

// ListByBus returns the stops of one bus ordered by the stored stop_time.
func (r RouteRepository) ListByBus(ctx context.Context, busID int64) ([]models.RouteStop, error) {
	rows, err := r.gw().Select(ctx, db.TableRoutes, db.Query{
		Filters: db.Row{"bus_id": busID},
		Order:   "stop_time",
	})
	if err != nil {
		return nil, err
	}
	return decodeRoutes(rows), nil
}

func (r RouteRepository) Update(ctx context.Context, routeID int64, f models.RouteFields) error {
	_, err := r.gw().Update(ctx, db.TableRoutes,
		db.Row{"stop_name": f.StopName, "stop_time": f.StopTime},
		db.Row{"route_id": routeID})
	return err
}

func (r RouteRepository) Insert(ctx context.Context, busID int64, f models.RouteFields) (int64, error) {
	return r.gw().Insert(ctx, db.TableRoutes, db.Row{
		"bus_id":    busID,
		"stop_name": f.StopName,
		"stop_time": f.StopTime,
	})
}

func (r RouteRepository) Delete(ctx context.Context, routeID int64) error {
	_, err := r.gw().Delete(ctx, db.TableRoutes, db.Row{"route_id": routeID})
	return err
}

func (r RouteRepository) DeleteByBus(ctx context.Context, busID int64) error {
	_, err := r.gw().Delete(ctx, db.TableRoutes, db.Row{"bus_id": busID})
	return err
}

func decodeRoutes(rows []db.Row) []models.RouteStop {
	out := make([]models.RouteStop, 0, len(rows))
	for _, row := range rows {
		if rs, ok := DecodeRoute(row); ok {
			out = append(out, rs)
		}
	}
	return out
}
