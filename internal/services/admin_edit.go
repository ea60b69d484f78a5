package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"busbook/internal/db"
	"busbook/internal/domain"
	"busbook/internal/domain/models"
	"busbook/internal/repositories"
	"busbook/internal/utils"
)

// AdminEditService applies admin edit batches to buses, seats and routes.
//
// By default every sub-operation is issued on its own and nothing is rolled
// back: a failure leaves earlier steps applied and is reported as
// PartialWriteError. With Transactional set (and a *sql.DB behind GW) the
// batch runs in one transaction and stops at the first failure.
type AdminEditService struct {
	Buses  repositories.BusRepository
	Seats  repositories.SeatRepository
	Routes repositories.RouteRepository

	GW            db.Gateway
	Transactional bool
}

type editOp struct {
	op, target string
	skip       string
	run        func(context.Context) error
}

// ApplyEdit runs every edit in the batch and returns the per-step outcome.
func (s AdminEditService) ApplyEdit(ctx context.Context, busID int64, edit models.BusEdit) (models.EditResult, error) {
	if !s.Transactional || s.GW.Conn == nil {
		return s.apply(ctx, busID, edit, false)
	}

	var result models.EditResult
	err := s.GW.WithTx(ctx, func(tx db.Gateway) error {
		var err error
		result, err = s.bind(tx).apply(ctx, busID, edit, true)
		return err
	})
	if err != nil && domain.IsPartialWrite(err) {
		return result, domain.InternalError{Msg: "edit rolled back", Err: err}
	}
	return result, err
}

func (s AdminEditService) bind(g db.Gateway) AdminEditService {
	return AdminEditService{
		Buses:  repositories.BusRepository{GW: g},
		Seats:  repositories.SeatRepository{GW: g},
		Routes: repositories.RouteRepository{GW: g},
	}
}

func (s AdminEditService) apply(ctx context.Context, busID int64, edit models.BusEdit, stopOnFailure bool) (models.EditResult, error) {
	result := models.EditResult{BusID: busID}

	if _, err := s.Buses.Get(ctx, busID); err != nil {
		return result, err
	}
	_, seatErr := s.Seats.Get(ctx, busID)
	if seatErr != nil && !domain.IsNotFound(seatErr) {
		return result, seatErr
	}
	hasSeat := seatErr == nil

	existing, err := s.Routes.ListByBus(ctx, busID)
	if err != nil {
		return result, err
	}

	ops := s.plan(busID, edit, hasSeat, existing)
	for _, op := range ops {
		if op.skip != "" {
			result.Skipped(op.op, op.target, op.skip)
			continue
		}
		if err := op.run(ctx); err != nil {
			result.Failed(op.op, op.target, err)
			if stopOnFailure {
				break
			}
			continue
		}
		result.Applied(op.op, op.target)
	}

	utils.LogEvent(utils.RequestIDFrom(ctx), "admin", "edit_bus", fmt.Sprintf("bus_id=%d applied=%d skipped=%d failed=%d",
		busID, result.Count(models.StepApplied), result.Count(models.StepSkipped), result.Count(models.StepFailed)))

	if failed := result.FailedTargets(); len(failed) > 0 {
		return result, domain.PartialWriteError{Op: "edit bus", Failed: failed}
	}
	return result, nil
}

// plan lists the sub-operations in issue order: bus, seat, route updates,
// route inserts, route deletes.
func (s AdminEditService) plan(busID int64, edit models.BusEdit, hasSeat bool, existing []models.RouteStop) []editOp {
	busTarget := fmt.Sprintf("bus_id=%d", busID)
	ops := []editOp{{
		op: "update_bus", target: busTarget,
		run: func(ctx context.Context) error {
			return s.Buses.Update(ctx, busID, edit.BusNumber, edit.TotalSeats)
		},
	}}

	if hasSeat {
		ops = append(ops, editOp{
			op: "update_seats", target: busTarget,
			run: func(ctx context.Context) error {
				_, err := s.Seats.SetAvailable(ctx, busID, edit.AvailableSeats)
				return err
			},
		})
	} else {
		ops = append(ops, editOp{
			op: "create_seats", target: busTarget,
			run: func(ctx context.Context) error {
				return s.Seats.Create(ctx, busID, edit.AvailableSeats)
			},
		})
	}

	owned := make(map[int64]bool, len(existing))
	for _, r := range existing {
		owned[r.RouteID] = true
		routeID := r.RouteID
		target := fmt.Sprintf("route_id=%d", routeID)
		fields, ok := edit.RouteUpdates[routeID]
		op := editOp{op: "update_route", target: target}
		switch {
		case !ok:
			op.skip = "no update submitted"
		case fields.StopName == "" || fields.StopTime == "":
			op.skip = "stop_name and stop_time are both required"
		default:
			op.run = func(ctx context.Context) error {
				return s.Routes.Update(ctx, routeID, fields)
			}
		}
		ops = append(ops, op)
	}

	foreign := make([]int64, 0)
	for id := range edit.RouteUpdates {
		if !owned[id] {
			foreign = append(foreign, id)
		}
	}
	sort.Slice(foreign, func(i, j int) bool { return foreign[i] < foreign[j] })
	for _, id := range foreign {
		ops = append(ops, editOp{
			op: "update_route", target: fmt.Sprintf("route_id=%d", id),
			skip: "route does not belong to this bus",
		})
	}

	for i, stop := range edit.NewStops {
		op := editOp{op: "insert_route", target: fmt.Sprintf("new_stop[%d]", i)}
		if strings.TrimSpace(stop.StopName) == "" || strings.TrimSpace(stop.StopTime) == "" {
			op.skip = "blank stop name or time"
		} else {
			op.run = func(ctx context.Context) error {
				_, err := s.Routes.Insert(ctx, busID, stop)
				return err
			}
		}
		ops = append(ops, op)
	}

	for _, id := range edit.DeleteRouteIDs {
		routeID := id
		ops = append(ops, editOp{
			op: "delete_route", target: fmt.Sprintf("route_id=%d", routeID),
			run: func(ctx context.Context) error {
				return s.Routes.Delete(ctx, routeID)
			},
		})
	}
	return ops
}

// CreateBus adds a bus and its seat record with every seat available.
func (s AdminEditService) CreateBus(ctx context.Context, busNumber string, totalSeats int) (models.Bus, error) {
	busNumber = strings.TrimSpace(busNumber)
	if busNumber == "" {
		return models.Bus{}, domain.ValidationError{Field: "bus_number", Msg: "required"}
	}
	if totalSeats < 0 {
		return models.Bus{}, domain.ValidationError{Field: "total_seats", Msg: "must not be negative"}
	}
	id, err := s.Buses.Create(ctx, busNumber, totalSeats)
	if err != nil {
		return models.Bus{}, err
	}
	bus := models.Bus{BusID: id, BusNumber: busNumber, TotalSeats: totalSeats}
	if err := s.Seats.Create(ctx, id, totalSeats); err != nil {
		return bus, domain.PartialWriteError{Op: "create bus", Failed: []string{"create_seats"}, Err: err}
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "admin", "create_bus", fmt.Sprintf("bus_id=%d total_seats=%d", id, totalSeats))
	return bus, nil
}

// DeleteBus removes a bus with its routes and seat record.
func (s AdminEditService) DeleteBus(ctx context.Context, busID int64) (models.EditResult, error) {
	result := models.EditResult{BusID: busID}
	if _, err := s.Buses.Get(ctx, busID); err != nil {
		return result, err
	}
	target := fmt.Sprintf("bus_id=%d", busID)
	steps := []struct {
		op  string
		run func(context.Context, int64) error
	}{
		{"delete_routes", s.Routes.DeleteByBus},
		{"delete_seats", s.Seats.Delete},
		{"delete_bus", s.Buses.Delete},
	}
	for _, st := range steps {
		if err := st.run(ctx, busID); err != nil {
			result.Failed(st.op, target, err)
			continue
		}
		result.Applied(st.op, target)
	}
	if failed := result.FailedTargets(); len(failed) > 0 {
		return result, domain.PartialWriteError{Op: "delete bus", Failed: failed}
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "admin", "delete_bus", target)
	return result, nil
}
