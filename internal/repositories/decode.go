package repositories

import (
	"busbook/internal/db"
	"busbook/internal/domain/models"
	"busbook/internal/utils"
)

// rowInt reads an integer column, substituting def and logging when the value
// is missing or not an integer.
func rowInt(table string, r db.Row, col string, def int) int {
	raw, present := r[col]
	n, ok := utils.ParseIntOrDefault(raw, def)
	if !ok && present && raw != nil {
		utils.LogCoercion(table, col, raw, def)
	}
	return n
}

// RowID reads an identifier column. ok is false when it is missing or malformed.
func RowID(r db.Row, col string) (int64, bool) {
	return utils.ParseInt64OrDefault(r[col], 0)
}

// DecodeBus maps a buses row. total_seats falls back to 0.
func DecodeBus(r db.Row) (models.Bus, bool) {
	id, ok := RowID(r, "bus_id")
	if !ok {
		return models.Bus{}, false
	}
	return models.Bus{
		BusID:      id,
		BusNumber:  utils.AsString(r["bus_number"]),
		BusName:    utils.AsString(r["bus_name"]),
		TotalSeats: rowInt(db.TableBuses, r, "total_seats", 0),
	}, true
}

// DecodeSeat maps a seats row. available_seats falls back to 0.
func DecodeSeat(r db.Row) (models.Seat, bool) {
	id, ok := RowID(r, "bus_id")
	if !ok {
		return models.Seat{}, false
	}
	return models.Seat{
		BusID:          id,
		AvailableSeats: rowInt(db.TableSeats, r, "available_seats", 0),
	}, true
}

// DecodeRoute maps a routes row. Rows without bus_id are rejected.
func DecodeRoute(r db.Row) (models.RouteStop, bool) {
	busID, ok := RowID(r, "bus_id")
	if !ok {
		return models.RouteStop{}, false
	}
	routeID, _ := RowID(r, "route_id")
	return models.RouteStop{
		RouteID:  routeID,
		BusID:    busID,
		StopName: utils.AsString(r["stop_name"]),
		StopTime: utils.AsString(r["stop_time"]),
	}, true
}

func DecodeIntent(r db.Row) (models.Intent, bool) {
	busID, ok := RowID(r, "bus_id")
	if !ok {
		return models.Intent{}, false
	}
	id, _ := RowID(r, "id")
	return models.Intent{
		ID:           id,
		StudentID:    utils.AsString(r["student_id"]),
		BusID:        busID,
		SeatReserved: utils.AsBool(r["seat_reserved"]),
	}, true
}

func DecodeBooking(r db.Row) (models.Booking, bool) {
	id, ok := RowID(r, "id")
	if !ok {
		return models.Booking{}, false
	}
	busID, _ := RowID(r, "bus_id")
	return models.Booking{
		ID:       id,
		BusID:    busID,
		UserName: utils.AsString(r["user_name"]),
	}, true
}

func DecodeAdmin(r db.Row) models.Admin {
	id, _ := RowID(r, "id")
	return models.Admin{
		ID:           id,
		Username:     utils.AsString(r["username"]),
		PasswordHash: utils.AsString(r["password"]),
	}
}
