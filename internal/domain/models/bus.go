package models

// Bus is a row of the buses table.
type Bus struct {
	BusID      int64  `json:"bus_id"`
	BusNumber  string `json:"bus_number"`
	BusName    string `json:"bus_name,omitempty"`
	TotalSeats int    `json:"total_seats"`
}

// Label returns bus_number, then bus_name, then "N/A".
func (b Bus) Label() string {
	switch {
	case b.BusNumber != "":
		return b.BusNumber
	case b.BusName != "":
		return b.BusName
	default:
		return "N/A"
	}
}

// Seat holds the remaining capacity of one bus. At most one per bus.
type Seat struct {
	BusID          int64 `json:"bus_id"`
	AvailableSeats int   `json:"available_seats"`
}

// Admin is a dashboard account.
type Admin struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Intent is a non-binding travel pre-registration.
type Intent struct {
	ID           int64  `json:"id,omitempty"`
	StudentID    string `json:"student_id"`
	BusID        int64  `json:"bus_id"`
	SeatReserved bool   `json:"seat_reserved"`
}

// Booking is one occupancy record: one seat booked by one rider.
type Booking struct {
	ID       int64  `json:"id"`
	BusID    int64  `json:"bus_id"`
	UserName string `json:"user_name"`
}
