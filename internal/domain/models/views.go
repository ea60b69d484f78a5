package models

// Status classes for summary cards.
const (
	StatusFull   = "full"
	StatusLow    = "low"
	StatusNormal = "normal"
)

// BusListing is one entry of the public bus list and the booking options.
type BusListing struct {
	Bus
	AvailableSeats *int   `json:"available_seats,omitempty"`
	RouteInfo      string `json:"route_info"`
}

// BusSummary is one summary card.
type BusSummary struct {
	BusID            int64  `json:"bus_id"`
	BusLabel         string `json:"bus_label"`
	RouteDisplay     string `json:"route_display"`
	NextStop         string `json:"next_stop"`
	NextTime         string `json:"next_time"`
	AvailableSeats   int    `json:"available_seats"`
	TotalSeats       int    `json:"total_seats"`
	IntentCount      int    `json:"intent_count"`
	OccupancyPercent int    `json:"occupancy_percent"`
	StatusClass      string `json:"status_class"`
}

// Schedule is the ordered stop list of one bus.
type Schedule struct {
	Bus          Bus             `json:"bus"`
	Stops        []ScheduledStop `json:"stops"`
	RouteDisplay string          `json:"route_display"`
}

// DashboardBus merges a bus with its seat count.
type DashboardBus struct {
	BusID          int64  `json:"bus_id"`
	BusNumber      string `json:"bus_number"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
}

type Dashboard struct {
	Buses   []DashboardBus `json:"buses"`
	Intents []Intent       `json:"intents"`
}

// EditView is what the admin edit form is prefilled with.
type EditView struct {
	Bus    Bus         `json:"bus"`
	Seat   *Seat       `json:"seat"`
	Routes []RouteStop `json:"routes"`
}
