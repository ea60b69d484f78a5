package models

import "time"

// RouteStop is a row of the routes table.
type RouteStop struct {
	RouteID  int64  `json:"route_id"`
	BusID    int64  `json:"bus_id"`
	StopName string `json:"stop_name"`
	StopTime string `json:"stop_time"`
}

// ScheduledStop is a stop with its parsed sort key.
// Unparseable stop times have Parsed == false and sort after parsed ones.
type ScheduledStop struct {
	RouteID  int64         `json:"route_id,omitempty"`
	StopName string        `json:"stop_name"`
	StopTime string        `json:"stop_time"`
	Parsed   bool          `json:"-"`
	SortKey  time.Duration `json:"-"`
}
