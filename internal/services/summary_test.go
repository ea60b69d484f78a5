package services

import (
	"testing"

	"busbook/internal/db"
	"busbook/internal/domain/models"
)

func TestBuildBusSummaries_EndToEnd(t *testing.T) {
	buses := []db.Row{{"bus_id": int64(1), "total_seats": int64(10)}}
	seats := []db.Row{{"bus_id": int64(1), "available_seats": int64(1)}}
	routes := []db.Row{
		{"route_id": int64(1), "bus_id": int64(1), "stop_name": "Gate A", "stop_time": "08:00"},
		{"route_id": int64(2), "bus_id": int64(1), "stop_name": "Gate B", "stop_time": "07:30"},
	}

	cards := BuildBusSummaries(buses, seats, routes, nil)
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	c := cards[0]
	if c.RouteDisplay != "Gate B → Gate A" {
		t.Fatalf("route_display = %q", c.RouteDisplay)
	}
	if c.NextStop != "Gate B" || c.NextTime != "07:30" {
		t.Fatalf("next stop = %q at %q", c.NextStop, c.NextTime)
	}
	if c.AvailableSeats != 1 || c.OccupancyPercent != 10 || c.StatusClass != models.StatusLow {
		t.Fatalf("unexpected seat fields %+v", c)
	}
	if c.BusLabel != "N/A" {
		t.Fatalf("bus without number or name should be labelled N/A, got %q", c.BusLabel)
	}
}

func TestBuildBusSummaries_UnparseableTotalSeats(t *testing.T) {
	buses := []db.Row{{"bus_id": int64(3), "bus_number": "B3", "total_seats": "abc"}}
	seats := []db.Row{{"bus_id": int64(3), "available_seats": int64(4)}}

	cards := BuildBusSummaries(buses, seats, nil, nil)
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	if cards[0].TotalSeats != 0 || cards[0].OccupancyPercent != 0 {
		t.Fatalf("expected zero totals, got %+v", cards[0])
	}
	if cards[0].RouteDisplay != NoRouteInfo || cards[0].NextStop != "N/A" || cards[0].NextTime != "N/A" {
		t.Fatalf("expected route sentinels, got %+v", cards[0])
	}
}

func TestBuildBusSummaries_NoSeatRecordDefaultsToZero(t *testing.T) {
	buses := []db.Row{{"bus_id": int64(4), "bus_number": "B4", "total_seats": int64(40)}}
	cards := BuildBusSummaries(buses, nil, nil, nil)
	if cards[0].AvailableSeats != 0 {
		t.Fatalf("summary must not fall back to total_seats, got %d", cards[0].AvailableSeats)
	}
	if cards[0].StatusClass != models.StatusLow {
		t.Fatalf("expected low, got %s", cards[0].StatusClass)
	}
}

func TestBuildBusSummaries_Coercion(t *testing.T) {
	buses := []db.Row{
		{"bus_id": int64(1), "bus_name": "Campus Loop", "total_seats": "50"},
		{"bus_number": "orphan"},
		{"bus_id": "2", "bus_number": "B2", "total_seats": int64(20)},
	}
	seats := []db.Row{
		{"bus_id": int64(1), "available_seats": nil},
		{"bus_id": int64(2), "available_seats": int64(-5)},
	}
	cards := BuildBusSummaries(buses, seats, nil, nil)
	if len(cards) != 2 {
		t.Fatalf("row without bus_id should be skipped, got %d cards", len(cards))
	}
	if cards[0].BusLabel != "Campus Loop" || cards[0].TotalSeats != 50 || cards[0].AvailableSeats != 0 {
		t.Fatalf("unexpected first card %+v", cards[0])
	}
	if cards[1].AvailableSeats != 0 {
		t.Fatalf("negative counts should be clamped to 0, got %d", cards[1].AvailableSeats)
	}
}

func TestBuildBusSummaries_IntentCountAndOrder(t *testing.T) {
	buses := []db.Row{
		{"bus_id": int64(9), "bus_number": "Z"},
		{"bus_id": int64(2), "bus_number": "A"},
	}
	intents := []db.Row{
		{"bus_id": int64(2), "student_id": "s1"},
		{"bus_id": int64(2), "student_id": "s2"},
		{"bus_id": int64(9), "student_id": "s3"},
		{"student_id": "s4"},
	}
	cards := BuildBusSummaries(buses, nil, nil, intents)
	if cards[0].BusID != 9 || cards[1].BusID != 2 {
		t.Fatalf("cards must follow bus order, got %d,%d", cards[0].BusID, cards[1].BusID)
	}
	if cards[0].IntentCount != 1 || cards[1].IntentCount != 2 {
		t.Fatalf("unexpected intent counts %d,%d", cards[0].IntentCount, cards[1].IntentCount)
	}
}

func TestSeatStatus(t *testing.T) {
	cases := []struct {
		available, total int
		percent          int
		class            string
	}{
		{50, 50, 100, models.StatusFull},
		{5, 50, 10, models.StatusLow},
		{30, 50, 60, models.StatusNormal},
		{0, 0, 0, models.StatusLow},
		{15, 50, 30, models.StatusNormal},
	}
	for _, tc := range cases {
		p, c := seatStatus(tc.available, tc.total)
		if p != tc.percent || c != tc.class {
			t.Fatalf("seatStatus(%d,%d) = (%d,%s), want (%d,%s)", tc.available, tc.total, p, c, tc.percent, tc.class)
		}
	}
}
