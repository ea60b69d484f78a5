package services

import (
	"testing"

	"busbook/internal/domain/models"
)

func stop(bus int64, name, at string) models.RouteStop {
	return models.RouteStop{BusID: bus, StopName: name, StopTime: at}
}

func TestGroupStops_EmptyInput(t *testing.T) {
	if got := GroupStops(nil); len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestGroupStops_OrdersByParsedTime(t *testing.T) {
	got := GroupStops([]models.RouteStop{
		stop(1, "Gate A", "08:00"),
		stop(2, "Depot", "06:00"),
		stop(1, "Gate B", "07:30"),
		stop(1, "Library", "07:45:30"),
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 buses, got %d", len(got))
	}
	if d := RouteDisplay(got[1], NoRouteInfo); d != "Gate B → Library → Gate A" {
		t.Fatalf("unexpected display %q", d)
	}
	if len(got[2]) != 1 || got[2][0].StopName != "Depot" {
		t.Fatalf("single stop bus should be a singleton, got %v", got[2])
	}
}

func TestGroupStops_UnparseableTimesSortLastInInputOrder(t *testing.T) {
	got := GroupStops([]models.RouteStop{
		stop(1, "Whenever", "tbd"),
		stop(1, "Noon", "12:00"),
		stop(1, "Later", "after lunch"),
		stop(1, "Dawn", "05:15"),
		stop(1, "Empty", ""),
	})[1]

	want := []string{"Dawn", "Noon", "Whenever", "Later", "Empty"}
	if len(got) != len(want) {
		t.Fatalf("expected %d stops, got %d", len(want), len(got))
	}
	seenUnparsed := false
	for i, s := range got {
		if s.StopName != want[i] {
			t.Fatalf("position %d: got %s want %s", i, s.StopName, want[i])
		}
		if !s.Parsed {
			seenUnparsed = true
		} else if seenUnparsed {
			t.Fatalf("parsed stop %s appears after an unparsed one", s.StopName)
		}
	}
}

func TestGroupStops_DuplicateTimesKeepInputOrder(t *testing.T) {
	in := []models.RouteStop{
		stop(1, "First", "09:00"),
		stop(1, "Early", "08:00"),
		stop(1, "Second", "09:00:00"),
		stop(1, "Third", "09:00"),
	}
	for i := 0; i < 3; i++ {
		got := RouteDisplay(GroupStops(in)[1], NoRouteInfo)
		if got != "Early → First → Second → Third" {
			t.Fatalf("run %d: unexpected order %q", i, got)
		}
	}
}

func TestGroupStops_StableAcrossPermutationsPreservingTies(t *testing.T) {
	a := []models.RouteStop{
		stop(1, "X", "10:00"),
		stop(1, "Y", "10:00"),
		stop(1, "Z", "07:00"),
		stop(1, "Q", "?"),
	}
	// Same content, different interleaving, ties X before Y and unparsed Q kept.
	b := []models.RouteStop{
		stop(1, "Z", "07:00"),
		stop(1, "X", "10:00"),
		stop(1, "Q", "?"),
		stop(1, "Y", "10:00"),
	}
	da := RouteDisplay(GroupStops(a)[1], NoRouteInfo)
	db := RouteDisplay(GroupStops(b)[1], NoRouteInfo)
	if da != db {
		t.Fatalf("expected identical output, got %q vs %q", da, db)
	}
}

func TestRouteDisplay_SentinelAndBlankNames(t *testing.T) {
	if got := RouteDisplay(nil, RouteNotAvailable); got != RouteNotAvailable {
		t.Fatalf("expected sentinel, got %q", got)
	}
	stops := OrderStops([]models.RouteStop{stop(1, "", "08:00"), stop(1, "Gate", "09:00")})
	if got := RouteDisplay(stops, RouteNA); got != "Gate" {
		t.Fatalf("blank names should be skipped, got %q", got)
	}
	if got := RouteDisplay(OrderStops([]models.RouteStop{stop(1, "", "08:00")}), RouteNA); got != RouteNA {
		t.Fatalf("all blank names should give sentinel, got %q", got)
	}
}
