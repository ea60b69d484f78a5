package utils

import (
	"testing"
	"time"
)

func TestParseStopTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{"08:00", 8 * time.Hour, true},
		{"07:30:15", 7*time.Hour + 30*time.Minute + 15*time.Second, true},
		{"7:05", 7*time.Hour + 5*time.Minute, true},
		{"23:59:59", 23*time.Hour + 59*time.Minute + 59*time.Second, true},
		{"noon", 0, false},
		{"25:00", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseStopTime(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseStopTime(%q) = (%v,%v), want (%v,%v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
