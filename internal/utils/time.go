package utils

import (
	"strings"
	"time"
)

var stopTimeLayouts = []string{"15:04:05", "15:04"}

// ParseStopTime parses "HH:MM:SS" then "HH:MM" and returns the offset from midnight.
func ParseStopTime(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, layout := range stopTimeLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second, true
	}
	return 0, false
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}
