package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseIntOrDefault coerces a loosely typed value (driver value, JSON number,
// form string) to int. It returns def and false when v is nil or not an integer.
func ParseIntOrDefault(v any, def int) (int, bool) {
	switch n := v.(type) {
	case nil:
		return def, false
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return def, false
		}
		return int(n), true
	case float32:
		return truncFloat(float64(n), def)
	case float64:
		return truncFloat(n, def)
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case []byte:
		return parseIntString(string(n), def)
	case string:
		return parseIntString(n, def)
	default:
		return def, false
	}
}

// ParseInt64OrDefault is ParseIntOrDefault for identifiers.
func ParseInt64OrDefault(v any, def int64) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case []byte:
		if out, err := strconv.ParseInt(strings.TrimSpace(string(n)), 10, 64); err == nil {
			return out, true
		}
		return def, false
	case string:
		if out, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return out, true
		}
		return def, false
	}
	out, ok := ParseIntOrDefault(v, 0)
	if !ok {
		return def, false
	}
	return int64(out), true
}

func truncFloat(f float64, def int) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt || f < math.MinInt {
		return def, false
	}
	return int(f), true
}

func parseIntString(s string, def int) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def, false
	}
	return n, true
}

// AsString renders a driver value as text. nil becomes "".
func AsString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprint(s)
	}
}

// AsBool accepts bool, 0/1 integers and "true"/"false" strings.
func AsBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case []byte:
		return parseBoolString(string(b))
	case string:
		return parseBoolString(b)
	}
	n, ok := ParseIntOrDefault(v, 0)
	return ok && n != 0
}

func parseBoolString(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}
