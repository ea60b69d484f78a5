package utils

import (
	"log"
	"strings"
)

// LogEvent prints standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}

// LogCoercion records a numeric field that fell back to its default value.
func LogCoercion(module, field string, raw any, def int) {
	log.Printf("[%s] action=coerce field=%s raw=%q default=%d", strings.ToUpper(module), field, AsString(raw), def)
}
