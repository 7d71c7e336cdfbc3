package utils

import (
	"log"
	"strings"
)

// LogEvent writes one line for a domain-level event. The request id ties the
// line back to the HTTP access log; keep the message short and free of
// customer data.
func LogEvent(requestID, module, action, message string) {
	module = strings.ToUpper(strings.TrimSpace(module))
	log.Printf("[%s] action=%s request_id=%s msg=%s",
		module, action, strings.TrimSpace(requestID), message)
}
