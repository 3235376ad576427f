package utils

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
)

// BridgeLogEntry represents a structured log entry for bridge events
type BridgeLogEntry struct {
	Timestamp string                 `json:"timestamp"`
	RequestID string                 `json:"request_id"`
	EventType string                 `json:"event_type"`
	Status    int                    `json:"status,omitempty"`
	Error     string                 `json:"error,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

var (
	// Enable structured logging via environment variable
	structuredLogging = os.Getenv("STRUCTURED_LOGGING") != "false" // Default to true
)

// NewRequestID creates a correlation id for one invocation
func NewRequestID() string {
	return "req_" + uuid.New().String()[:8]
}

// LogBridgeEvent logs a structured bridge event
func LogBridgeEvent(event BridgeLogEntry) {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	if structuredLogging {
		jsonBytes, err := json.Marshal(event)
		if err != nil {
			log.Printf("Error marshaling log entry: %v", err)
			return
		}
		log.Println(string(jsonBytes))
	} else {
		// Fallback to traditional logging
		if event.Error != "" {
			log.Printf("[%s] %s: %d (error: %s)", event.EventType, event.RequestID, event.Status, event.Error)
		} else {
			log.Printf("[%s] %s: %d", event.EventType, event.RequestID, event.Status)
		}
	}
}

// LogSessionIssued logs a successfully brokered ChatKit session
func LogSessionIssued(requestID string, metadata map[string]interface{}) {
	LogBridgeEvent(BridgeLogEntry{
		RequestID: requestID,
		EventType: "SESSION_ISSUED",
		Status:    200,
		Metadata:  metadata,
	})
}

// LogUpstreamRejected logs an upstream error passed through to the caller
func LogUpstreamRejected(requestID string, status int, metadata map[string]interface{}) {
	LogBridgeEvent(BridgeLogEntry{
		RequestID: requestID,
		EventType: "UPSTREAM_REJECTED",
		Status:    status,
		Metadata:  metadata,
	})
}

// LogBridgeError logs a failure recovered at the handler boundary
func LogBridgeError(requestID string, status int, err error, metadata map[string]interface{}) {
	LogBridgeEvent(BridgeLogEntry{
		RequestID: requestID,
		EventType: "BRIDGE_ERROR",
		Status:    status,
		Error:     err.Error(),
		Metadata:  metadata,
	})
}
