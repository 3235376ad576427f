package utils

import (
	"os"
	"strconv"
)

// GetEnv gets an environment variable with a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an environment variable as an integer with a default value
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// GetEnvBool gets an environment variable as a boolean with a default value
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// Common environment variable getters for the backend

// GetChatKitSessionsURL gets the ChatKit session-issuance endpoint
func GetChatKitSessionsURL() string {
	return GetEnv("CHATKIT_API_URL", "https://api.openai.com/v1/chatkit/sessions")
}

// GetResponsesURL gets the Responses API endpoint used by the chat proxy
func GetResponsesURL() string {
	return GetEnv("RESPONSES_API_URL", "https://api.openai.com/v1/responses")
}

// GetEventBusName gets the EventBridge bus for session telemetry (optional)
func GetEventBusName() string {
	return GetEnv("EVENT_BUS_NAME", "")
}

// GetEnvironment gets the deployment environment (dev, staging, prod)
func GetEnvironment() string {
	return GetEnv("ENVIRONMENT", "dev")
}

// GetPort gets the local dev server port
func GetPort() int {
	return GetEnvInt("PORT", 8000)
}
