package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gestorfamiliar/backend-go/internal/openai"
	"github.com/gestorfamiliar/backend-go/internal/types"
	"github.com/gestorfamiliar/backend-go/internal/utils"
)

// Handler brokers ChatKit session creation: it validates the inbound
// request, forwards one session-creation call to the OpenAI platform
// with the server-held key, and returns the client secret to the
// caller. Every failure is converted to an HTTP response here; nothing
// propagates past the handler.
type Handler struct {
	client *openai.Client
}

// NewHandler returns a session bridge handler wired to the configured
// ChatKit endpoint.
func NewHandler() *Handler {
	return &Handler{client: openai.NewClient()}
}

// Handle processes POST /api/chatkit/session
func (h *Handler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestID := utils.NewRequestID()

	if request.HTTPMethod != http.MethodPost {
		return utils.CreateTextResponse(http.StatusMethodNotAllowed, "Method Not Allowed")
	}

	// An empty or missing body is treated as an empty object; only a
	// body that fails to parse reaches the error boundary
	var body types.SessionRequest
	if len(bytes.TrimSpace([]byte(request.Body))) > 0 {
		if err := json.Unmarshal([]byte(request.Body), &body); err != nil {
			return h.internalError(requestID, err)
		}
	}

	if !hasUser(body.User) {
		return utils.CreateAPIResponse(http.StatusBadRequest, utils.ErrorResponse("Missing 'user'"))
	}

	apiKey, err := utils.ResolveOpenAIAPIKey(ctx)
	if err != nil || apiKey == "" {
		if err != nil {
			log.Printf("API key resolution failed: %v", err)
		}
		return utils.CreateAPIResponse(http.StatusInternalServerError,
			utils.ErrorResponse("Missing OPENAI_API_KEY in Netlify env"))
	}

	// Single attempt, no retries
	result, err := h.client.CreateChatKitSession(ctx, apiKey, body.User)
	if err != nil {
		return h.internalError(requestID, err)
	}

	if !result.OK() {
		utils.LogUpstreamRejected(requestID, result.StatusCode, nil)
		return utils.CreateAPIResponse(result.StatusCode, types.ErrorResponse{Error: result.Body})
	}

	var session types.SessionResponse
	if err := json.Unmarshal(result.Body, &session); err != nil {
		return h.internalError(requestID, err)
	}

	if err := utils.PublishEvent(ctx, requestID, "ChatKitSessionCreated", map[string]interface{}{
		"user": json.RawMessage(body.User),
	}); err != nil {
		// Telemetry must never fail the request
		log.Printf("Failed to publish session event: %v", err)
	}

	utils.LogSessionIssued(requestID, nil)

	return utils.CreateAPIResponse(http.StatusOK, session)
}

// internalError converts an unexpected failure into a 500 with the
// stringified error, the handler's terminal error boundary
func (h *Handler) internalError(requestID string, err error) (events.APIGatewayProxyResponse, error) {
	utils.LogBridgeError(requestID, http.StatusInternalServerError, err, nil)
	return utils.CreateAPIResponse(http.StatusInternalServerError, utils.ErrorResponse(err.Error()))
}

// hasUser reports whether the request carries a usable user identifier.
// Absent, null, and other falsy literals are rejected; numeric zero is
// rejected in any JSON spelling (0, 0.0, -0, 0e0).
func hasUser(user json.RawMessage) bool {
	trimmed := bytes.TrimSpace(user)
	if len(trimmed) == 0 {
		return false
	}
	switch string(trimmed) {
	case "null", `""`, "false":
		return false
	}
	if n, err := strconv.ParseFloat(string(trimmed), 64); err == nil && n == 0 {
		return false
	}
	return true
}
