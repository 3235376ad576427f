package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, upstream http.HandlerFunc) *Handler {
	t.Helper()

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	t.Setenv("RESPONSES_API_URL", server.URL)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_API_KEY_SECRET_ARN", "")

	return NewHandler()
}

func TestHandleRejectsNonPost(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called for non-POST requests")
	})

	response, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/chat",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, response.StatusCode)
}

func TestHandleMissingMessage(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called without a message")
	})

	response, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/chat",
		Body:       `{}`,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.JSONEq(t, `{"detail":"Missing 'message'"}`, response.Body)
}

func TestHandleChatSuccess(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Instructions string        `json:"instructions"`
			Input        []interface{} `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Contains(t, params.Instructions, "Quan és l'aniversari de l'àvia?")
		assert.Len(t, params.Input, 2) // one history item plus the new message

		w.Write([]byte(`{"output":[{"type":"message","content":[{"type":"output_text","text":"El 12 de maig."}]}]}`))
	})

	response, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/chat",
		Body:       `{"message":"Quan és l'aniversari de l'àvia?","conversation_history":[{"role":"user","content":"hola"}]}`,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.JSONEq(t, `{"response":"El 12 de maig.","status":"success"}`, response.Body)
}

func TestHandleChatUpstreamFailure(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom"}}`))
	})

	response, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/chat",
		Body:       `{"message":"hola"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)

	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal([]byte(response.Body), &body))
	assert.Contains(t, body.Detail, "Error al procesar la solicitud: ")
	assert.Contains(t, body.Detail, "boom")
}
