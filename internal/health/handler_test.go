package health

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerRootPayload(t *testing.T) {
	response, err := Handler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.JSONEq(t, `{"status":"healthy","service":"Gestor Familiar API","version":"1.0.0"}`, response.Body)
}

func TestHandlerHealthPayload(t *testing.T) {
	response, err := Handler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/health",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.JSONEq(t, `{"status":"healthy"}`, response.Body)
}

func TestHandlerRejectsNonGet(t *testing.T) {
	response, err := Handler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/health",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, response.StatusCode)
	assert.Equal(t, "Method Not Allowed", response.Body)
	assert.Equal(t, "text/plain", response.Headers["Content-Type"])
}
