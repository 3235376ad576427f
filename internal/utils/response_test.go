package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAPIResponse(t *testing.T) {
	response, err := CreateAPIResponse(http.StatusOK, map[string]string{"client_secret": "sec_123"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "application/json", response.Headers["Content-Type"])
	assert.Equal(t, "*", response.Headers["Access-Control-Allow-Origin"])
	assert.JSONEq(t, `{"client_secret":"sec_123"}`, response.Body)
}

func TestCreateAPIResponseUnmarshalableBody(t *testing.T) {
	_, err := CreateAPIResponse(http.StatusOK, make(chan int))
	assert.Error(t, err)
}

func TestCreateTextResponse(t *testing.T) {
	response, err := CreateTextResponse(http.StatusMethodNotAllowed, "Method Not Allowed")
	require.NoError(t, err)

	assert.Equal(t, http.StatusMethodNotAllowed, response.StatusCode)
	assert.Equal(t, "text/plain", response.Headers["Content-Type"])
	assert.Equal(t, "Method Not Allowed", response.Body)
}

func TestErrorResponse(t *testing.T) {
	body := ErrorResponse("Missing 'user'")
	assert.Equal(t, "Missing 'user'", body.Error)
}
