package health

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gestorfamiliar/backend-go/internal/types"
	"github.com/gestorfamiliar/backend-go/internal/utils"
)

// Handler processes GET / and GET /health
func Handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if request.HTTPMethod != http.MethodGet {
		return utils.CreateTextResponse(http.StatusMethodNotAllowed, "Method Not Allowed")
	}

	if request.Path == "/health" {
		return utils.CreateAPIResponse(http.StatusOK, types.HealthResponse{Status: "healthy"})
	}

	return utils.CreateAPIResponse(http.StatusOK, types.HealthResponse{
		Status:  "healthy",
		Service: "Gestor Familiar API",
		Version: "1.0.0",
	})
}
