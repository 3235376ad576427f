package utils

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gestorfamiliar/backend-go/internal/types"
)

// CreateAPIResponse creates a JSON API Gateway proxy response
func CreateAPIResponse(statusCode int, body interface{}) (events.APIGatewayProxyResponse, error) {
	bodyJSON, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                 "application/json",
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
			"Access-Control-Allow-Headers": "Content-Type, Authorization",
		},
		Body: string(bodyJSON),
	}, nil
}

// CreateTextResponse creates a plain-text API Gateway proxy response
func CreateTextResponse(statusCode int, body string) (events.APIGatewayProxyResponse, error) {
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "text/plain",
			"Access-Control-Allow-Origin": "*",
		},
		Body: body,
	}, nil
}

// ErrorResponse creates an error response body
func ErrorResponse(message string) types.ErrorResponse {
	return types.ErrorResponse{Error: message}
}
