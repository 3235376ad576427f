package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gestorfamiliar/backend-go/internal/health"
)

func main() {
	lambda.Start(health.Handler)
}
