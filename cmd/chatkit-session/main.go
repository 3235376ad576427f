package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gestorfamiliar/backend-go/internal/bridge"
)

func main() {
	handler := bridge.NewHandler()
	lambda.Start(handler.Handle)
}
