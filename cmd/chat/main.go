package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gestorfamiliar/backend-go/internal/chat"
)

func main() {
	handler := chat.NewHandler()
	lambda.Start(handler.Handle)
}
