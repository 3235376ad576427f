package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gestorfamiliar/backend-go/internal/bridge"
	"github.com/gestorfamiliar/backend-go/internal/chat"
	"github.com/gestorfamiliar/backend-go/internal/health"
	"github.com/gestorfamiliar/backend-go/internal/utils"
	"github.com/joho/godotenv"
)

// lambdaHandler is the shared signature of the API Gateway handlers
type lambdaHandler func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// serve adapts a Lambda handler onto net/http for local development
func serve(handler lambdaHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusInternalServerError)
			return
		}
		r.Body.Close()

		headers := make(map[string]string)
		for name, values := range r.Header {
			if len(values) > 0 {
				headers[name] = values[0]
			}
		}

		event := events.APIGatewayProxyRequest{
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
			Headers:    headers,
			Body:       string(bodyBytes),
		}

		response, err := handler(r.Context(), event)
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		for name, value := range response.Headers {
			w.Header().Set(name, value)
		}
		w.WriteHeader(response.StatusCode)
		io.WriteString(w, response.Body)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	http.HandleFunc("/api/chatkit/session", serve(bridge.NewHandler().Handle))
	http.HandleFunc("/chat", serve(chat.NewHandler().Handle))
	http.HandleFunc("/health", serve(health.Handler))
	http.HandleFunc("/", serve(health.Handler))

	addr := fmt.Sprintf(":%d", utils.GetPort())
	log.Printf("Starting dev server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}
