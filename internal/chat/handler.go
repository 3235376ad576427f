package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gestorfamiliar/backend-go/internal/openai"
	"github.com/gestorfamiliar/backend-go/internal/types"
	"github.com/gestorfamiliar/backend-go/internal/utils"
)

const instructionsTemplate = `Ets un agent que dona suport i informació respecte la informació familiar com ara, aniversaris, llocs de naixement, parelles etcétera.

A la pregunta:
 %s

Vas a buscar la informació a la tool Arbre Familiar. En la respuesta no des la referencia de donde has obtenido la información.
També pots buscar informació a la web i crear imatges.
A la resposta no indiquis la referència origen.
Respon sempre en català i intenta ser breu.`

// Handler proxies chat messages to the family-manager agent over the
// Responses API.
type Handler struct {
	client *openai.Client
}

// NewHandler returns a chat proxy handler wired to the configured
// Responses endpoint.
func NewHandler() *Handler {
	return &Handler{client: openai.NewClient()}
}

// Handle processes POST /chat
func (h *Handler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if request.HTTPMethod != http.MethodPost {
		return utils.CreateTextResponse(http.StatusMethodNotAllowed, "Method Not Allowed")
	}

	var body types.ChatRequest
	if request.Body != "" {
		if err := json.Unmarshal([]byte(request.Body), &body); err != nil {
			return h.processingError(err)
		}
	}

	if body.Message == "" {
		return utils.CreateAPIResponse(http.StatusBadRequest, types.ChatError{Detail: "Missing 'message'"})
	}

	apiKey, err := utils.ResolveOpenAIAPIKey(ctx)
	if err != nil || apiKey == "" {
		if err == nil {
			err = fmt.Errorf("missing OpenAI API key")
		}
		return h.processingError(err)
	}

	input := append([]interface{}{}, body.ConversationHistory...)
	input = append(input, map[string]interface{}{
		"role": "user",
		"content": []interface{}{
			map[string]interface{}{
				"type": "input_text",
				"text": body.Message,
			},
		},
	})

	instructions := fmt.Sprintf(instructionsTemplate, body.Message)

	text, err := h.client.CreateResponse(ctx, apiKey, instructions, input)
	if err != nil {
		return h.processingError(err)
	}

	return utils.CreateAPIResponse(http.StatusOK, types.ChatResponse{
		Response: text,
		Status:   "success",
	})
}

func (h *Handler) processingError(err error) (events.APIGatewayProxyResponse, error) {
	log.Printf("Error al procesar la solicitud: %v", err)
	return utils.CreateAPIResponse(http.StatusInternalServerError, types.ChatError{
		Detail: fmt.Sprintf("Error al procesar la solicitud: %v", err),
	})
}
