package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gestorfamiliar/backend-go/internal/utils"
)

const (
	// WorkflowID identifies the predefined conversation flow on the
	// OpenAI platform. Pinned to the Agent Builder workflow this
	// backend fronts.
	WorkflowID = "wf_69678af259b88190b90406b5dee162630cb508e02a638d96"

	// VectorStoreID is the family-tree document store queried by the
	// chat agent's file search tool.
	VectorStoreID = "vs_6963e0d893648191981088fde3bb184f"

	// ChatKitBetaHeader is required by the ChatKit API version in use
	ChatKitBetaHeader = "chatkit_beta=v1"

	chatModel = "gpt-4o"
)

// Client calls the OpenAI platform endpoints. Endpoints are resolved
// from the environment at construction so tests can point them at a
// stub server; the API key is supplied per call because it is resolved
// per invocation.
type Client struct {
	sessionsURL  string
	responsesURL string
	httpClient   *http.Client
}

// NewClient returns a client for the configured endpoints. No client
// timeout is set: the Lambda context deadline is the only limit.
func NewClient() *Client {
	return &Client{
		sessionsURL:  utils.GetChatKitSessionsURL(),
		responsesURL: utils.GetResponsesURL(),
		httpClient:   &http.Client{},
	}
}

// SessionParams is the outbound ChatKit session-creation body
type SessionParams struct {
	User                 json.RawMessage      `json:"user"`
	Workflow             Workflow             `json:"workflow"`
	ChatKitConfiguration ChatKitConfiguration `json:"chatkit_configuration"`
}

type Workflow struct {
	ID string `json:"id"`
}

type ChatKitConfiguration struct {
	FileUpload FileUpload `json:"file_upload"`
}

type FileUpload struct {
	Enabled bool `json:"enabled"`
}

// UpstreamResult is a parsed upstream response: status code plus the
// JSON body verbatim
type UpstreamResult struct {
	StatusCode int
	Body       json.RawMessage
}

// OK reports whether the upstream call succeeded
func (r *UpstreamResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// CreateChatKitSession issues one session-creation request. Transport
// failures and non-JSON upstream bodies return an error; upstream HTTP
// errors are returned as a result for the caller to pass through.
func (c *Client) CreateChatKitSession(ctx context.Context, apiKey string, user json.RawMessage) (*UpstreamResult, error) {
	params := SessionParams{
		User:     user,
		Workflow: Workflow{ID: WorkflowID},
		ChatKitConfiguration: ChatKitConfiguration{
			FileUpload: FileUpload{Enabled: true},
		},
	}

	result, err := c.post(ctx, c.sessionsURL, apiKey, params, map[string]string{
		"OpenAI-Beta": ChatKitBetaHeader,
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Responses API types, trimmed to the fields the chat proxy uses

type ResponseParams struct {
	Model        string                 `json:"model"`
	Instructions string                 `json:"instructions"`
	Input        []interface{}          `json:"input"`
	Tools        []interface{}          `json:"tools,omitempty"`
	Store        bool                   `json:"store"`
	Reasoning    *Reasoning             `json:"reasoning,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

type Reasoning struct {
	Effort  string `json:"effort"`
	Summary string `json:"summary"`
}

type responseOutput struct {
	Output []struct {
		Type    string `json:"type"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateResponse runs the family-manager agent over the Responses API
// and returns the assistant's text output.
func (c *Client) CreateResponse(ctx context.Context, apiKey, instructions string, input []interface{}) (string, error) {
	params := ResponseParams{
		Model:        chatModel,
		Instructions: instructions,
		Input:        input,
		Tools: []interface{}{
			map[string]interface{}{
				"type":             "file_search",
				"vector_store_ids": []string{VectorStoreID},
			},
			map[string]interface{}{
				"type":                "web_search",
				"search_context_size": "medium",
				"user_location": map[string]interface{}{
					"country": "ES",
					"type":    "approximate",
				},
			},
			map[string]interface{}{
				"type":           "image_generation",
				"background":     "auto",
				"model":          "gpt-image-1",
				"moderation":     "auto",
				"output_format":  "png",
				"partial_images": 3,
				"quality":        "auto",
				"size":           "auto",
			},
		},
		Store: true,
		Reasoning: &Reasoning{
			Effort:  "medium",
			Summary: "auto",
		},
		Metadata: map[string]interface{}{
			"workflow_id": WorkflowID,
		},
	}

	result, err := c.post(ctx, c.responsesURL, apiKey, params, nil)
	if err != nil {
		return "", err
	}

	var parsed responseOutput
	if err := json.Unmarshal(result.Body, &parsed); err != nil {
		return "", fmt.Errorf("error parsing response output: %v", err)
	}

	if !result.OK() {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("responses API returned %d: %s", result.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("responses API returned %d", result.StatusCode)
	}

	var text string
	for _, item := range parsed.Output {
		if item.Type != "message" {
			continue
		}
		for _, content := range item.Content {
			if content.Type == "output_text" {
				text += content.Text
			}
		}
	}

	if text == "" {
		return "", fmt.Errorf("no output text in response")
	}

	return text, nil
}

func (c *Client) post(ctx context.Context, url, apiKey string, body interface{}, extraHeaders map[string]string) (*UpstreamResult, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request body: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")
	for name, value := range extraHeaders {
		req.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling %s: %v", url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if !json.Valid(respBody) {
		return nil, fmt.Errorf("invalid JSON in upstream response (status %d)", resp.StatusCode)
	}

	return &UpstreamResult{
		StatusCode: resp.StatusCode,
		Body:       json.RawMessage(respBody),
	}, nil
}
