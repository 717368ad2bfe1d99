// Package llm provides a minimal client for a local OpenAI-compatible LLM
// server (LM Studio, Ollama, llama.cpp). pd only ever talks to a local
// endpoint; hosted providers are out of scope.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/promptdir/pd/internal/output"
)

// Request represents a completion request.
type Request struct {
	System      string  // System prompt
	Prompt      string  // User prompt
	Temperature float64 // Temperature (0 uses default)
	MaxTokens   int     // Max tokens (0 uses default)
}

// Response represents a completion response.
type Response struct {
	Content string // Generated content
	Model   string // Model used
}

// HTTPDoer defines the HTTP operations required by Client.
// This allows injection of test doubles for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to the local LLM server.
type Client struct {
	baseURL    string
	model      string
	httpClient HTTPDoer
}

// New creates a client for the given model against the local server.
// An empty model lets the server use whatever it has loaded.
func New(model string) *Client {
	return &Client{
		baseURL: ServerURL(),
		model:   model,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

// ServerURL returns the URL for the local LLM server.
// Defaults to http://localhost:11434/v1 (Ollama's OpenAI-compatible API).
func ServerURL() string {
	if url := os.Getenv("PD_LOCAL_URL"); url != "" {
		return url
	}
	return "http://localhost:11434/v1"
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete generates a completion for the given request.
func (c *Client) Complete(ctx context.Context, req Request) (*Response, error) {
	messages := []chatMessage{}
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	body := chatRequest{Model: c.model, Messages: messages}
	if req.MaxTokens > 0 {
		body.MaxTokens = req.MaxTokens
	}
	if req.Temperature > 0 {
		body.Temperature = req.Temperature
	}

	respBody, err := c.doRequest(ctx, c.baseURL+"/chat/completions", body)
	if err != nil {
		return nil, err
	}
	return parseResponse(respBody, c.model)
}

// doRequest performs an HTTP POST request with JSON body.
func (c *Client) doRequest(ctx context.Context, url string, body any) ([]byte, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, output.NewSystemErrorWithCause(
			fmt.Sprintf("cannot reach local LLM server at %s: is it running?", c.baseURL), err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, output.NewSystemError(
			fmt.Sprintf("local LLM server returned %d: %s", resp.StatusCode, string(respBody)))
	}
	return respBody, nil
}

func parseResponse(respBody []byte, model string) (*Response, error) {
	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to parse response", err)
	}

	if result.Error != nil {
		return nil, output.NewSystemError("API error: " + result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return nil, output.NewSystemError("empty response from API")
	}

	responseModel := result.Model
	if responseModel == "" {
		responseModel = model
	}
	if responseModel == "" {
		responseModel = "local"
	}
	return &Response{Content: result.Choices[0].Message.Content, Model: responseModel}, nil
}
