// Package groq is a minimal client for the Groq chat-completions API. The
// API is OpenAI-compatible; only the single non-streaming call the planner
// needs is implemented.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// ErrNoAPIKey is returned by New when no credential is configured.
var ErrNoAPIKey = errors.New("missing Groq API key: set GROQ_API_KEY in the environment")

// Message is a chat message in the OpenAI-compatible wire format.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client communicates with the Groq API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a Client with the given API key.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		// No request timeout: a completion blocks until the service answers.
		httpClient: &http.Client{Timeout: 0},
	}, nil
}

// NewWithBaseURL creates a Client pointing at a custom base URL (for testing
// or a compatible gateway).
func NewWithBaseURL(apiKey, baseURL string) (*Client, error) {
	c, err := New(apiKey)
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
	return c, nil
}

// chatRequest is the JSON body for POST /chat/completions.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// chatResponse is the subset of the completion response the planner reads.
type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends one completion request and returns the content of the
// first choice. When jsonOnly is set, the request carries the structural
// response_format constraint so the service returns a single JSON object
// rather than prose.
func (c *Client) ChatCompletion(ctx context.Context, model string, messages []Message, jsonOnly bool) (string, error) {
	cr := chatRequest{Model: model, Messages: messages}
	if jsonOnly {
		cr.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	body, err := json.Marshal(cr)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}
