package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client is an abstraction over LLM providers.
type Client interface {
	// GenerateContent sends a system instruction and a user prompt and
	// returns the raw response text.
	GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// GenerateJSON is GenerateContent with markdown code-fence wrappers
	// stripped from the response, for callers expecting JSON.
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// Model returns the configured model name.
	Model() string
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client for the configured local endpoint.
func NewClient(config *Config) Client {
	if config == nil {
		config = DefaultConfig()
	}
	return NewOllamaClient(config)
}

// OllamaClient implements Client against the Ollama /api/chat endpoint.
// Each call is a single synchronous request: no retries, no streaming. The
// HTTP client carries no request timeout; cancellation comes from the caller's
// context only.
type OllamaClient struct {
	config     *Config
	httpClient *http.Client
}

// NewOllamaClient creates a client for a local Ollama server.
func NewOllamaClient(config *Config) *OllamaClient {
	return &OllamaClient{
		config:     config,
		httpClient: &http.Client{},
	}
}

// chatMessage mirrors one message in the Ollama chat request body.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest mirrors the Ollama /api/chat request body.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// chatResponse mirrors the relevant fields of the Ollama response.
type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Error string `json:"error,omitempty"`
}

// GenerateContent sends the prompts to the local model and returns raw text.
func (c *OllamaClient) GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: false,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	url := strings.TrimSuffix(c.config.BaseURL, "/") + "/api/chat"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat endpoint returned status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("chat endpoint error: %s", parsed.Error)
	}

	return parsed.Message.Content, nil
}

// GenerateJSON generates content and strips any markdown code-fence wrapper.
func (c *OllamaClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	text, err := c.GenerateContent(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// Model returns the configured model name.
func (c *OllamaClient) Model() string {
	return c.config.Model
}

// Close releases resources held by the client.
func (c *OllamaClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// truncate shortens s for inclusion in error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
