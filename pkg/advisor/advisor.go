// Package advisor wraps the external Mistral chat-completions API used for
// the sustainability assistant. Calls are time-bounded and failures here
// are isolated to the advisor endpoint; they can never touch the
// calculation or persistence path.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

const systemPrompt = "You are a sustainability assistant. You help users with " +
	"questions about clean energy, carbon dioxide emissions, and sustainability. " +
	"Answer in a friendly, professional tone."

const defaultBaseURL = "https://api.mistral.ai"

// Message is one turn of the conversation history.
type Message struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// Config holds advisor client settings.
type Config struct {
	APIKey  string
	BaseURL string        // defaults to the Mistral API
	Timeout time.Duration // overall per-request cap, defaults to 30s
}

// Client calls the chat-completions API with bounded retries and a hard
// per-request timeout.
type Client struct {
	http    *retryablehttp.Client
	apiKey  string
	baseURL string
}

// NewClient creates a new advisor client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = nil

	return &Client{
		http:    rc,
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
	}
}

// Chat sends the user's message with the prior history and returns the
// assistant's reply.
func (c *Client) Chat(ctx context.Context, userInput string, history []Message) (string, error) {
	messages := make([]map[string]string, 0, len(history)+2)
	messages = append(messages, map[string]string{"role": "system", "content": systemPrompt})
	for _, m := range history {
		messages = append(messages, map[string]string{"role": m.Role, "content": m.Content})
	}
	messages = append(messages, map[string]string{"role": "user", "content": userInput})

	payload, err := json.Marshal(map[string]interface{}{
		"model":       "mistral-large-latest",
		"messages":    messages,
		"temperature": 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("advisor request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read advisor response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisor returned status %d", resp.StatusCode)
	}

	content := gjson.GetBytes(body, "choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("advisor response missing message content")
	}
	return content.String(), nil
}
