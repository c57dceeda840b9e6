package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/artem13815/ai-service/pkg/config"
	"github.com/artem13815/ai-service/pkg/llm"
)

const (
	// Low temperature keeps replies conservative and repeatable.
	temperature = 0.2

	maxResponseBytes = 1 << 20
	maxErrorBody     = 512
)

// Client is a minimal OpenAI-compatible chat completions client.
// One call makes exactly one HTTP attempt; there are no retries here.
type Client struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	httpDo  *http.Client
}

var _ llm.ChatModel = (*Client)(nil)

func New(s config.Settings) *Client {
	return NewWithHTTPClient(s, &http.Client{})
}

// NewWithHTTPClient lets callers supply the transport. The per-call budget is
// still enforced through the request context.
func NewWithHTTPClient(s config.Settings, hc *http.Client) *Client {
	baseURL := strings.TrimRight(s.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	return &Client{
		APIKey:  s.APIKey,
		BaseURL: baseURL,
		Model:   s.Model,
		Timeout: s.Timeout(),
		httpDo:  hc,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// Complete sends the prompt as a single user message and returns the reply.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", &llm.ConfigurationError{Reason: "OPENAI_API_KEY not configured"}
	}
	data, err := json.Marshal(chatCompletionsRequest{
		Model:       c.Model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", &llm.ConfigurationError{Reason: "invalid OPENAI_BASE_URL", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", &llm.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &llm.UpstreamError{StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &llm.UpstreamError{StatusCode: resp.StatusCode, Body: truncate(strings.TrimSpace(string(body)), maxErrorBody)}
	}
	return ExtractReply(body)
}

type chatChoice struct {
	Message *struct {
		Content json.RawMessage `json:"content"`
	} `json:"message"`
}

type chatCompletionsResponse struct {
	Choices []chatChoice `json:"choices"`
}

// ExtractReply pulls choices[0].message.content out of a chat completions
// payload. Every missing or mistyped step is a *llm.ResponseShapeError.
func ExtractReply(body []byte) (string, error) {
	var out chatCompletionsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &llm.ResponseShapeError{Reason: "unexpected response structure", Err: err}
	}
	if len(out.Choices) == 0 {
		return "", &llm.ResponseShapeError{Reason: "no choices returned by model"}
	}
	msg := out.Choices[0].Message
	if msg == nil || len(msg.Content) == 0 {
		return "", &llm.ResponseShapeError{Reason: "choice has no message content"}
	}
	var content *string
	if err := json.Unmarshal(msg.Content, &content); err != nil {
		return "", &llm.ResponseShapeError{Reason: "message content is not a string", Err: err}
	}
	if content == nil {
		return "", &llm.ResponseShapeError{Reason: "message content is null"}
	}
	reply := strings.TrimSpace(*content)
	if reply == "" {
		return "", &llm.ResponseShapeError{Reason: "message content is empty"}
	}
	return reply, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
