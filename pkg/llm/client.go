// Package llm is the single choke point to the chat-completions provider.
// Client speaks the wire protocol; Gateway layers safety screening, demo
// fallbacks, and prompt logging on top so callers always get presentable
// text back.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/interacai/flowcore/pkg/config"
)

// ErrNotConfigured means no API key is present; the gateway runs in demo
// mode instead of failing.
var ErrNotConfigured = errors.New("llm provider not configured")

// Role constants for history turns.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one prior message replayed into the prompt.
type Turn struct {
	Role    string
	Content string
}

// Request is a single completion call.
type Request struct {
	System  string
	History []Turn
	User    string

	// Temperature overrides the configured default when non-nil.
	Temperature *float32
	// MaxTokens overrides the configured default when > 0.
	MaxTokens int
}

// Client is the minimal completion surface the gateway and the extraction
// adapter call into.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Model() string
}

// OpenAIClient talks to any OpenAI-compatible chat-completions endpoint.
type OpenAIClient struct {
	api *openai.Client
	cfg config.LLMConfig
}

// headerTransport stamps attribution headers onto every provider request.
// OpenRouter uses them to identify the calling app.
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	return t.base.RoundTrip(req)
}

// NewOpenAIClient builds a provider client from config. Returns
// ErrNotConfigured when the key env var is empty.
func NewOpenAIClient(cfg config.LLMConfig) (*OpenAIClient, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrNotConfigured, cfg.APIKeyEnv)
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: headerTransport{
			base: http.DefaultTransport,
			headers: map[string]string{
				"HTTP-Referer": "https://interacai.com",
				"X-Title":      "InteracAI Platform",
			},
		},
	}

	return &OpenAIClient{
		api: openai.NewClientWithConfig(clientCfg),
		cfg: cfg,
	}, nil
}

// Model returns the configured model identifier.
func (c *OpenAIClient) Model() string {
	return c.cfg.Model
}

// Complete performs one chat completion round trip.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, turn := range req.History {
		role := openai.ChatMessageRoleUser
		if turn.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	temperature := c.cfg.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	maxTokens := c.cfg.MaxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// failureKind classifies a provider error for demo-mode messaging.
type failureKind int

const (
	failureProvider failureKind = iota
	failureAuth
	failureQuota
	failureRateLimited
	failureTimeout
)

func classifyFailure(err error) failureKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return failureTimeout
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode)
	}

	return failureProvider
}

func classifyStatus(status int) failureKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return failureAuth
	case status == http.StatusPaymentRequired:
		return failureQuota
	case status == http.StatusTooManyRequests:
		return failureRateLimited
	default:
		return failureProvider
	}
}
