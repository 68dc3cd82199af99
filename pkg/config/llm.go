package config

import "time"

// LLMConfig defines the chat-completions provider used for workflow AI
// nodes, extraction, and the fallback assistant. The endpoint speaks the
// OpenAI API shape; BaseURL makes it work against OpenRouter-style
// aggregators as well.
type LLMConfig struct {
	// APIKeyEnv is the env var name holding the provider API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// BaseURL overrides the provider endpoint (empty = api.openai.com).
	BaseURL string `yaml:"base_url"`

	// Model is the model identifier sent with every request.
	Model string `yaml:"model"`

	// Temperature for chat completions.
	Temperature float32 `yaml:"temperature"`

	// MaxTokens caps completion length.
	MaxTokens int `yaml:"max_tokens"`

	// RequestTimeout bounds a single completion round trip.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// HistoryLimit is how many prior conversation messages are replayed
	// into the prompt.
	HistoryLimit int `yaml:"history_limit"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		APIKeyEnv:      "OPENROUTER_API_KEY",
		BaseURL:        "https://openrouter.ai/api/v1",
		Model:          "openai/gpt-4o-mini",
		Temperature:    0.7,
		MaxTokens:      1000,
		RequestTimeout: 20 * time.Second,
		HistoryLimit:   10,
	}
}
