package config

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application at startup.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// DashboardURL is the base URL of the operator dashboard, used in
	// Slack notification links.
	DashboardURL string

	// AllowedWSOrigins lists extra WebSocket origin patterns accepted by
	// the live conversation stream (localhost variants are always allowed).
	AllowedWSOrigins []string

	// Slack notification settings for human handoff.
	Slack *SlackConfig

	// Retention and trial-expiry sweep settings.
	Retention *RetentionConfig

	// Step task queue and worker pool configuration.
	Queue *QueueConfig

	// LLM provider configuration (OpenAI-compatible endpoint).
	LLM *LLMConfig

	// Messaging channel configuration (WhatsApp Cloud API).
	Channels *ChannelsConfig

	// Credential encryption settings.
	Security *SecurityConfig
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// SlackConfig holds resolved Slack notification configuration.
type SlackConfig struct {
	Enabled  bool
	TokenEnv string // Env var name for Slack bot token (default: "SLACK_BOT_TOKEN")
	Channel  string // Slack channel ID (e.g., "C12345678")
}
