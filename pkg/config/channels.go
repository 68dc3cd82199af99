package config

import "time"

// ChannelsConfig groups outbound messaging channel settings.
type ChannelsConfig struct {
	WhatsApp *WhatsAppConfig `yaml:"whatsapp"`
}

// WhatsAppConfig holds Meta Cloud API settings. Per-tenant credentials
// (phone number id, access token) live in the database; this only carries
// platform-level knobs.
type WhatsAppConfig struct {
	// VerifyTokenEnv is the env var holding the webhook verification token
	// echoed back during Meta's subscription handshake.
	VerifyTokenEnv string `yaml:"verify_token_env"`

	// GraphBaseURL is the Graph API root. Overridable for tests.
	GraphBaseURL string `yaml:"graph_base_url"`

	// SendTimeout bounds a single outbound send call.
	SendTimeout time.Duration `yaml:"send_timeout"`
}

// DefaultChannelsConfig returns the built-in channel defaults.
func DefaultChannelsConfig() *ChannelsConfig {
	return &ChannelsConfig{
		WhatsApp: &WhatsAppConfig{
			VerifyTokenEnv: "WHATSAPP_VERIFY_TOKEN",
			GraphBaseURL:   "https://graph.facebook.com/v21.0",
			SendTimeout:    10 * time.Second,
		},
	}
}
