package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, "flowcore.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestInitializeDefaults(t *testing.T) {
	// Empty config dir: everything comes from built-in defaults.
	configDir := t.TempDir()

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, configDir, cfg.ConfigDir())
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.BaseURL)
	assert.False(t, cfg.Slack.Enabled)
	assert.Equal(t, "SLACK_BOT_TOKEN", cfg.Slack.TokenEnv)
	assert.Equal(t, 14, cfg.Retention.TrialDays)
	assert.Equal(t, "ENCRYPTION_KEY", cfg.Security.EncryptionKeyEnv)
	assert.Equal(t, "https://graph.facebook.com/v21.0", cfg.Channels.WhatsApp.GraphBaseURL)
	assert.Equal(t, "http://localhost:5173", cfg.DashboardURL)
}

func TestInitializeOverlay(t *testing.T) {
	configDir := t.TempDir()
	writeConfigFile(t, configDir, `
system:
  dashboard_url: https://app.example.com
  allowed_ws_origins:
    - "*.example.com"
  slack:
    enabled: true
    channel: C12345678
  retention:
    trial_days: 30
queue:
  worker_count: 8
llm:
  model: anthropic/claude-sonnet
  base_url: https://openrouter.ai/api/v1
channels:
  whatsapp:
    graph_base_url: https://graph.example.test/v21.0
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, "https://app.example.com", cfg.DashboardURL)
	assert.Equal(t, []string{"*.example.com"}, cfg.AllowedWSOrigins)
	assert.True(t, cfg.Slack.Enabled)
	assert.Equal(t, "C12345678", cfg.Slack.Channel)
	assert.Equal(t, 30, cfg.Retention.TrialDays)
	assert.Equal(t, 8, cfg.Queue.WorkerCount)
	assert.Equal(t, "anthropic/claude-sonnet", cfg.LLM.Model)
	assert.Equal(t, "https://graph.example.test/v21.0", cfg.Channels.WhatsApp.GraphBaseURL)

	// Unset fields keep defaults
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 20*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, "SLACK_BOT_TOKEN", cfg.Slack.TokenEnv)
	assert.Equal(t, 10*time.Second, cfg.Channels.WhatsApp.SendTimeout)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("TEST_SLACK_CHANNEL", "C0EXPANDED")

	configDir := t.TempDir()
	writeConfigFile(t, configDir, `
system:
  slack:
    enabled: true
    channel: "{{.TEST_SLACK_CHANNEL}}"
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	assert.Equal(t, "C0EXPANDED", cfg.Slack.Channel)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()
	writeConfigFile(t, configDir, "queue: [not: a: mapping")

	_, err := Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()
	writeConfigFile(t, configDir, `
llm:
  temperature: 5.0
`)

	_, err := Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestInitializeMissingDirUsesDefaults(t *testing.T) {
	// A nonexistent directory behaves like an empty one.
	cfg, err := Initialize(context.Background(), "/nonexistent/flowcore-config")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
}
