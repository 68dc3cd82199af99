package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Slack:     &SlackConfig{TokenEnv: "SLACK_BOT_TOKEN"},
		Retention: DefaultRetentionConfig(),
		Queue:     DefaultQueueConfig(),
		LLM:       DefaultLLMConfig(),
		Channels:  DefaultChannelsConfig(),
		Security:  DefaultSecurityConfig(),
	}
}

func TestValidateAllDefaults(t *testing.T) {
	err := NewValidator(validConfig()).ValidateAll()
	assert.NoError(t, err)
}

func TestValidateQueue(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*QueueConfig)
		errMsg string
	}{
		{
			name:   "worker count too low",
			mutate: func(q *QueueConfig) { q.WorkerCount = 0 },
			errMsg: "worker_count",
		},
		{
			name:   "max concurrent tasks too low",
			mutate: func(q *QueueConfig) { q.MaxConcurrentTasks = 0 },
			errMsg: "max_concurrent_tasks",
		},
		{
			name:   "poll interval not positive",
			mutate: func(q *QueueConfig) { q.PollInterval = 0 },
			errMsg: "poll_interval",
		},
		{
			name:   "task timeout not positive",
			mutate: func(q *QueueConfig) { q.TaskTimeout = -time.Second },
			errMsg: "task_timeout",
		},
		{
			name: "orphan threshold below heartbeat interval",
			mutate: func(q *QueueConfig) {
				q.HeartbeatInterval = time.Minute
				q.OrphanThreshold = 30 * time.Second
			},
			errMsg: "orphan_threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg.Queue)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateLLM(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LLMConfig)
		errMsg string
	}{
		{
			name:   "missing model",
			mutate: func(l *LLMConfig) { l.Model = "" },
			errMsg: "model",
		},
		{
			name:   "missing api key env",
			mutate: func(l *LLMConfig) { l.APIKeyEnv = "" },
			errMsg: "api_key_env",
		},
		{
			name:   "temperature out of range",
			mutate: func(l *LLMConfig) { l.Temperature = 2.5 },
			errMsg: "temperature",
		},
		{
			name:   "max tokens too low",
			mutate: func(l *LLMConfig) { l.MaxTokens = 0 },
			errMsg: "max_tokens",
		},
		{
			name:   "negative history limit",
			mutate: func(l *LLMConfig) { l.HistoryLimit = -1 },
			errMsg: "history_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg.LLM)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateChannels(t *testing.T) {
	cfg := validConfig()
	cfg.Channels.WhatsApp.GraphBaseURL = ""

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "graph_base_url")
}

func TestValidateSecurity(t *testing.T) {
	cfg := validConfig()
	cfg.Security.EncryptionKeyEnv = ""

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encryption_key_env")
}

func TestValidateRetention(t *testing.T) {
	cfg := validConfig()
	cfg.Retention.TrialDays = 0

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trial_days")
}
