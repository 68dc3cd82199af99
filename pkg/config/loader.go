package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// FlowcoreYAMLConfig represents the complete flowcore.yaml file structure
type FlowcoreYAMLConfig struct {
	System   *SystemYAMLConfig `yaml:"system"`
	Queue    *QueueConfig      `yaml:"queue"`
	LLM      *LLMConfig        `yaml:"llm"`
	Channels *ChannelsConfig   `yaml:"channels"`
	Security *SecurityConfig   `yaml:"security"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	DashboardURL     string           `yaml:"dashboard_url"`
	AllowedWSOrigins []string         `yaml:"allowed_ws_origins"`
	Slack            *SlackYAMLConfig `yaml:"slack"`
	Retention        *RetentionConfig `yaml:"retention"`
}

// SlackYAMLConfig holds Slack notification settings from YAML.
type SlackYAMLConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load flowcore.yaml from configDir (optional; defaults apply if absent)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user overrides on top of built-in defaults
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"workers", cfg.Queue.WorkerCount,
		"llm_model", cfg.LLM.Model,
		"slack_enabled", cfg.Slack.Enabled)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	yamlCfg, err := loader.loadFlowcoreYAML()
	if err != nil {
		return nil, NewLoadError("flowcore.yaml", err)
	}

	// Resolve each section: start with defaults, merge user YAML on top so
	// unset fields keep their built-in values.
	queueCfg := DefaultQueueConfig()
	if yamlCfg.Queue != nil {
		if err := mergo.Merge(queueCfg, yamlCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	llmCfg := DefaultLLMConfig()
	if yamlCfg.LLM != nil {
		if err := mergo.Merge(llmCfg, yamlCfg.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	channelsCfg := resolveChannelsConfig(yamlCfg.Channels)
	securityCfg := resolveSecurityConfig(yamlCfg.Security)
	slackCfg := resolveSlackConfig(yamlCfg.System)
	retentionCfg := resolveRetentionConfig(yamlCfg.System)
	dashboardURL := resolveDashboardURL(yamlCfg.System)
	allowedWSOrigins := resolveAllowedWSOrigins(yamlCfg.System)

	return &Config{
		configDir:        configDir,
		DashboardURL:     dashboardURL,
		AllowedWSOrigins: allowedWSOrigins,
		Slack:            slackCfg,
		Retention:        retentionCfg,
		Queue:            queueCfg,
		LLM:              llmCfg,
		Channels:         channelsCfg,
		Security:         securityCfg,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

// loadFlowcoreYAML reads flowcore.yaml. A missing file is not an error:
// the platform runs on defaults plus environment variables.
func (l *configLoader) loadFlowcoreYAML() (*FlowcoreYAMLConfig, error) {
	var config FlowcoreYAMLConfig

	if err := l.loadYAML("flowcore.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No flowcore.yaml found, using built-in defaults",
				"config_dir", l.configDir)
			return &FlowcoreYAMLConfig{}, nil
		}
		return nil, err
	}

	return &config, nil
}

// resolveSlackConfig resolves Slack configuration from system YAML, applying defaults.
func resolveSlackConfig(sys *SystemYAMLConfig) *SlackConfig {
	cfg := &SlackConfig{
		Enabled:  false,
		TokenEnv: "SLACK_BOT_TOKEN",
	}

	if sys == nil || sys.Slack == nil {
		return cfg
	}

	s := sys.Slack
	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.TokenEnv != "" {
		cfg.TokenEnv = s.TokenEnv
	}
	if s.Channel != "" {
		cfg.Channel = s.Channel
	}

	return cfg
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.TrialDays > 0 {
		cfg.TrialDays = r.TrialDays
	}
	if r.EventTTL > 0 {
		cfg.EventTTL = r.EventTTL
	}
	if r.SweepInterval > 0 {
		cfg.SweepInterval = r.SweepInterval
	}

	return cfg
}

// resolveChannelsConfig resolves channel configuration from YAML, applying defaults.
func resolveChannelsConfig(ch *ChannelsConfig) *ChannelsConfig {
	cfg := DefaultChannelsConfig()

	if ch == nil || ch.WhatsApp == nil {
		return cfg
	}

	w := ch.WhatsApp
	if w.VerifyTokenEnv != "" {
		cfg.WhatsApp.VerifyTokenEnv = w.VerifyTokenEnv
	}
	if w.GraphBaseURL != "" {
		cfg.WhatsApp.GraphBaseURL = w.GraphBaseURL
	}
	if w.SendTimeout > 0 {
		cfg.WhatsApp.SendTimeout = w.SendTimeout
	}

	return cfg
}

// resolveSecurityConfig resolves security configuration from YAML, applying defaults.
func resolveSecurityConfig(sec *SecurityConfig) *SecurityConfig {
	cfg := DefaultSecurityConfig()

	if sec != nil && sec.EncryptionKeyEnv != "" {
		cfg.EncryptionKeyEnv = sec.EncryptionKeyEnv
	}

	return cfg
}

// resolveDashboardURL resolves the dashboard base URL from system YAML, applying defaults.
func resolveDashboardURL(sys *SystemYAMLConfig) string {
	if sys != nil && sys.DashboardURL != "" {
		return sys.DashboardURL
	}
	return "http://localhost:5173"
}

// resolveAllowedWSOrigins returns additional WebSocket origin patterns from system YAML.
func resolveAllowedWSOrigins(sys *SystemYAMLConfig) []string {
	if sys != nil {
		return sys.AllowedWSOrigins
	}
	return nil
}
