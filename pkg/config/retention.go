package config

import "time"

// RetentionConfig controls data retention and the periodic sweep loop.
type RetentionConfig struct {
	// TrialDays is the length of the free trial granted to new tenants.
	TrialDays int `yaml:"trial_days"`

	// EventTTL is the maximum age of event log rows before deletion.
	EventTTL time.Duration `yaml:"event_ttl"`

	// SweepInterval is how often the retention loop runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TrialDays:     14,
		EventTTL:      24 * time.Hour,
		SweepInterval: 1 * time.Hour,
	}
}
