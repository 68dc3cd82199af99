package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "api_key: {{.API_KEY}}",
			env:   map[string]string{"API_KEY": "secret123"},
			want:  "api_key: secret123",
		},
		{
			name:  "literal ${VAR} is NOT expanded",
			input: "template: ${participant}",
			env:   map[string]string{"participant": "visitor-1"},
			want:  "template: ${participant}",
		},
		{
			name:  "literal $ in message text is preserved",
			input: "message: our plans start at $29/mo",
			env:   map[string]string{},
			want:  "message: our plans start at $29/mo",
		},
		{
			name:  "multiple substitutions in one line",
			input: "url: {{.PROTOCOL}}://{{.HOST}}:{{.PORT}}",
			env: map[string]string{
				"PROTOCOL": "https",
				"HOST":     "example.com",
				"PORT":     "443",
			},
			want: "url: https://example.com:443",
		},
		{
			name:  "missing variable expands to empty",
			input: "endpoint: {{.MISSING_VAR}}",
			env:   map[string]string{},
			want:  "endpoint: ",
		},
		{
			name:  "no substitution when no variables",
			input: "static: value",
			env:   map[string]string{"UNUSED": "value"},
			want:  "static: value",
		},
		{
			name:  "malformed template passes through unchanged",
			input: "broken: {{.UNCLOSED",
			env:   map[string]string{},
			want:  "broken: {{.UNCLOSED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestExpandEnvYAMLRoundTrip(t *testing.T) {
	t.Setenv("TEST_CHANNEL", "C0FLOW123")

	input := []byte("system:\n  slack:\n    channel: {{.TEST_CHANNEL}}\n")
	expanded := ExpandEnv(input)

	var cfg FlowcoreYAMLConfig
	err := yaml.Unmarshal(expanded, &cfg)
	assert.NoError(t, err)
	assert.NotNil(t, cfg.System)
	assert.NotNil(t, cfg.System.Slack)
	assert.Equal(t, "C0FLOW123", cfg.System.Slack.Channel)
}
