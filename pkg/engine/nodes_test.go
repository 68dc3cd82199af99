package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNodeConfigDefaults(t *testing.T) {
	t.Run("action defaults to send_message", func(t *testing.T) {
		cfg, err := ParseNodeConfig(KindAction, nil)
		require.NoError(t, err)

		action, ok := cfg.(ActionConfig)
		require.True(t, ok)
		assert.Equal(t, ActionSendMessage, action.ActionType)
	})

	t.Run("ai_inference auto_send defaults on", func(t *testing.T) {
		cfg, err := ParseNodeConfig(KindAIInference, map[string]any{"prompt_template": "qualify the lead"})
		require.NoError(t, err)

		inference, ok := cfg.(AIInferenceConfig)
		require.True(t, ok)
		assert.True(t, inference.AutoSend)
		assert.Equal(t, "qualify the lead", inference.PromptTemplate)
	})

	t.Run("ai_inference auto_send can be disabled", func(t *testing.T) {
		cfg, err := ParseNodeConfig(KindAIInference, map[string]any{"auto_send": false})
		require.NoError(t, err)
		assert.False(t, cfg.(AIInferenceConfig).AutoSend)
	})

	t.Run("condition operator defaults to contains", func(t *testing.T) {
		cfg, err := ParseNodeConfig(KindCondition, map[string]any{"variable": "message_body", "value": "pricing"})
		require.NoError(t, err)

		cond, ok := cfg.(ConditionConfig)
		require.True(t, ok)
		assert.Equal(t, OpContains, cond.Operator)
		assert.Equal(t, "pricing", cond.Value)
	})

	t.Run("http_request method defaults to GET", func(t *testing.T) {
		cfg, err := ParseNodeConfig(KindHTTPRequest, map[string]any{"url": "https://example.com"})
		require.NoError(t, err)
		assert.Equal(t, "GET", cfg.(HTTPRequestConfig).Method)
	})

	t.Run("lead_capture status defaults to new", func(t *testing.T) {
		cfg, err := ParseNodeConfig(KindLeadCapture, nil)
		require.NoError(t, err)
		assert.Equal(t, "new", cfg.(LeadCaptureConfig).Status)
	})
}

func TestParseNodeConfigJSONShapes(t *testing.T) {
	// Config documents come off the wire, so numbers arrive as float64
	// and field lists as []any of maps.
	cfg, err := ParseNodeConfig(KindTimeDelay, map[string]any{"seconds": 300.0})
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.(TimeDelayConfig).Seconds)

	cfg, err = ParseNodeConfig(KindTimeDelay, map[string]any{"seconds": "45"})
	require.NoError(t, err)
	assert.Equal(t, 45, cfg.(TimeDelayConfig).Seconds)

	cfg, err = ParseNodeConfig(KindAIExtract, map[string]any{
		"fields": []any{
			map[string]any{"name": "email", "type": "string", "description": "customer email"},
			map[string]any{"name": "budget"},
		},
	})
	require.NoError(t, err)

	fields := cfg.(AIExtractConfig).Fields
	require.Len(t, fields, 2)
	assert.Equal(t, "email", fields[0].Name)
	assert.Equal(t, "string", fields[1].Type)

	cfg, err = ParseNodeConfig(KindHTTPRequest, map[string]any{
		"url":     "https://example.com/hook",
		"headers": map[string]any{"X-Token": "abc", "X-Retry": 3.0},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"X-Token": "abc", "X-Retry": "3"}, cfg.(HTTPRequestConfig).Headers)
}

func TestParseNodeConfigUnknownKind(t *testing.T) {
	_, err := ParseNodeConfig("teleport", nil)
	assert.ErrorIs(t, err, ErrUnknownNodeKind)
}

func TestSignalFromOutput(t *testing.T) {
	tests := []struct {
		name       string
		output     map[string]any
		wantSignal Signal
		wantOK     bool
	}{
		{
			name: "suspend with resume node",
			output: map[string]any{
				KeySignal:       SignalSuspend,
				KeyResumeNodeID: "node-wait",
			},
			wantSignal: Signal{Kind: SignalSuspend, ResumeNodeID: "node-wait"},
			wantOK:     true,
		},
		{
			name:       "delay with numeric seconds",
			output:     map[string]any{KeySignal: SignalDelay, KeySeconds: 120.0},
			wantSignal: Signal{Kind: SignalDelay, Seconds: 120},
			wantOK:     true,
		},
		{
			name:   "plain output carries no signal",
			output: map[string]any{"ai_output": "done"},
			wantOK: false,
		},
		{
			name:   "nil output",
			output: nil,
			wantOK: false,
		},
		{
			name:   "unrecognized signal value",
			output: map[string]any{KeySignal: "pause"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SignalFromOutput(tt.output)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantSignal, got)
			}
		})
	}
}
