package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContext(t *testing.T) {
	trigger := map[string]any{"message_body": "hello", "user_id": "visitor-1"}
	ctx := NewContext("tenant-a", trigger)

	assert.Equal(t, "tenant-a", ctx.TenantID())
	assert.Equal(t, "hello", ctx.Trigger()["message_body"])
}

func TestNewContextNilTrigger(t *testing.T) {
	ctx := NewContext("tenant-a", nil)

	require.NotNil(t, ctx.Trigger())
	assert.Empty(t, ctx.Trigger())
}

func TestContextResolve(t *testing.T) {
	ctx := Context{
		KeyTenant: "tenant-a",
		KeyTrigger: map[string]any{
			"message_body": "I need pricing",
			"from_number":  "+15551234567",
		},
		"extracted": map[string]any{
			"email": "sam@example.com",
			"budget": map[string]any{
				"amount": 1200.0,
			},
		},
		"ai_output": "sure thing",
	}

	tests := []struct {
		name string
		path string
		want any
	}{
		{
			name: "dotted path into nested map",
			path: "extracted.email",
			want: "sam@example.com",
		},
		{
			name: "deeply nested path",
			path: "extracted.budget.amount",
			want: 1200.0,
		},
		{
			name: "root key",
			path: "ai_output",
			want: "sure thing",
		},
		{
			name: "explicit trigger path",
			path: "trigger.message_body",
			want: "I need pricing",
		},
		{
			name: "bare key falls back to trigger",
			path: "from_number",
			want: "+15551234567",
		},
		{
			name: "missing path resolves to nil",
			path: "extracted.phone",
			want: nil,
		},
		{
			name: "path through non-map resolves to nil",
			path: "ai_output.nested",
			want: nil,
		},
		{
			name: "missing bare key resolves to nil",
			path: "no_such_key",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ctx.Resolve(tt.path))
		})
	}
}

func TestContextResolveString(t *testing.T) {
	ctx := Context{
		"name":  "Sam",
		"count": 3.0,
		"blank": "",
	}

	got, ok := ctx.ResolveString("name")
	assert.True(t, ok)
	assert.Equal(t, "Sam", got)

	got, ok = ctx.ResolveString("count")
	assert.True(t, ok)
	assert.Equal(t, "3", got)

	_, ok = ctx.ResolveString("missing")
	assert.False(t, ok)

	got, ok = ctx.ResolveString("blank")
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestContextHydrate(t *testing.T) {
	ctx := Context{
		KeyTrigger: map[string]any{
			"message_body": "book a demo",
			"from_number":  "+15550001111",
		},
		"customer_name": "Sam",
		"extracted": map[string]any{
			"budget": 1500.5,
		},
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single placeholder",
			in:   "Hi {{customer_name}}!",
			want: "Hi Sam!",
		},
		{
			name: "whitespace inside braces",
			in:   "Hi {{ customer_name }}!",
			want: "Hi Sam!",
		},
		{
			name: "dotted path placeholder",
			in:   "Budget: {{extracted.budget}}",
			want: "Budget: 1500.5",
		},
		{
			name: "bare trigger key",
			in:   "You said: {{message_body}}",
			want: "You said: book a demo",
		},
		{
			name: "multiple placeholders",
			in:   "{{customer_name}} ({{from_number}})",
			want: "Sam (+15550001111)",
		},
		{
			name: "unresolved placeholder left intact",
			in:   "Hello {{missing_key}}",
			want: "Hello {{missing_key}}",
		},
		{
			name: "no placeholders",
			in:   "plain text",
			want: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ctx.Hydrate(tt.in))
		})
	}
}

func TestContextHydrateConfigValue(t *testing.T) {
	ctx := Context{"customer_name": "Sam"}

	in := map[string]any{
		"greeting": "Hi {{customer_name}}",
		"nested": map[string]any{
			"list": []any{"{{customer_name}}", 42.0},
		},
		"count": 7.0,
	}

	got, ok := ctx.HydrateConfigValue(in).(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "Hi Sam", got["greeting"])
	nested := got["nested"].(map[string]any)
	assert.Equal(t, []any{"Sam", 42.0}, nested["list"])
	assert.Equal(t, 7.0, got["count"])
}

func TestContextMerge(t *testing.T) {
	ctx := NewContext("tenant-a", map[string]any{"message_body": "hi"})
	ctx["existing"] = "old"

	ctx.Merge(map[string]any{
		"existing":      "new",
		"ai_output":     "done",
		KeySignal:       SignalSuspend,
		KeyResumeNodeID: "node-3",
		KeyTrigger:      map[string]any{"message_body": "overwritten"},
		KeyTenant:       "tenant-b",
	})

	assert.Equal(t, "new", ctx["existing"])
	assert.Equal(t, "done", ctx["ai_output"])
	assert.NotContains(t, ctx, KeySignal)
	assert.NotContains(t, ctx, KeyResumeNodeID)
	assert.Equal(t, "tenant-a", ctx.TenantID())
	assert.Equal(t, "hi", ctx.Trigger()["message_body"])
}

func TestContextSurvivesJSONRoundTrip(t *testing.T) {
	ctx := NewContext("tenant-a", map[string]any{"message_body": "hi"})
	ctx["extracted"] = map[string]any{"budget": 1200.0}

	raw, err := json.Marshal(ctx.Doc())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	restored := FromStored(doc)
	assert.Equal(t, "tenant-a", restored.TenantID())
	assert.Equal(t, "hi", restored.Trigger()["message_body"])
	assert.Equal(t, 1200.0, restored.Resolve("extracted.budget"))
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "string passes through", in: "hello", want: "hello"},
		{name: "whole float drops decimals", in: 42.0, want: "42"},
		{name: "fractional float keeps precision", in: 1200.5, want: "1200.5"},
		{name: "int", in: 7, want: "7"},
		{name: "bool", in: true, want: "true"},
		{name: "nil is empty", in: nil, want: ""},
		{name: "map renders as json", in: map[string]any{"a": 1.0}, want: `{"a":1}`},
		{name: "slice renders as json", in: []any{"x", "y"}, want: `["x","y"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stringify(tt.in))
		})
	}
}
