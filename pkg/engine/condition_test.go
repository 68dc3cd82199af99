package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateCondition(t *testing.T) {
	execCtx := Context{
		KeyTrigger: map[string]any{
			"message_body": "I want PRICING details",
		},
		"email":      "sam@example.com",
		"budget":     "$12,000",
		"ticket_ref": "case-42",
		"tier":       "beta",
		"score":      85.0,
		"empty":      "",
	}

	tests := []struct {
		name string
		cfg  ConditionConfig
		want string
	}{
		{
			name: "exists on present key",
			cfg:  ConditionConfig{Variable: "email", Operator: OpExists},
			want: "true",
		},
		{
			name: "exists on missing key",
			cfg:  ConditionConfig{Variable: "phone", Operator: OpExists},
			want: "false",
		},
		{
			name: "exists on empty string",
			cfg:  ConditionConfig{Variable: "empty", Operator: OpExists},
			want: "false",
		},
		{
			name: "equals ignores case",
			cfg:  ConditionConfig{Variable: "ticket_ref", Operator: OpEquals, Value: "CASE-42"},
			want: "true",
		},
		{
			name: "equals mismatch",
			cfg:  ConditionConfig{Variable: "ticket_ref", Operator: OpEquals, Value: "case-43"},
			want: "false",
		},
		{
			name: "equals stringifies numbers",
			cfg:  ConditionConfig{Variable: "score", Operator: OpEquals, Value: "85"},
			want: "true",
		},
		{
			name: "contains ignores case",
			cfg:  ConditionConfig{Variable: "message_body", Operator: OpContains, Value: "pricing"},
			want: "true",
		},
		{
			name: "contains mismatch",
			cfg:  ConditionConfig{Variable: "message_body", Operator: OpContains, Value: "refund"},
			want: "false",
		},
		{
			name: "contains with empty target never matches",
			cfg:  ConditionConfig{Variable: "message_body", Operator: OpContains, Value: ""},
			want: "false",
		},
		{
			name: "greater_than strips currency formatting",
			cfg:  ConditionConfig{Variable: "budget", Operator: OpGreaterThan, Value: 10000},
			want: "true",
		},
		{
			name: "greater_than numeric false",
			cfg:  ConditionConfig{Variable: "score", Operator: OpGreaterThan, Value: 90},
			want: "false",
		},
		{
			name: "greater_than mixed digits compares numerically",
			cfg:  ConditionConfig{Variable: "ticket_ref", Operator: OpGreaterThan, Value: "case-41"},
			want: "true",
		},
		{
			name: "greater_than falls back to string comparison",
			cfg:  ConditionConfig{Variable: "tier", Operator: OpGreaterThan, Value: "alpha"},
			want: "true",
		},
		{
			name: "greater_than on missing variable",
			cfg:  ConditionConfig{Variable: "phone", Operator: OpGreaterThan, Value: 1},
			want: "false",
		},
		{
			name: "equals on missing variable",
			cfg:  ConditionConfig{Variable: "phone", Operator: OpEquals, Value: ""},
			want: "false",
		},
		{
			name: "unknown operator",
			cfg:  ConditionConfig{Variable: "email", Operator: "matches"},
			want: "false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateCondition(tt.cfg, execCtx))
		})
	}
}

func TestCleanNumber(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{name: "float64", in: 12.5, want: 12.5, wantOK: true},
		{name: "int", in: 7, want: 7, wantOK: true},
		{name: "plain string", in: "42", want: 42, wantOK: true},
		{name: "currency string", in: "$1,200.50", want: 1200.50, wantOK: true},
		{name: "embedded digits", in: "around 300 users", want: 300, wantOK: true},
		{name: "no digits", in: "soon", wantOK: false},
		{name: "empty string", in: "", wantOK: false},
		{name: "multiple dots fail to parse", in: "1.2.3", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cleanNumber(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
