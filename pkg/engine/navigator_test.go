package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSelectSuccessors(t *testing.T) {
	edges := []Edge{
		{SourceID: "start", TargetID: "check"},
		{SourceID: "check", TargetID: "yes-branch", Guard: strPtr("true")},
		{SourceID: "check", TargetID: "no-branch", Guard: strPtr("false")},
		{SourceID: "check", TargetID: "audit"},
		{SourceID: "yes-branch", TargetID: "end"},
	}

	tests := []struct {
		name   string
		nodeID string
		output map[string]any
		want   []string
	}{
		{
			name:   "unguarded edge always taken",
			nodeID: "start",
			output: map[string]any{"status": "started"},
			want:   []string{"check"},
		},
		{
			name:   "guard true selects matching branch plus unguarded",
			nodeID: "check",
			output: map[string]any{KeyConditionEval: "true"},
			want:   []string{"yes-branch", "audit"},
		},
		{
			name:   "guard false selects other branch",
			nodeID: "check",
			output: map[string]any{KeyConditionEval: "false"},
			want:   []string{"no-branch", "audit"},
		},
		{
			name:   "missing condition_eval takes only unguarded edges",
			nodeID: "check",
			output: map[string]any{},
			want:   []string{"audit"},
		},
		{
			name:   "boolean eval is stringified before matching",
			nodeID: "check",
			output: map[string]any{KeyConditionEval: true},
			want:   []string{"yes-branch", "audit"},
		},
		{
			name:   "terminal node has no successors",
			nodeID: "end",
			output: map[string]any{},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectSuccessors(edges, tt.nodeID, tt.output))
		})
	}
}
