package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationChannel(t *testing.T) {
	tests := []struct {
		name           string
		conversationID string
		want           string
	}{
		{
			name:           "formats conversation channel correctly",
			conversationID: "t-1:+15550001111",
			want:           "conversation:t-1:+15550001111",
		},
		{
			name:           "web participant",
			conversationID: "t-1:visitor-42",
			want:           "conversation:t-1:visitor-42",
		},
		{
			name:           "handles empty string",
			conversationID: "",
			want:           "conversation:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConversationChannel(tt.conversationID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTenantChannel(t *testing.T) {
	assert.Equal(t, "tenant:t-1", TenantChannel("t-1"))
	assert.Equal(t, "tenant:550e8400-e29b-41d4-a716-446655440000",
		TenantChannel("550e8400-e29b-41d4-a716-446655440000"))
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeMessageCreated,
		EventTypeExecutionStatus,
		EventTypeLeadCaptured,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}
