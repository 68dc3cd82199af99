package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMessageEvent(t *testing.T) {
	ev := NewMessageEvent("tenant-1", "u1", ChannelWeb, "what is pricing?", map[string]any{
		"user_id": "u1",
		// Extra map cannot clobber the core keys.
		"message_body": "injected",
	})

	assert.Equal(t, "tenant-1", ev.TenantID)
	assert.Equal(t, EventKindMessageCreated, ev.Kind)
	assert.Equal(t, "u1", ev.Participant())
	assert.Equal(t, "what is pricing?", ev.MessageBody())
	assert.Equal(t, "u1", ev.Data["user_id"])
	assert.Equal(t, ChannelWeb, ev.Data["channel"])
	assert.False(t, ev.ReceivedAt.IsZero())
}

func TestInboundEventAccessorsNilSafe(t *testing.T) {
	ev := &InboundEvent{TenantID: "tenant-1", Kind: EventKindMessageCreated}

	assert.Empty(t, ev.Participant())
	assert.Empty(t, ev.MessageBody())
}

func TestNewLeadStatusEvent(t *testing.T) {
	ev := NewLeadStatusEvent("tenant-1", "lead-9", "new", "qualified")

	assert.Equal(t, EventKindLeadStatusUpdate, ev.Kind)
	assert.Equal(t, "lead-9", ev.Data["lead_id"])
	assert.Equal(t, "new", ev.Data["old_status"])
	assert.Equal(t, "qualified", ev.Data["new_status"])
}
