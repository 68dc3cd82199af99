package models

import "time"

// Event kinds consumed by the arbiter.
const (
	EventKindMessageCreated   = "message_created"
	EventKindLeadStatusUpdate = "lead_status_update"
)

// Channel identifiers
const (
	ChannelWeb      = "web"
	ChannelWhatsApp = "whatsapp"
)

// InboundEvent is the normalized event every channel adapter produces.
// Data becomes context.trigger of any execution it starts, so keys here
// are the vocabulary workflow templates resolve against
// (trigger.message_body, trigger.participant, ...).
type InboundEvent struct {
	TenantID   string         `json:"tenant_id"`
	Kind       string         `json:"kind"`
	Data       map[string]any `json:"data"`
	ReceivedAt time.Time      `json:"received_at"`
}

// Participant returns the participant identifier carried in Data, or "".
func (e *InboundEvent) Participant() string {
	if e.Data == nil {
		return ""
	}
	if p, ok := e.Data["participant"].(string); ok {
		return p
	}
	return ""
}

// MessageBody returns the message text carried in Data, or "".
func (e *InboundEvent) MessageBody() string {
	if e.Data == nil {
		return ""
	}
	if b, ok := e.Data["message_body"].(string); ok {
		return b
	}
	return ""
}

// NewMessageEvent builds a message_created event. The extra map carries
// channel-specific fields (from_number for WhatsApp, user_id for web) and
// is merged into Data without overwriting the core keys.
func NewMessageEvent(tenantID, participant, channel, body string, extra map[string]any) *InboundEvent {
	data := map[string]any{
		"participant":  participant,
		"channel":      channel,
		"message_body": body,
	}
	for k, v := range extra {
		if _, exists := data[k]; !exists {
			data[k] = v
		}
	}
	return &InboundEvent{
		TenantID:   tenantID,
		Kind:       EventKindMessageCreated,
		Data:       data,
		ReceivedAt: time.Now().UTC(),
	}
}

// NewLeadStatusEvent builds a lead_status_update event.
func NewLeadStatusEvent(tenantID, leadID, oldStatus, newStatus string) *InboundEvent {
	return &InboundEvent{
		TenantID: tenantID,
		Kind:     EventKindLeadStatusUpdate,
		Data: map[string]any{
			"lead_id":    leadID,
			"old_status": oldStatus,
			"new_status": newStatus,
		},
		ReceivedAt: time.Now().UTC(),
	}
}
