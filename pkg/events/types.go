// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Every event is published on a channel. The dashboard subscribes to two
// kinds of channel:
//
//	conversation:{tenant}:{participant}
//	  The live thread view. Carries message.created and
//	  execution.status events for that one conversation.
//
//	tenant:{tenant}
//	  The tenant-wide feed behind the inbox list, the executions page
//	  and the leads board. Carries transient copies of conversation
//	  events (so list rows update without a per-row subscription) plus
//	  lead.captured events.
//
// Persistent events are inserted into the events table and NOTIFYed in
// the same transaction; reconnecting clients replay them with a catchup
// query keyed on the last event id they saw. Transient copies are
// NOTIFY-only and lost on disconnect, which is fine for list refreshes.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// A message was appended to a conversation, by either side.
	EventTypeMessageCreated = "message.created"

	// A workflow execution changed lifecycle state.
	EventTypeExecutionStatus = "execution.status"

	// A lead was captured or updated.
	EventTypeLeadCaptured = "lead.captured"
)

// ConversationChannel returns the channel name for one conversation's
// events. The conversation id already embeds the tenant
// ("{tenant}:{participant}"), so the channel is tenant-scoped.
func ConversationChannel(conversationID string) string {
	return "conversation:" + conversationID
}

// TenantChannel returns the tenant-wide channel feeding the dashboard
// list pages.
func TenantChannel(tenantID string) string {
	return "tenant:" + tenantID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "conversation:t-1:+15550001111")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
