package events

import (
	"time"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/pkg/services"
)

// MessageCreatedPayload is the payload for message.created events.
// Published whenever a message lands on a conversation: inbound user
// messages, workflow replies and fallback-assistant replies alike.
type MessageCreatedPayload struct {
	Type           string `json:"type"` // always EventTypeMessageCreated
	MessageID      string `json:"message_id"`
	ConversationID string `json:"conversation_id"`
	TenantID       string `json:"tenant_id"`
	Sender         string `json:"sender"` // user, assistant, agent
	Channel        string `json:"channel"`
	Body           string `json:"body"`
	Intent         string `json:"intent,omitempty"`
	Sentiment      string `json:"sentiment,omitempty"`
	Timestamp      string `json:"timestamp"` // RFC3339Nano
}

// NewMessageCreatedPayload builds the payload for a stored message.
func NewMessageCreatedPayload(msg *ent.Message) MessageCreatedPayload {
	p := MessageCreatedPayload{
		Type:           EventTypeMessageCreated,
		MessageID:      msg.ID,
		ConversationID: msg.ConversationID,
		TenantID:       msg.TenantID,
		Sender:         string(msg.Sender),
		Channel:        string(msg.Channel),
		Body:           msg.Body,
		Timestamp:      msg.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if msg.Intent != nil {
		p.Intent = *msg.Intent
	}
	if msg.Sentiment != nil {
		p.Sentiment = *msg.Sentiment
	}
	return p
}

// ExecutionStatusPayload is the payload for execution.status events.
// Published on every lifecycle transition: running, suspended, resumed
// (back to running), completed, failed.
type ExecutionStatusPayload struct {
	Type        string `json:"type"` // always EventTypeExecutionStatus
	ExecutionID string `json:"execution_id"`
	WorkflowID  string `json:"workflow_id"`
	TenantID    string `json:"tenant_id"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"` // set on failed
	Timestamp   string `json:"timestamp"`       // RFC3339Nano
}

// NewExecutionStatusPayload builds the payload for a status transition.
// The status argument is the state being announced, which may not be
// persisted on exec yet when publishing happens inside the transition.
func NewExecutionStatusPayload(exec *ent.Execution, status execution.Status) ExecutionStatusPayload {
	p := ExecutionStatusPayload{
		Type:        EventTypeExecutionStatus,
		ExecutionID: exec.ID,
		WorkflowID:  exec.WorkflowID,
		TenantID:    exec.TenantID,
		Status:      string(status),
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
	}
	if exec.ErrorMessage != nil {
		p.Error = *exec.ErrorMessage
	}
	return p
}

// LeadCapturedPayload is the payload for lead.captured events.
// Published when a workflow or the fallback assistant saves a lead.
type LeadCapturedPayload struct {
	Type      string  `json:"type"` // always EventTypeLeadCaptured
	LeadID    string  `json:"lead_id"`
	TenantID  string  `json:"tenant_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Source    string  `json:"source,omitempty"`
	Status    string  `json:"status"`
	Value     float64 `json:"value,omitempty"`
	Timestamp string  `json:"timestamp"` // RFC3339Nano
}

// NewLeadCapturedPayload builds the payload for a saved lead.
func NewLeadCapturedPayload(lead *ent.Lead) LeadCapturedPayload {
	var email, phone string
	if lead.Email != nil {
		email = *lead.Email
	}
	if lead.Phone != nil {
		phone = *lead.Phone
	}
	return LeadCapturedPayload{
		Type:      EventTypeLeadCaptured,
		LeadID:    lead.ID,
		TenantID:  lead.TenantID,
		Name:      lead.Name,
		Email:     email,
		Phone:     phone,
		Source:    lead.Source,
		Status:    string(lead.Status),
		Value:     lead.Value,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// conversationIDFromExecution recovers the conversation an execution
// belongs to from its trigger context. Empty when the trigger carried no
// participant (manual runs, lead-event runs).
func conversationIDFromExecution(exec *ent.Execution) string {
	trigger, ok := exec.Context["trigger"].(map[string]any)
	if !ok {
		return ""
	}
	participant, _ := trigger["participant"].(string)
	if participant == "" {
		return ""
	}
	return services.ConversationID(exec.TenantID, participant)
}
