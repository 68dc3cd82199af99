package models

import "github.com/interacai/flowcore/ent"

// Chat response statuses surfaced to web clients.
const (
	ChatStatusOK                 = "ok"
	ChatStatusWorkflowProcessing = "workflow_processing"
	ChatStatusBlocked            = "blocked"
)

// ChatRequest is an inbound web chat message.
type ChatRequest struct {
	TenantID string `json:"tenant_id"`
	UserID   string `json:"user_id"`
	Message  string `json:"message"`
}

// ChatResponse is the synchronous answer to a web chat message. Reply is
// null while a workflow owns the response (it arrives over the event
// stream instead); ExecutionIDs then names the runs that claimed it.
type ChatResponse struct {
	Reply        *string  `json:"reply"`
	Status       string   `json:"status"`
	ExecutionIDs []string `json:"execution_ids,omitempty"`
	Intent       string   `json:"intent,omitempty"`
	Sentiment    string   `json:"sentiment,omitempty"`
}

// ConversationListResponse contains a tenant's conversations ordered by
// recency.
type ConversationListResponse struct {
	Conversations []*ent.Conversation `json:"conversations"`
}

// MessageListResponse contains one conversation's messages in
// chronological order.
type MessageListResponse struct {
	Messages []*ent.Message `json:"messages"`
}
