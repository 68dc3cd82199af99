package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/ent/lead"
	"github.com/interacai/flowcore/ent/message"
)

func TestNewMessageCreatedPayload(t *testing.T) {
	t.Run("maps all fields", func(t *testing.T) {
		intent := "scheduling"
		sentiment := "positive"
		createdAt := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
		msg := &ent.Message{
			ID:             "msg-123",
			ConversationID: "t-1:+15550001111",
			TenantID:       "t-1",
			Sender:         message.SenderUser,
			Channel:        message.ChannelWhatsapp,
			Body:           "can I book for tomorrow?",
			Intent:         &intent,
			Sentiment:      &sentiment,
			CreatedAt:      createdAt,
		}

		payload := NewMessageCreatedPayload(msg)

		assert.Equal(t, EventTypeMessageCreated, payload.Type)
		assert.Equal(t, "msg-123", payload.MessageID)
		assert.Equal(t, "t-1:+15550001111", payload.ConversationID)
		assert.Equal(t, "t-1", payload.TenantID)
		assert.Equal(t, "user", payload.Sender)
		assert.Equal(t, "whatsapp", payload.Channel)
		assert.Equal(t, "can I book for tomorrow?", payload.Body)
		assert.Equal(t, "scheduling", payload.Intent)
		assert.Equal(t, "positive", payload.Sentiment)
		assert.Equal(t, createdAt.Format(time.RFC3339Nano), payload.Timestamp)
	})

	t.Run("omits unclassified intent and sentiment from JSON", func(t *testing.T) {
		msg := &ent.Message{
			ID:             "msg-456",
			ConversationID: "t-1:visitor-42",
			TenantID:       "t-1",
			Sender:         message.SenderAssistant,
			Channel:        message.ChannelWeb,
			Body:           "Hello! How can I help?",
			CreatedAt:      time.Now(),
		}

		payload := NewMessageCreatedPayload(msg)
		data, err := json.Marshal(payload)
		require.NoError(t, err)

		assert.NotContains(t, string(data), "intent")
		assert.NotContains(t, string(data), "sentiment")
	})
}

func TestNewExecutionStatusPayload(t *testing.T) {
	t.Run("uses the announced status, not the persisted one", func(t *testing.T) {
		// The payload announces the transition in flight, which may not be
		// written back to the row yet.
		exec := &ent.Execution{
			ID:         "exec-1",
			WorkflowID: "wf-1",
			TenantID:   "t-1",
			Status:     execution.StatusRunning,
		}

		payload := NewExecutionStatusPayload(exec, execution.StatusSuspended)

		assert.Equal(t, EventTypeExecutionStatus, payload.Type)
		assert.Equal(t, "exec-1", payload.ExecutionID)
		assert.Equal(t, "wf-1", payload.WorkflowID)
		assert.Equal(t, "t-1", payload.TenantID)
		assert.Equal(t, "suspended", payload.Status)
		assert.Empty(t, payload.Error)
		assert.NotEmpty(t, payload.Timestamp)
	})

	t.Run("carries the error message on failed", func(t *testing.T) {
		errMsg := "node n2: llm call failed"
		exec := &ent.Execution{
			ID:           "exec-2",
			WorkflowID:   "wf-1",
			TenantID:     "t-1",
			Status:       execution.StatusFailed,
			ErrorMessage: &errMsg,
		}

		payload := NewExecutionStatusPayload(exec, execution.StatusFailed)

		assert.Equal(t, "failed", payload.Status)
		assert.Equal(t, "node n2: llm call failed", payload.Error)
	})

	t.Run("omits empty error from JSON", func(t *testing.T) {
		exec := &ent.Execution{
			ID:         "exec-3",
			WorkflowID: "wf-1",
			TenantID:   "t-1",
		}

		data, err := json.Marshal(NewExecutionStatusPayload(exec, execution.StatusCompleted))
		require.NoError(t, err)
		assert.NotContains(t, string(data), `"error"`)
	})
}

func TestNewLeadCapturedPayload(t *testing.T) {
	email := "ana@example.com"
	phone := "+5511999990000"
	ld := &ent.Lead{
		ID:       "lead-1",
		TenantID: "t-1",
		Name:     "Ana Souza",
		Email:    &email,
		Phone:    &phone,
		Source:   "whatsapp",
		Status:   lead.StatusQualified,
		Value:    1200.50,
	}

	payload := NewLeadCapturedPayload(ld)

	assert.Equal(t, EventTypeLeadCaptured, payload.Type)
	assert.Equal(t, "lead-1", payload.LeadID)
	assert.Equal(t, "t-1", payload.TenantID)
	assert.Equal(t, "Ana Souza", payload.Name)
	assert.Equal(t, "ana@example.com", payload.Email)
	assert.Equal(t, "+5511999990000", payload.Phone)
	assert.Equal(t, "whatsapp", payload.Source)
	assert.Equal(t, "qualified", payload.Status)
	assert.Equal(t, 1200.50, payload.Value)
	assert.NotEmpty(t, payload.Timestamp)
}

func TestConversationIDFromExecution(t *testing.T) {
	tests := []struct {
		name string
		exec *ent.Execution
		want string
	}{
		{
			name: "trigger with participant",
			exec: &ent.Execution{
				TenantID: "t-1",
				Context: map[string]interface{}{
					"trigger": map[string]any{"participant": "+15550001111"},
				},
			},
			want: "t-1:+15550001111",
		},
		{
			name: "trigger without participant",
			exec: &ent.Execution{
				TenantID: "t-1",
				Context: map[string]interface{}{
					"trigger": map[string]any{"type": "manual"},
				},
			},
			want: "",
		},
		{
			name: "no trigger in context",
			exec: &ent.Execution{
				TenantID: "t-1",
				Context:  map[string]interface{}{"tenant": map[string]any{"id": "t-1"}},
			},
			want: "",
		},
		{
			name: "nil context",
			exec: &ent.Execution{TenantID: "t-1"},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conversationIDFromExecution(tt.exec))
		})
	}
}
