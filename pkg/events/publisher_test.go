package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(MessageCreatedPayload{
			Type:           EventTypeMessageCreated,
			MessageID:      "msg-123",
			ConversationID: "t-1:+15550001111",
			TenantID:       "t-1",
			Body:           "some content",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeMessageCreated)
		assert.Contains(t, result, "msg-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		longBody := make([]byte, 8000)
		for i := range longBody {
			longBody[i] = 'a'
		}
		payload, _ := json.Marshal(MessageCreatedPayload{
			Type:           EventTypeMessageCreated,
			MessageID:      "msg-123",
			ConversationID: "t-1:+15550001111",
			TenantID:       "t-1",
			Body:           string(longBody),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(LeadCapturedPayload{
			Type:     EventTypeLeadCaptured,
			LeadID:   "lead-1",
			TenantID: "t-1",
			Name:     "Ana",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		longBody := make([]byte, 8000)
		for i := range longBody {
			longBody[i] = 'x'
		}
		payload, _ := json.Marshal(MessageCreatedPayload{
			Type:           EventTypeMessageCreated,
			MessageID:      "msg-456",
			ConversationID: "t-9:visitor-7",
			TenantID:       "t-9",
			Body:           string(longBody),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeMessageCreated)
		assert.Contains(t, result, "t-9:visitor-7")
		assert.Contains(t, result, `"tenant_id":"t-9"`)
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes.
		// Marshal an empty struct first to measure the overhead of the struct's
		// fixed fields (keys, quotes, separators). The 20-byte safety margin
		// accounts for JSON encoding variability: if new fields with non-zero
		// defaults are added to MessageCreatedPayload, the base overhead grows
		// and the margin prevents the test from flipping unexpectedly.
		base, _ := json.Marshal(MessageCreatedPayload{Type: "t"})
		bodySize := 7900 - len(base) - 20
		body := make([]byte, bodySize)
		for i := range body {
			body[i] = 'b'
		}
		payload, _ := json.Marshal(MessageCreatedPayload{
			Type: "t",
			Body: string(body),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(MessageCreatedPayload{
			Type:           EventTypeMessageCreated,
			MessageID:      "msg-1",
			ConversationID: "t-1:+15550001111",
			TenantID:       "t-1",
			Body:           "hello",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "msg-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		longBody := make([]byte, 8000)
		for i := range longBody {
			longBody[i] = 'x'
		}
		payload, _ := json.Marshal(MessageCreatedPayload{
			Type:           EventTypeMessageCreated,
			MessageID:      "msg-456",
			ConversationID: "t-9:visitor-7",
			TenantID:       "t-9",
			Body:           string(longBody),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "t-9:visitor-7")
	})

	t.Run("truncated payload without conversation_id omits it", func(t *testing.T) {
		longName := make([]byte, 8000)
		for i := range longName {
			longName[i] = 'x'
		}
		payload, _ := json.Marshal(LeadCapturedPayload{
			Type:     EventTypeLeadCaptured,
			LeadID:   "lead-789",
			TenantID: "t-9",
			Name:     string(longName),
		})

		result, err := injectDBEventIDAndTruncate(payload, 99)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":99`)
		assert.NotContains(t, result, "conversation_id")
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}
