package slack

import (
	"strings"
	"testing"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
)

func strPtr(s string) *string { return &s }

func TestBuildTicketMessage(t *testing.T) {
	tk := &ent.Ticket{
		ID:             "tkt-1",
		TenantID:       "tenant-1",
		Subject:        "Refund request for order #4417",
		Description:    "Customer asked for a human after two failed automated answers.",
		Priority:       "high",
		ConversationID: strPtr("conv-9"),
	}
	blocks := BuildTicketMessage(tk, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, ":red_circle:")
	assert.Contains(t, header.Text.Text, "New support ticket")
	assert.Contains(t, header.Text.Text, "high priority")
	assert.Contains(t, header.Text.Text, "tenant-1")
	assert.Contains(t, header.Text.Text, "Refund request for order #4417")

	body := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, body.Text.Text, "two failed automated answers")

	action := blocks[2].(*goslack.ActionBlock)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "Open Conversation", btn.Text.Text)
	assert.Equal(t, "https://dash.example.com/conversations/conv-9", btn.URL)
}

func TestBuildTicketMessage_NoDescriptionNoConversation(t *testing.T) {
	tk := &ent.Ticket{
		ID:       "tkt-2",
		TenantID: "tenant-1",
		Subject:  "Call me back",
		Priority: "medium",
	}
	blocks := BuildTicketMessage(tk, "https://dash.example.com")

	require.Len(t, blocks, 2, "no description block when the ticket has none")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":large_orange_diamond:")
	assert.Contains(t, header.Text.Text, "Call me back")

	action := blocks[1].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Tickets", btn.Text.Text)
	assert.Equal(t, "https://dash.example.com/tickets", btn.URL)
}

func TestBuildTicketMessage_UnknownPriority(t *testing.T) {
	tk := &ent.Ticket{
		ID:       "tkt-3",
		TenantID: "tenant-1",
		Subject:  "Weird ticket",
		Priority: "urgent",
	}
	blocks := BuildTicketMessage(tk, "https://dash.example.com")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":question:")
}

func TestBuildTicketMessage_LongDescriptionTruncated(t *testing.T) {
	tk := &ent.Ticket{
		ID:          "tkt-4",
		TenantID:    "tenant-1",
		Subject:     "Very chatty customer",
		Description: strings.Repeat("a", maxBlockTextLength+500),
		Priority:    "low",
	}
	blocks := BuildTicketMessage(tk, "https://dash.example.com")

	body := blocks[1].(*goslack.SectionBlock)
	assert.Less(t, len(body.Text.Text), maxBlockTextLength+200)
	assert.Contains(t, body.Text.Text, "truncated")
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.True(t, len(result) < len(text))
		assert.Contains(t, result, "truncated")
	})

	t.Run("multi-byte runes not split", func(t *testing.T) {
		text := strings.Repeat("🔥", maxBlockTextLength+10)
		result := truncateForSlack(text)
		assert.Contains(t, result, "truncated")
		assert.True(t, utf8.ValidString(result), "result should be valid UTF-8")
		// Exactly maxBlockTextLength emoji runes before the suffix.
		prefix := strings.Split(result, "\n\n_...")[0]
		assert.Equal(t, maxBlockTextLength, utf8.RuneCountInString(prefix))
	})
}
