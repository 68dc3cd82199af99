package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent/conversation"
	"github.com/interacai/flowcore/ent/message"
	"github.com/interacai/flowcore/pkg/llm"
	"github.com/interacai/flowcore/pkg/models"
	testdb "github.com/interacai/flowcore/test/database"
)

func TestConversationService_StoreMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	convService := NewConversationService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")

	t.Run("creates conversation on first contact", func(t *testing.T) {
		msg, err := convService.StoreMessage(ctx, StoreMessageInput{
			TenantID:    tenant.ID,
			Participant: "+15551230001",
			Channel:     models.ChannelWhatsApp,
			Sender:      "user",
			Body:        "Do you take walk-ins?",
			Intent:      "question",
			Sentiment:   "neutral",
		})
		require.NoError(t, err)
		assert.Equal(t, ConversationID(tenant.ID, "+15551230001"), msg.ConversationID)
		assert.Equal(t, message.SenderUser, msg.Sender)
		assert.Equal(t, message.ChannelWhatsapp, msg.Channel)

		conv, err := client.Conversation.Get(ctx, msg.ConversationID)
		require.NoError(t, err)
		assert.Equal(t, "+15551230001", conv.Participant)
		assert.Equal(t, conversation.ChannelWhatsapp, conv.Channel)
		assert.Equal(t, "Do you take walk-ins?", conv.LastMessage)
		assert.Equal(t, 1, conv.UnreadCount)
		assert.Equal(t, "question", *conv.LastIntent)
		assert.Equal(t, "neutral", *conv.LastSentiment)
	})

	t.Run("assistant reply leaves unread count alone", func(t *testing.T) {
		_, err := convService.StoreMessage(ctx, StoreMessageInput{
			TenantID:    tenant.ID,
			Participant: "+15551230001",
			Channel:     models.ChannelWhatsApp,
			Sender:      "assistant",
			Body:        "Yes, weekdays until 5pm.",
		})
		require.NoError(t, err)

		conv, err := client.Conversation.Get(ctx, ConversationID(tenant.ID, "+15551230001"))
		require.NoError(t, err)
		assert.Equal(t, 1, conv.UnreadCount)
		assert.Equal(t, "Yes, weekdays until 5pm.", conv.LastMessage)
		// Intent of the last user message is preserved.
		assert.Equal(t, "question", *conv.LastIntent)
	})

	t.Run("each user message bumps unread", func(t *testing.T) {
		_, err := convService.StoreMessage(ctx, StoreMessageInput{
			TenantID:    tenant.ID,
			Participant: "+15551230001",
			Sender:      "user",
			Body:        "Great, see you then.",
		})
		require.NoError(t, err)

		conv, err := client.Conversation.Get(ctx, ConversationID(tenant.ID, "+15551230001"))
		require.NoError(t, err)
		assert.Equal(t, 2, conv.UnreadCount)
	})

	t.Run("defaults channel to web", func(t *testing.T) {
		msg, err := convService.StoreMessage(ctx, StoreMessageInput{
			TenantID:    tenant.ID,
			Participant: "visitor-42",
			Sender:      "user",
			Body:        "hi",
		})
		require.NoError(t, err)
		assert.Equal(t, message.ChannelWeb, msg.Channel)

		conv, err := client.Conversation.Get(ctx, msg.ConversationID)
		require.NoError(t, err)
		assert.Equal(t, conversation.ChannelWeb, conv.Channel)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := convService.StoreMessage(ctx, StoreMessageInput{
			Participant: "p", Sender: "user", Body: "x",
		})
		assert.True(t, IsValidationError(err))

		_, err = convService.StoreMessage(ctx, StoreMessageInput{
			TenantID: tenant.ID, Sender: "user", Body: "x",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown sender", func(t *testing.T) {
		_, err := convService.StoreMessage(ctx, StoreMessageInput{
			TenantID:    tenant.ID,
			Participant: "visitor-42",
			Sender:      "bot",
			Body:        "x",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestConversationService_History(t *testing.T) {
	client := testdb.NewTestClient(t)
	convService := NewConversationService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")

	script := []struct {
		sender string
		body   string
	}{
		{"user", "How much is a cleaning?"},
		{"assistant", "A standard cleaning is $80."},
		{"agent", "We also have a new-patient special."},
		{"user", "Book me in."},
	}
	for _, m := range script {
		_, err := convService.StoreMessage(ctx, StoreMessageInput{
			TenantID:    tenant.ID,
			Participant: "+15551230002",
			Sender:      m.sender,
			Body:        m.body,
		})
		require.NoError(t, err)
	}

	t.Run("returns chronological turns with mapped roles", func(t *testing.T) {
		turns, err := convService.History(ctx, tenant.ID, "+15551230002", 10)
		require.NoError(t, err)
		require.Len(t, turns, 4)
		assert.Equal(t, llm.Turn{Role: llm.RoleUser, Content: "How much is a cleaning?"}, turns[0])
		assert.Equal(t, llm.RoleAssistant, turns[1].Role)
		// Agent messages read as assistant turns.
		assert.Equal(t, llm.Turn{Role: llm.RoleAssistant, Content: "We also have a new-patient special."}, turns[2])
		assert.Equal(t, llm.Turn{Role: llm.RoleUser, Content: "Book me in."}, turns[3])
	})

	t.Run("limit keeps the most recent turns", func(t *testing.T) {
		turns, err := convService.History(ctx, tenant.ID, "+15551230002", 2)
		require.NoError(t, err)
		require.Len(t, turns, 2)
		assert.Equal(t, "We also have a new-patient special.", turns[0].Content)
		assert.Equal(t, "Book me in.", turns[1].Content)
	})

	t.Run("zero limit returns nothing", func(t *testing.T) {
		turns, err := convService.History(ctx, tenant.ID, "+15551230002", 0)
		require.NoError(t, err)
		assert.Empty(t, turns)
	})

	t.Run("unknown participant returns empty history", func(t *testing.T) {
		turns, err := convService.History(ctx, tenant.ID, "+19990000000", 10)
		require.NoError(t, err)
		assert.Empty(t, turns)
	})
}

func TestConversationService_Listing(t *testing.T) {
	client := testdb.NewTestClient(t)
	convService := NewConversationService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")

	for _, participant := range []string{"first", "second"} {
		_, err := convService.StoreMessage(ctx, StoreMessageInput{
			TenantID:    tenant.ID,
			Participant: participant,
			Sender:      "user",
			Body:        "hello from " + participant,
		})
		require.NoError(t, err)
	}

	t.Run("lists most recently active first", func(t *testing.T) {
		convs, err := convService.ListConversations(ctx, tenant.ID)
		require.NoError(t, err)
		require.Len(t, convs, 2)
		assert.Equal(t, "second", convs[0].Participant)
		assert.Equal(t, "first", convs[1].Participant)
	})

	t.Run("lists messages in order", func(t *testing.T) {
		convID := ConversationID(tenant.ID, "first")
		_, err := convService.StoreMessage(ctx, StoreMessageInput{
			TenantID:    tenant.ID,
			Participant: "first",
			Sender:      "assistant",
			Body:        "hi there",
		})
		require.NoError(t, err)

		msgs, err := convService.ListMessages(ctx, tenant.ID, convID, 0)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "hello from first", msgs[0].Body)
		assert.Equal(t, "hi there", msgs[1].Body)
	})

	t.Run("returns ErrNotFound for unknown conversation", func(t *testing.T) {
		_, err := convService.ListMessages(ctx, tenant.ID, "missing:thread", 0)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("mark read zeroes the counter", func(t *testing.T) {
		convID := ConversationID(tenant.ID, "first")
		require.NoError(t, convService.MarkRead(ctx, tenant.ID, convID))

		conv, err := client.Conversation.Get(ctx, convID)
		require.NoError(t, err)
		assert.Zero(t, conv.UnreadCount)
	})

	t.Run("mark read on unknown conversation", func(t *testing.T) {
		err := convService.MarkRead(ctx, tenant.ID, "missing:thread")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
