package channels

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/message"
	"github.com/interacai/flowcore/pkg/models"
	"github.com/interacai/flowcore/pkg/services"
)

// MessageStore appends one message to a conversation thread.
type MessageStore interface {
	StoreMessage(ctx context.Context, in services.StoreMessageInput) (*ent.Message, error)
}

// MessagePublisher announces a stored message to live dashboard streams.
// Publishing is best effort; senders never fail a delivery over it.
type MessagePublisher interface {
	PublishMessageCreated(ctx context.Context, msg *ent.Message) error
}

// WebSender delivers by journaling: the assistant message is stored on
// the participant's conversation and the web client picks it up by
// polling or through its websocket stream.
type WebSender struct {
	store     MessageStore
	publisher MessagePublisher
}

// NewWebSender creates a web sender. The publisher may be nil, in which
// case delivery relies on polling alone.
func NewWebSender(store MessageStore, publisher MessagePublisher) *WebSender {
	if store == nil {
		panic("NewWebSender: store must not be nil")
	}
	return &WebSender{store: store, publisher: publisher}
}

// Send stores the text as an assistant message for the participant.
func (s *WebSender) Send(ctx context.Context, tenantID, recipient, text string) error {
	msg, err := s.store.StoreMessage(ctx, services.StoreMessageInput{
		TenantID:    tenantID,
		Participant: recipient,
		Channel:     models.ChannelWeb,
		Sender:      string(message.SenderAssistant),
		Body:        text,
	})
	if err != nil {
		return fmt.Errorf("failed to store web message: %w", err)
	}

	publishMessage(ctx, s.publisher, msg)
	return nil
}

func publishMessage(ctx context.Context, publisher MessagePublisher, msg *ent.Message) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishMessageCreated(ctx, msg); err != nil {
		slog.Warn("Failed to publish message event",
			"tenant_id", msg.TenantID,
			"message_id", msg.ID,
			"error", err)
	}
}
