package channels

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/pkg/services"
)

// recordingSender captures deliveries for assertion.
type recordingSender struct {
	calls []sendCall
	err   error
}

type sendCall struct {
	tenantID  string
	recipient string
	text      string
}

func (r *recordingSender) Send(_ context.Context, tenantID, recipient, text string) error {
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, sendCall{tenantID: tenantID, recipient: recipient, text: text})
	return nil
}

// recordingStore captures StoreMessage inputs and hands back a canned message.
type recordingStore struct {
	inputs []services.StoreMessageInput
	err    error
}

func (r *recordingStore) StoreMessage(_ context.Context, in services.StoreMessageInput) (*ent.Message, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.inputs = append(r.inputs, in)
	return &ent.Message{
		ID:       "msg-1",
		TenantID: in.TenantID,
		Body:     in.Body,
	}, nil
}

// recordingPublisher captures published messages.
type recordingPublisher struct {
	messages []*ent.Message
	err      error
}

func (r *recordingPublisher) PublishMessageCreated(_ context.Context, msg *ent.Message) error {
	if r.err != nil {
		return r.err
	}
	r.messages = append(r.messages, msg)
	return nil
}

func TestRegistry_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("routes by channel", func(t *testing.T) {
		web := &recordingSender{}
		whatsapp := &recordingSender{}
		registry := NewRegistry(web, whatsapp)

		require.NoError(t, registry.Send(ctx, "t-1", "whatsapp", "+15550001111", "hi"))
		require.NoError(t, registry.Send(ctx, "t-1", "web", "user-9", "hello"))

		require.Len(t, whatsapp.calls, 1)
		assert.Equal(t, "+15550001111", whatsapp.calls[0].recipient)
		require.Len(t, web.calls, 1)
		assert.Equal(t, "user-9", web.calls[0].recipient)
	})

	t.Run("unknown channel falls back to web", func(t *testing.T) {
		web := &recordingSender{}
		registry := NewRegistry(web, &recordingSender{})

		require.NoError(t, registry.Send(ctx, "t-1", "telegram", "user-9", "hello"))

		require.Len(t, web.calls, 1)
		assert.Equal(t, "hello", web.calls[0].text)
	})

	t.Run("nil whatsapp sender routes whatsapp to web", func(t *testing.T) {
		web := &recordingSender{}
		registry := NewRegistry(web, nil)

		require.NoError(t, registry.Send(ctx, "t-1", "whatsapp", "+15550001111", "hi"))

		require.Len(t, web.calls, 1)
	})

	t.Run("sender errors propagate", func(t *testing.T) {
		web := &recordingSender{err: errors.New("journal down")}
		registry := NewRegistry(web, nil)

		err := registry.Send(ctx, "t-1", "web", "user-9", "hello")
		assert.ErrorContains(t, err, "journal down")
	})

	t.Run("nil web sender panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewRegistry(nil, &recordingSender{})
		})
	})
}

func TestWebSender_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("stores assistant message and publishes", func(t *testing.T) {
		store := &recordingStore{}
		publisher := &recordingPublisher{}
		sender := NewWebSender(store, publisher)

		require.NoError(t, sender.Send(ctx, "t-1", "user-9", "Your booking is confirmed."))

		require.Len(t, store.inputs, 1)
		in := store.inputs[0]
		assert.Equal(t, "t-1", in.TenantID)
		assert.Equal(t, "user-9", in.Participant)
		assert.Equal(t, "web", in.Channel)
		assert.Equal(t, "assistant", in.Sender)
		assert.Equal(t, "Your booking is confirmed.", in.Body)

		require.Len(t, publisher.messages, 1)
		assert.Equal(t, "Your booking is confirmed.", publisher.messages[0].Body)
	})

	t.Run("store failure fails the send", func(t *testing.T) {
		store := &recordingStore{err: errors.New("db down")}
		sender := NewWebSender(store, nil)

		err := sender.Send(ctx, "t-1", "user-9", "hello")
		assert.ErrorContains(t, err, "db down")
	})

	t.Run("publish failure does not fail the send", func(t *testing.T) {
		store := &recordingStore{}
		publisher := &recordingPublisher{err: errors.New("notify down")}
		sender := NewWebSender(store, publisher)

		require.NoError(t, sender.Send(ctx, "t-1", "user-9", "hello"))
		require.Len(t, store.inputs, 1)
	})

	t.Run("nil publisher is fine", func(t *testing.T) {
		sender := NewWebSender(&recordingStore{}, nil)
		require.NoError(t, sender.Send(ctx, "t-1", "user-9", "hello"))
	})
}
