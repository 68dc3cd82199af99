package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
	testdb "github.com/interacai/flowcore/test/database"
)

func insertEvent(t *testing.T, client *ent.Client, channel string, age time.Duration) *ent.Event {
	t.Helper()
	evt, err := client.Event.Create().
		SetChannel(channel).
		SetPayload(map[string]any{"type": "test"}).
		SetCreatedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return evt
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	channel := "conversation:conv-1"
	evt1 := insertEvent(t, client.Client, channel, 0)
	evt2 := insertEvent(t, client.Client, channel, 0)
	insertEvent(t, client.Client, "conversation:other", 0)

	t.Run("retrieves events after sinceID", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, evt1.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, evt2.ID, events[0].ID)
	})

	t.Run("retrieves all channel events when sinceID is 0", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("orders oldest first", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, evt1.ID, events[0].ID)
		assert.Equal(t, evt2.ID, events[1].ID)
	})

	t.Run("respects limit parameter", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, 0, 1)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, evt1.ID, events[0].ID)
	})

	t.Run("does not leak other channels", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		for _, evt := range events {
			assert.Equal(t, channel, evt.Channel)
		}
	})
}

func TestEventService_PruneExpired(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	channel := "conversation:conv-prune"
	insertEvent(t, client.Client, channel, 2*time.Hour)
	insertEvent(t, client.Client, channel, 90*time.Minute)
	fresh := insertEvent(t, client.Client, channel, 0)

	count, err := eventService.PruneExpired(ctx, 1*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	events, err := eventService.GetEventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 1, "only the fresh event survives")
	assert.Equal(t, fresh.ID, events[0].ID)
}

func TestEventService_PruneExpired_NothingToPrune(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)

	insertEvent(t, client.Client, "conversation:conv-keep", 0)

	count, err := eventService.PruneExpired(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, count)
}
