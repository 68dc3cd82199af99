package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/pkg/engine"
)

var contactFields = []engine.ExtractField{
	{Name: "email", Type: "string", Description: "customer email address"},
	{Name: "budget", Type: "number", Description: "stated budget"},
}

func TestExtract(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		client := &fakeClient{response: `{"email": "sam@example.com", "budget": 1200}`}
		x := NewExtractor(client)

		got, err := x.Extract(context.Background(), "tenant-a", contactFields, "my email is sam@example.com, budget 1200")
		require.NoError(t, err)

		assert.Equal(t, "sam@example.com", got["email"])
		assert.Equal(t, 1200.0, got["budget"])
	})

	t.Run("code fences stripped", func(t *testing.T) {
		client := &fakeClient{response: "```json\n{\"email\": \"sam@example.com\", \"budget\": null}\n```"}
		x := NewExtractor(client)

		got, err := x.Extract(context.Background(), "tenant-a", contactFields, "text")
		require.NoError(t, err)

		assert.Equal(t, "sam@example.com", got["email"])
		assert.Nil(t, got["budget"])
	})

	t.Run("currency strings coerced for number fields", func(t *testing.T) {
		client := &fakeClient{response: `{"email": null, "budget": "$1,200.50"}`}
		x := NewExtractor(client)

		got, err := x.Extract(context.Background(), "tenant-a", contactFields, "text")
		require.NoError(t, err)

		assert.Equal(t, 1200.50, got["budget"])
	})

	t.Run("string fields are not coerced", func(t *testing.T) {
		client := &fakeClient{response: `{"email": "$weird", "budget": null}`}
		x := NewExtractor(client)

		got, err := x.Extract(context.Background(), "tenant-a", contactFields, "text")
		require.NoError(t, err)

		assert.Equal(t, "$weird", got["email"])
	})

	t.Run("schema listed in system prompt", func(t *testing.T) {
		client := &fakeClient{response: `{}`}
		x := NewExtractor(client)

		_, err := x.Extract(context.Background(), "tenant-a", contactFields, "text")
		require.NoError(t, err)

		assert.Contains(t, client.lastReq.System, "- email (string): customer email address")
		assert.Contains(t, client.lastReq.System, "- budget (number): stated budget")
		require.NotNil(t, client.lastReq.Temperature)
		assert.InDelta(t, 0.1, float64(*client.lastReq.Temperature), 0.001)
	})

	t.Run("prose response fails softly", func(t *testing.T) {
		client := &fakeClient{response: "The email seems to be sam@example.com"}
		x := NewExtractor(client)

		_, err := x.Extract(context.Background(), "tenant-a", contactFields, "text")
		assert.ErrorIs(t, err, ErrUnparseable)
	})

	t.Run("provider error propagates", func(t *testing.T) {
		client := &fakeClient{err: errors.New("boom")}
		x := NewExtractor(client)

		_, err := x.Extract(context.Background(), "tenant-a", contactFields, "text")
		assert.Error(t, err)
	})

	t.Run("nil client is not configured", func(t *testing.T) {
		x := NewExtractor(nil)

		_, err := x.Extract(context.Background(), "tenant-a", contactFields, "text")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestSelectSlot(t *testing.T) {
	t.Run("model answers with a digit", func(t *testing.T) {
		client := &fakeClient{response: "2"}
		x := NewExtractor(client)

		n, ok := x.SelectSlot(context.Background(), "tenant-a", "the second one", 3)
		assert.True(t, ok)
		assert.Equal(t, 2, n)
	})

	t.Run("model answers none", func(t *testing.T) {
		client := &fakeClient{response: "none"}
		x := NewExtractor(client)

		_, ok := x.SelectSlot(context.Background(), "tenant-a", "maybe later", 3)
		assert.False(t, ok)
	})

	t.Run("model answer with trailing prose", func(t *testing.T) {
		client := &fakeClient{response: "Slot 3 works best."}
		x := NewExtractor(client)

		n, ok := x.SelectSlot(context.Background(), "tenant-a", "third", 3)
		assert.True(t, ok)
		assert.Equal(t, 3, n)
	})

	t.Run("out of range rejected", func(t *testing.T) {
		client := &fakeClient{response: "7"}
		x := NewExtractor(client)

		_, ok := x.SelectSlot(context.Background(), "tenant-a", "seven", 3)
		assert.False(t, ok)
	})

	t.Run("provider failure falls back to scanning the reply", func(t *testing.T) {
		client := &fakeClient{err: errors.New("boom")}
		x := NewExtractor(client)

		n, ok := x.SelectSlot(context.Background(), "tenant-a", "I'll take the second option", 3)
		assert.True(t, ok)
		assert.Equal(t, 2, n)
	})

	t.Run("nil client scans digits", func(t *testing.T) {
		x := NewExtractor(nil)

		n, ok := x.SelectSlot(context.Background(), "tenant-a", "option 1 please", 3)
		assert.True(t, ok)
		assert.Equal(t, 1, n)

		_, ok = x.SelectSlot(context.Background(), "tenant-a", "none of those work", 3)
		assert.False(t, ok)
	})

	t.Run("zero slots never match", func(t *testing.T) {
		x := NewExtractor(nil)

		_, ok := x.SelectSlot(context.Background(), "tenant-a", "1", 0)
		assert.False(t, ok)
	})
}
