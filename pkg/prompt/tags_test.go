package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReplyTags(t *testing.T) {
	t.Run("full reply with lead and analysis", func(t *testing.T) {
		reply := `Thanks Sam! I've noted your details and we'll be in touch shortly.
[ACTION: LEAD_CAPTURE | {"name": "Sam Rivera", "email": "sam@example.com", "phone": "+15551234567", "notes": "wants a demo"}]
[ANALYSIS: enquiry | Positive]`

		got := ParseReplyTags(reply)

		assert.Equal(t, "Thanks Sam! I've noted your details and we'll be in touch shortly.", got.Text)
		require.NotNil(t, got.Lead)
		assert.Equal(t, "Sam Rivera", got.Lead.Name)
		assert.Equal(t, "sam@example.com", got.Lead.Email)
		assert.Equal(t, "+15551234567", got.Lead.Phone)
		assert.Equal(t, "wants a demo", got.Lead.Notes)
		assert.Equal(t, "enquiry", got.Intent)
		assert.Equal(t, "Positive", got.Sentiment)
		assert.False(t, got.Schedule)
	})

	t.Run("schedule action", func(t *testing.T) {
		reply := "Happy to get you booked in! [ACTION: SCHEDULE]\n[ANALYSIS: booking_request | Positive]"

		got := ParseReplyTags(reply)

		assert.True(t, got.Schedule)
		assert.Equal(t, "booking_request", got.Intent)
		assert.Equal(t, "Happy to get you booked in!", got.Text)
	})

	t.Run("shortened booking intent normalized", func(t *testing.T) {
		got := ParseReplyTags("Sure!\n[ANALYSIS: Booking | Neutral]")
		assert.Equal(t, "booking_request", got.Intent)
	})

	t.Run("unknown intent dropped", func(t *testing.T) {
		got := ParseReplyTags("Sure!\n[ANALYSIS: cosmic | Confused]")
		assert.Empty(t, got.Intent)
		assert.Empty(t, got.Sentiment)
		assert.Equal(t, "Sure!", got.Text)
	})

	t.Run("malformed lead json dropped but still stripped", func(t *testing.T) {
		got := ParseReplyTags(`Noted. [ACTION: LEAD_CAPTURE | {"name": }]`)
		assert.Nil(t, got.Lead)
		assert.Equal(t, "Noted.", got.Text)
	})

	t.Run("empty lead payload ignored", func(t *testing.T) {
		got := ParseReplyTags(`Noted. [ACTION: LEAD_CAPTURE | {}]`)
		assert.Nil(t, got.Lead)
	})

	t.Run("plain reply untouched", func(t *testing.T) {
		got := ParseReplyTags("We open at 9am. Anything else?")
		assert.Equal(t, "We open at 9am. Anything else?", got.Text)
		assert.Nil(t, got.Lead)
		assert.Empty(t, got.Intent)
	})

	t.Run("case insensitive tags", func(t *testing.T) {
		got := ParseReplyTags("Done. [action: schedule] [analysis: pricing | neutral]")
		assert.True(t, got.Schedule)
		assert.Equal(t, "pricing", got.Intent)
	})
}
