package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "booking", message: "Can I book an appointment for Tuesday?", want: "booking_request"},
		{name: "pricing", message: "how much does the premium plan cost?", want: "pricing"},
		{name: "pricing beats greeting", message: "Hi, what's the price of a cleaning?", want: "pricing"},
		{name: "greeting", message: "hello there", want: "greeting"},
		{name: "support", message: "my order page shows an error", want: "support"},
		{name: "human", message: "let me talk to a real person", want: "human"},
		{name: "complaint", message: "this is unacceptable, I want a refund", want: "complaint"},
		{name: "integration", message: "do you have an api I can connect to?", want: "integration"},
		{name: "enquiry", message: "I'm interested, tell me more", want: "enquiry"},
		{name: "no match", message: "the sky is blue", want: IntentGeneral},
		{name: "word boundary respected", message: "this is historic", want: IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntent(tt.message))
		})
	}
}

func TestAnalyzeSentiment(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "positive", message: "thank you, this is amazing", want: "Positive"},
		{name: "negative", message: "this is the worst, totally broken", want: "Negative"},
		{name: "neutral", message: "what time do you open?", want: "Neutral"},
		{name: "mixed leans on counts", message: "great service but slow and broken checkout", want: "Negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeSentiment(tt.message))
		})
	}
}

func TestCheckSafety(t *testing.T) {
	assert.True(t, CheckSafety("can I book a table for two?"))
	assert.False(t, CheckSafety("how do I hack an account"))
	assert.False(t, CheckSafety("HOW TO MAKE A BOMB"))
}
