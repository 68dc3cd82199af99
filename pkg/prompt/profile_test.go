package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt(t *testing.T) {
	profile := BusinessProfile{
		Name:               "Acme Dental",
		Industry:           "healthcare",
		Description:        "Family dental clinic",
		Services:           "Cleaning, whitening, implants",
		Tone:               "warm",
		Hours:              "Mon-Fri 9-17",
		Location:           "12 Main St",
		FAQ:                "Q: Do you take insurance? A: Yes.",
		CustomInstructions: "Never quote prices for implants.",
	}

	got := BuildSystemPrompt(profile)

	assert.Contains(t, got, "You are the AI assistant for Acme Dental.")
	assert.Contains(t, got, "INDUSTRY: HEALTHCARE / CLINIC")
	assert.Contains(t, got, "About Acme Dental: Family dental clinic.")
	assert.Contains(t, got, "Cleaning, whitening, implants")
	assert.Contains(t, got, "Use a warm tone")
	assert.Contains(t, got, "Operating Hours: Mon-Fri 9-17")
	assert.Contains(t, got, "Location: 12 Main St")
	assert.Contains(t, got, "Do you take insurance?")
	assert.Contains(t, got, "STRICT CUSTOM RULES:\nNever quote prices for implants.")
	assert.Contains(t, got, "*** UNIVERSAL LEAD ENGINE ***")
	assert.Contains(t, got, "*** SAFETY ***")
	assert.Contains(t, got, "[ACTION: LEAD_CAPTURE")
	assert.Contains(t, got, "[ANALYSIS: <Intent> | <Sentiment>]")
}

func TestBuildSystemPromptEmptyProfile(t *testing.T) {
	got := BuildSystemPrompt(BusinessProfile{})

	assert.Contains(t, got, "You are the AI assistant for this business.")
	assert.Contains(t, got, "INDUSTRY: GENERAL\n")
	assert.NotContains(t, got, "About ")
	assert.Contains(t, got, "*** ACTION PROTOCOLS (CRITICAL) ***")
}

func TestBuildSystemPromptIndustryMatching(t *testing.T) {
	tests := []struct {
		name     string
		industry string
		want     string
	}{
		{name: "exact slug", industry: "real_estate", want: "INDUSTRY: REAL ESTATE"},
		{name: "display name with spaces", industry: "Real Estate Agency", want: "INDUSTRY: REAL ESTATE"},
		{name: "unknown industry gets general playbook", industry: "quantum plumbing", want: "INDUSTRY: GENERAL BUSINESS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSystemPrompt(BusinessProfile{Name: "X", Industry: tt.industry})
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestBuildSystemPromptTruncatesKnowledgeDocs(t *testing.T) {
	long := strings.Repeat("z", knowledgeDocLimit+500)
	profile := BusinessProfile{
		Name: "Acme",
		KnowledgeDocs: []KnowledgeDoc{
			{Title: "Pricing Guide", Content: long},
			{Content: "short doc"},
		},
	}

	got := BuildSystemPrompt(profile)

	assert.Contains(t, got, "*** BUSINESS KNOWLEDGE BASE ***")
	assert.Contains(t, got, "SOURCE: Pricing Guide")
	assert.Contains(t, got, "SOURCE: Document")
	assert.Contains(t, got, "short doc")
	assert.NotContains(t, got, strings.Repeat("z", knowledgeDocLimit+1))
	assert.Contains(t, got, strings.Repeat("z", knowledgeDocLimit))
}
