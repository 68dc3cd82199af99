package prompt

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
)

var (
	leadActionRe     = regexp.MustCompile(`(?i)\[ACTION:\s*LEAD_CAPTURE\s*\|\s*(\{.*?\})\s*\]`)
	scheduleActionRe = regexp.MustCompile(`(?i)\[ACTION:\s*SCHEDULE\s*\]`)
	analysisRe       = regexp.MustCompile(`(?i)\[ANALYSIS:\s*(.*?)\s*\|\s*(.*?)\s*\]`)
)

// allowedIntents is the closed set the assistant may report in its
// analysis tag. Anything else is ignored in favor of the keyword
// detector's verdict.
var allowedIntents = map[string]bool{
	"booking_request": true,
	"enquiry":         true,
	"pricing":         true,
	"support":         true,
	"greeting":        true,
	"features":        true,
	"integration":     true,
	"complaint":       true,
	"feedback":        true,
	"human":           true,
}

// LeadAction is the payload of a LEAD_CAPTURE tag.
type LeadAction struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// ReplyAnalysis is a fallback reply split into its user-facing text and
// the machine-readable tags the assistant appended.
type ReplyAnalysis struct {
	// Text is the reply with every tag stripped.
	Text string
	// Intent and Sentiment are set only when the analysis tag carried a
	// recognized intent.
	Intent    string
	Sentiment string
	// Lead is non-nil when the reply carried a parseable LEAD_CAPTURE tag.
	Lead *LeadAction
	// Schedule reports an [ACTION: SCHEDULE] tag.
	Schedule bool
}

// ParseReplyTags extracts action and analysis tags from an assistant
// reply. Malformed tags are dropped; the user never sees any of them.
func ParseReplyTags(reply string) ReplyAnalysis {
	var analysis ReplyAnalysis

	if m := leadActionRe.FindStringSubmatch(reply); m != nil {
		var lead LeadAction
		if err := json.Unmarshal([]byte(m[1]), &lead); err != nil {
			slog.Warn("Dropping malformed LEAD_CAPTURE tag", "error", err)
		} else if lead != (LeadAction{}) {
			analysis.Lead = &lead
		}
	}

	analysis.Schedule = scheduleActionRe.MatchString(reply)

	if m := analysisRe.FindStringSubmatch(reply); m != nil {
		intent := strings.ToLower(strings.TrimSpace(m[1]))
		// The model sometimes shortens booking_request.
		if intent == "booking" {
			intent = "booking_request"
		}
		if allowedIntents[intent] {
			analysis.Intent = intent
			analysis.Sentiment = strings.TrimSpace(m[2])
		}
	}

	text := leadActionRe.ReplaceAllString(reply, "")
	text = scheduleActionRe.ReplaceAllString(text, "")
	text = analysisRe.ReplaceAllString(text, "")
	analysis.Text = strings.TrimSpace(text)

	return analysis
}
