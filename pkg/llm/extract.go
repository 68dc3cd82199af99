package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/interacai/flowcore/pkg/engine"
)

// ErrUnparseable means the model did not return valid JSON for an
// extraction request. Callers surface it as a soft output, never a step
// failure.
var ErrUnparseable = errors.New("extraction response is not valid json")

var (
	extractTemperature = float32(0.1)
	digitRe            = regexp.MustCompile(`[0-9]+`)
	currencyRe         = regexp.MustCompile(`[^0-9.\-]`)
)

// Extractor adapts the completion client to schema-constrained JSON
// extraction and slot selection.
type Extractor struct {
	client Client
}

// NewExtractor wraps a provider client. A nil client degrades to
// heuristics: extraction fails softly and slot selection falls back to
// digit matching.
func NewExtractor(client Client) *Extractor {
	return &Extractor{client: client}
}

// Extract pulls the requested fields out of conversational text. Missing
// fields come back as null; numeric fields are coerced to numbers even
// when the model returns "$1,200".
func (x *Extractor) Extract(ctx context.Context, tenantID string, fields []engine.ExtractField, text string) (map[string]any, error) {
	if x.client == nil {
		return nil, ErrNotConfigured
	}

	var schema strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&schema, "- %s (%s): %s\n", f.Name, f.Type, f.Description)
	}

	system := fmt.Sprintf(`You are an elite Data Extraction Specialist.
Extract the following fields from the conversation text:
%s
Rules:
1. Respond with ONLY a valid JSON object, nothing else.
2. Do not wrap the JSON in markdown formatting or code fences.
3. Use null for any field not present in the text.
4. Return numbers as bare numerals without currency symbols or separators.`, schema.String())

	response, err := x.client.Complete(ctx, Request{
		System:      system,
		User:        text,
		Temperature: &extractTemperature,
	})
	if err != nil {
		return nil, err
	}

	cleaned := stripCodeFences(response)
	var extracted map[string]any
	if err := json.Unmarshal([]byte(cleaned), &extracted); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnparseable, firstLine(cleaned))
	}

	coerceNumericFields(extracted, fields)
	return extracted, nil
}

// SelectSlot maps a free-form reply to a 1-based slot index. The model is
// asked for a bare digit or "none"; when it is unavailable, a digit or
// ordinal-word scan of the reply itself decides.
func (x *Extractor) SelectSlot(ctx context.Context, tenantID, reply string, slotCount int) (int, bool) {
	if slotCount <= 0 {
		return 0, false
	}
	if x.client == nil {
		return scanSlotReply(reply, slotCount)
	}

	system := fmt.Sprintf(`The customer was offered %d appointment slots, numbered 1 through %d.
Decide which slot the customer's reply refers to.
Respond with ONLY the slot number, or the word "none" if the reply does not pick any slot.`, slotCount, slotCount)

	response, err := x.client.Complete(ctx, Request{
		System:      system,
		User:        reply,
		Temperature: &extractTemperature,
	})
	if err != nil {
		return scanSlotReply(reply, slotCount)
	}

	answer := strings.ToLower(strings.TrimSpace(response))
	if strings.Contains(answer, "none") {
		return 0, false
	}
	if match := digitRe.FindString(answer); match != "" {
		if n, err := strconv.Atoi(match); err == nil && n >= 1 && n <= slotCount {
			return n, true
		}
	}
	return 0, false
}

// Ordinals before number words: "the second one" must pick 2, not 1.
var ordinalWords = []struct {
	word  string
	index int
}{
	{"first", 1}, {"second", 2}, {"third", 3},
	{"one", 1}, {"two", 2}, {"three", 3},
}

func scanSlotReply(reply string, slotCount int) (int, bool) {
	lower := strings.ToLower(reply)
	if strings.Contains(lower, "none") {
		return 0, false
	}
	if match := digitRe.FindString(lower); match != "" {
		if n, err := strconv.Atoi(match); err == nil && n >= 1 && n <= slotCount {
			return n, true
		}
	}
	for _, w := range ordinalWords {
		if w.index <= slotCount && strings.Contains(lower, w.word) {
			return w.index, true
		}
	}
	return 0, false
}

// stripCodeFences removes a surrounding markdown fence, with or without a
// language marker.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func coerceNumericFields(extracted map[string]any, fields []engine.ExtractField) {
	for _, f := range fields {
		if f.Type != "number" {
			continue
		}
		raw, ok := extracted[f.Name].(string)
		if !ok {
			continue
		}
		cleaned := currencyRe.ReplaceAllString(raw, "")
		if cleaned == "" {
			continue
		}
		if n, err := strconv.ParseFloat(cleaned, 64); err == nil {
			extracted[f.Name] = n
		}
	}
}

func firstLine(s string) string {
	if idx := strings.Index(s, "\n"); idx >= 0 {
		return s[:idx]
	}
	return s
}
