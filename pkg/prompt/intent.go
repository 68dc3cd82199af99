package prompt

import (
	"log/slog"
	"regexp"
	"strings"
)

// IntentGeneral is returned when no keyword rule matches.
const IntentGeneral = "general"

// intentRules are evaluated in order; the first whole-word match wins.
// Specific commercial intents come before greeting so "hi, how much is
// it" classifies as pricing.
var intentRules = []struct {
	intent string
	re     *regexp.Regexp
}{
	{"booking_request", wordRe("book", "booking", "appointment", "schedule", "reserve", "reservation", "availability", "available", "slot")},
	{"pricing", wordRe("price", "prices", "pricing", "cost", "costs", "how much", "quote", "rate", "rates", "fee", "fees")},
	{"complaint", wordRe("complaint", "refund", "terrible", "awful", "unacceptable", "disappointed", "angry")},
	{"human", wordRe("human", "agent", "representative", "real person", "speak to someone")},
	{"support", wordRe("help", "support", "issue", "problem", "error", "broken", "not working")},
	{"integration", wordRe("integration", "integrate", "api", "webhook", "connect")},
	{"features", wordRe("feature", "features", "functionality", "capabilities")},
	{"feedback", wordRe("feedback", "suggestion", "suggest")},
	{"enquiry", wordRe("interested", "more information", "tell me more", "learn more", "details")},
	{"greeting", wordRe("hello", "hi", "hey", "good morning", "good afternoon", "good evening")},
}

func wordRe(keywords ...string) *regexp.Regexp {
	escaped := make([]string, len(keywords))
	for i, kw := range keywords {
		escaped[i] = regexp.QuoteMeta(kw)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(escaped, "|") + `)\b`)
}

// DetectIntent classifies a message with keyword rules. This runs before
// any LLM call so trigger matching works even when the provider is down;
// the fallback reply's analysis tag can refine it later.
func DetectIntent(message string) string {
	lowered := strings.ToLower(message)
	for _, rule := range intentRules {
		if rule.re.MatchString(lowered) {
			return rule.intent
		}
	}
	return IntentGeneral
}

var (
	positiveWords = []string{"great", "thank", "love", "good", "amazing", "help", "cool", "nice", "awesome"}
	negativeWords = []string{"bad", "terrible", "hate", "slow", "broken", "worst", "stupid", "useless", "fail"}
)

// AnalyzeSentiment scores a message by counting positive and negative
// marker words.
func AnalyzeSentiment(message string) string {
	lowered := strings.ToLower(message)

	pos, neg := 0, 0
	for _, w := range positiveWords {
		if strings.Contains(lowered, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lowered, w) {
			neg++
		}
	}

	switch {
	case pos > neg:
		return "Positive"
	case neg > pos:
		return "Negative"
	default:
		return "Neutral"
	}
}

var unsafeKeywords = []string{"suicide", "kill", "murder", "bomb", "terrorist", "hack"}

// CheckSafety returns false when the message trips the unsafe-keyword
// screen. It runs before every LLM call.
func CheckSafety(message string) bool {
	lowered := strings.ToLower(message)
	for _, word := range unsafeKeywords {
		if strings.Contains(lowered, word) {
			slog.Warn("Safety violation detected", "keyword", word)
			return false
		}
	}
	return true
}
