package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/interacai/flowcore/pkg/llm"
)

// Request kinds the scripted client routes on. The kind is recovered from
// the system prompt, so a script can pin entries to extraction or slot
// selection calls without caring how many generation calls happen first.
const (
	LLMKindGenerate   = "generate"
	LLMKindExtract    = "extract"
	LLMKindSelectSlot = "select_slot"
)

// LLMScriptEntry is one scripted provider response.
type LLMScriptEntry struct {
	// Text is the completion text to return.
	Text string

	// Error is returned instead of text when set.
	Error error

	// BlockUntilCancelled parks the call until its context is cancelled
	// (or WaitCh is closed), simulating a hung provider.
	BlockUntilCancelled bool

	// WaitCh releases a blocked entry early when closed. The entry then
	// returns its Text/Error as scripted.
	WaitCh chan struct{}

	// OnBlock runs once when a blocking entry starts waiting. Tests use
	// it to know the call is in flight.
	OnBlock func()
}

// ScriptedLLMClient is a deterministic llm.Client for end-to-end tests.
//
// Entries are consumed in two ways:
//   - Sequential entries answer calls in the order they arrive.
//   - Routed entries are keyed by request kind (generate, extract,
//     select_slot) and win over sequential entries for calls of that
//     kind.
//
// When the script runs dry the call errors, which surfaces as the
// gateway's canned degradation text — a loud signal that a scenario made
// more provider calls than its author expected.
type ScriptedLLMClient struct {
	mu         sync.Mutex
	sequential []LLMScriptEntry
	routed     map[string][]LLMScriptEntry
	requests   []llm.Request
}

// NewScriptedLLMClient creates an empty scripted client. Add entries
// before the scenario starts; adding mid-flight is safe but racy against
// in-flight calls.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{
		routed: make(map[string][]LLMScriptEntry),
	}
}

// AddSequential appends entries to the sequential script.
func (c *ScriptedLLMClient) AddSequential(entries ...LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sequential = append(c.sequential, entries...)
}

// AddRouted appends entries answered only by calls of the given kind.
func (c *ScriptedLLMClient) AddRouted(kind string, entries ...LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routed[kind] = append(c.routed[kind], entries...)
}

// Complete implements llm.Client.
func (c *ScriptedLLMClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	callNum := len(c.requests)
	entry, err := c.nextEntryLocked(classifyLLMRequest(req))
	c.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("%w (call %d)", err, callNum)
	}

	if entry.BlockUntilCancelled {
		if entry.OnBlock != nil {
			entry.OnBlock()
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-entry.WaitCh:
			// Released by the test; fall through to the scripted outcome.
		}
	}

	if entry.Error != nil {
		return "", entry.Error
	}
	return entry.Text, nil
}

// Model implements llm.Client.
func (c *ScriptedLLMClient) Model() string {
	return "scripted-test-model"
}

// CallCount returns how many completion calls arrived so far.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

// Requests returns a copy of every request received, in arrival order.
func (c *ScriptedLLMClient) Requests() []llm.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]llm.Request, len(c.requests))
	copy(out, c.requests)
	return out
}

// RequestsOfKind filters received requests by routed kind.
func (c *ScriptedLLMClient) RequestsOfKind(kind string) []llm.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []llm.Request
	for _, req := range c.requests {
		if classifyLLMRequest(req) == kind {
			out = append(out, req)
		}
	}
	return out
}

func (c *ScriptedLLMClient) nextEntryLocked(kind string) (LLMScriptEntry, error) {
	if queue := c.routed[kind]; len(queue) > 0 {
		entry := queue[0]
		c.routed[kind] = queue[1:]
		return entry, nil
	}
	if len(c.sequential) == 0 {
		return LLMScriptEntry{}, fmt.Errorf("scripted llm: no entries left for %s call", kind)
	}
	entry := c.sequential[0]
	c.sequential = c.sequential[1:]
	return entry, nil
}

// classifyLLMRequest recovers the call kind from the system prompt. The
// markers match the fixed prompt preambles of the extraction adapter; any
// other prompt is a generation call.
func classifyLLMRequest(req llm.Request) string {
	switch {
	case strings.Contains(req.System, "Data Extraction Specialist"):
		return LLMKindExtract
	case strings.Contains(req.System, "appointment slots, numbered"):
		return LLMKindSelectSlot
	default:
		return LLMKindGenerate
	}
}
