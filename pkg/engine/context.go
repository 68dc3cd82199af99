// Package engine implements the workflow DAG interpreter: the execution
// context document, the per-kind node executors, and edge navigation.
// Durable dispatch (claiming and running step tasks) lives in pkg/queue;
// this package is the pure core it drives.
package engine

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Reserved context keys. Trigger and tenant are set at execution creation
// and never overwritten by node outputs; the rest are orchestration
// vocabulary shared between executors and the dispatcher.
const (
	KeyTrigger       = "trigger"
	KeyTenant        = "tenant"
	KeySignal        = "orchestration_signal"
	KeyResumeNodeID  = "resume_node_id"
	KeySeconds       = "seconds"
	KeyConditionEval = "condition_eval"
	KeyExtracted     = "extracted"
	KeyAIOutput      = "ai_output"
	KeyLatestReply   = "latest_reply"
	KeyLatestTrigger = "latest_trigger"
	KeyUserReply     = "user_reply"
	KeyPendingSlots  = "pending_slots"
	KeyLeadID        = "lead_id"
	KeyTicketID      = "ticket_id"
)

// Orchestration signal values.
const (
	SignalSuspend = "suspend"
	SignalDelay   = "delay"
)

var placeholderRe = regexp.MustCompile(`\{\{(.*?)\}\}`)

// Context is the per-execution document of merged trigger data and node
// outputs. It round-trips through the executions table as JSON, so values
// carry JSON types (float64 for numbers, map[string]any for objects).
type Context map[string]any

// NewContext builds the initial context for a fresh execution.
func NewContext(tenantID string, trigger map[string]any) Context {
	if trigger == nil {
		trigger = map[string]any{}
	}
	return Context{
		KeyTrigger: trigger,
		KeyTenant:  tenantID,
	}
}

// FromStored wraps a context document loaded from the database.
func FromStored(doc map[string]any) Context {
	if doc == nil {
		doc = map[string]any{}
	}
	return Context(doc)
}

// TenantID returns context.tenant, or "".
func (c Context) TenantID() string {
	s, _ := c[KeyTenant].(string)
	return s
}

// Trigger returns context.trigger, never nil.
func (c Context) Trigger() map[string]any {
	if t, ok := c[KeyTrigger].(map[string]any); ok {
		return t
	}
	return map[string]any{}
}

// Resolve looks up a dotted path in the context. Bare keys fall back to
// context.trigger[key] when absent at the root. Missing paths resolve
// to nil.
func (c Context) Resolve(path string) any {
	if path == "" {
		return nil
	}

	parts := strings.Split(path, ".")

	var val any = map[string]any(c)
	for _, p := range parts {
		m, ok := val.(map[string]any)
		if !ok {
			val = nil
			break
		}
		val = m[p]
	}

	// Bare key fallback: a key not present at the root may live inside
	// the trigger event.
	if val == nil && len(parts) == 1 {
		val = c.Trigger()[path]
	}

	return val
}

// ResolveString resolves a path and stringifies the value. The second
// return is false when the path is missing.
func (c Context) ResolveString(path string) (string, bool) {
	v := c.Resolve(path)
	if v == nil {
		return "", false
	}
	return Stringify(v), true
}

// Hydrate rewrites {{ expr }} placeholders in text using Resolve.
// Unresolvable placeholders are left intact so partial hydration is
// observable downstream.
func (c Context) Hydrate(text string) string {
	return placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		expr := strings.TrimSpace(placeholderRe.FindStringSubmatch(match)[1])
		val := c.Resolve(expr)
		if val == nil {
			return match
		}
		return Stringify(val)
	})
}

// HydrateConfigValue applies Hydrate to string values. Maps and slices
// are walked recursively; every other type passes through untouched.
func (c Context) HydrateConfigValue(v any) any {
	switch tv := v.(type) {
	case string:
		return c.Hydrate(tv)
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, inner := range tv {
			out[k] = c.HydrateConfigValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(tv))
		for i, inner := range tv {
			out[i] = c.HydrateConfigValue(inner)
		}
		return out
	default:
		return v
	}
}

// Merge applies a node output to the context, last writer wins at the top
// level. The orchestration signal and its companions stay out of the
// document: they are consumed by the dispatcher from the step output and
// must not leak into later hydrations. Trigger and tenant are never
// overwritten.
func (c Context) Merge(output map[string]any) {
	for k, v := range output {
		switch k {
		case KeySignal, KeyResumeNodeID, KeySeconds:
			continue
		case KeyTrigger, KeyTenant:
			continue
		}
		c[k] = v
	}
}

// LatestReply returns the most recent inbound message merged in by a
// resume, or "".
func (c Context) LatestReply() string {
	s, _ := c[KeyLatestReply].(string)
	return s
}

// Doc returns the underlying document for persistence.
func (c Context) Doc() map[string]any {
	return map[string]any(c)
}

// Stringify renders a context value for template substitution. Numbers
// print without exponent notation; composite values render as JSON.
func Stringify(v any) string {
	switch tv := v.(type) {
	case string:
		return tv
	case float64:
		return strconv.FormatFloat(tv, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(tv), 'f', -1, 32)
	case int:
		return strconv.Itoa(tv)
	case int64:
		return strconv.FormatInt(tv, 10)
	case bool:
		return strconv.FormatBool(tv)
	case nil:
		return ""
	case map[string]any, []any:
		b, err := json.Marshal(tv)
		if err != nil {
			return fmt.Sprintf("%v", tv)
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", tv)
	}
}
