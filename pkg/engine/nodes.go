package engine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Node kinds understood by the interpreter.
const (
	KindStart              = "start"
	KindAction             = "action"
	KindAIInference        = "ai_inference"
	KindAIExtract          = "ai_extract"
	KindCondition          = "condition"
	KindWaitForReply       = "wait_for_reply"
	KindTimeDelay          = "time_delay"
	KindHTTPRequest        = "http_request"
	KindLeadCapture        = "lead_capture"
	KindAppointmentBooking = "appointment_booking"
	KindEnd                = "end"
)

// Action sub-types for action nodes.
const (
	ActionSendMessage  = "send_message"
	ActionCreateTicket = "create_ticket"
	ActionAssignAgent  = "assign_agent"
)

// ErrUnknownNodeKind indicates a node kind the interpreter cannot execute.
var ErrUnknownNodeKind = errors.New("unknown node kind")

// Node is the interpreter's view of a stored workflow node.
type Node struct {
	ID         string
	WorkflowID string
	Kind       string
	Config     map[string]any
}

// NodeConfig is the parsed, typed configuration of one node. It is a
// closed set: ParseNodeConfig is the only constructor, so an unknown kind
// is caught before any executor runs.
type NodeConfig interface {
	isNodeConfig()
}

// StartConfig marks the entry node. No options.
type StartConfig struct{}

// EndConfig marks an explicit terminal node. No options.
type EndConfig struct{}

// WaitForReplyConfig suspends the execution until the participant's next
// message. No options.
type WaitForReplyConfig struct{}

// ActionConfig drives send_message, create_ticket, and assign_agent.
type ActionConfig struct {
	ActionType string

	// send_message
	Template string
	ToNumber string

	// create_ticket
	Subject     string
	Description string
	Priority    string

	// assign_agent
	AgentID string
}

// AIInferenceConfig drives a free-form LLM turn scoped by a workflow goal.
type AIInferenceConfig struct {
	PromptTemplate string
	InputText      string
	AutoSend       bool
}

// ExtractField describes one attribute the extraction adapter should pull
// from conversation text.
type ExtractField struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// AIExtractConfig drives schema-constrained extraction.
type AIExtractConfig struct {
	Fields []ExtractField
}

// ConditionConfig evaluates one predicate over the context.
type ConditionConfig struct {
	Variable string
	Operator string
	Value    any
}

// TimeDelayConfig delays successor dispatch.
type TimeDelayConfig struct {
	Seconds int
}

// HTTPRequestConfig calls an external endpoint.
type HTTPRequestConfig struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    any
}

// LeadCaptureConfig composes a CRM lead from context.
type LeadCaptureConfig struct {
	Name   string
	Notes  string
	Status string
}

// BookingConfig drives the two-phase appointment node.
type BookingConfig struct {
	AppointmentTypeID string
}

func (StartConfig) isNodeConfig()        {}
func (EndConfig) isNodeConfig()          {}
func (WaitForReplyConfig) isNodeConfig() {}
func (ActionConfig) isNodeConfig()       {}
func (AIInferenceConfig) isNodeConfig()  {}
func (AIExtractConfig) isNodeConfig()    {}
func (ConditionConfig) isNodeConfig()    {}
func (TimeDelayConfig) isNodeConfig()    {}
func (HTTPRequestConfig) isNodeConfig()  {}
func (LeadCaptureConfig) isNodeConfig()  {}
func (BookingConfig) isNodeConfig()      {}

// ParseNodeConfig decodes a raw node config document into its typed
// variant. Unknown kinds return ErrUnknownNodeKind so bad definitions
// fail at the edge instead of inside an executor.
func ParseNodeConfig(kind string, raw map[string]any) (NodeConfig, error) {
	if raw == nil {
		raw = map[string]any{}
	}

	switch kind {
	case KindStart:
		return StartConfig{}, nil
	case KindEnd:
		return EndConfig{}, nil
	case KindWaitForReply:
		return WaitForReplyConfig{}, nil
	case KindAction:
		return ActionConfig{
			ActionType:  cfgString(raw, "action_type", ActionSendMessage),
			Template:    cfgString(raw, "template", ""),
			ToNumber:    cfgString(raw, "to_number", ""),
			Subject:     cfgString(raw, "subject", ""),
			Description: cfgString(raw, "description", ""),
			Priority:    cfgString(raw, "priority", ""),
			AgentID:     cfgString(raw, "agent_id", ""),
		}, nil
	case KindAIInference:
		return AIInferenceConfig{
			PromptTemplate: cfgString(raw, "prompt_template", ""),
			InputText:      cfgString(raw, "input_text", ""),
			AutoSend:       cfgBool(raw, "auto_send", true),
		}, nil
	case KindAIExtract:
		return AIExtractConfig{Fields: cfgFields(raw, "fields")}, nil
	case KindCondition:
		return ConditionConfig{
			Variable: cfgString(raw, "variable", ""),
			Operator: cfgString(raw, "operator", "contains"),
			Value:    raw["value"],
		}, nil
	case KindTimeDelay:
		return TimeDelayConfig{Seconds: cfgInt(raw, "seconds", 0)}, nil
	case KindHTTPRequest:
		return HTTPRequestConfig{
			URL:     cfgString(raw, "url", ""),
			Method:  cfgString(raw, "method", "GET"),
			Headers: cfgStringMap(raw, "headers"),
			Body:    raw["body"],
		}, nil
	case KindLeadCapture:
		return LeadCaptureConfig{
			Name:   cfgString(raw, "name", ""),
			Notes:  cfgString(raw, "notes", ""),
			Status: cfgString(raw, "status", "new"),
		}, nil
	case KindAppointmentBooking:
		return BookingConfig{
			AppointmentTypeID: cfgString(raw, "appointment_type_id", ""),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNodeKind, kind)
	}
}

// Signal is an orchestration instruction a node output carries back to
// the dispatcher.
type Signal struct {
	Kind         string // SignalSuspend or SignalDelay
	ResumeNodeID string // suspend only
	Seconds      int    // delay only
}

// SignalFromOutput extracts the orchestration signal from a node output,
// if any.
func SignalFromOutput(output map[string]any) (Signal, bool) {
	if output == nil {
		return Signal{}, false
	}
	kind, _ := output[KeySignal].(string)
	switch kind {
	case SignalSuspend:
		return Signal{
			Kind:         SignalSuspend,
			ResumeNodeID: cfgString(output, KeyResumeNodeID, ""),
		}, true
	case SignalDelay:
		return Signal{
			Kind:    SignalDelay,
			Seconds: cfgInt(output, KeySeconds, 0),
		}, true
	default:
		return Signal{}, false
	}
}

// Raw config documents arrive from JSON, so numbers are float64 and all
// shapes need defensive decoding.

func cfgString(raw map[string]any, key, fallback string) string {
	if v, ok := raw[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		return Stringify(v)
	}
	return fallback
}

func cfgBool(raw map[string]any, key string, fallback bool) bool {
	if v, ok := raw[key].(bool); ok {
		return v
	}
	return fallback
}

func cfgInt(raw map[string]any, key string, fallback int) int {
	switch v := raw[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fallback
		}
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func cfgStringMap(raw map[string]any, key string) map[string]string {
	m, ok := raw[key].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = Stringify(v)
	}
	return out
}

func cfgFields(raw map[string]any, key string) []ExtractField {
	list, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	fields := make([]ExtractField, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		f := ExtractField{
			Name:        cfgString(m, "name", ""),
			Type:        cfgString(m, "type", "string"),
			Description: cfgString(m, "description", ""),
		}
		if f.Name != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
