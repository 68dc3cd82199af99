package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Generator is the LLM gateway capability. Implementations absorb
// provider failures into user-presentable text, so there is no error
// return.
type Generator interface {
	Generate(ctx context.Context, tenantID, systemInstruction, userMessage string) string
}

// Intelligence is the structured-extraction capability: schema-constrained
// JSON extraction and slot selection for the booking node.
type Intelligence interface {
	// Extract pulls the given fields out of conversational text. A parse
	// failure returns an error the executor reports as a soft output.
	Extract(ctx context.Context, tenantID string, fields []ExtractField, text string) (map[string]any, error)

	// SelectSlot maps a free-form reply to a 1-based slot index. The
	// second return is false when the reply matches none of them.
	SelectSlot(ctx context.Context, tenantID, reply string, slotCount int) (int, bool)
}

// PersonaSource supplies the tenant's assistant persona for composite
// inference prompts.
type PersonaSource interface {
	SystemPrompt(ctx context.Context, tenantID string) (string, error)
}

// Sender is the outbound message capability, fire-and-forget with a
// synchronous error return.
type Sender interface {
	Send(ctx context.Context, tenantID, channel, recipient, text string) error
}

// CRM groups the side-effect emitters workflow nodes call into.
type CRM interface {
	CreateTicket(ctx context.Context, tenantID string, in TicketInput) (string, error)
	AssignAgent(ctx context.Context, tenantID, ticketID, agentID string) error
	SaveLead(ctx context.Context, tenantID string, in LeadInput) (string, error)
}

// TicketInput is the executor-side ticket shape. Participant lets the
// implementation link the ticket to the originating conversation.
type TicketInput struct {
	Subject     string
	Description string
	Priority    string
	Participant string
}

// LeadInput is the executor-side lead shape.
type LeadInput struct {
	Name   string
	Email  string
	Phone  string
	Source string
	Status string
	Notes  string
	Tags   string
	Value  float64
}

// Scheduler is the booking capability used by the appointment node.
type Scheduler interface {
	// UpcomingSlots resolves the appointment type (explicit id or the
	// tenant's first active type) and returns open slots over the next
	// `days` days, capped at `limit`.
	UpcomingSlots(ctx context.Context, tenantID, appointmentTypeID string, days, limit int) (*SlotProposal, error)

	// Book records an appointment at the given start time. It fails when
	// the slot is no longer free.
	Book(ctx context.Context, tenantID string, in BookingInput) (string, error)
}

// SlotProposal is a resolved appointment type plus its open slots.
type SlotProposal struct {
	AppointmentTypeID   string
	AppointmentTypeName string
	DurationMinutes     int
	Slots               []ProposedSlot
}

// ProposedSlot is one offered slot. Index is 1-based and what the
// participant's reply is matched against.
type ProposedSlot struct {
	Index   int       `json:"index"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Display string    `json:"display"`
}

// BookingInput is the executor-side booking shape. Engine nodes link the
// appointment to its thread through Participant; dashboard bookings name
// the conversation directly via ConversationID, which wins when both are
// set.
type BookingInput struct {
	AppointmentTypeID string
	StartAt           time.Time
	LeadID            string
	Participant       string
	ConversationID    string
	Notes             string
}

const (
	defaultGreeting    = "Hello! How can we help you today?"
	defaultNodeGoal    = "You are a helpful assistant."
	httpNodeTimeout    = 10 * time.Second
	leadCaptureSource  = "workflow_automation"
	extractParseErrVal = "failed_to_parse_json"
)

// Deps carries the executor's capabilities.
type Deps struct {
	LLM        Generator
	Intel      Intelligence
	Persona    PersonaSource
	Sender     Sender
	CRM        CRM
	Scheduler  Scheduler
	HTTPClient *http.Client
}

// Executor runs one node against one execution context and returns the
// node's output document. External failures (sends, HTTP calls, LLM
// parsing) are folded into the output as soft fields; the error return is
// reserved for invariant violations like an unknown node kind.
type Executor struct {
	llm        Generator
	intel      Intelligence
	persona    PersonaSource
	sender     Sender
	crm        CRM
	scheduler  Scheduler
	httpClient *http.Client
}

// NewExecutor creates a node executor with the given capabilities.
func NewExecutor(deps Deps) *Executor {
	httpClient := deps.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: httpNodeTimeout}
	}
	return &Executor{
		llm:        deps.LLM,
		intel:      deps.Intel,
		persona:    deps.Persona,
		sender:     deps.Sender,
		crm:        deps.CRM,
		scheduler:  deps.Scheduler,
		httpClient: httpClient,
	}
}

// Execute runs the node and returns its output document.
func (e *Executor) Execute(ctx context.Context, node Node, execCtx Context) (map[string]any, error) {
	cfg, err := ParseNodeConfig(node.Kind, node.Config)
	if err != nil {
		return nil, err
	}

	switch c := cfg.(type) {
	case StartConfig:
		return map[string]any{"status": "started"}, nil
	case EndConfig:
		return map[string]any{"status": "ended"}, nil
	case WaitForReplyConfig:
		return map[string]any{
			KeySignal:       SignalSuspend,
			KeyResumeNodeID: node.ID,
		}, nil
	case ActionConfig:
		return e.executeAction(ctx, c, execCtx), nil
	case AIInferenceConfig:
		return e.executeInference(ctx, c, execCtx), nil
	case AIExtractConfig:
		return e.executeExtract(ctx, c, execCtx), nil
	case ConditionConfig:
		return map[string]any{KeyConditionEval: EvaluateCondition(c, execCtx)}, nil
	case TimeDelayConfig:
		return map[string]any{KeySignal: SignalDelay, KeySeconds: c.Seconds}, nil
	case HTTPRequestConfig:
		return e.executeHTTPRequest(ctx, c, execCtx), nil
	case LeadCaptureConfig:
		return e.executeLeadCapture(ctx, c, node, execCtx), nil
	case BookingConfig:
		return e.executeBooking(ctx, c, node, execCtx), nil
	default:
		// ParseNodeConfig is a closed constructor, so this is unreachable.
		return nil, fmt.Errorf("%w: %q", ErrUnknownNodeKind, node.Kind)
	}
}

// resolveRecipient picks the outbound channel and address for the
// execution's participant: WhatsApp when the trigger carries a phone
// number, web otherwise.
func resolveRecipient(execCtx Context) (channel, recipient string, ok bool) {
	trigger := execCtx.Trigger()
	if number, _ := trigger["from_number"].(string); number != "" {
		return "whatsapp", number, true
	}
	if userID, _ := trigger["user_id"].(string); userID != "" {
		return "web", userID, true
	}
	return "", "", false
}

func (e *Executor) executeAction(ctx context.Context, cfg ActionConfig, execCtx Context) map[string]any {
	switch cfg.ActionType {
	case ActionSendMessage:
		return e.executeSendMessage(ctx, cfg, execCtx)
	case ActionCreateTicket:
		return e.executeCreateTicket(ctx, cfg, execCtx)
	case ActionAssignAgent:
		return e.executeAssignAgent(ctx, cfg, execCtx)
	default:
		return map[string]any{"action_result": "unknown_type"}
	}
}

func (e *Executor) executeSendMessage(ctx context.Context, cfg ActionConfig, execCtx Context) map[string]any {
	template := cfg.Template
	if template == "" {
		template = defaultGreeting
	}
	body := execCtx.Hydrate(template)

	channel, recipient, ok := resolveRecipient(execCtx)
	if !ok && cfg.ToNumber != "" {
		channel, recipient, ok = "whatsapp", cfg.ToNumber, true
	}
	if !ok {
		return map[string]any{
			"action_result": "failed",
			"error":         "no recipient in trigger context",
			"message_body":  body,
		}
	}

	if err := e.sender.Send(ctx, execCtx.TenantID(), channel, recipient, body); err != nil {
		// A send failure is recorded in the step but never fails the
		// execution.
		slog.Warn("Workflow send_message failed",
			"tenant_id", execCtx.TenantID(),
			"channel", channel,
			"error", err)
		return map[string]any{
			"action_result": "failed",
			"error":         err.Error(),
			"message_body":  body,
		}
	}

	result := "sent"
	if channel == "web" {
		result = "sent_web"
	}
	return map[string]any{"action_result": result, "message_body": body}
}

func (e *Executor) executeCreateTicket(ctx context.Context, cfg ActionConfig, execCtx Context) map[string]any {
	subject := cfg.Subject
	if subject == "" {
		subject = "New Workflow Ticket"
	}
	description := cfg.Description
	if description == "" {
		description = "Created via automation"
	}
	priority := cfg.Priority
	if priority == "" {
		priority = "medium"
	}

	triggerJSON, _ := json.Marshal(execCtx.Trigger())
	description += "\nContext: " + string(triggerJSON)

	participant, _ := execCtx.Trigger()["participant"].(string)
	ticketID, err := e.crm.CreateTicket(ctx, execCtx.TenantID(), TicketInput{
		Subject:     execCtx.Hydrate(subject),
		Description: execCtx.Hydrate(description),
		Priority:    priority,
		Participant: participant,
	})
	if err != nil {
		return map[string]any{"action_result": "failed", "error": err.Error()}
	}

	return map[string]any{KeyTicketID: ticketID, "action_result": "ticket_created"}
}

func (e *Executor) executeAssignAgent(ctx context.Context, cfg ActionConfig, execCtx Context) map[string]any {
	ticketID, _ := execCtx[KeyTicketID].(string)
	if ticketID == "" || cfg.AgentID == "" {
		return map[string]any{"action_result": "skipped", "reason": "missing_id"}
	}

	if err := e.crm.AssignAgent(ctx, execCtx.TenantID(), ticketID, cfg.AgentID); err != nil {
		return map[string]any{"action_result": "failed", "error": err.Error()}
	}

	return map[string]any{"assigned_to": cfg.AgentID, "action_result": "assigned"}
}

func (e *Executor) executeInference(ctx context.Context, cfg AIInferenceConfig, execCtx Context) map[string]any {
	tenantID := execCtx.TenantID()

	persona := ""
	if e.persona != nil {
		p, err := e.persona.SystemPrompt(ctx, tenantID)
		if err != nil {
			slog.Warn("Failed to build tenant persona for inference node",
				"tenant_id", tenantID, "error", err)
		} else {
			persona = p
		}
	}

	goal := cfg.PromptTemplate
	if goal == "" {
		goal = defaultNodeGoal
	}

	trigger := execCtx.Trigger()
	from, _ := trigger["from_number"].(string)
	if from == "" {
		from, _ = trigger["participant"].(string)
	}
	if from == "" {
		from = "Unknown"
	}
	messageBody, _ := trigger["message_body"].(string)

	stateJSON, _ := json.Marshal(execCtx.Doc())

	systemInstruction := fmt.Sprintf(`%s

*** WORKFLOW GOAL ***
Your current specific objective in this workflow is:
%s

*** CONTEXT ***
User Input: %s
From: %s
Current Workflow State: %s

Respond directly to the user to achieve the WORKFLOW GOAL.`,
		persona, execCtx.Hydrate(goal), messageBody, from, stateJSON)

	userMessage := cfg.InputText
	if userMessage == "" {
		userMessage = messageBody
	}
	if userMessage == "" {
		userMessage = "Continue"
	}

	response := e.llm.Generate(ctx, tenantID, systemInstruction, userMessage)

	if cfg.AutoSend {
		if channel, recipient, ok := resolveRecipient(execCtx); ok {
			if err := e.sender.Send(ctx, tenantID, channel, recipient, response); err != nil {
				slog.Warn("Inference auto-send failed",
					"tenant_id", tenantID, "channel", channel, "error", err)
			}
		}
	}

	return map[string]any{KeyAIOutput: response}
}

func (e *Executor) executeExtract(ctx context.Context, cfg AIExtractConfig, execCtx Context) map[string]any {
	latest := execCtx.LatestReply()
	if latest == "" {
		latest, _ = execCtx[KeyUserReply].(string)
	}
	if latest == "" {
		latest, _ = execCtx.Trigger()["message_body"].(string)
	}

	prevOutput, _ := execCtx[KeyAIOutput].(string)
	text := fmt.Sprintf("Latest Message: %s\n\nPrevious AI Output: %s", latest, prevOutput)

	extracted, err := e.intel.Extract(ctx, execCtx.TenantID(), cfg.Fields, text)
	if err != nil {
		slog.Warn("Extraction produced unparseable output",
			"tenant_id", execCtx.TenantID(), "error", err)
		return map[string]any{"extraction_error": extractParseErrVal}
	}

	// Namespaced under "extracted", and mirrored at the top level (minus
	// reserved keys) so conditions can read bare field names.
	output := map[string]any{KeyExtracted: extracted}
	for k, v := range extracted {
		if isReservedKey(k) {
			continue
		}
		output[k] = v
	}
	return output
}

func isReservedKey(k string) bool {
	switch k {
	case KeyTrigger, KeyTenant, KeySignal, KeyResumeNodeID, KeyConditionEval, KeyExtracted, KeyPendingSlots:
		return true
	}
	return false
}

func (e *Executor) executeHTTPRequest(ctx context.Context, cfg HTTPRequestConfig, execCtx Context) map[string]any {
	url := execCtx.Hydrate(cfg.URL)
	if url == "" {
		return map[string]any{"error": "missing url"}
	}

	method := strings.ToUpper(cfg.Method)
	if method == "" {
		method = http.MethodGet
	}

	var bodyReader io.Reader
	contentType := ""
	switch b := cfg.Body.(type) {
	case nil:
	case string:
		bodyReader = strings.NewReader(execCtx.Hydrate(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return map[string]any{"error": fmt.Sprintf("unencodable body: %v", err)}
		}
		bodyReader = strings.NewReader(execCtx.Hydrate(string(raw)))
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	for k, v := range cfg.Headers {
		req.Header.Set(k, execCtx.Hydrate(v))
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}

	var responseBody any = string(raw)
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var parsed any
		if err := json.Unmarshal(bytes.TrimSpace(raw), &parsed); err == nil {
			responseBody = parsed
		}
	}

	return map[string]any{
		"status_code":   resp.StatusCode,
		"response_body": responseBody,
	}
}

func (e *Executor) executeLeadCapture(ctx context.Context, cfg LeadCaptureConfig, node Node, execCtx Context) map[string]any {
	nameTemplate := cfg.Name
	if nameTemplate == "" {
		nameTemplate = "{{customer_name}}"
	}
	name := execCtx.Hydrate(nameTemplate)
	if strings.Contains(name, "{{") || name == "" {
		name = "Unknown"
	}

	notesTemplate := cfg.Notes
	if notesTemplate == "" {
		notesTemplate = "Captured via workflow {{workflow_id}}"
	}
	notes := execCtx.Hydrate(notesTemplate)
	notes = strings.ReplaceAll(notes, "{{workflow_id}}", node.WorkflowID)

	email, _ := execCtx.ResolveString("email")
	phone, _ := execCtx.ResolveString("phone")
	tags, _ := execCtx.ResolveString("tags")

	var value float64
	if v := execCtx.Resolve("value"); v != nil {
		value, _ = cleanNumber(v)
	} else if v := execCtx.Resolve("budget"); v != nil {
		value, _ = cleanNumber(v)
	}

	// Fall back to the conversation participant for contact details.
	trigger := execCtx.Trigger()
	if phone == "" {
		phone, _ = trigger["from_number"].(string)
	}
	if email == "" {
		if participant, _ := trigger["participant"].(string); strings.Contains(participant, "@") {
			email = participant
		}
	}

	leadID, err := e.crm.SaveLead(ctx, execCtx.TenantID(), LeadInput{
		Name:   name,
		Email:  email,
		Phone:  phone,
		Source: leadCaptureSource,
		Status: cfg.Status,
		Notes:  notes,
		Tags:   tags,
		Value:  value,
	})
	if err != nil {
		return map[string]any{"lead_status": "failed", "error": err.Error()}
	}

	return map[string]any{KeyLeadID: leadID, "lead_status": "captured"}
}
