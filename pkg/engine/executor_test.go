package engine

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedLLM struct {
	response   string
	lastSystem string
	lastUser   string
	calls      int
}

func (s *scriptedLLM) Generate(_ context.Context, _, systemInstruction, userMessage string) string {
	s.calls++
	s.lastSystem = systemInstruction
	s.lastUser = userMessage
	return s.response
}

type scriptedIntel struct {
	extracted  map[string]any
	extractErr error
	lastFields []ExtractField
	lastText   string
	slotIndex  int
	slotOK     bool
	lastReply  string
}

func (s *scriptedIntel) Extract(_ context.Context, _ string, fields []ExtractField, text string) (map[string]any, error) {
	s.lastFields = fields
	s.lastText = text
	if s.extractErr != nil {
		return nil, s.extractErr
	}
	return s.extracted, nil
}

func (s *scriptedIntel) SelectSlot(_ context.Context, _, reply string, _ int) (int, bool) {
	s.lastReply = reply
	return s.slotIndex, s.slotOK
}

type staticPersona struct {
	prompt string
	err    error
}

func (s *staticPersona) SystemPrompt(context.Context, string) (string, error) {
	return s.prompt, s.err
}

type outboundMessage struct {
	channel   string
	recipient string
	text      string
}

type recordingSender struct {
	err  error
	sent []outboundMessage
}

func (r *recordingSender) Send(_ context.Context, _, channel, recipient, text string) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, outboundMessage{channel: channel, recipient: recipient, text: text})
	return nil
}

type recordingCRM struct {
	ticketID   string
	ticketErr  error
	lastTicket TicketInput

	assignErr    error
	assignedTo   string
	assignTicket string

	leadID   string
	leadErr  error
	lastLead LeadInput
}

func (r *recordingCRM) CreateTicket(_ context.Context, _ string, in TicketInput) (string, error) {
	r.lastTicket = in
	if r.ticketErr != nil {
		return "", r.ticketErr
	}
	return r.ticketID, nil
}

func (r *recordingCRM) AssignAgent(_ context.Context, _, ticketID, agentID string) error {
	r.assignTicket = ticketID
	r.assignedTo = agentID
	return r.assignErr
}

func (r *recordingCRM) SaveLead(_ context.Context, _ string, in LeadInput) (string, error) {
	r.lastLead = in
	if r.leadErr != nil {
		return "", r.leadErr
	}
	return r.leadID, nil
}

type scriptedScheduler struct {
	proposal    *SlotProposal
	upcomingErr error
	bookID      string
	bookErr     error
	lastBooking BookingInput
}

func (s *scriptedScheduler) UpcomingSlots(_ context.Context, _, _ string, _, _ int) (*SlotProposal, error) {
	if s.upcomingErr != nil {
		return nil, s.upcomingErr
	}
	return s.proposal, nil
}

func (s *scriptedScheduler) Book(_ context.Context, _ string, in BookingInput) (string, error) {
	s.lastBooking = in
	if s.bookErr != nil {
		return "", s.bookErr
	}
	return s.bookID, nil
}

type executorFixture struct {
	executor  *Executor
	llm       *scriptedLLM
	intel     *scriptedIntel
	persona   *staticPersona
	sender    *recordingSender
	crm       *recordingCRM
	scheduler *scriptedScheduler
}

func newExecutorFixture() *executorFixture {
	f := &executorFixture{
		llm:       &scriptedLLM{response: "generated reply"},
		intel:     &scriptedIntel{},
		persona:   &staticPersona{prompt: "You are the assistant for Acme Dental."},
		sender:    &recordingSender{},
		crm:       &recordingCRM{ticketID: "ticket-1", leadID: "lead-1"},
		scheduler: &scriptedScheduler{bookID: "apt-1"},
	}
	f.executor = NewExecutor(Deps{
		LLM:       f.llm,
		Intel:     f.intel,
		Persona:   f.persona,
		Sender:    f.sender,
		CRM:       f.crm,
		Scheduler: f.scheduler,
	})
	return f
}

func whatsappContext() Context {
	return NewContext("tenant-a", map[string]any{
		"message_body": "I want pricing",
		"from_number":  "+15551234567",
		"participant":  "+15551234567",
		"channel":      "whatsapp",
	})
}

func webContext() Context {
	return NewContext("tenant-a", map[string]any{
		"message_body": "I want pricing",
		"user_id":      "visitor-9",
		"participant":  "visitor-9",
		"channel":      "web",
	})
}

func TestExecuteStart(t *testing.T) {
	f := newExecutorFixture()

	out, err := f.executor.Execute(context.Background(), Node{ID: "n1", Kind: KindStart}, whatsappContext())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"status": "started"}, out)
}

func TestExecuteWaitForReplySuspends(t *testing.T) {
	f := newExecutorFixture()

	out, err := f.executor.Execute(context.Background(), Node{ID: "n-wait", Kind: KindWaitForReply}, whatsappContext())
	require.NoError(t, err)

	signal, ok := SignalFromOutput(out)
	require.True(t, ok)
	assert.Equal(t, SignalSuspend, signal.Kind)
	assert.Equal(t, "n-wait", signal.ResumeNodeID)
}

func TestExecuteTimeDelay(t *testing.T) {
	f := newExecutorFixture()

	node := Node{ID: "n-delay", Kind: KindTimeDelay, Config: map[string]any{"seconds": 300.0}}
	out, err := f.executor.Execute(context.Background(), node, whatsappContext())
	require.NoError(t, err)

	signal, ok := SignalFromOutput(out)
	require.True(t, ok)
	assert.Equal(t, SignalDelay, signal.Kind)
	assert.Equal(t, 300, signal.Seconds)
}

func TestExecuteUnknownKind(t *testing.T) {
	f := newExecutorFixture()

	_, err := f.executor.Execute(context.Background(), Node{ID: "n1", Kind: "teleport"}, whatsappContext())
	assert.ErrorIs(t, err, ErrUnknownNodeKind)
}

func TestExecuteSendMessage(t *testing.T) {
	t.Run("whatsapp recipient from trigger", func(t *testing.T) {
		f := newExecutorFixture()
		execCtx := whatsappContext()
		execCtx["customer_name"] = "Sam"

		node := Node{ID: "n2", Kind: KindAction, Config: map[string]any{
			"action_type": "send_message",
			"template":    "Hi {{customer_name}}, thanks for reaching out!",
		}}
		out, err := f.executor.Execute(context.Background(), node, execCtx)
		require.NoError(t, err)

		assert.Equal(t, "sent", out["action_result"])
		assert.Equal(t, "Hi Sam, thanks for reaching out!", out["message_body"])
		require.Len(t, f.sender.sent, 1)
		assert.Equal(t, "whatsapp", f.sender.sent[0].channel)
		assert.Equal(t, "+15551234567", f.sender.sent[0].recipient)
	})

	t.Run("web recipient falls back to user id", func(t *testing.T) {
		f := newExecutorFixture()

		node := Node{ID: "n2", Kind: KindAction, Config: map[string]any{
			"action_type": "send_message",
			"template":    "Welcome!",
		}}
		out, err := f.executor.Execute(context.Background(), node, webContext())
		require.NoError(t, err)

		assert.Equal(t, "sent_web", out["action_result"])
		require.Len(t, f.sender.sent, 1)
		assert.Equal(t, "web", f.sender.sent[0].channel)
		assert.Equal(t, "visitor-9", f.sender.sent[0].recipient)
	})

	t.Run("no recipient reports failure without erroring", func(t *testing.T) {
		f := newExecutorFixture()
		execCtx := NewContext("tenant-a", map[string]any{"message_body": "hi"})

		node := Node{ID: "n2", Kind: KindAction, Config: map[string]any{"action_type": "send_message"}}
		out, err := f.executor.Execute(context.Background(), node, execCtx)
		require.NoError(t, err)

		assert.Equal(t, "failed", out["action_result"])
		assert.NotEmpty(t, out["error"])
		assert.Empty(t, f.sender.sent)
	})

	t.Run("send failure is soft", func(t *testing.T) {
		f := newExecutorFixture()
		f.sender.err = errors.New("provider down")

		node := Node{ID: "n2", Kind: KindAction, Config: map[string]any{
			"action_type": "send_message",
			"template":    "Hello",
		}}
		out, err := f.executor.Execute(context.Background(), node, whatsappContext())
		require.NoError(t, err)

		assert.Equal(t, "failed", out["action_result"])
		assert.Equal(t, "provider down", out["error"])
		assert.Equal(t, "Hello", out["message_body"])
	})

	t.Run("configured to_number used when trigger has none", func(t *testing.T) {
		f := newExecutorFixture()
		execCtx := NewContext("tenant-a", map[string]any{"message_body": "hi"})

		node := Node{ID: "n2", Kind: KindAction, Config: map[string]any{
			"action_type": "send_message",
			"template":    "Heads up",
			"to_number":   "+15557654321",
		}}
		out, err := f.executor.Execute(context.Background(), node, execCtx)
		require.NoError(t, err)

		assert.Equal(t, "sent", out["action_result"])
		require.Len(t, f.sender.sent, 1)
		assert.Equal(t, "+15557654321", f.sender.sent[0].recipient)
	})
}

func TestExecuteCreateTicket(t *testing.T) {
	f := newExecutorFixture()

	node := Node{ID: "n3", Kind: KindAction, Config: map[string]any{"action_type": "create_ticket"}}
	out, err := f.executor.Execute(context.Background(), node, whatsappContext())
	require.NoError(t, err)

	assert.Equal(t, "ticket_created", out["action_result"])
	assert.Equal(t, "ticket-1", out[KeyTicketID])
	assert.Equal(t, "New Workflow Ticket", f.crm.lastTicket.Subject)
	assert.Equal(t, "medium", f.crm.lastTicket.Priority)
	assert.Contains(t, f.crm.lastTicket.Description, "Created via automation")
	assert.Contains(t, f.crm.lastTicket.Description, `"from_number":"+15551234567"`)
	assert.Equal(t, "+15551234567", f.crm.lastTicket.Participant)
}

func TestExecuteAssignAgent(t *testing.T) {
	t.Run("assigns when ticket id in context", func(t *testing.T) {
		f := newExecutorFixture()
		execCtx := whatsappContext()
		execCtx[KeyTicketID] = "ticket-9"

		node := Node{ID: "n4", Kind: KindAction, Config: map[string]any{
			"action_type": "assign_agent",
			"agent_id":    "agent-2",
		}}
		out, err := f.executor.Execute(context.Background(), node, execCtx)
		require.NoError(t, err)

		assert.Equal(t, "assigned", out["action_result"])
		assert.Equal(t, "agent-2", out["assigned_to"])
		assert.Equal(t, "ticket-9", f.crm.assignTicket)
	})

	t.Run("skips without ticket id", func(t *testing.T) {
		f := newExecutorFixture()

		node := Node{ID: "n4", Kind: KindAction, Config: map[string]any{
			"action_type": "assign_agent",
			"agent_id":    "agent-2",
		}}
		out, err := f.executor.Execute(context.Background(), node, whatsappContext())
		require.NoError(t, err)

		assert.Equal(t, "skipped", out["action_result"])
		assert.Equal(t, "missing_id", out["reason"])
	})
}

func TestExecuteUnknownActionType(t *testing.T) {
	f := newExecutorFixture()

	node := Node{ID: "n4", Kind: KindAction, Config: map[string]any{"action_type": "launch_rocket"}}
	out, err := f.executor.Execute(context.Background(), node, whatsappContext())
	require.NoError(t, err)
	assert.Equal(t, "unknown_type", out["action_result"])
}

func TestExecuteInference(t *testing.T) {
	t.Run("composes persona, goal and state", func(t *testing.T) {
		f := newExecutorFixture()

		node := Node{ID: "n5", Kind: KindAIInference, Config: map[string]any{
			"prompt_template": "Qualify the lead and collect a budget",
		}}
		out, err := f.executor.Execute(context.Background(), node, whatsappContext())
		require.NoError(t, err)

		assert.Equal(t, "generated reply", out[KeyAIOutput])
		assert.Contains(t, f.llm.lastSystem, "Acme Dental")
		assert.Contains(t, f.llm.lastSystem, "Qualify the lead and collect a budget")
		assert.Contains(t, f.llm.lastSystem, "I want pricing")
		assert.Equal(t, "I want pricing", f.llm.lastUser)
	})

	t.Run("auto send delivers the reply", func(t *testing.T) {
		f := newExecutorFixture()

		node := Node{ID: "n5", Kind: KindAIInference, Config: map[string]any{"prompt_template": "Greet"}}
		_, err := f.executor.Execute(context.Background(), node, whatsappContext())
		require.NoError(t, err)

		require.Len(t, f.sender.sent, 1)
		assert.Equal(t, "generated reply", f.sender.sent[0].text)
	})

	t.Run("auto send disabled keeps the reply internal", func(t *testing.T) {
		f := newExecutorFixture()

		node := Node{ID: "n5", Kind: KindAIInference, Config: map[string]any{
			"prompt_template": "Summarize",
			"auto_send":       false,
		}}
		out, err := f.executor.Execute(context.Background(), node, whatsappContext())
		require.NoError(t, err)

		assert.Equal(t, "generated reply", out[KeyAIOutput])
		assert.Empty(t, f.sender.sent)
	})

	t.Run("user message falls back to continue", func(t *testing.T) {
		f := newExecutorFixture()
		execCtx := NewContext("tenant-a", map[string]any{"user_id": "visitor-9"})

		node := Node{ID: "n5", Kind: KindAIInference, Config: map[string]any{"prompt_template": "Nudge"}}
		_, err := f.executor.Execute(context.Background(), node, execCtx)
		require.NoError(t, err)

		assert.Equal(t, "Continue", f.llm.lastUser)
	})

	t.Run("persona failure degrades to goal only", func(t *testing.T) {
		f := newExecutorFixture()
		f.persona.err = errors.New("settings unavailable")

		node := Node{ID: "n5", Kind: KindAIInference, Config: map[string]any{"prompt_template": "Greet warmly"}}
		out, err := f.executor.Execute(context.Background(), node, whatsappContext())
		require.NoError(t, err)

		assert.Equal(t, "generated reply", out[KeyAIOutput])
		assert.Contains(t, f.llm.lastSystem, "Greet warmly")
		assert.NotContains(t, f.llm.lastSystem, "Acme Dental")
	})
}

func TestExecuteExtract(t *testing.T) {
	fieldsCfg := map[string]any{
		"fields": []any{
			map[string]any{"name": "email", "type": "string"},
			map[string]any{"name": "budget", "type": "number"},
		},
	}

	t.Run("merges extracted keys to top level", func(t *testing.T) {
		f := newExecutorFixture()
		f.intel.extracted = map[string]any{"email": "sam@example.com", "budget": 2500.0}

		node := Node{ID: "n6", Kind: KindAIExtract, Config: fieldsCfg}
		out, err := f.executor.Execute(context.Background(), node, whatsappContext())
		require.NoError(t, err)

		assert.Equal(t, "sam@example.com", out["email"])
		assert.Equal(t, 2500.0, out["budget"])
		assert.Equal(t, f.intel.extracted, out[KeyExtracted])
		require.Len(t, f.intel.lastFields, 2)
		assert.Equal(t, "email", f.intel.lastFields[0].Name)
	})

	t.Run("reserved keys are not mirrored", func(t *testing.T) {
		f := newExecutorFixture()
		f.intel.extracted = map[string]any{"email": "sam@example.com", KeyTrigger: "bogus"}

		node := Node{ID: "n6", Kind: KindAIExtract, Config: fieldsCfg}
		out, err := f.executor.Execute(context.Background(), node, whatsappContext())
		require.NoError(t, err)

		assert.Equal(t, "sam@example.com", out["email"])
		assert.NotContains(t, out, KeyTrigger)
	})

	t.Run("prefers latest reply over original trigger", func(t *testing.T) {
		f := newExecutorFixture()
		f.intel.extracted = map[string]any{}
		execCtx := whatsappContext()
		execCtx[KeyLatestReply] = "my email is sam@example.com"

		node := Node{ID: "n6", Kind: KindAIExtract, Config: fieldsCfg}
		_, err := f.executor.Execute(context.Background(), node, execCtx)
		require.NoError(t, err)

		assert.Contains(t, f.intel.lastText, "my email is sam@example.com")
		assert.NotContains(t, f.intel.lastText, "Latest Message: I want pricing")
	})

	t.Run("parse failure is soft", func(t *testing.T) {
		f := newExecutorFixture()
		f.intel.extractErr = errors.New("not json")

		node := Node{ID: "n6", Kind: KindAIExtract, Config: fieldsCfg}
		out, err := f.executor.Execute(context.Background(), node, whatsappContext())
		require.NoError(t, err)

		assert.Equal(t, "failed_to_parse_json", out["extraction_error"])
	})
}

func TestExecuteHTTPRequest(t *testing.T) {
	t.Run("get parses json response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "abc", r.Header.Get("X-Token"))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok": true, "count": 3}`))
		}))
		defer server.Close()

		f := newExecutorFixture()
		node := Node{ID: "n7", Kind: KindHTTPRequest, Config: map[string]any{
			"url":     server.URL,
			"headers": map[string]any{"X-Token": "abc"},
		}}
		out, err := f.executor.Execute(context.Background(), node, whatsappContext())
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, out["status_code"])
		body, ok := out["response_body"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, body["ok"])
	})

	t.Run("post hydrates url and body", func(t *testing.T) {
		var gotPath, gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			raw, _ := io.ReadAll(r.Body)
			gotBody = string(raw)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("created"))
		}))
		defer server.Close()

		f := newExecutorFixture()
		execCtx := whatsappContext()
		execCtx["lead_id"] = "lead-7"

		node := Node{ID: "n7", Kind: KindHTTPRequest, Config: map[string]any{
			"url":    server.URL + "/leads/{{lead_id}}",
			"method": "post",
			"body":   map[string]any{"message": "{{message_body}}"},
		}}
		out, err := f.executor.Execute(context.Background(), node, execCtx)
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, out["status_code"])
		assert.Equal(t, "created", out["response_body"])
		assert.Equal(t, "/leads/lead-7", gotPath)
		assert.Contains(t, gotBody, "I want pricing")
	})

	t.Run("missing url is soft", func(t *testing.T) {
		f := newExecutorFixture()
		node := Node{ID: "n7", Kind: KindHTTPRequest, Config: map[string]any{}}

		out, err := f.executor.Execute(context.Background(), node, whatsappContext())
		require.NoError(t, err)
		assert.Equal(t, "missing url", out["error"])
	})

	t.Run("network failure is soft", func(t *testing.T) {
		f := newExecutorFixture()
		node := Node{ID: "n7", Kind: KindHTTPRequest, Config: map[string]any{
			"url": "http://127.0.0.1:1/unreachable",
		}}

		out, err := f.executor.Execute(context.Background(), node, whatsappContext())
		require.NoError(t, err)
		assert.NotEmpty(t, out["error"])
		assert.NotContains(t, out, "status_code")
	})
}

func TestExecuteLeadCapture(t *testing.T) {
	t.Run("captures extracted contact fields", func(t *testing.T) {
		f := newExecutorFixture()
		execCtx := whatsappContext()
		execCtx["customer_name"] = "Sam Rivera"
		execCtx["email"] = "sam@example.com"
		execCtx["budget"] = "$2,500"

		node := Node{ID: "n8", Kind: KindLeadCapture, WorkflowID: "wf-1", Config: map[string]any{
			"name":  "{{customer_name}}",
			"notes": "Interested in {{message_body}}",
		}}
		out, err := f.executor.Execute(context.Background(), node, execCtx)
		require.NoError(t, err)

		assert.Equal(t, "captured", out["lead_status"])
		assert.Equal(t, "lead-1", out[KeyLeadID])
		assert.Equal(t, "Sam Rivera", f.crm.lastLead.Name)
		assert.Equal(t, "sam@example.com", f.crm.lastLead.Email)
		assert.Equal(t, "+15551234567", f.crm.lastLead.Phone)
		assert.Equal(t, 2500.0, f.crm.lastLead.Value)
		assert.Equal(t, "workflow_automation", f.crm.lastLead.Source)
		assert.Equal(t, "new", f.crm.lastLead.Status)
		assert.Equal(t, "Interested in I want pricing", f.crm.lastLead.Notes)
	})

	t.Run("unresolved name falls back to unknown", func(t *testing.T) {
		f := newExecutorFixture()

		node := Node{ID: "n8", Kind: KindLeadCapture, WorkflowID: "wf-1", Config: map[string]any{}}
		out, err := f.executor.Execute(context.Background(), node, whatsappContext())
		require.NoError(t, err)

		assert.Equal(t, "captured", out["lead_status"])
		assert.Equal(t, "Unknown", f.crm.lastLead.Name)
		assert.Contains(t, f.crm.lastLead.Notes, "wf-1")
	})

	t.Run("email inferred from participant address", func(t *testing.T) {
		f := newExecutorFixture()
		execCtx := NewContext("tenant-a", map[string]any{
			"message_body": "hi",
			"user_id":      "sam@example.com",
			"participant":  "sam@example.com",
		})

		node := Node{ID: "n8", Kind: KindLeadCapture, WorkflowID: "wf-1", Config: map[string]any{}}
		_, err := f.executor.Execute(context.Background(), node, execCtx)
		require.NoError(t, err)

		assert.Equal(t, "sam@example.com", f.crm.lastLead.Email)
	})

	t.Run("save failure is soft", func(t *testing.T) {
		f := newExecutorFixture()
		f.crm.leadErr = errors.New("db down")

		node := Node{ID: "n8", Kind: KindLeadCapture, WorkflowID: "wf-1", Config: map[string]any{}}
		out, err := f.executor.Execute(context.Background(), node, whatsappContext())
		require.NoError(t, err)

		assert.Equal(t, "failed", out["lead_status"])
		assert.Equal(t, "db down", out["error"])
	})
}

func TestExecuteCondition(t *testing.T) {
	f := newExecutorFixture()

	node := Node{ID: "n9", Kind: KindCondition, Config: map[string]any{
		"variable": "message_body",
		"operator": "contains",
		"value":    "pricing",
	}}
	out, err := f.executor.Execute(context.Background(), node, whatsappContext())
	require.NoError(t, err)
	assert.Equal(t, "true", out[KeyConditionEval])
}

func TestNewExecutorDefaultsHTTPClient(t *testing.T) {
	e := NewExecutor(Deps{})
	require.NotNil(t, e.httpClient)
	assert.Equal(t, 10*time.Second, e.httpClient.Timeout)
}
