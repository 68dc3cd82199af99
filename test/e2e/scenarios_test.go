package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entexec "github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/ent/message"
	"github.com/interacai/flowcore/ent/promptexecution"
	"github.com/interacai/flowcore/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Scenario 1: Keyword workflow answers a web chat
// ────────────────────────────────────────────────────────────

func TestE2E_KeywordWorkflow_WebChat(t *testing.T) {
	llm := NewScriptedLLMClient()
	app := NewTestApp(t, WithLLMClient(llm))

	tenantID := app.CreateTenant(t, "Keyword Co")
	app.CreateWorkflow(t, tenantID, linearKeywordWorkflow(
		"Pricing responder", "pricing", "Our plans start at $9/mo."))

	user := uniqueParticipant("visitor")
	resp := app.SendChat(t, tenantID, user, "What's your pricing?")

	// A workflow claimed the message: no synchronous reply.
	assert.Equal(t, models.ChatStatusWorkflowProcessing, resp["status"])
	assert.Nil(t, resp["reply"])
	ids := executionIDs(t, resp)
	require.Len(t, ids, 1)

	app.WaitForExecutionStatus(t, ids[0], entexec.StatusCompleted)
	app.WaitForAssistantMessage(t, tenantID, user, "$9/mo")

	// Journal: start, send, end — in visit order.
	steps := app.Steps(t, ids[0])
	require.Len(t, steps, 3)
	assert.Equal(t, "start", steps[0].NodeKind)
	assert.Equal(t, "action", steps[1].NodeKind)
	assert.Equal(t, "end", steps[2].NodeKind)
	assert.Equal(t, "sent_web", steps[1].Output["action_result"])

	// Conversation journal holds both sides.
	msgs := app.Messages(t, tenantID, user)
	require.Len(t, msgs, 2)
	assert.Equal(t, message.SenderUser, msgs[0].Sender)
	assert.Equal(t, message.SenderAssistant, msgs[1].Sender)

	// The workflow path never consults the provider.
	assert.Equal(t, 0, llm.CallCount())
}

// ────────────────────────────────────────────────────────────
// Scenario 2: Suspend on reply, extract, branch, capture a lead
// ────────────────────────────────────────────────────────────

// qualificationWorkflow asks for a budget, waits, extracts it, and
// captures a lead only on the qualified branch.
func qualificationWorkflow() models.CreateWorkflowRequest {
	return models.CreateWorkflowRequest{
		Name:        "Budget qualification",
		TriggerType: "keyword",
		TriggerConfig: map[string]any{
			"keyword": "quote",
		},
		Nodes: []models.WorkflowNodePayload{
			{ID: "n-start", Type: "start"},
			{ID: "n-ask", Type: "action", Config: map[string]any{
				"action_type": "send_message",
				"template":    "What budget do you have in mind?",
			}},
			{ID: "n-wait", Type: "wait_for_reply"},
			{ID: "n-extract", Type: "ai_extract", Config: map[string]any{
				"fields": []any{
					map[string]any{"name": "budget", "type": "number", "description": "stated budget"},
					map[string]any{"name": "customer_name", "type": "string", "description": "customer's name"},
				},
			}},
			{ID: "n-qualified", Type: "condition", Config: map[string]any{
				"variable": "budget",
				"operator": "greater_than",
				"value":    1000,
			}},
			{ID: "n-lead", Type: "lead_capture", Config: map[string]any{
				"name":   "{{customer_name}}",
				"status": "qualified",
				"notes":  "Budget {{budget}} from chat qualification",
			}},
			{ID: "n-thanks", Type: "action", Config: map[string]any{
				"action_type": "send_message",
				"template":    "Thanks {{customer_name}}, our team will reach out shortly.",
			}},
			{ID: "n-sorry", Type: "action", Config: map[string]any{
				"action_type": "send_message",
				"template":    "No worries, we have options for every budget.",
			}},
			{ID: "n-end", Type: "end"},
		},
		Edges: []models.WorkflowEdgePayload{
			{Source: "n-start", Target: "n-ask"},
			{Source: "n-ask", Target: "n-wait"},
			{Source: "n-wait", Target: "n-extract"},
			{Source: "n-extract", Target: "n-qualified"},
			{Source: "n-qualified", Target: "n-lead", Condition: "true"},
			{Source: "n-qualified", Target: "n-sorry", Condition: "false"},
			{Source: "n-lead", Target: "n-thanks"},
			{Source: "n-thanks", Target: "n-end"},
			{Source: "n-sorry", Target: "n-end"},
		},
	}
}

func TestE2E_SuspendResume_QualifiedLead(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted(LLMKindExtract, LLMScriptEntry{
		Text: `{"budget": 5000, "customer_name": "Dana"}`,
	})

	app := NewTestApp(t, WithLLMClient(llm))
	tenantID := app.CreateTenant(t, "Qualify Co")
	app.CreateWorkflow(t, tenantID, qualificationWorkflow())

	user := uniqueParticipant("visitor")

	// First message triggers the workflow; it asks and suspends.
	resp := app.SendChat(t, tenantID, user, "I'd like a quote please")
	assert.Equal(t, models.ChatStatusWorkflowProcessing, resp["status"])
	ids := executionIDs(t, resp)
	require.Len(t, ids, 1)
	execID := ids[0]

	app.WaitForAssistantMessage(t, tenantID, user, "What budget")
	app.WaitForExecutionStatus(t, execID, entexec.StatusSuspended)

	exec := app.GetExecution(t, execID)
	require.NotNil(t, exec.ResumePayload)
	assert.NotEmpty(t, exec.ResumePayload["node_id"])

	// The reply resumes the suspended run instead of starting a new one.
	resp = app.SendChat(t, tenantID, user, "Around $5k. I'm Dana by the way.")
	assert.Equal(t, models.ChatStatusWorkflowProcessing, resp["status"])
	assert.Equal(t, []string{execID}, executionIDs(t, resp))

	app.WaitForExecutionStatus(t, execID, entexec.StatusCompleted)
	app.WaitForAssistantMessage(t, tenantID, user, "Thanks Dana")

	// Extracted fields were merged into the run context.
	exec = app.GetExecution(t, execID)
	assert.EqualValues(t, 5000, exec.Context["budget"])
	assert.Equal(t, "Dana", exec.Context["customer_name"])
	assert.Equal(t, user, exec.Context["latest_trigger"].(map[string]any)["participant"])

	// The qualified branch captured the lead with the extracted details.
	leads := app.Leads(t, tenantID)
	require.Len(t, leads, 1)
	assert.Equal(t, "Dana", leads[0].Name)
	assert.Equal(t, "qualified", string(leads[0].Status))
	assert.EqualValues(t, 5000, leads[0].Value)
	assert.Equal(t, "workflow_automation", leads[0].Source)
	assert.Contains(t, leads[0].Notes, "Budget 5000")

	// Exactly one provider call: the extraction.
	assert.Equal(t, 1, llm.CallCount())

	// The false branch never ran.
	for _, step := range app.Steps(t, execID) {
		if step.NodeKind == "action" {
			assert.NotEqual(t, "No worries, we have options for every budget.", step.Output["message_body"])
		}
	}
}

func TestE2E_SuspendResume_UnqualifiedBranch(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted(LLMKindExtract, LLMScriptEntry{
		Text: `{"budget": 200, "customer_name": null}`,
	})

	app := NewTestApp(t, WithLLMClient(llm))
	tenantID := app.CreateTenant(t, "Unqualified Co")
	app.CreateWorkflow(t, tenantID, qualificationWorkflow())

	user := uniqueParticipant("visitor")
	resp := app.SendChat(t, tenantID, user, "Can I get a quote?")
	execID := executionIDs(t, resp)[0]

	app.WaitForExecutionStatus(t, execID, entexec.StatusSuspended)
	app.SendChat(t, tenantID, user, "Only about 200 dollars")

	app.WaitForExecutionStatus(t, execID, entexec.StatusCompleted)
	app.WaitForAssistantMessage(t, tenantID, user, "options for every budget")

	assert.Empty(t, app.Leads(t, tenantID))
}

// ────────────────────────────────────────────────────────────
// Scenario 3: No workflow matches — the fallback assistant answers
// ────────────────────────────────────────────────────────────

func TestE2E_FallbackAssistant(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddSequential(LLMScriptEntry{Text: "Happy to help! Our team is online on weekdays."})

	app := NewTestApp(t, WithLLMClient(llm))
	tenantID := app.CreateTenant(t, "Fallback Co")

	user := uniqueParticipant("visitor")
	resp := app.SendChat(t, tenantID, user, "Hello, when are you open?")

	assert.Equal(t, models.ChatStatusOK, resp["status"])
	require.NotNil(t, resp["reply"])
	assert.Equal(t, "Happy to help! Our team is online on weekdays.", resp["reply"])
	assert.Equal(t, 1, llm.CallCount())

	// Both sides are journaled; no execution was started.
	msgs := app.Messages(t, tenantID, user)
	require.Len(t, msgs, 2)
	assert.Equal(t, message.SenderAssistant, msgs[1].Sender)
	assert.Equal(t, 0, app.CountExecutions(t, tenantID))

	// The exchange lands in the prompt audit log asynchronously.
	require.Eventually(t, func() bool {
		n, err := app.DB.PromptExecution.Query().
			Where(promptexecution.TenantID(tenantID)).
			Count(context.Background())
		return err == nil && n == 1
	}, waitTimeout, waitInterval, "prompt execution was never logged")
}

// ────────────────────────────────────────────────────────────
// Scenario 4: Manual trigger from the dashboard
// ────────────────────────────────────────────────────────────

func TestE2E_ManualTrigger(t *testing.T) {
	app := NewTestApp(t)
	tenantID := app.CreateTenant(t, "Manual Co")

	req := linearKeywordWorkflow("Outreach blast", "", "Hi! We have news for you.")
	req.TriggerType = "manual"
	req.TriggerConfig = nil
	wfID := app.CreateWorkflow(t, tenantID, req)

	user := uniqueParticipant("visitor")
	execID := app.TriggerWorkflow(t, tenantID, wfID, map[string]any{"user_id": user})

	app.WaitForExecutionStatus(t, execID, entexec.StatusCompleted)
	app.WaitForAssistantMessage(t, tenantID, user, "We have news")

	exec := app.GetExecution(t, execID)
	assert.Equal(t, "manual", exec.TriggerEvent["kind"])
}
