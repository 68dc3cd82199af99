package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entexec "github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/ent/tenant"
	"github.com/interacai/flowcore/pkg/models"
	"github.com/interacai/flowcore/pkg/services"
)

// ────────────────────────────────────────────────────────────
// Arbitration: one inbound message, exactly one owner
// ────────────────────────────────────────────────────────────

// waitingWorkflow suspends right after the trigger so a reply can race
// other trigger candidates.
func waitingWorkflow(name, keyword, template string) models.CreateWorkflowRequest {
	return models.CreateWorkflowRequest{
		Name:        name,
		TriggerType: "keyword",
		TriggerConfig: map[string]any{
			"keyword": keyword,
		},
		Nodes: []models.WorkflowNodePayload{
			{ID: "n-start", Type: "start"},
			{ID: "n-wait", Type: "wait_for_reply"},
			{ID: "n-send", Type: "action", Config: map[string]any{
				"action_type": "send_message",
				"template":    template,
			}},
			{ID: "n-end", Type: "end"},
		},
		Edges: []models.WorkflowEdgePayload{
			{Source: "n-start", Target: "n-wait"},
			{Source: "n-wait", Target: "n-send"},
			{Source: "n-send", Target: "n-end"},
		},
	}
}

// A reply into a suspended conversation must resume the waiting run, even
// when its text matches another workflow's trigger. Without this, one
// conversation would be owned by two executions at once.
func TestE2E_ResumeBeatsNewTrigger(t *testing.T) {
	app := NewTestApp(t)
	tenantID := app.CreateTenant(t, "Exclusive Co")
	app.CreateWorkflow(t, tenantID, waitingWorkflow("Support intake", "support", "A human will pick this up."))
	app.CreateWorkflow(t, tenantID, linearKeywordWorkflow("Billing responder", "billing", "Invoices go out on the 1st."))

	user := uniqueParticipant("visitor")

	resp := app.SendChat(t, tenantID, user, "I need support")
	execID := executionIDs(t, resp)[0]
	app.WaitForExecutionStatus(t, execID, entexec.StatusSuspended)

	// The reply names the other workflow's keyword. The suspended run
	// still claims it.
	resp = app.SendChat(t, tenantID, user, "it's about billing")
	assert.Equal(t, models.ChatStatusWorkflowProcessing, resp["status"])
	assert.Equal(t, []string{execID}, executionIDs(t, resp))

	app.WaitForExecutionStatus(t, execID, entexec.StatusCompleted)
	app.WaitForAssistantMessage(t, tenantID, user, "A human will pick this up")

	// The billing workflow never started.
	assert.Equal(t, 1, app.CountExecutions(t, tenantID))
	for _, msg := range app.Messages(t, tenantID, user) {
		assert.NotContains(t, msg.Body, "Invoices")
	}
}

// A message matching several active workflows starts all of them; the
// chat response names every claiming run.
func TestE2E_MultipleMatchesAllStart(t *testing.T) {
	app := NewTestApp(t)
	tenantID := app.CreateTenant(t, "Multi Co")
	app.CreateWorkflow(t, tenantID, linearKeywordWorkflow("Demo reply", "demo", "Book a demo at example.com/demo."))
	app.CreateWorkflow(t, tenantID, linearKeywordWorkflow("Demo follow-up", "demo", "We also recorded a walkthrough."))

	user := uniqueParticipant("visitor")
	resp := app.SendChat(t, tenantID, user, "can I see a demo?")

	ids := executionIDs(t, resp)
	require.Len(t, ids, 2)
	for _, id := range ids {
		app.WaitForExecutionStatus(t, id, entexec.StatusCompleted)
	}
	app.WaitForAssistantMessage(t, tenantID, user, "example.com/demo")
	app.WaitForAssistantMessage(t, tenantID, user, "walkthrough")
}

// ────────────────────────────────────────────────────────────
// Arbitration: subscription gate
// ────────────────────────────────────────────────────────────

func TestE2E_ExpiredTenantBlocked(t *testing.T) {
	app := NewTestApp(t)
	tenantID := app.CreateTenantWithStatus(t, "Expired Co", tenant.SubscriptionStatusExpired)
	app.CreateWorkflow(t, tenantID, linearKeywordWorkflow("Pricing responder", "pricing", "Our plans start at $9/mo."))

	user := uniqueParticipant("visitor")
	resp := app.SendChat(t, tenantID, user, "what's your pricing?")

	assert.Equal(t, models.ChatStatusBlocked, resp["status"])
	assert.Equal(t, services.SubscriptionBlockedReply, resp["reply"])
	assert.Equal(t, 0, app.CountExecutions(t, tenantID))
}

// ────────────────────────────────────────────────────────────
// Arbitration: inactive workflows release to the fallback
// ────────────────────────────────────────────────────────────

func TestE2E_InactiveWorkflowFallsThrough(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddSequential(LLMScriptEntry{Text: "Our pricing starts low, happy to walk you through it."})

	app := NewTestApp(t, WithLLMClient(llm))
	tenantID := app.CreateTenant(t, "Inactive Co")

	req := linearKeywordWorkflow("Pricing responder", "pricing", "Our plans start at $9/mo.")
	inactive := false
	req.Active = &inactive
	app.CreateWorkflow(t, tenantID, req)

	user := uniqueParticipant("visitor")
	resp := app.SendChat(t, tenantID, user, "what's your pricing?")

	// No active workflow claimed it; the assistant answered instead.
	assert.Equal(t, models.ChatStatusOK, resp["status"])
	assert.Equal(t, "Our pricing starts low, happy to walk you through it.", resp["reply"])
	assert.Equal(t, 0, app.CountExecutions(t, tenantID))
}

// ────────────────────────────────────────────────────────────
// Arbitration: internal lead events ride the same front door
// ────────────────────────────────────────────────────────────

func TestE2E_LeadStatusEventTriggersWorkflow(t *testing.T) {
	app := NewTestApp(t)
	tenantID := app.CreateTenant(t, "Lead Event Co")

	app.CreateWorkflow(t, tenantID, models.CreateWorkflowRequest{
		Name:        "Qualified follow-up",
		TriggerType: "lead_event",
		TriggerConfig: map[string]any{
			"status": "qualified",
		},
		Nodes: []models.WorkflowNodePayload{
			{ID: "n-start", Type: "start"},
			{ID: "n-ticket", Type: "action", Config: map[string]any{
				"action_type": "create_ticket",
				"subject":     "Follow up with qualified lead",
				"priority":    "high",
			}},
			{ID: "n-end", Type: "end"},
		},
		Edges: []models.WorkflowEdgePayload{
			{Source: "n-start", Target: "n-ticket"},
			{Source: "n-ticket", Target: "n-end"},
		},
	})

	created := app.postJSON(t, "/api/v1/leads", tenantID, models.CreateLeadRequest{
		Name:  "Jordan Reeves",
		Email: "jordan@example.com",
	}, 201)
	leadID := created["id"].(string)

	// Moving the lead to qualified fires the internal event, which the
	// arbiter turns into an execution.
	status := "qualified"
	app.patchJSON(t, "/api/v1/leads/"+leadID, tenantID, models.UpdateLeadRequest{Status: &status}, 200)

	require.Eventually(t, func() bool {
		n, err := app.DB.Execution.Query().
			Where(entexec.TenantID(tenantID)).
			Count(context.Background())
		return err == nil && n == 1
	}, waitTimeout, waitInterval, "lead event never started a workflow")

	execs, err := app.DB.Execution.Query().
		Where(entexec.TenantID(tenantID)).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, execs, 1)
	app.WaitForExecutionStatus(t, execs[0].ID, entexec.StatusCompleted)
	assert.Equal(t, "qualified", execs[0].TriggerEvent["new_status"])

	tickets := app.Tickets(t, tenantID)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Follow up with qualified lead", tickets[0].Subject)
	assert.Equal(t, "high", string(tickets[0].Priority))

	// Creating the lead as "new" did not match the qualified predicate,
	// so exactly one run exists.
	assert.Equal(t, 1, app.CountExecutions(t, tenantID))
}
