package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entexec "github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/pkg/events"
	"github.com/interacai/flowcore/pkg/models"
	"github.com/interacai/flowcore/pkg/services"
)

// ────────────────────────────────────────────────────────────
// Live stream: the thread view sees the whole exchange
// ────────────────────────────────────────────────────────────

func TestE2E_ConversationStream(t *testing.T) {
	app := NewTestApp(t)
	tenantID := app.CreateTenant(t, "Stream Co")
	app.CreateWorkflow(t, tenantID, linearKeywordWorkflow(
		"Pricing responder", "pricing", "Our plans start at $9/mo."))

	user := uniqueParticipant("visitor")
	channel := events.ConversationChannel(services.ConversationID(tenantID, user))

	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	defer ws.Close()

	ws.WaitForEvent(t, "connection.established", 5*time.Second)
	require.NoError(t, ws.Subscribe(channel))
	ws.WaitForEvent(t, "subscription.confirmed", 5*time.Second)

	resp := app.SendChat(t, tenantID, user, "tell me about pricing")
	execID := executionIDs(t, resp)[0]
	app.WaitForExecutionStatus(t, execID, entexec.StatusCompleted)

	// The inbound message, the lifecycle transitions, and the workflow
	// reply all arrive on the one conversation channel.
	userMsg := ws.WaitForMatch(t, 10*time.Second, "user message.created", func(evt WSEvent) bool {
		return evt.Type == events.EventTypeMessageCreated && evt.Parsed["sender"] == "user"
	})
	assert.Equal(t, "tell me about pricing", userMsg.Parsed["body"])

	ws.WaitForMatch(t, 10*time.Second, "execution completed status", func(evt WSEvent) bool {
		return evt.Type == events.EventTypeExecutionStatus &&
			evt.Parsed["execution_id"] == execID &&
			evt.Parsed["status"] == "completed"
	})

	reply := ws.WaitForMatch(t, 10*time.Second, "assistant message.created", func(evt WSEvent) bool {
		return evt.Type == events.EventTypeMessageCreated && evt.Parsed["sender"] == "assistant"
	})
	assert.Equal(t, "Our plans start at $9/mo.", reply.Parsed["body"])
	assert.Equal(t, tenantID, reply.Parsed["tenant_id"])

	// Running precedes completed in the lifecycle feed.
	statuses := []string{}
	for _, evt := range ws.EventsByType(events.EventTypeExecutionStatus) {
		statuses = append(statuses, evt.Parsed["status"].(string))
	}
	assert.Contains(t, statuses, "running")
	assert.Equal(t, "completed", statuses[len(statuses)-1])
}

// ────────────────────────────────────────────────────────────
// Live stream: the tenant feed carries lead captures
// ────────────────────────────────────────────────────────────

func TestE2E_TenantFeed_LeadCaptured(t *testing.T) {
	app := NewTestApp(t)
	tenantID := app.CreateTenant(t, "Feed Co")

	req := models.CreateWorkflowRequest{
		Name:        "Capture on demand",
		TriggerType: "manual",
		Nodes: []models.WorkflowNodePayload{
			{ID: "n-start", Type: "start"},
			{ID: "n-lead", Type: "lead_capture", Config: map[string]any{
				"name":   "Walk-in customer",
				"status": "new",
			}},
			{ID: "n-end", Type: "end"},
		},
		Edges: []models.WorkflowEdgePayload{
			{Source: "n-start", Target: "n-lead"},
			{Source: "n-lead", Target: "n-end"},
		},
	}
	wfID := app.CreateWorkflow(t, tenantID, req)

	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	defer ws.Close()

	ws.WaitForEvent(t, "connection.established", 5*time.Second)
	require.NoError(t, ws.Subscribe(events.TenantChannel(tenantID)))
	ws.WaitForEvent(t, "subscription.confirmed", 5*time.Second)

	execID := app.TriggerWorkflow(t, tenantID, wfID, nil)
	app.WaitForExecutionStatus(t, execID, entexec.StatusCompleted)

	captured := ws.WaitForEvent(t, events.EventTypeLeadCaptured, 10*time.Second)
	assert.Equal(t, "Walk-in customer", captured.Parsed["name"])
	assert.Equal(t, tenantID, captured.Parsed["tenant_id"])
	assert.NotEmpty(t, captured.Parsed["lead_id"])
}

// ────────────────────────────────────────────────────────────
// Catch-up: a late subscriber replays the history it missed
// ────────────────────────────────────────────────────────────

func TestE2E_SubscribeReplaysHistory(t *testing.T) {
	app := NewTestApp(t)
	tenantID := app.CreateTenant(t, "Catchup Co")
	app.CreateWorkflow(t, tenantID, linearKeywordWorkflow(
		"Pricing responder", "pricing", "Our plans start at $9/mo."))

	user := uniqueParticipant("visitor")
	channel := events.ConversationChannel(services.ConversationID(tenantID, user))

	// The whole exchange happens before anyone is connected.
	resp := app.SendChat(t, tenantID, user, "pricing please")
	execID := executionIDs(t, resp)[0]
	app.WaitForExecutionStatus(t, execID, entexec.StatusCompleted)
	app.WaitForAssistantMessage(t, tenantID, user, "$9/mo")

	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	defer ws.Close()

	ws.WaitForEvent(t, "connection.established", 5*time.Second)
	require.NoError(t, ws.Subscribe(channel))
	ws.WaitForEvent(t, "subscription.confirmed", 5*time.Second)

	// Subscribe auto-replays the persisted events with their database
	// positions, so the client can resume from the last id it saw.
	replayed := ws.WaitForMatch(t, 10*time.Second, "replayed assistant message", func(evt WSEvent) bool {
		return evt.Type == events.EventTypeMessageCreated && evt.Parsed["sender"] == "assistant"
	})
	assert.Equal(t, "Our plans start at $9/mo.", replayed.Parsed["body"])
	assert.NotNil(t, replayed.Parsed["db_event_id"])

	userReplayed := ws.WaitForMatch(t, 10*time.Second, "replayed user message", func(evt WSEvent) bool {
		return evt.Type == events.EventTypeMessageCreated && evt.Parsed["sender"] == "user"
	})
	assert.Equal(t, "pricing please", userReplayed.Parsed["body"])
}
