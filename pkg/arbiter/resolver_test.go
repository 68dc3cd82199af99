package arbiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/ent/executionstep"
	"github.com/interacai/flowcore/ent/steptask"
	"github.com/interacai/flowcore/ent/tenant"
	"github.com/interacai/flowcore/pkg/engine"
	"github.com/interacai/flowcore/pkg/models"
	"github.com/interacai/flowcore/pkg/queue"
	"github.com/interacai/flowcore/pkg/services"
	testdb "github.com/interacai/flowcore/test/database"
)

func TestArbitrateSubscriptionGate(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newArbHarness(ctx, t, client)
	h.createWorkflow(ctx, t, keywordRequest("Pricing responder", "pricing"))
	event := models.NewMessageEvent(h.tenant.ID, "+15550001111", "whatsapp", "what is pricing?", nil)

	setStatus := func(t *testing.T, status tenant.SubscriptionStatus) {
		t.Helper()
		_, err := h.tenant.Update().SetSubscriptionStatus(status).Save(ctx)
		require.NoError(t, err)
	}

	t.Run("expired tenant is blocked", func(t *testing.T) {
		setStatus(t, tenant.SubscriptionStatusExpired)
		outcome, err := h.resolver.Arbitrate(ctx, event)
		require.NoError(t, err)
		assert.Equal(t, OutcomeBlocked, outcome.Kind)
		assert.Equal(t, services.SubscriptionBlockedReply, outcome.Reply)
		assert.Empty(t, outcome.ExecutionIDs)
	})

	t.Run("suspended tenant is blocked", func(t *testing.T) {
		setStatus(t, tenant.SubscriptionStatusSuspended)
		outcome, err := h.resolver.Arbitrate(ctx, event)
		require.NoError(t, err)
		assert.Equal(t, OutcomeBlocked, outcome.Kind)
	})

	t.Run("overdue trial is blocked and demoted", func(t *testing.T) {
		_, err := h.tenant.Update().
			SetSubscriptionStatus(tenant.SubscriptionStatusTrial).
			SetTrialEndsAt(time.Now().Add(-24 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		outcome, err := h.resolver.Arbitrate(ctx, event)
		require.NoError(t, err)
		assert.Equal(t, OutcomeBlocked, outcome.Kind)

		demoted, err := client.Tenant.Get(ctx, h.tenant.ID)
		require.NoError(t, err)
		assert.Equal(t, tenant.SubscriptionStatusExpired, demoted.SubscriptionStatus)
	})

	t.Run("live trial passes the gate", func(t *testing.T) {
		_, err := h.tenant.Update().
			SetSubscriptionStatus(tenant.SubscriptionStatusTrial).
			SetTrialEndsAt(time.Now().Add(24 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		outcome, err := h.resolver.Arbitrate(ctx, event)
		require.NoError(t, err)
		assert.Equal(t, OutcomeStarted, outcome.Kind)
	})

	// Blocked messages never create executions.
	count, err := client.Execution.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "only the live-trial message starts a run")
}

func TestArbitrateStartsMatchingWorkflow(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newArbHarness(ctx, t, client)
	wf, byKey := h.createWorkflow(ctx, t, keywordRequest("Pricing responder", "pricing"))

	event := models.NewMessageEvent(h.tenant.ID, "+15550001111", "whatsapp", "what is pricing?", nil)
	outcome, err := h.resolver.Arbitrate(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, OutcomeStarted, outcome.Kind)
	require.Len(t, outcome.ExecutionIDs, 1)

	exec, err := client.Execution.Get(ctx, outcome.ExecutionIDs[0])
	require.NoError(t, err)
	assert.Equal(t, wf.ID, exec.WorkflowID)
	assert.Equal(t, h.tenant.ID, exec.TenantID)
	assert.Equal(t, "+15550001111", executionParticipant(exec))

	startTask, err := client.StepTask.Query().
		Where(steptask.ExecutionIDEQ(exec.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, byKey["n-start"], startTask.NodeID)
	assert.Equal(t, steptask.StatusPending, startTask.Status)

	// A non-matching message falls through to the chat path.
	outcome, err = h.resolver.Arbitrate(ctx,
		models.NewMessageEvent(h.tenant.ID, "+15550001111", "whatsapp", "hello there", nil))
	require.NoError(t, err)
	assert.Equal(t, OutcomeFallback, outcome.Kind)
	assert.Empty(t, outcome.ExecutionIDs)

	count, err := client.Execution.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "the fallback message starts nothing")
}

func TestArbitrateResumesSuspendedExecution(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newArbHarness(ctx, t, client)
	_, byKey := h.createWorkflow(ctx, t, waitRequest("Email collector", "verify"))

	sx := &suspendingExecutor{}
	d := queue.NewDispatcher(client, h.workflows, sx, nil)

	// Turn 1: trigger, then run to the suspension.
	outcome, err := h.resolver.Arbitrate(ctx,
		models.NewMessageEvent(h.tenant.ID, "+15550001111", "whatsapp", "please verify me", nil))
	require.NoError(t, err)
	require.Equal(t, OutcomeStarted, outcome.Kind)
	execID := outcome.ExecutionIDs[0]
	drainDispatch(ctx, t, client, d)

	suspended, err := client.Execution.Get(ctx, execID)
	require.NoError(t, err)
	require.Equal(t, execution.StatusSuspended, suspended.Status)

	// Turn 2: the reply resumes the run.
	reply := models.NewMessageEvent(h.tenant.ID, "+15550001111", "whatsapp", "my email is test_user@example.com", nil)
	outcome, err = h.resolver.Arbitrate(ctx, reply)
	require.NoError(t, err)
	assert.Equal(t, OutcomeResumed, outcome.Kind)
	assert.Equal(t, []string{execID}, outcome.ExecutionIDs)

	resumed, err := client.Execution.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusRunning, resumed.Status)
	assert.Empty(t, resumed.ResumePayload, "the resume pointer is consumed")
	assert.Equal(t, "my email is test_user@example.com", resumed.Context["latest_reply"])
	latestTrigger, ok := resumed.Context["latest_trigger"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, models.EventKindMessageCreated, latestTrigger["kind"])
	assert.Equal(t, true, resumed.Context["prompt_sent"], "pre-suspension context survives")

	waitStep, err := client.ExecutionStep.Query().
		Where(
			executionstep.ExecutionID(execID),
			executionstep.NodeKind("wait_for_reply"),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, executionstep.StatusCompleted, waitStep.Status)
	require.NotNil(t, waitStep.CompletedAt)
	assert.Equal(t, "my email is test_user@example.com", waitStep.Output[engine.KeyUserReply])

	// The wait node's successor is queued with the reply as payload.
	successor, err := client.StepTask.Query().
		Where(
			steptask.ExecutionIDEQ(execID),
			steptask.StatusEQ(steptask.StatusPending),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, byKey["n-send"], successor.NodeID)
	assert.Equal(t, "my email is test_user@example.com", successor.Payload[engine.KeyUserReply])

	// Drain to the end: the reply rides the payload into the context.
	drainDispatch(ctx, t, client, d)
	final, err := client.Execution.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCompleted, final.Status)
	assert.Equal(t, "my email is test_user@example.com", final.Context[engine.KeyUserReply])
	assert.Equal(t, []string{"start", "wait_for_reply", "action", "end"}, sx.visits)
}

func TestArbitrateResumeRerunsSelfSuspendingNode(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newArbHarness(ctx, t, client)
	_, byKey := h.createWorkflow(ctx, t, bookingRequest("Consult booking", "book"))

	sx := &twoPhaseExecutor{}
	d := queue.NewDispatcher(client, h.workflows, sx, nil)

	outcome, err := h.resolver.Arbitrate(ctx,
		models.NewMessageEvent(h.tenant.ID, "+15550001111", "whatsapp", "book me in", nil))
	require.NoError(t, err)
	require.Equal(t, OutcomeStarted, outcome.Kind)
	execID := outcome.ExecutionIDs[0]
	drainDispatch(ctx, t, client, d)

	suspended, err := client.Execution.Get(ctx, execID)
	require.NoError(t, err)
	require.Equal(t, execution.StatusSuspended, suspended.Status)
	assert.Equal(t, byKey["n-book"], suspended.ResumePayload["node_id"])

	outcome, err = h.resolver.Arbitrate(ctx,
		models.NewMessageEvent(h.tenant.ID, "+15550001111", "whatsapp", "the first one", nil))
	require.NoError(t, err)
	assert.Equal(t, OutcomeResumed, outcome.Kind)

	// The booking node itself is queued again, not its successor.
	rerun, err := client.StepTask.Query().
		Where(
			steptask.ExecutionIDEQ(execID),
			steptask.StatusEQ(steptask.StatusPending),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, byKey["n-book"], rerun.NodeID)

	drainDispatch(ctx, t, client, d)
	final, err := client.Execution.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCompleted, final.Status)
	assert.Equal(t, []string{"start", "appointment_booking", "appointment_booking", "end"}, sx.visits)

	// The suspended step stays as the journal of the propose visit; the
	// confirm visit gets its own completed step.
	bookSteps, err := client.ExecutionStep.Query().
		Where(
			executionstep.ExecutionID(execID),
			executionstep.NodeKind("appointment_booking"),
		).
		Order(ent.Asc(executionstep.FieldStartedAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, bookSteps, 2)
	assert.Equal(t, executionstep.StatusSuspended, bookSteps[0].Status)
	assert.Equal(t, executionstep.StatusCompleted, bookSteps[1].Status)
}

func TestArbitrateResumeBeatsTriggerMatching(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newArbHarness(ctx, t, client)
	h.createWorkflow(ctx, t, waitRequest("Email collector", "verify"))

	sx := &suspendingExecutor{}
	d := queue.NewDispatcher(client, h.workflows, sx, nil)

	outcome, err := h.resolver.Arbitrate(ctx,
		models.NewMessageEvent(h.tenant.ID, "+15550001111", "whatsapp", "please verify me", nil))
	require.NoError(t, err)
	require.Equal(t, OutcomeStarted, outcome.Kind)
	drainDispatch(ctx, t, client, d)

	// The reply matches the workflow's keyword too; the suspension still
	// takes precedence over starting a second run.
	outcome, err = h.resolver.Arbitrate(ctx,
		models.NewMessageEvent(h.tenant.ID, "+15550001111", "whatsapp", "verify again please", nil))
	require.NoError(t, err)
	assert.Equal(t, OutcomeResumed, outcome.Kind)

	count, err := client.Execution.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "no second execution starts")
}

func TestArbitrateOtherParticipantLeavesSuspensionAlone(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newArbHarness(ctx, t, client)
	h.createWorkflow(ctx, t, waitRequest("Email collector", "verify"))

	sx := &suspendingExecutor{}
	d := queue.NewDispatcher(client, h.workflows, sx, nil)

	outcome, err := h.resolver.Arbitrate(ctx,
		models.NewMessageEvent(h.tenant.ID, "+15550001111", "whatsapp", "please verify me", nil))
	require.NoError(t, err)
	require.Equal(t, OutcomeStarted, outcome.Kind)
	suspendedID := outcome.ExecutionIDs[0]
	drainDispatch(ctx, t, client, d)

	t.Run("non-matching message falls back", func(t *testing.T) {
		outcome, err := h.resolver.Arbitrate(ctx,
			models.NewMessageEvent(h.tenant.ID, "+15550002222", "whatsapp", "hello there", nil))
		require.NoError(t, err)
		assert.Equal(t, OutcomeFallback, outcome.Kind)
	})

	t.Run("matching message starts a fresh run", func(t *testing.T) {
		outcome, err := h.resolver.Arbitrate(ctx,
			models.NewMessageEvent(h.tenant.ID, "+15550002222", "whatsapp", "verify me too", nil))
		require.NoError(t, err)
		assert.Equal(t, OutcomeStarted, outcome.Kind)
		assert.NotContains(t, outcome.ExecutionIDs, suspendedID)
	})

	// The original suspension is untouched either way.
	still, err := client.Execution.Get(ctx, suspendedID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusSuspended, still.Status)
	assert.NotEmpty(t, still.ResumePayload)
}

func TestArbitrateResumeCompletesTerminalWait(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newArbHarness(ctx, t, client)
	req := models.CreateWorkflowRequest{
		Name:        "Dead-end wait",
		TriggerType: "keyword",
		TriggerConfig: map[string]any{
			"keyword": "confirm",
		},
		Nodes: []models.WorkflowNodePayload{
			{ID: "n-start", Type: "start"},
			{ID: "n-wait", Type: "wait_for_reply"},
		},
		Edges: []models.WorkflowEdgePayload{
			{Source: "n-start", Target: "n-wait"},
		},
	}
	h.createWorkflow(ctx, t, req)

	sx := &suspendingExecutor{}
	d := queue.NewDispatcher(client, h.workflows, sx, nil)

	outcome, err := h.resolver.Arbitrate(ctx,
		models.NewMessageEvent(h.tenant.ID, "+15550001111", "whatsapp", "confirm my order", nil))
	require.NoError(t, err)
	require.Equal(t, OutcomeStarted, outcome.Kind)
	execID := outcome.ExecutionIDs[0]
	drainDispatch(ctx, t, client, d)

	outcome, err = h.resolver.Arbitrate(ctx,
		models.NewMessageEvent(h.tenant.ID, "+15550001111", "whatsapp", "yes", nil))
	require.NoError(t, err)
	assert.Equal(t, OutcomeResumed, outcome.Kind)

	final, err := client.Execution.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCompleted, final.Status, "a wait with no successors ends the run")
	require.NotNil(t, final.CompletedAt)

	pending, err := client.StepTask.Query().
		Where(steptask.StatusEQ(steptask.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)
}

func TestHandleLeadEventStartsWorkflow(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newArbHarness(ctx, t, client)
	req := keywordRequest("Qualified follow-up", "")
	req.TriggerType = "lead_event"
	req.TriggerConfig = map[string]any{"status": "qualified"}
	wf, _ := h.createWorkflow(ctx, t, req)

	h.resolver.HandleLeadEvent(ctx,
		models.NewLeadStatusEvent(h.tenant.ID, "lead-1", "new", "qualified"))

	execs, err := client.Execution.Query().
		Where(execution.WorkflowID(wf.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, execs, 1, "a matching status change starts exactly one run")
	trigger, ok := execs[0].Context["trigger"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "qualified", trigger["new_status"])

	// A non-matching status change starts nothing.
	h.resolver.HandleLeadEvent(ctx,
		models.NewLeadStatusEvent(h.tenant.ID, "lead-1", "qualified", "converted"))

	count, err := client.Execution.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
