package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/ent/executionstep"
	"github.com/interacai/flowcore/ent/steptask"
	"github.com/interacai/flowcore/pkg/engine"
	"github.com/interacai/flowcore/pkg/models"
	testdb "github.com/interacai/flowcore/test/database"
)

// recordingPublisher captures execution status transitions.
type recordingPublisher struct {
	mu       sync.Mutex
	statuses []execution.Status
}

func (r *recordingPublisher) PublishExecutionStatus(_ context.Context, _ *ent.Execution, status execution.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, status)
	return nil
}

func (r *recordingPublisher) seen() []execution.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]execution.Status, len(r.statuses))
	copy(out, r.statuses)
	return out
}

func TestDispatcherRunsLinearWorkflow(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	wf, _ := h.createWorkflow(ctx, t, linearRequest("Pricing follow-up"))
	exec := h.startExecution(ctx, t, wf)

	sx := &scriptedNodeExecutor{}
	pub := &recordingPublisher{}
	d := NewDispatcher(client, h.workflows, sx, pub)

	dispatched := drainTasks(ctx, t, client, d)
	assert.Equal(t, 3, dispatched)
	assert.Equal(t, []string{"start", "action", "end"}, sx.visited())

	final, err := client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCompleted, final.Status)
	require.NotNil(t, final.CompletedAt)

	// Last writer wins in the merged context; trigger and tenant survive.
	assert.Equal(t, "end_done", final.Context["status"])
	assert.Equal(t, h.tenant.ID, final.Context["tenant"])
	trigger, ok := final.Context["trigger"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pricing please", trigger["message_body"])

	steps, err := client.ExecutionStep.Query().
		Where(executionstep.ExecutionID(exec.ID)).
		Order(ent.Asc(executionstep.FieldStartedAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	for _, step := range steps {
		assert.Equal(t, executionstep.StatusCompleted, step.Status)
		require.NotNil(t, step.CompletedAt)
	}
	assert.Equal(t, "start", steps[0].NodeKind)
	assert.Equal(t, "action", steps[1].NodeKind)
	assert.Equal(t, "end", steps[2].NodeKind)
	assert.Equal(t, "action_done", steps[1].Output["status"])
	// The first step's input snapshot is the fresh trigger context.
	assert.Equal(t, h.tenant.ID, steps[0].Input["tenant"])

	tasks, err := client.StepTask.Query().
		Where(steptask.ExecutionIDEQ(exec.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for _, task := range tasks {
		assert.Equal(t, steptask.StatusCompleted, task.Status)
	}

	assert.Equal(t, []execution.Status{execution.StatusRunning, execution.StatusCompleted}, pub.seen())
}

func TestDispatcherSuspendsOnWaitNode(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	req := models.CreateWorkflowRequest{
		Name:        "Slot follow-up",
		TriggerType: "keyword",
		TriggerConfig: map[string]any{
			"keyword": "book",
		},
		Nodes: []models.WorkflowNodePayload{
			{ID: "n-start", Type: "start"},
			{ID: "n-wait", Type: "wait_for_reply"},
			{ID: "n-send", Type: "action", Config: map[string]any{
				"action_type": "send_message",
				"template":    "Got it.",
			}},
			{ID: "n-end", Type: "end"},
		},
		Edges: []models.WorkflowEdgePayload{
			{Source: "n-start", Target: "n-wait"},
			{Source: "n-wait", Target: "n-send"},
			{Source: "n-send", Target: "n-end"},
		},
	}
	wf, byKey := h.createWorkflow(ctx, t, req)
	exec := h.startExecution(ctx, t, wf)

	sx := &scriptedNodeExecutor{
		outputs: map[string]map[string]any{
			"wait_for_reply": {
				engine.KeySignal:       engine.SignalSuspend,
				engine.KeyResumeNodeID: byKey["n-wait"],
				"prompt_sent":          true,
			},
		},
	}
	pub := &recordingPublisher{}
	d := NewDispatcher(client, h.workflows, sx, pub)

	dispatched := drainTasks(ctx, t, client, d)
	assert.Equal(t, 2, dispatched, "start and wait dispatch; nothing after the suspension")

	suspended, err := client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusSuspended, suspended.Status)
	require.NotNil(t, suspended.ResumePayload)
	assert.Equal(t, byKey["n-wait"], suspended.ResumePayload["node_id"])

	// The signal keys are consumed by the dispatcher, not persisted.
	assert.Equal(t, true, suspended.Context["prompt_sent"])
	assert.NotContains(t, suspended.Context, engine.KeySignal)
	assert.NotContains(t, suspended.Context, engine.KeyResumeNodeID)

	waitStep, err := client.ExecutionStep.Query().
		Where(
			executionstep.ExecutionID(exec.ID),
			executionstep.NodeKind("wait_for_reply"),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, executionstep.StatusSuspended, waitStep.Status)
	assert.Equal(t, waitStep.ID, suspended.ResumePayload["step_id"])

	pending, err := client.StepTask.Query().
		Where(
			steptask.ExecutionIDEQ(exec.ID),
			steptask.StatusEQ(steptask.StatusPending),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending, "a suspended execution owes the queue nothing")

	assert.Equal(t, []execution.Status{execution.StatusRunning, execution.StatusSuspended}, pub.seen())
}

func TestDispatcherDelaySchedulesSuccessor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	req := models.CreateWorkflowRequest{
		Name:        "Nudge after an hour",
		TriggerType: "keyword",
		TriggerConfig: map[string]any{
			"keyword": "demo",
		},
		Nodes: []models.WorkflowNodePayload{
			{ID: "n-start", Type: "start"},
			{ID: "n-delay", Type: "time_delay", Config: map[string]any{"seconds": 300.0}},
			{ID: "n-send", Type: "action", Config: map[string]any{
				"action_type": "send_message",
				"template":    "Still interested?",
			}},
			{ID: "n-end", Type: "end"},
		},
		Edges: []models.WorkflowEdgePayload{
			{Source: "n-start", Target: "n-delay"},
			{Source: "n-delay", Target: "n-send"},
			{Source: "n-send", Target: "n-end"},
		},
	}
	wf, byKey := h.createWorkflow(ctx, t, req)
	exec := h.startExecution(ctx, t, wf)

	sx := &scriptedNodeExecutor{
		outputs: map[string]map[string]any{
			"time_delay": {
				engine.KeySignal:  engine.SignalDelay,
				engine.KeySeconds: 300,
			},
		},
	}
	d := NewDispatcher(client, h.workflows, sx, nil)

	dispatched := drainTasks(ctx, t, client, d)
	assert.Equal(t, 2, dispatched, "the successor is scheduled in the future, not runnable now")

	running, err := client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusRunning, running.Status)
	assert.NotContains(t, running.Context, engine.KeySeconds)

	deferred, err := client.StepTask.Query().
		Where(
			steptask.ExecutionIDEQ(exec.ID),
			steptask.StatusEQ(steptask.StatusPending),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, byKey["n-send"], deferred.NodeID)
	assert.WithinDuration(t, time.Now().Add(300*time.Second), deferred.ScheduledAt, 5*time.Second)

	delayStep, err := client.ExecutionStep.Query().
		Where(
			executionstep.ExecutionID(exec.ID),
			executionstep.NodeKind("time_delay"),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, executionstep.StatusCompleted, delayStep.Status)
}

func TestDispatcherFollowsConditionBranch(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	req := models.CreateWorkflowRequest{
		Name:        "Urgency triage",
		TriggerType: "keyword",
		TriggerConfig: map[string]any{
			"keyword": "help",
		},
		Nodes: []models.WorkflowNodePayload{
			{ID: "n-start", Type: "start"},
			{ID: "n-cond", Type: "condition", Config: map[string]any{
				"variable": "trigger.message_body",
				"operator": "contains",
				"value":    "urgent",
			}},
			{ID: "n-yes", Type: "action", Config: map[string]any{
				"action_type": "create_ticket",
				"subject":     "Urgent request",
			}},
			{ID: "n-no", Type: "action", Config: map[string]any{
				"action_type": "send_message",
				"template":    "We'll get back to you soon.",
			}},
			{ID: "n-end", Type: "end"},
		},
		Edges: []models.WorkflowEdgePayload{
			{Source: "n-start", Target: "n-cond"},
			{Source: "n-cond", Target: "n-yes", Condition: "true"},
			{Source: "n-cond", Target: "n-no", Condition: "false"},
			{Source: "n-yes", Target: "n-end"},
			{Source: "n-no", Target: "n-end"},
		},
	}
	wf, byKey := h.createWorkflow(ctx, t, req)
	exec := h.startExecution(ctx, t, wf)

	sx := &scriptedNodeExecutor{
		outputs: map[string]map[string]any{
			"condition": {engine.KeyConditionEval: "true"},
		},
	}
	d := NewDispatcher(client, h.workflows, sx, nil)

	// Dispatch start, then the condition node only.
	firstTwo := 0
	for firstTwo < 2 {
		task, err := client.StepTask.Query().
			Where(
				steptask.StatusEQ(steptask.StatusPending),
				steptask.ScheduledAtLTE(time.Now()),
			).
			Order(ent.Asc(steptask.FieldCreatedAt)).
			First(ctx)
		require.NoError(t, err)
		task, err = task.Update().SetStatus(steptask.StatusInProgress).Save(ctx)
		require.NoError(t, err)
		result := d.Execute(ctx, task)
		require.NotNil(t, result)
		require.Equal(t, steptask.StatusCompleted, result.Status)
		_, err = client.StepTask.UpdateOneID(task.ID).SetStatus(result.Status).Save(ctx)
		require.NoError(t, err)
		firstTwo++
	}

	pending, err := client.StepTask.Query().
		Where(
			steptask.ExecutionIDEQ(exec.ID),
			steptask.StatusEQ(steptask.StatusPending),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1, "only the matching guard's branch is enqueued")
	assert.Equal(t, byKey["n-yes"], pending[0].NodeID)

	// Finish the run down the chosen branch.
	drainTasks(ctx, t, client, d)
	assert.Equal(t, []string{"start", "condition", "action", "end"}, sx.visited())

	final, err := client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCompleted, final.Status)
}

func TestDispatcherDropsStaleTask(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	sx := &scriptedNodeExecutor{}
	d := NewDispatcher(client, h.workflows, sx, nil)

	t.Run("execution already finished", func(t *testing.T) {
		wf, _ := h.createWorkflow(ctx, t, linearRequest("Finished run"))
		exec := h.startExecution(ctx, t, wf)

		_, err := exec.Update().
			SetStatus(execution.StatusCompleted).
			SetCompletedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)

		task, err := client.StepTask.Query().
			Where(steptask.ExecutionIDEQ(exec.ID)).
			Only(ctx)
		require.NoError(t, err)

		result := d.Execute(ctx, task)
		require.NotNil(t, result)
		assert.Equal(t, steptask.StatusCancelled, result.Status)
		assert.NoError(t, result.Error)

		steps, err := client.ExecutionStep.Query().
			Where(executionstep.ExecutionID(exec.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, steps, "a dropped task leaves no journal entry")
	})

	t.Run("node no longer exists", func(t *testing.T) {
		wf, _ := h.createWorkflow(ctx, t, linearRequest("Edited away"))
		exec := h.startExecution(ctx, t, wf)

		enq := NewEnqueuer(client)
		require.NoError(t, enq.Enqueue(ctx, exec.ID, "node-that-was-deleted", nil, time.Now()))

		task, err := client.StepTask.Query().
			Where(
				steptask.ExecutionIDEQ(exec.ID),
				steptask.NodeID("node-that-was-deleted"),
			).
			Only(ctx)
		require.NoError(t, err)

		result := d.Execute(ctx, task)
		require.NotNil(t, result)
		assert.Equal(t, steptask.StatusCancelled, result.Status)

		// The execution itself keeps its current status.
		current, err := client.Execution.Get(ctx, exec.ID)
		require.NoError(t, err)
		assert.Equal(t, execution.StatusPending, current.Status)
	})
}

func TestDispatcherNodeFailureKeepsExecutionRunning(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	wf, _ := h.createWorkflow(ctx, t, linearRequest("Stalls mid-flow"))
	exec := h.startExecution(ctx, t, wf)

	sx := &scriptedNodeExecutor{
		errs: map[string]error{"action": errors.New("unknown node kind: \"bogus\"")},
	}
	d := NewDispatcher(client, h.workflows, sx, nil)

	dispatched := drainTasks(ctx, t, client, d)
	assert.Equal(t, 2, dispatched, "start dispatches, the action fails, nothing follows")

	stalled, err := client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusRunning, stalled.Status,
		"a node failure stalls the branch without failing the execution")

	failedStep, err := client.ExecutionStep.Query().
		Where(
			executionstep.ExecutionID(exec.ID),
			executionstep.NodeKind("action"),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, executionstep.StatusFailed, failedStep.Status)
	require.NotNil(t, failedStep.Error)
	assert.Contains(t, *failedStep.Error, "unknown node kind")

	failedTask, err := client.StepTask.Query().
		Where(
			steptask.ExecutionIDEQ(exec.ID),
			steptask.StatusEQ(steptask.StatusFailed),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, failedTask)

	pending, err := client.StepTask.Query().
		Where(
			steptask.ExecutionIDEQ(exec.ID),
			steptask.StatusEQ(steptask.StatusPending),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)
}

func TestDispatcherMergesTaskPayload(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	wf, byKey := h.createWorkflow(ctx, t, linearRequest("Resume carrier"))
	exec := h.startExecution(ctx, t, wf)

	// Replace the start task with one aimed mid-flow carrying a resume
	// payload, the way the arbitration path re-activates a wait.
	_, err := client.StepTask.Delete().
		Where(steptask.ExecutionIDEQ(exec.ID)).
		Exec(ctx)
	require.NoError(t, err)
	enq := NewEnqueuer(client)
	require.NoError(t, enq.Enqueue(ctx, exec.ID, byKey["n-send"],
		map[string]any{engine.KeyUserReply: "tomorrow at noon"}, time.Now()))

	sx := &scriptedNodeExecutor{}
	d := NewDispatcher(client, h.workflows, sx, nil)
	drainTasks(ctx, t, client, d)

	final, err := client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCompleted, final.Status)
	assert.Equal(t, "tomorrow at noon", final.Context[engine.KeyUserReply])

	sendStep, err := client.ExecutionStep.Query().
		Where(
			executionstep.ExecutionID(exec.ID),
			executionstep.NodeKind("action"),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tomorrow at noon", sendStep.Input[engine.KeyUserReply],
		"the payload is visible to the node it was enqueued for")
}
