package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/steptask"
	"github.com/interacai/flowcore/ent/tenant"
	"github.com/interacai/flowcore/ent/workflownode"
	"github.com/interacai/flowcore/pkg/config"
	"github.com/interacai/flowcore/pkg/engine"
	"github.com/interacai/flowcore/pkg/models"
	"github.com/interacai/flowcore/pkg/services"
)

// queueHarness bundles the services a dispatched workflow needs.
type queueHarness struct {
	client     *ent.Client
	tenant     *ent.Tenant
	workflows  *services.WorkflowService
	executions *services.ExecutionService
}

func newQueueHarness(ctx context.Context, t *testing.T, client *ent.Client) *queueHarness {
	t.Helper()
	tn, err := client.Tenant.Create().
		SetID(uuid.New().String()).
		SetName("Queue Test Tenant").
		SetSubscriptionStatus(tenant.SubscriptionStatusActive).
		Save(ctx)
	require.NoError(t, err)

	workflows := services.NewWorkflowService(client)
	return &queueHarness{
		client:     client,
		tenant:     tn,
		workflows:  workflows,
		executions: services.NewExecutionService(client, workflows, NewEnqueuer(client)),
	}
}

// createWorkflow persists a definition and returns it with the mapping
// from builder keys to storage node ids.
func (h *queueHarness) createWorkflow(ctx context.Context, t *testing.T, req models.CreateWorkflowRequest) (*ent.Workflow, map[string]string) {
	t.Helper()
	wf, err := h.workflows.CreateWorkflow(ctx, h.tenant.ID, req)
	require.NoError(t, err)

	nodes, err := h.client.WorkflowNode.Query().
		Where(workflownode.WorkflowID(wf.ID)).
		All(ctx)
	require.NoError(t, err)

	byKey := make(map[string]string, len(nodes))
	for _, n := range nodes {
		byKey[n.Key] = n.ID
	}
	return wf, byKey
}

// startExecution creates a pending execution whose start task is already
// on the queue.
func (h *queueHarness) startExecution(ctx context.Context, t *testing.T, wf *ent.Workflow) *ent.Execution {
	t.Helper()
	event := models.NewMessageEvent(h.tenant.ID, "+15550001111", "whatsapp", "pricing please", nil)
	exec, err := h.executions.StartForWorkflow(ctx, wf, event)
	require.NoError(t, err)
	return exec
}

// linearRequest is a minimal valid definition: start -> send_message -> end.
func linearRequest(name string) models.CreateWorkflowRequest {
	return models.CreateWorkflowRequest{
		Name:        name,
		TriggerType: "keyword",
		TriggerConfig: map[string]any{
			"keyword": "pricing",
		},
		Nodes: []models.WorkflowNodePayload{
			{ID: "n-start", Type: "start"},
			{ID: "n-send", Type: "action", Config: map[string]any{
				"action_type": "send_message",
				"template":    "We have plans from $9/mo.",
			}},
			{ID: "n-end", Type: "end"},
		},
		Edges: []models.WorkflowEdgePayload{
			{Source: "n-start", Target: "n-send"},
			{Source: "n-send", Target: "n-end"},
		},
	}
}

// scriptedNodeExecutor returns canned outputs by node kind and records the
// visit order. Kinds without a script complete with a marker output.
type scriptedNodeExecutor struct {
	mu      sync.Mutex
	visits  []string
	outputs map[string]map[string]any
	errs    map[string]error
}

func (s *scriptedNodeExecutor) Execute(_ context.Context, node engine.Node, _ engine.Context) (map[string]any, error) {
	s.mu.Lock()
	s.visits = append(s.visits, node.Kind)
	s.mu.Unlock()

	if err := s.errs[node.Kind]; err != nil {
		return nil, err
	}
	if out, ok := s.outputs[node.Kind]; ok {
		return out, nil
	}
	return map[string]any{"status": node.Kind + "_done"}, nil
}

func (s *scriptedNodeExecutor) visited() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.visits))
	copy(out, s.visits)
	return out
}

// drainTasks dispatches runnable tasks in FIFO order until none are due,
// finalizing each task the way a worker would. Returns the dispatch count.
func drainTasks(ctx context.Context, t *testing.T, client *ent.Client, d *Dispatcher) int {
	t.Helper()
	dispatched := 0
	for {
		task, err := client.StepTask.Query().
			Where(
				steptask.StatusEQ(steptask.StatusPending),
				steptask.ScheduledAtLTE(time.Now()),
			).
			Order(ent.Asc(steptask.FieldCreatedAt)).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return dispatched
			}
			require.NoError(t, err)
		}

		task, err = task.Update().SetStatus(steptask.StatusInProgress).Save(ctx)
		require.NoError(t, err)

		result := d.Execute(ctx, task)
		require.NotNil(t, result)

		_, err = client.StepTask.UpdateOneID(task.ID).SetStatus(result.Status).Save(ctx)
		require.NoError(t, err)

		dispatched++
		if dispatched > 32 {
			t.Fatal("dispatch loop did not converge")
		}
	}
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentTasks:      10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		TaskTimeout:             30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}
