package arbiter

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
	"github.com/interacai/flowcore/pkg/engine"
	"github.com/interacai/flowcore/pkg/models"
	"github.com/interacai/flowcore/pkg/queue"
	"github.com/interacai/flowcore/pkg/services"
)

// arbHarness bundles the services arbitration sits on top of.
type arbHarness struct {
	client        *ent.Client
	tenant        *ent.Tenant
	subscriptions *services.SubscriptionService
	workflows     *services.WorkflowService
	executions    *services.ExecutionService
	resolver      *Resolver
}

func newArbHarness(ctx context.Context, t *testing.T, client *ent.Client) *arbHarness {
	t.Helper()
	tn, err := client.Tenant.Create().
		SetID(uuid.New().String()).
		SetName("Arbitration Test Tenant").
		SetSubscriptionStatus(tenant.SubscriptionStatusActive).
		Save(ctx)
	require.NoError(t, err)

	subscriptions := services.NewSubscriptionService(client)
	workflows := services.NewWorkflowService(client)
	executions := services.NewExecutionService(client, workflows, queue.NewEnqueuer(client))
	return &arbHarness{
		client:        client,
		tenant:        tn,
		subscriptions: subscriptions,
		workflows:     workflows,
		executions:    executions,
		resolver:      NewResolver(client, subscriptions, workflows, executions),
	}
}

func (h *arbHarness) createWorkflow(ctx context.Context, t *testing.T, req models.CreateWorkflowRequest) (*ent.Workflow, map[string]string) {
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

// keywordRequest is a linear keyword-triggered workflow.
func keywordRequest(name, keyword string) models.CreateWorkflowRequest {
	return models.CreateWorkflowRequest{
		Name:        name,
		TriggerType: "keyword",
		TriggerConfig: map[string]any{
			"keyword": keyword,
		},
		Nodes: []models.WorkflowNodePayload{
			{ID: "n-start", Type: "start"},
			{ID: "n-send", Type: "action", Config: map[string]any{
				"action_type": "send_message",
				"template":    "Our plans start at $9/mo.",
			}},
			{ID: "n-end", Type: "end"},
		},
		Edges: []models.WorkflowEdgePayload{
			{Source: "n-start", Target: "n-send"},
			{Source: "n-send", Target: "n-end"},
		},
	}
}

// waitRequest is a keyword-triggered workflow that suspends on a wait node
// before replying.
func waitRequest(name, keyword string) models.CreateWorkflowRequest {
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
				"template":    "Thanks, got it.",
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

// bookingRequest is a keyword-triggered workflow whose booking node
// suspends on itself while awaiting a slot choice.
func bookingRequest(name, keyword string) models.CreateWorkflowRequest {
	return models.CreateWorkflowRequest{
		Name:        name,
		TriggerType: "keyword",
		TriggerConfig: map[string]any{
			"keyword": keyword,
		},
		Nodes: []models.WorkflowNodePayload{
			{ID: "n-start", Type: "start"},
			{ID: "n-book", Type: "appointment_booking"},
			{ID: "n-end", Type: "end"},
		},
		Edges: []models.WorkflowEdgePayload{
			{Source: "n-start", Target: "n-book"},
			{Source: "n-book", Target: "n-end"},
		},
	}
}

// suspendingExecutor satisfies queue.NodeExecutor: wait nodes emit the
// suspension signal, everything else completes with a marker output.
type suspendingExecutor struct {
	mu     sync.Mutex
	visits []string
}

func (s *suspendingExecutor) Execute(_ context.Context, node engine.Node, _ engine.Context) (map[string]any, error) {
	s.mu.Lock()
	s.visits = append(s.visits, node.Kind)
	s.mu.Unlock()

	if node.Kind == "wait_for_reply" {
		return map[string]any{
			engine.KeySignal:       engine.SignalSuspend,
			engine.KeyResumeNodeID: node.ID,
			"prompt_sent":          true,
		}, nil
	}
	return map[string]any{"status": node.Kind + "_done"}, nil
}

// twoPhaseExecutor suspends a booking node on its first visit and
// completes it on the revisit, mimicking propose-then-confirm.
type twoPhaseExecutor struct {
	mu     sync.Mutex
	visits []string
}

func (s *twoPhaseExecutor) Execute(_ context.Context, node engine.Node, execCtx engine.Context) (map[string]any, error) {
	s.mu.Lock()
	s.visits = append(s.visits, node.Kind)
	s.mu.Unlock()

	if node.Kind == "appointment_booking" && execCtx.LatestReply() == "" {
		return map[string]any{
			engine.KeySignal:       engine.SignalSuspend,
			engine.KeyResumeNodeID: node.ID,
			"offer_sent":           true,
		}, nil
	}
	return map[string]any{"status": node.Kind + "_done"}, nil
}

// drainDispatch runs due tasks through the dispatcher in FIFO order until
// none remain, finalizing each the way a worker would.
func drainDispatch(ctx context.Context, t *testing.T, client *ent.Client, d *queue.Dispatcher) int {
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
