package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/pkg/models"
	testdb "github.com/interacai/flowcore/test/database"
)

func TestExecutionService_StartForWorkflow(t *testing.T) {
	client := testdb.NewTestClient(t)
	workflowService := NewWorkflowService(client.Client)
	enqueuer := &recordingEnqueuer{}
	executionService := NewExecutionService(client.Client, workflowService, enqueuer)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")
	wf, err := workflowService.CreateWorkflow(ctx, tenant.ID, linearWorkflowRequest("Pricing autoresponder"))
	require.NoError(t, err)

	t.Run("creates pending execution and enqueues the start node", func(t *testing.T) {
		enqueuer.calls = nil
		event := models.NewMessageEvent(tenant.ID, "+15551230004", "whatsapp", "pricing please", nil)

		exec, err := executionService.StartForWorkflow(ctx, wf, event)
		require.NoError(t, err)
		assert.Equal(t, execution.StatusPending, exec.Status)
		assert.Equal(t, wf.ID, exec.WorkflowID)
		assert.Equal(t, tenant.ID, exec.TenantID)

		// The trigger event is stored flat with its kind alongside the
		// channel payload.
		assert.Equal(t, "pricing please", exec.TriggerEvent["message_body"])
		assert.Equal(t, models.EventKindMessageCreated, exec.TriggerEvent["kind"])

		// context.trigger mirrors the trigger event for template lookups.
		trigger, ok := exec.Context["trigger"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "+15551230004", trigger["participant"])
		assert.Equal(t, tenant.ID, exec.Context["tenant"])

		startNode, err := workflowService.StartNode(ctx, wf.ID)
		require.NoError(t, err)
		require.Len(t, enqueuer.calls, 1)
		assert.Equal(t, exec.ID, enqueuer.calls[0].executionID)
		assert.Equal(t, startNode.ID, enqueuer.calls[0].nodeID)
		assert.Nil(t, enqueuer.calls[0].payload)
	})

	t.Run("enqueue failure marks the execution failed", func(t *testing.T) {
		failing := &recordingEnqueuer{err: errors.New("queue unavailable")}
		brokenService := NewExecutionService(client.Client, workflowService, failing)

		event := models.NewMessageEvent(tenant.ID, "+15551230005", "whatsapp", "pricing", nil)
		_, err := brokenService.StartForWorkflow(ctx, wf, event)
		require.Error(t, err)

		resp, err := executionService.ListExecutions(ctx, tenant.ID, models.ExecutionFilters{Status: "failed"})
		require.NoError(t, err)
		require.Len(t, resp.Executions, 1)
		failed := resp.Executions[0]
		assert.NotNil(t, failed.ErrorMessage)
		assert.Contains(t, *failed.ErrorMessage, "queue unavailable")
		assert.NotNil(t, failed.CompletedAt)
	})
}

func TestExecutionService_StartManual(t *testing.T) {
	client := testdb.NewTestClient(t)
	workflowService := NewWorkflowService(client.Client)
	enqueuer := &recordingEnqueuer{}
	executionService := NewExecutionService(client.Client, workflowService, enqueuer)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")

	req := linearWorkflowRequest("Manual run target")
	inactive := false
	req.Active = &inactive
	wf, err := workflowService.CreateWorkflow(ctx, tenant.ID, req)
	require.NoError(t, err)

	t.Run("runs inactive workflows on demand", func(t *testing.T) {
		exec, err := executionService.StartManual(ctx, tenant.ID, wf.ID, map[string]any{"note": "dry run"})
		require.NoError(t, err)
		assert.Equal(t, "manual", exec.TriggerEvent["kind"])
		assert.Equal(t, "dry run", exec.TriggerEvent["note"])
		require.Len(t, enqueuer.calls, 1)
	})

	t.Run("returns ErrNotFound for missing workflow", func(t *testing.T) {
		_, err := executionService.StartManual(ctx, tenant.ID, "nonexistent", nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("scopes to the tenant", func(t *testing.T) {
		other := createTestTenant(t, client.Client, "Other Clinic")
		_, err := executionService.StartManual(ctx, other.ID, wf.ID, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExecutionService_Queries(t *testing.T) {
	client := testdb.NewTestClient(t)
	workflowService := NewWorkflowService(client.Client)
	enqueuer := &recordingEnqueuer{}
	executionService := NewExecutionService(client.Client, workflowService, enqueuer)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")
	wfA, err := workflowService.CreateWorkflow(ctx, tenant.ID, linearWorkflowRequest("Flow A"))
	require.NoError(t, err)
	wfB, err := workflowService.CreateWorkflow(ctx, tenant.ID, linearWorkflowRequest("Flow B"))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := executionService.StartManual(ctx, tenant.ID, wfA.ID, nil)
		require.NoError(t, err)
	}
	execB, err := executionService.StartManual(ctx, tenant.ID, wfB.ID, nil)
	require.NoError(t, err)

	t.Run("get returns the execution with its steps", func(t *testing.T) {
		loaded, err := executionService.GetExecution(ctx, tenant.ID, execB.ID)
		require.NoError(t, err)
		assert.Equal(t, execB.ID, loaded.ID)
		assert.Empty(t, loaded.Edges.Steps)
	})

	t.Run("get of missing execution returns ErrNotFound", func(t *testing.T) {
		_, err := executionService.GetExecution(ctx, tenant.ID, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lists newest first with total count", func(t *testing.T) {
		resp, err := executionService.ListExecutions(ctx, tenant.ID, models.ExecutionFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Executions, 3)
	})

	t.Run("filters by workflow", func(t *testing.T) {
		resp, err := executionService.ListExecutions(ctx, tenant.ID, models.ExecutionFilters{WorkflowID: wfA.ID})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
	})

	t.Run("filters by status", func(t *testing.T) {
		resp, err := executionService.ListExecutions(ctx, tenant.ID, models.ExecutionFilters{Status: "pending"})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)

		resp, err = executionService.ListExecutions(ctx, tenant.ID, models.ExecutionFilters{Status: "completed"})
		require.NoError(t, err)
		assert.Zero(t, resp.TotalCount)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		resp, err := executionService.ListExecutions(ctx, tenant.ID, models.ExecutionFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Executions, 2)
	})
}
