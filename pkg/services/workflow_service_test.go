package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent/workflow"
	"github.com/interacai/flowcore/ent/workflownode"
	"github.com/interacai/flowcore/pkg/engine"
	"github.com/interacai/flowcore/pkg/models"
	testdb "github.com/interacai/flowcore/test/database"
)

func TestWorkflowService_CreateWorkflow(t *testing.T) {
	client := testdb.NewTestClient(t)
	workflowService := NewWorkflowService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")

	t.Run("stores the graph with server-side node ids", func(t *testing.T) {
		wf, err := workflowService.CreateWorkflow(ctx, tenant.ID, linearWorkflowRequest("Pricing autoresponder"))
		require.NoError(t, err)
		assert.Equal(t, workflow.TriggerKindKeyword, wf.TriggerKind)
		assert.True(t, wf.IsActive)

		loaded, err := workflowService.GetWorkflow(ctx, tenant.ID, wf.ID)
		require.NoError(t, err)
		require.Len(t, loaded.Edges.Nodes, 3)
		require.Len(t, loaded.Edges.Edges, 2)

		byKey := map[string]string{}
		for _, n := range loaded.Edges.Nodes {
			// Builder keys survive as keys, never as ids.
			assert.NotEqual(t, n.Key, n.ID)
			byKey[n.Key] = n.ID
		}
		require.Contains(t, byKey, "n-start")
		require.Contains(t, byKey, "n-send")

		for _, e := range loaded.Edges.Edges {
			assert.NotEmpty(t, e.SourceNodeID)
			assert.NotEmpty(t, e.TargetNodeID)
		}
	})

	t.Run("keeps node config and guards", func(t *testing.T) {
		req := models.CreateWorkflowRequest{
			Name:        "Qualification branch",
			TriggerType: "intent",
			TriggerConfig: map[string]any{
				"intent": "booking",
			},
			Nodes: []models.WorkflowNodePayload{
				{ID: "a", Type: "start"},
				{ID: "b", Type: "condition", Config: map[string]any{
					"field": "trigger.message_body", "operator": "contains", "value": "urgent",
				}},
				{ID: "c", Type: "end"},
				{ID: "d", Type: "end"},
			},
			Edges: []models.WorkflowEdgePayload{
				{Source: "a", Target: "b"},
				{Source: "b", Target: "c", Condition: "true"},
				{Source: "b", Target: "d", Condition: "false"},
			},
		}
		wf, err := workflowService.CreateWorkflow(ctx, tenant.ID, req)
		require.NoError(t, err)

		edges, err := workflowService.Edges(ctx, wf.ID)
		require.NoError(t, err)
		guards := map[string]int{}
		for _, e := range edges {
			if e.Guard != nil {
				guards[*e.Guard]++
			}
		}
		assert.Equal(t, map[string]int{"true": 1, "false": 1}, guards)

		loaded, err := workflowService.GetWorkflow(ctx, tenant.ID, wf.ID)
		require.NoError(t, err)
		for _, n := range loaded.Edges.Nodes {
			if n.Kind == workflownode.KindCondition {
				assert.Equal(t, "urgent", n.Config["value"])
			}
		}
	})

	t.Run("inactive on request", func(t *testing.T) {
		req := linearWorkflowRequest("Draft workflow")
		inactive := false
		req.Active = &inactive

		wf, err := workflowService.CreateWorkflow(ctx, tenant.ID, req)
		require.NoError(t, err)
		assert.False(t, wf.IsActive)
	})

	t.Run("validates name required", func(t *testing.T) {
		req := linearWorkflowRequest("")
		_, err := workflowService.CreateWorkflow(ctx, tenant.ID, req)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown trigger type", func(t *testing.T) {
		req := linearWorkflowRequest("Bad trigger")
		req.TriggerType = "cron"
		_, err := workflowService.CreateWorkflow(ctx, tenant.ID, req)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects invalid graphs", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*models.CreateWorkflowRequest)
		}{
			{
				name: "two start nodes",
				mutate: func(req *models.CreateWorkflowRequest) {
					req.Nodes = append(req.Nodes, models.WorkflowNodePayload{ID: "n-start-2", Type: "start"})
				},
			},
			{
				name: "no start node",
				mutate: func(req *models.CreateWorkflowRequest) {
					req.Nodes = req.Nodes[1:]
					req.Edges = req.Edges[1:]
				},
			},
			{
				name: "dangling edge",
				mutate: func(req *models.CreateWorkflowRequest) {
					req.Edges = append(req.Edges, models.WorkflowEdgePayload{Source: "n-send", Target: "ghost"})
				},
			},
			{
				name: "self loop",
				mutate: func(req *models.CreateWorkflowRequest) {
					req.Edges = append(req.Edges, models.WorkflowEdgePayload{Source: "n-send", Target: "n-send"})
				},
			},
			{
				name: "cycle",
				mutate: func(req *models.CreateWorkflowRequest) {
					req.Edges = append(req.Edges, models.WorkflowEdgePayload{Source: "n-end", Target: "n-send"})
				},
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := linearWorkflowRequest("Invalid graph")
				tt.mutate(&req)
				_, err := workflowService.CreateWorkflow(ctx, tenant.ID, req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("nothing persists when validation fails", func(t *testing.T) {
		req := linearWorkflowRequest("Ghost workflow")
		req.Edges = append(req.Edges, models.WorkflowEdgePayload{Source: "n-send", Target: "phantom"})
		_, err := workflowService.CreateWorkflow(ctx, tenant.ID, req)
		require.Error(t, err)

		wfs, err := workflowService.ListWorkflows(ctx, tenant.ID)
		require.NoError(t, err)
		for _, wf := range wfs {
			assert.NotEqual(t, "Ghost workflow", wf.Name)
		}
	})
}

func TestWorkflowService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	workflowService := NewWorkflowService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")

	wf, err := workflowService.CreateWorkflow(ctx, tenant.ID, linearWorkflowRequest("Lifecycle test"))
	require.NoError(t, err)

	t.Run("set active toggles eligibility", func(t *testing.T) {
		require.NoError(t, workflowService.SetActive(ctx, tenant.ID, wf.ID, false))

		loaded, err := workflowService.GetWorkflow(ctx, tenant.ID, wf.ID)
		require.NoError(t, err)
		assert.False(t, loaded.IsActive)

		require.NoError(t, workflowService.SetActive(ctx, tenant.ID, wf.ID, true))
	})

	t.Run("delete cascades nodes and edges", func(t *testing.T) {
		doomed, err := workflowService.CreateWorkflow(ctx, tenant.ID, linearWorkflowRequest("Doomed"))
		require.NoError(t, err)

		require.NoError(t, workflowService.DeleteWorkflow(ctx, tenant.ID, doomed.ID))

		_, err = workflowService.GetWorkflow(ctx, tenant.ID, doomed.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		nodes, err := client.WorkflowNode.Query().
			Where(workflownode.WorkflowID(doomed.ID)).
			All(ctx)
		require.NoError(t, err)
		assert.Empty(t, nodes)
	})

	t.Run("delete of missing workflow returns ErrNotFound", func(t *testing.T) {
		err := workflowService.DeleteWorkflow(ctx, tenant.ID, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestWorkflowService_TriggerQueries(t *testing.T) {
	client := testdb.NewTestClient(t)
	workflowService := NewWorkflowService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")

	keywordReq := linearWorkflowRequest("Keyword flow")
	keywordWf, err := workflowService.CreateWorkflow(ctx, tenant.ID, keywordReq)
	require.NoError(t, err)

	intentReq := linearWorkflowRequest("Intent flow")
	intentReq.TriggerType = "intent"
	intentReq.TriggerConfig = map[string]any{"intent": "booking"}
	_, err = workflowService.CreateWorkflow(ctx, tenant.ID, intentReq)
	require.NoError(t, err)

	leadReq := linearWorkflowRequest("Lead flow")
	leadReq.TriggerType = "lead_event"
	leadReq.TriggerConfig = map[string]any{"status": "qualified"}
	leadWf, err := workflowService.CreateWorkflow(ctx, tenant.ID, leadReq)
	require.NoError(t, err)

	inactiveReq := linearWorkflowRequest("Dormant flow")
	inactive := false
	inactiveReq.Active = &inactive
	_, err = workflowService.CreateWorkflow(ctx, tenant.ID, inactiveReq)
	require.NoError(t, err)

	t.Run("selects active workflows for message triggers", func(t *testing.T) {
		wfs, err := workflowService.ActiveByTriggerKinds(ctx, tenant.ID, "keyword", "intent")
		require.NoError(t, err)
		require.Len(t, wfs, 2)
		// Oldest first so earlier definitions win ties downstream.
		assert.Equal(t, "Keyword flow", wfs[0].Name)
		assert.Equal(t, "Intent flow", wfs[1].Name)
	})

	t.Run("selects lead_event workflows", func(t *testing.T) {
		wfs, err := workflowService.ActiveByTriggerKinds(ctx, tenant.ID, "lead_event")
		require.NoError(t, err)
		require.Len(t, wfs, 1)
		assert.Equal(t, leadWf.ID, wfs[0].ID)
	})

	t.Run("start node lookup", func(t *testing.T) {
		node, err := workflowService.StartNode(ctx, keywordWf.ID)
		require.NoError(t, err)
		assert.Equal(t, engine.KindStart, node.Kind)
		assert.Equal(t, keywordWf.ID, node.WorkflowID)

		_, err = workflowService.StartNode(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("node lookup by id", func(t *testing.T) {
		start, err := workflowService.StartNode(ctx, keywordWf.ID)
		require.NoError(t, err)

		node, err := workflowService.Node(ctx, start.ID)
		require.NoError(t, err)
		assert.Equal(t, start.ID, node.ID)

		_, err = workflowService.Node(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
