package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/workflow"
	"github.com/interacai/flowcore/ent/workflowedge"
	"github.com/interacai/flowcore/ent/workflownode"
	"github.com/interacai/flowcore/pkg/engine"
	"github.com/interacai/flowcore/pkg/models"
)

// WorkflowService manages workflow definitions and serves their graphs
// to the dispatcher.
type WorkflowService struct {
	client *ent.Client
}

// NewWorkflowService creates a new WorkflowService.
func NewWorkflowService(client *ent.Client) *WorkflowService {
	return &WorkflowService{client: client}
}

// CreateWorkflow validates and stores a definition. Node ids in the
// payload are builder-local keys; stored nodes get server ids and keep
// the key, and stored edges reference the server ids. The whole graph is
// written in one transaction so a definition is never half-visible.
func (s *WorkflowService) CreateWorkflow(httpCtx context.Context, tenantID string, req models.CreateWorkflowRequest) (*ent.Workflow, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if err := workflow.TriggerKindValidator(workflow.TriggerKind(req.TriggerType)); err != nil {
		return nil, NewValidationError("trigger_type", err.Error())
	}

	graphNodes := make([]engine.GraphNode, 0, len(req.Nodes))
	for _, n := range req.Nodes {
		if n.ID == "" {
			return nil, NewValidationError("nodes", "every node needs an id")
		}
		graphNodes = append(graphNodes, engine.GraphNode{ID: n.ID, Kind: n.Type})
	}
	graphEdges := make([]engine.GraphEdge, 0, len(req.Edges))
	for _, e := range req.Edges {
		graphEdges = append(graphEdges, engine.GraphEdge{SourceID: e.Source, TargetID: e.Target})
	}
	if err := engine.ValidateGraph(graphNodes, graphEdges); err != nil {
		return nil, NewValidationError("graph", err.Error())
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.Workflow.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetName(req.Name).
		SetTriggerKind(workflow.TriggerKind(req.TriggerType))
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.TriggerConfig != nil {
		builder.SetTriggerConfig(req.TriggerConfig)
	}
	if req.Active != nil {
		builder.SetIsActive(*req.Active)
	}

	wf, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}

	nodeIDs := make(map[string]string, len(req.Nodes))
	for _, n := range req.Nodes {
		nodeID := uuid.New().String()
		nodeIDs[n.ID] = nodeID

		create := tx.WorkflowNode.Create().
			SetID(nodeID).
			SetWorkflowID(wf.ID).
			SetKey(n.ID).
			SetKind(workflownode.Kind(n.Type))
		if n.Label != "" {
			create.SetLabel(n.Label)
		}
		if n.Config != nil {
			create.SetConfig(n.Config)
		}
		if n.Position != nil {
			create.SetPosition(n.Position)
		}
		if _, err := create.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create node %q: %w", n.ID, err)
		}
	}

	for _, e := range req.Edges {
		create := tx.WorkflowEdge.Create().
			SetID(uuid.New().String()).
			SetWorkflowID(wf.ID).
			SetSourceNodeID(nodeIDs[e.Source]).
			SetTargetNodeID(nodeIDs[e.Target])
		if e.Condition != "" {
			create.SetGuard(e.Condition)
		}
		if _, err := create.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create edge %s->%s: %w", e.Source, e.Target, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit workflow: %w", err)
	}
	return wf, nil
}

// GetWorkflow returns one workflow with its nodes and edges loaded.
func (s *WorkflowService) GetWorkflow(ctx context.Context, tenantID, workflowID string) (*ent.Workflow, error) {
	wf, err := s.client.Workflow.Query().
		Where(workflow.ID(workflowID), workflow.TenantID(tenantID)).
		WithNodes().
		WithEdges().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}
	return wf, nil
}

// ListWorkflows returns a tenant's definitions, newest first.
func (s *WorkflowService) ListWorkflows(ctx context.Context, tenantID string) ([]*ent.Workflow, error) {
	wfs, err := s.client.Workflow.Query().
		Where(workflow.TenantID(tenantID)).
		Order(ent.Desc(workflow.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}
	return wfs, nil
}

// DeleteWorkflow removes a definition; nodes, edges and executions go
// with it via cascade.
func (s *WorkflowService) DeleteWorkflow(ctx context.Context, tenantID, workflowID string) error {
	n, err := s.client.Workflow.Delete().
		Where(workflow.ID(workflowID), workflow.TenantID(tenantID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete workflow: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetActive flips a workflow's trigger eligibility.
func (s *WorkflowService) SetActive(ctx context.Context, tenantID, workflowID string, active bool) error {
	n, err := s.client.Workflow.Update().
		Where(workflow.ID(workflowID), workflow.TenantID(tenantID)).
		SetIsActive(active).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update workflow: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ActiveByTriggerKinds returns the tenant's active workflows whose
// trigger kind is one of the given set. The matcher applies the
// per-workflow predicate on top.
func (s *WorkflowService) ActiveByTriggerKinds(ctx context.Context, tenantID string, kinds ...string) ([]*ent.Workflow, error) {
	triggerKinds := make([]workflow.TriggerKind, 0, len(kinds))
	for _, k := range kinds {
		triggerKinds = append(triggerKinds, workflow.TriggerKind(k))
	}

	wfs, err := s.client.Workflow.Query().
		Where(
			workflow.TenantID(tenantID),
			workflow.IsActive(true),
			workflow.TriggerKindIn(triggerKinds...),
		).
		Order(ent.Asc(workflow.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query workflows by trigger: %w", err)
	}
	return wfs, nil
}

// StartNode returns a workflow's entry node.
func (s *WorkflowService) StartNode(ctx context.Context, workflowID string) (*engine.Node, error) {
	node, err := s.client.WorkflowNode.Query().
		Where(
			workflownode.WorkflowID(workflowID),
			workflownode.KindEQ(workflownode.KindStart),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("workflow %s has no start node: %w", workflowID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load start node: %w", err)
	}
	return toEngineNode(node), nil
}

// Node returns one stored node in the interpreter's shape.
func (s *WorkflowService) Node(ctx context.Context, nodeID string) (*engine.Node, error) {
	node, err := s.client.WorkflowNode.Get(ctx, nodeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load node: %w", err)
	}
	return toEngineNode(node), nil
}

// Edges returns a workflow's edges in the interpreter's shape.
func (s *WorkflowService) Edges(ctx context.Context, workflowID string) ([]engine.Edge, error) {
	rows, err := s.client.WorkflowEdge.Query().
		Where(workflowedge.WorkflowID(workflowID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load edges: %w", err)
	}

	edges := make([]engine.Edge, 0, len(rows))
	for _, row := range rows {
		edges = append(edges, engine.Edge{
			SourceID: row.SourceNodeID,
			TargetID: row.TargetNodeID,
			Guard:    row.Guard,
		})
	}
	return edges, nil
}

func toEngineNode(n *ent.WorkflowNode) *engine.Node {
	return &engine.Node{
		ID:         n.ID,
		WorkflowID: n.WorkflowID,
		Kind:       string(n.Kind),
		Config:     n.Config,
	}
}
