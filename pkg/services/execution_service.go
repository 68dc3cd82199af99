package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/ent/executionstep"
	"github.com/interacai/flowcore/ent/workflow"
	"github.com/interacai/flowcore/pkg/engine"
	"github.com/interacai/flowcore/pkg/models"
)

// TaskEnqueuer schedules a node visit on the durable queue. The queue
// package implements it.
type TaskEnqueuer interface {
	Enqueue(ctx context.Context, executionID, nodeID string, payload map[string]any, runAt time.Time) error
}

// ExecutionService creates workflow runs and serves their history.
type ExecutionService struct {
	client    *ent.Client
	workflows *WorkflowService
	queue     TaskEnqueuer
}

// NewExecutionService creates a new ExecutionService.
func NewExecutionService(client *ent.Client, workflows *WorkflowService, queue TaskEnqueuer) *ExecutionService {
	if workflows == nil {
		panic("NewExecutionService: workflows must not be nil")
	}
	return &ExecutionService{client: client, workflows: workflows, queue: queue}
}

// TriggerDoc is the context.trigger document derived from an inbound
// event: the event's data keys plus the event kind. Workflow templates
// resolve against these keys (trigger.message_body, trigger.new_status).
func TriggerDoc(event *models.InboundEvent) map[string]any {
	doc := make(map[string]any, len(event.Data)+1)
	for k, v := range event.Data {
		doc[k] = v
	}
	doc["kind"] = event.Kind
	return doc
}

// StartForWorkflow creates a pending execution for one trigger event and
// enqueues the workflow's start node. An enqueue failure marks the
// execution failed so it cannot linger as a silent zombie.
func (s *ExecutionService) StartForWorkflow(httpCtx context.Context, wf *ent.Workflow, event *models.InboundEvent) (*ent.Execution, error) {
	startNode, err := s.workflows.StartNode(httpCtx, wf.ID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	trigger := TriggerDoc(event)
	exec, err := s.client.Execution.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(wf.ID).
		SetTenantID(wf.TenantID).
		SetTriggerEvent(trigger).
		SetContext(engine.NewContext(wf.TenantID, trigger).Doc()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}

	if err := s.queue.Enqueue(ctx, exec.ID, startNode.ID, nil, time.Now()); err != nil {
		_, updErr := exec.Update().
			SetStatus(execution.StatusFailed).
			SetErrorMessage("failed to enqueue start node: " + err.Error()).
			SetCompletedAt(time.Now()).
			Save(ctx)
		if updErr != nil {
			return nil, fmt.Errorf("failed to enqueue start node (and to mark execution failed: %v): %w", updErr, err)
		}
		return nil, fmt.Errorf("failed to enqueue start node: %w", err)
	}

	return exec, nil
}

// StartManual triggers one workflow by id, bypassing the trigger
// predicate. Inactive workflows can be run this way for testing.
func (s *ExecutionService) StartManual(ctx context.Context, tenantID, workflowID string, data map[string]any) (*ent.Execution, error) {
	wf, err := s.client.Workflow.Query().
		Where(workflow.ID(workflowID), workflow.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load workflow: %w", err)
	}

	event := &models.InboundEvent{
		TenantID:   tenantID,
		Kind:       "manual",
		Data:       data,
		ReceivedAt: time.Now().UTC(),
	}
	return s.StartForWorkflow(ctx, wf, event)
}

// GetExecution returns one run with its step journal in visit order.
func (s *ExecutionService) GetExecution(ctx context.Context, tenantID, executionID string) (*ent.Execution, error) {
	exec, err := s.client.Execution.Query().
		Where(execution.ID(executionID), execution.TenantID(tenantID)).
		WithSteps(func(q *ent.ExecutionStepQuery) {
			q.Order(ent.Asc(executionstep.FieldStartedAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return exec, nil
}

// ListExecutions lists runs with filtering and pagination.
func (s *ExecutionService) ListExecutions(ctx context.Context, tenantID string, filters models.ExecutionFilters) (*models.ExecutionListResponse, error) {
	query := s.client.Execution.Query().Where(execution.TenantID(tenantID))

	if filters.WorkflowID != "" {
		query = query.Where(execution.WorkflowID(filters.WorkflowID))
	}
	if filters.Status != "" {
		query = query.Where(execution.StatusEQ(execution.Status(filters.Status)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count executions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	executions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(execution.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}

	return &models.ExecutionListResponse{
		Executions: executions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}
