package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/ent/executionstep"
	"github.com/interacai/flowcore/ent/steptask"
	"github.com/interacai/flowcore/pkg/engine"
	"github.com/interacai/flowcore/pkg/services"
)

// Dispatcher consumes one step task: it journals the node visit, runs the
// node through the interpreter, persists the merged context, and enqueues
// successor tasks in the same transaction as the step result. That
// write-before-visibility ordering is what makes a crash between any two
// writes recoverable by re-dispatching the task.
type Dispatcher struct {
	client    *ent.Client
	workflows *services.WorkflowService
	executor  NodeExecutor
	publisher StatusPublisher
}

// NewDispatcher creates a new Dispatcher.
// publisher may be nil (streaming disabled).
func NewDispatcher(client *ent.Client, workflows *services.WorkflowService, executor NodeExecutor, publisher StatusPublisher) *Dispatcher {
	return &Dispatcher{
		client:    client,
		workflows: workflows,
		executor:  executor,
		publisher: publisher,
	}
}

// Execute processes a claimed step task end to end.
//
// A task whose execution or node no longer exists, or whose execution has
// already finished, is dropped: the execution keeps its current status and
// the task ends cancelled. A node whose run fails marks only the step
// failed; the execution stays running so the journal shows exactly where
// the flow stalled.
func (d *Dispatcher) Execute(ctx context.Context, task *ent.StepTask) *TaskResult {
	log := slog.With("task_id", task.ID, "execution_id", task.ExecutionID, "node_id", task.NodeID)

	exec, err := d.client.Execution.Get(ctx, task.ExecutionID)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Warn("Dropping task: execution not found")
			return &TaskResult{Status: steptask.StatusCancelled}
		}
		return &TaskResult{Status: steptask.StatusFailed, Error: fmt.Errorf("failed to load execution: %w", err)}
	}
	if exec.Status == execution.StatusCompleted || exec.Status == execution.StatusFailed {
		log.Info("Dropping task: execution already finished", "status", exec.Status)
		return &TaskResult{Status: steptask.StatusCancelled}
	}

	node, err := d.workflows.Node(ctx, task.NodeID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Warn("Dropping task: node not found")
			return &TaskResult{Status: steptask.StatusCancelled}
		}
		return &TaskResult{Status: steptask.StatusFailed, Error: fmt.Errorf("failed to load node: %w", err)}
	}

	execCtx := engine.FromStored(exec.Context)
	// Resumed successors carry the wait node's output (user_reply) as the
	// task payload; it has to be visible to this node's run and survive
	// into the persisted context.
	if len(task.Payload) > 0 {
		execCtx.Merge(task.Payload)
	}

	step, err := d.beginStep(ctx, exec, node, execCtx)
	if err != nil {
		return &TaskResult{Status: steptask.StatusFailed, Error: err}
	}
	if exec.Status == execution.StatusPending {
		d.publishStatus(ctx, exec, execution.StatusRunning)
	}

	output, execErr := d.executor.Execute(ctx, *node, execCtx)
	if execErr != nil {
		d.failStep(step.ID, execErr)
		log.Error("Node execution failed", "node_kind", node.Kind, "error", execErr)
		return &TaskResult{Status: steptask.StatusFailed, Error: execErr}
	}

	signal, hasSignal := engine.SignalFromOutput(output)

	if hasSignal && signal.Kind == engine.SignalSuspend {
		execCtx.Merge(output)
		if err := d.suspend(ctx, exec, step, signal, output, execCtx); err != nil {
			return &TaskResult{Status: steptask.StatusFailed, Error: err}
		}
		d.publishStatus(ctx, exec, execution.StatusSuspended)
		log.Info("Execution suspended", "resume_node_id", signal.ResumeNodeID)
		return &TaskResult{Status: steptask.StatusCompleted}
	}

	execCtx.Merge(output)

	var delay time.Duration
	if hasSignal && signal.Kind == engine.SignalDelay {
		delay = time.Duration(signal.Seconds) * time.Second
	}

	edges, err := d.workflows.Edges(ctx, exec.WorkflowID)
	if err != nil {
		return &TaskResult{Status: steptask.StatusFailed, Error: err}
	}
	successors := engine.SelectSuccessors(edges, node.ID, output)

	finished, err := d.completeStep(ctx, exec, step, output, execCtx, successors, delay)
	if err != nil {
		return &TaskResult{Status: steptask.StatusFailed, Error: err}
	}
	if finished {
		d.publishStatus(ctx, exec, execution.StatusCompleted)
		log.Info("Execution completed")
	}
	return &TaskResult{Status: steptask.StatusCompleted}
}

// beginStep journals the node visit before anything runs, so a crash
// mid-node is visible as a running step with no output. The first step of
// a fresh execution also flips it from pending to running here.
func (d *Dispatcher) beginStep(ctx context.Context, exec *ent.Execution, node *engine.Node, execCtx engine.Context) (*ent.ExecutionStep, error) {
	tx, err := d.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	step, err := tx.ExecutionStep.Create().
		SetID(uuid.New().String()).
		SetExecutionID(exec.ID).
		SetNodeID(node.ID).
		SetNodeKind(node.Kind).
		SetInput(snapshotDoc(execCtx)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record step start: %w", err)
	}

	if exec.Status == execution.StatusPending {
		if err := tx.Execution.UpdateOneID(exec.ID).
			SetStatus(execution.StatusRunning).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to mark execution running: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit step start: %w", err)
	}
	return step, nil
}

// suspend parks the execution until the participant's next message. The
// resume pointer and the merged context commit together: once visible,
// the execution is resumable with no further writes owed.
func (d *Dispatcher) suspend(ctx context.Context, exec *ent.Execution, step *ent.ExecutionStep, signal engine.Signal, output map[string]any, execCtx engine.Context) error {
	tx, err := d.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.ExecutionStep.UpdateOneID(step.ID).
		SetStatus(executionstep.StatusSuspended).
		SetOutput(output).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark step suspended: %w", err)
	}

	if err := tx.Execution.UpdateOneID(exec.ID).
		SetStatus(execution.StatusSuspended).
		SetContext(execCtx.Doc()).
		SetResumePayload(map[string]interface{}{
			"node_id": signal.ResumeNodeID,
			"step_id": step.ID,
		}).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to suspend execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit suspension: %w", err)
	}
	return nil
}

// completeStep persists the step result, the merged context, and the
// successor tasks in one transaction. A node with no outgoing matches
// finishes the execution. Returns whether the execution completed.
func (d *Dispatcher) completeStep(ctx context.Context, exec *ent.Execution, step *ent.ExecutionStep, output map[string]any, execCtx engine.Context, successors []string, delay time.Duration) (bool, error) {
	tx, err := d.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	stepUpdate := tx.ExecutionStep.UpdateOneID(step.ID).
		SetStatus(executionstep.StatusCompleted).
		SetCompletedAt(now)
	if output != nil {
		stepUpdate = stepUpdate.SetOutput(output)
	}
	if err := stepUpdate.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to record step result: %w", err)
	}

	finished := len(successors) == 0
	execUpdate := tx.Execution.UpdateOneID(exec.ID).
		SetContext(execCtx.Doc())
	if finished {
		execUpdate = execUpdate.
			SetStatus(execution.StatusCompleted).
			SetCompletedAt(now)
	}
	if err := execUpdate.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to persist context: %w", err)
	}

	runAt := now.Add(delay)
	for _, successorID := range successors {
		if err := EnqueueTx(ctx, tx, exec.ID, successorID, nil, runAt); err != nil {
			return false, fmt.Errorf("failed to enqueue successor %s: %w", successorID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit step result: %w", err)
	}
	return finished, nil
}

// failStep records a node failure on the step journal. Uses a background
// context: the task context may already be dead, and losing the failure
// record would hide where the flow stalled.
func (d *Dispatcher) failStep(stepID string, execErr error) {
	if err := d.client.ExecutionStep.UpdateOneID(stepID).
		SetStatus(executionstep.StatusFailed).
		SetError(execErr.Error()).
		SetCompletedAt(time.Now()).
		Exec(context.Background()); err != nil {
		slog.Error("Failed to record step failure", "step_id", stepID, "error", err)
	}
}

// publishStatus emits an execution status transition. Non-blocking: errors
// are logged.
func (d *Dispatcher) publishStatus(ctx context.Context, exec *ent.Execution, status execution.Status) {
	if d.publisher == nil {
		return
	}
	if err := d.publisher.PublishExecutionStatus(ctx, exec, status); err != nil {
		slog.Warn("Failed to publish execution status",
			"execution_id", exec.ID, "status", status, "error", err)
	}
}

// snapshotDoc copies the context document so the step input journal is
// insulated from later merges into the live context.
func snapshotDoc(execCtx engine.Context) map[string]any {
	doc := execCtx.Doc()
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
