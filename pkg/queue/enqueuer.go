package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/interacai/flowcore/ent"
)

// Enqueuer inserts step tasks outside a dispatcher transaction. Services
// use it for the start node of a fresh execution.
type Enqueuer struct {
	client *ent.Client
}

// NewEnqueuer creates a new Enqueuer.
func NewEnqueuer(client *ent.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

// Enqueue schedules a node visit. The task becomes claimable once runAt
// has passed.
func (e *Enqueuer) Enqueue(ctx context.Context, executionID, nodeID string, payload map[string]any, runAt time.Time) error {
	create := e.client.StepTask.Create().
		SetID(uuid.New().String()).
		SetExecutionID(executionID).
		SetNodeID(nodeID).
		SetScheduledAt(runAt)
	if payload != nil {
		create = create.SetPayload(payload)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to enqueue step task: %w", err)
	}
	return nil
}

// EnqueueTx inserts a step task inside the caller's transaction so the
// task becomes visible atomically with the step and context writes that
// justify it. The dispatcher uses it for successor nodes and the resume
// path uses it when reactivating a suspended execution.
func EnqueueTx(ctx context.Context, tx *ent.Tx, executionID, nodeID string, payload map[string]any, runAt time.Time) error {
	create := tx.StepTask.Create().
		SetID(uuid.New().String()).
		SetExecutionID(executionID).
		SetNodeID(nodeID).
		SetScheduledAt(runAt)
	if payload != nil {
		create = create.SetPayload(payload)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to enqueue step task: %w", err)
	}
	return nil
}
