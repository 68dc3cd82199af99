package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/steptask"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned tasks.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress tasks with stale heartbeats,
// marks them timed_out, and re-enqueues the step for another worker.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.StepTask.Query().
		Where(
			steptask.StatusEQ(steptask.StatusInProgress),
			steptask.LastHeartbeatAtNotNil(),
			steptask.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tasks", "count", len(orphans))

	recovered := 0
	for _, task := range orphans {
		lastHeartbeat := "unknown"
		if task.LastHeartbeatAt != nil {
			lastHeartbeat = task.LastHeartbeatAt.Format(time.RFC3339)
		}
		podID := "unknown"
		if task.ClaimedBy != nil {
			podID = *task.ClaimedBy
		}
		reason := fmt.Sprintf("orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)

		requeued, err := recoverOrphanedTask(ctx, p.client, task, reason)
		if err != nil {
			slog.Error("Failed to recover orphaned task",
				"task_id", task.ID,
				"error", err)
			continue
		}
		if requeued {
			slog.Warn("Orphaned task re-enqueued",
				"task_id", task.ID,
				"execution_id", task.ExecutionID,
				"node_id", task.NodeID,
				"last_heartbeat", lastHeartbeat)
			recovered++
		}
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedTask marks a single orphaned task timed_out and inserts a
// fresh pending task for the same step, atomically. The conditional update
// makes recovery race-safe: if the claiming worker finalized the task in
// the meantime, nothing is re-enqueued. Step writes commit before successor
// visibility, so re-dispatching the node is at worst a repeat of its
// side effects, never a lost step.
func recoverOrphanedTask(ctx context.Context, client *ent.Client, task *ent.StepTask, reason string) (bool, error) {
	tx, err := client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.StepTask.Update().
		Where(
			steptask.IDEQ(task.ID),
			steptask.StatusEQ(steptask.StatusInProgress),
		).
		SetStatus(steptask.StatusTimedOut).
		SetError(reason).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to mark task timed_out: %w", err)
	}
	if n == 0 {
		// Finalized by its worker between scan and recovery.
		return false, nil
	}

	if err := EnqueueTx(ctx, tx, task.ExecutionID, task.NodeID, task.Payload, time.Now()); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit orphan recovery: %w", err)
	}
	return true, nil
}

// CleanupStartupOrphans performs a one-time recovery of tasks claimed by
// this pod that were in progress when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.StepTask.Query().
		Where(
			steptask.StatusEQ(steptask.StatusInProgress),
			steptask.ClaimedByEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	reason := fmt.Sprintf("orphaned: pod %s restarted while task was in progress", podID)
	for _, task := range orphans {
		requeued, err := recoverOrphanedTask(ctx, client, task, reason)
		if err != nil {
			slog.Error("Failed to recover startup orphan",
				"task_id", task.ID,
				"error", err)
			continue
		}
		if requeued {
			slog.Info("Startup orphan re-enqueued",
				"task_id", task.ID,
				"execution_id", task.ExecutionID,
				"node_id", task.NodeID)
		}
	}

	return nil
}
