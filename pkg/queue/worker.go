package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/ent/steptask"
	"github.com/interacai/flowcore/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// claimScanLimit bounds how many queue-head candidates a single claim
// attempt inspects. A busy execution at the head must not block
// unrelated executions behind it.
const claimScanLimit = 10

// Worker is a single queue worker that polls for and processes step tasks.
type Worker struct {
	id           string
	podID        string
	client       *ent.Client
	config       *config.QueueConfig
	taskExecutor TaskExecutor
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor TaskExecutor) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		taskExecutor: executor,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         w.status,
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a task, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.StepTask.Query().
		Where(steptask.StatusEQ(steptask.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active tasks: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentTasks {
		return ErrAtCapacity
	}

	// 2. Claim next runnable task
	task, err := w.claimNextTask(ctx)
	if err != nil {
		return err
	}

	log := slog.With("task_id", task.ID, "execution_id", task.ExecutionID, "worker_id", w.id)
	log.Info("Task claimed", "node_id", task.NodeID)

	w.setStatus(WorkerStatusWorking, task.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create task context with timeout
	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()

	// 4. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, task.ID)

	// 5. Dispatch the task
	result := w.taskExecutor.Execute(taskCtx, task)

	// 5a. Nil-guard: synthesize a safe result if the executor returned nil
	if result == nil {
		switch {
		case errors.Is(taskCtx.Err(), context.DeadlineExceeded):
			result = &TaskResult{
				Status: steptask.StatusTimedOut,
				Error:  fmt.Errorf("task timed out after %v", w.config.TaskTimeout),
			}
		case errors.Is(taskCtx.Err(), context.Canceled):
			result = &TaskResult{
				Status: steptask.StatusCancelled,
				Error:  context.Canceled,
			}
		default:
			result = &TaskResult{
				Status: steptask.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	// 6. A failure caused by the deadline is a timeout, not a task fault
	if result.Status == steptask.StatusFailed && errors.Is(taskCtx.Err(), context.DeadlineExceeded) {
		result = &TaskResult{
			Status: steptask.StatusTimedOut,
			Error:  fmt.Errorf("task timed out after %v", w.config.TaskTimeout),
		}
	}

	// 7. Stop heartbeat
	cancelHeartbeat()

	// 8. Update terminal status (use background context — task ctx may be cancelled)
	if err := w.finalizeTask(context.Background(), task, result); err != nil {
		log.Error("Failed to update task terminal status", "error", err)
		return err
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete", "status", result.Status)
	return nil
}

// claimNextTask atomically claims the next runnable task using
// FOR UPDATE SKIP LOCKED.
//
// Runnable means pending, past its scheduled_at, and belonging to an
// execution with no other task in flight. The one-per-execution rule is
// enforced by locking the execution row before the in-flight check: any
// competing claim on the same execution must take the same lock, so its
// in_progress write is committed and visible before this check runs, or
// this claim skips the candidate entirely.
func (w *Worker) claimNextTask(ctx context.Context) (*ent.StepTask, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	candidates, err := tx.StepTask.Query().
		Where(
			steptask.StatusEQ(steptask.StatusPending),
			steptask.ScheduledAtLTE(time.Now()),
		).
		Order(ent.Asc(steptask.FieldCreatedAt)).
		Limit(claimScanLimit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending tasks: %w", err)
	}

	for _, candidate := range candidates {
		// Serialize against competing claims for the same execution. Skip
		// rather than block if another claim or the resume path holds it.
		_, err := tx.Execution.Query().
			Where(execution.IDEQ(candidate.ExecutionID)).
			ForUpdate(sql.WithLockAction(sql.SkipLocked)).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to lock execution: %w", err)
		}

		busy, err := tx.StepTask.Query().
			Where(
				steptask.ExecutionIDEQ(candidate.ExecutionID),
				steptask.StatusEQ(steptask.StatusInProgress),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check in-flight tasks: %w", err)
		}
		if busy {
			continue
		}

		// Claim: set in_progress, claimed_by, claimed_at, last_heartbeat_at
		now := time.Now()
		claimed, err := candidate.Update().
			SetStatus(steptask.StatusInProgress).
			SetClaimedBy(w.podID).
			SetClaimedAt(now).
			SetLastHeartbeatAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to claim task: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit claim: %w", err)
		}
		return claimed, nil
	}

	return nil, ErrNoTasksAvailable
}

// runHeartbeat periodically updates last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.StepTask.UpdateOneID(taskID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// finalizeTask writes the final task status. Only the still-in-progress
// row is touched, so a concurrent orphan recovery is never overwritten.
func (w *Worker) finalizeTask(ctx context.Context, task *ent.StepTask, result *TaskResult) error {
	update := w.client.StepTask.Update().
		Where(
			steptask.IDEQ(task.ID),
			steptask.StatusEQ(steptask.StatusInProgress),
		).
		SetStatus(result.Status)
	if result.Error != nil {
		update = update.SetError(result.Error.Error())
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to finalize task: %w", err)
	}
	return nil
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
