package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/steptask"
	testdb "github.com/interacai/flowcore/test/database"
)

// TestForUpdateSkipLockedClaiming tests that a worker can atomically claim a
// pending step task.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	wf, byKey := h.createWorkflow(ctx, t, linearRequest("Claim test"))
	exec := h.startExecution(ctx, t, wf)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil)

	claimed, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the pending task")
	assert.Equal(t, exec.ID, claimed.ExecutionID)
	assert.Equal(t, byKey["n-start"], claimed.NodeID)
	assert.Equal(t, steptask.StatusInProgress, claimed.Status)
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, "test-pod", *claimed.ClaimedBy)
	require.NotNil(t, claimed.ClaimedAt)
	require.NotNil(t, claimed.LastHeartbeatAt)

	// Second claim should return ErrNoTasksAvailable
	claimed2, err := w.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
	assert.Nil(t, claimed2, "no more pending tasks should be available")
}

// TestPerExecutionSerialization tests that an execution never has two tasks
// in flight at once, even when both are due.
func TestPerExecutionSerialization(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	wf, byKey := h.createWorkflow(ctx, t, linearRequest("Serialization test"))
	exec := h.startExecution(ctx, t, wf)

	// A second due task for the same execution.
	enq := NewEnqueuer(client)
	require.NoError(t, enq.Enqueue(ctx, exec.ID, byKey["n-send"], nil, time.Now().Add(-time.Second)))

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil)

	first, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	assert.Equal(t, byKey["n-start"], first.NodeID, "FIFO: the older task is claimed first")

	// The sibling is due but its execution already has a task in flight.
	blocked, err := w.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
	assert.Nil(t, blocked)

	require.NoError(t, w.finalizeTask(ctx, first, &TaskResult{Status: steptask.StatusCompleted}))

	second, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	assert.Equal(t, byKey["n-send"], second.NodeID, "the sibling becomes claimable once the first finishes")
}

// TestScheduledAtGating tests that future-scheduled tasks are invisible to
// claims until they come due.
func TestScheduledAtGating(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	wf, byKey := h.createWorkflow(ctx, t, linearRequest("Gating test"))
	exec := h.startExecution(ctx, t, wf)

	// Replace the start task with one future and one past-due task.
	_, err := client.StepTask.Delete().
		Where(steptask.ExecutionIDEQ(exec.ID)).
		Exec(ctx)
	require.NoError(t, err)

	enq := NewEnqueuer(client)
	require.NoError(t, enq.Enqueue(ctx, exec.ID, byKey["n-send"], nil, time.Now().Add(time.Hour)))

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil)

	claimed, err := w.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable, "a future task must not be claimable")
	assert.Nil(t, claimed)

	require.NoError(t, enq.Enqueue(ctx, exec.ID, byKey["n-end"], nil, time.Now().Add(-time.Minute)))

	claimed, err = w.claimNextTask(ctx)
	require.NoError(t, err)
	assert.Equal(t, byKey["n-end"], claimed.NodeID, "only the due task is visible")

	future, err := client.StepTask.Query().
		Where(
			steptask.ExecutionIDEQ(exec.ID),
			steptask.NodeID(byKey["n-send"]),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, steptask.StatusPending, future.Status, "the future task stays queued")
}

// TestConcurrentClaimsDistinctExecutions tests that concurrent workers never
// claim the same task. Claimers retry on ErrNoTasksAvailable the way the
// poll loop does, since a competing claim transaction can transiently hide
// candidates behind its locks.
func TestConcurrentClaimsDistinctExecutions(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	wf, _ := h.createWorkflow(ctx, t, linearRequest("Concurrent claim test"))

	execIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		exec := h.startExecution(ctx, t, wf)
		execIDs[exec.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimedTasks := make([]string, 0, 5)
	claimedExecs := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil)
			deadline := time.Now().Add(5 * time.Second)
			for {
				task, err := w.claimNextTask(ctx)
				if err == nil {
					mu.Lock()
					claimedTasks = append(claimedTasks, task.ID)
					claimedExecs = append(claimedExecs, task.ExecutionID)
					mu.Unlock()
					return
				}
				if err != ErrNoTasksAvailable {
					errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
					return
				}
				if time.Now().After(deadline) {
					errCh <- fmt.Errorf("worker-%d found no task before the deadline", workerID)
					return
				}
				time.Sleep(10 * time.Millisecond)
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	// All 5 tasks claimed, each by exactly one worker (no duplicates)
	assert.Len(t, claimedTasks, 5, "all 5 tasks should be claimed")
	seen := make(map[string]struct{})
	for _, id := range claimedTasks {
		_, dup := seen[id]
		assert.False(t, dup, "task %s claimed by multiple workers", id)
		seen[id] = struct{}{}
	}
	for _, id := range claimedExecs {
		_, ok := execIDs[id]
		assert.True(t, ok, "claimed task belongs to unknown execution %s", id)
	}

	inProgress, err := client.StepTask.Query().
		Where(steptask.StatusEQ(steptask.StatusInProgress)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, inProgress)
}

// TestOrphanRecovery tests that tasks with stale heartbeats are timed out
// and re-enqueued, while freshly heartbeating tasks are left alone.
func TestOrphanRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	wf, byKey := h.createWorkflow(ctx, t, linearRequest("Orphan test"))

	// A task that simulates a crash: in_progress with an old heartbeat.
	orphanExec := h.startExecution(ctx, t, wf)
	staleBeat := time.Now().Add(-10 * time.Minute)
	orphanTask, err := client.StepTask.Query().
		Where(steptask.ExecutionIDEQ(orphanExec.ID)).
		Only(ctx)
	require.NoError(t, err)
	orphanTask, err = orphanTask.Update().
		SetStatus(steptask.StatusInProgress).
		SetClaimedBy("crashed-pod").
		SetClaimedAt(staleBeat).
		SetLastHeartbeatAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	// A healthy in-flight task on another execution.
	healthyExec := h.startExecution(ctx, t, wf)
	healthyTask, err := client.StepTask.Query().
		Where(steptask.ExecutionIDEQ(healthyExec.ID)).
		Only(ctx)
	require.NoError(t, err)
	_, err = healthyTask.Update().
		SetStatus(steptask.StatusInProgress).
		SetClaimedBy("live-pod").
		SetClaimedAt(time.Now()).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 1 * time.Second

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: cfg,
	}

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	// The orphan is timed out with a reason naming the dead pod.
	updated, err := client.StepTask.Get(ctx, orphanTask.ID)
	require.NoError(t, err)
	assert.Equal(t, steptask.StatusTimedOut, updated.Status)
	require.NotNil(t, updated.Error)
	assert.Contains(t, *updated.Error, "crashed-pod")

	// A fresh pending task for the same step took its place.
	replacement, err := client.StepTask.Query().
		Where(
			steptask.ExecutionIDEQ(orphanExec.ID),
			steptask.StatusEQ(steptask.StatusPending),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, byKey["n-start"], replacement.NodeID)

	// The healthy task is untouched.
	healthy, err := client.StepTask.Get(ctx, healthyTask.ID)
	require.NoError(t, err)
	assert.Equal(t, steptask.StatusInProgress, healthy.Status)

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	assert.False(t, pool.orphans.lastOrphanScan.IsZero())
	pool.orphans.mu.Unlock()
}

// TestStartupOrphanCleanup tests the one-time recovery of tasks left behind
// by this pod's previous run.
func TestStartupOrphanCleanup(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	wf, byKey := h.createWorkflow(ctx, t, linearRequest("Startup orphan test"))

	podID := "startup-test-pod"

	// Tasks that belong to this pod's previous incarnation.
	mine := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		exec := h.startExecution(ctx, t, wf)
		task, err := client.StepTask.Query().
			Where(steptask.ExecutionIDEQ(exec.ID)).
			Only(ctx)
		require.NoError(t, err)
		_, err = task.Update().
			SetStatus(steptask.StatusInProgress).
			SetClaimedBy(podID).
			SetClaimedAt(time.Now()).
			SetLastHeartbeatAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
		mine = append(mine, task.ID)
	}

	// A task claimed by a different pod (should not be affected).
	otherExec := h.startExecution(ctx, t, wf)
	otherTask, err := client.StepTask.Query().
		Where(steptask.ExecutionIDEQ(otherExec.ID)).
		Only(ctx)
	require.NoError(t, err)
	_, err = otherTask.Update().
		SetStatus(steptask.StatusInProgress).
		SetClaimedBy("other-pod").
		SetClaimedAt(time.Now()).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, client, podID))

	for _, id := range mine {
		task, err := client.StepTask.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, steptask.StatusTimedOut, task.Status, "task %s should be timed_out", id)
		require.NotNil(t, task.Error)
		assert.Contains(t, *task.Error, "restarted")
	}

	// Each recovered step has a fresh pending replacement.
	pending, err := client.StepTask.Query().
		Where(steptask.StatusEQ(steptask.StatusPending)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, task := range pending {
		assert.Equal(t, byKey["n-start"], task.NodeID)
	}

	// The other pod's task is untouched.
	other, err := client.StepTask.Get(ctx, otherTask.ID)
	require.NoError(t, err)
	assert.Equal(t, steptask.StatusInProgress, other.Status, "other pod's task should be untouched")
}

// mockTaskExecutor counts executions and tracks which tasks were processed.
type mockTaskExecutor struct {
	processed  atomic.Int64
	tasks      sync.Map // string → struct{}
	inProgress atomic.Int64
	releaseCh  chan struct{} // optional: blocks execution until closed
}

func (m *mockTaskExecutor) Execute(ctx context.Context, task *ent.StepTask) *TaskResult {
	m.processed.Add(1)
	if task != nil {
		m.tasks.Store(task.ID, struct{}{})
	}

	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	// If releaseCh is set, block until it's closed (for deterministic tests)
	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
			// Released, continue
		case <-ctx.Done():
			return &TaskResult{
				Status: steptask.StatusCancelled,
				Error:  ctx.Err(),
			}
		}
	} else {
		// Default behavior: simulate short processing
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return &TaskResult{
				Status: steptask.StatusCancelled,
				Error:  ctx.Err(),
			}
		}
	}

	return &TaskResult{Status: steptask.StatusCompleted}
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	wf, _ := h.createWorkflow(ctx, t, linearRequest("Pool test"))
	for i := 0; i < 3; i++ {
		h.startExecution(ctx, t, wf)
	}

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	executor := &mockTaskExecutor{}
	pool := NewWorkerPool("test-pod", client, cfg, executor)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		fmt.Sprintf("waiting for tasks to be processed, processed: %d", executor.processed.Load()),
		func() bool { return executor.processed.Load() >= 3 })

	pool.Stop()

	completed, err := client.StepTask.Query().
		Where(steptask.StatusEQ(steptask.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, completed, "all 3 start tasks should be completed")

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
}

// TestCapacityLimits tests that the global max concurrent limit is enforced.
func TestCapacityLimits(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	wf, _ := h.createWorkflow(ctx, t, linearRequest("Capacity test"))
	for i := 0; i < 5; i++ {
		h.startExecution(ctx, t, wf)
	}

	// Use 2 workers matching MaxConcurrentTasks to avoid startup races
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentTasks = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = 1 * time.Hour // Disable orphan detection during test

	releaseCh := make(chan struct{})
	executor := &mockTaskExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, cfg, executor)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		fmt.Sprintf("waiting for %d tasks in progress, got: %d", cfg.MaxConcurrentTasks, executor.inProgress.Load()),
		func() bool { return executor.inProgress.Load() == int64(cfg.MaxConcurrentTasks) })

	// Give the system a moment to stabilize
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int64(cfg.MaxConcurrentTasks), executor.inProgress.Load(),
		"should have exactly MaxConcurrentTasks in progress")

	dbInProgress, err := client.StepTask.Query().
		Where(steptask.StatusEQ(steptask.StatusInProgress)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentTasks, dbInProgress, "DB should show MaxConcurrentTasks in_progress")

	close(releaseCh)

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		fmt.Sprintf("waiting for first batch to complete, in_progress: %d", executor.inProgress.Load()),
		func() bool { return executor.inProgress.Load() == 0 })

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		fmt.Sprintf("waiting for all tasks to be processed, processed: %d", executor.processed.Load()),
		func() bool { return executor.processed.Load() >= 5 })

	pool.Stop()

	completedCount, err := client.StepTask.Query().
		Where(steptask.StatusEQ(steptask.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, completedCount, "all 5 tasks should complete")
}

// TestHeartbeatUpdates tests that heartbeats advance last_heartbeat_at.
func TestHeartbeatUpdates(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newQueueHarness(ctx, t, client)
	wf, _ := h.createWorkflow(ctx, t, linearRequest("Heartbeat test"))
	exec := h.startExecution(ctx, t, wf)

	task, err := client.StepTask.Query().
		Where(steptask.ExecutionIDEQ(exec.ID)).
		Only(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond

	releaseCh := make(chan struct{})
	executor := &mockTaskExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, cfg, executor)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for task to be claimed",
		func() bool {
			current, err := client.StepTask.Get(ctx, task.ID)
			require.NoError(t, err)
			return current.Status == steptask.StatusInProgress && current.LastHeartbeatAt != nil
		})

	t1, err := client.StepTask.Get(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, t1.LastHeartbeatAt)
	initialBeat := *t1.LastHeartbeatAt

	// Wait for at least one heartbeat tick (interval is 100ms)
	time.Sleep(250 * time.Millisecond)

	t2, err := client.StepTask.Get(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, steptask.StatusInProgress, t2.Status, "task should still be in progress")
	require.NotNil(t, t2.LastHeartbeatAt)
	assert.True(t, t2.LastHeartbeatAt.After(initialBeat), "last_heartbeat_at should advance")

	close(releaseCh)
	pool.Stop()
}

// nilExecutor returns a nil *TaskResult for testing the nil-guard.
type nilExecutor struct {
	blockUntilCtxDone bool
	processed         atomic.Int64
}

func (e *nilExecutor) Execute(ctx context.Context, _ *ent.StepTask) *TaskResult {
	e.processed.Add(1)
	if e.blockUntilCtxDone {
		<-ctx.Done()
	}
	return nil
}

// TestNilTaskResultGuard tests that a nil *TaskResult from
// TaskExecutor.Execute does not panic and is translated into the correct
// terminal status.
func TestNilTaskResultGuard(t *testing.T) {
	t.Run("nil result without context error marks task failed", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		h := newQueueHarness(ctx, t, client)
		wf, _ := h.createWorkflow(ctx, t, linearRequest("Nil guard test"))
		exec := h.startExecution(ctx, t, wf)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: false}
		pool := NewWorkerPool("test-pod", client, cfg, executor)

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for task to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		// Give the worker time to persist the terminal status
		time.Sleep(100 * time.Millisecond)
		pool.Stop()

		task, err := client.StepTask.Query().
			Where(steptask.ExecutionIDEQ(exec.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, steptask.StatusFailed, task.Status)
		require.NotNil(t, task.Error)
		assert.Contains(t, *task.Error, "executor returned nil result")
	})

	t.Run("nil result with deadline exceeded marks task timed_out", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		h := newQueueHarness(ctx, t, client)
		wf, _ := h.createWorkflow(ctx, t, linearRequest("Timeout guard test"))
		exec := h.startExecution(ctx, t, wf)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.TaskTimeout = 200 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor)

		require.NoError(t, pool.Start(ctx))

		// Wait for processing (must exceed the 200ms timeout)
		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for task to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		// Give the worker time to persist the terminal status
		time.Sleep(300 * time.Millisecond)
		pool.Stop()

		task, err := client.StepTask.Query().
			Where(steptask.ExecutionIDEQ(exec.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, steptask.StatusTimedOut, task.Status)
		require.NotNil(t, task.Error)
		assert.Contains(t, *task.Error, "timed out")
		assert.Contains(t, *task.Error, "200ms")
	})
}
