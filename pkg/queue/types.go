// Package queue provides the durable step task queue behind workflow
// executions: enqueueing, claiming, dispatching, and orphan recovery.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/ent/steptask"
	"github.com/interacai/flowcore/pkg/engine"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no runnable tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates the global concurrent task limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// TaskExecutor is the interface for step task processing.
//
// The executor owns the step lifecycle internally: it loads the execution
// and node, journals the step, runs the node, and persists the merged
// context together with any successor tasks. The worker only handles
// claiming, heartbeat, and the terminal task status update.
type TaskExecutor interface {
	Execute(ctx context.Context, task *ent.StepTask) *TaskResult
}

// NodeExecutor runs a single workflow node against an execution context.
// *engine.Executor is the production implementation.
type NodeExecutor interface {
	Execute(ctx context.Context, node engine.Node, execCtx engine.Context) (map[string]any, error)
}

// StatusPublisher pushes execution status transitions to the live event
// stream. May be nil (streaming disabled); errors are logged, never
// propagated into the dispatch path.
type StatusPublisher interface {
	PublishExecutionStatus(ctx context.Context, exec *ent.Execution, status execution.Status) error
}

// TaskResult is lightweight, just the terminal state of the queue row.
// All step and context writes already happened inside the executor.
type TaskResult struct {
	Status steptask.Status // completed, failed, cancelled, timed_out
	Error  error           // Error details (if failed/timed_out)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveTasks      int            `json:"active_tasks"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string       `json:"id"`
	Status         WorkerStatus `json:"status"`
	CurrentTaskID  string       `json:"current_task_id,omitempty"`
	TasksProcessed int          `json:"tasks_processed"`
	LastActivity   time.Time    `json:"last_activity"`
}
