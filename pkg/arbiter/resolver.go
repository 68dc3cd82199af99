// Package arbiter decides who answers each inbound event: a resumed
// suspended execution, freshly started workflow executions, the fallback
// AI chat path, or a subscription block. Exactly one of those happens per
// event; the Outcome kind tells the caller which — when it is anything
// other than Fallback, the fallback chat path must not run.
package arbiter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/ent/executionstep"
	"github.com/interacai/flowcore/pkg/engine"
	"github.com/interacai/flowcore/pkg/models"
	"github.com/interacai/flowcore/pkg/queue"
	"github.com/interacai/flowcore/pkg/services"
)

// OutcomeKind tags an arbitration verdict.
type OutcomeKind string

// Arbitration verdicts.
const (
	OutcomeResumed  OutcomeKind = "resumed"
	OutcomeStarted  OutcomeKind = "started"
	OutcomeFallback OutcomeKind = "fallback"
	OutcomeBlocked  OutcomeKind = "blocked"
)

// Outcome is the arbitration verdict for one inbound event. Reply carries
// the canned text for Blocked; ExecutionIDs the runs touched by Resumed or
// Started.
type Outcome struct {
	Kind         OutcomeKind `json:"kind"`
	ExecutionIDs []string    `json:"execution_ids,omitempty"`
	Reply        string      `json:"reply,omitempty"`
}

// Resolver arbitrates inbound events against the tenant's workflows.
type Resolver struct {
	client        *ent.Client
	subscriptions *services.SubscriptionService
	workflows     *services.WorkflowService
	executions    *services.ExecutionService
	matcher       *Matcher
	locks         *keyedMutex
}

// NewResolver creates a new Resolver.
func NewResolver(client *ent.Client, subscriptions *services.SubscriptionService, workflows *services.WorkflowService, executions *services.ExecutionService) *Resolver {
	if client == nil || subscriptions == nil || workflows == nil || executions == nil {
		panic("NewResolver: all dependencies must not be nil")
	}
	return &Resolver{
		client:        client,
		subscriptions: subscriptions,
		workflows:     workflows,
		executions:    executions,
		matcher:       NewMatcher(workflows),
		locks:         newKeyedMutex(),
	}
}

// Arbitrate runs the verdict order for one inbound event: subscription
// gate, then resume, then trigger matching, then fallback. Events for the
// same conversation are serialized on a keyed lock so replies arbitrate
// in arrival order.
func (r *Resolver) Arbitrate(ctx context.Context, event *models.InboundEvent) (Outcome, error) {
	release := r.locks.lock(arbitrationKey(event))
	defer release()

	allowed, err := r.subscriptions.CheckAccess(ctx, event.TenantID)
	if err != nil {
		return Outcome{}, err
	}
	if !allowed {
		return Outcome{Kind: OutcomeBlocked, Reply: services.SubscriptionBlockedReply}, nil
	}

	if event.Kind == models.EventKindMessageCreated {
		execID, resumed, err := r.tryResume(ctx, event)
		if err != nil {
			return Outcome{}, err
		}
		if resumed {
			return Outcome{Kind: OutcomeResumed, ExecutionIDs: []string{execID}}, nil
		}
	}

	matched, err := r.matcher.Match(ctx, event.TenantID, event)
	if err != nil {
		return Outcome{}, err
	}

	started := make([]string, 0, len(matched))
	var lastErr error
	for _, wf := range matched {
		exec, err := r.executions.StartForWorkflow(ctx, wf, event)
		if err != nil {
			slog.Error("Failed to start workflow for event",
				"workflow_id", wf.ID,
				"tenant_id", event.TenantID,
				"error", err)
			lastErr = err
			continue
		}
		started = append(started, exec.ID)
	}
	if len(started) > 0 {
		return Outcome{Kind: OutcomeStarted, ExecutionIDs: started}, nil
	}
	if lastErr != nil {
		// Matched but nothing started: surfacing the error beats silently
		// answering through the fallback.
		return Outcome{}, lastErr
	}

	return Outcome{Kind: OutcomeFallback}, nil
}

// HandleLeadEvent feeds internal lead status changes through the same
// arbitration front door as inbound messages. Lead events have no
// fallback reply, so a Fallback outcome simply means no workflow claimed
// the change.
func (r *Resolver) HandleLeadEvent(ctx context.Context, event *models.InboundEvent) {
	outcome, err := r.Arbitrate(ctx, event)
	if err != nil {
		slog.Error("Lead event arbitration failed",
			"tenant_id", event.TenantID, "error", err)
		return
	}
	if outcome.Kind == OutcomeStarted {
		slog.Info("Lead event started workflows",
			"tenant_id", event.TenantID,
			"execution_ids", outcome.ExecutionIDs)
	}
}

// arbitrationKey serializes events per conversation: tenant plus
// participant for messages, tenant plus lead for lead events.
func arbitrationKey(event *models.InboundEvent) string {
	if p := event.Participant(); p != "" {
		return event.TenantID + "/" + p
	}
	if leadID, ok := event.Data["lead_id"].(string); ok && leadID != "" {
		return event.TenantID + "/lead/" + leadID
	}
	return event.TenantID
}

// tryResume looks for a suspended execution belonging to this event's
// participant and reactivates the most recently started one. A false
// return with nil error means nothing was resumable and arbitration
// should fall through to trigger matching.
func (r *Resolver) tryResume(ctx context.Context, event *models.InboundEvent) (string, bool, error) {
	participant := event.Participant()
	if participant == "" {
		return "", false, nil
	}

	suspended, err := r.client.Execution.Query().
		Where(
			execution.TenantID(event.TenantID),
			execution.StatusEQ(execution.StatusSuspended),
		).
		Order(ent.Desc(execution.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to query suspended executions: %w", err)
	}

	for _, exec := range suspended {
		if executionParticipant(exec) != participant {
			continue
		}
		resumed, err := r.resume(ctx, exec, event)
		if err != nil {
			return "", false, err
		}
		if resumed {
			return exec.ID, true, nil
		}
		// Not resumable (raced away or a damaged resume pointer); keep
		// scanning older suspensions.
	}
	return "", false, nil
}

// executionParticipant extracts the participant the execution's trigger
// belongs to.
func executionParticipant(exec *ent.Execution) string {
	trigger, ok := exec.Context["trigger"].(map[string]any)
	if !ok {
		return ""
	}
	p, _ := trigger["participant"].(string)
	return p
}

// resume reactivates one suspended execution with the inbound reply. The
// wait step's completion, the merged context, the cleared resume pointer,
// and the next tasks commit in a single transaction, and the conditional
// status update makes the reactivation single-winner: a competing resume
// matches zero rows and reports not-resumed.
//
// What runs next depends on the resume node's kind: a wait_for_reply node
// exists only to absorb the reply, so its successors run; any other kind
// (appointment_booking) suspended itself mid-work and runs again to
// consume the reply.
func (r *Resolver) resume(httpCtx context.Context, exec *ent.Execution, event *models.InboundEvent) (bool, error) {
	nodeID, _ := exec.ResumePayload["node_id"].(string)
	if nodeID == "" {
		slog.Error("Suspended execution has no resume node", "execution_id", exec.ID)
		return false, nil
	}
	stepID, _ := exec.ResumePayload["step_id"].(string)

	node, err := r.workflows.Node(httpCtx, nodeID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			slog.Error("Suspended execution points at a deleted node",
				"execution_id", exec.ID, "node_id", nodeID)
			return false, nil
		}
		return false, err
	}

	body := event.MessageBody()
	output := map[string]any{engine.KeyUserReply: body}

	var next []string
	waitNode := node.Kind == engine.KindWaitForReply
	if waitNode {
		edges, err := r.workflows.Edges(httpCtx, exec.WorkflowID)
		if err != nil {
			return false, err
		}
		next = engine.SelectSuccessors(edges, nodeID, output)
	} else {
		next = []string{nodeID}
	}

	execCtx := engine.FromStored(exec.Context)
	execCtx.Merge(map[string]any{
		"latest_reply":   body,
		"latest_trigger": services.TriggerDoc(event),
	})

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	update := tx.Execution.Update().
		Where(
			execution.IDEQ(exec.ID),
			execution.StatusEQ(execution.StatusSuspended),
		).
		SetContext(execCtx.Doc()).
		ClearResumePayload()
	if len(next) == 0 {
		// A wait node with no outgoing edges ends the run.
		update = update.
			SetStatus(execution.StatusCompleted).
			SetCompletedAt(time.Now())
	} else {
		update = update.SetStatus(execution.StatusRunning)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to reactivate execution: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	// The wait node's journal entry finally gets its output: the reply it
	// was waiting for. A self-resuming node keeps its suspended step as
	// the record of that visit; the re-run journals a fresh one.
	if waitNode && stepID != "" {
		if err := tx.ExecutionStep.UpdateOneID(stepID).
			SetStatus(executionstep.StatusCompleted).
			SetOutput(output).
			SetCompletedAt(time.Now()).
			Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to complete wait step: %w", err)
		}
	}

	for _, nextID := range next {
		if err := queue.EnqueueTx(ctx, tx, exec.ID, nextID, output, time.Now()); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit resume: %w", err)
	}

	slog.Info("Resumed suspended execution",
		"execution_id", exec.ID,
		"node_id", nodeID,
		"rerun", !waitNode)
	return true, nil
}
