package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/execution"
)

// EventPublisher publishes conversation events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via
// NOTIFY; the same transaction covers both, so a client never sees a
// notification it cannot later catch up on. Tenant-wide list copies are
// NOTIFY-only.
//
// Every publish method takes the entity being announced and builds the
// wire payload itself — emitters hand over what they already have.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishMessageCreated announces a stored message: persisted on the
// conversation channel for thread views, with a transient copy on the
// tenant channel so the inbox list refreshes its row.
func (p *EventPublisher) PublishMessageCreated(ctx context.Context, msg *ent.Message) error {
	payloadJSON, err := json.Marshal(NewMessageCreatedPayload(msg))
	if err != nil {
		return fmt.Errorf("failed to marshal MessageCreatedPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, ConversationChannel(msg.ConversationID), payloadJSON); err != nil {
		slog.Warn("Failed to publish message to conversation channel",
			"conversation_id", msg.ConversationID, "error", err)
		firstErr = err
	}
	if err := p.notifyOnly(ctx, TenantChannel(msg.TenantID), payloadJSON); err != nil {
		slog.Warn("Failed to publish message to tenant channel",
			"tenant_id", msg.TenantID, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishExecutionStatus announces an execution lifecycle transition.
// Persisted on the execution's conversation channel when the trigger
// carries a participant; always broadcast transiently on the tenant
// channel for the executions page. Implements the worker pool's status
// publisher.
func (p *EventPublisher) PublishExecutionStatus(ctx context.Context, exec *ent.Execution, status execution.Status) error {
	payloadJSON, err := json.Marshal(NewExecutionStatusPayload(exec, status))
	if err != nil {
		return fmt.Errorf("failed to marshal ExecutionStatusPayload: %w", err)
	}

	var firstErr error
	if conversationID := conversationIDFromExecution(exec); conversationID != "" {
		if err := p.persistAndNotify(ctx, ConversationChannel(conversationID), payloadJSON); err != nil {
			slog.Warn("Failed to publish execution status to conversation channel",
				"execution_id", exec.ID, "status", status, "error", err)
			firstErr = err
		}
	}
	if err := p.notifyOnly(ctx, TenantChannel(exec.TenantID), payloadJSON); err != nil {
		slog.Warn("Failed to publish execution status to tenant channel",
			"execution_id", exec.ID, "status", status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishLeadCaptured announces a captured or updated lead, persisted on
// the tenant channel for the leads board.
func (p *EventPublisher) PublishLeadCaptured(ctx context.Context, lead *ent.Lead) error {
	payloadJSON, err := json.Marshal(NewLeadCapturedPayload(lead))
	if err != nil {
		return fmt.Errorf("failed to marshal LeadCapturedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, TenantChannel(lead.TenantID), payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (channel, payload, created_at) VALUES ($1, $2, $3) RETURNING id`,
		channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, keeping only the routing fields the client needs to
// fetch the complete event from the database via catchup.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type           string `json:"type"`
		ConversationID string `json:"conversation_id"`
		TenantID       string `json:"tenant_id"`
		DBEventID      *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"tenant_id": routing.TenantID,
		"truncated": true,
	}
	if routing.ConversationID != "" {
		truncated["conversation_id"] = routing.ConversationID
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
