package services

import (
	"context"
	"fmt"
	"time"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/event"
)

// EventService reads and prunes the events table backing the WebSocket
// catchup mechanism. Writing happens in the publisher, inside the same
// transaction as the NOTIFY.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves events on a channel with an id greater than
// sinceID, oldest first. Reconnecting clients replay these to close the gap
// since their last delivered event. A limit of 0 means no limit.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	query := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

// PruneExpired removes events older than the TTL. Catchup only needs to
// bridge reconnect windows, so the table stays small.
func (s *EventService) PruneExpired(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune expired events: %w", err)
	}

	return count, nil
}
