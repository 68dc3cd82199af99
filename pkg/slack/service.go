package slack

import (
	"context"
	"log/slog"
	"time"

	"github.com/interacai/flowcore/ent"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// Service delivers human-handoff notifications to Slack.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifyTicketCreated announces a freshly opened ticket in the handoff
// channel. Fail-open: errors are logged, never returned, so a Slack outage
// cannot block ticket creation.
func (s *Service) NotifyTicketCreated(ctx context.Context, t *ent.Ticket) {
	if s == nil {
		return
	}

	blocks := BuildTicketMessage(t, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		s.logger.Error("Failed to send Slack handoff notification",
			"ticket_id", t.ID,
			"tenant_id", t.TenantID,
			"error", err)
	}
}
