// Package retention provides the periodic data retention sweep.
package retention

import (
	"context"
	"log/slog"
	"time"

	"github.com/interacai/flowcore/pkg/config"
	"github.com/interacai/flowcore/pkg/services"
)

// Service periodically enforces retention policies:
//   - Demotes trial tenants whose trial window has passed
//   - Removes event log rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config              *config.RetentionConfig
	subscriptionService *services.SubscriptionService
	eventService        *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention service.
func NewService(
	cfg *config.RetentionConfig,
	subscriptionService *services.SubscriptionService,
	eventService *services.EventService,
) *Service {
	return &Service{
		config:              cfg,
		subscriptionService: subscriptionService,
		eventService:        eventService,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"trial_days", s.config.TrialDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.expireTrials(ctx)
	s.pruneEvents(ctx)
}

func (s *Service) expireTrials(_ context.Context) {
	count, err := s.subscriptionService.ExpireOverdueTrials(context.Background())
	if err != nil {
		slog.Error("Retention: trial expiry failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: expired overdue trials", "count", count)
	}
}

func (s *Service) pruneEvents(_ context.Context) {
	count, err := s.eventService.PruneExpired(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event pruning failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned expired events", "count", count)
	}
}
