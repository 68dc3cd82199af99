package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/tenant"
)

// Canned reply sent to participants of a tenant whose subscription no
// longer admits traffic.
const SubscriptionBlockedReply = "This assistant is currently unavailable. Please contact the business directly."

// SubscriptionService gates inbound traffic on the tenant's subscription
// state and demotes overdue trials.
type SubscriptionService struct {
	client *ent.Client
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(client *ent.Client) *SubscriptionService {
	return &SubscriptionService{client: client}
}

// CheckAccess reports whether the tenant may process messages. A trial
// past its end date is demoted to expired on the spot, so the gate never
// admits overdue trials between sweeps.
func (s *SubscriptionService) CheckAccess(ctx context.Context, tenantID string) (bool, error) {
	t, err := s.client.Tenant.Get(ctx, tenantID)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to load tenant: %w", err)
	}

	switch t.SubscriptionStatus {
	case tenant.SubscriptionStatusActive:
		return true, nil
	case tenant.SubscriptionStatusTrial:
		if t.TrialEndsAt != nil && time.Now().After(*t.TrialEndsAt) {
			if _, err := t.Update().
				SetSubscriptionStatus(tenant.SubscriptionStatusExpired).
				Save(ctx); err != nil {
				// Still deny: the trial is over whether or not the
				// demotion stuck.
				slog.Warn("Failed to expire overdue trial",
					"tenant_id", tenantID, "error", err)
			}
			return false, nil
		}
		return true, nil
	default:
		return false, nil
	}
}

// ExpireOverdueTrials demotes every trial tenant whose trial window has
// passed. Returns the number of tenants demoted; the retention sweeper
// runs this periodically.
func (s *SubscriptionService) ExpireOverdueTrials(ctx context.Context) (int, error) {
	n, err := s.client.Tenant.Update().
		Where(
			tenant.SubscriptionStatusEQ(tenant.SubscriptionStatusTrial),
			tenant.TrialEndsAtNotNil(),
			tenant.TrialEndsAtLT(time.Now()),
		).
		SetSubscriptionStatus(tenant.SubscriptionStatusExpired).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire trials: %w", err)
	}
	if n > 0 {
		slog.Info("Expired overdue trials", "count", n)
	}
	return n, nil
}
