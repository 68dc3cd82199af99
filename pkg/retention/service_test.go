package retention

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent/tenant"
	"github.com/interacai/flowcore/pkg/config"
	"github.com/interacai/flowcore/pkg/database"
	"github.com/interacai/flowcore/pkg/services"
	testdb "github.com/interacai/flowcore/test/database"
)

func setupRetention(t *testing.T) (*database.Client, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := &config.RetentionConfig{
		TrialDays:     14,
		EventTTL:      1 * time.Hour,
		SweepInterval: 1 * time.Hour,
	}
	svc := NewService(cfg,
		services.NewSubscriptionService(client.Client),
		services.NewEventService(client.Client),
	)
	return client, svc
}

func createTrialTenant(t *testing.T, client *database.Client, trialEndsAt time.Time) string {
	t.Helper()
	id := uuid.New().String()
	err := client.Tenant.Create().
		SetID(id).
		SetName("Acme " + id[:8]).
		SetSubscriptionStatus(tenant.SubscriptionStatusTrial).
		SetTrialStartedAt(trialEndsAt.Add(-14 * 24 * time.Hour)).
		SetTrialEndsAt(trialEndsAt).
		Exec(context.Background())
	require.NoError(t, err)
	return id
}

func TestService_ExpiresOverdueTrials(t *testing.T) {
	client, svc := setupRetention(t)
	ctx := context.Background()

	overdueID := createTrialTenant(t, client, time.Now().Add(-48*time.Hour))
	activeID := createTrialTenant(t, client, time.Now().Add(48*time.Hour))

	svc.runAll(ctx)

	overdue, err := client.Tenant.Get(ctx, overdueID)
	require.NoError(t, err)
	assert.Equal(t, tenant.SubscriptionStatusExpired, overdue.SubscriptionStatus)

	active, err := client.Tenant.Get(ctx, activeID)
	require.NoError(t, err)
	assert.Equal(t, tenant.SubscriptionStatusTrial, active.SubscriptionStatus,
		"trial still inside its window is untouched")
}

func TestService_PreservesPaidTenants(t *testing.T) {
	client, svc := setupRetention(t)
	ctx := context.Background()

	id := uuid.New().String()
	err := client.Tenant.Create().
		SetID(id).
		SetName("Paid Co").
		SetSubscriptionStatus(tenant.SubscriptionStatusActive).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	paid, err := client.Tenant.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, tenant.SubscriptionStatusActive, paid.SubscriptionStatus)
}

func TestService_PrunesExpiredEvents(t *testing.T) {
	client, svc := setupRetention(t)
	ctx := context.Background()

	// One event past the TTL, one fresh.
	_, err := client.Event.Create().
		SetChannel("conversation:conv-1").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := client.Event.Create().
		SetChannel("conversation:conv-1").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	eventService := services.NewEventService(client.Client)
	events, err := eventService.GetEventsSince(ctx, "conversation:conv-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 1, "old event deleted, fresh event preserved")
	assert.Equal(t, fresh.ID, events[0].ID)
}

func TestService_StartStop(t *testing.T) {
	_, svc := setupRetention(t)

	svc.Start(context.Background())
	svc.Stop()
}
