package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent/tenant"
	testdb "github.com/interacai/flowcore/test/database"
)

func TestSubscriptionService_CheckAccess(t *testing.T) {
	client := testdb.NewTestClient(t)
	subscriptionService := NewSubscriptionService(client.Client)
	ctx := context.Background()

	t.Run("active tenant is admitted", func(t *testing.T) {
		tn := createTestTenant(t, client.Client, "Active Co")
		ok, err := subscriptionService.CheckAccess(ctx, tn.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("trial within its window is admitted", func(t *testing.T) {
		tn := createTrialTenant(t, client.Client, "Fresh Trial", time.Now().Add(72*time.Hour))
		ok, err := subscriptionService.CheckAccess(ctx, tn.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("overdue trial is denied and demoted", func(t *testing.T) {
		tn := createTrialTenant(t, client.Client, "Stale Trial", time.Now().Add(-time.Hour))
		ok, err := subscriptionService.CheckAccess(ctx, tn.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		reloaded, err := client.Tenant.Get(ctx, tn.ID)
		require.NoError(t, err)
		assert.Equal(t, tenant.SubscriptionStatusExpired, reloaded.SubscriptionStatus)
	})

	t.Run("suspended tenant is denied", func(t *testing.T) {
		tn := createTestTenant(t, client.Client, "Suspended Co")
		_, err := tn.Update().SetSubscriptionStatus(tenant.SubscriptionStatusSuspended).Save(ctx)
		require.NoError(t, err)

		ok, err := subscriptionService.CheckAccess(ctx, tn.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown tenant returns ErrNotFound", func(t *testing.T) {
		_, err := subscriptionService.CheckAccess(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSubscriptionService_ExpireOverdueTrials(t *testing.T) {
	client := testdb.NewTestClient(t)
	subscriptionService := NewSubscriptionService(client.Client)
	ctx := context.Background()

	overdueA := createTrialTenant(t, client.Client, "Overdue A", time.Now().Add(-24*time.Hour))
	overdueB := createTrialTenant(t, client.Client, "Overdue B", time.Now().Add(-time.Minute))
	current := createTrialTenant(t, client.Client, "Current Trial", time.Now().Add(24*time.Hour))
	active := createTestTenant(t, client.Client, "Paying Customer")

	n, err := subscriptionService.ExpireOverdueTrials(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{overdueA.ID, overdueB.ID} {
		reloaded, err := client.Tenant.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, tenant.SubscriptionStatusExpired, reloaded.SubscriptionStatus)
	}

	reloaded, err := client.Tenant.Get(ctx, current.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.SubscriptionStatusTrial, reloaded.SubscriptionStatus)

	reloaded, err = client.Tenant.Get(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.SubscriptionStatusActive, reloaded.SubscriptionStatus)

	// Second sweep finds nothing left to demote.
	n, err = subscriptionService.ExpireOverdueTrials(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
