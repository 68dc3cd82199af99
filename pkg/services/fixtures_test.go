package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/tenant"
	"github.com/interacai/flowcore/pkg/models"
)

// createTestTenant inserts a tenant on an active subscription so tests
// never trip the ingress gate by accident.
func createTestTenant(t *testing.T, client *ent.Client, name string) *ent.Tenant {
	t.Helper()
	tn, err := client.Tenant.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetSubscriptionStatus(tenant.SubscriptionStatusActive).
		Save(context.Background())
	require.NoError(t, err)
	return tn
}

// createTrialTenant inserts a tenant on a trial ending at the given time.
func createTrialTenant(t *testing.T, client *ent.Client, name string, endsAt time.Time) *ent.Tenant {
	t.Helper()
	tn, err := client.Tenant.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetSubscriptionStatus(tenant.SubscriptionStatusTrial).
		SetTrialStartedAt(endsAt.AddDate(0, 0, -14)).
		SetTrialEndsAt(endsAt).
		Save(context.Background())
	require.NoError(t, err)
	return tn
}

// linearWorkflowRequest is a minimal valid definition:
// start -> send_message -> end.
func linearWorkflowRequest(name string) models.CreateWorkflowRequest {
	return models.CreateWorkflowRequest{
		Name:        name,
		TriggerType: "keyword",
		TriggerConfig: map[string]any{
			"keyword": "pricing",
		},
		Nodes: []models.WorkflowNodePayload{
			{ID: "n-start", Type: "start"},
			{ID: "n-send", Type: "action", Config: map[string]any{
				"action_type": "send_message",
				"template":    "We have plans from $9/mo.",
			}},
			{ID: "n-end", Type: "end"},
		},
		Edges: []models.WorkflowEdgePayload{
			{Source: "n-start", Target: "n-send"},
			{Source: "n-send", Target: "n-end"},
		},
	}
}

// recordingEnqueuer captures Enqueue calls for assertion.
type recordingEnqueuer struct {
	err   error
	calls []enqueueCall
}

type enqueueCall struct {
	executionID string
	nodeID      string
	payload     map[string]any
	runAt       time.Time
}

func (r *recordingEnqueuer) Enqueue(_ context.Context, executionID, nodeID string, payload map[string]any, runAt time.Time) error {
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, enqueueCall{executionID: executionID, nodeID: nodeID, payload: payload, runAt: runAt})
	return nil
}

// recordingSink captures lead status events.
type recordingSink struct {
	events []*models.InboundEvent
}

func (r *recordingSink) HandleLeadEvent(_ context.Context, event *models.InboundEvent) {
	r.events = append(r.events, event)
}
