package arbiter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/pkg/models"
	testdb "github.com/interacai/flowcore/test/database"
)

func TestMatchesPredicate(t *testing.T) {
	msg := func(body string, extra map[string]any) *models.InboundEvent {
		return models.NewMessageEvent("t1", "+15550001111", "whatsapp", body, extra)
	}

	tests := []struct {
		name   string
		config map[string]any
		event  *models.InboundEvent
		want   bool
	}{
		{
			name:   "empty config matches everything",
			config: nil,
			event:  msg("anything at all", nil),
			want:   true,
		},
		{
			name:   "keyword is a case-insensitive substring",
			config: map[string]any{"keyword": "PriCing"},
			event:  msg("what is your pricing like?", nil),
			want:   true,
		},
		{
			name:   "keyword absent from body",
			config: map[string]any{"keyword": "pricing"},
			event:  msg("hello there", nil),
			want:   false,
		},
		{
			name:   "intent equality",
			config: map[string]any{"intent": "book_appointment"},
			event:  msg("can I come by?", map[string]any{"intent": "book_appointment"}),
			want:   true,
		},
		{
			name:   "intent mismatch",
			config: map[string]any{"intent": "book_appointment"},
			event:  msg("can I come by?", map[string]any{"intent": "pricing_inquiry"}),
			want:   false,
		},
		{
			name:   "intent required but absent",
			config: map[string]any{"intent": "book_appointment"},
			event:  msg("can I come by?", nil),
			want:   false,
		},
		{
			name:   "keys are AND-composed",
			config: map[string]any{"keyword": "visit", "intent": "book_appointment"},
			event:  msg("I want to visit", map[string]any{"intent": "pricing_inquiry"}),
			want:   false,
		},
		{
			name:   "all keys hold",
			config: map[string]any{"keyword": "visit", "intent": "book_appointment"},
			event:  msg("I want to visit", map[string]any{"intent": "book_appointment"}),
			want:   true,
		},
		{
			name:   "status matches lead event",
			config: map[string]any{"status": "qualified"},
			event:  models.NewLeadStatusEvent("t1", "lead-1", "new", "qualified"),
			want:   true,
		},
		{
			name:   "status mismatch on lead event",
			config: map[string]any{"status": "qualified"},
			event:  models.NewLeadStatusEvent("t1", "lead-1", "new", "contacted"),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesPredicate(tt.config, tt.event))
		})
	}
}

func TestMatcherSelectsCompatibleKinds(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	h := newArbHarness(ctx, t, client)
	m := NewMatcher(h.workflows)

	keywordWf, _ := h.createWorkflow(ctx, t, keywordRequest("Pricing responder", "pricing"))

	leadReq := keywordRequest("Qualified follow-up", "")
	leadReq.TriggerType = "lead_event"
	leadReq.TriggerConfig = map[string]any{"status": "qualified"}
	leadWf, _ := h.createWorkflow(ctx, t, leadReq)

	manualReq := keywordRequest("Manual only", "")
	manualReq.TriggerType = "manual"
	manualReq.TriggerConfig = nil
	_, _ = h.createWorkflow(ctx, t, manualReq)

	t.Run("message event selects keyword and intent kinds", func(t *testing.T) {
		event := models.NewMessageEvent(h.tenant.ID, "+15550001111", "whatsapp", "what is pricing?", nil)
		matched, err := m.Match(ctx, h.tenant.ID, event)
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, keywordWf.ID, matched[0].ID)
	})

	t.Run("lead event selects lead_event kind", func(t *testing.T) {
		event := models.NewLeadStatusEvent(h.tenant.ID, "lead-1", "new", "qualified")
		matched, err := m.Match(ctx, h.tenant.ID, event)
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, leadWf.ID, matched[0].ID)
	})

	t.Run("unknown event kind matches nothing", func(t *testing.T) {
		event := &models.InboundEvent{TenantID: h.tenant.ID, Kind: "totally_new_kind"}
		matched, err := m.Match(ctx, h.tenant.ID, event)
		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("inactive workflows never match", func(t *testing.T) {
		require.NoError(t, h.workflows.SetActive(ctx, h.tenant.ID, keywordWf.ID, false))
		event := models.NewMessageEvent(h.tenant.ID, "+15550001111", "whatsapp", "what is pricing?", nil)
		matched, err := m.Match(ctx, h.tenant.ID, event)
		require.NoError(t, err)
		assert.Empty(t, matched)
	})
}
