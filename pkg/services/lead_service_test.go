package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent/lead"
	"github.com/interacai/flowcore/pkg/models"
	testdb "github.com/interacai/flowcore/test/database"
)

func TestLeadService_SaveLead(t *testing.T) {
	client := testdb.NewTestClient(t)
	leadService := NewLeadService(client.Client, nil)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")

	t.Run("creates lead with defaults", func(t *testing.T) {
		ld, err := leadService.SaveLead(ctx, tenant.ID, models.CreateLeadRequest{
			Name: "Maria Lopez",
		})
		require.NoError(t, err)
		assert.Equal(t, "Maria Lopez", ld.Name)
		assert.Equal(t, lead.StatusNew, ld.Status)
		assert.Equal(t, "workflow", ld.Source)
		assert.Zero(t, ld.Value)

		// Creation starts an empty journal.
		activities, err := leadService.Activities(ctx, tenant.ID, ld.ID)
		require.NoError(t, err)
		assert.Empty(t, activities)
	})

	t.Run("creates lead with all fields", func(t *testing.T) {
		ld, err := leadService.SaveLead(ctx, tenant.ID, models.CreateLeadRequest{
			Name:   "John Smith",
			Email:  "john@example.com",
			Phone:  "+15551234567",
			Source: "chat",
			Status: "contacted",
			Value:  2500,
			Tags:   "vip,returning",
			Notes:  "asked about implants",
		})
		require.NoError(t, err)
		assert.Equal(t, "john@example.com", *ld.Email)
		assert.Equal(t, "+15551234567", *ld.Phone)
		assert.Equal(t, "chat", ld.Source)
		assert.Equal(t, lead.StatusContacted, ld.Status)
		assert.Equal(t, 2500.0, ld.Value)
		assert.Equal(t, "vip,returning", ld.Tags)
	})

	t.Run("validates name required", func(t *testing.T) {
		_, err := leadService.SaveLead(ctx, tenant.ID, models.CreateLeadRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := leadService.SaveLead(ctx, tenant.ID, models.CreateLeadRequest{
			Name:   "Bad Status",
			Status: "archived",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestLeadService_UpdateLead(t *testing.T) {
	client := testdb.NewTestClient(t)
	sink := &recordingSink{}
	leadService := NewLeadService(client.Client, sink)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")

	newLead := func(t *testing.T, name string) string {
		t.Helper()
		ld, err := leadService.SaveLead(ctx, tenant.ID, models.CreateLeadRequest{Name: name})
		require.NoError(t, err)
		return ld.ID
	}

	strPtr := func(s string) *string { return &s }
	floatPtr := func(f float64) *float64 { return &f }

	t.Run("records one activity per tracked change", func(t *testing.T) {
		leadID := newLead(t, "Tracked Changes")

		updated, err := leadService.UpdateLead(ctx, tenant.ID, leadID, models.UpdateLeadRequest{
			Status: strPtr("qualified"),
			Value:  floatPtr(1500),
		}, "agent@acme.test")
		require.NoError(t, err)
		assert.Equal(t, lead.StatusQualified, updated.Status)
		assert.Equal(t, 1500.0, updated.Value)

		activities, err := leadService.Activities(ctx, tenant.ID, leadID)
		require.NoError(t, err)
		require.Len(t, activities, 2)

		byType := map[string]map[string]any{}
		for _, a := range activities {
			assert.Equal(t, "agent@acme.test", a.CreatedBy)
			byType[a.Type] = a.Content
		}
		require.Contains(t, byType, "status_change")
		assert.Equal(t, "new", byType["status_change"]["old"])
		assert.Equal(t, "qualified", byType["status_change"]["new"])
		require.Contains(t, byType, "value_change")
		assert.EqualValues(t, 1500, byType["value_change"]["new"])
	})

	t.Run("status change reaches the event sink", func(t *testing.T) {
		leadID := newLead(t, "Sink Target")
		sink.events = nil

		_, err := leadService.UpdateLead(ctx, tenant.ID, leadID, models.UpdateLeadRequest{
			Status: strPtr("contacted"),
		}, "")
		require.NoError(t, err)

		require.Len(t, sink.events, 1)
		event := sink.events[0]
		assert.Equal(t, models.EventKindLeadStatusUpdate, event.Kind)
		assert.Equal(t, tenant.ID, event.TenantID)
		assert.Equal(t, leadID, event.Data["lead_id"])
		assert.Equal(t, "new", event.Data["old_status"])
		assert.Equal(t, "contacted", event.Data["new_status"])
	})

	t.Run("non-status changes stay out of the sink", func(t *testing.T) {
		leadID := newLead(t, "Quiet Update")
		sink.events = nil

		_, err := leadService.UpdateLead(ctx, tenant.ID, leadID, models.UpdateLeadRequest{
			Value: floatPtr(900),
			Notes: strPtr("left voicemail"),
		}, "")
		require.NoError(t, err)
		assert.Empty(t, sink.events)
	})

	t.Run("setting the same status writes no activity", func(t *testing.T) {
		leadID := newLead(t, "No Change")

		_, err := leadService.UpdateLead(ctx, tenant.ID, leadID, models.UpdateLeadRequest{
			Status: strPtr("new"),
		}, "")
		require.NoError(t, err)

		activities, err := leadService.Activities(ctx, tenant.ID, leadID)
		require.NoError(t, err)
		assert.Empty(t, activities)
	})

	t.Run("defaults created_by to system", func(t *testing.T) {
		leadID := newLead(t, "System Update")

		_, err := leadService.UpdateLead(ctx, tenant.ID, leadID, models.UpdateLeadRequest{
			Tags: strPtr("hot"),
		}, "")
		require.NoError(t, err)

		activities, err := leadService.Activities(ctx, tenant.ID, leadID)
		require.NoError(t, err)
		require.Len(t, activities, 1)
		assert.Equal(t, "tags_change", activities[0].Type)
		assert.Equal(t, "system", activities[0].CreatedBy)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		leadID := newLead(t, "Bad Update")

		_, err := leadService.UpdateLead(ctx, tenant.ID, leadID, models.UpdateLeadRequest{
			Status: strPtr("frozen"),
		}, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing lead", func(t *testing.T) {
		_, err := leadService.UpdateLead(ctx, tenant.ID, "nonexistent", models.UpdateLeadRequest{
			Status: strPtr("contacted"),
		}, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("scopes lookups to the tenant", func(t *testing.T) {
		other := createTestTenant(t, client.Client, "Other Clinic")
		leadID := newLead(t, "Scoped")

		_, err := leadService.UpdateLead(ctx, other.ID, leadID, models.UpdateLeadRequest{
			Status: strPtr("contacted"),
		}, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLeadService_ListLeads(t *testing.T) {
	client := testdb.NewTestClient(t)
	leadService := NewLeadService(client.Client, nil)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")

	seed := []models.CreateLeadRequest{
		{Name: "Alice Johnson", Email: "alice@example.com", Status: "new"},
		{Name: "Bob Martin", Phone: "+15550001111", Status: "qualified"},
		{Name: "Carol Alvarez", Status: "qualified"},
	}
	for _, req := range seed {
		_, err := leadService.SaveLead(ctx, tenant.ID, req)
		require.NoError(t, err)
	}

	t.Run("lists all with pagination defaults", func(t *testing.T) {
		resp, err := leadService.ListLeads(ctx, tenant.ID, models.LeadFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Leads, 3)
		assert.Equal(t, 20, resp.Limit)
	})

	t.Run("filters by status", func(t *testing.T) {
		resp, err := leadService.ListLeads(ctx, tenant.ID, models.LeadFilters{Status: "qualified"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
	})

	t.Run("search matches name, email and phone", func(t *testing.T) {
		resp, err := leadService.ListLeads(ctx, tenant.ID, models.LeadFilters{Search: "al"})
		require.NoError(t, err)
		// Alice (name and email) and Carol Alvarez (name).
		assert.Equal(t, 2, resp.TotalCount)

		resp, err = leadService.ListLeads(ctx, tenant.ID, models.LeadFilters{Search: "0001111"})
		require.NoError(t, err)
		require.Len(t, resp.Leads, 1)
		assert.Equal(t, "Bob Martin", resp.Leads[0].Name)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		resp, err := leadService.ListLeads(ctx, tenant.ID, models.LeadFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Leads, 2)

		resp, err = leadService.ListLeads(ctx, tenant.ID, models.LeadFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, resp.Leads, 1)
	})

	t.Run("excludes other tenants", func(t *testing.T) {
		other := createTestTenant(t, client.Client, "Other Clinic")
		resp, err := leadService.ListLeads(ctx, other.ID, models.LeadFilters{})
		require.NoError(t, err)
		assert.Zero(t, resp.TotalCount)
	})
}

func TestLeadService_LogActivity(t *testing.T) {
	client := testdb.NewTestClient(t)
	leadService := NewLeadService(client.Client, nil)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")
	ld, err := leadService.SaveLead(ctx, tenant.ID, models.CreateLeadRequest{Name: "Journal Lead"})
	require.NoError(t, err)

	t.Run("appends to the journal", func(t *testing.T) {
		activity, err := leadService.LogActivity(ctx, tenant.ID, ld.ID, "note_added",
			map[string]any{"text": "called back"}, "agent@acme.test")
		require.NoError(t, err)
		assert.Equal(t, "note_added", activity.Type)
		assert.Equal(t, "called back", activity.Content["text"])
	})

	t.Run("validates type required", func(t *testing.T) {
		_, err := leadService.LogActivity(ctx, tenant.ID, ld.ID, "", nil, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing lead", func(t *testing.T) {
		_, err := leadService.LogActivity(ctx, tenant.ID, "nonexistent", "note_added", nil, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
