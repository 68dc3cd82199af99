package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent/lead"
	"github.com/interacai/flowcore/ent/ticket"
	"github.com/interacai/flowcore/pkg/engine"
	testdb "github.com/interacai/flowcore/test/database"
)

func TestCRMService(t *testing.T) {
	client := testdb.NewTestClient(t)
	leadService := NewLeadService(client.Client, nil)
	ticketService := NewTicketService(client.Client, nil)
	crm := NewCRMService(leadService, ticketService)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")

	t.Run("create ticket links the participant's conversation", func(t *testing.T) {
		ticketID, err := crm.CreateTicket(ctx, tenant.ID, engine.TicketInput{
			Subject:     "Escalation from workflow",
			Description: "customer asked for a human twice",
			Priority:    "high",
			Participant: "+15551230007",
		})
		require.NoError(t, err)

		created, err := client.Ticket.Get(ctx, ticketID)
		require.NoError(t, err)
		assert.Equal(t, ticket.PriorityHigh, created.Priority)
		require.NotNil(t, created.ConversationID)
		assert.Equal(t, ConversationID(tenant.ID, "+15551230007"), *created.ConversationID)
	})

	t.Run("create ticket without participant", func(t *testing.T) {
		ticketID, err := crm.CreateTicket(ctx, tenant.ID, engine.TicketInput{
			Subject: "General escalation",
		})
		require.NoError(t, err)

		created, err := client.Ticket.Get(ctx, ticketID)
		require.NoError(t, err)
		assert.Nil(t, created.ConversationID)
	})

	t.Run("assign agent moves the ticket", func(t *testing.T) {
		ticketID, err := crm.CreateTicket(ctx, tenant.ID, engine.TicketInput{Subject: "Assign me"})
		require.NoError(t, err)

		require.NoError(t, crm.AssignAgent(ctx, tenant.ID, ticketID, "agent-3"))

		assigned, err := client.Ticket.Get(ctx, ticketID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StatusInProgress, assigned.Status)
		assert.Equal(t, "agent-3", *assigned.AssignedTo)
	})

	t.Run("save lead round-trips executor fields", func(t *testing.T) {
		leadID, err := crm.SaveLead(ctx, tenant.ID, engine.LeadInput{
			Name:   "Workflow Lead",
			Email:  "lead@example.com",
			Phone:  "+15550009999",
			Source: "workflow_automation",
			Status: "new",
			Value:  450,
			Tags:   "from-flow",
			Notes:  "captured by lead_capture node",
		})
		require.NoError(t, err)

		saved, err := client.Lead.Get(ctx, leadID)
		require.NoError(t, err)
		assert.Equal(t, "Workflow Lead", saved.Name)
		assert.Equal(t, "lead@example.com", *saved.Email)
		assert.Equal(t, "workflow_automation", saved.Source)
		assert.Equal(t, lead.StatusNew, saved.Status)
		assert.Equal(t, 450.0, saved.Value)
	})

	t.Run("save lead surfaces validation errors", func(t *testing.T) {
		_, err := crm.SaveLead(ctx, tenant.ID, engine.LeadInput{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
