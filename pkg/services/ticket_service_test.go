package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/ticket"
	"github.com/interacai/flowcore/pkg/models"
	testdb "github.com/interacai/flowcore/test/database"
)

type recordingNotifier struct {
	tickets []*ent.Ticket
}

func (r *recordingNotifier) NotifyTicketCreated(_ context.Context, t *ent.Ticket) {
	r.tickets = append(r.tickets, t)
}

func TestTicketService_CreateTicket(t *testing.T) {
	client := testdb.NewTestClient(t)
	notifier := &recordingNotifier{}
	ticketService := NewTicketService(client.Client, notifier)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")

	t.Run("creates with defaults and notifies", func(t *testing.T) {
		created, err := ticketService.CreateTicket(ctx, tenant.ID, models.CreateTicketRequest{
			Subject: "Customer asked for a human",
		})
		require.NoError(t, err)
		assert.Equal(t, ticket.PriorityMedium, created.Priority)
		assert.Equal(t, ticket.StatusOpen, created.Status)
		assert.Nil(t, created.AssignedTo)

		require.Len(t, notifier.tickets, 1)
		assert.Equal(t, created.ID, notifier.tickets[0].ID)
	})

	t.Run("creates with all fields", func(t *testing.T) {
		created, err := ticketService.CreateTicket(ctx, tenant.ID, models.CreateTicketRequest{
			Subject:        "Billing dispute",
			Description:    "charge does not match the quote",
			Priority:       "high",
			ConversationID: ConversationID(tenant.ID, "+15551230003"),
			AssignedTo:     "agent-1",
		})
		require.NoError(t, err)
		assert.Equal(t, ticket.PriorityHigh, created.Priority)
		assert.Equal(t, "charge does not match the quote", created.Description)
		assert.Equal(t, ConversationID(tenant.ID, "+15551230003"), *created.ConversationID)
		assert.Equal(t, "agent-1", *created.AssignedTo)
	})

	t.Run("validates subject required", func(t *testing.T) {
		_, err := ticketService.CreateTicket(ctx, tenant.ID, models.CreateTicketRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		_, err := ticketService.CreateTicket(ctx, tenant.ID, models.CreateTicketRequest{
			Subject:  "x",
			Priority: "urgent",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("nil notifier is a no-op", func(t *testing.T) {
		quiet := NewTicketService(client.Client, nil)
		_, err := quiet.CreateTicket(ctx, tenant.ID, models.CreateTicketRequest{Subject: "silent"})
		require.NoError(t, err)
	})
}

func TestTicketService_AssignAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ticketService := NewTicketService(client.Client, nil)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")
	created, err := ticketService.CreateTicket(ctx, tenant.ID, models.CreateTicketRequest{Subject: "needs a human"})
	require.NoError(t, err)

	t.Run("assigns and moves to in_progress", func(t *testing.T) {
		assigned, err := ticketService.AssignAgent(ctx, tenant.ID, created.ID, "agent-7")
		require.NoError(t, err)
		assert.Equal(t, "agent-7", *assigned.AssignedTo)
		assert.Equal(t, ticket.StatusInProgress, assigned.Status)
	})

	t.Run("validates agent_id required", func(t *testing.T) {
		_, err := ticketService.AssignAgent(ctx, tenant.ID, created.ID, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing ticket", func(t *testing.T) {
		_, err := ticketService.AssignAgent(ctx, tenant.ID, "nonexistent", "agent-7")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("scopes to the tenant", func(t *testing.T) {
		other := createTestTenant(t, client.Client, "Other Clinic")
		_, err := ticketService.AssignAgent(ctx, other.ID, created.ID, "agent-7")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTicketService_StatusAndListing(t *testing.T) {
	client := testdb.NewTestClient(t)
	ticketService := NewTicketService(client.Client, nil)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")
	first, err := ticketService.CreateTicket(ctx, tenant.ID, models.CreateTicketRequest{Subject: "first"})
	require.NoError(t, err)
	_, err = ticketService.CreateTicket(ctx, tenant.ID, models.CreateTicketRequest{Subject: "second"})
	require.NoError(t, err)

	t.Run("updates status", func(t *testing.T) {
		updated, err := ticketService.UpdateTicketStatus(ctx, tenant.ID, first.ID, ticket.StatusResolved)
		require.NoError(t, err)
		assert.Equal(t, ticket.StatusResolved, updated.Status)
	})

	t.Run("returns ErrNotFound for missing ticket", func(t *testing.T) {
		_, err := ticketService.UpdateTicketStatus(ctx, tenant.ID, "nonexistent", ticket.StatusClosed)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lists newest first", func(t *testing.T) {
		tickets, err := ticketService.ListTickets(ctx, tenant.ID, "")
		require.NoError(t, err)
		require.Len(t, tickets, 2)
		assert.Equal(t, "second", tickets[0].Subject)
	})

	t.Run("filters by status", func(t *testing.T) {
		tickets, err := ticketService.ListTickets(ctx, tenant.ID, "resolved")
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, first.ID, tickets[0].ID)
	})
}
