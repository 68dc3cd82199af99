package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/ticket"
	"github.com/interacai/flowcore/pkg/models"
)

// HandoffNotifier pushes a human-handoff notice when a ticket is opened.
// The Slack service implements it; a nil notifier is a no-op.
type HandoffNotifier interface {
	NotifyTicketCreated(ctx context.Context, t *ent.Ticket)
}

// TicketService manages support tickets.
type TicketService struct {
	client   *ent.Client
	notifier HandoffNotifier
}

// NewTicketService creates a new TicketService. notifier may be nil.
func NewTicketService(client *ent.Client, notifier HandoffNotifier) *TicketService {
	return &TicketService{client: client, notifier: notifier}
}

// CreateTicket opens a ticket and notifies the handoff channel.
// Notification failures never fail the ticket.
func (s *TicketService) CreateTicket(httpCtx context.Context, tenantID string, req models.CreateTicketRequest) (*ent.Ticket, error) {
	if req.Subject == "" {
		return nil, NewValidationError("subject", "required")
	}
	priority := req.Priority
	if priority == "" {
		priority = string(ticket.PriorityMedium)
	}
	if err := ticket.PriorityValidator(ticket.Priority(priority)); err != nil {
		return nil, NewValidationError("priority", err.Error())
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.Ticket.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetSubject(req.Subject).
		SetPriority(ticket.Priority(priority))
	if req.Description != "" {
		create.SetDescription(req.Description)
	}
	if req.ConversationID != "" {
		create.SetConversationID(req.ConversationID)
	}
	if req.AssignedTo != "" {
		create.SetAssignedTo(req.AssignedTo)
	}

	t, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyTicketCreated(httpCtx, t)
	}
	return t, nil
}

// AssignAgent puts a ticket in a human agent's queue.
func (s *TicketService) AssignAgent(ctx context.Context, tenantID, ticketID, agentID string) (*ent.Ticket, error) {
	if agentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}

	t, err := s.client.Ticket.Query().
		Where(ticket.ID(ticketID), ticket.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}

	t, err = t.Update().
		SetAssignedTo(agentID).
		SetStatus(ticket.StatusInProgress).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign ticket: %w", err)
	}
	return t, nil
}

// UpdateTicketStatus moves a ticket through its lifecycle.
func (s *TicketService) UpdateTicketStatus(ctx context.Context, tenantID, ticketID string, status ticket.Status) (*ent.Ticket, error) {
	if err := ticket.StatusValidator(status); err != nil {
		return nil, NewValidationError("status", err.Error())
	}

	n, err := s.client.Ticket.Update().
		Where(ticket.ID(ticketID), ticket.TenantID(tenantID)).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	t, err := s.client.Ticket.Get(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload ticket: %w", err)
	}
	return t, nil
}

// ListTickets returns a tenant's tickets, optionally filtered by status,
// newest first.
func (s *TicketService) ListTickets(ctx context.Context, tenantID, status string) ([]*ent.Ticket, error) {
	q := s.client.Ticket.Query().Where(ticket.TenantID(tenantID))
	if status != "" {
		q = q.Where(ticket.StatusEQ(ticket.Status(status)))
	}

	tickets, err := q.Order(ent.Desc(ticket.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}
