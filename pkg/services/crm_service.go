package services

import (
	"context"

	"github.com/interacai/flowcore/pkg/engine"
	"github.com/interacai/flowcore/pkg/models"
)

// CRMService adapts the lead and ticket services to the shape workflow
// executors consume.
type CRMService struct {
	leads   *LeadService
	tickets *TicketService
}

// NewCRMService creates a new CRMService.
func NewCRMService(leads *LeadService, tickets *TicketService) *CRMService {
	if leads == nil || tickets == nil {
		panic("NewCRMService: leads and tickets must not be nil")
	}
	return &CRMService{leads: leads, tickets: tickets}
}

// CreateTicket opens a ticket from a workflow action node, linked to the
// participant's conversation when one is in play.
func (c *CRMService) CreateTicket(ctx context.Context, tenantID string, in engine.TicketInput) (string, error) {
	req := models.CreateTicketRequest{
		Subject:     in.Subject,
		Description: in.Description,
		Priority:    in.Priority,
	}
	if in.Participant != "" {
		req.ConversationID = ConversationID(tenantID, in.Participant)
	}

	t, err := c.tickets.CreateTicket(ctx, tenantID, req)
	if err != nil {
		return "", err
	}
	return t.ID, nil
}

// AssignAgent hands a ticket to a human agent.
func (c *CRMService) AssignAgent(ctx context.Context, tenantID, ticketID, agentID string) error {
	_, err := c.tickets.AssignAgent(ctx, tenantID, ticketID, agentID)
	return err
}

// SaveLead persists a lead captured by a workflow node.
func (c *CRMService) SaveLead(ctx context.Context, tenantID string, in engine.LeadInput) (string, error) {
	ld, err := c.leads.SaveLead(ctx, tenantID, models.CreateLeadRequest{
		Name:   in.Name,
		Email:  in.Email,
		Phone:  in.Phone,
		Source: in.Source,
		Status: in.Status,
		Value:  in.Value,
		Tags:   in.Tags,
		Notes:  in.Notes,
	})
	if err != nil {
		return "", err
	}
	return ld.ID, nil
}
