package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/ticket"
	"github.com/interacai/flowcore/pkg/models"
)

// listTicketsHandler handles GET /api/v1/tickets with an optional status
// query parameter.
func (s *Server) listTicketsHandler(c *gin.Context) {
	tickets, err := s.svcs.Tickets.ListTickets(c.Request.Context(), tenantID(c), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// createTicketHandler handles POST /api/v1/tickets, opening a human
// handoff ticket.
func (s *Server) createTicketHandler(c *gin.Context) {
	var req models.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := s.svcs.Tickets.CreateTicket(c.Request.Context(), tenantID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateTicketRequest is the body for PATCH /api/v1/tickets/:id. Assigning
// an agent moves the ticket to in_progress; an explicit status wins when
// both are given.
type UpdateTicketRequest struct {
	Status     string `json:"status,omitempty"`
	AssignedTo string `json:"assigned_to,omitempty"`
}

// updateTicketHandler handles PATCH /api/v1/tickets/:id.
func (s *Server) updateTicketHandler(c *gin.Context) {
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" && req.AssignedTo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status or assigned_to is required"})
		return
	}

	var (
		t   *ent.Ticket
		err error
	)
	if req.AssignedTo != "" {
		t, err = s.svcs.Tickets.AssignAgent(c.Request.Context(), tenantID(c), c.Param("id"), req.AssignedTo)
		if err != nil {
			respondServiceError(c, err)
			return
		}
	}
	if req.Status != "" {
		t, err = s.svcs.Tickets.UpdateTicketStatus(c.Request.Context(), tenantID(c), c.Param("id"), ticket.Status(req.Status))
		if err != nil {
			respondServiceError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, t)
}
