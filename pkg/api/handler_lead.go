package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interacai/flowcore/pkg/models"
)

const leadSourceManual = "manual"

// listLeadsHandler handles GET /api/v1/leads with optional status,
// search, limit and offset query parameters.
func (s *Server) listLeadsHandler(c *gin.Context) {
	filters := models.LeadFilters{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Limit:  intQuery(c, "limit"),
		Offset: intQuery(c, "offset"),
	}

	resp, err := s.svcs.Leads.ListLeads(c.Request.Context(), tenantID(c), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createLeadHandler handles POST /api/v1/leads. Dashboard-created leads
// carry the "manual" source; workflow and assistant captures set their
// own when they call the service directly.
func (s *Server) createLeadHandler(c *gin.Context) {
	var req models.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Source == "" {
		req.Source = leadSourceManual
	}

	lead, err := s.svcs.Leads.SaveLead(c.Request.Context(), tenantID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// updateLeadHandler handles PATCH /api/v1/leads/:id. Absent fields stay
// unchanged; every applied change lands in the activity log attributed
// to the caller.
func (s *Server) updateLeadHandler(c *gin.Context) {
	var req models.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := s.svcs.Leads.UpdateLead(c.Request.Context(), tenantID(c), c.Param("id"), req, extractAuthor(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// listLeadActivitiesHandler handles GET /api/v1/leads/:id/activities,
// newest first.
func (s *Server) listLeadActivitiesHandler(c *gin.Context) {
	activities, err := s.svcs.Leads.Activities(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
