package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interacai/flowcore/pkg/models"
)

// createWorkflowHandler handles POST /api/v1/workflows. Validation of the
// graph itself (single start, known endpoints, cycles) happens in the
// service.
func (s *Server) createWorkflowHandler(c *gin.Context) {
	var req models.CreateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wf, err := s.svcs.Workflows.CreateWorkflow(c.Request.Context(), tenantID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wf)
}

// listWorkflowsHandler handles GET /api/v1/workflows.
func (s *Server) listWorkflowsHandler(c *gin.Context) {
	workflows, err := s.svcs.Workflows.ListWorkflows(c.Request.Context(), tenantID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, &models.WorkflowListResponse{Workflows: workflows})
}

// getWorkflowHandler handles GET /api/v1/workflows/:id.
func (s *Server) getWorkflowHandler(c *gin.Context) {
	wf, err := s.svcs.Workflows.GetWorkflow(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, wf)
}

// UpdateWorkflowRequest is the body for PATCH /api/v1/workflows/:id.
// Only activation can change after creation; the builder replaces a
// workflow wholesale to edit its graph.
type UpdateWorkflowRequest struct {
	Active *bool `json:"active"`
}

// updateWorkflowHandler handles PATCH /api/v1/workflows/:id.
func (s *Server) updateWorkflowHandler(c *gin.Context) {
	var req UpdateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Active == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "active is required"})
		return
	}

	if err := s.svcs.Workflows.SetActive(c.Request.Context(), tenantID(c), c.Param("id"), *req.Active); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "active": *req.Active})
}

// deleteWorkflowHandler handles DELETE /api/v1/workflows/:id.
func (s *Server) deleteWorkflowHandler(c *gin.Context) {
	workflowID := c.Param("id")
	if err := s.svcs.Workflows.DeleteWorkflow(c.Request.Context(), tenantID(c), workflowID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, &DeleteResponse{ID: workflowID, Status: "deleted"})
}

// TriggerWorkflowRequest is the body for POST /api/v1/workflows/:id/trigger.
// Data seeds context.trigger of the manual run.
type TriggerWorkflowRequest struct {
	Data map[string]any `json:"data"`
}

// triggerWorkflowHandler handles POST /api/v1/workflows/:id/trigger,
// starting one execution regardless of the workflow's trigger predicate.
func (s *Server) triggerWorkflowHandler(c *gin.Context) {
	var req TriggerWorkflowRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	exec, err := s.svcs.Executions.StartManual(c.Request.Context(), tenantID(c), c.Param("id"), req.Data)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, &TriggerResponse{
		ExecutionID: exec.ID,
		Status:      "triggered",
	})
}
