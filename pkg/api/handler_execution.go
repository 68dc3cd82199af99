package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/interacai/flowcore/pkg/models"
)

// listExecutionsHandler handles GET /api/v1/executions with optional
// workflow_id, status, limit and offset query parameters.
func (s *Server) listExecutionsHandler(c *gin.Context) {
	filters := models.ExecutionFilters{
		WorkflowID: c.Query("workflow_id"),
		Status:     c.Query("status"),
		Limit:      intQuery(c, "limit"),
		Offset:     intQuery(c, "offset"),
	}

	resp, err := s.svcs.Executions.ListExecutions(c.Request.Context(), tenantID(c), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getExecutionHandler handles GET /api/v1/executions/:id.
func (s *Server) getExecutionHandler(c *gin.Context) {
	exec, err := s.svcs.Executions.GetExecution(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exec)
}

// intQuery parses a non-negative integer query parameter, treating
// absent or malformed values as zero so the service applies its
// defaults.
func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
