package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interacai/flowcore/pkg/models"
)

// getSettingsHandler handles GET /api/v1/settings. A tenant that has
// never saved settings gets an empty object, not a 404.
func (s *Server) getSettingsHandler(c *gin.Context) {
	settings, err := s.svcs.Settings.GetSettings(c.Request.Context(), tenantID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if settings == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// updateSettingsHandler handles PUT /api/v1/settings with replace
// semantics: absent fields clear.
func (s *Server) updateSettingsHandler(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := s.svcs.Settings.UpdateSettings(c.Request.Context(), tenantID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
