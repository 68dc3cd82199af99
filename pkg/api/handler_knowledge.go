package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interacai/flowcore/pkg/models"
)

// createKnowledgeDocHandler handles POST /api/v1/knowledge.
func (s *Server) createKnowledgeDocHandler(c *gin.Context) {
	var req models.CreateKnowledgeDocRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := s.svcs.Knowledge.AddDoc(c.Request.Context(), tenantID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// listKnowledgeDocsHandler handles GET /api/v1/knowledge.
func (s *Server) listKnowledgeDocsHandler(c *gin.Context) {
	docs, err := s.svcs.Knowledge.ListDocs(c.Request.Context(), tenantID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// deleteKnowledgeDocHandler handles DELETE /api/v1/knowledge/:id.
func (s *Server) deleteKnowledgeDocHandler(c *gin.Context) {
	docID := c.Param("id")
	if err := s.svcs.Knowledge.DeleteDoc(c.Request.Context(), tenantID(c), docID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, &DeleteResponse{ID: docID, Status: "deleted"})
}
