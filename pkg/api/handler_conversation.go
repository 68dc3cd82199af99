package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interacai/flowcore/pkg/models"
)

const defaultMessageLimit = 50

// listConversationsHandler handles GET /api/v1/conversations, newest
// activity first.
func (s *Server) listConversationsHandler(c *gin.Context) {
	conversations, err := s.svcs.Conversations.ListConversations(c.Request.Context(), tenantID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, &models.ConversationListResponse{Conversations: conversations})
}

// listMessagesHandler handles GET /api/v1/conversations/:id/messages
// with an optional limit query parameter.
func (s *Server) listMessagesHandler(c *gin.Context) {
	limit := intQuery(c, "limit")
	if limit == 0 {
		limit = defaultMessageLimit
	}

	messages, err := s.svcs.Conversations.ListMessages(c.Request.Context(), tenantID(c), c.Param("id"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, &models.MessageListResponse{Messages: messages})
}

// markReadHandler handles POST /api/v1/conversations/:id/read, zeroing
// the unread counter after the dashboard opens a thread.
func (s *Server) markReadHandler(c *gin.Context) {
	conversationID := c.Param("id")
	if err := s.svcs.Conversations.MarkRead(c.Request.Context(), tenantID(c), conversationID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": conversationID, "status": "read"})
}
