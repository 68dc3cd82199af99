package api

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/interacai/flowcore/ent/message"
	"github.com/interacai/flowcore/pkg/arbiter"
	"github.com/interacai/flowcore/pkg/models"
	"github.com/interacai/flowcore/pkg/prompt"
	"github.com/interacai/flowcore/pkg/services"
)

// whatsappVerifyHandler handles GET /api/v1/webhooks/whatsapp, Meta's
// subscription handshake: echo hub.challenge back when the verify token
// matches.
func (s *Server) whatsappVerifyHandler(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "" || token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing verification parameters"})
		return
	}
	if mode != "subscribe" || token != s.verifyToken() {
		c.JSON(http.StatusForbidden, gin.H{"error": "verification failed"})
		return
	}
	c.String(http.StatusOK, challenge)
}

// verifyToken resolves the webhook verification secret from the
// configured env var. Empty means the handshake always fails, which is
// the safe default for an unconfigured channel.
func (s *Server) verifyToken() string {
	if s.cfg == nil || s.cfg.Channels == nil || s.cfg.Channels.WhatsApp == nil {
		return ""
	}
	return os.Getenv(s.cfg.Channels.WhatsApp.VerifyTokenEnv)
}

// whatsappWebhookHandler handles POST /api/v1/webhooks/whatsapp. Meta
// retries deliveries that do not get a 200, and a retry would re-run the
// whole arbitration, so every outcome past parsing acknowledges; failures
// are logged, never surfaced.
func (s *Server) whatsappWebhookHandler(c *gin.Context) {
	var payload whatsAppWebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		slog.Warn("Discarding malformed WhatsApp webhook", "error", err)
		c.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}

	phoneNumberID, from, body, ok := payload.firstMessage()
	if !ok {
		// Status and delivery notifications carry no text messages.
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return
	}

	if s.waSender == nil {
		slog.Warn("WhatsApp message received but the channel is not configured")
		c.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}

	ctx := c.Request.Context()
	tenant, err := s.waSender.TenantByPhoneNumberID(ctx, phoneNumberID)
	if err != nil {
		slog.Warn("Dropping WhatsApp message for unresolvable phone number",
			"phone_number_id", phoneNumberID,
			"error", err)
		c.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}

	intent := prompt.DetectIntent(body)
	sentiment := prompt.AnalyzeSentiment(body)

	msg, err := s.svcs.Conversations.StoreMessage(ctx, services.StoreMessageInput{
		TenantID:    tenant,
		Participant: from,
		Channel:     models.ChannelWhatsApp,
		Sender:      string(message.SenderUser),
		Body:        body,
		Intent:      intent,
		Sentiment:   sentiment,
	})
	if err != nil {
		slog.Error("Failed to store WhatsApp message",
			"tenant_id", tenant, "error", err)
		c.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}
	s.publishMessage(ctx, msg)

	event := models.NewMessageEvent(tenant, from, models.ChannelWhatsApp, body, map[string]any{
		"from_number": from,
		"intent":      intent,
		"sentiment":   sentiment,
	})
	outcome, err := s.resolver.Arbitrate(ctx, event)
	if err != nil {
		slog.Error("WhatsApp arbitration failed",
			"tenant_id", tenant, "error", err)
		c.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}

	switch outcome.Kind {
	case arbiter.OutcomeBlocked:
		// Deliver the canned notice so the conversation does not go
		// silent; it is transient and intentionally not journaled.
		if err := s.waSender.Post(ctx, tenant, from, outcome.Reply); err != nil {
			slog.Warn("Failed to deliver subscription notice",
				"tenant_id", tenant, "error", err)
		}
		c.JSON(http.StatusOK, gin.H{"status": "blocked"})
	case arbiter.OutcomeResumed, arbiter.OutcomeStarted:
		c.JSON(http.StatusOK, gin.H{
			"status":     models.ChatStatusWorkflowProcessing,
			"executions": outcome.ExecutionIDs,
		})
	default:
		result := s.fallbackReply(ctx, fallbackInput{
			TenantID:    tenant,
			Participant: from,
			Channel:     models.ChannelWhatsApp,
			Body:        body,
			Intent:      intent,
			Sentiment:   sentiment,
		})
		if err := s.waSender.Post(ctx, tenant, from, result.Text); err != nil {
			slog.Error("Failed to deliver WhatsApp reply",
				"tenant_id", tenant, "error", err)
		}
		c.JSON(http.StatusOK, gin.H{"status": "received"})
	}
}
