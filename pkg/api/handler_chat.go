package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/message"
	"github.com/interacai/flowcore/pkg/arbiter"
	"github.com/interacai/flowcore/pkg/llm"
	"github.com/interacai/flowcore/pkg/models"
	"github.com/interacai/flowcore/pkg/prompt"
	"github.com/interacai/flowcore/pkg/services"
)

const (
	// maxChatMessageLen bounds a single inbound chat message.
	maxChatMessageLen = 10_000

	// historyLimit is how many prior turns the fallback assistant replays.
	historyLimit = 5

	// leadSourceAssistant marks leads the fallback assistant captured
	// through the LEAD_CAPTURE action tag.
	leadSourceAssistant = "ai_chat"
)

// chatHandler handles POST /api/v1/chat, the web widget ingress.
// The inbound message is journaled and annotated, then arbitrated: a
// workflow outcome suppresses the assistant and the reply comes back null
// with the claiming execution ids; only the Fallback outcome reaches the
// assistant path.
func (s *Server) chatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TenantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tenant_id is required"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if len(req.Message) > maxChatMessageLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message exceeds maximum length of 10,000 characters"})
		return
	}

	ctx := c.Request.Context()
	intent := prompt.DetectIntent(req.Message)
	sentiment := prompt.AnalyzeSentiment(req.Message)

	msg, err := s.svcs.Conversations.StoreMessage(ctx, services.StoreMessageInput{
		TenantID:    req.TenantID,
		Participant: req.UserID,
		Channel:     models.ChannelWeb,
		Sender:      string(message.SenderUser),
		Body:        req.Message,
		Intent:      intent,
		Sentiment:   sentiment,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	s.publishMessage(ctx, msg)

	event := models.NewMessageEvent(req.TenantID, req.UserID, models.ChannelWeb, req.Message, map[string]any{
		"user_id":   req.UserID,
		"intent":    intent,
		"sentiment": sentiment,
	})
	outcome, err := s.resolver.Arbitrate(ctx, event)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	switch outcome.Kind {
	case arbiter.OutcomeBlocked:
		c.JSON(http.StatusOK, &models.ChatResponse{
			Reply:  &outcome.Reply,
			Status: models.ChatStatusBlocked,
		})
	case arbiter.OutcomeResumed, arbiter.OutcomeStarted:
		// A workflow owns the response; it arrives over the event stream.
		c.JSON(http.StatusOK, &models.ChatResponse{
			Status:       models.ChatStatusWorkflowProcessing,
			ExecutionIDs: outcome.ExecutionIDs,
		})
	default:
		result := s.fallbackReply(ctx, fallbackInput{
			TenantID:    req.TenantID,
			Participant: req.UserID,
			Channel:     models.ChannelWeb,
			Body:        req.Message,
			Intent:      intent,
			Sentiment:   sentiment,
		})
		c.JSON(http.StatusOK, &models.ChatResponse{
			Reply:     &result.Text,
			Status:    models.ChatStatusOK,
			Intent:    result.Intent,
			Sentiment: result.Sentiment,
		})
	}
}

// fallbackInput carries one arbitration-released message into the
// assistant path.
type fallbackInput struct {
	TenantID    string
	Participant string
	Channel     string
	Body        string
	Intent      string
	Sentiment   string
}

// fallbackResult is the assistant's processed reply with the final
// annotations (heuristic verdicts, refined by the reply's analysis tag).
type fallbackResult struct {
	Text      string
	Intent    string
	Sentiment string
}

// fallbackReply runs the assistant path for a message no workflow
// claimed: compose the tenant prompt, replay recent history, generate,
// then strip and act on the reply's tags. The assistant reply is
// journaled here with its final annotations; delivery back to the
// participant is the caller's job (web returns it synchronously, the
// webhook posts it through the Graph API).
func (s *Server) fallbackReply(ctx context.Context, in fallbackInput) fallbackResult {
	system, err := s.svcs.Settings.SystemPrompt(ctx, in.TenantID)
	if err != nil {
		slog.Error("Failed to build system prompt, continuing without profile",
			"tenant_id", in.TenantID, "error", err)
	}

	// The inbound message was journaled before arbitration, so the
	// freshest history entry duplicates the user turn; drop it.
	history, err := s.svcs.Conversations.History(ctx, in.TenantID, in.Participant, historyLimit+1)
	if err != nil {
		slog.Error("Failed to load conversation history",
			"tenant_id", in.TenantID, "error", err)
		history = nil
	}
	if n := len(history); n > 0 && history[n-1].Role == llm.RoleUser && history[n-1].Content == in.Body {
		history = history[:n-1]
	}
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	reply := s.gateway.Chat(ctx, llm.ChatInput{
		TenantID: in.TenantID,
		UserID:   in.Participant,
		System:   system,
		History:  history,
		User:     in.Body,
	})

	analysis := prompt.ParseReplyTags(reply)

	if analysis.Lead != nil {
		if _, err := s.svcs.Leads.SaveLead(ctx, in.TenantID, models.CreateLeadRequest{
			Name:   analysis.Lead.Name,
			Email:  analysis.Lead.Email,
			Phone:  analysis.Lead.Phone,
			Notes:  analysis.Lead.Notes,
			Source: leadSourceAssistant,
		}); err != nil {
			slog.Error("Failed to save captured lead",
				"tenant_id", in.TenantID, "error", err)
		}
	}
	if analysis.Schedule {
		slog.Info("Assistant flagged scheduling intent",
			"tenant_id", in.TenantID, "participant", in.Participant)
	}

	result := fallbackResult{
		Text:      analysis.Text,
		Intent:    in.Intent,
		Sentiment: in.Sentiment,
	}
	if analysis.Intent != "" {
		result.Intent = analysis.Intent
		result.Sentiment = analysis.Sentiment
	}

	stored, err := s.svcs.Conversations.StoreMessage(ctx, services.StoreMessageInput{
		TenantID:    in.TenantID,
		Participant: in.Participant,
		Channel:     in.Channel,
		Sender:      string(message.SenderAssistant),
		Body:        result.Text,
		Intent:      result.Intent,
		Sentiment:   result.Sentiment,
	})
	if err != nil {
		slog.Error("Failed to store assistant reply",
			"tenant_id", in.TenantID, "error", err)
	} else {
		s.publishMessage(ctx, stored)
	}

	return result
}

// publishMessage announces a stored message to live streams, best effort.
func (s *Server) publishMessage(ctx context.Context, msg *ent.Message) {
	if s.publisher == nil || msg == nil {
		return
	}
	if err := s.publisher.PublishMessageCreated(ctx, msg); err != nil {
		slog.Warn("Failed to publish message event",
			"tenant_id", msg.TenantID,
			"message_id", msg.ID,
			"error", err)
	}
}
