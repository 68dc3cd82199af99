package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/interacai/flowcore/pkg/prompt"
)

const (
	safetyRefusal = "I cannot answer that question as it violates our safety guidelines."

	demoNotConfigured = "Thanks for reaching out! Our assistant is running in demo mode right now, so a member of the team will follow up with you shortly."
	demoRateLimited   = "We're helping a lot of customers at the moment. Please give me a few seconds and ask again."
	demoProviderDown  = "I'm having trouble processing that right now. Please try again in a moment."

	promptLogTimeout = 5 * time.Second
)

// PromptRecord is one logged LLM exchange.
type PromptRecord struct {
	TenantID string
	UserID   string
	Messages []Turn
	Response string
	Model    string
}

// PromptLogger persists prompt executions for auditing. Implementations
// must tolerate being called from short-lived goroutines.
type PromptLogger interface {
	LogPrompt(ctx context.Context, rec PromptRecord) error
}

// Gateway is the single entry point for generated text. Provider
// failures, missing configuration, and unsafe input all collapse into
// presentable strings; Gateway methods never return an error.
type Gateway struct {
	client Client
	logger PromptLogger
}

// NewGateway wraps a provider client. A nil client puts the gateway in
// demo mode, where every call returns the demo string.
func NewGateway(client Client, logger PromptLogger) *Gateway {
	if client == nil {
		slog.Warn("LLM gateway starting in demo mode, no provider configured")
	}
	return &Gateway{client: client, logger: logger}
}

// ChatInput is a fallback-assistant exchange with conversation history.
type ChatInput struct {
	TenantID string
	UserID   string
	System   string
	History  []Turn
	User     string
}

// Generate produces text for workflow nodes. The record is logged under
// the synthetic "workflow" user.
func (g *Gateway) Generate(ctx context.Context, tenantID, systemInstruction, userMessage string) string {
	return g.respond(ctx, tenantID, "workflow", systemInstruction, nil, userMessage)
}

// Chat produces a fallback-assistant reply with history replay.
func (g *Gateway) Chat(ctx context.Context, in ChatInput) string {
	return g.respond(ctx, in.TenantID, in.UserID, in.System, in.History, in.User)
}

func (g *Gateway) respond(ctx context.Context, tenantID, userID, system string, history []Turn, user string) string {
	if !prompt.CheckSafety(user) {
		slog.Warn("Safety screen rejected message", "tenant_id", tenantID, "user_id", userID)
		return safetyRefusal
	}

	if g.client == nil {
		return demoNotConfigured
	}

	response, err := g.client.Complete(ctx, Request{
		System:  system,
		History: history,
		User:    user,
	})
	if err != nil {
		kind := classifyFailure(err)
		slog.Error("LLM completion failed",
			"tenant_id", tenantID,
			"user_id", userID,
			"failure", int(kind),
			"error", err)
		return demoText(kind)
	}

	g.logAsync(ctx, PromptRecord{
		TenantID: tenantID,
		UserID:   userID,
		Messages: recordMessages(system, history, user),
		Response: response,
		Model:    g.client.Model(),
	})

	return response
}

func demoText(kind failureKind) string {
	switch kind {
	case failureAuth, failureQuota:
		return demoNotConfigured
	case failureRateLimited:
		return demoRateLimited
	default:
		return demoProviderDown
	}
}

func recordMessages(system string, history []Turn, user string) []Turn {
	messages := make([]Turn, 0, len(history)+2)
	if system != "" {
		messages = append(messages, Turn{Role: RoleSystem, Content: system})
	}
	messages = append(messages, history...)
	messages = append(messages, Turn{Role: RoleUser, Content: user})
	return messages
}

// logAsync records the exchange without blocking the reply. The record
// context is detached so request cancellation cannot drop the log.
func (g *Gateway) logAsync(ctx context.Context, rec PromptRecord) {
	if g.logger == nil {
		return
	}
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), promptLogTimeout)
	go func() {
		defer cancel()
		if err := g.logger.LogPrompt(logCtx, rec); err != nil {
			slog.Warn("Failed to log prompt execution",
				"tenant_id", rec.TenantID, "error", err)
		}
	}()
}
