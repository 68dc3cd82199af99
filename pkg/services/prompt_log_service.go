package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/pkg/llm"
)

// workflowUserID marks gateway calls made on behalf of a workflow node
// rather than a chat participant.
const workflowUserID = "workflow"

// PromptLogService persists the LLM audit trail. The gateway calls it
// off the reply path.
type PromptLogService struct {
	client *ent.Client
}

// NewPromptLogService creates a new PromptLogService.
func NewPromptLogService(client *ent.Client) *PromptLogService {
	return &PromptLogService{client: client}
}

// LogPrompt writes one exchange. Chat calls are linked to their
// conversation; workflow calls carry no conversation.
func (s *PromptLogService) LogPrompt(ctx context.Context, rec llm.PromptRecord) error {
	messages := make([]map[string]interface{}, 0, len(rec.Messages))
	for _, turn := range rec.Messages {
		messages = append(messages, map[string]interface{}{
			"role":    turn.Role,
			"content": turn.Content,
		})
	}

	create := s.client.PromptExecution.Create().
		SetID(uuid.New().String()).
		SetTenantID(rec.TenantID).
		SetMessages(messages).
		SetResponse(rec.Response).
		SetModel(rec.Model)
	if rec.UserID != "" && rec.UserID != workflowUserID {
		create.SetConversationID(ConversationID(rec.TenantID, rec.UserID))
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to log prompt execution: %w", err)
	}
	return nil
}
