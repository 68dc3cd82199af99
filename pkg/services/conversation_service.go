package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/conversation"
	"github.com/interacai/flowcore/ent/message"
	"github.com/interacai/flowcore/pkg/llm"
	"github.com/interacai/flowcore/pkg/models"
)

// ConversationID derives the thread id for a tenant/participant pair.
// Every message store, lookup and resume uses this derivation, so one
// participant maps to exactly one thread per tenant.
func ConversationID(tenantID, participant string) string {
	return tenantID + ":" + participant
}

// StoreMessageInput describes one message to append to a thread.
type StoreMessageInput struct {
	TenantID    string
	Participant string
	Channel     string
	Sender      string
	Body        string
	Intent      string
	Sentiment   string
}

// ConversationService manages threads and their message journal.
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a new ConversationService.
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// StoreMessage appends a message, creating the conversation on first
// contact. User messages bump the unread counter and refresh the stored
// intent/sentiment; assistant and agent messages only move last_message.
func (s *ConversationService) StoreMessage(httpCtx context.Context, in StoreMessageInput) (*ent.Message, error) {
	if in.TenantID == "" {
		return nil, NewValidationError("tenant_id", "required")
	}
	if in.Participant == "" {
		return nil, NewValidationError("participant", "required")
	}
	switch in.Sender {
	case string(message.SenderUser), string(message.SenderAssistant), string(message.SenderAgent):
	default:
		return nil, NewValidationError("sender", "must be user, assistant or agent")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	conv, err := s.ensureConversation(ctx, in.TenantID, in.Participant, in.Channel)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	update := conv.Update().
		SetLastMessage(in.Body).
		SetLastMessageAt(now)
	if in.Sender == string(message.SenderUser) {
		update.AddUnreadCount(1)
		if in.Intent != "" {
			update.SetLastIntent(in.Intent)
		}
		if in.Sentiment != "" {
			update.SetLastSentiment(in.Sentiment)
		}
	}
	if _, err := update.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update conversation: %w", err)
	}

	create := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(conv.ID).
		SetTenantID(in.TenantID).
		SetSender(message.Sender(in.Sender)).
		SetBody(in.Body).
		SetChannel(message.Channel(channelOrDefault(in.Channel))).
		SetCreatedAt(now)
	if in.Intent != "" {
		create.SetIntent(in.Intent)
	}
	if in.Sentiment != "" {
		create.SetSentiment(in.Sentiment)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return msg, nil
}

func channelOrDefault(channel string) string {
	if channel == "" {
		return models.ChannelWeb
	}
	return channel
}

// ensureConversation returns the thread for the pair, creating it when
// missing. Concurrent first messages race on the unique id; the loser
// re-reads.
func (s *ConversationService) ensureConversation(ctx context.Context, tenantID, participant, channel string) (*ent.Conversation, error) {
	id := ConversationID(tenantID, participant)

	conv, err := s.client.Conversation.Get(ctx, id)
	if err == nil {
		return conv, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	conv, err = s.client.Conversation.Create().
		SetID(id).
		SetTenantID(tenantID).
		SetParticipant(participant).
		SetChannel(conversation.Channel(channelOrDefault(channel))).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			conv, err = s.client.Conversation.Get(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("failed to load conversation after race: %w", err)
			}
			return conv, nil
		}
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conv, nil
}

// History returns the last `limit` turns of a thread in chronological
// order, shaped for the LLM chat path. Agent messages count as assistant
// turns so the model sees the whole business side as itself.
func (s *ConversationService) History(ctx context.Context, tenantID, participant string, limit int) ([]llm.Turn, error) {
	if limit <= 0 {
		return nil, nil
	}

	msgs, err := s.client.Message.Query().
		Where(
			message.ConversationID(ConversationID(tenantID, participant)),
			message.TenantID(tenantID),
		).
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	turns := make([]llm.Turn, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		role := llm.RoleAssistant
		if msgs[i].Sender == message.SenderUser {
			role = llm.RoleUser
		}
		turns = append(turns, llm.Turn{Role: role, Content: msgs[i].Body})
	}
	return turns, nil
}

// ListConversations returns a tenant's threads, most recently active first.
func (s *ConversationService) ListConversations(ctx context.Context, tenantID string) ([]*ent.Conversation, error) {
	convs, err := s.client.Conversation.Query().
		Where(conversation.TenantID(tenantID)).
		Order(ent.Desc(conversation.FieldLastMessageAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return convs, nil
}

// ListMessages returns one thread's messages in chronological order.
func (s *ConversationService) ListMessages(ctx context.Context, tenantID, conversationID string, limit int) ([]*ent.Message, error) {
	exists, err := s.client.Conversation.Query().
		Where(conversation.ID(conversationID), conversation.TenantID(tenantID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check conversation: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	q := s.client.Message.Query().
		Where(message.ConversationID(conversationID)).
		Order(ent.Asc(message.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	msgs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

// MarkRead zeroes the unread counter after an operator opens the thread.
func (s *ConversationService) MarkRead(ctx context.Context, tenantID, conversationID string) error {
	n, err := s.client.Conversation.Update().
		Where(conversation.ID(conversationID), conversation.TenantID(tenantID)).
		SetUnreadCount(0).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
