package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/knowledgedoc"
	"github.com/interacai/flowcore/pkg/models"
)

// KnowledgeService manages the documents fed into the fallback
// assistant's prompt.
type KnowledgeService struct {
	client *ent.Client
}

// NewKnowledgeService creates a new KnowledgeService.
func NewKnowledgeService(client *ent.Client) *KnowledgeService {
	return &KnowledgeService{client: client}
}

// AddDoc stores a document. Content is kept whole; the prompt builder
// truncates excerpts at assembly time.
func (s *KnowledgeService) AddDoc(ctx context.Context, tenantID string, req models.CreateKnowledgeDocRequest) (*ent.KnowledgeDoc, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}

	doc, err := s.client.KnowledgeDoc.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetTitle(req.Title).
		SetContent(req.Content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add knowledge doc: %w", err)
	}
	return doc, nil
}

// ListDocs returns the tenant's documents, oldest first (the order they
// appear in the prompt).
func (s *KnowledgeService) ListDocs(ctx context.Context, tenantID string) ([]*ent.KnowledgeDoc, error) {
	docs, err := s.client.KnowledgeDoc.Query().
		Where(knowledgedoc.TenantID(tenantID)).
		Order(ent.Asc(knowledgedoc.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge docs: %w", err)
	}
	return docs, nil
}

// DeleteDoc removes a document.
func (s *KnowledgeService) DeleteDoc(ctx context.Context, tenantID, docID string) error {
	n, err := s.client.KnowledgeDoc.Delete().
		Where(knowledgedoc.ID(docID), knowledgedoc.TenantID(tenantID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete knowledge doc: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
