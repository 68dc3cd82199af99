package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/businesssettings"
	"github.com/interacai/flowcore/ent/knowledgedoc"
	"github.com/interacai/flowcore/pkg/models"
	"github.com/interacai/flowcore/pkg/prompt"
)

// SettingsService manages the per-tenant business profile and builds the
// fallback assistant's persona from it. It is the engine's persona
// source: workflow ai_inference nodes call SystemPrompt through it.
type SettingsService struct {
	client *ent.Client
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(client *ent.Client) *SettingsService {
	return &SettingsService{client: client}
}

// Profile assembles the prompt-building view of a tenant: identity from
// the tenant row, voice and facts from settings, excerpts from the
// knowledge base. Missing settings yield a minimal but valid profile.
func (s *SettingsService) Profile(ctx context.Context, tenantID string) (prompt.BusinessProfile, error) {
	t, err := s.client.Tenant.Get(ctx, tenantID)
	if err != nil {
		if ent.IsNotFound(err) {
			return prompt.BusinessProfile{}, ErrNotFound
		}
		return prompt.BusinessProfile{}, fmt.Errorf("failed to load tenant: %w", err)
	}

	profile := prompt.BusinessProfile{Name: t.Name}

	settings, err := s.client.BusinessSettings.Query().
		Where(businesssettings.TenantID(tenantID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return prompt.BusinessProfile{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings != nil {
		profile.Industry = settings.Industry
		profile.Description = settings.Description
		profile.Services = settings.ServicesText
		profile.Tone = settings.Tone
		profile.Hours = settings.Hours
		profile.Location = settings.Location
		profile.FAQ = settings.Faq
		profile.CustomInstructions = settings.CustomInstructions
	}

	docs, err := s.client.KnowledgeDoc.Query().
		Where(knowledgedoc.TenantID(tenantID)).
		Order(ent.Asc(knowledgedoc.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return prompt.BusinessProfile{}, fmt.Errorf("failed to load knowledge docs: %w", err)
	}
	for _, doc := range docs {
		profile.KnowledgeDocs = append(profile.KnowledgeDocs, prompt.KnowledgeDoc{
			Title:   doc.Title,
			Content: doc.Content,
		})
	}

	return profile, nil
}

// SystemPrompt returns the assembled system prompt for a tenant.
func (s *SettingsService) SystemPrompt(ctx context.Context, tenantID string) (string, error) {
	profile, err := s.Profile(ctx, tenantID)
	if err != nil {
		return "", err
	}
	return prompt.BuildSystemPrompt(profile), nil
}

// GetSettings returns the tenant's settings row, or nil when none has
// been saved yet.
func (s *SettingsService) GetSettings(ctx context.Context, tenantID string) (*ent.BusinessSettings, error) {
	settings, err := s.client.BusinessSettings.Query().
		Where(businesssettings.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings writes the full profile (PUT semantics).
func (s *SettingsService) UpdateSettings(httpCtx context.Context, tenantID string, req models.UpdateSettingsRequest) (*ent.BusinessSettings, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	existing, err := s.GetSettings(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		settings, err := s.client.BusinessSettings.Create().
			SetID(uuid.New().String()).
			SetTenantID(tenantID).
			SetIndustry(req.Industry).
			SetDescription(req.Description).
			SetServicesText(req.ServicesText).
			SetTone(req.Tone).
			SetFaq(req.FAQ).
			SetCustomInstructions(req.CustomInstructions).
			SetLocation(req.Location).
			SetHours(req.Hours).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create settings: %w", err)
		}
		return settings, nil
	}

	settings, err := existing.Update().
		SetIndustry(req.Industry).
		SetDescription(req.Description).
		SetServicesText(req.ServicesText).
		SetTone(req.Tone).
		SetFaq(req.FAQ).
		SetCustomInstructions(req.CustomInstructions).
		SetLocation(req.Location).
		SetHours(req.Hours).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}
