package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/pkg/models"
	testdb "github.com/interacai/flowcore/test/database"
)

func TestSettingsService_Profile(t *testing.T) {
	client := testdb.NewTestClient(t)
	settingsService := NewSettingsService(client.Client)
	knowledgeService := NewKnowledgeService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Sunrise Dental")

	t.Run("minimal profile without settings", func(t *testing.T) {
		profile, err := settingsService.Profile(ctx, tenant.ID)
		require.NoError(t, err)
		assert.Equal(t, "Sunrise Dental", profile.Name)
		assert.Empty(t, profile.Industry)
		assert.Empty(t, profile.KnowledgeDocs)
	})

	t.Run("full profile", func(t *testing.T) {
		_, err := settingsService.UpdateSettings(ctx, tenant.ID, models.UpdateSettingsRequest{
			Industry:           "dental",
			Description:        "Family dentistry since 1998",
			ServicesText:       "Cleanings, whitening, implants",
			Tone:               "warm",
			FAQ:                "Q: Do you take insurance? A: Yes, most plans.",
			CustomInstructions: "Never quote implant prices in chat.",
			Location:           "12 Main St, Springfield",
			Hours:              "Mon-Fri 8-17",
		})
		require.NoError(t, err)

		_, err = knowledgeService.AddDoc(ctx, tenant.ID, models.CreateKnowledgeDocRequest{
			Title: "Implant aftercare", Content: "Avoid hard foods for 48 hours.",
		})
		require.NoError(t, err)
		_, err = knowledgeService.AddDoc(ctx, tenant.ID, models.CreateKnowledgeDocRequest{
			Title: "Whitening FAQ", Content: "Results last 6-12 months.",
		})
		require.NoError(t, err)

		profile, err := settingsService.Profile(ctx, tenant.ID)
		require.NoError(t, err)
		assert.Equal(t, "dental", profile.Industry)
		assert.Equal(t, "Cleanings, whitening, implants", profile.Services)
		assert.Equal(t, "warm", profile.Tone)
		require.Len(t, profile.KnowledgeDocs, 2)
		// Docs keep insertion order so the prompt is stable.
		assert.Equal(t, "Implant aftercare", profile.KnowledgeDocs[0].Title)
		assert.Equal(t, "Whitening FAQ", profile.KnowledgeDocs[1].Title)
	})

	t.Run("system prompt carries the profile", func(t *testing.T) {
		systemPrompt, err := settingsService.SystemPrompt(ctx, tenant.ID)
		require.NoError(t, err)
		assert.Contains(t, systemPrompt, "You are the AI assistant for Sunrise Dental")
		assert.Contains(t, systemPrompt, "Cleanings, whitening, implants")
		assert.Contains(t, systemPrompt, "STRICT CUSTOM RULES:\nNever quote implant prices in chat.")
		assert.Contains(t, systemPrompt, "SOURCE: Implant aftercare")
		assert.Contains(t, systemPrompt, "Avoid hard foods for 48 hours.")
	})

	t.Run("unknown tenant returns ErrNotFound", func(t *testing.T) {
		_, err := settingsService.Profile(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = settingsService.SystemPrompt(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	client := testdb.NewTestClient(t)
	settingsService := NewSettingsService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")

	t.Run("nil before first save", func(t *testing.T) {
		settings, err := settingsService.GetSettings(ctx, tenant.ID)
		require.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("creates then updates in place", func(t *testing.T) {
		created, err := settingsService.UpdateSettings(ctx, tenant.ID, models.UpdateSettingsRequest{
			Industry: "dental",
			Tone:     "formal",
		})
		require.NoError(t, err)
		assert.Equal(t, "dental", created.Industry)

		// PUT semantics: omitted fields clear.
		updated, err := settingsService.UpdateSettings(ctx, tenant.ID, models.UpdateSettingsRequest{
			Industry: "dental",
			Hours:    "24/7",
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "24/7", updated.Hours)
		assert.Empty(t, updated.Tone)
	})
}

func TestKnowledgeService(t *testing.T) {
	client := testdb.NewTestClient(t)
	knowledgeService := NewKnowledgeService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")

	t.Run("validates title and content", func(t *testing.T) {
		_, err := knowledgeService.AddDoc(ctx, tenant.ID, models.CreateKnowledgeDocRequest{Content: "x"})
		assert.True(t, IsValidationError(err))

		_, err = knowledgeService.AddDoc(ctx, tenant.ID, models.CreateKnowledgeDocRequest{Title: "x"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("lists oldest first", func(t *testing.T) {
		for _, title := range []string{"first", "second", "third"} {
			_, err := knowledgeService.AddDoc(ctx, tenant.ID, models.CreateKnowledgeDocRequest{
				Title: title, Content: "body of " + title,
			})
			require.NoError(t, err)
		}

		docs, err := knowledgeService.ListDocs(ctx, tenant.ID)
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "first", docs[0].Title)
		assert.Equal(t, "third", docs[2].Title)
	})

	t.Run("deletes by id", func(t *testing.T) {
		docs, err := knowledgeService.ListDocs(ctx, tenant.ID)
		require.NoError(t, err)
		require.NotEmpty(t, docs)

		require.NoError(t, knowledgeService.DeleteDoc(ctx, tenant.ID, docs[0].ID))

		remaining, err := knowledgeService.ListDocs(ctx, tenant.ID)
		require.NoError(t, err)
		assert.Len(t, remaining, 2)
	})

	t.Run("delete of missing doc returns ErrNotFound", func(t *testing.T) {
		err := knowledgeService.DeleteDoc(ctx, tenant.ID, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
