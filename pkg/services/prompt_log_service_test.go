package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent/promptexecution"
	"github.com/interacai/flowcore/pkg/llm"
	testdb "github.com/interacai/flowcore/test/database"
)

func TestPromptLogService_LogPrompt(t *testing.T) {
	client := testdb.NewTestClient(t)
	promptLog := NewPromptLogService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client, "Acme Dental")

	t.Run("chat calls link to their conversation", func(t *testing.T) {
		err := promptLog.LogPrompt(ctx, llm.PromptRecord{
			TenantID: tenant.ID,
			UserID:   "+15551230006",
			Messages: []llm.Turn{
				{Role: llm.RoleSystem, Content: "You are the assistant."},
				{Role: llm.RoleUser, Content: "hi"},
			},
			Response: "Hello!",
			Model:    "gpt-4o-mini",
		})
		require.NoError(t, err)

		rows, err := client.PromptExecution.Query().
			Where(promptexecution.TenantID(tenant.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		row := rows[0]
		require.NotNil(t, row.ConversationID)
		assert.Equal(t, ConversationID(tenant.ID, "+15551230006"), *row.ConversationID)
		assert.Equal(t, "Hello!", row.Response)
		assert.Equal(t, "gpt-4o-mini", row.Model)
		require.Len(t, row.Messages, 2)
		assert.Equal(t, "system", row.Messages[0]["role"])
		assert.Equal(t, "hi", row.Messages[1]["content"])
	})

	t.Run("workflow calls carry no conversation", func(t *testing.T) {
		err := promptLog.LogPrompt(ctx, llm.PromptRecord{
			TenantID: tenant.ID,
			UserID:   "workflow",
			Messages: []llm.Turn{{Role: llm.RoleUser, Content: "classify this"}},
			Response: "enquiry",
			Model:    "gpt-4o-mini",
		})
		require.NoError(t, err)

		rows, err := client.PromptExecution.Query().
			Where(promptexecution.TenantID(tenant.ID), promptexecution.ConversationIDIsNil()).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "enquiry", rows[0].Response)
	})
}
