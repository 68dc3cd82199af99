package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entexec "github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/ent/message"
	"github.com/interacai/flowcore/pkg/secrets"
)

// mockGraphServer fakes the Meta Cloud API send endpoint
// (POST /{phone_number_id}/messages).
type mockGraphServer struct {
	server *httptest.Server

	mu    sync.Mutex
	calls []graphCall
}

type graphCall struct {
	Path    string
	Auth    string
	Product string
	To      string
	Body    string
}

func newMockGraphServer(t *testing.T) *mockGraphServer {
	t.Helper()
	mock := &mockGraphServer{}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			MessagingProduct string `json:"messaging_product"`
			To               string `json:"to"`
			Text             struct {
				Body string `json:"body"`
			} `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		mock.mu.Lock()
		mock.calls = append(mock.calls, graphCall{
			Path:    r.URL.Path,
			Auth:    r.Header.Get("Authorization"),
			Product: req.MessagingProduct,
			To:      req.To,
			Body:    req.Text.Body,
		})
		mock.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.e2e-test"}]}`))
	}))
	t.Cleanup(mock.server.Close)
	return mock
}

func (m *mockGraphServer) getCalls() []graphCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]graphCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// seedWhatsAppCredentials stores an active per-tenant Meta config with the
// access token encrypted the way the settings API would store it.
func seedWhatsAppCredentials(t *testing.T, app *TestApp, tenantID, phoneNumberID, accessToken, key string) {
	t.Helper()
	cipher, err := secrets.NewCipher(key)
	require.NoError(t, err)
	enc, err := cipher.Encrypt(accessToken)
	require.NoError(t, err)

	_, err = app.DB.WhatsAppConfig.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetPhoneNumberID(phoneNumberID).
		SetAccessTokenEnc(enc).
		SetIsActive(true).
		Save(context.Background())
	require.NoError(t, err)
}

// whatsAppInbound builds a minimal Meta webhook delivery carrying one text
// message.
func whatsAppInbound(phoneNumberID, from, body string) map[string]any {
	return map[string]any{
		"entry": []any{map[string]any{
			"changes": []any{map[string]any{
				"value": map[string]any{
					"metadata": map[string]any{"phone_number_id": phoneNumberID},
					"messages": []any{map[string]any{
						"from": from,
						"text": map[string]any{"body": body},
					}},
				},
			}},
		}},
	}
}

// ────────────────────────────────────────────────────────────
// Webhook verification handshake
// ────────────────────────────────────────────────────────────

func TestE2E_WhatsAppWebhookVerification(t *testing.T) {
	t.Setenv("WHATSAPP_VERIFY_TOKEN", "hook-secret")
	app := NewTestApp(t)

	t.Run("valid token echoes challenge", func(t *testing.T) {
		resp, err := http.Get(app.BaseURL + "/api/v1/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token=hook-secret&hub.challenge=1158201444")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "1158201444", string(body))
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		resp, err := http.Get(app.BaseURL + "/api/v1/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token=not-the-secret&hub.challenge=1158201444")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

// ────────────────────────────────────────────────────────────
// Inbound message → workflow → outbound Graph API send
// ────────────────────────────────────────────────────────────

func TestE2E_WhatsAppInboundRunsWorkflow(t *testing.T) {
	graph := newMockGraphServer(t)
	const key = "e2e-whatsapp-key"

	cfg := defaultTestConfig()
	cfg.Channels.WhatsApp.GraphBaseURL = graph.server.URL

	app := NewTestApp(t, WithConfig(cfg), WithWhatsApp(key))
	tenantID := app.CreateTenant(t, "WhatsApp Retail")
	seedWhatsAppCredentials(t, app, tenantID, "15550009999", "graph-access-token", key)

	app.CreateWorkflow(t, tenantID, linearKeywordWorkflow(
		"Pricing responder", "pricing",
		"Plans start at $9/mo. Want a link to compare them?"))

	resp := app.postJSON(t, "/api/v1/webhooks/whatsapp", "",
		whatsAppInbound("15550009999", "15551230000", "pricing please"), http.StatusOK)
	require.Equal(t, "workflow_processing", resp["status"], "webhook response: %v", resp)

	ids, ok := resp["executions"].([]any)
	require.True(t, ok, "executions missing from webhook response: %v", resp)
	require.Len(t, ids, 1)
	execID, _ := ids[0].(string)
	app.WaitForExecutionStatus(t, execID, entexec.StatusCompleted)

	// The send happens inside the action step, so it is done by the time
	// the execution completes.
	calls := graph.getCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/15550009999/messages", calls[0].Path)
	assert.Equal(t, "Bearer graph-access-token", calls[0].Auth)
	assert.Equal(t, "whatsapp", calls[0].Product)
	assert.Equal(t, "15551230000", calls[0].To)
	assert.Equal(t, "Plans start at $9/mo. Want a link to compare them?", calls[0].Body)

	// Both sides of the exchange are journaled on the whatsapp channel.
	msgs := app.Messages(t, tenantID, "15551230000")
	require.Len(t, msgs, 2)
	assert.Equal(t, message.SenderUser, msgs[0].Sender)
	assert.Equal(t, message.ChannelWhatsapp, msgs[0].Channel)
	assert.Equal(t, message.SenderAssistant, msgs[1].Sender)
	assert.Equal(t, message.ChannelWhatsapp, msgs[1].Channel)

	steps := app.Steps(t, execID)
	require.Len(t, steps, 3)
	assert.Equal(t, "sent", steps[1].Output["action_result"])
}

func TestE2E_WhatsAppFallbackDeliveredViaGraph(t *testing.T) {
	graph := newMockGraphServer(t)
	const key = "e2e-whatsapp-key"

	cfg := defaultTestConfig()
	cfg.Channels.WhatsApp.GraphBaseURL = graph.server.URL

	llmClient := NewScriptedLLMClient()
	llmClient.AddSequential(LLMScriptEntry{Text: "Happy to help! What are you looking for?"})

	app := NewTestApp(t, WithConfig(cfg), WithWhatsApp(key), WithLLMClient(llmClient))
	tenantID := app.CreateTenant(t, "WhatsApp Support")
	seedWhatsAppCredentials(t, app, tenantID, "15550008888", "graph-access-token", key)

	resp := app.postJSON(t, "/api/v1/webhooks/whatsapp", "",
		whatsAppInbound("15550008888", "15559990000", "hello there"), http.StatusOK)
	assert.Equal(t, "received", resp["status"])

	// The fallback reply is posted before the webhook responds.
	calls := graph.getCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Happy to help! What are you looking for?", calls[0].Body)

	msgs := app.Messages(t, tenantID, "15559990000")
	require.Len(t, msgs, 2)
	assert.Equal(t, "Happy to help! What are you looking for?", msgs[1].Body)
	assert.Equal(t, 1, llmClient.CallCount())
}

// Payloads for phone numbers no tenant owns are acknowledged (Meta would
// retry otherwise) but never processed.
func TestE2E_WhatsAppUnknownPhoneNumberDropped(t *testing.T) {
	graph := newMockGraphServer(t)
	const key = "e2e-whatsapp-key"

	cfg := defaultTestConfig()
	cfg.Channels.WhatsApp.GraphBaseURL = graph.server.URL

	app := NewTestApp(t, WithConfig(cfg), WithWhatsApp(key))
	app.CreateTenant(t, "Unrelated Co")

	resp := app.postJSON(t, "/api/v1/webhooks/whatsapp", "",
		whatsAppInbound("19990000000", "15551230000", "hello?"), http.StatusOK)
	assert.Equal(t, "error", resp["status"])
	assert.Empty(t, graph.getCalls())
}
