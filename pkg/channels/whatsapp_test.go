package channels

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/tenant"
	"github.com/interacai/flowcore/pkg/config"
	"github.com/interacai/flowcore/pkg/secrets"
	testdb "github.com/interacai/flowcore/test/database"
)

// graphRecorder is a fake Meta Graph API endpoint capturing send calls.
type graphRecorder struct {
	mux      *http.ServeMux
	requests []graphRequest
	status   int
}

type graphRequest struct {
	path  string
	token string
	body  sendRequest
}

func newGraphRecorder() *graphRecorder {
	rec := &graphRecorder{status: http.StatusOK}
	rec.mux = http.NewServeMux()
	rec.mux.HandleFunc("POST /", func(w http.ResponseWriter, r *http.Request) {
		var body sendRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		rec.requests = append(rec.requests, graphRequest{
			path:  r.URL.Path,
			token: r.Header.Get("Authorization"),
			body:  body,
		})
		if rec.status != http.StatusOK {
			w.WriteHeader(rec.status)
			_, _ = w.Write([]byte(`{"error":{"message":"bad token"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.test"}]}`))
	})
	return rec
}

func newWhatsAppFixture(t *testing.T) (*ent.Client, *graphRecorder, *WhatsAppSender, *recordingStore, *secrets.Cipher) {
	t.Helper()
	client := testdb.NewTestClient(t)

	rec := newGraphRecorder()
	server := httptest.NewServer(rec.mux)
	t.Cleanup(server.Close)

	cipher, err := secrets.NewCipher("unit-test-key")
	require.NoError(t, err)

	store := &recordingStore{}
	sender := NewWhatsAppSender(client.Client, cipher, &config.WhatsAppConfig{
		GraphBaseURL: server.URL,
		SendTimeout:  5 * time.Second,
	}, store, nil)

	return client.Client, rec, sender, store, cipher
}

func createActiveTenant(t *testing.T, client *ent.Client, name string) *ent.Tenant {
	t.Helper()
	tn, err := client.Tenant.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetSubscriptionStatus(tenant.SubscriptionStatusActive).
		Save(context.Background())
	require.NoError(t, err)
	return tn
}

func TestWhatsAppSender_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("uses tenant credentials when configured", func(t *testing.T) {
		client, rec, sender, store, cipher := newWhatsAppFixture(t)
		tn := createActiveTenant(t, client, "Copac Realty")

		encrypted, err := cipher.Encrypt("tenant-secret-token")
		require.NoError(t, err)
		_, err = client.WhatsAppConfig.Create().
			SetID(uuid.New().String()).
			SetTenantID(tn.ID).
			SetPhoneNumberID("555000111").
			SetAccessTokenEnc(encrypted).
			Save(ctx)
		require.NoError(t, err)

		require.NoError(t, sender.Send(ctx, tn.ID, "+40712345678", "Vizita e confirmata."))

		require.Len(t, rec.requests, 1)
		req := rec.requests[0]
		assert.Equal(t, "/555000111/messages", req.path)
		assert.Equal(t, "Bearer tenant-secret-token", req.token)
		assert.Equal(t, "whatsapp", req.body.MessagingProduct)
		assert.Equal(t, "+40712345678", req.body.To)
		assert.Equal(t, "Vizita e confirmata.", req.body.Text.Body)

		// Outbound text is journaled before the API call.
		require.Len(t, store.inputs, 1)
		assert.Equal(t, "whatsapp", store.inputs[0].Channel)
		assert.Equal(t, "assistant", store.inputs[0].Sender)
	})

	t.Run("falls back to platform env credentials", func(t *testing.T) {
		client, rec, sender, _, _ := newWhatsAppFixture(t)
		tn := createActiveTenant(t, client, "No Config Co")

		t.Setenv(envDefaultToken, "platform-token")
		t.Setenv(envDefaultPhoneID, "999888777")

		require.NoError(t, sender.Send(ctx, tn.ID, "+15550002222", "hello"))

		require.Len(t, rec.requests, 1)
		assert.Equal(t, "/999888777/messages", rec.requests[0].path)
		assert.Equal(t, "Bearer platform-token", rec.requests[0].token)
	})

	t.Run("inactive config is skipped", func(t *testing.T) {
		client, rec, sender, _, cipher := newWhatsAppFixture(t)
		tn := createActiveTenant(t, client, "Disabled Co")

		encrypted, err := cipher.Encrypt("stale-token")
		require.NoError(t, err)
		_, err = client.WhatsAppConfig.Create().
			SetID(uuid.New().String()).
			SetTenantID(tn.ID).
			SetPhoneNumberID("111222333").
			SetAccessTokenEnc(encrypted).
			SetIsActive(false).
			Save(ctx)
		require.NoError(t, err)

		t.Setenv(envDefaultToken, "platform-token")
		t.Setenv(envDefaultPhoneID, "999888777")

		require.NoError(t, sender.Send(ctx, tn.ID, "+15550002222", "hello"))

		require.Len(t, rec.requests, 1)
		assert.Equal(t, "/999888777/messages", rec.requests[0].path)
	})

	t.Run("missing credentials is an error", func(t *testing.T) {
		client, rec, sender, store, _ := newWhatsAppFixture(t)
		tn := createActiveTenant(t, client, "Bare Co")

		t.Setenv(envDefaultToken, "")
		t.Setenv(envDefaultPhoneID, "")

		err := sender.Send(ctx, tn.ID, "+15550002222", "hello")
		assert.ErrorIs(t, err, ErrNoCredentials)
		assert.Empty(t, rec.requests)
		assert.Empty(t, store.inputs)
	})

	t.Run("graph rejection surfaces as error", func(t *testing.T) {
		client, rec, sender, store, _ := newWhatsAppFixture(t)
		tn := createActiveTenant(t, client, "Rejected Co")
		rec.status = http.StatusUnauthorized

		t.Setenv(envDefaultToken, "expired-token")
		t.Setenv(envDefaultPhoneID, "999888777")

		err := sender.Send(ctx, tn.ID, "+15550002222", "hello")
		assert.ErrorContains(t, err, "status 401")
		// The journal entry stays: the conversation shows what we tried
		// to send even when Meta rejects it.
		require.Len(t, store.inputs, 1)
	})
}
