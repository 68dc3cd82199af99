package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/interacai/flowcore/pkg/config"
)

func newWebhookTestServer() *Server {
	return &Server{
		cfg: &config.Config{
			Channels: &config.ChannelsConfig{
				WhatsApp: &config.WhatsAppConfig{VerifyTokenEnv: "WHATSAPP_VERIFY_TOKEN"},
			},
		},
	}
}

func TestWhatsAppVerifyHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("WHATSAPP_VERIFY_TOKEN", "secret-token")
	s := newWebhookTestServer()

	tests := []struct {
		name       string
		query      string
		expectCode int
		expectBody string
	}{
		{
			name:       "valid handshake echoes challenge",
			query:      "hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=12345",
			expectCode: http.StatusOK,
			expectBody: "12345",
		},
		{
			name:       "wrong token rejected",
			query:      "hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345",
			expectCode: http.StatusForbidden,
			expectBody: "verification failed",
		},
		{
			name:       "wrong mode rejected",
			query:      "hub.mode=unsubscribe&hub.verify_token=secret-token&hub.challenge=12345",
			expectCode: http.StatusForbidden,
			expectBody: "verification failed",
		},
		{
			name:       "missing parameters rejected",
			query:      "hub.challenge=12345",
			expectCode: http.StatusBadRequest,
			expectBody: "missing verification parameters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/webhooks/whatsapp?"+tt.query, nil)

			s.whatsappVerifyHandler(c)

			assert.Equal(t, tt.expectCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectBody)
		})
	}

	t.Run("unconfigured channel never verifies", func(t *testing.T) {
		bare := &Server{}
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet,
			"/api/v1/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token=anything&hub.challenge=1", nil)

		bare.whatsappVerifyHandler(c)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestWhatsAppWebhookPayloadFirstMessage(t *testing.T) {
	tests := []struct {
		name     string
		payload  whatsAppWebhookPayload
		wantOK   bool
		wantFrom string
		wantBody string
	}{
		{
			name: "text message extracted",
			payload: whatsAppWebhookPayload{Entry: []whatsAppEntry{{
				Changes: []whatsAppChange{{Value: whatsAppChangeValue{
					Metadata: whatsAppMetadata{PhoneNumberID: "15550001111"},
					Messages: []whatsAppMessage{{From: "491701234567", Text: whatsAppText{Body: "hi there"}}},
				}}},
			}}},
			wantOK:   true,
			wantFrom: "491701234567",
			wantBody: "hi there",
		},
		{
			name:    "empty payload",
			payload: whatsAppWebhookPayload{},
			wantOK:  false,
		},
		{
			name: "status notification without messages",
			payload: whatsAppWebhookPayload{Entry: []whatsAppEntry{{
				Changes: []whatsAppChange{{Value: whatsAppChangeValue{
					Metadata: whatsAppMetadata{PhoneNumberID: "15550001111"},
				}}},
			}}},
			wantOK: false,
		},
		{
			name: "non-text message ignored",
			payload: whatsAppWebhookPayload{Entry: []whatsAppEntry{{
				Changes: []whatsAppChange{{Value: whatsAppChangeValue{
					Messages: []whatsAppMessage{{From: "491701234567"}},
				}}},
			}}},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phoneNumberID, from, body, ok := tt.payload.firstMessage()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "15550001111", phoneNumberID)
				assert.Equal(t, tt.wantFrom, from)
				assert.Equal(t, tt.wantBody, body)
			}
		})
	}
}

func TestWhatsAppWebhookHandler_AlwaysAcknowledges(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newWebhookTestServer()

	// Meta retries anything that is not a 200, so even garbage and
	// unconfigured channels must acknowledge.
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"entry": [`},
		{name: "status-only payload", body: `{"entry":[{"changes":[{"value":{"statuses":[{"status":"delivered"}]}}]}]}`},
		{name: "message with channel unconfigured", body: `{"entry":[{"changes":[{"value":{"metadata":{"phone_number_id":"1"},"messages":[{"from":"49170","text":{"body":"hi"}}]}}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/whatsapp",
				newJSONBody(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			s.whatsappWebhookHandler(c)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
