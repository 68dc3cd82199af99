package channels

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/message"
	"github.com/interacai/flowcore/ent/whatsappconfig"
	"github.com/interacai/flowcore/pkg/config"
	"github.com/interacai/flowcore/pkg/models"
	"github.com/interacai/flowcore/pkg/secrets"
	"github.com/interacai/flowcore/pkg/services"
)

// Env fallbacks used when a tenant has no WhatsApp configuration of its
// own. These mirror the platform-level Meta app credentials.
const (
	envDefaultToken   = "WHATSAPP_API_TOKEN"
	envDefaultPhoneID = "WHATSAPP_PHONE_NUMBER_ID"
)

// ErrNoCredentials means neither the tenant nor the platform has usable
// WhatsApp credentials. The caller records the failure on the step.
var ErrNoCredentials = errors.New("whatsapp credentials not configured")

// ErrUnknownPhoneNumber means no active tenant config owns the phone
// number id a webhook payload arrived on.
var ErrUnknownPhoneNumber = errors.New("no tenant for phone number id")

// WhatsAppSender delivers through the Meta Cloud API. Credentials are
// per tenant (access token decrypted on the way out), falling back to
// the platform-level env credentials. The outbound message is journaled
// on the conversation before the API call so the inbox shows workflow
// replies too.
type WhatsAppSender struct {
	client     *ent.Client
	cipher     *secrets.Cipher
	cfg        *config.WhatsAppConfig
	store      MessageStore
	publisher  MessagePublisher
	httpClient *http.Client
}

// NewWhatsAppSender creates a WhatsApp sender. The publisher may be nil.
func NewWhatsAppSender(client *ent.Client, cipher *secrets.Cipher, cfg *config.WhatsAppConfig, store MessageStore, publisher MessagePublisher) *WhatsAppSender {
	if client == nil || cipher == nil || cfg == nil || store == nil {
		panic("NewWhatsAppSender: client, cipher, cfg and store must not be nil")
	}
	return &WhatsAppSender{
		client:    client,
		cipher:    cipher,
		cfg:       cfg,
		store:     store,
		publisher: publisher,
		httpClient: &http.Client{
			Timeout: cfg.SendTimeout,
		},
	}
}

// sendRequest is the Cloud API text message body.
type sendRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Text             sendText `json:"text"`
}

type sendText struct {
	Body string `json:"body"`
}

// Post delivers text through the Graph API without journaling. Callers
// that store the assistant message themselves (the webhook fallback path
// keeps intent annotations on the row) use this instead of Send.
func (s *WhatsAppSender) Post(ctx context.Context, tenantID, recipient, text string) error {
	phoneNumberID, accessToken, err := s.credentials(ctx, tenantID)
	if err != nil {
		return err
	}
	return s.post(ctx, phoneNumberID, accessToken, recipient, text)
}

// Send journals the assistant message and posts it to the recipient's
// phone number through the Graph API.
func (s *WhatsAppSender) Send(ctx context.Context, tenantID, recipient, text string) error {
	phoneNumberID, accessToken, err := s.credentials(ctx, tenantID)
	if err != nil {
		return err
	}

	msg, err := s.store.StoreMessage(ctx, services.StoreMessageInput{
		TenantID:    tenantID,
		Participant: recipient,
		Channel:     models.ChannelWhatsApp,
		Sender:      string(message.SenderAssistant),
		Body:        text,
	})
	if err != nil {
		return fmt.Errorf("failed to store whatsapp message: %w", err)
	}
	publishMessage(ctx, s.publisher, msg)

	return s.post(ctx, phoneNumberID, accessToken, recipient, text)
}

// TenantByPhoneNumberID resolves the tenant whose active config owns a
// Meta phone number id. The webhook uses this to scope inbound payloads;
// unknown numbers get ErrUnknownPhoneNumber and the payload is dropped.
func (s *WhatsAppSender) TenantByPhoneNumberID(ctx context.Context, phoneNumberID string) (string, error) {
	cfg, err := s.client.WhatsAppConfig.Query().
		Where(
			whatsappconfig.PhoneNumberID(phoneNumberID),
			whatsappconfig.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("%w: %s", ErrUnknownPhoneNumber, phoneNumberID)
		}
		return "", fmt.Errorf("failed to resolve tenant for phone number id: %w", err)
	}
	return cfg.TenantID, nil
}

// credentials resolves the sending identity for a tenant: the tenant's
// active config row wins, otherwise the platform env credentials.
func (s *WhatsAppSender) credentials(ctx context.Context, tenantID string) (phoneNumberID, accessToken string, err error) {
	cfg, err := s.client.WhatsAppConfig.Query().
		Where(
			whatsappconfig.TenantID(tenantID),
			whatsappconfig.IsActive(true),
		).
		Only(ctx)
	switch {
	case err == nil:
		token, decErr := s.cipher.Decrypt(cfg.AccessTokenEnc)
		if decErr != nil {
			return "", "", fmt.Errorf("failed to decrypt whatsapp token for tenant %s: %w", tenantID, decErr)
		}
		return cfg.PhoneNumberID, token, nil
	case ent.IsNotFound(err):
		// Fall through to the platform credentials.
	default:
		return "", "", fmt.Errorf("failed to load whatsapp config: %w", err)
	}

	phoneNumberID = os.Getenv(envDefaultPhoneID)
	accessToken = os.Getenv(envDefaultToken)
	if phoneNumberID == "" || accessToken == "" {
		return "", "", fmt.Errorf("%w: tenant %s", ErrNoCredentials, tenantID)
	}
	return phoneNumberID, accessToken, nil
}

func (s *WhatsAppSender) post(ctx context.Context, phoneNumberID, accessToken, recipient, text string) error {
	body, err := json.Marshal(sendRequest{
		MessagingProduct: "whatsapp",
		To:               recipient,
		Text:             sendText{Body: text},
	})
	if err != nil {
		return fmt.Errorf("failed to encode send request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", s.cfg.GraphBaseURL, phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build send request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// The Graph API explains rejections in the body; keep a slice of
		// it for the step record.
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		slog.Error("WhatsApp send rejected",
			"status", resp.StatusCode,
			"response", string(raw))
		return fmt.Errorf("whatsapp send failed with status %d", resp.StatusCode)
	}
	return nil
}
