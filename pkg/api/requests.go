package api

// whatsAppWebhookPayload is the Meta Cloud API webhook envelope, reduced
// to the fields the ingress reads. Everything else in the payload is
// ignored.
type whatsAppWebhookPayload struct {
	Entry []whatsAppEntry `json:"entry"`
}

type whatsAppEntry struct {
	Changes []whatsAppChange `json:"changes"`
}

type whatsAppChange struct {
	Value whatsAppChangeValue `json:"value"`
}

type whatsAppChangeValue struct {
	Metadata whatsAppMetadata  `json:"metadata"`
	Messages []whatsAppMessage `json:"messages"`
}

type whatsAppMetadata struct {
	PhoneNumberID string `json:"phone_number_id"`
}

type whatsAppMessage struct {
	From string       `json:"from"`
	Text whatsAppText `json:"text"`
}

type whatsAppText struct {
	Body string `json:"body"`
}

// firstMessage extracts the first inbound text message. ok is false for
// payloads that carry none — status and delivery notifications — and for
// messages without text, which the webhook acknowledges without
// processing.
func (p *whatsAppWebhookPayload) firstMessage() (phoneNumberID, from, body string, ok bool) {
	if len(p.Entry) == 0 || len(p.Entry[0].Changes) == 0 {
		return "", "", "", false
	}
	value := p.Entry[0].Changes[0].Value
	if len(value.Messages) == 0 {
		return "", "", "", false
	}
	msg := value.Messages[0]
	if msg.Text.Body == "" {
		return "", "", "", false
	}
	return value.Metadata.PhoneNumberID, msg.From, msg.Text.Body, true
}
