// Package channels delivers outbound messages to conversation
// participants. Each channel has its own sender; the registry picks one
// by channel name so workflow nodes and fallback replies stay channel
// agnostic.
package channels

import (
	"context"
	"log/slog"

	"github.com/interacai/flowcore/pkg/models"
)

// Sender delivers one message on a single channel.
type Sender interface {
	Send(ctx context.Context, tenantID, recipient, text string) error
}

// Registry routes outbound messages to the sender registered for the
// channel. Unknown channels fall back to web delivery, which only
// journals the message, so a bad channel name never loses text.
type Registry struct {
	senders  map[string]Sender
	fallback Sender
}

// NewRegistry creates a registry with the given per-channel senders.
// The web sender doubles as the fallback and must not be nil.
func NewRegistry(web, whatsapp Sender) *Registry {
	if web == nil {
		panic("NewRegistry: web sender must not be nil")
	}
	senders := map[string]Sender{
		models.ChannelWeb: web,
	}
	if whatsapp != nil {
		senders[models.ChannelWhatsApp] = whatsapp
	}
	return &Registry{
		senders:  senders,
		fallback: web,
	}
}

// Send dispatches to the channel's sender.
func (r *Registry) Send(ctx context.Context, tenantID, channel, recipient, text string) error {
	sender, ok := r.senders[channel]
	if !ok {
		slog.Warn("No sender for channel, delivering to web",
			"channel", channel,
			"tenant_id", tenantID)
		sender = r.fallback
	}
	return sender.Send(ctx, tenantID, recipient, text)
}
