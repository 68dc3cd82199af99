package slack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/interacai/flowcore/ent"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("NotifyTicketCreated is no-op", func(_ *testing.T) {
		// Should not panic
		s.NotifyTicketCreated(context.Background(), &ent.Ticket{
			ID:      "tkt-1",
			Subject: "Needs a human",
		})
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://example.com",
		})
		assert.NotNil(t, svc)
	})
}
