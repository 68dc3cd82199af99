package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// WhatsAppConfig holds the schema definition for the WhatsAppConfig entity.
// Per-tenant Meta Cloud API credentials. The access token is AES-GCM
// encrypted at rest and only decrypted inside the outbound send path.
type WhatsAppConfig struct {
	ent.Schema
}

// Fields of the WhatsAppConfig.
func (WhatsAppConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("config_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Unique().
			Immutable(),
		field.String("phone_number_id").
			Unique().
			Comment("Meta phone number id; webhook payloads resolve the tenant through it"),
		field.Text("access_token_enc").
			Comment("Base64 AES-GCM ciphertext"),
		field.Bool("is_active").
			Default(true),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the WhatsAppConfig.
func (WhatsAppConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("whatsapp_config").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}
