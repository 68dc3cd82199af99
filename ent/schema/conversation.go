package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
// The id is "{tenant_id}:{participant}" so two tenants talking to the same
// participant id can never share a thread.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("participant").
			Immutable().
			Comment("Channel-side counterpart id: phone number for WhatsApp, session id for web"),
		field.Enum("channel").
			Values("web", "whatsapp").
			Default("web"),
		field.Text("last_message").
			Optional(),
		field.Time("last_message_at").
			Optional().
			Nillable(),
		field.Int("unread_count").
			Default(0),
		field.String("last_intent").
			Optional().
			Nillable(),
		field.String("last_sentiment").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("conversations").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "participant").
			Unique(),
		index.Fields("tenant_id", "last_message_at"),
	}
}
