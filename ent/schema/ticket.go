package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ticket holds the schema definition for the Ticket entity.
type Ticket struct {
	ent.Schema
}

// Fields of the Ticket.
func (Ticket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("conversation_id").
			Optional().
			Nillable(),
		field.String("subject"),
		field.Text("description").
			Optional(),
		field.Enum("priority").
			Values("low", "medium", "high").
			Default("medium"),
		field.Enum("status").
			Values("open", "in_progress", "resolved", "closed").
			Default("open"),
		field.String("assigned_to").
			Optional().
			Nillable().
			Comment("User id of the human agent, set by assign_agent nodes"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Ticket.
func (Ticket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("tickets").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Ticket.
func (Ticket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "status"),
	}
}
