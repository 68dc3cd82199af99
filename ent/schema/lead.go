package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lead_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name"),
		field.String("email").
			Optional().
			Nillable(),
		field.String("phone").
			Optional().
			Nillable(),
		field.String("source").
			Default("workflow").
			Comment("workflow, ai_chat, manual"),
		field.Enum("status").
			Values("new", "contacted", "qualified", "converted", "lost").
			Default("new"),
		field.Float("value").
			Default(0).
			Comment("Estimated deal value; budget extractions land here"),
		field.String("tags").
			Optional(),
		field.Text("notes").
			Optional(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("leads").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.To("activities", LeadActivity.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("appointments", Appointment.Type),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "status"),
		index.Fields("tenant_id", "created_at"),
	}
}
