package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// BusinessSettings holds the schema definition for the BusinessSettings entity.
// One row per tenant; every field feeds the fallback-AI system prompt.
type BusinessSettings struct {
	ent.Schema
}

// Fields of the BusinessSettings.
func (BusinessSettings) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("settings_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Unique().
			Immutable(),
		field.String("industry").
			Optional().
			Comment("Selects the industry persona template; empty falls back to the generic one"),
		field.Text("description").
			Optional(),
		field.Text("services_text").
			Optional().
			Comment("Free-form catalogue of offered services"),
		field.String("tone").
			Optional(),
		field.Text("faq").
			Optional(),
		field.Text("custom_instructions").
			Optional(),
		field.String("location").
			Optional(),
		field.String("hours").
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the BusinessSettings.
func (BusinessSettings) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("settings").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}
