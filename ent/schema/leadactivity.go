package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeadActivity holds the schema definition for the LeadActivity entity.
// Every mutation of a lead by an executor appends one of these.
type LeadActivity struct {
	ent.Schema
}

// Fields of the LeadActivity.
func (LeadActivity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("activity_id").
			Unique().
			Immutable(),
		field.String("lead_id").
			Immutable(),
		field.String("type").
			Comment("created, note, status_change, value_change, tags_change, appointment_booked"),
		field.JSON("content", map[string]interface{}{}).
			Optional().
			Comment("Field changes carry {old, new}"),
		field.String("created_by").
			Default("system").
			Comment(`"system", "ai", or a user id`),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the LeadActivity.
func (LeadActivity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("activities").
			Field("lead_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LeadActivity.
func (LeadActivity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id", "created_at"),
	}
}
