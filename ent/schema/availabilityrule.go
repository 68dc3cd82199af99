package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AvailabilityRule holds the schema definition for the AvailabilityRule entity.
type AvailabilityRule struct {
	ent.Schema
}

// Fields of the AvailabilityRule.
func (AvailabilityRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Int("day_of_week").
			Min(0).
			Max(6).
			Comment("0=Monday .. 6=Sunday"),
		field.String("start_time").
			Comment(`"HH:MM" local to the tenant`),
		field.String("end_time"),
		field.Bool("is_active").
			Default(true),
	}
}

// Edges of the AvailabilityRule.
func (AvailabilityRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("availability_rules").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AvailabilityRule.
func (AvailabilityRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "day_of_week"),
	}
}
