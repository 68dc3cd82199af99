package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AppointmentType holds the schema definition for the AppointmentType entity.
type AppointmentType struct {
	ent.Schema
}

// Fields of the AppointmentType.
func (AppointmentType) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("type_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name"),
		field.Int("duration_minutes").
			Comment("Slot length; end_at = start_at + duration"),
		field.String("color_code").
			Optional(),
		field.Bool("is_active").
			Default(true),
	}
}

// Edges of the AppointmentType.
func (AppointmentType) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("appointment_types").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.To("appointments", Appointment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AppointmentType.
func (AppointmentType) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "is_active"),
	}
}
