package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Appointment holds the schema definition for the Appointment entity.
type Appointment struct {
	ent.Schema
}

// Fields of the Appointment.
func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("appointment_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("appointment_type_id").
			Immutable(),
		field.String("lead_id").
			Optional().
			Nillable(),
		field.String("conversation_id").
			Optional().
			Nillable(),
		field.Time("start_at"),
		field.Time("end_at"),
		field.Enum("status").
			Values("scheduled", "confirmed", "cancelled", "completed").
			Default("scheduled").
			Comment("Only scheduled and confirmed block the slot"),
		field.Text("notes").
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Appointment.
func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("appointments").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.From("appointment_type", AppointmentType.Type).
			Ref("appointments").
			Field("appointment_type_id").
			Unique().
			Required().
			Immutable(),
		edge.From("lead", Lead.Type).
			Ref("appointments").
			Field("lead_id").
			Unique(),
	}
}

// Indexes of the Appointment.
func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "start_at"),
		index.Fields("tenant_id", "status", "start_at"),
	}
}
