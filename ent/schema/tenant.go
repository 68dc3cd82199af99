package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tenant holds the schema definition for the Tenant entity.
// A tenant is a business account and the top-level isolation unit:
// every other entity hangs off it and is removed with it.
type Tenant struct {
	ent.Schema
}

// Fields of the Tenant.
func (Tenant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tenant_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Enum("subscription_status").
			Values("active", "trial", "suspended", "expired").
			Default("trial").
			Comment("Gates ingress: expired/suspended tenants get the canned upgrade reply"),
		field.String("plan_name").
			Optional().
			Nillable(),
		field.Time("trial_started_at").
			Optional().
			Nillable(),
		field.Time("trial_ends_at").
			Optional().
			Nillable().
			Comment("Trials past this instant are demoted to expired on next access check"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Tenant.
func (Tenant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("users", User.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("settings", BusinessSettings.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("knowledge_docs", KnowledgeDoc.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("whatsapp_config", WhatsAppConfig.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("conversations", Conversation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("workflows", Workflow.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("executions", Execution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("leads", Lead.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tickets", Ticket.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("appointment_types", AppointmentType.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("availability_rules", AvailabilityRule.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("appointments", Appointment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("prompt_executions", PromptExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Tenant.
func (Tenant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subscription_status"),
	}
}
