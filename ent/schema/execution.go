package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Execution holds the schema definition for the Execution entity.
// One run of a workflow for one trigger event. The context document is the
// single source of truth for in-flight state; steps are the journal under it.
type Execution struct {
	ent.Schema
}

// Fields of the Execution.
func (Execution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "suspended", "completed", "failed").
			Default("pending"),
		field.JSON("trigger_event", map[string]interface{}{}).
			Comment("The normalized inbound event that started the run"),
		field.JSON("context", map[string]interface{}{}).
			Comment("Merged node outputs; always carries trigger and tenant at the top level"),
		field.JSON("resume_payload", map[string]interface{}{}).
			Optional().
			Comment("Set while suspended: {node_id, step_id} of the waiting node"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Execution.
func (Execution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("executions").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
		edge.From("tenant", Tenant.Type).
			Ref("executions").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.To("steps", ExecutionStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", StepTask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Execution.
func (Execution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("tenant_id", "status"),
		index.Fields("workflow_id", "started_at"),
	}
}
