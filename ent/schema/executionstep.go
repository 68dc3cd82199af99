package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionStep holds the schema definition for the ExecutionStep entity.
// Append-only journal: one row per node visit.
type ExecutionStep struct {
	ent.Schema
}

// Fields of the ExecutionStep.
func (ExecutionStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.String("node_id").
			Immutable(),
		field.String("node_kind").
			Immutable(),
		field.Enum("status").
			Values("running", "completed", "suspended", "failed").
			Default("running"),
		field.JSON("input", map[string]interface{}{}).
			Optional().
			Comment("Snapshot of the execution context when the step began"),
		field.JSON("output", map[string]interface{}{}).
			Optional(),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ExecutionStep.
func (ExecutionStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", Execution.Type).
			Ref("steps").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ExecutionStep.
func (ExecutionStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "started_at"),
	}
}
