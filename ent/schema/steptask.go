package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepTask holds the schema definition for the StepTask entity.
// The durable queue row behind the dispatcher: workers claim pending tasks
// whose scheduled_at has passed with FOR UPDATE SKIP LOCKED, one task per
// execution in flight at a time. Delay nodes simply push scheduled_at into
// the future, so delays survive restarts.
type StepTask struct {
	ent.Schema
}

// Fields of the StepTask.
func (StepTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.String("node_id").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Carried node output, e.g. {user_reply} on resume"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "cancelled", "timed_out").
			Default("pending"),
		field.Time("scheduled_at").
			Default(time.Now).
			Comment("Not claimable before this instant"),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Pod id of the claiming worker, for multi-replica coordination"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the StepTask.
func (StepTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", Execution.Type).
			Ref("tasks").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StepTask.
func (StepTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "scheduled_at", "created_at"),
		index.Fields("execution_id", "status"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
