package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptExecution holds the schema definition for the PromptExecution entity.
// Audit log of LLM calls, written fire-and-forget off the reply path.
type PromptExecution struct {
	ent.Schema
}

// Fields of the PromptExecution.
func (PromptExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_execution_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("conversation_id").
			Optional().
			Nillable(),
		field.JSON("messages", []map[string]interface{}{}).
			Comment("The role/content messages sent to the provider"),
		field.Text("response"),
		field.String("model"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the PromptExecution.
func (PromptExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("prompt_executions").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PromptExecution.
func (PromptExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
	}
}
