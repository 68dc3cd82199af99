package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowEdge holds the schema definition for the WorkflowEdge entity.
type WorkflowEdge struct {
	ent.Schema
}

// Fields of the WorkflowEdge.
func (WorkflowEdge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("edge_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("source_node_id").
			Immutable(),
		field.String("target_node_id").
			Immutable(),
		field.String("guard").
			Optional().
			Nillable().
			Comment("Literal match against the source output's condition_eval; nil takes always"),
	}
}

// Edges of the WorkflowEdge.
func (WorkflowEdge) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("edges").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkflowEdge.
func (WorkflowEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "source_node_id"),
	}
}
