package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workflow holds the schema definition for the Workflow entity.
// A workflow is a validated node+edge DAG plus a trigger predicate.
// Deleting a workflow cascades to its nodes, edges and executions.
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.Bool("is_active").
			Default(true),
		field.Enum("trigger_kind").
			Values("keyword", "intent", "lead_event", "manual"),
		field.JSON("trigger_config", map[string]interface{}{}).
			Optional().
			Comment("Predicate keys: keyword, intent, status. Absent keys match trivially"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Workflow.
func (Workflow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("workflows").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.To("nodes", WorkflowNode.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("edges", WorkflowEdge.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("executions", Execution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Workflow.
func (Workflow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "is_active"),
		index.Fields("tenant_id", "trigger_kind"),
	}
}
