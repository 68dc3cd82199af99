package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowNode holds the schema definition for the WorkflowNode entity.
// Nodes get server-generated ids; the client-supplied id from the workflow
// payload is kept as "key" and is unique within the workflow. Edge rows and
// resume payloads always reference the server id.
type WorkflowNode struct {
	ent.Schema
}

// Fields of the WorkflowNode.
func (WorkflowNode) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("node_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable(),
		field.String("key").
			Immutable().
			Comment("Client-supplied node id from the create payload"),
		field.Enum("kind").
			Values("start", "action", "ai_inference", "ai_extract", "condition",
				"wait_for_reply", "time_delay", "http_request", "lead_capture",
				"appointment_booking", "end"),
		field.String("label").
			Optional(),
		field.JSON("config", map[string]interface{}{}).
			Optional(),
		field.JSON("position", map[string]interface{}{}).
			Optional().
			Comment("Canvas coordinates for the workflow builder UI; opaque to the engine"),
	}
}

// Edges of the WorkflowNode.
func (WorkflowNode) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("nodes").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkflowNode.
func (WorkflowNode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "key").
			Unique(),
		index.Fields("workflow_id", "kind"),
	}
}
