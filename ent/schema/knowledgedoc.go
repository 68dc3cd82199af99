package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeDoc holds the schema definition for the KnowledgeDoc entity.
type KnowledgeDoc struct {
	ent.Schema
}

// Fields of the KnowledgeDoc.
func (KnowledgeDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("doc_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("title"),
		field.Text("content").
			Comment("Raw text; the prompt builder truncates each doc to 3000 characters"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the KnowledgeDoc.
func (KnowledgeDoc) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("knowledge_docs").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the KnowledgeDoc.
func (KnowledgeDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
	}
}
