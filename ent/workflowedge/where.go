// Code generated by ent, DO NOT EDIT.

package workflowedge

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/interacai/flowcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldWorkflowID, v))
}

// SourceNodeID applies equality check predicate on the "source_node_id" field. It's identical to SourceNodeIDEQ.
func SourceNodeID(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldSourceNodeID, v))
}

// TargetNodeID applies equality check predicate on the "target_node_id" field. It's identical to TargetNodeIDEQ.
func TargetNodeID(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldTargetNodeID, v))
}

// Guard applies equality check predicate on the "guard" field. It's identical to GuardEQ.
func Guard(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldGuard, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContainsFold(FieldWorkflowID, v))
}

// SourceNodeIDEQ applies the EQ predicate on the "source_node_id" field.
func SourceNodeIDEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldSourceNodeID, v))
}

// SourceNodeIDNEQ applies the NEQ predicate on the "source_node_id" field.
func SourceNodeIDNEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNEQ(FieldSourceNodeID, v))
}

// SourceNodeIDIn applies the In predicate on the "source_node_id" field.
func SourceNodeIDIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldIn(FieldSourceNodeID, vs...))
}

// SourceNodeIDNotIn applies the NotIn predicate on the "source_node_id" field.
func SourceNodeIDNotIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNotIn(FieldSourceNodeID, vs...))
}

// SourceNodeIDGT applies the GT predicate on the "source_node_id" field.
func SourceNodeIDGT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGT(FieldSourceNodeID, v))
}

// SourceNodeIDGTE applies the GTE predicate on the "source_node_id" field.
func SourceNodeIDGTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGTE(FieldSourceNodeID, v))
}

// SourceNodeIDLT applies the LT predicate on the "source_node_id" field.
func SourceNodeIDLT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLT(FieldSourceNodeID, v))
}

// SourceNodeIDLTE applies the LTE predicate on the "source_node_id" field.
func SourceNodeIDLTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLTE(FieldSourceNodeID, v))
}

// SourceNodeIDContains applies the Contains predicate on the "source_node_id" field.
func SourceNodeIDContains(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContains(FieldSourceNodeID, v))
}

// SourceNodeIDHasPrefix applies the HasPrefix predicate on the "source_node_id" field.
func SourceNodeIDHasPrefix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasPrefix(FieldSourceNodeID, v))
}

// SourceNodeIDHasSuffix applies the HasSuffix predicate on the "source_node_id" field.
func SourceNodeIDHasSuffix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasSuffix(FieldSourceNodeID, v))
}

// SourceNodeIDEqualFold applies the EqualFold predicate on the "source_node_id" field.
func SourceNodeIDEqualFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEqualFold(FieldSourceNodeID, v))
}

// SourceNodeIDContainsFold applies the ContainsFold predicate on the "source_node_id" field.
func SourceNodeIDContainsFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContainsFold(FieldSourceNodeID, v))
}

// TargetNodeIDEQ applies the EQ predicate on the "target_node_id" field.
func TargetNodeIDEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldTargetNodeID, v))
}

// TargetNodeIDNEQ applies the NEQ predicate on the "target_node_id" field.
func TargetNodeIDNEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNEQ(FieldTargetNodeID, v))
}

// TargetNodeIDIn applies the In predicate on the "target_node_id" field.
func TargetNodeIDIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldIn(FieldTargetNodeID, vs...))
}

// TargetNodeIDNotIn applies the NotIn predicate on the "target_node_id" field.
func TargetNodeIDNotIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNotIn(FieldTargetNodeID, vs...))
}

// TargetNodeIDGT applies the GT predicate on the "target_node_id" field.
func TargetNodeIDGT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGT(FieldTargetNodeID, v))
}

// TargetNodeIDGTE applies the GTE predicate on the "target_node_id" field.
func TargetNodeIDGTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGTE(FieldTargetNodeID, v))
}

// TargetNodeIDLT applies the LT predicate on the "target_node_id" field.
func TargetNodeIDLT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLT(FieldTargetNodeID, v))
}

// TargetNodeIDLTE applies the LTE predicate on the "target_node_id" field.
func TargetNodeIDLTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLTE(FieldTargetNodeID, v))
}

// TargetNodeIDContains applies the Contains predicate on the "target_node_id" field.
func TargetNodeIDContains(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContains(FieldTargetNodeID, v))
}

// TargetNodeIDHasPrefix applies the HasPrefix predicate on the "target_node_id" field.
func TargetNodeIDHasPrefix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasPrefix(FieldTargetNodeID, v))
}

// TargetNodeIDHasSuffix applies the HasSuffix predicate on the "target_node_id" field.
func TargetNodeIDHasSuffix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasSuffix(FieldTargetNodeID, v))
}

// TargetNodeIDEqualFold applies the EqualFold predicate on the "target_node_id" field.
func TargetNodeIDEqualFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEqualFold(FieldTargetNodeID, v))
}

// TargetNodeIDContainsFold applies the ContainsFold predicate on the "target_node_id" field.
func TargetNodeIDContainsFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContainsFold(FieldTargetNodeID, v))
}

// GuardEQ applies the EQ predicate on the "guard" field.
func GuardEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEQ(FieldGuard, v))
}

// GuardNEQ applies the NEQ predicate on the "guard" field.
func GuardNEQ(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNEQ(FieldGuard, v))
}

// GuardIn applies the In predicate on the "guard" field.
func GuardIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldIn(FieldGuard, vs...))
}

// GuardNotIn applies the NotIn predicate on the "guard" field.
func GuardNotIn(vs ...string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNotIn(FieldGuard, vs...))
}

// GuardGT applies the GT predicate on the "guard" field.
func GuardGT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGT(FieldGuard, v))
}

// GuardGTE applies the GTE predicate on the "guard" field.
func GuardGTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldGTE(FieldGuard, v))
}

// GuardLT applies the LT predicate on the "guard" field.
func GuardLT(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLT(FieldGuard, v))
}

// GuardLTE applies the LTE predicate on the "guard" field.
func GuardLTE(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldLTE(FieldGuard, v))
}

// GuardContains applies the Contains predicate on the "guard" field.
func GuardContains(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContains(FieldGuard, v))
}

// GuardHasPrefix applies the HasPrefix predicate on the "guard" field.
func GuardHasPrefix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasPrefix(FieldGuard, v))
}

// GuardHasSuffix applies the HasSuffix predicate on the "guard" field.
func GuardHasSuffix(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldHasSuffix(FieldGuard, v))
}

// GuardIsNil applies the IsNil predicate on the "guard" field.
func GuardIsNil() predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldIsNull(FieldGuard))
}

// GuardNotNil applies the NotNil predicate on the "guard" field.
func GuardNotNil() predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldNotNull(FieldGuard))
}

// GuardEqualFold applies the EqualFold predicate on the "guard" field.
func GuardEqualFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldEqualFold(FieldGuard, v))
}

// GuardContainsFold applies the ContainsFold predicate on the "guard" field.
func GuardContainsFold(v string) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.FieldContainsFold(FieldGuard, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.WorkflowEdge {
	return predicate.WorkflowEdge(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowEdge) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowEdge) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowEdge) predicate.WorkflowEdge {
	return predicate.WorkflowEdge(sql.NotPredicates(p))
}
