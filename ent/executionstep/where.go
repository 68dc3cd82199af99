// Code generated by ent, DO NOT EDIT.

package executionstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/interacai/flowcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldContainsFold(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEQ(FieldExecutionID, v))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEQ(FieldNodeID, v))
}

// NodeKind applies equality check predicate on the "node_kind" field. It's identical to NodeKindEQ.
func NodeKind(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEQ(FieldNodeKind, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEQ(FieldError, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEQ(FieldCompletedAt, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldContainsFold(FieldExecutionID, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNotIn(FieldNodeID, vs...))
}

// NodeIDGT applies the GT predicate on the "node_id" field.
func NodeIDGT(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldGT(FieldNodeID, v))
}

// NodeIDGTE applies the GTE predicate on the "node_id" field.
func NodeIDGTE(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldGTE(FieldNodeID, v))
}

// NodeIDLT applies the LT predicate on the "node_id" field.
func NodeIDLT(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldLT(FieldNodeID, v))
}

// NodeIDLTE applies the LTE predicate on the "node_id" field.
func NodeIDLTE(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldLTE(FieldNodeID, v))
}

// NodeIDContains applies the Contains predicate on the "node_id" field.
func NodeIDContains(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldContains(FieldNodeID, v))
}

// NodeIDHasPrefix applies the HasPrefix predicate on the "node_id" field.
func NodeIDHasPrefix(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldHasPrefix(FieldNodeID, v))
}

// NodeIDHasSuffix applies the HasSuffix predicate on the "node_id" field.
func NodeIDHasSuffix(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldHasSuffix(FieldNodeID, v))
}

// NodeIDEqualFold applies the EqualFold predicate on the "node_id" field.
func NodeIDEqualFold(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEqualFold(FieldNodeID, v))
}

// NodeIDContainsFold applies the ContainsFold predicate on the "node_id" field.
func NodeIDContainsFold(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldContainsFold(FieldNodeID, v))
}

// NodeKindEQ applies the EQ predicate on the "node_kind" field.
func NodeKindEQ(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEQ(FieldNodeKind, v))
}

// NodeKindNEQ applies the NEQ predicate on the "node_kind" field.
func NodeKindNEQ(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNEQ(FieldNodeKind, v))
}

// NodeKindIn applies the In predicate on the "node_kind" field.
func NodeKindIn(vs ...string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldIn(FieldNodeKind, vs...))
}

// NodeKindNotIn applies the NotIn predicate on the "node_kind" field.
func NodeKindNotIn(vs ...string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNotIn(FieldNodeKind, vs...))
}

// NodeKindGT applies the GT predicate on the "node_kind" field.
func NodeKindGT(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldGT(FieldNodeKind, v))
}

// NodeKindGTE applies the GTE predicate on the "node_kind" field.
func NodeKindGTE(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldGTE(FieldNodeKind, v))
}

// NodeKindLT applies the LT predicate on the "node_kind" field.
func NodeKindLT(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldLT(FieldNodeKind, v))
}

// NodeKindLTE applies the LTE predicate on the "node_kind" field.
func NodeKindLTE(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldLTE(FieldNodeKind, v))
}

// NodeKindContains applies the Contains predicate on the "node_kind" field.
func NodeKindContains(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldContains(FieldNodeKind, v))
}

// NodeKindHasPrefix applies the HasPrefix predicate on the "node_kind" field.
func NodeKindHasPrefix(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldHasPrefix(FieldNodeKind, v))
}

// NodeKindHasSuffix applies the HasSuffix predicate on the "node_kind" field.
func NodeKindHasSuffix(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldHasSuffix(FieldNodeKind, v))
}

// NodeKindEqualFold applies the EqualFold predicate on the "node_kind" field.
func NodeKindEqualFold(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEqualFold(FieldNodeKind, v))
}

// NodeKindContainsFold applies the ContainsFold predicate on the "node_kind" field.
func NodeKindContainsFold(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldContainsFold(FieldNodeKind, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNotIn(FieldStatus, vs...))
}

// InputIsNil applies the IsNil predicate on the "input" field.
func InputIsNil() predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldIsNull(FieldInput))
}

// InputNotNil applies the NotNil predicate on the "input" field.
func InputNotNil() predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNotNull(FieldInput))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNotNull(FieldOutput))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldContainsFold(FieldError, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.FieldNotNull(FieldCompletedAt))
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.ExecutionStep {
	return predicate.ExecutionStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.Execution) predicate.ExecutionStep {
	return predicate.ExecutionStep(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionStep) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionStep) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionStep) predicate.ExecutionStep {
	return predicate.ExecutionStep(sql.NotPredicates(p))
}
