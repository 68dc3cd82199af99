// Code generated by ent, DO NOT EDIT.

package workflownode

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflownode type in the database.
	Label = "workflow_node"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "node_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// EdgeWorkflow holds the string denoting the workflow edge name in mutations.
	EdgeWorkflow = "workflow"
	// WorkflowFieldID holds the string denoting the ID field of the Workflow.
	WorkflowFieldID = "workflow_id"
	// Table holds the table name of the workflownode in the database.
	Table = "workflow_nodes"
	// WorkflowTable is the table that holds the workflow relation/edge.
	WorkflowTable = "workflow_nodes"
	// WorkflowInverseTable is the table name for the Workflow entity.
	// It exists in this package in order to avoid circular dependency with the "workflow" package.
	WorkflowInverseTable = "workflows"
	// WorkflowColumn is the table column denoting the workflow relation/edge.
	WorkflowColumn = "workflow_id"
)

// Columns holds all SQL columns for workflownode fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldKey,
	FieldKind,
	FieldLabel,
	FieldConfig,
	FieldPosition,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindStart              Kind = "start"
	KindAction             Kind = "action"
	KindAiInference        Kind = "ai_inference"
	KindAiExtract          Kind = "ai_extract"
	KindCondition          Kind = "condition"
	KindWaitForReply       Kind = "wait_for_reply"
	KindTimeDelay          Kind = "time_delay"
	KindHTTPRequest        Kind = "http_request"
	KindLeadCapture        Kind = "lead_capture"
	KindAppointmentBooking Kind = "appointment_booking"
	KindEnd                Kind = "end"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindStart, KindAction, KindAiInference, KindAiExtract, KindCondition, KindWaitForReply, KindTimeDelay, KindHTTPRequest, KindLeadCapture, KindAppointmentBooking, KindEnd:
		return nil
	default:
		return fmt.Errorf("workflownode: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the WorkflowNode queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByWorkflowField orders the results by workflow field.
func ByWorkflowField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowStep(), sql.OrderByField(field, opts...))
	}
}
func newWorkflowStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowInverseTable, WorkflowFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
	)
}
