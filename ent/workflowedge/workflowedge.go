// Code generated by ent, DO NOT EDIT.

package workflowedge

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflowedge type in the database.
	Label = "workflow_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "edge_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldSourceNodeID holds the string denoting the source_node_id field in the database.
	FieldSourceNodeID = "source_node_id"
	// FieldTargetNodeID holds the string denoting the target_node_id field in the database.
	FieldTargetNodeID = "target_node_id"
	// FieldGuard holds the string denoting the guard field in the database.
	FieldGuard = "guard"
	// EdgeWorkflow holds the string denoting the workflow edge name in mutations.
	EdgeWorkflow = "workflow"
	// WorkflowFieldID holds the string denoting the ID field of the Workflow.
	WorkflowFieldID = "workflow_id"
	// Table holds the table name of the workflowedge in the database.
	Table = "workflow_edges"
	// WorkflowTable is the table that holds the workflow relation/edge.
	WorkflowTable = "workflow_edges"
	// WorkflowInverseTable is the table name for the Workflow entity.
	// It exists in this package in order to avoid circular dependency with the "workflow" package.
	WorkflowInverseTable = "workflows"
	// WorkflowColumn is the table column denoting the workflow relation/edge.
	WorkflowColumn = "workflow_id"
)

// Columns holds all SQL columns for workflowedge fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldSourceNodeID,
	FieldTargetNodeID,
	FieldGuard,
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

// OrderOption defines the ordering options for the WorkflowEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// BySourceNodeID orders the results by the source_node_id field.
func BySourceNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceNodeID, opts...).ToFunc()
}

// ByTargetNodeID orders the results by the target_node_id field.
func ByTargetNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetNodeID, opts...).ToFunc()
}

// ByGuard orders the results by the guard field.
func ByGuard(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuard, opts...).ToFunc()
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
