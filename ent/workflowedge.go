// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/interacai/flowcore/ent/workflow"
	"github.com/interacai/flowcore/ent/workflowedge"
)

// WorkflowEdge is the model entity for the WorkflowEdge schema.
type WorkflowEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// SourceNodeID holds the value of the "source_node_id" field.
	SourceNodeID string `json:"source_node_id,omitempty"`
	// TargetNodeID holds the value of the "target_node_id" field.
	TargetNodeID string `json:"target_node_id,omitempty"`
	// Literal match against the source output's condition_eval; nil takes always
	Guard *string `json:"guard,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowEdgeQuery when eager-loading is set.
	Edges        WorkflowEdgeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowEdgeEdges holds the relations/edges for other nodes in the graph.
type WorkflowEdgeEdges struct {
	// Workflow holds the value of the workflow edge.
	Workflow *Workflow `json:"workflow,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkflowEdgeEdges) WorkflowOrErr() (*Workflow, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflow.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowedge.FieldID, workflowedge.FieldWorkflowID, workflowedge.FieldSourceNodeID, workflowedge.FieldTargetNodeID, workflowedge.FieldGuard:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowEdge fields.
func (_m *WorkflowEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowedge.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflowedge.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case workflowedge.FieldSourceNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_node_id", values[i])
			} else if value.Valid {
				_m.SourceNodeID = value.String
			}
		case workflowedge.FieldTargetNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_node_id", values[i])
			} else if value.Valid {
				_m.TargetNodeID = value.String
			}
		case workflowedge.FieldGuard:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field guard", values[i])
			} else if value.Valid {
				_m.Guard = new(string)
				*_m.Guard = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowEdge.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowEdge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkflow queries the "workflow" edge of the WorkflowEdge entity.
func (_m *WorkflowEdge) QueryWorkflow() *WorkflowQuery {
	return NewWorkflowEdgeClient(_m.config).QueryWorkflow(_m)
}

// Update returns a builder for updating this WorkflowEdge.
// Note that you need to call WorkflowEdge.Unwrap() before calling this method if this WorkflowEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowEdge) Update() *WorkflowEdgeUpdateOne {
	return NewWorkflowEdgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowEdge) Unwrap() *WorkflowEdge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowEdge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowEdge) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("source_node_id=")
	builder.WriteString(_m.SourceNodeID)
	builder.WriteString(", ")
	builder.WriteString("target_node_id=")
	builder.WriteString(_m.TargetNodeID)
	builder.WriteString(", ")
	if v := _m.Guard; v != nil {
		builder.WriteString("guard=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowEdgeSlice is a parsable slice of WorkflowEdge.
// Renamed from the generated name WorkflowEdges, which collides with the
// Workflow entity's edge-container struct of the same name.
type WorkflowEdgeSlice []*WorkflowEdge
