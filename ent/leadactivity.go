// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/interacai/flowcore/ent/lead"
	"github.com/interacai/flowcore/ent/leadactivity"
)

// LeadActivity is the model entity for the LeadActivity schema.
type LeadActivity struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// LeadID holds the value of the "lead_id" field.
	LeadID string `json:"lead_id,omitempty"`
	// created, note, status_change, value_change, tags_change, appointment_booked
	Type string `json:"type,omitempty"`
	// Field changes carry {old, new}
	Content map[string]interface{} `json:"content,omitempty"`
	// "system", "ai", or a user id
	CreatedBy string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LeadActivityQuery when eager-loading is set.
	Edges        LeadActivityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LeadActivityEdges holds the relations/edges for other nodes in the graph.
type LeadActivityEdges struct {
	// Lead holds the value of the lead edge.
	Lead *Lead `json:"lead,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LeadOrErr returns the Lead value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LeadActivityEdges) LeadOrErr() (*Lead, error) {
	if e.Lead != nil {
		return e.Lead, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lead.Label}
	}
	return nil, &NotLoadedError{edge: "lead"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LeadActivity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case leadactivity.FieldContent:
			values[i] = new([]byte)
		case leadactivity.FieldID, leadactivity.FieldLeadID, leadactivity.FieldType, leadactivity.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case leadactivity.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LeadActivity fields.
func (_m *LeadActivity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case leadactivity.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case leadactivity.FieldLeadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lead_id", values[i])
			} else if value.Valid {
				_m.LeadID = value.String
			}
		case leadactivity.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case leadactivity.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Content); err != nil {
					return fmt.Errorf("unmarshal field content: %w", err)
				}
			}
		case leadactivity.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case leadactivity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LeadActivity.
// This includes values selected through modifiers, order, etc.
func (_m *LeadActivity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLead queries the "lead" edge of the LeadActivity entity.
func (_m *LeadActivity) QueryLead() *LeadQuery {
	return NewLeadActivityClient(_m.config).QueryLead(_m)
}

// Update returns a builder for updating this LeadActivity.
// Note that you need to call LeadActivity.Unwrap() before calling this method if this LeadActivity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LeadActivity) Update() *LeadActivityUpdateOne {
	return NewLeadActivityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LeadActivity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LeadActivity) Unwrap() *LeadActivity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LeadActivity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LeadActivity) String() string {
	var builder strings.Builder
	builder.WriteString("LeadActivity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lead_id=")
	builder.WriteString(_m.LeadID)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", _m.Content))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LeadActivities is a parsable slice of LeadActivity.
type LeadActivities []*LeadActivity
