// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/interacai/flowcore/ent/appointmenttype"
	"github.com/interacai/flowcore/ent/tenant"
)

// AppointmentType is the model entity for the AppointmentType schema.
type AppointmentType struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Slot length; end_at = start_at + duration
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// ColorCode holds the value of the "color_code" field.
	ColorCode string `json:"color_code,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AppointmentTypeQuery when eager-loading is set.
	Edges        AppointmentTypeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AppointmentTypeEdges holds the relations/edges for other nodes in the graph.
type AppointmentTypeEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// Appointments holds the value of the appointments edge.
	Appointments []*Appointment `json:"appointments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AppointmentTypeEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// AppointmentsOrErr returns the Appointments value or an error if the edge
// was not loaded in eager-loading.
func (e AppointmentTypeEdges) AppointmentsOrErr() ([]*Appointment, error) {
	if e.loadedTypes[1] {
		return e.Appointments, nil
	}
	return nil, &NotLoadedError{edge: "appointments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AppointmentType) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appointmenttype.FieldIsActive:
			values[i] = new(sql.NullBool)
		case appointmenttype.FieldDurationMinutes:
			values[i] = new(sql.NullInt64)
		case appointmenttype.FieldID, appointmenttype.FieldTenantID, appointmenttype.FieldName, appointmenttype.FieldColorCode:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AppointmentType fields.
func (_m *AppointmentType) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appointmenttype.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case appointmenttype.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case appointmenttype.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case appointmenttype.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case appointmenttype.FieldColorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color_code", values[i])
			} else if value.Valid {
				_m.ColorCode = value.String
			}
		case appointmenttype.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AppointmentType.
// This includes values selected through modifiers, order, etc.
func (_m *AppointmentType) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the AppointmentType entity.
func (_m *AppointmentType) QueryTenant() *TenantQuery {
	return NewAppointmentTypeClient(_m.config).QueryTenant(_m)
}

// QueryAppointments queries the "appointments" edge of the AppointmentType entity.
func (_m *AppointmentType) QueryAppointments() *AppointmentQuery {
	return NewAppointmentTypeClient(_m.config).QueryAppointments(_m)
}

// Update returns a builder for updating this AppointmentType.
// Note that you need to call AppointmentType.Unwrap() before calling this method if this AppointmentType
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AppointmentType) Update() *AppointmentTypeUpdateOne {
	return NewAppointmentTypeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AppointmentType entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AppointmentType) Unwrap() *AppointmentType {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AppointmentType is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AppointmentType) String() string {
	var builder strings.Builder
	builder.WriteString("AppointmentType(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("color_code=")
	builder.WriteString(_m.ColorCode)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// AppointmentTypes is a parsable slice of AppointmentType.
type AppointmentTypes []*AppointmentType
