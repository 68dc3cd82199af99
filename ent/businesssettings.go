// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/interacai/flowcore/ent/businesssettings"
	"github.com/interacai/flowcore/ent/tenant"
)

// BusinessSettings is the model entity for the BusinessSettings schema.
type BusinessSettings struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Selects the industry persona template; empty falls back to the generic one
	Industry string `json:"industry,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Free-form catalogue of offered services
	ServicesText string `json:"services_text,omitempty"`
	// Tone holds the value of the "tone" field.
	Tone string `json:"tone,omitempty"`
	// Faq holds the value of the "faq" field.
	Faq string `json:"faq,omitempty"`
	// CustomInstructions holds the value of the "custom_instructions" field.
	CustomInstructions string `json:"custom_instructions,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// Hours holds the value of the "hours" field.
	Hours string `json:"hours,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BusinessSettingsQuery when eager-loading is set.
	Edges        BusinessSettingsEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BusinessSettingsEdges holds the relations/edges for other nodes in the graph.
type BusinessSettingsEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BusinessSettingsEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BusinessSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case businesssettings.FieldID, businesssettings.FieldTenantID, businesssettings.FieldIndustry, businesssettings.FieldDescription, businesssettings.FieldServicesText, businesssettings.FieldTone, businesssettings.FieldFaq, businesssettings.FieldCustomInstructions, businesssettings.FieldLocation, businesssettings.FieldHours:
			values[i] = new(sql.NullString)
		case businesssettings.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BusinessSettings fields.
func (_m *BusinessSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case businesssettings.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case businesssettings.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case businesssettings.FieldIndustry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field industry", values[i])
			} else if value.Valid {
				_m.Industry = value.String
			}
		case businesssettings.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case businesssettings.FieldServicesText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field services_text", values[i])
			} else if value.Valid {
				_m.ServicesText = value.String
			}
		case businesssettings.FieldTone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tone", values[i])
			} else if value.Valid {
				_m.Tone = value.String
			}
		case businesssettings.FieldFaq:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field faq", values[i])
			} else if value.Valid {
				_m.Faq = value.String
			}
		case businesssettings.FieldCustomInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field custom_instructions", values[i])
			} else if value.Valid {
				_m.CustomInstructions = value.String
			}
		case businesssettings.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case businesssettings.FieldHours:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hours", values[i])
			} else if value.Valid {
				_m.Hours = value.String
			}
		case businesssettings.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BusinessSettings.
// This includes values selected through modifiers, order, etc.
func (_m *BusinessSettings) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the BusinessSettings entity.
func (_m *BusinessSettings) QueryTenant() *TenantQuery {
	return NewBusinessSettingsClient(_m.config).QueryTenant(_m)
}

// Update returns a builder for updating this BusinessSettings.
// Note that you need to call BusinessSettings.Unwrap() before calling this method if this BusinessSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BusinessSettings) Update() *BusinessSettingsUpdateOne {
	return NewBusinessSettingsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BusinessSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BusinessSettings) Unwrap() *BusinessSettings {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BusinessSettings is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BusinessSettings) String() string {
	var builder strings.Builder
	builder.WriteString("BusinessSettings(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("industry=")
	builder.WriteString(_m.Industry)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("services_text=")
	builder.WriteString(_m.ServicesText)
	builder.WriteString(", ")
	builder.WriteString("tone=")
	builder.WriteString(_m.Tone)
	builder.WriteString(", ")
	builder.WriteString("faq=")
	builder.WriteString(_m.Faq)
	builder.WriteString(", ")
	builder.WriteString("custom_instructions=")
	builder.WriteString(_m.CustomInstructions)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("hours=")
	builder.WriteString(_m.Hours)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BusinessSettingsSlice is a parsable slice of BusinessSettings.
type BusinessSettingsSlice []*BusinessSettings
