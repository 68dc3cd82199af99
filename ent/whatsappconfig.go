// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/interacai/flowcore/ent/tenant"
	"github.com/interacai/flowcore/ent/whatsappconfig"
)

// WhatsAppConfig is the model entity for the WhatsAppConfig schema.
type WhatsAppConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Meta phone number id; webhook payloads resolve the tenant through it
	PhoneNumberID string `json:"phone_number_id,omitempty"`
	// Base64 AES-GCM ciphertext
	AccessTokenEnc string `json:"access_token_enc,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WhatsAppConfigQuery when eager-loading is set.
	Edges        WhatsAppConfigEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WhatsAppConfigEdges holds the relations/edges for other nodes in the graph.
type WhatsAppConfigEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WhatsAppConfigEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WhatsAppConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case whatsappconfig.FieldIsActive:
			values[i] = new(sql.NullBool)
		case whatsappconfig.FieldID, whatsappconfig.FieldTenantID, whatsappconfig.FieldPhoneNumberID, whatsappconfig.FieldAccessTokenEnc:
			values[i] = new(sql.NullString)
		case whatsappconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WhatsAppConfig fields.
func (_m *WhatsAppConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case whatsappconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case whatsappconfig.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case whatsappconfig.FieldPhoneNumberID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone_number_id", values[i])
			} else if value.Valid {
				_m.PhoneNumberID = value.String
			}
		case whatsappconfig.FieldAccessTokenEnc:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field access_token_enc", values[i])
			} else if value.Valid {
				_m.AccessTokenEnc = value.String
			}
		case whatsappconfig.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case whatsappconfig.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WhatsAppConfig.
// This includes values selected through modifiers, order, etc.
func (_m *WhatsAppConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the WhatsAppConfig entity.
func (_m *WhatsAppConfig) QueryTenant() *TenantQuery {
	return NewWhatsAppConfigClient(_m.config).QueryTenant(_m)
}

// Update returns a builder for updating this WhatsAppConfig.
// Note that you need to call WhatsAppConfig.Unwrap() before calling this method if this WhatsAppConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WhatsAppConfig) Update() *WhatsAppConfigUpdateOne {
	return NewWhatsAppConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WhatsAppConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WhatsAppConfig) Unwrap() *WhatsAppConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WhatsAppConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WhatsAppConfig) String() string {
	var builder strings.Builder
	builder.WriteString("WhatsAppConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("phone_number_id=")
	builder.WriteString(_m.PhoneNumberID)
	builder.WriteString(", ")
	builder.WriteString("access_token_enc=")
	builder.WriteString(_m.AccessTokenEnc)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WhatsAppConfigs is a parsable slice of WhatsAppConfig.
type WhatsAppConfigs []*WhatsAppConfig
