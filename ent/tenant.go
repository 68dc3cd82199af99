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
	"github.com/interacai/flowcore/ent/whatsappconfig"
)

// Tenant is the model entity for the Tenant schema.
type Tenant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Gates ingress: expired/suspended tenants get the canned upgrade reply
	SubscriptionStatus tenant.SubscriptionStatus `json:"subscription_status,omitempty"`
	// PlanName holds the value of the "plan_name" field.
	PlanName *string `json:"plan_name,omitempty"`
	// TrialStartedAt holds the value of the "trial_started_at" field.
	TrialStartedAt *time.Time `json:"trial_started_at,omitempty"`
	// Trials past this instant are demoted to expired on next access check
	TrialEndsAt *time.Time `json:"trial_ends_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TenantQuery when eager-loading is set.
	Edges        TenantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TenantEdges holds the relations/edges for other nodes in the graph.
type TenantEdges struct {
	// Users holds the value of the users edge.
	Users []*User `json:"users,omitempty"`
	// Settings holds the value of the settings edge.
	Settings *BusinessSettings `json:"settings,omitempty"`
	// KnowledgeDocs holds the value of the knowledge_docs edge.
	KnowledgeDocs []*KnowledgeDoc `json:"knowledge_docs,omitempty"`
	// WhatsappConfig holds the value of the whatsapp_config edge.
	WhatsappConfig *WhatsAppConfig `json:"whatsapp_config,omitempty"`
	// Conversations holds the value of the conversations edge.
	Conversations []*Conversation `json:"conversations,omitempty"`
	// Workflows holds the value of the workflows edge.
	Workflows []*Workflow `json:"workflows,omitempty"`
	// Executions holds the value of the executions edge.
	Executions []*Execution `json:"executions,omitempty"`
	// Leads holds the value of the leads edge.
	Leads []*Lead `json:"leads,omitempty"`
	// Tickets holds the value of the tickets edge.
	Tickets []*Ticket `json:"tickets,omitempty"`
	// AppointmentTypes holds the value of the appointment_types edge.
	AppointmentTypes []*AppointmentType `json:"appointment_types,omitempty"`
	// AvailabilityRules holds the value of the availability_rules edge.
	AvailabilityRules []*AvailabilityRule `json:"availability_rules,omitempty"`
	// Appointments holds the value of the appointments edge.
	Appointments []*Appointment `json:"appointments,omitempty"`
	// PromptExecutions holds the value of the prompt_executions edge.
	PromptExecutions []*PromptExecution `json:"prompt_executions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [13]bool
}

// UsersOrErr returns the Users value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) UsersOrErr() ([]*User, error) {
	if e.loadedTypes[0] {
		return e.Users, nil
	}
	return nil, &NotLoadedError{edge: "users"}
}

// SettingsOrErr returns the Settings value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TenantEdges) SettingsOrErr() (*BusinessSettings, error) {
	if e.Settings != nil {
		return e.Settings, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: businesssettings.Label}
	}
	return nil, &NotLoadedError{edge: "settings"}
}

// KnowledgeDocsOrErr returns the KnowledgeDocs value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) KnowledgeDocsOrErr() ([]*KnowledgeDoc, error) {
	if e.loadedTypes[2] {
		return e.KnowledgeDocs, nil
	}
	return nil, &NotLoadedError{edge: "knowledge_docs"}
}

// WhatsappConfigOrErr returns the WhatsappConfig value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TenantEdges) WhatsappConfigOrErr() (*WhatsAppConfig, error) {
	if e.WhatsappConfig != nil {
		return e.WhatsappConfig, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: whatsappconfig.Label}
	}
	return nil, &NotLoadedError{edge: "whatsapp_config"}
}

// ConversationsOrErr returns the Conversations value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) ConversationsOrErr() ([]*Conversation, error) {
	if e.loadedTypes[4] {
		return e.Conversations, nil
	}
	return nil, &NotLoadedError{edge: "conversations"}
}

// WorkflowsOrErr returns the Workflows value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) WorkflowsOrErr() ([]*Workflow, error) {
	if e.loadedTypes[5] {
		return e.Workflows, nil
	}
	return nil, &NotLoadedError{edge: "workflows"}
}

// ExecutionsOrErr returns the Executions value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) ExecutionsOrErr() ([]*Execution, error) {
	if e.loadedTypes[6] {
		return e.Executions, nil
	}
	return nil, &NotLoadedError{edge: "executions"}
}

// LeadsOrErr returns the Leads value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) LeadsOrErr() ([]*Lead, error) {
	if e.loadedTypes[7] {
		return e.Leads, nil
	}
	return nil, &NotLoadedError{edge: "leads"}
}

// TicketsOrErr returns the Tickets value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) TicketsOrErr() ([]*Ticket, error) {
	if e.loadedTypes[8] {
		return e.Tickets, nil
	}
	return nil, &NotLoadedError{edge: "tickets"}
}

// AppointmentTypesOrErr returns the AppointmentTypes value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) AppointmentTypesOrErr() ([]*AppointmentType, error) {
	if e.loadedTypes[9] {
		return e.AppointmentTypes, nil
	}
	return nil, &NotLoadedError{edge: "appointment_types"}
}

// AvailabilityRulesOrErr returns the AvailabilityRules value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) AvailabilityRulesOrErr() ([]*AvailabilityRule, error) {
	if e.loadedTypes[10] {
		return e.AvailabilityRules, nil
	}
	return nil, &NotLoadedError{edge: "availability_rules"}
}

// AppointmentsOrErr returns the Appointments value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) AppointmentsOrErr() ([]*Appointment, error) {
	if e.loadedTypes[11] {
		return e.Appointments, nil
	}
	return nil, &NotLoadedError{edge: "appointments"}
}

// PromptExecutionsOrErr returns the PromptExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) PromptExecutionsOrErr() ([]*PromptExecution, error) {
	if e.loadedTypes[12] {
		return e.PromptExecutions, nil
	}
	return nil, &NotLoadedError{edge: "prompt_executions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Tenant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tenant.FieldID, tenant.FieldName, tenant.FieldSubscriptionStatus, tenant.FieldPlanName:
			values[i] = new(sql.NullString)
		case tenant.FieldTrialStartedAt, tenant.FieldTrialEndsAt, tenant.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Tenant fields.
func (_m *Tenant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tenant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tenant.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case tenant.FieldSubscriptionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_status", values[i])
			} else if value.Valid {
				_m.SubscriptionStatus = tenant.SubscriptionStatus(value.String)
			}
		case tenant.FieldPlanName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_name", values[i])
			} else if value.Valid {
				_m.PlanName = new(string)
				*_m.PlanName = value.String
			}
		case tenant.FieldTrialStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field trial_started_at", values[i])
			} else if value.Valid {
				_m.TrialStartedAt = new(time.Time)
				*_m.TrialStartedAt = value.Time
			}
		case tenant.FieldTrialEndsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field trial_ends_at", values[i])
			} else if value.Valid {
				_m.TrialEndsAt = new(time.Time)
				*_m.TrialEndsAt = value.Time
			}
		case tenant.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Tenant.
// This includes values selected through modifiers, order, etc.
func (_m *Tenant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUsers queries the "users" edge of the Tenant entity.
func (_m *Tenant) QueryUsers() *UserQuery {
	return NewTenantClient(_m.config).QueryUsers(_m)
}

// QuerySettings queries the "settings" edge of the Tenant entity.
func (_m *Tenant) QuerySettings() *BusinessSettingsQuery {
	return NewTenantClient(_m.config).QuerySettings(_m)
}

// QueryKnowledgeDocs queries the "knowledge_docs" edge of the Tenant entity.
func (_m *Tenant) QueryKnowledgeDocs() *KnowledgeDocQuery {
	return NewTenantClient(_m.config).QueryKnowledgeDocs(_m)
}

// QueryWhatsappConfig queries the "whatsapp_config" edge of the Tenant entity.
func (_m *Tenant) QueryWhatsappConfig() *WhatsAppConfigQuery {
	return NewTenantClient(_m.config).QueryWhatsappConfig(_m)
}

// QueryConversations queries the "conversations" edge of the Tenant entity.
func (_m *Tenant) QueryConversations() *ConversationQuery {
	return NewTenantClient(_m.config).QueryConversations(_m)
}

// QueryWorkflows queries the "workflows" edge of the Tenant entity.
func (_m *Tenant) QueryWorkflows() *WorkflowQuery {
	return NewTenantClient(_m.config).QueryWorkflows(_m)
}

// QueryExecutions queries the "executions" edge of the Tenant entity.
func (_m *Tenant) QueryExecutions() *ExecutionQuery {
	return NewTenantClient(_m.config).QueryExecutions(_m)
}

// QueryLeads queries the "leads" edge of the Tenant entity.
func (_m *Tenant) QueryLeads() *LeadQuery {
	return NewTenantClient(_m.config).QueryLeads(_m)
}

// QueryTickets queries the "tickets" edge of the Tenant entity.
func (_m *Tenant) QueryTickets() *TicketQuery {
	return NewTenantClient(_m.config).QueryTickets(_m)
}

// QueryAppointmentTypes queries the "appointment_types" edge of the Tenant entity.
func (_m *Tenant) QueryAppointmentTypes() *AppointmentTypeQuery {
	return NewTenantClient(_m.config).QueryAppointmentTypes(_m)
}

// QueryAvailabilityRules queries the "availability_rules" edge of the Tenant entity.
func (_m *Tenant) QueryAvailabilityRules() *AvailabilityRuleQuery {
	return NewTenantClient(_m.config).QueryAvailabilityRules(_m)
}

// QueryAppointments queries the "appointments" edge of the Tenant entity.
func (_m *Tenant) QueryAppointments() *AppointmentQuery {
	return NewTenantClient(_m.config).QueryAppointments(_m)
}

// QueryPromptExecutions queries the "prompt_executions" edge of the Tenant entity.
func (_m *Tenant) QueryPromptExecutions() *PromptExecutionQuery {
	return NewTenantClient(_m.config).QueryPromptExecutions(_m)
}

// Update returns a builder for updating this Tenant.
// Note that you need to call Tenant.Unwrap() before calling this method if this Tenant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Tenant) Update() *TenantUpdateOne {
	return NewTenantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Tenant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Tenant) Unwrap() *Tenant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Tenant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Tenant) String() string {
	var builder strings.Builder
	builder.WriteString("Tenant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("subscription_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubscriptionStatus))
	builder.WriteString(", ")
	if v := _m.PlanName; v != nil {
		builder.WriteString("plan_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TrialStartedAt; v != nil {
		builder.WriteString("trial_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TrialEndsAt; v != nil {
		builder.WriteString("trial_ends_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tenants is a parsable slice of Tenant.
type Tenants []*Tenant
