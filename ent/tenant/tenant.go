// Code generated by ent, DO NOT EDIT.

package tenant

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tenant type in the database.
	Label = "tenant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "tenant_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSubscriptionStatus holds the string denoting the subscription_status field in the database.
	FieldSubscriptionStatus = "subscription_status"
	// FieldPlanName holds the string denoting the plan_name field in the database.
	FieldPlanName = "plan_name"
	// FieldTrialStartedAt holds the string denoting the trial_started_at field in the database.
	FieldTrialStartedAt = "trial_started_at"
	// FieldTrialEndsAt holds the string denoting the trial_ends_at field in the database.
	FieldTrialEndsAt = "trial_ends_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUsers holds the string denoting the users edge name in mutations.
	EdgeUsers = "users"
	// EdgeSettings holds the string denoting the settings edge name in mutations.
	EdgeSettings = "settings"
	// EdgeKnowledgeDocs holds the string denoting the knowledge_docs edge name in mutations.
	EdgeKnowledgeDocs = "knowledge_docs"
	// EdgeWhatsappConfig holds the string denoting the whatsapp_config edge name in mutations.
	EdgeWhatsappConfig = "whatsapp_config"
	// EdgeConversations holds the string denoting the conversations edge name in mutations.
	EdgeConversations = "conversations"
	// EdgeWorkflows holds the string denoting the workflows edge name in mutations.
	EdgeWorkflows = "workflows"
	// EdgeExecutions holds the string denoting the executions edge name in mutations.
	EdgeExecutions = "executions"
	// EdgeLeads holds the string denoting the leads edge name in mutations.
	EdgeLeads = "leads"
	// EdgeTickets holds the string denoting the tickets edge name in mutations.
	EdgeTickets = "tickets"
	// EdgeAppointmentTypes holds the string denoting the appointment_types edge name in mutations.
	EdgeAppointmentTypes = "appointment_types"
	// EdgeAvailabilityRules holds the string denoting the availability_rules edge name in mutations.
	EdgeAvailabilityRules = "availability_rules"
	// EdgeAppointments holds the string denoting the appointments edge name in mutations.
	EdgeAppointments = "appointments"
	// EdgePromptExecutions holds the string denoting the prompt_executions edge name in mutations.
	EdgePromptExecutions = "prompt_executions"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// BusinessSettingsFieldID holds the string denoting the ID field of the BusinessSettings.
	BusinessSettingsFieldID = "settings_id"
	// KnowledgeDocFieldID holds the string denoting the ID field of the KnowledgeDoc.
	KnowledgeDocFieldID = "doc_id"
	// WhatsAppConfigFieldID holds the string denoting the ID field of the WhatsAppConfig.
	WhatsAppConfigFieldID = "config_id"
	// ConversationFieldID holds the string denoting the ID field of the Conversation.
	ConversationFieldID = "conversation_id"
	// WorkflowFieldID holds the string denoting the ID field of the Workflow.
	WorkflowFieldID = "workflow_id"
	// ExecutionFieldID holds the string denoting the ID field of the Execution.
	ExecutionFieldID = "execution_id"
	// LeadFieldID holds the string denoting the ID field of the Lead.
	LeadFieldID = "lead_id"
	// TicketFieldID holds the string denoting the ID field of the Ticket.
	TicketFieldID = "ticket_id"
	// AppointmentTypeFieldID holds the string denoting the ID field of the AppointmentType.
	AppointmentTypeFieldID = "type_id"
	// AvailabilityRuleFieldID holds the string denoting the ID field of the AvailabilityRule.
	AvailabilityRuleFieldID = "rule_id"
	// AppointmentFieldID holds the string denoting the ID field of the Appointment.
	AppointmentFieldID = "appointment_id"
	// PromptExecutionFieldID holds the string denoting the ID field of the PromptExecution.
	PromptExecutionFieldID = "prompt_execution_id"
	// Table holds the table name of the tenant in the database.
	Table = "tenants"
	// UsersTable is the table that holds the users relation/edge.
	UsersTable = "users"
	// UsersInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UsersInverseTable = "users"
	// UsersColumn is the table column denoting the users relation/edge.
	UsersColumn = "tenant_id"
	// SettingsTable is the table that holds the settings relation/edge.
	SettingsTable = "business_settings"
	// SettingsInverseTable is the table name for the BusinessSettings entity.
	// It exists in this package in order to avoid circular dependency with the "businesssettings" package.
	SettingsInverseTable = "business_settings"
	// SettingsColumn is the table column denoting the settings relation/edge.
	SettingsColumn = "tenant_id"
	// KnowledgeDocsTable is the table that holds the knowledge_docs relation/edge.
	KnowledgeDocsTable = "knowledge_docs"
	// KnowledgeDocsInverseTable is the table name for the KnowledgeDoc entity.
	// It exists in this package in order to avoid circular dependency with the "knowledgedoc" package.
	KnowledgeDocsInverseTable = "knowledge_docs"
	// KnowledgeDocsColumn is the table column denoting the knowledge_docs relation/edge.
	KnowledgeDocsColumn = "tenant_id"
	// WhatsappConfigTable is the table that holds the whatsapp_config relation/edge.
	WhatsappConfigTable = "whats_app_configs"
	// WhatsappConfigInverseTable is the table name for the WhatsAppConfig entity.
	// It exists in this package in order to avoid circular dependency with the "whatsappconfig" package.
	WhatsappConfigInverseTable = "whats_app_configs"
	// WhatsappConfigColumn is the table column denoting the whatsapp_config relation/edge.
	WhatsappConfigColumn = "tenant_id"
	// ConversationsTable is the table that holds the conversations relation/edge.
	ConversationsTable = "conversations"
	// ConversationsInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationsInverseTable = "conversations"
	// ConversationsColumn is the table column denoting the conversations relation/edge.
	ConversationsColumn = "tenant_id"
	// WorkflowsTable is the table that holds the workflows relation/edge.
	WorkflowsTable = "workflows"
	// WorkflowsInverseTable is the table name for the Workflow entity.
	// It exists in this package in order to avoid circular dependency with the "workflow" package.
	WorkflowsInverseTable = "workflows"
	// WorkflowsColumn is the table column denoting the workflows relation/edge.
	WorkflowsColumn = "tenant_id"
	// ExecutionsTable is the table that holds the executions relation/edge.
	ExecutionsTable = "executions"
	// ExecutionsInverseTable is the table name for the Execution entity.
	// It exists in this package in order to avoid circular dependency with the "execution" package.
	ExecutionsInverseTable = "executions"
	// ExecutionsColumn is the table column denoting the executions relation/edge.
	ExecutionsColumn = "tenant_id"
	// LeadsTable is the table that holds the leads relation/edge.
	LeadsTable = "leads"
	// LeadsInverseTable is the table name for the Lead entity.
	// It exists in this package in order to avoid circular dependency with the "lead" package.
	LeadsInverseTable = "leads"
	// LeadsColumn is the table column denoting the leads relation/edge.
	LeadsColumn = "tenant_id"
	// TicketsTable is the table that holds the tickets relation/edge.
	TicketsTable = "tickets"
	// TicketsInverseTable is the table name for the Ticket entity.
	// It exists in this package in order to avoid circular dependency with the "ticket" package.
	TicketsInverseTable = "tickets"
	// TicketsColumn is the table column denoting the tickets relation/edge.
	TicketsColumn = "tenant_id"
	// AppointmentTypesTable is the table that holds the appointment_types relation/edge.
	AppointmentTypesTable = "appointment_types"
	// AppointmentTypesInverseTable is the table name for the AppointmentType entity.
	// It exists in this package in order to avoid circular dependency with the "appointmenttype" package.
	AppointmentTypesInverseTable = "appointment_types"
	// AppointmentTypesColumn is the table column denoting the appointment_types relation/edge.
	AppointmentTypesColumn = "tenant_id"
	// AvailabilityRulesTable is the table that holds the availability_rules relation/edge.
	AvailabilityRulesTable = "availability_rules"
	// AvailabilityRulesInverseTable is the table name for the AvailabilityRule entity.
	// It exists in this package in order to avoid circular dependency with the "availabilityrule" package.
	AvailabilityRulesInverseTable = "availability_rules"
	// AvailabilityRulesColumn is the table column denoting the availability_rules relation/edge.
	AvailabilityRulesColumn = "tenant_id"
	// AppointmentsTable is the table that holds the appointments relation/edge.
	AppointmentsTable = "appointments"
	// AppointmentsInverseTable is the table name for the Appointment entity.
	// It exists in this package in order to avoid circular dependency with the "appointment" package.
	AppointmentsInverseTable = "appointments"
	// AppointmentsColumn is the table column denoting the appointments relation/edge.
	AppointmentsColumn = "tenant_id"
	// PromptExecutionsTable is the table that holds the prompt_executions relation/edge.
	PromptExecutionsTable = "prompt_executions"
	// PromptExecutionsInverseTable is the table name for the PromptExecution entity.
	// It exists in this package in order to avoid circular dependency with the "promptexecution" package.
	PromptExecutionsInverseTable = "prompt_executions"
	// PromptExecutionsColumn is the table column denoting the prompt_executions relation/edge.
	PromptExecutionsColumn = "tenant_id"
)

// Columns holds all SQL columns for tenant fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldSubscriptionStatus,
	FieldPlanName,
	FieldTrialStartedAt,
	FieldTrialEndsAt,
	FieldCreatedAt,
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

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// SubscriptionStatus defines the type for the "subscription_status" enum field.
type SubscriptionStatus string

// SubscriptionStatusTrial is the default value of the SubscriptionStatus enum.
const DefaultSubscriptionStatus = SubscriptionStatusTrial

// SubscriptionStatus values.
const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusTrial     SubscriptionStatus = "trial"
	SubscriptionStatusSuspended SubscriptionStatus = "suspended"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

func (ss SubscriptionStatus) String() string {
	return string(ss)
}

// SubscriptionStatusValidator is a validator for the "subscription_status" field enum values. It is called by the builders before save.
func SubscriptionStatusValidator(ss SubscriptionStatus) error {
	switch ss {
	case SubscriptionStatusActive, SubscriptionStatusTrial, SubscriptionStatusSuspended, SubscriptionStatusExpired:
		return nil
	default:
		return fmt.Errorf("tenant: invalid enum value for subscription_status field: %q", ss)
	}
}

// OrderOption defines the ordering options for the Tenant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySubscriptionStatus orders the results by the subscription_status field.
func BySubscriptionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscriptionStatus, opts...).ToFunc()
}

// ByPlanName orders the results by the plan_name field.
func ByPlanName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanName, opts...).ToFunc()
}

// ByTrialStartedAt orders the results by the trial_started_at field.
func ByTrialStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrialStartedAt, opts...).ToFunc()
}

// ByTrialEndsAt orders the results by the trial_ends_at field.
func ByTrialEndsAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrialEndsAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUsersCount orders the results by users count.
func ByUsersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUsersStep(), opts...)
	}
}

// ByUsers orders the results by users terms.
func ByUsers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySettingsField orders the results by settings field.
func BySettingsField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSettingsStep(), sql.OrderByField(field, opts...))
	}
}

// ByKnowledgeDocsCount orders the results by knowledge_docs count.
func ByKnowledgeDocsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newKnowledgeDocsStep(), opts...)
	}
}

// ByKnowledgeDocs orders the results by knowledge_docs terms.
func ByKnowledgeDocs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKnowledgeDocsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWhatsappConfigField orders the results by whatsapp_config field.
func ByWhatsappConfigField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWhatsappConfigStep(), sql.OrderByField(field, opts...))
	}
}

// ByConversationsCount orders the results by conversations count.
func ByConversationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConversationsStep(), opts...)
	}
}

// ByConversations orders the results by conversations terms.
func ByConversations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWorkflowsCount orders the results by workflows count.
func ByWorkflowsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWorkflowsStep(), opts...)
	}
}

// ByWorkflows orders the results by workflows terms.
func ByWorkflows(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExecutionsCount orders the results by executions count.
func ByExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionsStep(), opts...)
	}
}

// ByExecutions orders the results by executions terms.
func ByExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLeadsCount orders the results by leads count.
func ByLeadsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLeadsStep(), opts...)
	}
}

// ByLeads orders the results by leads terms.
func ByLeads(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTicketsCount orders the results by tickets count.
func ByTicketsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTicketsStep(), opts...)
	}
}

// ByTickets orders the results by tickets terms.
func ByTickets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTicketsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAppointmentTypesCount orders the results by appointment_types count.
func ByAppointmentTypesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAppointmentTypesStep(), opts...)
	}
}

// ByAppointmentTypes orders the results by appointment_types terms.
func ByAppointmentTypes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAppointmentTypesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAvailabilityRulesCount orders the results by availability_rules count.
func ByAvailabilityRulesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAvailabilityRulesStep(), opts...)
	}
}

// ByAvailabilityRules orders the results by availability_rules terms.
func ByAvailabilityRules(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAvailabilityRulesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAppointmentsCount orders the results by appointments count.
func ByAppointmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAppointmentsStep(), opts...)
	}
}

// ByAppointments orders the results by appointments terms.
func ByAppointments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAppointmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPromptExecutionsCount orders the results by prompt_executions count.
func ByPromptExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPromptExecutionsStep(), opts...)
	}
}

// ByPromptExecutions orders the results by prompt_executions terms.
func ByPromptExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPromptExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUsersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsersInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UsersTable, UsersColumn),
	)
}
func newSettingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SettingsInverseTable, BusinessSettingsFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SettingsTable, SettingsColumn),
	)
}
func newKnowledgeDocsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KnowledgeDocsInverseTable, KnowledgeDocFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, KnowledgeDocsTable, KnowledgeDocsColumn),
	)
}
func newWhatsappConfigStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WhatsappConfigInverseTable, WhatsAppConfigFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, WhatsappConfigTable, WhatsappConfigColumn),
	)
}
func newConversationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationsInverseTable, ConversationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
	)
}
func newWorkflowsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowsInverseTable, WorkflowFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WorkflowsTable, WorkflowsColumn),
	)
}
func newExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionsInverseTable, ExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
	)
}
func newLeadsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadsInverseTable, LeadFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LeadsTable, LeadsColumn),
	)
}
func newTicketsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TicketsInverseTable, TicketFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TicketsTable, TicketsColumn),
	)
}
func newAppointmentTypesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AppointmentTypesInverseTable, AppointmentTypeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AppointmentTypesTable, AppointmentTypesColumn),
	)
}
func newAvailabilityRulesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AvailabilityRulesInverseTable, AvailabilityRuleFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AvailabilityRulesTable, AvailabilityRulesColumn),
	)
}
func newAppointmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AppointmentsInverseTable, AppointmentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AppointmentsTable, AppointmentsColumn),
	)
}
func newPromptExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PromptExecutionsInverseTable, PromptExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PromptExecutionsTable, PromptExecutionsColumn),
	)
}
