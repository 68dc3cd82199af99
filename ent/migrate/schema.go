// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "appointment_id", Type: field.TypeString, Unique: true},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "start_at", Type: field.TypeTime},
		{Name: "end_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "confirmed", "cancelled", "completed"}, Default: "scheduled"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "appointment_type_id", Type: field.TypeString},
		{Name: "lead_id", Type: field.TypeString, Nullable: true},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_appointment_types_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[7]},
				RefColumns: []*schema.Column{AppointmentTypesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "appointments_leads_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[8]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "appointments_tenants_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[9]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_tenant_id_start_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[9], AppointmentsColumns[2]},
			},
			{
				Name:    "appointment_tenant_id_status_start_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[9], AppointmentsColumns[4], AppointmentsColumns[2]},
			},
		},
	}
	// AppointmentTypesColumns holds the columns for the "appointment_types" table.
	AppointmentTypesColumns = []*schema.Column{
		{Name: "type_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "color_code", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// AppointmentTypesTable holds the schema information for the "appointment_types" table.
	AppointmentTypesTable = &schema.Table{
		Name:       "appointment_types",
		Columns:    AppointmentTypesColumns,
		PrimaryKey: []*schema.Column{AppointmentTypesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointment_types_tenants_appointment_types",
				Columns:    []*schema.Column{AppointmentTypesColumns[5]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointmenttype_tenant_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{AppointmentTypesColumns[5], AppointmentTypesColumns[4]},
			},
		},
	}
	// AvailabilityRulesColumns holds the columns for the "availability_rules" table.
	AvailabilityRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "day_of_week", Type: field.TypeInt},
		{Name: "start_time", Type: field.TypeString},
		{Name: "end_time", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// AvailabilityRulesTable holds the schema information for the "availability_rules" table.
	AvailabilityRulesTable = &schema.Table{
		Name:       "availability_rules",
		Columns:    AvailabilityRulesColumns,
		PrimaryKey: []*schema.Column{AvailabilityRulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "availability_rules_tenants_availability_rules",
				Columns:    []*schema.Column{AvailabilityRulesColumns[5]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "availabilityrule_tenant_id_day_of_week",
				Unique:  false,
				Columns: []*schema.Column{AvailabilityRulesColumns[5], AvailabilityRulesColumns[1]},
			},
		},
	}
	// BusinessSettingsColumns holds the columns for the "business_settings" table.
	BusinessSettingsColumns = []*schema.Column{
		{Name: "settings_id", Type: field.TypeString, Unique: true},
		{Name: "industry", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "services_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tone", Type: field.TypeString, Nullable: true},
		{Name: "faq", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "custom_instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "hours", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString, Unique: true},
	}
	// BusinessSettingsTable holds the schema information for the "business_settings" table.
	BusinessSettingsTable = &schema.Table{
		Name:       "business_settings",
		Columns:    BusinessSettingsColumns,
		PrimaryKey: []*schema.Column{BusinessSettingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "business_settings_tenants_settings",
				Columns:    []*schema.Column{BusinessSettingsColumns[10]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "participant", Type: field.TypeString},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"web", "whatsapp"}, Default: "web"},
		{Name: "last_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "unread_count", Type: field.TypeInt, Default: 0},
		{Name: "last_intent", Type: field.TypeString, Nullable: true},
		{Name: "last_sentiment", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversations_tenants_conversations",
				Columns:    []*schema.Column{ConversationsColumns[9]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_tenant_id_participant",
				Unique:  true,
				Columns: []*schema.Column{ConversationsColumns[9], ConversationsColumns[1]},
			},
			{
				Name:    "conversation_tenant_id_last_message_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[9], ConversationsColumns[4]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[3]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// ExecutionsColumns holds the columns for the "executions" table.
	ExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "suspended", "completed", "failed"}, Default: "pending"},
		{Name: "trigger_event", Type: field.TypeJSON},
		{Name: "context", Type: field.TypeJSON},
		{Name: "resume_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// ExecutionsTable holds the schema information for the "executions" table.
	ExecutionsTable = &schema.Table{
		Name:       "executions",
		Columns:    ExecutionsColumns,
		PrimaryKey: []*schema.Column{ExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "executions_tenants_executions",
				Columns:    []*schema.Column{ExecutionsColumns[8]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "executions_workflows_executions",
				Columns:    []*schema.Column{ExecutionsColumns[9]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "execution_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[1]},
			},
			{
				Name:    "execution_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[8], ExecutionsColumns[1]},
			},
			{
				Name:    "execution_workflow_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[9], ExecutionsColumns[6]},
			},
		},
	}
	// ExecutionStepsColumns holds the columns for the "execution_steps" table.
	ExecutionStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "node_id", Type: field.TypeString},
		{Name: "node_kind", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "suspended", "failed"}, Default: "running"},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "execution_id", Type: field.TypeString},
	}
	// ExecutionStepsTable holds the schema information for the "execution_steps" table.
	ExecutionStepsTable = &schema.Table{
		Name:       "execution_steps",
		Columns:    ExecutionStepsColumns,
		PrimaryKey: []*schema.Column{ExecutionStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_steps_executions_steps",
				Columns:    []*schema.Column{ExecutionStepsColumns[9]},
				RefColumns: []*schema.Column{ExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executionstep_execution_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionStepsColumns[9], ExecutionStepsColumns[7]},
			},
		},
	}
	// KnowledgeDocsColumns holds the columns for the "knowledge_docs" table.
	KnowledgeDocsColumns = []*schema.Column{
		{Name: "doc_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// KnowledgeDocsTable holds the schema information for the "knowledge_docs" table.
	KnowledgeDocsTable = &schema.Table{
		Name:       "knowledge_docs",
		Columns:    KnowledgeDocsColumns,
		PrimaryKey: []*schema.Column{KnowledgeDocsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "knowledge_docs_tenants_knowledge_docs",
				Columns:    []*schema.Column{KnowledgeDocsColumns[4]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgedoc_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeDocsColumns[4], KnowledgeDocsColumns[3]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "lead_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Default: "workflow"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "contacted", "qualified", "converted", "lost"}, Default: "new"},
		{Name: "value", Type: field.TypeFloat64, Default: 0},
		{Name: "tags", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "leads_tenants_leads",
				Columns:    []*schema.Column{LeadsColumns[11]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lead_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[11], LeadsColumns[5]},
			},
			{
				Name:    "lead_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[11], LeadsColumns[9]},
			},
		},
	}
	// LeadActivitiesColumns holds the columns for the "lead_activities" table.
	LeadActivitiesColumns = []*schema.Column{
		{Name: "activity_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "content", Type: field.TypeJSON, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Default: "system"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeString},
	}
	// LeadActivitiesTable holds the schema information for the "lead_activities" table.
	LeadActivitiesTable = &schema.Table{
		Name:       "lead_activities",
		Columns:    LeadActivitiesColumns,
		PrimaryKey: []*schema.Column{LeadActivitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lead_activities_leads_activities",
				Columns:    []*schema.Column{LeadActivitiesColumns[5]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "leadactivity_lead_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadActivitiesColumns[5], LeadActivitiesColumns[4]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "sender", Type: field.TypeEnum, Enums: []string{"user", "assistant", "agent"}},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"web", "whatsapp"}, Default: "web"},
		{Name: "intent", Type: field.TypeString, Nullable: true},
		{Name: "sentiment", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[8]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[8], MessagesColumns[7]},
			},
			{
				Name:    "message_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[7]},
			},
		},
	}
	// PromptExecutionsColumns holds the columns for the "prompt_executions" table.
	PromptExecutionsColumns = []*schema.Column{
		{Name: "prompt_execution_id", Type: field.TypeString, Unique: true},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "messages", Type: field.TypeJSON},
		{Name: "response", Type: field.TypeString, Size: 2147483647},
		{Name: "model", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// PromptExecutionsTable holds the schema information for the "prompt_executions" table.
	PromptExecutionsTable = &schema.Table{
		Name:       "prompt_executions",
		Columns:    PromptExecutionsColumns,
		PrimaryKey: []*schema.Column{PromptExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prompt_executions_tenants_prompt_executions",
				Columns:    []*schema.Column{PromptExecutionsColumns[6]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "promptexecution_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PromptExecutionsColumns[6], PromptExecutionsColumns[5]},
			},
		},
	}
	// StepTasksColumns holds the columns for the "step_tasks" table.
	StepTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "node_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "cancelled", "timed_out"}, Default: "pending"},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeString},
	}
	// StepTasksTable holds the schema information for the "step_tasks" table.
	StepTasksTable = &schema.Table{
		Name:       "step_tasks",
		Columns:    StepTasksColumns,
		PrimaryKey: []*schema.Column{StepTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "step_tasks_executions_tasks",
				Columns:    []*schema.Column{StepTasksColumns[10]},
				RefColumns: []*schema.Column{ExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "steptask_status_scheduled_at_created_at",
				Unique:  false,
				Columns: []*schema.Column{StepTasksColumns[3], StepTasksColumns[4], StepTasksColumns[9]},
			},
			{
				Name:    "steptask_execution_id_status",
				Unique:  false,
				Columns: []*schema.Column{StepTasksColumns[10], StepTasksColumns[3]},
			},
			{
				Name:    "steptask_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{StepTasksColumns[3], StepTasksColumns[7]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "tenant_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "subscription_status", Type: field.TypeEnum, Enums: []string{"active", "trial", "suspended", "expired"}, Default: "trial"},
		{Name: "plan_name", Type: field.TypeString, Nullable: true},
		{Name: "trial_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "trial_ends_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenant_subscription_status",
				Unique:  false,
				Columns: []*schema.Column{TenantsColumns[2]},
			},
		},
	}
	// TicketsColumns holds the columns for the "tickets" table.
	TicketsColumns = []*schema.Column{
		{Name: "ticket_id", Type: field.TypeString, Unique: true},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "subject", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "in_progress", "resolved", "closed"}, Default: "open"},
		{Name: "assigned_to", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// TicketsTable holds the schema information for the "tickets" table.
	TicketsTable = &schema.Table{
		Name:       "tickets",
		Columns:    TicketsColumns,
		PrimaryKey: []*schema.Column{TicketsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tickets_tenants_tickets",
				Columns:    []*schema.Column{TicketsColumns[8]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ticket_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[8], TicketsColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "agent"}, Default: "owner"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_tenants_users",
				Columns:    []*schema.Column{UsersColumns[5]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_tenant_id_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[5], UsersColumns[1]},
			},
		},
	}
	// WhatsAppConfigsColumns holds the columns for the "whats_app_configs" table.
	WhatsAppConfigsColumns = []*schema.Column{
		{Name: "config_id", Type: field.TypeString, Unique: true},
		{Name: "phone_number_id", Type: field.TypeString, Unique: true},
		{Name: "access_token_enc", Type: field.TypeString, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString, Unique: true},
	}
	// WhatsAppConfigsTable holds the schema information for the "whats_app_configs" table.
	WhatsAppConfigsTable = &schema.Table{
		Name:       "whats_app_configs",
		Columns:    WhatsAppConfigsColumns,
		PrimaryKey: []*schema.Column{WhatsAppConfigsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "whats_app_configs_tenants_whatsapp_config",
				Columns:    []*schema.Column{WhatsAppConfigsColumns[5]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "trigger_kind", Type: field.TypeEnum, Enums: []string{"keyword", "intent", "lead_event", "manual"}},
		{Name: "trigger_config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflows_tenants_workflows",
				Columns:    []*schema.Column{WorkflowsColumns[8]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflow_tenant_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[8], WorkflowsColumns[3]},
			},
			{
				Name:    "workflow_tenant_id_trigger_kind",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[8], WorkflowsColumns[4]},
			},
		},
	}
	// WorkflowEdgesColumns holds the columns for the "workflow_edges" table.
	WorkflowEdgesColumns = []*schema.Column{
		{Name: "edge_id", Type: field.TypeString, Unique: true},
		{Name: "source_node_id", Type: field.TypeString},
		{Name: "target_node_id", Type: field.TypeString},
		{Name: "guard", Type: field.TypeString, Nullable: true},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// WorkflowEdgesTable holds the schema information for the "workflow_edges" table.
	WorkflowEdgesTable = &schema.Table{
		Name:       "workflow_edges",
		Columns:    WorkflowEdgesColumns,
		PrimaryKey: []*schema.Column{WorkflowEdgesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_edges_workflows_edges",
				Columns:    []*schema.Column{WorkflowEdgesColumns[4]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowedge_workflow_id_source_node_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowEdgesColumns[4], WorkflowEdgesColumns[1]},
			},
		},
	}
	// WorkflowNodesColumns holds the columns for the "workflow_nodes" table.
	WorkflowNodesColumns = []*schema.Column{
		{Name: "node_id", Type: field.TypeString, Unique: true},
		{Name: "key", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"start", "action", "ai_inference", "ai_extract", "condition", "wait_for_reply", "time_delay", "http_request", "lead_capture", "appointment_booking", "end"}},
		{Name: "label", Type: field.TypeString, Nullable: true},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "position", Type: field.TypeJSON, Nullable: true},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// WorkflowNodesTable holds the schema information for the "workflow_nodes" table.
	WorkflowNodesTable = &schema.Table{
		Name:       "workflow_nodes",
		Columns:    WorkflowNodesColumns,
		PrimaryKey: []*schema.Column{WorkflowNodesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_nodes_workflows_nodes",
				Columns:    []*schema.Column{WorkflowNodesColumns[6]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflownode_workflow_id_key",
				Unique:  true,
				Columns: []*schema.Column{WorkflowNodesColumns[6], WorkflowNodesColumns[1]},
			},
			{
				Name:    "workflownode_workflow_id_kind",
				Unique:  false,
				Columns: []*schema.Column{WorkflowNodesColumns[6], WorkflowNodesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		AppointmentTypesTable,
		AvailabilityRulesTable,
		BusinessSettingsTable,
		ConversationsTable,
		EventsTable,
		ExecutionsTable,
		ExecutionStepsTable,
		KnowledgeDocsTable,
		LeadsTable,
		LeadActivitiesTable,
		MessagesTable,
		PromptExecutionsTable,
		StepTasksTable,
		TenantsTable,
		TicketsTable,
		UsersTable,
		WhatsAppConfigsTable,
		WorkflowsTable,
		WorkflowEdgesTable,
		WorkflowNodesTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = AppointmentTypesTable
	AppointmentsTable.ForeignKeys[1].RefTable = LeadsTable
	AppointmentsTable.ForeignKeys[2].RefTable = TenantsTable
	AppointmentTypesTable.ForeignKeys[0].RefTable = TenantsTable
	AvailabilityRulesTable.ForeignKeys[0].RefTable = TenantsTable
	BusinessSettingsTable.ForeignKeys[0].RefTable = TenantsTable
	ConversationsTable.ForeignKeys[0].RefTable = TenantsTable
	ExecutionsTable.ForeignKeys[0].RefTable = TenantsTable
	ExecutionsTable.ForeignKeys[1].RefTable = WorkflowsTable
	ExecutionStepsTable.ForeignKeys[0].RefTable = ExecutionsTable
	KnowledgeDocsTable.ForeignKeys[0].RefTable = TenantsTable
	LeadsTable.ForeignKeys[0].RefTable = TenantsTable
	LeadActivitiesTable.ForeignKeys[0].RefTable = LeadsTable
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	PromptExecutionsTable.ForeignKeys[0].RefTable = TenantsTable
	StepTasksTable.ForeignKeys[0].RefTable = ExecutionsTable
	TicketsTable.ForeignKeys[0].RefTable = TenantsTable
	UsersTable.ForeignKeys[0].RefTable = TenantsTable
	WhatsAppConfigsTable.ForeignKeys[0].RefTable = TenantsTable
	WorkflowsTable.ForeignKeys[0].RefTable = TenantsTable
	WorkflowEdgesTable.ForeignKeys[0].RefTable = WorkflowsTable
	WorkflowNodesTable.ForeignKeys[0].RefTable = WorkflowsTable
}
