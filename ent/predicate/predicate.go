// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// AppointmentType is the predicate function for appointmenttype builders.
type AppointmentType func(*sql.Selector)

// AvailabilityRule is the predicate function for availabilityrule builders.
type AvailabilityRule func(*sql.Selector)

// BusinessSettings is the predicate function for businesssettings builders.
type BusinessSettings func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Execution is the predicate function for execution builders.
type Execution func(*sql.Selector)

// ExecutionStep is the predicate function for executionstep builders.
type ExecutionStep func(*sql.Selector)

// KnowledgeDoc is the predicate function for knowledgedoc builders.
type KnowledgeDoc func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// LeadActivity is the predicate function for leadactivity builders.
type LeadActivity func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// PromptExecution is the predicate function for promptexecution builders.
type PromptExecution func(*sql.Selector)

// StepTask is the predicate function for steptask builders.
type StepTask func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)

// Ticket is the predicate function for ticket builders.
type Ticket func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WhatsAppConfig is the predicate function for whatsappconfig builders.
type WhatsAppConfig func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)

// WorkflowEdge is the predicate function for workflowedge builders.
type WorkflowEdge func(*sql.Selector)

// WorkflowNode is the predicate function for workflownode builders.
type WorkflowNode func(*sql.Selector)
