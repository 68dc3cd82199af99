// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/interacai/flowcore/ent/appointment"
	"github.com/interacai/flowcore/ent/appointmenttype"
	"github.com/interacai/flowcore/ent/availabilityrule"
	"github.com/interacai/flowcore/ent/businesssettings"
	"github.com/interacai/flowcore/ent/conversation"
	"github.com/interacai/flowcore/ent/event"
	"github.com/interacai/flowcore/ent/execution"
	"github.com/interacai/flowcore/ent/executionstep"
	"github.com/interacai/flowcore/ent/knowledgedoc"
	"github.com/interacai/flowcore/ent/lead"
	"github.com/interacai/flowcore/ent/leadactivity"
	"github.com/interacai/flowcore/ent/message"
	"github.com/interacai/flowcore/ent/promptexecution"
	"github.com/interacai/flowcore/ent/schema"
	"github.com/interacai/flowcore/ent/steptask"
	"github.com/interacai/flowcore/ent/tenant"
	"github.com/interacai/flowcore/ent/ticket"
	"github.com/interacai/flowcore/ent/user"
	"github.com/interacai/flowcore/ent/whatsappconfig"
	"github.com/interacai/flowcore/ent/workflow"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentFields[9].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	appointmenttypeFields := schema.AppointmentType{}.Fields()
	_ = appointmenttypeFields
	// appointmenttypeDescIsActive is the schema descriptor for is_active field.
	appointmenttypeDescIsActive := appointmenttypeFields[5].Descriptor()
	// appointmenttype.DefaultIsActive holds the default value on creation for the is_active field.
	appointmenttype.DefaultIsActive = appointmenttypeDescIsActive.Default.(bool)
	availabilityruleFields := schema.AvailabilityRule{}.Fields()
	_ = availabilityruleFields
	// availabilityruleDescDayOfWeek is the schema descriptor for day_of_week field.
	availabilityruleDescDayOfWeek := availabilityruleFields[2].Descriptor()
	// availabilityrule.DayOfWeekValidator is a validator for the "day_of_week" field. It is called by the builders before save.
	availabilityrule.DayOfWeekValidator = func() func(int) error {
		validators := availabilityruleDescDayOfWeek.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(day_of_week int) error {
			for _, fn := range fns {
				if err := fn(day_of_week); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// availabilityruleDescIsActive is the schema descriptor for is_active field.
	availabilityruleDescIsActive := availabilityruleFields[5].Descriptor()
	// availabilityrule.DefaultIsActive holds the default value on creation for the is_active field.
	availabilityrule.DefaultIsActive = availabilityruleDescIsActive.Default.(bool)
	businesssettingsFields := schema.BusinessSettings{}.Fields()
	_ = businesssettingsFields
	// businesssettingsDescUpdatedAt is the schema descriptor for updated_at field.
	businesssettingsDescUpdatedAt := businesssettingsFields[10].Descriptor()
	// businesssettings.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	businesssettings.DefaultUpdatedAt = businesssettingsDescUpdatedAt.Default.(func() time.Time)
	// businesssettings.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	businesssettings.UpdateDefaultUpdatedAt = businesssettingsDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescUnreadCount is the schema descriptor for unread_count field.
	conversationDescUnreadCount := conversationFields[6].Descriptor()
	// conversation.DefaultUnreadCount holds the default value on creation for the unread_count field.
	conversation.DefaultUnreadCount = conversationDescUnreadCount.Default.(int)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[9].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[2].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	executionFields := schema.Execution{}.Fields()
	_ = executionFields
	// executionDescStartedAt is the schema descriptor for started_at field.
	executionDescStartedAt := executionFields[8].Descriptor()
	// execution.DefaultStartedAt holds the default value on creation for the started_at field.
	execution.DefaultStartedAt = executionDescStartedAt.Default.(func() time.Time)
	executionstepFields := schema.ExecutionStep{}.Fields()
	_ = executionstepFields
	// executionstepDescStartedAt is the schema descriptor for started_at field.
	executionstepDescStartedAt := executionstepFields[8].Descriptor()
	// executionstep.DefaultStartedAt holds the default value on creation for the started_at field.
	executionstep.DefaultStartedAt = executionstepDescStartedAt.Default.(func() time.Time)
	knowledgedocFields := schema.KnowledgeDoc{}.Fields()
	_ = knowledgedocFields
	// knowledgedocDescCreatedAt is the schema descriptor for created_at field.
	knowledgedocDescCreatedAt := knowledgedocFields[4].Descriptor()
	// knowledgedoc.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledgedoc.DefaultCreatedAt = knowledgedocDescCreatedAt.Default.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescSource is the schema descriptor for source field.
	leadDescSource := leadFields[5].Descriptor()
	// lead.DefaultSource holds the default value on creation for the source field.
	lead.DefaultSource = leadDescSource.Default.(string)
	// leadDescValue is the schema descriptor for value field.
	leadDescValue := leadFields[7].Descriptor()
	// lead.DefaultValue holds the default value on creation for the value field.
	lead.DefaultValue = leadDescValue.Default.(float64)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[10].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[11].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadactivityFields := schema.LeadActivity{}.Fields()
	_ = leadactivityFields
	// leadactivityDescCreatedBy is the schema descriptor for created_by field.
	leadactivityDescCreatedBy := leadactivityFields[4].Descriptor()
	// leadactivity.DefaultCreatedBy holds the default value on creation for the created_by field.
	leadactivity.DefaultCreatedBy = leadactivityDescCreatedBy.Default.(string)
	// leadactivityDescCreatedAt is the schema descriptor for created_at field.
	leadactivityDescCreatedAt := leadactivityFields[5].Descriptor()
	// leadactivity.DefaultCreatedAt holds the default value on creation for the created_at field.
	leadactivity.DefaultCreatedAt = leadactivityDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[8].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	promptexecutionFields := schema.PromptExecution{}.Fields()
	_ = promptexecutionFields
	// promptexecutionDescCreatedAt is the schema descriptor for created_at field.
	promptexecutionDescCreatedAt := promptexecutionFields[6].Descriptor()
	// promptexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	promptexecution.DefaultCreatedAt = promptexecutionDescCreatedAt.Default.(func() time.Time)
	steptaskFields := schema.StepTask{}.Fields()
	_ = steptaskFields
	// steptaskDescScheduledAt is the schema descriptor for scheduled_at field.
	steptaskDescScheduledAt := steptaskFields[5].Descriptor()
	// steptask.DefaultScheduledAt holds the default value on creation for the scheduled_at field.
	steptask.DefaultScheduledAt = steptaskDescScheduledAt.Default.(func() time.Time)
	// steptaskDescCreatedAt is the schema descriptor for created_at field.
	steptaskDescCreatedAt := steptaskFields[10].Descriptor()
	// steptask.DefaultCreatedAt holds the default value on creation for the created_at field.
	steptask.DefaultCreatedAt = steptaskDescCreatedAt.Default.(func() time.Time)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[6].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	ticketFields := schema.Ticket{}.Fields()
	_ = ticketFields
	// ticketDescCreatedAt is the schema descriptor for created_at field.
	ticketDescCreatedAt := ticketFields[8].Descriptor()
	// ticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticket.DefaultCreatedAt = ticketDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	whatsappconfigFields := schema.WhatsAppConfig{}.Fields()
	_ = whatsappconfigFields
	// whatsappconfigDescIsActive is the schema descriptor for is_active field.
	whatsappconfigDescIsActive := whatsappconfigFields[4].Descriptor()
	// whatsappconfig.DefaultIsActive holds the default value on creation for the is_active field.
	whatsappconfig.DefaultIsActive = whatsappconfigDescIsActive.Default.(bool)
	// whatsappconfigDescUpdatedAt is the schema descriptor for updated_at field.
	whatsappconfigDescUpdatedAt := whatsappconfigFields[5].Descriptor()
	// whatsappconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	whatsappconfig.DefaultUpdatedAt = whatsappconfigDescUpdatedAt.Default.(func() time.Time)
	// whatsappconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	whatsappconfig.UpdateDefaultUpdatedAt = whatsappconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
	// workflowDescIsActive is the schema descriptor for is_active field.
	workflowDescIsActive := workflowFields[4].Descriptor()
	// workflow.DefaultIsActive holds the default value on creation for the is_active field.
	workflow.DefaultIsActive = workflowDescIsActive.Default.(bool)
	// workflowDescCreatedAt is the schema descriptor for created_at field.
	workflowDescCreatedAt := workflowFields[7].Descriptor()
	// workflow.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflow.DefaultCreatedAt = workflowDescCreatedAt.Default.(func() time.Time)
	// workflowDescUpdatedAt is the schema descriptor for updated_at field.
	workflowDescUpdatedAt := workflowFields[8].Descriptor()
	// workflow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflow.DefaultUpdatedAt = workflowDescUpdatedAt.Default.(func() time.Time)
	// workflow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflow.UpdateDefaultUpdatedAt = workflowDescUpdatedAt.UpdateDefault.(func() time.Time)
}
