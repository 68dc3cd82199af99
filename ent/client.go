// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/interacai/flowcore/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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
	"github.com/interacai/flowcore/ent/steptask"
	"github.com/interacai/flowcore/ent/tenant"
	"github.com/interacai/flowcore/ent/ticket"
	"github.com/interacai/flowcore/ent/user"
	"github.com/interacai/flowcore/ent/whatsappconfig"
	"github.com/interacai/flowcore/ent/workflow"
	"github.com/interacai/flowcore/ent/workflowedge"
	"github.com/interacai/flowcore/ent/workflownode"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Appointment is the client for interacting with the Appointment builders.
	Appointment *AppointmentClient
	// AppointmentType is the client for interacting with the AppointmentType builders.
	AppointmentType *AppointmentTypeClient
	// AvailabilityRule is the client for interacting with the AvailabilityRule builders.
	AvailabilityRule *AvailabilityRuleClient
	// BusinessSettings is the client for interacting with the BusinessSettings builders.
	BusinessSettings *BusinessSettingsClient
	// Conversation is the client for interacting with the Conversation builders.
	Conversation *ConversationClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Execution is the client for interacting with the Execution builders.
	Execution *ExecutionClient
	// ExecutionStep is the client for interacting with the ExecutionStep builders.
	ExecutionStep *ExecutionStepClient
	// KnowledgeDoc is the client for interacting with the KnowledgeDoc builders.
	KnowledgeDoc *KnowledgeDocClient
	// Lead is the client for interacting with the Lead builders.
	Lead *LeadClient
	// LeadActivity is the client for interacting with the LeadActivity builders.
	LeadActivity *LeadActivityClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// PromptExecution is the client for interacting with the PromptExecution builders.
	PromptExecution *PromptExecutionClient
	// StepTask is the client for interacting with the StepTask builders.
	StepTask *StepTaskClient
	// Tenant is the client for interacting with the Tenant builders.
	Tenant *TenantClient
	// Ticket is the client for interacting with the Ticket builders.
	Ticket *TicketClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// WhatsAppConfig is the client for interacting with the WhatsAppConfig builders.
	WhatsAppConfig *WhatsAppConfigClient
	// Workflow is the client for interacting with the Workflow builders.
	Workflow *WorkflowClient
	// WorkflowEdge is the client for interacting with the WorkflowEdge builders.
	WorkflowEdge *WorkflowEdgeClient
	// WorkflowNode is the client for interacting with the WorkflowNode builders.
	WorkflowNode *WorkflowNodeClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Appointment = NewAppointmentClient(c.config)
	c.AppointmentType = NewAppointmentTypeClient(c.config)
	c.AvailabilityRule = NewAvailabilityRuleClient(c.config)
	c.BusinessSettings = NewBusinessSettingsClient(c.config)
	c.Conversation = NewConversationClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Execution = NewExecutionClient(c.config)
	c.ExecutionStep = NewExecutionStepClient(c.config)
	c.KnowledgeDoc = NewKnowledgeDocClient(c.config)
	c.Lead = NewLeadClient(c.config)
	c.LeadActivity = NewLeadActivityClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.PromptExecution = NewPromptExecutionClient(c.config)
	c.StepTask = NewStepTaskClient(c.config)
	c.Tenant = NewTenantClient(c.config)
	c.Ticket = NewTicketClient(c.config)
	c.User = NewUserClient(c.config)
	c.WhatsAppConfig = NewWhatsAppConfigClient(c.config)
	c.Workflow = NewWorkflowClient(c.config)
	c.WorkflowEdge = NewWorkflowEdgeClient(c.config)
	c.WorkflowNode = NewWorkflowNodeClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Appointment:      NewAppointmentClient(cfg),
		AppointmentType:  NewAppointmentTypeClient(cfg),
		AvailabilityRule: NewAvailabilityRuleClient(cfg),
		BusinessSettings: NewBusinessSettingsClient(cfg),
		Conversation:     NewConversationClient(cfg),
		Event:            NewEventClient(cfg),
		Execution:        NewExecutionClient(cfg),
		ExecutionStep:    NewExecutionStepClient(cfg),
		KnowledgeDoc:     NewKnowledgeDocClient(cfg),
		Lead:             NewLeadClient(cfg),
		LeadActivity:     NewLeadActivityClient(cfg),
		Message:          NewMessageClient(cfg),
		PromptExecution:  NewPromptExecutionClient(cfg),
		StepTask:         NewStepTaskClient(cfg),
		Tenant:           NewTenantClient(cfg),
		Ticket:           NewTicketClient(cfg),
		User:             NewUserClient(cfg),
		WhatsAppConfig:   NewWhatsAppConfigClient(cfg),
		Workflow:         NewWorkflowClient(cfg),
		WorkflowEdge:     NewWorkflowEdgeClient(cfg),
		WorkflowNode:     NewWorkflowNodeClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Appointment:      NewAppointmentClient(cfg),
		AppointmentType:  NewAppointmentTypeClient(cfg),
		AvailabilityRule: NewAvailabilityRuleClient(cfg),
		BusinessSettings: NewBusinessSettingsClient(cfg),
		Conversation:     NewConversationClient(cfg),
		Event:            NewEventClient(cfg),
		Execution:        NewExecutionClient(cfg),
		ExecutionStep:    NewExecutionStepClient(cfg),
		KnowledgeDoc:     NewKnowledgeDocClient(cfg),
		Lead:             NewLeadClient(cfg),
		LeadActivity:     NewLeadActivityClient(cfg),
		Message:          NewMessageClient(cfg),
		PromptExecution:  NewPromptExecutionClient(cfg),
		StepTask:         NewStepTaskClient(cfg),
		Tenant:           NewTenantClient(cfg),
		Ticket:           NewTicketClient(cfg),
		User:             NewUserClient(cfg),
		WhatsAppConfig:   NewWhatsAppConfigClient(cfg),
		Workflow:         NewWorkflowClient(cfg),
		WorkflowEdge:     NewWorkflowEdgeClient(cfg),
		WorkflowNode:     NewWorkflowNodeClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Appointment.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Appointment, c.AppointmentType, c.AvailabilityRule, c.BusinessSettings,
		c.Conversation, c.Event, c.Execution, c.ExecutionStep, c.KnowledgeDoc, c.Lead,
		c.LeadActivity, c.Message, c.PromptExecution, c.StepTask, c.Tenant, c.Ticket,
		c.User, c.WhatsAppConfig, c.Workflow, c.WorkflowEdge, c.WorkflowNode,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Appointment, c.AppointmentType, c.AvailabilityRule, c.BusinessSettings,
		c.Conversation, c.Event, c.Execution, c.ExecutionStep, c.KnowledgeDoc, c.Lead,
		c.LeadActivity, c.Message, c.PromptExecution, c.StepTask, c.Tenant, c.Ticket,
		c.User, c.WhatsAppConfig, c.Workflow, c.WorkflowEdge, c.WorkflowNode,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AppointmentMutation:
		return c.Appointment.mutate(ctx, m)
	case *AppointmentTypeMutation:
		return c.AppointmentType.mutate(ctx, m)
	case *AvailabilityRuleMutation:
		return c.AvailabilityRule.mutate(ctx, m)
	case *BusinessSettingsMutation:
		return c.BusinessSettings.mutate(ctx, m)
	case *ConversationMutation:
		return c.Conversation.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *ExecutionMutation:
		return c.Execution.mutate(ctx, m)
	case *ExecutionStepMutation:
		return c.ExecutionStep.mutate(ctx, m)
	case *KnowledgeDocMutation:
		return c.KnowledgeDoc.mutate(ctx, m)
	case *LeadMutation:
		return c.Lead.mutate(ctx, m)
	case *LeadActivityMutation:
		return c.LeadActivity.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *PromptExecutionMutation:
		return c.PromptExecution.mutate(ctx, m)
	case *StepTaskMutation:
		return c.StepTask.mutate(ctx, m)
	case *TenantMutation:
		return c.Tenant.mutate(ctx, m)
	case *TicketMutation:
		return c.Ticket.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WhatsAppConfigMutation:
		return c.WhatsAppConfig.mutate(ctx, m)
	case *WorkflowMutation:
		return c.Workflow.mutate(ctx, m)
	case *WorkflowEdgeMutation:
		return c.WorkflowEdge.mutate(ctx, m)
	case *WorkflowNodeMutation:
		return c.WorkflowNode.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AppointmentClient is a client for the Appointment schema.
type AppointmentClient struct {
	config
}

// NewAppointmentClient returns a client for the Appointment from the given config.
func NewAppointmentClient(c config) *AppointmentClient {
	return &AppointmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointment.Hooks(f(g(h())))`.
func (c *AppointmentClient) Use(hooks ...Hook) {
	c.hooks.Appointment = append(c.hooks.Appointment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointment.Intercept(f(g(h())))`.
func (c *AppointmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Appointment = append(c.inters.Appointment, interceptors...)
}

// Create returns a builder for creating a Appointment entity.
func (c *AppointmentClient) Create() *AppointmentCreate {
	mutation := newAppointmentMutation(c.config, OpCreate)
	return &AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Appointment entities.
func (c *AppointmentClient) CreateBulk(builders ...*AppointmentCreate) *AppointmentCreateBulk {
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentClient) MapCreateBulk(slice any, setFunc func(*AppointmentCreate, int)) *AppointmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentCreateBulk{err: fmt.Errorf("calling to AppointmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Appointment.
func (c *AppointmentClient) Update() *AppointmentUpdate {
	mutation := newAppointmentMutation(c.config, OpUpdate)
	return &AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentClient) UpdateOne(_m *Appointment) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointment(_m))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentClient) UpdateOneID(id string) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointmentID(id))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Appointment.
func (c *AppointmentClient) Delete() *AppointmentDelete {
	mutation := newAppointmentMutation(c.config, OpDelete)
	return &AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentClient) DeleteOne(_m *Appointment) *AppointmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentClient) DeleteOneID(id string) *AppointmentDeleteOne {
	builder := c.Delete().Where(appointment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentDeleteOne{builder}
}

// Query returns a query builder for Appointment.
func (c *AppointmentClient) Query() *AppointmentQuery {
	return &AppointmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointment},
		inters: c.Interceptors(),
	}
}

// Get returns a Appointment entity by its id.
func (c *AppointmentClient) Get(ctx context.Context, id string) (*Appointment, error) {
	return c.Query().Where(appointment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentClient) GetX(ctx context.Context, id string) *Appointment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a Appointment.
func (c *AppointmentClient) QueryTenant(_m *Appointment) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointment.Table, appointment.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, appointment.TenantTable, appointment.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAppointmentType queries the appointment_type edge of a Appointment.
func (c *AppointmentClient) QueryAppointmentType(_m *Appointment) *AppointmentTypeQuery {
	query := (&AppointmentTypeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointment.Table, appointment.FieldID, id),
			sqlgraph.To(appointmenttype.Table, appointmenttype.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, appointment.AppointmentTypeTable, appointment.AppointmentTypeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLead queries the lead edge of a Appointment.
func (c *AppointmentClient) QueryLead(_m *Appointment) *LeadQuery {
	query := (&LeadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointment.Table, appointment.FieldID, id),
			sqlgraph.To(lead.Table, lead.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, appointment.LeadTable, appointment.LeadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AppointmentClient) Hooks() []Hook {
	return c.hooks.Appointment
}

// Interceptors returns the client interceptors.
func (c *AppointmentClient) Interceptors() []Interceptor {
	return c.inters.Appointment
}

func (c *AppointmentClient) mutate(ctx context.Context, m *AppointmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Appointment mutation op: %q", m.Op())
	}
}

// AppointmentTypeClient is a client for the AppointmentType schema.
type AppointmentTypeClient struct {
	config
}

// NewAppointmentTypeClient returns a client for the AppointmentType from the given config.
func NewAppointmentTypeClient(c config) *AppointmentTypeClient {
	return &AppointmentTypeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointmenttype.Hooks(f(g(h())))`.
func (c *AppointmentTypeClient) Use(hooks ...Hook) {
	c.hooks.AppointmentType = append(c.hooks.AppointmentType, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointmenttype.Intercept(f(g(h())))`.
func (c *AppointmentTypeClient) Intercept(interceptors ...Interceptor) {
	c.inters.AppointmentType = append(c.inters.AppointmentType, interceptors...)
}

// Create returns a builder for creating a AppointmentType entity.
func (c *AppointmentTypeClient) Create() *AppointmentTypeCreate {
	mutation := newAppointmentTypeMutation(c.config, OpCreate)
	return &AppointmentTypeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AppointmentType entities.
func (c *AppointmentTypeClient) CreateBulk(builders ...*AppointmentTypeCreate) *AppointmentTypeCreateBulk {
	return &AppointmentTypeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentTypeClient) MapCreateBulk(slice any, setFunc func(*AppointmentTypeCreate, int)) *AppointmentTypeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentTypeCreateBulk{err: fmt.Errorf("calling to AppointmentTypeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentTypeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentTypeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AppointmentType.
func (c *AppointmentTypeClient) Update() *AppointmentTypeUpdate {
	mutation := newAppointmentTypeMutation(c.config, OpUpdate)
	return &AppointmentTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentTypeClient) UpdateOne(_m *AppointmentType) *AppointmentTypeUpdateOne {
	mutation := newAppointmentTypeMutation(c.config, OpUpdateOne, withAppointmentType(_m))
	return &AppointmentTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentTypeClient) UpdateOneID(id string) *AppointmentTypeUpdateOne {
	mutation := newAppointmentTypeMutation(c.config, OpUpdateOne, withAppointmentTypeID(id))
	return &AppointmentTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AppointmentType.
func (c *AppointmentTypeClient) Delete() *AppointmentTypeDelete {
	mutation := newAppointmentTypeMutation(c.config, OpDelete)
	return &AppointmentTypeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentTypeClient) DeleteOne(_m *AppointmentType) *AppointmentTypeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentTypeClient) DeleteOneID(id string) *AppointmentTypeDeleteOne {
	builder := c.Delete().Where(appointmenttype.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentTypeDeleteOne{builder}
}

// Query returns a query builder for AppointmentType.
func (c *AppointmentTypeClient) Query() *AppointmentTypeQuery {
	return &AppointmentTypeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointmentType},
		inters: c.Interceptors(),
	}
}

// Get returns a AppointmentType entity by its id.
func (c *AppointmentTypeClient) Get(ctx context.Context, id string) (*AppointmentType, error) {
	return c.Query().Where(appointmenttype.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentTypeClient) GetX(ctx context.Context, id string) *AppointmentType {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a AppointmentType.
func (c *AppointmentTypeClient) QueryTenant(_m *AppointmentType) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointmenttype.Table, appointmenttype.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, appointmenttype.TenantTable, appointmenttype.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAppointments queries the appointments edge of a AppointmentType.
func (c *AppointmentTypeClient) QueryAppointments(_m *AppointmentType) *AppointmentQuery {
	query := (&AppointmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointmenttype.Table, appointmenttype.FieldID, id),
			sqlgraph.To(appointment.Table, appointment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, appointmenttype.AppointmentsTable, appointmenttype.AppointmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AppointmentTypeClient) Hooks() []Hook {
	return c.hooks.AppointmentType
}

// Interceptors returns the client interceptors.
func (c *AppointmentTypeClient) Interceptors() []Interceptor {
	return c.inters.AppointmentType
}

func (c *AppointmentTypeClient) mutate(ctx context.Context, m *AppointmentTypeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentTypeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentTypeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AppointmentType mutation op: %q", m.Op())
	}
}

// AvailabilityRuleClient is a client for the AvailabilityRule schema.
type AvailabilityRuleClient struct {
	config
}

// NewAvailabilityRuleClient returns a client for the AvailabilityRule from the given config.
func NewAvailabilityRuleClient(c config) *AvailabilityRuleClient {
	return &AvailabilityRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `availabilityrule.Hooks(f(g(h())))`.
func (c *AvailabilityRuleClient) Use(hooks ...Hook) {
	c.hooks.AvailabilityRule = append(c.hooks.AvailabilityRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `availabilityrule.Intercept(f(g(h())))`.
func (c *AvailabilityRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.AvailabilityRule = append(c.inters.AvailabilityRule, interceptors...)
}

// Create returns a builder for creating a AvailabilityRule entity.
func (c *AvailabilityRuleClient) Create() *AvailabilityRuleCreate {
	mutation := newAvailabilityRuleMutation(c.config, OpCreate)
	return &AvailabilityRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AvailabilityRule entities.
func (c *AvailabilityRuleClient) CreateBulk(builders ...*AvailabilityRuleCreate) *AvailabilityRuleCreateBulk {
	return &AvailabilityRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AvailabilityRuleClient) MapCreateBulk(slice any, setFunc func(*AvailabilityRuleCreate, int)) *AvailabilityRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AvailabilityRuleCreateBulk{err: fmt.Errorf("calling to AvailabilityRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AvailabilityRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AvailabilityRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AvailabilityRule.
func (c *AvailabilityRuleClient) Update() *AvailabilityRuleUpdate {
	mutation := newAvailabilityRuleMutation(c.config, OpUpdate)
	return &AvailabilityRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AvailabilityRuleClient) UpdateOne(_m *AvailabilityRule) *AvailabilityRuleUpdateOne {
	mutation := newAvailabilityRuleMutation(c.config, OpUpdateOne, withAvailabilityRule(_m))
	return &AvailabilityRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AvailabilityRuleClient) UpdateOneID(id string) *AvailabilityRuleUpdateOne {
	mutation := newAvailabilityRuleMutation(c.config, OpUpdateOne, withAvailabilityRuleID(id))
	return &AvailabilityRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AvailabilityRule.
func (c *AvailabilityRuleClient) Delete() *AvailabilityRuleDelete {
	mutation := newAvailabilityRuleMutation(c.config, OpDelete)
	return &AvailabilityRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AvailabilityRuleClient) DeleteOne(_m *AvailabilityRule) *AvailabilityRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AvailabilityRuleClient) DeleteOneID(id string) *AvailabilityRuleDeleteOne {
	builder := c.Delete().Where(availabilityrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AvailabilityRuleDeleteOne{builder}
}

// Query returns a query builder for AvailabilityRule.
func (c *AvailabilityRuleClient) Query() *AvailabilityRuleQuery {
	return &AvailabilityRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAvailabilityRule},
		inters: c.Interceptors(),
	}
}

// Get returns a AvailabilityRule entity by its id.
func (c *AvailabilityRuleClient) Get(ctx context.Context, id string) (*AvailabilityRule, error) {
	return c.Query().Where(availabilityrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AvailabilityRuleClient) GetX(ctx context.Context, id string) *AvailabilityRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a AvailabilityRule.
func (c *AvailabilityRuleClient) QueryTenant(_m *AvailabilityRule) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(availabilityrule.Table, availabilityrule.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, availabilityrule.TenantTable, availabilityrule.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AvailabilityRuleClient) Hooks() []Hook {
	return c.hooks.AvailabilityRule
}

// Interceptors returns the client interceptors.
func (c *AvailabilityRuleClient) Interceptors() []Interceptor {
	return c.inters.AvailabilityRule
}

func (c *AvailabilityRuleClient) mutate(ctx context.Context, m *AvailabilityRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AvailabilityRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AvailabilityRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AvailabilityRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AvailabilityRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AvailabilityRule mutation op: %q", m.Op())
	}
}

// BusinessSettingsClient is a client for the BusinessSettings schema.
type BusinessSettingsClient struct {
	config
}

// NewBusinessSettingsClient returns a client for the BusinessSettings from the given config.
func NewBusinessSettingsClient(c config) *BusinessSettingsClient {
	return &BusinessSettingsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `businesssettings.Hooks(f(g(h())))`.
func (c *BusinessSettingsClient) Use(hooks ...Hook) {
	c.hooks.BusinessSettings = append(c.hooks.BusinessSettings, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `businesssettings.Intercept(f(g(h())))`.
func (c *BusinessSettingsClient) Intercept(interceptors ...Interceptor) {
	c.inters.BusinessSettings = append(c.inters.BusinessSettings, interceptors...)
}

// Create returns a builder for creating a BusinessSettings entity.
func (c *BusinessSettingsClient) Create() *BusinessSettingsCreate {
	mutation := newBusinessSettingsMutation(c.config, OpCreate)
	return &BusinessSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BusinessSettings entities.
func (c *BusinessSettingsClient) CreateBulk(builders ...*BusinessSettingsCreate) *BusinessSettingsCreateBulk {
	return &BusinessSettingsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusinessSettingsClient) MapCreateBulk(slice any, setFunc func(*BusinessSettingsCreate, int)) *BusinessSettingsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusinessSettingsCreateBulk{err: fmt.Errorf("calling to BusinessSettingsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusinessSettingsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusinessSettingsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BusinessSettings.
func (c *BusinessSettingsClient) Update() *BusinessSettingsUpdate {
	mutation := newBusinessSettingsMutation(c.config, OpUpdate)
	return &BusinessSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusinessSettingsClient) UpdateOne(_m *BusinessSettings) *BusinessSettingsUpdateOne {
	mutation := newBusinessSettingsMutation(c.config, OpUpdateOne, withBusinessSettings(_m))
	return &BusinessSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusinessSettingsClient) UpdateOneID(id string) *BusinessSettingsUpdateOne {
	mutation := newBusinessSettingsMutation(c.config, OpUpdateOne, withBusinessSettingsID(id))
	return &BusinessSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BusinessSettings.
func (c *BusinessSettingsClient) Delete() *BusinessSettingsDelete {
	mutation := newBusinessSettingsMutation(c.config, OpDelete)
	return &BusinessSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusinessSettingsClient) DeleteOne(_m *BusinessSettings) *BusinessSettingsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusinessSettingsClient) DeleteOneID(id string) *BusinessSettingsDeleteOne {
	builder := c.Delete().Where(businesssettings.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusinessSettingsDeleteOne{builder}
}

// Query returns a query builder for BusinessSettings.
func (c *BusinessSettingsClient) Query() *BusinessSettingsQuery {
	return &BusinessSettingsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusinessSettings},
		inters: c.Interceptors(),
	}
}

// Get returns a BusinessSettings entity by its id.
func (c *BusinessSettingsClient) Get(ctx context.Context, id string) (*BusinessSettings, error) {
	return c.Query().Where(businesssettings.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusinessSettingsClient) GetX(ctx context.Context, id string) *BusinessSettings {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a BusinessSettings.
func (c *BusinessSettingsClient) QueryTenant(_m *BusinessSettings) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(businesssettings.Table, businesssettings.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, businesssettings.TenantTable, businesssettings.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BusinessSettingsClient) Hooks() []Hook {
	return c.hooks.BusinessSettings
}

// Interceptors returns the client interceptors.
func (c *BusinessSettingsClient) Interceptors() []Interceptor {
	return c.inters.BusinessSettings
}

func (c *BusinessSettingsClient) mutate(ctx context.Context, m *BusinessSettingsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusinessSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusinessSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusinessSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusinessSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BusinessSettings mutation op: %q", m.Op())
	}
}

// ConversationClient is a client for the Conversation schema.
type ConversationClient struct {
	config
}

// NewConversationClient returns a client for the Conversation from the given config.
func NewConversationClient(c config) *ConversationClient {
	return &ConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversation.Hooks(f(g(h())))`.
func (c *ConversationClient) Use(hooks ...Hook) {
	c.hooks.Conversation = append(c.hooks.Conversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversation.Intercept(f(g(h())))`.
func (c *ConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversation = append(c.inters.Conversation, interceptors...)
}

// Create returns a builder for creating a Conversation entity.
func (c *ConversationClient) Create() *ConversationCreate {
	mutation := newConversationMutation(c.config, OpCreate)
	return &ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversation entities.
func (c *ConversationClient) CreateBulk(builders ...*ConversationCreate) *ConversationCreateBulk {
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationClient) MapCreateBulk(slice any, setFunc func(*ConversationCreate, int)) *ConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationCreateBulk{err: fmt.Errorf("calling to ConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversation.
func (c *ConversationClient) Update() *ConversationUpdate {
	mutation := newConversationMutation(c.config, OpUpdate)
	return &ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationClient) UpdateOne(_m *Conversation) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversation(_m))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationClient) UpdateOneID(id string) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversationID(id))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversation.
func (c *ConversationClient) Delete() *ConversationDelete {
	mutation := newConversationMutation(c.config, OpDelete)
	return &ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationClient) DeleteOne(_m *Conversation) *ConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationClient) DeleteOneID(id string) *ConversationDeleteOne {
	builder := c.Delete().Where(conversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationDeleteOne{builder}
}

// Query returns a query builder for Conversation.
func (c *ConversationClient) Query() *ConversationQuery {
	return &ConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversation entity by its id.
func (c *ConversationClient) Get(ctx context.Context, id string) (*Conversation, error) {
	return c.Query().Where(conversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationClient) GetX(ctx context.Context, id string) *Conversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a Conversation.
func (c *ConversationClient) QueryTenant(_m *Conversation) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversation.TenantTable, conversation.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Conversation.
func (c *ConversationClient) QueryMessages(_m *Conversation) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversation.MessagesTable, conversation.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationClient) Hooks() []Hook {
	return c.hooks.Conversation
}

// Interceptors returns the client interceptors.
func (c *ConversationClient) Interceptors() []Interceptor {
	return c.inters.Conversation
}

func (c *ConversationClient) mutate(ctx context.Context, m *ConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Conversation mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// ExecutionClient is a client for the Execution schema.
type ExecutionClient struct {
	config
}

// NewExecutionClient returns a client for the Execution from the given config.
func NewExecutionClient(c config) *ExecutionClient {
	return &ExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `execution.Hooks(f(g(h())))`.
func (c *ExecutionClient) Use(hooks ...Hook) {
	c.hooks.Execution = append(c.hooks.Execution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `execution.Intercept(f(g(h())))`.
func (c *ExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Execution = append(c.inters.Execution, interceptors...)
}

// Create returns a builder for creating a Execution entity.
func (c *ExecutionClient) Create() *ExecutionCreate {
	mutation := newExecutionMutation(c.config, OpCreate)
	return &ExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Execution entities.
func (c *ExecutionClient) CreateBulk(builders ...*ExecutionCreate) *ExecutionCreateBulk {
	return &ExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionClient) MapCreateBulk(slice any, setFunc func(*ExecutionCreate, int)) *ExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionCreateBulk{err: fmt.Errorf("calling to ExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Execution.
func (c *ExecutionClient) Update() *ExecutionUpdate {
	mutation := newExecutionMutation(c.config, OpUpdate)
	return &ExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionClient) UpdateOne(_m *Execution) *ExecutionUpdateOne {
	mutation := newExecutionMutation(c.config, OpUpdateOne, withExecution(_m))
	return &ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionClient) UpdateOneID(id string) *ExecutionUpdateOne {
	mutation := newExecutionMutation(c.config, OpUpdateOne, withExecutionID(id))
	return &ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Execution.
func (c *ExecutionClient) Delete() *ExecutionDelete {
	mutation := newExecutionMutation(c.config, OpDelete)
	return &ExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionClient) DeleteOne(_m *Execution) *ExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionClient) DeleteOneID(id string) *ExecutionDeleteOne {
	builder := c.Delete().Where(execution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionDeleteOne{builder}
}

// Query returns a query builder for Execution.
func (c *ExecutionClient) Query() *ExecutionQuery {
	return &ExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a Execution entity by its id.
func (c *ExecutionClient) Get(ctx context.Context, id string) (*Execution, error) {
	return c.Query().Where(execution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionClient) GetX(ctx context.Context, id string) *Execution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a Execution.
func (c *ExecutionClient) QueryWorkflow(_m *Execution) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(execution.Table, execution.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, execution.WorkflowTable, execution.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTenant queries the tenant edge of a Execution.
func (c *ExecutionClient) QueryTenant(_m *Execution) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(execution.Table, execution.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, execution.TenantTable, execution.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySteps queries the steps edge of a Execution.
func (c *ExecutionClient) QuerySteps(_m *Execution) *ExecutionStepQuery {
	query := (&ExecutionStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(execution.Table, execution.FieldID, id),
			sqlgraph.To(executionstep.Table, executionstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, execution.StepsTable, execution.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTasks queries the tasks edge of a Execution.
func (c *ExecutionClient) QueryTasks(_m *Execution) *StepTaskQuery {
	query := (&StepTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(execution.Table, execution.FieldID, id),
			sqlgraph.To(steptask.Table, steptask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, execution.TasksTable, execution.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionClient) Hooks() []Hook {
	return c.hooks.Execution
}

// Interceptors returns the client interceptors.
func (c *ExecutionClient) Interceptors() []Interceptor {
	return c.inters.Execution
}

func (c *ExecutionClient) mutate(ctx context.Context, m *ExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Execution mutation op: %q", m.Op())
	}
}

// ExecutionStepClient is a client for the ExecutionStep schema.
type ExecutionStepClient struct {
	config
}

// NewExecutionStepClient returns a client for the ExecutionStep from the given config.
func NewExecutionStepClient(c config) *ExecutionStepClient {
	return &ExecutionStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executionstep.Hooks(f(g(h())))`.
func (c *ExecutionStepClient) Use(hooks ...Hook) {
	c.hooks.ExecutionStep = append(c.hooks.ExecutionStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executionstep.Intercept(f(g(h())))`.
func (c *ExecutionStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionStep = append(c.inters.ExecutionStep, interceptors...)
}

// Create returns a builder for creating a ExecutionStep entity.
func (c *ExecutionStepClient) Create() *ExecutionStepCreate {
	mutation := newExecutionStepMutation(c.config, OpCreate)
	return &ExecutionStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionStep entities.
func (c *ExecutionStepClient) CreateBulk(builders ...*ExecutionStepCreate) *ExecutionStepCreateBulk {
	return &ExecutionStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionStepClient) MapCreateBulk(slice any, setFunc func(*ExecutionStepCreate, int)) *ExecutionStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionStepCreateBulk{err: fmt.Errorf("calling to ExecutionStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionStep.
func (c *ExecutionStepClient) Update() *ExecutionStepUpdate {
	mutation := newExecutionStepMutation(c.config, OpUpdate)
	return &ExecutionStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionStepClient) UpdateOne(_m *ExecutionStep) *ExecutionStepUpdateOne {
	mutation := newExecutionStepMutation(c.config, OpUpdateOne, withExecutionStep(_m))
	return &ExecutionStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionStepClient) UpdateOneID(id string) *ExecutionStepUpdateOne {
	mutation := newExecutionStepMutation(c.config, OpUpdateOne, withExecutionStepID(id))
	return &ExecutionStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionStep.
func (c *ExecutionStepClient) Delete() *ExecutionStepDelete {
	mutation := newExecutionStepMutation(c.config, OpDelete)
	return &ExecutionStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionStepClient) DeleteOne(_m *ExecutionStep) *ExecutionStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionStepClient) DeleteOneID(id string) *ExecutionStepDeleteOne {
	builder := c.Delete().Where(executionstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionStepDeleteOne{builder}
}

// Query returns a query builder for ExecutionStep.
func (c *ExecutionStepClient) Query() *ExecutionStepQuery {
	return &ExecutionStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionStep},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionStep entity by its id.
func (c *ExecutionStepClient) Get(ctx context.Context, id string) (*ExecutionStep, error) {
	return c.Query().Where(executionstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionStepClient) GetX(ctx context.Context, id string) *ExecutionStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a ExecutionStep.
func (c *ExecutionStepClient) QueryExecution(_m *ExecutionStep) *ExecutionQuery {
	query := (&ExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executionstep.Table, executionstep.FieldID, id),
			sqlgraph.To(execution.Table, execution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionstep.ExecutionTable, executionstep.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionStepClient) Hooks() []Hook {
	return c.hooks.ExecutionStep
}

// Interceptors returns the client interceptors.
func (c *ExecutionStepClient) Interceptors() []Interceptor {
	return c.inters.ExecutionStep
}

func (c *ExecutionStepClient) mutate(ctx context.Context, m *ExecutionStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionStep mutation op: %q", m.Op())
	}
}

// KnowledgeDocClient is a client for the KnowledgeDoc schema.
type KnowledgeDocClient struct {
	config
}

// NewKnowledgeDocClient returns a client for the KnowledgeDoc from the given config.
func NewKnowledgeDocClient(c config) *KnowledgeDocClient {
	return &KnowledgeDocClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledgedoc.Hooks(f(g(h())))`.
func (c *KnowledgeDocClient) Use(hooks ...Hook) {
	c.hooks.KnowledgeDoc = append(c.hooks.KnowledgeDoc, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledgedoc.Intercept(f(g(h())))`.
func (c *KnowledgeDocClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnowledgeDoc = append(c.inters.KnowledgeDoc, interceptors...)
}

// Create returns a builder for creating a KnowledgeDoc entity.
func (c *KnowledgeDocClient) Create() *KnowledgeDocCreate {
	mutation := newKnowledgeDocMutation(c.config, OpCreate)
	return &KnowledgeDocCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnowledgeDoc entities.
func (c *KnowledgeDocClient) CreateBulk(builders ...*KnowledgeDocCreate) *KnowledgeDocCreateBulk {
	return &KnowledgeDocCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeDocClient) MapCreateBulk(slice any, setFunc func(*KnowledgeDocCreate, int)) *KnowledgeDocCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeDocCreateBulk{err: fmt.Errorf("calling to KnowledgeDocClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeDocCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeDocCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnowledgeDoc.
func (c *KnowledgeDocClient) Update() *KnowledgeDocUpdate {
	mutation := newKnowledgeDocMutation(c.config, OpUpdate)
	return &KnowledgeDocUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeDocClient) UpdateOne(_m *KnowledgeDoc) *KnowledgeDocUpdateOne {
	mutation := newKnowledgeDocMutation(c.config, OpUpdateOne, withKnowledgeDoc(_m))
	return &KnowledgeDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeDocClient) UpdateOneID(id string) *KnowledgeDocUpdateOne {
	mutation := newKnowledgeDocMutation(c.config, OpUpdateOne, withKnowledgeDocID(id))
	return &KnowledgeDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnowledgeDoc.
func (c *KnowledgeDocClient) Delete() *KnowledgeDocDelete {
	mutation := newKnowledgeDocMutation(c.config, OpDelete)
	return &KnowledgeDocDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeDocClient) DeleteOne(_m *KnowledgeDoc) *KnowledgeDocDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeDocClient) DeleteOneID(id string) *KnowledgeDocDeleteOne {
	builder := c.Delete().Where(knowledgedoc.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeDocDeleteOne{builder}
}

// Query returns a query builder for KnowledgeDoc.
func (c *KnowledgeDocClient) Query() *KnowledgeDocQuery {
	return &KnowledgeDocQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledgeDoc},
		inters: c.Interceptors(),
	}
}

// Get returns a KnowledgeDoc entity by its id.
func (c *KnowledgeDocClient) Get(ctx context.Context, id string) (*KnowledgeDoc, error) {
	return c.Query().Where(knowledgedoc.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeDocClient) GetX(ctx context.Context, id string) *KnowledgeDoc {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a KnowledgeDoc.
func (c *KnowledgeDocClient) QueryTenant(_m *KnowledgeDoc) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgedoc.Table, knowledgedoc.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, knowledgedoc.TenantTable, knowledgedoc.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KnowledgeDocClient) Hooks() []Hook {
	return c.hooks.KnowledgeDoc
}

// Interceptors returns the client interceptors.
func (c *KnowledgeDocClient) Interceptors() []Interceptor {
	return c.inters.KnowledgeDoc
}

func (c *KnowledgeDocClient) mutate(ctx context.Context, m *KnowledgeDocMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeDocCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeDocUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeDocDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnowledgeDoc mutation op: %q", m.Op())
	}
}

// LeadClient is a client for the Lead schema.
type LeadClient struct {
	config
}

// NewLeadClient returns a client for the Lead from the given config.
func NewLeadClient(c config) *LeadClient {
	return &LeadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lead.Hooks(f(g(h())))`.
func (c *LeadClient) Use(hooks ...Hook) {
	c.hooks.Lead = append(c.hooks.Lead, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lead.Intercept(f(g(h())))`.
func (c *LeadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lead = append(c.inters.Lead, interceptors...)
}

// Create returns a builder for creating a Lead entity.
func (c *LeadClient) Create() *LeadCreate {
	mutation := newLeadMutation(c.config, OpCreate)
	return &LeadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lead entities.
func (c *LeadClient) CreateBulk(builders ...*LeadCreate) *LeadCreateBulk {
	return &LeadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeadClient) MapCreateBulk(slice any, setFunc func(*LeadCreate, int)) *LeadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeadCreateBulk{err: fmt.Errorf("calling to LeadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lead.
func (c *LeadClient) Update() *LeadUpdate {
	mutation := newLeadMutation(c.config, OpUpdate)
	return &LeadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeadClient) UpdateOne(_m *Lead) *LeadUpdateOne {
	mutation := newLeadMutation(c.config, OpUpdateOne, withLead(_m))
	return &LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeadClient) UpdateOneID(id string) *LeadUpdateOne {
	mutation := newLeadMutation(c.config, OpUpdateOne, withLeadID(id))
	return &LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lead.
func (c *LeadClient) Delete() *LeadDelete {
	mutation := newLeadMutation(c.config, OpDelete)
	return &LeadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeadClient) DeleteOne(_m *Lead) *LeadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeadClient) DeleteOneID(id string) *LeadDeleteOne {
	builder := c.Delete().Where(lead.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeadDeleteOne{builder}
}

// Query returns a query builder for Lead.
func (c *LeadClient) Query() *LeadQuery {
	return &LeadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLead},
		inters: c.Interceptors(),
	}
}

// Get returns a Lead entity by its id.
func (c *LeadClient) Get(ctx context.Context, id string) (*Lead, error) {
	return c.Query().Where(lead.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeadClient) GetX(ctx context.Context, id string) *Lead {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a Lead.
func (c *LeadClient) QueryTenant(_m *Lead) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lead.Table, lead.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, lead.TenantTable, lead.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryActivities queries the activities edge of a Lead.
func (c *LeadClient) QueryActivities(_m *Lead) *LeadActivityQuery {
	query := (&LeadActivityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lead.Table, lead.FieldID, id),
			sqlgraph.To(leadactivity.Table, leadactivity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lead.ActivitiesTable, lead.ActivitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAppointments queries the appointments edge of a Lead.
func (c *LeadClient) QueryAppointments(_m *Lead) *AppointmentQuery {
	query := (&AppointmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lead.Table, lead.FieldID, id),
			sqlgraph.To(appointment.Table, appointment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lead.AppointmentsTable, lead.AppointmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LeadClient) Hooks() []Hook {
	return c.hooks.Lead
}

// Interceptors returns the client interceptors.
func (c *LeadClient) Interceptors() []Interceptor {
	return c.inters.Lead
}

func (c *LeadClient) mutate(ctx context.Context, m *LeadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lead mutation op: %q", m.Op())
	}
}

// LeadActivityClient is a client for the LeadActivity schema.
type LeadActivityClient struct {
	config
}

// NewLeadActivityClient returns a client for the LeadActivity from the given config.
func NewLeadActivityClient(c config) *LeadActivityClient {
	return &LeadActivityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `leadactivity.Hooks(f(g(h())))`.
func (c *LeadActivityClient) Use(hooks ...Hook) {
	c.hooks.LeadActivity = append(c.hooks.LeadActivity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `leadactivity.Intercept(f(g(h())))`.
func (c *LeadActivityClient) Intercept(interceptors ...Interceptor) {
	c.inters.LeadActivity = append(c.inters.LeadActivity, interceptors...)
}

// Create returns a builder for creating a LeadActivity entity.
func (c *LeadActivityClient) Create() *LeadActivityCreate {
	mutation := newLeadActivityMutation(c.config, OpCreate)
	return &LeadActivityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LeadActivity entities.
func (c *LeadActivityClient) CreateBulk(builders ...*LeadActivityCreate) *LeadActivityCreateBulk {
	return &LeadActivityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeadActivityClient) MapCreateBulk(slice any, setFunc func(*LeadActivityCreate, int)) *LeadActivityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeadActivityCreateBulk{err: fmt.Errorf("calling to LeadActivityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeadActivityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeadActivityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LeadActivity.
func (c *LeadActivityClient) Update() *LeadActivityUpdate {
	mutation := newLeadActivityMutation(c.config, OpUpdate)
	return &LeadActivityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeadActivityClient) UpdateOne(_m *LeadActivity) *LeadActivityUpdateOne {
	mutation := newLeadActivityMutation(c.config, OpUpdateOne, withLeadActivity(_m))
	return &LeadActivityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeadActivityClient) UpdateOneID(id string) *LeadActivityUpdateOne {
	mutation := newLeadActivityMutation(c.config, OpUpdateOne, withLeadActivityID(id))
	return &LeadActivityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LeadActivity.
func (c *LeadActivityClient) Delete() *LeadActivityDelete {
	mutation := newLeadActivityMutation(c.config, OpDelete)
	return &LeadActivityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeadActivityClient) DeleteOne(_m *LeadActivity) *LeadActivityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeadActivityClient) DeleteOneID(id string) *LeadActivityDeleteOne {
	builder := c.Delete().Where(leadactivity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeadActivityDeleteOne{builder}
}

// Query returns a query builder for LeadActivity.
func (c *LeadActivityClient) Query() *LeadActivityQuery {
	return &LeadActivityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLeadActivity},
		inters: c.Interceptors(),
	}
}

// Get returns a LeadActivity entity by its id.
func (c *LeadActivityClient) Get(ctx context.Context, id string) (*LeadActivity, error) {
	return c.Query().Where(leadactivity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeadActivityClient) GetX(ctx context.Context, id string) *LeadActivity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLead queries the lead edge of a LeadActivity.
func (c *LeadActivityClient) QueryLead(_m *LeadActivity) *LeadQuery {
	query := (&LeadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(leadactivity.Table, leadactivity.FieldID, id),
			sqlgraph.To(lead.Table, lead.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, leadactivity.LeadTable, leadactivity.LeadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LeadActivityClient) Hooks() []Hook {
	return c.hooks.LeadActivity
}

// Interceptors returns the client interceptors.
func (c *LeadActivityClient) Interceptors() []Interceptor {
	return c.inters.LeadActivity
}

func (c *LeadActivityClient) mutate(ctx context.Context, m *LeadActivityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeadActivityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeadActivityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeadActivityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeadActivityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LeadActivity mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id string) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id string) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id string) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id string) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a Message.
func (c *MessageClient) QueryConversation(_m *Message) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.ConversationTable, message.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// PromptExecutionClient is a client for the PromptExecution schema.
type PromptExecutionClient struct {
	config
}

// NewPromptExecutionClient returns a client for the PromptExecution from the given config.
func NewPromptExecutionClient(c config) *PromptExecutionClient {
	return &PromptExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `promptexecution.Hooks(f(g(h())))`.
func (c *PromptExecutionClient) Use(hooks ...Hook) {
	c.hooks.PromptExecution = append(c.hooks.PromptExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `promptexecution.Intercept(f(g(h())))`.
func (c *PromptExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptExecution = append(c.inters.PromptExecution, interceptors...)
}

// Create returns a builder for creating a PromptExecution entity.
func (c *PromptExecutionClient) Create() *PromptExecutionCreate {
	mutation := newPromptExecutionMutation(c.config, OpCreate)
	return &PromptExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptExecution entities.
func (c *PromptExecutionClient) CreateBulk(builders ...*PromptExecutionCreate) *PromptExecutionCreateBulk {
	return &PromptExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptExecutionClient) MapCreateBulk(slice any, setFunc func(*PromptExecutionCreate, int)) *PromptExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptExecutionCreateBulk{err: fmt.Errorf("calling to PromptExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptExecution.
func (c *PromptExecutionClient) Update() *PromptExecutionUpdate {
	mutation := newPromptExecutionMutation(c.config, OpUpdate)
	return &PromptExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptExecutionClient) UpdateOne(_m *PromptExecution) *PromptExecutionUpdateOne {
	mutation := newPromptExecutionMutation(c.config, OpUpdateOne, withPromptExecution(_m))
	return &PromptExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptExecutionClient) UpdateOneID(id string) *PromptExecutionUpdateOne {
	mutation := newPromptExecutionMutation(c.config, OpUpdateOne, withPromptExecutionID(id))
	return &PromptExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptExecution.
func (c *PromptExecutionClient) Delete() *PromptExecutionDelete {
	mutation := newPromptExecutionMutation(c.config, OpDelete)
	return &PromptExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptExecutionClient) DeleteOne(_m *PromptExecution) *PromptExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptExecutionClient) DeleteOneID(id string) *PromptExecutionDeleteOne {
	builder := c.Delete().Where(promptexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptExecutionDeleteOne{builder}
}

// Query returns a query builder for PromptExecution.
func (c *PromptExecutionClient) Query() *PromptExecutionQuery {
	return &PromptExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptExecution entity by its id.
func (c *PromptExecutionClient) Get(ctx context.Context, id string) (*PromptExecution, error) {
	return c.Query().Where(promptexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptExecutionClient) GetX(ctx context.Context, id string) *PromptExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a PromptExecution.
func (c *PromptExecutionClient) QueryTenant(_m *PromptExecution) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(promptexecution.Table, promptexecution.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, promptexecution.TenantTable, promptexecution.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PromptExecutionClient) Hooks() []Hook {
	return c.hooks.PromptExecution
}

// Interceptors returns the client interceptors.
func (c *PromptExecutionClient) Interceptors() []Interceptor {
	return c.inters.PromptExecution
}

func (c *PromptExecutionClient) mutate(ctx context.Context, m *PromptExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptExecution mutation op: %q", m.Op())
	}
}

// StepTaskClient is a client for the StepTask schema.
type StepTaskClient struct {
	config
}

// NewStepTaskClient returns a client for the StepTask from the given config.
func NewStepTaskClient(c config) *StepTaskClient {
	return &StepTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `steptask.Hooks(f(g(h())))`.
func (c *StepTaskClient) Use(hooks ...Hook) {
	c.hooks.StepTask = append(c.hooks.StepTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `steptask.Intercept(f(g(h())))`.
func (c *StepTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepTask = append(c.inters.StepTask, interceptors...)
}

// Create returns a builder for creating a StepTask entity.
func (c *StepTaskClient) Create() *StepTaskCreate {
	mutation := newStepTaskMutation(c.config, OpCreate)
	return &StepTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepTask entities.
func (c *StepTaskClient) CreateBulk(builders ...*StepTaskCreate) *StepTaskCreateBulk {
	return &StepTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepTaskClient) MapCreateBulk(slice any, setFunc func(*StepTaskCreate, int)) *StepTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepTaskCreateBulk{err: fmt.Errorf("calling to StepTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepTask.
func (c *StepTaskClient) Update() *StepTaskUpdate {
	mutation := newStepTaskMutation(c.config, OpUpdate)
	return &StepTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepTaskClient) UpdateOne(_m *StepTask) *StepTaskUpdateOne {
	mutation := newStepTaskMutation(c.config, OpUpdateOne, withStepTask(_m))
	return &StepTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepTaskClient) UpdateOneID(id string) *StepTaskUpdateOne {
	mutation := newStepTaskMutation(c.config, OpUpdateOne, withStepTaskID(id))
	return &StepTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepTask.
func (c *StepTaskClient) Delete() *StepTaskDelete {
	mutation := newStepTaskMutation(c.config, OpDelete)
	return &StepTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepTaskClient) DeleteOne(_m *StepTask) *StepTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepTaskClient) DeleteOneID(id string) *StepTaskDeleteOne {
	builder := c.Delete().Where(steptask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepTaskDeleteOne{builder}
}

// Query returns a query builder for StepTask.
func (c *StepTaskClient) Query() *StepTaskQuery {
	return &StepTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepTask},
		inters: c.Interceptors(),
	}
}

// Get returns a StepTask entity by its id.
func (c *StepTaskClient) Get(ctx context.Context, id string) (*StepTask, error) {
	return c.Query().Where(steptask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepTaskClient) GetX(ctx context.Context, id string) *StepTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a StepTask.
func (c *StepTaskClient) QueryExecution(_m *StepTask) *ExecutionQuery {
	query := (&ExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(steptask.Table, steptask.FieldID, id),
			sqlgraph.To(execution.Table, execution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, steptask.ExecutionTable, steptask.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepTaskClient) Hooks() []Hook {
	return c.hooks.StepTask
}

// Interceptors returns the client interceptors.
func (c *StepTaskClient) Interceptors() []Interceptor {
	return c.inters.StepTask
}

func (c *StepTaskClient) mutate(ctx context.Context, m *StepTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepTask mutation op: %q", m.Op())
	}
}

// TenantClient is a client for the Tenant schema.
type TenantClient struct {
	config
}

// NewTenantClient returns a client for the Tenant from the given config.
func NewTenantClient(c config) *TenantClient {
	return &TenantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tenant.Hooks(f(g(h())))`.
func (c *TenantClient) Use(hooks ...Hook) {
	c.hooks.Tenant = append(c.hooks.Tenant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tenant.Intercept(f(g(h())))`.
func (c *TenantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tenant = append(c.inters.Tenant, interceptors...)
}

// Create returns a builder for creating a Tenant entity.
func (c *TenantClient) Create() *TenantCreate {
	mutation := newTenantMutation(c.config, OpCreate)
	return &TenantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tenant entities.
func (c *TenantClient) CreateBulk(builders ...*TenantCreate) *TenantCreateBulk {
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TenantClient) MapCreateBulk(slice any, setFunc func(*TenantCreate, int)) *TenantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TenantCreateBulk{err: fmt.Errorf("calling to TenantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TenantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tenant.
func (c *TenantClient) Update() *TenantUpdate {
	mutation := newTenantMutation(c.config, OpUpdate)
	return &TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TenantClient) UpdateOne(_m *Tenant) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenant(_m))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TenantClient) UpdateOneID(id string) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenantID(id))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tenant.
func (c *TenantClient) Delete() *TenantDelete {
	mutation := newTenantMutation(c.config, OpDelete)
	return &TenantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TenantClient) DeleteOne(_m *Tenant) *TenantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TenantClient) DeleteOneID(id string) *TenantDeleteOne {
	builder := c.Delete().Where(tenant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TenantDeleteOne{builder}
}

// Query returns a query builder for Tenant.
func (c *TenantClient) Query() *TenantQuery {
	return &TenantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTenant},
		inters: c.Interceptors(),
	}
}

// Get returns a Tenant entity by its id.
func (c *TenantClient) Get(ctx context.Context, id string) (*Tenant, error) {
	return c.Query().Where(tenant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TenantClient) GetX(ctx context.Context, id string) *Tenant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUsers queries the users edge of a Tenant.
func (c *TenantClient) QueryUsers(_m *Tenant) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.UsersTable, tenant.UsersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySettings queries the settings edge of a Tenant.
func (c *TenantClient) QuerySettings(_m *Tenant) *BusinessSettingsQuery {
	query := (&BusinessSettingsClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(businesssettings.Table, businesssettings.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, tenant.SettingsTable, tenant.SettingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryKnowledgeDocs queries the knowledge_docs edge of a Tenant.
func (c *TenantClient) QueryKnowledgeDocs(_m *Tenant) *KnowledgeDocQuery {
	query := (&KnowledgeDocClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(knowledgedoc.Table, knowledgedoc.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.KnowledgeDocsTable, tenant.KnowledgeDocsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWhatsappConfig queries the whatsapp_config edge of a Tenant.
func (c *TenantClient) QueryWhatsappConfig(_m *Tenant) *WhatsAppConfigQuery {
	query := (&WhatsAppConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(whatsappconfig.Table, whatsappconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, tenant.WhatsappConfigTable, tenant.WhatsappConfigColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConversations queries the conversations edge of a Tenant.
func (c *TenantClient) QueryConversations(_m *Tenant) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.ConversationsTable, tenant.ConversationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkflows queries the workflows edge of a Tenant.
func (c *TenantClient) QueryWorkflows(_m *Tenant) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.WorkflowsTable, tenant.WorkflowsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutions queries the executions edge of a Tenant.
func (c *TenantClient) QueryExecutions(_m *Tenant) *ExecutionQuery {
	query := (&ExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(execution.Table, execution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.ExecutionsTable, tenant.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLeads queries the leads edge of a Tenant.
func (c *TenantClient) QueryLeads(_m *Tenant) *LeadQuery {
	query := (&LeadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(lead.Table, lead.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.LeadsTable, tenant.LeadsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTickets queries the tickets edge of a Tenant.
func (c *TenantClient) QueryTickets(_m *Tenant) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.TicketsTable, tenant.TicketsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAppointmentTypes queries the appointment_types edge of a Tenant.
func (c *TenantClient) QueryAppointmentTypes(_m *Tenant) *AppointmentTypeQuery {
	query := (&AppointmentTypeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(appointmenttype.Table, appointmenttype.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.AppointmentTypesTable, tenant.AppointmentTypesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAvailabilityRules queries the availability_rules edge of a Tenant.
func (c *TenantClient) QueryAvailabilityRules(_m *Tenant) *AvailabilityRuleQuery {
	query := (&AvailabilityRuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(availabilityrule.Table, availabilityrule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.AvailabilityRulesTable, tenant.AvailabilityRulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAppointments queries the appointments edge of a Tenant.
func (c *TenantClient) QueryAppointments(_m *Tenant) *AppointmentQuery {
	query := (&AppointmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(appointment.Table, appointment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.AppointmentsTable, tenant.AppointmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPromptExecutions queries the prompt_executions edge of a Tenant.
func (c *TenantClient) QueryPromptExecutions(_m *Tenant) *PromptExecutionQuery {
	query := (&PromptExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(promptexecution.Table, promptexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.PromptExecutionsTable, tenant.PromptExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TenantClient) Hooks() []Hook {
	return c.hooks.Tenant
}

// Interceptors returns the client interceptors.
func (c *TenantClient) Interceptors() []Interceptor {
	return c.inters.Tenant
}

func (c *TenantClient) mutate(ctx context.Context, m *TenantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TenantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TenantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tenant mutation op: %q", m.Op())
	}
}

// TicketClient is a client for the Ticket schema.
type TicketClient struct {
	config
}

// NewTicketClient returns a client for the Ticket from the given config.
func NewTicketClient(c config) *TicketClient {
	return &TicketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ticket.Hooks(f(g(h())))`.
func (c *TicketClient) Use(hooks ...Hook) {
	c.hooks.Ticket = append(c.hooks.Ticket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ticket.Intercept(f(g(h())))`.
func (c *TicketClient) Intercept(interceptors ...Interceptor) {
	c.inters.Ticket = append(c.inters.Ticket, interceptors...)
}

// Create returns a builder for creating a Ticket entity.
func (c *TicketClient) Create() *TicketCreate {
	mutation := newTicketMutation(c.config, OpCreate)
	return &TicketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Ticket entities.
func (c *TicketClient) CreateBulk(builders ...*TicketCreate) *TicketCreateBulk {
	return &TicketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TicketClient) MapCreateBulk(slice any, setFunc func(*TicketCreate, int)) *TicketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TicketCreateBulk{err: fmt.Errorf("calling to TicketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TicketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TicketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Ticket.
func (c *TicketClient) Update() *TicketUpdate {
	mutation := newTicketMutation(c.config, OpUpdate)
	return &TicketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TicketClient) UpdateOne(_m *Ticket) *TicketUpdateOne {
	mutation := newTicketMutation(c.config, OpUpdateOne, withTicket(_m))
	return &TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TicketClient) UpdateOneID(id string) *TicketUpdateOne {
	mutation := newTicketMutation(c.config, OpUpdateOne, withTicketID(id))
	return &TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Ticket.
func (c *TicketClient) Delete() *TicketDelete {
	mutation := newTicketMutation(c.config, OpDelete)
	return &TicketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TicketClient) DeleteOne(_m *Ticket) *TicketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TicketClient) DeleteOneID(id string) *TicketDeleteOne {
	builder := c.Delete().Where(ticket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TicketDeleteOne{builder}
}

// Query returns a query builder for Ticket.
func (c *TicketClient) Query() *TicketQuery {
	return &TicketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTicket},
		inters: c.Interceptors(),
	}
}

// Get returns a Ticket entity by its id.
func (c *TicketClient) Get(ctx context.Context, id string) (*Ticket, error) {
	return c.Query().Where(ticket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TicketClient) GetX(ctx context.Context, id string) *Ticket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a Ticket.
func (c *TicketClient) QueryTenant(_m *Ticket) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ticket.TenantTable, ticket.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TicketClient) Hooks() []Hook {
	return c.hooks.Ticket
}

// Interceptors returns the client interceptors.
func (c *TicketClient) Interceptors() []Interceptor {
	return c.inters.Ticket
}

func (c *TicketClient) mutate(ctx context.Context, m *TicketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TicketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TicketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TicketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Ticket mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a User.
func (c *UserClient) QueryTenant(_m *User) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, user.TenantTable, user.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// WhatsAppConfigClient is a client for the WhatsAppConfig schema.
type WhatsAppConfigClient struct {
	config
}

// NewWhatsAppConfigClient returns a client for the WhatsAppConfig from the given config.
func NewWhatsAppConfigClient(c config) *WhatsAppConfigClient {
	return &WhatsAppConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `whatsappconfig.Hooks(f(g(h())))`.
func (c *WhatsAppConfigClient) Use(hooks ...Hook) {
	c.hooks.WhatsAppConfig = append(c.hooks.WhatsAppConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `whatsappconfig.Intercept(f(g(h())))`.
func (c *WhatsAppConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.WhatsAppConfig = append(c.inters.WhatsAppConfig, interceptors...)
}

// Create returns a builder for creating a WhatsAppConfig entity.
func (c *WhatsAppConfigClient) Create() *WhatsAppConfigCreate {
	mutation := newWhatsAppConfigMutation(c.config, OpCreate)
	return &WhatsAppConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WhatsAppConfig entities.
func (c *WhatsAppConfigClient) CreateBulk(builders ...*WhatsAppConfigCreate) *WhatsAppConfigCreateBulk {
	return &WhatsAppConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WhatsAppConfigClient) MapCreateBulk(slice any, setFunc func(*WhatsAppConfigCreate, int)) *WhatsAppConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WhatsAppConfigCreateBulk{err: fmt.Errorf("calling to WhatsAppConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WhatsAppConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WhatsAppConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WhatsAppConfig.
func (c *WhatsAppConfigClient) Update() *WhatsAppConfigUpdate {
	mutation := newWhatsAppConfigMutation(c.config, OpUpdate)
	return &WhatsAppConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WhatsAppConfigClient) UpdateOne(_m *WhatsAppConfig) *WhatsAppConfigUpdateOne {
	mutation := newWhatsAppConfigMutation(c.config, OpUpdateOne, withWhatsAppConfig(_m))
	return &WhatsAppConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WhatsAppConfigClient) UpdateOneID(id string) *WhatsAppConfigUpdateOne {
	mutation := newWhatsAppConfigMutation(c.config, OpUpdateOne, withWhatsAppConfigID(id))
	return &WhatsAppConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WhatsAppConfig.
func (c *WhatsAppConfigClient) Delete() *WhatsAppConfigDelete {
	mutation := newWhatsAppConfigMutation(c.config, OpDelete)
	return &WhatsAppConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WhatsAppConfigClient) DeleteOne(_m *WhatsAppConfig) *WhatsAppConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WhatsAppConfigClient) DeleteOneID(id string) *WhatsAppConfigDeleteOne {
	builder := c.Delete().Where(whatsappconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WhatsAppConfigDeleteOne{builder}
}

// Query returns a query builder for WhatsAppConfig.
func (c *WhatsAppConfigClient) Query() *WhatsAppConfigQuery {
	return &WhatsAppConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWhatsAppConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a WhatsAppConfig entity by its id.
func (c *WhatsAppConfigClient) Get(ctx context.Context, id string) (*WhatsAppConfig, error) {
	return c.Query().Where(whatsappconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WhatsAppConfigClient) GetX(ctx context.Context, id string) *WhatsAppConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a WhatsAppConfig.
func (c *WhatsAppConfigClient) QueryTenant(_m *WhatsAppConfig) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(whatsappconfig.Table, whatsappconfig.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, whatsappconfig.TenantTable, whatsappconfig.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WhatsAppConfigClient) Hooks() []Hook {
	return c.hooks.WhatsAppConfig
}

// Interceptors returns the client interceptors.
func (c *WhatsAppConfigClient) Interceptors() []Interceptor {
	return c.inters.WhatsAppConfig
}

func (c *WhatsAppConfigClient) mutate(ctx context.Context, m *WhatsAppConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WhatsAppConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WhatsAppConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WhatsAppConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WhatsAppConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WhatsAppConfig mutation op: %q", m.Op())
	}
}

// WorkflowClient is a client for the Workflow schema.
type WorkflowClient struct {
	config
}

// NewWorkflowClient returns a client for the Workflow from the given config.
func NewWorkflowClient(c config) *WorkflowClient {
	return &WorkflowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflow.Hooks(f(g(h())))`.
func (c *WorkflowClient) Use(hooks ...Hook) {
	c.hooks.Workflow = append(c.hooks.Workflow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflow.Intercept(f(g(h())))`.
func (c *WorkflowClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workflow = append(c.inters.Workflow, interceptors...)
}

// Create returns a builder for creating a Workflow entity.
func (c *WorkflowClient) Create() *WorkflowCreate {
	mutation := newWorkflowMutation(c.config, OpCreate)
	return &WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workflow entities.
func (c *WorkflowClient) CreateBulk(builders ...*WorkflowCreate) *WorkflowCreateBulk {
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowClient) MapCreateBulk(slice any, setFunc func(*WorkflowCreate, int)) *WorkflowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowCreateBulk{err: fmt.Errorf("calling to WorkflowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workflow.
func (c *WorkflowClient) Update() *WorkflowUpdate {
	mutation := newWorkflowMutation(c.config, OpUpdate)
	return &WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowClient) UpdateOne(_m *Workflow) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflow(_m))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowClient) UpdateOneID(id string) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflowID(id))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workflow.
func (c *WorkflowClient) Delete() *WorkflowDelete {
	mutation := newWorkflowMutation(c.config, OpDelete)
	return &WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowClient) DeleteOne(_m *Workflow) *WorkflowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowClient) DeleteOneID(id string) *WorkflowDeleteOne {
	builder := c.Delete().Where(workflow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowDeleteOne{builder}
}

// Query returns a query builder for Workflow.
func (c *WorkflowClient) Query() *WorkflowQuery {
	return &WorkflowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflow},
		inters: c.Interceptors(),
	}
}

// Get returns a Workflow entity by its id.
func (c *WorkflowClient) Get(ctx context.Context, id string) (*Workflow, error) {
	return c.Query().Where(workflow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowClient) GetX(ctx context.Context, id string) *Workflow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a Workflow.
func (c *WorkflowClient) QueryTenant(_m *Workflow) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflow.TenantTable, workflow.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryNodes queries the nodes edge of a Workflow.
func (c *WorkflowClient) QueryNodes(_m *Workflow) *WorkflowNodeQuery {
	query := (&WorkflowNodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(workflownode.Table, workflownode.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.NodesTable, workflow.NodesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEdges queries the edges edge of a Workflow.
func (c *WorkflowClient) QueryEdges(_m *Workflow) *WorkflowEdgeQuery {
	query := (&WorkflowEdgeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(workflowedge.Table, workflowedge.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.EdgesTable, workflow.EdgesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutions queries the executions edge of a Workflow.
func (c *WorkflowClient) QueryExecutions(_m *Workflow) *ExecutionQuery {
	query := (&ExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(execution.Table, execution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.ExecutionsTable, workflow.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowClient) Hooks() []Hook {
	return c.hooks.Workflow
}

// Interceptors returns the client interceptors.
func (c *WorkflowClient) Interceptors() []Interceptor {
	return c.inters.Workflow
}

func (c *WorkflowClient) mutate(ctx context.Context, m *WorkflowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workflow mutation op: %q", m.Op())
	}
}

// WorkflowEdgeClient is a client for the WorkflowEdge schema.
type WorkflowEdgeClient struct {
	config
}

// NewWorkflowEdgeClient returns a client for the WorkflowEdge from the given config.
func NewWorkflowEdgeClient(c config) *WorkflowEdgeClient {
	return &WorkflowEdgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowedge.Hooks(f(g(h())))`.
func (c *WorkflowEdgeClient) Use(hooks ...Hook) {
	c.hooks.WorkflowEdge = append(c.hooks.WorkflowEdge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowedge.Intercept(f(g(h())))`.
func (c *WorkflowEdgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowEdge = append(c.inters.WorkflowEdge, interceptors...)
}

// Create returns a builder for creating a WorkflowEdge entity.
func (c *WorkflowEdgeClient) Create() *WorkflowEdgeCreate {
	mutation := newWorkflowEdgeMutation(c.config, OpCreate)
	return &WorkflowEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowEdge entities.
func (c *WorkflowEdgeClient) CreateBulk(builders ...*WorkflowEdgeCreate) *WorkflowEdgeCreateBulk {
	return &WorkflowEdgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowEdgeClient) MapCreateBulk(slice any, setFunc func(*WorkflowEdgeCreate, int)) *WorkflowEdgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowEdgeCreateBulk{err: fmt.Errorf("calling to WorkflowEdgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowEdgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowEdgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowEdge.
func (c *WorkflowEdgeClient) Update() *WorkflowEdgeUpdate {
	mutation := newWorkflowEdgeMutation(c.config, OpUpdate)
	return &WorkflowEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowEdgeClient) UpdateOne(_m *WorkflowEdge) *WorkflowEdgeUpdateOne {
	mutation := newWorkflowEdgeMutation(c.config, OpUpdateOne, withWorkflowEdge(_m))
	return &WorkflowEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowEdgeClient) UpdateOneID(id string) *WorkflowEdgeUpdateOne {
	mutation := newWorkflowEdgeMutation(c.config, OpUpdateOne, withWorkflowEdgeID(id))
	return &WorkflowEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowEdge.
func (c *WorkflowEdgeClient) Delete() *WorkflowEdgeDelete {
	mutation := newWorkflowEdgeMutation(c.config, OpDelete)
	return &WorkflowEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowEdgeClient) DeleteOne(_m *WorkflowEdge) *WorkflowEdgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowEdgeClient) DeleteOneID(id string) *WorkflowEdgeDeleteOne {
	builder := c.Delete().Where(workflowedge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowEdgeDeleteOne{builder}
}

// Query returns a query builder for WorkflowEdge.
func (c *WorkflowEdgeClient) Query() *WorkflowEdgeQuery {
	return &WorkflowEdgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowEdge},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowEdge entity by its id.
func (c *WorkflowEdgeClient) Get(ctx context.Context, id string) (*WorkflowEdge, error) {
	return c.Query().Where(workflowedge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowEdgeClient) GetX(ctx context.Context, id string) *WorkflowEdge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a WorkflowEdge.
func (c *WorkflowEdgeClient) QueryWorkflow(_m *WorkflowEdge) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowedge.Table, workflowedge.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowedge.WorkflowTable, workflowedge.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowEdgeClient) Hooks() []Hook {
	return c.hooks.WorkflowEdge
}

// Interceptors returns the client interceptors.
func (c *WorkflowEdgeClient) Interceptors() []Interceptor {
	return c.inters.WorkflowEdge
}

func (c *WorkflowEdgeClient) mutate(ctx context.Context, m *WorkflowEdgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowEdge mutation op: %q", m.Op())
	}
}

// WorkflowNodeClient is a client for the WorkflowNode schema.
type WorkflowNodeClient struct {
	config
}

// NewWorkflowNodeClient returns a client for the WorkflowNode from the given config.
func NewWorkflowNodeClient(c config) *WorkflowNodeClient {
	return &WorkflowNodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflownode.Hooks(f(g(h())))`.
func (c *WorkflowNodeClient) Use(hooks ...Hook) {
	c.hooks.WorkflowNode = append(c.hooks.WorkflowNode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflownode.Intercept(f(g(h())))`.
func (c *WorkflowNodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowNode = append(c.inters.WorkflowNode, interceptors...)
}

// Create returns a builder for creating a WorkflowNode entity.
func (c *WorkflowNodeClient) Create() *WorkflowNodeCreate {
	mutation := newWorkflowNodeMutation(c.config, OpCreate)
	return &WorkflowNodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowNode entities.
func (c *WorkflowNodeClient) CreateBulk(builders ...*WorkflowNodeCreate) *WorkflowNodeCreateBulk {
	return &WorkflowNodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowNodeClient) MapCreateBulk(slice any, setFunc func(*WorkflowNodeCreate, int)) *WorkflowNodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowNodeCreateBulk{err: fmt.Errorf("calling to WorkflowNodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowNodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowNodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowNode.
func (c *WorkflowNodeClient) Update() *WorkflowNodeUpdate {
	mutation := newWorkflowNodeMutation(c.config, OpUpdate)
	return &WorkflowNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowNodeClient) UpdateOne(_m *WorkflowNode) *WorkflowNodeUpdateOne {
	mutation := newWorkflowNodeMutation(c.config, OpUpdateOne, withWorkflowNode(_m))
	return &WorkflowNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowNodeClient) UpdateOneID(id string) *WorkflowNodeUpdateOne {
	mutation := newWorkflowNodeMutation(c.config, OpUpdateOne, withWorkflowNodeID(id))
	return &WorkflowNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowNode.
func (c *WorkflowNodeClient) Delete() *WorkflowNodeDelete {
	mutation := newWorkflowNodeMutation(c.config, OpDelete)
	return &WorkflowNodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowNodeClient) DeleteOne(_m *WorkflowNode) *WorkflowNodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowNodeClient) DeleteOneID(id string) *WorkflowNodeDeleteOne {
	builder := c.Delete().Where(workflownode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowNodeDeleteOne{builder}
}

// Query returns a query builder for WorkflowNode.
func (c *WorkflowNodeClient) Query() *WorkflowNodeQuery {
	return &WorkflowNodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowNode},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowNode entity by its id.
func (c *WorkflowNodeClient) Get(ctx context.Context, id string) (*WorkflowNode, error) {
	return c.Query().Where(workflownode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowNodeClient) GetX(ctx context.Context, id string) *WorkflowNode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a WorkflowNode.
func (c *WorkflowNodeClient) QueryWorkflow(_m *WorkflowNode) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflownode.Table, workflownode.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflownode.WorkflowTable, workflownode.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowNodeClient) Hooks() []Hook {
	return c.hooks.WorkflowNode
}

// Interceptors returns the client interceptors.
func (c *WorkflowNodeClient) Interceptors() []Interceptor {
	return c.inters.WorkflowNode
}

func (c *WorkflowNodeClient) mutate(ctx context.Context, m *WorkflowNodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowNodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowNodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowNode mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Appointment, AppointmentType, AvailabilityRule, BusinessSettings, Conversation,
		Event, Execution, ExecutionStep, KnowledgeDoc, Lead, LeadActivity, Message,
		PromptExecution, StepTask, Tenant, Ticket, User, WhatsAppConfig, Workflow,
		WorkflowEdge, WorkflowNode []ent.Hook
	}
	inters struct {
		Appointment, AppointmentType, AvailabilityRule, BusinessSettings, Conversation,
		Event, Execution, ExecutionStep, KnowledgeDoc, Lead, LeadActivity, Message,
		PromptExecution, StepTask, Tenant, Ticket, User, WhatsAppConfig, Workflow,
		WorkflowEdge, WorkflowNode []ent.Interceptor
	}
)
