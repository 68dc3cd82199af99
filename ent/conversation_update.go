// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/interacai/flowcore/ent/conversation"
	"github.com/interacai/flowcore/ent/message"
	"github.com/interacai/flowcore/ent/predicate"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChannel sets the "channel" field.
func (_u *ConversationUpdate) SetChannel(v conversation.Channel) *ConversationUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableChannel(v *conversation.Channel) *ConversationUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetLastMessage sets the "last_message" field.
func (_u *ConversationUpdate) SetLastMessage(v string) *ConversationUpdate {
	_u.mutation.SetLastMessage(v)
	return _u
}

// SetNillableLastMessage sets the "last_message" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLastMessage(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetLastMessage(*v)
	}
	return _u
}

// ClearLastMessage clears the value of the "last_message" field.
func (_u *ConversationUpdate) ClearLastMessage() *ConversationUpdate {
	_u.mutation.ClearLastMessage()
	return _u
}

// SetLastMessageAt sets the "last_message_at" field.
func (_u *ConversationUpdate) SetLastMessageAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetLastMessageAt(v)
	return _u
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLastMessageAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetLastMessageAt(*v)
	}
	return _u
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (_u *ConversationUpdate) ClearLastMessageAt() *ConversationUpdate {
	_u.mutation.ClearLastMessageAt()
	return _u
}

// SetUnreadCount sets the "unread_count" field.
func (_u *ConversationUpdate) SetUnreadCount(v int) *ConversationUpdate {
	_u.mutation.ResetUnreadCount()
	_u.mutation.SetUnreadCount(v)
	return _u
}

// SetNillableUnreadCount sets the "unread_count" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableUnreadCount(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetUnreadCount(*v)
	}
	return _u
}

// AddUnreadCount adds value to the "unread_count" field.
func (_u *ConversationUpdate) AddUnreadCount(v int) *ConversationUpdate {
	_u.mutation.AddUnreadCount(v)
	return _u
}

// SetLastIntent sets the "last_intent" field.
func (_u *ConversationUpdate) SetLastIntent(v string) *ConversationUpdate {
	_u.mutation.SetLastIntent(v)
	return _u
}

// SetNillableLastIntent sets the "last_intent" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLastIntent(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetLastIntent(*v)
	}
	return _u
}

// ClearLastIntent clears the value of the "last_intent" field.
func (_u *ConversationUpdate) ClearLastIntent() *ConversationUpdate {
	_u.mutation.ClearLastIntent()
	return _u
}

// SetLastSentiment sets the "last_sentiment" field.
func (_u *ConversationUpdate) SetLastSentiment(v string) *ConversationUpdate {
	_u.mutation.SetLastSentiment(v)
	return _u
}

// SetNillableLastSentiment sets the "last_sentiment" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLastSentiment(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetLastSentiment(*v)
	}
	return _u
}

// ClearLastSentiment clears the value of the "last_sentiment" field.
func (_u *ConversationUpdate) ClearLastSentiment() *ConversationUpdate {
	_u.mutation.ClearLastSentiment()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ConversationUpdate) SetCreatedAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableCreatedAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ConversationUpdate) AddMessageIDs(ids ...string) *ConversationUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ConversationUpdate) AddMessages(v ...*Message) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ConversationUpdate) ClearMessages() *ConversationUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ConversationUpdate) RemoveMessageIDs(ids ...string) *ConversationUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ConversationUpdate) RemoveMessages(v ...*Message) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdate) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := conversation.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "Conversation.channel": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conversation.tenant"`)
	}
	return nil
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(conversation.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastMessage(); ok {
		_spec.SetField(conversation.FieldLastMessage, field.TypeString, value)
	}
	if _u.mutation.LastMessageCleared() {
		_spec.ClearField(conversation.FieldLastMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LastMessageAt(); ok {
		_spec.SetField(conversation.FieldLastMessageAt, field.TypeTime, value)
	}
	if _u.mutation.LastMessageAtCleared() {
		_spec.ClearField(conversation.FieldLastMessageAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UnreadCount(); ok {
		_spec.SetField(conversation.FieldUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnreadCount(); ok {
		_spec.AddField(conversation.FieldUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastIntent(); ok {
		_spec.SetField(conversation.FieldLastIntent, field.TypeString, value)
	}
	if _u.mutation.LastIntentCleared() {
		_spec.ClearField(conversation.FieldLastIntent, field.TypeString)
	}
	if value, ok := _u.mutation.LastSentiment(); ok {
		_spec.SetField(conversation.FieldLastSentiment, field.TypeString, value)
	}
	if _u.mutation.LastSentimentCleared() {
		_spec.ClearField(conversation.FieldLastSentiment, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(conversation.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetChannel sets the "channel" field.
func (_u *ConversationUpdateOne) SetChannel(v conversation.Channel) *ConversationUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableChannel(v *conversation.Channel) *ConversationUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetLastMessage sets the "last_message" field.
func (_u *ConversationUpdateOne) SetLastMessage(v string) *ConversationUpdateOne {
	_u.mutation.SetLastMessage(v)
	return _u
}

// SetNillableLastMessage sets the "last_message" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLastMessage(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetLastMessage(*v)
	}
	return _u
}

// ClearLastMessage clears the value of the "last_message" field.
func (_u *ConversationUpdateOne) ClearLastMessage() *ConversationUpdateOne {
	_u.mutation.ClearLastMessage()
	return _u
}

// SetLastMessageAt sets the "last_message_at" field.
func (_u *ConversationUpdateOne) SetLastMessageAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetLastMessageAt(v)
	return _u
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLastMessageAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetLastMessageAt(*v)
	}
	return _u
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (_u *ConversationUpdateOne) ClearLastMessageAt() *ConversationUpdateOne {
	_u.mutation.ClearLastMessageAt()
	return _u
}

// SetUnreadCount sets the "unread_count" field.
func (_u *ConversationUpdateOne) SetUnreadCount(v int) *ConversationUpdateOne {
	_u.mutation.ResetUnreadCount()
	_u.mutation.SetUnreadCount(v)
	return _u
}

// SetNillableUnreadCount sets the "unread_count" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableUnreadCount(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetUnreadCount(*v)
	}
	return _u
}

// AddUnreadCount adds value to the "unread_count" field.
func (_u *ConversationUpdateOne) AddUnreadCount(v int) *ConversationUpdateOne {
	_u.mutation.AddUnreadCount(v)
	return _u
}

// SetLastIntent sets the "last_intent" field.
func (_u *ConversationUpdateOne) SetLastIntent(v string) *ConversationUpdateOne {
	_u.mutation.SetLastIntent(v)
	return _u
}

// SetNillableLastIntent sets the "last_intent" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLastIntent(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetLastIntent(*v)
	}
	return _u
}

// ClearLastIntent clears the value of the "last_intent" field.
func (_u *ConversationUpdateOne) ClearLastIntent() *ConversationUpdateOne {
	_u.mutation.ClearLastIntent()
	return _u
}

// SetLastSentiment sets the "last_sentiment" field.
func (_u *ConversationUpdateOne) SetLastSentiment(v string) *ConversationUpdateOne {
	_u.mutation.SetLastSentiment(v)
	return _u
}

// SetNillableLastSentiment sets the "last_sentiment" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLastSentiment(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetLastSentiment(*v)
	}
	return _u
}

// ClearLastSentiment clears the value of the "last_sentiment" field.
func (_u *ConversationUpdateOne) ClearLastSentiment() *ConversationUpdateOne {
	_u.mutation.ClearLastSentiment()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ConversationUpdateOne) SetCreatedAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableCreatedAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ConversationUpdateOne) AddMessageIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ConversationUpdateOne) AddMessages(v ...*Message) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ConversationUpdateOne) ClearMessages() *ConversationUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ConversationUpdateOne) RemoveMessageIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ConversationUpdateOne) RemoveMessages(v ...*Message) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdateOne) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := conversation.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "Conversation.channel": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conversation.tenant"`)
	}
	return nil
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(conversation.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastMessage(); ok {
		_spec.SetField(conversation.FieldLastMessage, field.TypeString, value)
	}
	if _u.mutation.LastMessageCleared() {
		_spec.ClearField(conversation.FieldLastMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LastMessageAt(); ok {
		_spec.SetField(conversation.FieldLastMessageAt, field.TypeTime, value)
	}
	if _u.mutation.LastMessageAtCleared() {
		_spec.ClearField(conversation.FieldLastMessageAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UnreadCount(); ok {
		_spec.SetField(conversation.FieldUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnreadCount(); ok {
		_spec.AddField(conversation.FieldUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastIntent(); ok {
		_spec.SetField(conversation.FieldLastIntent, field.TypeString, value)
	}
	if _u.mutation.LastIntentCleared() {
		_spec.ClearField(conversation.FieldLastIntent, field.TypeString)
	}
	if value, ok := _u.mutation.LastSentiment(); ok {
		_spec.SetField(conversation.FieldLastSentiment, field.TypeString, value)
	}
	if _u.mutation.LastSentimentCleared() {
		_spec.ClearField(conversation.FieldLastSentiment, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(conversation.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
