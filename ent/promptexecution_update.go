// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/interacai/flowcore/ent/predicate"
	"github.com/interacai/flowcore/ent/promptexecution"
)

// PromptExecutionUpdate is the builder for updating PromptExecution entities.
type PromptExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *PromptExecutionMutation
}

// Where appends a list predicates to the PromptExecutionUpdate builder.
func (_u *PromptExecutionUpdate) Where(ps ...predicate.PromptExecution) *PromptExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *PromptExecutionUpdate) SetConversationID(v string) *PromptExecutionUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *PromptExecutionUpdate) SetNillableConversationID(v *string) *PromptExecutionUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *PromptExecutionUpdate) ClearConversationID() *PromptExecutionUpdate {
	_u.mutation.ClearConversationID()
	return _u
}

// SetMessages sets the "messages" field.
func (_u *PromptExecutionUpdate) SetMessages(v []map[string]interface{}) *PromptExecutionUpdate {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *PromptExecutionUpdate) AppendMessages(v []map[string]interface{}) *PromptExecutionUpdate {
	_u.mutation.AppendMessages(v)
	return _u
}

// SetResponse sets the "response" field.
func (_u *PromptExecutionUpdate) SetResponse(v string) *PromptExecutionUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *PromptExecutionUpdate) SetNillableResponse(v *string) *PromptExecutionUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *PromptExecutionUpdate) SetModel(v string) *PromptExecutionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *PromptExecutionUpdate) SetNillableModel(v *string) *PromptExecutionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PromptExecutionUpdate) SetCreatedAt(v time.Time) *PromptExecutionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PromptExecutionUpdate) SetNillableCreatedAt(v *time.Time) *PromptExecutionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the PromptExecutionMutation object of the builder.
func (_u *PromptExecutionUpdate) Mutation() *PromptExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptExecutionUpdate) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromptExecution.tenant"`)
	}
	return nil
}

func (_u *PromptExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptexecution.Table, promptexecution.Columns, sqlgraph.NewFieldSpec(promptexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(promptexecution.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(promptexecution.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(promptexecution.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, promptexecution.FieldMessages, value)
		})
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(promptexecution.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(promptexecution.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(promptexecution.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptExecutionUpdateOne is the builder for updating a single PromptExecution entity.
type PromptExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptExecutionMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *PromptExecutionUpdateOne) SetConversationID(v string) *PromptExecutionUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *PromptExecutionUpdateOne) SetNillableConversationID(v *string) *PromptExecutionUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *PromptExecutionUpdateOne) ClearConversationID() *PromptExecutionUpdateOne {
	_u.mutation.ClearConversationID()
	return _u
}

// SetMessages sets the "messages" field.
func (_u *PromptExecutionUpdateOne) SetMessages(v []map[string]interface{}) *PromptExecutionUpdateOne {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *PromptExecutionUpdateOne) AppendMessages(v []map[string]interface{}) *PromptExecutionUpdateOne {
	_u.mutation.AppendMessages(v)
	return _u
}

// SetResponse sets the "response" field.
func (_u *PromptExecutionUpdateOne) SetResponse(v string) *PromptExecutionUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *PromptExecutionUpdateOne) SetNillableResponse(v *string) *PromptExecutionUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *PromptExecutionUpdateOne) SetModel(v string) *PromptExecutionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *PromptExecutionUpdateOne) SetNillableModel(v *string) *PromptExecutionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PromptExecutionUpdateOne) SetCreatedAt(v time.Time) *PromptExecutionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PromptExecutionUpdateOne) SetNillableCreatedAt(v *time.Time) *PromptExecutionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the PromptExecutionMutation object of the builder.
func (_u *PromptExecutionUpdateOne) Mutation() *PromptExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptExecutionUpdate builder.
func (_u *PromptExecutionUpdateOne) Where(ps ...predicate.PromptExecution) *PromptExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptExecutionUpdateOne) Select(field string, fields ...string) *PromptExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptExecution entity.
func (_u *PromptExecutionUpdateOne) Save(ctx context.Context) (*PromptExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptExecutionUpdateOne) SaveX(ctx context.Context) *PromptExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptExecutionUpdateOne) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromptExecution.tenant"`)
	}
	return nil
}

func (_u *PromptExecutionUpdateOne) sqlSave(ctx context.Context) (_node *PromptExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptexecution.Table, promptexecution.Columns, sqlgraph.NewFieldSpec(promptexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promptexecution.FieldID)
		for _, f := range fields {
			if !promptexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promptexecution.FieldID {
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
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(promptexecution.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(promptexecution.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(promptexecution.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, promptexecution.FieldMessages, value)
		})
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(promptexecution.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(promptexecution.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(promptexecution.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &PromptExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
