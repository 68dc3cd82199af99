// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/interacai/flowcore/ent/predicate"
	"github.com/interacai/flowcore/ent/workflownode"
)

// WorkflowNodeUpdate is the builder for updating WorkflowNode entities.
type WorkflowNodeUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowNodeMutation
}

// Where appends a list predicates to the WorkflowNodeUpdate builder.
func (_u *WorkflowNodeUpdate) Where(ps ...predicate.WorkflowNode) *WorkflowNodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *WorkflowNodeUpdate) SetKind(v workflownode.Kind) *WorkflowNodeUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *WorkflowNodeUpdate) SetNillableKind(v *workflownode.Kind) *WorkflowNodeUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *WorkflowNodeUpdate) SetLabel(v string) *WorkflowNodeUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *WorkflowNodeUpdate) SetNillableLabel(v *string) *WorkflowNodeUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *WorkflowNodeUpdate) ClearLabel() *WorkflowNodeUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// SetConfig sets the "config" field.
func (_u *WorkflowNodeUpdate) SetConfig(v map[string]interface{}) *WorkflowNodeUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *WorkflowNodeUpdate) ClearConfig() *WorkflowNodeUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetPosition sets the "position" field.
func (_u *WorkflowNodeUpdate) SetPosition(v map[string]interface{}) *WorkflowNodeUpdate {
	_u.mutation.SetPosition(v)
	return _u
}

// ClearPosition clears the value of the "position" field.
func (_u *WorkflowNodeUpdate) ClearPosition() *WorkflowNodeUpdate {
	_u.mutation.ClearPosition()
	return _u
}

// Mutation returns the WorkflowNodeMutation object of the builder.
func (_u *WorkflowNodeUpdate) Mutation() *WorkflowNodeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowNodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowNodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowNodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowNodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowNodeUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := workflownode.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "WorkflowNode.kind": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowNode.workflow"`)
	}
	return nil
}

func (_u *WorkflowNodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflownode.Table, workflownode.Columns, sqlgraph.NewFieldSpec(workflownode.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(workflownode.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(workflownode.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(workflownode.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(workflownode.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(workflownode.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(workflownode.FieldPosition, field.TypeJSON, value)
	}
	if _u.mutation.PositionCleared() {
		_spec.ClearField(workflownode.FieldPosition, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflownode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowNodeUpdateOne is the builder for updating a single WorkflowNode entity.
type WorkflowNodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowNodeMutation
}

// SetKind sets the "kind" field.
func (_u *WorkflowNodeUpdateOne) SetKind(v workflownode.Kind) *WorkflowNodeUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *WorkflowNodeUpdateOne) SetNillableKind(v *workflownode.Kind) *WorkflowNodeUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *WorkflowNodeUpdateOne) SetLabel(v string) *WorkflowNodeUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *WorkflowNodeUpdateOne) SetNillableLabel(v *string) *WorkflowNodeUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *WorkflowNodeUpdateOne) ClearLabel() *WorkflowNodeUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// SetConfig sets the "config" field.
func (_u *WorkflowNodeUpdateOne) SetConfig(v map[string]interface{}) *WorkflowNodeUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *WorkflowNodeUpdateOne) ClearConfig() *WorkflowNodeUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetPosition sets the "position" field.
func (_u *WorkflowNodeUpdateOne) SetPosition(v map[string]interface{}) *WorkflowNodeUpdateOne {
	_u.mutation.SetPosition(v)
	return _u
}

// ClearPosition clears the value of the "position" field.
func (_u *WorkflowNodeUpdateOne) ClearPosition() *WorkflowNodeUpdateOne {
	_u.mutation.ClearPosition()
	return _u
}

// Mutation returns the WorkflowNodeMutation object of the builder.
func (_u *WorkflowNodeUpdateOne) Mutation() *WorkflowNodeMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowNodeUpdate builder.
func (_u *WorkflowNodeUpdateOne) Where(ps ...predicate.WorkflowNode) *WorkflowNodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowNodeUpdateOne) Select(field string, fields ...string) *WorkflowNodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowNode entity.
func (_u *WorkflowNodeUpdateOne) Save(ctx context.Context) (*WorkflowNode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowNodeUpdateOne) SaveX(ctx context.Context) *WorkflowNode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowNodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowNodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowNodeUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := workflownode.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "WorkflowNode.kind": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowNode.workflow"`)
	}
	return nil
}

func (_u *WorkflowNodeUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowNode, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflownode.Table, workflownode.Columns, sqlgraph.NewFieldSpec(workflownode.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowNode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflownode.FieldID)
		for _, f := range fields {
			if !workflownode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflownode.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(workflownode.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(workflownode.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(workflownode.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(workflownode.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(workflownode.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(workflownode.FieldPosition, field.TypeJSON, value)
	}
	if _u.mutation.PositionCleared() {
		_spec.ClearField(workflownode.FieldPosition, field.TypeJSON)
	}
	_node = &WorkflowNode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflownode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
