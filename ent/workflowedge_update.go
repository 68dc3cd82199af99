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
	"github.com/interacai/flowcore/ent/workflowedge"
)

// WorkflowEdgeUpdate is the builder for updating WorkflowEdge entities.
type WorkflowEdgeUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowEdgeMutation
}

// Where appends a list predicates to the WorkflowEdgeUpdate builder.
func (_u *WorkflowEdgeUpdate) Where(ps ...predicate.WorkflowEdge) *WorkflowEdgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGuard sets the "guard" field.
func (_u *WorkflowEdgeUpdate) SetGuard(v string) *WorkflowEdgeUpdate {
	_u.mutation.SetGuard(v)
	return _u
}

// SetNillableGuard sets the "guard" field if the given value is not nil.
func (_u *WorkflowEdgeUpdate) SetNillableGuard(v *string) *WorkflowEdgeUpdate {
	if v != nil {
		_u.SetGuard(*v)
	}
	return _u
}

// ClearGuard clears the value of the "guard" field.
func (_u *WorkflowEdgeUpdate) ClearGuard() *WorkflowEdgeUpdate {
	_u.mutation.ClearGuard()
	return _u
}

// Mutation returns the WorkflowEdgeMutation object of the builder.
func (_u *WorkflowEdgeUpdate) Mutation() *WorkflowEdgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowEdgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowEdgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowEdgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowEdgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowEdgeUpdate) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowEdge.workflow"`)
	}
	return nil
}

func (_u *WorkflowEdgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowedge.Table, workflowedge.Columns, sqlgraph.NewFieldSpec(workflowedge.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Guard(); ok {
		_spec.SetField(workflowedge.FieldGuard, field.TypeString, value)
	}
	if _u.mutation.GuardCleared() {
		_spec.ClearField(workflowedge.FieldGuard, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowEdgeUpdateOne is the builder for updating a single WorkflowEdge entity.
type WorkflowEdgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowEdgeMutation
}

// SetGuard sets the "guard" field.
func (_u *WorkflowEdgeUpdateOne) SetGuard(v string) *WorkflowEdgeUpdateOne {
	_u.mutation.SetGuard(v)
	return _u
}

// SetNillableGuard sets the "guard" field if the given value is not nil.
func (_u *WorkflowEdgeUpdateOne) SetNillableGuard(v *string) *WorkflowEdgeUpdateOne {
	if v != nil {
		_u.SetGuard(*v)
	}
	return _u
}

// ClearGuard clears the value of the "guard" field.
func (_u *WorkflowEdgeUpdateOne) ClearGuard() *WorkflowEdgeUpdateOne {
	_u.mutation.ClearGuard()
	return _u
}

// Mutation returns the WorkflowEdgeMutation object of the builder.
func (_u *WorkflowEdgeUpdateOne) Mutation() *WorkflowEdgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowEdgeUpdate builder.
func (_u *WorkflowEdgeUpdateOne) Where(ps ...predicate.WorkflowEdge) *WorkflowEdgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowEdgeUpdateOne) Select(field string, fields ...string) *WorkflowEdgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowEdge entity.
func (_u *WorkflowEdgeUpdateOne) Save(ctx context.Context) (*WorkflowEdge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowEdgeUpdateOne) SaveX(ctx context.Context) *WorkflowEdge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowEdgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowEdgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowEdgeUpdateOne) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowEdge.workflow"`)
	}
	return nil
}

func (_u *WorkflowEdgeUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowEdge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowedge.Table, workflowedge.Columns, sqlgraph.NewFieldSpec(workflowedge.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowEdge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowedge.FieldID)
		for _, f := range fields {
			if !workflowedge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowedge.FieldID {
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
	if value, ok := _u.mutation.Guard(); ok {
		_spec.SetField(workflowedge.FieldGuard, field.TypeString, value)
	}
	if _u.mutation.GuardCleared() {
		_spec.ClearField(workflowedge.FieldGuard, field.TypeString)
	}
	_node = &WorkflowEdge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
