// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/interacai/flowcore/ent/workflow"
	"github.com/interacai/flowcore/ent/workflownode"
)

// WorkflowNodeCreate is the builder for creating a WorkflowNode entity.
type WorkflowNodeCreate struct {
	config
	mutation *WorkflowNodeMutation
	hooks    []Hook
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *WorkflowNodeCreate) SetWorkflowID(v string) *WorkflowNodeCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *WorkflowNodeCreate) SetKey(v string) *WorkflowNodeCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *WorkflowNodeCreate) SetKind(v workflownode.Kind) *WorkflowNodeCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *WorkflowNodeCreate) SetLabel(v string) *WorkflowNodeCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *WorkflowNodeCreate) SetNillableLabel(v *string) *WorkflowNodeCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *WorkflowNodeCreate) SetConfig(v map[string]interface{}) *WorkflowNodeCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *WorkflowNodeCreate) SetPosition(v map[string]interface{}) *WorkflowNodeCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowNodeCreate) SetID(v string) *WorkflowNodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *WorkflowNodeCreate) SetWorkflow(v *Workflow) *WorkflowNodeCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the WorkflowNodeMutation object of the builder.
func (_c *WorkflowNodeCreate) Mutation() *WorkflowNodeMutation {
	return _c.mutation
}

// Save creates the WorkflowNode in the database.
func (_c *WorkflowNodeCreate) Save(ctx context.Context) (*WorkflowNode, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowNodeCreate) SaveX(ctx context.Context) *WorkflowNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowNodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowNodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowNodeCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "WorkflowNode.workflow_id"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "WorkflowNode.key"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "WorkflowNode.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := workflownode.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "WorkflowNode.kind": %w`, err)}
		}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "WorkflowNode.workflow"`)}
	}
	return nil
}

func (_c *WorkflowNodeCreate) sqlSave(ctx context.Context) (*WorkflowNode, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected WorkflowNode.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowNodeCreate) createSpec() (*WorkflowNode, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowNode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflownode.Table, sqlgraph.NewFieldSpec(workflownode.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(workflownode.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(workflownode.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(workflownode.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(workflownode.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(workflownode.FieldPosition, field.TypeJSON, value)
		_node.Position = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflownode.WorkflowTable,
			Columns: []string{workflownode.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkflowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowNodeCreateBulk is the builder for creating many WorkflowNode entities in bulk.
type WorkflowNodeCreateBulk struct {
	config
	err      error
	builders []*WorkflowNodeCreate
}

// Save creates the WorkflowNode entities in the database.
func (_c *WorkflowNodeCreateBulk) Save(ctx context.Context) ([]*WorkflowNode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowNode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowNodeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WorkflowNodeCreateBulk) SaveX(ctx context.Context) []*WorkflowNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowNodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowNodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
