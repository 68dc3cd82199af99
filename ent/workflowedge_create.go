// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/interacai/flowcore/ent/workflow"
	"github.com/interacai/flowcore/ent/workflowedge"
)

// WorkflowEdgeCreate is the builder for creating a WorkflowEdge entity.
type WorkflowEdgeCreate struct {
	config
	mutation *WorkflowEdgeMutation
	hooks    []Hook
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *WorkflowEdgeCreate) SetWorkflowID(v string) *WorkflowEdgeCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetSourceNodeID sets the "source_node_id" field.
func (_c *WorkflowEdgeCreate) SetSourceNodeID(v string) *WorkflowEdgeCreate {
	_c.mutation.SetSourceNodeID(v)
	return _c
}

// SetTargetNodeID sets the "target_node_id" field.
func (_c *WorkflowEdgeCreate) SetTargetNodeID(v string) *WorkflowEdgeCreate {
	_c.mutation.SetTargetNodeID(v)
	return _c
}

// SetGuard sets the "guard" field.
func (_c *WorkflowEdgeCreate) SetGuard(v string) *WorkflowEdgeCreate {
	_c.mutation.SetGuard(v)
	return _c
}

// SetNillableGuard sets the "guard" field if the given value is not nil.
func (_c *WorkflowEdgeCreate) SetNillableGuard(v *string) *WorkflowEdgeCreate {
	if v != nil {
		_c.SetGuard(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowEdgeCreate) SetID(v string) *WorkflowEdgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *WorkflowEdgeCreate) SetWorkflow(v *Workflow) *WorkflowEdgeCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the WorkflowEdgeMutation object of the builder.
func (_c *WorkflowEdgeCreate) Mutation() *WorkflowEdgeMutation {
	return _c.mutation
}

// Save creates the WorkflowEdge in the database.
func (_c *WorkflowEdgeCreate) Save(ctx context.Context) (*WorkflowEdge, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowEdgeCreate) SaveX(ctx context.Context) *WorkflowEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowEdgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowEdgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowEdgeCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "WorkflowEdge.workflow_id"`)}
	}
	if _, ok := _c.mutation.SourceNodeID(); !ok {
		return &ValidationError{Name: "source_node_id", err: errors.New(`ent: missing required field "WorkflowEdge.source_node_id"`)}
	}
	if _, ok := _c.mutation.TargetNodeID(); !ok {
		return &ValidationError{Name: "target_node_id", err: errors.New(`ent: missing required field "WorkflowEdge.target_node_id"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "WorkflowEdge.workflow"`)}
	}
	return nil
}

func (_c *WorkflowEdgeCreate) sqlSave(ctx context.Context) (*WorkflowEdge, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowEdge.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowEdgeCreate) createSpec() (*WorkflowEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowEdge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowedge.Table, sqlgraph.NewFieldSpec(workflowedge.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceNodeID(); ok {
		_spec.SetField(workflowedge.FieldSourceNodeID, field.TypeString, value)
		_node.SourceNodeID = value
	}
	if value, ok := _c.mutation.TargetNodeID(); ok {
		_spec.SetField(workflowedge.FieldTargetNodeID, field.TypeString, value)
		_node.TargetNodeID = value
	}
	if value, ok := _c.mutation.Guard(); ok {
		_spec.SetField(workflowedge.FieldGuard, field.TypeString, value)
		_node.Guard = &value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowedge.WorkflowTable,
			Columns: []string{workflowedge.WorkflowColumn},
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

// WorkflowEdgeCreateBulk is the builder for creating many WorkflowEdge entities in bulk.
type WorkflowEdgeCreateBulk struct {
	config
	err      error
	builders []*WorkflowEdgeCreate
}

// Save creates the WorkflowEdge entities in the database.
func (_c *WorkflowEdgeCreateBulk) Save(ctx context.Context) ([]*WorkflowEdge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowEdge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowEdgeMutation)
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
func (_c *WorkflowEdgeCreateBulk) SaveX(ctx context.Context) []*WorkflowEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
