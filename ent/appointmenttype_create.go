// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/interacai/flowcore/ent/appointment"
	"github.com/interacai/flowcore/ent/appointmenttype"
	"github.com/interacai/flowcore/ent/tenant"
)

// AppointmentTypeCreate is the builder for creating a AppointmentType entity.
type AppointmentTypeCreate struct {
	config
	mutation *AppointmentTypeMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *AppointmentTypeCreate) SetTenantID(v string) *AppointmentTypeCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AppointmentTypeCreate) SetName(v string) *AppointmentTypeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *AppointmentTypeCreate) SetDurationMinutes(v int) *AppointmentTypeCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetColorCode sets the "color_code" field.
func (_c *AppointmentTypeCreate) SetColorCode(v string) *AppointmentTypeCreate {
	_c.mutation.SetColorCode(v)
	return _c
}

// SetNillableColorCode sets the "color_code" field if the given value is not nil.
func (_c *AppointmentTypeCreate) SetNillableColorCode(v *string) *AppointmentTypeCreate {
	if v != nil {
		_c.SetColorCode(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AppointmentTypeCreate) SetIsActive(v bool) *AppointmentTypeCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AppointmentTypeCreate) SetNillableIsActive(v *bool) *AppointmentTypeCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentTypeCreate) SetID(v string) *AppointmentTypeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *AppointmentTypeCreate) SetTenant(v *Tenant) *AppointmentTypeCreate {
	return _c.SetTenantID(v.ID)
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_c *AppointmentTypeCreate) AddAppointmentIDs(ids ...string) *AppointmentTypeCreate {
	_c.mutation.AddAppointmentIDs(ids...)
	return _c
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_c *AppointmentTypeCreate) AddAppointments(v ...*Appointment) *AppointmentTypeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAppointmentIDs(ids...)
}

// Mutation returns the AppointmentTypeMutation object of the builder.
func (_c *AppointmentTypeCreate) Mutation() *AppointmentTypeMutation {
	return _c.mutation
}

// Save creates the AppointmentType in the database.
func (_c *AppointmentTypeCreate) Save(ctx context.Context) (*AppointmentType, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentTypeCreate) SaveX(ctx context.Context) *AppointmentType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentTypeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentTypeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentTypeCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := appointmenttype.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentTypeCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "AppointmentType.tenant_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AppointmentType.name"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "AppointmentType.duration_minutes"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "AppointmentType.is_active"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "AppointmentType.tenant"`)}
	}
	return nil
}

func (_c *AppointmentTypeCreate) sqlSave(ctx context.Context) (*AppointmentType, error) {
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
			return nil, fmt.Errorf("unexpected AppointmentType.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AppointmentTypeCreate) createSpec() (*AppointmentType, *sqlgraph.CreateSpec) {
	var (
		_node = &AppointmentType{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointmenttype.Table, sqlgraph.NewFieldSpec(appointmenttype.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(appointmenttype.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(appointmenttype.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.ColorCode(); ok {
		_spec.SetField(appointmenttype.FieldColorCode, field.TypeString, value)
		_node.ColorCode = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(appointmenttype.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointmenttype.TenantTable,
			Columns: []string{appointmenttype.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AppointmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   appointmenttype.AppointmentsTable,
			Columns: []string{appointmenttype.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AppointmentTypeCreateBulk is the builder for creating many AppointmentType entities in bulk.
type AppointmentTypeCreateBulk struct {
	config
	err      error
	builders []*AppointmentTypeCreate
}

// Save creates the AppointmentType entities in the database.
func (_c *AppointmentTypeCreateBulk) Save(ctx context.Context) ([]*AppointmentType, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AppointmentType, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentTypeMutation)
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
func (_c *AppointmentTypeCreateBulk) SaveX(ctx context.Context) []*AppointmentType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentTypeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentTypeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
