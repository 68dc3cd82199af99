// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/interacai/flowcore/ent/tenant"
	"github.com/interacai/flowcore/ent/whatsappconfig"
)

// WhatsAppConfigCreate is the builder for creating a WhatsAppConfig entity.
type WhatsAppConfigCreate struct {
	config
	mutation *WhatsAppConfigMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *WhatsAppConfigCreate) SetTenantID(v string) *WhatsAppConfigCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetPhoneNumberID sets the "phone_number_id" field.
func (_c *WhatsAppConfigCreate) SetPhoneNumberID(v string) *WhatsAppConfigCreate {
	_c.mutation.SetPhoneNumberID(v)
	return _c
}

// SetAccessTokenEnc sets the "access_token_enc" field.
func (_c *WhatsAppConfigCreate) SetAccessTokenEnc(v string) *WhatsAppConfigCreate {
	_c.mutation.SetAccessTokenEnc(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *WhatsAppConfigCreate) SetIsActive(v bool) *WhatsAppConfigCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *WhatsAppConfigCreate) SetNillableIsActive(v *bool) *WhatsAppConfigCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WhatsAppConfigCreate) SetUpdatedAt(v time.Time) *WhatsAppConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WhatsAppConfigCreate) SetNillableUpdatedAt(v *time.Time) *WhatsAppConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WhatsAppConfigCreate) SetID(v string) *WhatsAppConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *WhatsAppConfigCreate) SetTenant(v *Tenant) *WhatsAppConfigCreate {
	return _c.SetTenantID(v.ID)
}

// Mutation returns the WhatsAppConfigMutation object of the builder.
func (_c *WhatsAppConfigCreate) Mutation() *WhatsAppConfigMutation {
	return _c.mutation
}

// Save creates the WhatsAppConfig in the database.
func (_c *WhatsAppConfigCreate) Save(ctx context.Context) (*WhatsAppConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WhatsAppConfigCreate) SaveX(ctx context.Context) *WhatsAppConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WhatsAppConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WhatsAppConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WhatsAppConfigCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := whatsappconfig.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := whatsappconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WhatsAppConfigCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "WhatsAppConfig.tenant_id"`)}
	}
	if _, ok := _c.mutation.PhoneNumberID(); !ok {
		return &ValidationError{Name: "phone_number_id", err: errors.New(`ent: missing required field "WhatsAppConfig.phone_number_id"`)}
	}
	if _, ok := _c.mutation.AccessTokenEnc(); !ok {
		return &ValidationError{Name: "access_token_enc", err: errors.New(`ent: missing required field "WhatsAppConfig.access_token_enc"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "WhatsAppConfig.is_active"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WhatsAppConfig.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "WhatsAppConfig.tenant"`)}
	}
	return nil
}

func (_c *WhatsAppConfigCreate) sqlSave(ctx context.Context) (*WhatsAppConfig, error) {
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
			return nil, fmt.Errorf("unexpected WhatsAppConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WhatsAppConfigCreate) createSpec() (*WhatsAppConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &WhatsAppConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(whatsappconfig.Table, sqlgraph.NewFieldSpec(whatsappconfig.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PhoneNumberID(); ok {
		_spec.SetField(whatsappconfig.FieldPhoneNumberID, field.TypeString, value)
		_node.PhoneNumberID = value
	}
	if value, ok := _c.mutation.AccessTokenEnc(); ok {
		_spec.SetField(whatsappconfig.FieldAccessTokenEnc, field.TypeString, value)
		_node.AccessTokenEnc = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(whatsappconfig.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(whatsappconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   whatsappconfig.TenantTable,
			Columns: []string{whatsappconfig.TenantColumn},
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
	return _node, _spec
}

// WhatsAppConfigCreateBulk is the builder for creating many WhatsAppConfig entities in bulk.
type WhatsAppConfigCreateBulk struct {
	config
	err      error
	builders []*WhatsAppConfigCreate
}

// Save creates the WhatsAppConfig entities in the database.
func (_c *WhatsAppConfigCreateBulk) Save(ctx context.Context) ([]*WhatsAppConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WhatsAppConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WhatsAppConfigMutation)
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
func (_c *WhatsAppConfigCreateBulk) SaveX(ctx context.Context) []*WhatsAppConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WhatsAppConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WhatsAppConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
