// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/interacai/flowcore/ent/businesssettings"
	"github.com/interacai/flowcore/ent/tenant"
)

// BusinessSettingsCreate is the builder for creating a BusinessSettings entity.
type BusinessSettingsCreate struct {
	config
	mutation *BusinessSettingsMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *BusinessSettingsCreate) SetTenantID(v string) *BusinessSettingsCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetIndustry sets the "industry" field.
func (_c *BusinessSettingsCreate) SetIndustry(v string) *BusinessSettingsCreate {
	_c.mutation.SetIndustry(v)
	return _c
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableIndustry(v *string) *BusinessSettingsCreate {
	if v != nil {
		_c.SetIndustry(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *BusinessSettingsCreate) SetDescription(v string) *BusinessSettingsCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableDescription(v *string) *BusinessSettingsCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetServicesText sets the "services_text" field.
func (_c *BusinessSettingsCreate) SetServicesText(v string) *BusinessSettingsCreate {
	_c.mutation.SetServicesText(v)
	return _c
}

// SetNillableServicesText sets the "services_text" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableServicesText(v *string) *BusinessSettingsCreate {
	if v != nil {
		_c.SetServicesText(*v)
	}
	return _c
}

// SetTone sets the "tone" field.
func (_c *BusinessSettingsCreate) SetTone(v string) *BusinessSettingsCreate {
	_c.mutation.SetTone(v)
	return _c
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableTone(v *string) *BusinessSettingsCreate {
	if v != nil {
		_c.SetTone(*v)
	}
	return _c
}

// SetFaq sets the "faq" field.
func (_c *BusinessSettingsCreate) SetFaq(v string) *BusinessSettingsCreate {
	_c.mutation.SetFaq(v)
	return _c
}

// SetNillableFaq sets the "faq" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableFaq(v *string) *BusinessSettingsCreate {
	if v != nil {
		_c.SetFaq(*v)
	}
	return _c
}

// SetCustomInstructions sets the "custom_instructions" field.
func (_c *BusinessSettingsCreate) SetCustomInstructions(v string) *BusinessSettingsCreate {
	_c.mutation.SetCustomInstructions(v)
	return _c
}

// SetNillableCustomInstructions sets the "custom_instructions" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableCustomInstructions(v *string) *BusinessSettingsCreate {
	if v != nil {
		_c.SetCustomInstructions(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *BusinessSettingsCreate) SetLocation(v string) *BusinessSettingsCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableLocation(v *string) *BusinessSettingsCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetHours sets the "hours" field.
func (_c *BusinessSettingsCreate) SetHours(v string) *BusinessSettingsCreate {
	_c.mutation.SetHours(v)
	return _c
}

// SetNillableHours sets the "hours" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableHours(v *string) *BusinessSettingsCreate {
	if v != nil {
		_c.SetHours(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BusinessSettingsCreate) SetUpdatedAt(v time.Time) *BusinessSettingsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableUpdatedAt(v *time.Time) *BusinessSettingsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BusinessSettingsCreate) SetID(v string) *BusinessSettingsCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *BusinessSettingsCreate) SetTenant(v *Tenant) *BusinessSettingsCreate {
	return _c.SetTenantID(v.ID)
}

// Mutation returns the BusinessSettingsMutation object of the builder.
func (_c *BusinessSettingsCreate) Mutation() *BusinessSettingsMutation {
	return _c.mutation
}

// Save creates the BusinessSettings in the database.
func (_c *BusinessSettingsCreate) Save(ctx context.Context) (*BusinessSettings, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusinessSettingsCreate) SaveX(ctx context.Context) *BusinessSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessSettingsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessSettingsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusinessSettingsCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := businesssettings.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusinessSettingsCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "BusinessSettings.tenant_id"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BusinessSettings.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "BusinessSettings.tenant"`)}
	}
	return nil
}

func (_c *BusinessSettingsCreate) sqlSave(ctx context.Context) (*BusinessSettings, error) {
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
			return nil, fmt.Errorf("unexpected BusinessSettings.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BusinessSettingsCreate) createSpec() (*BusinessSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &BusinessSettings{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(businesssettings.Table, sqlgraph.NewFieldSpec(businesssettings.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Industry(); ok {
		_spec.SetField(businesssettings.FieldIndustry, field.TypeString, value)
		_node.Industry = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(businesssettings.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ServicesText(); ok {
		_spec.SetField(businesssettings.FieldServicesText, field.TypeString, value)
		_node.ServicesText = value
	}
	if value, ok := _c.mutation.Tone(); ok {
		_spec.SetField(businesssettings.FieldTone, field.TypeString, value)
		_node.Tone = value
	}
	if value, ok := _c.mutation.Faq(); ok {
		_spec.SetField(businesssettings.FieldFaq, field.TypeString, value)
		_node.Faq = value
	}
	if value, ok := _c.mutation.CustomInstructions(); ok {
		_spec.SetField(businesssettings.FieldCustomInstructions, field.TypeString, value)
		_node.CustomInstructions = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(businesssettings.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.Hours(); ok {
		_spec.SetField(businesssettings.FieldHours, field.TypeString, value)
		_node.Hours = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(businesssettings.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   businesssettings.TenantTable,
			Columns: []string{businesssettings.TenantColumn},
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

// BusinessSettingsCreateBulk is the builder for creating many BusinessSettings entities in bulk.
type BusinessSettingsCreateBulk struct {
	config
	err      error
	builders []*BusinessSettingsCreate
}

// Save creates the BusinessSettings entities in the database.
func (_c *BusinessSettingsCreateBulk) Save(ctx context.Context) ([]*BusinessSettings, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusinessSettings, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusinessSettingsMutation)
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
func (_c *BusinessSettingsCreateBulk) SaveX(ctx context.Context) []*BusinessSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
