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
	"github.com/interacai/flowcore/ent/predicate"
	"github.com/interacai/flowcore/ent/whatsappconfig"
)

// WhatsAppConfigUpdate is the builder for updating WhatsAppConfig entities.
type WhatsAppConfigUpdate struct {
	config
	hooks    []Hook
	mutation *WhatsAppConfigMutation
}

// Where appends a list predicates to the WhatsAppConfigUpdate builder.
func (_u *WhatsAppConfigUpdate) Where(ps ...predicate.WhatsAppConfig) *WhatsAppConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhoneNumberID sets the "phone_number_id" field.
func (_u *WhatsAppConfigUpdate) SetPhoneNumberID(v string) *WhatsAppConfigUpdate {
	_u.mutation.SetPhoneNumberID(v)
	return _u
}

// SetNillablePhoneNumberID sets the "phone_number_id" field if the given value is not nil.
func (_u *WhatsAppConfigUpdate) SetNillablePhoneNumberID(v *string) *WhatsAppConfigUpdate {
	if v != nil {
		_u.SetPhoneNumberID(*v)
	}
	return _u
}

// SetAccessTokenEnc sets the "access_token_enc" field.
func (_u *WhatsAppConfigUpdate) SetAccessTokenEnc(v string) *WhatsAppConfigUpdate {
	_u.mutation.SetAccessTokenEnc(v)
	return _u
}

// SetNillableAccessTokenEnc sets the "access_token_enc" field if the given value is not nil.
func (_u *WhatsAppConfigUpdate) SetNillableAccessTokenEnc(v *string) *WhatsAppConfigUpdate {
	if v != nil {
		_u.SetAccessTokenEnc(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WhatsAppConfigUpdate) SetIsActive(v bool) *WhatsAppConfigUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WhatsAppConfigUpdate) SetNillableIsActive(v *bool) *WhatsAppConfigUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WhatsAppConfigUpdate) SetUpdatedAt(v time.Time) *WhatsAppConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WhatsAppConfigMutation object of the builder.
func (_u *WhatsAppConfigUpdate) Mutation() *WhatsAppConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WhatsAppConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WhatsAppConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WhatsAppConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WhatsAppConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WhatsAppConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := whatsappconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WhatsAppConfigUpdate) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WhatsAppConfig.tenant"`)
	}
	return nil
}

func (_u *WhatsAppConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(whatsappconfig.Table, whatsappconfig.Columns, sqlgraph.NewFieldSpec(whatsappconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PhoneNumberID(); ok {
		_spec.SetField(whatsappconfig.FieldPhoneNumberID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessTokenEnc(); ok {
		_spec.SetField(whatsappconfig.FieldAccessTokenEnc, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(whatsappconfig.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(whatsappconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{whatsappconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WhatsAppConfigUpdateOne is the builder for updating a single WhatsAppConfig entity.
type WhatsAppConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WhatsAppConfigMutation
}

// SetPhoneNumberID sets the "phone_number_id" field.
func (_u *WhatsAppConfigUpdateOne) SetPhoneNumberID(v string) *WhatsAppConfigUpdateOne {
	_u.mutation.SetPhoneNumberID(v)
	return _u
}

// SetNillablePhoneNumberID sets the "phone_number_id" field if the given value is not nil.
func (_u *WhatsAppConfigUpdateOne) SetNillablePhoneNumberID(v *string) *WhatsAppConfigUpdateOne {
	if v != nil {
		_u.SetPhoneNumberID(*v)
	}
	return _u
}

// SetAccessTokenEnc sets the "access_token_enc" field.
func (_u *WhatsAppConfigUpdateOne) SetAccessTokenEnc(v string) *WhatsAppConfigUpdateOne {
	_u.mutation.SetAccessTokenEnc(v)
	return _u
}

// SetNillableAccessTokenEnc sets the "access_token_enc" field if the given value is not nil.
func (_u *WhatsAppConfigUpdateOne) SetNillableAccessTokenEnc(v *string) *WhatsAppConfigUpdateOne {
	if v != nil {
		_u.SetAccessTokenEnc(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WhatsAppConfigUpdateOne) SetIsActive(v bool) *WhatsAppConfigUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WhatsAppConfigUpdateOne) SetNillableIsActive(v *bool) *WhatsAppConfigUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WhatsAppConfigUpdateOne) SetUpdatedAt(v time.Time) *WhatsAppConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WhatsAppConfigMutation object of the builder.
func (_u *WhatsAppConfigUpdateOne) Mutation() *WhatsAppConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the WhatsAppConfigUpdate builder.
func (_u *WhatsAppConfigUpdateOne) Where(ps ...predicate.WhatsAppConfig) *WhatsAppConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WhatsAppConfigUpdateOne) Select(field string, fields ...string) *WhatsAppConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WhatsAppConfig entity.
func (_u *WhatsAppConfigUpdateOne) Save(ctx context.Context) (*WhatsAppConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WhatsAppConfigUpdateOne) SaveX(ctx context.Context) *WhatsAppConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WhatsAppConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WhatsAppConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WhatsAppConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := whatsappconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WhatsAppConfigUpdateOne) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WhatsAppConfig.tenant"`)
	}
	return nil
}

func (_u *WhatsAppConfigUpdateOne) sqlSave(ctx context.Context) (_node *WhatsAppConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(whatsappconfig.Table, whatsappconfig.Columns, sqlgraph.NewFieldSpec(whatsappconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WhatsAppConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, whatsappconfig.FieldID)
		for _, f := range fields {
			if !whatsappconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != whatsappconfig.FieldID {
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
	if value, ok := _u.mutation.PhoneNumberID(); ok {
		_spec.SetField(whatsappconfig.FieldPhoneNumberID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessTokenEnc(); ok {
		_spec.SetField(whatsappconfig.FieldAccessTokenEnc, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(whatsappconfig.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(whatsappconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WhatsAppConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{whatsappconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
