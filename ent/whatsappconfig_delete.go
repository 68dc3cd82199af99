// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/interacai/flowcore/ent/predicate"
	"github.com/interacai/flowcore/ent/whatsappconfig"
)

// WhatsAppConfigDelete is the builder for deleting a WhatsAppConfig entity.
type WhatsAppConfigDelete struct {
	config
	hooks    []Hook
	mutation *WhatsAppConfigMutation
}

// Where appends a list predicates to the WhatsAppConfigDelete builder.
func (_d *WhatsAppConfigDelete) Where(ps ...predicate.WhatsAppConfig) *WhatsAppConfigDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WhatsAppConfigDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WhatsAppConfigDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WhatsAppConfigDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(whatsappconfig.Table, sqlgraph.NewFieldSpec(whatsappconfig.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// WhatsAppConfigDeleteOne is the builder for deleting a single WhatsAppConfig entity.
type WhatsAppConfigDeleteOne struct {
	_d *WhatsAppConfigDelete
}

// Where appends a list predicates to the WhatsAppConfigDelete builder.
func (_d *WhatsAppConfigDeleteOne) Where(ps ...predicate.WhatsAppConfig) *WhatsAppConfigDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WhatsAppConfigDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{whatsappconfig.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WhatsAppConfigDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
