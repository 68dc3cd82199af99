// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/interacai/flowcore/ent/appointment"
	"github.com/interacai/flowcore/ent/appointmenttype"
	"github.com/interacai/flowcore/ent/predicate"
)

// AppointmentTypeUpdate is the builder for updating AppointmentType entities.
type AppointmentTypeUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentTypeMutation
}

// Where appends a list predicates to the AppointmentTypeUpdate builder.
func (_u *AppointmentTypeUpdate) Where(ps ...predicate.AppointmentType) *AppointmentTypeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AppointmentTypeUpdate) SetName(v string) *AppointmentTypeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AppointmentTypeUpdate) SetNillableName(v *string) *AppointmentTypeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *AppointmentTypeUpdate) SetDurationMinutes(v int) *AppointmentTypeUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *AppointmentTypeUpdate) SetNillableDurationMinutes(v *int) *AppointmentTypeUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *AppointmentTypeUpdate) AddDurationMinutes(v int) *AppointmentTypeUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetColorCode sets the "color_code" field.
func (_u *AppointmentTypeUpdate) SetColorCode(v string) *AppointmentTypeUpdate {
	_u.mutation.SetColorCode(v)
	return _u
}

// SetNillableColorCode sets the "color_code" field if the given value is not nil.
func (_u *AppointmentTypeUpdate) SetNillableColorCode(v *string) *AppointmentTypeUpdate {
	if v != nil {
		_u.SetColorCode(*v)
	}
	return _u
}

// ClearColorCode clears the value of the "color_code" field.
func (_u *AppointmentTypeUpdate) ClearColorCode() *AppointmentTypeUpdate {
	_u.mutation.ClearColorCode()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AppointmentTypeUpdate) SetIsActive(v bool) *AppointmentTypeUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AppointmentTypeUpdate) SetNillableIsActive(v *bool) *AppointmentTypeUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_u *AppointmentTypeUpdate) AddAppointmentIDs(ids ...string) *AppointmentTypeUpdate {
	_u.mutation.AddAppointmentIDs(ids...)
	return _u
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_u *AppointmentTypeUpdate) AddAppointments(v ...*Appointment) *AppointmentTypeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentIDs(ids...)
}

// Mutation returns the AppointmentTypeMutation object of the builder.
func (_u *AppointmentTypeUpdate) Mutation() *AppointmentTypeMutation {
	return _u.mutation
}

// ClearAppointments clears all "appointments" edges to the Appointment entity.
func (_u *AppointmentTypeUpdate) ClearAppointments() *AppointmentTypeUpdate {
	_u.mutation.ClearAppointments()
	return _u
}

// RemoveAppointmentIDs removes the "appointments" edge to Appointment entities by IDs.
func (_u *AppointmentTypeUpdate) RemoveAppointmentIDs(ids ...string) *AppointmentTypeUpdate {
	_u.mutation.RemoveAppointmentIDs(ids...)
	return _u
}

// RemoveAppointments removes "appointments" edges to Appointment entities.
func (_u *AppointmentTypeUpdate) RemoveAppointments(v ...*Appointment) *AppointmentTypeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentTypeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentTypeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentTypeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentTypeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentTypeUpdate) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AppointmentType.tenant"`)
	}
	return nil
}

func (_u *AppointmentTypeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmenttype.Table, appointmenttype.Columns, sqlgraph.NewFieldSpec(appointmenttype.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(appointmenttype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(appointmenttype.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(appointmenttype.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ColorCode(); ok {
		_spec.SetField(appointmenttype.FieldColorCode, field.TypeString, value)
	}
	if _u.mutation.ColorCodeCleared() {
		_spec.ClearField(appointmenttype.FieldColorCode, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(appointmenttype.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.AppointmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentsIDs(); len(nodes) > 0 && !_u.mutation.AppointmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmenttype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentTypeUpdateOne is the builder for updating a single AppointmentType entity.
type AppointmentTypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentTypeMutation
}

// SetName sets the "name" field.
func (_u *AppointmentTypeUpdateOne) SetName(v string) *AppointmentTypeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AppointmentTypeUpdateOne) SetNillableName(v *string) *AppointmentTypeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *AppointmentTypeUpdateOne) SetDurationMinutes(v int) *AppointmentTypeUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *AppointmentTypeUpdateOne) SetNillableDurationMinutes(v *int) *AppointmentTypeUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *AppointmentTypeUpdateOne) AddDurationMinutes(v int) *AppointmentTypeUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetColorCode sets the "color_code" field.
func (_u *AppointmentTypeUpdateOne) SetColorCode(v string) *AppointmentTypeUpdateOne {
	_u.mutation.SetColorCode(v)
	return _u
}

// SetNillableColorCode sets the "color_code" field if the given value is not nil.
func (_u *AppointmentTypeUpdateOne) SetNillableColorCode(v *string) *AppointmentTypeUpdateOne {
	if v != nil {
		_u.SetColorCode(*v)
	}
	return _u
}

// ClearColorCode clears the value of the "color_code" field.
func (_u *AppointmentTypeUpdateOne) ClearColorCode() *AppointmentTypeUpdateOne {
	_u.mutation.ClearColorCode()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AppointmentTypeUpdateOne) SetIsActive(v bool) *AppointmentTypeUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AppointmentTypeUpdateOne) SetNillableIsActive(v *bool) *AppointmentTypeUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_u *AppointmentTypeUpdateOne) AddAppointmentIDs(ids ...string) *AppointmentTypeUpdateOne {
	_u.mutation.AddAppointmentIDs(ids...)
	return _u
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_u *AppointmentTypeUpdateOne) AddAppointments(v ...*Appointment) *AppointmentTypeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentIDs(ids...)
}

// Mutation returns the AppointmentTypeMutation object of the builder.
func (_u *AppointmentTypeUpdateOne) Mutation() *AppointmentTypeMutation {
	return _u.mutation
}

// ClearAppointments clears all "appointments" edges to the Appointment entity.
func (_u *AppointmentTypeUpdateOne) ClearAppointments() *AppointmentTypeUpdateOne {
	_u.mutation.ClearAppointments()
	return _u
}

// RemoveAppointmentIDs removes the "appointments" edge to Appointment entities by IDs.
func (_u *AppointmentTypeUpdateOne) RemoveAppointmentIDs(ids ...string) *AppointmentTypeUpdateOne {
	_u.mutation.RemoveAppointmentIDs(ids...)
	return _u
}

// RemoveAppointments removes "appointments" edges to Appointment entities.
func (_u *AppointmentTypeUpdateOne) RemoveAppointments(v ...*Appointment) *AppointmentTypeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentIDs(ids...)
}

// Where appends a list predicates to the AppointmentTypeUpdate builder.
func (_u *AppointmentTypeUpdateOne) Where(ps ...predicate.AppointmentType) *AppointmentTypeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentTypeUpdateOne) Select(field string, fields ...string) *AppointmentTypeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AppointmentType entity.
func (_u *AppointmentTypeUpdateOne) Save(ctx context.Context) (*AppointmentType, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentTypeUpdateOne) SaveX(ctx context.Context) *AppointmentType {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentTypeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentTypeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentTypeUpdateOne) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AppointmentType.tenant"`)
	}
	return nil
}

func (_u *AppointmentTypeUpdateOne) sqlSave(ctx context.Context) (_node *AppointmentType, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmenttype.Table, appointmenttype.Columns, sqlgraph.NewFieldSpec(appointmenttype.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AppointmentType.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointmenttype.FieldID)
		for _, f := range fields {
			if !appointmenttype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != appointmenttype.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(appointmenttype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(appointmenttype.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(appointmenttype.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ColorCode(); ok {
		_spec.SetField(appointmenttype.FieldColorCode, field.TypeString, value)
	}
	if _u.mutation.ColorCodeCleared() {
		_spec.ClearField(appointmenttype.FieldColorCode, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(appointmenttype.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.AppointmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentsIDs(); len(nodes) > 0 && !_u.mutation.AppointmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AppointmentType{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmenttype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
