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
	"github.com/interacai/flowcore/ent/businesssettings"
	"github.com/interacai/flowcore/ent/predicate"
)

// BusinessSettingsUpdate is the builder for updating BusinessSettings entities.
type BusinessSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *BusinessSettingsMutation
}

// Where appends a list predicates to the BusinessSettingsUpdate builder.
func (_u *BusinessSettingsUpdate) Where(ps ...predicate.BusinessSettings) *BusinessSettingsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *BusinessSettingsUpdate) SetIndustry(v string) *BusinessSettingsUpdate {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *BusinessSettingsUpdate) SetNillableIndustry(v *string) *BusinessSettingsUpdate {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *BusinessSettingsUpdate) ClearIndustry() *BusinessSettingsUpdate {
	_u.mutation.ClearIndustry()
	return _u
}

// SetDescription sets the "description" field.
func (_u *BusinessSettingsUpdate) SetDescription(v string) *BusinessSettingsUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BusinessSettingsUpdate) SetNillableDescription(v *string) *BusinessSettingsUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BusinessSettingsUpdate) ClearDescription() *BusinessSettingsUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetServicesText sets the "services_text" field.
func (_u *BusinessSettingsUpdate) SetServicesText(v string) *BusinessSettingsUpdate {
	_u.mutation.SetServicesText(v)
	return _u
}

// SetNillableServicesText sets the "services_text" field if the given value is not nil.
func (_u *BusinessSettingsUpdate) SetNillableServicesText(v *string) *BusinessSettingsUpdate {
	if v != nil {
		_u.SetServicesText(*v)
	}
	return _u
}

// ClearServicesText clears the value of the "services_text" field.
func (_u *BusinessSettingsUpdate) ClearServicesText() *BusinessSettingsUpdate {
	_u.mutation.ClearServicesText()
	return _u
}

// SetTone sets the "tone" field.
func (_u *BusinessSettingsUpdate) SetTone(v string) *BusinessSettingsUpdate {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *BusinessSettingsUpdate) SetNillableTone(v *string) *BusinessSettingsUpdate {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// ClearTone clears the value of the "tone" field.
func (_u *BusinessSettingsUpdate) ClearTone() *BusinessSettingsUpdate {
	_u.mutation.ClearTone()
	return _u
}

// SetFaq sets the "faq" field.
func (_u *BusinessSettingsUpdate) SetFaq(v string) *BusinessSettingsUpdate {
	_u.mutation.SetFaq(v)
	return _u
}

// SetNillableFaq sets the "faq" field if the given value is not nil.
func (_u *BusinessSettingsUpdate) SetNillableFaq(v *string) *BusinessSettingsUpdate {
	if v != nil {
		_u.SetFaq(*v)
	}
	return _u
}

// ClearFaq clears the value of the "faq" field.
func (_u *BusinessSettingsUpdate) ClearFaq() *BusinessSettingsUpdate {
	_u.mutation.ClearFaq()
	return _u
}

// SetCustomInstructions sets the "custom_instructions" field.
func (_u *BusinessSettingsUpdate) SetCustomInstructions(v string) *BusinessSettingsUpdate {
	_u.mutation.SetCustomInstructions(v)
	return _u
}

// SetNillableCustomInstructions sets the "custom_instructions" field if the given value is not nil.
func (_u *BusinessSettingsUpdate) SetNillableCustomInstructions(v *string) *BusinessSettingsUpdate {
	if v != nil {
		_u.SetCustomInstructions(*v)
	}
	return _u
}

// ClearCustomInstructions clears the value of the "custom_instructions" field.
func (_u *BusinessSettingsUpdate) ClearCustomInstructions() *BusinessSettingsUpdate {
	_u.mutation.ClearCustomInstructions()
	return _u
}

// SetLocation sets the "location" field.
func (_u *BusinessSettingsUpdate) SetLocation(v string) *BusinessSettingsUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *BusinessSettingsUpdate) SetNillableLocation(v *string) *BusinessSettingsUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *BusinessSettingsUpdate) ClearLocation() *BusinessSettingsUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetHours sets the "hours" field.
func (_u *BusinessSettingsUpdate) SetHours(v string) *BusinessSettingsUpdate {
	_u.mutation.SetHours(v)
	return _u
}

// SetNillableHours sets the "hours" field if the given value is not nil.
func (_u *BusinessSettingsUpdate) SetNillableHours(v *string) *BusinessSettingsUpdate {
	if v != nil {
		_u.SetHours(*v)
	}
	return _u
}

// ClearHours clears the value of the "hours" field.
func (_u *BusinessSettingsUpdate) ClearHours() *BusinessSettingsUpdate {
	_u.mutation.ClearHours()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessSettingsUpdate) SetUpdatedAt(v time.Time) *BusinessSettingsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BusinessSettingsMutation object of the builder.
func (_u *BusinessSettingsUpdate) Mutation() *BusinessSettingsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusinessSettingsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusinessSettingsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessSettingsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessSettingsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businesssettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessSettingsUpdate) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BusinessSettings.tenant"`)
	}
	return nil
}

func (_u *BusinessSettingsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businesssettings.Table, businesssettings.Columns, sqlgraph.NewFieldSpec(businesssettings.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(businesssettings.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(businesssettings.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(businesssettings.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(businesssettings.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ServicesText(); ok {
		_spec.SetField(businesssettings.FieldServicesText, field.TypeString, value)
	}
	if _u.mutation.ServicesTextCleared() {
		_spec.ClearField(businesssettings.FieldServicesText, field.TypeString)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(businesssettings.FieldTone, field.TypeString, value)
	}
	if _u.mutation.ToneCleared() {
		_spec.ClearField(businesssettings.FieldTone, field.TypeString)
	}
	if value, ok := _u.mutation.Faq(); ok {
		_spec.SetField(businesssettings.FieldFaq, field.TypeString, value)
	}
	if _u.mutation.FaqCleared() {
		_spec.ClearField(businesssettings.FieldFaq, field.TypeString)
	}
	if value, ok := _u.mutation.CustomInstructions(); ok {
		_spec.SetField(businesssettings.FieldCustomInstructions, field.TypeString, value)
	}
	if _u.mutation.CustomInstructionsCleared() {
		_spec.ClearField(businesssettings.FieldCustomInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(businesssettings.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(businesssettings.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Hours(); ok {
		_spec.SetField(businesssettings.FieldHours, field.TypeString, value)
	}
	if _u.mutation.HoursCleared() {
		_spec.ClearField(businesssettings.FieldHours, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(businesssettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businesssettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusinessSettingsUpdateOne is the builder for updating a single BusinessSettings entity.
type BusinessSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusinessSettingsMutation
}

// SetIndustry sets the "industry" field.
func (_u *BusinessSettingsUpdateOne) SetIndustry(v string) *BusinessSettingsUpdateOne {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *BusinessSettingsUpdateOne) SetNillableIndustry(v *string) *BusinessSettingsUpdateOne {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *BusinessSettingsUpdateOne) ClearIndustry() *BusinessSettingsUpdateOne {
	_u.mutation.ClearIndustry()
	return _u
}

// SetDescription sets the "description" field.
func (_u *BusinessSettingsUpdateOne) SetDescription(v string) *BusinessSettingsUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BusinessSettingsUpdateOne) SetNillableDescription(v *string) *BusinessSettingsUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BusinessSettingsUpdateOne) ClearDescription() *BusinessSettingsUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetServicesText sets the "services_text" field.
func (_u *BusinessSettingsUpdateOne) SetServicesText(v string) *BusinessSettingsUpdateOne {
	_u.mutation.SetServicesText(v)
	return _u
}

// SetNillableServicesText sets the "services_text" field if the given value is not nil.
func (_u *BusinessSettingsUpdateOne) SetNillableServicesText(v *string) *BusinessSettingsUpdateOne {
	if v != nil {
		_u.SetServicesText(*v)
	}
	return _u
}

// ClearServicesText clears the value of the "services_text" field.
func (_u *BusinessSettingsUpdateOne) ClearServicesText() *BusinessSettingsUpdateOne {
	_u.mutation.ClearServicesText()
	return _u
}

// SetTone sets the "tone" field.
func (_u *BusinessSettingsUpdateOne) SetTone(v string) *BusinessSettingsUpdateOne {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *BusinessSettingsUpdateOne) SetNillableTone(v *string) *BusinessSettingsUpdateOne {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// ClearTone clears the value of the "tone" field.
func (_u *BusinessSettingsUpdateOne) ClearTone() *BusinessSettingsUpdateOne {
	_u.mutation.ClearTone()
	return _u
}

// SetFaq sets the "faq" field.
func (_u *BusinessSettingsUpdateOne) SetFaq(v string) *BusinessSettingsUpdateOne {
	_u.mutation.SetFaq(v)
	return _u
}

// SetNillableFaq sets the "faq" field if the given value is not nil.
func (_u *BusinessSettingsUpdateOne) SetNillableFaq(v *string) *BusinessSettingsUpdateOne {
	if v != nil {
		_u.SetFaq(*v)
	}
	return _u
}

// ClearFaq clears the value of the "faq" field.
func (_u *BusinessSettingsUpdateOne) ClearFaq() *BusinessSettingsUpdateOne {
	_u.mutation.ClearFaq()
	return _u
}

// SetCustomInstructions sets the "custom_instructions" field.
func (_u *BusinessSettingsUpdateOne) SetCustomInstructions(v string) *BusinessSettingsUpdateOne {
	_u.mutation.SetCustomInstructions(v)
	return _u
}

// SetNillableCustomInstructions sets the "custom_instructions" field if the given value is not nil.
func (_u *BusinessSettingsUpdateOne) SetNillableCustomInstructions(v *string) *BusinessSettingsUpdateOne {
	if v != nil {
		_u.SetCustomInstructions(*v)
	}
	return _u
}

// ClearCustomInstructions clears the value of the "custom_instructions" field.
func (_u *BusinessSettingsUpdateOne) ClearCustomInstructions() *BusinessSettingsUpdateOne {
	_u.mutation.ClearCustomInstructions()
	return _u
}

// SetLocation sets the "location" field.
func (_u *BusinessSettingsUpdateOne) SetLocation(v string) *BusinessSettingsUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *BusinessSettingsUpdateOne) SetNillableLocation(v *string) *BusinessSettingsUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *BusinessSettingsUpdateOne) ClearLocation() *BusinessSettingsUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetHours sets the "hours" field.
func (_u *BusinessSettingsUpdateOne) SetHours(v string) *BusinessSettingsUpdateOne {
	_u.mutation.SetHours(v)
	return _u
}

// SetNillableHours sets the "hours" field if the given value is not nil.
func (_u *BusinessSettingsUpdateOne) SetNillableHours(v *string) *BusinessSettingsUpdateOne {
	if v != nil {
		_u.SetHours(*v)
	}
	return _u
}

// ClearHours clears the value of the "hours" field.
func (_u *BusinessSettingsUpdateOne) ClearHours() *BusinessSettingsUpdateOne {
	_u.mutation.ClearHours()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessSettingsUpdateOne) SetUpdatedAt(v time.Time) *BusinessSettingsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BusinessSettingsMutation object of the builder.
func (_u *BusinessSettingsUpdateOne) Mutation() *BusinessSettingsMutation {
	return _u.mutation
}

// Where appends a list predicates to the BusinessSettingsUpdate builder.
func (_u *BusinessSettingsUpdateOne) Where(ps ...predicate.BusinessSettings) *BusinessSettingsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusinessSettingsUpdateOne) Select(field string, fields ...string) *BusinessSettingsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BusinessSettings entity.
func (_u *BusinessSettingsUpdateOne) Save(ctx context.Context) (*BusinessSettings, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessSettingsUpdateOne) SaveX(ctx context.Context) *BusinessSettings {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusinessSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessSettingsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businesssettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessSettingsUpdateOne) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BusinessSettings.tenant"`)
	}
	return nil
}

func (_u *BusinessSettingsUpdateOne) sqlSave(ctx context.Context) (_node *BusinessSettings, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businesssettings.Table, businesssettings.Columns, sqlgraph.NewFieldSpec(businesssettings.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BusinessSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, businesssettings.FieldID)
		for _, f := range fields {
			if !businesssettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != businesssettings.FieldID {
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
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(businesssettings.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(businesssettings.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(businesssettings.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(businesssettings.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ServicesText(); ok {
		_spec.SetField(businesssettings.FieldServicesText, field.TypeString, value)
	}
	if _u.mutation.ServicesTextCleared() {
		_spec.ClearField(businesssettings.FieldServicesText, field.TypeString)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(businesssettings.FieldTone, field.TypeString, value)
	}
	if _u.mutation.ToneCleared() {
		_spec.ClearField(businesssettings.FieldTone, field.TypeString)
	}
	if value, ok := _u.mutation.Faq(); ok {
		_spec.SetField(businesssettings.FieldFaq, field.TypeString, value)
	}
	if _u.mutation.FaqCleared() {
		_spec.ClearField(businesssettings.FieldFaq, field.TypeString)
	}
	if value, ok := _u.mutation.CustomInstructions(); ok {
		_spec.SetField(businesssettings.FieldCustomInstructions, field.TypeString, value)
	}
	if _u.mutation.CustomInstructionsCleared() {
		_spec.ClearField(businesssettings.FieldCustomInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(businesssettings.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(businesssettings.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Hours(); ok {
		_spec.SetField(businesssettings.FieldHours, field.TypeString, value)
	}
	if _u.mutation.HoursCleared() {
		_spec.ClearField(businesssettings.FieldHours, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(businesssettings.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BusinessSettings{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businesssettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
