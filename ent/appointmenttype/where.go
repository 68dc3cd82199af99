// Code generated by ent, DO NOT EDIT.

package appointmenttype

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/interacai/flowcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldTenantID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldName, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldDurationMinutes, v))
}

// ColorCode applies equality check predicate on the "color_code" field. It's identical to ColorCodeEQ.
func ColorCode(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldColorCode, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldIsActive, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContainsFold(FieldTenantID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContainsFold(FieldName, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLTE(FieldDurationMinutes, v))
}

// ColorCodeEQ applies the EQ predicate on the "color_code" field.
func ColorCodeEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldColorCode, v))
}

// ColorCodeNEQ applies the NEQ predicate on the "color_code" field.
func ColorCodeNEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldColorCode, v))
}

// ColorCodeIn applies the In predicate on the "color_code" field.
func ColorCodeIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIn(FieldColorCode, vs...))
}

// ColorCodeNotIn applies the NotIn predicate on the "color_code" field.
func ColorCodeNotIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotIn(FieldColorCode, vs...))
}

// ColorCodeGT applies the GT predicate on the "color_code" field.
func ColorCodeGT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGT(FieldColorCode, v))
}

// ColorCodeGTE applies the GTE predicate on the "color_code" field.
func ColorCodeGTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGTE(FieldColorCode, v))
}

// ColorCodeLT applies the LT predicate on the "color_code" field.
func ColorCodeLT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLT(FieldColorCode, v))
}

// ColorCodeLTE applies the LTE predicate on the "color_code" field.
func ColorCodeLTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLTE(FieldColorCode, v))
}

// ColorCodeContains applies the Contains predicate on the "color_code" field.
func ColorCodeContains(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContains(FieldColorCode, v))
}

// ColorCodeHasPrefix applies the HasPrefix predicate on the "color_code" field.
func ColorCodeHasPrefix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasPrefix(FieldColorCode, v))
}

// ColorCodeHasSuffix applies the HasSuffix predicate on the "color_code" field.
func ColorCodeHasSuffix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasSuffix(FieldColorCode, v))
}

// ColorCodeIsNil applies the IsNil predicate on the "color_code" field.
func ColorCodeIsNil() predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIsNull(FieldColorCode))
}

// ColorCodeNotNil applies the NotNil predicate on the "color_code" field.
func ColorCodeNotNil() predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotNull(FieldColorCode))
}

// ColorCodeEqualFold applies the EqualFold predicate on the "color_code" field.
func ColorCodeEqualFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEqualFold(FieldColorCode, v))
}

// ColorCodeContainsFold applies the ContainsFold predicate on the "color_code" field.
func ColorCodeContainsFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContainsFold(FieldColorCode, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldIsActive, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.AppointmentType {
	return predicate.AppointmentType(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.AppointmentType {
	return predicate.AppointmentType(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAppointments applies the HasEdge predicate on the "appointments" edge.
func HasAppointments() predicate.AppointmentType {
	return predicate.AppointmentType(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AppointmentsTable, AppointmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppointmentsWith applies the HasEdge predicate on the "appointments" edge with a given conditions (other predicates).
func HasAppointmentsWith(preds ...predicate.Appointment) predicate.AppointmentType {
	return predicate.AppointmentType(func(s *sql.Selector) {
		step := newAppointmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AppointmentType) predicate.AppointmentType {
	return predicate.AppointmentType(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AppointmentType) predicate.AppointmentType {
	return predicate.AppointmentType(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AppointmentType) predicate.AppointmentType {
	return predicate.AppointmentType(sql.NotPredicates(p))
}
