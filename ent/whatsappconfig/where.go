// Code generated by ent, DO NOT EDIT.

package whatsappconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/interacai/flowcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEQ(FieldTenantID, v))
}

// PhoneNumberID applies equality check predicate on the "phone_number_id" field. It's identical to PhoneNumberIDEQ.
func PhoneNumberID(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEQ(FieldPhoneNumberID, v))
}

// AccessTokenEnc applies equality check predicate on the "access_token_enc" field. It's identical to AccessTokenEncEQ.
func AccessTokenEnc(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEQ(FieldAccessTokenEnc, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEQ(FieldIsActive, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldContainsFold(FieldTenantID, v))
}

// PhoneNumberIDEQ applies the EQ predicate on the "phone_number_id" field.
func PhoneNumberIDEQ(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEQ(FieldPhoneNumberID, v))
}

// PhoneNumberIDNEQ applies the NEQ predicate on the "phone_number_id" field.
func PhoneNumberIDNEQ(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldNEQ(FieldPhoneNumberID, v))
}

// PhoneNumberIDIn applies the In predicate on the "phone_number_id" field.
func PhoneNumberIDIn(vs ...string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldIn(FieldPhoneNumberID, vs...))
}

// PhoneNumberIDNotIn applies the NotIn predicate on the "phone_number_id" field.
func PhoneNumberIDNotIn(vs ...string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldNotIn(FieldPhoneNumberID, vs...))
}

// PhoneNumberIDGT applies the GT predicate on the "phone_number_id" field.
func PhoneNumberIDGT(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldGT(FieldPhoneNumberID, v))
}

// PhoneNumberIDGTE applies the GTE predicate on the "phone_number_id" field.
func PhoneNumberIDGTE(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldGTE(FieldPhoneNumberID, v))
}

// PhoneNumberIDLT applies the LT predicate on the "phone_number_id" field.
func PhoneNumberIDLT(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldLT(FieldPhoneNumberID, v))
}

// PhoneNumberIDLTE applies the LTE predicate on the "phone_number_id" field.
func PhoneNumberIDLTE(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldLTE(FieldPhoneNumberID, v))
}

// PhoneNumberIDContains applies the Contains predicate on the "phone_number_id" field.
func PhoneNumberIDContains(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldContains(FieldPhoneNumberID, v))
}

// PhoneNumberIDHasPrefix applies the HasPrefix predicate on the "phone_number_id" field.
func PhoneNumberIDHasPrefix(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldHasPrefix(FieldPhoneNumberID, v))
}

// PhoneNumberIDHasSuffix applies the HasSuffix predicate on the "phone_number_id" field.
func PhoneNumberIDHasSuffix(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldHasSuffix(FieldPhoneNumberID, v))
}

// PhoneNumberIDEqualFold applies the EqualFold predicate on the "phone_number_id" field.
func PhoneNumberIDEqualFold(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEqualFold(FieldPhoneNumberID, v))
}

// PhoneNumberIDContainsFold applies the ContainsFold predicate on the "phone_number_id" field.
func PhoneNumberIDContainsFold(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldContainsFold(FieldPhoneNumberID, v))
}

// AccessTokenEncEQ applies the EQ predicate on the "access_token_enc" field.
func AccessTokenEncEQ(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEQ(FieldAccessTokenEnc, v))
}

// AccessTokenEncNEQ applies the NEQ predicate on the "access_token_enc" field.
func AccessTokenEncNEQ(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldNEQ(FieldAccessTokenEnc, v))
}

// AccessTokenEncIn applies the In predicate on the "access_token_enc" field.
func AccessTokenEncIn(vs ...string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldIn(FieldAccessTokenEnc, vs...))
}

// AccessTokenEncNotIn applies the NotIn predicate on the "access_token_enc" field.
func AccessTokenEncNotIn(vs ...string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldNotIn(FieldAccessTokenEnc, vs...))
}

// AccessTokenEncGT applies the GT predicate on the "access_token_enc" field.
func AccessTokenEncGT(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldGT(FieldAccessTokenEnc, v))
}

// AccessTokenEncGTE applies the GTE predicate on the "access_token_enc" field.
func AccessTokenEncGTE(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldGTE(FieldAccessTokenEnc, v))
}

// AccessTokenEncLT applies the LT predicate on the "access_token_enc" field.
func AccessTokenEncLT(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldLT(FieldAccessTokenEnc, v))
}

// AccessTokenEncLTE applies the LTE predicate on the "access_token_enc" field.
func AccessTokenEncLTE(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldLTE(FieldAccessTokenEnc, v))
}

// AccessTokenEncContains applies the Contains predicate on the "access_token_enc" field.
func AccessTokenEncContains(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldContains(FieldAccessTokenEnc, v))
}

// AccessTokenEncHasPrefix applies the HasPrefix predicate on the "access_token_enc" field.
func AccessTokenEncHasPrefix(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldHasPrefix(FieldAccessTokenEnc, v))
}

// AccessTokenEncHasSuffix applies the HasSuffix predicate on the "access_token_enc" field.
func AccessTokenEncHasSuffix(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldHasSuffix(FieldAccessTokenEnc, v))
}

// AccessTokenEncEqualFold applies the EqualFold predicate on the "access_token_enc" field.
func AccessTokenEncEqualFold(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEqualFold(FieldAccessTokenEnc, v))
}

// AccessTokenEncContainsFold applies the ContainsFold predicate on the "access_token_enc" field.
func AccessTokenEncContainsFold(v string) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldContainsFold(FieldAccessTokenEnc, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldNEQ(FieldIsActive, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WhatsAppConfig) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WhatsAppConfig) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WhatsAppConfig) predicate.WhatsAppConfig {
	return predicate.WhatsAppConfig(sql.NotPredicates(p))
}
