// Code generated by ent, DO NOT EDIT.

package businesssettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/interacai/flowcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldTenantID, v))
}

// Industry applies equality check predicate on the "industry" field. It's identical to IndustryEQ.
func Industry(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldIndustry, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldDescription, v))
}

// ServicesText applies equality check predicate on the "services_text" field. It's identical to ServicesTextEQ.
func ServicesText(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldServicesText, v))
}

// Tone applies equality check predicate on the "tone" field. It's identical to ToneEQ.
func Tone(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldTone, v))
}

// Faq applies equality check predicate on the "faq" field. It's identical to FaqEQ.
func Faq(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldFaq, v))
}

// CustomInstructions applies equality check predicate on the "custom_instructions" field. It's identical to CustomInstructionsEQ.
func CustomInstructions(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldCustomInstructions, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldLocation, v))
}

// Hours applies equality check predicate on the "hours" field. It's identical to HoursEQ.
func Hours(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldHours, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContainsFold(FieldTenantID, v))
}

// IndustryEQ applies the EQ predicate on the "industry" field.
func IndustryEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldIndustry, v))
}

// IndustryNEQ applies the NEQ predicate on the "industry" field.
func IndustryNEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldIndustry, v))
}

// IndustryIn applies the In predicate on the "industry" field.
func IndustryIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldIndustry, vs...))
}

// IndustryNotIn applies the NotIn predicate on the "industry" field.
func IndustryNotIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldIndustry, vs...))
}

// IndustryGT applies the GT predicate on the "industry" field.
func IndustryGT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldIndustry, v))
}

// IndustryGTE applies the GTE predicate on the "industry" field.
func IndustryGTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldIndustry, v))
}

// IndustryLT applies the LT predicate on the "industry" field.
func IndustryLT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldIndustry, v))
}

// IndustryLTE applies the LTE predicate on the "industry" field.
func IndustryLTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldIndustry, v))
}

// IndustryContains applies the Contains predicate on the "industry" field.
func IndustryContains(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContains(FieldIndustry, v))
}

// IndustryHasPrefix applies the HasPrefix predicate on the "industry" field.
func IndustryHasPrefix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasPrefix(FieldIndustry, v))
}

// IndustryHasSuffix applies the HasSuffix predicate on the "industry" field.
func IndustryHasSuffix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasSuffix(FieldIndustry, v))
}

// IndustryIsNil applies the IsNil predicate on the "industry" field.
func IndustryIsNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIsNull(FieldIndustry))
}

// IndustryNotNil applies the NotNil predicate on the "industry" field.
func IndustryNotNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotNull(FieldIndustry))
}

// IndustryEqualFold applies the EqualFold predicate on the "industry" field.
func IndustryEqualFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEqualFold(FieldIndustry, v))
}

// IndustryContainsFold applies the ContainsFold predicate on the "industry" field.
func IndustryContainsFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContainsFold(FieldIndustry, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContainsFold(FieldDescription, v))
}

// ServicesTextEQ applies the EQ predicate on the "services_text" field.
func ServicesTextEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldServicesText, v))
}

// ServicesTextNEQ applies the NEQ predicate on the "services_text" field.
func ServicesTextNEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldServicesText, v))
}

// ServicesTextIn applies the In predicate on the "services_text" field.
func ServicesTextIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldServicesText, vs...))
}

// ServicesTextNotIn applies the NotIn predicate on the "services_text" field.
func ServicesTextNotIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldServicesText, vs...))
}

// ServicesTextGT applies the GT predicate on the "services_text" field.
func ServicesTextGT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldServicesText, v))
}

// ServicesTextGTE applies the GTE predicate on the "services_text" field.
func ServicesTextGTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldServicesText, v))
}

// ServicesTextLT applies the LT predicate on the "services_text" field.
func ServicesTextLT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldServicesText, v))
}

// ServicesTextLTE applies the LTE predicate on the "services_text" field.
func ServicesTextLTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldServicesText, v))
}

// ServicesTextContains applies the Contains predicate on the "services_text" field.
func ServicesTextContains(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContains(FieldServicesText, v))
}

// ServicesTextHasPrefix applies the HasPrefix predicate on the "services_text" field.
func ServicesTextHasPrefix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasPrefix(FieldServicesText, v))
}

// ServicesTextHasSuffix applies the HasSuffix predicate on the "services_text" field.
func ServicesTextHasSuffix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasSuffix(FieldServicesText, v))
}

// ServicesTextIsNil applies the IsNil predicate on the "services_text" field.
func ServicesTextIsNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIsNull(FieldServicesText))
}

// ServicesTextNotNil applies the NotNil predicate on the "services_text" field.
func ServicesTextNotNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotNull(FieldServicesText))
}

// ServicesTextEqualFold applies the EqualFold predicate on the "services_text" field.
func ServicesTextEqualFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEqualFold(FieldServicesText, v))
}

// ServicesTextContainsFold applies the ContainsFold predicate on the "services_text" field.
func ServicesTextContainsFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContainsFold(FieldServicesText, v))
}

// ToneEQ applies the EQ predicate on the "tone" field.
func ToneEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldTone, v))
}

// ToneNEQ applies the NEQ predicate on the "tone" field.
func ToneNEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldTone, v))
}

// ToneIn applies the In predicate on the "tone" field.
func ToneIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldTone, vs...))
}

// ToneNotIn applies the NotIn predicate on the "tone" field.
func ToneNotIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldTone, vs...))
}

// ToneGT applies the GT predicate on the "tone" field.
func ToneGT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldTone, v))
}

// ToneGTE applies the GTE predicate on the "tone" field.
func ToneGTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldTone, v))
}

// ToneLT applies the LT predicate on the "tone" field.
func ToneLT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldTone, v))
}

// ToneLTE applies the LTE predicate on the "tone" field.
func ToneLTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldTone, v))
}

// ToneContains applies the Contains predicate on the "tone" field.
func ToneContains(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContains(FieldTone, v))
}

// ToneHasPrefix applies the HasPrefix predicate on the "tone" field.
func ToneHasPrefix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasPrefix(FieldTone, v))
}

// ToneHasSuffix applies the HasSuffix predicate on the "tone" field.
func ToneHasSuffix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasSuffix(FieldTone, v))
}

// ToneIsNil applies the IsNil predicate on the "tone" field.
func ToneIsNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIsNull(FieldTone))
}

// ToneNotNil applies the NotNil predicate on the "tone" field.
func ToneNotNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotNull(FieldTone))
}

// ToneEqualFold applies the EqualFold predicate on the "tone" field.
func ToneEqualFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEqualFold(FieldTone, v))
}

// ToneContainsFold applies the ContainsFold predicate on the "tone" field.
func ToneContainsFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContainsFold(FieldTone, v))
}

// FaqEQ applies the EQ predicate on the "faq" field.
func FaqEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldFaq, v))
}

// FaqNEQ applies the NEQ predicate on the "faq" field.
func FaqNEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldFaq, v))
}

// FaqIn applies the In predicate on the "faq" field.
func FaqIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldFaq, vs...))
}

// FaqNotIn applies the NotIn predicate on the "faq" field.
func FaqNotIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldFaq, vs...))
}

// FaqGT applies the GT predicate on the "faq" field.
func FaqGT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldFaq, v))
}

// FaqGTE applies the GTE predicate on the "faq" field.
func FaqGTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldFaq, v))
}

// FaqLT applies the LT predicate on the "faq" field.
func FaqLT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldFaq, v))
}

// FaqLTE applies the LTE predicate on the "faq" field.
func FaqLTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldFaq, v))
}

// FaqContains applies the Contains predicate on the "faq" field.
func FaqContains(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContains(FieldFaq, v))
}

// FaqHasPrefix applies the HasPrefix predicate on the "faq" field.
func FaqHasPrefix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasPrefix(FieldFaq, v))
}

// FaqHasSuffix applies the HasSuffix predicate on the "faq" field.
func FaqHasSuffix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasSuffix(FieldFaq, v))
}

// FaqIsNil applies the IsNil predicate on the "faq" field.
func FaqIsNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIsNull(FieldFaq))
}

// FaqNotNil applies the NotNil predicate on the "faq" field.
func FaqNotNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotNull(FieldFaq))
}

// FaqEqualFold applies the EqualFold predicate on the "faq" field.
func FaqEqualFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEqualFold(FieldFaq, v))
}

// FaqContainsFold applies the ContainsFold predicate on the "faq" field.
func FaqContainsFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContainsFold(FieldFaq, v))
}

// CustomInstructionsEQ applies the EQ predicate on the "custom_instructions" field.
func CustomInstructionsEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldCustomInstructions, v))
}

// CustomInstructionsNEQ applies the NEQ predicate on the "custom_instructions" field.
func CustomInstructionsNEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldCustomInstructions, v))
}

// CustomInstructionsIn applies the In predicate on the "custom_instructions" field.
func CustomInstructionsIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldCustomInstructions, vs...))
}

// CustomInstructionsNotIn applies the NotIn predicate on the "custom_instructions" field.
func CustomInstructionsNotIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldCustomInstructions, vs...))
}

// CustomInstructionsGT applies the GT predicate on the "custom_instructions" field.
func CustomInstructionsGT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldCustomInstructions, v))
}

// CustomInstructionsGTE applies the GTE predicate on the "custom_instructions" field.
func CustomInstructionsGTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldCustomInstructions, v))
}

// CustomInstructionsLT applies the LT predicate on the "custom_instructions" field.
func CustomInstructionsLT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldCustomInstructions, v))
}

// CustomInstructionsLTE applies the LTE predicate on the "custom_instructions" field.
func CustomInstructionsLTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldCustomInstructions, v))
}

// CustomInstructionsContains applies the Contains predicate on the "custom_instructions" field.
func CustomInstructionsContains(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContains(FieldCustomInstructions, v))
}

// CustomInstructionsHasPrefix applies the HasPrefix predicate on the "custom_instructions" field.
func CustomInstructionsHasPrefix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasPrefix(FieldCustomInstructions, v))
}

// CustomInstructionsHasSuffix applies the HasSuffix predicate on the "custom_instructions" field.
func CustomInstructionsHasSuffix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasSuffix(FieldCustomInstructions, v))
}

// CustomInstructionsIsNil applies the IsNil predicate on the "custom_instructions" field.
func CustomInstructionsIsNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIsNull(FieldCustomInstructions))
}

// CustomInstructionsNotNil applies the NotNil predicate on the "custom_instructions" field.
func CustomInstructionsNotNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotNull(FieldCustomInstructions))
}

// CustomInstructionsEqualFold applies the EqualFold predicate on the "custom_instructions" field.
func CustomInstructionsEqualFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEqualFold(FieldCustomInstructions, v))
}

// CustomInstructionsContainsFold applies the ContainsFold predicate on the "custom_instructions" field.
func CustomInstructionsContainsFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContainsFold(FieldCustomInstructions, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContainsFold(FieldLocation, v))
}

// HoursEQ applies the EQ predicate on the "hours" field.
func HoursEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldHours, v))
}

// HoursNEQ applies the NEQ predicate on the "hours" field.
func HoursNEQ(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldHours, v))
}

// HoursIn applies the In predicate on the "hours" field.
func HoursIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldHours, vs...))
}

// HoursNotIn applies the NotIn predicate on the "hours" field.
func HoursNotIn(vs ...string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldHours, vs...))
}

// HoursGT applies the GT predicate on the "hours" field.
func HoursGT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldHours, v))
}

// HoursGTE applies the GTE predicate on the "hours" field.
func HoursGTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldHours, v))
}

// HoursLT applies the LT predicate on the "hours" field.
func HoursLT(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldHours, v))
}

// HoursLTE applies the LTE predicate on the "hours" field.
func HoursLTE(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldHours, v))
}

// HoursContains applies the Contains predicate on the "hours" field.
func HoursContains(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContains(FieldHours, v))
}

// HoursHasPrefix applies the HasPrefix predicate on the "hours" field.
func HoursHasPrefix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasPrefix(FieldHours, v))
}

// HoursHasSuffix applies the HasSuffix predicate on the "hours" field.
func HoursHasSuffix(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldHasSuffix(FieldHours, v))
}

// HoursIsNil applies the IsNil predicate on the "hours" field.
func HoursIsNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIsNull(FieldHours))
}

// HoursNotNil applies the NotNil predicate on the "hours" field.
func HoursNotNil() predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotNull(FieldHours))
}

// HoursEqualFold applies the EqualFold predicate on the "hours" field.
func HoursEqualFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEqualFold(FieldHours, v))
}

// HoursContainsFold applies the ContainsFold predicate on the "hours" field.
func HoursContainsFold(v string) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldContainsFold(FieldHours, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.BusinessSettings {
	return predicate.BusinessSettings(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.BusinessSettings {
	return predicate.BusinessSettings(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BusinessSettings) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BusinessSettings) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BusinessSettings) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.NotPredicates(p))
}
