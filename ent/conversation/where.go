// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/interacai/flowcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTenantID, v))
}

// Participant applies equality check predicate on the "participant" field. It's identical to ParticipantEQ.
func Participant(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParticipant, v))
}

// LastMessage applies equality check predicate on the "last_message" field. It's identical to LastMessageEQ.
func LastMessage(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastMessage, v))
}

// LastMessageAt applies equality check predicate on the "last_message_at" field. It's identical to LastMessageAtEQ.
func LastMessageAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastMessageAt, v))
}

// UnreadCount applies equality check predicate on the "unread_count" field. It's identical to UnreadCountEQ.
func UnreadCount(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUnreadCount, v))
}

// LastIntent applies equality check predicate on the "last_intent" field. It's identical to LastIntentEQ.
func LastIntent(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastIntent, v))
}

// LastSentiment applies equality check predicate on the "last_sentiment" field. It's identical to LastSentimentEQ.
func LastSentiment(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastSentiment, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldTenantID, v))
}

// ParticipantEQ applies the EQ predicate on the "participant" field.
func ParticipantEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParticipant, v))
}

// ParticipantNEQ applies the NEQ predicate on the "participant" field.
func ParticipantNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldParticipant, v))
}

// ParticipantIn applies the In predicate on the "participant" field.
func ParticipantIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldParticipant, vs...))
}

// ParticipantNotIn applies the NotIn predicate on the "participant" field.
func ParticipantNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldParticipant, vs...))
}

// ParticipantGT applies the GT predicate on the "participant" field.
func ParticipantGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldParticipant, v))
}

// ParticipantGTE applies the GTE predicate on the "participant" field.
func ParticipantGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldParticipant, v))
}

// ParticipantLT applies the LT predicate on the "participant" field.
func ParticipantLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldParticipant, v))
}

// ParticipantLTE applies the LTE predicate on the "participant" field.
func ParticipantLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldParticipant, v))
}

// ParticipantContains applies the Contains predicate on the "participant" field.
func ParticipantContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldParticipant, v))
}

// ParticipantHasPrefix applies the HasPrefix predicate on the "participant" field.
func ParticipantHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldParticipant, v))
}

// ParticipantHasSuffix applies the HasSuffix predicate on the "participant" field.
func ParticipantHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldParticipant, v))
}

// ParticipantEqualFold applies the EqualFold predicate on the "participant" field.
func ParticipantEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldParticipant, v))
}

// ParticipantContainsFold applies the ContainsFold predicate on the "participant" field.
func ParticipantContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldParticipant, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v Channel) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v Channel) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...Channel) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...Channel) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldChannel, vs...))
}

// LastMessageEQ applies the EQ predicate on the "last_message" field.
func LastMessageEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastMessage, v))
}

// LastMessageNEQ applies the NEQ predicate on the "last_message" field.
func LastMessageNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldLastMessage, v))
}

// LastMessageIn applies the In predicate on the "last_message" field.
func LastMessageIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldLastMessage, vs...))
}

// LastMessageNotIn applies the NotIn predicate on the "last_message" field.
func LastMessageNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldLastMessage, vs...))
}

// LastMessageGT applies the GT predicate on the "last_message" field.
func LastMessageGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldLastMessage, v))
}

// LastMessageGTE applies the GTE predicate on the "last_message" field.
func LastMessageGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldLastMessage, v))
}

// LastMessageLT applies the LT predicate on the "last_message" field.
func LastMessageLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldLastMessage, v))
}

// LastMessageLTE applies the LTE predicate on the "last_message" field.
func LastMessageLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldLastMessage, v))
}

// LastMessageContains applies the Contains predicate on the "last_message" field.
func LastMessageContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldLastMessage, v))
}

// LastMessageHasPrefix applies the HasPrefix predicate on the "last_message" field.
func LastMessageHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldLastMessage, v))
}

// LastMessageHasSuffix applies the HasSuffix predicate on the "last_message" field.
func LastMessageHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldLastMessage, v))
}

// LastMessageIsNil applies the IsNil predicate on the "last_message" field.
func LastMessageIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldLastMessage))
}

// LastMessageNotNil applies the NotNil predicate on the "last_message" field.
func LastMessageNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldLastMessage))
}

// LastMessageEqualFold applies the EqualFold predicate on the "last_message" field.
func LastMessageEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldLastMessage, v))
}

// LastMessageContainsFold applies the ContainsFold predicate on the "last_message" field.
func LastMessageContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldLastMessage, v))
}

// LastMessageAtEQ applies the EQ predicate on the "last_message_at" field.
func LastMessageAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastMessageAt, v))
}

// LastMessageAtNEQ applies the NEQ predicate on the "last_message_at" field.
func LastMessageAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldLastMessageAt, v))
}

// LastMessageAtIn applies the In predicate on the "last_message_at" field.
func LastMessageAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldLastMessageAt, vs...))
}

// LastMessageAtNotIn applies the NotIn predicate on the "last_message_at" field.
func LastMessageAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldLastMessageAt, vs...))
}

// LastMessageAtGT applies the GT predicate on the "last_message_at" field.
func LastMessageAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldLastMessageAt, v))
}

// LastMessageAtGTE applies the GTE predicate on the "last_message_at" field.
func LastMessageAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldLastMessageAt, v))
}

// LastMessageAtLT applies the LT predicate on the "last_message_at" field.
func LastMessageAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldLastMessageAt, v))
}

// LastMessageAtLTE applies the LTE predicate on the "last_message_at" field.
func LastMessageAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldLastMessageAt, v))
}

// LastMessageAtIsNil applies the IsNil predicate on the "last_message_at" field.
func LastMessageAtIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldLastMessageAt))
}

// LastMessageAtNotNil applies the NotNil predicate on the "last_message_at" field.
func LastMessageAtNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldLastMessageAt))
}

// UnreadCountEQ applies the EQ predicate on the "unread_count" field.
func UnreadCountEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUnreadCount, v))
}

// UnreadCountNEQ applies the NEQ predicate on the "unread_count" field.
func UnreadCountNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldUnreadCount, v))
}

// UnreadCountIn applies the In predicate on the "unread_count" field.
func UnreadCountIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldUnreadCount, vs...))
}

// UnreadCountNotIn applies the NotIn predicate on the "unread_count" field.
func UnreadCountNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldUnreadCount, vs...))
}

// UnreadCountGT applies the GT predicate on the "unread_count" field.
func UnreadCountGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldUnreadCount, v))
}

// UnreadCountGTE applies the GTE predicate on the "unread_count" field.
func UnreadCountGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldUnreadCount, v))
}

// UnreadCountLT applies the LT predicate on the "unread_count" field.
func UnreadCountLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldUnreadCount, v))
}

// UnreadCountLTE applies the LTE predicate on the "unread_count" field.
func UnreadCountLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldUnreadCount, v))
}

// LastIntentEQ applies the EQ predicate on the "last_intent" field.
func LastIntentEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastIntent, v))
}

// LastIntentNEQ applies the NEQ predicate on the "last_intent" field.
func LastIntentNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldLastIntent, v))
}

// LastIntentIn applies the In predicate on the "last_intent" field.
func LastIntentIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldLastIntent, vs...))
}

// LastIntentNotIn applies the NotIn predicate on the "last_intent" field.
func LastIntentNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldLastIntent, vs...))
}

// LastIntentGT applies the GT predicate on the "last_intent" field.
func LastIntentGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldLastIntent, v))
}

// LastIntentGTE applies the GTE predicate on the "last_intent" field.
func LastIntentGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldLastIntent, v))
}

// LastIntentLT applies the LT predicate on the "last_intent" field.
func LastIntentLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldLastIntent, v))
}

// LastIntentLTE applies the LTE predicate on the "last_intent" field.
func LastIntentLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldLastIntent, v))
}

// LastIntentContains applies the Contains predicate on the "last_intent" field.
func LastIntentContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldLastIntent, v))
}

// LastIntentHasPrefix applies the HasPrefix predicate on the "last_intent" field.
func LastIntentHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldLastIntent, v))
}

// LastIntentHasSuffix applies the HasSuffix predicate on the "last_intent" field.
func LastIntentHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldLastIntent, v))
}

// LastIntentIsNil applies the IsNil predicate on the "last_intent" field.
func LastIntentIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldLastIntent))
}

// LastIntentNotNil applies the NotNil predicate on the "last_intent" field.
func LastIntentNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldLastIntent))
}

// LastIntentEqualFold applies the EqualFold predicate on the "last_intent" field.
func LastIntentEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldLastIntent, v))
}

// LastIntentContainsFold applies the ContainsFold predicate on the "last_intent" field.
func LastIntentContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldLastIntent, v))
}

// LastSentimentEQ applies the EQ predicate on the "last_sentiment" field.
func LastSentimentEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastSentiment, v))
}

// LastSentimentNEQ applies the NEQ predicate on the "last_sentiment" field.
func LastSentimentNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldLastSentiment, v))
}

// LastSentimentIn applies the In predicate on the "last_sentiment" field.
func LastSentimentIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldLastSentiment, vs...))
}

// LastSentimentNotIn applies the NotIn predicate on the "last_sentiment" field.
func LastSentimentNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldLastSentiment, vs...))
}

// LastSentimentGT applies the GT predicate on the "last_sentiment" field.
func LastSentimentGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldLastSentiment, v))
}

// LastSentimentGTE applies the GTE predicate on the "last_sentiment" field.
func LastSentimentGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldLastSentiment, v))
}

// LastSentimentLT applies the LT predicate on the "last_sentiment" field.
func LastSentimentLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldLastSentiment, v))
}

// LastSentimentLTE applies the LTE predicate on the "last_sentiment" field.
func LastSentimentLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldLastSentiment, v))
}

// LastSentimentContains applies the Contains predicate on the "last_sentiment" field.
func LastSentimentContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldLastSentiment, v))
}

// LastSentimentHasPrefix applies the HasPrefix predicate on the "last_sentiment" field.
func LastSentimentHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldLastSentiment, v))
}

// LastSentimentHasSuffix applies the HasSuffix predicate on the "last_sentiment" field.
func LastSentimentHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldLastSentiment, v))
}

// LastSentimentIsNil applies the IsNil predicate on the "last_sentiment" field.
func LastSentimentIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldLastSentiment))
}

// LastSentimentNotNil applies the NotNil predicate on the "last_sentiment" field.
func LastSentimentNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldLastSentiment))
}

// LastSentimentEqualFold applies the EqualFold predicate on the "last_sentiment" field.
func LastSentimentEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldLastSentiment, v))
}

// LastSentimentContainsFold applies the ContainsFold predicate on the "last_sentiment" field.
func LastSentimentContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldLastSentiment, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.NotPredicates(p))
}
