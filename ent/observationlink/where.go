// Code generated by ent, DO NOT EDIT.

package observationlink

import (
	"time"
	"tracker-studio-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldLTE(FieldID, id))
}

// TrackerID applies equality check predicate on the "tracker_id" field. It's identical to TrackerIDEQ.
func TrackerID(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldEQ(FieldTrackerID, v))
}

// ObserverUserID applies equality check predicate on the "observer_user_id" field. It's identical to ObserverUserIDEQ.
func ObserverUserID(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldEQ(FieldObserverUserID, v))
}

// ContextID applies equality check predicate on the "context_id" field. It's identical to ContextIDEQ.
func ContextID(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldEQ(FieldContextID, v))
}

// GrantedBy applies equality check predicate on the "granted_by" field. It's identical to GrantedByEQ.
func GrantedBy(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldEQ(FieldGrantedBy, v))
}

// RevokedAt applies equality check predicate on the "revoked_at" field. It's identical to RevokedAtEQ.
func RevokedAt(v time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldEQ(FieldRevokedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldEQ(FieldCreatedAt, v))
}

// TrackerIDEQ applies the EQ predicate on the "tracker_id" field.
func TrackerIDEQ(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldEQ(FieldTrackerID, v))
}

// TrackerIDNEQ applies the NEQ predicate on the "tracker_id" field.
func TrackerIDNEQ(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNEQ(FieldTrackerID, v))
}

// TrackerIDIn applies the In predicate on the "tracker_id" field.
func TrackerIDIn(vs ...uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldIn(FieldTrackerID, vs...))
}

// TrackerIDNotIn applies the NotIn predicate on the "tracker_id" field.
func TrackerIDNotIn(vs ...uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNotIn(FieldTrackerID, vs...))
}

// TrackerIDGT applies the GT predicate on the "tracker_id" field.
func TrackerIDGT(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldGT(FieldTrackerID, v))
}

// TrackerIDGTE applies the GTE predicate on the "tracker_id" field.
func TrackerIDGTE(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldGTE(FieldTrackerID, v))
}

// TrackerIDLT applies the LT predicate on the "tracker_id" field.
func TrackerIDLT(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldLT(FieldTrackerID, v))
}

// TrackerIDLTE applies the LTE predicate on the "tracker_id" field.
func TrackerIDLTE(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldLTE(FieldTrackerID, v))
}

// ObserverUserIDEQ applies the EQ predicate on the "observer_user_id" field.
func ObserverUserIDEQ(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldEQ(FieldObserverUserID, v))
}

// ObserverUserIDNEQ applies the NEQ predicate on the "observer_user_id" field.
func ObserverUserIDNEQ(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNEQ(FieldObserverUserID, v))
}

// ObserverUserIDIn applies the In predicate on the "observer_user_id" field.
func ObserverUserIDIn(vs ...uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldIn(FieldObserverUserID, vs...))
}

// ObserverUserIDNotIn applies the NotIn predicate on the "observer_user_id" field.
func ObserverUserIDNotIn(vs ...uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNotIn(FieldObserverUserID, vs...))
}

// ObserverUserIDGT applies the GT predicate on the "observer_user_id" field.
func ObserverUserIDGT(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldGT(FieldObserverUserID, v))
}

// ObserverUserIDGTE applies the GTE predicate on the "observer_user_id" field.
func ObserverUserIDGTE(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldGTE(FieldObserverUserID, v))
}

// ObserverUserIDLT applies the LT predicate on the "observer_user_id" field.
func ObserverUserIDLT(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldLT(FieldObserverUserID, v))
}

// ObserverUserIDLTE applies the LTE predicate on the "observer_user_id" field.
func ObserverUserIDLTE(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldLTE(FieldObserverUserID, v))
}

// ContextTypeEQ applies the EQ predicate on the "context_type" field.
func ContextTypeEQ(v ContextType) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldEQ(FieldContextType, v))
}

// ContextTypeNEQ applies the NEQ predicate on the "context_type" field.
func ContextTypeNEQ(v ContextType) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNEQ(FieldContextType, v))
}

// ContextTypeIn applies the In predicate on the "context_type" field.
func ContextTypeIn(vs ...ContextType) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldIn(FieldContextType, vs...))
}

// ContextTypeNotIn applies the NotIn predicate on the "context_type" field.
func ContextTypeNotIn(vs ...ContextType) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNotIn(FieldContextType, vs...))
}

// ContextIDEQ applies the EQ predicate on the "context_id" field.
func ContextIDEQ(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldEQ(FieldContextID, v))
}

// ContextIDNEQ applies the NEQ predicate on the "context_id" field.
func ContextIDNEQ(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNEQ(FieldContextID, v))
}

// ContextIDIn applies the In predicate on the "context_id" field.
func ContextIDIn(vs ...uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldIn(FieldContextID, vs...))
}

// ContextIDNotIn applies the NotIn predicate on the "context_id" field.
func ContextIDNotIn(vs ...uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNotIn(FieldContextID, vs...))
}

// ContextIDGT applies the GT predicate on the "context_id" field.
func ContextIDGT(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldGT(FieldContextID, v))
}

// ContextIDGTE applies the GTE predicate on the "context_id" field.
func ContextIDGTE(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldGTE(FieldContextID, v))
}

// ContextIDLT applies the LT predicate on the "context_id" field.
func ContextIDLT(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldLT(FieldContextID, v))
}

// ContextIDLTE applies the LTE predicate on the "context_id" field.
func ContextIDLTE(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldLTE(FieldContextID, v))
}

// GrantedByEQ applies the EQ predicate on the "granted_by" field.
func GrantedByEQ(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldEQ(FieldGrantedBy, v))
}

// GrantedByNEQ applies the NEQ predicate on the "granted_by" field.
func GrantedByNEQ(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNEQ(FieldGrantedBy, v))
}

// GrantedByIn applies the In predicate on the "granted_by" field.
func GrantedByIn(vs ...uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldIn(FieldGrantedBy, vs...))
}

// GrantedByNotIn applies the NotIn predicate on the "granted_by" field.
func GrantedByNotIn(vs ...uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNotIn(FieldGrantedBy, vs...))
}

// GrantedByGT applies the GT predicate on the "granted_by" field.
func GrantedByGT(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldGT(FieldGrantedBy, v))
}

// GrantedByGTE applies the GTE predicate on the "granted_by" field.
func GrantedByGTE(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldGTE(FieldGrantedBy, v))
}

// GrantedByLT applies the LT predicate on the "granted_by" field.
func GrantedByLT(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldLT(FieldGrantedBy, v))
}

// GrantedByLTE applies the LTE predicate on the "granted_by" field.
func GrantedByLTE(v uuid.UUID) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldLTE(FieldGrantedBy, v))
}

// RevokedAtEQ applies the EQ predicate on the "revoked_at" field.
func RevokedAtEQ(v time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldEQ(FieldRevokedAt, v))
}

// RevokedAtNEQ applies the NEQ predicate on the "revoked_at" field.
func RevokedAtNEQ(v time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNEQ(FieldRevokedAt, v))
}

// RevokedAtIn applies the In predicate on the "revoked_at" field.
func RevokedAtIn(vs ...time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldIn(FieldRevokedAt, vs...))
}

// RevokedAtNotIn applies the NotIn predicate on the "revoked_at" field.
func RevokedAtNotIn(vs ...time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNotIn(FieldRevokedAt, vs...))
}

// RevokedAtGT applies the GT predicate on the "revoked_at" field.
func RevokedAtGT(v time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldGT(FieldRevokedAt, v))
}

// RevokedAtGTE applies the GTE predicate on the "revoked_at" field.
func RevokedAtGTE(v time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldGTE(FieldRevokedAt, v))
}

// RevokedAtLT applies the LT predicate on the "revoked_at" field.
func RevokedAtLT(v time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldLT(FieldRevokedAt, v))
}

// RevokedAtLTE applies the LTE predicate on the "revoked_at" field.
func RevokedAtLTE(v time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldLTE(FieldRevokedAt, v))
}

// RevokedAtIsNil applies the IsNil predicate on the "revoked_at" field.
func RevokedAtIsNil() predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldIsNull(FieldRevokedAt))
}

// RevokedAtNotNil applies the NotNil predicate on the "revoked_at" field.
func RevokedAtNotNil() predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNotNull(FieldRevokedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ObservationLink {
	return predicate.ObservationLink(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ObservationLink) predicate.ObservationLink {
	return predicate.ObservationLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ObservationLink) predicate.ObservationLink {
	return predicate.ObservationLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ObservationLink) predicate.ObservationLink {
	return predicate.ObservationLink(sql.NotPredicates(p))
}
