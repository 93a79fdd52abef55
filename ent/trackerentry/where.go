// Code generated by ent, DO NOT EDIT.

package trackerentry

import (
	"time"
	"tracker-studio-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEQ(FieldOwnerID, v))
}

// EntryDate applies equality check predicate on the "entry_date" field. It's identical to EntryDateEQ.
func EntryDate(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEQ(FieldEntryDate, v))
}

// Slot applies equality check predicate on the "slot" field. It's identical to SlotEQ.
func Slot(v int) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEQ(FieldSlot, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldLTE(FieldOwnerID, v))
}

// EntryDateEQ applies the EQ predicate on the "entry_date" field.
func EntryDateEQ(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEQ(FieldEntryDate, v))
}

// EntryDateNEQ applies the NEQ predicate on the "entry_date" field.
func EntryDateNEQ(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNEQ(FieldEntryDate, v))
}

// EntryDateIn applies the In predicate on the "entry_date" field.
func EntryDateIn(vs ...string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldIn(FieldEntryDate, vs...))
}

// EntryDateNotIn applies the NotIn predicate on the "entry_date" field.
func EntryDateNotIn(vs ...string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNotIn(FieldEntryDate, vs...))
}

// EntryDateGT applies the GT predicate on the "entry_date" field.
func EntryDateGT(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldGT(FieldEntryDate, v))
}

// EntryDateGTE applies the GTE predicate on the "entry_date" field.
func EntryDateGTE(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldGTE(FieldEntryDate, v))
}

// EntryDateLT applies the LT predicate on the "entry_date" field.
func EntryDateLT(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldLT(FieldEntryDate, v))
}

// EntryDateLTE applies the LTE predicate on the "entry_date" field.
func EntryDateLTE(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldLTE(FieldEntryDate, v))
}

// EntryDateContains applies the Contains predicate on the "entry_date" field.
func EntryDateContains(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldContains(FieldEntryDate, v))
}

// EntryDateHasPrefix applies the HasPrefix predicate on the "entry_date" field.
func EntryDateHasPrefix(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldHasPrefix(FieldEntryDate, v))
}

// EntryDateHasSuffix applies the HasSuffix predicate on the "entry_date" field.
func EntryDateHasSuffix(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldHasSuffix(FieldEntryDate, v))
}

// EntryDateEqualFold applies the EqualFold predicate on the "entry_date" field.
func EntryDateEqualFold(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEqualFold(FieldEntryDate, v))
}

// EntryDateContainsFold applies the ContainsFold predicate on the "entry_date" field.
func EntryDateContainsFold(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldContainsFold(FieldEntryDate, v))
}

// GranularityEQ applies the EQ predicate on the "granularity" field.
func GranularityEQ(v Granularity) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEQ(FieldGranularity, v))
}

// GranularityNEQ applies the NEQ predicate on the "granularity" field.
func GranularityNEQ(v Granularity) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNEQ(FieldGranularity, v))
}

// GranularityIn applies the In predicate on the "granularity" field.
func GranularityIn(vs ...Granularity) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldIn(FieldGranularity, vs...))
}

// GranularityNotIn applies the NotIn predicate on the "granularity" field.
func GranularityNotIn(vs ...Granularity) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNotIn(FieldGranularity, vs...))
}

// SlotEQ applies the EQ predicate on the "slot" field.
func SlotEQ(v int) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEQ(FieldSlot, v))
}

// SlotNEQ applies the NEQ predicate on the "slot" field.
func SlotNEQ(v int) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNEQ(FieldSlot, v))
}

// SlotIn applies the In predicate on the "slot" field.
func SlotIn(vs ...int) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldIn(FieldSlot, vs...))
}

// SlotNotIn applies the NotIn predicate on the "slot" field.
func SlotNotIn(vs ...int) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNotIn(FieldSlot, vs...))
}

// SlotGT applies the GT predicate on the "slot" field.
func SlotGT(v int) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldGT(FieldSlot, v))
}

// SlotGTE applies the GTE predicate on the "slot" field.
func SlotGTE(v int) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldGTE(FieldSlot, v))
}

// SlotLT applies the LT predicate on the "slot" field.
func SlotLT(v int) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldLT(FieldSlot, v))
}

// SlotLTE applies the LTE predicate on the "slot" field.
func SlotLTE(v int) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldLTE(FieldSlot, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTracker applies the HasEdge predicate on the "tracker" edge.
func HasTracker() predicate.TrackerEntry {
	return predicate.TrackerEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, TrackerTable, TrackerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTrackerWith applies the HasEdge predicate on the "tracker" edge with a given conditions (other predicates).
func HasTrackerWith(preds ...predicate.Tracker) predicate.TrackerEntry {
	return predicate.TrackerEntry(func(s *sql.Selector) {
		step := newTrackerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrackerEntry) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrackerEntry) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrackerEntry) predicate.TrackerEntry {
	return predicate.TrackerEntry(sql.NotPredicates(p))
}
