// Code generated by ent, DO NOT EDIT.

package trackerentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the trackerentry type in the database.
	Label = "tracker_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldEntryDate holds the string denoting the entry_date field in the database.
	FieldEntryDate = "entry_date"
	// FieldGranularity holds the string denoting the granularity field in the database.
	FieldGranularity = "granularity"
	// FieldSlot holds the string denoting the slot field in the database.
	FieldSlot = "slot"
	// FieldFieldValues holds the string denoting the field_values field in the database.
	FieldFieldValues = "field_values"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTracker holds the string denoting the tracker edge name in mutations.
	EdgeTracker = "tracker"
	// Table holds the table name of the trackerentry in the database.
	Table = "tracker_entries"
	// TrackerTable is the table that holds the tracker relation/edge.
	TrackerTable = "tracker_entries"
	// TrackerInverseTable is the table name for the Tracker entity.
	// It exists in this package in order to avoid circular dependency with the "tracker" package.
	TrackerInverseTable = "trackers"
	// TrackerColumn is the table column denoting the tracker relation/edge.
	TrackerColumn = "tracker_entry_tracker"
)

// Columns holds all SQL columns for trackerentry fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldEntryDate,
	FieldGranularity,
	FieldSlot,
	FieldFieldValues,
	FieldNotes,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "tracker_entries"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"tracker_entry_tracker",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// EntryDateValidator is a validator for the "entry_date" field. It is called by the builders before save.
	EntryDateValidator func(string) error
	// DefaultSlot holds the default value on creation for the "slot" field.
	DefaultSlot int
	// NotesValidator is a validator for the "notes" field. It is called by the builders before save.
	NotesValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Granularity defines the type for the "granularity" enum field.
type Granularity string

// GranularityDaily is the default value of the Granularity enum.
const DefaultGranularity = GranularityDaily

// Granularity values.
const (
	GranularityDaily   Granularity = "daily"
	GranularitySession Granularity = "session"
	GranularityEvent   Granularity = "event"
	GranularityRange   Granularity = "range"
)

func (gr Granularity) String() string {
	return string(gr)
}

// GranularityValidator is a validator for the "granularity" field enum values. It is called by the builders before save.
func GranularityValidator(gr Granularity) error {
	switch gr {
	case GranularityDaily, GranularitySession, GranularityEvent, GranularityRange:
		return nil
	default:
		return fmt.Errorf("trackerentry: invalid enum value for granularity field: %q", gr)
	}
}

// OrderOption defines the ordering options for the TrackerEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByEntryDate orders the results by the entry_date field.
func ByEntryDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntryDate, opts...).ToFunc()
}

// ByGranularity orders the results by the granularity field.
func ByGranularity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGranularity, opts...).ToFunc()
}

// BySlot orders the results by the slot field.
func BySlot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlot, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTrackerField orders the results by tracker field.
func ByTrackerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTrackerStep(), sql.OrderByField(field, opts...))
	}
}
func newTrackerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TrackerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, TrackerTable, TrackerColumn),
	)
}
