// Code generated by ent, DO NOT EDIT.

package contextevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the contextevent type in the database.
	Label = "context_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldEndDate holds the string denoting the end_date field in the database.
	FieldEndDate = "end_date"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTracker holds the string denoting the tracker edge name in mutations.
	EdgeTracker = "tracker"
	// Table holds the table name of the contextevent in the database.
	Table = "context_events"
	// TrackerTable is the table that holds the tracker relation/edge.
	TrackerTable = "context_events"
	// TrackerInverseTable is the table name for the Tracker entity.
	// It exists in this package in order to avoid circular dependency with the "tracker" package.
	TrackerInverseTable = "trackers"
	// TrackerColumn is the table column denoting the tracker relation/edge.
	TrackerColumn = "context_event_tracker"
)

// Columns holds all SQL columns for contextevent fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldLabel,
	FieldKind,
	FieldStartDate,
	FieldEndDate,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "context_events"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"context_event_tracker",
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
	// LabelValidator is a validator for the "label" field. It is called by the builders before save.
	LabelValidator func(string) error
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// StartDateValidator is a validator for the "start_date" field. It is called by the builders before save.
	StartDateValidator func(string) error
	// EndDateValidator is a validator for the "end_date" field. It is called by the builders before save.
	EndDateValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ContextEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByEndDate orders the results by the end_date field.
func ByEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndDate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
