// Code generated by ent, DO NOT EDIT.

package observationlink

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the observationlink type in the database.
	Label = "observation_link"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTrackerID holds the string denoting the tracker_id field in the database.
	FieldTrackerID = "tracker_id"
	// FieldObserverUserID holds the string denoting the observer_user_id field in the database.
	FieldObserverUserID = "observer_user_id"
	// FieldContextType holds the string denoting the context_type field in the database.
	FieldContextType = "context_type"
	// FieldContextID holds the string denoting the context_id field in the database.
	FieldContextID = "context_id"
	// FieldGrantedBy holds the string denoting the granted_by field in the database.
	FieldGrantedBy = "granted_by"
	// FieldRevokedAt holds the string denoting the revoked_at field in the database.
	FieldRevokedAt = "revoked_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the observationlink in the database.
	Table = "observation_links"
)

// Columns holds all SQL columns for observationlink fields.
var Columns = []string{
	FieldID,
	FieldTrackerID,
	FieldObserverUserID,
	FieldContextType,
	FieldContextID,
	FieldGrantedBy,
	FieldRevokedAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// ContextType defines the type for the "context_type" enum field.
type ContextType string

// ContextType values.
const (
	ContextTypeGuardrailsProject ContextType = "guardrails_project"
	ContextTypeTeam              ContextType = "team"
	ContextTypeHousehold         ContextType = "household"
)

func (ct ContextType) String() string {
	return string(ct)
}

// ContextTypeValidator is a validator for the "context_type" field enum values. It is called by the builders before save.
func ContextTypeValidator(ct ContextType) error {
	switch ct {
	case ContextTypeGuardrailsProject, ContextTypeTeam, ContextTypeHousehold:
		return nil
	default:
		return fmt.Errorf("observationlink: invalid enum value for context_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the ObservationLink queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTrackerID orders the results by the tracker_id field.
func ByTrackerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrackerID, opts...).ToFunc()
}

// ByObserverUserID orders the results by the observer_user_id field.
func ByObserverUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObserverUserID, opts...).ToFunc()
}

// ByContextType orders the results by the context_type field.
func ByContextType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextType, opts...).ToFunc()
}

// ByContextID orders the results by the context_id field.
func ByContextID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextID, opts...).ToFunc()
}

// ByGrantedBy orders the results by the granted_by field.
func ByGrantedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrantedBy, opts...).ToFunc()
}

// ByRevokedAt orders the results by the revoked_at field.
func ByRevokedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevokedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
