// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"
	"tracker-studio-api/ent/observationlink"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ObservationLink is the model entity for the ObservationLink schema.
type ObservationLink struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TrackerID holds the value of the "tracker_id" field.
	TrackerID uuid.UUID `json:"tracker_id,omitempty"`
	// ObserverUserID holds the value of the "observer_user_id" field.
	ObserverUserID uuid.UUID `json:"observer_user_id,omitempty"`
	// ContextType holds the value of the "context_type" field.
	ContextType observationlink.ContextType `json:"context_type,omitempty"`
	// ContextID holds the value of the "context_id" field.
	ContextID uuid.UUID `json:"context_id,omitempty"`
	// GrantedBy holds the value of the "granted_by" field.
	GrantedBy uuid.UUID `json:"granted_by,omitempty"`
	// RevokedAt holds the value of the "revoked_at" field.
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ObservationLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case observationlink.FieldContextType:
			values[i] = new(sql.NullString)
		case observationlink.FieldRevokedAt, observationlink.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case observationlink.FieldID, observationlink.FieldTrackerID, observationlink.FieldObserverUserID, observationlink.FieldContextID, observationlink.FieldGrantedBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ObservationLink fields.
func (_m *ObservationLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case observationlink.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case observationlink.FieldTrackerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tracker_id", values[i])
			} else if value != nil {
				_m.TrackerID = *value
			}
		case observationlink.FieldObserverUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field observer_user_id", values[i])
			} else if value != nil {
				_m.ObserverUserID = *value
			}
		case observationlink.FieldContextType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context_type", values[i])
			} else if value.Valid {
				_m.ContextType = observationlink.ContextType(value.String)
			}
		case observationlink.FieldContextID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field context_id", values[i])
			} else if value != nil {
				_m.ContextID = *value
			}
		case observationlink.FieldGrantedBy:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field granted_by", values[i])
			} else if value != nil {
				_m.GrantedBy = *value
			}
		case observationlink.FieldRevokedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field revoked_at", values[i])
			} else if value.Valid {
				_m.RevokedAt = new(time.Time)
				*_m.RevokedAt = value.Time
			}
		case observationlink.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ObservationLink.
// This includes values selected through modifiers, order, etc.
func (_m *ObservationLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ObservationLink.
// Note that you need to call ObservationLink.Unwrap() before calling this method if this ObservationLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ObservationLink) Update() *ObservationLinkUpdateOne {
	return NewObservationLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ObservationLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ObservationLink) Unwrap() *ObservationLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ObservationLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ObservationLink) String() string {
	var builder strings.Builder
	builder.WriteString("ObservationLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tracker_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrackerID))
	builder.WriteString(", ")
	builder.WriteString("observer_user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ObserverUserID))
	builder.WriteString(", ")
	builder.WriteString("context_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextType))
	builder.WriteString(", ")
	builder.WriteString("context_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextID))
	builder.WriteString(", ")
	builder.WriteString("granted_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.GrantedBy))
	builder.WriteString(", ")
	if v := _m.RevokedAt; v != nil {
		builder.WriteString("revoked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ObservationLinks is a parsable slice of ObservationLink.
type ObservationLinks []*ObservationLink
