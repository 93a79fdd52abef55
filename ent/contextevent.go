// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"
	"tracker-studio-api/ent/contextevent"
	"tracker-studio-api/ent/tracker"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ContextEvent is the model entity for the ContextEvent schema.
type ContextEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// Label holds the value of the "label" field.
	Label string `json:"label,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate string `json:"start_date,omitempty"`
	// EndDate holds the value of the "end_date" field.
	EndDate string `json:"end_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContextEventQuery when eager-loading is set.
	Edges                 ContextEventEdges `json:"edges"`
	context_event_tracker *uuid.UUID
	selectValues          sql.SelectValues
}

// ContextEventEdges holds the relations/edges for other nodes in the graph.
type ContextEventEdges struct {
	// Tracker holds the value of the tracker edge.
	Tracker *Tracker `json:"tracker,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TrackerOrErr returns the Tracker value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContextEventEdges) TrackerOrErr() (*Tracker, error) {
	if e.Tracker != nil {
		return e.Tracker, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tracker.Label}
	}
	return nil, &NotLoadedError{edge: "tracker"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContextEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contextevent.FieldLabel, contextevent.FieldKind, contextevent.FieldStartDate, contextevent.FieldEndDate:
			values[i] = new(sql.NullString)
		case contextevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case contextevent.FieldID, contextevent.FieldOwnerID:
			values[i] = new(uuid.UUID)
		case contextevent.ForeignKeys[0]: // context_event_tracker
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContextEvent fields.
func (_m *ContextEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contextevent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contextevent.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case contextevent.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case contextevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case contextevent.FieldStartDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = value.String
			}
		case contextevent.FieldEndDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_date", values[i])
			} else if value.Valid {
				_m.EndDate = value.String
			}
		case contextevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contextevent.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field context_event_tracker", values[i])
			} else if value.Valid {
				_m.context_event_tracker = new(uuid.UUID)
				*_m.context_event_tracker = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContextEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ContextEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTracker queries the "tracker" edge of the ContextEvent entity.
func (_m *ContextEvent) QueryTracker() *TrackerQuery {
	return NewContextEventClient(_m.config).QueryTracker(_m)
}

// Update returns a builder for updating this ContextEvent.
// Note that you need to call ContextEvent.Unwrap() before calling this method if this ContextEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContextEvent) Update() *ContextEventUpdateOne {
	return NewContextEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContextEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContextEvent) Unwrap() *ContextEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContextEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContextEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ContextEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(_m.StartDate)
	builder.WriteString(", ")
	builder.WriteString("end_date=")
	builder.WriteString(_m.EndDate)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContextEvents is a parsable slice of ContextEvent.
type ContextEvents []*ContextEvent
