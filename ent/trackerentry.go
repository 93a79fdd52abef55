// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"tracker-studio-api/ent/tracker"
	"tracker-studio-api/ent/trackerentry"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// TrackerEntry is the model entity for the TrackerEntry schema.
type TrackerEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// EntryDate holds the value of the "entry_date" field.
	EntryDate string `json:"entry_date,omitempty"`
	// Granularity holds the value of the "granularity" field.
	Granularity trackerentry.Granularity `json:"granularity,omitempty"`
	// Slot holds the value of the "slot" field.
	Slot int `json:"slot,omitempty"`
	// FieldValues holds the value of the "field_values" field.
	FieldValues map[string]interface{} `json:"field_values,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TrackerEntryQuery when eager-loading is set.
	Edges                 TrackerEntryEdges `json:"edges"`
	tracker_entry_tracker *uuid.UUID
	selectValues          sql.SelectValues
}

// TrackerEntryEdges holds the relations/edges for other nodes in the graph.
type TrackerEntryEdges struct {
	// Tracker holds the value of the tracker edge.
	Tracker *Tracker `json:"tracker,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TrackerOrErr returns the Tracker value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TrackerEntryEdges) TrackerOrErr() (*Tracker, error) {
	if e.Tracker != nil {
		return e.Tracker, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tracker.Label}
	}
	return nil, &NotLoadedError{edge: "tracker"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrackerEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trackerentry.FieldFieldValues:
			values[i] = new([]byte)
		case trackerentry.FieldSlot:
			values[i] = new(sql.NullInt64)
		case trackerentry.FieldEntryDate, trackerentry.FieldGranularity, trackerentry.FieldNotes:
			values[i] = new(sql.NullString)
		case trackerentry.FieldCreatedAt, trackerentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case trackerentry.FieldID, trackerentry.FieldOwnerID:
			values[i] = new(uuid.UUID)
		case trackerentry.ForeignKeys[0]: // tracker_entry_tracker
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrackerEntry fields.
func (_m *TrackerEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trackerentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case trackerentry.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case trackerentry.FieldEntryDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entry_date", values[i])
			} else if value.Valid {
				_m.EntryDate = value.String
			}
		case trackerentry.FieldGranularity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field granularity", values[i])
			} else if value.Valid {
				_m.Granularity = trackerentry.Granularity(value.String)
			}
		case trackerentry.FieldSlot:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field slot", values[i])
			} else if value.Valid {
				_m.Slot = int(value.Int64)
			}
		case trackerentry.FieldFieldValues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field field_values", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FieldValues); err != nil {
					return fmt.Errorf("unmarshal field field_values: %w", err)
				}
			}
		case trackerentry.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case trackerentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case trackerentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case trackerentry.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field tracker_entry_tracker", values[i])
			} else if value.Valid {
				_m.tracker_entry_tracker = new(uuid.UUID)
				*_m.tracker_entry_tracker = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TrackerEntry.
// This includes values selected through modifiers, order, etc.
func (_m *TrackerEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTracker queries the "tracker" edge of the TrackerEntry entity.
func (_m *TrackerEntry) QueryTracker() *TrackerQuery {
	return NewTrackerEntryClient(_m.config).QueryTracker(_m)
}

// Update returns a builder for updating this TrackerEntry.
// Note that you need to call TrackerEntry.Unwrap() before calling this method if this TrackerEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrackerEntry) Update() *TrackerEntryUpdateOne {
	return NewTrackerEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrackerEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrackerEntry) Unwrap() *TrackerEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrackerEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrackerEntry) String() string {
	var builder strings.Builder
	builder.WriteString("TrackerEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("entry_date=")
	builder.WriteString(_m.EntryDate)
	builder.WriteString(", ")
	builder.WriteString("granularity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Granularity))
	builder.WriteString(", ")
	builder.WriteString("slot=")
	builder.WriteString(fmt.Sprintf("%v", _m.Slot))
	builder.WriteString(", ")
	builder.WriteString("field_values=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldValues))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrackerEntries is a parsable slice of TrackerEntry.
type TrackerEntries []*TrackerEntry
