// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"
	"tracker-studio-api/ent/interpretation"
	"tracker-studio-api/ent/tracker"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Interpretation is the model entity for the Interpretation schema.
type Interpretation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate string `json:"start_date,omitempty"`
	// EndDate holds the value of the "end_date" field.
	EndDate string `json:"end_date,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InterpretationQuery when eager-loading is set.
	Edges                  InterpretationEdges `json:"edges"`
	interpretation_tracker *uuid.UUID
	selectValues           sql.SelectValues
}

// InterpretationEdges holds the relations/edges for other nodes in the graph.
type InterpretationEdges struct {
	// Tracker holds the value of the tracker edge.
	Tracker *Tracker `json:"tracker,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TrackerOrErr returns the Tracker value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InterpretationEdges) TrackerOrErr() (*Tracker, error) {
	if e.Tracker != nil {
		return e.Tracker, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tracker.Label}
	}
	return nil, &NotLoadedError{edge: "tracker"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Interpretation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interpretation.FieldStartDate, interpretation.FieldEndDate, interpretation.FieldBody:
			values[i] = new(sql.NullString)
		case interpretation.FieldCreatedAt, interpretation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case interpretation.FieldID, interpretation.FieldOwnerID:
			values[i] = new(uuid.UUID)
		case interpretation.ForeignKeys[0]: // interpretation_tracker
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Interpretation fields.
func (_m *Interpretation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interpretation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case interpretation.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case interpretation.FieldStartDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = value.String
			}
		case interpretation.FieldEndDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_date", values[i])
			} else if value.Valid {
				_m.EndDate = value.String
			}
		case interpretation.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case interpretation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case interpretation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case interpretation.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field interpretation_tracker", values[i])
			} else if value.Valid {
				_m.interpretation_tracker = new(uuid.UUID)
				*_m.interpretation_tracker = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Interpretation.
// This includes values selected through modifiers, order, etc.
func (_m *Interpretation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTracker queries the "tracker" edge of the Interpretation entity.
func (_m *Interpretation) QueryTracker() *TrackerQuery {
	return NewInterpretationClient(_m.config).QueryTracker(_m)
}

// Update returns a builder for updating this Interpretation.
// Note that you need to call Interpretation.Unwrap() before calling this method if this Interpretation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Interpretation) Update() *InterpretationUpdateOne {
	return NewInterpretationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Interpretation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Interpretation) Unwrap() *Interpretation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Interpretation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Interpretation) String() string {
	var builder strings.Builder
	builder.WriteString("Interpretation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(_m.StartDate)
	builder.WriteString(", ")
	builder.WriteString("end_date=")
	builder.WriteString(_m.EndDate)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Interpretations is a parsable slice of Interpretation.
type Interpretations []*Interpretation
