// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"tracker-studio-api/ent/template"
	"tracker-studio-api/ent/tracker"
	"tracker-studio-api/ent/user"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Tracker is the model entity for the Tracker schema.
type Tracker struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Granularity holds the value of the "granularity" field.
	Granularity tracker.Granularity `json:"granularity,omitempty"`
	// FieldSchemaSnapshot holds the value of the "field_schema_snapshot" field.
	FieldSchemaSnapshot []map[string]interface{} `json:"field_schema_snapshot,omitempty"`
	// DisplayOrder holds the value of the "display_order" field.
	DisplayOrder int `json:"display_order,omitempty"`
	// ChartConfig holds the value of the "chart_config" field.
	ChartConfig map[string]interface{} `json:"chart_config,omitempty"`
	// Icon holds the value of the "icon" field.
	Icon string `json:"icon,omitempty"`
	// Color holds the value of the "color" field.
	Color string `json:"color,omitempty"`
	// ArchivedAt holds the value of the "archived_at" field.
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TrackerQuery when eager-loading is set.
	Edges            TrackerEdges `json:"edges"`
	tracker_owner    *uuid.UUID
	tracker_template *uuid.UUID
	selectValues     sql.SelectValues
}

// TrackerEdges holds the relations/edges for other nodes in the graph.
type TrackerEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// Template holds the value of the template edge.
	Template *Template `json:"template,omitempty"`
	// Entries holds the value of the entries edge.
	Entries []*TrackerEntry `json:"entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TrackerEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// TemplateOrErr returns the Template value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TrackerEdges) TemplateOrErr() (*Template, error) {
	if e.Template != nil {
		return e.Template, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: template.Label}
	}
	return nil, &NotLoadedError{edge: "template"}
}

// EntriesOrErr returns the Entries value or an error if the edge
// was not loaded in eager-loading.
func (e TrackerEdges) EntriesOrErr() ([]*TrackerEntry, error) {
	if e.loadedTypes[2] {
		return e.Entries, nil
	}
	return nil, &NotLoadedError{edge: "entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Tracker) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tracker.FieldFieldSchemaSnapshot, tracker.FieldChartConfig:
			values[i] = new([]byte)
		case tracker.FieldDisplayOrder:
			values[i] = new(sql.NullInt64)
		case tracker.FieldName, tracker.FieldDescription, tracker.FieldGranularity, tracker.FieldIcon, tracker.FieldColor:
			values[i] = new(sql.NullString)
		case tracker.FieldArchivedAt, tracker.FieldCreatedAt, tracker.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case tracker.FieldID:
			values[i] = new(uuid.UUID)
		case tracker.ForeignKeys[0]: // tracker_owner
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case tracker.ForeignKeys[1]: // tracker_template
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Tracker fields.
func (_m *Tracker) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tracker.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tracker.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case tracker.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case tracker.FieldGranularity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field granularity", values[i])
			} else if value.Valid {
				_m.Granularity = tracker.Granularity(value.String)
			}
		case tracker.FieldFieldSchemaSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field field_schema_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FieldSchemaSnapshot); err != nil {
					return fmt.Errorf("unmarshal field field_schema_snapshot: %w", err)
				}
			}
		case tracker.FieldDisplayOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field display_order", values[i])
			} else if value.Valid {
				_m.DisplayOrder = int(value.Int64)
			}
		case tracker.FieldChartConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field chart_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChartConfig); err != nil {
					return fmt.Errorf("unmarshal field chart_config: %w", err)
				}
			}
		case tracker.FieldIcon:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field icon", values[i])
			} else if value.Valid {
				_m.Icon = value.String
			}
		case tracker.FieldColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color", values[i])
			} else if value.Valid {
				_m.Color = value.String
			}
		case tracker.FieldArchivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field archived_at", values[i])
			} else if value.Valid {
				_m.ArchivedAt = new(time.Time)
				*_m.ArchivedAt = value.Time
			}
		case tracker.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tracker.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case tracker.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field tracker_owner", values[i])
			} else if value.Valid {
				_m.tracker_owner = new(uuid.UUID)
				*_m.tracker_owner = *value.S.(*uuid.UUID)
			}
		case tracker.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field tracker_template", values[i])
			} else if value.Valid {
				_m.tracker_template = new(uuid.UUID)
				*_m.tracker_template = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Tracker.
// This includes values selected through modifiers, order, etc.
func (_m *Tracker) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the Tracker entity.
func (_m *Tracker) QueryOwner() *UserQuery {
	return NewTrackerClient(_m.config).QueryOwner(_m)
}

// QueryTemplate queries the "template" edge of the Tracker entity.
func (_m *Tracker) QueryTemplate() *TemplateQuery {
	return NewTrackerClient(_m.config).QueryTemplate(_m)
}

// QueryEntries queries the "entries" edge of the Tracker entity.
func (_m *Tracker) QueryEntries() *TrackerEntryQuery {
	return NewTrackerClient(_m.config).QueryEntries(_m)
}

// Update returns a builder for updating this Tracker.
// Note that you need to call Tracker.Unwrap() before calling this method if this Tracker
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Tracker) Update() *TrackerUpdateOne {
	return NewTrackerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Tracker entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Tracker) Unwrap() *Tracker {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Tracker is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Tracker) String() string {
	var builder strings.Builder
	builder.WriteString("Tracker(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("granularity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Granularity))
	builder.WriteString(", ")
	builder.WriteString("field_schema_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldSchemaSnapshot))
	builder.WriteString(", ")
	builder.WriteString("display_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisplayOrder))
	builder.WriteString(", ")
	builder.WriteString("chart_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChartConfig))
	builder.WriteString(", ")
	builder.WriteString("icon=")
	builder.WriteString(_m.Icon)
	builder.WriteString(", ")
	builder.WriteString("color=")
	builder.WriteString(_m.Color)
	builder.WriteString(", ")
	if v := _m.ArchivedAt; v != nil {
		builder.WriteString("archived_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Trackers is a parsable slice of Tracker.
type Trackers []*Tracker
