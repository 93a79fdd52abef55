package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Tracker is a live instance created from a template (or a raw schema). Its
// field schema snapshot is frozen at creation time and never follows later
// template edits.
type Tracker struct{ ent.Schema }

// Fields defines the fields for the Tracker entity.
func (Tracker) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("name").NotEmpty().MaxLen(255),
		field.String("description").Optional().MaxLen(1000),
		field.Enum("granularity").Values("daily", "session", "event", "range").Default("daily"),
		field.JSON("field_schema_snapshot", []map[string]any{}).
			Immutable().
			SchemaType(map[string]string{
				dialect.MySQL:    "json",
				dialect.Postgres: "jsonb",
			}),
		field.Int("display_order").Default(0),
		field.JSON("chart_config", map[string]any{}).Optional().
			SchemaType(map[string]string{
				dialect.MySQL:    "json",
				dialect.Postgres: "jsonb",
			}),
		field.String("icon").Optional().MaxLen(64),
		field.String("color").Optional().MaxLen(32),
		field.Time("archived_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges defines the relationships for the Tracker entity.
func (Tracker) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("owner", User.Type).Unique().Required(),
		edge.To("template", Template.Type).Unique(),
		edge.From("entries", TrackerEntry.Type).Ref("tracker"),
	}
}

// Indexes defines indexes for the Tracker entity.
func (Tracker) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("owner"),
		index.Edges("owner").Fields("display_order"),
		index.Fields("updated_at"),
	}
}
