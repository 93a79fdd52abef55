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

// Reminder prompts the tracker owner to create today's entry (entry_prompt)
// or to add notes to an existing one (reflection).
type Reminder struct{ ent.Schema }

// Fields defines the fields for the Reminder entity.
func (Reminder) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.UUID("owner_id", uuid.UUID{}),
		field.Enum("kind").Values("entry_prompt", "reflection").Default("entry_prompt"),
		// minutes since midnight, local to the owner
		field.Int("time_of_day"),
		// ISO weekdays, 1=Monday .. 7=Sunday; empty means every day
		field.JSON("days_of_week", []int{}).Optional().
			SchemaType(map[string]string{
				dialect.MySQL:    "json",
				dialect.Postgres: "jsonb",
			}),
		field.Bool("enabled").Default(true),
		field.Time("last_fired_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges defines the relationships for the Reminder entity.
func (Reminder) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tracker", Tracker.Type).Unique().Required(),
	}
}

// Indexes defines indexes for the Reminder entity.
func (Reminder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Edges("tracker").Fields("owner_id", "kind"),
	}
}
