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

// TrackerEntry is one record per (tracker, owner, date) under daily
// granularity. The unique index below is the real duplicate-entry guard; the
// service-level pre-check only exists for friendlier error messages.
type TrackerEntry struct{ ent.Schema }

// Fields defines the fields for the TrackerEntry entity.
func (TrackerEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.UUID("owner_id", uuid.UUID{}),
		field.String("entry_date").NotEmpty().MaxLen(10), // YYYY-MM-DD
		field.Enum("granularity").Values("daily", "session", "event", "range").Default("daily"),
		// disambiguates multiple entries per date for non-daily granularities
		field.Int("slot").Default(0),
		field.JSON("field_values", map[string]any{}).
			SchemaType(map[string]string{
				dialect.MySQL:    "json",
				dialect.Postgres: "jsonb",
			}),
		field.String("notes").Optional().MaxLen(4000),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges defines the relationships for the TrackerEntry entity.
func (TrackerEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tracker", Tracker.Type).Unique().Required(),
	}
}

// Indexes defines indexes for the TrackerEntry entity.
func (TrackerEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("tracker").Fields("owner_id", "entry_date", "slot").Unique(),
		index.Fields("owner_id", "entry_date"),
	}
}
