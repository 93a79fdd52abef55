package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ContextEvent is a life-state annotation over a date range (moved house,
// started medication, vacation). It never gates permissions and never mutates
// tracker data.
type ContextEvent struct{ ent.Schema }

// Fields defines the fields for the ContextEvent entity.
func (ContextEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.UUID("owner_id", uuid.UUID{}),
		field.String("label").NotEmpty().MaxLen(255),
		field.String("kind").Optional().MaxLen(64),
		field.String("start_date").NotEmpty().MaxLen(10),
		field.String("end_date").Optional().MaxLen(10),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges defines the relationships for the ContextEvent entity.
func (ContextEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tracker", Tracker.Type).Unique(),
	}
}

// Indexes defines indexes for the ContextEvent entity.
func (ContextEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "start_date"),
	}
}
