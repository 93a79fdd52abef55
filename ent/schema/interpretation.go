package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Interpretation is a user-authored reflection note anchored to a tracker and
// date range. Descriptive overlay only; owner-scoped like ContextEvent.
type Interpretation struct{ ent.Schema }

// Fields defines the fields for the Interpretation entity.
func (Interpretation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.UUID("owner_id", uuid.UUID{}),
		field.String("start_date").NotEmpty().MaxLen(10),
		field.String("end_date").Optional().MaxLen(10),
		field.String("body").NotEmpty().MaxLen(8000),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges defines the relationships for the Interpretation entity.
func (Interpretation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tracker", Tracker.Type).Unique().Required(),
	}
}

// Indexes defines indexes for the Interpretation entity.
func (Interpretation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "start_date"),
	}
}
