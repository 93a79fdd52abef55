package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ObservationLink is a consent-based, context-scoped, always read-only access
// link to a tracker. Strictly weaker than a grant. Re-granting the same
// (tracker, observer, context) tuple restores the revoked row rather than
// inserting a duplicate, hence the unique index.
type ObservationLink struct{ ent.Schema }

// Fields defines the fields for the ObservationLink entity.
func (ObservationLink) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.UUID("tracker_id", uuid.UUID{}),
		field.UUID("observer_user_id", uuid.UUID{}),
		field.Enum("context_type").Values("guardrails_project", "team", "household"),
		field.UUID("context_id", uuid.UUID{}),
		field.UUID("granted_by", uuid.UUID{}),
		field.Time("revoked_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Indexes defines indexes for the ObservationLink entity.
func (ObservationLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tracker_id", "observer_user_id", "context_type", "context_id").Unique(),
		index.Fields("observer_user_id"),
	}
}
