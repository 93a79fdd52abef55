package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Grant is an explicit, revocable share of a role on an entity to a user or
// group. Revocation is soft: revoked_at is set and the row is kept.
type Grant struct{ ent.Schema }

// Fields defines the fields for the Grant entity.
func (Grant) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.Enum("entity_type").Values("tracker", "template"),
		field.UUID("entity_id", uuid.UUID{}),
		field.Enum("subject_type").Values("user", "group"),
		field.UUID("subject_id", uuid.UUID{}),
		field.Enum("role").Values("owner", "editor", "commenter", "viewer"),
		field.UUID("granted_by", uuid.UUID{}),
		field.Time("revoked_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Indexes defines indexes for the Grant entity.
func (Grant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
		index.Fields("subject_type", "subject_id"),
	}
}
