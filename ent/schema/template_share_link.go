package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TemplateShareLink is a token that lets another user import a copy of a
// template. use_count is advanced with a compare-and-set update so two
// concurrent imports cannot both consume the last use.
type TemplateShareLink struct{ ent.Schema }

// Fields defines the fields for the TemplateShareLink entity.
func (TemplateShareLink) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("token").NotEmpty().MaxLen(64).Unique(),
		field.UUID("created_by", uuid.UUID{}),
		field.Time("expires_at").Optional().Nillable(),
		field.Int("max_uses").Default(0), // 0 means unlimited
		field.Int("use_count").Default(0),
		field.Time("revoked_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges defines the relationships for the TemplateShareLink entity.
func (TemplateShareLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("template", Template.Type).Unique().Required(),
	}
}

// Indexes defines indexes for the TemplateShareLink entity.
func (TemplateShareLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_by"),
	}
}
