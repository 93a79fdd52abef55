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

// Template is a structure-only definition of tracker fields. It never holds
// entry data. Global templates are ownerless and always locked.
type Template struct{ ent.Schema }

// Fields defines the fields for the Template entity.
func (Template) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("name").NotEmpty().MaxLen(255),
		field.String("description").Optional().MaxLen(1000),
		field.Enum("scope").Values("user", "global").Default("user"),
		field.Bool("locked").Default(false),
		field.JSON("field_schema", []map[string]any{}).
			SchemaType(map[string]string{
				dialect.MySQL:    "json",
				dialect.Postgres: "jsonb",
			}),
		field.Time("archived_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges defines the relationships for the Template entity.
func (Template) Edges() []ent.Edge {
	return []ent.Edge{
		// owner is absent for global templates
		edge.To("owner", User.Type).Unique(),
		edge.From("trackers", Tracker.Type).Ref("template"),
	}
}

// Indexes defines indexes for the Template entity.
func (Template) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("owner"),
		index.Fields("scope"),
		index.Fields("updated_at"),
	}
}
