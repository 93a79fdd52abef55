// Package schema defines Ent ORM schema types for the application.
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User is an account that owns templates, trackers and entries.
type User struct{ ent.Schema }

// Fields defines the fields for the User entity.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("username").NotEmpty().MaxLen(64).Unique(),
		field.String("display_name").Optional().MaxLen(255),
		field.String("password_hash").Sensitive(),
		field.Bool("is_admin").Default(false),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges defines the relationships for the User entity.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("groups", Group.Type),
		edge.From("trackers", Tracker.Type).Ref("owner"),
		edge.From("templates", Template.Type).Ref("owner"),
	}
}
