package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is the companion profile: one row per user, the source of
// truth for progression state across sessions.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			Immutable().
			Comment("Opaque auth identity this profile belongs to"),
		field.String("name").
			Comment("Student display name"),
		field.String("animal_type").
			Default("cat"),
		field.String("animal_name").
			Default(""),
		field.String("animal_color").
			Default(""),
		field.Int("xp").
			Default(0).
			NonNegative(),
		field.String("level").
			Default("baby").
			Comment("Derived from xp; stored for dashboard reads"),
		field.Int("current_streak").
			Default(0).
			NonNegative(),
		field.Int("max_streak").
			Default(0).
			NonNegative(),
		field.Time("last_study_date").
			Optional().
			Nillable().
			Comment("Most recent completed study session; unset before the first one"),
		field.Int("study_goal_minutes").
			Default(60),
		field.Int("total_study_minutes").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
