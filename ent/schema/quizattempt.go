package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// QuizAttempt records one completed quiz for analytics.
type QuizAttempt struct {
	ent.Schema
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("user_id"),
		field.String("topic"),
		field.String("theme_id").
			Optional().
			Comment("Set when the quiz came from the theme catalog"),
		field.Int("num_questions"),
		field.Int("num_correct"),
		field.Int("xp_awarded"),
		field.Time("completed_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuizAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "completed_at"),
	}
}
