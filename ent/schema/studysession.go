package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// StudySession is one focus-timer cycle: started, then either completed
// (XP awarded, streak recorded) or cancelled (discarded).
type StudySession struct {
	ent.Schema
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("user_id"),
		field.String("topic"),
		field.Int("duration_seconds").
			Default(1500).
			Comment("Full focus cycle length"),
		field.String("status").
			Default("active").
			Comment("active, completed or cancelled"),
		field.Int("xp_awarded").
			Default(0),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "status"),
	}
}
