package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeSession records one coding-practice attempt on a named problem.
type PracticeSession struct {
	ent.Schema
}

func (PracticeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("uid").
			Unique().
			Immutable(),
		field.Int("user_id"),
		field.String("topic").
			NotEmpty(),
		field.String("problem_name").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.Bool("solved").
			Default(false),
		field.Int("time_spent_minutes").
			Default(0),
		field.Text("code_submitted").
			Optional(),
		field.Text("notes").
			Optional(),
		field.Time("attempted_at").
			Default(time.Now).
			Immutable(),
		field.Time("solved_at").
			Optional().
			Nillable(),
	}
}

func (PracticeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "topic"),
		index.Fields("user_id", "attempted_at"),
	}
}
