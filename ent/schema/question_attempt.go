package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionAttempt records a single answer to a generated question.
type QuestionAttempt struct {
	ent.Schema
}

func (QuestionAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("uid").
			Unique().
			Immutable(),
		field.Int("user_id"),
		field.Int("question_id"),
		field.Text("answer"),
		field.Bool("is_correct").
			Optional().
			Nillable().
			Comment("Set for MCQ attempts"),
		field.Float("score").
			Optional().
			Nillable().
			Comment("0-1 score for written answers"),
		field.Int("time_taken").
			Default(0).
			Comment("Seconds spent"),
		field.Int("confidence_level").
			Default(0).
			Comment("Self-reported 1-5, 0 = not given"),
		field.Time("attempted_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuestionAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("question_id"),
		index.Fields("user_id", "attempted_at"),
	}
}
