package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicProgress aggregates practice results per (user, topic). The
// weakness score rises toward 1.0 as the solve rate drops and is the
// intended future input for roadmap prioritization.
type TopicProgress struct {
	ent.Schema
}

func (TopicProgress) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.String("topic").
			NotEmpty(),
		field.Int("problems_attempted").
			Default(0),
		field.Int("problems_solved").
			Default(0),
		field.Int("easy_solved").
			Default(0),
		field.Int("medium_solved").
			Default(0),
		field.Int("hard_solved").
			Default(0),
		field.Int("time_spent_minutes").
			Default(0),
		field.Float("weakness_score").
			Default(1.0).
			Comment("1 - solveRate*0.8, range [0.2, 1.0]"),
		field.Time("last_practiced").
			Optional().
			Nillable(),
	}
}

func (TopicProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic").Unique(),
		index.Fields("user_id", "weakness_score"),
	}
}
