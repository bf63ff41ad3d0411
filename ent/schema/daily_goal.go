package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DailyGoal tracks a user's practice target for one calendar day.
type DailyGoal struct {
	ent.Schema
}

func (DailyGoal) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.Time("date"),
		field.Int("target_problems").
			Default(5),
		field.Int("completed_problems").
			Default(0),
		field.Bool("completed").
			Default(false),
	}
}

func (DailyGoal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "date").Unique(),
	}
}
