package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudyPlan is a user's preparation plan for a single exam or interview.
type StudyPlan struct {
	ent.Schema
}

func (StudyPlan) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.String("subject").
			NotEmpty(),
		field.String("exam_type").
			Default("exam").
			Comment("exam or placement"),
		field.Time("exam_date"),
		field.Float("daily_hours"),
		field.String("target_grade").
			Optional(),
		field.String("status").
			Default("active").
			Comment("active, completed, or cancelled"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (StudyPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
	}
}
