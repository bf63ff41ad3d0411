package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession is a scheduled block of study time for a topic.
type StudySession struct {
	ent.Schema
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.Int("topic_id"),
		field.Time("scheduled_date"),
		field.Float("duration").
			Comment("Planned hours"),
		field.Bool("completed").
			Default(false),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("scheduled_date"),
	}
}
