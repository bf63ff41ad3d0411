package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a generated practice question for a topic. The payload
// field carries the format-specific content: MCQ options for "mcq",
// model answer and marking scheme for "written".
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.Int("topic_id"),
		field.String("question_type").
			NotEmpty().
			Comment("mcq or written"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.Text("question_text").
			NotEmpty(),
		field.Int("marks").
			Default(1),
		field.Int("time_limit").
			Default(0).
			Comment("Suggested seconds to answer, 0 = untimed"),
		field.JSON("payload", map[string]any{}).
			Comment("Format-specific content as JSON"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("topic_id", "question_type"),
	}
}
