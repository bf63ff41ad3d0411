package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic is a unit of study within a plan. Weight drives the hour
// allocation; mastery level is updated from practice performance.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.Int("plan_id"),
		field.String("name").
			NotEmpty(),
		field.Float("weight").
			Default(1),
		field.Float("allocated_hours").
			Default(0),
		field.Int("order_index").
			Default(0),
		field.Float("mastery_level").
			Default(0).
			Comment("0-100 percent"),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id"),
		index.Fields("plan_id", "order_index"),
	}
}
