package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewSchedule holds the spaced repetition state for one (user, topic)
// pair. Created lazily on the first recorded performance and updated in
// place on every review; never deleted by the scheduler.
type ReviewSchedule struct {
	ent.Schema
}

func (ReviewSchedule) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("Owning user"),
		field.Int("topic_id").
			Comment("Topic under review"),
		field.Int("interval_days").
			Default(1).
			Min(1).
			Comment("Current review interval in days"),
		field.Float("ease_factor").
			Default(2.5).
			Comment("Interval growth multiplier, clamped to [1.3, 2.5]"),
		field.Int("review_count").
			Default(0).
			Comment("Number of reviews recorded"),
		field.Time("next_review_date").
			Comment("Date the topic is next due"),
		field.Time("last_reviewed").
			Optional().
			Nillable().
			Comment("Date of the most recent review, nil before the first"),
	}
}

func (ReviewSchedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id").Unique(),
		index.Fields("user_id", "next_review_date"),
	}
}
