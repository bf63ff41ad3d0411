package roadmap

import "time"

// hoursPerItem is the planning estimate for one practice item.
const hoursPerItem = 0.5

// Distribute spreads the ranked topics' practice items across exactly
// daysAvailable days, dailyItemCount items per day at most. A cursor
// walks the topic list in priority order with an offset into the
// current topic's items; when a topic is exhausted the cursor advances,
// and when the whole list is exhausted it wraps back to the top so the
// remaining days revise earlier topics. A day is never left empty:
// exhaustion is handled before items are taken, not after the day is
// already emitted.
//
// At least one topic must carry items, otherwise ErrNoTopics.
func Distribute(topics []RankedTopic, daysAvailable, dailyItemCount int, today time.Time) ([]DayPlan, error) {
	totalItems := 0
	for _, t := range topics {
		totalItems += len(t.PracticeItems)
	}
	if totalItems == 0 {
		return nil, ErrNoTopics
	}

	days := make([]DayPlan, 0, daysAvailable)
	cursor := 0
	offset := 0

	for day := 1; day <= daysAvailable; day++ {
		// Land on a topic with items left. Bounded: some topic has
		// items, so at most one full wrap is needed.
		for cursor >= len(topics) || offset >= len(topics[cursor].PracticeItems) {
			if cursor >= len(topics) {
				cursor = 0 // revision loop
			} else {
				cursor++
			}
			offset = 0
		}

		topic := topics[cursor]
		end := offset + dailyItemCount
		if end > len(topic.PracticeItems) {
			end = len(topic.PracticeItems)
		}
		items := topic.PracticeItems[offset:end]
		offset = end

		days = append(days, DayPlan{
			Day:            day,
			Date:           today.AddDate(0, 0, day-1).Format("2006-01-02"),
			Topic:          topic.Name,
			Frequency:      topic.Frequency,
			PracticeItems:  items,
			ItemCount:      len(items),
			EstimatedHours: float64(len(items)) * hoursPerItem,
		})
	}

	return days, nil
}
