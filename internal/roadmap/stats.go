package roadmap

import "math"

// ComputeStatistics summarizes a set of day plans. AvgItemsPerDay is
// rounded to one decimal place.
func ComputeStatistics(days []DayPlan, hoursPerDay float64) Statistics {
	stats := Statistics{
		TotalDays:      len(days),
		TotalHours:     float64(len(days)) * hoursPerDay,
		SideTaskCounts: make(map[string]int),
	}

	topics := make(map[string]struct{})
	for _, d := range days {
		stats.TotalItems += d.ItemCount
		topics[d.Topic] = struct{}{}
		if d.SideTask != nil {
			stats.SideTaskCounts[d.SideTask.Type]++
		}
	}
	stats.UniqueTopics = len(topics)

	if stats.TotalDays > 0 {
		avg := float64(stats.TotalItems) / float64(stats.TotalDays)
		stats.AvgItemsPerDay = math.Round(avg*10) / 10
	}

	return stats
}
