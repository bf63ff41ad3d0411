package roadmap

import (
	"math"
	"time"
)

// maxDailyItems caps the practice load regardless of hours available.
const maxDailyItems = 8

// Input carries everything a generation run needs. SystemDesign and
// BehavioralFocus feed the side-task rules; Topics feed the main
// schedule.
type Input struct {
	Topics          []TopicSpec
	Rounds          []RoundSpec
	SystemDesign    []string
	BehavioralFocus []string
	InterviewDate   time.Time
	HoursPerDay     float64
}

// Generator produces roadmaps. The weight functions default to the
// fixed medium-difficulty and uniform-weakness policies when nil;
// callers with real performance history can inject their own.
type Generator struct {
	DifficultyWeight WeightFunc
	WeaknessWeight   WeightFunc
}

// Generate builds the full roadmap for the given input, with today as
// the reference date. It fails with ErrPastInterviewDate when the
// interview date is today or earlier, and with ErrNoTopics when there
// is nothing to schedule.
func (g *Generator) Generate(in Input, today time.Time) (*Roadmap, error) {
	today = dateOf(today)
	daysAvailable := daysUntil(today, in.InterviewDate)
	if daysAvailable <= 0 {
		return nil, ErrPastInterviewDate
	}
	if len(in.Topics) == 0 {
		return nil, ErrNoTopics
	}

	dailyItemCount := DailyItemCount(in.HoursPerDay)

	ranked := Prioritize(in.Topics, g.DifficultyWeight, g.WeaknessWeight)

	days, err := Distribute(ranked, daysAvailable, dailyItemCount, today)
	if err != nil {
		return nil, err
	}

	days = AttachSideTasks(days, in.Rounds, in.SystemDesign, in.BehavioralFocus)

	return &Roadmap{
		Days:           days,
		Statistics:     ComputeStatistics(days, in.HoursPerDay),
		DailyItemCount: dailyItemCount,
	}, nil
}

// DailyItemCount converts a daily hour budget into a practice item
// count: floor(hours x 1.2), capped at 8 and floored at 1 so even a
// tiny budget schedules something each day.
func DailyItemCount(hoursPerDay float64) int {
	n := int(math.Floor(hoursPerDay * 1.2))
	if n > maxDailyItems {
		n = maxDailyItems
	}
	if n < 1 {
		n = 1
	}
	return n
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysUntil(today, target time.Time) int {
	return int(dateOf(target).Sub(today).Hours() / 24)
}
