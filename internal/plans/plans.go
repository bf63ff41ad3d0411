// Package plans builds study plans: weight-proportional hour allocation
// across topics and day-by-day session scheduling within a topic's
// budget.
package plans

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/abhisek/prepmate/internal/store"
)

var (
	// ErrPastExamDate is returned when the exam date is today or earlier.
	ErrPastExamDate = errors.New("exam date must be in the future")

	// ErrNoTopics is returned when a plan is requested with no topics.
	ErrNoTopics = errors.New("plan needs at least one topic")
)

// learningShare reserves 10% of the total hour budget as revision
// buffer; only the rest is allocated to topics.
const learningShare = 0.9

// TopicInput is one topic with its syllabus weight.
type TopicInput struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Allocation is a topic with its computed hour budget.
type Allocation struct {
	Name           string  `json:"name"`
	Weight         float64 `json:"weight"`
	AllocatedHours float64 `json:"allocated_hours"`
	OrderIndex     int     `json:"order_index"`
}

// AllocateHours splits the available study time across topics in
// proportion to weight, keeping 10% as buffer. Hours are rounded to
// two decimals. startDate counts as a study day; examDate does not.
func AllocateHours(topics []TopicInput, examDate, startDate time.Time, dailyHours float64) ([]Allocation, error) {
	if len(topics) == 0 {
		return nil, ErrNoTopics
	}

	daysAvailable := int(dateOf(examDate).Sub(dateOf(startDate)).Hours() / 24)
	if daysAvailable <= 0 {
		return nil, ErrPastExamDate
	}

	totalWeight := 0.0
	for _, t := range topics {
		totalWeight += t.Weight
	}
	if totalWeight <= 0 {
		return nil, fmt.Errorf("total topic weight must be positive, got %v", totalWeight)
	}

	totalHours := float64(daysAvailable) * dailyHours

	allocations := make([]Allocation, len(topics))
	for i, t := range topics {
		hours := t.Weight / totalWeight * totalHours * learningShare
		allocations[i] = Allocation{
			Name:           t.Name,
			Weight:         t.Weight,
			AllocatedHours: round2(hours),
			OrderIndex:     i,
		}
	}
	return allocations, nil
}

// SliceSessions spreads a topic's allocated hours into daily sessions
// starting at startDate. Each session runs at most half the daily
// budget, so two topics can share a day.
func SliceSessions(topicID int, allocatedHours float64, startDate time.Time, dailyHours float64) []store.StudySession {
	var sessions []store.StudySession
	remaining := allocatedHours
	day := dateOf(startDate)

	for remaining > 0 {
		duration := math.Min(remaining, dailyHours/2)
		sessions = append(sessions, store.StudySession{
			TopicID:       topicID,
			ScheduledDate: day,
			Duration:      round2(duration),
		})
		remaining -= duration
		day = day.AddDate(0, 0, 1)
	}
	return sessions
}

// Service persists generated plans through the storage layer.
type Service struct {
	plans store.PlanRepo
}

// NewService creates a Service backed by the given repo.
func NewService(plans store.PlanRepo) *Service {
	return &Service{plans: plans}
}

// CreateInput describes a new study plan.
type CreateInput struct {
	UserID      int
	Subject     string
	ExamType    string
	ExamDate    time.Time
	DailyHours  float64
	TargetGrade string
	Topics      []TopicInput
}

// Create allocates hours, persists the plan with its topics, and
// schedules sessions for every topic.
func (s *Service) Create(ctx context.Context, in CreateInput, today time.Time) (*store.StudyPlan, []store.Topic, error) {
	allocations, err := AllocateHours(in.Topics, in.ExamDate, today, in.DailyHours)
	if err != nil {
		return nil, nil, err
	}

	plan, err := s.plans.CreatePlan(ctx, &store.StudyPlan{
		UserID:      in.UserID,
		Subject:     in.Subject,
		ExamType:    in.ExamType,
		ExamDate:    dateOf(in.ExamDate),
		DailyHours:  in.DailyHours,
		TargetGrade: in.TargetGrade,
	})
	if err != nil {
		return nil, nil, err
	}

	topics := make([]store.Topic, len(allocations))
	for i, a := range allocations {
		topics[i] = store.Topic{
			PlanID:         plan.ID,
			Name:           a.Name,
			Weight:         a.Weight,
			AllocatedHours: a.AllocatedHours,
			OrderIndex:     a.OrderIndex,
		}
	}
	topics, err = s.plans.CreateTopics(ctx, topics)
	if err != nil {
		return nil, nil, err
	}

	for _, t := range topics {
		sessions := SliceSessions(t.ID, t.AllocatedHours, today, in.DailyHours)
		if err := s.plans.CreateSessions(ctx, sessions); err != nil {
			return nil, nil, err
		}
	}

	return plan, topics, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
