package srs

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/prepmate/internal/store"
)

// Service manages review schedules on top of a ScheduleRepo.
// All methods take the reference date explicitly so callers (and tests)
// control what "today" means; dates are normalized to midnight UTC.
type Service struct {
	schedules store.ScheduleRepo
}

// NewService creates a Service backed by the given repo.
func NewService(schedules store.ScheduleRepo) *Service {
	return &Service{schedules: schedules}
}

// DueReview describes a topic due for review.
type DueReview struct {
	TopicID        int       `json:"topic_id"`
	TopicName      string    `json:"topic_name"`
	NextReviewDate time.Time `json:"next_review_date"`
	DaysOverdue    int       `json:"days_overdue"`
	ReviewCount    int       `json:"review_count"`
	IntervalDays   int       `json:"interval_days"`
}

// UpcomingReview describes a topic scheduled within the lookahead window.
type UpcomingReview struct {
	TopicID     int    `json:"topic_id"`
	TopicName   string `json:"topic_name"`
	ReviewCount int    `json:"review_count"`
}

// UpdateSchedule records a performance score in [0, 1] for a topic and
// advances its review schedule. The schedule is created lazily on the
// first call for a (user, topic) pair. Exactly one read and one upsert
// hit the store.
func (s *Service) UpdateSchedule(ctx context.Context, userID, topicID int, performance float64, today time.Time) (*store.ReviewSchedule, error) {
	if performance < 0 || performance > 1 {
		return nil, fmt.Errorf("performance score %v out of range [0, 1]", performance)
	}
	today = dateOf(today)

	sched, err := s.schedules.Get(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		sched = &store.ReviewSchedule{
			UserID:       userID,
			TopicID:      topicID,
			IntervalDays: InitialIntervalDays,
			EaseFactor:   InitialEaseFactor,
			ReviewCount:  0,
		}
	}

	nextInterval, newEase := ComputeNextReview(sched.IntervalDays, sched.EaseFactor, performance)

	sched.IntervalDays = nextInterval
	sched.EaseFactor = newEase
	sched.NextReviewDate = today.AddDate(0, 0, nextInterval)
	sched.ReviewCount++
	sched.LastReviewed = &today

	return s.schedules.Upsert(ctx, sched)
}

// DueReviews returns the topics due on or before today, most overdue
// first. Ties are broken by topic ID for deterministic output. planID,
// when non-nil, restricts results to topics under that plan.
func (s *Service) DueReviews(ctx context.Context, userID int, planID *int, today time.Time) ([]DueReview, error) {
	today = dateOf(today)

	rows, err := s.schedules.ListDue(ctx, userID, today, planID)
	if err != nil {
		return nil, err
	}

	due := make([]DueReview, len(rows))
	for i, row := range rows {
		due[i] = DueReview{
			TopicID:        row.Schedule.TopicID,
			TopicName:      row.TopicName,
			NextReviewDate: row.Schedule.NextReviewDate,
			DaysOverdue:    daysBetween(row.Schedule.NextReviewDate, today),
			ReviewCount:    row.Schedule.ReviewCount,
			IntervalDays:   row.Schedule.IntervalDays,
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].DaysOverdue != due[j].DaysOverdue {
			return due[i].DaysOverdue > due[j].DaysOverdue
		}
		return due[i].TopicID < due[j].TopicID
	})

	return due, nil
}

// UpcomingReviews returns the review schedule for today through
// today+daysAhead, keyed by ISO date. Every day in the window gets a
// bucket, empty or not, so callers can render a full calendar.
func (s *Service) UpcomingReviews(ctx context.Context, userID, daysAhead int, planID *int, today time.Time) (map[string][]UpcomingReview, error) {
	if daysAhead < 1 || daysAhead > 30 {
		return nil, fmt.Errorf("days ahead %d out of range [1, 30]", daysAhead)
	}
	today = dateOf(today)
	end := today.AddDate(0, 0, daysAhead)

	rows, err := s.schedules.ListBetween(ctx, userID, today, end, planID)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]UpcomingReview, daysAhead+1)
	for i := 0; i <= daysAhead; i++ {
		byDate[isoDate(today.AddDate(0, 0, i))] = []UpcomingReview{}
	}

	for _, row := range rows {
		key := isoDate(row.Schedule.NextReviewDate)
		if _, ok := byDate[key]; !ok {
			continue
		}
		byDate[key] = append(byDate[key], UpcomingReview{
			TopicID:     row.Schedule.TopicID,
			TopicName:   row.TopicName,
			ReviewCount: row.Schedule.ReviewCount,
		})
	}

	return byDate, nil
}

// dateOf truncates a timestamp to its calendar date in UTC.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from a to b (positive when b is later).
func daysBetween(a, b time.Time) int {
	return int(dateOf(b).Sub(dateOf(a)).Hours() / 24)
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}
