package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/prepmate/ent"
	"github.com/abhisek/prepmate/ent/reviewschedule"
	enttopic "github.com/abhisek/prepmate/ent/topic"
)

// ReviewSchedule is the spaced repetition record for one (user, topic) pair.
type ReviewSchedule struct {
	ID             int
	UserID         int
	TopicID        int
	IntervalDays   int
	EaseFactor     float64
	ReviewCount    int
	NextReviewDate time.Time
	LastReviewed   *time.Time
}

// ScheduledTopic pairs a schedule with its topic's display name.
type ScheduledTopic struct {
	Schedule  ReviewSchedule
	TopicName string
}

// ScheduleRepo manages spaced repetition schedules. Upsert relies on the
// unique (user_id, topic_id) index so concurrent updates for the same
// pair resolve to a single row.
type ScheduleRepo interface {
	// Get returns the schedule for the pair, or nil if none exists.
	Get(ctx context.Context, userID, topicID int) (*ReviewSchedule, error)

	// Upsert inserts or updates the schedule atomically and returns the
	// stored record.
	Upsert(ctx context.Context, sched *ReviewSchedule) (*ReviewSchedule, error)

	// ListDue returns schedules with next_review_date <= cutoff, joined
	// with topic names. planID, when non-nil, restricts to that plan's topics.
	ListDue(ctx context.Context, userID int, cutoff time.Time, planID *int) ([]ScheduledTopic, error)

	// ListBetween returns schedules with next_review_date in [from, to],
	// joined with topic names. planID, when non-nil, restricts to that
	// plan's topics.
	ListBetween(ctx context.Context, userID int, from, to time.Time, planID *int) ([]ScheduledTopic, error)

	// UserIDs returns the distinct user IDs that have at least one schedule.
	UserIDs(ctx context.Context) ([]int, error)
}

type scheduleRepo struct {
	client *ent.Client
}

func (r *scheduleRepo) Get(ctx context.Context, userID, topicID int) (*ReviewSchedule, error) {
	row, err := r.client.ReviewSchedule.Query().
		Where(
			reviewschedule.UserID(userID),
			reviewschedule.TopicID(topicID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	return entScheduleToSchedule(row), nil
}

func (r *scheduleRepo) Upsert(ctx context.Context, sched *ReviewSchedule) (*ReviewSchedule, error) {
	err := r.client.ReviewSchedule.Create().
		SetUserID(sched.UserID).
		SetTopicID(sched.TopicID).
		SetIntervalDays(sched.IntervalDays).
		SetEaseFactor(sched.EaseFactor).
		SetReviewCount(sched.ReviewCount).
		SetNextReviewDate(sched.NextReviewDate).
		SetNillableLastReviewed(sched.LastReviewed).
		OnConflictColumns(reviewschedule.FieldUserID, reviewschedule.FieldTopicID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("upsert schedule: %w", err)
	}
	return r.Get(ctx, sched.UserID, sched.TopicID)
}

func (r *scheduleRepo) ListDue(ctx context.Context, userID int, cutoff time.Time, planID *int) ([]ScheduledTopic, error) {
	q := r.client.ReviewSchedule.Query().
		Where(
			reviewschedule.UserID(userID),
			reviewschedule.NextReviewDateLTE(cutoff),
		)
	return r.listWithTopics(ctx, q, planID)
}

func (r *scheduleRepo) ListBetween(ctx context.Context, userID int, from, to time.Time, planID *int) ([]ScheduledTopic, error) {
	q := r.client.ReviewSchedule.Query().
		Where(
			reviewschedule.UserID(userID),
			reviewschedule.NextReviewDateGTE(from),
			reviewschedule.NextReviewDateLTE(to),
		)
	return r.listWithTopics(ctx, q, planID)
}

func (r *scheduleRepo) UserIDs(ctx context.Context) ([]int, error) {
	ids, err := r.client.ReviewSchedule.Query().
		Unique(true).
		Select(reviewschedule.FieldUserID).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("query schedule users: %w", err)
	}
	return ids, nil
}

// listWithTopics resolves topic names for each schedule and applies the
// optional plan filter. Schedules whose topic no longer exists are skipped.
func (r *scheduleRepo) listWithTopics(ctx context.Context, q *ent.ReviewScheduleQuery, planID *int) ([]ScheduledTopic, error) {
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	topicIDs := make([]int, 0, len(rows))
	for _, row := range rows {
		topicIDs = append(topicIDs, row.TopicID)
	}

	topicQuery := r.client.Topic.Query().
		Where(enttopic.IDIn(topicIDs...))
	if planID != nil {
		topicQuery = topicQuery.Where(enttopic.PlanID(*planID))
	}
	topics, err := topicQuery.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query schedule topics: %w", err)
	}

	names := make(map[int]string, len(topics))
	for _, t := range topics {
		names[t.ID] = t.Name
	}

	var result []ScheduledTopic
	for _, row := range rows {
		name, ok := names[row.TopicID]
		if !ok {
			continue
		}
		result = append(result, ScheduledTopic{
			Schedule:  *entScheduleToSchedule(row),
			TopicName: name,
		})
	}
	return result, nil
}

func entScheduleToSchedule(row *ent.ReviewSchedule) *ReviewSchedule {
	return &ReviewSchedule{
		ID:             row.ID,
		UserID:         row.UserID,
		TopicID:        row.TopicID,
		IntervalDays:   row.IntervalDays,
		EaseFactor:     row.EaseFactor,
		ReviewCount:    row.ReviewCount,
		NextReviewDate: row.NextReviewDate,
		LastReviewed:   row.LastReviewed,
	}
}
