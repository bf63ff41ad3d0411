package srs

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/prepmate/internal/store"
)

// memScheduleRepo is an in-memory ScheduleRepo for tests.
type memScheduleRepo struct {
	schedules map[[2]int]*store.ReviewSchedule
	names     map[int]string
	plans     map[int]int // topicID -> planID
	gets      int
	upserts   int
}

func newMemScheduleRepo() *memScheduleRepo {
	return &memScheduleRepo{
		schedules: make(map[[2]int]*store.ReviewSchedule),
		names:     make(map[int]string),
		plans:     make(map[int]int),
	}
}

func (m *memScheduleRepo) Get(_ context.Context, userID, topicID int) (*store.ReviewSchedule, error) {
	m.gets++
	s, ok := m.schedules[[2]int{userID, topicID}]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memScheduleRepo) Upsert(_ context.Context, sched *store.ReviewSchedule) (*store.ReviewSchedule, error) {
	m.upserts++
	cp := *sched
	m.schedules[[2]int{sched.UserID, sched.TopicID}] = &cp
	out := cp
	return &out, nil
}

func (m *memScheduleRepo) ListDue(_ context.Context, userID int, cutoff time.Time, planID *int) ([]store.ScheduledTopic, error) {
	var result []store.ScheduledTopic
	for key, s := range m.schedules {
		if key[0] != userID || s.NextReviewDate.After(cutoff) {
			continue
		}
		if planID != nil && m.plans[s.TopicID] != *planID {
			continue
		}
		result = append(result, store.ScheduledTopic{Schedule: *s, TopicName: m.names[s.TopicID]})
	}
	return result, nil
}

func (m *memScheduleRepo) ListBetween(_ context.Context, userID int, from, to time.Time, planID *int) ([]store.ScheduledTopic, error) {
	var result []store.ScheduledTopic
	for key, s := range m.schedules {
		if key[0] != userID || s.NextReviewDate.Before(from) || s.NextReviewDate.After(to) {
			continue
		}
		if planID != nil && m.plans[s.TopicID] != *planID {
			continue
		}
		result = append(result, store.ScheduledTopic{Schedule: *s, TopicName: m.names[s.TopicID]})
	}
	return result, nil
}

func (m *memScheduleRepo) UserIDs(_ context.Context) ([]int, error) {
	seen := make(map[int]bool)
	var ids []int
	for key := range m.schedules {
		if !seen[key[0]] {
			seen[key[0]] = true
			ids = append(ids, key[0])
		}
	}
	return ids, nil
}

var today = time.Date(2026, 8, 27, 10, 30, 0, 0, time.UTC)

func TestUpdateSchedule_CreatesLazily(t *testing.T) {
	repo := newMemScheduleRepo()
	svc := NewService(repo)

	sched, err := svc.UpdateSchedule(context.Background(), 1, 42, 0.95, today)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	// First update from the initial state: interval 1, ease 2.5 (already
	// capped), so next interval = ceil(1 * 2.5) = 3.
	if sched.IntervalDays != 3 {
		t.Errorf("interval = %d, want 3", sched.IntervalDays)
	}
	if sched.EaseFactor != 2.5 {
		t.Errorf("ease = %v, want 2.5", sched.EaseFactor)
	}
	if sched.ReviewCount != 1 {
		t.Errorf("review count = %d, want 1", sched.ReviewCount)
	}

	wantDate := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if !sched.NextReviewDate.Equal(wantDate) {
		t.Errorf("next review = %v, want %v", sched.NextReviewDate, wantDate)
	}
	if sched.LastReviewed == nil || !sched.LastReviewed.Equal(time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last reviewed = %v, want 2026-08-27", sched.LastReviewed)
	}

	if repo.gets != 1 || repo.upserts != 1 {
		t.Errorf("store ops = %d reads, %d upserts, want 1 and 1", repo.gets, repo.upserts)
	}
}

func TestUpdateSchedule_InvariantNextEqualsLastPlusInterval(t *testing.T) {
	repo := newMemScheduleRepo()
	svc := NewService(repo)
	ctx := context.Background()

	day := today
	for _, perf := range []float64{0.95, 0.8, 0.5, 0.65, 1.0} {
		sched, err := svc.UpdateSchedule(ctx, 1, 7, perf, day)
		if err != nil {
			t.Fatalf("update with perf %v: %v", perf, err)
		}
		want := sched.LastReviewed.AddDate(0, 0, sched.IntervalDays)
		if !sched.NextReviewDate.Equal(want) {
			t.Errorf("perf %v: next = %v, want last + interval = %v", perf, sched.NextReviewDate, want)
		}
		day = day.AddDate(0, 0, sched.IntervalDays)
	}
}

func TestUpdateSchedule_PoorResetsProgress(t *testing.T) {
	repo := newMemScheduleRepo()
	svc := NewService(repo)
	ctx := context.Background()

	// Build up a long interval first.
	for i := 0; i < 4; i++ {
		if _, err := svc.UpdateSchedule(ctx, 1, 7, 0.95, today); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}

	sched, err := svc.UpdateSchedule(ctx, 1, 7, 0.3, today)
	if err != nil {
		t.Fatalf("poor update: %v", err)
	}
	// Ease dropped from 2.5 to 2.3; interval = ceil(1 * 2.3) = 3.
	if sched.IntervalDays != 3 {
		t.Errorf("interval = %d, want 3", sched.IntervalDays)
	}
	if sched.EaseFactor != 2.3 {
		t.Errorf("ease = %v, want 2.3", sched.EaseFactor)
	}
}

func TestUpdateSchedule_RejectsOutOfRangeScore(t *testing.T) {
	svc := NewService(newMemScheduleRepo())

	for _, perf := range []float64{-0.1, 1.5} {
		if _, err := svc.UpdateSchedule(context.Background(), 1, 1, perf, today); err == nil {
			t.Errorf("expected error for performance %v", perf)
		}
	}
}

func TestDueReviews_SortsMostOverdueFirst(t *testing.T) {
	repo := newMemScheduleRepo()
	repo.names[1] = "Arrays"
	repo.names[2] = "Trees"
	repo.names[3] = "Graphs"
	repo.names[4] = "DP"

	day := func(offset int) time.Time {
		return time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}
	repo.schedules[[2]int{1, 1}] = &store.ReviewSchedule{UserID: 1, TopicID: 1, NextReviewDate: day(-2), ReviewCount: 3, IntervalDays: 7}
	repo.schedules[[2]int{1, 2}] = &store.ReviewSchedule{UserID: 1, TopicID: 2, NextReviewDate: day(-5), ReviewCount: 1, IntervalDays: 3}
	repo.schedules[[2]int{1, 3}] = &store.ReviewSchedule{UserID: 1, TopicID: 3, NextReviewDate: day(-2), ReviewCount: 2, IntervalDays: 5}
	repo.schedules[[2]int{1, 4}] = &store.ReviewSchedule{UserID: 1, TopicID: 4, NextReviewDate: day(2), ReviewCount: 1, IntervalDays: 3}

	svc := NewService(repo)
	due, err := svc.DueReviews(context.Background(), 1, nil, today)
	if err != nil {
		t.Fatalf("due reviews: %v", err)
	}

	if len(due) != 3 {
		t.Fatalf("len = %d, want 3 (future schedule excluded)", len(due))
	}
	if due[0].TopicID != 2 || due[0].DaysOverdue != 5 {
		t.Errorf("first = topic %d overdue %d, want topic 2 overdue 5", due[0].TopicID, due[0].DaysOverdue)
	}
	// Equal overdue: topic ID ascending.
	if due[1].TopicID != 1 || due[2].TopicID != 3 {
		t.Errorf("tie order = [%d, %d], want [1, 3]", due[1].TopicID, due[2].TopicID)
	}
}

func TestDueReviews_NeverReturnsFutureSchedules(t *testing.T) {
	repo := newMemScheduleRepo()
	repo.names[1] = "Arrays"
	repo.schedules[[2]int{1, 1}] = &store.ReviewSchedule{
		UserID: 1, TopicID: 1,
		NextReviewDate: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	}

	svc := NewService(repo)
	due, err := svc.DueReviews(context.Background(), 1, nil, today)
	if err != nil {
		t.Fatalf("due reviews: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("len = %d, want 0", len(due))
	}
}

func TestUpcomingReviews_AllBucketsPresent(t *testing.T) {
	repo := newMemScheduleRepo()
	repo.names[1] = "Arrays"
	repo.schedules[[2]int{1, 1}] = &store.ReviewSchedule{
		UserID: 1, TopicID: 1, ReviewCount: 2,
		NextReviewDate: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
	}

	svc := NewService(repo)
	upcoming, err := svc.UpcomingReviews(context.Background(), 1, 7, nil, today)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}

	if len(upcoming) != 8 {
		t.Fatalf("buckets = %d, want 8 (daysAhead+1)", len(upcoming))
	}
	for i := 0; i <= 7; i++ {
		key := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i).Format("2006-01-02")
		if _, ok := upcoming[key]; !ok {
			t.Errorf("missing bucket %s", key)
		}
	}

	if got := upcoming["2026-08-29"]; len(got) != 1 || got[0].TopicName != "Arrays" {
		t.Errorf("2026-08-29 bucket = %+v, want one Arrays entry", got)
	}
	if got := upcoming["2026-08-28"]; len(got) != 0 {
		t.Errorf("2026-08-28 bucket = %+v, want empty", got)
	}
}

func TestUpcomingReviews_RejectsBadWindow(t *testing.T) {
	svc := NewService(newMemScheduleRepo())

	for _, days := range []int{0, 31, -1} {
		if _, err := svc.UpcomingReviews(context.Background(), 1, days, nil, today); err == nil {
			t.Errorf("expected error for daysAhead %d", days)
		}
	}
}
