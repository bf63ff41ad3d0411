package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/prepmate/internal/srs"
	"github.com/abhisek/prepmate/internal/store"
)

var now = time.Date(2026, 8, 27, 7, 0, 0, 0, time.UTC)

type memLLMLog struct {
	records []store.LLMRequestRecord
}

func (m *memLLMLog) Append(_ context.Context, data store.LLMRequestData) error {
	m.records = append(m.records, store.LLMRequestRecord{
		ID:             len(m.records) + 1,
		CreatedAt:      now,
		LLMRequestData: data,
	})
	return nil
}

func (m *memLLMLog) Recent(_ context.Context, limit int) ([]store.LLMRequestRecord, error) {
	if limit > 0 && limit < len(m.records) {
		return m.records[:limit], nil
	}
	return m.records, nil
}

func (m *memLLMLog) PruneBefore(_ context.Context, cutoff time.Time) (int, error) {
	var kept []store.LLMRequestRecord
	removed := 0
	for _, rec := range m.records {
		if rec.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	m.records = kept
	return removed, nil
}

type memScheduleRepo struct {
	rows []store.ReviewSchedule
}

func (m *memScheduleRepo) Get(_ context.Context, userID, topicID int) (*store.ReviewSchedule, error) {
	for _, s := range m.rows {
		if s.UserID == userID && s.TopicID == topicID {
			cp := s
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memScheduleRepo) Upsert(_ context.Context, s *store.ReviewSchedule) (*store.ReviewSchedule, error) {
	cp := *s
	m.rows = append(m.rows, cp)
	return &cp, nil
}

func (m *memScheduleRepo) ListDue(_ context.Context, userID int, cutoff time.Time, _ *int) ([]store.ScheduledTopic, error) {
	var due []store.ScheduledTopic
	for _, s := range m.rows {
		if s.UserID == userID && !s.NextReviewDate.After(cutoff) {
			due = append(due, store.ScheduledTopic{Schedule: s, TopicName: "Topic"})
		}
	}
	return due, nil
}

func (m *memScheduleRepo) ListBetween(_ context.Context, userID int, from, to time.Time, _ *int) ([]store.ScheduledTopic, error) {
	return nil, nil
}

func (m *memScheduleRepo) UserIDs(context.Context) ([]int, error) {
	seen := map[int]bool{}
	var ids []int
	for _, s := range m.rows {
		if !seen[s.UserID] {
			seen[s.UserID] = true
			ids = append(ids, s.UserID)
		}
	}
	return ids, nil
}

func TestPruneLLMLog_RemovesOldEntries(t *testing.T) {
	log := &memLLMLog{}
	old := store.LLMRequestRecord{ID: 1, CreatedAt: now.AddDate(0, 0, -45)}
	fresh := store.LLMRequestRecord{ID: 2, CreatedAt: now.AddDate(0, 0, -5)}
	log.records = []store.LLMRequestRecord{old, fresh}

	runner := New(Config{LogRetentionDays: 30, DigestHour: 7}, log, &memScheduleRepo{}, nil, nil)
	runner.now = func() time.Time { return now }

	removed, err := runner.PruneLLMLog(context.Background())
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if len(log.records) != 1 || log.records[0].ID != 2 {
		t.Errorf("surviving records = %+v", log.records)
	}
}

func TestPruneLLMLog_RetentionFloorsAtOneDay(t *testing.T) {
	log := &memLLMLog{records: []store.LLMRequestRecord{
		{ID: 1, CreatedAt: now.Add(-2 * time.Hour)},
	}}

	runner := New(Config{LogRetentionDays: 0, DigestHour: 7}, log, &memScheduleRepo{}, nil, nil)
	runner.now = func() time.Time { return now }

	removed, err := runner.PruneLLMLog(context.Background())
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if removed != 0 {
		t.Errorf("removed = %d, want 0 for same-day entry", removed)
	}
}

func TestDueDigest_CoversAllUsers(t *testing.T) {
	schedules := &memScheduleRepo{rows: []store.ReviewSchedule{
		{UserID: 1, TopicID: 10, NextReviewDate: now.AddDate(0, 0, -1)},
		{UserID: 2, TopicID: 20, NextReviewDate: now.AddDate(0, 0, 5)},
	}}

	runner := New(Config{LogRetentionDays: 30, DigestHour: 7},
		&memLLMLog{}, schedules, srs.NewService(schedules), nil)
	runner.now = func() time.Time { return now }

	if err := runner.DueDigest(context.Background()); err != nil {
		t.Fatalf("digest: %v", err)
	}
}
