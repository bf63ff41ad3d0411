package practice

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/abhisek/prepmate/internal/store"
)

// memPracticeRepo is an in-memory PracticeRepo for tests.
type memPracticeRepo struct {
	sessions []store.PracticeSession
	progress map[string]*store.TopicProgress // key: topic (single-user tests)
	goals    map[string]*store.DailyGoal     // key: ISO date
	nextID   int
}

func newMemPracticeRepo() *memPracticeRepo {
	return &memPracticeRepo{
		progress: make(map[string]*store.TopicProgress),
		goals:    make(map[string]*store.DailyGoal),
	}
}

func (m *memPracticeRepo) CreateSession(_ context.Context, s *store.PracticeSession) (*store.PracticeSession, error) {
	m.nextID++
	cp := *s
	cp.ID = m.nextID
	if cp.AttemptedAt.IsZero() {
		cp.AttemptedAt = time.Now()
	}
	m.sessions = append(m.sessions, cp)
	out := cp
	return &out, nil
}

func (m *memPracticeRepo) SessionsSince(_ context.Context, userID int, since time.Time) ([]store.PracticeSession, error) {
	var result []store.PracticeSession
	for _, s := range m.sessions {
		if s.UserID == userID && !s.AttemptedAt.Before(since) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *memPracticeRepo) CountSessionsOn(_ context.Context, userID int, day time.Time) (int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	count := 0
	for _, s := range m.sessions {
		if s.UserID == userID && !s.AttemptedAt.Before(start) && s.AttemptedAt.Before(end) {
			count++
		}
	}
	return count, nil
}

func (m *memPracticeRepo) GetProgress(_ context.Context, _ int, topic string) (*store.TopicProgress, error) {
	p, ok := m.progress[topic]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memPracticeRepo) UpsertProgress(_ context.Context, p *store.TopicProgress) error {
	cp := *p
	m.progress[p.Topic] = &cp
	return nil
}

func (m *memPracticeRepo) ProgressByUser(_ context.Context, userID int) ([]store.TopicProgress, error) {
	var result []store.TopicProgress
	for _, p := range m.progress {
		if p.UserID == userID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *memPracticeRepo) GetGoal(_ context.Context, _ int, day time.Time) (*store.DailyGoal, error) {
	g, ok := m.goals[day.Format("2006-01-02")]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (m *memPracticeRepo) UpsertGoal(_ context.Context, g *store.DailyGoal) error {
	cp := *g
	m.goals[g.Date.Format("2006-01-02")] = &cp
	return nil
}

var now = time.Date(2026, 8, 27, 14, 0, 0, 0, time.UTC)

func TestWeaknessScore(t *testing.T) {
	tests := []struct {
		solved, attempted int
		want              float64
	}{
		{0, 0, 1.0},  // fresh topic
		{0, 4, 1.0},  // attempted but never solved
		{4, 4, 0.2},  // perfect solve rate
		{1, 2, 0.6},  // half
		{3, 4, 0.4},  // 75%
	}
	for _, tt := range tests {
		got := WeaknessScore(tt.solved, tt.attempted)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WeaknessScore(%d, %d) = %v, want %v", tt.solved, tt.attempted, got, tt.want)
		}
	}
}

func TestRecordAttempt_BuildsProgress(t *testing.T) {
	repo := newMemPracticeRepo()
	tracker := NewTracker(repo)
	ctx := context.Background()

	session, err := tracker.RecordAttempt(ctx, Attempt{
		UserID: 1, Topic: "Arrays", ProblemName: "Two Sum",
		Difficulty: "Easy", Solved: true, TimeSpentMinutes: 20,
	}, now)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if session.UID == "" {
		t.Error("session UID not assigned")
	}
	if session.Difficulty != "easy" {
		t.Errorf("difficulty = %q, want lowercased", session.Difficulty)
	}
	if session.SolvedAt == nil {
		t.Error("solved attempt has no solved_at")
	}

	p := repo.progress["Arrays"]
	if p == nil {
		t.Fatal("no progress row created")
	}
	if p.ProblemsAttempted != 1 || p.ProblemsSolved != 1 || p.EasySolved != 1 {
		t.Errorf("progress = %+v", p)
	}
	if math.Abs(p.WeaknessScore-0.2) > 1e-9 {
		t.Errorf("weakness = %v, want 0.2", p.WeaknessScore)
	}

	// A failed attempt drags the score back up.
	if _, err := tracker.RecordAttempt(ctx, Attempt{
		UserID: 1, Topic: "Arrays", ProblemName: "3Sum",
		Difficulty: "medium", Solved: false, TimeSpentMinutes: 45,
	}, now); err != nil {
		t.Fatalf("record: %v", err)
	}

	p = repo.progress["Arrays"]
	if p.ProblemsAttempted != 2 || p.ProblemsSolved != 1 {
		t.Errorf("progress = %+v", p)
	}
	if math.Abs(p.WeaknessScore-0.6) > 1e-9 {
		t.Errorf("weakness = %v, want 0.6", p.WeaknessScore)
	}
	if p.TimeSpentMinutes != 65 {
		t.Errorf("time spent = %d, want 65", p.TimeSpentMinutes)
	}
}

func TestRecordAttempt_UnsolvedHasNoSolvedAt(t *testing.T) {
	tracker := NewTracker(newMemPracticeRepo())

	session, err := tracker.RecordAttempt(context.Background(), Attempt{
		UserID: 1, Topic: "Graphs", ProblemName: "Word Ladder",
		Difficulty: "hard", Solved: false, TimeSpentMinutes: 60,
	}, now)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if session.SolvedAt != nil {
		t.Error("unsolved attempt has solved_at set")
	}
}

func TestRecordAttempt_TracksDailyGoal(t *testing.T) {
	repo := newMemPracticeRepo()
	tracker := NewTracker(repo)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := tracker.RecordAttempt(ctx, Attempt{
			UserID: 1, Topic: "Arrays", ProblemName: "p",
			Difficulty: "easy", Solved: true, TimeSpentMinutes: 10,
		}, now); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	goal := repo.goals["2026-08-27"]
	if goal == nil {
		t.Fatal("no daily goal created")
	}
	if goal.TargetProblems != DefaultDailyTarget {
		t.Errorf("target = %d, want %d", goal.TargetProblems, DefaultDailyTarget)
	}
	if goal.CompletedProblems != 5 || !goal.Completed {
		t.Errorf("goal = %+v, want 5 completed and done", goal)
	}
}

func TestDailyProgress_CreatesGoalLazily(t *testing.T) {
	repo := newMemPracticeRepo()
	tracker := NewTracker(repo)

	status, err := tracker.DailyProgress(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("daily progress: %v", err)
	}
	if status.Target != DefaultDailyTarget || status.Completed != 0 {
		t.Errorf("status = %+v", status)
	}
	if status.Date != "2026-08-27" {
		t.Errorf("date = %s", status.Date)
	}
	if repo.goals["2026-08-27"] == nil {
		t.Error("goal was not persisted")
	}
}

func TestAnalytics_ReportsSolveRate(t *testing.T) {
	repo := newMemPracticeRepo()
	tracker := NewTracker(repo)
	ctx := context.Background()

	attempts := []struct {
		topic  string
		solved bool
	}{
		{"Arrays", true}, {"Arrays", true}, {"Arrays", false},
		{"Graphs", false},
	}
	for _, a := range attempts {
		if _, err := tracker.RecordAttempt(ctx, Attempt{
			UserID: 1, Topic: a.topic, ProblemName: "p",
			Difficulty: "medium", Solved: a.solved, TimeSpentMinutes: 10,
		}, now); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	analytics, err := tracker.Analytics(ctx, 1)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if len(analytics) != 2 {
		t.Fatalf("topics = %d, want 2", len(analytics))
	}

	byTopic := make(map[string]TopicAnalytics)
	for _, a := range analytics {
		byTopic[a.Topic] = a
	}
	if got := byTopic["Arrays"].SolveRate; got != 66.7 {
		t.Errorf("arrays solve rate = %v, want 66.7", got)
	}
	if got := byTopic["Graphs"].WeaknessScore; got != 1.0 {
		t.Errorf("graphs weakness = %v, want 1.0", got)
	}
}

func TestHistory_RejectsBadWindow(t *testing.T) {
	tracker := NewTracker(newMemPracticeRepo())

	if _, err := tracker.History(context.Background(), 1, 0, now); err == nil {
		t.Error("expected error for zero-day window")
	}
}
