package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestScheduleUpsertIsIdempotentPerPair(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScheduleRepo()
	ctx := context.Background()

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	first, err := repo.Upsert(ctx, &ReviewSchedule{
		UserID: 1, TopicID: 10,
		IntervalDays: 1, EaseFactor: 2.5, ReviewCount: 1,
		NextReviewDate: date,
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := repo.Upsert(ctx, &ReviewSchedule{
		UserID: 1, TopicID: 10,
		IntervalDays: 3, EaseFactor: 2.65, ReviewCount: 2,
		NextReviewDate: date.AddDate(0, 0, 3),
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("upsert created a new row: id %d then %d", first.ID, second.ID)
	}
	if second.IntervalDays != 3 || second.ReviewCount != 2 {
		t.Errorf("updated schedule = %+v", second)
	}

	got, err := repo.Get(ctx, 1, 10)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.EaseFactor != 2.65 {
		t.Errorf("ease = %v, want 2.65", got.EaseFactor)
	}
}

func TestScheduleGetMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)

	got, err := s.ScheduleRepo().Get(context.Background(), 1, 99)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil for missing pair", got)
	}
}

func TestListDueJoinsTopicsAndFiltersByPlan(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	plan, err := s.PlanRepo().CreatePlan(ctx, &StudyPlan{
		UserID: 1, Subject: "DSA",
		ExamDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), DailyHours: 3,
	})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	otherPlan, err := s.PlanRepo().CreatePlan(ctx, &StudyPlan{
		UserID: 1, Subject: "OS",
		ExamDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), DailyHours: 2,
	})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	topics, err := s.PlanRepo().CreateTopics(ctx, []Topic{
		{PlanID: plan.ID, Name: "Arrays", Weight: 1, AllocatedHours: 5},
		{PlanID: otherPlan.ID, Name: "Scheduling", Weight: 1, AllocatedHours: 5},
	})
	if err != nil {
		t.Fatalf("create topics: %v", err)
	}

	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	for _, topic := range topics {
		if _, err := s.ScheduleRepo().Upsert(ctx, &ReviewSchedule{
			UserID: 1, TopicID: topic.ID,
			IntervalDays: 1, EaseFactor: 2.5, ReviewCount: 1,
			NextReviewDate: today.AddDate(0, 0, -1),
		}); err != nil {
			t.Fatalf("upsert schedule: %v", err)
		}
	}

	all, err := s.ScheduleRepo().ListDue(ctx, 1, today, nil)
	if err != nil {
		t.Fatalf("list due: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("due (no filter) = %d, want 2", len(all))
	}

	filtered, err := s.ScheduleRepo().ListDue(ctx, 1, today, &plan.ID)
	if err != nil {
		t.Fatalf("list due filtered: %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("due (plan filter) = %d, want 1", len(filtered))
	}
	if filtered[0].TopicName != "Arrays" {
		t.Errorf("topic = %q, want Arrays", filtered[0].TopicName)
	}
}

func TestPlanTopicsOrderedByIndex(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	plan, err := s.PlanRepo().CreatePlan(ctx, &StudyPlan{
		UserID: 1, Subject: "DSA",
		ExamDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), DailyHours: 3,
	})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	if _, err := s.PlanRepo().CreateTopics(ctx, []Topic{
		{PlanID: plan.ID, Name: "Graphs", Weight: 1, AllocatedHours: 4, OrderIndex: 2},
		{PlanID: plan.ID, Name: "Arrays", Weight: 3, AllocatedHours: 9, OrderIndex: 0},
		{PlanID: plan.ID, Name: "Trees", Weight: 2, AllocatedHours: 6, OrderIndex: 1},
	}); err != nil {
		t.Fatalf("create topics: %v", err)
	}

	topics, err := s.PlanRepo().TopicsByPlan(ctx, plan.ID)
	if err != nil {
		t.Fatalf("list topics: %v", err)
	}
	want := []string{"Arrays", "Trees", "Graphs"}
	for i, name := range want {
		if topics[i].Name != name {
			t.Errorf("topics[%d] = %q, want %q", i, topics[i].Name, name)
		}
	}
}

func TestQuestionPayloadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	plan, err := s.PlanRepo().CreatePlan(ctx, &StudyPlan{
		UserID: 1, Subject: "DSA",
		ExamDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), DailyHours: 3,
	})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	topics, err := s.PlanRepo().CreateTopics(ctx, []Topic{
		{PlanID: plan.ID, Name: "Trees", Weight: 1, AllocatedHours: 5},
	})
	if err != nil {
		t.Fatalf("create topics: %v", err)
	}

	saved, err := s.QuestionRepo().SaveQuestions(ctx, []Question{
		{
			TopicID: topics[0].ID, Type: "mcq", Difficulty: "medium",
			QuestionText: "Height of a balanced BST with n nodes?",
			Marks:        1, TimeLimit: 60,
			Options: []MCQOption{
				{Label: "A", Text: "O(n)", IsCorrect: false},
				{Label: "B", Text: "O(log n)", IsCorrect: true, Explanation: "Balanced trees halve per level."},
				{Label: "C", Text: "O(1)", IsCorrect: false},
				{Label: "D", Text: "O(n^2)", IsCorrect: false},
			},
		},
		{
			TopicID: topics[0].ID, Type: "written", Difficulty: "hard",
			QuestionText: "Explain AVL rotations.",
			Marks:        5, TimeLimit: 600,
			Written: &WrittenSpec{
				ModelAnswer: "Single and double rotations restore balance.",
				Keywords:    []string{"rotation", "balance factor"},
			},
		},
	})
	if err != nil {
		t.Fatalf("save questions: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("saved = %d, want 2", len(saved))
	}

	mcq, err := s.QuestionRepo().GetQuestion(ctx, saved[0].ID)
	if err != nil {
		t.Fatalf("get mcq: %v", err)
	}
	if len(mcq.Options) != 4 {
		t.Fatalf("options = %d, want 4", len(mcq.Options))
	}
	if !mcq.Options[1].IsCorrect || mcq.Options[1].Label != "B" {
		t.Errorf("answer key lost in round trip: %+v", mcq.Options[1])
	}

	written, err := s.QuestionRepo().GetQuestion(ctx, saved[1].ID)
	if err != nil {
		t.Fatalf("get written: %v", err)
	}
	if written.Written == nil || written.Written.ModelAnswer == "" {
		t.Errorf("written spec lost in round trip: %+v", written.Written)
	}

	byType, err := s.QuestionRepo().QuestionsByTopic(ctx, topics[0].ID, "mcq")
	if err != nil {
		t.Fatalf("list by type: %v", err)
	}
	if len(byType) != 1 {
		t.Errorf("mcq questions = %d, want 1", len(byType))
	}
}

func TestPracticeProgressUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.PracticeRepo()
	ctx := context.Background()

	if err := repo.UpsertProgress(ctx, &TopicProgress{
		UserID: 1, Topic: "Arrays",
		ProblemsAttempted: 1, ProblemsSolved: 1, WeaknessScore: 0.2,
	}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.UpsertProgress(ctx, &TopicProgress{
		UserID: 1, Topic: "Arrays",
		ProblemsAttempted: 2, ProblemsSolved: 1, WeaknessScore: 0.6,
	}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, err := repo.ProgressByUser(ctx, 1)
	if err != nil {
		t.Fatalf("list progress: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("progress rows = %d, want 1 after upsert", len(rows))
	}
	if rows[0].ProblemsAttempted != 2 || rows[0].WeaknessScore != 0.6 {
		t.Errorf("progress = %+v", rows[0])
	}
}

func TestLLMRequestLogAppendAndPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMRequestRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Append(ctx, LLMRequestData{
			Provider: "anthropic", Model: "claude-haiku", Purpose: "question-gen",
			InputTokens: 100, OutputTokens: 200, LatencyMs: 500, Success: true,
		}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("recent = %d, want 2 with limit", len(records))
	}

	// Everything was appended just now, so a past cutoff removes nothing.
	removed, err := repo.PruneBefore(ctx, time.Now().AddDate(0, 0, -1))
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}

	// A future cutoff removes everything.
	removed, err = repo.PruneBefore(ctx, time.Now().AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if removed != 3 {
		t.Errorf("removed = %d, want 3", removed)
	}
}
