package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/prepmate/internal/companies"
	"github.com/abhisek/prepmate/internal/llm"
	"github.com/abhisek/prepmate/internal/plans"
	"github.com/abhisek/prepmate/internal/practice"
	"github.com/abhisek/prepmate/internal/questions"
	"github.com/abhisek/prepmate/internal/roadmap"
	"github.com/abhisek/prepmate/internal/srs"
	"github.com/abhisek/prepmate/internal/store"
)

var testNow = time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)

// stubScheduleRepo is a minimal in-memory ScheduleRepo.
type stubScheduleRepo struct {
	rows map[[2]int]*store.ReviewSchedule
}

func newStubScheduleRepo() *stubScheduleRepo {
	return &stubScheduleRepo{rows: make(map[[2]int]*store.ReviewSchedule)}
}

func (r *stubScheduleRepo) Get(_ context.Context, userID, topicID int) (*store.ReviewSchedule, error) {
	s, ok := r.rows[[2]int{userID, topicID}]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *stubScheduleRepo) Upsert(_ context.Context, s *store.ReviewSchedule) (*store.ReviewSchedule, error) {
	cp := *s
	r.rows[[2]int{s.UserID, s.TopicID}] = &cp
	out := cp
	return &out, nil
}

func (r *stubScheduleRepo) ListDue(_ context.Context, userID int, cutoff time.Time, _ *int) ([]store.ScheduledTopic, error) {
	var due []store.ScheduledTopic
	for _, s := range r.rows {
		if s.UserID == userID && !s.NextReviewDate.After(cutoff) {
			due = append(due, store.ScheduledTopic{Schedule: *s, TopicName: "Topic"})
		}
	}
	return due, nil
}

func (r *stubScheduleRepo) ListBetween(_ context.Context, userID int, from, to time.Time, _ *int) ([]store.ScheduledTopic, error) {
	var rows []store.ScheduledTopic
	for _, s := range r.rows {
		if s.UserID == userID && !s.NextReviewDate.Before(from) && !s.NextReviewDate.After(to) {
			rows = append(rows, store.ScheduledTopic{Schedule: *s, TopicName: "Topic"})
		}
	}
	return rows, nil
}

func (r *stubScheduleRepo) UserIDs(context.Context) ([]int, error) { return nil, nil }

// stubQuestionRepo holds canned questions and records attempts.
type stubQuestionRepo struct {
	questions map[int]store.Question
	attempts  []store.QuestionAttempt
	nextID    int
}

func newStubQuestionRepo() *stubQuestionRepo {
	return &stubQuestionRepo{questions: make(map[int]store.Question)}
}

func (r *stubQuestionRepo) SaveQuestions(_ context.Context, qs []store.Question) ([]store.Question, error) {
	saved := make([]store.Question, len(qs))
	for i, q := range qs {
		r.nextID++
		q.ID = r.nextID
		r.questions[q.ID] = q
		saved[i] = q
	}
	return saved, nil
}

func (r *stubQuestionRepo) GetQuestion(_ context.Context, id int) (*store.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (r *stubQuestionRepo) QuestionsByTopic(_ context.Context, topicID int, questionType string) ([]store.Question, error) {
	var rows []store.Question
	for _, q := range r.questions {
		if q.TopicID == topicID && (questionType == "" || q.Type == questionType) {
			rows = append(rows, q)
		}
	}
	return rows, nil
}

func (r *stubQuestionRepo) RecordAttempt(_ context.Context, a *store.QuestionAttempt) (*store.QuestionAttempt, error) {
	cp := *a
	cp.ID = len(r.attempts) + 1
	r.attempts = append(r.attempts, cp)
	return &cp, nil
}

func (r *stubQuestionRepo) AttemptsByUser(context.Context, int, int) ([]store.QuestionAttempt, error) {
	return r.attempts, nil
}

// stubPlanRepo is a minimal in-memory PlanRepo.
type stubPlanRepo struct {
	plans    []store.StudyPlan
	topics   []store.Topic
	sessions []store.StudySession
}

func (r *stubPlanRepo) CreatePlan(_ context.Context, p *store.StudyPlan) (*store.StudyPlan, error) {
	cp := *p
	cp.ID = len(r.plans) + 1
	cp.Status = "active"
	r.plans = append(r.plans, cp)
	return &cp, nil
}

func (r *stubPlanRepo) GetPlan(_ context.Context, id int) (*store.StudyPlan, error) {
	for _, p := range r.plans {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubPlanRepo) ListPlans(_ context.Context, userID int) ([]store.StudyPlan, error) {
	var out []store.StudyPlan
	for _, p := range r.plans {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPlanRepo) UpdatePlanStatus(context.Context, int, string) error { return nil }

func (r *stubPlanRepo) CreateTopics(_ context.Context, topics []store.Topic) ([]store.Topic, error) {
	created := make([]store.Topic, len(topics))
	for i, t := range topics {
		t.ID = len(r.topics) + 1
		r.topics = append(r.topics, t)
		created[i] = t
	}
	return created, nil
}

func (r *stubPlanRepo) GetTopic(_ context.Context, id int) (*store.Topic, error) {
	for _, t := range r.topics {
		if t.ID == id {
			cp := t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubPlanRepo) TopicsByPlan(_ context.Context, planID int) ([]store.Topic, error) {
	var out []store.Topic
	for _, t := range r.topics {
		if t.PlanID == planID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubPlanRepo) CreateSessions(_ context.Context, sessions []store.StudySession) error {
	r.sessions = append(r.sessions, sessions...)
	return nil
}

func (r *stubPlanRepo) SessionsByTopic(context.Context, int) ([]store.StudySession, error) {
	return r.sessions, nil
}

// stubPracticeRepo is a minimal in-memory PracticeRepo.
type stubPracticeRepo struct {
	sessions []store.PracticeSession
	progress map[string]*store.TopicProgress
	goals    map[string]*store.DailyGoal
}

func newStubPracticeRepo() *stubPracticeRepo {
	return &stubPracticeRepo{
		progress: make(map[string]*store.TopicProgress),
		goals:    make(map[string]*store.DailyGoal),
	}
}

func (r *stubPracticeRepo) CreateSession(_ context.Context, s *store.PracticeSession) (*store.PracticeSession, error) {
	cp := *s
	cp.ID = len(r.sessions) + 1
	if cp.AttemptedAt.IsZero() {
		cp.AttemptedAt = testNow
	}
	r.sessions = append(r.sessions, cp)
	return &cp, nil
}

func (r *stubPracticeRepo) SessionsSince(_ context.Context, userID int, since time.Time) ([]store.PracticeSession, error) {
	var out []store.PracticeSession
	for _, s := range r.sessions {
		if s.UserID == userID && !s.AttemptedAt.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubPracticeRepo) CountSessionsOn(_ context.Context, userID int, _ time.Time) (int, error) {
	count := 0
	for _, s := range r.sessions {
		if s.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *stubPracticeRepo) GetProgress(_ context.Context, _ int, topic string) (*store.TopicProgress, error) {
	p, ok := r.progress[topic]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *stubPracticeRepo) UpsertProgress(_ context.Context, p *store.TopicProgress) error {
	cp := *p
	r.progress[p.Topic] = &cp
	return nil
}

func (r *stubPracticeRepo) ProgressByUser(_ context.Context, userID int) ([]store.TopicProgress, error) {
	var out []store.TopicProgress
	for _, p := range r.progress {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPracticeRepo) GetGoal(_ context.Context, _ int, day time.Time) (*store.DailyGoal, error) {
	g, ok := r.goals[day.Format("2006-01-02")]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *stubPracticeRepo) UpsertGoal(_ context.Context, g *store.DailyGoal) error {
	cp := *g
	r.goals[g.Date.Format("2006-01-02")] = &cp
	return nil
}

func newTestServer(t *testing.T) (*Server, *stubScheduleRepo, *stubQuestionRepo, *stubPlanRepo) {
	t.Helper()

	bank, err := companies.LoadBank()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}

	schedules := newStubScheduleRepo()
	qrepo := newStubQuestionRepo()
	prepo := &stubPlanRepo{}

	s := New(Deps{
		Scheduler:     srs.NewService(schedules),
		Generator:     &roadmap.Generator{},
		Companies:     companies.NewService(bank, nil, nil),
		Planner:       plans.NewService(prepo),
		Tracker:       practice.NewTracker(newStubPracticeRepo()),
		Questions:     questions.NewGenerator(llm.NewMockProvider(), questions.DefaultConfig()),
		Evaluator:     questions.NewEvaluator(llm.NewMockProvider(), questions.DefaultConfig()),
		QuestionStore: qrepo,
		PlanStore:     prepo,
	})
	s.now = func() time.Time { return testNow }
	return s, schedules, qrepo, prepo
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode %s %s response: %v\n%s", method, path, err, rec.Body.String())
		}
	}
	return rec, decoded
}

func TestHealth(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec, body := doJSON(t, s.Handler(), http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestRecordReview_FirstReview(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec, body := doJSON(t, s.Handler(), http.MethodPost, "/api/srs/review",
		`{"user_id": 1, "topic_id": 7, "performance": 0.95}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %v", rec.Code, body)
	}
	if got := body["interval_days"].(float64); got != 3 {
		t.Errorf("interval = %v, want 3", got)
	}
	if got := body["next_review_date"]; got != "2026-08-30" {
		t.Errorf("next review = %v, want 2026-08-30", got)
	}
}

func TestRecordReview_RejectsBadScore(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec, _ := doJSON(t, s.Handler(), http.MethodPost, "/api/srs/review",
		`{"user_id": 1, "topic_id": 7, "performance": 1.5}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDueReviews_RequiresUserID(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec, _ := doJSON(t, s.Handler(), http.MethodGet, "/api/srs/due", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDueReviews_ReturnsOverdue(t *testing.T) {
	s, schedules, _, _ := newTestServer(t)

	schedules.rows[[2]int{1, 3}] = &store.ReviewSchedule{
		UserID: 1, TopicID: 3, IntervalDays: 2, EaseFactor: 2.5, ReviewCount: 1,
		NextReviewDate: testNow.AddDate(0, 0, -2),
	}

	rec, body := doJSON(t, s.Handler(), http.MethodGet, "/api/srs/due?user_id=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := body["count"].(float64); got != 1 {
		t.Errorf("count = %v, want 1", got)
	}
}

func TestGenerateRoadmap_CuratedCompany(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec, body := doJSON(t, s.Handler(), http.MethodPost, "/api/roadmap/generate",
		`{"company": "Google", "role": "SDE", "interview_date": "2026-09-10", "hours_per_day": 4}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %v", rec.Code, body)
	}
	if body["data_source"] != "curated" {
		t.Errorf("data_source = %v, want curated", body["data_source"])
	}

	plan := body["roadmap"].(map[string]any)
	days := plan["roadmap"].([]any)
	if len(days) != 14 {
		t.Errorf("days = %d, want 14", len(days))
	}
	for i, d := range days {
		day := d.(map[string]any)
		if day["topic"] == "" {
			t.Errorf("day %d has no topic", i+1)
		}
	}
}

func TestGenerateRoadmap_UnknownCompanyFallsBack(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec, body := doJSON(t, s.Handler(), http.MethodPost, "/api/roadmap/generate",
		`{"company": "Some Startup", "role": "SDE", "interview_date": "2026-09-06", "hours_per_day": 3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %v", rec.Code, body)
	}
	if body["data_source"] != "fallback" {
		t.Errorf("data_source = %v, want fallback", body["data_source"])
	}
}

func TestGenerateRoadmap_PastDate(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec, _ := doJSON(t, s.Handler(), http.MethodPost, "/api/roadmap/generate",
		`{"company": "Google", "role": "SDE", "interview_date": "2026-08-27", "hours_per_day": 4}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListCompanies(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec, body := doJSON(t, s.Handler(), http.MethodGet, "/api/companies", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	names := body["companies"].([]any)
	if len(names) == 0 {
		t.Error("no curated companies listed")
	}
}

func TestCompanyQuestions_Fallback(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec, body := doJSON(t, s.Handler(), http.MethodGet, "/api/companies/Acme/questions?role=sde", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body["data_source"] != "fallback" {
		t.Errorf("data_source = %v, want fallback", body["data_source"])
	}
}

func TestCreatePlan(t *testing.T) {
	s, _, _, prepo := newTestServer(t)

	rec, body := doJSON(t, s.Handler(), http.MethodPost, "/api/plans",
		`{"user_id": 1, "subject": "Operating Systems", "exam_date": "2026-09-06",
		  "daily_hours": 4, "topics": [{"name": "Scheduling", "weight": 3}, {"name": "Memory", "weight": 1}]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %v", rec.Code, body)
	}

	topics := body["topics"].([]any)
	if len(topics) != 2 {
		t.Fatalf("topics = %d, want 2", len(topics))
	}
	if len(prepo.sessions) == 0 {
		t.Error("no sessions scheduled")
	}
}

func TestCreatePlan_PastExamDate(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec, _ := doJSON(t, s.Handler(), http.MethodPost, "/api/plans",
		`{"user_id": 1, "subject": "OS", "exam_date": "2026-08-20",
		  "daily_hours": 4, "topics": [{"name": "Scheduling", "weight": 1}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPlanTopics_NotFound(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec, _ := doJSON(t, s.Handler(), http.MethodGet, "/api/plans/99/topics", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestAttemptQuestion_MCQFeedsScheduler(t *testing.T) {
	s, schedules, qrepo, _ := newTestServer(t)

	saved, err := qrepo.SaveQuestions(context.Background(), []store.Question{{
		TopicID:      5,
		Type:         "mcq",
		Difficulty:   "easy",
		QuestionText: "What is the time complexity of binary search?",
		Options: []store.MCQOption{
			{Label: "A", Text: "O(n)", IsCorrect: false},
			{Label: "B", Text: "O(log n)", IsCorrect: true, Explanation: "Halves the range each step."},
			{Label: "C", Text: "O(1)", IsCorrect: false},
			{Label: "D", Text: "O(n log n)", IsCorrect: false},
		},
	}})
	if err != nil {
		t.Fatalf("seed question: %v", err)
	}

	rec, body := doJSON(t, s.Handler(), http.MethodPost, "/api/questions/1/attempt",
		`{"user_id": 1, "answer": "b", "time_taken_seconds": 30}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %v", rec.Code, body)
	}
	if got := body["score"].(float64); got != 1.0 {
		t.Errorf("score = %v, want 1.0", got)
	}

	sched := schedules.rows[[2]int{1, saved[0].TopicID}]
	if sched == nil {
		t.Fatal("no schedule created from attempt")
	}
	if sched.IntervalDays != 3 {
		t.Errorf("interval = %d, want 3", sched.IntervalDays)
	}
}

func TestAttemptQuestion_WrongAnswerScoresZero(t *testing.T) {
	s, _, qrepo, _ := newTestServer(t)

	if _, err := qrepo.SaveQuestions(context.Background(), []store.Question{{
		TopicID: 5, Type: "mcq", QuestionText: "q",
		Options: []store.MCQOption{
			{Label: "A", Text: "right", IsCorrect: true},
			{Label: "B", Text: "wrong", IsCorrect: false},
			{Label: "C", Text: "wrong", IsCorrect: false},
			{Label: "D", Text: "wrong", IsCorrect: false},
		},
	}}); err != nil {
		t.Fatalf("seed question: %v", err)
	}

	rec, body := doJSON(t, s.Handler(), http.MethodPost, "/api/questions/1/attempt",
		`{"user_id": 1, "answer": "B"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := body["score"].(float64); got != 0 {
		t.Errorf("score = %v, want 0", got)
	}
}

func TestAttemptQuestion_NotFound(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec, _ := doJSON(t, s.Handler(), http.MethodPost, "/api/questions/404/attempt",
		`{"user_id": 1, "answer": "A"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestListQuestions_HidesAnswerKey(t *testing.T) {
	s, _, qrepo, _ := newTestServer(t)

	if _, err := qrepo.SaveQuestions(context.Background(), []store.Question{{
		TopicID: 5, Type: "mcq", QuestionText: "q",
		Options: []store.MCQOption{
			{Label: "A", Text: "x", IsCorrect: true, Explanation: "secret"},
			{Label: "B", Text: "y", IsCorrect: false},
			{Label: "C", Text: "z", IsCorrect: false},
			{Label: "D", Text: "w", IsCorrect: false},
		},
	}}); err != nil {
		t.Fatalf("seed question: %v", err)
	}

	rec, body := doJSON(t, s.Handler(), http.MethodGet, "/api/questions?topic_id=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	qs := body["questions"].([]any)
	if len(qs) != 1 {
		t.Fatalf("questions = %d, want 1", len(qs))
	}
	opts := qs[0].(map[string]any)["options"].([]any)
	for _, o := range opts {
		if _, leaked := o.(map[string]any)["is_correct"]; leaked {
			t.Error("answer key leaked in listing")
		}
	}
}

func TestRecordPractice_And_DailyProgress(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec, body := doJSON(t, s.Handler(), http.MethodPost, "/api/practice/attempt",
		`{"user_id": 1, "topic": "Arrays", "problem_name": "Two Sum",
		  "difficulty": "Easy", "solved": true, "time_spent_minutes": 15}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %v", rec.Code, body)
	}
	if body["session_id"] == "" {
		t.Error("no session id returned")
	}

	rec, body = doJSON(t, s.Handler(), http.MethodGet, "/api/practice/daily?user_id=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := body["completed"].(float64); got != 1 {
		t.Errorf("completed = %v, want 1", got)
	}
	if got := body["target"].(float64); got != float64(practice.DefaultDailyTarget) {
		t.Errorf("target = %v", got)
	}
}

func TestPracticeHistory_BadWindow(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	rec, _ := doJSON(t, s.Handler(), http.MethodGet, "/api/practice/history?user_id=1&days=0", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
