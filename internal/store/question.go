package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/prepmate/ent"
	entquestion "github.com/abhisek/prepmate/ent/question"
	"github.com/abhisek/prepmate/ent/questionattempt"
)

// MCQOption is one answer choice for an MCQ question.
type MCQOption struct {
	Label       string `json:"label"`
	Text        string `json:"text"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation,omitempty"`
}

// WrittenSpec holds the marking material for a written-answer question.
type WrittenSpec struct {
	ModelAnswer    string         `json:"model_answer"`
	MarkingScheme  map[string]int `json:"marking_scheme,omitempty"`
	Keywords       []string       `json:"keywords,omitempty"`
	ExpectedLength string         `json:"expected_length,omitempty"`
}

// Question is a generated practice question. Exactly one of Options or
// Written is populated, matching Type.
type Question struct {
	ID           int
	TopicID      int
	Type         string
	Difficulty   string
	QuestionText string
	Marks        int
	TimeLimit    int
	Options      []MCQOption
	Written      *WrittenSpec
	CreatedAt    time.Time
}

// QuestionAttempt records a single answer to a question.
type QuestionAttempt struct {
	ID              int
	UID             string
	UserID          int
	QuestionID      int
	Answer          string
	IsCorrect       *bool
	Score           *float64
	TimeTaken       int
	ConfidenceLevel int
	AttemptedAt     time.Time
}

// QuestionRepo manages generated questions and their attempts.
type QuestionRepo interface {
	SaveQuestions(ctx context.Context, questions []Question) ([]Question, error)
	GetQuestion(ctx context.Context, id int) (*Question, error)
	QuestionsByTopic(ctx context.Context, topicID int, questionType string) ([]Question, error)

	RecordAttempt(ctx context.Context, attempt *QuestionAttempt) (*QuestionAttempt, error)
	AttemptsByUser(ctx context.Context, userID int, limit int) ([]QuestionAttempt, error)
}

type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) SaveQuestions(ctx context.Context, questions []Question) ([]Question, error) {
	builders := make([]*ent.QuestionCreate, len(questions))
	for i, q := range questions {
		payload, err := questionPayload(q)
		if err != nil {
			return nil, fmt.Errorf("encode question payload: %w", err)
		}
		builders[i] = r.client.Question.Create().
			SetTopicID(q.TopicID).
			SetQuestionType(q.Type).
			SetDifficulty(q.Difficulty).
			SetQuestionText(q.QuestionText).
			SetMarks(q.Marks).
			SetTimeLimit(q.TimeLimit).
			SetPayload(payload)
	}

	rows, err := r.client.Question.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save questions: %w", err)
	}

	saved := make([]Question, 0, len(rows))
	for _, row := range rows {
		q, err := entQuestionToQuestion(row)
		if err != nil {
			return nil, err
		}
		saved = append(saved, *q)
	}
	return saved, nil
}

func (r *questionRepo) GetQuestion(ctx context.Context, id int) (*Question, error) {
	row, err := r.client.Question.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return entQuestionToQuestion(row)
}

func (r *questionRepo) QuestionsByTopic(ctx context.Context, topicID int, questionType string) ([]Question, error) {
	q := r.client.Question.Query().
		Where(entquestion.TopicID(topicID))
	if questionType != "" {
		q = q.Where(entquestion.QuestionType(questionType))
	}

	rows, err := q.Order(ent.Asc(entquestion.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	questions := make([]Question, 0, len(rows))
	for _, row := range rows {
		qq, err := entQuestionToQuestion(row)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *qq)
	}
	return questions, nil
}

func (r *questionRepo) RecordAttempt(ctx context.Context, attempt *QuestionAttempt) (*QuestionAttempt, error) {
	builder := r.client.QuestionAttempt.Create().
		SetUID(attempt.UID).
		SetUserID(attempt.UserID).
		SetQuestionID(attempt.QuestionID).
		SetAnswer(attempt.Answer).
		SetTimeTaken(attempt.TimeTaken).
		SetConfidenceLevel(attempt.ConfidenceLevel).
		SetNillableIsCorrect(attempt.IsCorrect).
		SetNillableScore(attempt.Score)

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}
	return entAttemptToAttempt(row), nil
}

func (r *questionRepo) AttemptsByUser(ctx context.Context, userID int, limit int) ([]QuestionAttempt, error) {
	q := r.client.QuestionAttempt.Query().
		Where(questionattempt.UserID(userID)).
		Order(ent.Desc(questionattempt.FieldAttemptedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	attempts := make([]QuestionAttempt, len(rows))
	for i, row := range rows {
		attempts[i] = *entAttemptToAttempt(row)
	}
	return attempts, nil
}

// questionPayload packs the format-specific content into the JSON column.
func questionPayload(q Question) (map[string]any, error) {
	payload := map[string]any{}
	switch q.Type {
	case "mcq":
		payload["options"] = q.Options
	case "written":
		payload["written"] = q.Written
	}
	return roundTripToMap(payload)
}

// roundTripToMap converts typed values to the map[string]any form ent's
// JSON column expects.
func roundTripToMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func entQuestionToQuestion(row *ent.Question) (*Question, error) {
	q := &Question{
		ID:           row.ID,
		TopicID:      row.TopicID,
		Type:         row.QuestionType,
		Difficulty:   row.Difficulty,
		QuestionText: row.QuestionText,
		Marks:        row.Marks,
		TimeLimit:    row.TimeLimit,
		CreatedAt:    row.CreatedAt,
	}

	b, err := json.Marshal(row.Payload)
	if err != nil {
		return nil, fmt.Errorf("marshal question payload: %w", err)
	}
	var payload struct {
		Options []MCQOption  `json:"options"`
		Written *WrittenSpec `json:"written"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal question payload: %w", err)
	}
	q.Options = payload.Options
	q.Written = payload.Written

	return q, nil
}

func entAttemptToAttempt(row *ent.QuestionAttempt) *QuestionAttempt {
	return &QuestionAttempt{
		ID:              row.ID,
		UID:             row.UID,
		UserID:          row.UserID,
		QuestionID:      row.QuestionID,
		Answer:          row.Answer,
		IsCorrect:       row.IsCorrect,
		Score:           row.Score,
		TimeTaken:       row.TimeTaken,
		ConfidenceLevel: row.ConfidenceLevel,
		AttemptedAt:     row.AttemptedAt,
	}
}
