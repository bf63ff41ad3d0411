package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/abhisek/prepmate/internal/questions"
	"github.com/abhisek/prepmate/internal/store"
)

type generateQuestionsRequest struct {
	TopicID         int    `json:"topic_id"`
	TopicName       string `json:"topic_name"`
	Type            string `json:"type"`
	Difficulty      string `json:"difficulty"`
	Count           int    `json:"count"`
	SyllabusContext string `json:"syllabus_context"`
}

// POST /api/questions/generate
func (s *Server) generateQuestions(c echo.Context) error {
	var req generateQuestionsRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}
	if req.TopicID <= 0 || req.TopicName == "" {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("topic_id and topic_name are required"))
	}
	if req.Count <= 0 {
		req.Count = 5
	}
	if req.Difficulty == "" {
		req.Difficulty = questions.DifficultyMedium
	}
	if s.questions == nil {
		return errorJSON(c, http.StatusServiceUnavailable, fmt.Errorf("no LLM provider configured"))
	}

	ctx := c.Request().Context()

	// Pass already-generated questions so the model avoids repeats.
	existing, err := s.qrepo.QuestionsByTopic(ctx, req.TopicID, req.Type)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}
	prior := make([]string, len(existing))
	for i, q := range existing {
		prior[i] = q.QuestionText
	}

	input := questions.GenerateInput{
		TopicName:       req.TopicName,
		SyllabusContext: req.SyllabusContext,
		Difficulty:      req.Difficulty,
		Count:           req.Count,
		PriorQuestions:  prior,
	}

	var generated []store.Question
	switch req.Type {
	case questions.TypeMCQ:
		generated, err = s.questions.GenerateMCQs(ctx, req.TopicID, input)
	case questions.TypeWritten:
		generated, err = s.questions.GenerateWritten(ctx, req.TopicID, input)
	default:
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("unknown question type %q", req.Type))
	}
	if err != nil {
		return errorJSON(c, http.StatusBadGateway, err)
	}

	saved, err := s.qrepo.SaveQuestions(ctx, generated)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"questions": questionsJSON(saved, false),
		"count":     len(saved),
	})
}

// GET /api/questions?topic_id=&type=
func (s *Server) listQuestions(c echo.Context) error {
	topicID, err := intQuery(c, "topic_id")
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}

	rows, err := s.qrepo.QuestionsByTopic(c.Request().Context(), topicID, c.QueryParam("type"))
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"questions": questionsJSON(rows, true)})
}

type attemptRequest struct {
	UserID          int    `json:"user_id"`
	Answer          string `json:"answer"`
	TimeTaken       int    `json:"time_taken_seconds"`
	ConfidenceLevel int    `json:"confidence_level"`
}

// POST /api/questions/:id/attempt
//
// Grades the answer, records the attempt, and feeds the score into the
// review scheduler for the question's topic.
func (s *Server) attemptQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("invalid question id: %q", c.Param("id")))
	}

	var req attemptRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}
	if req.UserID <= 0 {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("user_id is required"))
	}

	ctx := c.Request().Context()
	question, err := s.qrepo.GetQuestion(ctx, id)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}
	if question == nil {
		return errorJSON(c, http.StatusNotFound, fmt.Errorf("question %d not found", id))
	}

	var (
		score    float64
		correct  *bool
		feedback any
	)
	switch question.Type {
	case questions.TypeMCQ:
		isCorrect, explanation, err := questions.CheckMCQ(*question, req.Answer)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, err)
		}
		correct = &isCorrect
		if isCorrect {
			score = 1.0
		}
		feedback = map[string]any{"correct": isCorrect, "explanation": explanation}

	case questions.TypeWritten:
		if s.evaluator == nil {
			return errorJSON(c, http.StatusServiceUnavailable, fmt.Errorf("no LLM provider configured"))
		}
		eval, err := s.evaluator.EvaluateWritten(ctx, *question, req.Answer)
		if err != nil {
			if errors.Is(err, questions.ErrNotWritten) {
				return errorJSON(c, http.StatusBadRequest, err)
			}
			return errorJSON(c, http.StatusBadGateway, err)
		}
		score = eval.Score
		feedback = eval

	default:
		return errorJSON(c, http.StatusInternalServerError, fmt.Errorf("question %d has unknown type %q", id, question.Type))
	}

	attempt, err := s.qrepo.RecordAttempt(ctx, &store.QuestionAttempt{
		UID:             uuid.NewString(),
		UserID:          req.UserID,
		QuestionID:      question.ID,
		Answer:          req.Answer,
		IsCorrect:       correct,
		Score:           &score,
		TimeTaken:       req.TimeTaken,
		ConfidenceLevel: req.ConfidenceLevel,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}

	sched, err := s.scheduler.UpdateSchedule(ctx, req.UserID, question.TopicID, score, s.now())
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"attempt_id": attempt.UID,
		"score":      score,
		"result":     feedback,
		"next_review": map[string]any{
			"interval_days":    sched.IntervalDays,
			"next_review_date": sched.NextReviewDate.Format("2006-01-02"),
		},
	})
}

// questionsJSON renders questions for the API. When hideKey is set, MCQ
// answer keys and written model answers are stripped so a client cannot
// read the solution before attempting.
func questionsJSON(rows []store.Question, hideKey bool) []map[string]any {
	out := make([]map[string]any, len(rows))
	for i, q := range rows {
		item := map[string]any{
			"id":            q.ID,
			"topic_id":      q.TopicID,
			"type":          q.Type,
			"difficulty":    q.Difficulty,
			"question_text": q.QuestionText,
			"marks":         q.Marks,
			"time_limit":    q.TimeLimit,
		}
		if q.Type == questions.TypeMCQ {
			opts := make([]map[string]any, len(q.Options))
			for j, o := range q.Options {
				opt := map[string]any{"label": o.Label, "text": o.Text}
				if !hideKey {
					opt["is_correct"] = o.IsCorrect
					opt["explanation"] = o.Explanation
				}
				opts[j] = opt
			}
			item["options"] = opts
		}
		if q.Type == questions.TypeWritten && q.Written != nil && !hideKey {
			item["written"] = q.Written
		}
		out[i] = item
	}
	return out
}
