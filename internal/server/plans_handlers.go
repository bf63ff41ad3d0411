package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abhisek/prepmate/internal/plans"
	"github.com/abhisek/prepmate/internal/store"
)

type createPlanRequest struct {
	UserID      int     `json:"user_id"`
	Subject     string  `json:"subject"`
	ExamType    string  `json:"exam_type"`
	ExamDate    string  `json:"exam_date"`
	DailyHours  float64 `json:"daily_hours"`
	TargetGrade string  `json:"target_grade"`
	Topics      []struct {
		Name   string  `json:"name"`
		Weight float64 `json:"weight"`
	} `json:"topics"`
}

// POST /api/plans
func (s *Server) createPlan(c echo.Context) error {
	var req createPlanRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}
	if req.UserID <= 0 || req.Subject == "" {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("user_id and subject are required"))
	}
	examDate, err := time.Parse("2006-01-02", req.ExamDate)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("invalid exam_date: %q", req.ExamDate))
	}
	if req.DailyHours <= 0 {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("daily_hours must be positive"))
	}

	topics := make([]plans.TopicInput, len(req.Topics))
	for i, t := range req.Topics {
		topics[i] = plans.TopicInput{Name: t.Name, Weight: t.Weight}
	}

	plan, created, err := s.planner.Create(c.Request().Context(), plans.CreateInput{
		UserID:      req.UserID,
		Subject:     req.Subject,
		ExamType:    req.ExamType,
		ExamDate:    examDate,
		DailyHours:  req.DailyHours,
		TargetGrade: req.TargetGrade,
		Topics:      topics,
	}, s.now())
	if err != nil {
		if errors.Is(err, plans.ErrPastExamDate) || errors.Is(err, plans.ErrNoTopics) {
			return errorJSON(c, http.StatusBadRequest, err)
		}
		return errorJSON(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"plan":   planJSON(plan),
		"topics": topicsJSON(created),
	})
}

// GET /api/plans?user_id=
func (s *Server) listPlans(c echo.Context) error {
	userID, err := intQuery(c, "user_id")
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}

	rows, err := s.prepo.ListPlans(c.Request().Context(), userID)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}

	out := make([]map[string]any, len(rows))
	for i := range rows {
		out[i] = planJSON(&rows[i])
	}
	return c.JSON(http.StatusOK, map[string]any{"plans": out})
}

// GET /api/plans/:id/topics
func (s *Server) planTopics(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("invalid plan id: %q", c.Param("id")))
	}

	ctx := c.Request().Context()
	plan, err := s.prepo.GetPlan(ctx, id)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}
	if plan == nil {
		return errorJSON(c, http.StatusNotFound, fmt.Errorf("plan %d not found", id))
	}

	topics, err := s.prepo.TopicsByPlan(ctx, id)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"plan_id": id,
		"topics":  topicsJSON(topics),
	})
}

func planJSON(p *store.StudyPlan) map[string]any {
	return map[string]any{
		"id":           p.ID,
		"user_id":      p.UserID,
		"subject":      p.Subject,
		"exam_type":    p.ExamType,
		"exam_date":    p.ExamDate.Format("2006-01-02"),
		"daily_hours":  p.DailyHours,
		"target_grade": p.TargetGrade,
		"status":       p.Status,
	}
}

func topicsJSON(topics []store.Topic) []map[string]any {
	out := make([]map[string]any, len(topics))
	for i, t := range topics {
		out[i] = map[string]any{
			"id":              t.ID,
			"name":            t.Name,
			"weight":          t.Weight,
			"allocated_hours": t.AllocatedHours,
			"order_index":     t.OrderIndex,
			"mastery_level":   t.MasteryLevel,
		}
	}
	return out
}
