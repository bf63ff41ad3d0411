package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/abhisek/prepmate/internal/practice"
)

type recordPracticeRequest struct {
	UserID           int    `json:"user_id"`
	Topic            string `json:"topic"`
	ProblemName      string `json:"problem_name"`
	Difficulty       string `json:"difficulty"`
	Solved           bool   `json:"solved"`
	TimeSpentMinutes int    `json:"time_spent_minutes"`
	Code             string `json:"code_submitted"`
	Notes            string `json:"notes"`
}

// POST /api/practice/attempt
func (s *Server) recordPractice(c echo.Context) error {
	var req recordPracticeRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}
	if req.UserID <= 0 || req.Topic == "" || req.ProblemName == "" {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("user_id, topic, and problem_name are required"))
	}

	session, err := s.tracker.RecordAttempt(c.Request().Context(), practice.Attempt{
		UserID:           req.UserID,
		Topic:            req.Topic,
		ProblemName:      req.ProblemName,
		Difficulty:       req.Difficulty,
		Solved:           req.Solved,
		TimeSpentMinutes: req.TimeSpentMinutes,
		Code:             req.Code,
		Notes:            req.Notes,
	}, s.now())
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"session_id": session.UID,
		"topic":      session.Topic,
		"solved":     session.Solved,
	})
}

// GET /api/practice/analytics?user_id=
func (s *Server) practiceAnalytics(c echo.Context) error {
	userID, err := intQuery(c, "user_id")
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}

	analytics, err := s.tracker.Analytics(c.Request().Context(), userID)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"topics": analytics})
}

// GET /api/practice/daily?user_id=
func (s *Server) dailyProgress(c echo.Context) error {
	userID, err := intQuery(c, "user_id")
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}

	status, err := s.tracker.DailyProgress(c.Request().Context(), userID, s.now())
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, status)
}

// GET /api/practice/history?user_id=&days=
func (s *Server) practiceHistory(c echo.Context) error {
	userID, err := intQuery(c, "user_id")
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}
	days := 7
	if raw := c.QueryParam("days"); raw != "" {
		if days, err = strconv.Atoi(raw); err != nil {
			return errorJSON(c, http.StatusBadRequest, fmt.Errorf("invalid days: %q", raw))
		}
	}

	sessions, err := s.tracker.History(c.Request().Context(), userID, days, s.now())
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"days":     days,
		"sessions": sessions,
		"count":    len(sessions),
	})
}
