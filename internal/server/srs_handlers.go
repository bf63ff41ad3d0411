package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type recordReviewRequest struct {
	UserID      int     `json:"user_id"`
	TopicID     int     `json:"topic_id"`
	Performance float64 `json:"performance"`
}

// POST /api/srs/review
func (s *Server) recordReview(c echo.Context) error {
	var req recordReviewRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}
	if req.UserID <= 0 || req.TopicID <= 0 {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("user_id and topic_id are required"))
	}

	sched, err := s.scheduler.UpdateSchedule(c.Request().Context(), req.UserID, req.TopicID, req.Performance, s.now())
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"topic_id":         sched.TopicID,
		"interval_days":    sched.IntervalDays,
		"ease_factor":      sched.EaseFactor,
		"review_count":     sched.ReviewCount,
		"next_review_date": sched.NextReviewDate.Format("2006-01-02"),
	})
}

// GET /api/srs/due?user_id=&plan_id=
func (s *Server) dueReviews(c echo.Context) error {
	userID, err := intQuery(c, "user_id")
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}
	planID, err := optionalIntQuery(c, "plan_id")
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}

	due, err := s.scheduler.DueReviews(c.Request().Context(), userID, planID, s.now())
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"due": due, "count": len(due)})
}

// GET /api/srs/upcoming?user_id=&days=&plan_id=
func (s *Server) upcomingReviews(c echo.Context) error {
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
	planID, err := optionalIntQuery(c, "plan_id")
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}

	upcoming, err := s.scheduler.UpcomingReviews(c.Request().Context(), userID, days, planID, s.now())
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"upcoming": upcoming})
}

func intQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}

func optionalIntQuery(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &v, nil
}
