package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abhisek/prepmate/internal/roadmap"
)

type generateRoadmapRequest struct {
	Company       string  `json:"company"`
	Role          string  `json:"role"`
	InterviewDate string  `json:"interview_date"`
	HoursPerDay   float64 `json:"hours_per_day"`
	Rounds        []struct {
		RoundNumber     int    `json:"round_number"`
		Type            string `json:"type"`
		DurationMinutes int    `json:"duration_minutes"`
	} `json:"rounds"`
}

// POST /api/roadmap/generate
func (s *Server) generateRoadmap(c echo.Context) error {
	var req generateRoadmapRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}
	if req.Company == "" {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("company is required"))
	}
	interviewDate, err := time.Parse("2006-01-02", req.InterviewDate)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("invalid interview_date: %q", req.InterviewDate))
	}
	if req.HoursPerDay <= 0 {
		return errorJSON(c, http.StatusBadRequest, fmt.Errorf("hours_per_day must be positive"))
	}

	ctx := c.Request().Context()
	bank, err := s.companies.Questions(ctx, req.Company, req.Role)
	if err != nil {
		return errorJSON(c, http.StatusBadGateway, err)
	}

	rounds := make([]roadmap.RoundSpec, len(req.Rounds))
	for i, r := range req.Rounds {
		rounds[i] = roadmap.RoundSpec{
			RoundNumber:     r.RoundNumber,
			Type:            r.Type,
			DurationMinutes: r.DurationMinutes,
		}
	}

	plan, err := s.generator.Generate(roadmap.Input{
		Topics:          bank.TopicSpecs(),
		Rounds:          rounds,
		SystemDesign:    bank.SystemDesign,
		BehavioralFocus: bank.BehavioralFocus,
		InterviewDate:   interviewDate,
		HoursPerDay:     req.HoursPerDay,
	}, s.now())
	if err != nil {
		if errors.Is(err, roadmap.ErrPastInterviewDate) || errors.Is(err, roadmap.ErrNoTopics) {
			return errorJSON(c, http.StatusBadRequest, err)
		}
		return errorJSON(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"company":     bank.Company,
		"role":        req.Role,
		"data_source": bank.DataSource,
		"roadmap":     plan,
	})
}

// GET /api/companies
func (s *Server) listCompanies(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"companies": s.companies.Available()})
}

// GET /api/companies/:name/questions?role=
func (s *Server) companyQuestions(c echo.Context) error {
	name := c.Param("name")
	role := c.QueryParam("role")

	bank, err := s.companies.Questions(c.Request().Context(), name, role)
	if err != nil {
		return errorJSON(c, http.StatusBadGateway, err)
	}
	return c.JSON(http.StatusOK, bank)
}
