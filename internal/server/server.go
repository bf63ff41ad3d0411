// Package server exposes the HTTP API: review scheduling, roadmap
// generation, study plans, question generation, and practice tracking.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/abhisek/prepmate/internal/companies"
	"github.com/abhisek/prepmate/internal/plans"
	"github.com/abhisek/prepmate/internal/practice"
	"github.com/abhisek/prepmate/internal/questions"
	"github.com/abhisek/prepmate/internal/roadmap"
	"github.com/abhisek/prepmate/internal/srs"
	"github.com/abhisek/prepmate/internal/store"
)

// Server wires the HTTP routes to the application services.
type Server struct {
	echo   *echo.Echo
	logger *slog.Logger

	scheduler *srs.Service
	generator *roadmap.Generator
	companies *companies.Service
	planner   *plans.Service
	tracker   *practice.Tracker
	questions *questions.Generator
	evaluator *questions.Evaluator
	qrepo     store.QuestionRepo
	prepo     store.PlanRepo

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// Deps carries everything a Server needs.
type Deps struct {
	Scheduler     *srs.Service
	Generator     *roadmap.Generator
	Companies     *companies.Service
	Planner       *plans.Service
	Tracker       *practice.Tracker
	Questions     *questions.Generator
	Evaluator     *questions.Evaluator
	QuestionStore store.QuestionRepo
	PlanStore     store.PlanRepo
	Logger        *slog.Logger
}

// New builds the Server and registers all routes.
func New(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			logger.Info("request", attrs...)
			return nil
		},
	}))

	s := &Server{
		echo:      e,
		logger:    logger,
		scheduler: deps.Scheduler,
		generator: deps.Generator,
		companies: deps.Companies,
		planner:   deps.Planner,
		tracker:   deps.Tracker,
		questions: deps.Questions,
		evaluator: deps.Evaluator,
		qrepo:     deps.QuestionStore,
		prepo:     deps.PlanStore,
		now:       time.Now,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.echo.Group("/api")

	api.GET("/health", s.health)

	api.POST("/srs/review", s.recordReview)
	api.GET("/srs/due", s.dueReviews)
	api.GET("/srs/upcoming", s.upcomingReviews)

	api.POST("/roadmap/generate", s.generateRoadmap)
	api.GET("/companies", s.listCompanies)
	api.GET("/companies/:name/questions", s.companyQuestions)

	api.POST("/plans", s.createPlan)
	api.GET("/plans", s.listPlans)
	api.GET("/plans/:id/topics", s.planTopics)

	api.POST("/questions/generate", s.generateQuestions)
	api.GET("/questions", s.listQuestions)
	api.POST("/questions/:id/attempt", s.attemptQuestion)

	api.POST("/practice/attempt", s.recordPractice)
	api.GET("/practice/analytics", s.practiceAnalytics)
	api.GET("/practice/daily", s.dailyProgress)
	api.GET("/practice/history", s.practiceHistory)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Start runs the HTTP listener until the context is canceled.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(addr)
	}()
	s.logger.Info("http server listening", "addr", addr)

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// errorJSON is the uniform error body.
func errorJSON(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"error": err.Error()})
}
