package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepmate/internal/companies"
	"github.com/abhisek/prepmate/internal/config"
	"github.com/abhisek/prepmate/internal/jobs"
	"github.com/abhisek/prepmate/internal/llm"
	"github.com/abhisek/prepmate/internal/plans"
	"github.com/abhisek/prepmate/internal/practice"
	"github.com/abhisek/prepmate/internal/questions"
	"github.com/abhisek/prepmate/internal/roadmap"
	"github.com/abhisek/prepmate/internal/server"
	"github.com/abhisek/prepmate/internal/srs"
	"github.com/abhisek/prepmate/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "HTTP listen address (overrides config)")
}

func runServe(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()
	logger.Info("database ready", "path", dbPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Run without LLM features when no provider is configured; curated
	// company banks and all scheduling still work.
	var provider llm.Provider
	if err := cfg.LLM.Validate(); err != nil {
		logger.Warn("LLM provider unavailable, AI features disabled", "reason", err)
	} else {
		provider, err = llm.NewProvider(ctx, cfg.LLM, s.LLMRequestRepo())
		if err != nil {
			return fmt.Errorf("initialize LLM provider: %w", err)
		}
		logger.Info("llm provider ready", "provider", cfg.LLM.Provider, "model", provider.ModelID())
	}

	bank, err := companies.LoadBank()
	if err != nil {
		return fmt.Errorf("load company banks: %w", err)
	}

	scheduler := srs.NewService(s.ScheduleRepo())

	deps := server.Deps{
		Scheduler:     scheduler,
		Generator:     &roadmap.Generator{},
		Companies:     companies.NewService(bank, provider, logger),
		Planner:       plans.NewService(s.PlanRepo()),
		Tracker:       practice.NewTracker(s.PracticeRepo()),
		QuestionStore: s.QuestionRepo(),
		PlanStore:     s.PlanRepo(),
		Logger:        logger,
	}
	if provider != nil {
		deps.Questions = questions.NewGenerator(provider, questions.DefaultConfig())
		deps.Evaluator = questions.NewEvaluator(provider, questions.DefaultConfig())
	}

	if cfg.Jobs.Enabled {
		runner := jobs.New(jobs.Config{
			LogRetentionDays: cfg.Jobs.LogRetentionDays,
			DigestHour:       cfg.Jobs.DigestHour,
		}, s.LLMRequestRepo(), s.ScheduleRepo(), scheduler, logger)
		if err := runner.Start(); err != nil {
			return fmt.Errorf("start background jobs: %w", err)
		}
		defer runner.Stop()
	}

	return server.New(deps).Start(ctx, cfg.Addr)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
