// Package jobs runs the recurring maintenance tasks: pruning the LLM
// request log and producing the daily due-review digest.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/abhisek/prepmate/internal/srs"
	"github.com/abhisek/prepmate/internal/store"
)

// pruneAt is the fixed time of day the log prune runs. It is off-peak
// and unrelated to the digest hour, which users configure.
const pruneAt = "03:00"

// Config controls the job schedule.
type Config struct {
	// LogRetentionDays is how long LLM request log entries are kept.
	LogRetentionDays int

	// DigestHour is the hour of day (0-23, UTC) the due-review digest runs.
	DigestHour int
}

// Runner owns the gocron scheduler and the job implementations.
type Runner struct {
	scheduler *gocron.Scheduler
	logger    *slog.Logger
	cfg       Config

	llmLog    store.LLMRequestRepo
	schedules store.ScheduleRepo
	reviews   *srs.Service

	now func() time.Time
}

// New creates a Runner. Jobs are registered but not started.
func New(cfg Config, llmLog store.LLMRequestRepo, schedules store.ScheduleRepo, reviews *srs.Service, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		scheduler: gocron.NewScheduler(time.UTC),
		logger:    logger,
		cfg:       cfg,
		llmLog:    llmLog,
		schedules: schedules,
		reviews:   reviews,
		now:       time.Now,
	}
}

// Start registers the jobs and runs the scheduler in the background.
func (r *Runner) Start() error {
	if _, err := r.scheduler.Every(1).Day().At(pruneAt).Do(r.runPrune); err != nil {
		return fmt.Errorf("schedule log prune: %w", err)
	}

	digestAt := fmt.Sprintf("%02d:00", r.cfg.DigestHour)
	if _, err := r.scheduler.Every(1).Day().At(digestAt).Do(r.runDigest); err != nil {
		return fmt.Errorf("schedule due digest: %w", err)
	}

	r.scheduler.StartAsync()
	r.logger.Info("background jobs started",
		"prune_at", pruneAt, "digest_at", digestAt,
		"log_retention_days", r.cfg.LogRetentionDays)
	return nil
}

// Stop halts the scheduler. Running jobs finish.
func (r *Runner) Stop() {
	r.scheduler.Stop()
}

func (r *Runner) runPrune() {
	if _, err := r.PruneLLMLog(context.Background()); err != nil {
		r.logger.Error("llm log prune failed", "error", err)
	}
}

func (r *Runner) runDigest() {
	if err := r.DueDigest(context.Background()); err != nil {
		r.logger.Error("due-review digest failed", "error", err)
	}
}

// PruneLLMLog deletes request log entries older than the retention
// window and returns the number removed.
func (r *Runner) PruneLLMLog(ctx context.Context) (int, error) {
	retention := r.cfg.LogRetentionDays
	if retention < 1 {
		retention = 1
	}
	cutoff := r.now().AddDate(0, 0, -retention)

	n, err := r.llmLog.PruneBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.logger.Info("pruned llm request log", "removed", n, "cutoff", cutoff.Format("2006-01-02"))
	}
	return n, nil
}

// DueDigest logs, per user, how many topics are due for review today.
// It is the hook point for outbound notifications later.
func (r *Runner) DueDigest(ctx context.Context) error {
	userIDs, err := r.schedules.UserIDs(ctx)
	if err != nil {
		return err
	}

	today := r.now()
	for _, userID := range userIDs {
		due, err := r.reviews.DueReviews(ctx, userID, nil, today)
		if err != nil {
			r.logger.Error("due digest failed for user", "user_id", userID, "error", err)
			continue
		}
		if len(due) == 0 {
			continue
		}

		topics := make([]string, 0, len(due))
		for _, d := range due {
			topics = append(topics, d.TopicName)
		}
		r.logger.Info("reviews due today",
			"user_id", userID, "count", len(due), "topics", topics)
	}
	return nil
}
