// Package practice tracks coding practice attempts and the aggregate
// per-topic progress derived from them. The weakness score computed
// here feeds the roadmap generator's topic ranking.
package practice

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/prepmate/internal/store"
)

// DefaultDailyTarget is the problems-per-day goal created for a user's
// first attempt of the day.
const DefaultDailyTarget = 5

// Tracker records attempts and maintains progress aggregates.
type Tracker struct {
	repo store.PracticeRepo
}

// NewTracker creates a Tracker backed by the given repo.
func NewTracker(repo store.PracticeRepo) *Tracker {
	return &Tracker{repo: repo}
}

// Attempt is one practice attempt to record.
type Attempt struct {
	UserID           int
	Topic            string
	ProblemName      string
	Difficulty       string
	Solved           bool
	TimeSpentMinutes int
	Code             string
	Notes            string
}

// RecordAttempt persists the attempt, updates the topic's aggregate
// progress and weakness score, and refreshes today's goal.
func (t *Tracker) RecordAttempt(ctx context.Context, a Attempt, now time.Time) (*store.PracticeSession, error) {
	session := &store.PracticeSession{
		UID:              uuid.NewString(),
		UserID:           a.UserID,
		Topic:            a.Topic,
		ProblemName:      a.ProblemName,
		Difficulty:       strings.ToLower(a.Difficulty),
		Solved:           a.Solved,
		TimeSpentMinutes: a.TimeSpentMinutes,
		CodeSubmitted:    a.Code,
		Notes:            a.Notes,
	}
	if a.Solved {
		solvedAt := now
		session.SolvedAt = &solvedAt
	}

	session, err := t.repo.CreateSession(ctx, session)
	if err != nil {
		return nil, err
	}

	if err := t.updateProgress(ctx, a, now); err != nil {
		return nil, err
	}
	if err := t.updateDailyGoal(ctx, a.UserID, now); err != nil {
		return nil, err
	}

	return session, nil
}

func (t *Tracker) updateProgress(ctx context.Context, a Attempt, now time.Time) error {
	progress, err := t.repo.GetProgress(ctx, a.UserID, a.Topic)
	if err != nil {
		return err
	}
	if progress == nil {
		progress = &store.TopicProgress{UserID: a.UserID, Topic: a.Topic}
	}

	progress.ProblemsAttempted++
	if a.Solved {
		progress.ProblemsSolved++
		switch strings.ToLower(a.Difficulty) {
		case "easy":
			progress.EasySolved++
		case "medium":
			progress.MediumSolved++
		case "hard":
			progress.HardSolved++
		}
	}
	progress.TimeSpentMinutes += a.TimeSpentMinutes
	progress.LastPracticed = &now
	progress.WeaknessScore = WeaknessScore(progress.ProblemsSolved, progress.ProblemsAttempted)

	return t.repo.UpsertProgress(ctx, progress)
}

func (t *Tracker) updateDailyGoal(ctx context.Context, userID int, now time.Time) error {
	goal, err := t.repo.GetGoal(ctx, userID, now)
	if err != nil {
		return err
	}
	if goal == nil {
		goal = &store.DailyGoal{
			UserID:         userID,
			Date:           now,
			TargetProblems: DefaultDailyTarget,
		}
	}

	count, err := t.repo.CountSessionsOn(ctx, userID, now)
	if err != nil {
		return err
	}
	goal.CompletedProblems = count
	goal.Completed = count >= goal.TargetProblems

	return t.repo.UpsertGoal(ctx, goal)
}

// WeaknessScore converts a solve history into the roadmap's weakness
// weight: 1.0 for a fresh topic down to 0.2 at a perfect solve rate.
func WeaknessScore(solved, attempted int) float64 {
	if attempted < 1 {
		attempted = 1
	}
	solveRate := float64(solved) / float64(attempted)
	return 1.0 - solveRate*0.8
}

// TopicAnalytics is the per-topic summary exposed to callers.
type TopicAnalytics struct {
	Topic         string     `json:"topic"`
	Attempted     int        `json:"attempted"`
	Solved        int        `json:"solved"`
	SolveRate     float64    `json:"solve_rate"`
	TimeSpent     int        `json:"time_spent"`
	WeaknessScore float64    `json:"weakness_score"`
	EasySolved    int        `json:"easy_solved"`
	MediumSolved  int        `json:"medium_solved"`
	HardSolved    int        `json:"hard_solved"`
	LastPracticed *time.Time `json:"last_practiced,omitempty"`
}

// Analytics returns all topics for a user, weakest first.
func (t *Tracker) Analytics(ctx context.Context, userID int) ([]TopicAnalytics, error) {
	rows, err := t.repo.ProgressByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	analytics := make([]TopicAnalytics, len(rows))
	for i, p := range rows {
		attempted := p.ProblemsAttempted
		if attempted < 1 {
			attempted = 1
		}
		analytics[i] = TopicAnalytics{
			Topic:         p.Topic,
			Attempted:     p.ProblemsAttempted,
			Solved:        p.ProblemsSolved,
			SolveRate:     round1(float64(p.ProblemsSolved) / float64(attempted) * 100),
			TimeSpent:     p.TimeSpentMinutes,
			WeaknessScore: math.Round(p.WeaknessScore*100) / 100,
			EasySolved:    p.EasySolved,
			MediumSolved:  p.MediumSolved,
			HardSolved:    p.HardSolved,
			LastPracticed: p.LastPracticed,
		}
	}
	return analytics, nil
}

// DailyStatus summarizes today's goal and attempts.
type DailyStatus struct {
	Date               string                  `json:"date"`
	Target             int                     `json:"target"`
	Completed          int                     `json:"completed"`
	ProgressPercentage float64                 `json:"progress_percentage"`
	Attempts           []store.PracticeSession `json:"attempts_today"`
}

// DailyProgress returns today's goal status, creating the goal with the
// default target when it does not exist yet.
func (t *Tracker) DailyProgress(ctx context.Context, userID int, now time.Time) (*DailyStatus, error) {
	goal, err := t.repo.GetGoal(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		goal = &store.DailyGoal{
			UserID:         userID,
			Date:           now,
			TargetProblems: DefaultDailyTarget,
		}
		if err := t.repo.UpsertGoal(ctx, goal); err != nil {
			return nil, err
		}
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	attempts, err := t.repo.SessionsSince(ctx, userID, dayStart)
	if err != nil {
		return nil, err
	}

	status := &DailyStatus{
		Date:      dayStart.Format("2006-01-02"),
		Target:    goal.TargetProblems,
		Completed: goal.CompletedProblems,
		Attempts:  attempts,
	}
	if goal.TargetProblems > 0 {
		status.ProgressPercentage = round1(float64(goal.CompletedProblems) / float64(goal.TargetProblems) * 100)
	}
	return status, nil
}

// History returns the user's attempts from the last N days, newest first.
func (t *Tracker) History(ctx context.Context, userID, days int, now time.Time) ([]store.PracticeSession, error) {
	if days < 1 {
		return nil, fmt.Errorf("history window must be at least 1 day, got %d", days)
	}
	since := now.AddDate(0, 0, -days)
	return t.repo.SessionsSince(ctx, userID, since)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
