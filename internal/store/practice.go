package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/prepmate/ent"
	"github.com/abhisek/prepmate/ent/dailygoal"
	"github.com/abhisek/prepmate/ent/practicesession"
	"github.com/abhisek/prepmate/ent/topicprogress"
)

// PracticeSession records one coding-practice attempt.
type PracticeSession struct {
	ID               int
	UID              string
	UserID           int
	Topic            string
	ProblemName      string
	Difficulty       string
	Solved           bool
	TimeSpentMinutes int
	CodeSubmitted    string
	Notes            string
	AttemptedAt      time.Time
	SolvedAt         *time.Time
}

// TopicProgress aggregates practice results per (user, topic).
type TopicProgress struct {
	ID                int
	UserID            int
	Topic             string
	ProblemsAttempted int
	ProblemsSolved    int
	EasySolved        int
	MediumSolved      int
	HardSolved        int
	TimeSpentMinutes  int
	WeaknessScore     float64
	LastPracticed     *time.Time
}

// DailyGoal tracks a user's practice target for one calendar day.
type DailyGoal struct {
	ID                int
	UserID            int
	Date              time.Time
	TargetProblems    int
	CompletedProblems int
	Completed         bool
}

// PracticeRepo manages practice sessions, aggregate progress, and daily goals.
type PracticeRepo interface {
	CreateSession(ctx context.Context, session *PracticeSession) (*PracticeSession, error)
	SessionsSince(ctx context.Context, userID int, since time.Time) ([]PracticeSession, error)
	CountSessionsOn(ctx context.Context, userID int, day time.Time) (int, error)

	GetProgress(ctx context.Context, userID int, topic string) (*TopicProgress, error)
	UpsertProgress(ctx context.Context, progress *TopicProgress) error
	ProgressByUser(ctx context.Context, userID int) ([]TopicProgress, error)

	GetGoal(ctx context.Context, userID int, day time.Time) (*DailyGoal, error)
	UpsertGoal(ctx context.Context, goal *DailyGoal) error
}

type practiceRepo struct {
	client *ent.Client
}

func (r *practiceRepo) CreateSession(ctx context.Context, session *PracticeSession) (*PracticeSession, error) {
	builder := r.client.PracticeSession.Create().
		SetUID(session.UID).
		SetUserID(session.UserID).
		SetTopic(session.Topic).
		SetProblemName(session.ProblemName).
		SetDifficulty(session.Difficulty).
		SetSolved(session.Solved).
		SetTimeSpentMinutes(session.TimeSpentMinutes).
		SetNillableSolvedAt(session.SolvedAt)
	if session.CodeSubmitted != "" {
		builder = builder.SetCodeSubmitted(session.CodeSubmitted)
	}
	if session.Notes != "" {
		builder = builder.SetNotes(session.Notes)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create practice session: %w", err)
	}
	return entSessionToSession(row), nil
}

func (r *practiceRepo) SessionsSince(ctx context.Context, userID int, since time.Time) ([]PracticeSession, error) {
	rows, err := r.client.PracticeSession.Query().
		Where(
			practicesession.UserID(userID),
			practicesession.AttemptedAtGTE(since),
		).
		Order(ent.Desc(practicesession.FieldAttemptedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list practice sessions: %w", err)
	}

	sessions := make([]PracticeSession, len(rows))
	for i, row := range rows {
		sessions[i] = *entSessionToSession(row)
	}
	return sessions, nil
}

func (r *practiceRepo) CountSessionsOn(ctx context.Context, userID int, day time.Time) (int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	count, err := r.client.PracticeSession.Query().
		Where(
			practicesession.UserID(userID),
			practicesession.AttemptedAtGTE(start),
			practicesession.AttemptedAtLT(end),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count practice sessions: %w", err)
	}
	return count, nil
}

func (r *practiceRepo) GetProgress(ctx context.Context, userID int, topic string) (*TopicProgress, error) {
	row, err := r.client.TopicProgress.Query().
		Where(
			topicprogress.UserID(userID),
			topicprogress.Topic(topic),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query topic progress: %w", err)
	}
	return entProgressToProgress(row), nil
}

func (r *practiceRepo) UpsertProgress(ctx context.Context, progress *TopicProgress) error {
	err := r.client.TopicProgress.Create().
		SetUserID(progress.UserID).
		SetTopic(progress.Topic).
		SetProblemsAttempted(progress.ProblemsAttempted).
		SetProblemsSolved(progress.ProblemsSolved).
		SetEasySolved(progress.EasySolved).
		SetMediumSolved(progress.MediumSolved).
		SetHardSolved(progress.HardSolved).
		SetTimeSpentMinutes(progress.TimeSpentMinutes).
		SetWeaknessScore(progress.WeaknessScore).
		SetNillableLastPracticed(progress.LastPracticed).
		OnConflictColumns(topicprogress.FieldUserID, topicprogress.FieldTopic).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert topic progress: %w", err)
	}
	return nil
}

func (r *practiceRepo) ProgressByUser(ctx context.Context, userID int) ([]TopicProgress, error) {
	rows, err := r.client.TopicProgress.Query().
		Where(topicprogress.UserID(userID)).
		Order(ent.Desc(topicprogress.FieldWeaknessScore)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topic progress: %w", err)
	}

	progress := make([]TopicProgress, len(rows))
	for i, row := range rows {
		progress[i] = *entProgressToProgress(row)
	}
	return progress, nil
}

func (r *practiceRepo) GetGoal(ctx context.Context, userID int, day time.Time) (*DailyGoal, error) {
	row, err := r.client.DailyGoal.Query().
		Where(
			dailygoal.UserID(userID),
			dailygoal.Date(truncateToDay(day)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query daily goal: %w", err)
	}
	return entGoalToGoal(row), nil
}

func (r *practiceRepo) UpsertGoal(ctx context.Context, goal *DailyGoal) error {
	err := r.client.DailyGoal.Create().
		SetUserID(goal.UserID).
		SetDate(truncateToDay(goal.Date)).
		SetTargetProblems(goal.TargetProblems).
		SetCompletedProblems(goal.CompletedProblems).
		SetCompleted(goal.Completed).
		OnConflictColumns(dailygoal.FieldUserID, dailygoal.FieldDate).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert daily goal: %w", err)
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func entSessionToSession(row *ent.PracticeSession) *PracticeSession {
	return &PracticeSession{
		ID:               row.ID,
		UID:              row.UID,
		UserID:           row.UserID,
		Topic:            row.Topic,
		ProblemName:      row.ProblemName,
		Difficulty:       row.Difficulty,
		Solved:           row.Solved,
		TimeSpentMinutes: row.TimeSpentMinutes,
		CodeSubmitted:    row.CodeSubmitted,
		Notes:            row.Notes,
		AttemptedAt:      row.AttemptedAt,
		SolvedAt:         row.SolvedAt,
	}
}

func entProgressToProgress(row *ent.TopicProgress) *TopicProgress {
	return &TopicProgress{
		ID:                row.ID,
		UserID:            row.UserID,
		Topic:             row.Topic,
		ProblemsAttempted: row.ProblemsAttempted,
		ProblemsSolved:    row.ProblemsSolved,
		EasySolved:        row.EasySolved,
		MediumSolved:      row.MediumSolved,
		HardSolved:        row.HardSolved,
		TimeSpentMinutes:  row.TimeSpentMinutes,
		WeaknessScore:     row.WeaknessScore,
		LastPracticed:     row.LastPracticed,
	}
}

func entGoalToGoal(row *ent.DailyGoal) *DailyGoal {
	return &DailyGoal{
		ID:                row.ID,
		UserID:            row.UserID,
		Date:              row.Date,
		TargetProblems:    row.TargetProblems,
		CompletedProblems: row.CompletedProblems,
		Completed:         row.Completed,
	}
}
