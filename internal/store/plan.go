package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/prepmate/ent"
	"github.com/abhisek/prepmate/ent/studyplan"
	"github.com/abhisek/prepmate/ent/studysession"
	enttopic "github.com/abhisek/prepmate/ent/topic"
)

// StudyPlan is a user's preparation plan for an exam or interview.
type StudyPlan struct {
	ID          int
	UserID      int
	Subject     string
	ExamType    string
	ExamDate    time.Time
	DailyHours  float64
	TargetGrade string
	Status      string
	CreatedAt   time.Time
}

// Topic is a unit of study within a plan.
type Topic struct {
	ID             int
	PlanID         int
	Name           string
	Weight         float64
	AllocatedHours float64
	OrderIndex     int
	MasteryLevel   float64
}

// StudySession is a scheduled block of study time for a topic.
type StudySession struct {
	ID            int
	TopicID       int
	ScheduledDate time.Time
	Duration      float64
	Completed     bool
	CompletedAt   *time.Time
}

// PlanRepo manages study plans, their topics, and scheduled sessions.
type PlanRepo interface {
	CreatePlan(ctx context.Context, plan *StudyPlan) (*StudyPlan, error)
	GetPlan(ctx context.Context, id int) (*StudyPlan, error)
	ListPlans(ctx context.Context, userID int) ([]StudyPlan, error)
	UpdatePlanStatus(ctx context.Context, id int, status string) error

	CreateTopics(ctx context.Context, topics []Topic) ([]Topic, error)
	GetTopic(ctx context.Context, id int) (*Topic, error)
	TopicsByPlan(ctx context.Context, planID int) ([]Topic, error)

	CreateSessions(ctx context.Context, sessions []StudySession) error
	SessionsByTopic(ctx context.Context, topicID int) ([]StudySession, error)
}

type planRepo struct {
	client *ent.Client
}

func (r *planRepo) CreatePlan(ctx context.Context, plan *StudyPlan) (*StudyPlan, error) {
	builder := r.client.StudyPlan.Create().
		SetUserID(plan.UserID).
		SetSubject(plan.Subject).
		SetExamDate(plan.ExamDate).
		SetDailyHours(plan.DailyHours)
	if plan.ExamType != "" {
		builder = builder.SetExamType(plan.ExamType)
	}
	if plan.TargetGrade != "" {
		builder = builder.SetTargetGrade(plan.TargetGrade)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return entPlanToPlan(row), nil
}

func (r *planRepo) GetPlan(ctx context.Context, id int) (*StudyPlan, error) {
	row, err := r.client.StudyPlan.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return entPlanToPlan(row), nil
}

func (r *planRepo) ListPlans(ctx context.Context, userID int) ([]StudyPlan, error) {
	rows, err := r.client.StudyPlan.Query().
		Where(studyplan.UserID(userID)).
		Order(ent.Desc(studyplan.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	plans := make([]StudyPlan, len(rows))
	for i, row := range rows {
		plans[i] = *entPlanToPlan(row)
	}
	return plans, nil
}

func (r *planRepo) UpdatePlanStatus(ctx context.Context, id int, status string) error {
	err := r.client.StudyPlan.UpdateOneID(id).
		SetStatus(status).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update plan status: %w", err)
	}
	return nil
}

func (r *planRepo) CreateTopics(ctx context.Context, topics []Topic) ([]Topic, error) {
	builders := make([]*ent.TopicCreate, len(topics))
	for i, t := range topics {
		builders[i] = r.client.Topic.Create().
			SetPlanID(t.PlanID).
			SetName(t.Name).
			SetWeight(t.Weight).
			SetAllocatedHours(t.AllocatedHours).
			SetOrderIndex(t.OrderIndex)
	}

	rows, err := r.client.Topic.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create topics: %w", err)
	}

	created := make([]Topic, len(rows))
	for i, row := range rows {
		created[i] = *entTopicToTopic(row)
	}
	return created, nil
}

func (r *planRepo) GetTopic(ctx context.Context, id int) (*Topic, error) {
	row, err := r.client.Topic.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return entTopicToTopic(row), nil
}

func (r *planRepo) TopicsByPlan(ctx context.Context, planID int) ([]Topic, error) {
	rows, err := r.client.Topic.Query().
		Where(enttopic.PlanID(planID)).
		Order(ent.Asc(enttopic.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	topics := make([]Topic, len(rows))
	for i, row := range rows {
		topics[i] = *entTopicToTopic(row)
	}
	return topics, nil
}

func (r *planRepo) CreateSessions(ctx context.Context, sessions []StudySession) error {
	builders := make([]*ent.StudySessionCreate, len(sessions))
	for i, s := range sessions {
		builders[i] = r.client.StudySession.Create().
			SetTopicID(s.TopicID).
			SetScheduledDate(s.ScheduledDate).
			SetDuration(s.Duration)
	}

	if err := r.client.StudySession.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("create sessions: %w", err)
	}
	return nil
}

func (r *planRepo) SessionsByTopic(ctx context.Context, topicID int) ([]StudySession, error) {
	rows, err := r.client.StudySession.Query().
		Where(studysession.TopicID(topicID)).
		Order(ent.Asc(studysession.FieldScheduledDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	sessions := make([]StudySession, len(rows))
	for i, row := range rows {
		sessions[i] = StudySession{
			ID:            row.ID,
			TopicID:       row.TopicID,
			ScheduledDate: row.ScheduledDate,
			Duration:      row.Duration,
			Completed:     row.Completed,
			CompletedAt:   row.CompletedAt,
		}
	}
	return sessions, nil
}

func entPlanToPlan(row *ent.StudyPlan) *StudyPlan {
	return &StudyPlan{
		ID:          row.ID,
		UserID:      row.UserID,
		Subject:     row.Subject,
		ExamType:    row.ExamType,
		ExamDate:    row.ExamDate,
		DailyHours:  row.DailyHours,
		TargetGrade: row.TargetGrade,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
	}
}

func entTopicToTopic(row *ent.Topic) *Topic {
	return &Topic{
		ID:             row.ID,
		PlanID:         row.PlanID,
		Name:           row.Name,
		Weight:         row.Weight,
		AllocatedHours: row.AllocatedHours,
		OrderIndex:     row.OrderIndex,
		MasteryLevel:   row.MasteryLevel,
	}
}
