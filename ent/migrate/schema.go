// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DailyGoalsColumns holds the columns for the "daily_goals" table.
	DailyGoalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "date", Type: field.TypeTime},
		{Name: "target_problems", Type: field.TypeInt, Default: 5},
		{Name: "completed_problems", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
	}
	// DailyGoalsTable holds the schema information for the "daily_goals" table.
	DailyGoalsTable = &schema.Table{
		Name:       "daily_goals",
		Columns:    DailyGoalsColumns,
		PrimaryKey: []*schema.Column{DailyGoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dailygoal_user_id_date",
				Unique:  true,
				Columns: []*schema.Column{DailyGoalsColumns[1], DailyGoalsColumns[2]},
			},
		},
	}
	// LlmRequestsColumns holds the columns for the "llm_requests" table.
	LlmRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmRequestsTable holds the schema information for the "llm_requests" table.
	LlmRequestsTable = &schema.Table{
		Name:       "llm_requests",
		Columns:    LlmRequestsColumns,
		PrimaryKey: []*schema.Column{LlmRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequest_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[1]},
			},
			{
				Name:    "llmrequest_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[3]},
			},
			{
				Name:    "llmrequest_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[9]},
			},
		},
	}
	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uid", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "topic", Type: field.TypeString},
		{Name: "problem_name", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "solved", Type: field.TypeBool, Default: false},
		{Name: "time_spent_minutes", Type: field.TypeInt, Default: 0},
		{Name: "code_submitted", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "attempted_at", Type: field.TypeTime},
		{Name: "solved_at", Type: field.TypeTime, Nullable: true},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesession_user_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[2]},
			},
			{
				Name:    "practicesession_user_id_topic",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[2], PracticeSessionsColumns[3]},
			},
			{
				Name:    "practicesession_user_id_attempted_at",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[2], PracticeSessionsColumns[10]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeInt},
		{Name: "question_type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "marks", Type: field.TypeInt, Default: 1},
		{Name: "time_limit", Type: field.TypeInt, Default: 0},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_topic_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
			{
				Name:    "question_topic_id_question_type",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[2]},
			},
		},
	}
	// QuestionAttemptsColumns holds the columns for the "question_attempts" table.
	QuestionAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uid", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "is_correct", Type: field.TypeBool, Nullable: true},
		{Name: "score", Type: field.TypeFloat64, Nullable: true},
		{Name: "time_taken", Type: field.TypeInt, Default: 0},
		{Name: "confidence_level", Type: field.TypeInt, Default: 0},
		{Name: "attempted_at", Type: field.TypeTime},
	}
	// QuestionAttemptsTable holds the schema information for the "question_attempts" table.
	QuestionAttemptsTable = &schema.Table{
		Name:       "question_attempts",
		Columns:    QuestionAttemptsColumns,
		PrimaryKey: []*schema.Column{QuestionAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionAttemptsColumns[2]},
			},
			{
				Name:    "questionattempt_question_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionAttemptsColumns[3]},
			},
			{
				Name:    "questionattempt_user_id_attempted_at",
				Unique:  false,
				Columns: []*schema.Column{QuestionAttemptsColumns[2], QuestionAttemptsColumns[9]},
			},
		},
	}
	// ReviewSchedulesColumns holds the columns for the "review_schedules" table.
	ReviewSchedulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "topic_id", Type: field.TypeInt},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "next_review_date", Type: field.TypeTime},
		{Name: "last_reviewed", Type: field.TypeTime, Nullable: true},
	}
	// ReviewSchedulesTable holds the schema information for the "review_schedules" table.
	ReviewSchedulesTable = &schema.Table{
		Name:       "review_schedules",
		Columns:    ReviewSchedulesColumns,
		PrimaryKey: []*schema.Column{ReviewSchedulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewschedule_user_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewSchedulesColumns[1], ReviewSchedulesColumns[2]},
			},
			{
				Name:    "reviewschedule_user_id_next_review_date",
				Unique:  false,
				Columns: []*schema.Column{ReviewSchedulesColumns[1], ReviewSchedulesColumns[6]},
			},
		},
	}
	// StudyPlansColumns holds the columns for the "study_plans" table.
	StudyPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "subject", Type: field.TypeString},
		{Name: "exam_type", Type: field.TypeString, Default: "exam"},
		{Name: "exam_date", Type: field.TypeTime},
		{Name: "daily_hours", Type: field.TypeFloat64},
		{Name: "target_grade", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StudyPlansTable holds the schema information for the "study_plans" table.
	StudyPlansTable = &schema.Table{
		Name:       "study_plans",
		Columns:    StudyPlansColumns,
		PrimaryKey: []*schema.Column{StudyPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studyplan_user_id",
				Unique:  false,
				Columns: []*schema.Column{StudyPlansColumns[1]},
			},
			{
				Name:    "studyplan_status",
				Unique:  false,
				Columns: []*schema.Column{StudyPlansColumns[7]},
			},
		},
	}
	// StudySessionsColumns holds the columns for the "study_sessions" table.
	StudySessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeInt},
		{Name: "scheduled_date", Type: field.TypeTime},
		{Name: "duration", Type: field.TypeFloat64},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// StudySessionsTable holds the schema information for the "study_sessions" table.
	StudySessionsTable = &schema.Table{
		Name:       "study_sessions",
		Columns:    StudySessionsColumns,
		PrimaryKey: []*schema.Column{StudySessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studysession_topic_id",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1]},
			},
			{
				Name:    "studysession_scheduled_date",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[2]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "weight", Type: field.TypeFloat64, Default: 1},
		{Name: "allocated_hours", Type: field.TypeFloat64, Default: 0},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "mastery_level", Type: field.TypeFloat64, Default: 0},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_plan_id",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[1]},
			},
			{
				Name:    "topic_plan_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[1], TopicsColumns[5]},
			},
		},
	}
	// TopicProgressesColumns holds the columns for the "topic_progresses" table.
	TopicProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "topic", Type: field.TypeString},
		{Name: "problems_attempted", Type: field.TypeInt, Default: 0},
		{Name: "problems_solved", Type: field.TypeInt, Default: 0},
		{Name: "easy_solved", Type: field.TypeInt, Default: 0},
		{Name: "medium_solved", Type: field.TypeInt, Default: 0},
		{Name: "hard_solved", Type: field.TypeInt, Default: 0},
		{Name: "time_spent_minutes", Type: field.TypeInt, Default: 0},
		{Name: "weakness_score", Type: field.TypeFloat64, Default: 1},
		{Name: "last_practiced", Type: field.TypeTime, Nullable: true},
	}
	// TopicProgressesTable holds the schema information for the "topic_progresses" table.
	TopicProgressesTable = &schema.Table{
		Name:       "topic_progresses",
		Columns:    TopicProgressesColumns,
		PrimaryKey: []*schema.Column{TopicProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicprogress_user_id_topic",
				Unique:  true,
				Columns: []*schema.Column{TopicProgressesColumns[1], TopicProgressesColumns[2]},
			},
			{
				Name:    "topicprogress_user_id_weakness_score",
				Unique:  false,
				Columns: []*schema.Column{TopicProgressesColumns[1], TopicProgressesColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DailyGoalsTable,
		LlmRequestsTable,
		PracticeSessionsTable,
		QuestionsTable,
		QuestionAttemptsTable,
		ReviewSchedulesTable,
		StudyPlansTable,
		StudySessionsTable,
		TopicsTable,
		TopicProgressesTable,
	}
)

func init() {
}
