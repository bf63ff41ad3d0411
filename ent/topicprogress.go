// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmate/ent/topicprogress"
)

// TopicProgress is the model entity for the TopicProgress schema.
type TopicProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// ProblemsAttempted holds the value of the "problems_attempted" field.
	ProblemsAttempted int `json:"problems_attempted,omitempty"`
	// ProblemsSolved holds the value of the "problems_solved" field.
	ProblemsSolved int `json:"problems_solved,omitempty"`
	// EasySolved holds the value of the "easy_solved" field.
	EasySolved int `json:"easy_solved,omitempty"`
	// MediumSolved holds the value of the "medium_solved" field.
	MediumSolved int `json:"medium_solved,omitempty"`
	// HardSolved holds the value of the "hard_solved" field.
	HardSolved int `json:"hard_solved,omitempty"`
	// TimeSpentMinutes holds the value of the "time_spent_minutes" field.
	TimeSpentMinutes int `json:"time_spent_minutes,omitempty"`
	// 1 - solveRate*0.8, range [0.2, 1.0]
	WeaknessScore float64 `json:"weakness_score,omitempty"`
	// LastPracticed holds the value of the "last_practiced" field.
	LastPracticed *time.Time `json:"last_practiced,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicprogress.FieldWeaknessScore:
			values[i] = new(sql.NullFloat64)
		case topicprogress.FieldID, topicprogress.FieldUserID, topicprogress.FieldProblemsAttempted, topicprogress.FieldProblemsSolved, topicprogress.FieldEasySolved, topicprogress.FieldMediumSolved, topicprogress.FieldHardSolved, topicprogress.FieldTimeSpentMinutes:
			values[i] = new(sql.NullInt64)
		case topicprogress.FieldTopic:
			values[i] = new(sql.NullString)
		case topicprogress.FieldLastPracticed:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicProgress fields.
func (_m *TopicProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case topicprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case topicprogress.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case topicprogress.FieldProblemsAttempted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field problems_attempted", values[i])
			} else if value.Valid {
				_m.ProblemsAttempted = int(value.Int64)
			}
		case topicprogress.FieldProblemsSolved:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field problems_solved", values[i])
			} else if value.Valid {
				_m.ProblemsSolved = int(value.Int64)
			}
		case topicprogress.FieldEasySolved:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field easy_solved", values[i])
			} else if value.Valid {
				_m.EasySolved = int(value.Int64)
			}
		case topicprogress.FieldMediumSolved:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field medium_solved", values[i])
			} else if value.Valid {
				_m.MediumSolved = int(value.Int64)
			}
		case topicprogress.FieldHardSolved:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hard_solved", values[i])
			} else if value.Valid {
				_m.HardSolved = int(value.Int64)
			}
		case topicprogress.FieldTimeSpentMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_minutes", values[i])
			} else if value.Valid {
				_m.TimeSpentMinutes = int(value.Int64)
			}
		case topicprogress.FieldWeaknessScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weakness_score", values[i])
			} else if value.Valid {
				_m.WeaknessScore = value.Float64
			}
		case topicprogress.FieldLastPracticed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced", values[i])
			} else if value.Valid {
				_m.LastPracticed = new(time.Time)
				*_m.LastPracticed = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TopicProgress.
// This includes values selected through modifiers, order, etc.
func (_m *TopicProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TopicProgress.
// Note that you need to call TopicProgress.Unwrap() before calling this method if this TopicProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TopicProgress) Update() *TopicProgressUpdateOne {
	return NewTopicProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TopicProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TopicProgress) Unwrap() *TopicProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TopicProgress) String() string {
	var builder strings.Builder
	builder.WriteString("TopicProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("problems_attempted=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProblemsAttempted))
	builder.WriteString(", ")
	builder.WriteString("problems_solved=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProblemsSolved))
	builder.WriteString(", ")
	builder.WriteString("easy_solved=")
	builder.WriteString(fmt.Sprintf("%v", _m.EasySolved))
	builder.WriteString(", ")
	builder.WriteString("medium_solved=")
	builder.WriteString(fmt.Sprintf("%v", _m.MediumSolved))
	builder.WriteString(", ")
	builder.WriteString("hard_solved=")
	builder.WriteString(fmt.Sprintf("%v", _m.HardSolved))
	builder.WriteString(", ")
	builder.WriteString("time_spent_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentMinutes))
	builder.WriteString(", ")
	builder.WriteString("weakness_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeaknessScore))
	builder.WriteString(", ")
	if v := _m.LastPracticed; v != nil {
		builder.WriteString("last_practiced=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TopicProgresses is a parsable slice of TopicProgress.
type TopicProgresses []*TopicProgress
