// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmate/ent/questionattempt"
)

// QuestionAttempt is the model entity for the QuestionAttempt schema.
type QuestionAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UID holds the value of the "uid" field.
	UID string `json:"uid,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID int `json:"question_id,omitempty"`
	// Answer holds the value of the "answer" field.
	Answer string `json:"answer,omitempty"`
	// Set for MCQ attempts
	IsCorrect *bool `json:"is_correct,omitempty"`
	// 0-1 score for written answers
	Score *float64 `json:"score,omitempty"`
	// Seconds spent
	TimeTaken int `json:"time_taken,omitempty"`
	// Self-reported 1-5, 0 = not given
	ConfidenceLevel int `json:"confidence_level,omitempty"`
	// AttemptedAt holds the value of the "attempted_at" field.
	AttemptedAt  time.Time `json:"attempted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionattempt.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case questionattempt.FieldScore:
			values[i] = new(sql.NullFloat64)
		case questionattempt.FieldID, questionattempt.FieldUserID, questionattempt.FieldQuestionID, questionattempt.FieldTimeTaken, questionattempt.FieldConfidenceLevel:
			values[i] = new(sql.NullInt64)
		case questionattempt.FieldUID, questionattempt.FieldAnswer:
			values[i] = new(sql.NullString)
		case questionattempt.FieldAttemptedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionAttempt fields.
func (_m *QuestionAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionattempt.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case questionattempt.FieldUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uid", values[i])
			} else if value.Valid {
				_m.UID = value.String
			}
		case questionattempt.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case questionattempt.FieldQuestionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = int(value.Int64)
			}
		case questionattempt.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case questionattempt.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = new(bool)
				*_m.IsCorrect = value.Bool
			}
		case questionattempt.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = new(float64)
				*_m.Score = value.Float64
			}
		case questionattempt.FieldTimeTaken:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_taken", values[i])
			} else if value.Valid {
				_m.TimeTaken = int(value.Int64)
			}
		case questionattempt.FieldConfidenceLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_level", values[i])
			} else if value.Valid {
				_m.ConfidenceLevel = int(value.Int64)
			}
		case questionattempt.FieldAttemptedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field attempted_at", values[i])
			} else if value.Valid {
				_m.AttemptedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuestionAttempt.
// Note that you need to call QuestionAttempt.Unwrap() before calling this method if this QuestionAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionAttempt) Update() *QuestionAttemptUpdateOne {
	return NewQuestionAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionAttempt) Unwrap() *QuestionAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("uid=")
	builder.WriteString(_m.UID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionID))
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	if v := _m.IsCorrect; v != nil {
		builder.WriteString("is_correct=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("time_taken=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeTaken))
	builder.WriteString(", ")
	builder.WriteString("confidence_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceLevel))
	builder.WriteString(", ")
	builder.WriteString("attempted_at=")
	builder.WriteString(_m.AttemptedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuestionAttempts is a parsable slice of QuestionAttempt.
type QuestionAttempts []*QuestionAttempt
