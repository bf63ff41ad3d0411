// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmate/ent/dailygoal"
)

// DailyGoal is the model entity for the DailyGoal schema.
type DailyGoal struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// TargetProblems holds the value of the "target_problems" field.
	TargetProblems int `json:"target_problems,omitempty"`
	// CompletedProblems holds the value of the "completed_problems" field.
	CompletedProblems int `json:"completed_problems,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed    bool `json:"completed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyGoal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailygoal.FieldCompleted:
			values[i] = new(sql.NullBool)
		case dailygoal.FieldID, dailygoal.FieldUserID, dailygoal.FieldTargetProblems, dailygoal.FieldCompletedProblems:
			values[i] = new(sql.NullInt64)
		case dailygoal.FieldDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyGoal fields.
func (_m *DailyGoal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailygoal.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case dailygoal.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case dailygoal.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case dailygoal.FieldTargetProblems:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_problems", values[i])
			} else if value.Valid {
				_m.TargetProblems = int(value.Int64)
			}
		case dailygoal.FieldCompletedProblems:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_problems", values[i])
			} else if value.Valid {
				_m.CompletedProblems = int(value.Int64)
			}
		case dailygoal.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyGoal.
// This includes values selected through modifiers, order, etc.
func (_m *DailyGoal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DailyGoal.
// Note that you need to call DailyGoal.Unwrap() before calling this method if this DailyGoal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DailyGoal) Update() *DailyGoalUpdateOne {
	return NewDailyGoalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DailyGoal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DailyGoal) Unwrap() *DailyGoal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyGoal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DailyGoal) String() string {
	var builder strings.Builder
	builder.WriteString("DailyGoal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("target_problems=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetProblems))
	builder.WriteString(", ")
	builder.WriteString("completed_problems=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedProblems))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteByte(')')
	return builder.String()
}

// DailyGoals is a parsable slice of DailyGoal.
type DailyGoals []*DailyGoal
