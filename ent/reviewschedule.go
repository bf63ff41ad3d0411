// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmate/ent/reviewschedule"
)

// ReviewSchedule is the model entity for the ReviewSchedule schema.
type ReviewSchedule struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning user
	UserID int `json:"user_id,omitempty"`
	// Topic under review
	TopicID int `json:"topic_id,omitempty"`
	// Current review interval in days
	IntervalDays int `json:"interval_days,omitempty"`
	// Interval growth multiplier, clamped to [1.3, 2.5]
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// Number of reviews recorded
	ReviewCount int `json:"review_count,omitempty"`
	// Date the topic is next due
	NextReviewDate time.Time `json:"next_review_date,omitempty"`
	// Date of the most recent review, nil before the first
	LastReviewed *time.Time `json:"last_reviewed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewSchedule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewschedule.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case reviewschedule.FieldID, reviewschedule.FieldUserID, reviewschedule.FieldTopicID, reviewschedule.FieldIntervalDays, reviewschedule.FieldReviewCount:
			values[i] = new(sql.NullInt64)
		case reviewschedule.FieldNextReviewDate, reviewschedule.FieldLastReviewed:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewSchedule fields.
func (_m *ReviewSchedule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewschedule.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewschedule.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case reviewschedule.FieldTopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = int(value.Int64)
			}
		case reviewschedule.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case reviewschedule.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				_m.EaseFactor = value.Float64
			}
		case reviewschedule.FieldReviewCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_count", values[i])
			} else if value.Valid {
				_m.ReviewCount = int(value.Int64)
			}
		case reviewschedule.FieldNextReviewDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_date", values[i])
			} else if value.Valid {
				_m.NextReviewDate = value.Time
			}
		case reviewschedule.FieldLastReviewed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed", values[i])
			} else if value.Valid {
				_m.LastReviewed = new(time.Time)
				*_m.LastReviewed = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewSchedule.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewSchedule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewSchedule.
// Note that you need to call ReviewSchedule.Unwrap() before calling this method if this ReviewSchedule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewSchedule) Update() *ReviewScheduleUpdateOne {
	return NewReviewScheduleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewSchedule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewSchedule) Unwrap() *ReviewSchedule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewSchedule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewSchedule) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewSchedule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicID))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("review_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewCount))
	builder.WriteString(", ")
	builder.WriteString("next_review_date=")
	builder.WriteString(_m.NextReviewDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastReviewed; v != nil {
		builder.WriteString("last_reviewed=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ReviewSchedules is a parsable slice of ReviewSchedule.
type ReviewSchedules []*ReviewSchedule
