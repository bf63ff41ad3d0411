// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepmate/ent/predicate"
	"github.com/abhisek/prepmate/ent/reviewschedule"
)

// ReviewScheduleUpdate is the builder for updating ReviewSchedule entities.
type ReviewScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewScheduleMutation
}

// Where appends a list predicates to the ReviewScheduleUpdate builder.
func (_u *ReviewScheduleUpdate) Where(ps ...predicate.ReviewSchedule) *ReviewScheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReviewScheduleUpdate) SetUserID(v int) *ReviewScheduleUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableUserID(v *int) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ReviewScheduleUpdate) AddUserID(v int) *ReviewScheduleUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ReviewScheduleUpdate) SetTopicID(v int) *ReviewScheduleUpdate {
	_u.mutation.ResetTopicID()
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableTopicID(v *int) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// AddTopicID adds value to the "topic_id" field.
func (_u *ReviewScheduleUpdate) AddTopicID(v int) *ReviewScheduleUpdate {
	_u.mutation.AddTopicID(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewScheduleUpdate) SetIntervalDays(v int) *ReviewScheduleUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableIntervalDays(v *int) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewScheduleUpdate) AddIntervalDays(v int) *ReviewScheduleUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewScheduleUpdate) SetEaseFactor(v float64) *ReviewScheduleUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableEaseFactor(v *float64) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewScheduleUpdate) AddEaseFactor(v float64) *ReviewScheduleUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ReviewScheduleUpdate) SetReviewCount(v int) *ReviewScheduleUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableReviewCount(v *int) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ReviewScheduleUpdate) AddReviewCount(v int) *ReviewScheduleUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetNextReviewDate sets the "next_review_date" field.
func (_u *ReviewScheduleUpdate) SetNextReviewDate(v time.Time) *ReviewScheduleUpdate {
	_u.mutation.SetNextReviewDate(v)
	return _u
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableNextReviewDate(v *time.Time) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetNextReviewDate(*v)
	}
	return _u
}

// SetLastReviewed sets the "last_reviewed" field.
func (_u *ReviewScheduleUpdate) SetLastReviewed(v time.Time) *ReviewScheduleUpdate {
	_u.mutation.SetLastReviewed(v)
	return _u
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_u *ReviewScheduleUpdate) SetNillableLastReviewed(v *time.Time) *ReviewScheduleUpdate {
	if v != nil {
		_u.SetLastReviewed(*v)
	}
	return _u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (_u *ReviewScheduleUpdate) ClearLastReviewed() *ReviewScheduleUpdate {
	_u.mutation.ClearLastReviewed()
	return _u
}

// Mutation returns the ReviewScheduleMutation object of the builder.
func (_u *ReviewScheduleUpdate) Mutation() *ReviewScheduleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewScheduleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewScheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewScheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewScheduleUpdate) check() error {
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewschedule.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.interval_days": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewScheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewschedule.Table, reviewschedule.Columns, sqlgraph.NewFieldSpec(reviewschedule.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewschedule.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(reviewschedule.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(reviewschedule.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicID(); ok {
		_spec.AddField(reviewschedule.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewschedule.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewschedule.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(reviewschedule.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(reviewschedule.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewDate(); ok {
		_spec.SetField(reviewschedule.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewed(); ok {
		_spec.SetField(reviewschedule.FieldLastReviewed, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedCleared() {
		_spec.ClearField(reviewschedule.FieldLastReviewed, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewScheduleUpdateOne is the builder for updating a single ReviewSchedule entity.
type ReviewScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewScheduleMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReviewScheduleUpdateOne) SetUserID(v int) *ReviewScheduleUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableUserID(v *int) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ReviewScheduleUpdateOne) AddUserID(v int) *ReviewScheduleUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ReviewScheduleUpdateOne) SetTopicID(v int) *ReviewScheduleUpdateOne {
	_u.mutation.ResetTopicID()
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableTopicID(v *int) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// AddTopicID adds value to the "topic_id" field.
func (_u *ReviewScheduleUpdateOne) AddTopicID(v int) *ReviewScheduleUpdateOne {
	_u.mutation.AddTopicID(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewScheduleUpdateOne) SetIntervalDays(v int) *ReviewScheduleUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableIntervalDays(v *int) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewScheduleUpdateOne) AddIntervalDays(v int) *ReviewScheduleUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewScheduleUpdateOne) SetEaseFactor(v float64) *ReviewScheduleUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableEaseFactor(v *float64) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewScheduleUpdateOne) AddEaseFactor(v float64) *ReviewScheduleUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ReviewScheduleUpdateOne) SetReviewCount(v int) *ReviewScheduleUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableReviewCount(v *int) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ReviewScheduleUpdateOne) AddReviewCount(v int) *ReviewScheduleUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetNextReviewDate sets the "next_review_date" field.
func (_u *ReviewScheduleUpdateOne) SetNextReviewDate(v time.Time) *ReviewScheduleUpdateOne {
	_u.mutation.SetNextReviewDate(v)
	return _u
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableNextReviewDate(v *time.Time) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetNextReviewDate(*v)
	}
	return _u
}

// SetLastReviewed sets the "last_reviewed" field.
func (_u *ReviewScheduleUpdateOne) SetLastReviewed(v time.Time) *ReviewScheduleUpdateOne {
	_u.mutation.SetLastReviewed(v)
	return _u
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_u *ReviewScheduleUpdateOne) SetNillableLastReviewed(v *time.Time) *ReviewScheduleUpdateOne {
	if v != nil {
		_u.SetLastReviewed(*v)
	}
	return _u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (_u *ReviewScheduleUpdateOne) ClearLastReviewed() *ReviewScheduleUpdateOne {
	_u.mutation.ClearLastReviewed()
	return _u
}

// Mutation returns the ReviewScheduleMutation object of the builder.
func (_u *ReviewScheduleUpdateOne) Mutation() *ReviewScheduleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewScheduleUpdate builder.
func (_u *ReviewScheduleUpdateOne) Where(ps ...predicate.ReviewSchedule) *ReviewScheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewScheduleUpdateOne) Select(field string, fields ...string) *ReviewScheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewSchedule entity.
func (_u *ReviewScheduleUpdateOne) Save(ctx context.Context) (*ReviewSchedule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewScheduleUpdateOne) SaveX(ctx context.Context) *ReviewSchedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewScheduleUpdateOne) check() error {
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewschedule.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.interval_days": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewScheduleUpdateOne) sqlSave(ctx context.Context) (_node *ReviewSchedule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewschedule.Table, reviewschedule.Columns, sqlgraph.NewFieldSpec(reviewschedule.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewSchedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewschedule.FieldID)
		for _, f := range fields {
			if !reviewschedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewschedule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewschedule.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(reviewschedule.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(reviewschedule.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicID(); ok {
		_spec.AddField(reviewschedule.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewschedule.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewschedule.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(reviewschedule.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(reviewschedule.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewDate(); ok {
		_spec.SetField(reviewschedule.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewed(); ok {
		_spec.SetField(reviewschedule.FieldLastReviewed, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedCleared() {
		_spec.ClearField(reviewschedule.FieldLastReviewed, field.TypeTime)
	}
	_node = &ReviewSchedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
