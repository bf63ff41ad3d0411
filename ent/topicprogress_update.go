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
	"github.com/abhisek/prepmate/ent/topicprogress"
)

// TopicProgressUpdate is the builder for updating TopicProgress entities.
type TopicProgressUpdate struct {
	config
	hooks    []Hook
	mutation *TopicProgressMutation
}

// Where appends a list predicates to the TopicProgressUpdate builder.
func (_u *TopicProgressUpdate) Where(ps ...predicate.TopicProgress) *TopicProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TopicProgressUpdate) SetUserID(v int) *TopicProgressUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableUserID(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *TopicProgressUpdate) AddUserID(v int) *TopicProgressUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TopicProgressUpdate) SetTopic(v string) *TopicProgressUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableTopic(v *string) *TopicProgressUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetProblemsAttempted sets the "problems_attempted" field.
func (_u *TopicProgressUpdate) SetProblemsAttempted(v int) *TopicProgressUpdate {
	_u.mutation.ResetProblemsAttempted()
	_u.mutation.SetProblemsAttempted(v)
	return _u
}

// SetNillableProblemsAttempted sets the "problems_attempted" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableProblemsAttempted(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetProblemsAttempted(*v)
	}
	return _u
}

// AddProblemsAttempted adds value to the "problems_attempted" field.
func (_u *TopicProgressUpdate) AddProblemsAttempted(v int) *TopicProgressUpdate {
	_u.mutation.AddProblemsAttempted(v)
	return _u
}

// SetProblemsSolved sets the "problems_solved" field.
func (_u *TopicProgressUpdate) SetProblemsSolved(v int) *TopicProgressUpdate {
	_u.mutation.ResetProblemsSolved()
	_u.mutation.SetProblemsSolved(v)
	return _u
}

// SetNillableProblemsSolved sets the "problems_solved" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableProblemsSolved(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetProblemsSolved(*v)
	}
	return _u
}

// AddProblemsSolved adds value to the "problems_solved" field.
func (_u *TopicProgressUpdate) AddProblemsSolved(v int) *TopicProgressUpdate {
	_u.mutation.AddProblemsSolved(v)
	return _u
}

// SetEasySolved sets the "easy_solved" field.
func (_u *TopicProgressUpdate) SetEasySolved(v int) *TopicProgressUpdate {
	_u.mutation.ResetEasySolved()
	_u.mutation.SetEasySolved(v)
	return _u
}

// SetNillableEasySolved sets the "easy_solved" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableEasySolved(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetEasySolved(*v)
	}
	return _u
}

// AddEasySolved adds value to the "easy_solved" field.
func (_u *TopicProgressUpdate) AddEasySolved(v int) *TopicProgressUpdate {
	_u.mutation.AddEasySolved(v)
	return _u
}

// SetMediumSolved sets the "medium_solved" field.
func (_u *TopicProgressUpdate) SetMediumSolved(v int) *TopicProgressUpdate {
	_u.mutation.ResetMediumSolved()
	_u.mutation.SetMediumSolved(v)
	return _u
}

// SetNillableMediumSolved sets the "medium_solved" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableMediumSolved(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetMediumSolved(*v)
	}
	return _u
}

// AddMediumSolved adds value to the "medium_solved" field.
func (_u *TopicProgressUpdate) AddMediumSolved(v int) *TopicProgressUpdate {
	_u.mutation.AddMediumSolved(v)
	return _u
}

// SetHardSolved sets the "hard_solved" field.
func (_u *TopicProgressUpdate) SetHardSolved(v int) *TopicProgressUpdate {
	_u.mutation.ResetHardSolved()
	_u.mutation.SetHardSolved(v)
	return _u
}

// SetNillableHardSolved sets the "hard_solved" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableHardSolved(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetHardSolved(*v)
	}
	return _u
}

// AddHardSolved adds value to the "hard_solved" field.
func (_u *TopicProgressUpdate) AddHardSolved(v int) *TopicProgressUpdate {
	_u.mutation.AddHardSolved(v)
	return _u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_u *TopicProgressUpdate) SetTimeSpentMinutes(v int) *TopicProgressUpdate {
	_u.mutation.ResetTimeSpentMinutes()
	_u.mutation.SetTimeSpentMinutes(v)
	return _u
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableTimeSpentMinutes(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetTimeSpentMinutes(*v)
	}
	return _u
}

// AddTimeSpentMinutes adds value to the "time_spent_minutes" field.
func (_u *TopicProgressUpdate) AddTimeSpentMinutes(v int) *TopicProgressUpdate {
	_u.mutation.AddTimeSpentMinutes(v)
	return _u
}

// SetWeaknessScore sets the "weakness_score" field.
func (_u *TopicProgressUpdate) SetWeaknessScore(v float64) *TopicProgressUpdate {
	_u.mutation.ResetWeaknessScore()
	_u.mutation.SetWeaknessScore(v)
	return _u
}

// SetNillableWeaknessScore sets the "weakness_score" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableWeaknessScore(v *float64) *TopicProgressUpdate {
	if v != nil {
		_u.SetWeaknessScore(*v)
	}
	return _u
}

// AddWeaknessScore adds value to the "weakness_score" field.
func (_u *TopicProgressUpdate) AddWeaknessScore(v float64) *TopicProgressUpdate {
	_u.mutation.AddWeaknessScore(v)
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *TopicProgressUpdate) SetLastPracticed(v time.Time) *TopicProgressUpdate {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableLastPracticed(v *time.Time) *TopicProgressUpdate {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (_u *TopicProgressUpdate) ClearLastPracticed() *TopicProgressUpdate {
	_u.mutation.ClearLastPracticed()
	return _u
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_u *TopicProgressUpdate) Mutation() *TopicProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicProgressUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := topicprogress.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicprogress.Table, topicprogress.Columns, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(topicprogress.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(topicprogress.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(topicprogress.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemsAttempted(); ok {
		_spec.SetField(topicprogress.FieldProblemsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemsAttempted(); ok {
		_spec.AddField(topicprogress.FieldProblemsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProblemsSolved(); ok {
		_spec.SetField(topicprogress.FieldProblemsSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemsSolved(); ok {
		_spec.AddField(topicprogress.FieldProblemsSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EasySolved(); ok {
		_spec.SetField(topicprogress.FieldEasySolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEasySolved(); ok {
		_spec.AddField(topicprogress.FieldEasySolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediumSolved(); ok {
		_spec.SetField(topicprogress.FieldMediumSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMediumSolved(); ok {
		_spec.AddField(topicprogress.FieldMediumSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HardSolved(); ok {
		_spec.SetField(topicprogress.FieldHardSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHardSolved(); ok {
		_spec.AddField(topicprogress.FieldHardSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(topicprogress.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(topicprogress.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeaknessScore(); ok {
		_spec.SetField(topicprogress.FieldWeaknessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeaknessScore(); ok {
		_spec.AddField(topicprogress.FieldWeaknessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(topicprogress.FieldLastPracticed, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedCleared() {
		_spec.ClearField(topicprogress.FieldLastPracticed, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicProgressUpdateOne is the builder for updating a single TopicProgress entity.
type TopicProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *TopicProgressUpdateOne) SetUserID(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableUserID(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *TopicProgressUpdateOne) AddUserID(v int) *TopicProgressUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TopicProgressUpdateOne) SetTopic(v string) *TopicProgressUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableTopic(v *string) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetProblemsAttempted sets the "problems_attempted" field.
func (_u *TopicProgressUpdateOne) SetProblemsAttempted(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetProblemsAttempted()
	_u.mutation.SetProblemsAttempted(v)
	return _u
}

// SetNillableProblemsAttempted sets the "problems_attempted" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableProblemsAttempted(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetProblemsAttempted(*v)
	}
	return _u
}

// AddProblemsAttempted adds value to the "problems_attempted" field.
func (_u *TopicProgressUpdateOne) AddProblemsAttempted(v int) *TopicProgressUpdateOne {
	_u.mutation.AddProblemsAttempted(v)
	return _u
}

// SetProblemsSolved sets the "problems_solved" field.
func (_u *TopicProgressUpdateOne) SetProblemsSolved(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetProblemsSolved()
	_u.mutation.SetProblemsSolved(v)
	return _u
}

// SetNillableProblemsSolved sets the "problems_solved" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableProblemsSolved(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetProblemsSolved(*v)
	}
	return _u
}

// AddProblemsSolved adds value to the "problems_solved" field.
func (_u *TopicProgressUpdateOne) AddProblemsSolved(v int) *TopicProgressUpdateOne {
	_u.mutation.AddProblemsSolved(v)
	return _u
}

// SetEasySolved sets the "easy_solved" field.
func (_u *TopicProgressUpdateOne) SetEasySolved(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetEasySolved()
	_u.mutation.SetEasySolved(v)
	return _u
}

// SetNillableEasySolved sets the "easy_solved" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableEasySolved(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetEasySolved(*v)
	}
	return _u
}

// AddEasySolved adds value to the "easy_solved" field.
func (_u *TopicProgressUpdateOne) AddEasySolved(v int) *TopicProgressUpdateOne {
	_u.mutation.AddEasySolved(v)
	return _u
}

// SetMediumSolved sets the "medium_solved" field.
func (_u *TopicProgressUpdateOne) SetMediumSolved(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetMediumSolved()
	_u.mutation.SetMediumSolved(v)
	return _u
}

// SetNillableMediumSolved sets the "medium_solved" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableMediumSolved(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetMediumSolved(*v)
	}
	return _u
}

// AddMediumSolved adds value to the "medium_solved" field.
func (_u *TopicProgressUpdateOne) AddMediumSolved(v int) *TopicProgressUpdateOne {
	_u.mutation.AddMediumSolved(v)
	return _u
}

// SetHardSolved sets the "hard_solved" field.
func (_u *TopicProgressUpdateOne) SetHardSolved(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetHardSolved()
	_u.mutation.SetHardSolved(v)
	return _u
}

// SetNillableHardSolved sets the "hard_solved" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableHardSolved(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetHardSolved(*v)
	}
	return _u
}

// AddHardSolved adds value to the "hard_solved" field.
func (_u *TopicProgressUpdateOne) AddHardSolved(v int) *TopicProgressUpdateOne {
	_u.mutation.AddHardSolved(v)
	return _u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_u *TopicProgressUpdateOne) SetTimeSpentMinutes(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetTimeSpentMinutes()
	_u.mutation.SetTimeSpentMinutes(v)
	return _u
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableTimeSpentMinutes(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetTimeSpentMinutes(*v)
	}
	return _u
}

// AddTimeSpentMinutes adds value to the "time_spent_minutes" field.
func (_u *TopicProgressUpdateOne) AddTimeSpentMinutes(v int) *TopicProgressUpdateOne {
	_u.mutation.AddTimeSpentMinutes(v)
	return _u
}

// SetWeaknessScore sets the "weakness_score" field.
func (_u *TopicProgressUpdateOne) SetWeaknessScore(v float64) *TopicProgressUpdateOne {
	_u.mutation.ResetWeaknessScore()
	_u.mutation.SetWeaknessScore(v)
	return _u
}

// SetNillableWeaknessScore sets the "weakness_score" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableWeaknessScore(v *float64) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetWeaknessScore(*v)
	}
	return _u
}

// AddWeaknessScore adds value to the "weakness_score" field.
func (_u *TopicProgressUpdateOne) AddWeaknessScore(v float64) *TopicProgressUpdateOne {
	_u.mutation.AddWeaknessScore(v)
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *TopicProgressUpdateOne) SetLastPracticed(v time.Time) *TopicProgressUpdateOne {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableLastPracticed(v *time.Time) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (_u *TopicProgressUpdateOne) ClearLastPracticed() *TopicProgressUpdateOne {
	_u.mutation.ClearLastPracticed()
	return _u
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_u *TopicProgressUpdateOne) Mutation() *TopicProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicProgressUpdate builder.
func (_u *TopicProgressUpdateOne) Where(ps ...predicate.TopicProgress) *TopicProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicProgressUpdateOne) Select(field string, fields ...string) *TopicProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicProgress entity.
func (_u *TopicProgressUpdateOne) Save(ctx context.Context) (*TopicProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicProgressUpdateOne) SaveX(ctx context.Context) *TopicProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicProgressUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := topicprogress.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicProgressUpdateOne) sqlSave(ctx context.Context) (_node *TopicProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicprogress.Table, topicprogress.Columns, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicprogress.FieldID)
		for _, f := range fields {
			if !topicprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicprogress.FieldID {
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
		_spec.SetField(topicprogress.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(topicprogress.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(topicprogress.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemsAttempted(); ok {
		_spec.SetField(topicprogress.FieldProblemsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemsAttempted(); ok {
		_spec.AddField(topicprogress.FieldProblemsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProblemsSolved(); ok {
		_spec.SetField(topicprogress.FieldProblemsSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemsSolved(); ok {
		_spec.AddField(topicprogress.FieldProblemsSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EasySolved(); ok {
		_spec.SetField(topicprogress.FieldEasySolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEasySolved(); ok {
		_spec.AddField(topicprogress.FieldEasySolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediumSolved(); ok {
		_spec.SetField(topicprogress.FieldMediumSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMediumSolved(); ok {
		_spec.AddField(topicprogress.FieldMediumSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HardSolved(); ok {
		_spec.SetField(topicprogress.FieldHardSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHardSolved(); ok {
		_spec.AddField(topicprogress.FieldHardSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(topicprogress.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(topicprogress.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeaknessScore(); ok {
		_spec.SetField(topicprogress.FieldWeaknessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeaknessScore(); ok {
		_spec.AddField(topicprogress.FieldWeaknessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(topicprogress.FieldLastPracticed, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedCleared() {
		_spec.ClearField(topicprogress.FieldLastPracticed, field.TypeTime)
	}
	_node = &TopicProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
