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
	"github.com/abhisek/prepmate/ent/topicprogress"
)

// TopicProgressCreate is the builder for creating a TopicProgress entity.
type TopicProgressCreate struct {
	config
	mutation *TopicProgressMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *TopicProgressCreate) SetUserID(v int) *TopicProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *TopicProgressCreate) SetTopic(v string) *TopicProgressCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetProblemsAttempted sets the "problems_attempted" field.
func (_c *TopicProgressCreate) SetProblemsAttempted(v int) *TopicProgressCreate {
	_c.mutation.SetProblemsAttempted(v)
	return _c
}

// SetNillableProblemsAttempted sets the "problems_attempted" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableProblemsAttempted(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetProblemsAttempted(*v)
	}
	return _c
}

// SetProblemsSolved sets the "problems_solved" field.
func (_c *TopicProgressCreate) SetProblemsSolved(v int) *TopicProgressCreate {
	_c.mutation.SetProblemsSolved(v)
	return _c
}

// SetNillableProblemsSolved sets the "problems_solved" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableProblemsSolved(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetProblemsSolved(*v)
	}
	return _c
}

// SetEasySolved sets the "easy_solved" field.
func (_c *TopicProgressCreate) SetEasySolved(v int) *TopicProgressCreate {
	_c.mutation.SetEasySolved(v)
	return _c
}

// SetNillableEasySolved sets the "easy_solved" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableEasySolved(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetEasySolved(*v)
	}
	return _c
}

// SetMediumSolved sets the "medium_solved" field.
func (_c *TopicProgressCreate) SetMediumSolved(v int) *TopicProgressCreate {
	_c.mutation.SetMediumSolved(v)
	return _c
}

// SetNillableMediumSolved sets the "medium_solved" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableMediumSolved(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetMediumSolved(*v)
	}
	return _c
}

// SetHardSolved sets the "hard_solved" field.
func (_c *TopicProgressCreate) SetHardSolved(v int) *TopicProgressCreate {
	_c.mutation.SetHardSolved(v)
	return _c
}

// SetNillableHardSolved sets the "hard_solved" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableHardSolved(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetHardSolved(*v)
	}
	return _c
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_c *TopicProgressCreate) SetTimeSpentMinutes(v int) *TopicProgressCreate {
	_c.mutation.SetTimeSpentMinutes(v)
	return _c
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableTimeSpentMinutes(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetTimeSpentMinutes(*v)
	}
	return _c
}

// SetWeaknessScore sets the "weakness_score" field.
func (_c *TopicProgressCreate) SetWeaknessScore(v float64) *TopicProgressCreate {
	_c.mutation.SetWeaknessScore(v)
	return _c
}

// SetNillableWeaknessScore sets the "weakness_score" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableWeaknessScore(v *float64) *TopicProgressCreate {
	if v != nil {
		_c.SetWeaknessScore(*v)
	}
	return _c
}

// SetLastPracticed sets the "last_practiced" field.
func (_c *TopicProgressCreate) SetLastPracticed(v time.Time) *TopicProgressCreate {
	_c.mutation.SetLastPracticed(v)
	return _c
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableLastPracticed(v *time.Time) *TopicProgressCreate {
	if v != nil {
		_c.SetLastPracticed(*v)
	}
	return _c
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_c *TopicProgressCreate) Mutation() *TopicProgressMutation {
	return _c.mutation
}

// Save creates the TopicProgress in the database.
func (_c *TopicProgressCreate) Save(ctx context.Context) (*TopicProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicProgressCreate) SaveX(ctx context.Context) *TopicProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicProgressCreate) defaults() {
	if _, ok := _c.mutation.ProblemsAttempted(); !ok {
		v := topicprogress.DefaultProblemsAttempted
		_c.mutation.SetProblemsAttempted(v)
	}
	if _, ok := _c.mutation.ProblemsSolved(); !ok {
		v := topicprogress.DefaultProblemsSolved
		_c.mutation.SetProblemsSolved(v)
	}
	if _, ok := _c.mutation.EasySolved(); !ok {
		v := topicprogress.DefaultEasySolved
		_c.mutation.SetEasySolved(v)
	}
	if _, ok := _c.mutation.MediumSolved(); !ok {
		v := topicprogress.DefaultMediumSolved
		_c.mutation.SetMediumSolved(v)
	}
	if _, ok := _c.mutation.HardSolved(); !ok {
		v := topicprogress.DefaultHardSolved
		_c.mutation.SetHardSolved(v)
	}
	if _, ok := _c.mutation.TimeSpentMinutes(); !ok {
		v := topicprogress.DefaultTimeSpentMinutes
		_c.mutation.SetTimeSpentMinutes(v)
	}
	if _, ok := _c.mutation.WeaknessScore(); !ok {
		v := topicprogress.DefaultWeaknessScore
		_c.mutation.SetWeaknessScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TopicProgress.user_id"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "TopicProgress.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := topicprogress.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProblemsAttempted(); !ok {
		return &ValidationError{Name: "problems_attempted", err: errors.New(`ent: missing required field "TopicProgress.problems_attempted"`)}
	}
	if _, ok := _c.mutation.ProblemsSolved(); !ok {
		return &ValidationError{Name: "problems_solved", err: errors.New(`ent: missing required field "TopicProgress.problems_solved"`)}
	}
	if _, ok := _c.mutation.EasySolved(); !ok {
		return &ValidationError{Name: "easy_solved", err: errors.New(`ent: missing required field "TopicProgress.easy_solved"`)}
	}
	if _, ok := _c.mutation.MediumSolved(); !ok {
		return &ValidationError{Name: "medium_solved", err: errors.New(`ent: missing required field "TopicProgress.medium_solved"`)}
	}
	if _, ok := _c.mutation.HardSolved(); !ok {
		return &ValidationError{Name: "hard_solved", err: errors.New(`ent: missing required field "TopicProgress.hard_solved"`)}
	}
	if _, ok := _c.mutation.TimeSpentMinutes(); !ok {
		return &ValidationError{Name: "time_spent_minutes", err: errors.New(`ent: missing required field "TopicProgress.time_spent_minutes"`)}
	}
	if _, ok := _c.mutation.WeaknessScore(); !ok {
		return &ValidationError{Name: "weakness_score", err: errors.New(`ent: missing required field "TopicProgress.weakness_score"`)}
	}
	return nil
}

func (_c *TopicProgressCreate) sqlSave(ctx context.Context) (*TopicProgress, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TopicProgressCreate) createSpec() (*TopicProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicprogress.Table, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(topicprogress.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(topicprogress.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.ProblemsAttempted(); ok {
		_spec.SetField(topicprogress.FieldProblemsAttempted, field.TypeInt, value)
		_node.ProblemsAttempted = value
	}
	if value, ok := _c.mutation.ProblemsSolved(); ok {
		_spec.SetField(topicprogress.FieldProblemsSolved, field.TypeInt, value)
		_node.ProblemsSolved = value
	}
	if value, ok := _c.mutation.EasySolved(); ok {
		_spec.SetField(topicprogress.FieldEasySolved, field.TypeInt, value)
		_node.EasySolved = value
	}
	if value, ok := _c.mutation.MediumSolved(); ok {
		_spec.SetField(topicprogress.FieldMediumSolved, field.TypeInt, value)
		_node.MediumSolved = value
	}
	if value, ok := _c.mutation.HardSolved(); ok {
		_spec.SetField(topicprogress.FieldHardSolved, field.TypeInt, value)
		_node.HardSolved = value
	}
	if value, ok := _c.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(topicprogress.FieldTimeSpentMinutes, field.TypeInt, value)
		_node.TimeSpentMinutes = value
	}
	if value, ok := _c.mutation.WeaknessScore(); ok {
		_spec.SetField(topicprogress.FieldWeaknessScore, field.TypeFloat64, value)
		_node.WeaknessScore = value
	}
	if value, ok := _c.mutation.LastPracticed(); ok {
		_spec.SetField(topicprogress.FieldLastPracticed, field.TypeTime, value)
		_node.LastPracticed = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TopicProgress.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TopicProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TopicProgressCreate) OnConflict(opts ...sql.ConflictOption) *TopicProgressUpsertOne {
	_c.conflict = opts
	return &TopicProgressUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TopicProgressCreate) OnConflictColumns(columns ...string) *TopicProgressUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TopicProgressUpsertOne{
		create: _c,
	}
}

type (
	// TopicProgressUpsertOne is the builder for "upsert"-ing
	//  one TopicProgress node.
	TopicProgressUpsertOne struct {
		create *TopicProgressCreate
	}

	// TopicProgressUpsert is the "OnConflict" setter.
	TopicProgressUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *TopicProgressUpsert) SetUserID(v int) *TopicProgressUpsert {
	u.Set(topicprogress.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateUserID() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *TopicProgressUpsert) AddUserID(v int) *TopicProgressUpsert {
	u.Add(topicprogress.FieldUserID, v)
	return u
}

// SetTopic sets the "topic" field.
func (u *TopicProgressUpsert) SetTopic(v string) *TopicProgressUpsert {
	u.Set(topicprogress.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateTopic() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldTopic)
	return u
}

// SetProblemsAttempted sets the "problems_attempted" field.
func (u *TopicProgressUpsert) SetProblemsAttempted(v int) *TopicProgressUpsert {
	u.Set(topicprogress.FieldProblemsAttempted, v)
	return u
}

// UpdateProblemsAttempted sets the "problems_attempted" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateProblemsAttempted() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldProblemsAttempted)
	return u
}

// AddProblemsAttempted adds v to the "problems_attempted" field.
func (u *TopicProgressUpsert) AddProblemsAttempted(v int) *TopicProgressUpsert {
	u.Add(topicprogress.FieldProblemsAttempted, v)
	return u
}

// SetProblemsSolved sets the "problems_solved" field.
func (u *TopicProgressUpsert) SetProblemsSolved(v int) *TopicProgressUpsert {
	u.Set(topicprogress.FieldProblemsSolved, v)
	return u
}

// UpdateProblemsSolved sets the "problems_solved" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateProblemsSolved() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldProblemsSolved)
	return u
}

// AddProblemsSolved adds v to the "problems_solved" field.
func (u *TopicProgressUpsert) AddProblemsSolved(v int) *TopicProgressUpsert {
	u.Add(topicprogress.FieldProblemsSolved, v)
	return u
}

// SetEasySolved sets the "easy_solved" field.
func (u *TopicProgressUpsert) SetEasySolved(v int) *TopicProgressUpsert {
	u.Set(topicprogress.FieldEasySolved, v)
	return u
}

// UpdateEasySolved sets the "easy_solved" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateEasySolved() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldEasySolved)
	return u
}

// AddEasySolved adds v to the "easy_solved" field.
func (u *TopicProgressUpsert) AddEasySolved(v int) *TopicProgressUpsert {
	u.Add(topicprogress.FieldEasySolved, v)
	return u
}

// SetMediumSolved sets the "medium_solved" field.
func (u *TopicProgressUpsert) SetMediumSolved(v int) *TopicProgressUpsert {
	u.Set(topicprogress.FieldMediumSolved, v)
	return u
}

// UpdateMediumSolved sets the "medium_solved" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateMediumSolved() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldMediumSolved)
	return u
}

// AddMediumSolved adds v to the "medium_solved" field.
func (u *TopicProgressUpsert) AddMediumSolved(v int) *TopicProgressUpsert {
	u.Add(topicprogress.FieldMediumSolved, v)
	return u
}

// SetHardSolved sets the "hard_solved" field.
func (u *TopicProgressUpsert) SetHardSolved(v int) *TopicProgressUpsert {
	u.Set(topicprogress.FieldHardSolved, v)
	return u
}

// UpdateHardSolved sets the "hard_solved" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateHardSolved() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldHardSolved)
	return u
}

// AddHardSolved adds v to the "hard_solved" field.
func (u *TopicProgressUpsert) AddHardSolved(v int) *TopicProgressUpsert {
	u.Add(topicprogress.FieldHardSolved, v)
	return u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (u *TopicProgressUpsert) SetTimeSpentMinutes(v int) *TopicProgressUpsert {
	u.Set(topicprogress.FieldTimeSpentMinutes, v)
	return u
}

// UpdateTimeSpentMinutes sets the "time_spent_minutes" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateTimeSpentMinutes() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldTimeSpentMinutes)
	return u
}

// AddTimeSpentMinutes adds v to the "time_spent_minutes" field.
func (u *TopicProgressUpsert) AddTimeSpentMinutes(v int) *TopicProgressUpsert {
	u.Add(topicprogress.FieldTimeSpentMinutes, v)
	return u
}

// SetWeaknessScore sets the "weakness_score" field.
func (u *TopicProgressUpsert) SetWeaknessScore(v float64) *TopicProgressUpsert {
	u.Set(topicprogress.FieldWeaknessScore, v)
	return u
}

// UpdateWeaknessScore sets the "weakness_score" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateWeaknessScore() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldWeaknessScore)
	return u
}

// AddWeaknessScore adds v to the "weakness_score" field.
func (u *TopicProgressUpsert) AddWeaknessScore(v float64) *TopicProgressUpsert {
	u.Add(topicprogress.FieldWeaknessScore, v)
	return u
}

// SetLastPracticed sets the "last_practiced" field.
func (u *TopicProgressUpsert) SetLastPracticed(v time.Time) *TopicProgressUpsert {
	u.Set(topicprogress.FieldLastPracticed, v)
	return u
}

// UpdateLastPracticed sets the "last_practiced" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateLastPracticed() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldLastPracticed)
	return u
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (u *TopicProgressUpsert) ClearLastPracticed() *TopicProgressUpsert {
	u.SetNull(topicprogress.FieldLastPracticed)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TopicProgressUpsertOne) UpdateNewValues() *TopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TopicProgressUpsertOne) Ignore() *TopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TopicProgressUpsertOne) DoNothing() *TopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TopicProgressCreate.OnConflict
// documentation for more info.
func (u *TopicProgressUpsertOne) Update(set func(*TopicProgressUpsert)) *TopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TopicProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *TopicProgressUpsertOne) SetUserID(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *TopicProgressUpsertOne) AddUserID(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateUserID() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetTopic sets the "topic" field.
func (u *TopicProgressUpsertOne) SetTopic(v string) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateTopic() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateTopic()
	})
}

// SetProblemsAttempted sets the "problems_attempted" field.
func (u *TopicProgressUpsertOne) SetProblemsAttempted(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetProblemsAttempted(v)
	})
}

// AddProblemsAttempted adds v to the "problems_attempted" field.
func (u *TopicProgressUpsertOne) AddProblemsAttempted(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddProblemsAttempted(v)
	})
}

// UpdateProblemsAttempted sets the "problems_attempted" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateProblemsAttempted() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateProblemsAttempted()
	})
}

// SetProblemsSolved sets the "problems_solved" field.
func (u *TopicProgressUpsertOne) SetProblemsSolved(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetProblemsSolved(v)
	})
}

// AddProblemsSolved adds v to the "problems_solved" field.
func (u *TopicProgressUpsertOne) AddProblemsSolved(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddProblemsSolved(v)
	})
}

// UpdateProblemsSolved sets the "problems_solved" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateProblemsSolved() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateProblemsSolved()
	})
}

// SetEasySolved sets the "easy_solved" field.
func (u *TopicProgressUpsertOne) SetEasySolved(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetEasySolved(v)
	})
}

// AddEasySolved adds v to the "easy_solved" field.
func (u *TopicProgressUpsertOne) AddEasySolved(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddEasySolved(v)
	})
}

// UpdateEasySolved sets the "easy_solved" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateEasySolved() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateEasySolved()
	})
}

// SetMediumSolved sets the "medium_solved" field.
func (u *TopicProgressUpsertOne) SetMediumSolved(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetMediumSolved(v)
	})
}

// AddMediumSolved adds v to the "medium_solved" field.
func (u *TopicProgressUpsertOne) AddMediumSolved(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddMediumSolved(v)
	})
}

// UpdateMediumSolved sets the "medium_solved" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateMediumSolved() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateMediumSolved()
	})
}

// SetHardSolved sets the "hard_solved" field.
func (u *TopicProgressUpsertOne) SetHardSolved(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetHardSolved(v)
	})
}

// AddHardSolved adds v to the "hard_solved" field.
func (u *TopicProgressUpsertOne) AddHardSolved(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddHardSolved(v)
	})
}

// UpdateHardSolved sets the "hard_solved" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateHardSolved() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateHardSolved()
	})
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (u *TopicProgressUpsertOne) SetTimeSpentMinutes(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetTimeSpentMinutes(v)
	})
}

// AddTimeSpentMinutes adds v to the "time_spent_minutes" field.
func (u *TopicProgressUpsertOne) AddTimeSpentMinutes(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddTimeSpentMinutes(v)
	})
}

// UpdateTimeSpentMinutes sets the "time_spent_minutes" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateTimeSpentMinutes() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateTimeSpentMinutes()
	})
}

// SetWeaknessScore sets the "weakness_score" field.
func (u *TopicProgressUpsertOne) SetWeaknessScore(v float64) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetWeaknessScore(v)
	})
}

// AddWeaknessScore adds v to the "weakness_score" field.
func (u *TopicProgressUpsertOne) AddWeaknessScore(v float64) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddWeaknessScore(v)
	})
}

// UpdateWeaknessScore sets the "weakness_score" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateWeaknessScore() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateWeaknessScore()
	})
}

// SetLastPracticed sets the "last_practiced" field.
func (u *TopicProgressUpsertOne) SetLastPracticed(v time.Time) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetLastPracticed(v)
	})
}

// UpdateLastPracticed sets the "last_practiced" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateLastPracticed() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateLastPracticed()
	})
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (u *TopicProgressUpsertOne) ClearLastPracticed() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.ClearLastPracticed()
	})
}

// Exec executes the query.
func (u *TopicProgressUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TopicProgressCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TopicProgressUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TopicProgressUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TopicProgressUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TopicProgressCreateBulk is the builder for creating many TopicProgress entities in bulk.
type TopicProgressCreateBulk struct {
	config
	err      error
	builders []*TopicProgressCreate
	conflict []sql.ConflictOption
}

// Save creates the TopicProgress entities in the database.
func (_c *TopicProgressCreateBulk) Save(ctx context.Context) ([]*TopicProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicProgressMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TopicProgressCreateBulk) SaveX(ctx context.Context) []*TopicProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TopicProgress.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TopicProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TopicProgressCreateBulk) OnConflict(opts ...sql.ConflictOption) *TopicProgressUpsertBulk {
	_c.conflict = opts
	return &TopicProgressUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TopicProgressCreateBulk) OnConflictColumns(columns ...string) *TopicProgressUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TopicProgressUpsertBulk{
		create: _c,
	}
}

// TopicProgressUpsertBulk is the builder for "upsert"-ing
// a bulk of TopicProgress nodes.
type TopicProgressUpsertBulk struct {
	create *TopicProgressCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TopicProgressUpsertBulk) UpdateNewValues() *TopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TopicProgressUpsertBulk) Ignore() *TopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TopicProgressUpsertBulk) DoNothing() *TopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TopicProgressCreateBulk.OnConflict
// documentation for more info.
func (u *TopicProgressUpsertBulk) Update(set func(*TopicProgressUpsert)) *TopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TopicProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *TopicProgressUpsertBulk) SetUserID(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *TopicProgressUpsertBulk) AddUserID(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateUserID() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetTopic sets the "topic" field.
func (u *TopicProgressUpsertBulk) SetTopic(v string) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateTopic() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateTopic()
	})
}

// SetProblemsAttempted sets the "problems_attempted" field.
func (u *TopicProgressUpsertBulk) SetProblemsAttempted(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetProblemsAttempted(v)
	})
}

// AddProblemsAttempted adds v to the "problems_attempted" field.
func (u *TopicProgressUpsertBulk) AddProblemsAttempted(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddProblemsAttempted(v)
	})
}

// UpdateProblemsAttempted sets the "problems_attempted" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateProblemsAttempted() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateProblemsAttempted()
	})
}

// SetProblemsSolved sets the "problems_solved" field.
func (u *TopicProgressUpsertBulk) SetProblemsSolved(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetProblemsSolved(v)
	})
}

// AddProblemsSolved adds v to the "problems_solved" field.
func (u *TopicProgressUpsertBulk) AddProblemsSolved(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddProblemsSolved(v)
	})
}

// UpdateProblemsSolved sets the "problems_solved" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateProblemsSolved() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateProblemsSolved()
	})
}

// SetEasySolved sets the "easy_solved" field.
func (u *TopicProgressUpsertBulk) SetEasySolved(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetEasySolved(v)
	})
}

// AddEasySolved adds v to the "easy_solved" field.
func (u *TopicProgressUpsertBulk) AddEasySolved(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddEasySolved(v)
	})
}

// UpdateEasySolved sets the "easy_solved" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateEasySolved() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateEasySolved()
	})
}

// SetMediumSolved sets the "medium_solved" field.
func (u *TopicProgressUpsertBulk) SetMediumSolved(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetMediumSolved(v)
	})
}

// AddMediumSolved adds v to the "medium_solved" field.
func (u *TopicProgressUpsertBulk) AddMediumSolved(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddMediumSolved(v)
	})
}

// UpdateMediumSolved sets the "medium_solved" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateMediumSolved() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateMediumSolved()
	})
}

// SetHardSolved sets the "hard_solved" field.
func (u *TopicProgressUpsertBulk) SetHardSolved(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetHardSolved(v)
	})
}

// AddHardSolved adds v to the "hard_solved" field.
func (u *TopicProgressUpsertBulk) AddHardSolved(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddHardSolved(v)
	})
}

// UpdateHardSolved sets the "hard_solved" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateHardSolved() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateHardSolved()
	})
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (u *TopicProgressUpsertBulk) SetTimeSpentMinutes(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetTimeSpentMinutes(v)
	})
}

// AddTimeSpentMinutes adds v to the "time_spent_minutes" field.
func (u *TopicProgressUpsertBulk) AddTimeSpentMinutes(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddTimeSpentMinutes(v)
	})
}

// UpdateTimeSpentMinutes sets the "time_spent_minutes" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateTimeSpentMinutes() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateTimeSpentMinutes()
	})
}

// SetWeaknessScore sets the "weakness_score" field.
func (u *TopicProgressUpsertBulk) SetWeaknessScore(v float64) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetWeaknessScore(v)
	})
}

// AddWeaknessScore adds v to the "weakness_score" field.
func (u *TopicProgressUpsertBulk) AddWeaknessScore(v float64) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddWeaknessScore(v)
	})
}

// UpdateWeaknessScore sets the "weakness_score" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateWeaknessScore() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateWeaknessScore()
	})
}

// SetLastPracticed sets the "last_practiced" field.
func (u *TopicProgressUpsertBulk) SetLastPracticed(v time.Time) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetLastPracticed(v)
	})
}

// UpdateLastPracticed sets the "last_practiced" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateLastPracticed() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateLastPracticed()
	})
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (u *TopicProgressUpsertBulk) ClearLastPracticed() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.ClearLastPracticed()
	})
}

// Exec executes the query.
func (u *TopicProgressUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TopicProgressCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TopicProgressCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TopicProgressUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
