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
	"github.com/abhisek/prepmate/ent/practicesession"
)

// PracticeSessionCreate is the builder for creating a PracticeSession entity.
type PracticeSessionCreate struct {
	config
	mutation *PracticeSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUID sets the "uid" field.
func (_c *PracticeSessionCreate) SetUID(v string) *PracticeSessionCreate {
	_c.mutation.SetUID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PracticeSessionCreate) SetUserID(v int) *PracticeSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *PracticeSessionCreate) SetTopic(v string) *PracticeSessionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetProblemName sets the "problem_name" field.
func (_c *PracticeSessionCreate) SetProblemName(v string) *PracticeSessionCreate {
	_c.mutation.SetProblemName(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *PracticeSessionCreate) SetDifficulty(v string) *PracticeSessionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetSolved sets the "solved" field.
func (_c *PracticeSessionCreate) SetSolved(v bool) *PracticeSessionCreate {
	_c.mutation.SetSolved(v)
	return _c
}

// SetNillableSolved sets the "solved" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableSolved(v *bool) *PracticeSessionCreate {
	if v != nil {
		_c.SetSolved(*v)
	}
	return _c
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_c *PracticeSessionCreate) SetTimeSpentMinutes(v int) *PracticeSessionCreate {
	_c.mutation.SetTimeSpentMinutes(v)
	return _c
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableTimeSpentMinutes(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetTimeSpentMinutes(*v)
	}
	return _c
}

// SetCodeSubmitted sets the "code_submitted" field.
func (_c *PracticeSessionCreate) SetCodeSubmitted(v string) *PracticeSessionCreate {
	_c.mutation.SetCodeSubmitted(v)
	return _c
}

// SetNillableCodeSubmitted sets the "code_submitted" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableCodeSubmitted(v *string) *PracticeSessionCreate {
	if v != nil {
		_c.SetCodeSubmitted(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *PracticeSessionCreate) SetNotes(v string) *PracticeSessionCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableNotes(v *string) *PracticeSessionCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetAttemptedAt sets the "attempted_at" field.
func (_c *PracticeSessionCreate) SetAttemptedAt(v time.Time) *PracticeSessionCreate {
	_c.mutation.SetAttemptedAt(v)
	return _c
}

// SetNillableAttemptedAt sets the "attempted_at" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableAttemptedAt(v *time.Time) *PracticeSessionCreate {
	if v != nil {
		_c.SetAttemptedAt(*v)
	}
	return _c
}

// SetSolvedAt sets the "solved_at" field.
func (_c *PracticeSessionCreate) SetSolvedAt(v time.Time) *PracticeSessionCreate {
	_c.mutation.SetSolvedAt(v)
	return _c
}

// SetNillableSolvedAt sets the "solved_at" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableSolvedAt(v *time.Time) *PracticeSessionCreate {
	if v != nil {
		_c.SetSolvedAt(*v)
	}
	return _c
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_c *PracticeSessionCreate) Mutation() *PracticeSessionMutation {
	return _c.mutation
}

// Save creates the PracticeSession in the database.
func (_c *PracticeSessionCreate) Save(ctx context.Context) (*PracticeSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeSessionCreate) SaveX(ctx context.Context) *PracticeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeSessionCreate) defaults() {
	if _, ok := _c.mutation.Solved(); !ok {
		v := practicesession.DefaultSolved
		_c.mutation.SetSolved(v)
	}
	if _, ok := _c.mutation.TimeSpentMinutes(); !ok {
		v := practicesession.DefaultTimeSpentMinutes
		_c.mutation.SetTimeSpentMinutes(v)
	}
	if _, ok := _c.mutation.AttemptedAt(); !ok {
		v := practicesession.DefaultAttemptedAt()
		_c.mutation.SetAttemptedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeSessionCreate) check() error {
	if _, ok := _c.mutation.UID(); !ok {
		return &ValidationError{Name: "uid", err: errors.New(`ent: missing required field "PracticeSession.uid"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PracticeSession.user_id"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "PracticeSession.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := practicesession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProblemName(); !ok {
		return &ValidationError{Name: "problem_name", err: errors.New(`ent: missing required field "PracticeSession.problem_name"`)}
	}
	if v, ok := _c.mutation.ProblemName(); ok {
		if err := practicesession.ProblemNameValidator(v); err != nil {
			return &ValidationError{Name: "problem_name", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.problem_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "PracticeSession.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := practicesession.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Solved(); !ok {
		return &ValidationError{Name: "solved", err: errors.New(`ent: missing required field "PracticeSession.solved"`)}
	}
	if _, ok := _c.mutation.TimeSpentMinutes(); !ok {
		return &ValidationError{Name: "time_spent_minutes", err: errors.New(`ent: missing required field "PracticeSession.time_spent_minutes"`)}
	}
	if _, ok := _c.mutation.AttemptedAt(); !ok {
		return &ValidationError{Name: "attempted_at", err: errors.New(`ent: missing required field "PracticeSession.attempted_at"`)}
	}
	return nil
}

func (_c *PracticeSessionCreate) sqlSave(ctx context.Context) (*PracticeSession, error) {
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

func (_c *PracticeSessionCreate) createSpec() (*PracticeSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practicesession.Table, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UID(); ok {
		_spec.SetField(practicesession.FieldUID, field.TypeString, value)
		_node.UID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(practicesession.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(practicesession.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.ProblemName(); ok {
		_spec.SetField(practicesession.FieldProblemName, field.TypeString, value)
		_node.ProblemName = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(practicesession.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Solved(); ok {
		_spec.SetField(practicesession.FieldSolved, field.TypeBool, value)
		_node.Solved = value
	}
	if value, ok := _c.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(practicesession.FieldTimeSpentMinutes, field.TypeInt, value)
		_node.TimeSpentMinutes = value
	}
	if value, ok := _c.mutation.CodeSubmitted(); ok {
		_spec.SetField(practicesession.FieldCodeSubmitted, field.TypeString, value)
		_node.CodeSubmitted = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(practicesession.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.AttemptedAt(); ok {
		_spec.SetField(practicesession.FieldAttemptedAt, field.TypeTime, value)
		_node.AttemptedAt = value
	}
	if value, ok := _c.mutation.SolvedAt(); ok {
		_spec.SetField(practicesession.FieldSolvedAt, field.TypeTime, value)
		_node.SolvedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PracticeSession.Create().
//		SetUID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PracticeSessionUpsert) {
//			SetUID(v+v).
//		}).
//		Exec(ctx)
func (_c *PracticeSessionCreate) OnConflict(opts ...sql.ConflictOption) *PracticeSessionUpsertOne {
	_c.conflict = opts
	return &PracticeSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PracticeSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PracticeSessionCreate) OnConflictColumns(columns ...string) *PracticeSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PracticeSessionUpsertOne{
		create: _c,
	}
}

type (
	// PracticeSessionUpsertOne is the builder for "upsert"-ing
	//  one PracticeSession node.
	PracticeSessionUpsertOne struct {
		create *PracticeSessionCreate
	}

	// PracticeSessionUpsert is the "OnConflict" setter.
	PracticeSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *PracticeSessionUpsert) SetUserID(v int) *PracticeSessionUpsert {
	u.Set(practicesession.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PracticeSessionUpsert) UpdateUserID() *PracticeSessionUpsert {
	u.SetExcluded(practicesession.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *PracticeSessionUpsert) AddUserID(v int) *PracticeSessionUpsert {
	u.Add(practicesession.FieldUserID, v)
	return u
}

// SetTopic sets the "topic" field.
func (u *PracticeSessionUpsert) SetTopic(v string) *PracticeSessionUpsert {
	u.Set(practicesession.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *PracticeSessionUpsert) UpdateTopic() *PracticeSessionUpsert {
	u.SetExcluded(practicesession.FieldTopic)
	return u
}

// SetProblemName sets the "problem_name" field.
func (u *PracticeSessionUpsert) SetProblemName(v string) *PracticeSessionUpsert {
	u.Set(practicesession.FieldProblemName, v)
	return u
}

// UpdateProblemName sets the "problem_name" field to the value that was provided on create.
func (u *PracticeSessionUpsert) UpdateProblemName() *PracticeSessionUpsert {
	u.SetExcluded(practicesession.FieldProblemName)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *PracticeSessionUpsert) SetDifficulty(v string) *PracticeSessionUpsert {
	u.Set(practicesession.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *PracticeSessionUpsert) UpdateDifficulty() *PracticeSessionUpsert {
	u.SetExcluded(practicesession.FieldDifficulty)
	return u
}

// SetSolved sets the "solved" field.
func (u *PracticeSessionUpsert) SetSolved(v bool) *PracticeSessionUpsert {
	u.Set(practicesession.FieldSolved, v)
	return u
}

// UpdateSolved sets the "solved" field to the value that was provided on create.
func (u *PracticeSessionUpsert) UpdateSolved() *PracticeSessionUpsert {
	u.SetExcluded(practicesession.FieldSolved)
	return u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (u *PracticeSessionUpsert) SetTimeSpentMinutes(v int) *PracticeSessionUpsert {
	u.Set(practicesession.FieldTimeSpentMinutes, v)
	return u
}

// UpdateTimeSpentMinutes sets the "time_spent_minutes" field to the value that was provided on create.
func (u *PracticeSessionUpsert) UpdateTimeSpentMinutes() *PracticeSessionUpsert {
	u.SetExcluded(practicesession.FieldTimeSpentMinutes)
	return u
}

// AddTimeSpentMinutes adds v to the "time_spent_minutes" field.
func (u *PracticeSessionUpsert) AddTimeSpentMinutes(v int) *PracticeSessionUpsert {
	u.Add(practicesession.FieldTimeSpentMinutes, v)
	return u
}

// SetCodeSubmitted sets the "code_submitted" field.
func (u *PracticeSessionUpsert) SetCodeSubmitted(v string) *PracticeSessionUpsert {
	u.Set(practicesession.FieldCodeSubmitted, v)
	return u
}

// UpdateCodeSubmitted sets the "code_submitted" field to the value that was provided on create.
func (u *PracticeSessionUpsert) UpdateCodeSubmitted() *PracticeSessionUpsert {
	u.SetExcluded(practicesession.FieldCodeSubmitted)
	return u
}

// ClearCodeSubmitted clears the value of the "code_submitted" field.
func (u *PracticeSessionUpsert) ClearCodeSubmitted() *PracticeSessionUpsert {
	u.SetNull(practicesession.FieldCodeSubmitted)
	return u
}

// SetNotes sets the "notes" field.
func (u *PracticeSessionUpsert) SetNotes(v string) *PracticeSessionUpsert {
	u.Set(practicesession.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PracticeSessionUpsert) UpdateNotes() *PracticeSessionUpsert {
	u.SetExcluded(practicesession.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *PracticeSessionUpsert) ClearNotes() *PracticeSessionUpsert {
	u.SetNull(practicesession.FieldNotes)
	return u
}

// SetSolvedAt sets the "solved_at" field.
func (u *PracticeSessionUpsert) SetSolvedAt(v time.Time) *PracticeSessionUpsert {
	u.Set(practicesession.FieldSolvedAt, v)
	return u
}

// UpdateSolvedAt sets the "solved_at" field to the value that was provided on create.
func (u *PracticeSessionUpsert) UpdateSolvedAt() *PracticeSessionUpsert {
	u.SetExcluded(practicesession.FieldSolvedAt)
	return u
}

// ClearSolvedAt clears the value of the "solved_at" field.
func (u *PracticeSessionUpsert) ClearSolvedAt() *PracticeSessionUpsert {
	u.SetNull(practicesession.FieldSolvedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PracticeSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PracticeSessionUpsertOne) UpdateNewValues() *PracticeSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UID(); exists {
			s.SetIgnore(practicesession.FieldUID)
		}
		if _, exists := u.create.mutation.AttemptedAt(); exists {
			s.SetIgnore(practicesession.FieldAttemptedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PracticeSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PracticeSessionUpsertOne) Ignore() *PracticeSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PracticeSessionUpsertOne) DoNothing() *PracticeSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PracticeSessionCreate.OnConflict
// documentation for more info.
func (u *PracticeSessionUpsertOne) Update(set func(*PracticeSessionUpsert)) *PracticeSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PracticeSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PracticeSessionUpsertOne) SetUserID(v int) *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *PracticeSessionUpsertOne) AddUserID(v int) *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PracticeSessionUpsertOne) UpdateUserID() *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateUserID()
	})
}

// SetTopic sets the "topic" field.
func (u *PracticeSessionUpsertOne) SetTopic(v string) *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *PracticeSessionUpsertOne) UpdateTopic() *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateTopic()
	})
}

// SetProblemName sets the "problem_name" field.
func (u *PracticeSessionUpsertOne) SetProblemName(v string) *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetProblemName(v)
	})
}

// UpdateProblemName sets the "problem_name" field to the value that was provided on create.
func (u *PracticeSessionUpsertOne) UpdateProblemName() *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateProblemName()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *PracticeSessionUpsertOne) SetDifficulty(v string) *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *PracticeSessionUpsertOne) UpdateDifficulty() *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateDifficulty()
	})
}

// SetSolved sets the "solved" field.
func (u *PracticeSessionUpsertOne) SetSolved(v bool) *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetSolved(v)
	})
}

// UpdateSolved sets the "solved" field to the value that was provided on create.
func (u *PracticeSessionUpsertOne) UpdateSolved() *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateSolved()
	})
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (u *PracticeSessionUpsertOne) SetTimeSpentMinutes(v int) *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetTimeSpentMinutes(v)
	})
}

// AddTimeSpentMinutes adds v to the "time_spent_minutes" field.
func (u *PracticeSessionUpsertOne) AddTimeSpentMinutes(v int) *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.AddTimeSpentMinutes(v)
	})
}

// UpdateTimeSpentMinutes sets the "time_spent_minutes" field to the value that was provided on create.
func (u *PracticeSessionUpsertOne) UpdateTimeSpentMinutes() *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateTimeSpentMinutes()
	})
}

// SetCodeSubmitted sets the "code_submitted" field.
func (u *PracticeSessionUpsertOne) SetCodeSubmitted(v string) *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetCodeSubmitted(v)
	})
}

// UpdateCodeSubmitted sets the "code_submitted" field to the value that was provided on create.
func (u *PracticeSessionUpsertOne) UpdateCodeSubmitted() *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateCodeSubmitted()
	})
}

// ClearCodeSubmitted clears the value of the "code_submitted" field.
func (u *PracticeSessionUpsertOne) ClearCodeSubmitted() *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.ClearCodeSubmitted()
	})
}

// SetNotes sets the "notes" field.
func (u *PracticeSessionUpsertOne) SetNotes(v string) *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PracticeSessionUpsertOne) UpdateNotes() *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PracticeSessionUpsertOne) ClearNotes() *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.ClearNotes()
	})
}

// SetSolvedAt sets the "solved_at" field.
func (u *PracticeSessionUpsertOne) SetSolvedAt(v time.Time) *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetSolvedAt(v)
	})
}

// UpdateSolvedAt sets the "solved_at" field to the value that was provided on create.
func (u *PracticeSessionUpsertOne) UpdateSolvedAt() *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateSolvedAt()
	})
}

// ClearSolvedAt clears the value of the "solved_at" field.
func (u *PracticeSessionUpsertOne) ClearSolvedAt() *PracticeSessionUpsertOne {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.ClearSolvedAt()
	})
}

// Exec executes the query.
func (u *PracticeSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PracticeSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PracticeSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PracticeSessionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PracticeSessionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PracticeSessionCreateBulk is the builder for creating many PracticeSession entities in bulk.
type PracticeSessionCreateBulk struct {
	config
	err      error
	builders []*PracticeSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the PracticeSession entities in the database.
func (_c *PracticeSessionCreateBulk) Save(ctx context.Context) ([]*PracticeSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeSessionMutation)
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
func (_c *PracticeSessionCreateBulk) SaveX(ctx context.Context) []*PracticeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PracticeSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PracticeSessionUpsert) {
//			SetUID(v+v).
//		}).
//		Exec(ctx)
func (_c *PracticeSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PracticeSessionUpsertBulk {
	_c.conflict = opts
	return &PracticeSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PracticeSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PracticeSessionCreateBulk) OnConflictColumns(columns ...string) *PracticeSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PracticeSessionUpsertBulk{
		create: _c,
	}
}

// PracticeSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of PracticeSession nodes.
type PracticeSessionUpsertBulk struct {
	create *PracticeSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PracticeSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PracticeSessionUpsertBulk) UpdateNewValues() *PracticeSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UID(); exists {
				s.SetIgnore(practicesession.FieldUID)
			}
			if _, exists := b.mutation.AttemptedAt(); exists {
				s.SetIgnore(practicesession.FieldAttemptedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PracticeSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PracticeSessionUpsertBulk) Ignore() *PracticeSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PracticeSessionUpsertBulk) DoNothing() *PracticeSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PracticeSessionCreateBulk.OnConflict
// documentation for more info.
func (u *PracticeSessionUpsertBulk) Update(set func(*PracticeSessionUpsert)) *PracticeSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PracticeSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PracticeSessionUpsertBulk) SetUserID(v int) *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *PracticeSessionUpsertBulk) AddUserID(v int) *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PracticeSessionUpsertBulk) UpdateUserID() *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateUserID()
	})
}

// SetTopic sets the "topic" field.
func (u *PracticeSessionUpsertBulk) SetTopic(v string) *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *PracticeSessionUpsertBulk) UpdateTopic() *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateTopic()
	})
}

// SetProblemName sets the "problem_name" field.
func (u *PracticeSessionUpsertBulk) SetProblemName(v string) *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetProblemName(v)
	})
}

// UpdateProblemName sets the "problem_name" field to the value that was provided on create.
func (u *PracticeSessionUpsertBulk) UpdateProblemName() *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateProblemName()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *PracticeSessionUpsertBulk) SetDifficulty(v string) *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *PracticeSessionUpsertBulk) UpdateDifficulty() *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateDifficulty()
	})
}

// SetSolved sets the "solved" field.
func (u *PracticeSessionUpsertBulk) SetSolved(v bool) *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetSolved(v)
	})
}

// UpdateSolved sets the "solved" field to the value that was provided on create.
func (u *PracticeSessionUpsertBulk) UpdateSolved() *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateSolved()
	})
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (u *PracticeSessionUpsertBulk) SetTimeSpentMinutes(v int) *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetTimeSpentMinutes(v)
	})
}

// AddTimeSpentMinutes adds v to the "time_spent_minutes" field.
func (u *PracticeSessionUpsertBulk) AddTimeSpentMinutes(v int) *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.AddTimeSpentMinutes(v)
	})
}

// UpdateTimeSpentMinutes sets the "time_spent_minutes" field to the value that was provided on create.
func (u *PracticeSessionUpsertBulk) UpdateTimeSpentMinutes() *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateTimeSpentMinutes()
	})
}

// SetCodeSubmitted sets the "code_submitted" field.
func (u *PracticeSessionUpsertBulk) SetCodeSubmitted(v string) *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetCodeSubmitted(v)
	})
}

// UpdateCodeSubmitted sets the "code_submitted" field to the value that was provided on create.
func (u *PracticeSessionUpsertBulk) UpdateCodeSubmitted() *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateCodeSubmitted()
	})
}

// ClearCodeSubmitted clears the value of the "code_submitted" field.
func (u *PracticeSessionUpsertBulk) ClearCodeSubmitted() *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.ClearCodeSubmitted()
	})
}

// SetNotes sets the "notes" field.
func (u *PracticeSessionUpsertBulk) SetNotes(v string) *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PracticeSessionUpsertBulk) UpdateNotes() *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PracticeSessionUpsertBulk) ClearNotes() *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.ClearNotes()
	})
}

// SetSolvedAt sets the "solved_at" field.
func (u *PracticeSessionUpsertBulk) SetSolvedAt(v time.Time) *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.SetSolvedAt(v)
	})
}

// UpdateSolvedAt sets the "solved_at" field to the value that was provided on create.
func (u *PracticeSessionUpsertBulk) UpdateSolvedAt() *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.UpdateSolvedAt()
	})
}

// ClearSolvedAt clears the value of the "solved_at" field.
func (u *PracticeSessionUpsertBulk) ClearSolvedAt() *PracticeSessionUpsertBulk {
	return u.Update(func(s *PracticeSessionUpsert) {
		s.ClearSolvedAt()
	})
}

// Exec executes the query.
func (u *PracticeSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PracticeSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PracticeSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PracticeSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
