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
	"github.com/abhisek/prepmate/ent/predicate"
)

// PracticeSessionUpdate is the builder for updating PracticeSession entities.
type PracticeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdate) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PracticeSessionUpdate) SetUserID(v int) *PracticeSessionUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableUserID(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *PracticeSessionUpdate) AddUserID(v int) *PracticeSessionUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PracticeSessionUpdate) SetTopic(v string) *PracticeSessionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableTopic(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetProblemName sets the "problem_name" field.
func (_u *PracticeSessionUpdate) SetProblemName(v string) *PracticeSessionUpdate {
	_u.mutation.SetProblemName(v)
	return _u
}

// SetNillableProblemName sets the "problem_name" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableProblemName(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetProblemName(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PracticeSessionUpdate) SetDifficulty(v string) *PracticeSessionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableDifficulty(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSolved sets the "solved" field.
func (_u *PracticeSessionUpdate) SetSolved(v bool) *PracticeSessionUpdate {
	_u.mutation.SetSolved(v)
	return _u
}

// SetNillableSolved sets the "solved" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableSolved(v *bool) *PracticeSessionUpdate {
	if v != nil {
		_u.SetSolved(*v)
	}
	return _u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_u *PracticeSessionUpdate) SetTimeSpentMinutes(v int) *PracticeSessionUpdate {
	_u.mutation.ResetTimeSpentMinutes()
	_u.mutation.SetTimeSpentMinutes(v)
	return _u
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableTimeSpentMinutes(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetTimeSpentMinutes(*v)
	}
	return _u
}

// AddTimeSpentMinutes adds value to the "time_spent_minutes" field.
func (_u *PracticeSessionUpdate) AddTimeSpentMinutes(v int) *PracticeSessionUpdate {
	_u.mutation.AddTimeSpentMinutes(v)
	return _u
}

// SetCodeSubmitted sets the "code_submitted" field.
func (_u *PracticeSessionUpdate) SetCodeSubmitted(v string) *PracticeSessionUpdate {
	_u.mutation.SetCodeSubmitted(v)
	return _u
}

// SetNillableCodeSubmitted sets the "code_submitted" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableCodeSubmitted(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetCodeSubmitted(*v)
	}
	return _u
}

// ClearCodeSubmitted clears the value of the "code_submitted" field.
func (_u *PracticeSessionUpdate) ClearCodeSubmitted() *PracticeSessionUpdate {
	_u.mutation.ClearCodeSubmitted()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PracticeSessionUpdate) SetNotes(v string) *PracticeSessionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableNotes(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PracticeSessionUpdate) ClearNotes() *PracticeSessionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetSolvedAt sets the "solved_at" field.
func (_u *PracticeSessionUpdate) SetSolvedAt(v time.Time) *PracticeSessionUpdate {
	_u.mutation.SetSolvedAt(v)
	return _u
}

// SetNillableSolvedAt sets the "solved_at" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableSolvedAt(v *time.Time) *PracticeSessionUpdate {
	if v != nil {
		_u.SetSolvedAt(*v)
	}
	return _u
}

// ClearSolvedAt clears the value of the "solved_at" field.
func (_u *PracticeSessionUpdate) ClearSolvedAt() *PracticeSessionUpdate {
	_u.mutation.ClearSolvedAt()
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdate) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := practicesession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemName(); ok {
		if err := practicesession.ProblemNameValidator(v); err != nil {
			return &ValidationError{Name: "problem_name", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.problem_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := practicesession.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(practicesession.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(practicesession.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(practicesession.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemName(); ok {
		_spec.SetField(practicesession.FieldProblemName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(practicesession.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Solved(); ok {
		_spec.SetField(practicesession.FieldSolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(practicesession.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(practicesession.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CodeSubmitted(); ok {
		_spec.SetField(practicesession.FieldCodeSubmitted, field.TypeString, value)
	}
	if _u.mutation.CodeSubmittedCleared() {
		_spec.ClearField(practicesession.FieldCodeSubmitted, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(practicesession.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(practicesession.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.SolvedAt(); ok {
		_spec.SetField(practicesession.FieldSolvedAt, field.TypeTime, value)
	}
	if _u.mutation.SolvedAtCleared() {
		_spec.ClearField(practicesession.FieldSolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeSessionUpdateOne is the builder for updating a single PracticeSession entity.
type PracticeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *PracticeSessionUpdateOne) SetUserID(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableUserID(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *PracticeSessionUpdateOne) AddUserID(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PracticeSessionUpdateOne) SetTopic(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableTopic(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetProblemName sets the "problem_name" field.
func (_u *PracticeSessionUpdateOne) SetProblemName(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetProblemName(v)
	return _u
}

// SetNillableProblemName sets the "problem_name" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableProblemName(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetProblemName(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PracticeSessionUpdateOne) SetDifficulty(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableDifficulty(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSolved sets the "solved" field.
func (_u *PracticeSessionUpdateOne) SetSolved(v bool) *PracticeSessionUpdateOne {
	_u.mutation.SetSolved(v)
	return _u
}

// SetNillableSolved sets the "solved" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableSolved(v *bool) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetSolved(*v)
	}
	return _u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_u *PracticeSessionUpdateOne) SetTimeSpentMinutes(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetTimeSpentMinutes()
	_u.mutation.SetTimeSpentMinutes(v)
	return _u
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableTimeSpentMinutes(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetTimeSpentMinutes(*v)
	}
	return _u
}

// AddTimeSpentMinutes adds value to the "time_spent_minutes" field.
func (_u *PracticeSessionUpdateOne) AddTimeSpentMinutes(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddTimeSpentMinutes(v)
	return _u
}

// SetCodeSubmitted sets the "code_submitted" field.
func (_u *PracticeSessionUpdateOne) SetCodeSubmitted(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetCodeSubmitted(v)
	return _u
}

// SetNillableCodeSubmitted sets the "code_submitted" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableCodeSubmitted(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetCodeSubmitted(*v)
	}
	return _u
}

// ClearCodeSubmitted clears the value of the "code_submitted" field.
func (_u *PracticeSessionUpdateOne) ClearCodeSubmitted() *PracticeSessionUpdateOne {
	_u.mutation.ClearCodeSubmitted()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PracticeSessionUpdateOne) SetNotes(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableNotes(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PracticeSessionUpdateOne) ClearNotes() *PracticeSessionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetSolvedAt sets the "solved_at" field.
func (_u *PracticeSessionUpdateOne) SetSolvedAt(v time.Time) *PracticeSessionUpdateOne {
	_u.mutation.SetSolvedAt(v)
	return _u
}

// SetNillableSolvedAt sets the "solved_at" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableSolvedAt(v *time.Time) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetSolvedAt(*v)
	}
	return _u
}

// ClearSolvedAt clears the value of the "solved_at" field.
func (_u *PracticeSessionUpdateOne) ClearSolvedAt() *PracticeSessionUpdateOne {
	_u.mutation.ClearSolvedAt()
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdateOne) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdateOne) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeSessionUpdateOne) Select(field string, fields ...string) *PracticeSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeSession entity.
func (_u *PracticeSessionUpdateOne) Save(ctx context.Context) (*PracticeSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) SaveX(ctx context.Context) *PracticeSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := practicesession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemName(); ok {
		if err := practicesession.ProblemNameValidator(v); err != nil {
			return &ValidationError{Name: "problem_name", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.problem_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := practicesession.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdateOne) sqlSave(ctx context.Context) (_node *PracticeSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesession.FieldID)
		for _, f := range fields {
			if !practicesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicesession.FieldID {
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
		_spec.SetField(practicesession.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(practicesession.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(practicesession.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemName(); ok {
		_spec.SetField(practicesession.FieldProblemName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(practicesession.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Solved(); ok {
		_spec.SetField(practicesession.FieldSolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(practicesession.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(practicesession.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CodeSubmitted(); ok {
		_spec.SetField(practicesession.FieldCodeSubmitted, field.TypeString, value)
	}
	if _u.mutation.CodeSubmittedCleared() {
		_spec.ClearField(practicesession.FieldCodeSubmitted, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(practicesession.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(practicesession.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.SolvedAt(); ok {
		_spec.SetField(practicesession.FieldSolvedAt, field.TypeTime, value)
	}
	if _u.mutation.SolvedAtCleared() {
		_spec.ClearField(practicesession.FieldSolvedAt, field.TypeTime)
	}
	_node = &PracticeSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
