// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepmate/ent/predicate"
	"github.com/abhisek/prepmate/ent/questionattempt"
)

// QuestionAttemptUpdate is the builder for updating QuestionAttempt entities.
type QuestionAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionAttemptMutation
}

// Where appends a list predicates to the QuestionAttemptUpdate builder.
func (_u *QuestionAttemptUpdate) Where(ps ...predicate.QuestionAttempt) *QuestionAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuestionAttemptUpdate) SetUserID(v int) *QuestionAttemptUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuestionAttemptUpdate) SetNillableUserID(v *int) *QuestionAttemptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *QuestionAttemptUpdate) AddUserID(v int) *QuestionAttemptUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionAttemptUpdate) SetQuestionID(v int) *QuestionAttemptUpdate {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionAttemptUpdate) SetNillableQuestionID(v *int) *QuestionAttemptUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *QuestionAttemptUpdate) AddQuestionID(v int) *QuestionAttemptUpdate {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuestionAttemptUpdate) SetAnswer(v string) *QuestionAttemptUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuestionAttemptUpdate) SetNillableAnswer(v *string) *QuestionAttemptUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *QuestionAttemptUpdate) SetIsCorrect(v bool) *QuestionAttemptUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *QuestionAttemptUpdate) SetNillableIsCorrect(v *bool) *QuestionAttemptUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (_u *QuestionAttemptUpdate) ClearIsCorrect() *QuestionAttemptUpdate {
	_u.mutation.ClearIsCorrect()
	return _u
}

// SetScore sets the "score" field.
func (_u *QuestionAttemptUpdate) SetScore(v float64) *QuestionAttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuestionAttemptUpdate) SetNillableScore(v *float64) *QuestionAttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuestionAttemptUpdate) AddScore(v float64) *QuestionAttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *QuestionAttemptUpdate) ClearScore() *QuestionAttemptUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetTimeTaken sets the "time_taken" field.
func (_u *QuestionAttemptUpdate) SetTimeTaken(v int) *QuestionAttemptUpdate {
	_u.mutation.ResetTimeTaken()
	_u.mutation.SetTimeTaken(v)
	return _u
}

// SetNillableTimeTaken sets the "time_taken" field if the given value is not nil.
func (_u *QuestionAttemptUpdate) SetNillableTimeTaken(v *int) *QuestionAttemptUpdate {
	if v != nil {
		_u.SetTimeTaken(*v)
	}
	return _u
}

// AddTimeTaken adds value to the "time_taken" field.
func (_u *QuestionAttemptUpdate) AddTimeTaken(v int) *QuestionAttemptUpdate {
	_u.mutation.AddTimeTaken(v)
	return _u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_u *QuestionAttemptUpdate) SetConfidenceLevel(v int) *QuestionAttemptUpdate {
	_u.mutation.ResetConfidenceLevel()
	_u.mutation.SetConfidenceLevel(v)
	return _u
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_u *QuestionAttemptUpdate) SetNillableConfidenceLevel(v *int) *QuestionAttemptUpdate {
	if v != nil {
		_u.SetConfidenceLevel(*v)
	}
	return _u
}

// AddConfidenceLevel adds value to the "confidence_level" field.
func (_u *QuestionAttemptUpdate) AddConfidenceLevel(v int) *QuestionAttemptUpdate {
	_u.mutation.AddConfidenceLevel(v)
	return _u
}

// Mutation returns the QuestionAttemptMutation object of the builder.
func (_u *QuestionAttemptUpdate) Mutation() *QuestionAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuestionAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(questionattempt.Table, questionattempt.Columns, sqlgraph.NewFieldSpec(questionattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(questionattempt.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(questionattempt.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(questionattempt.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(questionattempt.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(questionattempt.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(questionattempt.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.IsCorrectCleared() {
		_spec.ClearField(questionattempt.FieldIsCorrect, field.TypeBool)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(questionattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(questionattempt.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(questionattempt.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TimeTaken(); ok {
		_spec.SetField(questionattempt.FieldTimeTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTaken(); ok {
		_spec.AddField(questionattempt.FieldTimeTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConfidenceLevel(); ok {
		_spec.SetField(questionattempt.FieldConfidenceLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceLevel(); ok {
		_spec.AddField(questionattempt.FieldConfidenceLevel, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionAttemptUpdateOne is the builder for updating a single QuestionAttempt entity.
type QuestionAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionAttemptMutation
}

// SetUserID sets the "user_id" field.
func (_u *QuestionAttemptUpdateOne) SetUserID(v int) *QuestionAttemptUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuestionAttemptUpdateOne) SetNillableUserID(v *int) *QuestionAttemptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *QuestionAttemptUpdateOne) AddUserID(v int) *QuestionAttemptUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionAttemptUpdateOne) SetQuestionID(v int) *QuestionAttemptUpdateOne {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionAttemptUpdateOne) SetNillableQuestionID(v *int) *QuestionAttemptUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *QuestionAttemptUpdateOne) AddQuestionID(v int) *QuestionAttemptUpdateOne {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuestionAttemptUpdateOne) SetAnswer(v string) *QuestionAttemptUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuestionAttemptUpdateOne) SetNillableAnswer(v *string) *QuestionAttemptUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *QuestionAttemptUpdateOne) SetIsCorrect(v bool) *QuestionAttemptUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *QuestionAttemptUpdateOne) SetNillableIsCorrect(v *bool) *QuestionAttemptUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (_u *QuestionAttemptUpdateOne) ClearIsCorrect() *QuestionAttemptUpdateOne {
	_u.mutation.ClearIsCorrect()
	return _u
}

// SetScore sets the "score" field.
func (_u *QuestionAttemptUpdateOne) SetScore(v float64) *QuestionAttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuestionAttemptUpdateOne) SetNillableScore(v *float64) *QuestionAttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuestionAttemptUpdateOne) AddScore(v float64) *QuestionAttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *QuestionAttemptUpdateOne) ClearScore() *QuestionAttemptUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetTimeTaken sets the "time_taken" field.
func (_u *QuestionAttemptUpdateOne) SetTimeTaken(v int) *QuestionAttemptUpdateOne {
	_u.mutation.ResetTimeTaken()
	_u.mutation.SetTimeTaken(v)
	return _u
}

// SetNillableTimeTaken sets the "time_taken" field if the given value is not nil.
func (_u *QuestionAttemptUpdateOne) SetNillableTimeTaken(v *int) *QuestionAttemptUpdateOne {
	if v != nil {
		_u.SetTimeTaken(*v)
	}
	return _u
}

// AddTimeTaken adds value to the "time_taken" field.
func (_u *QuestionAttemptUpdateOne) AddTimeTaken(v int) *QuestionAttemptUpdateOne {
	_u.mutation.AddTimeTaken(v)
	return _u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_u *QuestionAttemptUpdateOne) SetConfidenceLevel(v int) *QuestionAttemptUpdateOne {
	_u.mutation.ResetConfidenceLevel()
	_u.mutation.SetConfidenceLevel(v)
	return _u
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_u *QuestionAttemptUpdateOne) SetNillableConfidenceLevel(v *int) *QuestionAttemptUpdateOne {
	if v != nil {
		_u.SetConfidenceLevel(*v)
	}
	return _u
}

// AddConfidenceLevel adds value to the "confidence_level" field.
func (_u *QuestionAttemptUpdateOne) AddConfidenceLevel(v int) *QuestionAttemptUpdateOne {
	_u.mutation.AddConfidenceLevel(v)
	return _u
}

// Mutation returns the QuestionAttemptMutation object of the builder.
func (_u *QuestionAttemptUpdateOne) Mutation() *QuestionAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionAttemptUpdate builder.
func (_u *QuestionAttemptUpdateOne) Where(ps ...predicate.QuestionAttempt) *QuestionAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionAttemptUpdateOne) Select(field string, fields ...string) *QuestionAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionAttempt entity.
func (_u *QuestionAttemptUpdateOne) Save(ctx context.Context) (*QuestionAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionAttemptUpdateOne) SaveX(ctx context.Context) *QuestionAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuestionAttemptUpdateOne) sqlSave(ctx context.Context) (_node *QuestionAttempt, err error) {
	_spec := sqlgraph.NewUpdateSpec(questionattempt.Table, questionattempt.Columns, sqlgraph.NewFieldSpec(questionattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionattempt.FieldID)
		for _, f := range fields {
			if !questionattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionattempt.FieldID {
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
		_spec.SetField(questionattempt.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(questionattempt.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(questionattempt.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(questionattempt.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(questionattempt.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(questionattempt.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.IsCorrectCleared() {
		_spec.ClearField(questionattempt.FieldIsCorrect, field.TypeBool)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(questionattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(questionattempt.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(questionattempt.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TimeTaken(); ok {
		_spec.SetField(questionattempt.FieldTimeTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTaken(); ok {
		_spec.AddField(questionattempt.FieldTimeTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConfidenceLevel(); ok {
		_spec.SetField(questionattempt.FieldConfidenceLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceLevel(); ok {
		_spec.AddField(questionattempt.FieldConfidenceLevel, field.TypeInt, value)
	}
	_node = &QuestionAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
