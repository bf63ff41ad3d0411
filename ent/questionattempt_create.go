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
	"github.com/abhisek/prepmate/ent/questionattempt"
)

// QuestionAttemptCreate is the builder for creating a QuestionAttempt entity.
type QuestionAttemptCreate struct {
	config
	mutation *QuestionAttemptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUID sets the "uid" field.
func (_c *QuestionAttemptCreate) SetUID(v string) *QuestionAttemptCreate {
	_c.mutation.SetUID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *QuestionAttemptCreate) SetUserID(v int) *QuestionAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *QuestionAttemptCreate) SetQuestionID(v int) *QuestionAttemptCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *QuestionAttemptCreate) SetAnswer(v string) *QuestionAttemptCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *QuestionAttemptCreate) SetIsCorrect(v bool) *QuestionAttemptCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_c *QuestionAttemptCreate) SetNillableIsCorrect(v *bool) *QuestionAttemptCreate {
	if v != nil {
		_c.SetIsCorrect(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *QuestionAttemptCreate) SetScore(v float64) *QuestionAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *QuestionAttemptCreate) SetNillableScore(v *float64) *QuestionAttemptCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetTimeTaken sets the "time_taken" field.
func (_c *QuestionAttemptCreate) SetTimeTaken(v int) *QuestionAttemptCreate {
	_c.mutation.SetTimeTaken(v)
	return _c
}

// SetNillableTimeTaken sets the "time_taken" field if the given value is not nil.
func (_c *QuestionAttemptCreate) SetNillableTimeTaken(v *int) *QuestionAttemptCreate {
	if v != nil {
		_c.SetTimeTaken(*v)
	}
	return _c
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_c *QuestionAttemptCreate) SetConfidenceLevel(v int) *QuestionAttemptCreate {
	_c.mutation.SetConfidenceLevel(v)
	return _c
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_c *QuestionAttemptCreate) SetNillableConfidenceLevel(v *int) *QuestionAttemptCreate {
	if v != nil {
		_c.SetConfidenceLevel(*v)
	}
	return _c
}

// SetAttemptedAt sets the "attempted_at" field.
func (_c *QuestionAttemptCreate) SetAttemptedAt(v time.Time) *QuestionAttemptCreate {
	_c.mutation.SetAttemptedAt(v)
	return _c
}

// SetNillableAttemptedAt sets the "attempted_at" field if the given value is not nil.
func (_c *QuestionAttemptCreate) SetNillableAttemptedAt(v *time.Time) *QuestionAttemptCreate {
	if v != nil {
		_c.SetAttemptedAt(*v)
	}
	return _c
}

// Mutation returns the QuestionAttemptMutation object of the builder.
func (_c *QuestionAttemptCreate) Mutation() *QuestionAttemptMutation {
	return _c.mutation
}

// Save creates the QuestionAttempt in the database.
func (_c *QuestionAttemptCreate) Save(ctx context.Context) (*QuestionAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionAttemptCreate) SaveX(ctx context.Context) *QuestionAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionAttemptCreate) defaults() {
	if _, ok := _c.mutation.TimeTaken(); !ok {
		v := questionattempt.DefaultTimeTaken
		_c.mutation.SetTimeTaken(v)
	}
	if _, ok := _c.mutation.ConfidenceLevel(); !ok {
		v := questionattempt.DefaultConfidenceLevel
		_c.mutation.SetConfidenceLevel(v)
	}
	if _, ok := _c.mutation.AttemptedAt(); !ok {
		v := questionattempt.DefaultAttemptedAt()
		_c.mutation.SetAttemptedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionAttemptCreate) check() error {
	if _, ok := _c.mutation.UID(); !ok {
		return &ValidationError{Name: "uid", err: errors.New(`ent: missing required field "QuestionAttempt.uid"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuestionAttempt.user_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuestionAttempt.question_id"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "QuestionAttempt.answer"`)}
	}
	if _, ok := _c.mutation.TimeTaken(); !ok {
		return &ValidationError{Name: "time_taken", err: errors.New(`ent: missing required field "QuestionAttempt.time_taken"`)}
	}
	if _, ok := _c.mutation.ConfidenceLevel(); !ok {
		return &ValidationError{Name: "confidence_level", err: errors.New(`ent: missing required field "QuestionAttempt.confidence_level"`)}
	}
	if _, ok := _c.mutation.AttemptedAt(); !ok {
		return &ValidationError{Name: "attempted_at", err: errors.New(`ent: missing required field "QuestionAttempt.attempted_at"`)}
	}
	return nil
}

func (_c *QuestionAttemptCreate) sqlSave(ctx context.Context) (*QuestionAttempt, error) {
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

func (_c *QuestionAttemptCreate) createSpec() (*QuestionAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionattempt.Table, sqlgraph.NewFieldSpec(questionattempt.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UID(); ok {
		_spec.SetField(questionattempt.FieldUID, field.TypeString, value)
		_node.UID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(questionattempt.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(questionattempt.FieldQuestionID, field.TypeInt, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(questionattempt.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(questionattempt.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(questionattempt.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.TimeTaken(); ok {
		_spec.SetField(questionattempt.FieldTimeTaken, field.TypeInt, value)
		_node.TimeTaken = value
	}
	if value, ok := _c.mutation.ConfidenceLevel(); ok {
		_spec.SetField(questionattempt.FieldConfidenceLevel, field.TypeInt, value)
		_node.ConfidenceLevel = value
	}
	if value, ok := _c.mutation.AttemptedAt(); ok {
		_spec.SetField(questionattempt.FieldAttemptedAt, field.TypeTime, value)
		_node.AttemptedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionAttempt.Create().
//		SetUID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionAttemptUpsert) {
//			SetUID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionAttemptCreate) OnConflict(opts ...sql.ConflictOption) *QuestionAttemptUpsertOne {
	_c.conflict = opts
	return &QuestionAttemptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionAttemptCreate) OnConflictColumns(columns ...string) *QuestionAttemptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionAttemptUpsertOne{
		create: _c,
	}
}

type (
	// QuestionAttemptUpsertOne is the builder for "upsert"-ing
	//  one QuestionAttempt node.
	QuestionAttemptUpsertOne struct {
		create *QuestionAttemptCreate
	}

	// QuestionAttemptUpsert is the "OnConflict" setter.
	QuestionAttemptUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *QuestionAttemptUpsert) SetUserID(v int) *QuestionAttemptUpsert {
	u.Set(questionattempt.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *QuestionAttemptUpsert) UpdateUserID() *QuestionAttemptUpsert {
	u.SetExcluded(questionattempt.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *QuestionAttemptUpsert) AddUserID(v int) *QuestionAttemptUpsert {
	u.Add(questionattempt.FieldUserID, v)
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *QuestionAttemptUpsert) SetQuestionID(v int) *QuestionAttemptUpsert {
	u.Set(questionattempt.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *QuestionAttemptUpsert) UpdateQuestionID() *QuestionAttemptUpsert {
	u.SetExcluded(questionattempt.FieldQuestionID)
	return u
}

// AddQuestionID adds v to the "question_id" field.
func (u *QuestionAttemptUpsert) AddQuestionID(v int) *QuestionAttemptUpsert {
	u.Add(questionattempt.FieldQuestionID, v)
	return u
}

// SetAnswer sets the "answer" field.
func (u *QuestionAttemptUpsert) SetAnswer(v string) *QuestionAttemptUpsert {
	u.Set(questionattempt.FieldAnswer, v)
	return u
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *QuestionAttemptUpsert) UpdateAnswer() *QuestionAttemptUpsert {
	u.SetExcluded(questionattempt.FieldAnswer)
	return u
}

// SetIsCorrect sets the "is_correct" field.
func (u *QuestionAttemptUpsert) SetIsCorrect(v bool) *QuestionAttemptUpsert {
	u.Set(questionattempt.FieldIsCorrect, v)
	return u
}

// UpdateIsCorrect sets the "is_correct" field to the value that was provided on create.
func (u *QuestionAttemptUpsert) UpdateIsCorrect() *QuestionAttemptUpsert {
	u.SetExcluded(questionattempt.FieldIsCorrect)
	return u
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (u *QuestionAttemptUpsert) ClearIsCorrect() *QuestionAttemptUpsert {
	u.SetNull(questionattempt.FieldIsCorrect)
	return u
}

// SetScore sets the "score" field.
func (u *QuestionAttemptUpsert) SetScore(v float64) *QuestionAttemptUpsert {
	u.Set(questionattempt.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *QuestionAttemptUpsert) UpdateScore() *QuestionAttemptUpsert {
	u.SetExcluded(questionattempt.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *QuestionAttemptUpsert) AddScore(v float64) *QuestionAttemptUpsert {
	u.Add(questionattempt.FieldScore, v)
	return u
}

// ClearScore clears the value of the "score" field.
func (u *QuestionAttemptUpsert) ClearScore() *QuestionAttemptUpsert {
	u.SetNull(questionattempt.FieldScore)
	return u
}

// SetTimeTaken sets the "time_taken" field.
func (u *QuestionAttemptUpsert) SetTimeTaken(v int) *QuestionAttemptUpsert {
	u.Set(questionattempt.FieldTimeTaken, v)
	return u
}

// UpdateTimeTaken sets the "time_taken" field to the value that was provided on create.
func (u *QuestionAttemptUpsert) UpdateTimeTaken() *QuestionAttemptUpsert {
	u.SetExcluded(questionattempt.FieldTimeTaken)
	return u
}

// AddTimeTaken adds v to the "time_taken" field.
func (u *QuestionAttemptUpsert) AddTimeTaken(v int) *QuestionAttemptUpsert {
	u.Add(questionattempt.FieldTimeTaken, v)
	return u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (u *QuestionAttemptUpsert) SetConfidenceLevel(v int) *QuestionAttemptUpsert {
	u.Set(questionattempt.FieldConfidenceLevel, v)
	return u
}

// UpdateConfidenceLevel sets the "confidence_level" field to the value that was provided on create.
func (u *QuestionAttemptUpsert) UpdateConfidenceLevel() *QuestionAttemptUpsert {
	u.SetExcluded(questionattempt.FieldConfidenceLevel)
	return u
}

// AddConfidenceLevel adds v to the "confidence_level" field.
func (u *QuestionAttemptUpsert) AddConfidenceLevel(v int) *QuestionAttemptUpsert {
	u.Add(questionattempt.FieldConfidenceLevel, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.QuestionAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionAttemptUpsertOne) UpdateNewValues() *QuestionAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UID(); exists {
			s.SetIgnore(questionattempt.FieldUID)
		}
		if _, exists := u.create.mutation.AttemptedAt(); exists {
			s.SetIgnore(questionattempt.FieldAttemptedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionAttempt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionAttemptUpsertOne) Ignore() *QuestionAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionAttemptUpsertOne) DoNothing() *QuestionAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionAttemptCreate.OnConflict
// documentation for more info.
func (u *QuestionAttemptUpsertOne) Update(set func(*QuestionAttemptUpsert)) *QuestionAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *QuestionAttemptUpsertOne) SetUserID(v int) *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *QuestionAttemptUpsertOne) AddUserID(v int) *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *QuestionAttemptUpsertOne) UpdateUserID() *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.UpdateUserID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *QuestionAttemptUpsertOne) SetQuestionID(v int) *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.SetQuestionID(v)
	})
}

// AddQuestionID adds v to the "question_id" field.
func (u *QuestionAttemptUpsertOne) AddQuestionID(v int) *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.AddQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *QuestionAttemptUpsertOne) UpdateQuestionID() *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.UpdateQuestionID()
	})
}

// SetAnswer sets the "answer" field.
func (u *QuestionAttemptUpsertOne) SetAnswer(v string) *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *QuestionAttemptUpsertOne) UpdateAnswer() *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.UpdateAnswer()
	})
}

// SetIsCorrect sets the "is_correct" field.
func (u *QuestionAttemptUpsertOne) SetIsCorrect(v bool) *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.SetIsCorrect(v)
	})
}

// UpdateIsCorrect sets the "is_correct" field to the value that was provided on create.
func (u *QuestionAttemptUpsertOne) UpdateIsCorrect() *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.UpdateIsCorrect()
	})
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (u *QuestionAttemptUpsertOne) ClearIsCorrect() *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.ClearIsCorrect()
	})
}

// SetScore sets the "score" field.
func (u *QuestionAttemptUpsertOne) SetScore(v float64) *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *QuestionAttemptUpsertOne) AddScore(v float64) *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *QuestionAttemptUpsertOne) UpdateScore() *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.UpdateScore()
	})
}

// ClearScore clears the value of the "score" field.
func (u *QuestionAttemptUpsertOne) ClearScore() *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.ClearScore()
	})
}

// SetTimeTaken sets the "time_taken" field.
func (u *QuestionAttemptUpsertOne) SetTimeTaken(v int) *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.SetTimeTaken(v)
	})
}

// AddTimeTaken adds v to the "time_taken" field.
func (u *QuestionAttemptUpsertOne) AddTimeTaken(v int) *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.AddTimeTaken(v)
	})
}

// UpdateTimeTaken sets the "time_taken" field to the value that was provided on create.
func (u *QuestionAttemptUpsertOne) UpdateTimeTaken() *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.UpdateTimeTaken()
	})
}

// SetConfidenceLevel sets the "confidence_level" field.
func (u *QuestionAttemptUpsertOne) SetConfidenceLevel(v int) *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.SetConfidenceLevel(v)
	})
}

// AddConfidenceLevel adds v to the "confidence_level" field.
func (u *QuestionAttemptUpsertOne) AddConfidenceLevel(v int) *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.AddConfidenceLevel(v)
	})
}

// UpdateConfidenceLevel sets the "confidence_level" field to the value that was provided on create.
func (u *QuestionAttemptUpsertOne) UpdateConfidenceLevel() *QuestionAttemptUpsertOne {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.UpdateConfidenceLevel()
	})
}

// Exec executes the query.
func (u *QuestionAttemptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionAttemptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionAttemptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionAttemptUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionAttemptUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionAttemptCreateBulk is the builder for creating many QuestionAttempt entities in bulk.
type QuestionAttemptCreateBulk struct {
	config
	err      error
	builders []*QuestionAttemptCreate
	conflict []sql.ConflictOption
}

// Save creates the QuestionAttempt entities in the database.
func (_c *QuestionAttemptCreateBulk) Save(ctx context.Context) ([]*QuestionAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionAttemptMutation)
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
func (_c *QuestionAttemptCreateBulk) SaveX(ctx context.Context) []*QuestionAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionAttempt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionAttemptUpsert) {
//			SetUID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionAttemptCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionAttemptUpsertBulk {
	_c.conflict = opts
	return &QuestionAttemptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionAttemptCreateBulk) OnConflictColumns(columns ...string) *QuestionAttemptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionAttemptUpsertBulk{
		create: _c,
	}
}

// QuestionAttemptUpsertBulk is the builder for "upsert"-ing
// a bulk of QuestionAttempt nodes.
type QuestionAttemptUpsertBulk struct {
	create *QuestionAttemptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuestionAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionAttemptUpsertBulk) UpdateNewValues() *QuestionAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UID(); exists {
				s.SetIgnore(questionattempt.FieldUID)
			}
			if _, exists := b.mutation.AttemptedAt(); exists {
				s.SetIgnore(questionattempt.FieldAttemptedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionAttempt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionAttemptUpsertBulk) Ignore() *QuestionAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionAttemptUpsertBulk) DoNothing() *QuestionAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionAttemptCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionAttemptUpsertBulk) Update(set func(*QuestionAttemptUpsert)) *QuestionAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *QuestionAttemptUpsertBulk) SetUserID(v int) *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *QuestionAttemptUpsertBulk) AddUserID(v int) *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *QuestionAttemptUpsertBulk) UpdateUserID() *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.UpdateUserID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *QuestionAttemptUpsertBulk) SetQuestionID(v int) *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.SetQuestionID(v)
	})
}

// AddQuestionID adds v to the "question_id" field.
func (u *QuestionAttemptUpsertBulk) AddQuestionID(v int) *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.AddQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *QuestionAttemptUpsertBulk) UpdateQuestionID() *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.UpdateQuestionID()
	})
}

// SetAnswer sets the "answer" field.
func (u *QuestionAttemptUpsertBulk) SetAnswer(v string) *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *QuestionAttemptUpsertBulk) UpdateAnswer() *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.UpdateAnswer()
	})
}

// SetIsCorrect sets the "is_correct" field.
func (u *QuestionAttemptUpsertBulk) SetIsCorrect(v bool) *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.SetIsCorrect(v)
	})
}

// UpdateIsCorrect sets the "is_correct" field to the value that was provided on create.
func (u *QuestionAttemptUpsertBulk) UpdateIsCorrect() *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.UpdateIsCorrect()
	})
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (u *QuestionAttemptUpsertBulk) ClearIsCorrect() *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.ClearIsCorrect()
	})
}

// SetScore sets the "score" field.
func (u *QuestionAttemptUpsertBulk) SetScore(v float64) *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *QuestionAttemptUpsertBulk) AddScore(v float64) *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *QuestionAttemptUpsertBulk) UpdateScore() *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.UpdateScore()
	})
}

// ClearScore clears the value of the "score" field.
func (u *QuestionAttemptUpsertBulk) ClearScore() *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.ClearScore()
	})
}

// SetTimeTaken sets the "time_taken" field.
func (u *QuestionAttemptUpsertBulk) SetTimeTaken(v int) *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.SetTimeTaken(v)
	})
}

// AddTimeTaken adds v to the "time_taken" field.
func (u *QuestionAttemptUpsertBulk) AddTimeTaken(v int) *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.AddTimeTaken(v)
	})
}

// UpdateTimeTaken sets the "time_taken" field to the value that was provided on create.
func (u *QuestionAttemptUpsertBulk) UpdateTimeTaken() *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.UpdateTimeTaken()
	})
}

// SetConfidenceLevel sets the "confidence_level" field.
func (u *QuestionAttemptUpsertBulk) SetConfidenceLevel(v int) *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.SetConfidenceLevel(v)
	})
}

// AddConfidenceLevel adds v to the "confidence_level" field.
func (u *QuestionAttemptUpsertBulk) AddConfidenceLevel(v int) *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.AddConfidenceLevel(v)
	})
}

// UpdateConfidenceLevel sets the "confidence_level" field to the value that was provided on create.
func (u *QuestionAttemptUpsertBulk) UpdateConfidenceLevel() *QuestionAttemptUpsertBulk {
	return u.Update(func(s *QuestionAttemptUpsert) {
		s.UpdateConfidenceLevel()
	})
}

// Exec executes the query.
func (u *QuestionAttemptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuestionAttemptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionAttemptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionAttemptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
