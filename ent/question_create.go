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
	"github.com/abhisek/prepmate/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTopicID sets the "topic_id" field.
func (_c *QuestionCreate) SetTopicID(v int) *QuestionCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *QuestionCreate) SetQuestionType(v string) *QuestionCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionCreate) SetDifficulty(v string) *QuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *QuestionCreate) SetQuestionText(v string) *QuestionCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetMarks sets the "marks" field.
func (_c *QuestionCreate) SetMarks(v int) *QuestionCreate {
	_c.mutation.SetMarks(v)
	return _c
}

// SetNillableMarks sets the "marks" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableMarks(v *int) *QuestionCreate {
	if v != nil {
		_c.SetMarks(*v)
	}
	return _c
}

// SetTimeLimit sets the "time_limit" field.
func (_c *QuestionCreate) SetTimeLimit(v int) *QuestionCreate {
	_c.mutation.SetTimeLimit(v)
	return _c
}

// SetNillableTimeLimit sets the "time_limit" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableTimeLimit(v *int) *QuestionCreate {
	if v != nil {
		_c.SetTimeLimit(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *QuestionCreate) SetPayload(v map[string]interface{}) *QuestionCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionCreate) SetCreatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCreatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.Marks(); !ok {
		v := question.DefaultMarks
		_c.mutation.SetMarks(v)
	}
	if _, ok := _c.mutation.TimeLimit(); !ok {
		v := question.DefaultTimeLimit
		_c.mutation.SetTimeLimit(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := question.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "Question.topic_id"`)}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "Question.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := question.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Question.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Question.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "Question.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := question.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Question.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Marks(); !ok {
		return &ValidationError{Name: "marks", err: errors.New(`ent: missing required field "Question.marks"`)}
	}
	if _, ok := _c.mutation.TimeLimit(); !ok {
		return &ValidationError{Name: "time_limit", err: errors.New(`ent: missing required field "Question.time_limit"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "Question.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Question.created_at"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(question.FieldTopicID, field.TypeInt, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(question.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.Marks(); ok {
		_spec.SetField(question.FieldMarks, field.TypeInt, value)
		_node.Marks = value
	}
	if value, ok := _c.mutation.TimeLimit(); ok {
		_spec.SetField(question.FieldTimeLimit, field.TypeInt, value)
		_node.TimeLimit = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(question.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.Create().
//		SetTopicID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetTopicID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertOne {
	_c.conflict = opts
	return &QuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflictColumns(columns ...string) *QuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertOne{
		create: _c,
	}
}

type (
	// QuestionUpsertOne is the builder for "upsert"-ing
	//  one Question node.
	QuestionUpsertOne struct {
		create *QuestionCreate
	}

	// QuestionUpsert is the "OnConflict" setter.
	QuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetTopicID sets the "topic_id" field.
func (u *QuestionUpsert) SetTopicID(v int) *QuestionUpsert {
	u.Set(question.FieldTopicID, v)
	return u
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateTopicID() *QuestionUpsert {
	u.SetExcluded(question.FieldTopicID)
	return u
}

// AddTopicID adds v to the "topic_id" field.
func (u *QuestionUpsert) AddTopicID(v int) *QuestionUpsert {
	u.Add(question.FieldTopicID, v)
	return u
}

// SetQuestionType sets the "question_type" field.
func (u *QuestionUpsert) SetQuestionType(v string) *QuestionUpsert {
	u.Set(question.FieldQuestionType, v)
	return u
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateQuestionType() *QuestionUpsert {
	u.SetExcluded(question.FieldQuestionType)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionUpsert) SetDifficulty(v string) *QuestionUpsert {
	u.Set(question.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateDifficulty() *QuestionUpsert {
	u.SetExcluded(question.FieldDifficulty)
	return u
}

// SetQuestionText sets the "question_text" field.
func (u *QuestionUpsert) SetQuestionText(v string) *QuestionUpsert {
	u.Set(question.FieldQuestionText, v)
	return u
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateQuestionText() *QuestionUpsert {
	u.SetExcluded(question.FieldQuestionText)
	return u
}

// SetMarks sets the "marks" field.
func (u *QuestionUpsert) SetMarks(v int) *QuestionUpsert {
	u.Set(question.FieldMarks, v)
	return u
}

// UpdateMarks sets the "marks" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateMarks() *QuestionUpsert {
	u.SetExcluded(question.FieldMarks)
	return u
}

// AddMarks adds v to the "marks" field.
func (u *QuestionUpsert) AddMarks(v int) *QuestionUpsert {
	u.Add(question.FieldMarks, v)
	return u
}

// SetTimeLimit sets the "time_limit" field.
func (u *QuestionUpsert) SetTimeLimit(v int) *QuestionUpsert {
	u.Set(question.FieldTimeLimit, v)
	return u
}

// UpdateTimeLimit sets the "time_limit" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateTimeLimit() *QuestionUpsert {
	u.SetExcluded(question.FieldTimeLimit)
	return u
}

// AddTimeLimit adds v to the "time_limit" field.
func (u *QuestionUpsert) AddTimeLimit(v int) *QuestionUpsert {
	u.Add(question.FieldTimeLimit, v)
	return u
}

// SetPayload sets the "payload" field.
func (u *QuestionUpsert) SetPayload(v map[string]interface{}) *QuestionUpsert {
	u.Set(question.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *QuestionUpsert) UpdatePayload() *QuestionUpsert {
	u.SetExcluded(question.FieldPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionUpsertOne) UpdateNewValues() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(question.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionUpsertOne) Ignore() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertOne) DoNothing() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreate.OnConflict
// documentation for more info.
func (u *QuestionUpsertOne) Update(set func(*QuestionUpsert)) *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTopicID sets the "topic_id" field.
func (u *QuestionUpsertOne) SetTopicID(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTopicID(v)
	})
}

// AddTopicID adds v to the "topic_id" field.
func (u *QuestionUpsertOne) AddTopicID(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.AddTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateTopicID() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTopicID()
	})
}

// SetQuestionType sets the "question_type" field.
func (u *QuestionUpsertOne) SetQuestionType(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQuestionType(v)
	})
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateQuestionType() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQuestionType()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionUpsertOne) SetDifficulty(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateDifficulty() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficulty()
	})
}

// SetQuestionText sets the "question_text" field.
func (u *QuestionUpsertOne) SetQuestionText(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateQuestionText() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQuestionText()
	})
}

// SetMarks sets the "marks" field.
func (u *QuestionUpsertOne) SetMarks(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetMarks(v)
	})
}

// AddMarks adds v to the "marks" field.
func (u *QuestionUpsertOne) AddMarks(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.AddMarks(v)
	})
}

// UpdateMarks sets the "marks" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateMarks() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateMarks()
	})
}

// SetTimeLimit sets the "time_limit" field.
func (u *QuestionUpsertOne) SetTimeLimit(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTimeLimit(v)
	})
}

// AddTimeLimit adds v to the "time_limit" field.
func (u *QuestionUpsertOne) AddTimeLimit(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.AddTimeLimit(v)
	})
}

// UpdateTimeLimit sets the "time_limit" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateTimeLimit() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTimeLimit()
	})
}

// SetPayload sets the "payload" field.
func (u *QuestionUpsertOne) SetPayload(v map[string]interface{}) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdatePayload() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *QuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetTopicID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertBulk {
	_c.conflict = opts
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflictColumns(columns ...string) *QuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// QuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of Question nodes.
type QuestionUpsertBulk struct {
	create *QuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionUpsertBulk) UpdateNewValues() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(question.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionUpsertBulk) Ignore() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertBulk) DoNothing() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionUpsertBulk) Update(set func(*QuestionUpsert)) *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTopicID sets the "topic_id" field.
func (u *QuestionUpsertBulk) SetTopicID(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTopicID(v)
	})
}

// AddTopicID adds v to the "topic_id" field.
func (u *QuestionUpsertBulk) AddTopicID(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.AddTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateTopicID() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTopicID()
	})
}

// SetQuestionType sets the "question_type" field.
func (u *QuestionUpsertBulk) SetQuestionType(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQuestionType(v)
	})
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateQuestionType() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQuestionType()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionUpsertBulk) SetDifficulty(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateDifficulty() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficulty()
	})
}

// SetQuestionText sets the "question_text" field.
func (u *QuestionUpsertBulk) SetQuestionText(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateQuestionText() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQuestionText()
	})
}

// SetMarks sets the "marks" field.
func (u *QuestionUpsertBulk) SetMarks(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetMarks(v)
	})
}

// AddMarks adds v to the "marks" field.
func (u *QuestionUpsertBulk) AddMarks(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.AddMarks(v)
	})
}

// UpdateMarks sets the "marks" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateMarks() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateMarks()
	})
}

// SetTimeLimit sets the "time_limit" field.
func (u *QuestionUpsertBulk) SetTimeLimit(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTimeLimit(v)
	})
}

// AddTimeLimit adds v to the "time_limit" field.
func (u *QuestionUpsertBulk) AddTimeLimit(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.AddTimeLimit(v)
	})
}

// UpdateTimeLimit sets the "time_limit" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateTimeLimit() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTimeLimit()
	})
}

// SetPayload sets the "payload" field.
func (u *QuestionUpsertBulk) SetPayload(v map[string]interface{}) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdatePayload() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *QuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
