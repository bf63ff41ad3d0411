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
	"github.com/abhisek/prepmate/ent/studysession"
)

// StudySessionCreate is the builder for creating a StudySession entity.
type StudySessionCreate struct {
	config
	mutation *StudySessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTopicID sets the "topic_id" field.
func (_c *StudySessionCreate) SetTopicID(v int) *StudySessionCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetScheduledDate sets the "scheduled_date" field.
func (_c *StudySessionCreate) SetScheduledDate(v time.Time) *StudySessionCreate {
	_c.mutation.SetScheduledDate(v)
	return _c
}

// SetDuration sets the "duration" field.
func (_c *StudySessionCreate) SetDuration(v float64) *StudySessionCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *StudySessionCreate) SetCompleted(v bool) *StudySessionCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableCompleted(v *bool) *StudySessionCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StudySessionCreate) SetCompletedAt(v time.Time) *StudySessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableCompletedAt(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the StudySessionMutation object of the builder.
func (_c *StudySessionCreate) Mutation() *StudySessionMutation {
	return _c.mutation
}

// Save creates the StudySession in the database.
func (_c *StudySessionCreate) Save(ctx context.Context) (*StudySession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudySessionCreate) SaveX(ctx context.Context) *StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudySessionCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := studysession.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudySessionCreate) check() error {
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "StudySession.topic_id"`)}
	}
	if _, ok := _c.mutation.ScheduledDate(); !ok {
		return &ValidationError{Name: "scheduled_date", err: errors.New(`ent: missing required field "StudySession.scheduled_date"`)}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`ent: missing required field "StudySession.duration"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "StudySession.completed"`)}
	}
	return nil
}

func (_c *StudySessionCreate) sqlSave(ctx context.Context) (*StudySession, error) {
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

func (_c *StudySessionCreate) createSpec() (*StudySession, *sqlgraph.CreateSpec) {
	var (
		_node = &StudySession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studysession.Table, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(studysession.FieldTopicID, field.TypeInt, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.ScheduledDate(); ok {
		_spec.SetField(studysession.FieldScheduledDate, field.TypeTime, value)
		_node.ScheduledDate = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(studysession.FieldDuration, field.TypeFloat64, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(studysession.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(studysession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudySession.Create().
//		SetTopicID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudySessionUpsert) {
//			SetTopicID(v+v).
//		}).
//		Exec(ctx)
func (_c *StudySessionCreate) OnConflict(opts ...sql.ConflictOption) *StudySessionUpsertOne {
	_c.conflict = opts
	return &StudySessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudySession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudySessionCreate) OnConflictColumns(columns ...string) *StudySessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudySessionUpsertOne{
		create: _c,
	}
}

type (
	// StudySessionUpsertOne is the builder for "upsert"-ing
	//  one StudySession node.
	StudySessionUpsertOne struct {
		create *StudySessionCreate
	}

	// StudySessionUpsert is the "OnConflict" setter.
	StudySessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetTopicID sets the "topic_id" field.
func (u *StudySessionUpsert) SetTopicID(v int) *StudySessionUpsert {
	u.Set(studysession.FieldTopicID, v)
	return u
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *StudySessionUpsert) UpdateTopicID() *StudySessionUpsert {
	u.SetExcluded(studysession.FieldTopicID)
	return u
}

// AddTopicID adds v to the "topic_id" field.
func (u *StudySessionUpsert) AddTopicID(v int) *StudySessionUpsert {
	u.Add(studysession.FieldTopicID, v)
	return u
}

// SetScheduledDate sets the "scheduled_date" field.
func (u *StudySessionUpsert) SetScheduledDate(v time.Time) *StudySessionUpsert {
	u.Set(studysession.FieldScheduledDate, v)
	return u
}

// UpdateScheduledDate sets the "scheduled_date" field to the value that was provided on create.
func (u *StudySessionUpsert) UpdateScheduledDate() *StudySessionUpsert {
	u.SetExcluded(studysession.FieldScheduledDate)
	return u
}

// SetDuration sets the "duration" field.
func (u *StudySessionUpsert) SetDuration(v float64) *StudySessionUpsert {
	u.Set(studysession.FieldDuration, v)
	return u
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *StudySessionUpsert) UpdateDuration() *StudySessionUpsert {
	u.SetExcluded(studysession.FieldDuration)
	return u
}

// AddDuration adds v to the "duration" field.
func (u *StudySessionUpsert) AddDuration(v float64) *StudySessionUpsert {
	u.Add(studysession.FieldDuration, v)
	return u
}

// SetCompleted sets the "completed" field.
func (u *StudySessionUpsert) SetCompleted(v bool) *StudySessionUpsert {
	u.Set(studysession.FieldCompleted, v)
	return u
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *StudySessionUpsert) UpdateCompleted() *StudySessionUpsert {
	u.SetExcluded(studysession.FieldCompleted)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *StudySessionUpsert) SetCompletedAt(v time.Time) *StudySessionUpsert {
	u.Set(studysession.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StudySessionUpsert) UpdateCompletedAt() *StudySessionUpsert {
	u.SetExcluded(studysession.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StudySessionUpsert) ClearCompletedAt() *StudySessionUpsert {
	u.SetNull(studysession.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.StudySession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StudySessionUpsertOne) UpdateNewValues() *StudySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudySession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudySessionUpsertOne) Ignore() *StudySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudySessionUpsertOne) DoNothing() *StudySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudySessionCreate.OnConflict
// documentation for more info.
func (u *StudySessionUpsertOne) Update(set func(*StudySessionUpsert)) *StudySessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudySessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTopicID sets the "topic_id" field.
func (u *StudySessionUpsertOne) SetTopicID(v int) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetTopicID(v)
	})
}

// AddTopicID adds v to the "topic_id" field.
func (u *StudySessionUpsertOne) AddTopicID(v int) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.AddTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *StudySessionUpsertOne) UpdateTopicID() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateTopicID()
	})
}

// SetScheduledDate sets the "scheduled_date" field.
func (u *StudySessionUpsertOne) SetScheduledDate(v time.Time) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetScheduledDate(v)
	})
}

// UpdateScheduledDate sets the "scheduled_date" field to the value that was provided on create.
func (u *StudySessionUpsertOne) UpdateScheduledDate() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateScheduledDate()
	})
}

// SetDuration sets the "duration" field.
func (u *StudySessionUpsertOne) SetDuration(v float64) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *StudySessionUpsertOne) AddDuration(v float64) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *StudySessionUpsertOne) UpdateDuration() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateDuration()
	})
}

// SetCompleted sets the "completed" field.
func (u *StudySessionUpsertOne) SetCompleted(v bool) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *StudySessionUpsertOne) UpdateCompleted() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateCompleted()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StudySessionUpsertOne) SetCompletedAt(v time.Time) *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StudySessionUpsertOne) UpdateCompletedAt() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StudySessionUpsertOne) ClearCompletedAt() *StudySessionUpsertOne {
	return u.Update(func(s *StudySessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *StudySessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudySessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudySessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudySessionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudySessionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudySessionCreateBulk is the builder for creating many StudySession entities in bulk.
type StudySessionCreateBulk struct {
	config
	err      error
	builders []*StudySessionCreate
	conflict []sql.ConflictOption
}

// Save creates the StudySession entities in the database.
func (_c *StudySessionCreateBulk) Save(ctx context.Context) ([]*StudySession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudySession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudySessionMutation)
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
func (_c *StudySessionCreateBulk) SaveX(ctx context.Context) []*StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudySession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudySessionUpsert) {
//			SetTopicID(v+v).
//		}).
//		Exec(ctx)
func (_c *StudySessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudySessionUpsertBulk {
	_c.conflict = opts
	return &StudySessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudySession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudySessionCreateBulk) OnConflictColumns(columns ...string) *StudySessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudySessionUpsertBulk{
		create: _c,
	}
}

// StudySessionUpsertBulk is the builder for "upsert"-ing
// a bulk of StudySession nodes.
type StudySessionUpsertBulk struct {
	create *StudySessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StudySession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StudySessionUpsertBulk) UpdateNewValues() *StudySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudySession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudySessionUpsertBulk) Ignore() *StudySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudySessionUpsertBulk) DoNothing() *StudySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudySessionCreateBulk.OnConflict
// documentation for more info.
func (u *StudySessionUpsertBulk) Update(set func(*StudySessionUpsert)) *StudySessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudySessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTopicID sets the "topic_id" field.
func (u *StudySessionUpsertBulk) SetTopicID(v int) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetTopicID(v)
	})
}

// AddTopicID adds v to the "topic_id" field.
func (u *StudySessionUpsertBulk) AddTopicID(v int) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.AddTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *StudySessionUpsertBulk) UpdateTopicID() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateTopicID()
	})
}

// SetScheduledDate sets the "scheduled_date" field.
func (u *StudySessionUpsertBulk) SetScheduledDate(v time.Time) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetScheduledDate(v)
	})
}

// UpdateScheduledDate sets the "scheduled_date" field to the value that was provided on create.
func (u *StudySessionUpsertBulk) UpdateScheduledDate() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateScheduledDate()
	})
}

// SetDuration sets the "duration" field.
func (u *StudySessionUpsertBulk) SetDuration(v float64) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *StudySessionUpsertBulk) AddDuration(v float64) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *StudySessionUpsertBulk) UpdateDuration() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateDuration()
	})
}

// SetCompleted sets the "completed" field.
func (u *StudySessionUpsertBulk) SetCompleted(v bool) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *StudySessionUpsertBulk) UpdateCompleted() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateCompleted()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StudySessionUpsertBulk) SetCompletedAt(v time.Time) *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StudySessionUpsertBulk) UpdateCompletedAt() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StudySessionUpsertBulk) ClearCompletedAt() *StudySessionUpsertBulk {
	return u.Update(func(s *StudySessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *StudySessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StudySessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudySessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudySessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
