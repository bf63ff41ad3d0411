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
	"github.com/abhisek/prepmate/ent/reviewschedule"
)

// ReviewScheduleCreate is the builder for creating a ReviewSchedule entity.
type ReviewScheduleCreate struct {
	config
	mutation *ReviewScheduleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *ReviewScheduleCreate) SetUserID(v int) *ReviewScheduleCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *ReviewScheduleCreate) SetTopicID(v int) *ReviewScheduleCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewScheduleCreate) SetIntervalDays(v int) *ReviewScheduleCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ReviewScheduleCreate) SetNillableIntervalDays(v *int) *ReviewScheduleCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ReviewScheduleCreate) SetEaseFactor(v float64) *ReviewScheduleCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *ReviewScheduleCreate) SetNillableEaseFactor(v *float64) *ReviewScheduleCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *ReviewScheduleCreate) SetReviewCount(v int) *ReviewScheduleCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *ReviewScheduleCreate) SetNillableReviewCount(v *int) *ReviewScheduleCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetNextReviewDate sets the "next_review_date" field.
func (_c *ReviewScheduleCreate) SetNextReviewDate(v time.Time) *ReviewScheduleCreate {
	_c.mutation.SetNextReviewDate(v)
	return _c
}

// SetLastReviewed sets the "last_reviewed" field.
func (_c *ReviewScheduleCreate) SetLastReviewed(v time.Time) *ReviewScheduleCreate {
	_c.mutation.SetLastReviewed(v)
	return _c
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_c *ReviewScheduleCreate) SetNillableLastReviewed(v *time.Time) *ReviewScheduleCreate {
	if v != nil {
		_c.SetLastReviewed(*v)
	}
	return _c
}

// Mutation returns the ReviewScheduleMutation object of the builder.
func (_c *ReviewScheduleCreate) Mutation() *ReviewScheduleMutation {
	return _c.mutation
}

// Save creates the ReviewSchedule in the database.
func (_c *ReviewScheduleCreate) Save(ctx context.Context) (*ReviewSchedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewScheduleCreate) SaveX(ctx context.Context) *ReviewSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewScheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewScheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewScheduleCreate) defaults() {
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := reviewschedule.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := reviewschedule.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := reviewschedule.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewScheduleCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReviewSchedule.user_id"`)}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "ReviewSchedule.topic_id"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewSchedule.interval_days"`)}
	}
	if v, ok := _c.mutation.IntervalDays(); ok {
		if err := reviewschedule.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.interval_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "ReviewSchedule.ease_factor"`)}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "ReviewSchedule.review_count"`)}
	}
	if _, ok := _c.mutation.NextReviewDate(); !ok {
		return &ValidationError{Name: "next_review_date", err: errors.New(`ent: missing required field "ReviewSchedule.next_review_date"`)}
	}
	return nil
}

func (_c *ReviewScheduleCreate) sqlSave(ctx context.Context) (*ReviewSchedule, error) {
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

func (_c *ReviewScheduleCreate) createSpec() (*ReviewSchedule, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewSchedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewschedule.Table, sqlgraph.NewFieldSpec(reviewschedule.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(reviewschedule.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(reviewschedule.FieldTopicID, field.TypeInt, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(reviewschedule.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(reviewschedule.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.NextReviewDate(); ok {
		_spec.SetField(reviewschedule.FieldNextReviewDate, field.TypeTime, value)
		_node.NextReviewDate = value
	}
	if value, ok := _c.mutation.LastReviewed(); ok {
		_spec.SetField(reviewschedule.FieldLastReviewed, field.TypeTime, value)
		_node.LastReviewed = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewSchedule.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewScheduleUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewScheduleCreate) OnConflict(opts ...sql.ConflictOption) *ReviewScheduleUpsertOne {
	_c.conflict = opts
	return &ReviewScheduleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewScheduleCreate) OnConflictColumns(columns ...string) *ReviewScheduleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewScheduleUpsertOne{
		create: _c,
	}
}

type (
	// ReviewScheduleUpsertOne is the builder for "upsert"-ing
	//  one ReviewSchedule node.
	ReviewScheduleUpsertOne struct {
		create *ReviewScheduleCreate
	}

	// ReviewScheduleUpsert is the "OnConflict" setter.
	ReviewScheduleUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *ReviewScheduleUpsert) SetUserID(v int) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateUserID() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *ReviewScheduleUpsert) AddUserID(v int) *ReviewScheduleUpsert {
	u.Add(reviewschedule.FieldUserID, v)
	return u
}

// SetTopicID sets the "topic_id" field.
func (u *ReviewScheduleUpsert) SetTopicID(v int) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldTopicID, v)
	return u
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateTopicID() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldTopicID)
	return u
}

// AddTopicID adds v to the "topic_id" field.
func (u *ReviewScheduleUpsert) AddTopicID(v int) *ReviewScheduleUpsert {
	u.Add(reviewschedule.FieldTopicID, v)
	return u
}

// SetIntervalDays sets the "interval_days" field.
func (u *ReviewScheduleUpsert) SetIntervalDays(v int) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldIntervalDays, v)
	return u
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateIntervalDays() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldIntervalDays)
	return u
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ReviewScheduleUpsert) AddIntervalDays(v int) *ReviewScheduleUpsert {
	u.Add(reviewschedule.FieldIntervalDays, v)
	return u
}

// SetEaseFactor sets the "ease_factor" field.
func (u *ReviewScheduleUpsert) SetEaseFactor(v float64) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldEaseFactor, v)
	return u
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateEaseFactor() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldEaseFactor)
	return u
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *ReviewScheduleUpsert) AddEaseFactor(v float64) *ReviewScheduleUpsert {
	u.Add(reviewschedule.FieldEaseFactor, v)
	return u
}

// SetReviewCount sets the "review_count" field.
func (u *ReviewScheduleUpsert) SetReviewCount(v int) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldReviewCount, v)
	return u
}

// UpdateReviewCount sets the "review_count" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateReviewCount() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldReviewCount)
	return u
}

// AddReviewCount adds v to the "review_count" field.
func (u *ReviewScheduleUpsert) AddReviewCount(v int) *ReviewScheduleUpsert {
	u.Add(reviewschedule.FieldReviewCount, v)
	return u
}

// SetNextReviewDate sets the "next_review_date" field.
func (u *ReviewScheduleUpsert) SetNextReviewDate(v time.Time) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldNextReviewDate, v)
	return u
}

// UpdateNextReviewDate sets the "next_review_date" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateNextReviewDate() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldNextReviewDate)
	return u
}

// SetLastReviewed sets the "last_reviewed" field.
func (u *ReviewScheduleUpsert) SetLastReviewed(v time.Time) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldLastReviewed, v)
	return u
}

// UpdateLastReviewed sets the "last_reviewed" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateLastReviewed() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldLastReviewed)
	return u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (u *ReviewScheduleUpsert) ClearLastReviewed() *ReviewScheduleUpsert {
	u.SetNull(reviewschedule.FieldLastReviewed)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReviewScheduleUpsertOne) UpdateNewValues() *ReviewScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReviewScheduleUpsertOne) Ignore() *ReviewScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewScheduleUpsertOne) DoNothing() *ReviewScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewScheduleCreate.OnConflict
// documentation for more info.
func (u *ReviewScheduleUpsertOne) Update(set func(*ReviewScheduleUpsert)) *ReviewScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ReviewScheduleUpsertOne) SetUserID(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *ReviewScheduleUpsertOne) AddUserID(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateUserID() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateUserID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *ReviewScheduleUpsertOne) SetTopicID(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetTopicID(v)
	})
}

// AddTopicID adds v to the "topic_id" field.
func (u *ReviewScheduleUpsertOne) AddTopicID(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateTopicID() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateTopicID()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *ReviewScheduleUpsertOne) SetIntervalDays(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ReviewScheduleUpsertOne) AddIntervalDays(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateIntervalDays() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetEaseFactor sets the "ease_factor" field.
func (u *ReviewScheduleUpsertOne) SetEaseFactor(v float64) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetEaseFactor(v)
	})
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *ReviewScheduleUpsertOne) AddEaseFactor(v float64) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddEaseFactor(v)
	})
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateEaseFactor() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateEaseFactor()
	})
}

// SetReviewCount sets the "review_count" field.
func (u *ReviewScheduleUpsertOne) SetReviewCount(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetReviewCount(v)
	})
}

// AddReviewCount adds v to the "review_count" field.
func (u *ReviewScheduleUpsertOne) AddReviewCount(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddReviewCount(v)
	})
}

// UpdateReviewCount sets the "review_count" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateReviewCount() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateReviewCount()
	})
}

// SetNextReviewDate sets the "next_review_date" field.
func (u *ReviewScheduleUpsertOne) SetNextReviewDate(v time.Time) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetNextReviewDate(v)
	})
}

// UpdateNextReviewDate sets the "next_review_date" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateNextReviewDate() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateNextReviewDate()
	})
}

// SetLastReviewed sets the "last_reviewed" field.
func (u *ReviewScheduleUpsertOne) SetLastReviewed(v time.Time) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetLastReviewed(v)
	})
}

// UpdateLastReviewed sets the "last_reviewed" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateLastReviewed() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateLastReviewed()
	})
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (u *ReviewScheduleUpsertOne) ClearLastReviewed() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.ClearLastReviewed()
	})
}

// Exec executes the query.
func (u *ReviewScheduleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewScheduleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewScheduleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReviewScheduleUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReviewScheduleUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReviewScheduleCreateBulk is the builder for creating many ReviewSchedule entities in bulk.
type ReviewScheduleCreateBulk struct {
	config
	err      error
	builders []*ReviewScheduleCreate
	conflict []sql.ConflictOption
}

// Save creates the ReviewSchedule entities in the database.
func (_c *ReviewScheduleCreateBulk) Save(ctx context.Context) ([]*ReviewSchedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewSchedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewScheduleMutation)
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
func (_c *ReviewScheduleCreateBulk) SaveX(ctx context.Context) []*ReviewSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewSchedule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewScheduleUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewScheduleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReviewScheduleUpsertBulk {
	_c.conflict = opts
	return &ReviewScheduleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewScheduleCreateBulk) OnConflictColumns(columns ...string) *ReviewScheduleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewScheduleUpsertBulk{
		create: _c,
	}
}

// ReviewScheduleUpsertBulk is the builder for "upsert"-ing
// a bulk of ReviewSchedule nodes.
type ReviewScheduleUpsertBulk struct {
	create *ReviewScheduleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReviewScheduleUpsertBulk) UpdateNewValues() *ReviewScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReviewScheduleUpsertBulk) Ignore() *ReviewScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewScheduleUpsertBulk) DoNothing() *ReviewScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewScheduleCreateBulk.OnConflict
// documentation for more info.
func (u *ReviewScheduleUpsertBulk) Update(set func(*ReviewScheduleUpsert)) *ReviewScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ReviewScheduleUpsertBulk) SetUserID(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *ReviewScheduleUpsertBulk) AddUserID(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateUserID() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateUserID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *ReviewScheduleUpsertBulk) SetTopicID(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetTopicID(v)
	})
}

// AddTopicID adds v to the "topic_id" field.
func (u *ReviewScheduleUpsertBulk) AddTopicID(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateTopicID() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateTopicID()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *ReviewScheduleUpsertBulk) SetIntervalDays(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ReviewScheduleUpsertBulk) AddIntervalDays(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateIntervalDays() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetEaseFactor sets the "ease_factor" field.
func (u *ReviewScheduleUpsertBulk) SetEaseFactor(v float64) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetEaseFactor(v)
	})
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *ReviewScheduleUpsertBulk) AddEaseFactor(v float64) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddEaseFactor(v)
	})
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateEaseFactor() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateEaseFactor()
	})
}

// SetReviewCount sets the "review_count" field.
func (u *ReviewScheduleUpsertBulk) SetReviewCount(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetReviewCount(v)
	})
}

// AddReviewCount adds v to the "review_count" field.
func (u *ReviewScheduleUpsertBulk) AddReviewCount(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddReviewCount(v)
	})
}

// UpdateReviewCount sets the "review_count" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateReviewCount() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateReviewCount()
	})
}

// SetNextReviewDate sets the "next_review_date" field.
func (u *ReviewScheduleUpsertBulk) SetNextReviewDate(v time.Time) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetNextReviewDate(v)
	})
}

// UpdateNextReviewDate sets the "next_review_date" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateNextReviewDate() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateNextReviewDate()
	})
}

// SetLastReviewed sets the "last_reviewed" field.
func (u *ReviewScheduleUpsertBulk) SetLastReviewed(v time.Time) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetLastReviewed(v)
	})
}

// UpdateLastReviewed sets the "last_reviewed" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateLastReviewed() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateLastReviewed()
	})
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (u *ReviewScheduleUpsertBulk) ClearLastReviewed() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.ClearLastReviewed()
	})
}

// Exec executes the query.
func (u *ReviewScheduleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReviewScheduleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewScheduleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewScheduleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
