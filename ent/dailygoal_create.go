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
	"github.com/abhisek/prepmate/ent/dailygoal"
)

// DailyGoalCreate is the builder for creating a DailyGoal entity.
type DailyGoalCreate struct {
	config
	mutation *DailyGoalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *DailyGoalCreate) SetUserID(v int) *DailyGoalCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *DailyGoalCreate) SetDate(v time.Time) *DailyGoalCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetTargetProblems sets the "target_problems" field.
func (_c *DailyGoalCreate) SetTargetProblems(v int) *DailyGoalCreate {
	_c.mutation.SetTargetProblems(v)
	return _c
}

// SetNillableTargetProblems sets the "target_problems" field if the given value is not nil.
func (_c *DailyGoalCreate) SetNillableTargetProblems(v *int) *DailyGoalCreate {
	if v != nil {
		_c.SetTargetProblems(*v)
	}
	return _c
}

// SetCompletedProblems sets the "completed_problems" field.
func (_c *DailyGoalCreate) SetCompletedProblems(v int) *DailyGoalCreate {
	_c.mutation.SetCompletedProblems(v)
	return _c
}

// SetNillableCompletedProblems sets the "completed_problems" field if the given value is not nil.
func (_c *DailyGoalCreate) SetNillableCompletedProblems(v *int) *DailyGoalCreate {
	if v != nil {
		_c.SetCompletedProblems(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *DailyGoalCreate) SetCompleted(v bool) *DailyGoalCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *DailyGoalCreate) SetNillableCompleted(v *bool) *DailyGoalCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// Mutation returns the DailyGoalMutation object of the builder.
func (_c *DailyGoalCreate) Mutation() *DailyGoalMutation {
	return _c.mutation
}

// Save creates the DailyGoal in the database.
func (_c *DailyGoalCreate) Save(ctx context.Context) (*DailyGoal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DailyGoalCreate) SaveX(ctx context.Context) *DailyGoal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyGoalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyGoalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DailyGoalCreate) defaults() {
	if _, ok := _c.mutation.TargetProblems(); !ok {
		v := dailygoal.DefaultTargetProblems
		_c.mutation.SetTargetProblems(v)
	}
	if _, ok := _c.mutation.CompletedProblems(); !ok {
		v := dailygoal.DefaultCompletedProblems
		_c.mutation.SetCompletedProblems(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := dailygoal.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DailyGoalCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DailyGoal.user_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "DailyGoal.date"`)}
	}
	if _, ok := _c.mutation.TargetProblems(); !ok {
		return &ValidationError{Name: "target_problems", err: errors.New(`ent: missing required field "DailyGoal.target_problems"`)}
	}
	if _, ok := _c.mutation.CompletedProblems(); !ok {
		return &ValidationError{Name: "completed_problems", err: errors.New(`ent: missing required field "DailyGoal.completed_problems"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "DailyGoal.completed"`)}
	}
	return nil
}

func (_c *DailyGoalCreate) sqlSave(ctx context.Context) (*DailyGoal, error) {
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

func (_c *DailyGoalCreate) createSpec() (*DailyGoal, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyGoal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dailygoal.Table, sqlgraph.NewFieldSpec(dailygoal.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(dailygoal.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(dailygoal.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.TargetProblems(); ok {
		_spec.SetField(dailygoal.FieldTargetProblems, field.TypeInt, value)
		_node.TargetProblems = value
	}
	if value, ok := _c.mutation.CompletedProblems(); ok {
		_spec.SetField(dailygoal.FieldCompletedProblems, field.TypeInt, value)
		_node.CompletedProblems = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(dailygoal.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DailyGoal.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DailyGoalUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DailyGoalCreate) OnConflict(opts ...sql.ConflictOption) *DailyGoalUpsertOne {
	_c.conflict = opts
	return &DailyGoalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DailyGoal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DailyGoalCreate) OnConflictColumns(columns ...string) *DailyGoalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DailyGoalUpsertOne{
		create: _c,
	}
}

type (
	// DailyGoalUpsertOne is the builder for "upsert"-ing
	//  one DailyGoal node.
	DailyGoalUpsertOne struct {
		create *DailyGoalCreate
	}

	// DailyGoalUpsert is the "OnConflict" setter.
	DailyGoalUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *DailyGoalUpsert) SetUserID(v int) *DailyGoalUpsert {
	u.Set(dailygoal.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DailyGoalUpsert) UpdateUserID() *DailyGoalUpsert {
	u.SetExcluded(dailygoal.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *DailyGoalUpsert) AddUserID(v int) *DailyGoalUpsert {
	u.Add(dailygoal.FieldUserID, v)
	return u
}

// SetDate sets the "date" field.
func (u *DailyGoalUpsert) SetDate(v time.Time) *DailyGoalUpsert {
	u.Set(dailygoal.FieldDate, v)
	return u
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *DailyGoalUpsert) UpdateDate() *DailyGoalUpsert {
	u.SetExcluded(dailygoal.FieldDate)
	return u
}

// SetTargetProblems sets the "target_problems" field.
func (u *DailyGoalUpsert) SetTargetProblems(v int) *DailyGoalUpsert {
	u.Set(dailygoal.FieldTargetProblems, v)
	return u
}

// UpdateTargetProblems sets the "target_problems" field to the value that was provided on create.
func (u *DailyGoalUpsert) UpdateTargetProblems() *DailyGoalUpsert {
	u.SetExcluded(dailygoal.FieldTargetProblems)
	return u
}

// AddTargetProblems adds v to the "target_problems" field.
func (u *DailyGoalUpsert) AddTargetProblems(v int) *DailyGoalUpsert {
	u.Add(dailygoal.FieldTargetProblems, v)
	return u
}

// SetCompletedProblems sets the "completed_problems" field.
func (u *DailyGoalUpsert) SetCompletedProblems(v int) *DailyGoalUpsert {
	u.Set(dailygoal.FieldCompletedProblems, v)
	return u
}

// UpdateCompletedProblems sets the "completed_problems" field to the value that was provided on create.
func (u *DailyGoalUpsert) UpdateCompletedProblems() *DailyGoalUpsert {
	u.SetExcluded(dailygoal.FieldCompletedProblems)
	return u
}

// AddCompletedProblems adds v to the "completed_problems" field.
func (u *DailyGoalUpsert) AddCompletedProblems(v int) *DailyGoalUpsert {
	u.Add(dailygoal.FieldCompletedProblems, v)
	return u
}

// SetCompleted sets the "completed" field.
func (u *DailyGoalUpsert) SetCompleted(v bool) *DailyGoalUpsert {
	u.Set(dailygoal.FieldCompleted, v)
	return u
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *DailyGoalUpsert) UpdateCompleted() *DailyGoalUpsert {
	u.SetExcluded(dailygoal.FieldCompleted)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.DailyGoal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DailyGoalUpsertOne) UpdateNewValues() *DailyGoalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DailyGoal.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DailyGoalUpsertOne) Ignore() *DailyGoalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DailyGoalUpsertOne) DoNothing() *DailyGoalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DailyGoalCreate.OnConflict
// documentation for more info.
func (u *DailyGoalUpsertOne) Update(set func(*DailyGoalUpsert)) *DailyGoalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DailyGoalUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *DailyGoalUpsertOne) SetUserID(v int) *DailyGoalUpsertOne {
	return u.Update(func(s *DailyGoalUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *DailyGoalUpsertOne) AddUserID(v int) *DailyGoalUpsertOne {
	return u.Update(func(s *DailyGoalUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DailyGoalUpsertOne) UpdateUserID() *DailyGoalUpsertOne {
	return u.Update(func(s *DailyGoalUpsert) {
		s.UpdateUserID()
	})
}

// SetDate sets the "date" field.
func (u *DailyGoalUpsertOne) SetDate(v time.Time) *DailyGoalUpsertOne {
	return u.Update(func(s *DailyGoalUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *DailyGoalUpsertOne) UpdateDate() *DailyGoalUpsertOne {
	return u.Update(func(s *DailyGoalUpsert) {
		s.UpdateDate()
	})
}

// SetTargetProblems sets the "target_problems" field.
func (u *DailyGoalUpsertOne) SetTargetProblems(v int) *DailyGoalUpsertOne {
	return u.Update(func(s *DailyGoalUpsert) {
		s.SetTargetProblems(v)
	})
}

// AddTargetProblems adds v to the "target_problems" field.
func (u *DailyGoalUpsertOne) AddTargetProblems(v int) *DailyGoalUpsertOne {
	return u.Update(func(s *DailyGoalUpsert) {
		s.AddTargetProblems(v)
	})
}

// UpdateTargetProblems sets the "target_problems" field to the value that was provided on create.
func (u *DailyGoalUpsertOne) UpdateTargetProblems() *DailyGoalUpsertOne {
	return u.Update(func(s *DailyGoalUpsert) {
		s.UpdateTargetProblems()
	})
}

// SetCompletedProblems sets the "completed_problems" field.
func (u *DailyGoalUpsertOne) SetCompletedProblems(v int) *DailyGoalUpsertOne {
	return u.Update(func(s *DailyGoalUpsert) {
		s.SetCompletedProblems(v)
	})
}

// AddCompletedProblems adds v to the "completed_problems" field.
func (u *DailyGoalUpsertOne) AddCompletedProblems(v int) *DailyGoalUpsertOne {
	return u.Update(func(s *DailyGoalUpsert) {
		s.AddCompletedProblems(v)
	})
}

// UpdateCompletedProblems sets the "completed_problems" field to the value that was provided on create.
func (u *DailyGoalUpsertOne) UpdateCompletedProblems() *DailyGoalUpsertOne {
	return u.Update(func(s *DailyGoalUpsert) {
		s.UpdateCompletedProblems()
	})
}

// SetCompleted sets the "completed" field.
func (u *DailyGoalUpsertOne) SetCompleted(v bool) *DailyGoalUpsertOne {
	return u.Update(func(s *DailyGoalUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *DailyGoalUpsertOne) UpdateCompleted() *DailyGoalUpsertOne {
	return u.Update(func(s *DailyGoalUpsert) {
		s.UpdateCompleted()
	})
}

// Exec executes the query.
func (u *DailyGoalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DailyGoalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DailyGoalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DailyGoalUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DailyGoalUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DailyGoalCreateBulk is the builder for creating many DailyGoal entities in bulk.
type DailyGoalCreateBulk struct {
	config
	err      error
	builders []*DailyGoalCreate
	conflict []sql.ConflictOption
}

// Save creates the DailyGoal entities in the database.
func (_c *DailyGoalCreateBulk) Save(ctx context.Context) ([]*DailyGoal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DailyGoal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyGoalMutation)
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
func (_c *DailyGoalCreateBulk) SaveX(ctx context.Context) []*DailyGoal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyGoalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyGoalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DailyGoal.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DailyGoalUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DailyGoalCreateBulk) OnConflict(opts ...sql.ConflictOption) *DailyGoalUpsertBulk {
	_c.conflict = opts
	return &DailyGoalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DailyGoal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DailyGoalCreateBulk) OnConflictColumns(columns ...string) *DailyGoalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DailyGoalUpsertBulk{
		create: _c,
	}
}

// DailyGoalUpsertBulk is the builder for "upsert"-ing
// a bulk of DailyGoal nodes.
type DailyGoalUpsertBulk struct {
	create *DailyGoalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DailyGoal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DailyGoalUpsertBulk) UpdateNewValues() *DailyGoalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DailyGoal.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DailyGoalUpsertBulk) Ignore() *DailyGoalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DailyGoalUpsertBulk) DoNothing() *DailyGoalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DailyGoalCreateBulk.OnConflict
// documentation for more info.
func (u *DailyGoalUpsertBulk) Update(set func(*DailyGoalUpsert)) *DailyGoalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DailyGoalUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *DailyGoalUpsertBulk) SetUserID(v int) *DailyGoalUpsertBulk {
	return u.Update(func(s *DailyGoalUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *DailyGoalUpsertBulk) AddUserID(v int) *DailyGoalUpsertBulk {
	return u.Update(func(s *DailyGoalUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DailyGoalUpsertBulk) UpdateUserID() *DailyGoalUpsertBulk {
	return u.Update(func(s *DailyGoalUpsert) {
		s.UpdateUserID()
	})
}

// SetDate sets the "date" field.
func (u *DailyGoalUpsertBulk) SetDate(v time.Time) *DailyGoalUpsertBulk {
	return u.Update(func(s *DailyGoalUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *DailyGoalUpsertBulk) UpdateDate() *DailyGoalUpsertBulk {
	return u.Update(func(s *DailyGoalUpsert) {
		s.UpdateDate()
	})
}

// SetTargetProblems sets the "target_problems" field.
func (u *DailyGoalUpsertBulk) SetTargetProblems(v int) *DailyGoalUpsertBulk {
	return u.Update(func(s *DailyGoalUpsert) {
		s.SetTargetProblems(v)
	})
}

// AddTargetProblems adds v to the "target_problems" field.
func (u *DailyGoalUpsertBulk) AddTargetProblems(v int) *DailyGoalUpsertBulk {
	return u.Update(func(s *DailyGoalUpsert) {
		s.AddTargetProblems(v)
	})
}

// UpdateTargetProblems sets the "target_problems" field to the value that was provided on create.
func (u *DailyGoalUpsertBulk) UpdateTargetProblems() *DailyGoalUpsertBulk {
	return u.Update(func(s *DailyGoalUpsert) {
		s.UpdateTargetProblems()
	})
}

// SetCompletedProblems sets the "completed_problems" field.
func (u *DailyGoalUpsertBulk) SetCompletedProblems(v int) *DailyGoalUpsertBulk {
	return u.Update(func(s *DailyGoalUpsert) {
		s.SetCompletedProblems(v)
	})
}

// AddCompletedProblems adds v to the "completed_problems" field.
func (u *DailyGoalUpsertBulk) AddCompletedProblems(v int) *DailyGoalUpsertBulk {
	return u.Update(func(s *DailyGoalUpsert) {
		s.AddCompletedProblems(v)
	})
}

// UpdateCompletedProblems sets the "completed_problems" field to the value that was provided on create.
func (u *DailyGoalUpsertBulk) UpdateCompletedProblems() *DailyGoalUpsertBulk {
	return u.Update(func(s *DailyGoalUpsert) {
		s.UpdateCompletedProblems()
	})
}

// SetCompleted sets the "completed" field.
func (u *DailyGoalUpsertBulk) SetCompleted(v bool) *DailyGoalUpsertBulk {
	return u.Update(func(s *DailyGoalUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *DailyGoalUpsertBulk) UpdateCompleted() *DailyGoalUpsertBulk {
	return u.Update(func(s *DailyGoalUpsert) {
		s.UpdateCompleted()
	})
}

// Exec executes the query.
func (u *DailyGoalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DailyGoalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DailyGoalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DailyGoalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
