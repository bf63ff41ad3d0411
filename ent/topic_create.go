// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepmate/ent/topic"
)

// TopicCreate is the builder for creating a Topic entity.
type TopicCreate struct {
	config
	mutation *TopicMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlanID sets the "plan_id" field.
func (_c *TopicCreate) SetPlanID(v int) *TopicCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *TopicCreate) SetName(v string) *TopicCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *TopicCreate) SetWeight(v float64) *TopicCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_c *TopicCreate) SetNillableWeight(v *float64) *TopicCreate {
	if v != nil {
		_c.SetWeight(*v)
	}
	return _c
}

// SetAllocatedHours sets the "allocated_hours" field.
func (_c *TopicCreate) SetAllocatedHours(v float64) *TopicCreate {
	_c.mutation.SetAllocatedHours(v)
	return _c
}

// SetNillableAllocatedHours sets the "allocated_hours" field if the given value is not nil.
func (_c *TopicCreate) SetNillableAllocatedHours(v *float64) *TopicCreate {
	if v != nil {
		_c.SetAllocatedHours(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *TopicCreate) SetOrderIndex(v int) *TopicCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *TopicCreate) SetNillableOrderIndex(v *int) *TopicCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *TopicCreate) SetMasteryLevel(v float64) *TopicCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *TopicCreate) SetNillableMasteryLevel(v *float64) *TopicCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// Mutation returns the TopicMutation object of the builder.
func (_c *TopicCreate) Mutation() *TopicMutation {
	return _c.mutation
}

// Save creates the Topic in the database.
func (_c *TopicCreate) Save(ctx context.Context) (*Topic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicCreate) SaveX(ctx context.Context) *Topic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicCreate) defaults() {
	if _, ok := _c.mutation.Weight(); !ok {
		v := topic.DefaultWeight
		_c.mutation.SetWeight(v)
	}
	if _, ok := _c.mutation.AllocatedHours(); !ok {
		v := topic.DefaultAllocatedHours
		_c.mutation.SetAllocatedHours(v)
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := topic.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := topic.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "Topic.plan_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Topic.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := topic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Topic.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "Topic.weight"`)}
	}
	if _, ok := _c.mutation.AllocatedHours(); !ok {
		return &ValidationError{Name: "allocated_hours", err: errors.New(`ent: missing required field "Topic.allocated_hours"`)}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "Topic.order_index"`)}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "Topic.mastery_level"`)}
	}
	return nil
}

func (_c *TopicCreate) sqlSave(ctx context.Context) (*Topic, error) {
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

func (_c *TopicCreate) createSpec() (*Topic, *sqlgraph.CreateSpec) {
	var (
		_node = &Topic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topic.Table, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(topic.FieldPlanID, field.TypeInt, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(topic.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(topic.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.AllocatedHours(); ok {
		_spec.SetField(topic.FieldAllocatedHours, field.TypeFloat64, value)
		_node.AllocatedHours = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(topic.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(topic.FieldMasteryLevel, field.TypeFloat64, value)
		_node.MasteryLevel = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Topic.Create().
//		SetPlanID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TopicUpsert) {
//			SetPlanID(v+v).
//		}).
//		Exec(ctx)
func (_c *TopicCreate) OnConflict(opts ...sql.ConflictOption) *TopicUpsertOne {
	_c.conflict = opts
	return &TopicUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Topic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TopicCreate) OnConflictColumns(columns ...string) *TopicUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TopicUpsertOne{
		create: _c,
	}
}

type (
	// TopicUpsertOne is the builder for "upsert"-ing
	//  one Topic node.
	TopicUpsertOne struct {
		create *TopicCreate
	}

	// TopicUpsert is the "OnConflict" setter.
	TopicUpsert struct {
		*sql.UpdateSet
	}
)

// SetPlanID sets the "plan_id" field.
func (u *TopicUpsert) SetPlanID(v int) *TopicUpsert {
	u.Set(topic.FieldPlanID, v)
	return u
}

// UpdatePlanID sets the "plan_id" field to the value that was provided on create.
func (u *TopicUpsert) UpdatePlanID() *TopicUpsert {
	u.SetExcluded(topic.FieldPlanID)
	return u
}

// AddPlanID adds v to the "plan_id" field.
func (u *TopicUpsert) AddPlanID(v int) *TopicUpsert {
	u.Add(topic.FieldPlanID, v)
	return u
}

// SetName sets the "name" field.
func (u *TopicUpsert) SetName(v string) *TopicUpsert {
	u.Set(topic.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TopicUpsert) UpdateName() *TopicUpsert {
	u.SetExcluded(topic.FieldName)
	return u
}

// SetWeight sets the "weight" field.
func (u *TopicUpsert) SetWeight(v float64) *TopicUpsert {
	u.Set(topic.FieldWeight, v)
	return u
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *TopicUpsert) UpdateWeight() *TopicUpsert {
	u.SetExcluded(topic.FieldWeight)
	return u
}

// AddWeight adds v to the "weight" field.
func (u *TopicUpsert) AddWeight(v float64) *TopicUpsert {
	u.Add(topic.FieldWeight, v)
	return u
}

// SetAllocatedHours sets the "allocated_hours" field.
func (u *TopicUpsert) SetAllocatedHours(v float64) *TopicUpsert {
	u.Set(topic.FieldAllocatedHours, v)
	return u
}

// UpdateAllocatedHours sets the "allocated_hours" field to the value that was provided on create.
func (u *TopicUpsert) UpdateAllocatedHours() *TopicUpsert {
	u.SetExcluded(topic.FieldAllocatedHours)
	return u
}

// AddAllocatedHours adds v to the "allocated_hours" field.
func (u *TopicUpsert) AddAllocatedHours(v float64) *TopicUpsert {
	u.Add(topic.FieldAllocatedHours, v)
	return u
}

// SetOrderIndex sets the "order_index" field.
func (u *TopicUpsert) SetOrderIndex(v int) *TopicUpsert {
	u.Set(topic.FieldOrderIndex, v)
	return u
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *TopicUpsert) UpdateOrderIndex() *TopicUpsert {
	u.SetExcluded(topic.FieldOrderIndex)
	return u
}

// AddOrderIndex adds v to the "order_index" field.
func (u *TopicUpsert) AddOrderIndex(v int) *TopicUpsert {
	u.Add(topic.FieldOrderIndex, v)
	return u
}

// SetMasteryLevel sets the "mastery_level" field.
func (u *TopicUpsert) SetMasteryLevel(v float64) *TopicUpsert {
	u.Set(topic.FieldMasteryLevel, v)
	return u
}

// UpdateMasteryLevel sets the "mastery_level" field to the value that was provided on create.
func (u *TopicUpsert) UpdateMasteryLevel() *TopicUpsert {
	u.SetExcluded(topic.FieldMasteryLevel)
	return u
}

// AddMasteryLevel adds v to the "mastery_level" field.
func (u *TopicUpsert) AddMasteryLevel(v float64) *TopicUpsert {
	u.Add(topic.FieldMasteryLevel, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Topic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TopicUpsertOne) UpdateNewValues() *TopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Topic.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TopicUpsertOne) Ignore() *TopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TopicUpsertOne) DoNothing() *TopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TopicCreate.OnConflict
// documentation for more info.
func (u *TopicUpsertOne) Update(set func(*TopicUpsert)) *TopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TopicUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlanID sets the "plan_id" field.
func (u *TopicUpsertOne) SetPlanID(v int) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.SetPlanID(v)
	})
}

// AddPlanID adds v to the "plan_id" field.
func (u *TopicUpsertOne) AddPlanID(v int) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.AddPlanID(v)
	})
}

// UpdatePlanID sets the "plan_id" field to the value that was provided on create.
func (u *TopicUpsertOne) UpdatePlanID() *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.UpdatePlanID()
	})
}

// SetName sets the "name" field.
func (u *TopicUpsertOne) SetName(v string) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TopicUpsertOne) UpdateName() *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateName()
	})
}

// SetWeight sets the "weight" field.
func (u *TopicUpsertOne) SetWeight(v float64) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *TopicUpsertOne) AddWeight(v float64) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *TopicUpsertOne) UpdateWeight() *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateWeight()
	})
}

// SetAllocatedHours sets the "allocated_hours" field.
func (u *TopicUpsertOne) SetAllocatedHours(v float64) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.SetAllocatedHours(v)
	})
}

// AddAllocatedHours adds v to the "allocated_hours" field.
func (u *TopicUpsertOne) AddAllocatedHours(v float64) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.AddAllocatedHours(v)
	})
}

// UpdateAllocatedHours sets the "allocated_hours" field to the value that was provided on create.
func (u *TopicUpsertOne) UpdateAllocatedHours() *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateAllocatedHours()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *TopicUpsertOne) SetOrderIndex(v int) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *TopicUpsertOne) AddOrderIndex(v int) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *TopicUpsertOne) UpdateOrderIndex() *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateOrderIndex()
	})
}

// SetMasteryLevel sets the "mastery_level" field.
func (u *TopicUpsertOne) SetMasteryLevel(v float64) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.SetMasteryLevel(v)
	})
}

// AddMasteryLevel adds v to the "mastery_level" field.
func (u *TopicUpsertOne) AddMasteryLevel(v float64) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.AddMasteryLevel(v)
	})
}

// UpdateMasteryLevel sets the "mastery_level" field to the value that was provided on create.
func (u *TopicUpsertOne) UpdateMasteryLevel() *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateMasteryLevel()
	})
}

// Exec executes the query.
func (u *TopicUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TopicCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TopicUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TopicUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TopicUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TopicCreateBulk is the builder for creating many Topic entities in bulk.
type TopicCreateBulk struct {
	config
	err      error
	builders []*TopicCreate
	conflict []sql.ConflictOption
}

// Save creates the Topic entities in the database.
func (_c *TopicCreateBulk) Save(ctx context.Context) ([]*Topic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Topic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicMutation)
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
func (_c *TopicCreateBulk) SaveX(ctx context.Context) []*Topic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Topic.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TopicUpsert) {
//			SetPlanID(v+v).
//		}).
//		Exec(ctx)
func (_c *TopicCreateBulk) OnConflict(opts ...sql.ConflictOption) *TopicUpsertBulk {
	_c.conflict = opts
	return &TopicUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Topic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TopicCreateBulk) OnConflictColumns(columns ...string) *TopicUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TopicUpsertBulk{
		create: _c,
	}
}

// TopicUpsertBulk is the builder for "upsert"-ing
// a bulk of Topic nodes.
type TopicUpsertBulk struct {
	create *TopicCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Topic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TopicUpsertBulk) UpdateNewValues() *TopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Topic.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TopicUpsertBulk) Ignore() *TopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TopicUpsertBulk) DoNothing() *TopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TopicCreateBulk.OnConflict
// documentation for more info.
func (u *TopicUpsertBulk) Update(set func(*TopicUpsert)) *TopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TopicUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlanID sets the "plan_id" field.
func (u *TopicUpsertBulk) SetPlanID(v int) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.SetPlanID(v)
	})
}

// AddPlanID adds v to the "plan_id" field.
func (u *TopicUpsertBulk) AddPlanID(v int) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.AddPlanID(v)
	})
}

// UpdatePlanID sets the "plan_id" field to the value that was provided on create.
func (u *TopicUpsertBulk) UpdatePlanID() *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.UpdatePlanID()
	})
}

// SetName sets the "name" field.
func (u *TopicUpsertBulk) SetName(v string) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TopicUpsertBulk) UpdateName() *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateName()
	})
}

// SetWeight sets the "weight" field.
func (u *TopicUpsertBulk) SetWeight(v float64) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *TopicUpsertBulk) AddWeight(v float64) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *TopicUpsertBulk) UpdateWeight() *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateWeight()
	})
}

// SetAllocatedHours sets the "allocated_hours" field.
func (u *TopicUpsertBulk) SetAllocatedHours(v float64) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.SetAllocatedHours(v)
	})
}

// AddAllocatedHours adds v to the "allocated_hours" field.
func (u *TopicUpsertBulk) AddAllocatedHours(v float64) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.AddAllocatedHours(v)
	})
}

// UpdateAllocatedHours sets the "allocated_hours" field to the value that was provided on create.
func (u *TopicUpsertBulk) UpdateAllocatedHours() *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateAllocatedHours()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *TopicUpsertBulk) SetOrderIndex(v int) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *TopicUpsertBulk) AddOrderIndex(v int) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *TopicUpsertBulk) UpdateOrderIndex() *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateOrderIndex()
	})
}

// SetMasteryLevel sets the "mastery_level" field.
func (u *TopicUpsertBulk) SetMasteryLevel(v float64) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.SetMasteryLevel(v)
	})
}

// AddMasteryLevel adds v to the "mastery_level" field.
func (u *TopicUpsertBulk) AddMasteryLevel(v float64) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.AddMasteryLevel(v)
	})
}

// UpdateMasteryLevel sets the "mastery_level" field to the value that was provided on create.
func (u *TopicUpsertBulk) UpdateMasteryLevel() *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateMasteryLevel()
	})
}

// Exec executes the query.
func (u *TopicUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TopicCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TopicCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TopicUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
