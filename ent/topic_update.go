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
	"github.com/abhisek/prepmate/ent/topic"
)

// TopicUpdate is the builder for updating Topic entities.
type TopicUpdate struct {
	config
	hooks    []Hook
	mutation *TopicMutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdate) Where(ps ...predicate.Topic) *TopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *TopicUpdate) SetPlanID(v int) *TopicUpdate {
	_u.mutation.ResetPlanID()
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *TopicUpdate) SetNillablePlanID(v *int) *TopicUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// AddPlanID adds value to the "plan_id" field.
func (_u *TopicUpdate) AddPlanID(v int) *TopicUpdate {
	_u.mutation.AddPlanID(v)
	return _u
}

// SetName sets the "name" field.
func (_u *TopicUpdate) SetName(v string) *TopicUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableName(v *string) *TopicUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *TopicUpdate) SetWeight(v float64) *TopicUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableWeight(v *float64) *TopicUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *TopicUpdate) AddWeight(v float64) *TopicUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetAllocatedHours sets the "allocated_hours" field.
func (_u *TopicUpdate) SetAllocatedHours(v float64) *TopicUpdate {
	_u.mutation.ResetAllocatedHours()
	_u.mutation.SetAllocatedHours(v)
	return _u
}

// SetNillableAllocatedHours sets the "allocated_hours" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableAllocatedHours(v *float64) *TopicUpdate {
	if v != nil {
		_u.SetAllocatedHours(*v)
	}
	return _u
}

// AddAllocatedHours adds value to the "allocated_hours" field.
func (_u *TopicUpdate) AddAllocatedHours(v float64) *TopicUpdate {
	_u.mutation.AddAllocatedHours(v)
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *TopicUpdate) SetOrderIndex(v int) *TopicUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableOrderIndex(v *int) *TopicUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *TopicUpdate) AddOrderIndex(v int) *TopicUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *TopicUpdate) SetMasteryLevel(v float64) *TopicUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableMasteryLevel(v *float64) *TopicUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *TopicUpdate) AddMasteryLevel(v float64) *TopicUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdate) Mutation() *TopicMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := topic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Topic.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(topic.FieldPlanID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlanID(); ok {
		_spec.AddField(topic.FieldPlanID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(topic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(topic.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(topic.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AllocatedHours(); ok {
		_spec.SetField(topic.FieldAllocatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAllocatedHours(); ok {
		_spec.AddField(topic.FieldAllocatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(topic.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(topic.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(topic.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(topic.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicUpdateOne is the builder for updating a single Topic entity.
type TopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicMutation
}

// SetPlanID sets the "plan_id" field.
func (_u *TopicUpdateOne) SetPlanID(v int) *TopicUpdateOne {
	_u.mutation.ResetPlanID()
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillablePlanID(v *int) *TopicUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// AddPlanID adds value to the "plan_id" field.
func (_u *TopicUpdateOne) AddPlanID(v int) *TopicUpdateOne {
	_u.mutation.AddPlanID(v)
	return _u
}

// SetName sets the "name" field.
func (_u *TopicUpdateOne) SetName(v string) *TopicUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableName(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *TopicUpdateOne) SetWeight(v float64) *TopicUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableWeight(v *float64) *TopicUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *TopicUpdateOne) AddWeight(v float64) *TopicUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetAllocatedHours sets the "allocated_hours" field.
func (_u *TopicUpdateOne) SetAllocatedHours(v float64) *TopicUpdateOne {
	_u.mutation.ResetAllocatedHours()
	_u.mutation.SetAllocatedHours(v)
	return _u
}

// SetNillableAllocatedHours sets the "allocated_hours" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableAllocatedHours(v *float64) *TopicUpdateOne {
	if v != nil {
		_u.SetAllocatedHours(*v)
	}
	return _u
}

// AddAllocatedHours adds value to the "allocated_hours" field.
func (_u *TopicUpdateOne) AddAllocatedHours(v float64) *TopicUpdateOne {
	_u.mutation.AddAllocatedHours(v)
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *TopicUpdateOne) SetOrderIndex(v int) *TopicUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableOrderIndex(v *int) *TopicUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *TopicUpdateOne) AddOrderIndex(v int) *TopicUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *TopicUpdateOne) SetMasteryLevel(v float64) *TopicUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableMasteryLevel(v *float64) *TopicUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *TopicUpdateOne) AddMasteryLevel(v float64) *TopicUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdateOne) Mutation() *TopicMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdateOne) Where(ps ...predicate.Topic) *TopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicUpdateOne) Select(field string, fields ...string) *TopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Topic entity.
func (_u *TopicUpdateOne) Save(ctx context.Context) (*Topic, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdateOne) SaveX(ctx context.Context) *Topic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := topic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Topic.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicUpdateOne) sqlSave(ctx context.Context) (_node *Topic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Topic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topic.FieldID)
		for _, f := range fields {
			if !topic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topic.FieldID {
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
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(topic.FieldPlanID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlanID(); ok {
		_spec.AddField(topic.FieldPlanID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(topic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(topic.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(topic.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AllocatedHours(); ok {
		_spec.SetField(topic.FieldAllocatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAllocatedHours(); ok {
		_spec.AddField(topic.FieldAllocatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(topic.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(topic.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(topic.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(topic.FieldMasteryLevel, field.TypeFloat64, value)
	}
	_node = &Topic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
