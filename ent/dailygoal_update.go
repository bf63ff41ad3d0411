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
	"github.com/abhisek/prepmate/ent/predicate"
)

// DailyGoalUpdate is the builder for updating DailyGoal entities.
type DailyGoalUpdate struct {
	config
	hooks    []Hook
	mutation *DailyGoalMutation
}

// Where appends a list predicates to the DailyGoalUpdate builder.
func (_u *DailyGoalUpdate) Where(ps ...predicate.DailyGoal) *DailyGoalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DailyGoalUpdate) SetUserID(v int) *DailyGoalUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DailyGoalUpdate) SetNillableUserID(v *int) *DailyGoalUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *DailyGoalUpdate) AddUserID(v int) *DailyGoalUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetDate sets the "date" field.
func (_u *DailyGoalUpdate) SetDate(v time.Time) *DailyGoalUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *DailyGoalUpdate) SetNillableDate(v *time.Time) *DailyGoalUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTargetProblems sets the "target_problems" field.
func (_u *DailyGoalUpdate) SetTargetProblems(v int) *DailyGoalUpdate {
	_u.mutation.ResetTargetProblems()
	_u.mutation.SetTargetProblems(v)
	return _u
}

// SetNillableTargetProblems sets the "target_problems" field if the given value is not nil.
func (_u *DailyGoalUpdate) SetNillableTargetProblems(v *int) *DailyGoalUpdate {
	if v != nil {
		_u.SetTargetProblems(*v)
	}
	return _u
}

// AddTargetProblems adds value to the "target_problems" field.
func (_u *DailyGoalUpdate) AddTargetProblems(v int) *DailyGoalUpdate {
	_u.mutation.AddTargetProblems(v)
	return _u
}

// SetCompletedProblems sets the "completed_problems" field.
func (_u *DailyGoalUpdate) SetCompletedProblems(v int) *DailyGoalUpdate {
	_u.mutation.ResetCompletedProblems()
	_u.mutation.SetCompletedProblems(v)
	return _u
}

// SetNillableCompletedProblems sets the "completed_problems" field if the given value is not nil.
func (_u *DailyGoalUpdate) SetNillableCompletedProblems(v *int) *DailyGoalUpdate {
	if v != nil {
		_u.SetCompletedProblems(*v)
	}
	return _u
}

// AddCompletedProblems adds value to the "completed_problems" field.
func (_u *DailyGoalUpdate) AddCompletedProblems(v int) *DailyGoalUpdate {
	_u.mutation.AddCompletedProblems(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *DailyGoalUpdate) SetCompleted(v bool) *DailyGoalUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *DailyGoalUpdate) SetNillableCompleted(v *bool) *DailyGoalUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the DailyGoalMutation object of the builder.
func (_u *DailyGoalUpdate) Mutation() *DailyGoalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DailyGoalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyGoalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DailyGoalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyGoalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DailyGoalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(dailygoal.Table, dailygoal.Columns, sqlgraph.NewFieldSpec(dailygoal.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(dailygoal.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(dailygoal.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(dailygoal.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TargetProblems(); ok {
		_spec.SetField(dailygoal.FieldTargetProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetProblems(); ok {
		_spec.AddField(dailygoal.FieldTargetProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedProblems(); ok {
		_spec.SetField(dailygoal.FieldCompletedProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedProblems(); ok {
		_spec.AddField(dailygoal.FieldCompletedProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(dailygoal.FieldCompleted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailygoal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DailyGoalUpdateOne is the builder for updating a single DailyGoal entity.
type DailyGoalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyGoalMutation
}

// SetUserID sets the "user_id" field.
func (_u *DailyGoalUpdateOne) SetUserID(v int) *DailyGoalUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DailyGoalUpdateOne) SetNillableUserID(v *int) *DailyGoalUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *DailyGoalUpdateOne) AddUserID(v int) *DailyGoalUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetDate sets the "date" field.
func (_u *DailyGoalUpdateOne) SetDate(v time.Time) *DailyGoalUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *DailyGoalUpdateOne) SetNillableDate(v *time.Time) *DailyGoalUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTargetProblems sets the "target_problems" field.
func (_u *DailyGoalUpdateOne) SetTargetProblems(v int) *DailyGoalUpdateOne {
	_u.mutation.ResetTargetProblems()
	_u.mutation.SetTargetProblems(v)
	return _u
}

// SetNillableTargetProblems sets the "target_problems" field if the given value is not nil.
func (_u *DailyGoalUpdateOne) SetNillableTargetProblems(v *int) *DailyGoalUpdateOne {
	if v != nil {
		_u.SetTargetProblems(*v)
	}
	return _u
}

// AddTargetProblems adds value to the "target_problems" field.
func (_u *DailyGoalUpdateOne) AddTargetProblems(v int) *DailyGoalUpdateOne {
	_u.mutation.AddTargetProblems(v)
	return _u
}

// SetCompletedProblems sets the "completed_problems" field.
func (_u *DailyGoalUpdateOne) SetCompletedProblems(v int) *DailyGoalUpdateOne {
	_u.mutation.ResetCompletedProblems()
	_u.mutation.SetCompletedProblems(v)
	return _u
}

// SetNillableCompletedProblems sets the "completed_problems" field if the given value is not nil.
func (_u *DailyGoalUpdateOne) SetNillableCompletedProblems(v *int) *DailyGoalUpdateOne {
	if v != nil {
		_u.SetCompletedProblems(*v)
	}
	return _u
}

// AddCompletedProblems adds value to the "completed_problems" field.
func (_u *DailyGoalUpdateOne) AddCompletedProblems(v int) *DailyGoalUpdateOne {
	_u.mutation.AddCompletedProblems(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *DailyGoalUpdateOne) SetCompleted(v bool) *DailyGoalUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *DailyGoalUpdateOne) SetNillableCompleted(v *bool) *DailyGoalUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the DailyGoalMutation object of the builder.
func (_u *DailyGoalUpdateOne) Mutation() *DailyGoalMutation {
	return _u.mutation
}

// Where appends a list predicates to the DailyGoalUpdate builder.
func (_u *DailyGoalUpdateOne) Where(ps ...predicate.DailyGoal) *DailyGoalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DailyGoalUpdateOne) Select(field string, fields ...string) *DailyGoalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DailyGoal entity.
func (_u *DailyGoalUpdateOne) Save(ctx context.Context) (*DailyGoal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyGoalUpdateOne) SaveX(ctx context.Context) *DailyGoal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DailyGoalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyGoalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DailyGoalUpdateOne) sqlSave(ctx context.Context) (_node *DailyGoal, err error) {
	_spec := sqlgraph.NewUpdateSpec(dailygoal.Table, dailygoal.Columns, sqlgraph.NewFieldSpec(dailygoal.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyGoal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailygoal.FieldID)
		for _, f := range fields {
			if !dailygoal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailygoal.FieldID {
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
		_spec.SetField(dailygoal.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(dailygoal.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(dailygoal.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TargetProblems(); ok {
		_spec.SetField(dailygoal.FieldTargetProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetProblems(); ok {
		_spec.AddField(dailygoal.FieldTargetProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedProblems(); ok {
		_spec.SetField(dailygoal.FieldCompletedProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedProblems(); ok {
		_spec.AddField(dailygoal.FieldCompletedProblems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(dailygoal.FieldCompleted, field.TypeBool, value)
	}
	_node = &DailyGoal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailygoal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
