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
	"github.com/abhisek/prepmate/ent/predicate"
	"github.com/abhisek/prepmate/ent/studyplan"
)

// StudyPlanUpdate is the builder for updating StudyPlan entities.
type StudyPlanUpdate struct {
	config
	hooks    []Hook
	mutation *StudyPlanMutation
}

// Where appends a list predicates to the StudyPlanUpdate builder.
func (_u *StudyPlanUpdate) Where(ps ...predicate.StudyPlan) *StudyPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StudyPlanUpdate) SetUserID(v int) *StudyPlanUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudyPlanUpdate) SetNillableUserID(v *int) *StudyPlanUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *StudyPlanUpdate) AddUserID(v int) *StudyPlanUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *StudyPlanUpdate) SetSubject(v string) *StudyPlanUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StudyPlanUpdate) SetNillableSubject(v *string) *StudyPlanUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetExamType sets the "exam_type" field.
func (_u *StudyPlanUpdate) SetExamType(v string) *StudyPlanUpdate {
	_u.mutation.SetExamType(v)
	return _u
}

// SetNillableExamType sets the "exam_type" field if the given value is not nil.
func (_u *StudyPlanUpdate) SetNillableExamType(v *string) *StudyPlanUpdate {
	if v != nil {
		_u.SetExamType(*v)
	}
	return _u
}

// SetExamDate sets the "exam_date" field.
func (_u *StudyPlanUpdate) SetExamDate(v time.Time) *StudyPlanUpdate {
	_u.mutation.SetExamDate(v)
	return _u
}

// SetNillableExamDate sets the "exam_date" field if the given value is not nil.
func (_u *StudyPlanUpdate) SetNillableExamDate(v *time.Time) *StudyPlanUpdate {
	if v != nil {
		_u.SetExamDate(*v)
	}
	return _u
}

// SetDailyHours sets the "daily_hours" field.
func (_u *StudyPlanUpdate) SetDailyHours(v float64) *StudyPlanUpdate {
	_u.mutation.ResetDailyHours()
	_u.mutation.SetDailyHours(v)
	return _u
}

// SetNillableDailyHours sets the "daily_hours" field if the given value is not nil.
func (_u *StudyPlanUpdate) SetNillableDailyHours(v *float64) *StudyPlanUpdate {
	if v != nil {
		_u.SetDailyHours(*v)
	}
	return _u
}

// AddDailyHours adds value to the "daily_hours" field.
func (_u *StudyPlanUpdate) AddDailyHours(v float64) *StudyPlanUpdate {
	_u.mutation.AddDailyHours(v)
	return _u
}

// SetTargetGrade sets the "target_grade" field.
func (_u *StudyPlanUpdate) SetTargetGrade(v string) *StudyPlanUpdate {
	_u.mutation.SetTargetGrade(v)
	return _u
}

// SetNillableTargetGrade sets the "target_grade" field if the given value is not nil.
func (_u *StudyPlanUpdate) SetNillableTargetGrade(v *string) *StudyPlanUpdate {
	if v != nil {
		_u.SetTargetGrade(*v)
	}
	return _u
}

// ClearTargetGrade clears the value of the "target_grade" field.
func (_u *StudyPlanUpdate) ClearTargetGrade() *StudyPlanUpdate {
	_u.mutation.ClearTargetGrade()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudyPlanUpdate) SetStatus(v string) *StudyPlanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudyPlanUpdate) SetNillableStatus(v *string) *StudyPlanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the StudyPlanMutation object of the builder.
func (_u *StudyPlanUpdate) Mutation() *StudyPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudyPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudyPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyPlanUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := studyplan.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyplan.Table, studyplan.Columns, sqlgraph.NewFieldSpec(studyplan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(studyplan.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(studyplan.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(studyplan.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamType(); ok {
		_spec.SetField(studyplan.FieldExamType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamDate(); ok {
		_spec.SetField(studyplan.FieldExamDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DailyHours(); ok {
		_spec.SetField(studyplan.FieldDailyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDailyHours(); ok {
		_spec.AddField(studyplan.FieldDailyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TargetGrade(); ok {
		_spec.SetField(studyplan.FieldTargetGrade, field.TypeString, value)
	}
	if _u.mutation.TargetGradeCleared() {
		_spec.ClearField(studyplan.FieldTargetGrade, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(studyplan.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudyPlanUpdateOne is the builder for updating a single StudyPlan entity.
type StudyPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyPlanMutation
}

// SetUserID sets the "user_id" field.
func (_u *StudyPlanUpdateOne) SetUserID(v int) *StudyPlanUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudyPlanUpdateOne) SetNillableUserID(v *int) *StudyPlanUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *StudyPlanUpdateOne) AddUserID(v int) *StudyPlanUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *StudyPlanUpdateOne) SetSubject(v string) *StudyPlanUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StudyPlanUpdateOne) SetNillableSubject(v *string) *StudyPlanUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetExamType sets the "exam_type" field.
func (_u *StudyPlanUpdateOne) SetExamType(v string) *StudyPlanUpdateOne {
	_u.mutation.SetExamType(v)
	return _u
}

// SetNillableExamType sets the "exam_type" field if the given value is not nil.
func (_u *StudyPlanUpdateOne) SetNillableExamType(v *string) *StudyPlanUpdateOne {
	if v != nil {
		_u.SetExamType(*v)
	}
	return _u
}

// SetExamDate sets the "exam_date" field.
func (_u *StudyPlanUpdateOne) SetExamDate(v time.Time) *StudyPlanUpdateOne {
	_u.mutation.SetExamDate(v)
	return _u
}

// SetNillableExamDate sets the "exam_date" field if the given value is not nil.
func (_u *StudyPlanUpdateOne) SetNillableExamDate(v *time.Time) *StudyPlanUpdateOne {
	if v != nil {
		_u.SetExamDate(*v)
	}
	return _u
}

// SetDailyHours sets the "daily_hours" field.
func (_u *StudyPlanUpdateOne) SetDailyHours(v float64) *StudyPlanUpdateOne {
	_u.mutation.ResetDailyHours()
	_u.mutation.SetDailyHours(v)
	return _u
}

// SetNillableDailyHours sets the "daily_hours" field if the given value is not nil.
func (_u *StudyPlanUpdateOne) SetNillableDailyHours(v *float64) *StudyPlanUpdateOne {
	if v != nil {
		_u.SetDailyHours(*v)
	}
	return _u
}

// AddDailyHours adds value to the "daily_hours" field.
func (_u *StudyPlanUpdateOne) AddDailyHours(v float64) *StudyPlanUpdateOne {
	_u.mutation.AddDailyHours(v)
	return _u
}

// SetTargetGrade sets the "target_grade" field.
func (_u *StudyPlanUpdateOne) SetTargetGrade(v string) *StudyPlanUpdateOne {
	_u.mutation.SetTargetGrade(v)
	return _u
}

// SetNillableTargetGrade sets the "target_grade" field if the given value is not nil.
func (_u *StudyPlanUpdateOne) SetNillableTargetGrade(v *string) *StudyPlanUpdateOne {
	if v != nil {
		_u.SetTargetGrade(*v)
	}
	return _u
}

// ClearTargetGrade clears the value of the "target_grade" field.
func (_u *StudyPlanUpdateOne) ClearTargetGrade() *StudyPlanUpdateOne {
	_u.mutation.ClearTargetGrade()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudyPlanUpdateOne) SetStatus(v string) *StudyPlanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudyPlanUpdateOne) SetNillableStatus(v *string) *StudyPlanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the StudyPlanMutation object of the builder.
func (_u *StudyPlanUpdateOne) Mutation() *StudyPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudyPlanUpdate builder.
func (_u *StudyPlanUpdateOne) Where(ps ...predicate.StudyPlan) *StudyPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudyPlanUpdateOne) Select(field string, fields ...string) *StudyPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudyPlan entity.
func (_u *StudyPlanUpdateOne) Save(ctx context.Context) (*StudyPlan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyPlanUpdateOne) SaveX(ctx context.Context) *StudyPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudyPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyPlanUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := studyplan.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyPlanUpdateOne) sqlSave(ctx context.Context) (_node *StudyPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyplan.Table, studyplan.Columns, sqlgraph.NewFieldSpec(studyplan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudyPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studyplan.FieldID)
		for _, f := range fields {
			if !studyplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studyplan.FieldID {
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
		_spec.SetField(studyplan.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(studyplan.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(studyplan.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamType(); ok {
		_spec.SetField(studyplan.FieldExamType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamDate(); ok {
		_spec.SetField(studyplan.FieldExamDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DailyHours(); ok {
		_spec.SetField(studyplan.FieldDailyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDailyHours(); ok {
		_spec.AddField(studyplan.FieldDailyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TargetGrade(); ok {
		_spec.SetField(studyplan.FieldTargetGrade, field.TypeString, value)
	}
	if _u.mutation.TargetGradeCleared() {
		_spec.ClearField(studyplan.FieldTargetGrade, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(studyplan.FieldStatus, field.TypeString, value)
	}
	_node = &StudyPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
