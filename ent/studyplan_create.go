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
	"github.com/abhisek/prepmate/ent/studyplan"
)

// StudyPlanCreate is the builder for creating a StudyPlan entity.
type StudyPlanCreate struct {
	config
	mutation *StudyPlanMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *StudyPlanCreate) SetUserID(v int) *StudyPlanCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *StudyPlanCreate) SetSubject(v string) *StudyPlanCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetExamType sets the "exam_type" field.
func (_c *StudyPlanCreate) SetExamType(v string) *StudyPlanCreate {
	_c.mutation.SetExamType(v)
	return _c
}

// SetNillableExamType sets the "exam_type" field if the given value is not nil.
func (_c *StudyPlanCreate) SetNillableExamType(v *string) *StudyPlanCreate {
	if v != nil {
		_c.SetExamType(*v)
	}
	return _c
}

// SetExamDate sets the "exam_date" field.
func (_c *StudyPlanCreate) SetExamDate(v time.Time) *StudyPlanCreate {
	_c.mutation.SetExamDate(v)
	return _c
}

// SetDailyHours sets the "daily_hours" field.
func (_c *StudyPlanCreate) SetDailyHours(v float64) *StudyPlanCreate {
	_c.mutation.SetDailyHours(v)
	return _c
}

// SetTargetGrade sets the "target_grade" field.
func (_c *StudyPlanCreate) SetTargetGrade(v string) *StudyPlanCreate {
	_c.mutation.SetTargetGrade(v)
	return _c
}

// SetNillableTargetGrade sets the "target_grade" field if the given value is not nil.
func (_c *StudyPlanCreate) SetNillableTargetGrade(v *string) *StudyPlanCreate {
	if v != nil {
		_c.SetTargetGrade(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StudyPlanCreate) SetStatus(v string) *StudyPlanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StudyPlanCreate) SetNillableStatus(v *string) *StudyPlanCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudyPlanCreate) SetCreatedAt(v time.Time) *StudyPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudyPlanCreate) SetNillableCreatedAt(v *time.Time) *StudyPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the StudyPlanMutation object of the builder.
func (_c *StudyPlanCreate) Mutation() *StudyPlanMutation {
	return _c.mutation
}

// Save creates the StudyPlan in the database.
func (_c *StudyPlanCreate) Save(ctx context.Context) (*StudyPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyPlanCreate) SaveX(ctx context.Context) *StudyPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyPlanCreate) defaults() {
	if _, ok := _c.mutation.ExamType(); !ok {
		v := studyplan.DefaultExamType
		_c.mutation.SetExamType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := studyplan.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studyplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyPlanCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StudyPlan.user_id"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "StudyPlan.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := studyplan.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamType(); !ok {
		return &ValidationError{Name: "exam_type", err: errors.New(`ent: missing required field "StudyPlan.exam_type"`)}
	}
	if _, ok := _c.mutation.ExamDate(); !ok {
		return &ValidationError{Name: "exam_date", err: errors.New(`ent: missing required field "StudyPlan.exam_date"`)}
	}
	if _, ok := _c.mutation.DailyHours(); !ok {
		return &ValidationError{Name: "daily_hours", err: errors.New(`ent: missing required field "StudyPlan.daily_hours"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StudyPlan.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudyPlan.created_at"`)}
	}
	return nil
}

func (_c *StudyPlanCreate) sqlSave(ctx context.Context) (*StudyPlan, error) {
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

func (_c *StudyPlanCreate) createSpec() (*StudyPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studyplan.Table, sqlgraph.NewFieldSpec(studyplan.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(studyplan.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(studyplan.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.ExamType(); ok {
		_spec.SetField(studyplan.FieldExamType, field.TypeString, value)
		_node.ExamType = value
	}
	if value, ok := _c.mutation.ExamDate(); ok {
		_spec.SetField(studyplan.FieldExamDate, field.TypeTime, value)
		_node.ExamDate = value
	}
	if value, ok := _c.mutation.DailyHours(); ok {
		_spec.SetField(studyplan.FieldDailyHours, field.TypeFloat64, value)
		_node.DailyHours = value
	}
	if value, ok := _c.mutation.TargetGrade(); ok {
		_spec.SetField(studyplan.FieldTargetGrade, field.TypeString, value)
		_node.TargetGrade = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(studyplan.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studyplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudyPlan.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyPlanUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *StudyPlanCreate) OnConflict(opts ...sql.ConflictOption) *StudyPlanUpsertOne {
	_c.conflict = opts
	return &StudyPlanUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudyPlan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudyPlanCreate) OnConflictColumns(columns ...string) *StudyPlanUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudyPlanUpsertOne{
		create: _c,
	}
}

type (
	// StudyPlanUpsertOne is the builder for "upsert"-ing
	//  one StudyPlan node.
	StudyPlanUpsertOne struct {
		create *StudyPlanCreate
	}

	// StudyPlanUpsert is the "OnConflict" setter.
	StudyPlanUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *StudyPlanUpsert) SetUserID(v int) *StudyPlanUpsert {
	u.Set(studyplan.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudyPlanUpsert) UpdateUserID() *StudyPlanUpsert {
	u.SetExcluded(studyplan.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *StudyPlanUpsert) AddUserID(v int) *StudyPlanUpsert {
	u.Add(studyplan.FieldUserID, v)
	return u
}

// SetSubject sets the "subject" field.
func (u *StudyPlanUpsert) SetSubject(v string) *StudyPlanUpsert {
	u.Set(studyplan.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *StudyPlanUpsert) UpdateSubject() *StudyPlanUpsert {
	u.SetExcluded(studyplan.FieldSubject)
	return u
}

// SetExamType sets the "exam_type" field.
func (u *StudyPlanUpsert) SetExamType(v string) *StudyPlanUpsert {
	u.Set(studyplan.FieldExamType, v)
	return u
}

// UpdateExamType sets the "exam_type" field to the value that was provided on create.
func (u *StudyPlanUpsert) UpdateExamType() *StudyPlanUpsert {
	u.SetExcluded(studyplan.FieldExamType)
	return u
}

// SetExamDate sets the "exam_date" field.
func (u *StudyPlanUpsert) SetExamDate(v time.Time) *StudyPlanUpsert {
	u.Set(studyplan.FieldExamDate, v)
	return u
}

// UpdateExamDate sets the "exam_date" field to the value that was provided on create.
func (u *StudyPlanUpsert) UpdateExamDate() *StudyPlanUpsert {
	u.SetExcluded(studyplan.FieldExamDate)
	return u
}

// SetDailyHours sets the "daily_hours" field.
func (u *StudyPlanUpsert) SetDailyHours(v float64) *StudyPlanUpsert {
	u.Set(studyplan.FieldDailyHours, v)
	return u
}

// UpdateDailyHours sets the "daily_hours" field to the value that was provided on create.
func (u *StudyPlanUpsert) UpdateDailyHours() *StudyPlanUpsert {
	u.SetExcluded(studyplan.FieldDailyHours)
	return u
}

// AddDailyHours adds v to the "daily_hours" field.
func (u *StudyPlanUpsert) AddDailyHours(v float64) *StudyPlanUpsert {
	u.Add(studyplan.FieldDailyHours, v)
	return u
}

// SetTargetGrade sets the "target_grade" field.
func (u *StudyPlanUpsert) SetTargetGrade(v string) *StudyPlanUpsert {
	u.Set(studyplan.FieldTargetGrade, v)
	return u
}

// UpdateTargetGrade sets the "target_grade" field to the value that was provided on create.
func (u *StudyPlanUpsert) UpdateTargetGrade() *StudyPlanUpsert {
	u.SetExcluded(studyplan.FieldTargetGrade)
	return u
}

// ClearTargetGrade clears the value of the "target_grade" field.
func (u *StudyPlanUpsert) ClearTargetGrade() *StudyPlanUpsert {
	u.SetNull(studyplan.FieldTargetGrade)
	return u
}

// SetStatus sets the "status" field.
func (u *StudyPlanUpsert) SetStatus(v string) *StudyPlanUpsert {
	u.Set(studyplan.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudyPlanUpsert) UpdateStatus() *StudyPlanUpsert {
	u.SetExcluded(studyplan.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.StudyPlan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StudyPlanUpsertOne) UpdateNewValues() *StudyPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(studyplan.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudyPlan.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudyPlanUpsertOne) Ignore() *StudyPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyPlanUpsertOne) DoNothing() *StudyPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyPlanCreate.OnConflict
// documentation for more info.
func (u *StudyPlanUpsertOne) Update(set func(*StudyPlanUpsert)) *StudyPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyPlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *StudyPlanUpsertOne) SetUserID(v int) *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *StudyPlanUpsertOne) AddUserID(v int) *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudyPlanUpsertOne) UpdateUserID() *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateUserID()
	})
}

// SetSubject sets the "subject" field.
func (u *StudyPlanUpsertOne) SetSubject(v string) *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *StudyPlanUpsertOne) UpdateSubject() *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateSubject()
	})
}

// SetExamType sets the "exam_type" field.
func (u *StudyPlanUpsertOne) SetExamType(v string) *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetExamType(v)
	})
}

// UpdateExamType sets the "exam_type" field to the value that was provided on create.
func (u *StudyPlanUpsertOne) UpdateExamType() *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateExamType()
	})
}

// SetExamDate sets the "exam_date" field.
func (u *StudyPlanUpsertOne) SetExamDate(v time.Time) *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetExamDate(v)
	})
}

// UpdateExamDate sets the "exam_date" field to the value that was provided on create.
func (u *StudyPlanUpsertOne) UpdateExamDate() *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateExamDate()
	})
}

// SetDailyHours sets the "daily_hours" field.
func (u *StudyPlanUpsertOne) SetDailyHours(v float64) *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetDailyHours(v)
	})
}

// AddDailyHours adds v to the "daily_hours" field.
func (u *StudyPlanUpsertOne) AddDailyHours(v float64) *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.AddDailyHours(v)
	})
}

// UpdateDailyHours sets the "daily_hours" field to the value that was provided on create.
func (u *StudyPlanUpsertOne) UpdateDailyHours() *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateDailyHours()
	})
}

// SetTargetGrade sets the "target_grade" field.
func (u *StudyPlanUpsertOne) SetTargetGrade(v string) *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetTargetGrade(v)
	})
}

// UpdateTargetGrade sets the "target_grade" field to the value that was provided on create.
func (u *StudyPlanUpsertOne) UpdateTargetGrade() *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateTargetGrade()
	})
}

// ClearTargetGrade clears the value of the "target_grade" field.
func (u *StudyPlanUpsertOne) ClearTargetGrade() *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.ClearTargetGrade()
	})
}

// SetStatus sets the "status" field.
func (u *StudyPlanUpsertOne) SetStatus(v string) *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudyPlanUpsertOne) UpdateStatus() *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *StudyPlanUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudyPlanCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyPlanUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudyPlanUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudyPlanUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudyPlanCreateBulk is the builder for creating many StudyPlan entities in bulk.
type StudyPlanCreateBulk struct {
	config
	err      error
	builders []*StudyPlanCreate
	conflict []sql.ConflictOption
}

// Save creates the StudyPlan entities in the database.
func (_c *StudyPlanCreateBulk) Save(ctx context.Context) ([]*StudyPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudyPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyPlanMutation)
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
func (_c *StudyPlanCreateBulk) SaveX(ctx context.Context) []*StudyPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudyPlan.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyPlanUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *StudyPlanCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudyPlanUpsertBulk {
	_c.conflict = opts
	return &StudyPlanUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudyPlan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudyPlanCreateBulk) OnConflictColumns(columns ...string) *StudyPlanUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudyPlanUpsertBulk{
		create: _c,
	}
}

// StudyPlanUpsertBulk is the builder for "upsert"-ing
// a bulk of StudyPlan nodes.
type StudyPlanUpsertBulk struct {
	create *StudyPlanCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StudyPlan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StudyPlanUpsertBulk) UpdateNewValues() *StudyPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(studyplan.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudyPlan.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudyPlanUpsertBulk) Ignore() *StudyPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyPlanUpsertBulk) DoNothing() *StudyPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyPlanCreateBulk.OnConflict
// documentation for more info.
func (u *StudyPlanUpsertBulk) Update(set func(*StudyPlanUpsert)) *StudyPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyPlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *StudyPlanUpsertBulk) SetUserID(v int) *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *StudyPlanUpsertBulk) AddUserID(v int) *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudyPlanUpsertBulk) UpdateUserID() *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateUserID()
	})
}

// SetSubject sets the "subject" field.
func (u *StudyPlanUpsertBulk) SetSubject(v string) *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *StudyPlanUpsertBulk) UpdateSubject() *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateSubject()
	})
}

// SetExamType sets the "exam_type" field.
func (u *StudyPlanUpsertBulk) SetExamType(v string) *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetExamType(v)
	})
}

// UpdateExamType sets the "exam_type" field to the value that was provided on create.
func (u *StudyPlanUpsertBulk) UpdateExamType() *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateExamType()
	})
}

// SetExamDate sets the "exam_date" field.
func (u *StudyPlanUpsertBulk) SetExamDate(v time.Time) *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetExamDate(v)
	})
}

// UpdateExamDate sets the "exam_date" field to the value that was provided on create.
func (u *StudyPlanUpsertBulk) UpdateExamDate() *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateExamDate()
	})
}

// SetDailyHours sets the "daily_hours" field.
func (u *StudyPlanUpsertBulk) SetDailyHours(v float64) *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetDailyHours(v)
	})
}

// AddDailyHours adds v to the "daily_hours" field.
func (u *StudyPlanUpsertBulk) AddDailyHours(v float64) *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.AddDailyHours(v)
	})
}

// UpdateDailyHours sets the "daily_hours" field to the value that was provided on create.
func (u *StudyPlanUpsertBulk) UpdateDailyHours() *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateDailyHours()
	})
}

// SetTargetGrade sets the "target_grade" field.
func (u *StudyPlanUpsertBulk) SetTargetGrade(v string) *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetTargetGrade(v)
	})
}

// UpdateTargetGrade sets the "target_grade" field to the value that was provided on create.
func (u *StudyPlanUpsertBulk) UpdateTargetGrade() *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateTargetGrade()
	})
}

// ClearTargetGrade clears the value of the "target_grade" field.
func (u *StudyPlanUpsertBulk) ClearTargetGrade() *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.ClearTargetGrade()
	})
}

// SetStatus sets the "status" field.
func (u *StudyPlanUpsertBulk) SetStatus(v string) *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudyPlanUpsertBulk) UpdateStatus() *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *StudyPlanUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StudyPlanCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudyPlanCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyPlanUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
