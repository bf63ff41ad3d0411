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
	"github.com/abhisek/prepmate/ent/llmrequest"
)

// LLMRequestCreate is the builder for creating a LLMRequest entity.
type LLMRequestCreate struct {
	config
	mutation *LLMRequestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProvider sets the "provider" field.
func (_c *LLMRequestCreate) SetProvider(v string) *LLMRequestCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMRequestCreate) SetModel(v string) *LLMRequestCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *LLMRequestCreate) SetPurpose(v string) *LLMRequestCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *LLMRequestCreate) SetInputTokens(v int) *LLMRequestCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableInputTokens(v *int) *LLMRequestCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *LLMRequestCreate) SetOutputTokens(v int) *LLMRequestCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableOutputTokens(v *int) *LLMRequestCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *LLMRequestCreate) SetLatencyMs(v int64) *LLMRequestCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableLatencyMs(v *int64) *LLMRequestCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *LLMRequestCreate) SetSuccess(v bool) *LLMRequestCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LLMRequestCreate) SetErrorMessage(v string) *LLMRequestCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableErrorMessage(v *string) *LLMRequestCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMRequestCreate) SetCreatedAt(v time.Time) *LLMRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableCreatedAt(v *time.Time) *LLMRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the LLMRequestMutation object of the builder.
func (_c *LLMRequestCreate) Mutation() *LLMRequestMutation {
	return _c.mutation
}

// Save creates the LLMRequest in the database.
func (_c *LLMRequestCreate) Save(ctx context.Context) (*LLMRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMRequestCreate) SaveX(ctx context.Context) *LLMRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMRequestCreate) defaults() {
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := llmrequest.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := llmrequest.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := llmrequest.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := llmrequest.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMRequestCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMRequest.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LLMRequest.model"`)}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "LLMRequest.purpose"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "LLMRequest.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "LLMRequest.output_tokens"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "LLMRequest.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "LLMRequest.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "LLMRequest.error_message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMRequest.created_at"`)}
	}
	return nil
}

func (_c *LLMRequestCreate) sqlSave(ctx context.Context) (*LLMRequest, error) {
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

func (_c *LLMRequestCreate) createSpec() (*LLMRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmrequest.Table, sqlgraph.NewFieldSpec(llmrequest.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llmrequest.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llmrequest.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(llmrequest.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(llmrequest.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(llmrequest.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(llmrequest.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(llmrequest.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(llmrequest.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMRequest.Create().
//		SetProvider(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMRequestUpsert) {
//			SetProvider(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMRequestCreate) OnConflict(opts ...sql.ConflictOption) *LLMRequestUpsertOne {
	_c.conflict = opts
	return &LLMRequestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMRequestCreate) OnConflictColumns(columns ...string) *LLMRequestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMRequestUpsertOne{
		create: _c,
	}
}

type (
	// LLMRequestUpsertOne is the builder for "upsert"-ing
	//  one LLMRequest node.
	LLMRequestUpsertOne struct {
		create *LLMRequestCreate
	}

	// LLMRequestUpsert is the "OnConflict" setter.
	LLMRequestUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *LLMRequestUpsert) SetProvider(v string) *LLMRequestUpsert {
	u.Set(llmrequest.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMRequestUpsert) UpdateProvider() *LLMRequestUpsert {
	u.SetExcluded(llmrequest.FieldProvider)
	return u
}

// SetModel sets the "model" field.
func (u *LLMRequestUpsert) SetModel(v string) *LLMRequestUpsert {
	u.Set(llmrequest.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMRequestUpsert) UpdateModel() *LLMRequestUpsert {
	u.SetExcluded(llmrequest.FieldModel)
	return u
}

// SetPurpose sets the "purpose" field.
func (u *LLMRequestUpsert) SetPurpose(v string) *LLMRequestUpsert {
	u.Set(llmrequest.FieldPurpose, v)
	return u
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *LLMRequestUpsert) UpdatePurpose() *LLMRequestUpsert {
	u.SetExcluded(llmrequest.FieldPurpose)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMRequestUpsert) SetInputTokens(v int) *LLMRequestUpsert {
	u.Set(llmrequest.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMRequestUpsert) UpdateInputTokens() *LLMRequestUpsert {
	u.SetExcluded(llmrequest.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMRequestUpsert) AddInputTokens(v int) *LLMRequestUpsert {
	u.Add(llmrequest.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMRequestUpsert) SetOutputTokens(v int) *LLMRequestUpsert {
	u.Set(llmrequest.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMRequestUpsert) UpdateOutputTokens() *LLMRequestUpsert {
	u.SetExcluded(llmrequest.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMRequestUpsert) AddOutputTokens(v int) *LLMRequestUpsert {
	u.Add(llmrequest.FieldOutputTokens, v)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *LLMRequestUpsert) SetLatencyMs(v int64) *LLMRequestUpsert {
	u.Set(llmrequest.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *LLMRequestUpsert) UpdateLatencyMs() *LLMRequestUpsert {
	u.SetExcluded(llmrequest.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *LLMRequestUpsert) AddLatencyMs(v int64) *LLMRequestUpsert {
	u.Add(llmrequest.FieldLatencyMs, v)
	return u
}

// SetSuccess sets the "success" field.
func (u *LLMRequestUpsert) SetSuccess(v bool) *LLMRequestUpsert {
	u.Set(llmrequest.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *LLMRequestUpsert) UpdateSuccess() *LLMRequestUpsert {
	u.SetExcluded(llmrequest.FieldSuccess)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMRequestUpsert) SetErrorMessage(v string) *LLMRequestUpsert {
	u.Set(llmrequest.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMRequestUpsert) UpdateErrorMessage() *LLMRequestUpsert {
	u.SetExcluded(llmrequest.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LLMRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LLMRequestUpsertOne) UpdateNewValues() *LLMRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(llmrequest.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMRequest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LLMRequestUpsertOne) Ignore() *LLMRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMRequestUpsertOne) DoNothing() *LLMRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMRequestCreate.OnConflict
// documentation for more info.
func (u *LLMRequestUpsertOne) Update(set func(*LLMRequestUpsert)) *LLMRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMRequestUpsertOne) SetProvider(v string) *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMRequestUpsertOne) UpdateProvider() *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *LLMRequestUpsertOne) SetModel(v string) *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMRequestUpsertOne) UpdateModel() *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdateModel()
	})
}

// SetPurpose sets the "purpose" field.
func (u *LLMRequestUpsertOne) SetPurpose(v string) *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetPurpose(v)
	})
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *LLMRequestUpsertOne) UpdatePurpose() *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdatePurpose()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMRequestUpsertOne) SetInputTokens(v int) *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMRequestUpsertOne) AddInputTokens(v int) *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMRequestUpsertOne) UpdateInputTokens() *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMRequestUpsertOne) SetOutputTokens(v int) *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMRequestUpsertOne) AddOutputTokens(v int) *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMRequestUpsertOne) UpdateOutputTokens() *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *LLMRequestUpsertOne) SetLatencyMs(v int64) *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *LLMRequestUpsertOne) AddLatencyMs(v int64) *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *LLMRequestUpsertOne) UpdateLatencyMs() *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *LLMRequestUpsertOne) SetSuccess(v bool) *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *LLMRequestUpsertOne) UpdateSuccess() *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMRequestUpsertOne) SetErrorMessage(v string) *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMRequestUpsertOne) UpdateErrorMessage() *LLMRequestUpsertOne {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdateErrorMessage()
	})
}

// Exec executes the query.
func (u *LLMRequestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMRequestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMRequestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LLMRequestUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LLMRequestUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LLMRequestCreateBulk is the builder for creating many LLMRequest entities in bulk.
type LLMRequestCreateBulk struct {
	config
	err      error
	builders []*LLMRequestCreate
	conflict []sql.ConflictOption
}

// Save creates the LLMRequest entities in the database.
func (_c *LLMRequestCreateBulk) Save(ctx context.Context) ([]*LLMRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMRequestMutation)
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
func (_c *LLMRequestCreateBulk) SaveX(ctx context.Context) []*LLMRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMRequest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMRequestUpsert) {
//			SetProvider(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMRequestCreateBulk) OnConflict(opts ...sql.ConflictOption) *LLMRequestUpsertBulk {
	_c.conflict = opts
	return &LLMRequestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMRequestCreateBulk) OnConflictColumns(columns ...string) *LLMRequestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMRequestUpsertBulk{
		create: _c,
	}
}

// LLMRequestUpsertBulk is the builder for "upsert"-ing
// a bulk of LLMRequest nodes.
type LLMRequestUpsertBulk struct {
	create *LLMRequestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LLMRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LLMRequestUpsertBulk) UpdateNewValues() *LLMRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(llmrequest.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMRequest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LLMRequestUpsertBulk) Ignore() *LLMRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMRequestUpsertBulk) DoNothing() *LLMRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMRequestCreateBulk.OnConflict
// documentation for more info.
func (u *LLMRequestUpsertBulk) Update(set func(*LLMRequestUpsert)) *LLMRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMRequestUpsertBulk) SetProvider(v string) *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMRequestUpsertBulk) UpdateProvider() *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *LLMRequestUpsertBulk) SetModel(v string) *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMRequestUpsertBulk) UpdateModel() *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdateModel()
	})
}

// SetPurpose sets the "purpose" field.
func (u *LLMRequestUpsertBulk) SetPurpose(v string) *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetPurpose(v)
	})
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *LLMRequestUpsertBulk) UpdatePurpose() *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdatePurpose()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMRequestUpsertBulk) SetInputTokens(v int) *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMRequestUpsertBulk) AddInputTokens(v int) *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMRequestUpsertBulk) UpdateInputTokens() *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMRequestUpsertBulk) SetOutputTokens(v int) *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMRequestUpsertBulk) AddOutputTokens(v int) *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMRequestUpsertBulk) UpdateOutputTokens() *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *LLMRequestUpsertBulk) SetLatencyMs(v int64) *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *LLMRequestUpsertBulk) AddLatencyMs(v int64) *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *LLMRequestUpsertBulk) UpdateLatencyMs() *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *LLMRequestUpsertBulk) SetSuccess(v bool) *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *LLMRequestUpsertBulk) UpdateSuccess() *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMRequestUpsertBulk) SetErrorMessage(v string) *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMRequestUpsertBulk) UpdateErrorMessage() *LLMRequestUpsertBulk {
	return u.Update(func(s *LLMRequestUpsert) {
		s.UpdateErrorMessage()
	})
}

// Exec executes the query.
func (u *LLMRequestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LLMRequestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMRequestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMRequestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
