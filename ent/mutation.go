// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmate/ent/dailygoal"
	"github.com/abhisek/prepmate/ent/llmrequest"
	"github.com/abhisek/prepmate/ent/practicesession"
	"github.com/abhisek/prepmate/ent/predicate"
	"github.com/abhisek/prepmate/ent/question"
	"github.com/abhisek/prepmate/ent/questionattempt"
	"github.com/abhisek/prepmate/ent/reviewschedule"
	"github.com/abhisek/prepmate/ent/studyplan"
	"github.com/abhisek/prepmate/ent/studysession"
	"github.com/abhisek/prepmate/ent/topic"
	"github.com/abhisek/prepmate/ent/topicprogress"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDailyGoal       = "DailyGoal"
	TypeLLMRequest      = "LLMRequest"
	TypePracticeSession = "PracticeSession"
	TypeQuestion        = "Question"
	TypeQuestionAttempt = "QuestionAttempt"
	TypeReviewSchedule  = "ReviewSchedule"
	TypeStudyPlan       = "StudyPlan"
	TypeStudySession    = "StudySession"
	TypeTopic           = "Topic"
	TypeTopicProgress   = "TopicProgress"
)

// DailyGoalMutation represents an operation that mutates the DailyGoal nodes in the graph.
type DailyGoalMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	user_id               *int
	adduser_id            *int
	date                  *time.Time
	target_problems       *int
	addtarget_problems    *int
	completed_problems    *int
	addcompleted_problems *int
	completed             *bool
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*DailyGoal, error)
	predicates            []predicate.DailyGoal
}

var _ ent.Mutation = (*DailyGoalMutation)(nil)

// dailygoalOption allows management of the mutation configuration using functional options.
type dailygoalOption func(*DailyGoalMutation)

// newDailyGoalMutation creates new mutation for the DailyGoal entity.
func newDailyGoalMutation(c config, op Op, opts ...dailygoalOption) *DailyGoalMutation {
	m := &DailyGoalMutation{
		config:        c,
		op:            op,
		typ:           TypeDailyGoal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDailyGoalID sets the ID field of the mutation.
func withDailyGoalID(id int) dailygoalOption {
	return func(m *DailyGoalMutation) {
		var (
			err   error
			once  sync.Once
			value *DailyGoal
		)
		m.oldValue = func(ctx context.Context) (*DailyGoal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DailyGoal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDailyGoal sets the old DailyGoal of the mutation.
func withDailyGoal(node *DailyGoal) dailygoalOption {
	return func(m *DailyGoalMutation) {
		m.oldValue = func(context.Context) (*DailyGoal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DailyGoalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DailyGoalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DailyGoalMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DailyGoalMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DailyGoal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DailyGoalMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DailyGoalMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the DailyGoal entity.
// If the DailyGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyGoalMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *DailyGoalMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *DailyGoalMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DailyGoalMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetDate sets the "date" field.
func (m *DailyGoalMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *DailyGoalMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the DailyGoal entity.
// If the DailyGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyGoalMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *DailyGoalMutation) ResetDate() {
	m.date = nil
}

// SetTargetProblems sets the "target_problems" field.
func (m *DailyGoalMutation) SetTargetProblems(i int) {
	m.target_problems = &i
	m.addtarget_problems = nil
}

// TargetProblems returns the value of the "target_problems" field in the mutation.
func (m *DailyGoalMutation) TargetProblems() (r int, exists bool) {
	v := m.target_problems
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetProblems returns the old "target_problems" field's value of the DailyGoal entity.
// If the DailyGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyGoalMutation) OldTargetProblems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetProblems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetProblems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetProblems: %w", err)
	}
	return oldValue.TargetProblems, nil
}

// AddTargetProblems adds i to the "target_problems" field.
func (m *DailyGoalMutation) AddTargetProblems(i int) {
	if m.addtarget_problems != nil {
		*m.addtarget_problems += i
	} else {
		m.addtarget_problems = &i
	}
}

// AddedTargetProblems returns the value that was added to the "target_problems" field in this mutation.
func (m *DailyGoalMutation) AddedTargetProblems() (r int, exists bool) {
	v := m.addtarget_problems
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetProblems resets all changes to the "target_problems" field.
func (m *DailyGoalMutation) ResetTargetProblems() {
	m.target_problems = nil
	m.addtarget_problems = nil
}

// SetCompletedProblems sets the "completed_problems" field.
func (m *DailyGoalMutation) SetCompletedProblems(i int) {
	m.completed_problems = &i
	m.addcompleted_problems = nil
}

// CompletedProblems returns the value of the "completed_problems" field in the mutation.
func (m *DailyGoalMutation) CompletedProblems() (r int, exists bool) {
	v := m.completed_problems
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedProblems returns the old "completed_problems" field's value of the DailyGoal entity.
// If the DailyGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyGoalMutation) OldCompletedProblems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedProblems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedProblems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedProblems: %w", err)
	}
	return oldValue.CompletedProblems, nil
}

// AddCompletedProblems adds i to the "completed_problems" field.
func (m *DailyGoalMutation) AddCompletedProblems(i int) {
	if m.addcompleted_problems != nil {
		*m.addcompleted_problems += i
	} else {
		m.addcompleted_problems = &i
	}
}

// AddedCompletedProblems returns the value that was added to the "completed_problems" field in this mutation.
func (m *DailyGoalMutation) AddedCompletedProblems() (r int, exists bool) {
	v := m.addcompleted_problems
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedProblems resets all changes to the "completed_problems" field.
func (m *DailyGoalMutation) ResetCompletedProblems() {
	m.completed_problems = nil
	m.addcompleted_problems = nil
}

// SetCompleted sets the "completed" field.
func (m *DailyGoalMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *DailyGoalMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the DailyGoal entity.
// If the DailyGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyGoalMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *DailyGoalMutation) ResetCompleted() {
	m.completed = nil
}

// Where appends a list predicates to the DailyGoalMutation builder.
func (m *DailyGoalMutation) Where(ps ...predicate.DailyGoal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DailyGoalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DailyGoalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DailyGoal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DailyGoalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DailyGoalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DailyGoal).
func (m *DailyGoalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DailyGoalMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, dailygoal.FieldUserID)
	}
	if m.date != nil {
		fields = append(fields, dailygoal.FieldDate)
	}
	if m.target_problems != nil {
		fields = append(fields, dailygoal.FieldTargetProblems)
	}
	if m.completed_problems != nil {
		fields = append(fields, dailygoal.FieldCompletedProblems)
	}
	if m.completed != nil {
		fields = append(fields, dailygoal.FieldCompleted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DailyGoalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dailygoal.FieldUserID:
		return m.UserID()
	case dailygoal.FieldDate:
		return m.Date()
	case dailygoal.FieldTargetProblems:
		return m.TargetProblems()
	case dailygoal.FieldCompletedProblems:
		return m.CompletedProblems()
	case dailygoal.FieldCompleted:
		return m.Completed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DailyGoalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dailygoal.FieldUserID:
		return m.OldUserID(ctx)
	case dailygoal.FieldDate:
		return m.OldDate(ctx)
	case dailygoal.FieldTargetProblems:
		return m.OldTargetProblems(ctx)
	case dailygoal.FieldCompletedProblems:
		return m.OldCompletedProblems(ctx)
	case dailygoal.FieldCompleted:
		return m.OldCompleted(ctx)
	}
	return nil, fmt.Errorf("unknown DailyGoal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyGoalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dailygoal.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case dailygoal.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case dailygoal.FieldTargetProblems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetProblems(v)
		return nil
	case dailygoal.FieldCompletedProblems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedProblems(v)
		return nil
	case dailygoal.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown DailyGoal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DailyGoalMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, dailygoal.FieldUserID)
	}
	if m.addtarget_problems != nil {
		fields = append(fields, dailygoal.FieldTargetProblems)
	}
	if m.addcompleted_problems != nil {
		fields = append(fields, dailygoal.FieldCompletedProblems)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DailyGoalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dailygoal.FieldUserID:
		return m.AddedUserID()
	case dailygoal.FieldTargetProblems:
		return m.AddedTargetProblems()
	case dailygoal.FieldCompletedProblems:
		return m.AddedCompletedProblems()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyGoalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dailygoal.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case dailygoal.FieldTargetProblems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetProblems(v)
		return nil
	case dailygoal.FieldCompletedProblems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedProblems(v)
		return nil
	}
	return fmt.Errorf("unknown DailyGoal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DailyGoalMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DailyGoalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DailyGoalMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DailyGoal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DailyGoalMutation) ResetField(name string) error {
	switch name {
	case dailygoal.FieldUserID:
		m.ResetUserID()
		return nil
	case dailygoal.FieldDate:
		m.ResetDate()
		return nil
	case dailygoal.FieldTargetProblems:
		m.ResetTargetProblems()
		return nil
	case dailygoal.FieldCompletedProblems:
		m.ResetCompletedProblems()
		return nil
	case dailygoal.FieldCompleted:
		m.ResetCompleted()
		return nil
	}
	return fmt.Errorf("unknown DailyGoal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DailyGoalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DailyGoalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DailyGoalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DailyGoalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DailyGoalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DailyGoalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DailyGoalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DailyGoal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DailyGoalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DailyGoal edge %s", name)
}

// LLMRequestMutation represents an operation that mutates the LLMRequest nodes in the graph.
type LLMRequestMutation struct {
	config
	op               Op
	typ              string
	id               *int
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequest, error)
	predicates       []predicate.LLMRequest
}

var _ ent.Mutation = (*LLMRequestMutation)(nil)

// llmrequestOption allows management of the mutation configuration using functional options.
type llmrequestOption func(*LLMRequestMutation)

// newLLMRequestMutation creates new mutation for the LLMRequest entity.
func newLLMRequestMutation(c config, op Op, opts ...llmrequestOption) *LLMRequestMutation {
	m := &LLMRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestID sets the ID field of the mutation.
func withLLMRequestID(id int) llmrequestOption {
	return func(m *LLMRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequest
		)
		m.oldValue = func(ctx context.Context) (*LLMRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequest sets the old LLMRequest of the mutation.
func withLLMRequest(node *LLMRequest) llmrequestOption {
	return func(m *LLMRequestMutation) {
		m.oldValue = func(context.Context) (*LLMRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *LLMRequestMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LLMRequestMutation builder.
func (m *LLMRequestMutation) Where(ps ...predicate.LLMRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequest).
func (m *LLMRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.provider != nil {
		fields = append(fields, llmrequest.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequest.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequest.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequest.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequest.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequest.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequest.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequest.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, llmrequest.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequest.FieldProvider:
		return m.Provider()
	case llmrequest.FieldModel:
		return m.Model()
	case llmrequest.FieldPurpose:
		return m.Purpose()
	case llmrequest.FieldInputTokens:
		return m.InputTokens()
	case llmrequest.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequest.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequest.FieldSuccess:
		return m.Success()
	case llmrequest.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequest.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequest.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequest.FieldModel:
		return m.OldModel(ctx)
	case llmrequest.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequest.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequest.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequest.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequest.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequest.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequest.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequest.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequest.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequest.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequest.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequest.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequest.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequest.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequest.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequest.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequest.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequest.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequest.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequest.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequest.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequest.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequest.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestMutation) ResetField(name string) error {
	switch name {
	case llmrequest.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequest.FieldModel:
		m.ResetModel()
		return nil
	case llmrequest.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequest.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequest.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequest.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequest.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequest.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequest edge %s", name)
}

// PracticeSessionMutation represents an operation that mutates the PracticeSession nodes in the graph.
type PracticeSessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	uid                   *string
	user_id               *int
	adduser_id            *int
	topic                 *string
	problem_name          *string
	difficulty            *string
	solved                *bool
	time_spent_minutes    *int
	addtime_spent_minutes *int
	code_submitted        *string
	notes                 *string
	attempted_at          *time.Time
	solved_at             *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*PracticeSession, error)
	predicates            []predicate.PracticeSession
}

var _ ent.Mutation = (*PracticeSessionMutation)(nil)

// practicesessionOption allows management of the mutation configuration using functional options.
type practicesessionOption func(*PracticeSessionMutation)

// newPracticeSessionMutation creates new mutation for the PracticeSession entity.
func newPracticeSessionMutation(c config, op Op, opts ...practicesessionOption) *PracticeSessionMutation {
	m := &PracticeSessionMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeSessionID sets the ID field of the mutation.
func withPracticeSessionID(id int) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeSession
		)
		m.oldValue = func(ctx context.Context) (*PracticeSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeSession sets the old PracticeSession of the mutation.
func withPracticeSession(node *PracticeSession) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		m.oldValue = func(context.Context) (*PracticeSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUID sets the "uid" field.
func (m *PracticeSessionMutation) SetUID(s string) {
	m.uid = &s
}

// UID returns the value of the "uid" field in the mutation.
func (m *PracticeSessionMutation) UID() (r string, exists bool) {
	v := m.uid
	if v == nil {
		return
	}
	return *v, true
}

// OldUID returns the old "uid" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldUID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUID: %w", err)
	}
	return oldValue.UID, nil
}

// ResetUID resets all changes to the "uid" field.
func (m *PracticeSessionMutation) ResetUID() {
	m.uid = nil
}

// SetUserID sets the "user_id" field.
func (m *PracticeSessionMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PracticeSessionMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *PracticeSessionMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *PracticeSessionMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PracticeSessionMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetTopic sets the "topic" field.
func (m *PracticeSessionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *PracticeSessionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *PracticeSessionMutation) ResetTopic() {
	m.topic = nil
}

// SetProblemName sets the "problem_name" field.
func (m *PracticeSessionMutation) SetProblemName(s string) {
	m.problem_name = &s
}

// ProblemName returns the value of the "problem_name" field in the mutation.
func (m *PracticeSessionMutation) ProblemName() (r string, exists bool) {
	v := m.problem_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemName returns the old "problem_name" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldProblemName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemName: %w", err)
	}
	return oldValue.ProblemName, nil
}

// ResetProblemName resets all changes to the "problem_name" field.
func (m *PracticeSessionMutation) ResetProblemName() {
	m.problem_name = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *PracticeSessionMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *PracticeSessionMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *PracticeSessionMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetSolved sets the "solved" field.
func (m *PracticeSessionMutation) SetSolved(b bool) {
	m.solved = &b
}

// Solved returns the value of the "solved" field in the mutation.
func (m *PracticeSessionMutation) Solved() (r bool, exists bool) {
	v := m.solved
	if v == nil {
		return
	}
	return *v, true
}

// OldSolved returns the old "solved" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldSolved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolved: %w", err)
	}
	return oldValue.Solved, nil
}

// ResetSolved resets all changes to the "solved" field.
func (m *PracticeSessionMutation) ResetSolved() {
	m.solved = nil
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (m *PracticeSessionMutation) SetTimeSpentMinutes(i int) {
	m.time_spent_minutes = &i
	m.addtime_spent_minutes = nil
}

// TimeSpentMinutes returns the value of the "time_spent_minutes" field in the mutation.
func (m *PracticeSessionMutation) TimeSpentMinutes() (r int, exists bool) {
	v := m.time_spent_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentMinutes returns the old "time_spent_minutes" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldTimeSpentMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentMinutes: %w", err)
	}
	return oldValue.TimeSpentMinutes, nil
}

// AddTimeSpentMinutes adds i to the "time_spent_minutes" field.
func (m *PracticeSessionMutation) AddTimeSpentMinutes(i int) {
	if m.addtime_spent_minutes != nil {
		*m.addtime_spent_minutes += i
	} else {
		m.addtime_spent_minutes = &i
	}
}

// AddedTimeSpentMinutes returns the value that was added to the "time_spent_minutes" field in this mutation.
func (m *PracticeSessionMutation) AddedTimeSpentMinutes() (r int, exists bool) {
	v := m.addtime_spent_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentMinutes resets all changes to the "time_spent_minutes" field.
func (m *PracticeSessionMutation) ResetTimeSpentMinutes() {
	m.time_spent_minutes = nil
	m.addtime_spent_minutes = nil
}

// SetCodeSubmitted sets the "code_submitted" field.
func (m *PracticeSessionMutation) SetCodeSubmitted(s string) {
	m.code_submitted = &s
}

// CodeSubmitted returns the value of the "code_submitted" field in the mutation.
func (m *PracticeSessionMutation) CodeSubmitted() (r string, exists bool) {
	v := m.code_submitted
	if v == nil {
		return
	}
	return *v, true
}

// OldCodeSubmitted returns the old "code_submitted" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldCodeSubmitted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodeSubmitted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodeSubmitted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodeSubmitted: %w", err)
	}
	return oldValue.CodeSubmitted, nil
}

// ClearCodeSubmitted clears the value of the "code_submitted" field.
func (m *PracticeSessionMutation) ClearCodeSubmitted() {
	m.code_submitted = nil
	m.clearedFields[practicesession.FieldCodeSubmitted] = struct{}{}
}

// CodeSubmittedCleared returns if the "code_submitted" field was cleared in this mutation.
func (m *PracticeSessionMutation) CodeSubmittedCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldCodeSubmitted]
	return ok
}

// ResetCodeSubmitted resets all changes to the "code_submitted" field.
func (m *PracticeSessionMutation) ResetCodeSubmitted() {
	m.code_submitted = nil
	delete(m.clearedFields, practicesession.FieldCodeSubmitted)
}

// SetNotes sets the "notes" field.
func (m *PracticeSessionMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *PracticeSessionMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *PracticeSessionMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[practicesession.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *PracticeSessionMutation) NotesCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *PracticeSessionMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, practicesession.FieldNotes)
}

// SetAttemptedAt sets the "attempted_at" field.
func (m *PracticeSessionMutation) SetAttemptedAt(t time.Time) {
	m.attempted_at = &t
}

// AttemptedAt returns the value of the "attempted_at" field in the mutation.
func (m *PracticeSessionMutation) AttemptedAt() (r time.Time, exists bool) {
	v := m.attempted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptedAt returns the old "attempted_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldAttemptedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptedAt: %w", err)
	}
	return oldValue.AttemptedAt, nil
}

// ResetAttemptedAt resets all changes to the "attempted_at" field.
func (m *PracticeSessionMutation) ResetAttemptedAt() {
	m.attempted_at = nil
}

// SetSolvedAt sets the "solved_at" field.
func (m *PracticeSessionMutation) SetSolvedAt(t time.Time) {
	m.solved_at = &t
}

// SolvedAt returns the value of the "solved_at" field in the mutation.
func (m *PracticeSessionMutation) SolvedAt() (r time.Time, exists bool) {
	v := m.solved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSolvedAt returns the old "solved_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldSolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolvedAt: %w", err)
	}
	return oldValue.SolvedAt, nil
}

// ClearSolvedAt clears the value of the "solved_at" field.
func (m *PracticeSessionMutation) ClearSolvedAt() {
	m.solved_at = nil
	m.clearedFields[practicesession.FieldSolvedAt] = struct{}{}
}

// SolvedAtCleared returns if the "solved_at" field was cleared in this mutation.
func (m *PracticeSessionMutation) SolvedAtCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldSolvedAt]
	return ok
}

// ResetSolvedAt resets all changes to the "solved_at" field.
func (m *PracticeSessionMutation) ResetSolvedAt() {
	m.solved_at = nil
	delete(m.clearedFields, practicesession.FieldSolvedAt)
}

// Where appends a list predicates to the PracticeSessionMutation builder.
func (m *PracticeSessionMutation) Where(ps ...predicate.PracticeSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeSession).
func (m *PracticeSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeSessionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.uid != nil {
		fields = append(fields, practicesession.FieldUID)
	}
	if m.user_id != nil {
		fields = append(fields, practicesession.FieldUserID)
	}
	if m.topic != nil {
		fields = append(fields, practicesession.FieldTopic)
	}
	if m.problem_name != nil {
		fields = append(fields, practicesession.FieldProblemName)
	}
	if m.difficulty != nil {
		fields = append(fields, practicesession.FieldDifficulty)
	}
	if m.solved != nil {
		fields = append(fields, practicesession.FieldSolved)
	}
	if m.time_spent_minutes != nil {
		fields = append(fields, practicesession.FieldTimeSpentMinutes)
	}
	if m.code_submitted != nil {
		fields = append(fields, practicesession.FieldCodeSubmitted)
	}
	if m.notes != nil {
		fields = append(fields, practicesession.FieldNotes)
	}
	if m.attempted_at != nil {
		fields = append(fields, practicesession.FieldAttemptedAt)
	}
	if m.solved_at != nil {
		fields = append(fields, practicesession.FieldSolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldUID:
		return m.UID()
	case practicesession.FieldUserID:
		return m.UserID()
	case practicesession.FieldTopic:
		return m.Topic()
	case practicesession.FieldProblemName:
		return m.ProblemName()
	case practicesession.FieldDifficulty:
		return m.Difficulty()
	case practicesession.FieldSolved:
		return m.Solved()
	case practicesession.FieldTimeSpentMinutes:
		return m.TimeSpentMinutes()
	case practicesession.FieldCodeSubmitted:
		return m.CodeSubmitted()
	case practicesession.FieldNotes:
		return m.Notes()
	case practicesession.FieldAttemptedAt:
		return m.AttemptedAt()
	case practicesession.FieldSolvedAt:
		return m.SolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practicesession.FieldUID:
		return m.OldUID(ctx)
	case practicesession.FieldUserID:
		return m.OldUserID(ctx)
	case practicesession.FieldTopic:
		return m.OldTopic(ctx)
	case practicesession.FieldProblemName:
		return m.OldProblemName(ctx)
	case practicesession.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case practicesession.FieldSolved:
		return m.OldSolved(ctx)
	case practicesession.FieldTimeSpentMinutes:
		return m.OldTimeSpentMinutes(ctx)
	case practicesession.FieldCodeSubmitted:
		return m.OldCodeSubmitted(ctx)
	case practicesession.FieldNotes:
		return m.OldNotes(ctx)
	case practicesession.FieldAttemptedAt:
		return m.OldAttemptedAt(ctx)
	case practicesession.FieldSolvedAt:
		return m.OldSolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUID(v)
		return nil
	case practicesession.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case practicesession.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case practicesession.FieldProblemName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemName(v)
		return nil
	case practicesession.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case practicesession.FieldSolved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolved(v)
		return nil
	case practicesession.FieldTimeSpentMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentMinutes(v)
		return nil
	case practicesession.FieldCodeSubmitted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodeSubmitted(v)
		return nil
	case practicesession.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case practicesession.FieldAttemptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptedAt(v)
		return nil
	case practicesession.FieldSolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeSessionMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, practicesession.FieldUserID)
	}
	if m.addtime_spent_minutes != nil {
		fields = append(fields, practicesession.FieldTimeSpentMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldUserID:
		return m.AddedUserID()
	case practicesession.FieldTimeSpentMinutes:
		return m.AddedTimeSpentMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case practicesession.FieldTimeSpentMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(practicesession.FieldCodeSubmitted) {
		fields = append(fields, practicesession.FieldCodeSubmitted)
	}
	if m.FieldCleared(practicesession.FieldNotes) {
		fields = append(fields, practicesession.FieldNotes)
	}
	if m.FieldCleared(practicesession.FieldSolvedAt) {
		fields = append(fields, practicesession.FieldSolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ClearField(name string) error {
	switch name {
	case practicesession.FieldCodeSubmitted:
		m.ClearCodeSubmitted()
		return nil
	case practicesession.FieldNotes:
		m.ClearNotes()
		return nil
	case practicesession.FieldSolvedAt:
		m.ClearSolvedAt()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ResetField(name string) error {
	switch name {
	case practicesession.FieldUID:
		m.ResetUID()
		return nil
	case practicesession.FieldUserID:
		m.ResetUserID()
		return nil
	case practicesession.FieldTopic:
		m.ResetTopic()
		return nil
	case practicesession.FieldProblemName:
		m.ResetProblemName()
		return nil
	case practicesession.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case practicesession.FieldSolved:
		m.ResetSolved()
		return nil
	case practicesession.FieldTimeSpentMinutes:
		m.ResetTimeSpentMinutes()
		return nil
	case practicesession.FieldCodeSubmitted:
		m.ResetCodeSubmitted()
		return nil
	case practicesession.FieldNotes:
		m.ResetNotes()
		return nil
	case practicesession.FieldAttemptedAt:
		m.ResetAttemptedAt()
		return nil
	case practicesession.FieldSolvedAt:
		m.ResetSolvedAt()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PracticeSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PracticeSession edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	topic_id      *int
	addtopic_id   *int
	question_type *string
	difficulty    *string
	question_text *string
	marks         *int
	addmarks      *int
	time_limit    *int
	addtime_limit *int
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Question, error)
	predicates    []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id int) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicID sets the "topic_id" field.
func (m *QuestionMutation) SetTopicID(i int) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *QuestionMutation) TopicID() (r int, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *QuestionMutation) AddTopicID(i int) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *QuestionMutation) AddedTopicID() (r int, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *QuestionMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
}

// SetQuestionType sets the "question_type" field.
func (m *QuestionMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *QuestionMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *QuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *QuestionMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *QuestionMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *QuestionMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetQuestionText sets the "question_text" field.
func (m *QuestionMutation) SetQuestionText(s string) {
	m.question_text = &s
}

// QuestionText returns the value of the "question_text" field in the mutation.
func (m *QuestionMutation) QuestionText() (r string, exists bool) {
	v := m.question_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionText returns the old "question_text" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionText: %w", err)
	}
	return oldValue.QuestionText, nil
}

// ResetQuestionText resets all changes to the "question_text" field.
func (m *QuestionMutation) ResetQuestionText() {
	m.question_text = nil
}

// SetMarks sets the "marks" field.
func (m *QuestionMutation) SetMarks(i int) {
	m.marks = &i
	m.addmarks = nil
}

// Marks returns the value of the "marks" field in the mutation.
func (m *QuestionMutation) Marks() (r int, exists bool) {
	v := m.marks
	if v == nil {
		return
	}
	return *v, true
}

// OldMarks returns the old "marks" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldMarks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarks: %w", err)
	}
	return oldValue.Marks, nil
}

// AddMarks adds i to the "marks" field.
func (m *QuestionMutation) AddMarks(i int) {
	if m.addmarks != nil {
		*m.addmarks += i
	} else {
		m.addmarks = &i
	}
}

// AddedMarks returns the value that was added to the "marks" field in this mutation.
func (m *QuestionMutation) AddedMarks() (r int, exists bool) {
	v := m.addmarks
	if v == nil {
		return
	}
	return *v, true
}

// ResetMarks resets all changes to the "marks" field.
func (m *QuestionMutation) ResetMarks() {
	m.marks = nil
	m.addmarks = nil
}

// SetTimeLimit sets the "time_limit" field.
func (m *QuestionMutation) SetTimeLimit(i int) {
	m.time_limit = &i
	m.addtime_limit = nil
}

// TimeLimit returns the value of the "time_limit" field in the mutation.
func (m *QuestionMutation) TimeLimit() (r int, exists bool) {
	v := m.time_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeLimit returns the old "time_limit" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTimeLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeLimit: %w", err)
	}
	return oldValue.TimeLimit, nil
}

// AddTimeLimit adds i to the "time_limit" field.
func (m *QuestionMutation) AddTimeLimit(i int) {
	if m.addtime_limit != nil {
		*m.addtime_limit += i
	} else {
		m.addtime_limit = &i
	}
}

// AddedTimeLimit returns the value that was added to the "time_limit" field in this mutation.
func (m *QuestionMutation) AddedTimeLimit() (r int, exists bool) {
	v := m.addtime_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeLimit resets all changes to the "time_limit" field.
func (m *QuestionMutation) ResetTimeLimit() {
	m.time_limit = nil
	m.addtime_limit = nil
}

// SetPayload sets the "payload" field.
func (m *QuestionMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *QuestionMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *QuestionMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.topic_id != nil {
		fields = append(fields, question.FieldTopicID)
	}
	if m.question_type != nil {
		fields = append(fields, question.FieldQuestionType)
	}
	if m.difficulty != nil {
		fields = append(fields, question.FieldDifficulty)
	}
	if m.question_text != nil {
		fields = append(fields, question.FieldQuestionText)
	}
	if m.marks != nil {
		fields = append(fields, question.FieldMarks)
	}
	if m.time_limit != nil {
		fields = append(fields, question.FieldTimeLimit)
	}
	if m.payload != nil {
		fields = append(fields, question.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldTopicID:
		return m.TopicID()
	case question.FieldQuestionType:
		return m.QuestionType()
	case question.FieldDifficulty:
		return m.Difficulty()
	case question.FieldQuestionText:
		return m.QuestionText()
	case question.FieldMarks:
		return m.Marks()
	case question.FieldTimeLimit:
		return m.TimeLimit()
	case question.FieldPayload:
		return m.Payload()
	case question.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldTopicID:
		return m.OldTopicID(ctx)
	case question.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case question.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case question.FieldQuestionText:
		return m.OldQuestionText(ctx)
	case question.FieldMarks:
		return m.OldMarks(ctx)
	case question.FieldTimeLimit:
		return m.OldTimeLimit(ctx)
	case question.FieldPayload:
		return m.OldPayload(ctx)
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case question.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case question.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case question.FieldQuestionText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionText(v)
		return nil
	case question.FieldMarks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarks(v)
		return nil
	case question.FieldTimeLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeLimit(v)
		return nil
	case question.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.addtopic_id != nil {
		fields = append(fields, question.FieldTopicID)
	}
	if m.addmarks != nil {
		fields = append(fields, question.FieldMarks)
	}
	if m.addtime_limit != nil {
		fields = append(fields, question.FieldTimeLimit)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldTopicID:
		return m.AddedTopicID()
	case question.FieldMarks:
		return m.AddedMarks()
	case question.FieldTimeLimit:
		return m.AddedTimeLimit()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	case question.FieldMarks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMarks(v)
		return nil
	case question.FieldTimeLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeLimit(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldTopicID:
		m.ResetTopicID()
		return nil
	case question.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case question.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case question.FieldQuestionText:
		m.ResetQuestionText()
		return nil
	case question.FieldMarks:
		m.ResetMarks()
		return nil
	case question.FieldTimeLimit:
		m.ResetTimeLimit()
		return nil
	case question.FieldPayload:
		m.ResetPayload()
		return nil
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Question edge %s", name)
}

// QuestionAttemptMutation represents an operation that mutates the QuestionAttempt nodes in the graph.
type QuestionAttemptMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	uid                 *string
	user_id             *int
	adduser_id          *int
	question_id         *int
	addquestion_id      *int
	answer              *string
	is_correct          *bool
	score               *float64
	addscore            *float64
	time_taken          *int
	addtime_taken       *int
	confidence_level    *int
	addconfidence_level *int
	attempted_at        *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*QuestionAttempt, error)
	predicates          []predicate.QuestionAttempt
}

var _ ent.Mutation = (*QuestionAttemptMutation)(nil)

// questionattemptOption allows management of the mutation configuration using functional options.
type questionattemptOption func(*QuestionAttemptMutation)

// newQuestionAttemptMutation creates new mutation for the QuestionAttempt entity.
func newQuestionAttemptMutation(c config, op Op, opts ...questionattemptOption) *QuestionAttemptMutation {
	m := &QuestionAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionAttemptID sets the ID field of the mutation.
func withQuestionAttemptID(id int) questionattemptOption {
	return func(m *QuestionAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionAttempt
		)
		m.oldValue = func(ctx context.Context) (*QuestionAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionAttempt sets the old QuestionAttempt of the mutation.
func withQuestionAttempt(node *QuestionAttempt) questionattemptOption {
	return func(m *QuestionAttemptMutation) {
		m.oldValue = func(context.Context) (*QuestionAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionAttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionAttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUID sets the "uid" field.
func (m *QuestionAttemptMutation) SetUID(s string) {
	m.uid = &s
}

// UID returns the value of the "uid" field in the mutation.
func (m *QuestionAttemptMutation) UID() (r string, exists bool) {
	v := m.uid
	if v == nil {
		return
	}
	return *v, true
}

// OldUID returns the old "uid" field's value of the QuestionAttempt entity.
// If the QuestionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAttemptMutation) OldUID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUID: %w", err)
	}
	return oldValue.UID, nil
}

// ResetUID resets all changes to the "uid" field.
func (m *QuestionAttemptMutation) ResetUID() {
	m.uid = nil
}

// SetUserID sets the "user_id" field.
func (m *QuestionAttemptMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QuestionAttemptMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QuestionAttempt entity.
// If the QuestionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAttemptMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *QuestionAttemptMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *QuestionAttemptMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QuestionAttemptMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *QuestionAttemptMutation) SetQuestionID(i int) {
	m.question_id = &i
	m.addquestion_id = nil
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *QuestionAttemptMutation) QuestionID() (r int, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the QuestionAttempt entity.
// If the QuestionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAttemptMutation) OldQuestionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// AddQuestionID adds i to the "question_id" field.
func (m *QuestionAttemptMutation) AddQuestionID(i int) {
	if m.addquestion_id != nil {
		*m.addquestion_id += i
	} else {
		m.addquestion_id = &i
	}
}

// AddedQuestionID returns the value that was added to the "question_id" field in this mutation.
func (m *QuestionAttemptMutation) AddedQuestionID() (r int, exists bool) {
	v := m.addquestion_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *QuestionAttemptMutation) ResetQuestionID() {
	m.question_id = nil
	m.addquestion_id = nil
}

// SetAnswer sets the "answer" field.
func (m *QuestionAttemptMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *QuestionAttemptMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the QuestionAttempt entity.
// If the QuestionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAttemptMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ResetAnswer resets all changes to the "answer" field.
func (m *QuestionAttemptMutation) ResetAnswer() {
	m.answer = nil
}

// SetIsCorrect sets the "is_correct" field.
func (m *QuestionAttemptMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *QuestionAttemptMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the QuestionAttempt entity.
// If the QuestionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAttemptMutation) OldIsCorrect(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (m *QuestionAttemptMutation) ClearIsCorrect() {
	m.is_correct = nil
	m.clearedFields[questionattempt.FieldIsCorrect] = struct{}{}
}

// IsCorrectCleared returns if the "is_correct" field was cleared in this mutation.
func (m *QuestionAttemptMutation) IsCorrectCleared() bool {
	_, ok := m.clearedFields[questionattempt.FieldIsCorrect]
	return ok
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *QuestionAttemptMutation) ResetIsCorrect() {
	m.is_correct = nil
	delete(m.clearedFields, questionattempt.FieldIsCorrect)
}

// SetScore sets the "score" field.
func (m *QuestionAttemptMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *QuestionAttemptMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the QuestionAttempt entity.
// If the QuestionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAttemptMutation) OldScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *QuestionAttemptMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *QuestionAttemptMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *QuestionAttemptMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[questionattempt.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *QuestionAttemptMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[questionattempt.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *QuestionAttemptMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, questionattempt.FieldScore)
}

// SetTimeTaken sets the "time_taken" field.
func (m *QuestionAttemptMutation) SetTimeTaken(i int) {
	m.time_taken = &i
	m.addtime_taken = nil
}

// TimeTaken returns the value of the "time_taken" field in the mutation.
func (m *QuestionAttemptMutation) TimeTaken() (r int, exists bool) {
	v := m.time_taken
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeTaken returns the old "time_taken" field's value of the QuestionAttempt entity.
// If the QuestionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAttemptMutation) OldTimeTaken(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeTaken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeTaken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeTaken: %w", err)
	}
	return oldValue.TimeTaken, nil
}

// AddTimeTaken adds i to the "time_taken" field.
func (m *QuestionAttemptMutation) AddTimeTaken(i int) {
	if m.addtime_taken != nil {
		*m.addtime_taken += i
	} else {
		m.addtime_taken = &i
	}
}

// AddedTimeTaken returns the value that was added to the "time_taken" field in this mutation.
func (m *QuestionAttemptMutation) AddedTimeTaken() (r int, exists bool) {
	v := m.addtime_taken
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeTaken resets all changes to the "time_taken" field.
func (m *QuestionAttemptMutation) ResetTimeTaken() {
	m.time_taken = nil
	m.addtime_taken = nil
}

// SetConfidenceLevel sets the "confidence_level" field.
func (m *QuestionAttemptMutation) SetConfidenceLevel(i int) {
	m.confidence_level = &i
	m.addconfidence_level = nil
}

// ConfidenceLevel returns the value of the "confidence_level" field in the mutation.
func (m *QuestionAttemptMutation) ConfidenceLevel() (r int, exists bool) {
	v := m.confidence_level
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceLevel returns the old "confidence_level" field's value of the QuestionAttempt entity.
// If the QuestionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAttemptMutation) OldConfidenceLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceLevel: %w", err)
	}
	return oldValue.ConfidenceLevel, nil
}

// AddConfidenceLevel adds i to the "confidence_level" field.
func (m *QuestionAttemptMutation) AddConfidenceLevel(i int) {
	if m.addconfidence_level != nil {
		*m.addconfidence_level += i
	} else {
		m.addconfidence_level = &i
	}
}

// AddedConfidenceLevel returns the value that was added to the "confidence_level" field in this mutation.
func (m *QuestionAttemptMutation) AddedConfidenceLevel() (r int, exists bool) {
	v := m.addconfidence_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceLevel resets all changes to the "confidence_level" field.
func (m *QuestionAttemptMutation) ResetConfidenceLevel() {
	m.confidence_level = nil
	m.addconfidence_level = nil
}

// SetAttemptedAt sets the "attempted_at" field.
func (m *QuestionAttemptMutation) SetAttemptedAt(t time.Time) {
	m.attempted_at = &t
}

// AttemptedAt returns the value of the "attempted_at" field in the mutation.
func (m *QuestionAttemptMutation) AttemptedAt() (r time.Time, exists bool) {
	v := m.attempted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptedAt returns the old "attempted_at" field's value of the QuestionAttempt entity.
// If the QuestionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAttemptMutation) OldAttemptedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptedAt: %w", err)
	}
	return oldValue.AttemptedAt, nil
}

// ResetAttemptedAt resets all changes to the "attempted_at" field.
func (m *QuestionAttemptMutation) ResetAttemptedAt() {
	m.attempted_at = nil
}

// Where appends a list predicates to the QuestionAttemptMutation builder.
func (m *QuestionAttemptMutation) Where(ps ...predicate.QuestionAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionAttempt).
func (m *QuestionAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionAttemptMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.uid != nil {
		fields = append(fields, questionattempt.FieldUID)
	}
	if m.user_id != nil {
		fields = append(fields, questionattempt.FieldUserID)
	}
	if m.question_id != nil {
		fields = append(fields, questionattempt.FieldQuestionID)
	}
	if m.answer != nil {
		fields = append(fields, questionattempt.FieldAnswer)
	}
	if m.is_correct != nil {
		fields = append(fields, questionattempt.FieldIsCorrect)
	}
	if m.score != nil {
		fields = append(fields, questionattempt.FieldScore)
	}
	if m.time_taken != nil {
		fields = append(fields, questionattempt.FieldTimeTaken)
	}
	if m.confidence_level != nil {
		fields = append(fields, questionattempt.FieldConfidenceLevel)
	}
	if m.attempted_at != nil {
		fields = append(fields, questionattempt.FieldAttemptedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionattempt.FieldUID:
		return m.UID()
	case questionattempt.FieldUserID:
		return m.UserID()
	case questionattempt.FieldQuestionID:
		return m.QuestionID()
	case questionattempt.FieldAnswer:
		return m.Answer()
	case questionattempt.FieldIsCorrect:
		return m.IsCorrect()
	case questionattempt.FieldScore:
		return m.Score()
	case questionattempt.FieldTimeTaken:
		return m.TimeTaken()
	case questionattempt.FieldConfidenceLevel:
		return m.ConfidenceLevel()
	case questionattempt.FieldAttemptedAt:
		return m.AttemptedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionattempt.FieldUID:
		return m.OldUID(ctx)
	case questionattempt.FieldUserID:
		return m.OldUserID(ctx)
	case questionattempt.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case questionattempt.FieldAnswer:
		return m.OldAnswer(ctx)
	case questionattempt.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	case questionattempt.FieldScore:
		return m.OldScore(ctx)
	case questionattempt.FieldTimeTaken:
		return m.OldTimeTaken(ctx)
	case questionattempt.FieldConfidenceLevel:
		return m.OldConfidenceLevel(ctx)
	case questionattempt.FieldAttemptedAt:
		return m.OldAttemptedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionattempt.FieldUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUID(v)
		return nil
	case questionattempt.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case questionattempt.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case questionattempt.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case questionattempt.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	case questionattempt.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case questionattempt.FieldTimeTaken:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeTaken(v)
		return nil
	case questionattempt.FieldConfidenceLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceLevel(v)
		return nil
	case questionattempt.FieldAttemptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionAttemptMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, questionattempt.FieldUserID)
	}
	if m.addquestion_id != nil {
		fields = append(fields, questionattempt.FieldQuestionID)
	}
	if m.addscore != nil {
		fields = append(fields, questionattempt.FieldScore)
	}
	if m.addtime_taken != nil {
		fields = append(fields, questionattempt.FieldTimeTaken)
	}
	if m.addconfidence_level != nil {
		fields = append(fields, questionattempt.FieldConfidenceLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questionattempt.FieldUserID:
		return m.AddedUserID()
	case questionattempt.FieldQuestionID:
		return m.AddedQuestionID()
	case questionattempt.FieldScore:
		return m.AddedScore()
	case questionattempt.FieldTimeTaken:
		return m.AddedTimeTaken()
	case questionattempt.FieldConfidenceLevel:
		return m.AddedConfidenceLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questionattempt.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case questionattempt.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionID(v)
		return nil
	case questionattempt.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case questionattempt.FieldTimeTaken:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeTaken(v)
		return nil
	case questionattempt.FieldConfidenceLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceLevel(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questionattempt.FieldIsCorrect) {
		fields = append(fields, questionattempt.FieldIsCorrect)
	}
	if m.FieldCleared(questionattempt.FieldScore) {
		fields = append(fields, questionattempt.FieldScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionAttemptMutation) ClearField(name string) error {
	switch name {
	case questionattempt.FieldIsCorrect:
		m.ClearIsCorrect()
		return nil
	case questionattempt.FieldScore:
		m.ClearScore()
		return nil
	}
	return fmt.Errorf("unknown QuestionAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionAttemptMutation) ResetField(name string) error {
	switch name {
	case questionattempt.FieldUID:
		m.ResetUID()
		return nil
	case questionattempt.FieldUserID:
		m.ResetUserID()
		return nil
	case questionattempt.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case questionattempt.FieldAnswer:
		m.ResetAnswer()
		return nil
	case questionattempt.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	case questionattempt.FieldScore:
		m.ResetScore()
		return nil
	case questionattempt.FieldTimeTaken:
		m.ResetTimeTaken()
		return nil
	case questionattempt.FieldConfidenceLevel:
		m.ResetConfidenceLevel()
		return nil
	case questionattempt.FieldAttemptedAt:
		m.ResetAttemptedAt()
		return nil
	}
	return fmt.Errorf("unknown QuestionAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionAttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionAttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionAttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuestionAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionAttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuestionAttempt edge %s", name)
}

// ReviewScheduleMutation represents an operation that mutates the ReviewSchedule nodes in the graph.
type ReviewScheduleMutation struct {
	config
	op               Op
	typ              string
	id               *int
	user_id          *int
	adduser_id       *int
	topic_id         *int
	addtopic_id      *int
	interval_days    *int
	addinterval_days *int
	ease_factor      *float64
	addease_factor   *float64
	review_count     *int
	addreview_count  *int
	next_review_date *time.Time
	last_reviewed    *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ReviewSchedule, error)
	predicates       []predicate.ReviewSchedule
}

var _ ent.Mutation = (*ReviewScheduleMutation)(nil)

// reviewscheduleOption allows management of the mutation configuration using functional options.
type reviewscheduleOption func(*ReviewScheduleMutation)

// newReviewScheduleMutation creates new mutation for the ReviewSchedule entity.
func newReviewScheduleMutation(c config, op Op, opts ...reviewscheduleOption) *ReviewScheduleMutation {
	m := &ReviewScheduleMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewSchedule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewScheduleID sets the ID field of the mutation.
func withReviewScheduleID(id int) reviewscheduleOption {
	return func(m *ReviewScheduleMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewSchedule
		)
		m.oldValue = func(ctx context.Context) (*ReviewSchedule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewSchedule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewSchedule sets the old ReviewSchedule of the mutation.
func withReviewSchedule(node *ReviewSchedule) reviewscheduleOption {
	return func(m *ReviewScheduleMutation) {
		m.oldValue = func(context.Context) (*ReviewSchedule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewScheduleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewScheduleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewScheduleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewScheduleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewSchedule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ReviewScheduleMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReviewScheduleMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReviewSchedule entity.
// If the ReviewSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewScheduleMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *ReviewScheduleMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *ReviewScheduleMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReviewScheduleMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *ReviewScheduleMutation) SetTopicID(i int) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *ReviewScheduleMutation) TopicID() (r int, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the ReviewSchedule entity.
// If the ReviewSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewScheduleMutation) OldTopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *ReviewScheduleMutation) AddTopicID(i int) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *ReviewScheduleMutation) AddedTopicID() (r int, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *ReviewScheduleMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *ReviewScheduleMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *ReviewScheduleMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the ReviewSchedule entity.
// If the ReviewSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewScheduleMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *ReviewScheduleMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *ReviewScheduleMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *ReviewScheduleMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetEaseFactor sets the "ease_factor" field.
func (m *ReviewScheduleMutation) SetEaseFactor(f float64) {
	m.ease_factor = &f
	m.addease_factor = nil
}

// EaseFactor returns the value of the "ease_factor" field in the mutation.
func (m *ReviewScheduleMutation) EaseFactor() (r float64, exists bool) {
	v := m.ease_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseFactor returns the old "ease_factor" field's value of the ReviewSchedule entity.
// If the ReviewSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewScheduleMutation) OldEaseFactor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseFactor: %w", err)
	}
	return oldValue.EaseFactor, nil
}

// AddEaseFactor adds f to the "ease_factor" field.
func (m *ReviewScheduleMutation) AddEaseFactor(f float64) {
	if m.addease_factor != nil {
		*m.addease_factor += f
	} else {
		m.addease_factor = &f
	}
}

// AddedEaseFactor returns the value that was added to the "ease_factor" field in this mutation.
func (m *ReviewScheduleMutation) AddedEaseFactor() (r float64, exists bool) {
	v := m.addease_factor
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseFactor resets all changes to the "ease_factor" field.
func (m *ReviewScheduleMutation) ResetEaseFactor() {
	m.ease_factor = nil
	m.addease_factor = nil
}

// SetReviewCount sets the "review_count" field.
func (m *ReviewScheduleMutation) SetReviewCount(i int) {
	m.review_count = &i
	m.addreview_count = nil
}

// ReviewCount returns the value of the "review_count" field in the mutation.
func (m *ReviewScheduleMutation) ReviewCount() (r int, exists bool) {
	v := m.review_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewCount returns the old "review_count" field's value of the ReviewSchedule entity.
// If the ReviewSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewScheduleMutation) OldReviewCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewCount: %w", err)
	}
	return oldValue.ReviewCount, nil
}

// AddReviewCount adds i to the "review_count" field.
func (m *ReviewScheduleMutation) AddReviewCount(i int) {
	if m.addreview_count != nil {
		*m.addreview_count += i
	} else {
		m.addreview_count = &i
	}
}

// AddedReviewCount returns the value that was added to the "review_count" field in this mutation.
func (m *ReviewScheduleMutation) AddedReviewCount() (r int, exists bool) {
	v := m.addreview_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewCount resets all changes to the "review_count" field.
func (m *ReviewScheduleMutation) ResetReviewCount() {
	m.review_count = nil
	m.addreview_count = nil
}

// SetNextReviewDate sets the "next_review_date" field.
func (m *ReviewScheduleMutation) SetNextReviewDate(t time.Time) {
	m.next_review_date = &t
}

// NextReviewDate returns the value of the "next_review_date" field in the mutation.
func (m *ReviewScheduleMutation) NextReviewDate() (r time.Time, exists bool) {
	v := m.next_review_date
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewDate returns the old "next_review_date" field's value of the ReviewSchedule entity.
// If the ReviewSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewScheduleMutation) OldNextReviewDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewDate: %w", err)
	}
	return oldValue.NextReviewDate, nil
}

// ResetNextReviewDate resets all changes to the "next_review_date" field.
func (m *ReviewScheduleMutation) ResetNextReviewDate() {
	m.next_review_date = nil
}

// SetLastReviewed sets the "last_reviewed" field.
func (m *ReviewScheduleMutation) SetLastReviewed(t time.Time) {
	m.last_reviewed = &t
}

// LastReviewed returns the value of the "last_reviewed" field in the mutation.
func (m *ReviewScheduleMutation) LastReviewed() (r time.Time, exists bool) {
	v := m.last_reviewed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewed returns the old "last_reviewed" field's value of the ReviewSchedule entity.
// If the ReviewSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewScheduleMutation) OldLastReviewed(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewed: %w", err)
	}
	return oldValue.LastReviewed, nil
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (m *ReviewScheduleMutation) ClearLastReviewed() {
	m.last_reviewed = nil
	m.clearedFields[reviewschedule.FieldLastReviewed] = struct{}{}
}

// LastReviewedCleared returns if the "last_reviewed" field was cleared in this mutation.
func (m *ReviewScheduleMutation) LastReviewedCleared() bool {
	_, ok := m.clearedFields[reviewschedule.FieldLastReviewed]
	return ok
}

// ResetLastReviewed resets all changes to the "last_reviewed" field.
func (m *ReviewScheduleMutation) ResetLastReviewed() {
	m.last_reviewed = nil
	delete(m.clearedFields, reviewschedule.FieldLastReviewed)
}

// Where appends a list predicates to the ReviewScheduleMutation builder.
func (m *ReviewScheduleMutation) Where(ps ...predicate.ReviewSchedule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewScheduleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewScheduleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewSchedule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewScheduleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewScheduleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewSchedule).
func (m *ReviewScheduleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewScheduleMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, reviewschedule.FieldUserID)
	}
	if m.topic_id != nil {
		fields = append(fields, reviewschedule.FieldTopicID)
	}
	if m.interval_days != nil {
		fields = append(fields, reviewschedule.FieldIntervalDays)
	}
	if m.ease_factor != nil {
		fields = append(fields, reviewschedule.FieldEaseFactor)
	}
	if m.review_count != nil {
		fields = append(fields, reviewschedule.FieldReviewCount)
	}
	if m.next_review_date != nil {
		fields = append(fields, reviewschedule.FieldNextReviewDate)
	}
	if m.last_reviewed != nil {
		fields = append(fields, reviewschedule.FieldLastReviewed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewScheduleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewschedule.FieldUserID:
		return m.UserID()
	case reviewschedule.FieldTopicID:
		return m.TopicID()
	case reviewschedule.FieldIntervalDays:
		return m.IntervalDays()
	case reviewschedule.FieldEaseFactor:
		return m.EaseFactor()
	case reviewschedule.FieldReviewCount:
		return m.ReviewCount()
	case reviewschedule.FieldNextReviewDate:
		return m.NextReviewDate()
	case reviewschedule.FieldLastReviewed:
		return m.LastReviewed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewScheduleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewschedule.FieldUserID:
		return m.OldUserID(ctx)
	case reviewschedule.FieldTopicID:
		return m.OldTopicID(ctx)
	case reviewschedule.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case reviewschedule.FieldEaseFactor:
		return m.OldEaseFactor(ctx)
	case reviewschedule.FieldReviewCount:
		return m.OldReviewCount(ctx)
	case reviewschedule.FieldNextReviewDate:
		return m.OldNextReviewDate(ctx)
	case reviewschedule.FieldLastReviewed:
		return m.OldLastReviewed(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewSchedule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewScheduleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewschedule.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case reviewschedule.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case reviewschedule.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case reviewschedule.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseFactor(v)
		return nil
	case reviewschedule.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewCount(v)
		return nil
	case reviewschedule.FieldNextReviewDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewDate(v)
		return nil
	case reviewschedule.FieldLastReviewed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewed(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewSchedule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewScheduleMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, reviewschedule.FieldUserID)
	}
	if m.addtopic_id != nil {
		fields = append(fields, reviewschedule.FieldTopicID)
	}
	if m.addinterval_days != nil {
		fields = append(fields, reviewschedule.FieldIntervalDays)
	}
	if m.addease_factor != nil {
		fields = append(fields, reviewschedule.FieldEaseFactor)
	}
	if m.addreview_count != nil {
		fields = append(fields, reviewschedule.FieldReviewCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewScheduleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewschedule.FieldUserID:
		return m.AddedUserID()
	case reviewschedule.FieldTopicID:
		return m.AddedTopicID()
	case reviewschedule.FieldIntervalDays:
		return m.AddedIntervalDays()
	case reviewschedule.FieldEaseFactor:
		return m.AddedEaseFactor()
	case reviewschedule.FieldReviewCount:
		return m.AddedReviewCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewScheduleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewschedule.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case reviewschedule.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	case reviewschedule.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case reviewschedule.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseFactor(v)
		return nil
	case reviewschedule.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewCount(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewSchedule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewScheduleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reviewschedule.FieldLastReviewed) {
		fields = append(fields, reviewschedule.FieldLastReviewed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewScheduleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewScheduleMutation) ClearField(name string) error {
	switch name {
	case reviewschedule.FieldLastReviewed:
		m.ClearLastReviewed()
		return nil
	}
	return fmt.Errorf("unknown ReviewSchedule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewScheduleMutation) ResetField(name string) error {
	switch name {
	case reviewschedule.FieldUserID:
		m.ResetUserID()
		return nil
	case reviewschedule.FieldTopicID:
		m.ResetTopicID()
		return nil
	case reviewschedule.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case reviewschedule.FieldEaseFactor:
		m.ResetEaseFactor()
		return nil
	case reviewschedule.FieldReviewCount:
		m.ResetReviewCount()
		return nil
	case reviewschedule.FieldNextReviewDate:
		m.ResetNextReviewDate()
		return nil
	case reviewschedule.FieldLastReviewed:
		m.ResetLastReviewed()
		return nil
	}
	return fmt.Errorf("unknown ReviewSchedule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewScheduleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewScheduleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewScheduleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewScheduleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewScheduleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewScheduleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewScheduleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewSchedule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewScheduleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewSchedule edge %s", name)
}

// StudyPlanMutation represents an operation that mutates the StudyPlan nodes in the graph.
type StudyPlanMutation struct {
	config
	op             Op
	typ            string
	id             *int
	user_id        *int
	adduser_id     *int
	subject        *string
	exam_type      *string
	exam_date      *time.Time
	daily_hours    *float64
	adddaily_hours *float64
	target_grade   *string
	status         *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*StudyPlan, error)
	predicates     []predicate.StudyPlan
}

var _ ent.Mutation = (*StudyPlanMutation)(nil)

// studyplanOption allows management of the mutation configuration using functional options.
type studyplanOption func(*StudyPlanMutation)

// newStudyPlanMutation creates new mutation for the StudyPlan entity.
func newStudyPlanMutation(c config, op Op, opts ...studyplanOption) *StudyPlanMutation {
	m := &StudyPlanMutation{
		config:        c,
		op:            op,
		typ:           TypeStudyPlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudyPlanID sets the ID field of the mutation.
func withStudyPlanID(id int) studyplanOption {
	return func(m *StudyPlanMutation) {
		var (
			err   error
			once  sync.Once
			value *StudyPlan
		)
		m.oldValue = func(ctx context.Context) (*StudyPlan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudyPlan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudyPlan sets the old StudyPlan of the mutation.
func withStudyPlan(node *StudyPlan) studyplanOption {
	return func(m *StudyPlanMutation) {
		m.oldValue = func(context.Context) (*StudyPlan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudyPlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudyPlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudyPlanMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudyPlanMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudyPlan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *StudyPlanMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *StudyPlanMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *StudyPlanMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *StudyPlanMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *StudyPlanMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetSubject sets the "subject" field.
func (m *StudyPlanMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *StudyPlanMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *StudyPlanMutation) ResetSubject() {
	m.subject = nil
}

// SetExamType sets the "exam_type" field.
func (m *StudyPlanMutation) SetExamType(s string) {
	m.exam_type = &s
}

// ExamType returns the value of the "exam_type" field in the mutation.
func (m *StudyPlanMutation) ExamType() (r string, exists bool) {
	v := m.exam_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExamType returns the old "exam_type" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldExamType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamType: %w", err)
	}
	return oldValue.ExamType, nil
}

// ResetExamType resets all changes to the "exam_type" field.
func (m *StudyPlanMutation) ResetExamType() {
	m.exam_type = nil
}

// SetExamDate sets the "exam_date" field.
func (m *StudyPlanMutation) SetExamDate(t time.Time) {
	m.exam_date = &t
}

// ExamDate returns the value of the "exam_date" field in the mutation.
func (m *StudyPlanMutation) ExamDate() (r time.Time, exists bool) {
	v := m.exam_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExamDate returns the old "exam_date" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldExamDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamDate: %w", err)
	}
	return oldValue.ExamDate, nil
}

// ResetExamDate resets all changes to the "exam_date" field.
func (m *StudyPlanMutation) ResetExamDate() {
	m.exam_date = nil
}

// SetDailyHours sets the "daily_hours" field.
func (m *StudyPlanMutation) SetDailyHours(f float64) {
	m.daily_hours = &f
	m.adddaily_hours = nil
}

// DailyHours returns the value of the "daily_hours" field in the mutation.
func (m *StudyPlanMutation) DailyHours() (r float64, exists bool) {
	v := m.daily_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyHours returns the old "daily_hours" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldDailyHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyHours: %w", err)
	}
	return oldValue.DailyHours, nil
}

// AddDailyHours adds f to the "daily_hours" field.
func (m *StudyPlanMutation) AddDailyHours(f float64) {
	if m.adddaily_hours != nil {
		*m.adddaily_hours += f
	} else {
		m.adddaily_hours = &f
	}
}

// AddedDailyHours returns the value that was added to the "daily_hours" field in this mutation.
func (m *StudyPlanMutation) AddedDailyHours() (r float64, exists bool) {
	v := m.adddaily_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetDailyHours resets all changes to the "daily_hours" field.
func (m *StudyPlanMutation) ResetDailyHours() {
	m.daily_hours = nil
	m.adddaily_hours = nil
}

// SetTargetGrade sets the "target_grade" field.
func (m *StudyPlanMutation) SetTargetGrade(s string) {
	m.target_grade = &s
}

// TargetGrade returns the value of the "target_grade" field in the mutation.
func (m *StudyPlanMutation) TargetGrade() (r string, exists bool) {
	v := m.target_grade
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetGrade returns the old "target_grade" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldTargetGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetGrade: %w", err)
	}
	return oldValue.TargetGrade, nil
}

// ClearTargetGrade clears the value of the "target_grade" field.
func (m *StudyPlanMutation) ClearTargetGrade() {
	m.target_grade = nil
	m.clearedFields[studyplan.FieldTargetGrade] = struct{}{}
}

// TargetGradeCleared returns if the "target_grade" field was cleared in this mutation.
func (m *StudyPlanMutation) TargetGradeCleared() bool {
	_, ok := m.clearedFields[studyplan.FieldTargetGrade]
	return ok
}

// ResetTargetGrade resets all changes to the "target_grade" field.
func (m *StudyPlanMutation) ResetTargetGrade() {
	m.target_grade = nil
	delete(m.clearedFields, studyplan.FieldTargetGrade)
}

// SetStatus sets the "status" field.
func (m *StudyPlanMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StudyPlanMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StudyPlanMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StudyPlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudyPlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudyPlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StudyPlanMutation builder.
func (m *StudyPlanMutation) Where(ps ...predicate.StudyPlan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudyPlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudyPlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudyPlan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudyPlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudyPlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudyPlan).
func (m *StudyPlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudyPlanMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, studyplan.FieldUserID)
	}
	if m.subject != nil {
		fields = append(fields, studyplan.FieldSubject)
	}
	if m.exam_type != nil {
		fields = append(fields, studyplan.FieldExamType)
	}
	if m.exam_date != nil {
		fields = append(fields, studyplan.FieldExamDate)
	}
	if m.daily_hours != nil {
		fields = append(fields, studyplan.FieldDailyHours)
	}
	if m.target_grade != nil {
		fields = append(fields, studyplan.FieldTargetGrade)
	}
	if m.status != nil {
		fields = append(fields, studyplan.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, studyplan.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudyPlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studyplan.FieldUserID:
		return m.UserID()
	case studyplan.FieldSubject:
		return m.Subject()
	case studyplan.FieldExamType:
		return m.ExamType()
	case studyplan.FieldExamDate:
		return m.ExamDate()
	case studyplan.FieldDailyHours:
		return m.DailyHours()
	case studyplan.FieldTargetGrade:
		return m.TargetGrade()
	case studyplan.FieldStatus:
		return m.Status()
	case studyplan.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudyPlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studyplan.FieldUserID:
		return m.OldUserID(ctx)
	case studyplan.FieldSubject:
		return m.OldSubject(ctx)
	case studyplan.FieldExamType:
		return m.OldExamType(ctx)
	case studyplan.FieldExamDate:
		return m.OldExamDate(ctx)
	case studyplan.FieldDailyHours:
		return m.OldDailyHours(ctx)
	case studyplan.FieldTargetGrade:
		return m.OldTargetGrade(ctx)
	case studyplan.FieldStatus:
		return m.OldStatus(ctx)
	case studyplan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudyPlan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyPlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studyplan.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case studyplan.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case studyplan.FieldExamType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamType(v)
		return nil
	case studyplan.FieldExamDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamDate(v)
		return nil
	case studyplan.FieldDailyHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyHours(v)
		return nil
	case studyplan.FieldTargetGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetGrade(v)
		return nil
	case studyplan.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case studyplan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudyPlan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudyPlanMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, studyplan.FieldUserID)
	}
	if m.adddaily_hours != nil {
		fields = append(fields, studyplan.FieldDailyHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudyPlanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studyplan.FieldUserID:
		return m.AddedUserID()
	case studyplan.FieldDailyHours:
		return m.AddedDailyHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyPlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studyplan.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case studyplan.FieldDailyHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyHours(v)
		return nil
	}
	return fmt.Errorf("unknown StudyPlan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudyPlanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studyplan.FieldTargetGrade) {
		fields = append(fields, studyplan.FieldTargetGrade)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudyPlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudyPlanMutation) ClearField(name string) error {
	switch name {
	case studyplan.FieldTargetGrade:
		m.ClearTargetGrade()
		return nil
	}
	return fmt.Errorf("unknown StudyPlan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudyPlanMutation) ResetField(name string) error {
	switch name {
	case studyplan.FieldUserID:
		m.ResetUserID()
		return nil
	case studyplan.FieldSubject:
		m.ResetSubject()
		return nil
	case studyplan.FieldExamType:
		m.ResetExamType()
		return nil
	case studyplan.FieldExamDate:
		m.ResetExamDate()
		return nil
	case studyplan.FieldDailyHours:
		m.ResetDailyHours()
		return nil
	case studyplan.FieldTargetGrade:
		m.ResetTargetGrade()
		return nil
	case studyplan.FieldStatus:
		m.ResetStatus()
		return nil
	case studyplan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StudyPlan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudyPlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudyPlanMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudyPlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudyPlanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudyPlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudyPlanMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudyPlanMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudyPlan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudyPlanMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudyPlan edge %s", name)
}

// StudySessionMutation represents an operation that mutates the StudySession nodes in the graph.
type StudySessionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	topic_id       *int
	addtopic_id    *int
	scheduled_date *time.Time
	duration       *float64
	addduration    *float64
	completed      *bool
	completed_at   *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*StudySession, error)
	predicates     []predicate.StudySession
}

var _ ent.Mutation = (*StudySessionMutation)(nil)

// studysessionOption allows management of the mutation configuration using functional options.
type studysessionOption func(*StudySessionMutation)

// newStudySessionMutation creates new mutation for the StudySession entity.
func newStudySessionMutation(c config, op Op, opts ...studysessionOption) *StudySessionMutation {
	m := &StudySessionMutation{
		config:        c,
		op:            op,
		typ:           TypeStudySession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudySessionID sets the ID field of the mutation.
func withStudySessionID(id int) studysessionOption {
	return func(m *StudySessionMutation) {
		var (
			err   error
			once  sync.Once
			value *StudySession
		)
		m.oldValue = func(ctx context.Context) (*StudySession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudySession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudySession sets the old StudySession of the mutation.
func withStudySession(node *StudySession) studysessionOption {
	return func(m *StudySessionMutation) {
		m.oldValue = func(context.Context) (*StudySession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudySessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudySessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudySessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudySessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudySession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicID sets the "topic_id" field.
func (m *StudySessionMutation) SetTopicID(i int) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *StudySessionMutation) TopicID() (r int, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldTopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *StudySessionMutation) AddTopicID(i int) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *StudySessionMutation) AddedTopicID() (r int, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *StudySessionMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
}

// SetScheduledDate sets the "scheduled_date" field.
func (m *StudySessionMutation) SetScheduledDate(t time.Time) {
	m.scheduled_date = &t
}

// ScheduledDate returns the value of the "scheduled_date" field in the mutation.
func (m *StudySessionMutation) ScheduledDate() (r time.Time, exists bool) {
	v := m.scheduled_date
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledDate returns the old "scheduled_date" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldScheduledDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledDate: %w", err)
	}
	return oldValue.ScheduledDate, nil
}

// ResetScheduledDate resets all changes to the "scheduled_date" field.
func (m *StudySessionMutation) ResetScheduledDate() {
	m.scheduled_date = nil
}

// SetDuration sets the "duration" field.
func (m *StudySessionMutation) SetDuration(f float64) {
	m.duration = &f
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *StudySessionMutation) Duration() (r float64, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldDuration(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds f to the "duration" field.
func (m *StudySessionMutation) AddDuration(f float64) {
	if m.addduration != nil {
		*m.addduration += f
	} else {
		m.addduration = &f
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *StudySessionMutation) AddedDuration() (r float64, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuration resets all changes to the "duration" field.
func (m *StudySessionMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
}

// SetCompleted sets the "completed" field.
func (m *StudySessionMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *StudySessionMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *StudySessionMutation) ResetCompleted() {
	m.completed = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *StudySessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StudySessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StudySessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[studysession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StudySessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[studysession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StudySessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, studysession.FieldCompletedAt)
}

// Where appends a list predicates to the StudySessionMutation builder.
func (m *StudySessionMutation) Where(ps ...predicate.StudySession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudySessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudySessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudySession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudySessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudySessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudySession).
func (m *StudySessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudySessionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.topic_id != nil {
		fields = append(fields, studysession.FieldTopicID)
	}
	if m.scheduled_date != nil {
		fields = append(fields, studysession.FieldScheduledDate)
	}
	if m.duration != nil {
		fields = append(fields, studysession.FieldDuration)
	}
	if m.completed != nil {
		fields = append(fields, studysession.FieldCompleted)
	}
	if m.completed_at != nil {
		fields = append(fields, studysession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudySessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldTopicID:
		return m.TopicID()
	case studysession.FieldScheduledDate:
		return m.ScheduledDate()
	case studysession.FieldDuration:
		return m.Duration()
	case studysession.FieldCompleted:
		return m.Completed()
	case studysession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudySessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studysession.FieldTopicID:
		return m.OldTopicID(ctx)
	case studysession.FieldScheduledDate:
		return m.OldScheduledDate(ctx)
	case studysession.FieldDuration:
		return m.OldDuration(ctx)
	case studysession.FieldCompleted:
		return m.OldCompleted(ctx)
	case studysession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudySession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case studysession.FieldScheduledDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledDate(v)
		return nil
	case studysession.FieldDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case studysession.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case studysession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudySessionMutation) AddedFields() []string {
	var fields []string
	if m.addtopic_id != nil {
		fields = append(fields, studysession.FieldTopicID)
	}
	if m.addduration != nil {
		fields = append(fields, studysession.FieldDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudySessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldTopicID:
		return m.AddedTopicID()
	case studysession.FieldDuration:
		return m.AddedDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	case studysession.FieldDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudySessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studysession.FieldCompletedAt) {
		fields = append(fields, studysession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudySessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudySessionMutation) ClearField(name string) error {
	switch name {
	case studysession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown StudySession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudySessionMutation) ResetField(name string) error {
	switch name {
	case studysession.FieldTopicID:
		m.ResetTopicID()
		return nil
	case studysession.FieldScheduledDate:
		m.ResetScheduledDate()
		return nil
	case studysession.FieldDuration:
		m.ResetDuration()
		return nil
	case studysession.FieldCompleted:
		m.ResetCompleted()
		return nil
	case studysession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudySessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudySessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudySessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudySessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudySessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudySessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudySessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudySession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudySessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudySession edge %s", name)
}

// TopicMutation represents an operation that mutates the Topic nodes in the graph.
type TopicMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	plan_id            *int
	addplan_id         *int
	name               *string
	weight             *float64
	addweight          *float64
	allocated_hours    *float64
	addallocated_hours *float64
	order_index        *int
	addorder_index     *int
	mastery_level      *float64
	addmastery_level   *float64
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Topic, error)
	predicates         []predicate.Topic
}

var _ ent.Mutation = (*TopicMutation)(nil)

// topicOption allows management of the mutation configuration using functional options.
type topicOption func(*TopicMutation)

// newTopicMutation creates new mutation for the Topic entity.
func newTopicMutation(c config, op Op, opts ...topicOption) *TopicMutation {
	m := &TopicMutation{
		config:        c,
		op:            op,
		typ:           TypeTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicID sets the ID field of the mutation.
func withTopicID(id int) topicOption {
	return func(m *TopicMutation) {
		var (
			err   error
			once  sync.Once
			value *Topic
		)
		m.oldValue = func(ctx context.Context) (*Topic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Topic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopic sets the old Topic of the mutation.
func withTopic(node *Topic) topicOption {
	return func(m *TopicMutation) {
		m.oldValue = func(context.Context) (*Topic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Topic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlanID sets the "plan_id" field.
func (m *TopicMutation) SetPlanID(i int) {
	m.plan_id = &i
	m.addplan_id = nil
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *TopicMutation) PlanID() (r int, exists bool) {
	v := m.plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldPlanID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// AddPlanID adds i to the "plan_id" field.
func (m *TopicMutation) AddPlanID(i int) {
	if m.addplan_id != nil {
		*m.addplan_id += i
	} else {
		m.addplan_id = &i
	}
}

// AddedPlanID returns the value that was added to the "plan_id" field in this mutation.
func (m *TopicMutation) AddedPlanID() (r int, exists bool) {
	v := m.addplan_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *TopicMutation) ResetPlanID() {
	m.plan_id = nil
	m.addplan_id = nil
}

// SetName sets the "name" field.
func (m *TopicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TopicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TopicMutation) ResetName() {
	m.name = nil
}

// SetWeight sets the "weight" field.
func (m *TopicMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *TopicMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *TopicMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *TopicMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *TopicMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetAllocatedHours sets the "allocated_hours" field.
func (m *TopicMutation) SetAllocatedHours(f float64) {
	m.allocated_hours = &f
	m.addallocated_hours = nil
}

// AllocatedHours returns the value of the "allocated_hours" field in the mutation.
func (m *TopicMutation) AllocatedHours() (r float64, exists bool) {
	v := m.allocated_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldAllocatedHours returns the old "allocated_hours" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldAllocatedHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllocatedHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllocatedHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllocatedHours: %w", err)
	}
	return oldValue.AllocatedHours, nil
}

// AddAllocatedHours adds f to the "allocated_hours" field.
func (m *TopicMutation) AddAllocatedHours(f float64) {
	if m.addallocated_hours != nil {
		*m.addallocated_hours += f
	} else {
		m.addallocated_hours = &f
	}
}

// AddedAllocatedHours returns the value that was added to the "allocated_hours" field in this mutation.
func (m *TopicMutation) AddedAllocatedHours() (r float64, exists bool) {
	v := m.addallocated_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetAllocatedHours resets all changes to the "allocated_hours" field.
func (m *TopicMutation) ResetAllocatedHours() {
	m.allocated_hours = nil
	m.addallocated_hours = nil
}

// SetOrderIndex sets the "order_index" field.
func (m *TopicMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *TopicMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *TopicMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *TopicMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *TopicMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetMasteryLevel sets the "mastery_level" field.
func (m *TopicMutation) SetMasteryLevel(f float64) {
	m.mastery_level = &f
	m.addmastery_level = nil
}

// MasteryLevel returns the value of the "mastery_level" field in the mutation.
func (m *TopicMutation) MasteryLevel() (r float64, exists bool) {
	v := m.mastery_level
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryLevel returns the old "mastery_level" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldMasteryLevel(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryLevel: %w", err)
	}
	return oldValue.MasteryLevel, nil
}

// AddMasteryLevel adds f to the "mastery_level" field.
func (m *TopicMutation) AddMasteryLevel(f float64) {
	if m.addmastery_level != nil {
		*m.addmastery_level += f
	} else {
		m.addmastery_level = &f
	}
}

// AddedMasteryLevel returns the value that was added to the "mastery_level" field in this mutation.
func (m *TopicMutation) AddedMasteryLevel() (r float64, exists bool) {
	v := m.addmastery_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryLevel resets all changes to the "mastery_level" field.
func (m *TopicMutation) ResetMasteryLevel() {
	m.mastery_level = nil
	m.addmastery_level = nil
}

// Where appends a list predicates to the TopicMutation builder.
func (m *TopicMutation) Where(ps ...predicate.Topic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Topic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Topic).
func (m *TopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.plan_id != nil {
		fields = append(fields, topic.FieldPlanID)
	}
	if m.name != nil {
		fields = append(fields, topic.FieldName)
	}
	if m.weight != nil {
		fields = append(fields, topic.FieldWeight)
	}
	if m.allocated_hours != nil {
		fields = append(fields, topic.FieldAllocatedHours)
	}
	if m.order_index != nil {
		fields = append(fields, topic.FieldOrderIndex)
	}
	if m.mastery_level != nil {
		fields = append(fields, topic.FieldMasteryLevel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldPlanID:
		return m.PlanID()
	case topic.FieldName:
		return m.Name()
	case topic.FieldWeight:
		return m.Weight()
	case topic.FieldAllocatedHours:
		return m.AllocatedHours()
	case topic.FieldOrderIndex:
		return m.OrderIndex()
	case topic.FieldMasteryLevel:
		return m.MasteryLevel()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topic.FieldPlanID:
		return m.OldPlanID(ctx)
	case topic.FieldName:
		return m.OldName(ctx)
	case topic.FieldWeight:
		return m.OldWeight(ctx)
	case topic.FieldAllocatedHours:
		return m.OldAllocatedHours(ctx)
	case topic.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	case topic.FieldMasteryLevel:
		return m.OldMasteryLevel(ctx)
	}
	return nil, fmt.Errorf("unknown Topic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topic.FieldPlanID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case topic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case topic.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case topic.FieldAllocatedHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllocatedHours(v)
		return nil
	case topic.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	case topic.FieldMasteryLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryLevel(v)
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMutation) AddedFields() []string {
	var fields []string
	if m.addplan_id != nil {
		fields = append(fields, topic.FieldPlanID)
	}
	if m.addweight != nil {
		fields = append(fields, topic.FieldWeight)
	}
	if m.addallocated_hours != nil {
		fields = append(fields, topic.FieldAllocatedHours)
	}
	if m.addorder_index != nil {
		fields = append(fields, topic.FieldOrderIndex)
	}
	if m.addmastery_level != nil {
		fields = append(fields, topic.FieldMasteryLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldPlanID:
		return m.AddedPlanID()
	case topic.FieldWeight:
		return m.AddedWeight()
	case topic.FieldAllocatedHours:
		return m.AddedAllocatedHours()
	case topic.FieldOrderIndex:
		return m.AddedOrderIndex()
	case topic.FieldMasteryLevel:
		return m.AddedMasteryLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topic.FieldPlanID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlanID(v)
		return nil
	case topic.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	case topic.FieldAllocatedHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAllocatedHours(v)
		return nil
	case topic.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	case topic.FieldMasteryLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryLevel(v)
		return nil
	}
	return fmt.Errorf("unknown Topic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Topic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMutation) ResetField(name string) error {
	switch name {
	case topic.FieldPlanID:
		m.ResetPlanID()
		return nil
	case topic.FieldName:
		m.ResetName()
		return nil
	case topic.FieldWeight:
		m.ResetWeight()
		return nil
	case topic.FieldAllocatedHours:
		m.ResetAllocatedHours()
		return nil
	case topic.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	case topic.FieldMasteryLevel:
		m.ResetMasteryLevel()
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Topic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Topic edge %s", name)
}

// TopicProgressMutation represents an operation that mutates the TopicProgress nodes in the graph.
type TopicProgressMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	user_id               *int
	adduser_id            *int
	topic                 *string
	problems_attempted    *int
	addproblems_attempted *int
	problems_solved       *int
	addproblems_solved    *int
	easy_solved           *int
	addeasy_solved        *int
	medium_solved         *int
	addmedium_solved      *int
	hard_solved           *int
	addhard_solved        *int
	time_spent_minutes    *int
	addtime_spent_minutes *int
	weakness_score        *float64
	addweakness_score     *float64
	last_practiced        *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*TopicProgress, error)
	predicates            []predicate.TopicProgress
}

var _ ent.Mutation = (*TopicProgressMutation)(nil)

// topicprogressOption allows management of the mutation configuration using functional options.
type topicprogressOption func(*TopicProgressMutation)

// newTopicProgressMutation creates new mutation for the TopicProgress entity.
func newTopicProgressMutation(c config, op Op, opts ...topicprogressOption) *TopicProgressMutation {
	m := &TopicProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicProgressID sets the ID field of the mutation.
func withTopicProgressID(id int) topicprogressOption {
	return func(m *TopicProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicProgress
		)
		m.oldValue = func(ctx context.Context) (*TopicProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicProgress sets the old TopicProgress of the mutation.
func withTopicProgress(node *TopicProgress) topicprogressOption {
	return func(m *TopicProgressMutation) {
		m.oldValue = func(context.Context) (*TopicProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TopicProgressMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TopicProgressMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *TopicProgressMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *TopicProgressMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TopicProgressMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetTopic sets the "topic" field.
func (m *TopicProgressMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *TopicProgressMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *TopicProgressMutation) ResetTopic() {
	m.topic = nil
}

// SetProblemsAttempted sets the "problems_attempted" field.
func (m *TopicProgressMutation) SetProblemsAttempted(i int) {
	m.problems_attempted = &i
	m.addproblems_attempted = nil
}

// ProblemsAttempted returns the value of the "problems_attempted" field in the mutation.
func (m *TopicProgressMutation) ProblemsAttempted() (r int, exists bool) {
	v := m.problems_attempted
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemsAttempted returns the old "problems_attempted" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldProblemsAttempted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemsAttempted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemsAttempted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemsAttempted: %w", err)
	}
	return oldValue.ProblemsAttempted, nil
}

// AddProblemsAttempted adds i to the "problems_attempted" field.
func (m *TopicProgressMutation) AddProblemsAttempted(i int) {
	if m.addproblems_attempted != nil {
		*m.addproblems_attempted += i
	} else {
		m.addproblems_attempted = &i
	}
}

// AddedProblemsAttempted returns the value that was added to the "problems_attempted" field in this mutation.
func (m *TopicProgressMutation) AddedProblemsAttempted() (r int, exists bool) {
	v := m.addproblems_attempted
	if v == nil {
		return
	}
	return *v, true
}

// ResetProblemsAttempted resets all changes to the "problems_attempted" field.
func (m *TopicProgressMutation) ResetProblemsAttempted() {
	m.problems_attempted = nil
	m.addproblems_attempted = nil
}

// SetProblemsSolved sets the "problems_solved" field.
func (m *TopicProgressMutation) SetProblemsSolved(i int) {
	m.problems_solved = &i
	m.addproblems_solved = nil
}

// ProblemsSolved returns the value of the "problems_solved" field in the mutation.
func (m *TopicProgressMutation) ProblemsSolved() (r int, exists bool) {
	v := m.problems_solved
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemsSolved returns the old "problems_solved" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldProblemsSolved(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemsSolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemsSolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemsSolved: %w", err)
	}
	return oldValue.ProblemsSolved, nil
}

// AddProblemsSolved adds i to the "problems_solved" field.
func (m *TopicProgressMutation) AddProblemsSolved(i int) {
	if m.addproblems_solved != nil {
		*m.addproblems_solved += i
	} else {
		m.addproblems_solved = &i
	}
}

// AddedProblemsSolved returns the value that was added to the "problems_solved" field in this mutation.
func (m *TopicProgressMutation) AddedProblemsSolved() (r int, exists bool) {
	v := m.addproblems_solved
	if v == nil {
		return
	}
	return *v, true
}

// ResetProblemsSolved resets all changes to the "problems_solved" field.
func (m *TopicProgressMutation) ResetProblemsSolved() {
	m.problems_solved = nil
	m.addproblems_solved = nil
}

// SetEasySolved sets the "easy_solved" field.
func (m *TopicProgressMutation) SetEasySolved(i int) {
	m.easy_solved = &i
	m.addeasy_solved = nil
}

// EasySolved returns the value of the "easy_solved" field in the mutation.
func (m *TopicProgressMutation) EasySolved() (r int, exists bool) {
	v := m.easy_solved
	if v == nil {
		return
	}
	return *v, true
}

// OldEasySolved returns the old "easy_solved" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldEasySolved(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEasySolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEasySolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEasySolved: %w", err)
	}
	return oldValue.EasySolved, nil
}

// AddEasySolved adds i to the "easy_solved" field.
func (m *TopicProgressMutation) AddEasySolved(i int) {
	if m.addeasy_solved != nil {
		*m.addeasy_solved += i
	} else {
		m.addeasy_solved = &i
	}
}

// AddedEasySolved returns the value that was added to the "easy_solved" field in this mutation.
func (m *TopicProgressMutation) AddedEasySolved() (r int, exists bool) {
	v := m.addeasy_solved
	if v == nil {
		return
	}
	return *v, true
}

// ResetEasySolved resets all changes to the "easy_solved" field.
func (m *TopicProgressMutation) ResetEasySolved() {
	m.easy_solved = nil
	m.addeasy_solved = nil
}

// SetMediumSolved sets the "medium_solved" field.
func (m *TopicProgressMutation) SetMediumSolved(i int) {
	m.medium_solved = &i
	m.addmedium_solved = nil
}

// MediumSolved returns the value of the "medium_solved" field in the mutation.
func (m *TopicProgressMutation) MediumSolved() (r int, exists bool) {
	v := m.medium_solved
	if v == nil {
		return
	}
	return *v, true
}

// OldMediumSolved returns the old "medium_solved" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldMediumSolved(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediumSolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediumSolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediumSolved: %w", err)
	}
	return oldValue.MediumSolved, nil
}

// AddMediumSolved adds i to the "medium_solved" field.
func (m *TopicProgressMutation) AddMediumSolved(i int) {
	if m.addmedium_solved != nil {
		*m.addmedium_solved += i
	} else {
		m.addmedium_solved = &i
	}
}

// AddedMediumSolved returns the value that was added to the "medium_solved" field in this mutation.
func (m *TopicProgressMutation) AddedMediumSolved() (r int, exists bool) {
	v := m.addmedium_solved
	if v == nil {
		return
	}
	return *v, true
}

// ResetMediumSolved resets all changes to the "medium_solved" field.
func (m *TopicProgressMutation) ResetMediumSolved() {
	m.medium_solved = nil
	m.addmedium_solved = nil
}

// SetHardSolved sets the "hard_solved" field.
func (m *TopicProgressMutation) SetHardSolved(i int) {
	m.hard_solved = &i
	m.addhard_solved = nil
}

// HardSolved returns the value of the "hard_solved" field in the mutation.
func (m *TopicProgressMutation) HardSolved() (r int, exists bool) {
	v := m.hard_solved
	if v == nil {
		return
	}
	return *v, true
}

// OldHardSolved returns the old "hard_solved" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldHardSolved(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHardSolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHardSolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHardSolved: %w", err)
	}
	return oldValue.HardSolved, nil
}

// AddHardSolved adds i to the "hard_solved" field.
func (m *TopicProgressMutation) AddHardSolved(i int) {
	if m.addhard_solved != nil {
		*m.addhard_solved += i
	} else {
		m.addhard_solved = &i
	}
}

// AddedHardSolved returns the value that was added to the "hard_solved" field in this mutation.
func (m *TopicProgressMutation) AddedHardSolved() (r int, exists bool) {
	v := m.addhard_solved
	if v == nil {
		return
	}
	return *v, true
}

// ResetHardSolved resets all changes to the "hard_solved" field.
func (m *TopicProgressMutation) ResetHardSolved() {
	m.hard_solved = nil
	m.addhard_solved = nil
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (m *TopicProgressMutation) SetTimeSpentMinutes(i int) {
	m.time_spent_minutes = &i
	m.addtime_spent_minutes = nil
}

// TimeSpentMinutes returns the value of the "time_spent_minutes" field in the mutation.
func (m *TopicProgressMutation) TimeSpentMinutes() (r int, exists bool) {
	v := m.time_spent_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentMinutes returns the old "time_spent_minutes" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldTimeSpentMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentMinutes: %w", err)
	}
	return oldValue.TimeSpentMinutes, nil
}

// AddTimeSpentMinutes adds i to the "time_spent_minutes" field.
func (m *TopicProgressMutation) AddTimeSpentMinutes(i int) {
	if m.addtime_spent_minutes != nil {
		*m.addtime_spent_minutes += i
	} else {
		m.addtime_spent_minutes = &i
	}
}

// AddedTimeSpentMinutes returns the value that was added to the "time_spent_minutes" field in this mutation.
func (m *TopicProgressMutation) AddedTimeSpentMinutes() (r int, exists bool) {
	v := m.addtime_spent_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentMinutes resets all changes to the "time_spent_minutes" field.
func (m *TopicProgressMutation) ResetTimeSpentMinutes() {
	m.time_spent_minutes = nil
	m.addtime_spent_minutes = nil
}

// SetWeaknessScore sets the "weakness_score" field.
func (m *TopicProgressMutation) SetWeaknessScore(f float64) {
	m.weakness_score = &f
	m.addweakness_score = nil
}

// WeaknessScore returns the value of the "weakness_score" field in the mutation.
func (m *TopicProgressMutation) WeaknessScore() (r float64, exists bool) {
	v := m.weakness_score
	if v == nil {
		return
	}
	return *v, true
}

// OldWeaknessScore returns the old "weakness_score" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldWeaknessScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeaknessScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeaknessScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeaknessScore: %w", err)
	}
	return oldValue.WeaknessScore, nil
}

// AddWeaknessScore adds f to the "weakness_score" field.
func (m *TopicProgressMutation) AddWeaknessScore(f float64) {
	if m.addweakness_score != nil {
		*m.addweakness_score += f
	} else {
		m.addweakness_score = &f
	}
}

// AddedWeaknessScore returns the value that was added to the "weakness_score" field in this mutation.
func (m *TopicProgressMutation) AddedWeaknessScore() (r float64, exists bool) {
	v := m.addweakness_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeaknessScore resets all changes to the "weakness_score" field.
func (m *TopicProgressMutation) ResetWeaknessScore() {
	m.weakness_score = nil
	m.addweakness_score = nil
}

// SetLastPracticed sets the "last_practiced" field.
func (m *TopicProgressMutation) SetLastPracticed(t time.Time) {
	m.last_practiced = &t
}

// LastPracticed returns the value of the "last_practiced" field in the mutation.
func (m *TopicProgressMutation) LastPracticed() (r time.Time, exists bool) {
	v := m.last_practiced
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPracticed returns the old "last_practiced" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldLastPracticed(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPracticed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPracticed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPracticed: %w", err)
	}
	return oldValue.LastPracticed, nil
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (m *TopicProgressMutation) ClearLastPracticed() {
	m.last_practiced = nil
	m.clearedFields[topicprogress.FieldLastPracticed] = struct{}{}
}

// LastPracticedCleared returns if the "last_practiced" field was cleared in this mutation.
func (m *TopicProgressMutation) LastPracticedCleared() bool {
	_, ok := m.clearedFields[topicprogress.FieldLastPracticed]
	return ok
}

// ResetLastPracticed resets all changes to the "last_practiced" field.
func (m *TopicProgressMutation) ResetLastPracticed() {
	m.last_practiced = nil
	delete(m.clearedFields, topicprogress.FieldLastPracticed)
}

// Where appends a list predicates to the TopicProgressMutation builder.
func (m *TopicProgressMutation) Where(ps ...predicate.TopicProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicProgress).
func (m *TopicProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicProgressMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, topicprogress.FieldUserID)
	}
	if m.topic != nil {
		fields = append(fields, topicprogress.FieldTopic)
	}
	if m.problems_attempted != nil {
		fields = append(fields, topicprogress.FieldProblemsAttempted)
	}
	if m.problems_solved != nil {
		fields = append(fields, topicprogress.FieldProblemsSolved)
	}
	if m.easy_solved != nil {
		fields = append(fields, topicprogress.FieldEasySolved)
	}
	if m.medium_solved != nil {
		fields = append(fields, topicprogress.FieldMediumSolved)
	}
	if m.hard_solved != nil {
		fields = append(fields, topicprogress.FieldHardSolved)
	}
	if m.time_spent_minutes != nil {
		fields = append(fields, topicprogress.FieldTimeSpentMinutes)
	}
	if m.weakness_score != nil {
		fields = append(fields, topicprogress.FieldWeaknessScore)
	}
	if m.last_practiced != nil {
		fields = append(fields, topicprogress.FieldLastPracticed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicprogress.FieldUserID:
		return m.UserID()
	case topicprogress.FieldTopic:
		return m.Topic()
	case topicprogress.FieldProblemsAttempted:
		return m.ProblemsAttempted()
	case topicprogress.FieldProblemsSolved:
		return m.ProblemsSolved()
	case topicprogress.FieldEasySolved:
		return m.EasySolved()
	case topicprogress.FieldMediumSolved:
		return m.MediumSolved()
	case topicprogress.FieldHardSolved:
		return m.HardSolved()
	case topicprogress.FieldTimeSpentMinutes:
		return m.TimeSpentMinutes()
	case topicprogress.FieldWeaknessScore:
		return m.WeaknessScore()
	case topicprogress.FieldLastPracticed:
		return m.LastPracticed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicprogress.FieldUserID:
		return m.OldUserID(ctx)
	case topicprogress.FieldTopic:
		return m.OldTopic(ctx)
	case topicprogress.FieldProblemsAttempted:
		return m.OldProblemsAttempted(ctx)
	case topicprogress.FieldProblemsSolved:
		return m.OldProblemsSolved(ctx)
	case topicprogress.FieldEasySolved:
		return m.OldEasySolved(ctx)
	case topicprogress.FieldMediumSolved:
		return m.OldMediumSolved(ctx)
	case topicprogress.FieldHardSolved:
		return m.OldHardSolved(ctx)
	case topicprogress.FieldTimeSpentMinutes:
		return m.OldTimeSpentMinutes(ctx)
	case topicprogress.FieldWeaknessScore:
		return m.OldWeaknessScore(ctx)
	case topicprogress.FieldLastPracticed:
		return m.OldLastPracticed(ctx)
	}
	return nil, fmt.Errorf("unknown TopicProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicprogress.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case topicprogress.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case topicprogress.FieldProblemsAttempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemsAttempted(v)
		return nil
	case topicprogress.FieldProblemsSolved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemsSolved(v)
		return nil
	case topicprogress.FieldEasySolved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEasySolved(v)
		return nil
	case topicprogress.FieldMediumSolved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediumSolved(v)
		return nil
	case topicprogress.FieldHardSolved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHardSolved(v)
		return nil
	case topicprogress.FieldTimeSpentMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentMinutes(v)
		return nil
	case topicprogress.FieldWeaknessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeaknessScore(v)
		return nil
	case topicprogress.FieldLastPracticed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPracticed(v)
		return nil
	}
	return fmt.Errorf("unknown TopicProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicProgressMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, topicprogress.FieldUserID)
	}
	if m.addproblems_attempted != nil {
		fields = append(fields, topicprogress.FieldProblemsAttempted)
	}
	if m.addproblems_solved != nil {
		fields = append(fields, topicprogress.FieldProblemsSolved)
	}
	if m.addeasy_solved != nil {
		fields = append(fields, topicprogress.FieldEasySolved)
	}
	if m.addmedium_solved != nil {
		fields = append(fields, topicprogress.FieldMediumSolved)
	}
	if m.addhard_solved != nil {
		fields = append(fields, topicprogress.FieldHardSolved)
	}
	if m.addtime_spent_minutes != nil {
		fields = append(fields, topicprogress.FieldTimeSpentMinutes)
	}
	if m.addweakness_score != nil {
		fields = append(fields, topicprogress.FieldWeaknessScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicprogress.FieldUserID:
		return m.AddedUserID()
	case topicprogress.FieldProblemsAttempted:
		return m.AddedProblemsAttempted()
	case topicprogress.FieldProblemsSolved:
		return m.AddedProblemsSolved()
	case topicprogress.FieldEasySolved:
		return m.AddedEasySolved()
	case topicprogress.FieldMediumSolved:
		return m.AddedMediumSolved()
	case topicprogress.FieldHardSolved:
		return m.AddedHardSolved()
	case topicprogress.FieldTimeSpentMinutes:
		return m.AddedTimeSpentMinutes()
	case topicprogress.FieldWeaknessScore:
		return m.AddedWeaknessScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicprogress.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case topicprogress.FieldProblemsAttempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProblemsAttempted(v)
		return nil
	case topicprogress.FieldProblemsSolved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProblemsSolved(v)
		return nil
	case topicprogress.FieldEasySolved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEasySolved(v)
		return nil
	case topicprogress.FieldMediumSolved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMediumSolved(v)
		return nil
	case topicprogress.FieldHardSolved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHardSolved(v)
		return nil
	case topicprogress.FieldTimeSpentMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentMinutes(v)
		return nil
	case topicprogress.FieldWeaknessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeaknessScore(v)
		return nil
	}
	return fmt.Errorf("unknown TopicProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topicprogress.FieldLastPracticed) {
		fields = append(fields, topicprogress.FieldLastPracticed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicProgressMutation) ClearField(name string) error {
	switch name {
	case topicprogress.FieldLastPracticed:
		m.ClearLastPracticed()
		return nil
	}
	return fmt.Errorf("unknown TopicProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicProgressMutation) ResetField(name string) error {
	switch name {
	case topicprogress.FieldUserID:
		m.ResetUserID()
		return nil
	case topicprogress.FieldTopic:
		m.ResetTopic()
		return nil
	case topicprogress.FieldProblemsAttempted:
		m.ResetProblemsAttempted()
		return nil
	case topicprogress.FieldProblemsSolved:
		m.ResetProblemsSolved()
		return nil
	case topicprogress.FieldEasySolved:
		m.ResetEasySolved()
		return nil
	case topicprogress.FieldMediumSolved:
		m.ResetMediumSolved()
		return nil
	case topicprogress.FieldHardSolved:
		m.ResetHardSolved()
		return nil
	case topicprogress.FieldTimeSpentMinutes:
		m.ResetTimeSpentMinutes()
		return nil
	case topicprogress.FieldWeaknessScore:
		m.ResetWeaknessScore()
		return nil
	case topicprogress.FieldLastPracticed:
		m.ResetLastPracticed()
		return nil
	}
	return fmt.Errorf("unknown TopicProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TopicProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TopicProgress edge %s", name)
}
