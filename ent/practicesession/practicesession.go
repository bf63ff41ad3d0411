// Code generated by ent, DO NOT EDIT.

package practicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practicesession type in the database.
	Label = "practice_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUID holds the string denoting the uid field in the database.
	FieldUID = "uid"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldProblemName holds the string denoting the problem_name field in the database.
	FieldProblemName = "problem_name"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldSolved holds the string denoting the solved field in the database.
	FieldSolved = "solved"
	// FieldTimeSpentMinutes holds the string denoting the time_spent_minutes field in the database.
	FieldTimeSpentMinutes = "time_spent_minutes"
	// FieldCodeSubmitted holds the string denoting the code_submitted field in the database.
	FieldCodeSubmitted = "code_submitted"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldAttemptedAt holds the string denoting the attempted_at field in the database.
	FieldAttemptedAt = "attempted_at"
	// FieldSolvedAt holds the string denoting the solved_at field in the database.
	FieldSolvedAt = "solved_at"
	// Table holds the table name of the practicesession in the database.
	Table = "practice_sessions"
)

// Columns holds all SQL columns for practicesession fields.
var Columns = []string{
	FieldID,
	FieldUID,
	FieldUserID,
	FieldTopic,
	FieldProblemName,
	FieldDifficulty,
	FieldSolved,
	FieldTimeSpentMinutes,
	FieldCodeSubmitted,
	FieldNotes,
	FieldAttemptedAt,
	FieldSolvedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// ProblemNameValidator is a validator for the "problem_name" field. It is called by the builders before save.
	ProblemNameValidator func(string) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// DefaultSolved holds the default value on creation for the "solved" field.
	DefaultSolved bool
	// DefaultTimeSpentMinutes holds the default value on creation for the "time_spent_minutes" field.
	DefaultTimeSpentMinutes int
	// DefaultAttemptedAt holds the default value on creation for the "attempted_at" field.
	DefaultAttemptedAt func() time.Time
)

// OrderOption defines the ordering options for the PracticeSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUID orders the results by the uid field.
func ByUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByProblemName orders the results by the problem_name field.
func ByProblemName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemName, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// BySolved orders the results by the solved field.
func BySolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolved, opts...).ToFunc()
}

// ByTimeSpentMinutes orders the results by the time_spent_minutes field.
func ByTimeSpentMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentMinutes, opts...).ToFunc()
}

// ByCodeSubmitted orders the results by the code_submitted field.
func ByCodeSubmitted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCodeSubmitted, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByAttemptedAt orders the results by the attempted_at field.
func ByAttemptedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptedAt, opts...).ToFunc()
}

// BySolvedAt orders the results by the solved_at field.
func BySolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolvedAt, opts...).ToFunc()
}
