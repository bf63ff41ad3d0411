// Code generated by ent, DO NOT EDIT.

package topicprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the topicprogress type in the database.
	Label = "topic_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldProblemsAttempted holds the string denoting the problems_attempted field in the database.
	FieldProblemsAttempted = "problems_attempted"
	// FieldProblemsSolved holds the string denoting the problems_solved field in the database.
	FieldProblemsSolved = "problems_solved"
	// FieldEasySolved holds the string denoting the easy_solved field in the database.
	FieldEasySolved = "easy_solved"
	// FieldMediumSolved holds the string denoting the medium_solved field in the database.
	FieldMediumSolved = "medium_solved"
	// FieldHardSolved holds the string denoting the hard_solved field in the database.
	FieldHardSolved = "hard_solved"
	// FieldTimeSpentMinutes holds the string denoting the time_spent_minutes field in the database.
	FieldTimeSpentMinutes = "time_spent_minutes"
	// FieldWeaknessScore holds the string denoting the weakness_score field in the database.
	FieldWeaknessScore = "weakness_score"
	// FieldLastPracticed holds the string denoting the last_practiced field in the database.
	FieldLastPracticed = "last_practiced"
	// Table holds the table name of the topicprogress in the database.
	Table = "topic_progresses"
)

// Columns holds all SQL columns for topicprogress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTopic,
	FieldProblemsAttempted,
	FieldProblemsSolved,
	FieldEasySolved,
	FieldMediumSolved,
	FieldHardSolved,
	FieldTimeSpentMinutes,
	FieldWeaknessScore,
	FieldLastPracticed,
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
	// DefaultProblemsAttempted holds the default value on creation for the "problems_attempted" field.
	DefaultProblemsAttempted int
	// DefaultProblemsSolved holds the default value on creation for the "problems_solved" field.
	DefaultProblemsSolved int
	// DefaultEasySolved holds the default value on creation for the "easy_solved" field.
	DefaultEasySolved int
	// DefaultMediumSolved holds the default value on creation for the "medium_solved" field.
	DefaultMediumSolved int
	// DefaultHardSolved holds the default value on creation for the "hard_solved" field.
	DefaultHardSolved int
	// DefaultTimeSpentMinutes holds the default value on creation for the "time_spent_minutes" field.
	DefaultTimeSpentMinutes int
	// DefaultWeaknessScore holds the default value on creation for the "weakness_score" field.
	DefaultWeaknessScore float64
)

// OrderOption defines the ordering options for the TopicProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByProblemsAttempted orders the results by the problems_attempted field.
func ByProblemsAttempted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemsAttempted, opts...).ToFunc()
}

// ByProblemsSolved orders the results by the problems_solved field.
func ByProblemsSolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemsSolved, opts...).ToFunc()
}

// ByEasySolved orders the results by the easy_solved field.
func ByEasySolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEasySolved, opts...).ToFunc()
}

// ByMediumSolved orders the results by the medium_solved field.
func ByMediumSolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediumSolved, opts...).ToFunc()
}

// ByHardSolved orders the results by the hard_solved field.
func ByHardSolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHardSolved, opts...).ToFunc()
}

// ByTimeSpentMinutes orders the results by the time_spent_minutes field.
func ByTimeSpentMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentMinutes, opts...).ToFunc()
}

// ByWeaknessScore orders the results by the weakness_score field.
func ByWeaknessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeaknessScore, opts...).ToFunc()
}

// ByLastPracticed orders the results by the last_practiced field.
func ByLastPracticed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticed, opts...).ToFunc()
}
