// Code generated by ent, DO NOT EDIT.

package dailygoal

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dailygoal type in the database.
	Label = "daily_goal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldTargetProblems holds the string denoting the target_problems field in the database.
	FieldTargetProblems = "target_problems"
	// FieldCompletedProblems holds the string denoting the completed_problems field in the database.
	FieldCompletedProblems = "completed_problems"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// Table holds the table name of the dailygoal in the database.
	Table = "daily_goals"
)

// Columns holds all SQL columns for dailygoal fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldDate,
	FieldTargetProblems,
	FieldCompletedProblems,
	FieldCompleted,
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
	// DefaultTargetProblems holds the default value on creation for the "target_problems" field.
	DefaultTargetProblems int
	// DefaultCompletedProblems holds the default value on creation for the "completed_problems" field.
	DefaultCompletedProblems int
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
)

// OrderOption defines the ordering options for the DailyGoal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByTargetProblems orders the results by the target_problems field.
func ByTargetProblems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetProblems, opts...).ToFunc()
}

// ByCompletedProblems orders the results by the completed_problems field.
func ByCompletedProblems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedProblems, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}
