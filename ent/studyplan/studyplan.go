// Code generated by ent, DO NOT EDIT.

package studyplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the studyplan type in the database.
	Label = "study_plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldExamType holds the string denoting the exam_type field in the database.
	FieldExamType = "exam_type"
	// FieldExamDate holds the string denoting the exam_date field in the database.
	FieldExamDate = "exam_date"
	// FieldDailyHours holds the string denoting the daily_hours field in the database.
	FieldDailyHours = "daily_hours"
	// FieldTargetGrade holds the string denoting the target_grade field in the database.
	FieldTargetGrade = "target_grade"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the studyplan in the database.
	Table = "study_plans"
)

// Columns holds all SQL columns for studyplan fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSubject,
	FieldExamType,
	FieldExamDate,
	FieldDailyHours,
	FieldTargetGrade,
	FieldStatus,
	FieldCreatedAt,
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
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// DefaultExamType holds the default value on creation for the "exam_type" field.
	DefaultExamType string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the StudyPlan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByExamType orders the results by the exam_type field.
func ByExamType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamType, opts...).ToFunc()
}

// ByExamDate orders the results by the exam_date field.
func ByExamDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamDate, opts...).ToFunc()
}

// ByDailyHours orders the results by the daily_hours field.
func ByDailyHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyHours, opts...).ToFunc()
}

// ByTargetGrade orders the results by the target_grade field.
func ByTargetGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetGrade, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
