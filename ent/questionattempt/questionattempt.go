// Code generated by ent, DO NOT EDIT.

package questionattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the questionattempt type in the database.
	Label = "question_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUID holds the string denoting the uid field in the database.
	FieldUID = "uid"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldIsCorrect holds the string denoting the is_correct field in the database.
	FieldIsCorrect = "is_correct"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldTimeTaken holds the string denoting the time_taken field in the database.
	FieldTimeTaken = "time_taken"
	// FieldConfidenceLevel holds the string denoting the confidence_level field in the database.
	FieldConfidenceLevel = "confidence_level"
	// FieldAttemptedAt holds the string denoting the attempted_at field in the database.
	FieldAttemptedAt = "attempted_at"
	// Table holds the table name of the questionattempt in the database.
	Table = "question_attempts"
)

// Columns holds all SQL columns for questionattempt fields.
var Columns = []string{
	FieldID,
	FieldUID,
	FieldUserID,
	FieldQuestionID,
	FieldAnswer,
	FieldIsCorrect,
	FieldScore,
	FieldTimeTaken,
	FieldConfidenceLevel,
	FieldAttemptedAt,
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
	// DefaultTimeTaken holds the default value on creation for the "time_taken" field.
	DefaultTimeTaken int
	// DefaultConfidenceLevel holds the default value on creation for the "confidence_level" field.
	DefaultConfidenceLevel int
	// DefaultAttemptedAt holds the default value on creation for the "attempted_at" field.
	DefaultAttemptedAt func() time.Time
)

// OrderOption defines the ordering options for the QuestionAttempt queries.
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

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByIsCorrect orders the results by the is_correct field.
func ByIsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCorrect, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByTimeTaken orders the results by the time_taken field.
func ByTimeTaken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeTaken, opts...).ToFunc()
}

// ByConfidenceLevel orders the results by the confidence_level field.
func ByConfidenceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceLevel, opts...).ToFunc()
}

// ByAttemptedAt orders the results by the attempted_at field.
func ByAttemptedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptedAt, opts...).ToFunc()
}
