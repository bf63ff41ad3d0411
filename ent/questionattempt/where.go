// Code generated by ent, DO NOT EDIT.

package questionattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLTE(FieldID, id))
}

// UID applies equality check predicate on the "uid" field. It's identical to UIDEQ.
func UID(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldUID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldQuestionID, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldAnswer, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldIsCorrect, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldScore, v))
}

// TimeTaken applies equality check predicate on the "time_taken" field. It's identical to TimeTakenEQ.
func TimeTaken(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldTimeTaken, v))
}

// ConfidenceLevel applies equality check predicate on the "confidence_level" field. It's identical to ConfidenceLevelEQ.
func ConfidenceLevel(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldConfidenceLevel, v))
}

// AttemptedAt applies equality check predicate on the "attempted_at" field. It's identical to AttemptedAtEQ.
func AttemptedAt(v time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldAttemptedAt, v))
}

// UIDEQ applies the EQ predicate on the "uid" field.
func UIDEQ(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldUID, v))
}

// UIDNEQ applies the NEQ predicate on the "uid" field.
func UIDNEQ(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldUID, v))
}

// UIDIn applies the In predicate on the "uid" field.
func UIDIn(vs ...string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIn(FieldUID, vs...))
}

// UIDNotIn applies the NotIn predicate on the "uid" field.
func UIDNotIn(vs ...string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotIn(FieldUID, vs...))
}

// UIDGT applies the GT predicate on the "uid" field.
func UIDGT(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGT(FieldUID, v))
}

// UIDGTE applies the GTE predicate on the "uid" field.
func UIDGTE(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGTE(FieldUID, v))
}

// UIDLT applies the LT predicate on the "uid" field.
func UIDLT(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLT(FieldUID, v))
}

// UIDLTE applies the LTE predicate on the "uid" field.
func UIDLTE(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLTE(FieldUID, v))
}

// UIDContains applies the Contains predicate on the "uid" field.
func UIDContains(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldContains(FieldUID, v))
}

// UIDHasPrefix applies the HasPrefix predicate on the "uid" field.
func UIDHasPrefix(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldHasPrefix(FieldUID, v))
}

// UIDHasSuffix applies the HasSuffix predicate on the "uid" field.
func UIDHasSuffix(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldHasSuffix(FieldUID, v))
}

// UIDEqualFold applies the EqualFold predicate on the "uid" field.
func UIDEqualFold(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEqualFold(FieldUID, v))
}

// UIDContainsFold applies the ContainsFold predicate on the "uid" field.
func UIDContainsFold(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldContainsFold(FieldUID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLTE(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLTE(FieldQuestionID, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldContainsFold(FieldAnswer, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldIsCorrect, v))
}

// IsCorrectIsNil applies the IsNil predicate on the "is_correct" field.
func IsCorrectIsNil() predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIsNull(FieldIsCorrect))
}

// IsCorrectNotNil applies the NotNil predicate on the "is_correct" field.
func IsCorrectNotNil() predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotNull(FieldIsCorrect))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotNull(FieldScore))
}

// TimeTakenEQ applies the EQ predicate on the "time_taken" field.
func TimeTakenEQ(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldTimeTaken, v))
}

// TimeTakenNEQ applies the NEQ predicate on the "time_taken" field.
func TimeTakenNEQ(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldTimeTaken, v))
}

// TimeTakenIn applies the In predicate on the "time_taken" field.
func TimeTakenIn(vs ...int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIn(FieldTimeTaken, vs...))
}

// TimeTakenNotIn applies the NotIn predicate on the "time_taken" field.
func TimeTakenNotIn(vs ...int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotIn(FieldTimeTaken, vs...))
}

// TimeTakenGT applies the GT predicate on the "time_taken" field.
func TimeTakenGT(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGT(FieldTimeTaken, v))
}

// TimeTakenGTE applies the GTE predicate on the "time_taken" field.
func TimeTakenGTE(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGTE(FieldTimeTaken, v))
}

// TimeTakenLT applies the LT predicate on the "time_taken" field.
func TimeTakenLT(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLT(FieldTimeTaken, v))
}

// TimeTakenLTE applies the LTE predicate on the "time_taken" field.
func TimeTakenLTE(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLTE(FieldTimeTaken, v))
}

// ConfidenceLevelEQ applies the EQ predicate on the "confidence_level" field.
func ConfidenceLevelEQ(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelNEQ applies the NEQ predicate on the "confidence_level" field.
func ConfidenceLevelNEQ(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelIn applies the In predicate on the "confidence_level" field.
func ConfidenceLevelIn(vs ...int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelNotIn applies the NotIn predicate on the "confidence_level" field.
func ConfidenceLevelNotIn(vs ...int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelGT applies the GT predicate on the "confidence_level" field.
func ConfidenceLevelGT(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGT(FieldConfidenceLevel, v))
}

// ConfidenceLevelGTE applies the GTE predicate on the "confidence_level" field.
func ConfidenceLevelGTE(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGTE(FieldConfidenceLevel, v))
}

// ConfidenceLevelLT applies the LT predicate on the "confidence_level" field.
func ConfidenceLevelLT(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLT(FieldConfidenceLevel, v))
}

// ConfidenceLevelLTE applies the LTE predicate on the "confidence_level" field.
func ConfidenceLevelLTE(v int) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLTE(FieldConfidenceLevel, v))
}

// AttemptedAtEQ applies the EQ predicate on the "attempted_at" field.
func AttemptedAtEQ(v time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldEQ(FieldAttemptedAt, v))
}

// AttemptedAtNEQ applies the NEQ predicate on the "attempted_at" field.
func AttemptedAtNEQ(v time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNEQ(FieldAttemptedAt, v))
}

// AttemptedAtIn applies the In predicate on the "attempted_at" field.
func AttemptedAtIn(vs ...time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldIn(FieldAttemptedAt, vs...))
}

// AttemptedAtNotIn applies the NotIn predicate on the "attempted_at" field.
func AttemptedAtNotIn(vs ...time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldNotIn(FieldAttemptedAt, vs...))
}

// AttemptedAtGT applies the GT predicate on the "attempted_at" field.
func AttemptedAtGT(v time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGT(FieldAttemptedAt, v))
}

// AttemptedAtGTE applies the GTE predicate on the "attempted_at" field.
func AttemptedAtGTE(v time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldGTE(FieldAttemptedAt, v))
}

// AttemptedAtLT applies the LT predicate on the "attempted_at" field.
func AttemptedAtLT(v time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLT(FieldAttemptedAt, v))
}

// AttemptedAtLTE applies the LTE predicate on the "attempted_at" field.
func AttemptedAtLTE(v time.Time) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.FieldLTE(FieldAttemptedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionAttempt) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionAttempt) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionAttempt) predicate.QuestionAttempt {
	return predicate.QuestionAttempt(sql.NotPredicates(p))
}
