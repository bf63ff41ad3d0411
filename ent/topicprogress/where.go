// Code generated by ent, DO NOT EDIT.

package topicprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldUserID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTopic, v))
}

// ProblemsAttempted applies equality check predicate on the "problems_attempted" field. It's identical to ProblemsAttemptedEQ.
func ProblemsAttempted(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldProblemsAttempted, v))
}

// ProblemsSolved applies equality check predicate on the "problems_solved" field. It's identical to ProblemsSolvedEQ.
func ProblemsSolved(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldProblemsSolved, v))
}

// EasySolved applies equality check predicate on the "easy_solved" field. It's identical to EasySolvedEQ.
func EasySolved(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldEasySolved, v))
}

// MediumSolved applies equality check predicate on the "medium_solved" field. It's identical to MediumSolvedEQ.
func MediumSolved(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldMediumSolved, v))
}

// HardSolved applies equality check predicate on the "hard_solved" field. It's identical to HardSolvedEQ.
func HardSolved(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldHardSolved, v))
}

// TimeSpentMinutes applies equality check predicate on the "time_spent_minutes" field. It's identical to TimeSpentMinutesEQ.
func TimeSpentMinutes(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTimeSpentMinutes, v))
}

// WeaknessScore applies equality check predicate on the "weakness_score" field. It's identical to WeaknessScoreEQ.
func WeaknessScore(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldWeaknessScore, v))
}

// LastPracticed applies equality check predicate on the "last_practiced" field. It's identical to LastPracticedEQ.
func LastPracticed(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldLastPracticed, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldUserID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldContainsFold(FieldTopic, v))
}

// ProblemsAttemptedEQ applies the EQ predicate on the "problems_attempted" field.
func ProblemsAttemptedEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldProblemsAttempted, v))
}

// ProblemsAttemptedNEQ applies the NEQ predicate on the "problems_attempted" field.
func ProblemsAttemptedNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldProblemsAttempted, v))
}

// ProblemsAttemptedIn applies the In predicate on the "problems_attempted" field.
func ProblemsAttemptedIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldProblemsAttempted, vs...))
}

// ProblemsAttemptedNotIn applies the NotIn predicate on the "problems_attempted" field.
func ProblemsAttemptedNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldProblemsAttempted, vs...))
}

// ProblemsAttemptedGT applies the GT predicate on the "problems_attempted" field.
func ProblemsAttemptedGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldProblemsAttempted, v))
}

// ProblemsAttemptedGTE applies the GTE predicate on the "problems_attempted" field.
func ProblemsAttemptedGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldProblemsAttempted, v))
}

// ProblemsAttemptedLT applies the LT predicate on the "problems_attempted" field.
func ProblemsAttemptedLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldProblemsAttempted, v))
}

// ProblemsAttemptedLTE applies the LTE predicate on the "problems_attempted" field.
func ProblemsAttemptedLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldProblemsAttempted, v))
}

// ProblemsSolvedEQ applies the EQ predicate on the "problems_solved" field.
func ProblemsSolvedEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldProblemsSolved, v))
}

// ProblemsSolvedNEQ applies the NEQ predicate on the "problems_solved" field.
func ProblemsSolvedNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldProblemsSolved, v))
}

// ProblemsSolvedIn applies the In predicate on the "problems_solved" field.
func ProblemsSolvedIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldProblemsSolved, vs...))
}

// ProblemsSolvedNotIn applies the NotIn predicate on the "problems_solved" field.
func ProblemsSolvedNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldProblemsSolved, vs...))
}

// ProblemsSolvedGT applies the GT predicate on the "problems_solved" field.
func ProblemsSolvedGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldProblemsSolved, v))
}

// ProblemsSolvedGTE applies the GTE predicate on the "problems_solved" field.
func ProblemsSolvedGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldProblemsSolved, v))
}

// ProblemsSolvedLT applies the LT predicate on the "problems_solved" field.
func ProblemsSolvedLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldProblemsSolved, v))
}

// ProblemsSolvedLTE applies the LTE predicate on the "problems_solved" field.
func ProblemsSolvedLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldProblemsSolved, v))
}

// EasySolvedEQ applies the EQ predicate on the "easy_solved" field.
func EasySolvedEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldEasySolved, v))
}

// EasySolvedNEQ applies the NEQ predicate on the "easy_solved" field.
func EasySolvedNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldEasySolved, v))
}

// EasySolvedIn applies the In predicate on the "easy_solved" field.
func EasySolvedIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldEasySolved, vs...))
}

// EasySolvedNotIn applies the NotIn predicate on the "easy_solved" field.
func EasySolvedNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldEasySolved, vs...))
}

// EasySolvedGT applies the GT predicate on the "easy_solved" field.
func EasySolvedGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldEasySolved, v))
}

// EasySolvedGTE applies the GTE predicate on the "easy_solved" field.
func EasySolvedGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldEasySolved, v))
}

// EasySolvedLT applies the LT predicate on the "easy_solved" field.
func EasySolvedLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldEasySolved, v))
}

// EasySolvedLTE applies the LTE predicate on the "easy_solved" field.
func EasySolvedLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldEasySolved, v))
}

// MediumSolvedEQ applies the EQ predicate on the "medium_solved" field.
func MediumSolvedEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldMediumSolved, v))
}

// MediumSolvedNEQ applies the NEQ predicate on the "medium_solved" field.
func MediumSolvedNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldMediumSolved, v))
}

// MediumSolvedIn applies the In predicate on the "medium_solved" field.
func MediumSolvedIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldMediumSolved, vs...))
}

// MediumSolvedNotIn applies the NotIn predicate on the "medium_solved" field.
func MediumSolvedNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldMediumSolved, vs...))
}

// MediumSolvedGT applies the GT predicate on the "medium_solved" field.
func MediumSolvedGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldMediumSolved, v))
}

// MediumSolvedGTE applies the GTE predicate on the "medium_solved" field.
func MediumSolvedGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldMediumSolved, v))
}

// MediumSolvedLT applies the LT predicate on the "medium_solved" field.
func MediumSolvedLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldMediumSolved, v))
}

// MediumSolvedLTE applies the LTE predicate on the "medium_solved" field.
func MediumSolvedLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldMediumSolved, v))
}

// HardSolvedEQ applies the EQ predicate on the "hard_solved" field.
func HardSolvedEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldHardSolved, v))
}

// HardSolvedNEQ applies the NEQ predicate on the "hard_solved" field.
func HardSolvedNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldHardSolved, v))
}

// HardSolvedIn applies the In predicate on the "hard_solved" field.
func HardSolvedIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldHardSolved, vs...))
}

// HardSolvedNotIn applies the NotIn predicate on the "hard_solved" field.
func HardSolvedNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldHardSolved, vs...))
}

// HardSolvedGT applies the GT predicate on the "hard_solved" field.
func HardSolvedGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldHardSolved, v))
}

// HardSolvedGTE applies the GTE predicate on the "hard_solved" field.
func HardSolvedGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldHardSolved, v))
}

// HardSolvedLT applies the LT predicate on the "hard_solved" field.
func HardSolvedLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldHardSolved, v))
}

// HardSolvedLTE applies the LTE predicate on the "hard_solved" field.
func HardSolvedLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldHardSolved, v))
}

// TimeSpentMinutesEQ applies the EQ predicate on the "time_spent_minutes" field.
func TimeSpentMinutesEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesNEQ applies the NEQ predicate on the "time_spent_minutes" field.
func TimeSpentMinutesNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesIn applies the In predicate on the "time_spent_minutes" field.
func TimeSpentMinutesIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldTimeSpentMinutes, vs...))
}

// TimeSpentMinutesNotIn applies the NotIn predicate on the "time_spent_minutes" field.
func TimeSpentMinutesNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldTimeSpentMinutes, vs...))
}

// TimeSpentMinutesGT applies the GT predicate on the "time_spent_minutes" field.
func TimeSpentMinutesGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesGTE applies the GTE predicate on the "time_spent_minutes" field.
func TimeSpentMinutesGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesLT applies the LT predicate on the "time_spent_minutes" field.
func TimeSpentMinutesLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesLTE applies the LTE predicate on the "time_spent_minutes" field.
func TimeSpentMinutesLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldTimeSpentMinutes, v))
}

// WeaknessScoreEQ applies the EQ predicate on the "weakness_score" field.
func WeaknessScoreEQ(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldWeaknessScore, v))
}

// WeaknessScoreNEQ applies the NEQ predicate on the "weakness_score" field.
func WeaknessScoreNEQ(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldWeaknessScore, v))
}

// WeaknessScoreIn applies the In predicate on the "weakness_score" field.
func WeaknessScoreIn(vs ...float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldWeaknessScore, vs...))
}

// WeaknessScoreNotIn applies the NotIn predicate on the "weakness_score" field.
func WeaknessScoreNotIn(vs ...float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldWeaknessScore, vs...))
}

// WeaknessScoreGT applies the GT predicate on the "weakness_score" field.
func WeaknessScoreGT(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldWeaknessScore, v))
}

// WeaknessScoreGTE applies the GTE predicate on the "weakness_score" field.
func WeaknessScoreGTE(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldWeaknessScore, v))
}

// WeaknessScoreLT applies the LT predicate on the "weakness_score" field.
func WeaknessScoreLT(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldWeaknessScore, v))
}

// WeaknessScoreLTE applies the LTE predicate on the "weakness_score" field.
func WeaknessScoreLTE(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldWeaknessScore, v))
}

// LastPracticedEQ applies the EQ predicate on the "last_practiced" field.
func LastPracticedEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldLastPracticed, v))
}

// LastPracticedNEQ applies the NEQ predicate on the "last_practiced" field.
func LastPracticedNEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldLastPracticed, v))
}

// LastPracticedIn applies the In predicate on the "last_practiced" field.
func LastPracticedIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldLastPracticed, vs...))
}

// LastPracticedNotIn applies the NotIn predicate on the "last_practiced" field.
func LastPracticedNotIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldLastPracticed, vs...))
}

// LastPracticedGT applies the GT predicate on the "last_practiced" field.
func LastPracticedGT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldLastPracticed, v))
}

// LastPracticedGTE applies the GTE predicate on the "last_practiced" field.
func LastPracticedGTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldLastPracticed, v))
}

// LastPracticedLT applies the LT predicate on the "last_practiced" field.
func LastPracticedLT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldLastPracticed, v))
}

// LastPracticedLTE applies the LTE predicate on the "last_practiced" field.
func LastPracticedLTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldLastPracticed, v))
}

// LastPracticedIsNil applies the IsNil predicate on the "last_practiced" field.
func LastPracticedIsNil() predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIsNull(FieldLastPracticed))
}

// LastPracticedNotNil applies the NotNil predicate on the "last_practiced" field.
func LastPracticedNotNil() predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotNull(FieldLastPracticed))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicProgress) predicate.TopicProgress {
	return predicate.TopicProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicProgress) predicate.TopicProgress {
	return predicate.TopicProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicProgress) predicate.TopicProgress {
	return predicate.TopicProgress(sql.NotPredicates(p))
}
