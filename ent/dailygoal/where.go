// Code generated by ent, DO NOT EDIT.

package dailygoal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldEQ(FieldUserID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldEQ(FieldDate, v))
}

// TargetProblems applies equality check predicate on the "target_problems" field. It's identical to TargetProblemsEQ.
func TargetProblems(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldEQ(FieldTargetProblems, v))
}

// CompletedProblems applies equality check predicate on the "completed_problems" field. It's identical to CompletedProblemsEQ.
func CompletedProblems(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldEQ(FieldCompletedProblems, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldEQ(FieldCompleted, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldLTE(FieldUserID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldLTE(FieldDate, v))
}

// TargetProblemsEQ applies the EQ predicate on the "target_problems" field.
func TargetProblemsEQ(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldEQ(FieldTargetProblems, v))
}

// TargetProblemsNEQ applies the NEQ predicate on the "target_problems" field.
func TargetProblemsNEQ(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldNEQ(FieldTargetProblems, v))
}

// TargetProblemsIn applies the In predicate on the "target_problems" field.
func TargetProblemsIn(vs ...int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldIn(FieldTargetProblems, vs...))
}

// TargetProblemsNotIn applies the NotIn predicate on the "target_problems" field.
func TargetProblemsNotIn(vs ...int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldNotIn(FieldTargetProblems, vs...))
}

// TargetProblemsGT applies the GT predicate on the "target_problems" field.
func TargetProblemsGT(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldGT(FieldTargetProblems, v))
}

// TargetProblemsGTE applies the GTE predicate on the "target_problems" field.
func TargetProblemsGTE(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldGTE(FieldTargetProblems, v))
}

// TargetProblemsLT applies the LT predicate on the "target_problems" field.
func TargetProblemsLT(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldLT(FieldTargetProblems, v))
}

// TargetProblemsLTE applies the LTE predicate on the "target_problems" field.
func TargetProblemsLTE(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldLTE(FieldTargetProblems, v))
}

// CompletedProblemsEQ applies the EQ predicate on the "completed_problems" field.
func CompletedProblemsEQ(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldEQ(FieldCompletedProblems, v))
}

// CompletedProblemsNEQ applies the NEQ predicate on the "completed_problems" field.
func CompletedProblemsNEQ(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldNEQ(FieldCompletedProblems, v))
}

// CompletedProblemsIn applies the In predicate on the "completed_problems" field.
func CompletedProblemsIn(vs ...int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldIn(FieldCompletedProblems, vs...))
}

// CompletedProblemsNotIn applies the NotIn predicate on the "completed_problems" field.
func CompletedProblemsNotIn(vs ...int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldNotIn(FieldCompletedProblems, vs...))
}

// CompletedProblemsGT applies the GT predicate on the "completed_problems" field.
func CompletedProblemsGT(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldGT(FieldCompletedProblems, v))
}

// CompletedProblemsGTE applies the GTE predicate on the "completed_problems" field.
func CompletedProblemsGTE(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldGTE(FieldCompletedProblems, v))
}

// CompletedProblemsLT applies the LT predicate on the "completed_problems" field.
func CompletedProblemsLT(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldLT(FieldCompletedProblems, v))
}

// CompletedProblemsLTE applies the LTE predicate on the "completed_problems" field.
func CompletedProblemsLTE(v int) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldLTE(FieldCompletedProblems, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.DailyGoal {
	return predicate.DailyGoal(sql.FieldNEQ(FieldCompleted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyGoal) predicate.DailyGoal {
	return predicate.DailyGoal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyGoal) predicate.DailyGoal {
	return predicate.DailyGoal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyGoal) predicate.DailyGoal {
	return predicate.DailyGoal(sql.NotPredicates(p))
}
