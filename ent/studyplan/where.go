// Code generated by ent, DO NOT EDIT.

package studyplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldUserID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldSubject, v))
}

// ExamType applies equality check predicate on the "exam_type" field. It's identical to ExamTypeEQ.
func ExamType(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldExamType, v))
}

// ExamDate applies equality check predicate on the "exam_date" field. It's identical to ExamDateEQ.
func ExamDate(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldExamDate, v))
}

// DailyHours applies equality check predicate on the "daily_hours" field. It's identical to DailyHoursEQ.
func DailyHours(v float64) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldDailyHours, v))
}

// TargetGrade applies equality check predicate on the "target_grade" field. It's identical to TargetGradeEQ.
func TargetGrade(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldTargetGrade, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldUserID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContainsFold(FieldSubject, v))
}

// ExamTypeEQ applies the EQ predicate on the "exam_type" field.
func ExamTypeEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldExamType, v))
}

// ExamTypeNEQ applies the NEQ predicate on the "exam_type" field.
func ExamTypeNEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldExamType, v))
}

// ExamTypeIn applies the In predicate on the "exam_type" field.
func ExamTypeIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldExamType, vs...))
}

// ExamTypeNotIn applies the NotIn predicate on the "exam_type" field.
func ExamTypeNotIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldExamType, vs...))
}

// ExamTypeGT applies the GT predicate on the "exam_type" field.
func ExamTypeGT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldExamType, v))
}

// ExamTypeGTE applies the GTE predicate on the "exam_type" field.
func ExamTypeGTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldExamType, v))
}

// ExamTypeLT applies the LT predicate on the "exam_type" field.
func ExamTypeLT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldExamType, v))
}

// ExamTypeLTE applies the LTE predicate on the "exam_type" field.
func ExamTypeLTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldExamType, v))
}

// ExamTypeContains applies the Contains predicate on the "exam_type" field.
func ExamTypeContains(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContains(FieldExamType, v))
}

// ExamTypeHasPrefix applies the HasPrefix predicate on the "exam_type" field.
func ExamTypeHasPrefix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasPrefix(FieldExamType, v))
}

// ExamTypeHasSuffix applies the HasSuffix predicate on the "exam_type" field.
func ExamTypeHasSuffix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasSuffix(FieldExamType, v))
}

// ExamTypeEqualFold applies the EqualFold predicate on the "exam_type" field.
func ExamTypeEqualFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEqualFold(FieldExamType, v))
}

// ExamTypeContainsFold applies the ContainsFold predicate on the "exam_type" field.
func ExamTypeContainsFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContainsFold(FieldExamType, v))
}

// ExamDateEQ applies the EQ predicate on the "exam_date" field.
func ExamDateEQ(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldExamDate, v))
}

// ExamDateNEQ applies the NEQ predicate on the "exam_date" field.
func ExamDateNEQ(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldExamDate, v))
}

// ExamDateIn applies the In predicate on the "exam_date" field.
func ExamDateIn(vs ...time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldExamDate, vs...))
}

// ExamDateNotIn applies the NotIn predicate on the "exam_date" field.
func ExamDateNotIn(vs ...time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldExamDate, vs...))
}

// ExamDateGT applies the GT predicate on the "exam_date" field.
func ExamDateGT(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldExamDate, v))
}

// ExamDateGTE applies the GTE predicate on the "exam_date" field.
func ExamDateGTE(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldExamDate, v))
}

// ExamDateLT applies the LT predicate on the "exam_date" field.
func ExamDateLT(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldExamDate, v))
}

// ExamDateLTE applies the LTE predicate on the "exam_date" field.
func ExamDateLTE(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldExamDate, v))
}

// DailyHoursEQ applies the EQ predicate on the "daily_hours" field.
func DailyHoursEQ(v float64) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldDailyHours, v))
}

// DailyHoursNEQ applies the NEQ predicate on the "daily_hours" field.
func DailyHoursNEQ(v float64) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldDailyHours, v))
}

// DailyHoursIn applies the In predicate on the "daily_hours" field.
func DailyHoursIn(vs ...float64) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldDailyHours, vs...))
}

// DailyHoursNotIn applies the NotIn predicate on the "daily_hours" field.
func DailyHoursNotIn(vs ...float64) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldDailyHours, vs...))
}

// DailyHoursGT applies the GT predicate on the "daily_hours" field.
func DailyHoursGT(v float64) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldDailyHours, v))
}

// DailyHoursGTE applies the GTE predicate on the "daily_hours" field.
func DailyHoursGTE(v float64) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldDailyHours, v))
}

// DailyHoursLT applies the LT predicate on the "daily_hours" field.
func DailyHoursLT(v float64) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldDailyHours, v))
}

// DailyHoursLTE applies the LTE predicate on the "daily_hours" field.
func DailyHoursLTE(v float64) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldDailyHours, v))
}

// TargetGradeEQ applies the EQ predicate on the "target_grade" field.
func TargetGradeEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldTargetGrade, v))
}

// TargetGradeNEQ applies the NEQ predicate on the "target_grade" field.
func TargetGradeNEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldTargetGrade, v))
}

// TargetGradeIn applies the In predicate on the "target_grade" field.
func TargetGradeIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldTargetGrade, vs...))
}

// TargetGradeNotIn applies the NotIn predicate on the "target_grade" field.
func TargetGradeNotIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldTargetGrade, vs...))
}

// TargetGradeGT applies the GT predicate on the "target_grade" field.
func TargetGradeGT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldTargetGrade, v))
}

// TargetGradeGTE applies the GTE predicate on the "target_grade" field.
func TargetGradeGTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldTargetGrade, v))
}

// TargetGradeLT applies the LT predicate on the "target_grade" field.
func TargetGradeLT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldTargetGrade, v))
}

// TargetGradeLTE applies the LTE predicate on the "target_grade" field.
func TargetGradeLTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldTargetGrade, v))
}

// TargetGradeContains applies the Contains predicate on the "target_grade" field.
func TargetGradeContains(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContains(FieldTargetGrade, v))
}

// TargetGradeHasPrefix applies the HasPrefix predicate on the "target_grade" field.
func TargetGradeHasPrefix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasPrefix(FieldTargetGrade, v))
}

// TargetGradeHasSuffix applies the HasSuffix predicate on the "target_grade" field.
func TargetGradeHasSuffix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasSuffix(FieldTargetGrade, v))
}

// TargetGradeIsNil applies the IsNil predicate on the "target_grade" field.
func TargetGradeIsNil() predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIsNull(FieldTargetGrade))
}

// TargetGradeNotNil applies the NotNil predicate on the "target_grade" field.
func TargetGradeNotNil() predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotNull(FieldTargetGrade))
}

// TargetGradeEqualFold applies the EqualFold predicate on the "target_grade" field.
func TargetGradeEqualFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEqualFold(FieldTargetGrade, v))
}

// TargetGradeContainsFold applies the ContainsFold predicate on the "target_grade" field.
func TargetGradeContainsFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContainsFold(FieldTargetGrade, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudyPlan) predicate.StudyPlan {
	return predicate.StudyPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudyPlan) predicate.StudyPlan {
	return predicate.StudyPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudyPlan) predicate.StudyPlan {
	return predicate.StudyPlan(sql.NotPredicates(p))
}
