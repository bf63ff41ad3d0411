// Code generated by ent, DO NOT EDIT.

package reviewschedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldUserID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldTopicID, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldIntervalDays, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldEaseFactor, v))
}

// ReviewCount applies equality check predicate on the "review_count" field. It's identical to ReviewCountEQ.
func ReviewCount(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldReviewCount, v))
}

// NextReviewDate applies equality check predicate on the "next_review_date" field. It's identical to NextReviewDateEQ.
func NextReviewDate(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldNextReviewDate, v))
}

// LastReviewed applies equality check predicate on the "last_reviewed" field. It's identical to LastReviewedEQ.
func LastReviewed(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldLastReviewed, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldUserID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldTopicID, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldIntervalDays, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldEaseFactor, v))
}

// ReviewCountEQ applies the EQ predicate on the "review_count" field.
func ReviewCountEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldReviewCount, v))
}

// ReviewCountNEQ applies the NEQ predicate on the "review_count" field.
func ReviewCountNEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldReviewCount, v))
}

// ReviewCountIn applies the In predicate on the "review_count" field.
func ReviewCountIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldReviewCount, vs...))
}

// ReviewCountNotIn applies the NotIn predicate on the "review_count" field.
func ReviewCountNotIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldReviewCount, vs...))
}

// ReviewCountGT applies the GT predicate on the "review_count" field.
func ReviewCountGT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldReviewCount, v))
}

// ReviewCountGTE applies the GTE predicate on the "review_count" field.
func ReviewCountGTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldReviewCount, v))
}

// ReviewCountLT applies the LT predicate on the "review_count" field.
func ReviewCountLT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldReviewCount, v))
}

// ReviewCountLTE applies the LTE predicate on the "review_count" field.
func ReviewCountLTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldReviewCount, v))
}

// NextReviewDateEQ applies the EQ predicate on the "next_review_date" field.
func NextReviewDateEQ(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldNextReviewDate, v))
}

// NextReviewDateNEQ applies the NEQ predicate on the "next_review_date" field.
func NextReviewDateNEQ(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldNextReviewDate, v))
}

// NextReviewDateIn applies the In predicate on the "next_review_date" field.
func NextReviewDateIn(vs ...time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldNextReviewDate, vs...))
}

// NextReviewDateNotIn applies the NotIn predicate on the "next_review_date" field.
func NextReviewDateNotIn(vs ...time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldNextReviewDate, vs...))
}

// NextReviewDateGT applies the GT predicate on the "next_review_date" field.
func NextReviewDateGT(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldNextReviewDate, v))
}

// NextReviewDateGTE applies the GTE predicate on the "next_review_date" field.
func NextReviewDateGTE(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldNextReviewDate, v))
}

// NextReviewDateLT applies the LT predicate on the "next_review_date" field.
func NextReviewDateLT(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldNextReviewDate, v))
}

// NextReviewDateLTE applies the LTE predicate on the "next_review_date" field.
func NextReviewDateLTE(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldNextReviewDate, v))
}

// LastReviewedEQ applies the EQ predicate on the "last_reviewed" field.
func LastReviewedEQ(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldLastReviewed, v))
}

// LastReviewedNEQ applies the NEQ predicate on the "last_reviewed" field.
func LastReviewedNEQ(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldLastReviewed, v))
}

// LastReviewedIn applies the In predicate on the "last_reviewed" field.
func LastReviewedIn(vs ...time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldLastReviewed, vs...))
}

// LastReviewedNotIn applies the NotIn predicate on the "last_reviewed" field.
func LastReviewedNotIn(vs ...time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldLastReviewed, vs...))
}

// LastReviewedGT applies the GT predicate on the "last_reviewed" field.
func LastReviewedGT(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldLastReviewed, v))
}

// LastReviewedGTE applies the GTE predicate on the "last_reviewed" field.
func LastReviewedGTE(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldLastReviewed, v))
}

// LastReviewedLT applies the LT predicate on the "last_reviewed" field.
func LastReviewedLT(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldLastReviewed, v))
}

// LastReviewedLTE applies the LTE predicate on the "last_reviewed" field.
func LastReviewedLTE(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldLastReviewed, v))
}

// LastReviewedIsNil applies the IsNil predicate on the "last_reviewed" field.
func LastReviewedIsNil() predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIsNull(FieldLastReviewed))
}

// LastReviewedNotNil applies the NotNil predicate on the "last_reviewed" field.
func LastReviewedNotNil() predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotNull(FieldLastReviewed))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewSchedule) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewSchedule) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewSchedule) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.NotPredicates(p))
}
