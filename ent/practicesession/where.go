// Code generated by ent, DO NOT EDIT.

package practicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldID, id))
}

// UID applies equality check predicate on the "uid" field. It's identical to UIDEQ.
func UID(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldUID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldUserID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTopic, v))
}

// ProblemName applies equality check predicate on the "problem_name" field. It's identical to ProblemNameEQ.
func ProblemName(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldProblemName, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldDifficulty, v))
}

// Solved applies equality check predicate on the "solved" field. It's identical to SolvedEQ.
func Solved(v bool) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSolved, v))
}

// TimeSpentMinutes applies equality check predicate on the "time_spent_minutes" field. It's identical to TimeSpentMinutesEQ.
func TimeSpentMinutes(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTimeSpentMinutes, v))
}

// CodeSubmitted applies equality check predicate on the "code_submitted" field. It's identical to CodeSubmittedEQ.
func CodeSubmitted(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCodeSubmitted, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldNotes, v))
}

// AttemptedAt applies equality check predicate on the "attempted_at" field. It's identical to AttemptedAtEQ.
func AttemptedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldAttemptedAt, v))
}

// SolvedAt applies equality check predicate on the "solved_at" field. It's identical to SolvedAtEQ.
func SolvedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSolvedAt, v))
}

// UIDEQ applies the EQ predicate on the "uid" field.
func UIDEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldUID, v))
}

// UIDNEQ applies the NEQ predicate on the "uid" field.
func UIDNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldUID, v))
}

// UIDIn applies the In predicate on the "uid" field.
func UIDIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldUID, vs...))
}

// UIDNotIn applies the NotIn predicate on the "uid" field.
func UIDNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldUID, vs...))
}

// UIDGT applies the GT predicate on the "uid" field.
func UIDGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldUID, v))
}

// UIDGTE applies the GTE predicate on the "uid" field.
func UIDGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldUID, v))
}

// UIDLT applies the LT predicate on the "uid" field.
func UIDLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldUID, v))
}

// UIDLTE applies the LTE predicate on the "uid" field.
func UIDLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldUID, v))
}

// UIDContains applies the Contains predicate on the "uid" field.
func UIDContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldUID, v))
}

// UIDHasPrefix applies the HasPrefix predicate on the "uid" field.
func UIDHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldUID, v))
}

// UIDHasSuffix applies the HasSuffix predicate on the "uid" field.
func UIDHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldUID, v))
}

// UIDEqualFold applies the EqualFold predicate on the "uid" field.
func UIDEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldUID, v))
}

// UIDContainsFold applies the ContainsFold predicate on the "uid" field.
func UIDContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldUID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldUserID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldTopic, v))
}

// ProblemNameEQ applies the EQ predicate on the "problem_name" field.
func ProblemNameEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldProblemName, v))
}

// ProblemNameNEQ applies the NEQ predicate on the "problem_name" field.
func ProblemNameNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldProblemName, v))
}

// ProblemNameIn applies the In predicate on the "problem_name" field.
func ProblemNameIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldProblemName, vs...))
}

// ProblemNameNotIn applies the NotIn predicate on the "problem_name" field.
func ProblemNameNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldProblemName, vs...))
}

// ProblemNameGT applies the GT predicate on the "problem_name" field.
func ProblemNameGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldProblemName, v))
}

// ProblemNameGTE applies the GTE predicate on the "problem_name" field.
func ProblemNameGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldProblemName, v))
}

// ProblemNameLT applies the LT predicate on the "problem_name" field.
func ProblemNameLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldProblemName, v))
}

// ProblemNameLTE applies the LTE predicate on the "problem_name" field.
func ProblemNameLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldProblemName, v))
}

// ProblemNameContains applies the Contains predicate on the "problem_name" field.
func ProblemNameContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldProblemName, v))
}

// ProblemNameHasPrefix applies the HasPrefix predicate on the "problem_name" field.
func ProblemNameHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldProblemName, v))
}

// ProblemNameHasSuffix applies the HasSuffix predicate on the "problem_name" field.
func ProblemNameHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldProblemName, v))
}

// ProblemNameEqualFold applies the EqualFold predicate on the "problem_name" field.
func ProblemNameEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldProblemName, v))
}

// ProblemNameContainsFold applies the ContainsFold predicate on the "problem_name" field.
func ProblemNameContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldProblemName, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldDifficulty, v))
}

// SolvedEQ applies the EQ predicate on the "solved" field.
func SolvedEQ(v bool) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSolved, v))
}

// SolvedNEQ applies the NEQ predicate on the "solved" field.
func SolvedNEQ(v bool) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldSolved, v))
}

// TimeSpentMinutesEQ applies the EQ predicate on the "time_spent_minutes" field.
func TimeSpentMinutesEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesNEQ applies the NEQ predicate on the "time_spent_minutes" field.
func TimeSpentMinutesNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesIn applies the In predicate on the "time_spent_minutes" field.
func TimeSpentMinutesIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldTimeSpentMinutes, vs...))
}

// TimeSpentMinutesNotIn applies the NotIn predicate on the "time_spent_minutes" field.
func TimeSpentMinutesNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldTimeSpentMinutes, vs...))
}

// TimeSpentMinutesGT applies the GT predicate on the "time_spent_minutes" field.
func TimeSpentMinutesGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesGTE applies the GTE predicate on the "time_spent_minutes" field.
func TimeSpentMinutesGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesLT applies the LT predicate on the "time_spent_minutes" field.
func TimeSpentMinutesLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesLTE applies the LTE predicate on the "time_spent_minutes" field.
func TimeSpentMinutesLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldTimeSpentMinutes, v))
}

// CodeSubmittedEQ applies the EQ predicate on the "code_submitted" field.
func CodeSubmittedEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCodeSubmitted, v))
}

// CodeSubmittedNEQ applies the NEQ predicate on the "code_submitted" field.
func CodeSubmittedNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCodeSubmitted, v))
}

// CodeSubmittedIn applies the In predicate on the "code_submitted" field.
func CodeSubmittedIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldCodeSubmitted, vs...))
}

// CodeSubmittedNotIn applies the NotIn predicate on the "code_submitted" field.
func CodeSubmittedNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldCodeSubmitted, vs...))
}

// CodeSubmittedGT applies the GT predicate on the "code_submitted" field.
func CodeSubmittedGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldCodeSubmitted, v))
}

// CodeSubmittedGTE applies the GTE predicate on the "code_submitted" field.
func CodeSubmittedGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldCodeSubmitted, v))
}

// CodeSubmittedLT applies the LT predicate on the "code_submitted" field.
func CodeSubmittedLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldCodeSubmitted, v))
}

// CodeSubmittedLTE applies the LTE predicate on the "code_submitted" field.
func CodeSubmittedLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldCodeSubmitted, v))
}

// CodeSubmittedContains applies the Contains predicate on the "code_submitted" field.
func CodeSubmittedContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldCodeSubmitted, v))
}

// CodeSubmittedHasPrefix applies the HasPrefix predicate on the "code_submitted" field.
func CodeSubmittedHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldCodeSubmitted, v))
}

// CodeSubmittedHasSuffix applies the HasSuffix predicate on the "code_submitted" field.
func CodeSubmittedHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldCodeSubmitted, v))
}

// CodeSubmittedIsNil applies the IsNil predicate on the "code_submitted" field.
func CodeSubmittedIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldCodeSubmitted))
}

// CodeSubmittedNotNil applies the NotNil predicate on the "code_submitted" field.
func CodeSubmittedNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldCodeSubmitted))
}

// CodeSubmittedEqualFold applies the EqualFold predicate on the "code_submitted" field.
func CodeSubmittedEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldCodeSubmitted, v))
}

// CodeSubmittedContainsFold applies the ContainsFold predicate on the "code_submitted" field.
func CodeSubmittedContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldCodeSubmitted, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldNotes, v))
}

// AttemptedAtEQ applies the EQ predicate on the "attempted_at" field.
func AttemptedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldAttemptedAt, v))
}

// AttemptedAtNEQ applies the NEQ predicate on the "attempted_at" field.
func AttemptedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldAttemptedAt, v))
}

// AttemptedAtIn applies the In predicate on the "attempted_at" field.
func AttemptedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldAttemptedAt, vs...))
}

// AttemptedAtNotIn applies the NotIn predicate on the "attempted_at" field.
func AttemptedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldAttemptedAt, vs...))
}

// AttemptedAtGT applies the GT predicate on the "attempted_at" field.
func AttemptedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldAttemptedAt, v))
}

// AttemptedAtGTE applies the GTE predicate on the "attempted_at" field.
func AttemptedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldAttemptedAt, v))
}

// AttemptedAtLT applies the LT predicate on the "attempted_at" field.
func AttemptedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldAttemptedAt, v))
}

// AttemptedAtLTE applies the LTE predicate on the "attempted_at" field.
func AttemptedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldAttemptedAt, v))
}

// SolvedAtEQ applies the EQ predicate on the "solved_at" field.
func SolvedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSolvedAt, v))
}

// SolvedAtNEQ applies the NEQ predicate on the "solved_at" field.
func SolvedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldSolvedAt, v))
}

// SolvedAtIn applies the In predicate on the "solved_at" field.
func SolvedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldSolvedAt, vs...))
}

// SolvedAtNotIn applies the NotIn predicate on the "solved_at" field.
func SolvedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldSolvedAt, vs...))
}

// SolvedAtGT applies the GT predicate on the "solved_at" field.
func SolvedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldSolvedAt, v))
}

// SolvedAtGTE applies the GTE predicate on the "solved_at" field.
func SolvedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldSolvedAt, v))
}

// SolvedAtLT applies the LT predicate on the "solved_at" field.
func SolvedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldSolvedAt, v))
}

// SolvedAtLTE applies the LTE predicate on the "solved_at" field.
func SolvedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldSolvedAt, v))
}

// SolvedAtIsNil applies the IsNil predicate on the "solved_at" field.
func SolvedAtIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldSolvedAt))
}

// SolvedAtNotNil applies the NotNil predicate on the "solved_at" field.
func SolvedAtNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldSolvedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.NotPredicates(p))
}
