// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DailyGoal is the predicate function for dailygoal builders.
type DailyGoal func(*sql.Selector)

// LLMRequest is the predicate function for llmrequest builders.
type LLMRequest func(*sql.Selector)

// PracticeSession is the predicate function for practicesession builders.
type PracticeSession func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// QuestionAttempt is the predicate function for questionattempt builders.
type QuestionAttempt func(*sql.Selector)

// ReviewSchedule is the predicate function for reviewschedule builders.
type ReviewSchedule func(*sql.Selector)

// StudyPlan is the predicate function for studyplan builders.
type StudyPlan func(*sql.Selector)

// StudySession is the predicate function for studysession builders.
type StudySession func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)

// TopicProgress is the predicate function for topicprogress builders.
type TopicProgress func(*sql.Selector)
