// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/prepmate/ent/dailygoal"
	"github.com/abhisek/prepmate/ent/llmrequest"
	"github.com/abhisek/prepmate/ent/practicesession"
	"github.com/abhisek/prepmate/ent/question"
	"github.com/abhisek/prepmate/ent/questionattempt"
	"github.com/abhisek/prepmate/ent/reviewschedule"
	"github.com/abhisek/prepmate/ent/schema"
	"github.com/abhisek/prepmate/ent/studyplan"
	"github.com/abhisek/prepmate/ent/studysession"
	"github.com/abhisek/prepmate/ent/topic"
	"github.com/abhisek/prepmate/ent/topicprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	dailygoalFields := schema.DailyGoal{}.Fields()
	_ = dailygoalFields
	// dailygoalDescTargetProblems is the schema descriptor for target_problems field.
	dailygoalDescTargetProblems := dailygoalFields[2].Descriptor()
	// dailygoal.DefaultTargetProblems holds the default value on creation for the target_problems field.
	dailygoal.DefaultTargetProblems = dailygoalDescTargetProblems.Default.(int)
	// dailygoalDescCompletedProblems is the schema descriptor for completed_problems field.
	dailygoalDescCompletedProblems := dailygoalFields[3].Descriptor()
	// dailygoal.DefaultCompletedProblems holds the default value on creation for the completed_problems field.
	dailygoal.DefaultCompletedProblems = dailygoalDescCompletedProblems.Default.(int)
	// dailygoalDescCompleted is the schema descriptor for completed field.
	dailygoalDescCompleted := dailygoalFields[4].Descriptor()
	// dailygoal.DefaultCompleted holds the default value on creation for the completed field.
	dailygoal.DefaultCompleted = dailygoalDescCompleted.Default.(bool)
	llmrequestFields := schema.LLMRequest{}.Fields()
	_ = llmrequestFields
	// llmrequestDescInputTokens is the schema descriptor for input_tokens field.
	llmrequestDescInputTokens := llmrequestFields[3].Descriptor()
	// llmrequest.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequest.DefaultInputTokens = llmrequestDescInputTokens.Default.(int)
	// llmrequestDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequestDescOutputTokens := llmrequestFields[4].Descriptor()
	// llmrequest.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequest.DefaultOutputTokens = llmrequestDescOutputTokens.Default.(int)
	// llmrequestDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequestDescLatencyMs := llmrequestFields[5].Descriptor()
	// llmrequest.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequest.DefaultLatencyMs = llmrequestDescLatencyMs.Default.(int64)
	// llmrequestDescErrorMessage is the schema descriptor for error_message field.
	llmrequestDescErrorMessage := llmrequestFields[7].Descriptor()
	// llmrequest.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequest.DefaultErrorMessage = llmrequestDescErrorMessage.Default.(string)
	// llmrequestDescCreatedAt is the schema descriptor for created_at field.
	llmrequestDescCreatedAt := llmrequestFields[8].Descriptor()
	// llmrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequest.DefaultCreatedAt = llmrequestDescCreatedAt.Default.(func() time.Time)
	practicesessionFields := schema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescTopic is the schema descriptor for topic field.
	practicesessionDescTopic := practicesessionFields[2].Descriptor()
	// practicesession.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	practicesession.TopicValidator = practicesessionDescTopic.Validators[0].(func(string) error)
	// practicesessionDescProblemName is the schema descriptor for problem_name field.
	practicesessionDescProblemName := practicesessionFields[3].Descriptor()
	// practicesession.ProblemNameValidator is a validator for the "problem_name" field. It is called by the builders before save.
	practicesession.ProblemNameValidator = practicesessionDescProblemName.Validators[0].(func(string) error)
	// practicesessionDescDifficulty is the schema descriptor for difficulty field.
	practicesessionDescDifficulty := practicesessionFields[4].Descriptor()
	// practicesession.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	practicesession.DifficultyValidator = practicesessionDescDifficulty.Validators[0].(func(string) error)
	// practicesessionDescSolved is the schema descriptor for solved field.
	practicesessionDescSolved := practicesessionFields[5].Descriptor()
	// practicesession.DefaultSolved holds the default value on creation for the solved field.
	practicesession.DefaultSolved = practicesessionDescSolved.Default.(bool)
	// practicesessionDescTimeSpentMinutes is the schema descriptor for time_spent_minutes field.
	practicesessionDescTimeSpentMinutes := practicesessionFields[6].Descriptor()
	// practicesession.DefaultTimeSpentMinutes holds the default value on creation for the time_spent_minutes field.
	practicesession.DefaultTimeSpentMinutes = practicesessionDescTimeSpentMinutes.Default.(int)
	// practicesessionDescAttemptedAt is the schema descriptor for attempted_at field.
	practicesessionDescAttemptedAt := practicesessionFields[9].Descriptor()
	// practicesession.DefaultAttemptedAt holds the default value on creation for the attempted_at field.
	practicesession.DefaultAttemptedAt = practicesessionDescAttemptedAt.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionType is the schema descriptor for question_type field.
	questionDescQuestionType := questionFields[1].Descriptor()
	// question.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	question.QuestionTypeValidator = questionDescQuestionType.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[2].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = questionDescDifficulty.Validators[0].(func(string) error)
	// questionDescQuestionText is the schema descriptor for question_text field.
	questionDescQuestionText := questionFields[3].Descriptor()
	// question.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	question.QuestionTextValidator = questionDescQuestionText.Validators[0].(func(string) error)
	// questionDescMarks is the schema descriptor for marks field.
	questionDescMarks := questionFields[4].Descriptor()
	// question.DefaultMarks holds the default value on creation for the marks field.
	question.DefaultMarks = questionDescMarks.Default.(int)
	// questionDescTimeLimit is the schema descriptor for time_limit field.
	questionDescTimeLimit := questionFields[5].Descriptor()
	// question.DefaultTimeLimit holds the default value on creation for the time_limit field.
	question.DefaultTimeLimit = questionDescTimeLimit.Default.(int)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[7].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	questionattemptFields := schema.QuestionAttempt{}.Fields()
	_ = questionattemptFields
	// questionattemptDescTimeTaken is the schema descriptor for time_taken field.
	questionattemptDescTimeTaken := questionattemptFields[6].Descriptor()
	// questionattempt.DefaultTimeTaken holds the default value on creation for the time_taken field.
	questionattempt.DefaultTimeTaken = questionattemptDescTimeTaken.Default.(int)
	// questionattemptDescConfidenceLevel is the schema descriptor for confidence_level field.
	questionattemptDescConfidenceLevel := questionattemptFields[7].Descriptor()
	// questionattempt.DefaultConfidenceLevel holds the default value on creation for the confidence_level field.
	questionattempt.DefaultConfidenceLevel = questionattemptDescConfidenceLevel.Default.(int)
	// questionattemptDescAttemptedAt is the schema descriptor for attempted_at field.
	questionattemptDescAttemptedAt := questionattemptFields[8].Descriptor()
	// questionattempt.DefaultAttemptedAt holds the default value on creation for the attempted_at field.
	questionattempt.DefaultAttemptedAt = questionattemptDescAttemptedAt.Default.(func() time.Time)
	reviewscheduleFields := schema.ReviewSchedule{}.Fields()
	_ = reviewscheduleFields
	// reviewscheduleDescIntervalDays is the schema descriptor for interval_days field.
	reviewscheduleDescIntervalDays := reviewscheduleFields[2].Descriptor()
	// reviewschedule.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewschedule.DefaultIntervalDays = reviewscheduleDescIntervalDays.Default.(int)
	// reviewschedule.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	reviewschedule.IntervalDaysValidator = reviewscheduleDescIntervalDays.Validators[0].(func(int) error)
	// reviewscheduleDescEaseFactor is the schema descriptor for ease_factor field.
	reviewscheduleDescEaseFactor := reviewscheduleFields[3].Descriptor()
	// reviewschedule.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	reviewschedule.DefaultEaseFactor = reviewscheduleDescEaseFactor.Default.(float64)
	// reviewscheduleDescReviewCount is the schema descriptor for review_count field.
	reviewscheduleDescReviewCount := reviewscheduleFields[4].Descriptor()
	// reviewschedule.DefaultReviewCount holds the default value on creation for the review_count field.
	reviewschedule.DefaultReviewCount = reviewscheduleDescReviewCount.Default.(int)
	studyplanFields := schema.StudyPlan{}.Fields()
	_ = studyplanFields
	// studyplanDescSubject is the schema descriptor for subject field.
	studyplanDescSubject := studyplanFields[1].Descriptor()
	// studyplan.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	studyplan.SubjectValidator = studyplanDescSubject.Validators[0].(func(string) error)
	// studyplanDescExamType is the schema descriptor for exam_type field.
	studyplanDescExamType := studyplanFields[2].Descriptor()
	// studyplan.DefaultExamType holds the default value on creation for the exam_type field.
	studyplan.DefaultExamType = studyplanDescExamType.Default.(string)
	// studyplanDescStatus is the schema descriptor for status field.
	studyplanDescStatus := studyplanFields[6].Descriptor()
	// studyplan.DefaultStatus holds the default value on creation for the status field.
	studyplan.DefaultStatus = studyplanDescStatus.Default.(string)
	// studyplanDescCreatedAt is the schema descriptor for created_at field.
	studyplanDescCreatedAt := studyplanFields[7].Descriptor()
	// studyplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	studyplan.DefaultCreatedAt = studyplanDescCreatedAt.Default.(func() time.Time)
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescCompleted is the schema descriptor for completed field.
	studysessionDescCompleted := studysessionFields[3].Descriptor()
	// studysession.DefaultCompleted holds the default value on creation for the completed field.
	studysession.DefaultCompleted = studysessionDescCompleted.Default.(bool)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[1].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	// topicDescWeight is the schema descriptor for weight field.
	topicDescWeight := topicFields[2].Descriptor()
	// topic.DefaultWeight holds the default value on creation for the weight field.
	topic.DefaultWeight = topicDescWeight.Default.(float64)
	// topicDescAllocatedHours is the schema descriptor for allocated_hours field.
	topicDescAllocatedHours := topicFields[3].Descriptor()
	// topic.DefaultAllocatedHours holds the default value on creation for the allocated_hours field.
	topic.DefaultAllocatedHours = topicDescAllocatedHours.Default.(float64)
	// topicDescOrderIndex is the schema descriptor for order_index field.
	topicDescOrderIndex := topicFields[4].Descriptor()
	// topic.DefaultOrderIndex holds the default value on creation for the order_index field.
	topic.DefaultOrderIndex = topicDescOrderIndex.Default.(int)
	// topicDescMasteryLevel is the schema descriptor for mastery_level field.
	topicDescMasteryLevel := topicFields[5].Descriptor()
	// topic.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	topic.DefaultMasteryLevel = topicDescMasteryLevel.Default.(float64)
	topicprogressFields := schema.TopicProgress{}.Fields()
	_ = topicprogressFields
	// topicprogressDescTopic is the schema descriptor for topic field.
	topicprogressDescTopic := topicprogressFields[1].Descriptor()
	// topicprogress.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	topicprogress.TopicValidator = topicprogressDescTopic.Validators[0].(func(string) error)
	// topicprogressDescProblemsAttempted is the schema descriptor for problems_attempted field.
	topicprogressDescProblemsAttempted := topicprogressFields[2].Descriptor()
	// topicprogress.DefaultProblemsAttempted holds the default value on creation for the problems_attempted field.
	topicprogress.DefaultProblemsAttempted = topicprogressDescProblemsAttempted.Default.(int)
	// topicprogressDescProblemsSolved is the schema descriptor for problems_solved field.
	topicprogressDescProblemsSolved := topicprogressFields[3].Descriptor()
	// topicprogress.DefaultProblemsSolved holds the default value on creation for the problems_solved field.
	topicprogress.DefaultProblemsSolved = topicprogressDescProblemsSolved.Default.(int)
	// topicprogressDescEasySolved is the schema descriptor for easy_solved field.
	topicprogressDescEasySolved := topicprogressFields[4].Descriptor()
	// topicprogress.DefaultEasySolved holds the default value on creation for the easy_solved field.
	topicprogress.DefaultEasySolved = topicprogressDescEasySolved.Default.(int)
	// topicprogressDescMediumSolved is the schema descriptor for medium_solved field.
	topicprogressDescMediumSolved := topicprogressFields[5].Descriptor()
	// topicprogress.DefaultMediumSolved holds the default value on creation for the medium_solved field.
	topicprogress.DefaultMediumSolved = topicprogressDescMediumSolved.Default.(int)
	// topicprogressDescHardSolved is the schema descriptor for hard_solved field.
	topicprogressDescHardSolved := topicprogressFields[6].Descriptor()
	// topicprogress.DefaultHardSolved holds the default value on creation for the hard_solved field.
	topicprogress.DefaultHardSolved = topicprogressDescHardSolved.Default.(int)
	// topicprogressDescTimeSpentMinutes is the schema descriptor for time_spent_minutes field.
	topicprogressDescTimeSpentMinutes := topicprogressFields[7].Descriptor()
	// topicprogress.DefaultTimeSpentMinutes holds the default value on creation for the time_spent_minutes field.
	topicprogress.DefaultTimeSpentMinutes = topicprogressDescTimeSpentMinutes.Default.(int)
	// topicprogressDescWeaknessScore is the schema descriptor for weakness_score field.
	topicprogressDescWeaknessScore := topicprogressFields[8].Descriptor()
	// topicprogress.DefaultWeaknessScore holds the default value on creation for the weakness_score field.
	topicprogress.DefaultWeaknessScore = topicprogressDescWeaknessScore.Default.(float64)
}
