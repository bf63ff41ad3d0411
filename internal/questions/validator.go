package questions

import "fmt"

// ValidationError describes why a generated question failed validation.
type ValidationError struct {
	Check     string // which check failed
	Message   string
	Retryable bool // whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question check %q: %s", e.Check, e.Message)
}

// validateMCQ checks structural requirements on one generated MCQ.
func validateMCQ(q MCQQuestion) *ValidationError {
	if q.QuestionText == "" {
		return &ValidationError{Check: "mcq", Message: "question_text is empty", Retryable: true}
	}
	if len(q.Options) != 4 {
		return &ValidationError{
			Check:     "mcq",
			Message:   fmt.Sprintf("expected 4 options, got %d", len(q.Options)),
			Retryable: true,
		}
	}
	correct := 0
	for _, o := range q.Options {
		if o.Text == "" {
			return &ValidationError{Check: "mcq", Message: "option text is empty", Retryable: true}
		}
		if o.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return &ValidationError{
			Check:     "mcq",
			Message:   fmt.Sprintf("expected exactly 1 correct option, got %d", correct),
			Retryable: true,
		}
	}
	if q.Marks < 1 {
		return &ValidationError{Check: "mcq", Message: "marks must be at least 1", Retryable: true}
	}
	return nil
}

// validateWritten checks structural requirements on one generated
// written question.
func validateWritten(q WrittenQuestion) *ValidationError {
	if q.QuestionText == "" {
		return &ValidationError{Check: "written", Message: "question_text is empty", Retryable: true}
	}
	if q.ModelAnswer == "" {
		return &ValidationError{Check: "written", Message: "model_answer is empty", Retryable: true}
	}
	if q.Marks < 1 {
		return &ValidationError{Check: "written", Message: "marks must be at least 1", Retryable: true}
	}
	return nil
}
