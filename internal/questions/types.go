package questions

// Difficulty levels accepted for generation.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question types.
const (
	TypeMCQ     = "mcq"
	TypeWritten = "written"
)

// MCQOption is one answer choice in a generated MCQ.
type MCQOption struct {
	Label       string `json:"label"`
	Text        string `json:"text"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
}

// MCQQuestion is a generated multiple-choice question.
type MCQQuestion struct {
	QuestionText string      `json:"question_text"`
	Options      []MCQOption `json:"options"`
	Difficulty   string      `json:"difficulty"`
	Marks        int         `json:"marks"`
	TimeLimit    int         `json:"time_limit_seconds"`
}

// WrittenQuestion is a generated long-form question with marking material.
type WrittenQuestion struct {
	QuestionText   string   `json:"question_text"`
	ModelAnswer    string   `json:"model_answer"`
	Keywords       []string `json:"keywords"`
	ExpectedLength string   `json:"expected_length"`
	Marks          int      `json:"marks"`
	TimeLimit      int      `json:"time_limit_seconds"`
}

// GenerateInput holds all context needed to generate a question batch.
type GenerateInput struct {
	// TopicName is the subject area, e.g. "Binary Trees" or "OS Scheduling".
	TopicName string

	// SyllabusContext is optional extra material (extracted notes, exam
	// syllabus text) to ground the questions in.
	SyllabusContext string

	// Difficulty is one of easy, medium, hard.
	Difficulty string

	// Count is how many questions to generate in one batch.
	Count int

	// PriorQuestions contains the text of questions already generated for
	// this topic, for deduplication in the prompt.
	PriorQuestions []string
}

// Evaluation is the graded result of a written answer.
type Evaluation struct {
	// Score is the fraction of available credit earned, in [0, 1]. It
	// feeds the review scheduler directly as a performance score.
	Score float64 `json:"score"`

	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}
