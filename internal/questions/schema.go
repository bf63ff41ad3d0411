package questions

import "github.com/abhisek/prepmate/internal/llm"

// MCQBatchSchema defines the JSON schema for MCQ generation responses.
var MCQBatchSchema = &llm.Schema{
	Name:        "mcq-batch",
	Description: "A batch of multiple-choice practice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question prompt, self-contained plain text",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"label":       map[string]any{"type": "string", "description": "A, B, C or D"},
									"text":        map[string]any{"type": "string"},
									"is_correct":  map[string]any{"type": "boolean"},
									"explanation": map[string]any{"type": "string", "description": "Why this option is right or wrong"},
								},
								"required":             []any{"label", "text", "is_correct", "explanation"},
								"additionalProperties": false,
							},
							"description": "Exactly 4 options with exactly one correct",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
						"marks": map[string]any{
							"type":    "integer",
							"minimum": 1,
						},
						"time_limit_seconds": map[string]any{
							"type":    "integer",
							"minimum": 30,
						},
					},
					"required":             []any{"question_text", "options", "difficulty", "marks", "time_limit_seconds"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// WrittenBatchSchema defines the JSON schema for written-question
// generation responses.
var WrittenBatchSchema = &llm.Schema{
	Name:        "written-batch",
	Description: "A batch of long-form questions with marking material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{"type": "string"},
						"model_answer": map[string]any{
							"type":        "string",
							"description": "A complete answer worth full marks",
						},
						"keywords": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Key terms a full-credit answer should mention",
						},
						"expected_length": map[string]any{
							"type":        "string",
							"description": "Guidance like '2-3 paragraphs' or '150 words'",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
						"marks": map[string]any{
							"type":    "integer",
							"minimum": 1,
						},
						"time_limit_seconds": map[string]any{
							"type":    "integer",
							"minimum": 60,
						},
					},
					"required":             []any{"question_text", "model_answer", "keywords", "expected_length", "difficulty", "marks", "time_limit_seconds"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// EvaluationSchema defines the JSON schema for written-answer grading
// responses.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Graded evaluation of a written answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Fraction of available credit earned",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Overall feedback on the answer",
			},
			"strengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"improvements": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"score", "feedback", "strengths", "improvements"},
		"additionalProperties": false,
	},
}
