package questions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/prepmate/internal/llm"
	"github.com/abhisek/prepmate/internal/store"
)

// ErrNotWritten is returned when a written-answer evaluation is
// requested for a question that has no marking material.
var ErrNotWritten = errors.New("question is not a written question")

// Evaluator grades answers against a stored question.
type Evaluator struct {
	provider llm.Provider
	config   Config
}

// NewEvaluator creates an Evaluator with the given provider and config.
func NewEvaluator(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, config: cfg}
}

// CheckMCQ grades an MCQ answer mechanically against the stored key.
// answer is the chosen option label, matched case-insensitively.
func CheckMCQ(q store.Question, answer string) (correct bool, explanation string, err error) {
	if q.Type != TypeMCQ || len(q.Options) == 0 {
		return false, "", fmt.Errorf("question %d has no options to check against", q.ID)
	}
	for _, o := range q.Options {
		if strings.EqualFold(o.Label, strings.TrimSpace(answer)) {
			return o.IsCorrect, o.Explanation, nil
		}
	}
	return false, "", fmt.Errorf("no option labeled %q on question %d", answer, q.ID)
}

// EvaluateWritten grades a free-text answer via the LLM, returning a
// score in [0, 1] with feedback. The score is clamped defensively since
// it feeds the review scheduler, whose domain is [0, 1].
func (e *Evaluator) EvaluateWritten(ctx context.Context, q store.Question, answer string) (*Evaluation, error) {
	if q.Type != TypeWritten || q.Written == nil {
		return nil, ErrNotWritten
	}

	ctx = llm.WithPurpose(ctx, "evaluation")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: evaluateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvaluateMessage(
				q.QuestionText, q.Written.ModelAnswer, q.Written.Keywords, answer,
			)},
		},
		Schema:    EvaluationSchema,
		MaxTokens: e.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM evaluation failed: %w", err)
	}

	var eval Evaluation
	if err := json.Unmarshal(resp.Content, &eval); err != nil {
		return nil, fmt.Errorf("failed to parse evaluation: %w", err)
	}

	if eval.Score < 0 {
		eval.Score = 0
	}
	if eval.Score > 1 {
		eval.Score = 1
	}

	return &eval, nil
}
