package questions

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/prepmate/internal/llm"
	"github.com/abhisek/prepmate/internal/store"
)

func writtenQuestion() store.Question {
	return store.Question{
		ID:           11,
		Type:         TypeWritten,
		QuestionText: "Explain the difference between a process and a thread.",
		Written: &store.WrittenSpec{
			ModelAnswer: "A process has its own address space; threads share one within a process.",
			Keywords:    []string{"address space", "scheduling", "shared memory"},
		},
	}
}

func TestCheckMCQ(t *testing.T) {
	q := store.Question{
		ID:   5,
		Type: TypeMCQ,
		Options: []store.MCQOption{
			{Label: "A", Text: "O(n)", IsCorrect: false, Explanation: "linear"},
			{Label: "B", Text: "O(log n)", IsCorrect: true, Explanation: "halving"},
		},
	}

	correct, explanation, err := CheckMCQ(q, "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !correct || explanation != "halving" {
		t.Errorf("got correct=%v explanation=%q", correct, explanation)
	}

	correct, _, err = CheckMCQ(q, "A")
	if err != nil || correct {
		t.Errorf("option A: correct=%v err=%v, want incorrect", correct, err)
	}

	if _, _, err = CheckMCQ(q, "Z"); err == nil {
		t.Error("expected error for unknown label")
	}

	if _, _, err = CheckMCQ(writtenQuestion(), "A"); err == nil {
		t.Error("expected error for written question")
	}
}

func TestEvaluateWritten_HappyPath(t *testing.T) {
	evalJSON := `{
		"score": 0.8,
		"feedback": "Good coverage of address spaces, missing scheduling detail.",
		"strengths": ["correct core distinction"],
		"improvements": ["mention scheduling"]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(evalJSON)})
	e := NewEvaluator(mock, DefaultConfig())

	eval, err := e.EvaluateWritten(context.Background(), writtenQuestion(), "Processes have separate memory, threads share it.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.Score != 0.8 {
		t.Errorf("score = %v, want 0.8", eval.Score)
	}
	if len(eval.Strengths) != 1 || len(eval.Improvements) != 1 {
		t.Errorf("eval = %+v", eval)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Model answer:", "Student answer:", "address space"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Schema != EvaluationSchema {
		t.Error("request did not carry the evaluation schema")
	}
}

func TestEvaluateWritten_ClampsScore(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{`{"score": 1.4, "feedback": "f", "strengths": [], "improvements": []}`, 1},
		{`{"score": -0.2, "feedback": "f", "strengths": [], "improvements": []}`, 0},
	}
	for _, tt := range tests {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.raw)})
		e := NewEvaluator(mock, DefaultConfig())

		eval, err := e.EvaluateWritten(context.Background(), writtenQuestion(), "answer")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if eval.Score != tt.want {
			t.Errorf("score = %v, want %v", eval.Score, tt.want)
		}
	}
}

func TestEvaluateWritten_RejectsNonWritten(t *testing.T) {
	e := NewEvaluator(llm.NewMockProvider(), DefaultConfig())

	q := store.Question{ID: 1, Type: TypeMCQ}
	if _, err := e.EvaluateWritten(context.Background(), q, "answer"); !errors.Is(err, ErrNotWritten) {
		t.Errorf("err = %v, want ErrNotWritten", err)
	}
}

func TestEvaluateWritten_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	e := NewEvaluator(mock, DefaultConfig())

	_, err := e.EvaluateWritten(context.Background(), writtenQuestion(), "answer")
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T (%v)", err, err)
	}
}
