package questions

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/prepmate/internal/llm"
)

func mcqBatchJSON(questions ...string) json.RawMessage {
	return json.RawMessage(`{"questions":[` + strings.Join(questions, ",") + `]}`)
}

const validMCQ = `{
	"question_text": "What is the time complexity of binary search?",
	"options": [
		{"label": "A", "text": "O(n)", "is_correct": false, "explanation": "Linear scan, not binary search"},
		{"label": "B", "text": "O(log n)", "is_correct": true, "explanation": "Halves the search space each step"},
		{"label": "C", "text": "O(n log n)", "is_correct": false, "explanation": "That is comparison sort"},
		{"label": "D", "text": "O(1)", "is_correct": false, "explanation": "Only a single lookup is constant"}
	],
	"difficulty": "easy",
	"marks": 1,
	"time_limit_seconds": 60
}`

func TestGenerateMCQs_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: mcqBatchJSON(validMCQ)},
	)
	g := NewGenerator(mock, DefaultConfig())

	qs, err := g.GenerateMCQs(context.Background(), 7, GenerateInput{
		TopicName:  "Searching Algorithms",
		Difficulty: DifficultyEasy,
		Count:      1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}

	q := qs[0]
	if q.TopicID != 7 || q.Type != TypeMCQ {
		t.Fatalf("question = topic %d type %s, want topic 7 mcq", q.TopicID, q.Type)
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}
	if !q.Options[1].IsCorrect || q.Options[1].Label != "B" {
		t.Fatalf("expected option B correct, got %+v", q.Options[1])
	}
}

func TestGenerateMCQs_PromptCarriesTopicAndDedup(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: mcqBatchJSON(validMCQ)},
	)
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.GenerateMCQs(context.Background(), 1, GenerateInput{
		TopicName:      "Graphs",
		Difficulty:     DifficultyHard,
		Count:          1,
		PriorQuestions: []string{"Define a strongly connected component."},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Topic: Graphs", "Difficulty: hard", "strongly connected component"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
	if mock.Calls[0].Schema != MCQBatchSchema {
		t.Error("request did not carry the MCQ batch schema")
	}
}

func TestGenerateMCQs_RejectsWrongOptionCount(t *testing.T) {
	bad := `{
		"question_text": "Pick one",
		"options": [
			{"label": "A", "text": "x", "is_correct": true, "explanation": ""},
			{"label": "B", "text": "y", "is_correct": false, "explanation": ""}
		],
		"difficulty": "easy",
		"marks": 1,
		"time_limit_seconds": 60
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: mcqBatchJSON(bad)})
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.GenerateMCQs(context.Background(), 1, GenerateInput{TopicName: "T", Difficulty: "easy", Count: 1})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T (%v)", err, err)
	}
	if !verr.Retryable {
		t.Error("option count failure should be retryable")
	}
}

func TestGenerateMCQs_RejectsMultipleCorrect(t *testing.T) {
	bad := `{
		"question_text": "Pick one",
		"options": [
			{"label": "A", "text": "a", "is_correct": true, "explanation": ""},
			{"label": "B", "text": "b", "is_correct": true, "explanation": ""},
			{"label": "C", "text": "c", "is_correct": false, "explanation": ""},
			{"label": "D", "text": "d", "is_correct": false, "explanation": ""}
		],
		"difficulty": "easy",
		"marks": 1,
		"time_limit_seconds": 60
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: mcqBatchJSON(bad)})
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.GenerateMCQs(context.Background(), 1, GenerateInput{TopicName: "T", Difficulty: "easy", Count: 1})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T (%v)", err, err)
	}
}

func TestGenerateMCQs_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.GenerateMCQs(context.Background(), 1, GenerateInput{TopicName: "T", Difficulty: "easy", Count: 1})
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestGenerateWritten_HappyPath(t *testing.T) {
	batch := `{"questions":[{
		"question_text": "Explain how a TCP three-way handshake establishes a connection.",
		"model_answer": "The client sends SYN, the server replies SYN-ACK, the client sends ACK.",
		"keywords": ["SYN", "SYN-ACK", "ACK", "sequence number"],
		"expected_length": "2-3 paragraphs",
		"difficulty": "medium",
		"marks": 5,
		"time_limit_seconds": 600
	}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(batch)})
	g := NewGenerator(mock, DefaultConfig())

	qs, err := g.GenerateWritten(context.Background(), 3, GenerateInput{
		TopicName:  "Computer Networks",
		Difficulty: DifficultyMedium,
		Count:      1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}

	q := qs[0]
	if q.Type != TypeWritten || q.Written == nil {
		t.Fatalf("question = %+v, want written with marking material", q)
	}
	if q.Written.ModelAnswer == "" || len(q.Written.Keywords) != 4 {
		t.Fatalf("marking material = %+v", q.Written)
	}
	if q.Marks != 5 {
		t.Errorf("marks = %d, want 5", q.Marks)
	}
}

func TestGenerateWritten_RejectsMissingModelAnswer(t *testing.T) {
	batch := `{"questions":[{
		"question_text": "Explain paging.",
		"model_answer": "",
		"keywords": [],
		"expected_length": "",
		"difficulty": "easy",
		"marks": 3,
		"time_limit_seconds": 300
	}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(batch)})
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.GenerateWritten(context.Background(), 1, GenerateInput{TopicName: "OS", Difficulty: "easy", Count: 1})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T (%v)", err, err)
	}
}
