// Package questions generates practice questions and grades written
// answers through the LLM provider layer. MCQs are checked mechanically
// against the stored key; written answers go back to the LLM for
// grading, and the resulting score feeds the review scheduler.
package questions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/prepmate/internal/llm"
	"github.com/abhisek/prepmate/internal/store"
)

// Config controls the behavior of the Generator.
type Config struct {
	// MaxTokens is the token budget for one LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions is the maximum number of prior questions to
	// include in the prompt for deduplication.
	MaxPriorQuestions int
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         4096,
		Temperature:       0.7,
		MaxPriorQuestions: 10,
	}
}

// Generator produces question batches via the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// GenerateMCQs produces a batch of multiple-choice questions for a
// topic, validated structurally, ready to persist under topicID.
func (g *Generator) GenerateMCQs(ctx context.Context, topicID int, input GenerateInput) ([]store.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGenerateMessage(input, TypeMCQ, g.config)},
		},
		Schema:      MCQBatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var batch struct {
		Questions []MCQQuestion `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	questions := make([]store.Question, 0, len(batch.Questions))
	for _, q := range batch.Questions {
		if verr := validateMCQ(q); verr != nil {
			return nil, verr
		}
		options := make([]store.MCQOption, len(q.Options))
		for i, o := range q.Options {
			options[i] = store.MCQOption{
				Label:       o.Label,
				Text:        o.Text,
				IsCorrect:   o.IsCorrect,
				Explanation: o.Explanation,
			}
		}
		questions = append(questions, store.Question{
			TopicID:      topicID,
			Type:         TypeMCQ,
			Difficulty:   q.Difficulty,
			QuestionText: q.QuestionText,
			Marks:        q.Marks,
			TimeLimit:    q.TimeLimit,
			Options:      options,
		})
	}
	return questions, nil
}

// GenerateWritten produces a batch of long-form questions with marking
// material, ready to persist under topicID.
func (g *Generator) GenerateWritten(ctx context.Context, topicID int, input GenerateInput) ([]store.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGenerateMessage(input, TypeWritten, g.config)},
		},
		Schema:      WrittenBatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var batch struct {
		Questions []struct {
			WrittenQuestion
			Difficulty string `json:"difficulty"`
		} `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	questions := make([]store.Question, 0, len(batch.Questions))
	for _, q := range batch.Questions {
		if verr := validateWritten(q.WrittenQuestion); verr != nil {
			return nil, verr
		}
		questions = append(questions, store.Question{
			TopicID:      topicID,
			Type:         TypeWritten,
			Difficulty:   q.Difficulty,
			QuestionText: q.QuestionText,
			Marks:        q.Marks,
			TimeLimit:    q.TimeLimit,
			Written: &store.WrittenSpec{
				ModelAnswer:    q.ModelAnswer,
				Keywords:       q.Keywords,
				ExpectedLength: q.ExpectedLength,
			},
		})
	}
	return questions, nil
}
