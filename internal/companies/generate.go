package companies

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/abhisek/prepmate/internal/llm"
)

// companyGuideSchema defines the JSON schema for AI-generated company
// preparation guides.
var companyGuideSchema = &llm.Schema{
	Name:        "company-guide",
	Description: "Interview preparation guide for a specific company and role",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topics": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"frequency": map[string]any{
							"type": "string",
							"enum": []any{"very_high", "high", "medium", "low"},
						},
						"questions": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 3,
						},
					},
					"required": []any{"frequency", "questions"},
				},
				"description": "Top DSA topics frequently asked, 3-5 question names each",
			},
			"system_design": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"behavioral_focus": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"topics", "system_design", "behavioral_focus"},
		"additionalProperties": false,
	},
}

const generateSystemPrompt = `You are a placement preparation expert with deep knowledge of company interview patterns.

Rules:
- List only topics the company genuinely emphasizes, with realistic frequency tiers.
- Question names must be real, recognizable problem names, not invented ones.
- Include 3 system design questions matching the company's scale and products.
- Behavioral focus areas should reflect the company's published values.`

// Service answers company question lookups: curated bank first, then
// LLM generation, then the static fallback.
type Service struct {
	bank     *Bank
	provider llm.Provider
	logger   *slog.Logger
}

// NewService creates a Service. provider may be nil, in which case
// unknown companies go straight to the static fallback.
func NewService(bank *Bank, provider llm.Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{bank: bank, provider: provider, logger: logger}
}

// Questions returns the bank for a company and role.
func (s *Service) Questions(ctx context.Context, company, role string) (*CompanyQuestions, error) {
	if cq, ok := s.bank.Curated(company, role); ok {
		return cq, nil
	}

	if s.provider != nil {
		cq, err := s.generate(ctx, company, role)
		if err == nil {
			return cq, nil
		}
		s.logger.Warn("company guide generation failed, using fallback",
			"company", company, "error", err)
	}

	return fallbackQuestions(company, role), nil
}

// Available lists the companies with curated banks.
func (s *Service) Available() []string {
	return s.bank.Available()
}

func (s *Service) generate(ctx context.Context, company, role string) (*CompanyQuestions, error) {
	ctx = llm.WithPurpose(ctx, "company-gen")

	prompt := fmt.Sprintf(
		"Generate an interview preparation guide for %s for the role of %s.", company, role)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      companyGuideSchema,
		MaxTokens:   2048,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	var generated struct {
		Topics          map[string]TopicBank `json:"topics"`
		SystemDesign    []string             `json:"system_design"`
		BehavioralFocus []string             `json:"behavioral_focus"`
	}
	if err := json.Unmarshal(resp.Content, &generated); err != nil {
		return nil, fmt.Errorf("parse generated guide: %w", err)
	}
	if len(generated.Topics) == 0 {
		return nil, fmt.Errorf("generated guide has no topics")
	}

	total := 0
	topics := make(map[string]TopicBank, len(generated.Topics))
	for name, t := range generated.Topics {
		t.RecommendedHours = RecommendedHours(t.Frequency)
		t.QuestionCount = len(t.Questions)
		total += len(t.Questions)
		topics[name] = t
	}

	return &CompanyQuestions{
		Company:         company,
		DataSource:      SourceGenerated,
		TotalQuestions:  total,
		Topics:          topics,
		SystemDesign:    generated.SystemDesign,
		BehavioralFocus: generated.BehavioralFocus,
		RoleNotes:       RoleNotes(role),
	}, nil
}

// fallbackQuestions is the general preparation guide used when no
// curated bank exists and generation is unavailable.
func fallbackQuestions(company, role string) *CompanyQuestions {
	topics := map[string]TopicBank{
		"Arrays": {
			Frequency: "high",
			Questions: []string{"Two Sum", "Best Time to Buy and Sell Stock", "Contains Duplicate"},
		},
		"LinkedList": {
			Frequency: "medium",
			Questions: []string{"Reverse Linked List", "Merge Two Sorted Lists"},
		},
		"Trees": {
			Frequency: "high",
			Questions: []string{"Binary Tree Inorder Traversal", "Validate BST"},
		},
		"Dynamic Programming": {
			Frequency: "high",
			Questions: []string{"Climbing Stairs", "Coin Change"},
		},
	}

	total := 0
	for name, t := range topics {
		t.RecommendedHours = RecommendedHours(t.Frequency)
		t.QuestionCount = len(t.Questions)
		total += len(t.Questions)
		topics[name] = t
	}

	return &CompanyQuestions{
		Company:        company,
		DataSource:     SourceFallback,
		TotalQuestions: total,
		Topics:         topics,
		SystemDesign: []string{
			"Design URL Shortener",
			"Design Twitter Feed",
			"Design Cache System",
		},
		BehavioralFocus: []string{
			"Problem-solving approach",
			"Teamwork examples",
			"Leadership experience",
		},
		RoleNotes: RoleNotes(role),
	}
}
