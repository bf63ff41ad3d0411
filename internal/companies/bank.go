// Package companies serves company-specific interview question banks.
// Curated banks are embedded in the binary; companies without one are
// generated through the LLM provider, with a static general-prep bank
// as the last resort.
package companies

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/abhisek/prepmate/internal/roadmap"
)

//go:embed data/*.json
var bankFS embed.FS

// Data sources for a returned bank.
const (
	SourceCurated   = "curated"
	SourceGenerated = "ai_generated"
	SourceFallback  = "fallback"
)

// TopicBank is one topic's question list within a company bank.
type TopicBank struct {
	Frequency        string   `json:"frequency"`
	Questions        []string `json:"questions"`
	RecommendedHours float64  `json:"recommended_hours"`
	QuestionCount    int      `json:"question_count"`
}

// CompanyQuestions is a full question bank for one company and role.
type CompanyQuestions struct {
	Company         string               `json:"company"`
	DataSource      string               `json:"data_source"`
	TotalQuestions  int                  `json:"total_questions"`
	Topics          map[string]TopicBank `json:"topics"`
	SystemDesign    []string             `json:"system_design"`
	BehavioralFocus []string             `json:"behavioral_focus"`
	RoleNotes       string               `json:"role_specific_notes"`
}

// TopicSpecs converts the bank's topics into roadmap generator input,
// sorted by name so equal-priority topics rank deterministically.
func (c *CompanyQuestions) TopicSpecs() []roadmap.TopicSpec {
	names := make([]string, 0, len(c.Topics))
	for name := range c.Topics {
		names = append(names, name)
	}
	sort.Strings(names)

	specs := make([]roadmap.TopicSpec, len(names))
	for i, name := range names {
		t := c.Topics[name]
		specs[i] = roadmap.TopicSpec{
			Name:             name,
			Frequency:        t.Frequency,
			PracticeItems:    t.Questions,
			RecommendedHours: t.RecommendedHours,
		}
	}
	return specs
}

// Bank holds the curated company banks loaded from the embedded data
// directory, keyed by lowercased company name.
type Bank struct {
	curated map[string]CompanyQuestions
}

// LoadBank parses every embedded company file.
func LoadBank() (*Bank, error) {
	return loadBankFS(bankFS)
}

func loadBankFS(fsys fs.FS) (*Bank, error) {
	entries, err := fs.Glob(fsys, "data/*.json")
	if err != nil {
		return nil, fmt.Errorf("glob company data: %w", err)
	}

	curated := make(map[string]CompanyQuestions, len(entries))
	for _, path := range entries {
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var cq CompanyQuestions
		if err := json.Unmarshal(raw, &cq); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if cq.Company == "" {
			return nil, fmt.Errorf("%s: missing company name", path)
		}
		curated[strings.ToLower(cq.Company)] = cq
	}

	return &Bank{curated: curated}, nil
}

// Curated returns the curated bank for a company, case-insensitively.
func (b *Bank) Curated(company, role string) (*CompanyQuestions, bool) {
	cq, ok := b.curated[strings.ToLower(company)]
	if !ok {
		return nil, false
	}

	// Fill in derived fields the curated files omit.
	topics := make(map[string]TopicBank, len(cq.Topics))
	for name, t := range cq.Topics {
		if t.RecommendedHours == 0 {
			t.RecommendedHours = RecommendedHours(t.Frequency)
		}
		t.QuestionCount = len(t.Questions)
		topics[name] = t
	}
	cq.Topics = topics
	cq.DataSource = SourceCurated
	cq.RoleNotes = RoleNotes(role)

	return &cq, true
}

// Available lists the companies with curated banks, sorted by name.
func (b *Bank) Available() []string {
	names := make([]string, 0, len(b.curated))
	for _, cq := range b.curated {
		names = append(names, cq.Company)
	}
	sort.Strings(names)
	return names
}

// RecommendedHours maps a frequency tier to advisory study hours.
func RecommendedHours(frequency string) float64 {
	switch frequency {
	case roadmap.FreqVeryHigh:
		return 15
	case roadmap.FreqHigh:
		return 10
	case roadmap.FreqMedium:
		return 7
	case roadmap.FreqLow:
		return 5
	default:
		return 7
	}
}

// RoleNotes returns preparation guidance for a role.
func RoleNotes(role string) string {
	r := strings.ToLower(role)
	switch {
	case strings.Contains(r, "sde") || strings.Contains(r, "software"):
		return "Focus heavily on DSA (70%), System Design (20%), and Behavioral (10%)"
	case strings.Contains(r, "data analyst"):
		return "Focus on SQL (40%), Statistics (30%), Data Structures (20%), Behavioral (10%)"
	case strings.Contains(r, "qa") || strings.Contains(r, "test"):
		return "Focus on Testing Concepts (40%), Automation (30%), Basic DSA (20%), Behavioral (10%)"
	case strings.Contains(r, "data engineer"):
		return "Focus on SQL (30%), System Design (30%), ETL (20%), DSA (20%)"
	default:
		return "Balanced preparation across DSA, System Design, and Behavioral"
	}
}
