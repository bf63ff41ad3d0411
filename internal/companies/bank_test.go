package companies

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/prepmate/internal/llm"
)

func TestLoadBank_EmbeddedData(t *testing.T) {
	bank, err := LoadBank()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}

	available := bank.Available()
	if len(available) == 0 {
		t.Fatal("no curated companies loaded")
	}

	want := map[string]bool{"Google": false, "Amazon": false, "TCS": false}
	for _, name := range available {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("curated bank missing %s", name)
		}
	}
}

func TestCurated_FillsDerivedFields(t *testing.T) {
	bank, err := LoadBank()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}

	cq, ok := bank.Curated("google", "SDE-1")
	if !ok {
		t.Fatal("google not found (case-insensitive lookup)")
	}

	if cq.DataSource != SourceCurated {
		t.Errorf("data source = %s, want curated", cq.DataSource)
	}
	if cq.RoleNotes == "" {
		t.Error("role notes are empty")
	}

	for name, topic := range cq.Topics {
		if topic.RecommendedHours == 0 {
			t.Errorf("topic %s: recommended hours not filled", name)
		}
		if topic.QuestionCount != len(topic.Questions) {
			t.Errorf("topic %s: question count %d != %d", name, topic.QuestionCount, len(topic.Questions))
		}
	}
}

func TestRecommendedHours(t *testing.T) {
	tests := []struct {
		frequency string
		want      float64
	}{
		{"very_high", 15},
		{"high", 10},
		{"medium", 7},
		{"low", 5},
		{"unknown", 7},
	}
	for _, tt := range tests {
		if got := RecommendedHours(tt.frequency); got != tt.want {
			t.Errorf("RecommendedHours(%s) = %v, want %v", tt.frequency, got, tt.want)
		}
	}
}

func TestRoleNotes(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"SDE-2", "DSA (70%)"},
		{"Software Engineer", "DSA (70%)"},
		{"Data Analyst", "SQL (40%)"},
		{"QA Engineer", "Testing Concepts (40%)"},
		{"Data Engineer", "ETL (20%)"},
		{"Product Manager", "Balanced preparation"},
	}
	for _, tt := range tests {
		got := RoleNotes(tt.role)
		if !strings.Contains(got, tt.want) {
			t.Errorf("RoleNotes(%q) = %q, want substring %q", tt.role, got, tt.want)
		}
	}
}

func TestTopicSpecs_SortedByName(t *testing.T) {
	cq := &CompanyQuestions{
		Topics: map[string]TopicBank{
			"Trees":  {Frequency: "high", Questions: []string{"lca"}, RecommendedHours: 10},
			"Arrays": {Frequency: "very_high", Questions: []string{"two sum"}, RecommendedHours: 15},
		},
	}

	specs := cq.TopicSpecs()
	if len(specs) != 2 {
		t.Fatalf("specs = %d, want 2", len(specs))
	}
	if specs[0].Name != "Arrays" || specs[1].Name != "Trees" {
		t.Errorf("order = [%s, %s], want [Arrays, Trees]", specs[0].Name, specs[1].Name)
	}
	if specs[0].Frequency != "very_high" || len(specs[0].PracticeItems) != 1 {
		t.Errorf("spec = %+v", specs[0])
	}
}

func TestQuestions_GeneratesForUnknownCompany(t *testing.T) {
	bank, err := LoadBank()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}

	guide := `{
		"topics": {
			"Arrays": {"frequency": "high", "questions": ["Two Sum", "3Sum", "Rotate Array"]}
		},
		"system_design": ["Design a ledger"],
		"behavioral_focus": ["Ownership"]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(guide)})
	svc := NewService(bank, mock, nil)

	cq, err := svc.Questions(context.Background(), "Stripe", "SDE-1")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}

	if cq.DataSource != SourceGenerated {
		t.Errorf("data source = %s, want ai_generated", cq.DataSource)
	}
	if cq.Company != "Stripe" || cq.TotalQuestions != 3 {
		t.Errorf("cq = %+v", cq)
	}
	if cq.Topics["Arrays"].RecommendedHours != 10 {
		t.Errorf("recommended hours = %v, want 10", cq.Topics["Arrays"].RecommendedHours)
	}
}

func TestQuestions_FallsBackWhenGenerationFails(t *testing.T) {
	bank, err := LoadBank()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}

	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := NewService(bank, mock, nil)

	cq, err := svc.Questions(context.Background(), "Nowhere Corp", "SDE-1")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}

	if cq.DataSource != SourceFallback {
		t.Errorf("data source = %s, want fallback", cq.DataSource)
	}
	if len(cq.Topics) == 0 || len(cq.SystemDesign) == 0 {
		t.Errorf("fallback bank is incomplete: %+v", cq)
	}
}

func TestQuestions_PrefersCurated(t *testing.T) {
	bank, err := LoadBank()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}

	mock := llm.NewMockProvider()
	svc := NewService(bank, mock, nil)

	cq, err := svc.Questions(context.Background(), "AMAZON", "SDE-1")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if cq.DataSource != SourceCurated {
		t.Errorf("data source = %s, want curated", cq.DataSource)
	}
	if mock.CallCount() != 0 {
		t.Errorf("LLM was called %d times for a curated company", mock.CallCount())
	}
}
