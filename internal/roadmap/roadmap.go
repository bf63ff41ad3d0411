// Package roadmap builds day-by-day preparation plans. Topics are ranked
// by an impact score (exam frequency, difficulty, user weakness), their
// practice items are spread across the days until the interview, and
// recurring side tasks (behavioral, aptitude, system design, mocks) are
// layered on top.
//
// Everything here is a pure computation over explicit inputs. Callers
// own persistence and the notion of "today".
package roadmap

import "errors"

var (
	// ErrPastInterviewDate is returned when the target date is today or
	// earlier, leaving no days to plan.
	ErrPastInterviewDate = errors.New("interview date must be in the future")

	// ErrNoTopics is returned when the input has no topics or no
	// practice items at all. A plan of empty days would misrepresent
	// progress, so this fails fast instead.
	ErrNoTopics = errors.New("no topics with practice items to schedule")
)

// Frequency tiers for how often a topic shows up in the target exam or
// company's interviews.
const (
	FreqVeryHigh = "very_high"
	FreqHigh     = "high"
	FreqMedium   = "medium"
	FreqLow      = "low"
)

// Interview round types that influence side-task selection.
const (
	RoundAptitude     = "aptitude"
	RoundTechnical    = "technical"
	RoundDSACoding    = "dsa_coding"
	RoundSystemDesign = "system_design"
	RoundHR           = "hr"
)

// Side task types.
const (
	TaskBehavioral   = "behavioral"
	TaskAptitude     = "aptitude"
	TaskSystemDesign = "system_design"
	TaskMock         = "mock"
)

// TopicSpec is one topic to schedule: a name, its frequency tier, and
// an ordered list of practice items.
type TopicSpec struct {
	Name             string   `json:"name"`
	Frequency        string   `json:"frequency"`
	PracticeItems    []string `json:"practice_items"`
	RecommendedHours float64  `json:"recommended_hours"`
}

// RoundSpec describes one round of the target interview process.
type RoundSpec struct {
	RoundNumber     int    `json:"round_number"`
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
}

// RankedTopic is a TopicSpec with its computed impact score.
type RankedTopic struct {
	TopicSpec
	ImpactScore float64 `json:"impact_score"`
}

// SideTask is a non-practice-item daily task layered onto the schedule.
type SideTask struct {
	Type string `json:"type"`
	Task string `json:"task"`
}

// DayPlan is the schedule for a single calendar day.
type DayPlan struct {
	Day            int       `json:"day"`
	Date           string    `json:"date"`
	Topic          string    `json:"topic"`
	Frequency      string    `json:"frequency"`
	PracticeItems  []string  `json:"practice_items"`
	ItemCount      int       `json:"item_count"`
	SideTask       *SideTask `json:"side_task,omitempty"`
	EstimatedHours float64   `json:"estimated_hours"`
}

// Statistics summarizes a generated roadmap.
type Statistics struct {
	TotalDays      int            `json:"total_days"`
	TotalItems     int            `json:"total_items"`
	UniqueTopics   int            `json:"unique_topics"`
	TotalHours     float64        `json:"total_hours"`
	AvgItemsPerDay float64        `json:"avg_items_per_day"`
	SideTaskCounts map[string]int `json:"side_task_distribution"`
}

// Roadmap is the full output of a generation run.
type Roadmap struct {
	Days           []DayPlan  `json:"roadmap"`
	Statistics     Statistics `json:"statistics"`
	DailyItemCount int        `json:"daily_item_count"`
}
