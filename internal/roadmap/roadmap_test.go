package roadmap

import (
	"errors"
	"testing"
	"time"
)

var testToday = time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

func topic(name, freq string, items ...string) TopicSpec {
	return TopicSpec{Name: name, Frequency: freq, PracticeItems: items}
}

func TestPrioritize_OrdersByImpactScore(t *testing.T) {
	topics := []TopicSpec{
		topic("Strings", FreqLow, "a"),
		topic("Arrays", FreqVeryHigh, "b"),
		topic("Graphs", FreqHigh, "c"),
		topic("Bit Tricks", "exotic", "d"), // unknown tier, medium weight
	}

	ranked := Prioritize(topics, nil, nil)

	want := []struct {
		name  string
		score float64
	}{
		{"Arrays", 20},
		{"Graphs", 14},
		{"Bit Tricks", 10},
		{"Strings", 6},
	}
	for i, w := range want {
		if ranked[i].Name != w.name || ranked[i].ImpactScore != w.score {
			t.Errorf("ranked[%d] = %s (%v), want %s (%v)",
				i, ranked[i].Name, ranked[i].ImpactScore, w.name, w.score)
		}
	}
}

func TestPrioritize_StableOnTies(t *testing.T) {
	topics := []TopicSpec{
		topic("First", FreqHigh, "a"),
		topic("Second", FreqHigh, "b"),
		topic("Third", FreqHigh, "c"),
	}

	ranked := Prioritize(topics, nil, nil)

	for i, want := range []string{"First", "Second", "Third"} {
		if ranked[i].Name != want {
			t.Errorf("ranked[%d] = %s, want %s", i, ranked[i].Name, want)
		}
	}
}

func TestPrioritize_CustomWeights(t *testing.T) {
	topics := []TopicSpec{
		topic("Weak", FreqLow, "a"),
		topic("Strong", FreqVeryHigh, "b"),
	}

	// A weakness function that heavily boosts the low-frequency topic.
	weakness := func(ts TopicSpec) float64 {
		if ts.Name == "Weak" {
			return 10
		}
		return 1
	}

	ranked := Prioritize(topics, nil, weakness)
	if ranked[0].Name != "Weak" {
		t.Errorf("first = %s, want Weak (score %v)", ranked[0].Name, ranked[0].ImpactScore)
	}
}

func TestDistribute_WalksTopicsInOrder(t *testing.T) {
	ranked := Prioritize([]TopicSpec{
		topic("Arrays", FreqVeryHigh, "two sum", "three sum", "max subarray"),
		topic("Trees", FreqHigh, "inorder", "lca"),
	}, nil, nil)

	days, err := Distribute(ranked, 3, 2, testToday)
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}

	want := []struct {
		topic string
		items []string
	}{
		{"Arrays", []string{"two sum", "three sum"}},
		{"Arrays", []string{"max subarray"}},
		{"Trees", []string{"inorder", "lca"}},
	}
	for i, w := range want {
		d := days[i]
		if d.Topic != w.topic || len(d.PracticeItems) != len(w.items) {
			t.Fatalf("day %d = %s %v, want %s %v", i+1, d.Topic, d.PracticeItems, w.topic, w.items)
		}
		for j := range w.items {
			if d.PracticeItems[j] != w.items[j] {
				t.Errorf("day %d item %d = %q, want %q", i+1, j, d.PracticeItems[j], w.items[j])
			}
		}
	}
}

func TestDistribute_WrapsIntoRevision(t *testing.T) {
	ranked := Prioritize([]TopicSpec{
		topic("Arrays", FreqHigh, "a", "b"),
	}, nil, nil)

	days, err := Distribute(ranked, 5, 2, testToday)
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}

	if len(days) != 5 {
		t.Fatalf("days = %d, want 5", len(days))
	}
	for _, d := range days {
		if d.ItemCount == 0 {
			t.Errorf("day %d is empty", d.Day)
		}
		if d.Topic != "Arrays" {
			t.Errorf("day %d topic = %s, want Arrays", d.Day, d.Topic)
		}
	}
}

func TestDistribute_SkipsEmptyTopics(t *testing.T) {
	ranked := Prioritize([]TopicSpec{
		topic("Planned Only", FreqVeryHigh), // no items yet
		topic("Arrays", FreqHigh, "a", "b"),
	}, nil, nil)

	days, err := Distribute(ranked, 2, 1, testToday)
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}
	for _, d := range days {
		if d.Topic != "Arrays" || d.ItemCount != 1 {
			t.Errorf("day %d = %s with %d items, want Arrays with 1", d.Day, d.Topic, d.ItemCount)
		}
	}
}

func TestDistribute_NoItemsAnywhere(t *testing.T) {
	ranked := Prioritize([]TopicSpec{topic("Empty", FreqHigh)}, nil, nil)

	if _, err := Distribute(ranked, 3, 2, testToday); !errors.Is(err, ErrNoTopics) {
		t.Errorf("err = %v, want ErrNoTopics", err)
	}
}

func TestDistribute_EstimatesHalfHourPerItem(t *testing.T) {
	ranked := Prioritize([]TopicSpec{
		topic("Arrays", FreqHigh, "a", "b", "c"),
	}, nil, nil)

	days, err := Distribute(ranked, 1, 3, testToday)
	if err != nil {
		t.Fatalf("distribute: %v", err)
	}
	if days[0].EstimatedHours != 1.5 {
		t.Errorf("estimated hours = %v, want 1.5", days[0].EstimatedHours)
	}
	if days[0].Date != "2026-08-27" {
		t.Errorf("date = %s, want 2026-08-27", days[0].Date)
	}
}

func makeDays(n int) []DayPlan {
	days := make([]DayPlan, n)
	for i := range days {
		days[i] = DayPlan{Day: i + 1, Topic: "Arrays", ItemCount: 2}
	}
	return days
}

func TestAttachSideTasks_PrecedenceOrder(t *testing.T) {
	rounds := []RoundSpec{
		{RoundNumber: 1, Type: RoundAptitude},
		{RoundNumber: 2, Type: RoundSystemDesign},
		{RoundNumber: 3, Type: RoundHR},
	}
	sd := []string{"URL shortener", "Rate limiter"}
	beh := []string{"Conflict with teammate"}

	days := AttachSideTasks(makeDays(12), rounds, sd, beh)

	checks := []struct {
		day      int
		taskType string
		task     string
	}{
		{1, TaskBehavioral, "Write STAR format examples for past experiences"},
		{2, TaskAptitude, "Practice aptitude: Ratios & Percentages"},
		{3, TaskAptitude, "Practice aptitude: Time & Work problems"},
		{4, TaskBehavioral, "Prepare examples for: Conflict with teammate"},
		{6, TaskSystemDesign, "Study: URL shortener"},
		{9, TaskSystemDesign, "Study: Rate limiter"},
		{10, TaskMock, "Mock interview - Round 3"},
		{11, TaskMock, "Mock interview - Round 2"},
		{12, TaskMock, "Mock interview - Round 1"},
	}
	for _, c := range checks {
		st := days[c.day-1].SideTask
		if st == nil {
			t.Errorf("day %d: no side task, want %s", c.day, c.task)
			continue
		}
		if st.Type != c.taskType || st.Task != c.task {
			t.Errorf("day %d = %s %q, want %s %q", c.day, st.Type, st.Task, c.taskType, c.task)
		}
	}

	// The single behavioral topic is consumed on day 4, so day 8
	// matches no rule. Days 5 and 7 never match one.
	for _, day := range []int{5, 7, 8} {
		if days[day-1].SideTask != nil {
			t.Errorf("day %d = %+v, want none", day, days[day-1].SideTask)
		}
	}
}

func TestAttachSideTasks_NoMatchingRounds(t *testing.T) {
	days := AttachSideTasks(makeDays(5), nil, nil, nil)

	// Only the final-3-days mock rule can fire without rounds or
	// topic lists.
	for _, d := range days {
		if d.Day <= 2 && d.SideTask != nil {
			t.Errorf("day %d = %+v, want none", d.Day, d.SideTask)
		}
		if d.Day > 2 && (d.SideTask == nil || d.SideTask.Type != TaskMock) {
			t.Errorf("day %d = %+v, want mock", d.Day, d.SideTask)
		}
	}
}

func TestAttachSideTasks_DoesNotMutateInput(t *testing.T) {
	input := makeDays(4)
	rounds := []RoundSpec{{RoundNumber: 1, Type: RoundHR}}

	_ = AttachSideTasks(input, rounds, nil, nil)

	if input[0].SideTask != nil {
		t.Error("input day 1 was mutated")
	}
}

func TestComputeStatistics(t *testing.T) {
	days := []DayPlan{
		{Day: 1, Topic: "Arrays", ItemCount: 2, SideTask: &SideTask{Type: TaskBehavioral}},
		{Day: 2, Topic: "Arrays", ItemCount: 3},
		{Day: 3, Topic: "Trees", ItemCount: 2, SideTask: &SideTask{Type: TaskMock}},
	}

	stats := ComputeStatistics(days, 2)

	if stats.TotalDays != 3 || stats.TotalItems != 7 || stats.UniqueTopics != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalHours != 6 {
		t.Errorf("total hours = %v, want 6", stats.TotalHours)
	}
	if stats.AvgItemsPerDay != 2.3 {
		t.Errorf("avg items = %v, want 2.3", stats.AvgItemsPerDay)
	}
	if stats.SideTaskCounts[TaskBehavioral] != 1 || stats.SideTaskCounts[TaskMock] != 1 {
		t.Errorf("side task counts = %v", stats.SideTaskCounts)
	}
}

func TestDailyItemCount(t *testing.T) {
	tests := []struct {
		hours float64
		want  int
	}{
		{2, 2},     // floor(2.4)
		{4, 4},     // floor(4.8)
		{8, 8},     // floor(9.6) capped
		{10, 8},    // capped
		{0.5, 1},   // floor(0.6) raised to 1
		{0, 1},     // raised to 1
		{2.5, 3},   // floor(3.0)
		{6.67, 8},  // floor(8.004) = 8
		{1.6, 1},   // floor(1.92)
	}
	for _, tt := range tests {
		if got := DailyItemCount(tt.hours); got != tt.want {
			t.Errorf("DailyItemCount(%v) = %d, want %d", tt.hours, got, tt.want)
		}
	}
}

func TestGenerate_FullRun(t *testing.T) {
	g := &Generator{}
	in := Input{
		Topics: []TopicSpec{
			topic("Arrays", FreqVeryHigh, "two sum", "three sum", "max subarray", "rotate"),
			topic("Trees", FreqHigh, "inorder", "lca"),
		},
		Rounds: []RoundSpec{
			{RoundNumber: 1, Type: RoundDSACoding, DurationMinutes: 60},
			{RoundNumber: 2, Type: RoundHR, DurationMinutes: 30},
		},
		InterviewDate: testToday.AddDate(0, 0, 10),
		HoursPerDay:   2,
	}

	rm, err := g.Generate(in, testToday)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if rm.DailyItemCount != 2 {
		t.Errorf("daily item count = %d, want 2", rm.DailyItemCount)
	}
	if len(rm.Days) != 10 {
		t.Fatalf("days = %d, want 10", len(rm.Days))
	}
	for _, d := range rm.Days {
		if d.ItemCount > 2 {
			t.Errorf("day %d has %d items, want <= 2", d.Day, d.ItemCount)
		}
		if d.ItemCount == 0 {
			t.Errorf("day %d is empty", d.Day)
		}
	}
	if st := rm.Days[0].SideTask; st == nil || st.Type != TaskBehavioral {
		t.Errorf("day 1 side task = %+v, want behavioral", rm.Days[0].SideTask)
	}
	if rm.Statistics.TotalDays != 10 {
		t.Errorf("stats days = %d, want 10", rm.Statistics.TotalDays)
	}
}

func TestGenerate_PastInterviewDate(t *testing.T) {
	g := &Generator{}
	in := Input{
		Topics:      []TopicSpec{topic("Arrays", FreqHigh, "a")},
		HoursPerDay: 2,
	}

	for _, offset := range []int{0, -1, -30} {
		in.InterviewDate = testToday.AddDate(0, 0, offset)
		if _, err := g.Generate(in, testToday); !errors.Is(err, ErrPastInterviewDate) {
			t.Errorf("offset %d: err = %v, want ErrPastInterviewDate", offset, err)
		}
	}
}

func TestGenerate_NoTopics(t *testing.T) {
	g := &Generator{}
	in := Input{
		InterviewDate: testToday.AddDate(0, 0, 7),
		HoursPerDay:   2,
	}

	if _, err := g.Generate(in, testToday); !errors.Is(err, ErrNoTopics) {
		t.Errorf("empty topics: err = %v, want ErrNoTopics", err)
	}

	in.Topics = []TopicSpec{topic("Empty", FreqHigh)}
	if _, err := g.Generate(in, testToday); !errors.Is(err, ErrNoTopics) {
		t.Errorf("zero items: err = %v, want ErrNoTopics", err)
	}
}
