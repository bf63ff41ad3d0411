package roadmap

import "fmt"

// AttachSideTasks layers at most one side task onto each day and
// returns a new slice; the input days are not modified. Rules are
// evaluated in precedence order, first match wins:
//
//  1. Day 1, when an HR round exists: STAR-format behavioral prep.
//  2. Days 2 and 3, when an aptitude round exists: fixed aptitude drills.
//  3. Every 3rd day, when a system-design round exists: study the next
//     unconsumed system-design topic.
//  4. Every 4th day: prepare the next unconsumed behavioral-focus topic.
//  5. The final 3 days: mock interviews with a descending round counter.
//
// System-design and behavioral topics are consumed at most once each;
// rules 3 and 4 stop firing once their lists run out.
func AttachSideTasks(days []DayPlan, rounds []RoundSpec, systemDesign, behavioralFocus []string) []DayPlan {
	hasRound := func(roundType string) bool {
		for _, r := range rounds {
			if r.Type == roundType {
				return true
			}
		}
		return false
	}

	hasSystemDesign := hasRound(RoundSystemDesign)
	hasAptitude := hasRound(RoundAptitude)
	hasHR := hasRound(RoundHR)

	out := make([]DayPlan, len(days))
	copy(out, days)

	sdIdx := 0
	behIdx := 0

	for i := range out {
		day := out[i].Day

		switch {
		case day == 1 && hasHR:
			out[i].SideTask = &SideTask{
				Type: TaskBehavioral,
				Task: "Write STAR format examples for past experiences",
			}

		case (day == 2 || day == 3) && hasAptitude:
			drill := "Ratios & Percentages"
			if day == 3 {
				drill = "Time & Work problems"
			}
			out[i].SideTask = &SideTask{
				Type: TaskAptitude,
				Task: "Practice aptitude: " + drill,
			}

		case day%3 == 0 && hasSystemDesign && sdIdx < len(systemDesign):
			out[i].SideTask = &SideTask{
				Type: TaskSystemDesign,
				Task: "Study: " + systemDesign[sdIdx],
			}
			sdIdx++

		case day%4 == 0 && behIdx < len(behavioralFocus):
			out[i].SideTask = &SideTask{
				Type: TaskBehavioral,
				Task: "Prepare examples for: " + behavioralFocus[behIdx],
			}
			behIdx++

		case day > len(out)-3:
			out[i].SideTask = &SideTask{
				Type: TaskMock,
				Task: fmt.Sprintf("Mock interview - Round %d", len(out)-day+1),
			}
		}
	}

	return out
}
