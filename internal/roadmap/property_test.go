package roadmap

import (
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func genTopics(t *rapid.T) []TopicSpec {
	tiers := []string{FreqVeryHigh, FreqHigh, FreqMedium, FreqLow}
	n := rapid.IntRange(1, 10).Draw(t, "topics")
	topics := make([]TopicSpec, n)
	for i := range topics {
		itemCount := rapid.IntRange(0, 20).Draw(t, fmt.Sprintf("items%d", i))
		items := make([]string, itemCount)
		for j := range items {
			items[j] = fmt.Sprintf("t%d-item%d", i, j)
		}
		topics[i] = TopicSpec{
			Name:          fmt.Sprintf("topic-%d", i),
			Frequency:     rapid.SampledFrom(tiers).Draw(t, fmt.Sprintf("freq%d", i)),
			PracticeItems: items,
		}
	}
	return topics
}

func TestDistribute_AlwaysFillsEveryDay(t *testing.T) {
	today := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	rapid.Check(t, func(t *rapid.T) {
		topics := genTopics(t)
		total := 0
		for _, tp := range topics {
			total += len(tp.PracticeItems)
		}
		if total == 0 {
			t.Skip("no items")
		}

		daysAvailable := rapid.IntRange(1, 120).Draw(t, "days")
		dailyCount := rapid.IntRange(1, 8).Draw(t, "daily")

		days, err := Distribute(Prioritize(topics, nil, nil), daysAvailable, dailyCount, today)
		if err != nil {
			t.Fatalf("distribute: %v", err)
		}

		if len(days) != daysAvailable {
			t.Fatalf("len = %d, want %d", len(days), daysAvailable)
		}
		for _, d := range days {
			if d.ItemCount == 0 {
				t.Fatalf("day %d is empty (total items %d)", d.Day, total)
			}
			if d.ItemCount > dailyCount {
				t.Fatalf("day %d has %d items, max %d", d.Day, d.ItemCount, dailyCount)
			}
		}
	})
}

func TestPrioritize_SortedAndStable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		topics := genTopics(t)
		ranked := Prioritize(topics, nil, nil)

		if len(ranked) != len(topics) {
			t.Fatalf("len = %d, want %d", len(ranked), len(topics))
		}

		inputPos := make(map[string]int, len(topics))
		for i, tp := range topics {
			inputPos[tp.Name] = i
		}
		for i := 1; i < len(ranked); i++ {
			prev, cur := ranked[i-1], ranked[i]
			if prev.ImpactScore < cur.ImpactScore {
				t.Fatalf("not sorted at %d: %v < %v", i, prev.ImpactScore, cur.ImpactScore)
			}
			if prev.ImpactScore == cur.ImpactScore && inputPos[prev.Name] > inputPos[cur.Name] {
				t.Fatalf("unstable tie at %d: %s before %s", i, prev.Name, cur.Name)
			}
		}
	})
}

func TestAttachSideTasks_AtMostOnePerDay(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 60).Draw(t, "days")
		roundTypes := rapid.SliceOfN(
			rapid.SampledFrom([]string{RoundAptitude, RoundTechnical, RoundDSACoding, RoundSystemDesign, RoundHR}),
			0, 5,
		).Draw(t, "rounds")
		rounds := make([]RoundSpec, len(roundTypes))
		for i, rt := range roundTypes {
			rounds[i] = RoundSpec{RoundNumber: i + 1, Type: rt}
		}
		sd := rapid.SliceOfN(rapid.StringMatching(`[a-z]{3,10}`), 0, 5).Draw(t, "sd")
		beh := rapid.SliceOfN(rapid.StringMatching(`[a-z]{3,10}`), 0, 5).Draw(t, "beh")

		days := AttachSideTasks(makeDays(n), rounds, sd, beh)

		sdUsed := 0
		behPopped := 0
		for _, d := range days {
			if d.SideTask == nil {
				continue
			}
			switch d.SideTask.Type {
			case TaskSystemDesign:
				sdUsed++
			case TaskBehavioral:
				if d.Day != 1 {
					behPopped++
				}
			}
		}
		if sdUsed > len(sd) {
			t.Fatalf("consumed %d system design topics, only %d exist", sdUsed, len(sd))
		}
		if behPopped > len(beh) {
			t.Fatalf("consumed %d behavioral topics, only %d exist", behPopped, len(beh))
		}
	})
}
