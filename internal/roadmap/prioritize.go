package roadmap

import "sort"

// frequencyWeights maps a frequency tier to its ranking weight. Unknown
// tiers fall back to the medium weight.
var frequencyWeights = map[string]float64{
	FreqVeryHigh: 10,
	FreqHigh:     7,
	FreqMedium:   5,
	FreqLow:      3,
}

const defaultFrequencyWeight = 5

// WeightFunc scores a single topic dimension for the impact formula.
type WeightFunc func(TopicSpec) float64

// MediumDifficulty treats every topic as medium difficulty. Real
// per-topic difficulty data can replace it via Generator.DifficultyWeight.
func MediumDifficulty(TopicSpec) float64 { return 2 }

// UniformWeakness treats every topic as equally unknown. Per-user
// performance history can replace it via Generator.WeaknessWeight.
func UniformWeakness(TopicSpec) float64 { return 1 }

// FrequencyWeight returns the ranking weight for a frequency tier.
func FrequencyWeight(frequency string) float64 {
	if w, ok := frequencyWeights[frequency]; ok {
		return w
	}
	return defaultFrequencyWeight
}

// Prioritize ranks topics by impact score, highest first. The sort is
// stable, so topics with equal scores keep their input order.
//
// Impact score = frequency weight x difficulty weight x weakness weight.
func Prioritize(topics []TopicSpec, difficulty, weakness WeightFunc) []RankedTopic {
	if difficulty == nil {
		difficulty = MediumDifficulty
	}
	if weakness == nil {
		weakness = UniformWeakness
	}

	ranked := make([]RankedTopic, len(topics))
	for i, t := range topics {
		ranked[i] = RankedTopic{
			TopicSpec:   t,
			ImpactScore: FrequencyWeight(t.Frequency) * difficulty(t) * weakness(t),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ImpactScore > ranked[j].ImpactScore
	})

	return ranked
}
