// Package srs implements spaced repetition scheduling using a modified
// Leitner algorithm: each (user, topic) pair carries a review interval
// and an ease factor, both adjusted after every recorded performance.
package srs

import "math"

const (
	// MinEaseFactor and MaxEaseFactor bound the interval multiplier.
	MinEaseFactor = 1.3
	MaxEaseFactor = 2.5

	// InitialEaseFactor is assigned when a schedule is first created.
	InitialEaseFactor = 2.5

	// InitialIntervalDays is the interval for a brand-new schedule.
	InitialIntervalDays = 1

	// MaxIntervalDays caps interval growth.
	MaxIntervalDays = 90
)

// Performance thresholds for the ease factor adjustment.
const (
	excellentThreshold  = 0.9
	goodThreshold       = 0.7
	acceptableThreshold = 0.6
)

// ComputeNextReview calculates the next review interval and ease factor
// from the current state and a performance score in [0, 1].
//
// Performance below 0.6 resets the interval to 1 before the multiplier
// is applied: the topic starts over rather than growing from its old
// interval. The ease factor is clamped to [1.3, 2.5] and the resulting
// interval to [1, 90] days, so out-of-range inputs are corrected rather
// than rejected.
func ComputeNextReview(currentInterval int, easeFactor, performance float64) (int, float64) {
	switch {
	case performance >= excellentThreshold:
		easeFactor = math.Min(easeFactor+0.15, MaxEaseFactor)
	case performance >= goodThreshold:
		easeFactor = math.Min(easeFactor+0.05, MaxEaseFactor)
	case performance >= acceptableThreshold:
		easeFactor = math.Max(easeFactor-0.05, MinEaseFactor)
	default:
		easeFactor = math.Max(easeFactor-0.2, MinEaseFactor)
		currentInterval = 1
	}

	easeFactor = clampEase(easeFactor)
	if currentInterval < 1 {
		currentInterval = 1
	}

	next := int(math.Ceil(float64(currentInterval) * easeFactor))
	if next > MaxIntervalDays {
		next = MaxIntervalDays
	}
	if next < 1 {
		next = 1
	}

	return next, easeFactor
}

// clampEase bounds an ease factor to [MinEaseFactor, MaxEaseFactor].
// Inputs can drift out of range through accumulated float error in
// stored records.
func clampEase(e float64) float64 {
	if e < MinEaseFactor {
		return MinEaseFactor
	}
	if e > MaxEaseFactor {
		return MaxEaseFactor
	}
	return e
}
