package srs

import (
	"testing"

	"pgregory.net/rapid"
)

func TestComputeNextReview_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		interval := rapid.IntRange(1, 365).Draw(t, "interval")
		ease := rapid.Float64Range(1.3, 2.5).Draw(t, "ease")
		performance := rapid.Float64Range(0, 1).Draw(t, "performance")

		nextInterval, nextEase := ComputeNextReview(interval, ease, performance)

		if nextEase < MinEaseFactor || nextEase > MaxEaseFactor {
			t.Fatalf("ease %v out of [%v, %v]", nextEase, MinEaseFactor, MaxEaseFactor)
		}
		if nextInterval < 1 || nextInterval > MaxIntervalDays {
			t.Fatalf("interval %d out of [1, %d]", nextInterval, MaxIntervalDays)
		}
	})
}

func TestComputeNextReview_PoorAlwaysRestarts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		interval := rapid.IntRange(1, 365).Draw(t, "interval")
		ease := rapid.Float64Range(1.3, 2.5).Draw(t, "ease")
		performance := rapid.Float64Range(0, 0.59).Draw(t, "performance")

		nextInterval, nextEase := ComputeNextReview(interval, ease, performance)

		// With the interval reset to 1, the result is ceil(newEase),
		// which is at most 3 for any ease in range.
		if nextInterval > 3 {
			t.Fatalf("poor performance produced interval %d (ease %v)", nextInterval, nextEase)
		}
	})
}

func TestComputeNextReview_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		interval := rapid.IntRange(1, 365).Draw(t, "interval")
		ease := rapid.Float64Range(1.3, 2.5).Draw(t, "ease")
		performance := rapid.Float64Range(0, 1).Draw(t, "performance")

		i1, e1 := ComputeNextReview(interval, ease, performance)
		i2, e2 := ComputeNextReview(interval, ease, performance)
		if i1 != i2 || e1 != e2 {
			t.Fatalf("non-deterministic result: (%d, %v) vs (%d, %v)", i1, e1, i2, e2)
		}
	})
}
