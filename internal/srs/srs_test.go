package srs

import (
	"math"
	"testing"
)

func TestComputeNextReview_EaseAdjustment(t *testing.T) {
	tests := []struct {
		name         string
		interval     int
		ease         float64
		performance  float64
		wantInterval int
		wantEase     float64
	}{
		{
			name:         "excellent keeps capped ease",
			interval:     7,
			ease:         2.5,
			performance:  0.95,
			wantInterval: 18, // ceil(7 * 2.5)
			wantEase:     2.5,
		},
		{
			name:         "excellent grows ease",
			interval:     3,
			ease:         2.0,
			performance:  0.9,
			wantInterval: 7, // ceil(3 * 2.15)
			wantEase:     2.15,
		},
		{
			name:         "good grows ease slightly",
			interval:     4,
			ease:         2.0,
			performance:  0.75,
			wantInterval: 9, // ceil(4 * 2.05)
			wantEase:     2.05,
		},
		{
			name:         "acceptable shrinks ease",
			interval:     4,
			ease:         2.0,
			performance:  0.65,
			wantInterval: 8, // ceil(4 * 1.95)
			wantEase:     1.95,
		},
		{
			name:         "poor resets interval before multiply",
			interval:     30,
			ease:         2.0,
			performance:  0.4,
			wantInterval: 2, // ceil(1 * 1.8)
			wantEase:     1.8,
		},
		{
			name:         "poor floors ease at minimum",
			interval:     10,
			ease:         1.35,
			performance:  0.1,
			wantInterval: 2, // ceil(1 * 1.3)
			wantEase:     1.3,
		},
		{
			name:         "acceptable floors ease at minimum",
			interval:     5,
			ease:         1.3,
			performance:  0.6,
			wantInterval: 7, // ceil(5 * 1.3)
			wantEase:     1.3,
		},
		{
			name:         "interval capped at 90",
			interval:     60,
			ease:         2.5,
			performance:  1.0,
			wantInterval: 90,
			wantEase:     2.5,
		},
		{
			name:         "boundary 0.9 counts as excellent",
			interval:     1,
			ease:         2.0,
			performance:  0.9,
			wantInterval: 3, // ceil(1 * 2.15)
			wantEase:     2.15,
		},
		{
			name:         "boundary 0.7 counts as good",
			interval:     1,
			ease:         2.0,
			performance:  0.7,
			wantInterval: 3, // ceil(1 * 2.05)
			wantEase:     2.05,
		},
		{
			name:         "boundary 0.6 counts as acceptable not poor",
			interval:     10,
			ease:         2.0,
			performance:  0.6,
			wantInterval: 20, // interval not reset
			wantEase:     1.95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotInterval, gotEase := ComputeNextReview(tt.interval, tt.ease, tt.performance)
			if gotInterval != tt.wantInterval {
				t.Errorf("interval = %d, want %d", gotInterval, tt.wantInterval)
			}
			if math.Abs(gotEase-tt.wantEase) > 1e-9 {
				t.Errorf("ease = %v, want %v", gotEase, tt.wantEase)
			}
		})
	}
}

func TestComputeNextReview_ClampsDriftedInputs(t *testing.T) {
	// Ease above the cap is pulled back in.
	_, ease := ComputeNextReview(5, 3.0, 0.95)
	if ease != 2.5 {
		t.Errorf("ease = %v, want 2.5", ease)
	}

	// Ease below the floor is pulled up even on good performance.
	_, ease = ComputeNextReview(5, 0.5, 0.8)
	if ease != 1.3 {
		t.Errorf("ease = %v, want 1.3", ease)
	}

	// A zero interval behaves like interval 1.
	interval, _ := ComputeNextReview(0, 2.0, 0.8)
	if interval != 3 { // ceil(1 * 2.05)
		t.Errorf("interval = %d, want 3", interval)
	}
}

func TestComputeNextReview_PoorIgnoresPriorInterval(t *testing.T) {
	// Any prior interval produces the same result under poor performance.
	want, _ := ComputeNextReview(1, 2.2, 0.3)
	for _, prior := range []int{1, 7, 30, 90} {
		got, _ := ComputeNextReview(prior, 2.2, 0.3)
		if got != want {
			t.Errorf("interval with prior %d = %d, want %d", prior, got, want)
		}
	}
}
