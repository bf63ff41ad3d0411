package plans

import (
	"errors"
	"math"
	"testing"
	"time"
)

var today = time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

func TestAllocateHours_ProportionalToWeight(t *testing.T) {
	topics := []TopicInput{
		{Name: "Calculus", Weight: 3},
		{Name: "Algebra", Weight: 1},
	}
	// 10 days x 4 hours = 40 total, 36 after the 10% buffer.
	allocations, err := AllocateHours(topics, today.AddDate(0, 0, 10), today, 4)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}

	if allocations[0].AllocatedHours != 27 {
		t.Errorf("calculus = %v, want 27", allocations[0].AllocatedHours)
	}
	if allocations[1].AllocatedHours != 9 {
		t.Errorf("algebra = %v, want 9", allocations[1].AllocatedHours)
	}
	if allocations[0].OrderIndex != 0 || allocations[1].OrderIndex != 1 {
		t.Error("order indexes do not follow input order")
	}
}

func TestAllocateHours_TotalNeverExceedsBudget(t *testing.T) {
	topics := []TopicInput{
		{Name: "A", Weight: 1.7},
		{Name: "B", Weight: 2.3},
		{Name: "C", Weight: 0.5},
	}
	allocations, err := AllocateHours(topics, today.AddDate(0, 0, 14), today, 3)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}

	sum := 0.0
	for _, a := range allocations {
		sum += a.AllocatedHours
	}
	budget := 14.0 * 3
	if sum > budget {
		t.Errorf("allocated %v exceeds budget %v", sum, budget)
	}
	// 10% buffer held back, modulo rounding.
	if math.Abs(sum-budget*0.9) > 0.02 {
		t.Errorf("allocated %v, want about %v", sum, budget*0.9)
	}
}

func TestAllocateHours_Validation(t *testing.T) {
	topics := []TopicInput{{Name: "A", Weight: 1}}

	if _, err := AllocateHours(topics, today, today, 2); !errors.Is(err, ErrPastExamDate) {
		t.Errorf("same-day exam: err = %v, want ErrPastExamDate", err)
	}
	if _, err := AllocateHours(topics, today.AddDate(0, 0, -3), today, 2); !errors.Is(err, ErrPastExamDate) {
		t.Errorf("past exam: err = %v, want ErrPastExamDate", err)
	}
	if _, err := AllocateHours(nil, today.AddDate(0, 0, 5), today, 2); !errors.Is(err, ErrNoTopics) {
		t.Errorf("no topics: err = %v, want ErrNoTopics", err)
	}
	zero := []TopicInput{{Name: "A", Weight: 0}}
	if _, err := AllocateHours(zero, today.AddDate(0, 0, 5), today, 2); err == nil {
		t.Error("zero total weight: expected error")
	}
}

func TestSliceSessions_HalfDailyBudgetPerSession(t *testing.T) {
	sessions := SliceSessions(1, 5, today, 4)

	// 5 hours at 2 per session: 2 + 2 + 1.
	if len(sessions) != 3 {
		t.Fatalf("sessions = %d, want 3", len(sessions))
	}
	wantDurations := []float64{2, 2, 1}
	for i, s := range sessions {
		if s.Duration != wantDurations[i] {
			t.Errorf("session %d duration = %v, want %v", i, s.Duration, wantDurations[i])
		}
		wantDate := today.AddDate(0, 0, i)
		if !s.ScheduledDate.Equal(wantDate) {
			t.Errorf("session %d date = %v, want %v", i, s.ScheduledDate, wantDate)
		}
		if s.TopicID != 1 {
			t.Errorf("session %d topic = %d, want 1", i, s.TopicID)
		}
	}
}

func TestSliceSessions_ZeroHours(t *testing.T) {
	if sessions := SliceSessions(1, 0, today, 4); len(sessions) != 0 {
		t.Errorf("sessions = %d, want 0", len(sessions))
	}
}

func TestSliceSessions_CoversAllocation(t *testing.T) {
	sessions := SliceSessions(2, 13.5, today, 3)

	sum := 0.0
	for _, s := range sessions {
		sum += s.Duration
	}
	if math.Abs(sum-13.5) > 0.01 {
		t.Errorf("scheduled %v hours, want 13.5", sum)
	}
	for _, s := range sessions {
		if s.Duration > 1.5 {
			t.Errorf("session duration %v exceeds half of daily budget", s.Duration)
		}
	}
}
