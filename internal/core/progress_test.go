package core

import (
	"testing"
	"time"
)

func TestComputeRemaining(t *testing.T) {
	cases := []struct {
		target, saved, want int64
	}{
		{1000000, 0, 1000000},
		{1000000, 400000, 600000},
		{1000000, 1000000, 0},
		{300000, 400000, 0}, // floored, never negative
	}
	for _, tc := range cases {
		got := ComputeRemaining(Money{Cents: tc.target}, Money{Cents: tc.saved})
		if got.Cents != tc.want {
			t.Fatalf("target=%d saved=%d expected %d, got %d", tc.target, tc.saved, tc.want, got.Cents)
		}
	}
}

func TestComputeProgressPct(t *testing.T) {
	cases := []struct {
		target, saved int64
		want          float64
	}{
		{1000000, 0, 0},
		{1000000, 400000, 40},
		{1000000, 1000000, 100},
		{300000, 400000, 100}, // clamped
		{0, 400000, 0},        // no target, no progress
	}
	for _, tc := range cases {
		got := ComputeProgressPct(Money{Cents: tc.target}, Money{Cents: tc.saved})
		if got != tc.want {
			t.Fatalf("target=%d saved=%d expected %v, got %v", tc.target, tc.saved, tc.want, got)
		}
	}
}

func TestAchieved(t *testing.T) {
	g := Goal{ID: "x", Name: "Bike", Target: Money{Cents: 1000}, CreatedAt: time.Now()}
	if g.Achieved() {
		t.Fatalf("fresh goal must not be achieved")
	}
	g.Saved = g.Target
	if !g.Achieved() {
		t.Fatalf("fully funded goal must be achieved")
	}
	if (Goal{}).Achieved() {
		t.Fatalf("zero-target goal must not be achieved")
	}
}

func TestSummarize(t *testing.T) {
	if s := Summarize(nil); s.Count != 0 || !s.TotalRemaining.IsZero() {
		t.Fatalf("empty summary not zero: %+v", s)
	}

	goals := []Goal{
		{Target: Money{Cents: 1000}, Saved: Money{Cents: 400}},
		{Target: Money{Cents: 2000}, Saved: Money{Cents: 2000}},
	}
	s := Summarize(goals)
	if s.Count != 2 {
		t.Fatalf("expected count 2, got %d", s.Count)
	}
	if s.TotalTarget.Cents != 3000 || s.TotalSaved.Cents != 2400 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if s.TotalRemaining.Cents != 600 {
		t.Fatalf("expected remaining 600, got %d", s.TotalRemaining.Cents)
	}

	// Over-contributed state (possible only in a hand-edited blob)
	// still clamps the aggregate at zero.
	over := Summarize([]Goal{{Target: Money{Cents: 100}, Saved: Money{Cents: 500}}})
	if over.TotalRemaining.Cents != 0 {
		t.Fatalf("expected clamped remaining, got %d", over.TotalRemaining.Cents)
	}
}
