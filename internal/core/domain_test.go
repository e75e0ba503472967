package core

import (
	"errors"
	"testing"
	"time"
)

func TestNewGoal(t *testing.T) {
	g, err := NewGoal("  Bike  ", " new bike ", Money{Cents: 1000000})
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if g.Name != "Bike" || g.Description != "new bike" {
		t.Fatalf("expected trimmed fields, got %q %q", g.Name, g.Description)
	}
	if g.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if !g.Saved.IsZero() {
		t.Fatalf("expected zero saved, got %v", g.Saved)
	}
	if g.CreatedAt.IsZero() {
		t.Fatalf("expected creation time")
	}

	other, err := NewGoal("Bike", "", Money{Cents: 1000000})
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if other.ID == g.ID {
		t.Fatalf("expected unique ids")
	}
}

func TestNewGoalRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		goal   string
		target int64
		want   error
	}{
		{"empty name", "", 100, ErrEmptyName},
		{"whitespace name", "   ", 100, ErrEmptyName},
		{"zero target", "Bike", 0, ErrInvalidAmount},
		{"negative target", "Bike", -100, ErrInvalidAmount},
	}
	for _, tc := range cases {
		_, err := NewGoal(tc.goal, "", Money{Cents: tc.target})
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestGoalValidate(t *testing.T) {
	good := Goal{
		ID:        "id-1",
		Name:      "Bike",
		Target:    Money{Cents: 1000},
		Saved:     Money{Cents: 500},
		CreatedAt: time.Now(),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Goal{
		{ID: "", Name: "a", Target: Money{Cents: 1}, CreatedAt: time.Now()},
		{ID: "x", Name: "", Target: Money{Cents: 1}, CreatedAt: time.Now()},
		{ID: "x", Name: "a", Target: Money{Cents: 0}, CreatedAt: time.Now()},
		{ID: "x", Name: "a", Target: Money{Cents: 100}, Saved: Money{Cents: 101}, CreatedAt: time.Now()},
		{ID: "x", Name: "a", Target: Money{Cents: 100}, Saved: Money{Cents: -1}, CreatedAt: time.Now()},
		{ID: "x", Name: "a", Target: Money{Cents: 1}},
	}
	for i, g := range bads {
		if err := g.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()
	if p.Currency != CurrencyINR || p.Theme != ThemeDark {
		t.Fatalf("unexpected defaults: %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("defaults must validate, got %v", err)
	}
}

func TestPreferencesValidate(t *testing.T) {
	bads := []Preferences{
		{Currency: "EUR", Theme: ThemeDark},
		{Currency: CurrencyINR, Theme: "sepia"},
		{},
	}
	for i, p := range bads {
		if err := p.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestExceedsRemainingError(t *testing.T) {
	err := &ExceedsRemainingError{Remaining: Money{Cents: 600000}}
	if err.Error() != "amount exceeds remaining 6000.00" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
