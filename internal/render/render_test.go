package render

import (
	"strings"
	"testing"
	"time"

	"risparmi/internal/core"
)

func TestSymbol(t *testing.T) {
	if got := Symbol(core.CurrencyINR); got != "₹" {
		t.Fatalf("INR symbol: %q", got)
	}
	if got := Symbol(core.CurrencyUSD); got != "$" {
		t.Fatalf("USD symbol: %q", got)
	}
}

func TestThemeFor(t *testing.T) {
	if ThemeFor(core.ThemeDark) == ThemeFor(core.ThemeLight) {
		t.Fatalf("themes must differ")
	}
}

func TestGoalCard(t *testing.T) {
	r := New(core.DefaultPreferences())
	g := core.Goal{
		ID:          "id-1",
		Name:        "Bike",
		Description: "commuter",
		Target:      core.Money{Cents: 1000000},
		Saved:       core.Money{Cents: 400000},
		CreatedAt:   time.Now(),
	}

	out := r.GoalCard(g)
	for _, want := range []string{"Bike", "commuter", "₹4000.00", "₹10000.00", "₹6000.00", "40%", "id-1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("card missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "achieved") {
		t.Fatalf("unachieved goal rendered as achieved")
	}

	g.Saved = g.Target
	if out := r.GoalCard(g); !strings.Contains(out, "achieved") {
		t.Fatalf("achieved marker missing:\n%s", out)
	}
}

func TestSummaryLine(t *testing.T) {
	r := New(core.Preferences{Currency: core.CurrencyUSD, Theme: core.ThemeLight})

	if out := r.SummaryLine(core.Summary{}); !strings.Contains(out, "No goals") {
		t.Fatalf("empty summary: %q", out)
	}

	out := r.SummaryLine(core.Summary{
		Count:          2,
		TotalTarget:    core.Money{Cents: 3000},
		TotalSaved:     core.Money{Cents: 2400},
		TotalRemaining: core.Money{Cents: 600},
	})
	for _, want := range []string{"2 goals", "$24.00", "$30.00", "$6.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q: %q", want, out)
		}
	}
}
