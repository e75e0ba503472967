package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"risparmi/internal/core"
)

const barWidth = 30

// Renderer formats goals and summaries under the current preferences.
type Renderer struct {
	theme    Theme
	currency core.Currency
}

func New(prefs core.Preferences) *Renderer {
	return &Renderer{
		theme:    ThemeFor(prefs.Theme),
		currency: prefs.Currency,
	}
}

// Amount renders a money value with the preferred currency symbol.
func (r *Renderer) Amount(m core.Money) string {
	return Symbol(r.currency) + m.String()
}

// GoalCard renders one goal as a bordered card with its progress bar.
func (r *Renderer) GoalCard(g core.Goal) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(r.theme.Foreground)
	muted := lipgloss.NewStyle().Foreground(r.theme.Muted)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.theme.Border).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(title.Render(g.Name))
	if g.Achieved() {
		b.WriteString(" " + lipgloss.NewStyle().Foreground(r.theme.Success).Render("achieved"))
	}
	b.WriteString("\n")
	if g.Description != "" {
		b.WriteString(muted.Render(g.Description) + "\n")
	}
	b.WriteString(fmt.Sprintf("%s of %s, %s to go\n",
		r.Amount(g.Saved), r.Amount(g.Target), r.Amount(g.Remaining())))
	b.WriteString(r.progressBar(g.ProgressPct()))
	b.WriteString(muted.Render(fmt.Sprintf("  id %s", g.ID)))
	return card.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

// SummaryLine renders the aggregate across all goals.
func (r *Renderer) SummaryLine(s core.Summary) string {
	muted := lipgloss.NewStyle().Foreground(r.theme.Muted)
	if s.Count == 0 {
		return muted.Render("No goals yet.") + "\n"
	}
	return fmt.Sprintf("%d goals: %s saved of %s, %s remaining\n",
		s.Count, r.Amount(s.TotalSaved), r.Amount(s.TotalTarget), r.Amount(s.TotalRemaining))
}

func (r *Renderer) progressBar(pct float64) string {
	filled := int(pct / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	fill := lipgloss.NewStyle().Foreground(r.theme.BarFill)
	empty := lipgloss.NewStyle().Foreground(r.theme.BarEmpty)
	return fill.Render(strings.Repeat("█", filled)) +
		empty.Render(strings.Repeat("░", barWidth-filled)) +
		fmt.Sprintf(" %.0f%%\n", pct)
}
