package core

// Derived goal values. These are pure functions shared by the store's
// mutation checks and by rendering, so both sides apply identical
// rounding and clamping.

// ComputeRemaining returns target minus saved, floored at zero.
func ComputeRemaining(target, saved Money) Money {
	return target.Sub(saved)
}

// ComputeProgressPct returns saved/target as a percentage clamped to
// [0, 100]. A non-positive target yields 0.
func ComputeProgressPct(target, saved Money) float64 {
	if target.Cents <= 0 {
		return 0
	}
	pct := float64(saved.Cents) / float64(target.Cents) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Remaining returns how much the goal still needs.
func (g Goal) Remaining() Money {
	return ComputeRemaining(g.Target, g.Saved)
}

// ProgressPct returns the goal's completion percentage, 0-100.
func (g Goal) ProgressPct() float64 {
	return ComputeProgressPct(g.Target, g.Saved)
}

// Achieved reports whether the goal is fully funded.
func (g Goal) Achieved() bool {
	return g.Target.Cents > 0 && g.Remaining().IsZero()
}

// Summary aggregates all current goals.
type Summary struct {
	Count          int
	TotalTarget    Money
	TotalSaved     Money
	TotalRemaining Money
}

// Summarize sums targets and savings across goals. TotalRemaining is
// clamped at zero at the aggregate level as well, so the display
// contract holds even over state decoded from an edited blob.
func Summarize(goals []Goal) Summary {
	s := Summary{Count: len(goals)}
	for _, g := range goals {
		s.TotalTarget = s.TotalTarget.Add(g.Target)
		s.TotalSaved = s.TotalSaved.Add(g.Saved)
	}
	s.TotalRemaining = s.TotalTarget.Sub(s.TotalSaved)
	return s
}
