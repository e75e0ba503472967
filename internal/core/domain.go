package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"

	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type (
	// Currency is a display label only; no conversion math is attached.
	Currency string

	// Theme selects the display color scheme.
	Theme string

	// Goal is one savings target. Target and Saved always satisfy
	// 0 <= Saved <= Target; every mutation path enforces it.
	Goal struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		Target      Money     `json:"target"`
		Saved       Money     `json:"saved"`
		CreatedAt   time.Time `json:"createdAt"`
	}

	// Preferences is the profile-wide display configuration.
	Preferences struct {
		Currency Currency `json:"currency"`
		Theme    Theme    `json:"theme"`
	}
)

var (
	ErrEmptyName     = errors.New("empty goal name")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrGoalNotFound  = errors.New("goal not found")
)

// ExceedsRemainingError rejects an addition larger than what the goal
// still needs. Remaining carries the computed headroom so callers can
// present an actionable message.
type ExceedsRemainingError struct {
	Remaining Money
}

func (e *ExceedsRemainingError) Error() string {
	return fmt.Sprintf("amount exceeds remaining %s", e.Remaining)
}

// NewGoal builds a validated goal with a fresh id, zero savings and the
// current creation time.
func NewGoal(name, description string, target Money) (Goal, error) {
	g := Goal{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Target:      target,
		CreatedAt:   time.Now().UTC(),
	}
	if err := g.Validate(); err != nil {
		return Goal{}, err
	}
	return g, nil
}

func (g Goal) Validate() error {
	if g.ID == "" {
		return errors.New("empty goal id")
	}
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if len(g.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if g.Target.Cents <= 0 {
		return ErrInvalidAmount
	}
	if g.Saved.Cents < 0 || g.Saved.Cents > g.Target.Cents {
		return fmt.Errorf("saved %s out of range for target %s", g.Saved, g.Target)
	}
	if g.CreatedAt.IsZero() {
		return errors.New("zero creation time")
	}
	return nil
}

// DefaultPreferences returns the documented defaults: primary currency,
// dark theme.
func DefaultPreferences() Preferences {
	return Preferences{Currency: CurrencyINR, Theme: ThemeDark}
}

func (p Preferences) Validate() error {
	switch p.Currency {
	case CurrencyINR, CurrencyUSD:
	default:
		return fmt.Errorf("unknown currency %q", p.Currency)
	}
	switch p.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("unknown theme %q", p.Theme)
	}
	return nil
}
