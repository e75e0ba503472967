package core

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	applog "risparmi/internal/log"
	"risparmi/internal/storage"
)

// PreferencesStore owns the profile's display preferences. Both fields
// are closed two-valued enumerations, so the toggles need no
// validation; only decoded blobs are checked.
type PreferencesStore struct {
	mu     sync.Mutex
	prefs  Preferences
	store  storage.SlotStore
	logger *applog.Logger
}

// NewPreferencesStore loads preferences from the slot store, falling
// back to the documented defaults when the slot is absent or malformed.
func NewPreferencesStore(ctx context.Context, store storage.SlotStore, logger *applog.Logger) *PreferencesStore {
	s := &PreferencesStore{
		prefs:  DefaultPreferences(),
		store:  store,
		logger: logger.WithComponent(applog.ComponentPrefs),
	}

	blob, ok, err := store.Get(ctx, storage.SlotPrefs)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read prefs slot, using defaults",
			applog.FieldOperation, applog.OpLoad, applog.FieldError, err)
		return s
	}
	if !ok {
		return s
	}
	prefs, err := DecodePreferences(blob)
	if err != nil {
		s.logger.WarnContext(ctx, "Stored preferences are malformed, using defaults",
			applog.FieldOperation, applog.OpLoad, applog.FieldError, err)
		return s
	}
	s.prefs = prefs
	return s
}

// DecodePreferences deserializes and schema-checks a prefs blob.
func DecodePreferences(blob []byte) (Preferences, error) {
	var p Preferences
	if err := json.Unmarshal(blob, &p); err != nil {
		return Preferences{}, fmt.Errorf("decode preferences: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Preferences{}, err
	}
	return p, nil
}

// Current returns the preferences as they stand.
func (s *PreferencesStore) Current() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.prefs
}

// ToggleCurrency flips between the two currency labels.
func (s *PreferencesStore) ToggleCurrency(ctx context.Context) Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prefs.Currency == CurrencyINR {
		s.prefs.Currency = CurrencyUSD
	} else {
		s.prefs.Currency = CurrencyINR
	}
	s.persist(ctx)
	s.logger.InfoContext(ctx, "Currency toggled",
		applog.FieldOperation, applog.OpToggle, applog.FieldCurrency, string(s.prefs.Currency))
	return s.prefs
}

// ToggleTheme flips between dark and light.
func (s *PreferencesStore) ToggleTheme(ctx context.Context) Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prefs.Theme == ThemeDark {
		s.prefs.Theme = ThemeLight
	} else {
		s.prefs.Theme = ThemeDark
	}
	s.persist(ctx)
	s.logger.InfoContext(ctx, "Theme toggled",
		applog.FieldOperation, applog.OpToggle, applog.FieldTheme, string(s.prefs.Theme))
	return s.prefs
}

// Reset restores the documented defaults and persists them.
func (s *PreferencesStore) Reset(ctx context.Context) Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs = DefaultPreferences()
	s.persist(ctx)
	s.logger.InfoContext(ctx, "Preferences reset",
		applog.FieldOperation, applog.OpReset)
	return s.prefs
}

// RestoreDefaults resets the in-memory preferences without touching
// storage; the reset-all flow clears the backing store separately.
func (s *PreferencesStore) RestoreDefaults() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs = DefaultPreferences()
	return s.prefs
}

func (s *PreferencesStore) persist(ctx context.Context) {
	blob, err := json.Marshal(s.prefs)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to encode preferences",
			applog.FieldOperation, applog.OpPersist, applog.FieldError, err)
		return
	}
	if err := s.store.Set(ctx, storage.SlotPrefs, blob); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist preferences, in-memory state kept",
			applog.FieldOperation, applog.OpPersist, applog.FieldError, err)
	}
}
