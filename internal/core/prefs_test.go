package core

import (
	"context"
	"testing"

	"risparmi/internal/storage"
)

func newTestPrefsStore(t *testing.T) (*PreferencesStore, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewPreferencesStore(context.Background(), store, newTestLogger()), store
}

func TestPreferencesStoreDefaults(t *testing.T) {
	s, _ := newTestPrefsStore(t)
	if p := s.Current(); p != DefaultPreferences() {
		t.Fatalf("expected defaults, got %+v", p)
	}
}

func TestPreferencesStoreToggles(t *testing.T) {
	s, _ := newTestPrefsStore(t)
	ctx := context.Background()

	if p := s.ToggleCurrency(ctx); p.Currency != CurrencyUSD {
		t.Fatalf("expected USD after toggle, got %s", p.Currency)
	}
	if p := s.ToggleCurrency(ctx); p.Currency != CurrencyINR {
		t.Fatalf("expected INR after second toggle, got %s", p.Currency)
	}

	if p := s.ToggleTheme(ctx); p.Theme != ThemeLight {
		t.Fatalf("expected light after toggle, got %s", p.Theme)
	}
	if p := s.ToggleTheme(ctx); p.Theme != ThemeDark {
		t.Fatalf("expected dark after second toggle, got %s", p.Theme)
	}
}

func TestPreferencesStoreReset(t *testing.T) {
	s, store := newTestPrefsStore(t)
	ctx := context.Background()

	s.ToggleCurrency(ctx)
	s.ToggleTheme(ctx)
	if p := s.Reset(ctx); p != DefaultPreferences() {
		t.Fatalf("expected defaults after reset, got %+v", p)
	}

	// Reset persists: a reload sees the defaults.
	reloaded := NewPreferencesStore(ctx, store, newTestLogger())
	if p := reloaded.Current(); p != DefaultPreferences() {
		t.Fatalf("expected persisted defaults, got %+v", p)
	}
}

func TestPreferencesStoreRoundTrip(t *testing.T) {
	s, store := newTestPrefsStore(t)
	ctx := context.Background()

	want := s.ToggleCurrency(ctx)

	reloaded := NewPreferencesStore(ctx, store, newTestLogger())
	if p := reloaded.Current(); p != want {
		t.Fatalf("expected %+v after reload, got %+v", want, p)
	}
}

func TestPreferencesStoreLoadMalformed(t *testing.T) {
	ctx := context.Background()
	for i, blob := range [][]byte{
		[]byte(`nope`),
		[]byte(`{"currency":"EUR","theme":"dark"}`),
		[]byte(`{"currency":"INR","theme":"sepia"}`),
	} {
		store := storage.NewMemoryStore()
		if err := store.Set(ctx, storage.SlotPrefs, blob); err != nil {
			t.Fatalf("seed: %v", err)
		}
		s := NewPreferencesStore(ctx, store, newTestLogger())
		if p := s.Current(); p != DefaultPreferences() {
			t.Fatalf("case %d: expected defaults for malformed blob, got %+v", i, p)
		}
	}
}
