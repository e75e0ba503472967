// Package services wires the goal and preferences stores together for
// operations that span both.
package services

import (
	"context"
	"io"

	"risparmi/internal/core"
	applog "risparmi/internal/log"
	"risparmi/internal/storage"
)

// TrackerService bundles the two stores over one slot store. It owns
// the destructive reset-all operation; confirmation is the caller's
// job, the service mutates unconditionally.
type TrackerService struct {
	Goals  *core.GoalStore
	Prefs  *core.PreferencesStore
	store  storage.SlotStore
	logger *applog.Logger
}

func NewTrackerService(ctx context.Context, store storage.SlotStore, logger *applog.Logger) *TrackerService {
	return &TrackerService{
		Goals:  core.NewGoalStore(ctx, store, logger),
		Prefs:  core.NewPreferencesStore(ctx, store, logger),
		store:  store,
		logger: logger.WithComponent(applog.ComponentTracker),
	}
}

// ResetAll clears every goal and restores default preferences, with a
// single storage write covering both slots. The in-memory reset happens
// even when the storage clear fails; durability stays best effort like
// everywhere else.
func (s *TrackerService) ResetAll(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.logger.ErrorContext(ctx, "Failed to clear storage, resetting in memory only",
			applog.FieldOperation, applog.OpReset, applog.FieldError, err)
	}
	s.Goals.RemoveAll()
	s.Prefs.RestoreDefaults()
	s.logger.InfoContext(ctx, "All data reset",
		applog.FieldOperation, applog.OpReset)
}

// Close releases the underlying slot store when it holds resources
// (the SQLite backend does, the memory backend does not).
func (s *TrackerService) Close() error {
	if c, ok := s.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
