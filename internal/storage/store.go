// Package storage provides the persisted slot store backing the goal
// and preferences collections. State is kept as opaque serialized blobs
// under named slots; this package does not interpret the blob contents.
package storage

import "context"

// Slot names used by the application. Each slot holds one serialized
// collection: the goal list under SlotGoals, the preferences record
// under SlotPrefs.
const (
	SlotGoals = "goals"
	SlotPrefs = "prefs"
)

// SlotStore is the persistence port consumed by the stores in
// internal/core. Implementations are synchronous local stores for the
// current profile; there is no cross-device or remote backend.
type SlotStore interface {
	// Get returns the blob stored under slot. The second return value
	// is false when the slot has never been written (or was cleared).
	Get(ctx context.Context, slot string) ([]byte, bool, error)

	// Set stores blob under slot, replacing any previous value.
	Set(ctx context.Context, slot string, blob []byte) error

	// Clear removes every slot in a single operation.
	Clear(ctx context.Context) error
}
