package core

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	applog "risparmi/internal/log"
	"risparmi/internal/storage"
)

// GoalStore owns the goal collection for one profile. It is constructed
// once per session, loads its state from the slot store, and writes the
// whole collection back after every mutation. A mutex serializes the
// read-modify-write in AddSavings should a future caller turn out to be
// concurrent.
//
// Persistence failures are logged and swallowed: in-memory state stays
// authoritative for the session, durability is best effort.
type GoalStore struct {
	mu     sync.Mutex
	goals  []Goal
	store  storage.SlotStore
	logger *applog.Logger
}

// NewGoalStore loads the goal collection from the slot store. An
// absent, unreadable or malformed blob is replaced by an empty
// collection rather than failing startup.
func NewGoalStore(ctx context.Context, store storage.SlotStore, logger *applog.Logger) *GoalStore {
	s := &GoalStore{
		store:  store,
		logger: logger.WithComponent(applog.ComponentGoals),
	}

	blob, ok, err := store.Get(ctx, storage.SlotGoals)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read goals slot, starting empty",
			applog.FieldOperation, applog.OpLoad, applog.FieldError, err)
		return s
	}
	if !ok {
		return s
	}
	goals, err := DecodeGoals(blob)
	if err != nil {
		s.logger.WarnContext(ctx, "Stored goals are malformed, starting empty",
			applog.FieldOperation, applog.OpLoad, applog.FieldError, err)
		return s
	}
	s.goals = goals
	s.logger.DebugContext(ctx, "Loaded goals",
		applog.FieldOperation, applog.OpLoad, applog.FieldGoalCount, len(goals))
	return s
}

// DecodeGoals deserializes and schema-checks a goals blob. Any goal
// violating the stored invariants rejects the whole blob; the caller
// decides whether to substitute the default.
func DecodeGoals(blob []byte) ([]Goal, error) {
	var goals []Goal
	if err := json.Unmarshal(blob, &goals); err != nil {
		return nil, fmt.Errorf("decode goals: %w", err)
	}
	seen := make(map[string]struct{}, len(goals))
	for i, g := range goals {
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("goal %d: %w", i, err)
		}
		if _, dup := seen[g.ID]; dup {
			return nil, fmt.Errorf("goal %d: duplicate id %s", i, g.ID)
		}
		seen[g.ID] = struct{}{}
	}
	return goals, nil
}

// EncodeGoals serializes a goal collection for the goals slot.
func EncodeGoals(goals []Goal) ([]byte, error) {
	if goals == nil {
		goals = []Goal{}
	}
	return json.Marshal(goals)
}

// Create validates and appends a new goal with zero savings.
func (s *GoalStore) Create(ctx context.Context, name, description string, target Money) (Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := NewGoal(name, description, target)
	if err != nil {
		return Goal{}, err
	}
	s.goals = append(s.goals, g)
	s.persist(ctx)
	s.logger.InfoContext(ctx, "Goal created",
		applog.FieldOperation, applog.OpCreate,
		applog.FieldGoalID, g.ID,
		applog.FieldGoalName, g.Name,
		applog.FieldTargetCents, g.Target.Cents)
	return g, nil
}

// Delete removes the goal with the given id. Deleting an unknown id is
// a no-op, so stale references cannot fail a removal.
func (s *GoalStore) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.goals {
		if g.ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			s.persist(ctx)
			s.logger.InfoContext(ctx, "Goal deleted",
				applog.FieldOperation, applog.OpDelete, applog.FieldGoalID, id)
			return
		}
	}
	s.logger.DebugContext(ctx, "Delete of unknown goal ignored",
		applog.FieldOperation, applog.OpDelete, applog.FieldGoalID, id)
}

// AddSavings adds amount to the goal's saved total. The addition is
// rejected with ExceedsRemainingError when it would push saved past
// target; the goal is left untouched in that case.
func (s *GoalStore) AddSavings(ctx context.Context, id string, amount Money) (Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.find(id)
	if g == nil {
		return Goal{}, ErrGoalNotFound
	}
	if amount.Cents <= 0 {
		return Goal{}, ErrInvalidAmount
	}
	remaining := ComputeRemaining(g.Target, g.Saved)
	if amount.Cents > remaining.Cents {
		return Goal{}, &ExceedsRemainingError{Remaining: remaining}
	}
	g.Saved = g.Saved.Add(amount)
	s.persist(ctx)
	s.logger.InfoContext(ctx, "Savings added",
		applog.FieldOperation, applog.OpAddSavings,
		applog.FieldGoalID, g.ID,
		applog.FieldAmountCents, amount.Cents,
		applog.FieldSavedCents, g.Saved.Cents)
	return *g, nil
}

// EditTarget replaces the goal's target. Lowering the target below the
// current savings clamps saved down to the new target, so progress
// never exceeds 100%, not even transiently.
func (s *GoalStore) EditTarget(ctx context.Context, id string, target Money) (Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.find(id)
	if g == nil {
		return Goal{}, ErrGoalNotFound
	}
	if target.Cents <= 0 {
		return Goal{}, ErrInvalidAmount
	}
	g.Target = target
	if g.Saved.Cents > g.Target.Cents {
		g.Saved = g.Target
	}
	s.persist(ctx)
	s.logger.InfoContext(ctx, "Target edited",
		applog.FieldOperation, applog.OpEditTarget,
		applog.FieldGoalID, g.ID,
		applog.FieldTargetCents, g.Target.Cents,
		applog.FieldSavedCents, g.Saved.Cents)
	return *g, nil
}

// List returns a fresh snapshot of all goals, newest first. Goals
// created at the same instant are ordered by id for stability.
func (s *GoalStore) List() []Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Goal, len(s.goals))
	copy(out, s.goals)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Get returns the goal with the given id.
func (s *GoalStore) Get(id string) (Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g := s.find(id); g != nil {
		return *g, nil
	}
	return Goal{}, ErrGoalNotFound
}

// Aggregate sums targets and savings across all current goals.
func (s *GoalStore) Aggregate() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Summarize(s.goals)
}

// RemoveAll drops every goal from memory without touching storage. It
// exists for the reset-all flow, where the backing store is cleared in
// one operation covering goals and preferences together.
func (s *GoalStore) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.goals = nil
}

func (s *GoalStore) find(id string) *Goal {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return &s.goals[i]
		}
	}
	return nil
}

// persist writes the whole collection through to the goals slot.
// Callers hold the mutex.
func (s *GoalStore) persist(ctx context.Context) {
	blob, err := EncodeGoals(s.goals)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to encode goals",
			applog.FieldOperation, applog.OpPersist, applog.FieldError, err)
		return
	}
	if err := s.store.Set(ctx, storage.SlotGoals, blob); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist goals, in-memory state kept",
			applog.FieldOperation, applog.OpPersist, applog.FieldError, err)
	}
}
