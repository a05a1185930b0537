package history

import (
	"context"
	"encoding/json"

	"cvmatch-backend/internal/shared/kv"
	"cvmatch-backend/internal/shared/telemetry"
)

const historyKeyPrefix = "cv_analyzer_history_"

// Store keeps per-user analysis lists, newest first. Partitions are keyed by
// the owning user's email; there is no cross-partition operation.
type Store struct {
	KV kv.Store
}

// NewStore constructs a Store over the given key-value backend.
func NewStore(backend kv.Store) *Store {
	return &Store{KV: backend}
}

// SaveAnalysis prepends item to the user's list and persists the full
// updated list. Id uniqueness is the caller's contract; no dedup happens
// here.
func (s *Store) SaveAnalysis(ctx context.Context, email string, item Item) error {
	current := s.load(ctx, email)
	updated := make([]Item, 0, len(current)+1)
	updated = append(updated, item)
	updated = append(updated, current...)
	return s.persist(ctx, email, updated)
}

// GetHistory returns the user's full list, newest first. Missing or corrupt
// data degrades to an empty list.
func (s *Store) GetHistory(ctx context.Context, email string) []Item {
	return s.load(ctx, email)
}

// DeleteAnalysis removes the entry with the given id. Absent ids are a
// no-op, not an error.
func (s *Store) DeleteAnalysis(ctx context.Context, email, id string) error {
	current := s.load(ctx, email)
	filtered := current[:0:0]
	for _, item := range current {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == len(current) {
		return nil
	}
	return s.persist(ctx, email, filtered)
}

func (s *Store) load(ctx context.Context, email string) []Item {
	raw, ok, err := s.KV.Get(ctx, historyKeyPrefix+email)
	if err != nil || !ok {
		return []Item{}
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		telemetry.Warn("history.corrupt_record", map[string]any{"error": err.Error()})
		return []Item{}
	}
	if items == nil {
		return []Item{}
	}
	return items
}

func (s *Store) persist(ctx context.Context, email string, items []Item) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.KV.Set(ctx, historyKeyPrefix+email, string(payload))
}
