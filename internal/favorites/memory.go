package favorites

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps favorites in process memory. It backs anonymous sessions
// and tests; a restart loses the data.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]map[string]struct{}
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]map[string]struct{}),
	}
}

// Add marks a match as favorite for the user.
func (s *MemoryStore) Add(ctx context.Context, user, matchID string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.users[user]
	if !ok {
		set = make(map[string]struct{})
		s.users[user] = set
	}
	set[matchID] = struct{}{}
	return nil
}

// Remove unmarks a match for the user. Removing an absent id is a no-op.
func (s *MemoryStore) Remove(ctx context.Context, user, matchID string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.users[user]; ok {
		delete(set, matchID)
	}
	return nil
}

// List returns the user's favorite match ids in lexical order.
func (s *MemoryStore) List(ctx context.Context, user string) ([]string, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.users[user]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Clear removes every favorite for the user.
func (s *MemoryStore) Clear(ctx context.Context, user string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, user)
	return nil
}

// IsFavorite reports whether the match is starred by the user.
func (s *MemoryStore) IsFavorite(ctx context.Context, user, matchID string) (bool, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.users[user]
	if !ok {
		return false, nil
	}
	_, starred := set[matchID]
	return starred, nil
}

// Close satisfies Store; a memory store holds nothing to release.
func (s *MemoryStore) Close() error {
	return nil
}
