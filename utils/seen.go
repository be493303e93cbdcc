package utils

import "sync"

// SeenSet tracks string identities that have already been observed. It is
// used to surface duplicate listings across pages; the duplicates themselves
// are still kept (the catalog source legitimately repeats entries).
type SeenSet struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

// NewSeenSet creates an empty SeenSet.
func NewSeenSet() *SeenSet {
	return &SeenSet{seen: make(map[string]struct{})}
}

// Add returns true if the identity was newly added, false if already present.
func (s *SeenSet) Add(identity string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.seen[identity]; exists {
		return false
	}
	s.seen[identity] = struct{}{}
	return true
}

// Contains returns true if the identity has already been observed.
func (s *SeenSet) Contains(identity string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.seen[identity]
	return exists
}

// Size returns the number of unique identities tracked.
func (s *SeenSet) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seen)
}
