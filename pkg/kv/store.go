// Package kv provides a small thread-safe memo table.
package kv

import "sync"

// Store is a thread-safe generic key-value store bounded to max entries.
// When full, the store is cleared before the next insert.
type Store[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]V
	max  int
}

// New creates a store holding at most max entries; max <= 0 means unbounded.
func New[K comparable, V any](max int) *Store[K, V] {
	return &Store[K, V]{
		data: make(map[K]V),
		max:  max,
	}
}

// Get retrieves a value by key.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok
}

// Set stores a value by key.
func (s *Store[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(key, value)
}

func (s *Store[K, V]) set(key K, value V) {
	if _, ok := s.data[key]; !ok && s.max > 0 && len(s.data) >= s.max {
		s.data = make(map[K]V)
	}
	s.data[key] = value
}

// GetOrCompute returns the value for key, calling compute and storing its
// result when the key is missing. compute runs without the lock held and may
// run more than once for the same key under contention.
func (s *Store[K, V]) GetOrCompute(key K, compute func() V) V {
	if v, ok := s.Get(key); ok {
		return v
	}

	v := compute()

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.data[key]; ok {
		return existing
	}
	s.set(key, v)
	return v
}

// Clear removes all entries from the store.
func (s *Store[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[K]V)
}

// Len returns the number of items in the store.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
