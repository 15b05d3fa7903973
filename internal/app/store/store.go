// Package store provides a concurrency-safe holder for an immutable state
// value that is advanced by transition functions.
package store

import "sync"

// Store holds a state value of type T. Reads (Get) take a shared lock;
// transitions (Apply, Set) are serialized under an exclusive lock so each one
// runs to completion before the next observes the state.
//
// T should be treated as immutable: transitions return a new value rather
// than modifying the one they receive.
type Store[T any] struct {
	mu  sync.RWMutex
	val T
}

// New creates a Store initialized with the given value.
func New[T any](val T) *Store[T] {
	return &Store[T]{val: val}
}

// Get returns the current value under a read lock.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.val
}

// Set replaces the current value under a write lock.
func (s *Store[T]) Set(val T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.val = val
}

// Apply runs fn on the current value under a write lock and stores the value
// it returns, whether or not fn also returned an error. It returns the stored
// value and fn's error.
func (s *Store[T]) Apply(fn func(T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.val)
	s.val = next
	return next, err
}
