// Package store holds the in-memory entity collections behind the services.
package store

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("record not found")

// Store is an ordered collection of records of one entity type. Records are
// cloned on the way in and on the way out, so nothing a caller holds ever
// aliases what the store holds.
type Store[T any] struct {
	mu      sync.RWMutex
	records []T
	idOf    func(T) string
	clone   func(T) T
}

// New builds a store seeded with a copy of seed, kept in seed order.
func New[T any](seed []T, idOf func(T) string, clone func(T) T) *Store[T] {
	s := &Store[T]{
		records: make([]T, 0, len(seed)),
		idOf:    idOf,
		clone:   clone,
	}
	for _, rec := range seed {
		s.records = append(s.records, clone(rec))
	}
	return s
}

// All returns a snapshot of every record in insertion order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, s.clone(rec))
	}
	return out
}

// Find returns a copy of the record with the given id.
func (s *Store[T]) Find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.clone(s.records[i]), true
	}
	var zero T
	return zero, false
}

// Append stores a copy of rec at the end and returns another copy.
func (s *Store[T]) Append(rec T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, s.clone(rec))
	return s.clone(rec)
}

// Replace runs mutate on a working copy of the record and stores the result.
// The store is left untouched when the id is unknown.
func (s *Store[T]) Replace(id string, mutate func(*T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	next := s.clone(s.records[i])
	mutate(&next)
	s.records[i] = next
	return s.clone(next), nil
}

// Remove deletes the record with the given id and returns it.
func (s *Store[T]) Remove(id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	removed := s.records[i]
	s.records = append(s.records[:i], s.records[i+1:]...)
	return s.clone(removed), nil
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// linear scan; collections are small
func (s *Store[T]) indexOf(id string) int {
	for i, rec := range s.records {
		if s.idOf(rec) == id {
			return i
		}
	}
	return -1
}
