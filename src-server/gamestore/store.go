// Package gamestore is the in-memory registry behind every game kind: a
// keyed map of mutable game records where each record's transitions are
// serialized per key, so two rapid events for the same game can't both read
// the pre-mutation state and lose an update.
package gamestore

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

type entry[T any] struct {
	mu   sync.Mutex
	game T
	// set when the record was removed while another goroutine was
	// already waiting on mu
	gone bool
}

type Store[T any] struct {
	entries *xsync.MapOf[string, *entry[T]]
}

func New[T any]() *Store[T] {
	return &Store[T]{entries: xsync.NewMapOf[string, *entry[T]]()}
}

// Put creates or replaces the record under id. Replacing silently discards
// any prior record, same as the original bot.
func (s *Store[T]) Put(id string, game T) {
	s.entries.Store(id, &entry[T]{game: game})
}

func (s *Store[T]) Load(id string) (T, bool) {
	e, ok := s.entries.Load(id)
	if !ok {
		var zero T
		return zero, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		var zero T
		return zero, false
	}
	return e.game, true
}

// Update runs fn on the record under its per-key lock; fn returns false to
// delete the record (a terminal transition). Update itself returns false
// when no record exists under id.
func (s *Store[T]) Update(id string, fn func(game T) (keep bool)) bool {
	e, ok := s.entries.Load(id)
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return false
	}
	if !fn(e.game) {
		e.gone = true
		s.entries.Delete(id)
	}
	return true
}

func (s *Store[T]) Delete(id string) {
	s.Update(id, func(T) bool { return false })
}

func (s *Store[T]) Len() int {
	return s.entries.Size()
}
