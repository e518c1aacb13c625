package store

import "sync"

// Synchronized serializes every call to a Store behind a single mutex.
// Reads take the exclusive lock too, since Get updates policy bookkeeping.
type Synchronized[K comparable, V any] struct {
	mu    sync.Mutex
	store *Store[K, V]
}

// Synchronize wraps s. The caller must stop using s directly.
func Synchronize[K comparable, V any](s *Store[K, V]) *Synchronized[K, V] {
	return &Synchronized[K, V]{store: s}
}

func (s *Synchronized[K, V]) Put(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Put(key, value)
}

func (s *Synchronized[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(key)
}

func (s *Synchronized[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Len()
}

func (s *Synchronized[K, V]) Cap() int {
	return s.store.Cap()
}

func (s *Synchronized[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Keys()
}

func (s *Synchronized[K, V]) Policy() string {
	return s.store.Policy()
}
