package store

import (
	"fmt"
	"reflect"

	"bounded-cache-service/internal/store/policy"

	"github.com/hashicorp/go-hclog"
)

// Cache is the capability shared by every bounded store flavour.
type Cache[K comparable, V any] interface {
	Put(key K, value V)
	Get(key K) (V, bool)
	Len() int
	Cap() int
	Keys() []K
	Policy() string
}

var (
	_ Cache[string, string] = (*Store[string, string])(nil)
	_ Cache[string, string] = (*Synchronized[string, string])(nil)
)

// Store is a bounded in-memory key-value store. When a new key would push
// it past its capacity, the eviction policy picks one entry to drop first.
//
// A nil key or a nil value is the absent sentinel: Put ignores it and Get
// reports a miss. Values of non-nillable types are never absent.
//
// Store is not safe for concurrent use; see Synchronized.
type Store[K comparable, V any] struct {
	capacity int
	items    map[K]V
	policy   policy.EvictionPolicy[K]
	onEvict  []EvictFunc[K, V]
	opts     options
}

// New creates an empty Store holding at most capacity entries.
// It panics if capacity is negative or p is nil.
func New[K comparable, V any](capacity int, p policy.EvictionPolicy[K], opts ...Option) *Store[K, V] {
	if capacity < 0 {
		panic(fmt.Sprintf("store: negative capacity %d", capacity))
	}
	if p == nil {
		panic("store: nil eviction policy")
	}
	o := options{
		name:   "default",
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[K, V]{
		capacity: capacity,
		items:    make(map[K]V, capacity),
		policy:   p,
		opts:     o,
	}
}

// OnEvict registers fn to be called, in registration order, with every
// entry the store evicts.
func (s *Store[K, V]) OnEvict(fn EvictFunc[K, V]) {
	if fn != nil {
		s.onEvict = append(s.onEvict, fn)
	}
}

// Put inserts or overwrites the value for key.
func (s *Store[K, V]) Put(key K, value V) {
	if isAbsent(key) || isAbsent(value) {
		return
	}

	if _, found := s.items[key]; found {
		s.items[key] = value
		s.policy.OnUpdate(key)
		return
	}

	if len(s.items) >= s.capacity && !s.evict() {
		s.opts.logger.Debug("no room for new key", "store", s.opts.name, "key", key, "capacity", s.capacity)
		return
	}

	s.items[key] = value
	s.policy.OnAdd(key)
}

// Get returns the value for key and whether it was found.
func (s *Store[K, V]) Get(key K) (V, bool) {
	var zero V
	if isAbsent(key) {
		return zero, false
	}
	value, found := s.items[key]
	if !found {
		return zero, false
	}
	s.policy.OnAccess(key)
	return value, true
}

// Len returns the number of stored entries.
func (s *Store[K, V]) Len() int {
	return len(s.items)
}

// Cap returns the maximum number of entries.
func (s *Store[K, V]) Cap() int {
	return s.capacity
}

// Keys returns the stored keys in eviction order, next victim first.
func (s *Store[K, V]) Keys() []K {
	return s.policy.Keys()
}

// Policy returns the name of the eviction policy.
func (s *Store[K, V]) Policy() string {
	return s.policy.Name()
}

func (s *Store[K, V]) evict() bool {
	victim, ok := s.policy.Evict()
	if !ok {
		return false
	}
	value := s.items[victim]
	delete(s.items, victim)

	s.opts.logger.Debug("discard", "store", s.opts.name, "policy", s.policy.Name(), "key", victim)
	for _, fn := range s.onEvict {
		fn(victim, value)
	}
	if s.opts.sink != nil {
		event := Eviction{Store: s.opts.name, Policy: s.policy.Name(), Key: victim, Value: value}
		if err := s.opts.sink.Write(event); err != nil {
			s.opts.logger.Warn("failed to deliver eviction event", "store", s.opts.name, "key", victim, "error", err)
		}
	}
	return true
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
