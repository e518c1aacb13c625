package store

import (
	"testing"

	"bounded-cache-service/internal/store/policy"

	events "github.com/docker/go-events"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects evicted keys in order.
type recorder[K comparable, V any] struct {
	keys []K
}

func (r *recorder[K, V]) record(key K, _ V) {
	r.keys = append(r.keys, key)
}

func contents[K comparable, V any](s *Store[K, V]) map[K]V {
	out := make(map[K]V, len(s.items))
	for k, v := range s.items {
		out[k] = v
	}
	return out
}

func TestStore_LRUEviction(t *testing.T) {
	// Capacity 2, LRU Policy
	s := New[string, int](2, policy.NewLRU[string]())
	rec := &recorder[string, int]{}
	s.OnEvict(rec.record)

	// 1. Fill store
	s.Put("a", 1)
	s.Put("b", 2)

	// 2. Access a (making b the LRU)
	val, found := s.Get("a")
	assert.True(t, found)
	assert.Equal(t, 1, val)

	// 3. Add c -> Should evict b (LRU)
	s.Put("c", 3)

	assert.Equal(t, []string{"b"}, rec.keys)
	assert.Equal(t, map[string]int{"a": 1, "c": 3}, contents(s))
}

func TestStore_LRUEviction_OverwriteIsUse(t *testing.T) {
	s := New[string, int](2, policy.NewLRU[string]())
	rec := &recorder[string, int]{}
	s.OnEvict(rec.record)

	s.Put("a", 1)
	s.Put("b", 2)
	s.Put("a", 10)
	s.Put("c", 3)

	assert.Equal(t, []string{"b"}, rec.keys)
	assert.Equal(t, map[string]int{"a": 10, "c": 3}, contents(s))
}

func TestStore_FIFOEviction(t *testing.T) {
	// Capacity 2, FIFO Policy
	s := New[string, string](2, policy.NewFIFO[string]())
	rec := &recorder[string, string]{}
	s.OnEvict(rec.record)

	// 1. Add key1, key2
	s.Put("key1", "val1")
	s.Put("key2", "val2")

	// 2. Access key1 (FIFO usage ignores access)
	s.Get("key1")

	// 3. Add key3 -> Should evict key1 (First In)
	s.Put("key3", "val3")

	// 4. Verify key1 is gone
	_, found := s.Get("key1")
	assert.False(t, found, "key1 should be evicted (FIFO)")

	// 5. Verify key2 (newer) and key3 (newest) exist
	_, found = s.Get("key2")
	assert.True(t, found)
	_, found = s.Get("key3")
	assert.True(t, found)

	s.Put("key4", "val4")
	assert.Equal(t, []string{"key1", "key2"}, rec.keys)
}

func TestStore_LIFOEviction(t *testing.T) {
	s := New[string, int](3, policy.NewLIFO[string]())
	rec := &recorder[string, int]{}
	s.OnEvict(rec.record)

	s.Put("a", 1)
	s.Put("b", 2)
	s.Put("c", 3)

	// Overwriting a makes it the last in, reading b does not
	s.Put("a", 10)
	s.Get("b")
	assert.Equal(t, 3, s.Len(), "overwrite at capacity must not evict")

	s.Put("d", 4)
	assert.Equal(t, []string{"a"}, rec.keys)

	s.Put("e", 5)
	assert.Equal(t, []string{"a", "d"}, rec.keys)
	assert.Equal(t, map[string]int{"b": 2, "c": 3, "e": 5}, contents(s))
}

func TestStore_LFUEviction(t *testing.T) {
	s := New[string, int](2, policy.NewLFU[string]())
	rec := &recorder[string, int]{}
	s.OnEvict(rec.record)

	s.Put("a", 1)
	s.Put("b", 2)
	s.Get("a")
	s.Get("a")
	s.Put("c", 3)

	assert.Equal(t, []string{"b"}, rec.keys)
	assert.Equal(t, map[string]int{"a": 1, "c": 3}, contents(s))

	// c (freq 1) goes before a (freq 3)
	s.Put("d", 4)
	assert.Equal(t, []string{"b", "c"}, rec.keys)
}

func TestStore_LFUEviction_TieBreak(t *testing.T) {
	s := New[string, int](3, policy.NewLFU[string]())
	rec := &recorder[string, int]{}
	s.OnEvict(rec.record)

	s.Put("a", 1)
	s.Put("b", 2)
	s.Put("c", 3)

	// b then a reach frequency 2; c stays at 1
	s.Get("b")
	s.Get("a")
	s.Put("d", 4)
	assert.Equal(t, []string{"c"}, rec.keys)

	// d (freq 1) is evicted next, then b which was promoted before a
	s.Put("e", 5)
	s.Get("e")
	s.Put("f", 6)
	assert.Equal(t, []string{"c", "d", "b"}, rec.keys)
}

func TestStore_CapacityOne(t *testing.T) {
	for _, name := range policy.Names() {
		t.Run(name, func(t *testing.T) {
			p, err := policy.New[string](name)
			require.NoError(t, err)
			s := New[string, int](1, p)
			rec := &recorder[string, int]{}
			s.OnEvict(rec.record)

			s.Put("a", 1)
			s.Put("b", 2)
			s.Put("c", 3)

			assert.Equal(t, []string{"a", "b"}, rec.keys)
			assert.Equal(t, map[string]int{"c": 3}, contents(s))
		})
	}
}

func TestStore_EvictionSink(t *testing.T) {
	ch := events.NewChannel(4)
	defer ch.Close()

	s := New[string, int](1, policy.NewFIFO[string](),
		WithName("sessions"),
		WithSink(ch),
		WithLogger(hclog.NewNullLogger()),
	)

	s.Put("a", 1)
	s.Put("b", 2)

	require.Len(t, ch.C, 1)
	event := <-ch.C
	assert.Equal(t, Eviction{Store: "sessions", Policy: policy.FIFO, Key: "a", Value: 1}, event)
}

func TestStore_EvictionSinkClosed(t *testing.T) {
	ch := events.NewChannel(0)
	ch.Close()

	s := New[string, int](1, policy.NewFIFO[string](), WithSink(ch))
	rec := &recorder[string, int]{}
	s.OnEvict(rec.record)

	// A failing sink does not stop the put
	s.Put("a", 1)
	s.Put("b", 2)

	assert.Equal(t, []string{"a"}, rec.keys)
	assert.Equal(t, map[string]int{"b": 2}, contents(s))
}
