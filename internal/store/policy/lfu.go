package policy

import (
	"container/list"
	"maps"
	"slices"
)

type lfuEntry[K comparable] struct {
	key       K
	frequency int
}

// LFUPolicy implements the Least Frequently Used (LFU) eviction strategy.
//
// Keys are grouped in buckets by access frequency. Within a bucket keys are
// kept in the order they reached that frequency, so ties are broken by the
// least recent promotion. All operations are O(1).
//
// The tracked minimum frequency is only reset by OnAdd. When Evict empties
// the minimum bucket the minimum goes stale, and a further Evict without an
// intervening OnAdd selects nothing.
type LFUPolicy[K comparable] struct {
	items        map[K]*list.Element
	buckets      map[int]*list.List
	minFrequency int
}

// NewLFU creates a new LFU policy instance.
func NewLFU[K comparable]() *LFUPolicy[K] {
	return &LFUPolicy[K]{
		items:   make(map[K]*list.Element),
		buckets: make(map[int]*list.List),
	}
}

func (p *LFUPolicy[K]) OnAdd(key K) {
	if _, ok := p.items[key]; ok {
		p.increment(key)
		return
	}
	p.items[key] = p.bucket(1).PushBack(&lfuEntry[K]{key: key, frequency: 1})
	p.minFrequency = 1
}

func (p *LFUPolicy[K]) OnUpdate(key K) {
	p.increment(key)
}

func (p *LFUPolicy[K]) OnAccess(key K) {
	p.increment(key)
}

func (p *LFUPolicy[K]) increment(key K) {
	elem, ok := p.items[key]
	if !ok {
		return
	}
	entry := elem.Value.(*lfuEntry[K])
	old := p.buckets[entry.frequency]
	old.Remove(elem)
	if old.Len() == 0 {
		delete(p.buckets, entry.frequency)
		if entry.frequency == p.minFrequency {
			p.minFrequency++
		}
	}
	entry.frequency++
	p.items[key] = p.bucket(entry.frequency).PushBack(entry)
}

// Evict removes the oldest key of the minimum frequency bucket.
func (p *LFUPolicy[K]) Evict() (K, bool) {
	var zero K
	b, ok := p.buckets[p.minFrequency]
	if !ok || b.Len() == 0 {
		return zero, false
	}
	entry := b.Remove(b.Front()).(*lfuEntry[K])
	if b.Len() == 0 {
		delete(p.buckets, p.minFrequency)
	}
	delete(p.items, entry.key)
	return entry.key, true
}

// Frequency returns the access count recorded for key.
func (p *LFUPolicy[K]) Frequency(key K) (int, bool) {
	elem, ok := p.items[key]
	if !ok {
		return 0, false
	}
	return elem.Value.(*lfuEntry[K]).frequency, true
}

// MinFrequency returns the tracked minimum frequency, which may be stale.
func (p *LFUPolicy[K]) MinFrequency() int {
	return p.minFrequency
}

func (p *LFUPolicy[K]) Len() int { return len(p.items) }

// Keys returns keys by ascending frequency, oldest promotion first.
func (p *LFUPolicy[K]) Keys() []K {
	keys := make([]K, 0, len(p.items))
	for _, freq := range slices.Sorted(maps.Keys(p.buckets)) {
		for e := p.buckets[freq].Front(); e != nil; e = e.Next() {
			keys = append(keys, e.Value.(*lfuEntry[K]).key)
		}
	}
	return keys
}

func (p *LFUPolicy[K]) Name() string { return LFU }

func (p *LFUPolicy[K]) bucket(frequency int) *list.List {
	b, ok := p.buckets[frequency]
	if !ok {
		b = list.New()
		p.buckets[frequency] = b
	}
	return b
}
