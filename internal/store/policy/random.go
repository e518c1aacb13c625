package policy

import (
	"math/rand"
	"time"
)

// RandomPolicy implements a random eviction strategy.
type RandomPolicy[K comparable] struct {
	items []K
	index map[K]int
	rnd   *rand.Rand
}

// NewRandom creates a new Random policy instance with a time-based seed.
func NewRandom[K comparable]() *RandomPolicy[K] {
	return newRandomWithRand[K](rand.New(rand.NewSource(time.Now().UnixNano())))
}

// newRandomWithRand creates a new Random policy with a specific random source (for testing).
func newRandomWithRand[K comparable](r *rand.Rand) *RandomPolicy[K] {
	return &RandomPolicy[K]{
		index: make(map[K]int),
		rnd:   r,
	}
}

// OnAdd adds a new key to the candidate pool.
func (p *RandomPolicy[K]) OnAdd(key K) {
	if _, ok := p.index[key]; ok {
		return
	}
	p.index[key] = len(p.items)
	p.items = append(p.items, key)
}

// OnUpdate acts as a no-op for the Random policy.
// Access patterns do not influence eviction probability in this strategy.
func (p *RandomPolicy[K]) OnUpdate(key K) {}

func (p *RandomPolicy[K]) OnAccess(key K) {}

// Evict chooses a random key from the current items using the uniform
// distribution of the local source, and swap-removes it from the pool.
func (p *RandomPolicy[K]) Evict() (K, bool) {
	if len(p.items) == 0 {
		var zero K
		return zero, false
	}
	i := p.rnd.Intn(len(p.items))
	victim := p.items[i]

	last := len(p.items) - 1
	p.items[i] = p.items[last]
	p.index[p.items[i]] = i
	p.items = p.items[:last]
	delete(p.index, victim)
	return victim, true
}

func (p *RandomPolicy[K]) Len() int { return len(p.items) }

// Keys returns the candidate pool. The order carries no meaning.
func (p *RandomPolicy[K]) Keys() []K {
	return append([]K(nil), p.items...)
}

func (p *RandomPolicy[K]) Name() string { return Random }
