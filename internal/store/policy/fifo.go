package policy

// FIFOPolicy implements the First-In-First-Out (FIFO) eviction strategy.
type FIFOPolicy[K comparable] struct {
	order keyOrder[K]
}

// NewFIFO creates a new FIFO policy instance.
func NewFIFO[K comparable]() *FIFOPolicy[K] {
	return &FIFOPolicy[K]{order: newKeyOrder[K]()}
}

func (p *FIFOPolicy[K]) OnAdd(key K) {
	p.order.pushBack(key)
}

// OnUpdate keeps the original insertion position; an overwrite does not
// make a key younger.
func (p *FIFOPolicy[K]) OnUpdate(key K) {}

func (p *FIFOPolicy[K]) OnAccess(key K) {}

// Evict removes the oldest key.
func (p *FIFOPolicy[K]) Evict() (K, bool) {
	return p.order.popFront()
}

func (p *FIFOPolicy[K]) Len() int { return p.order.len() }

func (p *FIFOPolicy[K]) Keys() []K { return p.order.keys() }

func (p *FIFOPolicy[K]) Name() string { return FIFO }
