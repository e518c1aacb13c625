package policy

// LIFOPolicy implements the Last-In-First-Out (LIFO) eviction strategy.
//
// Overwriting a key through a put makes it the most recent insertion again.
// Reads never reorder keys: unlike LRU, a get is not an insertion.
type LIFOPolicy[K comparable] struct {
	order keyOrder[K]
}

// NewLIFO creates a new LIFO policy instance.
func NewLIFO[K comparable]() *LIFOPolicy[K] {
	return &LIFOPolicy[K]{order: newKeyOrder[K]()}
}

func (p *LIFOPolicy[K]) OnAdd(key K) {
	p.order.pushBack(key)
}

func (p *LIFOPolicy[K]) OnUpdate(key K) {
	p.order.moveToBack(key)
}

func (p *LIFOPolicy[K]) OnAccess(key K) {}

// Evict removes the most recently inserted key.
func (p *LIFOPolicy[K]) Evict() (K, bool) {
	return p.order.popBack()
}

func (p *LIFOPolicy[K]) Len() int { return p.order.len() }

func (p *LIFOPolicy[K]) Keys() []K { return p.order.reversed() }

func (p *LIFOPolicy[K]) Name() string { return LIFO }
