package policy

// LRUPolicy implements the Least Recently Used (LRU) eviction strategy.
// Both reads and overwrites count as a use.
type LRUPolicy[K comparable] struct {
	// front is the least recently used key
	order keyOrder[K]
}

// NewLRU creates a new LRU policy instance.
func NewLRU[K comparable]() *LRUPolicy[K] {
	return &LRUPolicy[K]{order: newKeyOrder[K]()}
}

func (p *LRUPolicy[K]) OnAdd(key K) {
	p.order.pushBack(key)
}

func (p *LRUPolicy[K]) OnUpdate(key K) {
	p.order.moveToBack(key)
}

func (p *LRUPolicy[K]) OnAccess(key K) {
	p.order.moveToBack(key)
}

func (p *LRUPolicy[K]) Evict() (K, bool) {
	return p.order.popFront()
}

func (p *LRUPolicy[K]) Len() int { return p.order.len() }

func (p *LRUPolicy[K]) Keys() []K { return p.order.keys() }

func (p *LRUPolicy[K]) Name() string { return LRU }
