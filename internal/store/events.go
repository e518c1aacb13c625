package store

// Eviction is the event written to the store's sink when an entry is
// dropped to make room for a new key.
type Eviction struct {
	Store  string `json:"store"`
	Policy string `json:"policy"`
	Key    any    `json:"key"`
	Value  any    `json:"value"`
}

// EvictFunc is notified with the evicted entry.
type EvictFunc[K comparable, V any] func(key K, value V)
