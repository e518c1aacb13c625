package policy

import (
	"fmt"
	"strings"

	"github.com/containerd/errdefs"
)

// Policy names accepted by New.
const (
	FIFO   = "fifo"
	LIFO   = "lifo"
	LRU    = "lru"
	LFU    = "lfu"
	Random = "random"
)

// EvictionPolicy defines the interface for eviction algorithms.
// Implementations allow the store to decouple capacity management from storage logic.
//
// A policy holds exactly one bookkeeping record per key it was told about
// through OnAdd, until that key is returned by Evict. Policies are not safe
// for concurrent use; the owning store serializes calls.
type EvictionPolicy[K comparable] interface {
	// OnAdd is called when a new key is inserted into the store.
	OnAdd(key K)

	// OnUpdate is called when an existing key is overwritten by a put.
	OnUpdate(key K)

	// OnAccess is called when an existing key is read by a get.
	OnAccess(key K)

	// Evict selects the next victim, forgets it and returns it.
	// It returns false if no victim can be selected.
	Evict() (K, bool)

	// Len returns the number of keys tracked by the policy.
	Len() int

	// Keys returns the tracked keys in eviction order, next victim first.
	Keys() []K

	// Name returns the policy name as accepted by New.
	Name() string
}

// Names lists the policies New knows how to build.
func Names() []string {
	return []string{FIFO, LIFO, LRU, LFU, Random}
}

// New builds the policy registered under name. Names are case-insensitive.
func New[K comparable](name string) (EvictionPolicy[K], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FIFO:
		return NewFIFO[K](), nil
	case LIFO:
		return NewLIFO[K](), nil
	case LRU:
		return NewLRU[K](), nil
	case LFU:
		return NewLFU[K](), nil
	case Random:
		return NewRandom[K](), nil
	default:
		return nil, fmt.Errorf("unknown eviction policy %q (want one of %s): %w",
			name, strings.Join(Names(), ", "), errdefs.ErrInvalidArgument)
	}
}
