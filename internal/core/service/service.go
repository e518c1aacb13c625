package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"bounded-cache-service/internal/core/ports"
	"bounded-cache-service/internal/observability"
	"bounded-cache-service/internal/pagination"

	"github.com/containerd/errdefs"
)

// ensure implementation
var _ ports.CacheService = (*ServiceImpl)(nil)

type ServiceImpl struct {
	name  string
	store ports.Storage
}

// New creates the service. The store must be safe for concurrent use when
// the service is shared between request handlers.
func New(name string, store ports.Storage) *ServiceImpl {
	return &ServiceImpl{
		name:  name,
		store: store,
	}
}

func (s *ServiceImpl) Get(ctx context.Context, key string) (string, error) {
	defer observe("get", time.Now())

	if key == "" {
		observability.CacheOperationsTotal.WithLabelValues("get", "error").Inc()
		return "", fmt.Errorf("missing key: %w", errdefs.ErrInvalidArgument)
	}

	val, found := s.store.Get(key)
	if !found {
		observability.CacheMissesTotal.Inc()
		observability.CacheOperationsTotal.WithLabelValues("get", "miss").Inc()
		return "", fmt.Errorf("key %q: %w", key, errdefs.ErrNotFound)
	}
	observability.CacheHitsTotal.Inc()
	observability.CacheOperationsTotal.WithLabelValues("get", "hit").Inc()
	return val, nil
}

func (s *ServiceImpl) Set(ctx context.Context, key, value string) error {
	defer observe("set", time.Now())

	if key == "" {
		observability.CacheOperationsTotal.WithLabelValues("set", "error").Inc()
		return fmt.Errorf("missing key: %w", errdefs.ErrInvalidArgument)
	}

	s.store.Put(key, value)
	observability.CacheOperationsTotal.WithLabelValues("set", "success").Inc()
	observability.CacheEntries.WithLabelValues(s.name).Set(float64(s.store.Len()))
	return nil
}

// Keys pages through the stored keys in sorted order.
func (s *ServiceImpl) Keys(ctx context.Context, page, pageSize int) (pagination.HyperPage[string], error) {
	defer observe("keys", time.Now())

	keys := s.store.Keys()
	slices.Sort(keys)

	hp, err := pagination.Hyper[string](pagination.Slice[string](keys), page, pageSize)
	if err != nil {
		observability.CacheOperationsTotal.WithLabelValues("keys", "error").Inc()
		return hp, err
	}
	observability.CacheOperationsTotal.WithLabelValues("keys", "success").Inc()
	return hp, nil
}

func (s *ServiceImpl) Stats(ctx context.Context) (ports.Stats, error) {
	return ports.Stats{
		Name:     s.name,
		Policy:   s.store.Policy(),
		Size:     s.store.Len(),
		Capacity: s.store.Cap(),
	}, nil
}

func observe(op string, start time.Time) {
	observability.CacheDurationSeconds.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
