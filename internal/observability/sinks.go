package observability

import (
	"bounded-cache-service/internal/store"

	events "github.com/docker/go-events"
	"github.com/hashicorp/go-hclog"
)

// EvictionSink counts store.Eviction events in CacheEvictionsTotal.
// Other events are ignored.
type EvictionSink struct{}

func (EvictionSink) Write(event events.Event) error {
	if e, ok := event.(store.Eviction); ok {
		CacheEvictionsTotal.WithLabelValues(e.Store, e.Policy).Inc()
	}
	return nil
}

func (EvictionSink) Close() error { return nil }

// LogSink logs every store.Eviction event.
type LogSink struct {
	Logger hclog.Logger
}

func (s LogSink) Write(event events.Event) error {
	if e, ok := event.(store.Eviction); ok {
		s.Logger.Info("discard", "store", e.Store, "policy", e.Policy, "key", e.Key)
	}
	return nil
}

func (s LogSink) Close() error { return nil }
