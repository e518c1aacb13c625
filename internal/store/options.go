package store

import (
	events "github.com/docker/go-events"
	"github.com/hashicorp/go-hclog"
)

type options struct {
	name   string
	logger hclog.Logger
	sink   events.Sink
}

// Option configures a Store.
type Option func(*options)

// WithName labels the store in logs and eviction events.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger used to report evictions at debug level.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSink makes the store write an Eviction event to sink for every
// evicted entry. The write happens synchronously inside Put.
func WithSink(sink events.Sink) Option {
	return func(o *options) {
		o.sink = sink
	}
}
