// Package notify publishes cache evictions to external subscribers.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"bounded-cache-service/internal/store"

	events "github.com/docker/go-events"
	"github.com/hashicorp/go-hclog"
	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the pub/sub channel evictions are published on.
const DefaultChannel = "cache:evictions"

// Publisher is the subset of the redis client used by RedisSink.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisSink is an events.Sink publishing every store.Eviction as JSON on a
// redis channel. Writes block for at most the publish timeout; wrap the sink
// in events.NewQueue to keep them off the store's Put path.
type RedisSink struct {
	client  Publisher
	channel string
	timeout time.Duration
}

// NewRedisSink creates a sink publishing on channel through client.
func NewRedisSink(client Publisher, channel string) *RedisSink {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisSink{
		client:  client,
		channel: channel,
		timeout: 2 * time.Second,
	}
}

func (s *RedisSink) Write(event events.Event) error {
	e, ok := event.(store.Eviction)
	if !ok {
		return nil
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode eviction of %v: %w", e.Key, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish eviction of %v: %w", e.Key, err)
	}
	return nil
}

// Close closes the underlying client when it owns one.
func (s *RedisSink) Close() error {
	if c, ok := s.client.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Connect creates a redis client for addr and checks the connection.
// A failed ping is logged, not fatal: go-redis reconnects on its own.
func Connect(ctx context.Context, addr string, logger hclog.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis client not connected to the server", "addr", addr, "error", err)
	} else {
		logger.Info("redis client connected to the server", "addr", addr)
	}
	return client
}
