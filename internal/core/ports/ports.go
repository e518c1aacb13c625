package ports

import (
	"context"

	"bounded-cache-service/internal/pagination"
)

// Stats describes the cache behind the service.
type Stats struct {
	Name     string `json:"name"`
	Policy   string `json:"policy"`
	Size     int    `json:"size"`
	Capacity int    `json:"capacity"`
}

// CacheService maps incoming requests to business logic
type CacheService interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Keys(ctx context.Context, page, pageSize int) (pagination.HyperPage[string], error)
	Stats(ctx context.Context) (Stats, error)
}

// Storage defines the interface for the bounded key-value store
type Storage interface {
	Get(key string) (string, bool)
	Put(key, value string)
	Len() int
	Cap() int
	Keys() []string
	Policy() string
}
