package config

import (
	"fmt"

	"bounded-cache-service/internal/store/policy"

	"github.com/BurntSushi/toml"
	"github.com/containerd/errdefs"
)

// Config holds the server settings. Zero values are filled by Default.
type Config struct {
	HTTPAddr string `toml:"http_addr"`
	GRPCAddr string `toml:"grpc_addr"`

	Cache CacheConfig `toml:"cache"`
	Log   LogConfig   `toml:"log"`
	Redis RedisConfig `toml:"redis"`
}

type CacheConfig struct {
	Name     string `toml:"name"`
	Policy   string `toml:"policy"`
	Capacity int    `toml:"capacity"`
}

type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	JSON       bool   `toml:"json"`
	MaxSize    int    `toml:"max_size"`
	MaxAge     int    `toml:"max_age"`
	MaxBackups int    `toml:"max_backups"`
}

// RedisConfig enables publishing evictions when Addr is set. An empty
// Channel selects the publisher's default channel.
type RedisConfig struct {
	Addr    string `toml:"addr"`
	Channel string `toml:"channel"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		HTTPAddr: ":8080",
		GRPCAddr: ":50051",
		Cache: CacheConfig{
			Name:     "default",
			Policy:   policy.LRU,
			Capacity: 4,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxAge:     7,
			MaxBackups: 1,
		},
	}
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("load config %s: unknown keys %v: %w", path, undecoded, errdefs.ErrInvalidArgument)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.HTTPAddr == "" && c.GRPCAddr == "" {
		return fmt.Errorf("at least one of http_addr and grpc_addr is required: %w", errdefs.ErrInvalidArgument)
	}
	if c.Cache.Capacity < 0 {
		return fmt.Errorf("cache capacity must not be negative, got %d: %w", c.Cache.Capacity, errdefs.ErrInvalidArgument)
	}
	if _, err := policy.New[string](c.Cache.Policy); err != nil {
		return err
	}
	return nil
}
