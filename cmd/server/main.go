package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"bounded-cache-service/internal/config"
	"bounded-cache-service/internal/core/service"
	cachegrpc "bounded-cache-service/internal/grpc"
	"bounded-cache-service/internal/notify"
	"bounded-cache-service/internal/observability"
	"bounded-cache-service/internal/store"
	"bounded-cache-service/internal/store/policy"

	events "github.com/docker/go-events"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stderr))
}

// realMain runs the server and returns the process exit code, so that
// deferred cleanup runs before the process exits.
func realMain(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configFile = fs.String("config", "", "Path to a TOML configuration file")
		_          = fs.String("http_addr", "", "HTTP Server address")
		_          = fs.String("grpc_addr", "", "gRPC Server address")
		_          = fs.String("policy", "", "Eviction policy (fifo, lifo, lru, lfu, random)")
		_          = fs.Int("capacity", 0, "Maximum number of cached entries")
		_          = fs.String("log_level", "", "Log level (trace, debug, info, warn, error)")
		_          = fs.String("redis_addr", "", "Redis address to publish evictions to")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if err := applyFlags(fs, &cfg); err != nil {
		fmt.Fprintf(stderr, "Invalid flag: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid config: %v\n", err)
		return 1
	}

	logger, logCloser := observability.NewLogger(observability.LogOptions{
		Name:       "cache",
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		JSON:       cfg.Log.JSON,
		MaxSize:    cfg.Log.MaxSize,
		MaxAge:     cfg.Log.MaxAge,
		MaxBackups: cfg.Log.MaxBackups,
	})
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		return 1
	}
	return 0
}

// applyFlags overrides file values with the flags set on the command line.
func applyFlags(fs *flag.FlagSet, cfg *config.Config) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.String()
		switch f.Name {
		case "http_addr":
			cfg.HTTPAddr = v
		case "grpc_addr":
			cfg.GRPCAddr = v
		case "policy":
			cfg.Cache.Policy = v
		case "capacity":
			cfg.Cache.Capacity, err = strconv.Atoi(v)
		case "log_level":
			cfg.Log.Level = v
		case "redis_addr":
			cfg.Redis.Addr = v
		}
	})
	return err
}

func run(ctx context.Context, cfg config.Config, logger hclog.Logger) error {
	p, err := policy.New[string](cfg.Cache.Policy)
	if err != nil {
		return err
	}

	// Eviction events fan out to metrics, logs and, optionally, redis.
	sinks := []events.Sink{observability.EvictionSink{}, observability.LogSink{Logger: logger.Named("evictions")}}
	if cfg.Redis.Addr != "" {
		client := notify.Connect(ctx, cfg.Redis.Addr, logger)
		sinks = append(sinks, events.NewQueue(notify.NewRedisSink(client, cfg.Redis.Channel)))
	}
	broadcaster := events.NewBroadcaster(sinks...)
	defer broadcaster.Close()

	kvStore := store.Synchronize(store.New[string, string](cfg.Cache.Capacity, p,
		store.WithName(cfg.Cache.Name),
		store.WithLogger(logger.Named("store")),
		store.WithSink(broadcaster),
	))
	svc := service.New(cfg.Cache.Name, kvStore)

	g, ctx := errgroup.WithContext(ctx)

	if cfg.HTTPAddr != "" {
		httpServer := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           newMux(svc, logger.Named("http")),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Info("HTTP server listening", "addr", cfg.HTTPAddr, "policy", p.Name(), "capacity", cfg.Cache.Capacity)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})
	}

	if cfg.GRPCAddr != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			return fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
		}
		grpcServer := grpc.NewServer()
		cachegrpc.Register(grpcServer, cachegrpc.New(svc))
		g.Go(func() error {
			logger.Info("gRPC server listening", "addr", cfg.GRPCAddr)
			return grpcServer.Serve(lis)
		})
		g.Go(func() error {
			<-ctx.Done()
			grpcServer.GracefulStop()
			return nil
		})
	}

	return g.Wait()
}
