package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"time"

	cachegrpc "bounded-cache-service/internal/grpc"

	"github.com/hashicorp/go-hclog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var logger = hclog.New(&hclog.LoggerOptions{Name: "verify"})

func main() {
	// Start a previously built server with a tiny LRU cache
	cmd := exec.Command("./server", "-policy", "lru", "-capacity", "2", "-http_addr", ":8090", "-grpc_addr", ":50055")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := verify(cmd, "http://localhost:8090", "localhost:50055", 2*time.Second); err != nil {
		logger.Error("verification failed", "error", err)
		os.Exit(1)
	}
}

// verify starts cmd, checks the HTTP and gRPC APIs against it and always
// stops the process before returning.
func verify(cmd *exec.Cmd, httpBase, grpcAddr string, startup time.Duration) error {
	logger.Info("starting server", "path", cmd.Path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	defer func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	}()

	// Wait for startup
	time.Sleep(startup)

	// 1. HTTP API
	logger.Info("testing HTTP API")
	for _, kv := range [][2]string{{"a", "1"}, {"b", "2"}} {
		if err := httpGet(fmt.Sprintf("%s/set?key=%s&value=%s", httpBase, kv[0], kv[1])); err != nil {
			return fmt.Errorf("HTTP set %s: %w", kv[0], err)
		}
	}
	val, err := httpGetBody(httpBase + "/get?key=a")
	if err != nil {
		return fmt.Errorf("HTTP get: %w", err)
	}
	if val != "1" {
		return fmt.Errorf("HTTP get mismatch: want %q, got %q", "1", val)
	}
	logger.Info("HTTP API verified")

	// 2. gRPC API, evicting b (least recently used)
	logger.Info("testing gRPC API")
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("connect to gRPC: %w", err)
	}
	defer conn.Close()

	client := cachegrpc.NewClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Set(ctx, "c", "3"); err != nil {
		return fmt.Errorf("gRPC set: %w", err)
	}
	if _, found, err := client.Get(ctx, "b"); err != nil || found {
		return fmt.Errorf("gRPC get: b should have been evicted (found=%v): %v", found, err)
	}
	keys, _, err := client.Keys(ctx, 1, 10)
	if err != nil {
		return fmt.Errorf("gRPC keys: %w", err)
	}
	logger.Info("gRPC API verified", "keys", keys)

	// 3. Cross-protocol: HTTP reads what gRPC wrote
	val, err = httpGetBody(httpBase + "/get?key=c")
	if err != nil {
		return fmt.Errorf("HTTP read of gRPC data: %w", err)
	}
	if val != "3" {
		return fmt.Errorf("cross-protocol mismatch: want %q, got %q", "3", val)
	}
	logger.Info("cross-protocol access verified")
	return nil
}

func httpGet(url string) error {
	_, err := httpGetBody(url)
	return err
}

func httpGetBody(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status code %d", resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
