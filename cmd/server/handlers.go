package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/pprof"
	"strconv"

	"bounded-cache-service/internal/core/ports"

	"github.com/containerd/errdefs"
	"github.com/containerd/errdefs/pkg/errhttp"
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func newMux(svc ports.CacheService, logger hclog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("key")
		val := r.URL.Query().Get("value")

		if err := svc.Set(r.Context(), key, val); err != nil {
			writeError(w, logger, err)
			return
		}
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
		val, err := svc.Get(r.Context(), r.URL.Query().Get("key"))
		if err != nil {
			writeError(w, logger, err)
			return
		}
		w.Write([]byte(val))
	})

	mux.HandleFunc("/keys", func(w http.ResponseWriter, r *http.Request) {
		page, err := intParam(r, "page", 1)
		if err != nil {
			writeError(w, logger, err)
			return
		}
		pageSize, err := intParam(r, "page_size", 10)
		if err != nil {
			writeError(w, logger, err)
			return
		}

		hp, err := svc.Keys(r.Context(), page, pageSize)
		if err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, logger, hp)
	})

	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, logger, stats)
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return mux
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q: %w", name, raw, errdefs.ErrInvalidArgument)
	}
	return v, nil
}

func writeError(w http.ResponseWriter, logger hclog.Logger, err error) {
	code := errhttp.ToHTTP(err)
	if code >= http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	}
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, logger hclog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}
