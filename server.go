package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// newRouter wires the exporter endpoints: /check runs a full evaluation
// pass and returns the report line, /health answers liveness.
func newRouter(cfg *Config, targets []Target) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/check", func(w http.ResponseWriter, req *http.Request) {
		agg := runCheck(req.Context(), cfg, targets)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if agg.Overall.rank() >= SeverityCritical.rank() {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		fmt.Fprintln(w, agg.Render())
	}).Methods(http.MethodGet)

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthResponse{
			Status:    "healthy",
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}).Methods(http.MethodGet)

	return r
}

// serveChecks blocks serving the exporter until the context is canceled.
func serveChecks(ctx context.Context, cfg *Config, targets []Target) error {
	srv := &http.Server{Addr: cfg.HTTP.Listen, Handler: newRouter(cfg, targets)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("serving checks over http", "addr", cfg.HTTP.Listen, "targets", len(targets))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
