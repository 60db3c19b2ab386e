package internal

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/LdDl/micro-traffic-sim-grpc/contract"
	"github.com/LdDl/micro-traffic-sim-grpc/observability"
)

// StartDebugServer exposes gateway counters as JSON on /api/monitoring.
// It runs in its own goroutine and is best-effort: a failure to listen is
// logged, never fatal for the gateway itself.
func StartDebugServer(log *slog.Logger, port int, storage contract.ISessionStorage,
	monitoring *observability.MonitoringManager) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/monitoring", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		stats := monitoring.Snapshot(storage.Len())
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	go func() {
		addr := fmt.Sprintf(":%d", port)
		log.Info("Debug server listening", "addr", addr, "endpoint", "/api/monitoring")
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error("Debug server stopped", "error", err)
		}
	}()
}
