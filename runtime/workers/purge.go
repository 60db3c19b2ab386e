package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/LdDl/micro-traffic-sim-grpc/contract"
	"github.com/LdDl/micro-traffic-sim-grpc/observability"
)

// PurgeWorker sweeps the session registry on a fixed interval and evicts
// sessions whose sliding TTL ran out. The sweep takes the same registry
// lock handlers use, so an in-flight operation is never interrupted: a
// later message for a purged session simply resolves to NotFound.
type PurgeWorker struct {
	log        *slog.Logger
	storage    contract.ISessionStorage
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewPurgeWorker(log *slog.Logger, storage contract.ISessionStorage,
	monitoring *observability.MonitoringManager, interval time.Duration) *PurgeWorker {
	return &PurgeWorker{
		log:        log,
		storage:    storage,
		monitoring: monitoring,
		interval:   interval,
	}
}

func (w *PurgeWorker) Run(ctx context.Context) error {
	w.log.Info("Starting sessions purge worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if purged := w.storage.PurgeExpired(); purged > 0 {
				w.monitoring.AddSessionsPurged(uint64(purged))
				w.log.Info("Expired sessions purged", "count", purged, "live", w.storage.Len())
			}
		}
	}
}
