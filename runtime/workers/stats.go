package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/LdDl/micro-traffic-sim-grpc/contract"
	"github.com/LdDl/micro-traffic-sim-grpc/observability"
	"github.com/shirou/gopsutil/process"
)

// StatsWorker periodically logs gateway counters together with the
// process' own CPU and memory figures.
type StatsWorker struct {
	log        *slog.Logger
	storage    contract.ISessionStorage
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewStatsWorker(log *slog.Logger, storage contract.ISessionStorage,
	monitoring *observability.MonitoringManager, interval time.Duration) *StatsWorker {
	return &StatsWorker{
		log:        log,
		storage:    storage,
		monitoring: monitoring,
		interval:   interval,
	}
}

func (w *StatsWorker) Run(ctx context.Context) error {
	w.log.Info("Starting gateway stats worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			stats := w.monitoring.Snapshot(w.storage.Len())
			w.log.Info("Gateway stats",
				"sessions_live", stats.SessionsLive,
				"sessions_created", stats.SessionsCreated,
				"sessions_purged", stats.SessionsPurged,
				"steps_executed", stats.StepsExecuted,
				"cells_pushed", stats.CellsPushed,
				"ram_bytes", rss,
				"cpu_percent", cpu)
		}
	}
}

// getSelfStats retrieves memory and CPU figures for the given process.
func getSelfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
