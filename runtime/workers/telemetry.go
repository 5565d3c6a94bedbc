package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"chat-gateway/contract"
	"chat-gateway/observability"
)

// TelemetryWorker logs gateway gauges (connections, online identities,
// dispatch counters) together with process RSS/CPU every metric interval.
type TelemetryWorker struct {
	log      *slog.Logger
	reg      contract.IRegistry
	stats    *observability.DispatchStats
	interval time.Duration
}

var _ contract.Worker = (*TelemetryWorker)(nil)

func NewTelemetryWorker(log *slog.Logger, reg contract.IRegistry,
	stats *observability.DispatchStats, interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, reg: reg, stats: stats, interval: interval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping telemetry")
			return ctx.Err()
		case <-ticker.C:
			snapshot := w.stats.Snapshot()
			rss, cpu := selfStats(proc)
			w.log.Info("gateway telemetry",
				"connections", w.reg.Len(),
				"online_identities", w.reg.OnlineCount(),
				"pushes_enqueued", snapshot.Enqueued,
				"pushes_delivered", snapshot.Delivered,
				"pushes_dropped", snapshot.Dropped,
				"rss_bytes", rss,
				"cpu_percent", cpu,
			)
		}
	}
}

func selfStats(p *process.Process) (uint64, float64) {
	var rss uint64
	if memInfo, err := p.MemoryInfo(); err == nil {
		rss = memInfo.RSS
	}
	cpu, _ := p.CPUPercent()
	return rss, cpu
}
