package workers

import (
	"context"
	"log/slog"
	"os"
	"queue-bot/contract"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthMonitoringWorker periodically logs the queue depth and the process footprint.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	dispatcher     contract.IDispatcher
	metricInterval time.Duration
}

var _ contract.Worker = (*HealthMonitoringWorker)(nil)

func NewHealthMonitoringWorker(log *slog.Logger, dispatcher contract.IDispatcher, metricInterval time.Duration) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{log: log, dispatcher: dispatcher, metricInterval: metricInterval}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			w.report(p)
		}
	}
}

func (w *HealthMonitoringWorker) report(p *process.Process) {
	attrs := []any{"queue_length", w.dispatcher.Len()}

	memInfo, err := p.MemoryInfo()
	if err != nil {
		w.log.Error("Error while finding process ram usage", "err", err)
	} else {
		attrs = append(attrs, "rss_bytes", memInfo.RSS)
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		w.log.Error("Error while finding process cpu usage", "err", err)
	} else {
		attrs = append(attrs, "cpu_percent", cpu)
	}
	w.log.Info("Health report", attrs...)
}
