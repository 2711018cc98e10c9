package workers

import (
	"context"
	"log/slog"
	"queue-bot/contract"
	"reflect"
	"time"
)

type NamedChannel struct {
	Name    string
	Channel any
}

// ChannelCapacityWorker periodically reports the length and capacity of the runtime channels.
// Reading len(channel) and cap(channel) is non-blocking, so this won't interfere
// with the command workers or the fan-out.
type ChannelCapacityWorker struct {
	log                  *slog.Logger
	channels             []NamedChannel
	metricInterval       time.Duration
	lowCapacityThreshold int
}

var _ contract.Worker = (*ChannelCapacityWorker)(nil)

func NewChannelCapacityWorker(log *slog.Logger, channels []NamedChannel,
	metricInterval time.Duration, lowCapacityThreshold int) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{
		log:                  log,
		channels:             channels,
		metricInterval:       metricInterval,
		lowCapacityThreshold: lowCapacityThreshold,
	}
}

func (w *ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping channel capacity report")
			return nil
		case <-ticker.C:
			for _, nc := range w.channels {
				w.report(nc)
			}
		}
	}
}

// report returns the capacity left, -1 when nc does not hold a channel.
func (w *ChannelCapacityWorker) report(nc NamedChannel) int {
	v := reflect.ValueOf(nc.Channel)
	if v.Kind() != reflect.Chan {
		w.log.Error("Provided object is not a channel", "name", nc.Name)
		return -1
	}
	capacity, length := v.Cap(), v.Len()
	w.log.Debug("Channel usage", "channel", nc.Name, "length", length, "capacity", capacity)
	if capacity <= 0 {
		// Unbuffered
		return 0
	}
	capacityLeft := capacity - length
	if capacityLeft <= w.lowCapacityThreshold {
		w.log.Warn("Channel almost full", "channel", nc.Name, "capacity_left", capacityLeft)
	}
	return capacityLeft
}
