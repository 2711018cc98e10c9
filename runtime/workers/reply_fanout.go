package workers

import (
	"context"
	"log/slog"
	"queue-bot/contract"
	"queue-bot/domain"
	"sync"
	"time"
)

// ReplyFanout delivers every outbound reply to all registered sinks.
//
// Delivery is best-effort: each sink gets its own timeout and a failing
// sink is logged, never retried. Sinks are called concurrently for one
// reply, and replies are delivered in the order they were received.
type ReplyFanout struct {
	log         *slog.Logger
	outbound    chan domain.Outbound
	sinks       []contract.ReplySink
	sinkTimeout time.Duration
}

var _ contract.Worker = (*ReplyFanout)(nil)

func NewReplyFanout(log *slog.Logger, outbound chan domain.Outbound, sinkTimeout time.Duration, sinks ...contract.ReplySink) *ReplyFanout {
	return &ReplyFanout{log: log, outbound: outbound, sinkTimeout: sinkTimeout, sinks: sinks}
}

func (w *ReplyFanout) Run(ctx context.Context) error {
	for {
		select {
		case out, ok := <-w.outbound:
			if !ok {
				w.log.Debug("Outbound channel is closed")
				return nil
			}
			w.Fanout(ctx, out)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping reply fanout")
			return nil
		}
	}
}

// Fanout hands the reply to each sink and waits for all of them or their timeout.
func (w *ReplyFanout) Fanout(ctx context.Context, out domain.Outbound) {
	var wg sync.WaitGroup
	for _, sink := range w.sinks {
		wg.Add(1)
		go func(sink contract.ReplySink) {
			defer wg.Done()
			sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
			defer cancel()
			if err := sink.Consume(sinkCtx, out); err != nil {
				w.log.Warn("Sink failed to consume reply", "id", out.ID, "error", err)
			}
		}(sink)
	}
	wg.Wait()
}
