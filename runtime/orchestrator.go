// Package runtime handles message ingestion, reply propagation and worker supervision.
// It orchestrates the system without containing business logic or queue rules.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"queue-bot/contract"
	"queue-bot/domain"
	"queue-bot/errors"
	"queue-bot/runtime/workers"
	"sync"
	"time"
)

type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	numWorkers     int
	dispatcher     contract.IDispatcher
	supervisor     contract.ISupervisor
	sinks          []contract.ReplySink
	inbound        chan domain.Message
	outbound       chan domain.Outbound
	closed         bool
	producers      sync.WaitGroup
	sinkTimeout    time.Duration
	healthInterval time.Duration
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	dispatcher contract.IDispatcher,
	numWorkers, bufferSize int, sinkTimeout, healthInterval time.Duration) *Orchestrator {
	return &Orchestrator{
		log:            log,
		numWorkers:     numWorkers,
		dispatcher:     dispatcher,
		supervisor:     supervisor,
		inbound:        make(chan domain.Message, bufferSize),
		outbound:       make(chan domain.Outbound, bufferSize),
		sinkTimeout:    sinkTimeout,
		healthInterval: healthInterval,
	}
}

// RegisterSinks adds reply sinks. It must be called before Start.
func (o *Orchestrator) RegisterSinks(sinks ...contract.ReplySink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sinks = append(o.sinks, sinks...)
}

// Submit queues an inbound message for dispatch.
// It never blocks: a full inbound buffer drops the message.
func (o *Orchestrator) Submit(msg domain.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return errors.ErrClosed
	}
	select {
	case o.inbound <- msg:
		return nil
	default:
		o.log.Warn(fmt.Sprintf("Inbound channel full, dropping message %q", msg.Content))
		return errors.ErrInboundFull
	}
}

// BusyReply answers a message Submit dropped because the inbound buffer was full.
func BusyReply(author domain.User) domain.Reply {
	if domain.IsNilUser(author) {
		return domain.Fail("The bot is busy, please try again.")
	}
	return domain.Fail(fmt.Sprintf("%s The bot is busy, please try again.", author.Mention()))
}

// Start registers every worker to the supervisor and blocks until they all stopped.
func (o *Orchestrator) Start(ctx context.Context) {
	o.mu.Lock()
	o.producers.Add(o.numWorkers)
	for i := 0; i < o.numWorkers; i++ {
		o.supervisor.Add(finisher{
			Worker: workers.NewCommandWorker(o.dispatcher, o.inbound, o.outbound, o.log),
			done:   o.producers.Done,
		})
	}
	o.supervisor.Add(finisher{
		Worker: workers.NewReplyFanout(o.log, o.outbound, o.sinkTimeout, o.sinks...),
		done:   o.supervisor.Stop,
	})
	if o.healthInterval > 0 {
		channels := []workers.NamedChannel{
			{Name: "inbound", Channel: o.inbound},
			{Name: "outbound", Channel: o.outbound},
		}
		o.supervisor.Add(
			workers.NewHealthMonitoringWorker(o.log, o.dispatcher, o.healthInterval),
			workers.NewChannelCapacityWorker(o.log, channels, o.healthInterval, cap(o.inbound)/10),
		)
	}
	o.mu.Unlock()

	// Once every command worker drained the inbound channel, nothing writes to outbound anymore.
	go func() {
		o.producers.Wait()
		close(o.outbound)
	}()

	o.log.Info("Starting orchestrator and all supervised workers", "command_workers", o.numWorkers)
	o.supervisor.Run(ctx)
}

// Close stops accepting messages. Pending messages are still dispatched and
// their replies delivered, then Start returns.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	close(o.inbound)
}

// Stop cancels every worker right away, pending messages are dropped.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}

// finisher calls done once the supervisor will not run its worker again, so
// a worker that panics during shutdown still counts as finished.
type finisher struct {
	contract.Worker
	done func()
}

var _ contract.Finisher = finisher{}

func (f finisher) Unwrap() contract.Worker { return f.Worker }

func (f finisher) Finish() { f.done() }
