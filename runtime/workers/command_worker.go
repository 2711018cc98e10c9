package workers

import (
	"context"
	"fmt"
	"log/slog"
	"queue-bot/contract"
	"queue-bot/domain"
	"time"
)

// Ensure *CommandWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*CommandWorker)(nil)

// CommandWorker consumes inbound messages, dispatches them and forwards
// the resulting reply. Several CommandWorkers may share the same channels,
// the dispatcher serializes queue access.
type CommandWorker struct {
	dispatcher contract.IDispatcher
	inbound    chan domain.Message
	outbound   chan domain.Outbound
	log        *slog.Logger
	now        func() time.Time
}

func NewCommandWorker(
	dispatcher contract.IDispatcher,
	inbound chan domain.Message,
	outbound chan domain.Outbound,
	log *slog.Logger) *CommandWorker {
	return &CommandWorker{
		dispatcher: dispatcher,
		inbound:    inbound,
		outbound:   outbound,
		log:        log,
		now:        time.Now,
	}
}

func (w *CommandWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping command worker")
			return nil
		case msg, ok := <-w.inbound:
			if !ok {
				w.log.Debug("Inbound channel is closed")
				return nil
			}
			if msg.Author != nil {
				w.log.Debug(fmt.Sprintf("[%s]: %s", msg.Author.Name(), msg.Content))
			}
			reply, ok := w.dispatcher.Handle(msg)
			if !ok {
				continue
			}
			select {
			case <-ctx.Done():
				w.log.Warn("Reply lost on shutdown", "content", msg.Content)
				return nil
			case w.outbound <- domain.NewOutbound(msg, reply, w.now().UTC()):
			}
		}
	}
}
