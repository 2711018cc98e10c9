// Package dispatcher routes parsed commands to queue handlers.
// It owns the queue and is the only place where it is mutated.
package dispatcher

import (
	"fmt"
	"log/slog"
	"queue-bot/domain"
	"sync"
)

type handler func(author domain.User, args []string, mentions []domain.User) domain.Reply

// Dispatcher is safe for concurrent use: a single lock is held for the whole
// duration of a handler, so check-then-append and find-then-remove are atomic.
type Dispatcher struct {
	mu            sync.Mutex
	log           *slog.Logger
	prefix        string
	queue         *domain.Queue
	openCommands  map[string]handler
	staffCommands map[string]handler
}

func NewDispatcher(log *slog.Logger, prefix string) *Dispatcher {
	d := &Dispatcher{
		log:    log,
		prefix: prefix,
		queue:  domain.NewQueue(),
	}
	d.openCommands = map[string]handler{
		"ping":     d.ping,
		"join":     d.join,
		"leave":    d.leave,
		"pos":      d.position,
		"position": d.position,
		"list":     d.list,
	}
	d.staffCommands = map[string]handler{
		"next":   d.next,
		"clear":  d.clear,
		"add":    d.add,
		"remove": d.remove,
	}
	return d
}

// Dispatch answers a message with exactly one Reply.
// It returns false, and no reply, when the content is not addressed to the bot.
func (d *Dispatcher) Dispatch(author domain.User, content string, mentions []domain.User) (domain.Reply, bool) {
	cmd, ok := domain.ParseCommand(d.prefix, content)
	if !ok {
		return domain.Reply{}, false
	}

	if domain.IsNilUser(author) {
		return domain.Warn("invalid syntax."), true
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if h, ok := d.openCommands[cmd.Name]; ok {
		return h(author, cmd.Args, mentions), true
	}
	// Non-staff callers cannot tell staff commands from unknown ones.
	if h, ok := d.staffCommands[cmd.Name]; ok && author.IsStaff() {
		return h(author, cmd.Args, mentions), true
	}
	d.log.Debug("Invalid command", "author", author.Tag(), "command", cmd.Name)
	return invalidSyntax(author), true
}

// Handle is Dispatch for a Message.
func (d *Dispatcher) Handle(msg domain.Message) (domain.Reply, bool) {
	return d.Dispatch(msg.Author, msg.Content, msg.Mentions)
}

// Snapshot returns the queue content, front first.
func (d *Dispatcher) Snapshot() []domain.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.queue.Users()
}

func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.queue.Len()
}

func invalidSyntax(author domain.User) domain.Reply {
	return domain.Warn(fmt.Sprintf("%s invalid syntax.", author.Mention()))
}
