package sink

import (
	"context"
	"fmt"
	"io"
	"queue-bot/domain"
	"sync"

	"github.com/gookit/color"
)

// ConsoleSink prints replies the way they would appear in the chat.
type ConsoleSink struct {
	mu      sync.Mutex
	out     io.Writer
	colours bool
}

func NewConsoleSink(out io.Writer, colours bool) *ConsoleSink {
	return &ConsoleSink{out: out, colours: colours}
}

func (c *ConsoleSink) Consume(ctx context.Context, out domain.Outbound) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	line := out.Reply.String()
	if c.colours {
		line = styleFor(out.Reply.Severity).Sprint(line)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.out, "SEND> %s\n", line)
	return err
}

func styleFor(severity domain.Severity) color.Style {
	switch severity {
	case domain.Warning:
		return color.New(color.FgYellow)
	case domain.Success:
		return color.New(color.FgGreen)
	case domain.Error:
		return color.New(color.FgRed, color.OpBold)
	default:
		return color.New(color.FgDefault)
	}
}
