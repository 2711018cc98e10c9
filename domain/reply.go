package domain

// Severity classifies a Reply.
type Severity int

const (
	None Severity = iota
	Warning
	Success
	// Error is reserved for failures that are not user mistakes.
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "none"
	}
}

// Prefix is the glyph prepended to a rendered reply.
func (s Severity) Prefix() string {
	switch s {
	case Warning:
		return "⚠️ "
	case Success:
		return "✅ "
	case Error:
		return "‼️ "
	default:
		return ""
	}
}

// Reply is the single answer produced for an inbound command.
type Reply struct {
	Severity Severity
	Text     string
}

func Plain(text string) Reply { return Reply{Severity: None, Text: text} }

func Warn(text string) Reply { return Reply{Severity: Warning, Text: text} }

func Succeed(text string) Reply { return Reply{Severity: Success, Text: text} }

func Fail(text string) Reply { return Reply{Severity: Error, Text: text} }

// String renders the reply the way it is sent to the chat.
func (r Reply) String() string {
	return r.Severity.Prefix() + r.Text
}
