package domain

import "strings"

const DefaultPrefix = "!q"

// Command is a parsed inbound message addressed to the bot.
// Name is empty when the message carries a single token.
type Command struct {
	Name string
	Args []string
}

// ParseCommand tokenizes content when it starts with prefix, ignoring ASCII case.
// Token 0 is the prefix token and is not inspected, token 1 is the command name.
// "!qjoin" is addressed to the bot but has no command name.
func ParseCommand(prefix, content string) (Command, bool) {
	prefix = asciiLower(prefix)
	lower := asciiLower(content)
	if prefix == "" || !strings.HasPrefix(lower, prefix) {
		return Command{}, false
	}
	tokens := strings.FieldsFunc(lower, isASCIISpace)
	if len(tokens) < 2 {
		return Command{}, true
	}
	return Command{Name: tokens[1], Args: tokens[2:]}, true
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
