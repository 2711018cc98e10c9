package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		addressed bool
		expected  Command
	}{
		{name: "Simple command", content: "!q join", addressed: true, expected: Command{Name: "join", Args: []string{}}},
		{name: "Case insensitive", content: "!Q PoSiTiOn", addressed: true, expected: Command{Name: "position", Args: []string{}}},
		{name: "Leading whitespace", content: "  !q next", addressed: false},
		{name: "Inner whitespace", content: "!q \t next  ", addressed: true, expected: Command{Name: "next", Args: []string{}}},
		{name: "Arguments kept in order", content: "!q add <@Kapua> now", addressed: true, expected: Command{Name: "add", Args: []string{"<@kapua>", "now"}}},
		{name: "Prefix only", content: "!q", addressed: true, expected: Command{}},
		{name: "Prefix with trailing spaces", content: "!q   ", addressed: true, expected: Command{}},
		{name: "Glued prefix", content: "!qjoin", addressed: true, expected: Command{}},
		{name: "Glued prefix with command", content: "!qx join", addressed: true, expected: Command{Name: "join", Args: []string{}}},
		{name: "Non ASCII space is not a separator", content: "!q\u00a0join", addressed: true, expected: Command{}},
		{name: "Non ASCII letters keep their case", content: "!q JOİN", addressed: true, expected: Command{Name: "joİn", Args: []string{}}},
		{name: "Not a command", content: "hello !q join", addressed: false},
		{name: "Empty", content: "", addressed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			cmd, ok := ParseCommand(DefaultPrefix, tt.content)
			req.Equal(tt.addressed, ok)
			if !ok {
				return
			}
			req.Equal(tt.expected.Name, cmd.Name)
			req.Equal(len(tt.expected.Args), len(cmd.Args))
			for i := range tt.expected.Args {
				req.Equal(tt.expected.Args[i], cmd.Args[i])
			}
		})
	}
}

func TestParseCommand_CustomPrefix(t *testing.T) {
	req := require.New(t)
	cmd, ok := ParseCommand("!OH", "!oh list")
	req.True(ok)
	req.Equal("list", cmd.Name)

	_, ok = ParseCommand("", "!q list")
	req.False(ok)
}
